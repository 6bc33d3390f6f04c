package models

// AttendanceEntry is one student's line in a roll call.
type AttendanceEntry struct {
	Name   string           `json:"name"`
	Classe string           `json:"classe"`
	Status AttendanceStatus `json:"status"`
}

// AttendanceRecord (appel) is one daily roll call pass for one teacher.
// At most one record may exist per (date, profId) pair.
type AttendanceRecord struct {
	Date     string            `json:"date"`
	ProfID   string            `json:"profId"`
	Students []AttendanceEntry `json:"students"`
}
