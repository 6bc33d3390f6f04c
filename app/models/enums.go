package models

// Role identifies which dashboard a user belongs to. Records carry an
// explicit role tag instead of being sniffed by field presence.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleProf  Role = "prof"
	RoleEleve Role = "eleve"
)

// AttendanceStatus defines the possible status values for a roll call entry.
type AttendanceStatus string

const (
	Present AttendanceStatus = "present"
	Retard  AttendanceStatus = "retard"
	Absent  AttendanceStatus = "absent"
)

// Valid reports whether s is one of the three recognized statuses.
func (s AttendanceStatus) Valid() bool {
	return s == Present || s == Retard || s == Absent
}

// Days and hour slots of the timetable grid. Slots outside this grid are
// never persisted.
var (
	TimetableDays  = []string{"Lundi", "Mardi", "Mercredi", "Jeudi", "Vendredi"}
	TimetableHours = []string{"08:00", "09:00", "10:00", "11:00", "14:00", "15:00", "16:00"}
)
