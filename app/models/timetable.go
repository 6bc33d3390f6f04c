package models

// Timetable is one teacher's weekly grid: day -> hour slot -> course label.
// Missing slots are simply absent and render as empty.
type Timetable map[string]map[string]string

// EmptyTimetable returns a grid with every day present and no slots filled.
func EmptyTimetable() Timetable {
	t := make(Timetable, len(TimetableDays))
	for _, day := range TimetableDays {
		t[day] = map[string]string{}
	}
	return t
}

// TimetableSet is the shape persisted under "emploiDuTemps": one grid per
// teacher username.
type TimetableSet map[string]Timetable
