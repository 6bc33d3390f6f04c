package database

import (
	"strings"

	"ecole-portail/app/models"
	"ecole-portail/app/store"
)

// LoadTimetables returns the emploiDuTemps collection, or an empty map when
// the key is absent or malformed.
func LoadTimetables(s *store.Store) models.TimetableSet {
	set := models.TimetableSet{}
	s.Load(store.KeyEmploi, &set)
	return set
}

// TimetableForTeacher returns the teacher's grid, or an empty grid when
// none has been saved yet.
func TimetableForTeacher(s *store.Store, profID string) models.Timetable {
	set := LoadTimetables(s)
	if t, ok := set[profID]; ok {
		return t
	}
	return models.EmptyTimetable()
}

// TimetableForStudent resolves the grid shown to a student: the one of the
// first teacher responsible for the student's class, or an empty grid when
// no teacher matches.
func TimetableForStudent(s *store.Store, users *models.Users, classe string) models.Timetable {
	normalized := NormalizeClasse(classe)
	for _, prof := range users.Profs {
		for _, c := range prof.Classes {
			if NormalizeClasse(c) == normalized {
				return TimetableForTeacher(s, prof.Username)
			}
		}
	}
	return models.EmptyTimetable()
}

// SaveTimetable rewrites the teacher's grid. Labels are trimmed, empty
// slots dropped, and entries outside the known day/hour grid ignored.
func SaveTimetable(s *store.Store, profID string, grid models.Timetable) error {
	clean := models.EmptyTimetable()
	for _, day := range models.TimetableDays {
		for _, hour := range models.TimetableHours {
			if cours := strings.TrimSpace(grid[day][hour]); cours != "" {
				clean[day][hour] = cours
			}
		}
	}
	set := LoadTimetables(s)
	set[profID] = clean
	return s.Save(store.KeyEmploi, set)
}
