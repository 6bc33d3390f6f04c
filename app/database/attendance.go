package database

import (
	"errors"
	"strconv"
	"strings"

	"ecole-portail/app/models"
	"ecole-portail/app/store"
)

var (
	// ErrAppelIncomplete is returned when at least one roster student has
	// no status. Nothing is persisted in that case.
	ErrAppelIncomplete = errors.New("chaque élève doit avoir un statut")
	// ErrAppelExists is returned when a roll call already exists for the
	// (date, teacher) pair, regardless of its content.
	ErrAppelExists = errors.New("l'appel a déjà été fait aujourd'hui")
)

// LoadAttendance returns the appels collection, or an empty list when the
// key is absent or malformed.
func LoadAttendance(s *store.Store) []*models.AttendanceRecord {
	appels := []*models.AttendanceRecord{}
	s.Load(store.KeyAppels, &appels)
	return appels
}

// AttendanceFor returns the roll call recorded by the teacher on the given
// date, if any.
func AttendanceFor(appels []*models.AttendanceRecord, date, profID string) *models.AttendanceRecord {
	for _, a := range appels {
		if a.Date == date && a.ProfID == profID {
			return a
		}
	}
	return nil
}

// RosterForTeacher returns the students whose normalized class label is in
// the teacher's resolved class set, in stored order.
func RosterForTeacher(users *models.Users, prof *models.Teacher) []*models.Student {
	classes := ResolveTeacherClasses(prof, users.Eleves)
	inSet := make(map[string]bool, len(classes))
	for _, c := range classes {
		inSet[c] = true
	}
	var roster []*models.Student
	for _, e := range users.Eleves {
		if inSet[NormalizeClasse(e.Classe)] {
			roster = append(roster, e)
		}
	}
	return roster
}

// SaveAttendance validates and persists one roll call. statuses maps
// student ids to their status. The save is rejected outright when a record
// already exists for (date, profID) or when any roster student lacks a
// valid status; the collection is left untouched on rejection.
func SaveAttendance(s *store.Store, prof *models.Teacher, date string, statuses map[int64]models.AttendanceStatus) error {
	appels := LoadAttendance(s)
	if AttendanceFor(appels, date, prof.Username) != nil {
		return ErrAppelExists
	}

	users := LoadUsers(s)
	roster := RosterForTeacher(users, prof)
	record := &models.AttendanceRecord{
		Date:     date,
		ProfID:   prof.Username,
		Students: make([]models.AttendanceEntry, 0, len(roster)),
	}
	for _, e := range roster {
		status, ok := statuses[e.ID]
		if !ok || !status.Valid() {
			return ErrAppelIncomplete
		}
		record.Students = append(record.Students, models.AttendanceEntry{
			Name:   e.DisplayName(),
			Classe: FormatClasseLabel(e.Classe),
			Status: status,
		})
	}

	appels = append(appels, record)
	return s.Save(store.KeyAppels, appels)
}

// ResolveQRPayload matches a decoded QR payload against a teacher's roster.
// A payload matches on the student id, username or first name, compared
// case-insensitively. It returns nil when nothing matches.
func ResolveQRPayload(roster []*models.Student, payload string) *models.Student {
	needle := strings.ToLower(strings.TrimSpace(payload))
	if needle == "" {
		return nil
	}
	for _, e := range roster {
		if strconv.FormatInt(e.ID, 10) == needle ||
			strings.ToLower(e.Username) == needle ||
			strings.ToLower(e.DisplayName()) == needle {
			return e
		}
	}
	return nil
}
