package database

import (
	"time"

	"ecole-portail/app/models"
	"ecole-portail/app/store"
)

// LoadGrades returns the notes collection, or an empty list when the key is
// absent or malformed.
func LoadGrades(s *store.Store) []*models.Grade {
	notes := []*models.Grade{}
	s.Load(store.KeyNotes, &notes)
	return notes
}

func SaveGrades(s *store.Store, notes []*models.Grade) error {
	return s.Save(store.KeyNotes, notes)
}

// GradesForStudent returns the grades referencing the student id.
func GradesForStudent(notes []*models.Grade, eleveID int64) []*models.Grade {
	var out []*models.Grade
	for _, n := range notes {
		if n.EleveID == eleveID {
			out = append(out, n)
		}
	}
	return out
}

// GradesForTeacher returns the grades recorded by the teacher.
func GradesForTeacher(notes []*models.Grade, profID string) []*models.Grade {
	var out []*models.Grade
	for _, n := range notes {
		if n.ProfID == profID {
			out = append(out, n)
		}
	}
	return out
}

// CreateGrade stamps the record and appends it. The referenced student must
// still exist; the free-text label defaults to "Devoir".
func CreateGrade(s *store.Store, note *models.Grade) error {
	users := LoadUsers(s)
	if FindStudentByID(users, note.EleveID) == nil {
		return ErrNotFound
	}
	notes := LoadGrades(s)
	id, err := s.NextID()
	if err != nil {
		return err
	}
	note.ID = id
	if note.Devoir == "" {
		note.Devoir = "Devoir"
	}
	note.Date = time.Now()
	notes = append(notes, note)
	return SaveGrades(s, notes)
}

// DeleteGrade filters the record out and rewrites the collection.
func DeleteGrade(s *store.Store, id int64) error {
	notes := LoadGrades(s)
	kept := notes[:0]
	var found bool
	for _, n := range notes {
		if n.ID == id {
			found = true
		} else {
			kept = append(kept, n)
		}
	}
	if !found {
		return ErrNotFound
	}
	return SaveGrades(s, kept)
}

// Average returns the mean mark of the given grades, and false when there
// are none.
func Average(notes []*models.Grade) (float64, bool) {
	if len(notes) == 0 {
		return 0, false
	}
	var sum float64
	for _, n := range notes {
		sum += n.Note
	}
	return sum / float64(len(notes)), true
}

// AveragesBySubject groups the grades by subject and averages each group.
func AveragesBySubject(notes []*models.Grade) map[string]float64 {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, n := range notes {
		sums[n.Matiere] += n.Note
		counts[n.Matiere]++
	}
	out := make(map[string]float64, len(sums))
	for matiere, sum := range sums {
		out[matiere] = sum / float64(counts[matiere])
	}
	return out
}
