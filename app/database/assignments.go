package database

import (
	"time"

	"ecole-portail/app/models"
	"ecole-portail/app/store"
)

// LoadAssignments returns the devoirs collection, or an empty list when the
// key is absent or malformed.
func LoadAssignments(s *store.Store) []*models.Assignment {
	devoirs := []*models.Assignment{}
	s.Load(store.KeyDevoirs, &devoirs)
	return devoirs
}

func SaveAssignments(s *store.Store, devoirs []*models.Assignment) error {
	return s.Save(store.KeyDevoirs, devoirs)
}

// AssignmentsForTeacher returns the assignments owned by the teacher.
func AssignmentsForTeacher(devoirs []*models.Assignment, profID string) []*models.Assignment {
	var out []*models.Assignment
	for _, d := range devoirs {
		if d.ProfID == profID {
			out = append(out, d)
		}
	}
	return out
}

// AssignmentsForClass returns the assignments targeting the student's
// class, matched on the normalized label.
func AssignmentsForClass(devoirs []*models.Assignment, classe string) []*models.Assignment {
	normalized := NormalizeClasse(classe)
	var out []*models.Assignment
	for _, d := range devoirs {
		if NormalizeClasse(d.Classe) == normalized {
			out = append(out, d)
		}
	}
	return out
}

// CreateAssignment stamps the record and appends it to the collection.
func CreateAssignment(s *store.Store, devoir *models.Assignment) error {
	devoirs := LoadAssignments(s)
	id, err := s.NextID()
	if err != nil {
		return err
	}
	devoir.ID = id
	devoir.Classe = NormalizeClasse(devoir.Classe)
	devoir.DateCreation = time.Now()
	devoirs = append(devoirs, devoir)
	return SaveAssignments(s, devoirs)
}

// UpdateAssignment overwrites the fields of the record with the matching
// id. Ownership and creation date are preserved.
func UpdateAssignment(s *store.Store, id int64, updated *models.Assignment) error {
	devoirs := LoadAssignments(s)
	for _, d := range devoirs {
		if d.ID == id {
			d.Titre = updated.Titre
			d.Description = updated.Description
			d.Classe = NormalizeClasse(updated.Classe)
			d.Matiere = updated.Matiere
			d.DateLimite = updated.DateLimite
			return SaveAssignments(s, devoirs)
		}
	}
	return ErrNotFound
}

// DeleteAssignment filters the record out and rewrites the collection.
func DeleteAssignment(s *store.Store, id int64) error {
	devoirs := LoadAssignments(s)
	kept := devoirs[:0]
	var found bool
	for _, d := range devoirs {
		if d.ID == id {
			found = true
		} else {
			kept = append(kept, d)
		}
	}
	if !found {
		return ErrNotFound
	}
	return SaveAssignments(s, kept)
}
