package database

import (
	"log"
	"strings"

	"ecole-portail/app/models"
	"ecole-portail/app/store"
)

// legacyClasses maps deprecated class labels (normalized form) to their
// current replacement. The school dropped the collège naming and the CE/CEI
// shorthand years ago, but stored records still carry them.
var legacyClasses = map[string]string{
	"CE":      "CE1",
	"CEI":     "CE1",
	"6ÈME A":  "CE1",
	"6ÈME B":  "CE1",
	"5ÈME A":  "CE2",
	"5ÈME B":  "CE2",
	"4ÈME A":  "CE2",
	"4ÈME B":  "CE2",
	"3ÈME A":  "CE2",
	"3ÈME B":  "CE2",
}

func migrateClasse(classe string) (string, bool) {
	if replacement, ok := legacyClasses[NormalizeClasse(classe)]; ok {
		return replacement, true
	}
	return classe, false
}

// RunMigrations seeds the default accounts on first run and applies the
// one-time data cleanup pass: legacy class labels are rewritten to their
// current form, legacy full names are reduced to first names, and
// assignments without an owner or target class are purged. Each collection
// is persisted at most once and only when something changed, so re-running
// the pass on clean data performs no writes.
func RunMigrations(s *store.Store) error {
	log.Println("Running data migrations...")

	if err := seedDefaults(s); err != nil {
		return err
	}
	if err := migrateUsers(s); err != nil {
		return err
	}
	if err := migrateAssignments(s); err != nil {
		return err
	}

	log.Println("Data migrations completed")
	return nil
}

// seedDefaults writes the default accounts when their role list is empty.
// Login always resolves against the store, so the reserved accounts exist
// as ordinary records.
func seedDefaults(s *store.Store) error {
	users := LoadUsers(s)
	changed := false

	if len(users.Admins) == 0 {
		id, err := s.NextID()
		if err != nil {
			return err
		}
		users.Admins = []*models.Admin{
			{ID: id, Username: "admin", Password: "admin123", Name: "Administrateur"},
		}
		changed = true
	}
	if len(users.Profs) == 0 {
		id, err := s.NextID()
		if err != nil {
			return err
		}
		users.Profs = []*models.Teacher{
			{ID: id, Username: "alexiag", Password: "alexiagoletto", Name: "Mme Oletto", Classes: []string{"CE1", "CE2"}},
		}
		changed = true
	}
	if len(users.Eleves) == 0 {
		seeds := []*models.Student{
			{Username: "eleve1", Password: "eleve123", Prenom: "Jean", Name: "Jean Martin", Classe: "CE1"},
			{Username: "eleve2", Password: "eleve123", Prenom: "Marie", Name: "Marie Dubois", Classe: "CE1"},
			{Username: "eleve3", Password: "eleve123", Prenom: "Pierre", Name: "Pierre Bernard", Classe: "CE2"},
		}
		for _, e := range seeds {
			id, err := s.NextID()
			if err != nil {
				return err
			}
			e.ID = id
		}
		users.Eleves = seeds
		changed = true
	}

	if !changed {
		return nil
	}
	log.Println("Seeded default accounts")
	return SaveUsers(s, users)
}

func migrateUsers(s *store.Store) error {
	users := LoadUsers(s)
	changed := false

	for _, e := range users.Eleves {
		if replacement, ok := migrateClasse(e.Classe); ok {
			e.Classe = replacement
			changed = true
		}
		// Reduce legacy "first last" names to the first name and make sure
		// prenom is filled, preferring it when both are present. A
		// whitespace-only name has no fields and is left alone.
		if e.Prenom == "" && e.Name != "" {
			if fields := strings.Fields(e.Name); len(fields) > 0 {
				e.Prenom = fields[0]
				changed = true
			}
		}
		if e.Name != e.Prenom && e.Prenom != "" {
			e.Name = e.Prenom
			changed = true
		}
	}

	for _, p := range users.Profs {
		for i, c := range p.Classes {
			if replacement, ok := migrateClasse(c); ok {
				p.Classes[i] = replacement
				changed = true
			}
		}
	}

	if !changed {
		return nil
	}
	return SaveUsers(s, users)
}

func migrateAssignments(s *store.Store) error {
	devoirs := LoadAssignments(s)
	changed := false

	kept := devoirs[:0]
	for _, d := range devoirs {
		if d.ProfID == "" || d.Classe == "" {
			changed = true
			continue
		}
		if replacement, ok := migrateClasse(d.Classe); ok {
			d.Classe = replacement
			changed = true
		}
		kept = append(kept, d)
	}

	if !changed {
		return nil
	}
	log.Println("Cleaned up legacy assignments")
	return SaveAssignments(s, kept)
}
