package database

import "ecole-portail/app/store"

// OverviewStats are the counters shown on the admin overview tab.
type OverviewStats struct {
	Eleves  int `json:"eleves"`
	Profs   int `json:"profs"`
	Admins  int `json:"admins"`
	Classes int `json:"classes"`
	Devoirs int `json:"devoirs"`
	Notes   int `json:"notes"`
}

// GetOverviewStats recounts every collection. Mutations rewrite whole
// collections, so there is nothing incremental to maintain.
func GetOverviewStats(s *store.Store) OverviewStats {
	users := LoadUsers(s)
	classes := AvailableClasses(users.Eleves)
	n := len(classes)
	if n > 0 && classes[n-1] == "" {
		n--
	}
	return OverviewStats{
		Eleves:  len(users.Eleves),
		Profs:   len(users.Profs),
		Admins:  len(users.Admins),
		Classes: n,
		Devoirs: len(LoadAssignments(s)),
		Notes:   len(LoadGrades(s)),
	}
}
