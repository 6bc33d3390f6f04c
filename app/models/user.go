package models

import "strings"

// Admin is a back-office account. At least one admin record must exist at
// all times.
type Admin struct {
	ID       int64  `json:"id"`
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name" validate:"required"`
}

// Teacher owns assignments, grades, a timetable and daily roll calls.
// Classes holds the class labels the teacher is responsible for.
type Teacher struct {
	ID       int64    `json:"id"`
	Username string   `json:"username" validate:"required"`
	Password string   `json:"password" validate:"required"`
	Name     string   `json:"name" validate:"required"`
	Classes  []string `json:"classes"`
}

// Student belongs to at most one class. Historical records stored a full
// "first last" display name under Name; the system was migrated to first
// names only, so both Name and Prenom may be present and Prenom wins.
type Student struct {
	ID       int64  `json:"id"`
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Prenom   string `json:"prenom,omitempty"`
	Name     string `json:"name,omitempty"`
	Classe   string `json:"classe"`
	Photo    string `json:"photo,omitempty"`
}

// DisplayName prefers the migrated first name over the legacy full name.
func (e *Student) DisplayName() string {
	if e.Prenom != "" {
		return e.Prenom
	}
	if e.Name != "" {
		return e.Name
	}
	return e.Username
}

// Users is the shape persisted under the "users" key. The three role lists
// share one username namespace.
type Users struct {
	Admins []*Admin   `json:"admin"`
	Profs  []*Teacher `json:"prof"`
	Eleves []*Student `json:"eleves"`
}

// UsernameTaken reports whether username is already held by any record in
// any of the three role lists. Comparison is case-sensitive, exactly as
// stored. excludeID skips the record being renamed.
func (u *Users) UsernameTaken(username string, excludeID int64) bool {
	for _, a := range u.Admins {
		if a.Username == username && a.ID != excludeID {
			return true
		}
	}
	for _, p := range u.Profs {
		if p.Username == username && p.ID != excludeID {
			return true
		}
	}
	for _, e := range u.Eleves {
		if e.Username == username && e.ID != excludeID {
			return true
		}
	}
	return false
}

// SessionUser is the snapshot of the authenticated user carried by the
// session record. Only the fields relevant to the role are set.
type SessionUser struct {
	ID       int64    `json:"id"`
	Username string   `json:"username"`
	Name     string   `json:"name"`
	Classe   string   `json:"classe,omitempty"`
	Classes  []string `json:"classes,omitempty"`
}

// Session is the single active-session record persisted under its own key.
// It has no expiry; it is valid until explicitly cleared.
type Session struct {
	Type      Role        `json:"type"`
	User      SessionUser `json:"user"`
	Timestamp int64       `json:"timestamp"`
}

// NormalizeUsername is the comparison form used at login.
func NormalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}
