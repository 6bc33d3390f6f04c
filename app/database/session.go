package database

import (
	"time"

	"ecole-portail/app/models"
	"ecole-portail/app/store"
)

// LoadSession returns the active session record, or nil when none exists or
// the stored value is malformed.
func LoadSession(s *store.Store) *models.Session {
	session := &models.Session{}
	if !s.Load(store.KeySession, session) {
		return nil
	}
	if session.Type == "" || session.User.Username == "" {
		// Invalid leftovers are cleared rather than honored.
		s.Delete(store.KeySession)
		return nil
	}
	return session
}

// OpenSession persists the session record for the authenticated user.
func OpenSession(s *store.Store, role models.Role, user *models.SessionUser) (*models.Session, error) {
	session := &models.Session{
		Type:      role,
		User:      *user,
		Timestamp: time.Now().UnixMilli(),
	}
	if err := s.Save(store.KeySession, session); err != nil {
		return nil, err
	}
	return session, nil
}

// ClearSession removes the session record, returning to the anonymous
// state.
func ClearSession(s *store.Store) error {
	return s.Delete(store.KeySession)
}
