package database

import (
	"path/filepath"
	"testing"

	"ecole-portail/app/models"
	"ecole-portail/app/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestLoadUsersDefaultShape(t *testing.T) {
	s := newTestStore(t)

	users := LoadUsers(s)
	assert.NotNil(t, users.Admins)
	assert.NotNil(t, users.Profs)
	assert.NotNil(t, users.Eleves)
	assert.Empty(t, users.Admins)
}

func TestCreateStudentAssignsID(t *testing.T) {
	s := newTestStore(t)

	eleve := &models.Student{Username: "gaia", Password: "gaia123", Prenom: "Gaïa", Classe: "ce1"}
	require.NoError(t, CreateStudent(s, eleve))

	assert.NotZero(t, eleve.ID)
	assert.Equal(t, "CE1", eleve.Classe)

	users := LoadUsers(s)
	require.Len(t, users.Eleves, 1)
	assert.Equal(t, "Gaïa", users.Eleves[0].DisplayName())
}

func TestCreateUserDuplicateUsernameRejected(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, CreateAdmin(s, &models.Admin{Username: "martin", Password: "pw", Name: "Martin"}))

	// The username namespace is shared across all three role lists.
	err := CreateStudent(s, &models.Student{Username: "martin", Password: "pw", Prenom: "Martin"})
	assert.ErrorIs(t, err, ErrUsernameTaken)
	err = CreateTeacher(s, &models.Teacher{Username: "martin", Password: "pw", Name: "Martin"})
	assert.ErrorIs(t, err, ErrUsernameTaken)

	users := LoadUsers(s)
	assert.Len(t, users.Admins, 1)
	assert.Empty(t, users.Profs)
	assert.Empty(t, users.Eleves)
}

func TestRenameToExistingUsernameRejected(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, CreateStudent(s, &models.Student{Username: "jean", Password: "pw", Prenom: "Jean"}))
	eleve := &models.Student{Username: "marie", Password: "pw", Prenom: "Marie"}
	require.NoError(t, CreateStudent(s, eleve))

	err := UpdateStudent(s, eleve.ID, &models.Student{Username: "jean", Prenom: "Marie"})
	assert.ErrorIs(t, err, ErrUsernameTaken)

	// Renaming to its own username is not a conflict.
	require.NoError(t, UpdateStudent(s, eleve.ID, &models.Student{Username: "marie", Prenom: "Marie-Lou"}))
	users := LoadUsers(s)
	assert.Equal(t, "Marie-Lou", FindStudentByID(users, eleve.ID).Prenom)
}

func TestDeleteStudentCascadesGrades(t *testing.T) {
	s := newTestStore(t)

	jean := &models.Student{Username: "jean", Password: "pw", Prenom: "Jean", Classe: "CE1"}
	marie := &models.Student{Username: "marie", Password: "pw", Prenom: "Marie", Classe: "CE1"}
	require.NoError(t, CreateStudent(s, jean))
	require.NoError(t, CreateStudent(s, marie))

	require.NoError(t, CreateGrade(s, &models.Grade{EleveID: jean.ID, Matiere: "Maths", Note: 12, ProfID: "alexiag"}))
	require.NoError(t, CreateGrade(s, &models.Grade{EleveID: marie.ID, Matiere: "Maths", Note: 15, ProfID: "alexiag"}))

	require.NoError(t, DeleteStudent(s, jean.ID))

	notes := LoadGrades(s)
	require.Len(t, notes, 1)
	assert.Equal(t, marie.ID, notes[0].EleveID)
	assert.Empty(t, GradesForStudent(notes, jean.ID))
}

func TestDeleteTeacherCascadesOwnedRecords(t *testing.T) {
	s := newTestStore(t)

	alexia := &models.Teacher{Username: "alexiag", Password: "pw", Name: "Mme Oletto", Classes: []string{"CE1"}}
	other := &models.Teacher{Username: "paulr", Password: "pw", Name: "M. Renard", Classes: []string{"CE2"}}
	require.NoError(t, CreateTeacher(s, alexia))
	require.NoError(t, CreateTeacher(s, other))

	eleve := &models.Student{Username: "jean", Password: "pw", Prenom: "Jean", Classe: "CE1"}
	require.NoError(t, CreateStudent(s, eleve))

	require.NoError(t, CreateAssignment(s, &models.Assignment{Titre: "Lecture", Matiere: "Français", Classe: "CE1", DateLimite: "2026-09-15", ProfID: "alexiag"}))
	require.NoError(t, CreateAssignment(s, &models.Assignment{Titre: "Calcul", Matiere: "Maths", Classe: "CE2", DateLimite: "2026-09-15", ProfID: "paulr"}))
	require.NoError(t, CreateGrade(s, &models.Grade{EleveID: eleve.ID, Matiere: "Français", Note: 14, ProfID: "alexiag"}))
	require.NoError(t, CreateGrade(s, &models.Grade{EleveID: eleve.ID, Matiere: "Maths", Note: 16, ProfID: "paulr"}))

	require.NoError(t, DeleteTeacher(s, alexia.ID))

	devoirs := LoadAssignments(s)
	require.Len(t, devoirs, 1)
	assert.Equal(t, "paulr", devoirs[0].ProfID)

	notes := LoadGrades(s)
	require.Len(t, notes, 1)
	assert.Equal(t, "paulr", notes[0].ProfID)
}

func TestDeleteLastAdminRejected(t *testing.T) {
	s := newTestStore(t)

	admin := &models.Admin{Username: "admin", Password: "admin123", Name: "Administrateur"}
	require.NoError(t, CreateAdmin(s, admin))

	err := DeleteAdmin(s, admin.ID)
	assert.ErrorIs(t, err, ErrLastAdmin)
	assert.Len(t, LoadUsers(s).Admins, 1)

	// A stale id is not found, even while the guard would otherwise fire.
	assert.ErrorIs(t, DeleteAdmin(s, admin.ID+100), ErrNotFound)

	// With a second admin around, deletion goes through.
	second := &models.Admin{Username: "backup", Password: "pw", Name: "Backup"}
	require.NoError(t, CreateAdmin(s, second))
	require.NoError(t, DeleteAdmin(s, admin.ID))
	users := LoadUsers(s)
	require.Len(t, users.Admins, 1)
	assert.Equal(t, "backup", users.Admins[0].Username)
}

func TestAuthenticate(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, RunMigrations(s))

	// Username comparison is case-insensitive, password exact.
	user, err := Authenticate(s, models.RoleAdmin, "  Admin ", "admin123")
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Username)

	_, err = Authenticate(s, models.RoleAdmin, "admin", "ADMIN123")
	assert.Error(t, err)

	// A student only authenticates against the eleves list.
	_, err = Authenticate(s, models.RoleEleve, "admin", "admin123")
	assert.Error(t, err)

	eleve, err := Authenticate(s, models.RoleEleve, "ELEVE1", "eleve123")
	require.NoError(t, err)
	assert.Equal(t, "Jean", eleve.Name)
	assert.Equal(t, "CE1", eleve.Classe)
}
