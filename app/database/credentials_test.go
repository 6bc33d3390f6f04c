package database

import (
	"testing"

	"ecole-portail/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsernameFromPrenom(t *testing.T) {
	users := &models.Users{}

	assert.Equal(t, "gaia", UsernameFromPrenom(users, "Gaïa"))
	assert.Equal(t, "francoisxavier", UsernameFromPrenom(users, "François-Xavier"))
	assert.Equal(t, "eleve", UsernameFromPrenom(users, "123 !"))
}

func TestUsernameFromPrenomSuffixesOnConflict(t *testing.T) {
	users := &models.Users{
		Eleves: []*models.Student{
			{ID: 1, Username: "jean"},
			{ID: 2, Username: "jean2"},
		},
	}
	assert.Equal(t, "jean3", UsernameFromPrenom(users, "Jean"))
}

func TestPasswordFromPrenom(t *testing.T) {
	assert.Equal(t, "gaia123", PasswordFromPrenom("Gaïa"))
	assert.Equal(t, "123", PasswordFromPrenom("!"))
}

func TestCreateStudentWithDerivedCredentials(t *testing.T) {
	s := newTestStore(t)

	users := LoadUsers(s)
	username := UsernameFromPrenom(users, "Chloé")
	eleve := &models.Student{
		Username: username,
		Password: PasswordFromPrenom("Chloé"),
		Prenom:   "Chloé",
		Classe:   "CE1",
	}
	require.NoError(t, CreateStudent(s, eleve))

	got, err := Authenticate(s, models.RoleEleve, "chloe", "chloe123")
	require.NoError(t, err)
	assert.Equal(t, eleve.ID, got.ID)
}
