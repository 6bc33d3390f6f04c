package database

import (
	"testing"

	"ecole-portail/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateGradeRequiresStudent(t *testing.T) {
	s := newTestStore(t)

	err := CreateGrade(s, &models.Grade{EleveID: 42, Matiere: "Maths", Note: 12, ProfID: "alexiag"})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, LoadGrades(s))
}

func TestCreateGradeDefaultsLabelAndStampsDate(t *testing.T) {
	s := newTestStore(t)

	eleve := &models.Student{Username: "jean", Password: "pw", Prenom: "Jean", Classe: "CE1"}
	require.NoError(t, CreateStudent(s, eleve))

	note := &models.Grade{EleveID: eleve.ID, Matiere: "Maths", Note: 14.5, ProfID: "alexiag"}
	require.NoError(t, CreateGrade(s, note))

	assert.NotZero(t, note.ID)
	assert.Equal(t, "Devoir", note.Devoir)
	assert.False(t, note.Date.IsZero())

	notes := LoadGrades(s)
	require.Len(t, notes, 1)
	assert.Equal(t, 14.5, notes[0].Note)
}

func TestDeleteGrade(t *testing.T) {
	s := newTestStore(t)

	eleve := &models.Student{Username: "jean", Password: "pw", Prenom: "Jean", Classe: "CE1"}
	require.NoError(t, CreateStudent(s, eleve))
	note := &models.Grade{EleveID: eleve.ID, Matiere: "Maths", Note: 10, ProfID: "alexiag"}
	require.NoError(t, CreateGrade(s, note))

	assert.ErrorIs(t, DeleteGrade(s, note.ID+1), ErrNotFound)
	require.NoError(t, DeleteGrade(s, note.ID))
	assert.Empty(t, LoadGrades(s))
}

func TestAverage(t *testing.T) {
	_, ok := Average(nil)
	assert.False(t, ok)

	avg, ok := Average([]*models.Grade{{Note: 10}, {Note: 15}, {Note: 20}})
	require.True(t, ok)
	assert.InDelta(t, 15, avg, 0.001)
}

func TestAveragesBySubject(t *testing.T) {
	notes := []*models.Grade{
		{Matiere: "Maths", Note: 10},
		{Matiere: "Maths", Note: 14},
		{Matiere: "Français", Note: 18},
	}
	averages := AveragesBySubject(notes)
	assert.InDelta(t, 12, averages["Maths"], 0.001)
	assert.InDelta(t, 18, averages["Français"], 0.001)
}

func TestGradesForTeacher(t *testing.T) {
	notes := []*models.Grade{
		{ID: 1, ProfID: "alexiag"},
		{ID: 2, ProfID: "paulr"},
		{ID: 3, ProfID: "alexiag"},
	}
	mine := GradesForTeacher(notes, "alexiag")
	require.Len(t, mine, 2)
	assert.Equal(t, int64(3), mine[1].ID)
}
