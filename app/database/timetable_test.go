package database

import (
	"testing"

	"ecole-portail/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimetableForTeacherDefaultsToEmptyGrid(t *testing.T) {
	s := newTestStore(t)

	grid := TimetableForTeacher(s, "alexiag")
	require.Len(t, grid, len(models.TimetableDays))
	for _, day := range models.TimetableDays {
		assert.Empty(t, grid[day])
	}
}

func TestSaveTimetableCleansInput(t *testing.T) {
	s := newTestStore(t)

	dirty := models.Timetable{
		"Lundi":    {"08:00": "  Maths ", "09:00": "   "},
		"Dimanche": {"08:00": "Fantôme"},
		"Mardi":    {"23:00": "Hors grille", "14:00": "Français"},
	}
	require.NoError(t, SaveTimetable(s, "alexiag", dirty))

	grid := TimetableForTeacher(s, "alexiag")
	assert.Equal(t, "Maths", grid["Lundi"]["08:00"])
	assert.Empty(t, grid["Lundi"]["09:00"])
	assert.Empty(t, grid["Dimanche"])
	assert.Empty(t, grid["Mardi"]["23:00"])
	assert.Equal(t, "Français", grid["Mardi"]["14:00"])
}

func TestTimetableForStudent(t *testing.T) {
	s := newTestStore(t)

	prof := &models.Teacher{Username: "alexiag", Password: "pw", Name: "Mme Oletto", Classes: []string{"CE1"}}
	require.NoError(t, CreateTeacher(s, prof))
	require.NoError(t, SaveTimetable(s, "alexiag", models.Timetable{
		"Lundi": {"08:00": "Maths"},
	}))

	users := LoadUsers(s)

	// The student's class matches the teacher's, case-insensitively.
	grid := TimetableForStudent(s, users, " ce1 ")
	assert.Equal(t, "Maths", grid["Lundi"]["08:00"])

	// No teacher covers CE2: empty grid, not nil.
	grid = TimetableForStudent(s, users, "CE2")
	require.NotNil(t, grid)
	assert.Empty(t, grid["Lundi"])
}
