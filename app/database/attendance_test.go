package database

import (
	"strconv"
	"testing"

	"ecole-portail/app/models"
	"ecole-portail/app/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedClassroom(t *testing.T) (*store.Store, *models.Teacher) {
	t.Helper()
	s := newTestStore(t)

	prof := &models.Teacher{Username: "alexiag", Password: "pw", Name: "Mme Oletto", Classes: []string{"CE1"}}
	require.NoError(t, CreateTeacher(s, prof))
	require.NoError(t, CreateStudent(s, &models.Student{Username: "jean", Password: "pw", Prenom: "Jean", Classe: "CE1"}))
	require.NoError(t, CreateStudent(s, &models.Student{Username: "marie", Password: "pw", Prenom: "Marie", Classe: "CE1"}))
	require.NoError(t, CreateStudent(s, &models.Student{Username: "pierre", Password: "pw", Prenom: "Pierre", Classe: "CE2"}))

	return s, prof
}

func TestSaveAttendance(t *testing.T) {
	s, prof := seedClassroom(t)
	roster := RosterForTeacher(LoadUsers(s), prof)
	require.Len(t, roster, 2)

	statuses := map[int64]models.AttendanceStatus{
		roster[0].ID: models.Present,
		roster[1].ID: models.Retard,
	}
	require.NoError(t, SaveAttendance(s, prof, "2026-08-30", statuses))

	appels := LoadAttendance(s)
	require.Len(t, appels, 1)
	record := AttendanceFor(appels, "2026-08-30", prof.Username)
	require.NotNil(t, record)
	require.Len(t, record.Students, 2)
	assert.Equal(t, "Jean", record.Students[0].Name)
	assert.Equal(t, "CE1", record.Students[0].Classe)
	assert.Equal(t, models.Retard, record.Students[1].Status)
}

func TestSaveAttendanceIncompleteRejected(t *testing.T) {
	s, prof := seedClassroom(t)
	roster := RosterForTeacher(LoadUsers(s), prof)

	// One roster student has no status at all.
	statuses := map[int64]models.AttendanceStatus{
		roster[0].ID: models.Present,
	}
	err := SaveAttendance(s, prof, "2026-08-30", statuses)
	assert.ErrorIs(t, err, ErrAppelIncomplete)
	assert.Empty(t, LoadAttendance(s))

	// An unknown status value is rejected the same way.
	statuses[roster[1].ID] = models.AttendanceStatus("excused")
	err = SaveAttendance(s, prof, "2026-08-30", statuses)
	assert.ErrorIs(t, err, ErrAppelIncomplete)
	assert.Empty(t, LoadAttendance(s))
}

func TestSaveAttendanceDuplicateRejected(t *testing.T) {
	s, prof := seedClassroom(t)
	roster := RosterForTeacher(LoadUsers(s), prof)

	statuses := map[int64]models.AttendanceStatus{
		roster[0].ID: models.Present,
		roster[1].ID: models.Present,
	}
	require.NoError(t, SaveAttendance(s, prof, "2026-08-30", statuses))

	// Same (date, teacher) pair: refused whatever the content.
	statuses[roster[0].ID] = models.Absent
	err := SaveAttendance(s, prof, "2026-08-30", statuses)
	assert.ErrorIs(t, err, ErrAppelExists)
	assert.Len(t, LoadAttendance(s), 1)

	// Another day is fine.
	require.NoError(t, SaveAttendance(s, prof, "2026-08-31", statuses))
	assert.Len(t, LoadAttendance(s), 2)
}

func TestRosterForTeacherWithoutClassesCoversEveryone(t *testing.T) {
	s, _ := seedClassroom(t)

	floating := &models.Teacher{Username: "remplacant", Password: "pw", Name: "M. Remplaçant"}
	require.NoError(t, CreateTeacher(s, floating))

	roster := RosterForTeacher(LoadUsers(s), floating)
	assert.Len(t, roster, 3)
}

func TestResolveQRPayload(t *testing.T) {
	s, prof := seedClassroom(t)
	roster := RosterForTeacher(LoadUsers(s), prof)
	jean := roster[0]

	for _, payload := range []string{"jean", "JEAN", " Jean ", strconv.FormatInt(jean.ID, 10)} {
		matched := ResolveQRPayload(roster, payload)
		require.NotNil(t, matched, "payload %q", payload)
		assert.Equal(t, jean.ID, matched.ID)
	}

	assert.Nil(t, ResolveQRPayload(roster, "inconnu"))
	assert.Nil(t, ResolveQRPayload(roster, ""))
	assert.Nil(t, ResolveQRPayload(roster, "  "))
}
