package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestLoadAbsentKey(t *testing.T) {
	s := newTestStore(t)

	var values []string
	assert.False(t, s.Load("missing", &values))
	assert.Empty(t, values)
}

func TestSaveLoadRoundtrip(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Save("labels", []string{"CE1", "CE2"}))

	var values []string
	require.True(t, s.Load("labels", &values))
	assert.Equal(t, []string{"CE1", "CE2"}, values)
}

func TestLoadMalformedValueFailsSoft(t *testing.T) {
	s := newTestStore(t)

	// A JSON string is valid JSON but not the expected shape.
	require.NoError(t, s.Save("labels", "oops"))

	var values []string
	assert.False(t, s.Load("labels", &values))
	assert.Empty(t, values)
}

func TestDelete(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Save("labels", []string{"CE1"}))
	require.NoError(t, s.Delete("labels"))

	var values []string
	assert.False(t, s.Load("labels", &values))
}

func TestNextIDMonotonic(t *testing.T) {
	s := newTestStore(t)

	first, err := s.NextID()
	require.NoError(t, err)
	second, err := s.NextID()
	require.NoError(t, err)
	assert.Greater(t, second, first)
}
