package database

import (
	"testing"

	"ecole-portail/app/models"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeClasse(t *testing.T) {
	assert.Equal(t, "CE1", NormalizeClasse("  ce1 "))
	assert.Equal(t, "CE2", NormalizeClasse("Ce2"))
	assert.Equal(t, "", NormalizeClasse("   "))
}

func TestFormatClasseLabel(t *testing.T) {
	assert.Equal(t, "CE1", FormatClasseLabel("ce1"))
	assert.Equal(t, "Non assigné", FormatClasseLabel(""))
	assert.Equal(t, "Non assigné", FormatClasseLabel("  "))
}

func TestAvailableClasses(t *testing.T) {
	eleves := []*models.Student{
		{Classe: "ce2"},
		{Classe: "CE1"},
		{Classe: " ce1 "},
		{Classe: ""},
	}
	assert.Equal(t, []string{"CE1", "CE2", ""}, AvailableClasses(eleves))

	// Without unassigned students the empty label is absent.
	assert.Equal(t, []string{"CE1"}, AvailableClasses(eleves[1:3]))
}

func TestResolveTeacherClasses(t *testing.T) {
	eleves := []*models.Student{{Classe: "CE1"}, {Classe: "CE2"}}

	prof := &models.Teacher{Classes: []string{" ce1 ", ""}}
	assert.Equal(t, []string{"CE1"}, ResolveTeacherClasses(prof, eleves))

	// No assigned classes: fall back to every label in use.
	assert.Equal(t, []string{"CE1", "CE2"}, ResolveTeacherClasses(&models.Teacher{}, eleves))
}

func TestStudentsInClass(t *testing.T) {
	eleves := []*models.Student{
		{Username: "jean", Classe: "ce1"},
		{Username: "marie", Classe: "CE1"},
		{Username: "pierre", Classe: "CE2"},
	}
	matched := StudentsInClass(eleves, " Ce1 ")
	assert.Len(t, matched, 2)
	assert.Equal(t, "jean", matched[0].Username)
}
