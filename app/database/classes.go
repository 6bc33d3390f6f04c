package database

import (
	"sort"
	"strings"

	"ecole-portail/app/models"
)

// NormalizeClasse puts a free-text class label into its canonical
// comparison form. Historical data contains mixed-case and padded labels,
// so every equality check goes through this first.
func NormalizeClasse(classe string) string {
	return strings.ToUpper(strings.TrimSpace(classe))
}

// FormatClasseLabel is the display form of a class label.
func FormatClasseLabel(classe string) string {
	if normalized := NormalizeClasse(classe); normalized != "" {
		return normalized
	}
	return "Non assigné"
}

func normalizeClasses(classes []string) []string {
	out := make([]string, 0, len(classes))
	for _, c := range classes {
		if normalized := NormalizeClasse(c); normalized != "" {
			out = append(out, normalized)
		}
	}
	return out
}

// AvailableClasses returns the sorted set of normalized class labels that
// appear among students. An empty label is appended last when unassigned
// students exist, so they still show up in roster groupings.
func AvailableClasses(eleves []*models.Student) []string {
	set := make(map[string]bool)
	hasEmpty := false
	for _, e := range eleves {
		if normalized := NormalizeClasse(e.Classe); normalized != "" {
			set[normalized] = true
		} else {
			hasEmpty = true
		}
	}
	classes := make([]string, 0, len(set)+1)
	for c := range set {
		classes = append(classes, c)
	}
	sort.Strings(classes)
	if hasEmpty {
		classes = append(classes, "")
	}
	return classes
}

// ResolveTeacherClasses returns the normalized labels a teacher is
// responsible for. When the teacher has none assigned, every label found
// among students is used instead. That fallback is deliberate: a teacher
// without classes runs the roll call for the whole school.
func ResolveTeacherClasses(prof *models.Teacher, eleves []*models.Student) []string {
	classes := normalizeClasses(prof.Classes)
	if len(classes) == 0 {
		return AvailableClasses(eleves)
	}
	return classes
}

// StudentsInClass returns the students whose normalized label equals the
// given normalized label.
func StudentsInClass(eleves []*models.Student, classe string) []*models.Student {
	normalized := NormalizeClasse(classe)
	var out []*models.Student
	for _, e := range eleves {
		if NormalizeClasse(e.Classe) == normalized {
			out = append(out, e)
		}
	}
	return out
}
