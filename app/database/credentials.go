package database

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"ecole-portail/app/models"
)

var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// cleanPrenom reduces a first name to its login form: accents stripped,
// lowered, everything outside a-z removed.
func cleanPrenom(prenom string) string {
	stripped, _, err := transform.String(stripAccents, prenom)
	if err != nil {
		stripped = prenom
	}
	var b strings.Builder
	for _, r := range strings.ToLower(stripped) {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// UsernameFromPrenom derives a login identifier from a first name. When the
// cleaned form is already held by any account, a numeric suffix is appended
// until the identifier is free.
func UsernameFromPrenom(users *models.Users, prenom string) string {
	base := cleanPrenom(prenom)
	if base == "" {
		base = "eleve"
	}
	username := base
	for i := 2; users.UsernameTaken(username, 0); i++ {
		username = base + strconv.Itoa(i)
	}
	return username
}

// PasswordFromPrenom is the default password for a freshly created student
// account: the cleaned first name followed by "123".
func PasswordFromPrenom(prenom string) string {
	return cleanPrenom(prenom) + "123"
}
