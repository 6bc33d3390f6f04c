package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Validate is the shared validator instance used by all route packages.
var Validate = validator.New()

// Message turns a validation error into one user-facing sentence naming the
// first offending field.
func Message(err error) string {
	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		e := errs[0]
		switch e.Tag() {
		case "required":
			return fmt.Sprintf("Le champ %s est obligatoire", e.Field())
		case "min", "max":
			return fmt.Sprintf("Le champ %s est hors limites", e.Field())
		default:
			return fmt.Sprintf("Le champ %s est invalide", e.Field())
		}
	}
	return "Données invalides"
}
