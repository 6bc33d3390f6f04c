package teachers

import (
	"errors"
	"strings"

	"ecole-portail/app/config"
	"ecole-portail/app/database"
	"ecole-portail/app/models"
	"ecole-portail/app/validation"

	"github.com/gofiber/fiber/v2"
)

// TeacherRequest is the create/update payload for a teacher record. Classes
// is a comma-separated list of labels, as typed in the admin form.
type TeacherRequest struct {
	Name     string `json:"name" validate:"required"`
	Username string `json:"username" validate:"required"`
	Password string `json:"password"`
	Classes  string `json:"classes"`
}

func splitClasses(classes string) []string {
	var out []string
	for _, c := range strings.Split(classes, ",") {
		if trimmed := strings.TrimSpace(c); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func GetTeachersAPI(c *fiber.Ctx) error {
	users := database.LoadUsers(config.GetStore())
	return c.JSON(fiber.Map{
		"profs": users.Profs,
		"count": len(users.Profs),
	})
}

func CreateTeacherAPI(c *fiber.Ctx) error {
	var req TeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Requête invalide"})
	}
	if err := validation.Validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": validation.Message(err)})
	}
	if req.Password == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Veuillez remplir tous les champs obligatoires"})
	}

	prof := &models.Teacher{
		Name:     req.Name,
		Username: req.Username,
		Password: req.Password,
		Classes:  splitClasses(req.Classes),
	}
	if err := database.CreateTeacher(config.GetStore(), prof); err != nil {
		if errors.Is(err, database.ErrUsernameTaken) {
			return c.Status(409).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Échec de la création du professeur"})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Professeur créé avec succès", "prof": prof})
}

func UpdateTeacherAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Identifiant invalide"})
	}

	var req TeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Requête invalide"})
	}
	if err := validation.Validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": validation.Message(err)})
	}

	updated := &models.Teacher{
		Name:     req.Name,
		Username: req.Username,
		Password: req.Password,
		Classes:  splitClasses(req.Classes),
	}
	if err := database.UpdateTeacher(config.GetStore(), int64(id), updated); err != nil {
		switch {
		case errors.Is(err, database.ErrNotFound):
			return c.Status(404).JSON(fiber.Map{"error": "Professeur introuvable"})
		case errors.Is(err, database.ErrUsernameTaken):
			return c.Status(409).JSON(fiber.Map{"error": err.Error()})
		default:
			return c.Status(500).JSON(fiber.Map{"error": "Échec de la modification du professeur"})
		}
	}

	return c.JSON(fiber.Map{"message": "Professeur modifié avec succès"})
}

// DeleteTeacherAPI removes a teacher and everything it owns: assignments
// and grades are cascade-deleted by owning username.
func DeleteTeacherAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Identifiant invalide"})
	}

	if err := database.DeleteTeacher(config.GetStore(), int64(id)); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Professeur introuvable"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Échec de la suppression du professeur"})
	}

	return c.JSON(fiber.Map{"message": "Professeur supprimé"})
}
