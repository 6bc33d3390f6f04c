package assignments

import (
	"errors"

	"ecole-portail/app/config"
	"ecole-portail/app/database"
	"ecole-portail/app/models"
	"ecole-portail/app/routes/auth"
	"ecole-portail/app/validation"

	"github.com/gofiber/fiber/v2"
)

// AssignmentRequest is the create/update payload for a devoir.
type AssignmentRequest struct {
	Titre       string `json:"titre" validate:"required"`
	Description string `json:"description"`
	Matiere     string `json:"matiere" validate:"required"`
	Classe      string `json:"classe" validate:"required"`
	DateLimite  string `json:"dateLimite" validate:"required,datetime=2006-01-02"`
}

func GetAssignmentsAPI(c *fiber.Ctx) error {
	session := auth.CurrentSession(c)
	devoirs := database.AssignmentsForTeacher(database.LoadAssignments(config.GetStore()), session.User.Username)
	return c.JSON(fiber.Map{
		"devoirs": devoirs,
		"count":   len(devoirs),
	})
}

func CreateAssignmentAPI(c *fiber.Ctx) error {
	session := auth.CurrentSession(c)

	var req AssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Requête invalide"})
	}
	if err := validation.Validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": validation.Message(err)})
	}

	devoir := &models.Assignment{
		Titre:       req.Titre,
		Description: req.Description,
		Matiere:     req.Matiere,
		Classe:      req.Classe,
		DateLimite:  req.DateLimite,
		ProfID:      session.User.Username,
	}
	if err := database.CreateAssignment(config.GetStore(), devoir); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Échec de la création du devoir"})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Devoir créé avec succès", "devoir": devoir})
}

func UpdateAssignmentAPI(c *fiber.Ctx) error {
	session := auth.CurrentSession(c)
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Identifiant invalide"})
	}

	var req AssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Requête invalide"})
	}
	if err := validation.Validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": validation.Message(err)})
	}

	if !ownsAssignment(session, int64(id)) {
		return c.Status(404).JSON(fiber.Map{"error": "Devoir introuvable"})
	}

	updated := &models.Assignment{
		Titre:       req.Titre,
		Description: req.Description,
		Matiere:     req.Matiere,
		Classe:      req.Classe,
		DateLimite:  req.DateLimite,
	}
	if err := database.UpdateAssignment(config.GetStore(), int64(id), updated); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Devoir introuvable"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Échec de la modification du devoir"})
	}

	return c.JSON(fiber.Map{"message": "Devoir modifié avec succès"})
}

func DeleteAssignmentAPI(c *fiber.Ctx) error {
	session := auth.CurrentSession(c)
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Identifiant invalide"})
	}

	if !ownsAssignment(session, int64(id)) {
		return c.Status(404).JSON(fiber.Map{"error": "Devoir introuvable"})
	}

	if err := database.DeleteAssignment(config.GetStore(), int64(id)); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Devoir introuvable"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Échec de la suppression du devoir"})
	}

	return c.JSON(fiber.Map{"message": "Devoir supprimé"})
}

// ownsAssignment keeps one teacher from editing another teacher's devoirs
// through a stale or forged id.
func ownsAssignment(session *models.Session, id int64) bool {
	for _, d := range database.LoadAssignments(config.GetStore()) {
		if d.ID == id {
			return d.ProfID == session.User.Username
		}
	}
	return false
}
