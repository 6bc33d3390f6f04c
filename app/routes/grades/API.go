package grades

import (
	"errors"
	"strconv"

	"ecole-portail/app/config"
	"ecole-portail/app/database"
	"ecole-portail/app/models"
	"ecole-portail/app/routes/auth"
	"ecole-portail/app/validation"

	"github.com/gofiber/fiber/v2"
)

// GradeRequest is the payload for adding a mark.
type GradeRequest struct {
	EleveID int64   `json:"eleveId" validate:"required"`
	Matiere string  `json:"matiere" validate:"required"`
	Devoir  string  `json:"devoir"`
	Note    float64 `json:"note" validate:"min=0,max=20"`
}

// GetGradesAPI returns the teacher's grades grouped by student, the way
// the notes tab displays them.
func GetGradesAPI(c *fiber.Ctx) error {
	session := auth.CurrentSession(c)
	s := config.GetStore()
	notes := database.GradesForTeacher(database.LoadGrades(s), session.User.Username)
	users := database.LoadUsers(s)

	grouped := make(map[string][]*models.Grade)
	names := make(map[string]string)
	for _, n := range notes {
		key := strconv.FormatInt(n.EleveID, 10)
		grouped[key] = append(grouped[key], n)
		if _, ok := names[key]; !ok {
			if eleve := database.FindStudentByID(users, n.EleveID); eleve != nil {
				names[key] = eleve.DisplayName()
			} else {
				names[key] = "Élève #" + key
			}
		}
	}

	return c.JSON(fiber.Map{
		"notesParEleve": grouped,
		"eleves":        names,
		"count":         len(notes),
	})
}

func CreateGradeAPI(c *fiber.Ctx) error {
	session := auth.CurrentSession(c)

	var req GradeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Requête invalide"})
	}
	if err := validation.Validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": validation.Message(err)})
	}

	note := &models.Grade{
		EleveID: req.EleveID,
		Matiere: req.Matiere,
		Devoir:  req.Devoir,
		Note:    req.Note,
		ProfID:  session.User.Username,
	}
	if err := database.CreateGrade(config.GetStore(), note); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Élève introuvable"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Échec de l'ajout de la note"})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Note ajoutée avec succès", "note": note})
}

func DeleteGradeAPI(c *fiber.Ctx) error {
	session := auth.CurrentSession(c)
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Identifiant invalide"})
	}

	for _, n := range database.LoadGrades(config.GetStore()) {
		if n.ID == int64(id) && n.ProfID != session.User.Username {
			return c.Status(404).JSON(fiber.Map{"error": "Note introuvable"})
		}
	}

	if err := database.DeleteGrade(config.GetStore(), int64(id)); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Note introuvable"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Échec de la suppression de la note"})
	}

	return c.JSON(fiber.Map{"message": "Note supprimée"})
}
