package students

import (
	"errors"

	"ecole-portail/app/config"
	"ecole-portail/app/database"
	"ecole-portail/app/models"
	"ecole-portail/app/routes/auth"
	"ecole-portail/app/validation"

	"github.com/gofiber/fiber/v2"
)

// StudentRequest is the create/update payload for a student record. On
// create, an empty username or password is derived from the first name; on
// update, an empty password keeps the stored one.
type StudentRequest struct {
	Prenom   string `json:"prenom" validate:"required"`
	Username string `json:"username"`
	Password string `json:"password"`
	Classe   string `json:"classe"`
	Photo    string `json:"photo"`
}

func GetStudentsAPI(c *fiber.Ctx) error {
	users := database.LoadUsers(config.GetStore())
	return c.JSON(fiber.Map{
		"eleves": users.Eleves,
		"count":  len(users.Eleves),
	})
}

func CreateStudentAPI(c *fiber.Ctx) error {
	var req StudentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Requête invalide"})
	}
	if err := validation.Validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": validation.Message(err)})
	}
	if req.Username == "" {
		users := database.LoadUsers(config.GetStore())
		req.Username = database.UsernameFromPrenom(users, req.Prenom)
	}
	if req.Password == "" {
		req.Password = database.PasswordFromPrenom(req.Prenom)
	}

	eleve := &models.Student{
		Prenom:   req.Prenom,
		Username: req.Username,
		Password: req.Password,
		Classe:   req.Classe,
		Photo:    req.Photo,
	}
	if err := database.CreateStudent(config.GetStore(), eleve); err != nil {
		if errors.Is(err, database.ErrUsernameTaken) {
			return c.Status(409).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Échec de la création de l'élève"})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Élève créé avec succès", "eleve": eleve})
}

func UpdateStudentAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Identifiant invalide"})
	}

	var req StudentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Requête invalide"})
	}
	if err := validation.Validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": validation.Message(err)})
	}
	if req.Username == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Veuillez remplir tous les champs obligatoires"})
	}

	updated := &models.Student{
		Prenom:   req.Prenom,
		Username: req.Username,
		Password: req.Password,
		Classe:   req.Classe,
		Photo:    req.Photo,
	}
	if err := database.UpdateStudent(config.GetStore(), int64(id), updated); err != nil {
		switch {
		case errors.Is(err, database.ErrNotFound):
			return c.Status(404).JSON(fiber.Map{"error": "Élève introuvable"})
		case errors.Is(err, database.ErrUsernameTaken):
			return c.Status(409).JSON(fiber.Map{"error": err.Error()})
		default:
			return c.Status(500).JSON(fiber.Map{"error": "Échec de la modification de l'élève"})
		}
	}

	return c.JSON(fiber.Map{"message": "Élève modifié avec succès"})
}

func DeleteStudentAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Identifiant invalide"})
	}

	if err := database.DeleteStudent(config.GetStore(), int64(id)); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Élève introuvable"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Échec de la suppression de l'élève"})
	}

	return c.JSON(fiber.Map{"message": "Élève supprimé"})
}

// GetProfilAPI returns the connected student's own record.
func GetProfilAPI(c *fiber.Ctx) error {
	session := auth.CurrentSession(c)
	users := database.LoadUsers(config.GetStore())
	eleve := database.FindStudentByID(users, session.User.ID)
	if eleve == nil {
		return c.Status(404).JSON(fiber.Map{"error": "Élève introuvable"})
	}
	return c.JSON(fiber.Map{
		"prenom":   eleve.DisplayName(),
		"username": eleve.Username,
		"classe":   database.FormatClasseLabel(eleve.Classe),
		"photo":    eleve.Photo,
	})
}

// GetStudentAssignmentsAPI lists the assignments targeting the student's
// class, matched on normalized labels.
func GetStudentAssignmentsAPI(c *fiber.Ctx) error {
	session := auth.CurrentSession(c)
	devoirs := database.AssignmentsForClass(database.LoadAssignments(config.GetStore()), session.User.Classe)
	return c.JSON(fiber.Map{
		"devoirs": devoirs,
		"count":   len(devoirs),
	})
}

// GetStudentGradesAPI returns the student's grades with the overall and
// per-subject averages shown on the dashboard.
func GetStudentGradesAPI(c *fiber.Ctx) error {
	session := auth.CurrentSession(c)
	notes := database.GradesForStudent(database.LoadGrades(config.GetStore()), session.User.ID)

	response := fiber.Map{
		"notes": notes,
		"count": len(notes),
	}
	if moyenne, ok := database.Average(notes); ok {
		response["moyenne"] = moyenne
		response["moyennesParMatiere"] = database.AveragesBySubject(notes)
	}
	return c.JSON(response)
}

// GetStudentTimetableAPI resolves the grid of the first teacher responsible
// for the student's class.
func GetStudentTimetableAPI(c *fiber.Ctx) error {
	session := auth.CurrentSession(c)
	s := config.GetStore()
	users := database.LoadUsers(s)
	return c.JSON(fiber.Map{
		"emploiDuTemps": database.TimetableForStudent(s, users, session.User.Classe),
		"jours":         models.TimetableDays,
		"heures":        models.TimetableHours,
	})
}
