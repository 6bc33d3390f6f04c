package classes

import (
	"errors"

	"ecole-portail/app/config"
	"ecole-portail/app/database"
	"ecole-portail/app/models"
	"ecole-portail/app/routes/auth"
	"ecole-portail/app/validation"

	"github.com/gofiber/fiber/v2"
)

// GetClassesAPI returns the teacher's class groupings with student counts.
func GetClassesAPI(c *fiber.Ctx) error {
	session := auth.CurrentSession(c)
	users := database.LoadUsers(config.GetStore())
	prof := database.FindTeacherByUsername(users, session.User.Username)
	if prof == nil {
		return c.Status(404).JSON(fiber.Map{"error": "Professeur introuvable"})
	}

	type classGroup struct {
		Classe string `json:"classe"`
		Label  string `json:"label"`
		Count  int    `json:"count"`
	}
	resolved := database.ResolveTeacherClasses(prof, users.Eleves)
	groups := make([]classGroup, 0, len(resolved))
	for _, classe := range resolved {
		groups = append(groups, classGroup{
			Classe: classe,
			Label:  database.FormatClasseLabel(classe),
			Count:  len(database.StudentsInClass(users.Eleves, classe)),
		})
	}

	return c.JSON(fiber.Map{"classes": groups})
}

// GetClassRosterAPI lists the students of one class, matched on the
// normalized label. An unknown label is not an error: it renders empty.
func GetClassRosterAPI(c *fiber.Ctx) error {
	classe := c.Params("classe")
	users := database.LoadUsers(config.GetStore())
	eleves := database.StudentsInClass(users.Eleves, classe)
	return c.JSON(fiber.Map{
		"classe": database.FormatClasseLabel(classe),
		"eleves": eleves,
		"count":  len(eleves),
	})
}

// CreateStudentAPI lets a teacher register a student directly from the
// class-management tab. Same rules as the admin path.
func CreateStudentAPI(c *fiber.Ctx) error {
	type request struct {
		Prenom   string `json:"prenom" validate:"required"`
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
		Classe   string `json:"classe"`
	}

	var req request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Requête invalide"})
	}
	if err := validation.Validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": validation.Message(err)})
	}

	eleve := &models.Student{
		Prenom:   req.Prenom,
		Username: req.Username,
		Password: req.Password,
		Classe:   req.Classe,
	}
	if err := database.CreateStudent(config.GetStore(), eleve); err != nil {
		if errors.Is(err, database.ErrUsernameTaken) {
			return c.Status(409).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Échec de la création de l'élève"})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Élève créé avec succès", "eleve": eleve})
}

// AssignClassAPI moves a student into a class.
func AssignClassAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Identifiant invalide"})
	}

	type request struct {
		Classe string `json:"classe" validate:"required"`
	}
	var req request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Requête invalide"})
	}
	if err := validation.Validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": validation.Message(err)})
	}

	if err := setStudentClass(int64(id), req.Classe); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Élève introuvable"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Échec de la modification"})
	}
	return c.JSON(fiber.Map{"message": "Élève ajouté à la classe " + database.NormalizeClasse(req.Classe)})
}

// RemoveFromClassAPI clears a student's class label. The record stays and
// shows up as unassigned.
func RemoveFromClassAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Identifiant invalide"})
	}

	if err := setStudentClass(int64(id), ""); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Élève introuvable"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Échec de la modification"})
	}
	return c.JSON(fiber.Map{"message": "Élève retiré de la classe"})
}

func setStudentClass(id int64, classe string) error {
	s := config.GetStore()
	users := database.LoadUsers(s)
	eleve := database.FindStudentByID(users, id)
	if eleve == nil {
		return database.ErrNotFound
	}
	eleve.Classe = database.NormalizeClasse(classe)
	return database.SaveUsers(s, users)
}
