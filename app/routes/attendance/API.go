package attendance

import (
	"errors"
	"time"

	"ecole-portail/app/config"
	"ecole-portail/app/database"
	"ecole-portail/app/models"
	"ecole-portail/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func currentTeacher(c *fiber.Ctx) (*models.Teacher, *models.Users, error) {
	session := auth.CurrentSession(c)
	users := database.LoadUsers(config.GetStore())
	prof := database.FindTeacherByUsername(users, session.User.Username)
	if prof == nil {
		return nil, nil, database.ErrNotFound
	}
	return prof, users, nil
}

func today() string {
	return time.Now().Format("2006-01-02")
}

// GetAppelAPI returns today's roll call state: either the recorded appel,
// or the roster still to be called.
func GetAppelAPI(c *fiber.Ctx) error {
	prof, users, err := currentTeacher(c)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Professeur introuvable"})
	}

	date := today()
	appels := database.LoadAttendance(config.GetStore())
	if appel := database.AttendanceFor(appels, date, prof.Username); appel != nil {
		return c.JSON(fiber.Map{
			"date":  date,
			"fait":  true,
			"appel": appel,
		})
	}

	roster := database.RosterForTeacher(users, prof)
	type rosterEntry struct {
		ID     int64  `json:"id"`
		Prenom string `json:"prenom"`
		Classe string `json:"classe"`
		Photo  string `json:"photo,omitempty"`
	}
	entries := make([]rosterEntry, 0, len(roster))
	for _, e := range roster {
		entries = append(entries, rosterEntry{
			ID:     e.ID,
			Prenom: e.DisplayName(),
			Classe: database.FormatClasseLabel(e.Classe),
			Photo:  e.Photo,
		})
	}

	return c.JSON(fiber.Map{
		"date":   date,
		"fait":   false,
		"eleves": entries,
	})
}

// SaveAppelAPI records today's roll call. Every roster student must carry a
// status; a second save on the same day is rejected whatever its content.
func SaveAppelAPI(c *fiber.Ctx) error {
	prof, _, err := currentTeacher(c)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Professeur introuvable"})
	}

	type request struct {
		Statuses map[int64]models.AttendanceStatus `json:"statuses"`
	}
	var req request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Requête invalide"})
	}

	if err := database.SaveAttendance(config.GetStore(), prof, today(), req.Statuses); err != nil {
		switch {
		case errors.Is(err, database.ErrAppelExists):
			return c.Status(409).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, database.ErrAppelIncomplete):
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		default:
			return c.Status(500).JSON(fiber.Map{"error": "Échec de l'enregistrement de l'appel"})
		}
	}

	return c.Status(201).JSON(fiber.Map{"message": "Appel enregistré avec succès"})
}

// ScanAPI resolves a decoded QR payload to a roster student so the caller
// can mark them present. Decoding the image happens client-side; only the
// resulting text reaches this endpoint.
func ScanAPI(c *fiber.Ctx) error {
	prof, users, err := currentTeacher(c)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Professeur introuvable"})
	}

	type request struct {
		Payload string `json:"payload"`
	}
	var req request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Requête invalide"})
	}

	roster := database.RosterForTeacher(users, prof)
	eleve := database.ResolveQRPayload(roster, req.Payload)
	if eleve == nil {
		return c.Status(404).JSON(fiber.Map{"error": "Élève introuvable"})
	}

	return c.JSON(fiber.Map{
		"message": "Présence enregistrée",
		"eleve": fiber.Map{
			"id":     eleve.ID,
			"prenom": eleve.DisplayName(),
			"classe": database.FormatClasseLabel(eleve.Classe),
		},
		"status": models.Present,
	})
}

// GetHistoryAPI lists the teacher's past roll calls, newest first.
func GetHistoryAPI(c *fiber.Ctx) error {
	prof, _, err := currentTeacher(c)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Professeur introuvable"})
	}

	appels := database.LoadAttendance(config.GetStore())
	var own []*models.AttendanceRecord
	for i := len(appels) - 1; i >= 0; i-- {
		if appels[i].ProfID == prof.Username {
			own = append(own, appels[i])
		}
	}

	return c.JSON(fiber.Map{
		"appels": own,
		"count":  len(own),
	})
}
