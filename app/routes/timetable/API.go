package timetable

import (
	"ecole-portail/app/config"
	"ecole-portail/app/database"
	"ecole-portail/app/models"
	"ecole-portail/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

// GetTimetableAPI returns the teacher's own grid, empty slots omitted.
func GetTimetableAPI(c *fiber.Ctx) error {
	session := auth.CurrentSession(c)
	return c.JSON(fiber.Map{
		"emploiDuTemps": database.TimetableForTeacher(config.GetStore(), session.User.Username),
		"jours":         models.TimetableDays,
		"heures":        models.TimetableHours,
	})
}

// SaveTimetableAPI rewrites the teacher's whole grid. Slots outside the
// known days and hours are dropped silently, matching the fixed editor
// grid.
func SaveTimetableAPI(c *fiber.Ctx) error {
	session := auth.CurrentSession(c)

	type request struct {
		EmploiDuTemps models.Timetable `json:"emploiDuTemps"`
	}
	var req request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Requête invalide"})
	}

	if err := database.SaveTimetable(config.GetStore(), session.User.Username, req.EmploiDuTemps); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Échec de l'enregistrement de l'emploi du temps"})
	}

	return c.JSON(fiber.Map{"message": "Emploi du temps enregistré avec succès"})
}
