package timetable

import (
	"ecole-portail/app/models"
	"ecole-portail/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupTimetableRoutes(app *fiber.App) {
	api := app.Group("/api/prof/emploi-du-temps")
	api.Use(auth.AuthMiddleware, auth.RequireRole(models.RoleProf))
	api.Get("/", GetTimetableAPI)
	api.Put("/", SaveTimetableAPI)
}
