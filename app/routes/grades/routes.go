package grades

import (
	"ecole-portail/app/models"
	"ecole-portail/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupGradesRoutes(app *fiber.App) {
	api := app.Group("/api/prof/notes")
	api.Use(auth.AuthMiddleware, auth.RequireRole(models.RoleProf))
	api.Get("/", GetGradesAPI)
	api.Post("/", CreateGradeAPI)
	api.Delete("/:id", DeleteGradeAPI)
}
