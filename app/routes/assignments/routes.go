package assignments

import (
	"ecole-portail/app/models"
	"ecole-portail/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAssignmentsRoutes(app *fiber.App) {
	api := app.Group("/api/prof/devoirs")
	api.Use(auth.AuthMiddleware, auth.RequireRole(models.RoleProf))
	api.Get("/", GetAssignmentsAPI)
	api.Post("/", CreateAssignmentAPI)
	api.Put("/:id", UpdateAssignmentAPI)
	api.Delete("/:id", DeleteAssignmentAPI)
}
