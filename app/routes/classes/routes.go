package classes

import (
	"ecole-portail/app/models"
	"ecole-portail/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupClassesRoutes(app *fiber.App) {
	api := app.Group("/api/prof")
	api.Use(auth.AuthMiddleware, auth.RequireRole(models.RoleProf))
	api.Get("/classes", GetClassesAPI)
	api.Get("/classes/:classe", GetClassRosterAPI)
	api.Post("/eleves", CreateStudentAPI)
	api.Put("/eleves/:id/classe", AssignClassAPI)
	api.Delete("/eleves/:id/classe", RemoveFromClassAPI)
}
