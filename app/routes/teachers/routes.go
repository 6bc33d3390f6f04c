package teachers

import (
	"ecole-portail/app/models"
	"ecole-portail/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupTeachersRoutes(app *fiber.App) {
	api := app.Group("/api/admin/profs")
	api.Use(auth.AuthMiddleware, auth.RequireRole(models.RoleAdmin))
	api.Get("/", GetTeachersAPI)
	api.Post("/", CreateTeacherAPI)
	api.Put("/:id", UpdateTeacherAPI)
	api.Delete("/:id", DeleteTeacherAPI)
}
