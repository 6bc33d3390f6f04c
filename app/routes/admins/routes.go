package admins

import (
	"ecole-portail/app/models"
	"ecole-portail/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAdminsRoutes(app *fiber.App) {
	api := app.Group("/api/admin/admins")
	api.Use(auth.AuthMiddleware, auth.RequireRole(models.RoleAdmin))
	api.Get("/", GetAdminsAPI)
	api.Post("/", CreateAdminAPI)
	api.Put("/:id", UpdateAdminAPI)
	api.Delete("/:id", DeleteAdminAPI)
}
