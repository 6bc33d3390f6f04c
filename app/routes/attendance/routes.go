package attendance

import (
	"ecole-portail/app/models"
	"ecole-portail/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAttendanceRoutes(app *fiber.App) {
	api := app.Group("/api/prof/appel")
	api.Use(auth.AuthMiddleware, auth.RequireRole(models.RoleProf))
	api.Get("/", GetAppelAPI)
	api.Post("/", SaveAppelAPI)
	api.Post("/scan", ScanAPI)
	api.Get("/historique", GetHistoryAPI)
}
