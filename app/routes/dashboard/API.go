package dashboard

import (
	"ecole-portail/app/config"
	"ecole-portail/app/database"
	"ecole-portail/app/models"
	"ecole-portail/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupDashboardRoutes(app *fiber.App) {
	// Anonymous entry point: an authenticated caller is forwarded to its
	// dashboard instead of seeing the login page again.
	app.Get("/", EntryPoint)

	api := app.Group("/api/admin")
	api.Use(auth.AuthMiddleware, auth.RequireRole(models.RoleAdmin))
	api.Get("/overview", GetOverviewAPI)
}

func EntryPoint(c *fiber.Ctx) error {
	if tokenString := c.Cookies(auth.SessionCookie); tokenString != "" {
		if claims, err := auth.ValidateToken(tokenString); err == nil {
			session := database.LoadSession(config.GetStore())
			if session != nil && session.Type == claims.Role && session.User.Username == claims.Username {
				return c.Redirect(auth.DashboardPath(session.Type))
			}
		}
	}
	return c.JSON(fiber.Map{"message": "Veuillez vous connecter", "login": "/api/auth/login"})
}

// GetOverviewAPI returns the counters of the admin overview tab.
func GetOverviewAPI(c *fiber.Ctx) error {
	return c.JSON(database.GetOverviewStats(config.GetStore()))
}
