package auth

import (
	"strings"

	"ecole-portail/app/config"
	"ecole-portail/app/database"
	"ecole-portail/app/models"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/api/auth")

	auth.Post("/login", LoginAPI)
	auth.Post("/logout", LogoutAPI)
	auth.Get("/session", AuthMiddleware, SessionAPI)
}

// DashboardPath maps a role to its dashboard prefix.
func DashboardPath(role models.Role) string {
	switch role {
	case models.RoleAdmin:
		return "/api/admin"
	case models.RoleProf:
		return "/api/prof"
	default:
		return "/api/eleve"
	}
}

// AuthMiddleware validates the session token and checks that the persisted
// session record still exists. The record is the authority: logging out
// invalidates every previously issued token.
func AuthMiddleware(c *fiber.Ctx) error {
	var tokenString string

	tokenString = c.Cookies(SessionCookie)
	if tokenString == "" {
		header := c.Get("Authorization")
		if strings.HasPrefix(header, "Bearer ") {
			tokenString = strings.TrimPrefix(header, "Bearer ")
		}
	}

	if tokenString == "" {
		return c.Status(401).JSON(fiber.Map{"error": "Non connecté"})
	}

	claims, err := ValidateToken(tokenString)
	if err != nil {
		return c.Status(401).JSON(fiber.Map{"error": "Session invalide"})
	}

	session := database.LoadSession(config.GetStore())
	if session == nil || session.Type != claims.Role || session.User.Username != claims.Username {
		return c.Status(401).JSON(fiber.Map{"error": "Session expirée"})
	}

	c.Locals("session", session)
	c.Locals("role", session.Type)
	c.Locals("username", session.User.Username)
	return c.Next()
}

// RequireRole guards a dashboard group. A session whose role does not match
// is deleted and the caller is sent back to the anonymous entry page, the
// same way a mismatched dashboard load logs the user out.
func RequireRole(role models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session := c.Locals("session").(*models.Session)
		if session.Type != role {
			database.ClearSession(config.GetStore())
			clearSessionCookie(c)
			return c.Status(403).JSON(fiber.Map{
				"error":    "Accès refusé pour ce rôle",
				"redirect": "/",
			})
		}
		return c.Next()
	}
}

// CurrentSession returns the session stored by AuthMiddleware.
func CurrentSession(c *fiber.Ctx) *models.Session {
	return c.Locals("session").(*models.Session)
}
