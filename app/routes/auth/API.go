package auth

import (
	"time"

	"ecole-portail/app/config"
	"ecole-portail/app/database"
	"ecole-portail/app/models"

	"github.com/gofiber/fiber/v2"
)

func LoginAPI(c *fiber.Ctx) error {
	type LoginRequest struct {
		Type     models.Role `json:"type"`
		Username string      `json:"username"`
		Password string      `json:"password"`
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Requête invalide"})
	}
	if req.Username == "" || req.Password == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Veuillez remplir tous les champs"})
	}
	switch req.Type {
	case models.RoleAdmin, models.RoleProf, models.RoleEleve:
	default:
		return c.Status(400).JSON(fiber.Map{"error": "Rôle inconnu"})
	}

	user, err := database.Authenticate(config.GetStore(), req.Type, req.Username, req.Password)
	if err != nil {
		// No session is written on failure; the caller keeps the username
		// and retries with a fresh password.
		return c.Status(401).JSON(fiber.Map{"error": "Identifiant ou mot de passe incorrect"})
	}

	session, err := database.OpenSession(config.GetStore(), req.Type, user)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Erreur lors de la connexion"})
	}

	token, err := GenerateToken(session)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Erreur lors de la connexion"})
	}

	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    token,
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return c.JSON(fiber.Map{
		"message":  "Connexion réussie",
		"user":     session.User,
		"type":     session.Type,
		"redirect": DashboardPath(session.Type),
	})
}

func LogoutAPI(c *fiber.Ctx) error {
	database.ClearSession(config.GetStore())
	clearSessionCookie(c)
	return c.JSON(fiber.Map{"message": "Déconnecté", "redirect": "/"})
}

// SessionAPI returns the active session so a dashboard can display the
// connected user.
func SessionAPI(c *fiber.Ctx) error {
	session := CurrentSession(c)
	return c.JSON(fiber.Map{
		"type":      session.Type,
		"user":      session.User,
		"timestamp": session.Timestamp,
	})
}

func clearSessionCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})
}
