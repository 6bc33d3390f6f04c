package admins

import (
	"errors"

	"ecole-portail/app/config"
	"ecole-portail/app/database"
	"ecole-portail/app/models"
	"ecole-portail/app/validation"

	"github.com/gofiber/fiber/v2"
)

// AdminRequest is the create/update payload for an admin record.
type AdminRequest struct {
	Name     string `json:"name" validate:"required"`
	Username string `json:"username" validate:"required"`
	Password string `json:"password"`
}

func GetAdminsAPI(c *fiber.Ctx) error {
	users := database.LoadUsers(config.GetStore())
	return c.JSON(fiber.Map{
		"admins": users.Admins,
		"count":  len(users.Admins),
	})
}

func CreateAdminAPI(c *fiber.Ctx) error {
	var req AdminRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Requête invalide"})
	}
	if err := validation.Validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": validation.Message(err)})
	}
	if req.Password == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Veuillez remplir tous les champs obligatoires"})
	}

	admin := &models.Admin{
		Name:     req.Name,
		Username: req.Username,
		Password: req.Password,
	}
	if err := database.CreateAdmin(config.GetStore(), admin); err != nil {
		if errors.Is(err, database.ErrUsernameTaken) {
			return c.Status(409).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Échec de la création de l'administrateur"})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Administrateur créé avec succès", "admin": admin})
}

func UpdateAdminAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Identifiant invalide"})
	}

	var req AdminRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Requête invalide"})
	}
	if err := validation.Validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": validation.Message(err)})
	}

	updated := &models.Admin{
		Name:     req.Name,
		Username: req.Username,
		Password: req.Password,
	}
	if err := database.UpdateAdmin(config.GetStore(), int64(id), updated); err != nil {
		switch {
		case errors.Is(err, database.ErrNotFound):
			return c.Status(404).JSON(fiber.Map{"error": "Administrateur introuvable"})
		case errors.Is(err, database.ErrUsernameTaken):
			return c.Status(409).JSON(fiber.Map{"error": err.Error()})
		default:
			return c.Status(500).JSON(fiber.Map{"error": "Échec de la modification de l'administrateur"})
		}
	}

	return c.JSON(fiber.Map{"message": "Administrateur modifié avec succès"})
}

// DeleteAdminAPI refuses to remove the last remaining admin.
func DeleteAdminAPI(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Identifiant invalide"})
	}

	if err := database.DeleteAdmin(config.GetStore(), int64(id)); err != nil {
		switch {
		case errors.Is(err, database.ErrLastAdmin):
			return c.Status(409).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, database.ErrNotFound):
			return c.Status(404).JSON(fiber.Map{"error": "Administrateur introuvable"})
		default:
			return c.Status(500).JSON(fiber.Map{"error": "Échec de la suppression de l'administrateur"})
		}
	}

	return c.JSON(fiber.Map{"message": "Administrateur supprimé"})
}
