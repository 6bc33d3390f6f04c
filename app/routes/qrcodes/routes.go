package qrcodes

import (
	"fmt"
	"net/url"
	"strconv"

	"ecole-portail/app/config"
	"ecole-portail/app/database"
	"ecole-portail/app/models"
	"ecole-portail/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

// qrEndpoint renders a QR PNG for a text payload. It is consumed as a
// black box through this URL template; no image bytes pass through here.
const qrEndpoint = "https://api.qrserver.com/v1/create-qr-code/?size=300x300&data=%s"

func SetupQRCodesRoutes(app *fiber.App) {
	api := app.Group("/api/admin/qrcodes")
	api.Use(auth.AuthMiddleware, auth.RequireRole(models.RoleAdmin))
	api.Get("/", GetQRCodesAPI)
}

// GetQRCodesAPI returns, for every student, the payload encoded in its
// badge and the external image URL to download it from. The payload is the
// stable student id.
func GetQRCodesAPI(c *fiber.Ctx) error {
	users := database.LoadUsers(config.GetStore())

	type qrCode struct {
		EleveID int64  `json:"eleveId"`
		Prenom  string `json:"prenom"`
		Payload string `json:"payload"`
		URL     string `json:"url"`
	}
	codes := make([]qrCode, 0, len(users.Eleves))
	for _, e := range users.Eleves {
		payload := strconv.FormatInt(e.ID, 10)
		codes = append(codes, qrCode{
			EleveID: e.ID,
			Prenom:  e.DisplayName(),
			Payload: payload,
			URL:     fmt.Sprintf(qrEndpoint, url.QueryEscape(payload)),
		})
	}

	return c.JSON(fiber.Map{
		"qrcodes": codes,
		"count":   len(codes),
	})
}
