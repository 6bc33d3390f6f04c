package students

import (
	"ecole-portail/app/models"
	"ecole-portail/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupStudentsRoutes(app *fiber.App) {
	// Admin management of the student list
	api := app.Group("/api/admin/eleves")
	api.Use(auth.AuthMiddleware, auth.RequireRole(models.RoleAdmin))
	api.Get("/", GetStudentsAPI)
	api.Post("/", CreateStudentAPI)
	api.Put("/:id", UpdateStudentAPI)
	api.Delete("/:id", DeleteStudentAPI)

	// Student dashboard
	eleve := app.Group("/api/eleve")
	eleve.Use(auth.AuthMiddleware, auth.RequireRole(models.RoleEleve))
	eleve.Get("/profil", GetProfilAPI)
	eleve.Get("/devoirs", GetStudentAssignmentsAPI)
	eleve.Get("/notes", GetStudentGradesAPI)
	eleve.Get("/emploi-du-temps", GetStudentTimetableAPI)
}
