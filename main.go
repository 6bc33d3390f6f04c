package main

import (
	"log"

	"ecole-portail/app/config"
	"ecole-portail/app/database"
	"ecole-portail/app/routes/admins"
	"ecole-portail/app/routes/assignments"
	"ecole-portail/app/routes/attendance"
	"ecole-portail/app/routes/auth"
	"ecole-portail/app/routes/classes"
	"ecole-portail/app/routes/dashboard"
	"ecole-portail/app/routes/grades"
	"ecole-portail/app/routes/qrcodes"
	"ecole-portail/app/routes/students"
	"ecole-portail/app/routes/teachers"
	"ecole-portail/app/routes/timetable"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// customErrorHandler keeps every failure as a JSON payload; nothing in
// this application is fatal to the caller.
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}

func main() {
	// Initialize the record store
	config.Init()
	defer config.GetStore().Close()

	// Seed default accounts and migrate legacy records
	if err := database.RunMigrations(config.GetStore()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Setup auth routes
	auth.SetupAuthRoutes(app)

	// Setup dashboard routes
	dashboard.SetupDashboardRoutes(app)

	// Setup students routes
	students.SetupStudentsRoutes(app)

	// Setup teachers routes
	teachers.SetupTeachersRoutes(app)

	// Setup admins routes
	admins.SetupAdminsRoutes(app)

	// Setup assignments routes
	assignments.SetupAssignmentsRoutes(app)

	// Setup grades routes
	grades.SetupGradesRoutes(app)

	// Setup classes routes
	classes.SetupClassesRoutes(app)

	// Setup timetable routes
	timetable.SetupTimetableRoutes(app)

	// Setup attendance routes
	attendance.SetupAttendanceRoutes(app)

	// Setup QR code routes
	qrcodes.SetupQRCodesRoutes(app)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Page not found")
	})

	// Start server
	log.Println("Server starting on", config.AppConfig.Addr)
	log.Fatal(app.Listen(config.AppConfig.Addr))
}
