package main

import (
	"log"
	"time"

	"swaram-cms/app/config"
	"swaram-cms/app/database"
	"swaram-cms/app/routes/auth"
	"swaram-cms/app/routes/batches"
	"swaram-cms/app/routes/courses"
	"swaram-cms/app/routes/dashboard"
	"swaram-cms/app/routes/enrollments"
	"swaram-cms/app/routes/fees"
	"swaram-cms/app/routes/receipts"
	"swaram-cms/app/routes/reports"
	"swaram-cms/app/routes/students"
	"swaram-cms/app/routes/timetable"
	"swaram-cms/app/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
		"code":    code,
	})
}

func main() {
	// Set global time zone to India Standard Time
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		log.Printf("Warning: Failed to load Asia/Kolkata location, falling back to UTC+5:30: %v", err)
		time.Local = time.FixedZone("IST", 5*60*60+30*60)
	} else {
		time.Local = loc
	}
	log.Printf("Application time zone set to: %s", time.Local.String())

	// Initialize database
	config.InitDB()
	defer config.GetDB().Close()

	// Run database migrations
	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Connect to object storage for avatars and admission forms
	if err := storage.Init(config.GetStorageConfig()); err != nil {
		log.Fatal("Failed to initialize object storage:", err)
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: errorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Routes
	auth.SetupAuthRoutes(app)
	dashboard.SetupDashboardRoutes(app)
	students.SetupStudentsRoutes(app)
	courses.SetupCoursesRoutes(app)
	batches.SetupBatchesRoutes(app)
	enrollments.SetupEnrollmentsRoutes(app)
	fees.SetupFeesRoutes(app)
	reports.SetupReportsRoutes(app)
	receipts.SetupReceiptsRoutes(app)
	timetable.SetupTimetableRoutes(app)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Resource not found")
	})

	// Start server
	log.Println("Server starting on :8080")
	log.Fatal(app.Listen(":8080"))
}
