package timetable

import (
	"swaram-cms/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupTimetableRoutes(app *fiber.App) {
	api := app.Group("/api/timetable")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetTimetableAPI) // ?academic_year=2026, defaults to the current one
}
