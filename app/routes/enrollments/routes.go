package enrollments

import (
	"swaram-cms/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupEnrollmentsRoutes(app *fiber.App) {
	api := app.Group("/api/enrollments")
	api.Use(auth.AuthMiddleware)

	api.Get("/student/:studentID", GetEnrollmentsByStudentAPI)
	api.Post("/", CreateEnrollmentAPI) // Also generates the fee summary and installments
	api.Put("/:id", UpdateEnrollmentAPI)
	api.Delete("/:id", DeleteEnrollmentAPI)
}
