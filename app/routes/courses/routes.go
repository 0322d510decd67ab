package courses

import (
	"swaram-cms/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupCoursesRoutes(app *fiber.App) {
	api := app.Group("/api/courses")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetCoursesAPI)
	api.Get("/:id", GetCourseByIDAPI)
	api.Post("/", CreateCourseAPI)
	api.Put("/:id", UpdateCourseAPI)
	api.Delete("/:id", DeleteCourseAPI)
	api.Put("/:id/fees", UpsertFeeStructuresAPI) // Per-year fee amounts
}
