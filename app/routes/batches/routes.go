package batches

import (
	"swaram-cms/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupBatchesRoutes(app *fiber.App) {
	api := app.Group("/api/batches")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetBatchesAPI) // ?academic_year=2026, defaults to the current one
	api.Get("/:id", GetBatchByIDAPI)
	api.Post("/", CreateBatchAPI)
	api.Put("/:id", UpdateBatchAPI)
	api.Put("/:id/courses", ReplaceYearCoursesAPI)
	api.Put("/:id/schedules", ReplaceSchedulesAPI)
	api.Delete("/:id", DeleteBatchAPI)
}
