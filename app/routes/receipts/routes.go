package receipts

import (
	"swaram-cms/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupReceiptsRoutes(app *fiber.App) {
	api := app.Group("/api/receipts")
	api.Use(auth.AuthMiddleware)

	api.Get("/student/:studentID", GetReceiptsByStudentAPI)
	api.Get("/:id", GetReceiptAPI)
}
