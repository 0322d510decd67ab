package reports

import (
	"swaram-cms/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupReportsRoutes(app *fiber.App) {
	api := app.Group("/api/reports")
	api.Use(auth.AuthMiddleware)

	api.Get("/fees", GetFeeReportAPI)
	api.Get("/fees/trend", GetMonthlyTrendAPI)
	api.Get("/pending/installments", GetPendingInstallmentsAPI)
	api.Get("/pending/registrations", GetPendingRegistrationsAPI)
}
