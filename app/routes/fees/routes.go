package fees

import (
	"swaram-cms/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupFeesRoutes(app *fiber.App) {
	api := app.Group("/api/fees")
	api.Use(auth.AuthMiddleware)

	// Per-student ledger views
	api.Get("/student/:studentID", GetFeeOverviewAPI)
	api.Get("/student/:studentID/schedule", GetPaymentScheduleAPI)
	api.Get("/student/:studentID/history", GetPaymentHistoryAPI)
	api.Get("/summary/:summaryID/installments", GetInstallmentsAPI)

	// Payments and adjustments
	api.Post("/installments/:id/pay", PayInstallmentAPI)
	api.Post("/registration/:studentID/pay", PayRegistrationAPI)
	api.Put("/summary/:summaryID/discount", ApplyDiscountAPI)
	api.Put("/summary/:summaryID/cancel", CancelSummaryAPI)
}
