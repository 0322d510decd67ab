package dashboard

import (
	"time"

	"swaram-cms/app/config"
	"swaram-cms/app/database"
	"swaram-cms/app/ledger"
	"swaram-cms/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupDashboardRoutes(app *fiber.App) {
	api := app.Group("/api/dashboard")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetDashboardAPI)
}

// GetDashboardAPI returns the headline counts plus the fee metric cards in
// one call.
func GetDashboardAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	counts, err := database.GetDashboardCounts(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch dashboard counts"})
	}

	regRows, err := database.GetRegistrationRows(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch registration fees"})
	}
	instRows, err := database.GetInstallmentRows(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch installments"})
	}

	return c.JSON(fiber.Map{
		"counts": counts,
		"fees":   ledger.ComputeFeeReport(regRows, instRows, time.Now()),
	})
}
