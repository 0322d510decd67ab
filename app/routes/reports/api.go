package reports

import (
	"time"

	"swaram-cms/app/config"
	"swaram-cms/app/database"
	"swaram-cms/app/ledger"

	"github.com/gofiber/fiber/v2"
)

// GetFeeReportAPI returns the registration and course fee metric cards.
func GetFeeReportAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	regRows, err := database.GetRegistrationRows(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch registration fees"})
	}
	instRows, err := database.GetInstallmentRows(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch installments"})
	}

	report := ledger.ComputeFeeReport(regRows, instRows, time.Now())
	return c.JSON(fiber.Map{"report": report})
}

// GetMonthlyTrendAPI returns the June-to-May collection trend for the chart.
func GetMonthlyTrendAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	regRows, err := database.GetRegistrationRows(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch registration fees"})
	}
	instRows, err := database.GetInstallmentRows(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch installments"})
	}

	trend := ledger.MonthlyTrend(regRows, instRows)
	return c.JSON(fiber.Map{"trend": trend})
}

// GetPendingInstallmentsAPI lists overdue installments with student and
// course context, plus the paid percentage across all installments.
func GetPendingInstallmentsAPI(c *fiber.Ctx) error {
	rows, err := database.GetPendingInstallmentRows(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch pending installments"})
	}

	result := ledger.PendingInstallments(rows, time.Now())
	return c.JSON(result)
}

// GetPendingRegistrationsAPI lists students whose registration fee is unpaid.
func GetPendingRegistrationsAPI(c *fiber.Ctx) error {
	rows, err := database.GetPendingRegistrationRows(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch pending registrations"})
	}

	result := ledger.PendingRegistrations(rows)
	return c.JSON(result)
}
