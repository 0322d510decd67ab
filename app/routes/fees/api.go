package fees

import (
	"database/sql"
	"time"

	"swaram-cms/app/config"
	"swaram-cms/app/database"
	"swaram-cms/app/ledger"
	"swaram-cms/app/models"
	"swaram-cms/app/utils"

	"github.com/gofiber/fiber/v2"
)

// GetFeeOverviewAPI returns a student's fee summaries, registration fee and
// the combined overview list sorted newest first.
func GetFeeOverviewAPI(c *fiber.Ctx) error {
	studentID := c.Params("studentID")
	db := config.GetDB()

	summaries, err := database.GetFeeSummariesByStudent(db, studentID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch fee summaries"})
	}

	registration, err := database.GetRegistrationFeeByStudent(db, studentID)
	if err != nil && err != sql.ErrNoRows {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch registration fee"})
	}

	summaryRows := make([]ledger.OverviewSummaryRow, 0, len(summaries))
	for _, s := range summaries {
		row := ledger.OverviewSummaryRow{
			YearNumber: s.YearNumber,
			FinalFees:  s.FinalFees,
			CreatedAt:  s.CreatedAt,
		}
		if s.Course != nil {
			name := s.Course.Name
			row.CourseName = &name
		}
		summaryRows = append(summaryRows, row)
	}

	var regRows []ledger.OverviewRegistrationRow
	if registration != nil {
		regRows = append(regRows, ledger.OverviewRegistrationRow{
			Amount:    registration.Amount,
			CreatedAt: registration.CreatedAt,
		})
	}

	return c.JSON(fiber.Map{
		"summaries":        summaries,
		"registration_fee": registration,
		"overview":         ledger.FeeOverview(summaryRows, regRows, time.Now()),
	})
}

func GetPaymentScheduleAPI(c *fiber.Ctx) error {
	entries, err := database.GetPaymentSchedule(config.GetDB(), c.Params("studentID"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch payment schedule"})
	}

	return c.JSON(fiber.Map{"schedule": entries, "count": len(entries)})
}

// GetPaymentHistoryAPI reconstructs the student's completed payments from
// installment receipts and the registration receipt, newest first.
func GetPaymentHistoryAPI(c *fiber.Ctx) error {
	studentID := c.Params("studentID")
	db := config.GetDB()

	summaries, err := database.GetHistorySummaries(db, studentID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch payment history"})
	}

	registration, err := database.GetRegistrationPayment(db, studentID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch registration payment"})
	}

	history := ledger.PaymentHistory(summaries, registration)
	return c.JSON(fiber.Map{"history": history, "count": len(history)})
}

func GetInstallmentsAPI(c *fiber.Ctx) error {
	installments, err := database.GetInstallmentsBySummary(config.GetDB(), c.Params("summaryID"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch installments"})
	}

	return c.JSON(fiber.Map{"installments": installments, "count": len(installments)})
}

// PaymentRequest is the body of both payment endpoints.
type PaymentRequest struct {
	Payee           string               `json:"payee" validate:"required"`
	Amount          float64              `json:"amount" validate:"required,gt=0"`
	PaymentDate     time.Time            `json:"payment_date" validate:"required"`
	PaymentMethod   models.PaymentMethod `json:"payment_method" validate:"required,oneof=Cash Cheque UPI"`
	ReferenceNumber *string              `json:"reference_number,omitempty"`
}

func parsePaymentRequest(c *fiber.Ctx) (*database.PaymentInput, error) {
	var req PaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if fields := utils.ValidateStruct(&req); fields != nil {
		return nil, c.Status(400).JSON(fiber.Map{"error": "Validation failed", "fields": fields})
	}

	return &database.PaymentInput{
		Payee:           req.Payee,
		Amount:          req.Amount,
		PaymentDate:     req.PaymentDate,
		PaymentMethod:   req.PaymentMethod,
		ReferenceNumber: req.ReferenceNumber,
	}, nil
}

func paymentErrorResponse(c *fiber.Ctx, err error) error {
	switch err {
	case database.ErrReferenceRequired:
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	case database.ErrAlreadyPaid:
		return c.Status(409).JSON(fiber.Map{"error": err.Error()})
	case sql.ErrNoRows:
		return c.Status(404).JSON(fiber.Map{"error": "Payment target not found"})
	default:
		return c.Status(500).JSON(fiber.Map{"error": "Failed to record payment"})
	}
}

// PayInstallmentAPI records an installment payment. The receipt insert and
// the installment update commit together.
func PayInstallmentAPI(c *fiber.Ctx) error {
	input, err := parsePaymentRequest(c)
	if input == nil {
		return err
	}

	receipt, err := database.RecordInstallmentPayment(config.GetDB(), c.Params("id"), input)
	if err != nil {
		return paymentErrorResponse(c, err)
	}

	return c.Status(201).JSON(fiber.Map{"message": "Payment recorded successfully", "receipt": receipt})
}

// PayRegistrationAPI records the student's registration fee payment.
func PayRegistrationAPI(c *fiber.Ctx) error {
	input, err := parsePaymentRequest(c)
	if input == nil {
		return err
	}

	registration, err := database.GetRegistrationFeeByStudent(config.GetDB(), c.Params("studentID"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Registration fee not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch registration fee"})
	}

	receipt, err := database.RecordRegistrationPayment(config.GetDB(), registration.ID, input)
	if err != nil {
		return paymentErrorResponse(c, err)
	}

	return c.Status(201).JSON(fiber.Map{"message": "Payment recorded successfully", "receipt": receipt})
}

func ApplyDiscountAPI(c *fiber.Ctx) error {
	type DiscountRequest struct {
		Discount float64 `json:"discount" validate:"gte=0"`
	}

	var req DiscountRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if fields := utils.ValidateStruct(&req); fields != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "fields": fields})
	}

	err := database.ApplyDiscount(config.GetDB(), c.Params("summaryID"), req.Discount)
	if err != nil {
		switch err {
		case database.ErrDiscountExceedsTotal:
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		case sql.ErrNoRows:
			return c.Status(404).JSON(fiber.Map{"error": "Fee summary not found"})
		default:
			return c.Status(500).JSON(fiber.Map{"error": "Failed to apply discount"})
		}
	}

	return c.JSON(fiber.Map{"message": "Discount applied successfully"})
}

func CancelSummaryAPI(c *fiber.Ctx) error {
	err := database.CancelFeeSummary(config.GetDB(), c.Params("summaryID"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Fee summary not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to cancel fee summary"})
	}

	return c.JSON(fiber.Map{"message": "Fee summary cancelled"})
}
