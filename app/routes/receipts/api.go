package receipts

import (
	"database/sql"
	"math"

	"swaram-cms/app/config"
	"swaram-cms/app/database"
	"swaram-cms/app/utils"

	"github.com/gofiber/fiber/v2"
)

// GetReceiptAPI returns one receipt with its resolved description and the
// amount rendered for printing.
func GetReceiptAPI(c *fiber.Ctx) error {
	receipt, err := database.GetReceiptByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Receipt not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch receipt"})
	}

	return c.JSON(fiber.Map{
		"receipt":          receipt,
		"amount_formatted": utils.FormatIndian(receipt.Amount),
		"amount_in_words":  utils.NumberToWords(int64(math.Round(receipt.Amount))),
	})
}

func GetReceiptsByStudentAPI(c *fiber.Ctx) error {
	receipts, err := database.GetReceiptsByStudent(config.GetDB(), c.Params("studentID"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch receipts"})
	}

	return c.JSON(fiber.Map{"receipts": receipts, "count": len(receipts)})
}
