package enrollments

import (
	"database/sql"

	"swaram-cms/app/config"
	"swaram-cms/app/database"
	"swaram-cms/app/models"
	"swaram-cms/app/utils"

	"github.com/gofiber/fiber/v2"
)

func GetEnrollmentsByStudentAPI(c *fiber.Ctx) error {
	enrollments, err := database.GetEnrollmentsByStudent(config.GetDB(), c.Params("studentID"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch enrollments"})
	}

	return c.JSON(fiber.Map{"enrollments": enrollments, "count": len(enrollments)})
}

// CreateEnrollmentAPI enrolls a student. The fee summary and its
// installment schedule are generated in the same transaction, so an
// enrollment never exists without its ledger header.
func CreateEnrollmentAPI(c *fiber.Ctx) error {
	var enrollment models.Enrollment
	if err := c.BodyParser(&enrollment); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if fields := utils.ValidateStruct(&enrollment); fields != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "fields": fields})
	}

	if err := database.CreateEnrollment(config.GetDB(), &enrollment); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create enrollment"})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Enrollment created successfully", "enrollment": enrollment})
}

func UpdateEnrollmentAPI(c *fiber.Ctx) error {
	var enrollment models.Enrollment
	if err := c.BodyParser(&enrollment); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	enrollment.ID = c.Params("id")
	if fields := utils.ValidateStruct(&enrollment); fields != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "fields": fields})
	}

	if err := database.UpdateEnrollment(config.GetDB(), &enrollment); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Enrollment not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update enrollment"})
	}

	return c.JSON(fiber.Map{"message": "Enrollment updated successfully", "enrollment": enrollment})
}

func DeleteEnrollmentAPI(c *fiber.Ctx) error {
	if err := database.DeleteEnrollment(config.GetDB(), c.Params("id")); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Enrollment not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete enrollment"})
	}

	return c.JSON(fiber.Map{"message": "Enrollment deleted successfully"})
}
