package timetable

import (
	"time"

	"swaram-cms/app/config"
	"swaram-cms/app/database"
	"swaram-cms/app/utils"

	"github.com/gofiber/fiber/v2"
)

// GetTimetableAPI returns the weekly grid keyed by start-time slot, then
// day. Empty cells are present so the client renders without guards.
func GetTimetableAPI(c *fiber.Ctx) error {
	academicYear := c.QueryInt("academic_year", utils.AcademicYear(time.Now()))

	grid, err := database.GetTimetableBySlot(config.GetDB(), academicYear)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch timetable"})
	}

	return c.JSON(fiber.Map{"timetable": grid, "academic_year": academicYear})
}
