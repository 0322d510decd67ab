package batches

import (
	"database/sql"
	"time"

	"swaram-cms/app/config"
	"swaram-cms/app/database"
	"swaram-cms/app/models"
	"swaram-cms/app/utils"

	"github.com/gofiber/fiber/v2"
)

func GetBatchesAPI(c *fiber.Ctx) error {
	academicYear := c.QueryInt("academic_year", utils.AcademicYear(time.Now()))

	batches, err := database.GetBatchesByAcademicYear(config.GetDB(), academicYear)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch batches"})
	}

	return c.JSON(fiber.Map{
		"batches":       batches,
		"count":         len(batches),
		"academic_year": academicYear,
	})
}

func GetBatchByIDAPI(c *fiber.Ctx) error {
	batch, err := database.GetBatchByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Batch not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch batch"})
	}

	return c.JSON(fiber.Map{"batch": batch})
}

// CreateBatchRequest carries the batch with its course assignments and
// weekly schedule, written together in one transaction.
type CreateBatchRequest struct {
	Batch       models.Batch              `json:"batch" validate:"required"`
	YearCourses []*models.BatchYearCourse `json:"year_courses" validate:"dive"`
	Schedules   []*models.BatchSchedule   `json:"schedules" validate:"dive"`
}

func CreateBatchAPI(c *fiber.Ctx) error {
	var req CreateBatchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if fields := utils.ValidateStruct(&req.Batch); fields != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "fields": fields})
	}
	for _, schedule := range req.Schedules {
		if _, _, err := utils.ParseClock(schedule.StartTime); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid start time: " + schedule.StartTime})
		}
		if _, _, err := utils.ParseClock(schedule.EndTime); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid end time: " + schedule.EndTime})
		}
	}

	err := database.CreateBatchWithDetails(config.GetDB(), &req.Batch, req.YearCourses, req.Schedules)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create batch"})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Batch created successfully", "batch": req.Batch})
}

func UpdateBatchAPI(c *fiber.Ctx) error {
	var batch models.Batch
	if err := c.BodyParser(&batch); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	batch.ID = c.Params("id")
	if fields := utils.ValidateStruct(&batch); fields != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "fields": fields})
	}

	if err := database.UpdateBatch(config.GetDB(), &batch); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Batch not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update batch"})
	}

	return c.JSON(fiber.Map{"message": "Batch updated successfully", "batch": batch})
}

func ReplaceYearCoursesAPI(c *fiber.Ctx) error {
	type YearCoursesRequest struct {
		YearCourses []*models.BatchYearCourse `json:"year_courses" validate:"dive"`
	}

	var req YearCoursesRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	if err := database.ReplaceBatchYearCourses(config.GetDB(), c.Params("id"), req.YearCourses); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save batch courses"})
	}

	return c.JSON(fiber.Map{"message": "Batch courses saved successfully"})
}

func ReplaceSchedulesAPI(c *fiber.Ctx) error {
	type SchedulesRequest struct {
		Schedules []*models.BatchSchedule `json:"schedules" validate:"dive"`
	}

	var req SchedulesRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	for _, schedule := range req.Schedules {
		if _, _, err := utils.ParseClock(schedule.StartTime); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid start time: " + schedule.StartTime})
		}
		if _, _, err := utils.ParseClock(schedule.EndTime); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid end time: " + schedule.EndTime})
		}
	}

	if err := database.ReplaceBatchSchedules(config.GetDB(), c.Params("id"), req.Schedules); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save batch schedules"})
	}

	return c.JSON(fiber.Map{"message": "Batch schedules saved successfully"})
}

func DeleteBatchAPI(c *fiber.Ctx) error {
	if err := database.DeleteBatch(config.GetDB(), c.Params("id")); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Batch not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete batch"})
	}

	return c.JSON(fiber.Map{"message": "Batch deleted successfully"})
}
