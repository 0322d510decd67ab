package courses

import (
	"database/sql"

	"swaram-cms/app/config"
	"swaram-cms/app/database"
	"swaram-cms/app/models"
	"swaram-cms/app/utils"

	"github.com/gofiber/fiber/v2"
)

func GetCoursesAPI(c *fiber.Ctx) error {
	courses, err := database.GetAllCourses(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch courses"})
	}

	return c.JSON(fiber.Map{"courses": courses, "count": len(courses)})
}

func GetCourseByIDAPI(c *fiber.Ctx) error {
	course, err := database.GetCourseByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Course not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch course"})
	}

	return c.JSON(fiber.Map{"course": course})
}

func CreateCourseAPI(c *fiber.Ctx) error {
	var course models.Course
	if err := c.BodyParser(&course); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if fields := utils.ValidateStruct(&course); fields != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "fields": fields})
	}

	if err := database.CreateCourse(config.GetDB(), &course); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create course"})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Course created successfully", "course": course})
}

func UpdateCourseAPI(c *fiber.Ctx) error {
	var course models.Course
	if err := c.BodyParser(&course); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	course.ID = c.Params("id")
	if fields := utils.ValidateStruct(&course); fields != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "fields": fields})
	}

	if err := database.UpdateCourse(config.GetDB(), &course); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Course not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update course"})
	}

	return c.JSON(fiber.Map{"message": "Course updated successfully", "course": course})
}

func DeleteCourseAPI(c *fiber.Ctx) error {
	if err := database.DeleteCourse(config.GetDB(), c.Params("id")); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Course not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete course"})
	}

	return c.JSON(fiber.Map{"message": "Course deleted successfully"})
}

// UpsertFeeStructuresAPI replaces the per-year fee amounts of a course in
// one transaction.
func UpsertFeeStructuresAPI(c *fiber.Ctx) error {
	type FeeStructuresRequest struct {
		FeeStructures []*models.FeeStructure `json:"fee_structures" validate:"required,min=1,dive"`
	}

	var req FeeStructuresRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	courseID := c.Params("id")
	for _, fs := range req.FeeStructures {
		fs.CourseID = courseID
	}
	if fields := utils.ValidateStruct(&req); fields != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "fields": fields})
	}

	if err := database.UpsertFeeStructures(config.GetDB(), courseID, req.FeeStructures); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save fee structures"})
	}

	return c.JSON(fiber.Map{"message": "Fee structures saved successfully", "fee_structures": req.FeeStructures})
}
