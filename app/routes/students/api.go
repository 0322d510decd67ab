package students

import (
	"database/sql"
	"encoding/json"
	"log"

	"swaram-cms/app/config"
	"swaram-cms/app/database"
	"swaram-cms/app/models"
	"swaram-cms/app/storage"
	"swaram-cms/app/utils"

	"github.com/gofiber/fiber/v2"
)

func GetStudentsAPI(c *fiber.Ctx) error {
	filters := database.StudentFilters{
		Search:    c.Query("search"),
		Gender:    c.Query("gender"),
		SortBy:    c.Query("sort_by", "gr_no"),
		SortOrder: c.Query("sort_order", "asc"),
		Limit:     c.QueryInt("limit", 20),
		Offset:    c.QueryInt("offset", 0),
	}

	students, totalCount, err := database.GetStudentsWithFilters(config.GetDB(), filters)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch students"})
	}

	return c.JSON(fiber.Map{
		"students":    students,
		"count":       len(students),
		"total_count": totalCount,
	})
}

func GetStudentByIDAPI(c *fiber.Ctx) error {
	student, err := database.GetStudentByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch student"})
	}

	return c.JSON(fiber.Map{"student": student})
}

// CreateStudentRequest is the "data" part of the multipart create form.
type CreateStudentRequest struct {
	Student         models.Student `json:"student" validate:"required"`
	Address         models.Address `json:"address" validate:"required"`
	RegistrationFee float64        `json:"registration_fee" validate:"gte=0"`
}

// CreateStudentAPI admits a student: uploads the avatar when one is
// attached, then writes the address, student and registration fee in one
// transaction. A failed write removes the uploaded avatar again.
func CreateStudentAPI(c *fiber.Ctx) error {
	data := c.FormValue("data")
	if data == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Missing data field"})
	}

	var req CreateStudentRequest
	if err := json.Unmarshal([]byte(data), &req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if fields := utils.ValidateStruct(&req.Student); fields != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "fields": fields})
	}
	if fields := utils.ValidateStruct(&req.Address); fields != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "fields": fields})
	}

	var avatarObject string
	if fileHeader, err := c.FormFile("avatar"); err == nil && fileHeader != nil {
		file, err := fileHeader.Open()
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Failed to read avatar"})
		}
		defer file.Close()

		avatarObject = storage.AvatarObjectName(req.Student.FirstName, req.Student.LastName)
		url, err := storage.Get().Upload(c.Context(), avatarObject, file, fileHeader.Size,
			fileHeader.Header.Get("Content-Type"))
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to upload avatar"})
		}
		req.Student.AvatarURL = &url
	}

	if err := database.CreateStudent(config.GetDB(), &req.Student, &req.Address, req.RegistrationFee); err != nil {
		if avatarObject != "" {
			if rmErr := storage.Get().Remove(c.Context(), avatarObject); rmErr != nil {
				log.Printf("orphaned avatar %s: %v", avatarObject, rmErr)
			}
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create student"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Student created successfully",
		"student": req.Student,
	})
}

func UpdateStudentAPI(c *fiber.Ctx) error {
	var student models.Student
	if err := c.BodyParser(&student); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	student.ID = c.Params("id")
	if fields := utils.ValidateStruct(&student); fields != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "fields": fields})
	}

	if err := database.UpdateStudent(config.GetDB(), &student); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update student"})
	}

	return c.JSON(fiber.Map{"message": "Student updated successfully", "student": student})
}

// DeleteStudentAPI removes the student row (fees, installments, enrollments
// and contacts cascade) and then the avatar object.
func DeleteStudentAPI(c *fiber.Ctx) error {
	id := c.Params("id")

	student, err := database.GetStudentByID(config.GetDB(), id)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch student"})
	}

	if err := database.DeleteStudent(config.GetDB(), id); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete student"})
	}

	if student.AvatarURL != nil {
		if object := storage.ObjectNameFromURL(*student.AvatarURL); object != "" {
			if err := storage.Get().Remove(c.Context(), object); err != nil {
				log.Printf("orphaned avatar %s: %v", object, err)
			}
		}
	}

	return c.JSON(fiber.Map{"message": "Student deleted successfully"})
}

func UpsertAddressAPI(c *fiber.Ctx) error {
	var address models.Address
	if err := c.BodyParser(&address); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if fields := utils.ValidateStruct(&address); fields != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "fields": fields})
	}

	student, err := database.GetStudentByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch student"})
	}
	if student.AddressID != nil {
		address.ID = *student.AddressID
	}

	if err := database.UpsertAddress(config.GetDB(), &address); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save address"})
	}

	return c.JSON(fiber.Map{"message": "Address saved successfully", "address": address})
}

func GetContactsAPI(c *fiber.Ctx) error {
	contacts, err := database.GetStudentContacts(config.GetDB(), c.Params("id"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch contacts"})
	}

	return c.JSON(fiber.Map{"contacts": contacts, "count": len(contacts)})
}

func AddContactAPI(c *fiber.Ctx) error {
	type AddContactRequest struct {
		Contact      models.Contact   `json:"contact" validate:"required"`
		Relationship *models.Relation `json:"relationship,omitempty"`
		Occupation   *string          `json:"occupation,omitempty"`
	}

	var req AddContactRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}
	if fields := utils.ValidateStruct(&req.Contact); fields != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "fields": fields})
	}

	err := database.LinkStudentContact(config.GetDB(), c.Params("id"), &req.Contact, req.Relationship, req.Occupation)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to add contact"})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Contact added successfully", "contact": req.Contact})
}

func RemoveContactAPI(c *fiber.Ctx) error {
	if err := database.UnlinkStudentContact(config.GetDB(), c.Params("linkID")); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Contact link not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to remove contact"})
	}

	return c.JSON(fiber.Map{"message": "Contact removed successfully"})
}
