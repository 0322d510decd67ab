package students

import (
	"swaram-cms/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupStudentsRoutes(app *fiber.App) {
	api := app.Group("/api/students")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetStudentsAPI)    // List with filters (?search=&gender=&sort_by=&limit=&offset=)
	api.Get("/:id", GetStudentByIDAPI)
	api.Post("/", CreateStudentAPI) // Multipart: data (JSON) + optional avatar file
	api.Put("/:id", UpdateStudentAPI)
	api.Delete("/:id", DeleteStudentAPI)

	api.Put("/:id/address", UpsertAddressAPI)
	api.Get("/:id/contacts", GetContactsAPI)
	api.Post("/:id/contacts", AddContactAPI)
	api.Delete("/contacts/:linkID", RemoveContactAPI)
}
