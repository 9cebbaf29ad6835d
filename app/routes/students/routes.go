package students

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"kisima-schools/app/routes/auth"
)

// SetupStudentsRoutes sets up all student-related routes
func SetupStudentsRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/students")
	api.Use(auth.AuthMiddleware)
	api.Get("/", func(c *fiber.Ctx) error { return GetStudentsAPI(c, db) })
	api.Post("/", func(c *fiber.Ctx) error { return CreateStudentAPI(c, db) })
	api.Get("/:id", func(c *fiber.Ctx) error { return GetStudentAPI(c, db) })
	api.Put("/:id", func(c *fiber.Ctx) error { return UpdateStudentAPI(c, db) })
	api.Delete("/:id", auth.RoleMiddleware("admin", "headteacher"), func(c *fiber.Ctx) error { return DeleteStudentAPI(c, db) })
}
