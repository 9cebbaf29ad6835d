package subjects

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"kisima-schools/app/routes/auth"
)

// SetupSubjectsRoutes sets up all subject-related routes
func SetupSubjectsRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/subjects")
	api.Use(auth.AuthMiddleware)
	api.Get("/", func(c *fiber.Ctx) error { return GetSubjectsAPI(c, db) })
	api.Post("/", auth.RoleMiddleware("admin", "headteacher"), func(c *fiber.Ctx) error { return CreateSubjectAPI(c, db) })
	api.Put("/:id", auth.RoleMiddleware("admin", "headteacher"), func(c *fiber.Ctx) error { return UpdateSubjectAPI(c, db) })
	api.Delete("/:id", auth.RoleMiddleware("admin", "headteacher"), func(c *fiber.Ctx) error { return DeleteSubjectAPI(c, db) })
}
