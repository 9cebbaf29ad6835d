package classes

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"kisima-schools/app/routes/auth"
)

// SetupClassesRoutes sets up all class-related routes
func SetupClassesRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/classes")
	api.Use(auth.AuthMiddleware)
	api.Get("/", func(c *fiber.Ctx) error { return GetClassesAPI(c, db) })
	api.Post("/", auth.RoleMiddleware("admin", "headteacher"), func(c *fiber.Ctx) error { return CreateClassAPI(c, db) })
	api.Get("/:id", func(c *fiber.Ctx) error { return GetClassAPI(c, db) })
	api.Put("/:id", auth.RoleMiddleware("admin", "headteacher"), func(c *fiber.Ctx) error { return UpdateClassAPI(c, db) })
	api.Delete("/:id", auth.RoleMiddleware("admin", "headteacher"), func(c *fiber.Ctx) error { return DeleteClassAPI(c, db) })
}
