package academic

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"kisima-schools/app/routes/auth"
)

// SetupAcademicRoutes sets up academic year and term routes
func SetupAcademicRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/academic")
	api.Use(auth.AuthMiddleware)

	api.Get("/years", func(c *fiber.Ctx) error { return GetAcademicYearsAPI(c, db) })
	api.Post("/years", auth.RoleMiddleware("admin", "headteacher"), func(c *fiber.Ctx) error { return CreateAcademicYearAPI(c, db) })

	api.Get("/terms", func(c *fiber.Ctx) error { return GetTermsAPI(c, db) })
	api.Post("/terms", auth.RoleMiddleware("admin", "headteacher"), func(c *fiber.Ctx) error { return CreateTermAPI(c, db) })
	api.Put("/terms/:id/current", auth.RoleMiddleware("admin", "headteacher"), func(c *fiber.Ctx) error { return SetCurrentTermAPI(c, db) })
}
