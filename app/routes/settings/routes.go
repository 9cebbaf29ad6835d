package settings

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"kisima-schools/app/routes/auth"
)

// SetupSettingsRoutes sets up grading configuration routes
func SetupSettingsRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/settings")
	api.Use(auth.AuthMiddleware)

	api.Get("/grade-bands", func(c *fiber.Ctx) error { return GetGradeBandsAPI(c, db) })
	api.Post("/grade-bands", auth.RoleMiddleware("admin", "headteacher"), func(c *fiber.Ctx) error { return CreateGradeBandAPI(c, db) })
	api.Put("/grade-bands/:id", auth.RoleMiddleware("admin", "headteacher"), func(c *fiber.Ctx) error { return UpdateGradeBandAPI(c, db) })
	api.Delete("/grade-bands/:id", auth.RoleMiddleware("admin", "headteacher"), func(c *fiber.Ctx) error { return DeleteGradeBandAPI(c, db) })

	api.Get("/pass-threshold", func(c *fiber.Ctx) error { return GetPassThresholdAPI(c, db) })
	api.Put("/pass-threshold", auth.RoleMiddleware("admin", "headteacher"), func(c *fiber.Ctx) error { return SetPassThresholdAPI(c, db) })
}
