package promotions

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"kisima-schools/app/academics"
	"kisima-schools/app/config"
	"kisima-schools/app/database"
	"kisima-schools/app/routes/auth"
)

func newEngine(db *sql.DB) *academics.Engine {
	return academics.NewEngine(
		&database.AssessmentStore{DB: db},
		&database.ReportStore{DB: db},
		&database.MovementStore{DB: db},
		&database.RosterStore{DB: db},
		&database.AttendanceStore{DB: db},
		&database.SettingsStore{DB: db},
		config.GetLog(),
	)
}

// SetupPromotionsRoutes sets up all promotion-related routes
func SetupPromotionsRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/promotions")
	api.Use(auth.AuthMiddleware)

	api.Get("/classes/:classId/terms/:termId/candidates", func(c *fiber.Ctx) error { return GetCandidates(c, db) })
	api.Post("/process", auth.RoleMiddleware("admin", "headteacher"), func(c *fiber.Ctx) error { return ProcessPromotions(c, db) })
	api.Get("/students/:studentId/history", func(c *fiber.Ctx) error { return GetMovementHistory(c, db) })
}
