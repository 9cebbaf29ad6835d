package reports

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"kisima-schools/app/academics"
	"kisima-schools/app/config"
	"kisima-schools/app/database"
	"kisima-schools/app/routes/auth"
)

// newEngine wires the academics engine to the SQL-backed stores.
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

// SetupReportsRoutes sets up all report-related routes
func SetupReportsRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/reports")
	api.Use(auth.AuthMiddleware)

	api.Post("/students/:studentId/terms/:termId", func(c *fiber.Ctx) error { return GenerateStudentReport(c, db) })
	api.Get("/students/:studentId/terms/:termId", func(c *fiber.Ctx) error { return GetStudentReport(c, db) })
	api.Put("/students/:studentId/terms/:termId/remarks", func(c *fiber.Ctx) error { return UpdateReportRemarks(c, db) })

	api.Post("/classes/:classId/terms/:termId", func(c *fiber.Ctx) error { return GenerateClassReports(c, db) })
	api.Get("/classes/:classId/terms/:termId", func(c *fiber.Ctx) error { return GetClassBroadsheet(c, db) })
	api.Post("/classes/:classId/terms/:termId/rank", func(c *fiber.Ctx) error { return RankClass(c, db) })
	api.Get("/classes/:classId/terms/:termId/statistics", func(c *fiber.Ctx) error { return GetClassStatistics(c, db) })
}
