package attendance

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"kisima-schools/app/routes/auth"
)

// SetupAttendanceRoutes sets up all attendance-related routes
func SetupAttendanceRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/attendance")
	api.Use(auth.AuthMiddleware)

	api.Post("/batch", func(c *fiber.Ctx) error { return BatchMarkAttendanceAPI(c, db) })
	api.Get("/classes/:classId", func(c *fiber.Ctx) error { return GetClassAttendanceAPI(c, db) })
	api.Get("/students/:studentId/terms/:termId/summary", func(c *fiber.Ctx) error { return GetStudentSummaryAPI(c, db) })
}
