package assessments

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"kisima-schools/app/routes/auth"
)

// SetupAssessmentsRoutes sets up all assessment and score entry routes
func SetupAssessmentsRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/assessments")
	api.Use(auth.AuthMiddleware)
	api.Get("/", func(c *fiber.Ctx) error { return GetAssessmentsAPI(c, db) })
	api.Post("/", func(c *fiber.Ctx) error { return CreateAssessmentAPI(c, db) })
	api.Get("/:id", func(c *fiber.Ctx) error { return GetAssessmentAPI(c, db) })
	api.Put("/:id", func(c *fiber.Ctx) error { return UpdateAssessmentAPI(c, db) })
	api.Delete("/:id", func(c *fiber.Ctx) error { return DeleteAssessmentAPI(c, db) })

	resultsAPI := app.Group("/api/results")
	resultsAPI.Use(auth.AuthMiddleware)
	resultsAPI.Post("/batch", func(c *fiber.Ctx) error { return BatchSaveResultsAPI(c, db) })
	resultsAPI.Put("/:id", func(c *fiber.Ctx) error { return UpdateSingleResultAPI(c, db) })
	resultsAPI.Get("/student/:id", func(c *fiber.Ctx) error { return GetStudentResultsAPI(c, db) })
}
