package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/sirupsen/logrus"

	"kisima-schools/app/config"
	"kisima-schools/app/database"
	"kisima-schools/app/routes/academic"
	"kisima-schools/app/routes/assessments"
	"kisima-schools/app/routes/attendance"
	"kisima-schools/app/routes/auth"
	"kisima-schools/app/routes/classes"
	"kisima-schools/app/routes/promotions"
	"kisima-schools/app/routes/reports"
	"kisima-schools/app/routes/settings"
	"kisima-schools/app/routes/students"
	"kisima-schools/app/routes/subjects"
)

// customErrorHandler keeps every error response in the same JSON envelope
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
		"code":    code,
	})
}

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if err := config.Init(log); err != nil {
		log.WithError(err).Fatal("startup failed")
	}
	defer config.GetDB().Close()

	if err := database.RunMigrations(config.GetDB(), log); err != nil {
		log.WithError(err).Fatal("failed to run migrations")
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
	})

	app.Use(logger.New())
	app.Use(cors.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	db := config.GetDB()
	auth.SetupAuthRoutes(app)
	students.SetupStudentsRoutes(app, db)
	classes.SetupClassesRoutes(app, db)
	subjects.SetupSubjectsRoutes(app, db)
	academic.SetupAcademicRoutes(app, db)
	assessments.SetupAssessmentsRoutes(app, db)
	attendance.SetupAttendanceRoutes(app, db)
	reports.SetupReportsRoutes(app, db)
	promotions.SetupPromotionsRoutes(app, db)
	settings.SetupSettingsRoutes(app, db)

	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Not found")
	})

	log.Infof("Server starting on :%s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
