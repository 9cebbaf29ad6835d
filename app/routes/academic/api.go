package academic

import (
	"database/sql"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"kisima-schools/app/models"
)

var validate = validator.New()

// GetAcademicYearsAPI lists academic years, newest first
func GetAcademicYearsAPI(c *fiber.Ctx, db *sql.DB) error {
	years, err := getAcademicYears(db)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch academic years",
		})
	}

	return c.JSON(fiber.Map{
		"success":        true,
		"academic_years": years,
	})
}

// CreateAcademicYearAPI creates a new academic year
func CreateAcademicYearAPI(c *fiber.Ctx, db *sql.DB) error {
	var year models.AcademicYear
	if err := c.BodyParser(&year); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if year.Name == "" || year.StartDate.IsZero() || year.EndDate.IsZero() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "name, start_date and end_date are required",
		})
	}

	if err := createAcademicYear(db, &year); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create academic year",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":       true,
		"academic_year": year,
	})
}

// GetTermsAPI lists terms, optionally scoped to one academic year
func GetTermsAPI(c *fiber.Ctx, db *sql.DB) error {
	terms, err := getTerms(db, c.Query("academic_year_id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch terms",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"terms":   terms,
	})
}

// CreateTermAPI creates a new term within an academic year
func CreateTermAPI(c *fiber.Ctx, db *sql.DB) error {
	var req struct {
		AcademicYearID string            `json:"academic_year_id" validate:"required,uuid"`
		Name           string            `json:"name" validate:"required"`
		StartDate      models.CustomDate `json:"start_date"`
		EndDate        models.CustomDate `json:"end_date"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "start_date and end_date are required",
		})
	}

	term := &models.Term{
		AcademicYearID: req.AcademicYearID,
		Name:           req.Name,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
	}
	if err := createTerm(db, term); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create term",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"term":    term,
	})
}

// SetCurrentTermAPI marks a term as the school's current term
func SetCurrentTermAPI(c *fiber.Ctx, db *sql.DB) error {
	if err := setCurrentTerm(db, c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Current term updated",
	})
}
