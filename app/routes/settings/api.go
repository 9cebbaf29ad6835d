package settings

import (
	"database/sql"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"kisima-schools/app/database"
	"kisima-schools/app/models"
)

var validate = validator.New()

type gradeBandRequest struct {
	Label    string  `json:"label" validate:"required"`
	MinScore float64 `json:"min_score" validate:"gte=0,lte=100"`
	MaxScore float64 `json:"max_score" validate:"gte=0,lte=100,gtefield=MinScore"`
	GPAPoint float64 `json:"gpa_point" validate:"gte=0"`
	Remark   string  `json:"remark"`
}

// GetGradeBandsAPI returns the active grading scale
func GetGradeBandsAPI(c *fiber.Ctx, db *sql.DB) error {
	store := &database.SettingsStore{DB: db}
	bands, err := store.GradeBands()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch grade bands",
		})
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"grade_bands": bands,
	})
}

// CreateGradeBandAPI adds one band to the grading scale
func CreateGradeBandAPI(c *fiber.Ctx, db *sql.DB) error {
	var req gradeBandRequest
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

	band := &models.GradeBand{
		Label:    req.Label,
		MinScore: req.MinScore,
		MaxScore: req.MaxScore,
		GPAPoint: req.GPAPoint,
		Remark:   req.Remark,
	}
	store := &database.SettingsStore{DB: db}
	if err := store.CreateGradeBand(band); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create grade band",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":    true,
		"grade_band": band,
	})
}

// UpdateGradeBandAPI updates one band of the grading scale
func UpdateGradeBandAPI(c *fiber.Ctx, db *sql.DB) error {
	var req gradeBandRequest
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

	band := &models.GradeBand{
		ID:       c.Params("id"),
		Label:    req.Label,
		MinScore: req.MinScore,
		MaxScore: req.MaxScore,
		GPAPoint: req.GPAPoint,
		Remark:   req.Remark,
	}
	store := &database.SettingsStore{DB: db}
	if err := store.UpdateGradeBand(band); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update grade band",
		})
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"grade_band": band,
	})
}

// DeleteGradeBandAPI soft deletes a band from the grading scale
func DeleteGradeBandAPI(c *fiber.Ctx, db *sql.DB) error {
	store := &database.SettingsStore{DB: db}
	if err := store.DeleteGradeBand(c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete grade band",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Grade band deleted successfully",
	})
}

// GetPassThresholdAPI returns the promotion pass mark
func GetPassThresholdAPI(c *fiber.Ctx, db *sql.DB) error {
	store := &database.SettingsStore{DB: db}
	threshold, err := store.PassThreshold()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch pass threshold",
		})
	}

	return c.JSON(fiber.Map{
		"success":        true,
		"pass_threshold": threshold,
	})
}

// SetPassThresholdAPI updates the promotion pass mark
func SetPassThresholdAPI(c *fiber.Ctx, db *sql.DB) error {
	var req struct {
		PassThreshold float64 `json:"pass_threshold" validate:"gte=0,lte=100"`
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

	store := &database.SettingsStore{DB: db}
	if err := store.SetPassThreshold(req.PassThreshold); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update pass threshold",
		})
	}

	return c.JSON(fiber.Map{
		"success":        true,
		"pass_threshold": req.PassThreshold,
	})
}
