package subjects

import (
	"database/sql"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"kisima-schools/app/models"
)

var validate = validator.New()

type subjectRequest struct {
	Name string `json:"name" validate:"required"`
	Code string `json:"code" validate:"required"`
}

// GetSubjectsAPI lists all subjects
func GetSubjectsAPI(c *fiber.Ctx, db *sql.DB) error {
	subjects, err := getSubjects(db)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch subjects",
		})
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"subjects": subjects,
		"count":    len(subjects),
	})
}

// CreateSubjectAPI creates a new subject
func CreateSubjectAPI(c *fiber.Ctx, db *sql.DB) error {
	var req subjectRequest
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

	subject := &models.Subject{Name: req.Name, Code: req.Code}
	if err := createSubject(db, subject); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create subject",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"subject": subject,
	})
}

// UpdateSubjectAPI updates a subject
func UpdateSubjectAPI(c *fiber.Ctx, db *sql.DB) error {
	var req subjectRequest
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

	subject := &models.Subject{ID: c.Params("id"), Name: req.Name, Code: req.Code}
	if err := updateSubject(db, subject); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update subject",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"subject": subject,
	})
}

// DeleteSubjectAPI soft deletes a subject
func DeleteSubjectAPI(c *fiber.Ctx, db *sql.DB) error {
	if err := deleteSubject(db, c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete subject",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Subject deleted successfully",
	})
}
