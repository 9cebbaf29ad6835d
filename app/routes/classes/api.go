package classes

import (
	"database/sql"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"kisima-schools/app/models"
)

var validate = validator.New()

type classRequest struct {
	Name      string  `json:"name" validate:"required"`
	Code      string  `json:"code" validate:"required"`
	TeacherID *string `json:"teacher_id" validate:"omitempty,uuid"`
}

// GetClassesAPI lists all classes with live enrollment counts
func GetClassesAPI(c *fiber.Ctx, db *sql.DB) error {
	classes, err := getClasses(db)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch classes",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"classes": classes,
		"count":   len(classes),
	})
}

// GetClassAPI returns one class
func GetClassAPI(c *fiber.Ctx, db *sql.DB) error {
	class, err := getClassByID(db, c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch class",
		})
	}
	if class == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Class not found",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"class":   class,
	})
}

// CreateClassAPI creates a new class
func CreateClassAPI(c *fiber.Ctx, db *sql.DB) error {
	var req classRequest
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

	class := &models.Class{Name: req.Name, Code: req.Code, TeacherID: req.TeacherID}
	if err := createClass(db, class); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create class",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"class":   class,
	})
}

// UpdateClassAPI updates a class
func UpdateClassAPI(c *fiber.Ctx, db *sql.DB) error {
	var req classRequest
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

	class := &models.Class{ID: c.Params("id"), Name: req.Name, Code: req.Code, TeacherID: req.TeacherID}
	if err := updateClass(db, class); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update class",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"class":   class,
	})
}

// DeleteClassAPI soft deletes a class. Refused while students are enrolled.
func DeleteClassAPI(c *fiber.Ctx, db *sql.DB) error {
	if err := deleteClass(db, c.Params("id")); err != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Class deleted successfully",
	})
}
