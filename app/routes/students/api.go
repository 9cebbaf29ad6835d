package students

import (
	"database/sql"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"kisima-schools/app/models"
)

var validate = validator.New()

// GetStudentsAPI lists students, optionally filtered by class or search text
func GetStudentsAPI(c *fiber.Ctx, db *sql.DB) error {
	filters := StudentFilters{
		Search:  c.Query("search"),
		ClassID: c.Query("class_id"),
		Limit:   c.QueryInt("limit", 0),
		Offset:  c.QueryInt("offset", 0),
	}

	students, total, err := getStudents(db, filters)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch students",
		})
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"students":    students,
		"count":       len(students),
		"total_count": total,
	})
}

// GetStudentAPI returns one student with their class
func GetStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	student, err := getStudentByID(db, c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch student",
		})
	}
	if student == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Student not found",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"student": student,
	})
}

type studentRequest struct {
	StudentNumber string        `json:"student_number" validate:"required"`
	FirstName     string        `json:"first_name" validate:"required"`
	LastName      string        `json:"last_name" validate:"required"`
	Gender        models.Gender `json:"gender" validate:"omitempty,oneof=male female other"`
	ClassID       *string       `json:"class_id" validate:"omitempty,uuid"`
}

// CreateStudentAPI enrolls a new student
func CreateStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	var req studentRequest
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

	student := &models.Student{
		StudentNumber: req.StudentNumber,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Gender:        req.Gender,
		ClassID:       req.ClassID,
	}
	if err := createStudent(db, student); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create student",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"student": student,
	})
}

// UpdateStudentAPI updates a student's details. Class assignment is not
// editable here; it only changes through promotion processing so the
// movement audit trail stays complete.
func UpdateStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	var req struct {
		StudentNumber string        `json:"student_number" validate:"required"`
		FirstName     string        `json:"first_name" validate:"required"`
		LastName      string        `json:"last_name" validate:"required"`
		Gender        models.Gender `json:"gender" validate:"omitempty,oneof=male female other"`
		IsActive      *bool         `json:"is_active"`
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

	existing, err := getStudentByID(db, c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch student",
		})
	}
	if existing == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Student not found",
		})
	}

	existing.StudentNumber = req.StudentNumber
	existing.FirstName = req.FirstName
	existing.LastName = req.LastName
	existing.Gender = req.Gender
	if req.IsActive != nil {
		existing.IsActive = *req.IsActive
	}
	if err := updateStudent(db, existing); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update student",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"student": existing,
	})
}

// DeleteStudentAPI soft deletes a student
func DeleteStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	if err := deleteStudent(db, c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete student",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Student deleted successfully",
	})
}
