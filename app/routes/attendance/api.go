package attendance

import (
	"database/sql"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"kisima-schools/app/database"
	"kisima-schools/app/models"
)

var validate = validator.New()

// BatchMarkAttendanceAPI records one day's attendance for a class
func BatchMarkAttendanceAPI(c *fiber.Ctx, db *sql.DB) error {
	var req struct {
		ClassID string `json:"class_id" validate:"required,uuid"`
		TermID  string `json:"term_id" validate:"required,uuid"`
		Date    string `json:"date" validate:"required"`
		Records []struct {
			StudentID string                  `json:"student_id" validate:"required,uuid"`
			Status    models.AttendanceStatus `json:"status" validate:"required,oneof=present absent late excused"`
		} `json:"records" validate:"required,min=1,dive"`
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

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "date must be YYYY-MM-DD",
		})
	}

	markedBy := c.Locals("user_id").(string)
	records := make([]*models.Attendance, 0, len(req.Records))
	for _, r := range req.Records {
		records = append(records, &models.Attendance{
			StudentID: r.StudentID,
			ClassID:   &req.ClassID,
			TermID:    req.TermID,
			Date:      date,
			Status:    r.Status,
			MarkedBy:  &markedBy,
		})
	}

	if err := batchMarkAttendance(db, records); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save attendance",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Attendance saved successfully",
		"count":   len(records),
	})
}

// GetClassAttendanceAPI returns one day's attendance records for a class
func GetClassAttendanceAPI(c *fiber.Ctx, db *sql.DB) error {
	classID := c.Params("classId")
	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "date query parameter must be YYYY-MM-DD",
		})
	}

	records, err := getClassAttendanceByDate(db, classID, date)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch attendance",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"records": records,
		"count":   len(records),
	})
}

// GetStudentSummaryAPI returns a student's attendance roll-up for one term,
// the same numbers stamped onto their term report.
func GetStudentSummaryAPI(c *fiber.Ctx, db *sql.DB) error {
	studentID := c.Params("studentId")
	termID := c.Params("termId")

	store := &database.AttendanceStore{DB: db}
	summary, err := store.Summary(studentID, termID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch attendance summary",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"summary": summary,
	})
}
