package assessments

import (
	"database/sql"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"kisima-schools/app/database"
	"kisima-schools/app/models"
)

var validate = validator.New()

// GetAssessmentsAPI lists assessments for a class and term
func GetAssessmentsAPI(c *fiber.Ctx, db *sql.DB) error {
	classID := c.Query("class_id")
	termID := c.Query("term_id")
	if classID == "" || termID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "class_id and term_id are required",
		})
	}

	assessments, err := getAssessmentsByClassTerm(db, classID, termID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch assessments",
		})
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"assessments": assessments,
	})
}

// GetAssessmentAPI returns one assessment with its results
func GetAssessmentAPI(c *fiber.Ctx, db *sql.DB) error {
	assessment, err := getAssessmentByID(db, c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch assessment",
		})
	}
	if assessment == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Assessment not found",
		})
	}

	results, err := getResultsForAssessment(db, assessment.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch results",
		})
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"assessment": assessment,
		"results":    results,
	})
}

// CreateAssessmentAPI creates a new gradable event
func CreateAssessmentAPI(c *fiber.Ctx, db *sql.DB) error {
	var req struct {
		Name      string                `json:"name" validate:"required"`
		SubjectID string                `json:"subject_id" validate:"required,uuid"`
		ClassID   string                `json:"class_id" validate:"required,uuid"`
		TermID    string                `json:"term_id" validate:"required,uuid"`
		Kind      models.AssessmentKind `json:"kind" validate:"required,oneof=exam quiz homework project"`
		MaxMarks  float64               `json:"max_marks" validate:"required,gt=0"`
		Weight    float64               `json:"weight" validate:"gte=0,lte=100"`
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

	assessment := &models.Assessment{
		Name:      req.Name,
		SubjectID: req.SubjectID,
		ClassID:   req.ClassID,
		TermID:    req.TermID,
		Kind:      req.Kind,
		MaxMarks:  req.MaxMarks,
		Weight:    req.Weight,
	}
	if err := createAssessment(db, assessment); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create assessment",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":    true,
		"assessment": assessment,
	})
}

// UpdateAssessmentAPI updates an assessment's descriptive fields
func UpdateAssessmentAPI(c *fiber.Ctx, db *sql.DB) error {
	var req struct {
		Name     string                `json:"name" validate:"required"`
		Kind     models.AssessmentKind `json:"kind" validate:"required,oneof=exam quiz homework project"`
		MaxMarks float64               `json:"max_marks" validate:"required,gt=0"`
		Weight   float64               `json:"weight" validate:"gte=0,lte=100"`
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

	assessment := &models.Assessment{
		ID:       c.Params("id"),
		Name:     req.Name,
		Kind:     req.Kind,
		MaxMarks: req.MaxMarks,
		Weight:   req.Weight,
	}
	if err := updateAssessment(db, assessment); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update assessment",
		})
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"assessment": assessment,
	})
}

// DeleteAssessmentAPI soft deletes an assessment
func DeleteAssessmentAPI(c *fiber.Ctx, db *sql.DB) error {
	if err := deleteAssessment(db, c.Params("id")); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete assessment",
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Assessment deleted successfully",
	})
}

// BatchSaveResultsAPI handles batch create/update of scores for one
// assessment. Every score is validated against the assessment's max marks
// before anything is written.
func BatchSaveResultsAPI(c *fiber.Ctx, db *sql.DB) error {
	var req struct {
		AssessmentID string `json:"assessment_id"`
		Results      []struct {
			StudentID string  `json:"student_id"`
			Score     float64 `json:"score"`
		} `json:"results"`
	}

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if req.AssessmentID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "assessment_id is required",
		})
	}

	assessment, err := getAssessmentByID(db, req.AssessmentID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch assessment",
		})
	}
	if assessment == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Assessment not found",
		})
	}

	scores := make(map[string]float64, len(req.Results))
	for _, r := range req.Results {
		if r.Score < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Scores cannot be negative",
			})
		}
		if r.Score > assessment.MaxMarks {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Score %.2f exceeds max marks %.2f", r.Score, assessment.MaxMarks),
			})
		}
		scores[r.StudentID] = r.Score
	}

	if err := batchSaveResults(db, assessment, scores); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save results",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Results saved successfully",
		"count":   len(scores),
	})
}

// UpdateSingleResultAPI updates one student's score on an assessment
func UpdateSingleResultAPI(c *fiber.Ctx, db *sql.DB) error {
	resultID := c.Params("id")

	var req struct {
		Score float64 `json:"score"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}
	if req.Score < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Scores cannot be negative",
		})
	}

	existing, err := getResultByID(db, resultID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch result",
		})
	}
	if existing == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Result not found",
		})
	}
	if req.Score > existing.MaxMarks {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Score %.2f exceeds max marks %.2f", req.Score, existing.MaxMarks),
		})
	}

	if err := updateSingleResult(db, resultID, req.Score); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update result",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Result updated successfully",
	})
}

// GetStudentResultsAPI returns a student's raw scores for one term
func GetStudentResultsAPI(c *fiber.Ctx, db *sql.DB) error {
	studentID := c.Params("id")
	termID := c.Query("term_id")
	if termID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "term_id is required",
		})
	}

	store := &database.AssessmentStore{DB: db}
	results, err := store.ResultsForStudent(studentID, termID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch results",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"results": results,
	})
}
