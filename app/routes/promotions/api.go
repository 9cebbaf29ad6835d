package promotions

import (
	"database/sql"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"kisima-schools/app/models"
)

var validate = validator.New()

// GetCandidates returns advisory promotion recommendations for a class.
// Purely informational; nothing is persisted until decisions are processed.
func GetCandidates(c *fiber.Ctx, db *sql.DB) error {
	classID := c.Params("classId")
	termID := c.Params("termId")

	candidates, err := newEngine(db).ListCandidates(classID, termID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"candidates": candidates,
		"count":      len(candidates),
	})
}

// ProcessPromotions executes a batch of promotion decisions. Each decision
// stands alone; the response reports per-student outcomes.
func ProcessPromotions(c *fiber.Ctx, db *sql.DB) error {
	var req struct {
		TermID    string                      `json:"term_id" validate:"required,uuid"`
		Decisions []*models.PromotionDecision `json:"decisions" validate:"required,min=1,dive"`
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

	changedBy := c.Locals("user_id").(string)
	outcomes := newEngine(db).ProcessPromotions(req.Decisions, req.TermID, changedBy)

	succeeded := 0
	for _, out := range outcomes {
		if out.Success {
			succeeded++
		}
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"total":     len(outcomes),
		"succeeded": succeeded,
		"failed":    len(outcomes) - succeeded,
		"outcomes":  outcomes,
	})
}

// GetMovementHistory returns a student's class movement audit trail,
// newest first.
func GetMovementHistory(c *fiber.Ctx, db *sql.DB) error {
	studentID := c.Params("studentId")

	history, err := newEngine(db).MovementHistory(studentID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch movement history",
		})
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"movements": history,
		"count":     len(history),
	})
}
