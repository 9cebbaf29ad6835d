package academics

import (
	"errors"
	"fmt"

	"kisima-schools/app/models"
)

// ListCandidates computes advisory promotion recommendations for every
// student with a term report in the class. Read-only: nothing is mutated.
// Students without grading data default to RETAIN; an ungraded student is
// never silently promoted.
func (e *Engine) ListCandidates(classID, termID string) ([]*models.PromotionCandidate, error) {
	threshold, err := e.Settings.PassThreshold()
	if err != nil {
		return nil, fmt.Errorf("load pass threshold: %w", err)
	}

	reports, err := e.Reports.ForClassTerm(classID, termID)
	if err != nil {
		return nil, fmt.Errorf("load reports for class %s: %w", classID, err)
	}

	candidates := make([]*models.PromotionCandidate, 0, len(reports))
	for _, r := range reports {
		c := &models.PromotionCandidate{
			StudentID:    r.StudentID,
			AverageScore: r.AverageScore,
		}
		if r.Student != nil {
			c.StudentName = r.Student.FirstName + " " + r.Student.LastName
		}
		switch {
		case r.GradedSubjects == 0:
			c.Recommended = models.ActionRetain
			c.Reason = "Insufficient grading data"
		case r.AverageScore >= threshold:
			c.Recommended = models.ActionPromote
			c.Reason = fmt.Sprintf("Average %.1f%% meets pass mark of %.0f%%", r.AverageScore, threshold)
		default:
			c.Recommended = models.ActionRetain
			c.Reason = fmt.Sprintf("Average %.1f%% below pass mark of %.0f%%", r.AverageScore, threshold)
		}
		candidates = append(candidates, c)
	}
	return candidates, nil
}

// ProcessPromotions executes a batch of human promotion decisions. Each
// decision is an independent unit of work: a movement record is appended and
// the student's class assignment updated, and one failure never rolls back
// or blocks the others. Promotion day is a supervised sequential operation;
// partial success beats a full-class-blocking error.
func (e *Engine) ProcessPromotions(decisions []*models.PromotionDecision, termID, changedBy string) []models.PromotionOutcome {
	outcomes := make([]models.PromotionOutcome, 0, len(decisions))
	succeeded := 0
	for _, d := range decisions {
		out := models.PromotionOutcome{StudentID: d.StudentID}
		movement, err := e.applyDecision(d, termID, changedBy)
		if err != nil {
			out.Error = err.Error()
			e.Log.WithError(err).WithFields(map[string]interface{}{
				"student_id": d.StudentID,
				"term_id":    termID,
			}).Warn("promotion decision failed")
		} else {
			out.Success = true
			out.MovementID = movement.ID
			succeeded++
		}
		outcomes = append(outcomes, out)
	}

	e.Log.WithField("term_id", termID).Infof("processed %d of %d promotion decisions", succeeded, len(decisions))
	return outcomes
}

func (e *Engine) applyDecision(d *models.PromotionDecision, termID, changedBy string) (*models.ClassMovement, error) {
	if d.Action != models.ActionPromote && d.Action != models.ActionRetain {
		return nil, fmt.Errorf("unknown action %q", d.Action)
	}

	ok, err := e.Roster.ClassExists(d.TargetClassID)
	if err != nil {
		return nil, fmt.Errorf("check target class: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("target class %s not found", d.TargetClassID)
	}

	if !d.Force {
		exists, err := e.Movements.ExistsForTerm(d.StudentID, termID)
		if err != nil {
			return nil, fmt.Errorf("check existing movements: %w", err)
		}
		if exists {
			return nil, ErrMovementConflict
		}
	}

	movement := &models.ClassMovement{
		StudentID: d.StudentID,
		ToClassID: d.TargetClassID,
		TermID:    termID,
		Reason:    d.Reason,
		ChangedBy: changedBy,
	}
	fromClass, err := e.Roster.StudentClass(d.StudentID)
	if err != nil {
		return nil, fmt.Errorf("resolve current class: %w", err)
	}
	if fromClass != "" {
		movement.FromClassID = &fromClass
	}

	if err := e.Movements.Record(movement); err != nil {
		return nil, fmt.Errorf("record class movement: %w", err)
	}
	if err := e.Roster.UpdateStudentClass(d.StudentID, d.TargetClassID); err != nil {
		return nil, fmt.Errorf("update class assignment: %w", err)
	}
	return movement, nil
}

// MovementHistory returns the append-only audit trail for one student.
func (e *Engine) MovementHistory(studentID string) ([]*models.ClassMovement, error) {
	history, err := e.Movements.HistoryForStudent(studentID)
	if err != nil {
		return nil, fmt.Errorf("load movement history: %w", err)
	}
	return history, nil
}

// IsConflict reports whether err is the duplicate-movement guard firing.
func IsConflict(err error) bool {
	return errors.Is(err, ErrMovementConflict)
}
