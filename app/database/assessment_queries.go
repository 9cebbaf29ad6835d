package database

import (
	"database/sql"
	"fmt"

	"kisima-schools/app/models"
)

// AssessmentStore reads raw graded scores for the academics engine. Max
// marks and weight come from the owning assessment row so a re-weighted
// assessment is reflected on the next regeneration.
type AssessmentStore struct {
	DB *sql.DB
}

func (s *AssessmentStore) ResultsForStudent(studentID, termID string) ([]*models.AssessmentResult, error) {
	query := `
		SELECT
			r.id, r.assessment_id, r.student_id, r.subject_id, r.term_id,
			r.score, a.max_marks, a.weight, r.created_at, r.updated_at
		FROM assessment_results r
		JOIN assessments a ON r.assessment_id = a.id
		WHERE r.student_id = $1 AND r.term_id = $2
			AND r.deleted_at IS NULL AND a.deleted_at IS NULL
		ORDER BY r.subject_id, r.created_at
	`

	rows, err := s.DB.Query(query, studentID, termID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch assessment results: %w", err)
	}
	defer rows.Close()

	var results []*models.AssessmentResult
	for rows.Next() {
		var r models.AssessmentResult
		err := rows.Scan(
			&r.ID, &r.AssessmentID, &r.StudentID, &r.SubjectID, &r.TermID,
			&r.Score, &r.MaxMarks, &r.Weight, &r.CreatedAt, &r.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan assessment result: %w", err)
		}
		results = append(results, &r)
	}
	return results, rows.Err()
}
