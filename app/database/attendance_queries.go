package database

import (
	"database/sql"
	"fmt"

	"kisima-schools/app/models"
)

// AttendanceStore rolls attendance records up into the per-term summary
// shown on report cards. Late counts as present; the summary is
// informational and never feeds averages or ranks.
type AttendanceStore struct {
	DB *sql.DB
}

func (s *AttendanceStore) Summary(studentID, termID string) (*models.AttendanceSummary, error) {
	query := `
		SELECT
			COUNT(*) FILTER (WHERE status IN ('present', 'late')) AS present,
			COUNT(*) AS total_days
		FROM attendance
		WHERE student_id = $1 AND term_id = $2
	`

	var summary models.AttendanceSummary
	err := s.DB.QueryRow(query, studentID, termID).Scan(&summary.Present, &summary.TotalDays)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch attendance summary: %w", err)
	}
	return &summary, nil
}
