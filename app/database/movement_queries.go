package database

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"kisima-schools/app/models"
)

// MovementStore appends to the class movement audit trail. There is
// deliberately no UPDATE or DELETE here; movements are history.
type MovementStore struct {
	DB *sql.DB
}

func (s *MovementStore) Record(movement *models.ClassMovement) error {
	movement.ID = uuid.New().String()
	err := s.DB.QueryRow(
		`INSERT INTO class_movements (id, student_id, from_class_id, to_class_id, term_id, reason, changed_by)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING created_at`,
		movement.ID, movement.StudentID, movement.FromClassID, movement.ToClassID,
		movement.TermID, movement.Reason, movement.ChangedBy,
	).Scan(&movement.CreatedAt)
	if err != nil {
		return fmt.Errorf("record class movement: %w", err)
	}
	return nil
}

func (s *MovementStore) ExistsForTerm(studentID, termID string) (bool, error) {
	var exists bool
	err := s.DB.QueryRow(
		`SELECT EXISTS (SELECT 1 FROM class_movements WHERE student_id = $1 AND term_id = $2)`,
		studentID, termID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check class movements: %w", err)
	}
	return exists, nil
}

func (s *MovementStore) HistoryForStudent(studentID string) ([]*models.ClassMovement, error) {
	query := `
		SELECT id, student_id, from_class_id, to_class_id, term_id, reason, changed_by, created_at
		FROM class_movements
		WHERE student_id = $1
		ORDER BY created_at DESC
	`

	rows, err := s.DB.Query(query, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch movement history: %w", err)
	}
	defer rows.Close()

	var movements []*models.ClassMovement
	for rows.Next() {
		var m models.ClassMovement
		var fromClass sql.NullString
		err := rows.Scan(&m.ID, &m.StudentID, &fromClass, &m.ToClassID, &m.TermID, &m.Reason, &m.ChangedBy, &m.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan class movement: %w", err)
		}
		if fromClass.Valid {
			m.FromClassID = &fromClass.String
		}
		movements = append(movements, &m)
	}
	return movements, rows.Err()
}
