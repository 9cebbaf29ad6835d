package database

import (
	"database/sql"
	"fmt"
)

// RosterStore answers class membership questions for the academics engine.
type RosterStore struct {
	DB *sql.DB
}

func (s *RosterStore) ClassRoster(classID string) ([]string, error) {
	query := `
		SELECT id FROM students
		WHERE class_id = $1 AND is_active = true AND deleted_at IS NULL
		ORDER BY first_name, last_name
	`

	rows, err := s.DB.Query(query, classID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch class roster: %w", err)
	}
	defer rows.Close()

	var studentIDs []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan student id: %w", err)
		}
		studentIDs = append(studentIDs, id)
	}
	return studentIDs, rows.Err()
}

func (s *RosterStore) ClassExists(classID string) (bool, error) {
	var exists bool
	err := s.DB.QueryRow(
		`SELECT EXISTS (SELECT 1 FROM classes WHERE id = $1 AND deleted_at IS NULL)`,
		classID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check class: %w", err)
	}
	return exists, nil
}

func (s *RosterStore) StudentClass(studentID string) (string, error) {
	var classID sql.NullString
	err := s.DB.QueryRow(
		`SELECT class_id FROM students WHERE id = $1 AND deleted_at IS NULL`,
		studentID,
	).Scan(&classID)
	if err == sql.ErrNoRows {
		return "", fmt.Errorf("student %s not found", studentID)
	}
	if err != nil {
		return "", fmt.Errorf("failed to fetch student class: %w", err)
	}
	if !classID.Valid {
		return "", nil
	}
	return classID.String, nil
}

func (s *RosterStore) UpdateStudentClass(studentID, classID string) error {
	result, err := s.DB.Exec(
		`UPDATE students SET class_id = $2, updated_at = now() WHERE id = $1 AND deleted_at IS NULL`,
		studentID, classID,
	)
	if err != nil {
		return fmt.Errorf("update student class: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("student %s not found", studentID)
	}
	return nil
}
