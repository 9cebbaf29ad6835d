package subjects

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"kisima-schools/app/models"
)

func getSubjects(db *sql.DB) ([]*models.Subject, error) {
	query := `
		SELECT id, name, code, is_active, created_at, updated_at
		FROM subjects
		WHERE deleted_at IS NULL
		ORDER BY name
	`

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch subjects: %w", err)
	}
	defer rows.Close()

	var subjects []*models.Subject
	for rows.Next() {
		var s models.Subject
		err := rows.Scan(&s.ID, &s.Name, &s.Code, &s.IsActive, &s.CreatedAt, &s.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan subject: %w", err)
		}
		subjects = append(subjects, &s)
	}
	return subjects, rows.Err()
}

func createSubject(db *sql.DB, s *models.Subject) error {
	s.ID = uuid.New().String()
	err := db.QueryRow(
		`INSERT INTO subjects (id, name, code) VALUES ($1, $2, $3)
		 RETURNING created_at, updated_at, is_active`,
		s.ID, s.Name, s.Code,
	).Scan(&s.CreatedAt, &s.UpdatedAt, &s.IsActive)
	if err != nil {
		return fmt.Errorf("create subject: %w", err)
	}
	return nil
}

func updateSubject(db *sql.DB, s *models.Subject) error {
	result, err := db.Exec(
		`UPDATE subjects SET name = $2, code = $3, updated_at = now() WHERE id = $1 AND deleted_at IS NULL`,
		s.ID, s.Name, s.Code,
	)
	if err != nil {
		return fmt.Errorf("update subject: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("subject %s not found", s.ID)
	}
	return nil
}

func deleteSubject(db *sql.DB, subjectID string) error {
	result, err := db.Exec(
		`UPDATE subjects SET deleted_at = now(), is_active = false WHERE id = $1 AND deleted_at IS NULL`,
		subjectID,
	)
	if err != nil {
		return fmt.Errorf("delete subject: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("subject %s not found", subjectID)
	}
	return nil
}
