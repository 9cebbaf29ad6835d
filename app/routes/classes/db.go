package classes

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"kisima-schools/app/models"
)

func getClasses(db *sql.DB) ([]*models.Class, error) {
	query := `
		SELECT c.id, c.name, c.code, c.teacher_id, c.is_active, c.created_at, c.updated_at,
			COUNT(s.id) AS student_count
		FROM classes c
		LEFT JOIN students s ON s.class_id = c.id AND s.deleted_at IS NULL AND s.is_active = true
		WHERE c.deleted_at IS NULL
		GROUP BY c.id
		ORDER BY c.name
	`

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch classes: %w", err)
	}
	defer rows.Close()

	var classes []*models.Class
	for rows.Next() {
		var cls models.Class
		var teacherID sql.NullString
		err := rows.Scan(&cls.ID, &cls.Name, &cls.Code, &teacherID, &cls.IsActive,
			&cls.CreatedAt, &cls.UpdatedAt, &cls.StudentCount)
		if err != nil {
			return nil, fmt.Errorf("failed to scan class: %w", err)
		}
		if teacherID.Valid {
			cls.TeacherID = &teacherID.String
		}
		classes = append(classes, &cls)
	}
	return classes, rows.Err()
}

func getClassByID(db *sql.DB, classID string) (*models.Class, error) {
	query := `
		SELECT c.id, c.name, c.code, c.teacher_id, c.is_active, c.created_at, c.updated_at,
			COUNT(s.id) AS student_count
		FROM classes c
		LEFT JOIN students s ON s.class_id = c.id AND s.deleted_at IS NULL AND s.is_active = true
		WHERE c.id = $1 AND c.deleted_at IS NULL
		GROUP BY c.id
	`

	var cls models.Class
	var teacherID sql.NullString
	err := db.QueryRow(query, classID).Scan(&cls.ID, &cls.Name, &cls.Code, &teacherID,
		&cls.IsActive, &cls.CreatedAt, &cls.UpdatedAt, &cls.StudentCount)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch class: %w", err)
	}
	if teacherID.Valid {
		cls.TeacherID = &teacherID.String
	}
	return &cls, nil
}

func createClass(db *sql.DB, cls *models.Class) error {
	cls.ID = uuid.New().String()
	err := db.QueryRow(
		`INSERT INTO classes (id, name, code, teacher_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at, updated_at, is_active`,
		cls.ID, cls.Name, cls.Code, cls.TeacherID,
	).Scan(&cls.CreatedAt, &cls.UpdatedAt, &cls.IsActive)
	if err != nil {
		return fmt.Errorf("create class: %w", err)
	}
	return nil
}

func updateClass(db *sql.DB, cls *models.Class) error {
	result, err := db.Exec(
		`UPDATE classes SET name = $2, code = $3, teacher_id = $4, updated_at = now()
		 WHERE id = $1 AND deleted_at IS NULL`,
		cls.ID, cls.Name, cls.Code, cls.TeacherID,
	)
	if err != nil {
		return fmt.Errorf("update class: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("class %s not found", cls.ID)
	}
	return nil
}

func deleteClass(db *sql.DB, classID string) error {
	var enrolled int
	err := db.QueryRow(
		`SELECT COUNT(*) FROM students WHERE class_id = $1 AND deleted_at IS NULL`,
		classID,
	).Scan(&enrolled)
	if err != nil {
		return fmt.Errorf("check class enrollment: %w", err)
	}
	if enrolled > 0 {
		return fmt.Errorf("class has %d enrolled students", enrolled)
	}

	result, err := db.Exec(
		`UPDATE classes SET deleted_at = now(), is_active = false WHERE id = $1 AND deleted_at IS NULL`,
		classID,
	)
	if err != nil {
		return fmt.Errorf("delete class: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("class %s not found", classID)
	}
	return nil
}
