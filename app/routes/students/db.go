package students

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"kisima-schools/app/models"
)

// StudentFilters narrows the student list query
type StudentFilters struct {
	Search  string
	ClassID string
	Limit   int
	Offset  int
}

func getStudents(db *sql.DB, filters StudentFilters) ([]*models.Student, int, error) {
	var conditions []string
	var args []interface{}

	conditions = append(conditions, "s.deleted_at IS NULL")
	if filters.Search != "" {
		args = append(args, "%"+filters.Search+"%")
		n := len(args)
		conditions = append(conditions, fmt.Sprintf(
			"(s.first_name ILIKE $%d OR s.last_name ILIKE $%d OR s.student_number ILIKE $%d)", n, n, n))
	}
	if filters.ClassID != "" {
		args = append(args, filters.ClassID)
		conditions = append(conditions, fmt.Sprintf("s.class_id = $%d", len(args)))
	}
	where := strings.Join(conditions, " AND ")

	var total int
	countQuery := "SELECT COUNT(*) FROM students s WHERE " + where
	if err := db.QueryRow(countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count students: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT s.id, s.student_number, s.first_name, s.last_name, s.gender,
			s.class_id, s.is_active, s.created_at, s.updated_at,
			c.id, c.name, c.code
		FROM students s
		LEFT JOIN classes c ON s.class_id = c.id
		WHERE %s
		ORDER BY s.first_name, s.last_name
	`, where)
	if filters.Limit > 0 {
		args = append(args, filters.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
		args = append(args, filters.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch students: %w", err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, 0, err
		}
		students = append(students, student)
	}
	return students, total, rows.Err()
}

func getStudentByID(db *sql.DB, studentID string) (*models.Student, error) {
	query := `
		SELECT s.id, s.student_number, s.first_name, s.last_name, s.gender,
			s.class_id, s.is_active, s.created_at, s.updated_at,
			c.id, c.name, c.code
		FROM students s
		LEFT JOIN classes c ON s.class_id = c.id
		WHERE s.id = $1 AND s.deleted_at IS NULL
	`

	student, err := scanStudent(db.QueryRow(query, studentID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch student: %w", err)
	}
	return student, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanStudent(row rowScanner) (*models.Student, error) {
	var s models.Student
	var gender sql.NullString
	var classID, cID, cName, cCode sql.NullString

	err := row.Scan(
		&s.ID, &s.StudentNumber, &s.FirstName, &s.LastName, &gender,
		&classID, &s.IsActive, &s.CreatedAt, &s.UpdatedAt,
		&cID, &cName, &cCode,
	)
	if err != nil {
		return nil, err
	}
	if gender.Valid {
		s.Gender = models.Gender(gender.String)
	}
	if classID.Valid {
		s.ClassID = &classID.String
	}
	if cID.Valid {
		s.Class = &models.Class{ID: cID.String, Name: cName.String, Code: cCode.String}
	}
	return &s, nil
}

func createStudent(db *sql.DB, s *models.Student) error {
	s.ID = uuid.New().String()
	err := db.QueryRow(
		`INSERT INTO students (id, student_number, first_name, last_name, gender, class_id)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at, updated_at, is_active`,
		s.ID, s.StudentNumber, s.FirstName, s.LastName, s.Gender, s.ClassID,
	).Scan(&s.CreatedAt, &s.UpdatedAt, &s.IsActive)
	if err != nil {
		return fmt.Errorf("create student: %w", err)
	}
	return nil
}

func updateStudent(db *sql.DB, s *models.Student) error {
	result, err := db.Exec(
		`UPDATE students
		 SET student_number = $2, first_name = $3, last_name = $4, gender = $5, is_active = $6, updated_at = now()
		 WHERE id = $1 AND deleted_at IS NULL`,
		s.ID, s.StudentNumber, s.FirstName, s.LastName, s.Gender, s.IsActive,
	)
	if err != nil {
		return fmt.Errorf("update student: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("student %s not found", s.ID)
	}
	return nil
}

func deleteStudent(db *sql.DB, studentID string) error {
	result, err := db.Exec(
		`UPDATE students SET deleted_at = now(), is_active = false WHERE id = $1 AND deleted_at IS NULL`,
		studentID,
	)
	if err != nil {
		return fmt.Errorf("delete student: %w", err)
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
