package attendance

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"kisima-schools/app/models"
)

// batchMarkAttendance upserts one day's attendance for a class in a single
// transaction. Re-marking a day overwrites the earlier status.
func batchMarkAttendance(db *sql.DB, records []*models.Attendance) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin attendance batch: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO attendance (id, student_id, class_id, term_id, date, status, marked_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (student_id, term_id, date) DO UPDATE SET
			status = EXCLUDED.status,
			marked_by = EXCLUDED.marked_by,
			updated_at = now()
	`

	for _, r := range records {
		_, err := tx.Exec(query,
			uuid.New().String(), r.StudentID, r.ClassID, r.TermID, r.Date, r.Status, r.MarkedBy,
		)
		if err != nil {
			return fmt.Errorf("mark attendance for student %s: %w", r.StudentID, err)
		}
	}

	return tx.Commit()
}

func getClassAttendanceByDate(db *sql.DB, classID string, date time.Time) ([]*models.Attendance, error) {
	query := `
		SELECT a.id, a.student_id, a.class_id, a.term_id, a.date, a.status, a.marked_by,
			a.created_at, a.updated_at,
			s.id, s.student_number, s.first_name, s.last_name
		FROM attendance a
		JOIN students s ON a.student_id = s.id
		WHERE a.class_id = $1 AND a.date = $2
		ORDER BY s.first_name, s.last_name
	`

	rows, err := db.Query(query, classID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch attendance: %w", err)
	}
	defer rows.Close()

	var records []*models.Attendance
	for rows.Next() {
		var a models.Attendance
		var student models.Student
		var classIDVal, markedBy sql.NullString
		err := rows.Scan(&a.ID, &a.StudentID, &classIDVal, &a.TermID, &a.Date, &a.Status, &markedBy,
			&a.CreatedAt, &a.UpdatedAt,
			&student.ID, &student.StudentNumber, &student.FirstName, &student.LastName)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		if classIDVal.Valid {
			a.ClassID = &classIDVal.String
		}
		if markedBy.Valid {
			a.MarkedBy = &markedBy.String
		}
		a.Student = &student
		records = append(records, &a)
	}
	return records, rows.Err()
}
