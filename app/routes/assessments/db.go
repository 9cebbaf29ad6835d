package assessments

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"kisima-schools/app/models"
)

func getAssessmentByID(db *sql.DB, assessmentID string) (*models.Assessment, error) {
	query := `
		SELECT
			a.id, a.name, a.subject_id, a.class_id, a.term_id, a.kind,
			a.max_marks, a.weight, a.is_active, a.created_at, a.updated_at,
			s.id, s.name, s.code,
			c.id, c.name, c.code
		FROM assessments a
		LEFT JOIN subjects s ON a.subject_id = s.id
		LEFT JOIN classes c ON a.class_id = c.id
		WHERE a.id = $1 AND a.deleted_at IS NULL
	`

	var a models.Assessment
	var subject models.Subject
	var class models.Class
	err := db.QueryRow(query, assessmentID).Scan(
		&a.ID, &a.Name, &a.SubjectID, &a.ClassID, &a.TermID, &a.Kind,
		&a.MaxMarks, &a.Weight, &a.IsActive, &a.CreatedAt, &a.UpdatedAt,
		&subject.ID, &subject.Name, &subject.Code,
		&class.ID, &class.Name, &class.Code,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch assessment: %w", err)
	}
	a.Subject = &subject
	a.Class = &class
	return &a, nil
}

func getAssessmentsByClassTerm(db *sql.DB, classID, termID string) ([]*models.Assessment, error) {
	query := `
		SELECT
			a.id, a.name, a.subject_id, a.class_id, a.term_id, a.kind,
			a.max_marks, a.weight, a.is_active, a.created_at, a.updated_at,
			s.id, s.name, s.code
		FROM assessments a
		LEFT JOIN subjects s ON a.subject_id = s.id
		WHERE a.class_id = $1 AND a.term_id = $2 AND a.deleted_at IS NULL
		ORDER BY s.name, a.created_at
	`

	rows, err := db.Query(query, classID, termID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch assessments: %w", err)
	}
	defer rows.Close()

	var assessments []*models.Assessment
	for rows.Next() {
		var a models.Assessment
		var subject models.Subject
		err := rows.Scan(
			&a.ID, &a.Name, &a.SubjectID, &a.ClassID, &a.TermID, &a.Kind,
			&a.MaxMarks, &a.Weight, &a.IsActive, &a.CreatedAt, &a.UpdatedAt,
			&subject.ID, &subject.Name, &subject.Code,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan assessment: %w", err)
		}
		a.Subject = &subject
		assessments = append(assessments, &a)
	}
	return assessments, rows.Err()
}

func createAssessment(db *sql.DB, a *models.Assessment) error {
	a.ID = uuid.New().String()
	err := db.QueryRow(
		`INSERT INTO assessments (id, name, subject_id, class_id, term_id, kind, max_marks, weight)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING created_at, updated_at, is_active`,
		a.ID, a.Name, a.SubjectID, a.ClassID, a.TermID, a.Kind, a.MaxMarks, a.Weight,
	).Scan(&a.CreatedAt, &a.UpdatedAt, &a.IsActive)
	if err != nil {
		return fmt.Errorf("create assessment: %w", err)
	}
	return nil
}

func updateAssessment(db *sql.DB, a *models.Assessment) error {
	result, err := db.Exec(
		`UPDATE assessments
		 SET name = $2, kind = $3, max_marks = $4, weight = $5, updated_at = now()
		 WHERE id = $1 AND deleted_at IS NULL`,
		a.ID, a.Name, a.Kind, a.MaxMarks, a.Weight,
	)
	if err != nil {
		return fmt.Errorf("update assessment: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("assessment %s not found", a.ID)
	}
	return nil
}

func deleteAssessment(db *sql.DB, assessmentID string) error {
	result, err := db.Exec(
		`UPDATE assessments SET deleted_at = now(), is_active = false WHERE id = $1 AND deleted_at IS NULL`,
		assessmentID,
	)
	if err != nil {
		return fmt.Errorf("delete assessment: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("assessment %s not found", assessmentID)
	}
	return nil
}

// batchSaveResults upserts scores for one assessment in a single transaction.
// SubjectID, TermID, max marks and weight are denormalized from the
// assessment row at write time.
func batchSaveResults(db *sql.DB, assessment *models.Assessment, scores map[string]float64) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin batch save: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO assessment_results (id, assessment_id, student_id, subject_id, term_id, score, max_marks, weight)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (assessment_id, student_id) DO UPDATE SET
			score = EXCLUDED.score,
			max_marks = EXCLUDED.max_marks,
			weight = EXCLUDED.weight,
			updated_at = now()
	`

	for studentID, score := range scores {
		_, err := tx.Exec(query,
			uuid.New().String(), assessment.ID, studentID,
			assessment.SubjectID, assessment.TermID,
			score, assessment.MaxMarks, assessment.Weight,
		)
		if err != nil {
			return fmt.Errorf("save result for student %s: %w", studentID, err)
		}
	}

	return tx.Commit()
}

func updateSingleResult(db *sql.DB, resultID string, score float64) error {
	result, err := db.Exec(
		`UPDATE assessment_results SET score = $2, updated_at = now() WHERE id = $1 AND deleted_at IS NULL`,
		resultID, score,
	)
	if err != nil {
		return fmt.Errorf("update result: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("result %s not found", resultID)
	}
	return nil
}

func getResultByID(db *sql.DB, resultID string) (*models.AssessmentResult, error) {
	query := `
		SELECT r.id, r.assessment_id, r.student_id, r.subject_id, r.term_id,
			r.score, r.max_marks, r.weight, r.created_at, r.updated_at
		FROM assessment_results r
		WHERE r.id = $1 AND r.deleted_at IS NULL
	`

	var r models.AssessmentResult
	err := db.QueryRow(query, resultID).Scan(
		&r.ID, &r.AssessmentID, &r.StudentID, &r.SubjectID, &r.TermID,
		&r.Score, &r.MaxMarks, &r.Weight, &r.CreatedAt, &r.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch result: %w", err)
	}
	return &r, nil
}

func getResultsForAssessment(db *sql.DB, assessmentID string) ([]*models.AssessmentResult, error) {
	query := `
		SELECT r.id, r.assessment_id, r.student_id, r.subject_id, r.term_id,
			r.score, r.max_marks, r.weight, r.created_at, r.updated_at,
			s.id, s.student_number, s.first_name, s.last_name
		FROM assessment_results r
		JOIN students s ON r.student_id = s.id
		WHERE r.assessment_id = $1 AND r.deleted_at IS NULL
		ORDER BY s.first_name, s.last_name
	`

	rows, err := db.Query(query, assessmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch results: %w", err)
	}
	defer rows.Close()

	var results []*models.AssessmentResult
	for rows.Next() {
		var r models.AssessmentResult
		var student models.Student
		err := rows.Scan(
			&r.ID, &r.AssessmentID, &r.StudentID, &r.SubjectID, &r.TermID,
			&r.Score, &r.MaxMarks, &r.Weight, &r.CreatedAt, &r.UpdatedAt,
			&student.ID, &student.StudentNumber, &student.FirstName, &student.LastName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan result: %w", err)
		}
		r.Student = &student
		results = append(results, &r)
	}
	return results, rows.Err()
}
