package database

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"kisima-schools/app/models"
)

// ReportStore persists term reports. The upsert rewrites computed columns
// only: the two staff remark columns are never listed in the UPDATE SET, so
// regeneration cannot clobber them, and rank is always reset to NULL.
type ReportStore struct {
	DB *sql.DB
}

func (s *ReportStore) Upsert(report *models.TermReport) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return fmt.Errorf("begin report upsert: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO term_reports (
			id, student_id, term_id, class_id, total_score, average_score,
			graded_subjects, rank, attendance_present, attendance_total
		) VALUES ($1, $2, $3, $4, $5, $6, $7, NULL, $8, $9)
		ON CONFLICT (student_id, term_id) DO UPDATE SET
			class_id = EXCLUDED.class_id,
			total_score = EXCLUDED.total_score,
			average_score = EXCLUDED.average_score,
			graded_subjects = EXCLUDED.graded_subjects,
			rank = NULL,
			attendance_present = EXCLUDED.attendance_present,
			attendance_total = EXCLUDED.attendance_total,
			updated_at = now()
		RETURNING id
	`

	var reportID string
	err = tx.QueryRow(query,
		uuid.New().String(), report.StudentID, report.TermID, report.ClassID,
		report.TotalScore, report.AverageScore, report.GradedSubjects,
		report.AttendancePresent, report.AttendanceTotal,
	).Scan(&reportID)
	if err != nil {
		return fmt.Errorf("upsert term report: %w", err)
	}
	report.ID = reportID
	report.Rank = nil

	// Subject results are a projection: replace wholesale.
	if _, err := tx.Exec(`DELETE FROM subject_results WHERE report_id = $1`, reportID); err != nil {
		return fmt.Errorf("clear subject results: %w", err)
	}
	for _, sr := range report.Results {
		sr.ID = uuid.New().String()
		sr.ReportID = reportID
		_, err := tx.Exec(
			`INSERT INTO subject_results (id, report_id, subject_id, total, grade, gpa_point, remark)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			sr.ID, sr.ReportID, sr.SubjectID, sr.Total, sr.Grade, sr.GPAPoint, sr.Remark,
		)
		if err != nil {
			return fmt.Errorf("insert subject result for subject %s: %w", sr.SubjectID, err)
		}
	}

	return tx.Commit()
}

func (s *ReportStore) Get(studentID, termID string) (*models.TermReport, error) {
	query := `
		SELECT
			tr.id, tr.student_id, tr.term_id, tr.class_id, tr.total_score,
			tr.average_score, tr.graded_subjects, tr.rank,
			tr.attendance_present, tr.attendance_total,
			tr.class_teacher_remark, tr.principal_remark,
			tr.created_at, tr.updated_at,
			s.id, s.student_number, s.first_name, s.last_name
		FROM term_reports tr
		JOIN students s ON tr.student_id = s.id
		WHERE tr.student_id = $1 AND tr.term_id = $2
	`

	report, err := scanReport(s.DB.QueryRow(query, studentID, termID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch term report: %w", err)
	}
	if err := s.loadSubjectResults(report); err != nil {
		return nil, err
	}
	return report, nil
}

func (s *ReportStore) ForClassTerm(classID, termID string) ([]*models.TermReport, error) {
	query := `
		SELECT
			tr.id, tr.student_id, tr.term_id, tr.class_id, tr.total_score,
			tr.average_score, tr.graded_subjects, tr.rank,
			tr.attendance_present, tr.attendance_total,
			tr.class_teacher_remark, tr.principal_remark,
			tr.created_at, tr.updated_at,
			s.id, s.student_number, s.first_name, s.last_name
		FROM term_reports tr
		JOIN students s ON tr.student_id = s.id
		WHERE tr.class_id = $1 AND tr.term_id = $2
		ORDER BY s.first_name, s.last_name
	`

	rows, err := s.DB.Query(query, classID, termID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch class reports: %w", err)
	}
	defer rows.Close()

	var reports []*models.TermReport
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan term report: %w", err)
		}
		reports = append(reports, report)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, report := range reports {
		if err := s.loadSubjectResults(report); err != nil {
			return nil, err
		}
	}
	return reports, nil
}

func (s *ReportStore) UpdateRank(studentID, termID string, rank int) error {
	result, err := s.DB.Exec(
		`UPDATE term_reports SET rank = $3, updated_at = now() WHERE student_id = $1 AND term_id = $2`,
		studentID, termID, rank,
	)
	if err != nil {
		return fmt.Errorf("update rank: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("no term report for student %s in term %s", studentID, termID)
	}
	return nil
}

func (s *ReportStore) UpdateRemarks(studentID, termID string, classTeacherRemark, principalRemark *string) error {
	result, err := s.DB.Exec(
		`UPDATE term_reports SET class_teacher_remark = $3, principal_remark = $4, updated_at = now()
		 WHERE student_id = $1 AND term_id = $2`,
		studentID, termID, classTeacherRemark, principalRemark,
	)
	if err != nil {
		return fmt.Errorf("update remarks: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("no term report for student %s in term %s", studentID, termID)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReport(row rowScanner) (*models.TermReport, error) {
	var report models.TermReport
	var student models.Student
	var rank sql.NullInt64
	var teacherRemark, principalRemark sql.NullString

	err := row.Scan(
		&report.ID, &report.StudentID, &report.TermID, &report.ClassID,
		&report.TotalScore, &report.AverageScore, &report.GradedSubjects, &rank,
		&report.AttendancePresent, &report.AttendanceTotal,
		&teacherRemark, &principalRemark,
		&report.CreatedAt, &report.UpdatedAt,
		&student.ID, &student.StudentNumber, &student.FirstName, &student.LastName,
	)
	if err != nil {
		return nil, err
	}

	if rank.Valid {
		r := int(rank.Int64)
		report.Rank = &r
	}
	if teacherRemark.Valid {
		report.ClassTeacherRemark = &teacherRemark.String
	}
	if principalRemark.Valid {
		report.PrincipalRemark = &principalRemark.String
	}
	report.Student = &student
	return &report, nil
}

func (s *ReportStore) loadSubjectResults(report *models.TermReport) error {
	query := `
		SELECT sr.id, sr.report_id, sr.subject_id, sr.total, sr.grade, sr.gpa_point, sr.remark,
			sub.id, sub.name, sub.code
		FROM subject_results sr
		LEFT JOIN subjects sub ON sr.subject_id = sub.id
		WHERE sr.report_id = $1
		ORDER BY sub.name
	`

	rows, err := s.DB.Query(query, report.ID)
	if err != nil {
		return fmt.Errorf("failed to fetch subject results: %w", err)
	}
	defer rows.Close()

	report.Results = nil
	for rows.Next() {
		var sr models.SubjectResult
		var subID, subName, subCode sql.NullString
		err := rows.Scan(&sr.ID, &sr.ReportID, &sr.SubjectID, &sr.Total, &sr.Grade, &sr.GPAPoint, &sr.Remark,
			&subID, &subName, &subCode)
		if err != nil {
			return fmt.Errorf("failed to scan subject result: %w", err)
		}
		if subID.Valid {
			sr.Subject = &models.Subject{ID: subID.String, Name: subName.String, Code: subCode.String}
		}
		report.Results = append(report.Results, &sr)
	}
	return rows.Err()
}
