package academic

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"kisima-schools/app/models"
)

func getAcademicYears(db *sql.DB) ([]*models.AcademicYear, error) {
	query := `
		SELECT id, name, start_date, end_date, is_current, is_active, created_at, updated_at
		FROM academic_years
		WHERE deleted_at IS NULL
		ORDER BY start_date DESC
	`

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch academic years: %w", err)
	}
	defer rows.Close()

	var years []*models.AcademicYear
	for rows.Next() {
		var y models.AcademicYear
		err := rows.Scan(&y.ID, &y.Name, &y.StartDate, &y.EndDate, &y.IsCurrent, &y.IsActive, &y.CreatedAt, &y.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan academic year: %w", err)
		}
		years = append(years, &y)
	}
	return years, rows.Err()
}

func createAcademicYear(db *sql.DB, y *models.AcademicYear) error {
	y.ID = uuid.New().String()
	err := db.QueryRow(
		`INSERT INTO academic_years (id, name, start_date, end_date, is_current)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at, updated_at, is_active`,
		y.ID, y.Name, y.StartDate, y.EndDate, y.IsCurrent,
	).Scan(&y.CreatedAt, &y.UpdatedAt, &y.IsActive)
	if err != nil {
		return fmt.Errorf("create academic year: %w", err)
	}
	return nil
}

func getTerms(db *sql.DB, academicYearID string) ([]*models.Term, error) {
	query := `
		SELECT t.id, t.academic_year_id, t.name, t.start_date, t.end_date,
			t.is_current, t.is_active, t.created_at, t.updated_at,
			y.id, y.name
		FROM terms t
		JOIN academic_years y ON t.academic_year_id = y.id
		WHERE t.deleted_at IS NULL
	`
	var args []interface{}
	if academicYearID != "" {
		query += " AND t.academic_year_id = $1"
		args = append(args, academicYearID)
	}
	query += " ORDER BY t.start_date"

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch terms: %w", err)
	}
	defer rows.Close()

	var terms []*models.Term
	for rows.Next() {
		var t models.Term
		var year models.AcademicYear
		err := rows.Scan(&t.ID, &t.AcademicYearID, &t.Name, &t.StartDate, &t.EndDate,
			&t.IsCurrent, &t.IsActive, &t.CreatedAt, &t.UpdatedAt,
			&year.ID, &year.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to scan term: %w", err)
		}
		t.AcademicYear = &year
		terms = append(terms, &t)
	}
	return terms, rows.Err()
}

func createTerm(db *sql.DB, t *models.Term) error {
	t.ID = uuid.New().String()
	err := db.QueryRow(
		`INSERT INTO terms (id, academic_year_id, name, start_date, end_date, is_current)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at, updated_at, is_active`,
		t.ID, t.AcademicYearID, t.Name, t.StartDate, t.EndDate, t.IsCurrent,
	).Scan(&t.CreatedAt, &t.UpdatedAt, &t.IsActive)
	if err != nil {
		return fmt.Errorf("create term: %w", err)
	}
	return nil
}

// setCurrentTerm marks one term current and clears the flag everywhere else.
func setCurrentTerm(db *sql.DB, termID string) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin set current term: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`UPDATE terms SET is_current = false WHERE is_current = true`); err != nil {
		return fmt.Errorf("clear current term: %w", err)
	}
	result, err := tx.Exec(
		`UPDATE terms SET is_current = true, updated_at = now() WHERE id = $1 AND deleted_at IS NULL`,
		termID,
	)
	if err != nil {
		return fmt.Errorf("set current term: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("term %s not found", termID)
	}
	return tx.Commit()
}
