package database

import (
	"database/sql"
	"fmt"

	"github.com/sirupsen/logrus"
)

// RunMigrations applies the schema and seeds baseline grading configuration.
// Every statement is idempotent so the set can run on every startup.
func RunMigrations(db *sql.DB, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			email TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			role TEXT NOT NULL DEFAULT 'teacher',
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			deleted_at TIMESTAMPTZ
		)`,
		`CREATE TABLE IF NOT EXISTS academic_years (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name TEXT NOT NULL UNIQUE,
			start_date DATE NOT NULL,
			end_date DATE NOT NULL,
			is_current BOOLEAN NOT NULL DEFAULT false,
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			deleted_at TIMESTAMPTZ
		)`,
		`CREATE TABLE IF NOT EXISTS terms (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			academic_year_id UUID NOT NULL REFERENCES academic_years(id),
			name TEXT NOT NULL,
			start_date DATE NOT NULL,
			end_date DATE NOT NULL,
			is_current BOOLEAN NOT NULL DEFAULT false,
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			deleted_at TIMESTAMPTZ
		)`,
		`CREATE TABLE IF NOT EXISTS classes (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name TEXT NOT NULL UNIQUE,
			code TEXT NOT NULL UNIQUE,
			teacher_id UUID REFERENCES users(id),
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			deleted_at TIMESTAMPTZ
		)`,
		`CREATE TABLE IF NOT EXISTS students (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_number TEXT NOT NULL UNIQUE,
			first_name TEXT NOT NULL,
			last_name TEXT NOT NULL,
			gender VARCHAR(10),
			class_id UUID REFERENCES classes(id),
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			deleted_at TIMESTAMPTZ
		)`,
		`CREATE TABLE IF NOT EXISTS subjects (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name TEXT NOT NULL,
			code TEXT NOT NULL UNIQUE,
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			deleted_at TIMESTAMPTZ
		)`,
		`CREATE TABLE IF NOT EXISTS assessments (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			name TEXT NOT NULL,
			subject_id UUID NOT NULL REFERENCES subjects(id),
			class_id UUID NOT NULL REFERENCES classes(id),
			term_id UUID NOT NULL REFERENCES terms(id),
			kind TEXT NOT NULL DEFAULT 'exam',
			max_marks DECIMAL(5,2) NOT NULL,
			weight DECIMAL(5,2) NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			deleted_at TIMESTAMPTZ
		)`,
		`CREATE TABLE IF NOT EXISTS assessment_results (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			assessment_id UUID NOT NULL REFERENCES assessments(id),
			student_id UUID NOT NULL REFERENCES students(id),
			subject_id UUID NOT NULL REFERENCES subjects(id),
			term_id UUID NOT NULL REFERENCES terms(id),
			score DECIMAL(5,2) NOT NULL,
			max_marks DECIMAL(5,2) NOT NULL,
			weight DECIMAL(5,2) NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			deleted_at TIMESTAMPTZ,
			UNIQUE (assessment_id, student_id)
		)`,
		`CREATE TABLE IF NOT EXISTS grade_bands (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			label TEXT NOT NULL UNIQUE,
			min_score DECIMAL(5,2) NOT NULL,
			max_score DECIMAL(5,2) NOT NULL,
			gpa_point DECIMAL(5,2) NOT NULL DEFAULT 0,
			remark TEXT NOT NULL DEFAULT '',
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			deleted_at TIMESTAMPTZ
		)`,
		`CREATE TABLE IF NOT EXISTS school_settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS attendance (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_id UUID NOT NULL REFERENCES students(id),
			class_id UUID REFERENCES classes(id),
			term_id UUID NOT NULL REFERENCES terms(id),
			date DATE NOT NULL,
			status VARCHAR(10) NOT NULL,
			marked_by UUID REFERENCES users(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			UNIQUE (student_id, term_id, date)
		)`,
		`CREATE TABLE IF NOT EXISTS term_reports (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_id UUID NOT NULL REFERENCES students(id),
			term_id UUID NOT NULL REFERENCES terms(id),
			class_id UUID NOT NULL REFERENCES classes(id),
			total_score DECIMAL(7,2) NOT NULL DEFAULT 0,
			average_score DECIMAL(5,2) NOT NULL DEFAULT 0,
			graded_subjects INTEGER NOT NULL DEFAULT 0,
			rank INTEGER,
			attendance_present INTEGER NOT NULL DEFAULT 0,
			attendance_total INTEGER NOT NULL DEFAULT 0,
			class_teacher_remark TEXT,
			principal_remark TEXT,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			UNIQUE (student_id, term_id)
		)`,
		`CREATE TABLE IF NOT EXISTS subject_results (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			report_id UUID NOT NULL REFERENCES term_reports(id) ON DELETE CASCADE,
			subject_id UUID NOT NULL REFERENCES subjects(id),
			total DECIMAL(5,2) NOT NULL,
			grade TEXT NOT NULL,
			gpa_point DECIMAL(5,2) NOT NULL DEFAULT 0,
			remark TEXT NOT NULL DEFAULT '',
			UNIQUE (report_id, subject_id)
		)`,
		`CREATE TABLE IF NOT EXISTS class_movements (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			student_id UUID NOT NULL REFERENCES students(id),
			from_class_id UUID REFERENCES classes(id),
			to_class_id UUID NOT NULL REFERENCES classes(id),
			term_id UUID NOT NULL REFERENCES terms(id),
			reason TEXT NOT NULL DEFAULT '',
			changed_by UUID NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	if err := seedGradeBands(db, log); err != nil {
		return err
	}

	log.Info("Database migrations completed successfully")
	return nil
}

// seedGradeBands installs a standard band set so a fresh school can grade
// immediately. Skipped once any band exists, including soft-deleted ones.
func seedGradeBands(db *sql.DB, log *logrus.Logger) error {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM grade_bands`).Scan(&count); err != nil {
		return fmt.Errorf("count grade bands: %w", err)
	}
	if count > 0 {
		return nil
	}

	seed := []struct {
		label    string
		min, max float64
		gpa      float64
		remark   string
	}{
		{"A+", 90, 100, 5, "Excellent"},
		{"A", 80, 89.99, 4, "Very good"},
		{"B", 60, 79.99, 3, "Good"},
		{"C", 50, 59.99, 2, "Fair"},
		{"D", 40, 49.99, 1, "Below average"},
		{"F", 0, 39.99, 0, "Fail"},
	}
	for _, b := range seed {
		_, err := db.Exec(
			`INSERT INTO grade_bands (label, min_score, max_score, gpa_point, remark) VALUES ($1, $2, $3, $4, $5)`,
			b.label, b.min, b.max, b.gpa, b.remark,
		)
		if err != nil {
			return fmt.Errorf("seed grade band %s: %w", b.label, err)
		}
	}
	log.Info("Seeded default grade bands")
	return nil
}
