package database

import (
	"database/sql"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"kisima-schools/app/academics"
	"kisima-schools/app/models"
)

const passThresholdKey = "pass_threshold"

// SettingsStore holds tenant grading configuration: the grade band set and
// the promotion pass threshold. Values are read fresh on every call; the
// engine never caches them.
type SettingsStore struct {
	DB *sql.DB
}

func (s *SettingsStore) GradeBands() ([]*models.GradeBand, error) {
	query := `
		SELECT id, label, min_score, max_score, gpa_point, remark, is_active, created_at, updated_at
		FROM grade_bands
		WHERE is_active = true AND deleted_at IS NULL
		ORDER BY min_score DESC
	`

	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch grade bands: %w", err)
	}
	defer rows.Close()

	var bands []*models.GradeBand
	for rows.Next() {
		var b models.GradeBand
		err := rows.Scan(&b.ID, &b.Label, &b.MinScore, &b.MaxScore, &b.GPAPoint, &b.Remark, &b.IsActive, &b.CreatedAt, &b.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan grade band: %w", err)
		}
		bands = append(bands, &b)
	}
	return bands, rows.Err()
}

func (s *SettingsStore) PassThreshold() (float64, error) {
	var value string
	err := s.DB.QueryRow(
		`SELECT value FROM school_settings WHERE key = $1`, passThresholdKey,
	).Scan(&value)
	if err == sql.ErrNoRows {
		return academics.DefaultPassThreshold, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to fetch pass threshold: %w", err)
	}
	threshold, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid pass threshold %q: %w", value, err)
	}
	return threshold, nil
}

func (s *SettingsStore) SetPassThreshold(threshold float64) error {
	_, err := s.DB.Exec(
		`INSERT INTO school_settings (key, value) VALUES ($1, $2)
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		passThresholdKey, strconv.FormatFloat(threshold, 'f', -1, 64),
	)
	if err != nil {
		return fmt.Errorf("set pass threshold: %w", err)
	}
	return nil
}

func (s *SettingsStore) CreateGradeBand(b *models.GradeBand) error {
	b.ID = uuid.New().String()
	err := s.DB.QueryRow(
		`INSERT INTO grade_bands (id, label, min_score, max_score, gpa_point, remark)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at, updated_at, is_active`,
		b.ID, b.Label, b.MinScore, b.MaxScore, b.GPAPoint, b.Remark,
	).Scan(&b.CreatedAt, &b.UpdatedAt, &b.IsActive)
	if err != nil {
		return fmt.Errorf("create grade band: %w", err)
	}
	return nil
}

func (s *SettingsStore) UpdateGradeBand(b *models.GradeBand) error {
	result, err := s.DB.Exec(
		`UPDATE grade_bands
		 SET label = $2, min_score = $3, max_score = $4, gpa_point = $5, remark = $6, updated_at = now()
		 WHERE id = $1 AND deleted_at IS NULL`,
		b.ID, b.Label, b.MinScore, b.MaxScore, b.GPAPoint, b.Remark,
	)
	if err != nil {
		return fmt.Errorf("update grade band: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("grade band %s not found", b.ID)
	}
	return nil
}

func (s *SettingsStore) DeleteGradeBand(id string) error {
	result, err := s.DB.Exec(
		`UPDATE grade_bands SET deleted_at = now(), is_active = false WHERE id = $1 AND deleted_at IS NULL`,
		id,
	)
	if err != nil {
		return fmt.Errorf("delete grade band: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("grade band %s not found", id)
	}
	return nil
}
