package academics

import (
	"errors"
	"testing"

	"kisima-schools/app/models"
)

func TestResolveGrade(t *testing.T) {
	bands := defaultBands()

	tests := []struct {
		name      string
		score     float64
		bands     []*models.GradeBand
		wantLabel string
		wantErr   error
	}{
		{name: "top of band", score: 89, bands: bands, wantLabel: "A"},
		{name: "bottom of adjacent band", score: 90, bands: bands, wantLabel: "A+"},
		{name: "max of scale", score: 100, bands: bands, wantLabel: "A+"},
		{name: "zero", score: 0, bands: bands, wantLabel: "F"},
		{name: "negative clamped to zero", score: -4, bands: bands, wantLabel: "F"},
		{name: "above scale clamped to 100", score: 104.5, bands: bands, wantLabel: "A+"},
		{
			name:  "overlapping bands pick highest min score",
			score: 65,
			bands: []*models.GradeBand{
				{Label: "B", MinScore: 50, MaxScore: 70},
				{Label: "A", MinScore: 60, MaxScore: 80},
			},
			wantLabel: "A",
		},
		{
			name:  "gap in coverage",
			score: 45,
			bands: []*models.GradeBand{
				{Label: "A", MinScore: 80, MaxScore: 100},
				{Label: "F", MinScore: 0, MaxScore: 39},
			},
			wantLabel: DefaultGradeLabel,
			wantErr:   ErrUnscoredGrade,
		},
		{name: "no bands at all", score: 50, bands: nil, wantLabel: DefaultGradeLabel, wantErr: ErrUnscoredGrade},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveGrade(tt.score, tt.bands)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ResolveGrade() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got.Label != tt.wantLabel {
				t.Errorf("ResolveGrade() label = %q, want %q", got.Label, tt.wantLabel)
			}
		})
	}
}

func TestResolveGradeCarriesBandDetails(t *testing.T) {
	got, err := ResolveGrade(95, defaultBands())
	if err != nil {
		t.Fatalf("ResolveGrade() error = %v", err)
	}
	if got.Points != 5 {
		t.Errorf("points = %v, want 5", got.Points)
	}
	if got.Remark != "Excellent" {
		t.Errorf("remark = %q, want Excellent", got.Remark)
	}
}
