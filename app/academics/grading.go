package academics

import (
	"fmt"
	"math"

	"kisima-schools/app/models"
)

// DefaultGradeLabel is substituted when no grade band matches a score.
const DefaultGradeLabel = "N/A"

// ResolvedGrade is the outcome of a grade band lookup.
type ResolvedGrade struct {
	Label  string  `json:"label"`
	Points float64 `json:"points"`
	Remark string  `json:"remark"`
}

// ResolveGrade maps a 0-100 score to a grade band. The score is clamped to
// the scale before lookup; scores above max marks are rejected earlier, at
// aggregation. If overlapping bands both match, the band with the highest
// MinScore wins. If nothing matches the caller gets DefaultGradeLabel along
// with ErrUnscoredGrade so the report can proceed.
func ResolveGrade(score float64, bands []*models.GradeBand) (ResolvedGrade, error) {
	score = clampScale(score)

	var match *models.GradeBand
	for _, b := range bands {
		if score < b.MinScore || score > b.MaxScore {
			continue
		}
		if match == nil || b.MinScore > match.MinScore {
			match = b
		}
	}
	if match == nil {
		return ResolvedGrade{Label: DefaultGradeLabel}, fmt.Errorf("resolve grade for %.2f: %w", score, ErrUnscoredGrade)
	}
	return ResolvedGrade{Label: match.Label, Points: match.GPAPoint, Remark: match.Remark}, nil
}

func clampScale(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
