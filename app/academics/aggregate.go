package academics

import (
	"errors"
	"fmt"

	"kisima-schools/app/models"
)

// AggregateSubject combines all of one student's assessment results for a
// single subject and term into a weighted total on the 0-100 scale. Each
// result contributes (score/maxMarks)*100 * (weight/100), so assessments
// with different max marks stay comparable. Weights are summed as given and
// are not required to total 100.
//
// Returns ErrNoContributingWeight when nothing carries weight (the subject
// must be excluded from the report, not scored zero) and ErrInvalidScore
// when a raw score exceeds its max marks.
func AggregateSubject(results []*models.AssessmentResult, bands []*models.GradeBand) (*models.SubjectResult, error) {
	if len(results) == 0 {
		return nil, ErrNoContributingWeight
	}

	var total, weightSum float64
	for _, r := range results {
		if r.MaxMarks <= 0 {
			return nil, fmt.Errorf("assessment %s: max marks %.2f not positive: %w", r.AssessmentID, r.MaxMarks, ErrInvalidScore)
		}
		if r.Score < 0 || r.Score > r.MaxMarks {
			return nil, fmt.Errorf("assessment %s: score %.2f out of range 0-%.2f: %w", r.AssessmentID, r.Score, r.MaxMarks, ErrInvalidScore)
		}
		if r.Weight <= 0 {
			continue
		}
		total += (r.Score / r.MaxMarks) * 100 * (r.Weight / 100)
		weightSum += r.Weight
	}
	if weightSum == 0 {
		return nil, ErrNoContributingWeight
	}

	sr := &models.SubjectResult{
		SubjectID: results[0].SubjectID,
		Total:     round2(total),
	}

	grade, err := ResolveGrade(sr.Total, bands)
	if err != nil && !errors.Is(err, ErrUnscoredGrade) {
		return nil, err
	}
	sr.Grade = grade.Label
	sr.GPAPoint = grade.Points
	sr.Remark = grade.Remark
	return sr, nil
}
