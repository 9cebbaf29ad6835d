package academics

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"kisima-schools/app/models"
)

func result(subjectID string, score, maxMarks, weight float64) *models.AssessmentResult {
	return &models.AssessmentResult{
		AssessmentID: "a1",
		StudentID:    "s1",
		SubjectID:    subjectID,
		TermID:       "t1",
		Score:        score,
		MaxMarks:     maxMarks,
		Weight:       weight,
	}
}

func TestAggregateSubjectWeighted(t *testing.T) {
	bands := defaultBands()

	// 80% of 60 plus 50% of 40.
	sr, err := AggregateSubject([]*models.AssessmentResult{
		result("math", 80, 100, 60),
		result("math", 50, 100, 40),
	}, bands)
	require.NoError(t, err)
	require.Equal(t, 68.0, sr.Total)
	require.Equal(t, "B", sr.Grade)
	require.Equal(t, "math", sr.SubjectID)
}

func TestAggregateSubjectNormalizesMaxMarks(t *testing.T) {
	// 45/50 and 20/40 are normalized to the 0-100 scale before weighting.
	sr, err := AggregateSubject([]*models.AssessmentResult{
		result("sci", 45, 50, 50),
		result("sci", 20, 40, 50),
	}, defaultBands())
	require.NoError(t, err)
	require.Equal(t, 70.0, sr.Total)
}

func TestAggregateSubjectWeightsNotNormalized(t *testing.T) {
	// Weights summing to 60 are taken as given, not scaled up to 100.
	sr, err := AggregateSubject([]*models.AssessmentResult{
		result("geo", 80, 100, 30),
		result("geo", 90, 100, 30),
	}, defaultBands())
	require.NoError(t, err)
	require.Equal(t, 51.0, sr.Total)
}

func TestAggregateSubjectNoContributingWeight(t *testing.T) {
	_, err := AggregateSubject(nil, defaultBands())
	require.ErrorIs(t, err, ErrNoContributingWeight)

	_, err = AggregateSubject([]*models.AssessmentResult{
		result("art", 70, 100, 0),
	}, defaultBands())
	require.ErrorIs(t, err, ErrNoContributingWeight)
}

func TestAggregateSubjectInvalidScore(t *testing.T) {
	_, err := AggregateSubject([]*models.AssessmentResult{
		result("math", 120, 100, 50),
	}, defaultBands())
	require.ErrorIs(t, err, ErrInvalidScore)

	_, err = AggregateSubject([]*models.AssessmentResult{
		result("math", 10, 0, 50),
	}, defaultBands())
	require.ErrorIs(t, err, ErrInvalidScore)
}

func TestAggregateSubjectUnscoredGradeDegrades(t *testing.T) {
	// A gap in band coverage falls back to the default label without
	// failing the subject.
	bands := []*models.GradeBand{{Label: "A", MinScore: 80, MaxScore: 100}}
	sr, err := AggregateSubject([]*models.AssessmentResult{
		result("math", 50, 100, 100),
	}, bands)
	require.NoError(t, err)
	require.Equal(t, DefaultGradeLabel, sr.Grade)
	require.Equal(t, 50.0, sr.Total)
}

func TestAggregateSubjectSkipsZeroWeightAmongGraded(t *testing.T) {
	sr, err := AggregateSubject([]*models.AssessmentResult{
		result("math", 100, 100, 0),
		result("math", 60, 100, 50),
	}, defaultBands())
	require.NoError(t, err)
	require.Equal(t, 30.0, sr.Total)
}

func TestAggregateSubjectErrorMentionsAssessment(t *testing.T) {
	r := result("math", 120, 100, 50)
	r.AssessmentID = "exam-9"
	_, err := AggregateSubject([]*models.AssessmentResult{r}, defaultBands())
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrInvalidScore))
	require.Contains(t, err.Error(), "exam-9")
}
