package academics

import "errors"

var (
	// ErrInvalidScore marks a raw score above the assessment's max marks.
	// The subject is excluded from the report rather than clamped, since a
	// clamp would corrupt the weighted contribution.
	ErrInvalidScore = errors.New("score exceeds assessment max marks")

	// ErrUnscoredGrade means no grade band matched a computed score. Callers
	// substitute DefaultGradeLabel instead of failing the report.
	ErrUnscoredGrade = errors.New("no grade band matches score")

	// ErrNoContributingWeight means a subject has no graded assessments with
	// a positive weight; the subject is excluded from the report entirely,
	// not scored as zero.
	ErrNoContributingWeight = errors.New("no assessment contributes weight")

	// ErrNoGradeBands aborts report generation outright: with no bands
	// configured at all there is no sensible partial result.
	ErrNoGradeBands = errors.New("no grade bands configured")

	// ErrRankingDataStale means a rank is being read after a regeneration
	// invalidated it; the class must be re-ranked first.
	ErrRankingDataStale = errors.New("class ranking is stale; rank the class before reading ranks")

	// ErrMovementConflict rejects a second class movement for the same
	// student and term unless the decision is forced.
	ErrMovementConflict = errors.New("class movement already recorded for student in this term")
)
