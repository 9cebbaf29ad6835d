package academics

import (
	"testing"

	"github.com/stretchr/testify/require"

	"kisima-schools/app/models"
)

func TestListCandidates(t *testing.T) {
	fs := newFakeStore()
	fs.seedReport("s1", "t1", "c1", 75, 4)
	fs.seedReport("s2", "t1", "c1", 42, 4)
	fs.seedReport("s3", "t1", "c1", 0, 0) // no grading data

	e := newTestEngine(fs)
	candidates, err := e.ListCandidates("c1", "t1")
	require.NoError(t, err)
	require.Len(t, candidates, 3)

	byID := make(map[string]*models.PromotionCandidate)
	for _, c := range candidates {
		byID[c.StudentID] = c
	}

	require.Equal(t, models.ActionPromote, byID["s1"].Recommended)
	require.Equal(t, "Average 75.0% meets pass mark of 50%", byID["s1"].Reason)

	require.Equal(t, models.ActionRetain, byID["s2"].Recommended)
	require.Equal(t, "Average 42.0% below pass mark of 50%", byID["s2"].Reason)

	require.Equal(t, models.ActionRetain, byID["s3"].Recommended,
		"an ungraded student is never silently promoted")
	require.Equal(t, "Insufficient grading data", byID["s3"].Reason)
}

func TestListCandidatesCustomThreshold(t *testing.T) {
	fs := newFakeStore()
	fs.threshold = 60
	fs.seedReport("s1", "t1", "c1", 55, 4)

	e := newTestEngine(fs)
	candidates, err := e.ListCandidates("c1", "t1")
	require.NoError(t, err)
	require.Equal(t, models.ActionRetain, candidates[0].Recommended)
	require.Equal(t, "Average 55.0% below pass mark of 60%", candidates[0].Reason)
}

func TestProcessPromotionsPartialFailure(t *testing.T) {
	fs := newFakeStore()
	fs.addStudent("s1", "c1")
	fs.addStudent("s2", "c1")
	fs.addStudent("s3", "c1")
	fs.classes["c2"] = true

	e := newTestEngine(fs)
	outcomes := e.ProcessPromotions([]*models.PromotionDecision{
		{StudentID: "s1", Action: models.ActionPromote, TargetClassID: "c2", Reason: "Passed"},
		{StudentID: "s2", Action: models.ActionPromote, TargetClassID: "missing", Reason: "Passed"},
		{StudentID: "s3", Action: models.ActionRetain, TargetClassID: "c1", Reason: "Below pass mark"},
	}, "t1", "director-1")

	require.Len(t, outcomes, 3)
	require.True(t, outcomes[0].Success)
	require.False(t, outcomes[1].Success)
	require.Contains(t, outcomes[1].Error, "not found")
	require.True(t, outcomes[2].Success)

	// The two successful movements exist regardless of the failure.
	require.Len(t, fs.movements, 2)
	require.Equal(t, "c2", fs.studentClass["s1"])
	require.Equal(t, "c1", fs.studentClass["s2"], "failed decision must not move the student")
	require.Equal(t, "c1", fs.studentClass["s3"])
}

func TestProcessPromotionsMovementConflict(t *testing.T) {
	fs := newFakeStore()
	fs.addStudent("s1", "c1")
	fs.classes["c2"] = true

	e := newTestEngine(fs)
	decision := []*models.PromotionDecision{
		{StudentID: "s1", Action: models.ActionPromote, TargetClassID: "c2"},
	}

	outcomes := e.ProcessPromotions(decision, "t1", "director-1")
	require.True(t, outcomes[0].Success)

	// Re-running the same batch appends nothing.
	outcomes = e.ProcessPromotions(decision, "t1", "director-1")
	require.False(t, outcomes[0].Success)
	require.Contains(t, outcomes[0].Error, "already recorded")
	require.Len(t, fs.movements, 1)

	// Unless the decision is explicitly forced.
	decision[0].Force = true
	outcomes = e.ProcessPromotions(decision, "t1", "director-1")
	require.True(t, outcomes[0].Success)
	require.Len(t, fs.movements, 2)
}

func TestProcessPromotionsCapturesFromClass(t *testing.T) {
	fs := newFakeStore()
	fs.addStudent("s1", "c1")
	fs.classes["c2"] = true

	e := newTestEngine(fs)
	outcomes := e.ProcessPromotions([]*models.PromotionDecision{
		{StudentID: "s1", Action: models.ActionPromote, TargetClassID: "c2", Reason: "Passed"},
	}, "t1", "director-1")
	require.True(t, outcomes[0].Success)

	history, err := e.MovementHistory("s1")
	require.NoError(t, err)
	require.Len(t, history, 1)
	m := history[0]
	require.NotNil(t, m.FromClassID)
	require.Equal(t, "c1", *m.FromClassID)
	require.Equal(t, "c2", m.ToClassID)
	require.Equal(t, "t1", m.TermID)
	require.Equal(t, "director-1", m.ChangedBy)
}
