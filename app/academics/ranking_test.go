package academics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRankClassDenseTies(t *testing.T) {
	fs := newFakeStore()
	fs.seedReport("s1", "t1", "c1", 90, 4)
	fs.seedReport("s2", "t1", "c1", 85, 4)
	fs.seedReport("s3", "t1", "c1", 85, 4)
	fs.seedReport("s4", "t1", "c1", 70, 4)

	e := newTestEngine(fs)
	failures, err := e.RankClass("c1", "t1")
	require.NoError(t, err)
	require.Empty(t, failures)

	want := map[string]int{"s1": 1, "s2": 2, "s3": 2, "s4": 4}
	for studentID, wantRank := range want {
		r, _ := fs.Get(studentID, "t1")
		require.NotNil(t, r.Rank, studentID)
		require.Equal(t, wantRank, *r.Rank, studentID)
	}
}

func TestRankClassExcludesUngraded(t *testing.T) {
	fs := newFakeStore()
	fs.seedReport("s1", "t1", "c1", 80, 3)
	fs.seedReport("s2", "t1", "c1", 0, 0) // NoGradedSubjects
	fs.seedReport("s3", "t1", "c1", 60, 3)

	e := newTestEngine(fs)
	failures, err := e.RankClass("c1", "t1")
	require.NoError(t, err)
	require.Empty(t, failures)

	r1, _ := fs.Get("s1", "t1")
	require.Equal(t, 1, *r1.Rank)
	r3, _ := fs.Get("s3", "t1")
	require.Equal(t, 2, *r3.Rank)
	r2, _ := fs.Get("s2", "t1")
	require.Nil(t, r2.Rank, "ungraded students are excluded, not ranked last")
}

func TestRankClassRoundsBeforeComparing(t *testing.T) {
	fs := newFakeStore()
	// Both round to 85.00: must tie instead of being split by float noise.
	fs.seedReport("s1", "t1", "c1", 85.001, 3)
	fs.seedReport("s2", "t1", "c1", 84.996, 3)
	fs.seedReport("s3", "t1", "c1", 70, 3)

	e := newTestEngine(fs)
	_, err := e.RankClass("c1", "t1")
	require.NoError(t, err)

	r1, _ := fs.Get("s1", "t1")
	r2, _ := fs.Get("s2", "t1")
	r3, _ := fs.Get("s3", "t1")
	require.Equal(t, 1, *r1.Rank)
	require.Equal(t, 1, *r2.Rank)
	require.Equal(t, 3, *r3.Rank)
}

func TestRankClassPartialPersistFailure(t *testing.T) {
	fs := newFakeStore()
	fs.seedReport("s1", "t1", "c1", 90, 3)
	fs.seedReport("s2", "t1", "c1", 80, 3)
	fs.seedReport("s3", "t1", "c1", 70, 3)
	fs.failRankFor["s2"] = true

	e := newTestEngine(fs)
	failures, err := e.RankClass("c1", "t1")
	require.NoError(t, err)
	require.Len(t, failures, 1)
	require.Equal(t, "s2", failures[0].StudentID)

	// The rest of the class was still ranked.
	r1, _ := fs.Get("s1", "t1")
	require.Equal(t, 1, *r1.Rank)
	r3, _ := fs.Get("s3", "t1")
	require.Equal(t, 3, *r3.Rank)
}

func TestClassRankedReportsStale(t *testing.T) {
	fs := newFakeStore()
	fs.seedReport("s1", "t1", "c1", 90, 3)
	fs.seedReport("s2", "t1", "c1", 80, 3)

	e := newTestEngine(fs)
	_, err := e.ClassRankedReports("c1", "t1")
	require.ErrorIs(t, err, ErrRankingDataStale)

	_, err = e.RankClass("c1", "t1")
	require.NoError(t, err)

	reports, err := e.ClassRankedReports("c1", "t1")
	require.NoError(t, err)
	require.Len(t, reports, 2)
	require.Equal(t, "s1", reports[0].StudentID)
	require.Equal(t, "s2", reports[1].StudentID)
}

func TestClassRankedReportsUngradedLast(t *testing.T) {
	fs := newFakeStore()
	fs.seedReport("s1", "t1", "c1", 75, 3)
	fs.seedReport("s2", "t1", "c1", 0, 0)

	e := newTestEngine(fs)
	_, err := e.RankClass("c1", "t1")
	require.NoError(t, err)

	reports, err := e.ClassRankedReports("c1", "t1")
	require.NoError(t, err)
	require.Len(t, reports, 2)
	require.Equal(t, "s1", reports[0].StudentID)
	require.Nil(t, reports[1].Rank)
}
