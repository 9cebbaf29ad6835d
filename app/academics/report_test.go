package academics

import (
	"testing"

	"github.com/stretchr/testify/require"

	"kisima-schools/app/models"
)

func TestBuildReportPartialGradingDoesNotPenalize(t *testing.T) {
	fs := newFakeStore()
	fs.addStudent("s1", "c1")
	// Graded in 2 subjects out of however many the class offers.
	fs.addResult("s1", "t1", "math", 90, 100, 100)
	fs.addResult("s1", "t1", "eng", 70, 100, 100)

	e := newTestEngine(fs)
	out, err := e.BuildReport("s1", "t1")
	require.NoError(t, err)
	require.False(t, out.NoGradedSubjects)

	r := out.Report
	require.Equal(t, 160.0, r.TotalScore)
	require.Equal(t, 80.0, r.AverageScore)
	require.Equal(t, 2, r.GradedSubjects)
	require.Len(t, r.Results, 2)
	require.Equal(t, "c1", r.ClassID)
}

func TestBuildReportRegenerationPreservesRemarks(t *testing.T) {
	fs := newFakeStore()
	fs.addStudent("s1", "c1")
	fs.addResult("s1", "t1", "math", 60, 100, 100)

	e := newTestEngine(fs)
	_, err := e.BuildReport("s1", "t1")
	require.NoError(t, err)

	remark := "Good effort"
	_, err = e.UpdateRemarks("s1", "t1", &remark, nil)
	require.NoError(t, err)
	require.NoError(t, fs.UpdateRank("s1", "t1", 1))

	// Simulate a re-grade and regenerate.
	fs.results[key("s1", "t1")][0].Score = 90
	out, err := e.BuildReport("s1", "t1")
	require.NoError(t, err)

	r := out.Report
	require.Equal(t, 90.0, r.TotalScore)
	require.NotNil(t, r.ClassTeacherRemark)
	require.Equal(t, "Good effort", *r.ClassTeacherRemark)
	require.Nil(t, r.Rank, "regeneration must invalidate the rank")
	require.True(t, r.RankStale())
}

func TestBuildReportNoGradedSubjects(t *testing.T) {
	fs := newFakeStore()
	fs.addStudent("s1", "c1")

	e := newTestEngine(fs)
	out, err := e.BuildReport("s1", "t1")
	require.NoError(t, err)
	require.True(t, out.NoGradedSubjects)

	r := out.Report
	require.NotNil(t, r, "a report must still exist once requested")
	require.Equal(t, 0.0, r.TotalScore)
	require.Equal(t, 0.0, r.AverageScore)
	require.Equal(t, 0, r.GradedSubjects)
	require.Empty(t, r.Results)
}

func TestBuildReportInvalidSubjectExcluded(t *testing.T) {
	fs := newFakeStore()
	fs.addStudent("s1", "c1")
	fs.addResult("s1", "t1", "math", 120, 100, 100) // exceeds max marks
	fs.addResult("s1", "t1", "eng", 70, 100, 100)

	e := newTestEngine(fs)
	out, err := e.BuildReport("s1", "t1")
	require.NoError(t, err)
	require.Len(t, out.FailedSubjects, 1)
	require.Equal(t, "math", out.FailedSubjects[0].SubjectID)

	r := out.Report
	require.Equal(t, 70.0, r.TotalScore)
	require.Equal(t, 70.0, r.AverageScore)
	require.Equal(t, 1, r.GradedSubjects)
}

func TestBuildReportZeroWeightSubjectExcludedSilently(t *testing.T) {
	fs := newFakeStore()
	fs.addStudent("s1", "c1")
	fs.addResult("s1", "t1", "art", 80, 100, 0) // no contributing weight
	fs.addResult("s1", "t1", "eng", 70, 100, 100)

	e := newTestEngine(fs)
	out, err := e.BuildReport("s1", "t1")
	require.NoError(t, err)
	require.Empty(t, out.FailedSubjects)
	require.Equal(t, 1, out.Report.GradedSubjects)
	require.Equal(t, 70.0, out.Report.AverageScore)
}

func TestBuildReportNoGradeBandsAborts(t *testing.T) {
	fs := newFakeStore()
	fs.bands = nil
	fs.addStudent("s1", "c1")

	e := newTestEngine(fs)
	_, err := e.BuildReport("s1", "t1")
	require.ErrorIs(t, err, ErrNoGradeBands)
}

func TestBuildReportAttendanceAttached(t *testing.T) {
	fs := newFakeStore()
	fs.addStudent("s1", "c1")
	fs.addResult("s1", "t1", "math", 60, 100, 100)
	fs.attendance[key("s1", "t1")] = &models.AttendanceSummary{Present: 55, TotalDays: 60}

	e := newTestEngine(fs)
	out, err := e.BuildReport("s1", "t1")
	require.NoError(t, err)
	require.Equal(t, 55, out.Report.AttendancePresent)
	require.Equal(t, 60, out.Report.AttendanceTotal)
	require.InDelta(t, 91.67, out.Report.AttendancePercentage(), 0.01)
}

func TestBuildClassReportsPartialFailure(t *testing.T) {
	fs := newFakeStore()
	fs.addStudent("s1", "c1")
	fs.addStudent("s2", "c1")
	fs.addResult("s1", "t1", "math", 80, 100, 100)
	fs.addResult("s2", "t1", "math", 60, 100, 100)
	// s3 is on the roster but has no class assignment record.
	fs.roster["c1"] = append(fs.roster["c1"], "s3")

	e := newTestEngine(fs)
	summary, err := e.BuildClassReports("c1", "t1")
	require.NoError(t, err)
	require.Equal(t, 3, summary.Total)
	require.Equal(t, 2, summary.Succeeded)
	require.Equal(t, 1, summary.Failed)
	require.Len(t, summary.Results, 3)

	// Ranking ran as the final step of the batch.
	r1, _ := fs.Get("s1", "t1")
	require.NotNil(t, r1.Rank)
	require.Equal(t, 1, *r1.Rank)
	r2, _ := fs.Get("s2", "t1")
	require.NotNil(t, r2.Rank)
	require.Equal(t, 2, *r2.Rank)
}

func TestUpdateRemarksOnlyTouchesGivenFields(t *testing.T) {
	fs := newFakeStore()
	fs.addStudent("s1", "c1")
	fs.addResult("s1", "t1", "math", 60, 100, 100)

	e := newTestEngine(fs)
	_, err := e.BuildReport("s1", "t1")
	require.NoError(t, err)

	teacher := "Keep it up"
	_, err = e.UpdateRemarks("s1", "t1", &teacher, nil)
	require.NoError(t, err)

	principal := "Approved"
	r, err := e.UpdateRemarks("s1", "t1", nil, &principal)
	require.NoError(t, err)
	require.Equal(t, "Keep it up", *r.ClassTeacherRemark)
	require.Equal(t, "Approved", *r.PrincipalRemark)
}
