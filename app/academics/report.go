package academics

import (
	"errors"
	"fmt"
	"sort"

	"kisima-schools/app/models"
)

// SubjectFailure reports one subject that could not be aggregated. The rest
// of the report is still produced.
type SubjectFailure struct {
	SubjectID string `json:"subject_id"`
	Reason    string `json:"reason"`
}

// ReportOutcome is the result of generating one student's term report.
type ReportOutcome struct {
	Report           *models.TermReport `json:"report"`
	FailedSubjects   []SubjectFailure   `json:"failed_subjects,omitempty"`
	NoGradedSubjects bool               `json:"no_graded_subjects,omitempty"`
}

// BuildReport generates (or regenerates) the term report for one student.
// The upsert is keyed by student+term: computed fields are rewritten, the
// rank is reset to nil and staff remarks are left untouched. A student with
// no graded subjects still gets a zeroed report, flagged via
// NoGradedSubjects so the caller can warn instead of silently showing 0%.
func (e *Engine) BuildReport(studentID, termID string) (*ReportOutcome, error) {
	bands, err := e.Settings.GradeBands()
	if err != nil {
		return nil, fmt.Errorf("load grade bands: %w", err)
	}
	if len(bands) == 0 {
		return nil, ErrNoGradeBands
	}

	classID, err := e.Roster.StudentClass(studentID)
	if err != nil {
		return nil, fmt.Errorf("resolve class for student %s: %w", studentID, err)
	}
	if classID == "" {
		// Reports capture the class at generation time; an unassigned
		// student has no class/term snapshot to belong to.
		return nil, fmt.Errorf("student %s is not assigned to a class", studentID)
	}

	raw, err := e.Assessments.ResultsForStudent(studentID, termID)
	if err != nil {
		return nil, fmt.Errorf("load assessment results: %w", err)
	}

	bySubject := make(map[string][]*models.AssessmentResult)
	for _, r := range raw {
		bySubject[r.SubjectID] = append(bySubject[r.SubjectID], r)
	}
	subjectIDs := make([]string, 0, len(bySubject))
	for id := range bySubject {
		subjectIDs = append(subjectIDs, id)
	}
	sort.Strings(subjectIDs)

	outcome := &ReportOutcome{}
	var subjectResults []*models.SubjectResult
	var total float64
	for _, subjectID := range subjectIDs {
		sr, err := AggregateSubject(bySubject[subjectID], bands)
		if errors.Is(err, ErrNoContributingWeight) {
			// Ungraded subject: excluded from the report, never a zero.
			continue
		}
		if err != nil {
			outcome.FailedSubjects = append(outcome.FailedSubjects, SubjectFailure{SubjectID: subjectID, Reason: err.Error()})
			continue
		}
		subjectResults = append(subjectResults, sr)
		total += sr.Total
	}

	report := &models.TermReport{
		StudentID:      studentID,
		TermID:         termID,
		ClassID:        classID,
		GradedSubjects: len(subjectResults),
		Results:        subjectResults,
	}
	if len(subjectResults) > 0 {
		report.TotalScore = round2(total)
		// Average over graded subjects only; subjects the student was never
		// assessed in do not pull the average down.
		report.AverageScore = round2(total / float64(len(subjectResults)))
	} else {
		outcome.NoGradedSubjects = true
	}

	if att, err := e.Attendance.Summary(studentID, termID); err != nil {
		// Attendance is informational on the report; its absence never
		// fails the student.
		e.Log.WithError(err).WithField("student_id", studentID).Warn("attendance summary unavailable")
	} else if att != nil {
		report.AttendancePresent = att.Present
		report.AttendanceTotal = att.TotalDays
	}

	if err := e.Reports.Upsert(report); err != nil {
		return nil, fmt.Errorf("persist term report: %w", err)
	}

	// Re-read so the response carries the staff-owned remark fields that the
	// upsert deliberately did not write.
	saved, err := e.Reports.Get(studentID, termID)
	if err != nil {
		return nil, fmt.Errorf("reload term report: %w", err)
	}
	outcome.Report = saved
	return outcome, nil
}

// StudentReportResult is one student's line in a class-wide generation batch.
type StudentReportResult struct {
	StudentID        string           `json:"student_id"`
	Success          bool             `json:"success"`
	Error            string           `json:"error,omitempty"`
	NoGradedSubjects bool             `json:"no_graded_subjects,omitempty"`
	FailedSubjects   []SubjectFailure `json:"failed_subjects,omitempty"`
}

// ClassReportSummary reports a class-wide generation batch: always
// "N of M succeeded" with per-student reasons, never a bare boolean.
type ClassReportSummary struct {
	ClassID      string                `json:"class_id"`
	TermID       string                `json:"term_id"`
	Total        int                   `json:"total"`
	Succeeded    int                   `json:"succeeded"`
	Failed       int                   `json:"failed"`
	Results      []StudentReportResult `json:"results"`
	RankFailures []RankFailure         `json:"rank_failures,omitempty"`
}

// BuildClassReports regenerates every report for a class and term, then
// re-ranks the class once all reports are in place. Ranking is the final
// step and is never interleaved with generation; a single student's failure
// does not abort the batch.
func (e *Engine) BuildClassReports(classID, termID string) (*ClassReportSummary, error) {
	roster, err := e.Roster.ClassRoster(classID)
	if err != nil {
		return nil, fmt.Errorf("load roster for class %s: %w", classID, err)
	}

	summary := &ClassReportSummary{
		ClassID: classID,
		TermID:  termID,
		Total:   len(roster),
		Results: make([]StudentReportResult, 0, len(roster)),
	}
	for _, studentID := range roster {
		res := StudentReportResult{StudentID: studentID}
		outcome, err := e.BuildReport(studentID, termID)
		if errors.Is(err, ErrNoGradeBands) {
			// Configuration-level failure, not a per-student one.
			return nil, err
		}
		if err != nil {
			res.Error = err.Error()
			summary.Failed++
			e.Log.WithError(err).WithFields(map[string]interface{}{
				"student_id": studentID,
				"term_id":    termID,
			}).Warn("report generation failed")
		} else {
			res.Success = true
			res.NoGradedSubjects = outcome.NoGradedSubjects
			res.FailedSubjects = outcome.FailedSubjects
			summary.Succeeded++
		}
		summary.Results = append(summary.Results, res)
	}

	rankFailures, err := e.RankClass(classID, termID)
	if err != nil {
		return nil, fmt.Errorf("rank class %s: %w", classID, err)
	}
	summary.RankFailures = rankFailures

	e.Log.WithFields(map[string]interface{}{
		"class_id": classID,
		"term_id":  termID,
	}).Infof("generated %d of %d term reports", summary.Succeeded, summary.Total)
	return summary, nil
}

// UpdateRemarks writes the staff-owned remark fields of a report. Nil fields
// are left unchanged; computed fields are never touched here.
func (e *Engine) UpdateRemarks(studentID, termID string, classTeacherRemark, principalRemark *string) (*models.TermReport, error) {
	report, err := e.Reports.Get(studentID, termID)
	if err != nil {
		return nil, fmt.Errorf("load term report: %w", err)
	}
	if report == nil {
		return nil, fmt.Errorf("no term report for student %s in term %s", studentID, termID)
	}
	if classTeacherRemark != nil {
		report.ClassTeacherRemark = classTeacherRemark
	}
	if principalRemark != nil {
		report.PrincipalRemark = principalRemark
	}
	if err := e.Reports.UpdateRemarks(studentID, termID, report.ClassTeacherRemark, report.PrincipalRemark); err != nil {
		return nil, fmt.Errorf("update remarks: %w", err)
	}
	return report, nil
}
