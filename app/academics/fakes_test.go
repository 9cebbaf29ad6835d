package academics

import (
	"fmt"
	"io"
	"sort"

	"github.com/sirupsen/logrus"

	"kisima-schools/app/models"
)

// fakeStore is an in-memory implementation of every collaborator interface,
// used to exercise the engine without a database.
type fakeStore struct {
	results      map[string][]*models.AssessmentResult
	bands        []*models.GradeBand
	threshold    float64
	attendance   map[string]*models.AttendanceSummary
	reports      map[string]*models.TermReport
	movements    []*models.ClassMovement
	roster       map[string][]string
	classes      map[string]bool
	studentClass map[string]string

	failRankFor map[string]bool
}

func key(studentID, termID string) string { return studentID + "|" + termID }

func defaultBands() []*models.GradeBand {
	return []*models.GradeBand{
		{ID: "b1", Label: "A+", MinScore: 90, MaxScore: 100, GPAPoint: 5, Remark: "Excellent"},
		{ID: "b2", Label: "A", MinScore: 80, MaxScore: 89, GPAPoint: 4, Remark: "Very good"},
		{ID: "b3", Label: "B", MinScore: 60, MaxScore: 79, GPAPoint: 3, Remark: "Good"},
		{ID: "b4", Label: "C", MinScore: 50, MaxScore: 59, GPAPoint: 2, Remark: "Fair"},
		{ID: "b5", Label: "D", MinScore: 40, MaxScore: 49, GPAPoint: 1, Remark: "Below average"},
		{ID: "b6", Label: "F", MinScore: 0, MaxScore: 39, GPAPoint: 0, Remark: "Fail"},
	}
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		results:      make(map[string][]*models.AssessmentResult),
		bands:        defaultBands(),
		threshold:    DefaultPassThreshold,
		attendance:   make(map[string]*models.AttendanceSummary),
		reports:      make(map[string]*models.TermReport),
		roster:       make(map[string][]string),
		classes:      make(map[string]bool),
		studentClass: make(map[string]string),
		failRankFor:  make(map[string]bool),
	}
}

func newTestEngine(fs *fakeStore) *Engine {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewEngine(fs, fs, fs, fs, fs, fs, log)
}

func (f *fakeStore) addStudent(studentID, classID string) {
	f.studentClass[studentID] = classID
	f.roster[classID] = append(f.roster[classID], studentID)
	f.classes[classID] = true
}

func (f *fakeStore) addResult(studentID, termID, subjectID string, score, maxMarks, weight float64) {
	k := key(studentID, termID)
	f.results[k] = append(f.results[k], &models.AssessmentResult{
		ID:           fmt.Sprintf("r%d", len(f.results[k])+1),
		AssessmentID: fmt.Sprintf("a-%s-%d", subjectID, len(f.results[k])+1),
		StudentID:    studentID,
		SubjectID:    subjectID,
		TermID:       termID,
		Score:        score,
		MaxMarks:     maxMarks,
		Weight:       weight,
	})
}

func (f *fakeStore) seedReport(studentID, termID, classID string, average float64, gradedSubjects int) *models.TermReport {
	r := &models.TermReport{
		ID:             fmt.Sprintf("rep-%s", studentID),
		StudentID:      studentID,
		TermID:         termID,
		ClassID:        classID,
		AverageScore:   average,
		TotalScore:     average * float64(gradedSubjects),
		GradedSubjects: gradedSubjects,
	}
	f.reports[key(studentID, termID)] = r
	f.addStudent(studentID, classID)
	return r
}

// AssessmentStore

func (f *fakeStore) ResultsForStudent(studentID, termID string) ([]*models.AssessmentResult, error) {
	return f.results[key(studentID, termID)], nil
}

// SettingsStore

func (f *fakeStore) GradeBands() ([]*models.GradeBand, error) { return f.bands, nil }

func (f *fakeStore) PassThreshold() (float64, error) { return f.threshold, nil }

// AttendanceStore

func (f *fakeStore) Summary(studentID, termID string) (*models.AttendanceSummary, error) {
	if s, ok := f.attendance[key(studentID, termID)]; ok {
		return s, nil
	}
	return &models.AttendanceSummary{}, nil
}

// RosterStore

func (f *fakeStore) ClassRoster(classID string) ([]string, error) {
	roster := append([]string(nil), f.roster[classID]...)
	sort.Strings(roster)
	return roster, nil
}

func (f *fakeStore) ClassExists(classID string) (bool, error) { return f.classes[classID], nil }

func (f *fakeStore) StudentClass(studentID string) (string, error) {
	return f.studentClass[studentID], nil
}

func (f *fakeStore) UpdateStudentClass(studentID, classID string) error {
	f.studentClass[studentID] = classID
	return nil
}

// ReportStore

func (f *fakeStore) Get(studentID, termID string) (*models.TermReport, error) {
	return f.reports[key(studentID, termID)], nil
}

func (f *fakeStore) Upsert(report *models.TermReport) error {
	k := key(report.StudentID, report.TermID)
	if existing, ok := f.reports[k]; ok {
		// Computed fields are rewritten, the rank is reset and staff
		// remarks survive, same as the SQL upsert.
		report.ID = existing.ID
		report.ClassTeacherRemark = existing.ClassTeacherRemark
		report.PrincipalRemark = existing.PrincipalRemark
	} else {
		report.ID = fmt.Sprintf("rep-%s", report.StudentID)
	}
	report.Rank = nil
	f.reports[k] = report
	return nil
}

func (f *fakeStore) UpdateRank(studentID, termID string, rank int) error {
	if f.failRankFor[studentID] {
		return fmt.Errorf("simulated persist failure for %s", studentID)
	}
	r, ok := f.reports[key(studentID, termID)]
	if !ok {
		return fmt.Errorf("no report for %s", studentID)
	}
	r.Rank = &rank
	return nil
}

func (f *fakeStore) UpdateRemarks(studentID, termID string, classTeacherRemark, principalRemark *string) error {
	r, ok := f.reports[key(studentID, termID)]
	if !ok {
		return fmt.Errorf("no report for %s", studentID)
	}
	r.ClassTeacherRemark = classTeacherRemark
	r.PrincipalRemark = principalRemark
	return nil
}

func (f *fakeStore) ForClassTerm(classID, termID string) ([]*models.TermReport, error) {
	var out []*models.TermReport
	for _, r := range f.reports {
		if r.ClassID == classID && r.TermID == termID {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StudentID < out[j].StudentID })
	return out, nil
}

// MovementStore

func (f *fakeStore) Record(movement *models.ClassMovement) error {
	movement.ID = fmt.Sprintf("mv-%d", len(f.movements)+1)
	f.movements = append(f.movements, movement)
	return nil
}

func (f *fakeStore) ExistsForTerm(studentID, termID string) (bool, error) {
	for _, m := range f.movements {
		if m.StudentID == studentID && m.TermID == termID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) HistoryForStudent(studentID string) ([]*models.ClassMovement, error) {
	var out []*models.ClassMovement
	for _, m := range f.movements {
		if m.StudentID == studentID {
			out = append(out, m)
		}
	}
	return out, nil
}
