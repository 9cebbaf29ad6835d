package academics

import "kisima-schools/app/models"

// AssessmentStore supplies raw graded scores. Owned by the grading workflow;
// read-only to this engine.
type AssessmentStore interface {
	ResultsForStudent(studentID, termID string) ([]*models.AssessmentResult, error)
}

// SettingsStore supplies tenant-scoped grading configuration. Implementations
// must return current values on every call; settings can change between
// requests.
type SettingsStore interface {
	GradeBands() ([]*models.GradeBand, error)
	PassThreshold() (float64, error)
}

// AttendanceStore rolls up attendance per student and term.
type AttendanceStore interface {
	Summary(studentID, termID string) (*models.AttendanceSummary, error)
}

// RosterStore answers class membership questions and applies class
// reassignments. StudentClass returns an empty string for a student without
// a current class assignment.
type RosterStore interface {
	ClassRoster(classID string) ([]string, error)
	ClassExists(classID string) (bool, error)
	StudentClass(studentID string) (string, error)
	UpdateStudentClass(studentID, classID string) error
}

// ReportStore persists term reports. Upsert rewrites the computed fields of
// an existing report (keyed by student+term), resets its rank and must leave
// the staff remark columns untouched.
type ReportStore interface {
	Get(studentID, termID string) (*models.TermReport, error)
	Upsert(report *models.TermReport) error
	UpdateRank(studentID, termID string, rank int) error
	UpdateRemarks(studentID, termID string, classTeacherRemark, principalRemark *string) error
	ForClassTerm(classID, termID string) ([]*models.TermReport, error)
}

// MovementStore appends to the class movement audit trail. Records are never
// mutated or deleted.
type MovementStore interface {
	Record(movement *models.ClassMovement) error
	ExistsForTerm(studentID, termID string) (bool, error)
	HistoryForStudent(studentID string) ([]*models.ClassMovement, error)
}
