package models

// AttendanceStatus defines the possible status values for attendance.
type AttendanceStatus string

const (
	Present AttendanceStatus = "present"
	Absent  AttendanceStatus = "absent"
	Late    AttendanceStatus = "late"
	Excused AttendanceStatus = "excused"
)

// Gender defines the possible gender values for a student.
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
	Other  Gender = "other"
)

// PromotionAction defines the decision taken for a student at the end of a term.
type PromotionAction string

const (
	ActionPromote PromotionAction = "PROMOTE"
	ActionRetain  PromotionAction = "RETAIN"
)

// AssessmentKind defines the kind of gradable event.
type AssessmentKind string

const (
	AssessmentExam     AssessmentKind = "exam"
	AssessmentQuiz     AssessmentKind = "quiz"
	AssessmentHomework AssessmentKind = "homework"
	AssessmentProject  AssessmentKind = "project"
)
