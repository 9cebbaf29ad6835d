package models

import "time"

// SubjectResult is the weighted aggregate of all of a student's assessments
// in one subject for a term. It is a projection recomputed from raw results
// on every report generation, never edited directly.
type SubjectResult struct {
	ID        string  `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	ReportID  string  `json:"report_id" gorm:"not null;index;type:uuid"`
	SubjectID string  `json:"subject_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Total     float64 `json:"total" gorm:"not null;type:decimal(5,2)"`
	Grade     string  `json:"grade" gorm:"not null"`
	GPAPoint  float64 `json:"gpa_point" gorm:"default:0;type:decimal(5,2)"`
	Remark    string  `json:"remark" gorm:"type:text"`
	Subject   *Subject `json:"subject,omitempty" gorm:"foreignKey:SubjectID;references:ID"`
}

// TermReport is the per-student, per-term report card. Computed fields
// (totals, average, rank, attendance, results) are rewritten on every
// regeneration; the two remark fields are owned by staff and must survive
// regeneration untouched. Rank is nil until the class is ranked and is
// reset to nil whenever the report is regenerated.
type TermReport struct {
	ID                 string           `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	StudentID          string           `json:"student_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	TermID             string           `json:"term_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	ClassID            string           `json:"class_id" gorm:"not null;index;type:uuid"`
	TotalScore         float64          `json:"total_score" gorm:"not null;type:decimal(7,2)"`
	AverageScore       float64          `json:"average_score" gorm:"not null;type:decimal(5,2)"`
	GradedSubjects     int              `json:"graded_subjects" gorm:"not null;default:0"`
	Rank               *int             `json:"rank,omitempty"`
	AttendancePresent  int              `json:"attendance_present" gorm:"default:0"`
	AttendanceTotal    int              `json:"attendance_total" gorm:"default:0"`
	ClassTeacherRemark *string          `json:"class_teacher_remark,omitempty" gorm:"type:text"`
	PrincipalRemark    *string          `json:"principal_remark,omitempty" gorm:"type:text"`
	CreatedAt          time.Time        `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt          time.Time        `json:"updated_at" gorm:"autoUpdateTime"`
	Results            []*SubjectResult `json:"results" gorm:"foreignKey:ReportID;references:ID"`
	Student            *Student         `json:"student,omitempty" gorm:"foreignKey:StudentID;references:ID"`
}

// AttendancePercentage returns present days as a percentage of recorded days,
// or 0 when nothing was recorded. Informational only; it never feeds the
// average or the rank.
func (r *TermReport) AttendancePercentage() float64 {
	if r.AttendanceTotal == 0 {
		return 0
	}
	return float64(r.AttendancePresent) / float64(r.AttendanceTotal) * 100
}

// RankStale reports whether the rank can be trusted: a nil rank means the
// report was regenerated after the last ranking pass.
func (r *TermReport) RankStale() bool {
	return r.Rank == nil
}

// AttendanceSummary is the per-student, per-term attendance roll-up consumed
// from the attendance records.
type AttendanceSummary struct {
	Present   int `json:"present"`
	TotalDays int `json:"total_days"`
}
