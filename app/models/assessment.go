package models

import "time"

// Assessment represents a single gradable event (exam, quiz, homework) for a
// class/subject/term. Weight is the percentage of the subject grade this
// assessment contributes; weights across a subject's assessments are taken
// as given and are not forced to sum to 100.
type Assessment struct {
	ID        string         `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Name      string         `json:"name" gorm:"not null" validate:"required"`
	SubjectID string         `json:"subject_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	ClassID   string         `json:"class_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	TermID    string         `json:"term_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Kind      AssessmentKind `json:"kind" gorm:"not null;default:'exam'" validate:"required,oneof=exam quiz homework project"`
	MaxMarks  float64        `json:"max_marks" gorm:"not null;type:decimal(5,2)" validate:"required,gt=0"`
	Weight    float64        `json:"weight" gorm:"not null;type:decimal(5,2)" validate:"required,gte=0,lte=100"`
	IsActive  bool           `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt *time.Time     `json:"deleted_at,omitempty" gorm:"index"`
	Subject   *Subject       `json:"subject,omitempty" gorm:"foreignKey:SubjectID;references:ID"`
	Class     *Class         `json:"class,omitempty" gorm:"foreignKey:ClassID;references:ID"`
	Term      *Term          `json:"term,omitempty" gorm:"foreignKey:TermID;references:ID"`
}

// AssessmentResult stores a student's raw score for one assessment. SubjectID
// and TermID are denormalized from the assessment so per-term aggregation does
// not need a join fan-out. Owned by the grading workflow; the academics engine
// only reads these.
type AssessmentResult struct {
	ID           string      `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	AssessmentID string      `json:"assessment_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	StudentID    string      `json:"student_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	SubjectID    string      `json:"subject_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	TermID       string      `json:"term_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Score        float64     `json:"score" gorm:"not null;type:decimal(5,2)" validate:"gte=0"`
	MaxMarks     float64     `json:"max_marks" gorm:"not null;type:decimal(5,2)" validate:"required,gt=0"`
	Weight       float64     `json:"weight" gorm:"not null;type:decimal(5,2)" validate:"gte=0,lte=100"`
	CreatedAt    time.Time   `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time   `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt    *time.Time  `json:"deleted_at,omitempty" gorm:"index"`
	Assessment   *Assessment `json:"assessment,omitempty" gorm:"foreignKey:AssessmentID;references:ID"`
	Student      *Student    `json:"student,omitempty" gorm:"foreignKey:StudentID;references:ID"`
}
