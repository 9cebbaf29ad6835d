package models

import "time"

// Attendance represents a student's attendance record for one school day.
// Rolled up per term into an AttendanceSummary for report cards.
type Attendance struct {
	ID        string           `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	StudentID string           `json:"student_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	ClassID   *string          `json:"class_id,omitempty" gorm:"index;type:uuid"`
	TermID    string           `json:"term_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Date      time.Time        `json:"date" gorm:"not null;index;type:date" validate:"required"`
	Status    AttendanceStatus `json:"status" gorm:"not null;type:varchar(10)" validate:"required,oneof=present absent late excused"`
	MarkedBy  *string          `json:"marked_by,omitempty" gorm:"type:uuid"`
	CreatedAt time.Time        `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time        `json:"updated_at" gorm:"autoUpdateTime"`
	Student   *Student         `json:"student,omitempty" gorm:"foreignKey:StudentID;references:ID"`
}
