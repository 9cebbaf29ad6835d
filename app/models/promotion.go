package models

import "time"

// ClassMovement is an append-only audit record of a class reassignment.
// Never mutated or deleted. TermID scopes the duplicate-movement guard: at
// most one movement per student per term unless a decision is forced.
type ClassMovement struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	StudentID   string    `json:"student_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	FromClassID *string   `json:"from_class_id,omitempty" gorm:"index;type:uuid"`
	ToClassID   string    `json:"to_class_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	TermID      string    `json:"term_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Reason      string    `json:"reason" gorm:"type:text"`
	ChangedBy   string    `json:"changed_by" gorm:"not null;type:uuid"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	Student     *Student  `json:"student,omitempty" gorm:"foreignKey:StudentID;references:ID"`
}

// PromotionCandidate is the advisory recommendation for one student,
// computed on demand from the class's current term reports. Not persisted.
type PromotionCandidate struct {
	StudentID    string          `json:"student_id"`
	StudentName  string          `json:"student_name,omitempty"`
	AverageScore float64         `json:"average_score"`
	Recommended  PromotionAction `json:"recommended_action"`
	Reason       string          `json:"reason"`
}

// PromotionDecision is one human decision submitted for processing. The
// target class is chosen by the caller, not inferred. Force bypasses the
// one-movement-per-student-per-term guard.
type PromotionDecision struct {
	StudentID     string          `json:"student_id" validate:"required,uuid"`
	Action        PromotionAction `json:"action" validate:"required,oneof=PROMOTE RETAIN"`
	TargetClassID string          `json:"target_class_id" validate:"required,uuid"`
	Reason        string          `json:"reason"`
	Force         bool            `json:"force"`
}

// PromotionOutcome reports the result of processing one decision. Each
// decision is an independent unit of work; failures never roll back or
// block the rest of the batch.
type PromotionOutcome struct {
	StudentID  string `json:"student_id"`
	Success    bool   `json:"success"`
	MovementID string `json:"movement_id,omitempty"`
	Error      string `json:"error,omitempty"`
}
