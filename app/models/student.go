package models

import "time"

// Student represents an enrolled learner. ClassID is the student's current
// class assignment and is what promotion processing rewrites.
type Student struct {
	ID            string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	StudentNumber string     `json:"student_number" gorm:"uniqueIndex;not null" validate:"required"`
	FirstName     string     `json:"first_name" gorm:"not null" validate:"required"`
	LastName      string     `json:"last_name" gorm:"not null" validate:"required"`
	Gender        Gender     `json:"gender" gorm:"type:varchar(10)" validate:"omitempty,oneof=male female other"`
	ClassID       *string    `json:"class_id,omitempty" gorm:"index;type:uuid" validate:"omitempty,uuid"`
	IsActive      bool       `json:"is_active" gorm:"default:true"`
	CreatedAt     time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt     *time.Time `json:"deleted_at,omitempty" gorm:"index"`
	Class         *Class     `json:"class,omitempty" gorm:"foreignKey:ClassID;references:ID"`
}
