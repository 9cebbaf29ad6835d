package models

import "time"

// GradeBand represents one grading rule, e.g. 80-100 = "A". Bounds are
// inclusive on a 0-100 scale. Bands for a school should not overlap and
// should cover the whole scale; the resolver tolerates misconfiguration
// at lookup time rather than enforcing it here.
type GradeBand struct {
	ID        string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Label     string     `json:"label" gorm:"uniqueIndex;not null" validate:"required"`
	MinScore  float64    `json:"min_score" gorm:"not null;type:decimal(5,2)" validate:"gte=0,lte=100"`
	MaxScore  float64    `json:"max_score" gorm:"not null;type:decimal(5,2)" validate:"gte=0,lte=100,gtefield=MinScore"`
	GPAPoint  float64    `json:"gpa_point" gorm:"default:0;type:decimal(5,2)" validate:"gte=0"`
	Remark    string     `json:"remark" gorm:"type:text"`
	IsActive  bool       `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt *time.Time `json:"deleted_at,omitempty" gorm:"index"`
}
