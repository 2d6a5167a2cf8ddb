package planner

import (
	"time"

	"github.com/google/uuid"
)

// AI tutoring categories a subject can opt into. An empty category means the
// subject has no tutor persona attached.
const (
	CategoryMathScience   = "math_science"
	CategoryWriting       = "writing"
	CategorySocialStudies = "social_studies"
	CategoryCoding        = "coding"
)

func ValidCategory(c string) bool {
	switch c {
	case CategoryMathScience, CategoryWriting, CategorySocialStudies, CategoryCoding:
		return true
	default:
		return false
	}
}

// Subject is a user-defined study category (e.g. "Biology") with a display
// color and an optional link to one of the four tutoring personas.
type Subject struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name       string    `gorm:"type:text;not null" json:"name"`
	Color      string    `gorm:"type:text;not null;default:''" json:"color"`
	AICategory string    `gorm:"column:ai_category;type:text;not null;default:'';index" json:"ai_category,omitempty"`

	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Subject) TableName() string { return "subject" }
