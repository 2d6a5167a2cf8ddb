package planner

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventTypeAssignment = "assignment"
	EventTypeQuiz       = "quiz"
	EventTypeTest       = "test"
	EventTypeDeadline   = "deadline"
)

func ValidEventType(t string) bool {
	switch t {
	case EventTypeAssignment, EventTypeQuiz, EventTypeTest, EventTypeDeadline:
		return true
	default:
		return false
	}
}

// CalendarEvent is a single-day planner entry. Date is a calendar day in
// YYYY-MM-DD form with no time-of-day; lexicographic order is date order.
// SubjectID is nulled, not cascaded, when the subject is deleted.
type CalendarEvent struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string     `gorm:"type:text;not null" json:"title"`
	Description string     `gorm:"type:text;not null;default:''" json:"description,omitempty"`
	Date        string     `gorm:"type:text;not null;index" json:"date"`
	SubjectID   *uuid.UUID `gorm:"type:uuid;column:subject_id;index" json:"subject_id,omitempty"`
	EventType   string     `gorm:"column:event_type;type:text;not null" json:"event_type"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (CalendarEvent) TableName() string { return "calendar_event" }
