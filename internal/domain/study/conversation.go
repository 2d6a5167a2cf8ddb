package study

import (
	"time"

	"github.com/google/uuid"
)

// Conversation is a named thread of tutor chat turns scoped to one subject.
// Deleting the subject cascades here; deleting a conversation cascades to its
// messages.
type Conversation struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SubjectID uuid.UUID `gorm:"type:uuid;column:subject_id;not null;index" json:"subject_id"`
	Title     string    `gorm:"type:text;not null;default:'New Conversation'" json:"title"`

	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Conversation) TableName() string { return "conversation" }
