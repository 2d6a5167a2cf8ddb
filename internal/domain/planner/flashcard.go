package planner

import (
	"time"

	"github.com/google/uuid"
)

// FlashcardSet groups cards under a subject. Deleting the subject cascades to
// its sets; deleting a set cascades to its cards.
type FlashcardSet struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SubjectID uuid.UUID `gorm:"type:uuid;column:subject_id;not null;index" json:"subject_id"`
	Title     string    `gorm:"type:text;not null" json:"title"`

	CreatedAt time.Time `gorm:"not null;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (FlashcardSet) TableName() string { return "flashcard_set" }

// Flashcard carries front/back text and a manual sort key with the same
// semantics as Task.SortOrder, scoped to the set.
type Flashcard struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SetID     uuid.UUID `gorm:"type:uuid;column:set_id;not null;index:idx_flashcard_set_order,priority:1" json:"set_id"`
	Front     string    `gorm:"type:text;not null" json:"front"`
	Back      string    `gorm:"type:text;not null" json:"back"`
	SortOrder int       `gorm:"column:sort_order;not null;default:0;index:idx_flashcard_set_order,priority:2" json:"sort_order"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Flashcard) TableName() string { return "flashcard" }
