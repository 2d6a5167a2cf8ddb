package study

import (
	"time"

	"github.com/google/uuid"
)

const (
	StyleStepByStep     = "step_by_step"
	StyleAnalogies      = "analogies"
	StyleVisualExamples = "visual_examples"
	StyleConcise        = "concise"
	StyleSocratic       = "socratic"

	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

// LearningPreference tunes how the tutor explains things for one subject.
// The store enforces at most one row per subject; writes go through an
// upsert that keeps the original row id. Empty or unknown style/level values
// mean "use the persona default" and contribute nothing to the prompt.
type LearningPreference struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SubjectID uuid.UUID `gorm:"type:uuid;column:subject_id;not null;uniqueIndex" json:"subject_id"`

	ExplanationStyle   string `gorm:"column:explanation_style;type:text;not null;default:''" json:"explanation_style,omitempty"`
	ComplexityLevel    string `gorm:"column:complexity_level;type:text;not null;default:''" json:"complexity_level,omitempty"`
	CustomInstructions string `gorm:"column:custom_instructions;type:text;not null;default:''" json:"custom_instructions,omitempty"`

	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (LearningPreference) TableName() string { return "learning_preference" }
