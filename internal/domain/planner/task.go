package planner

import (
	"time"

	"github.com/google/uuid"
)

// Task is a daily to-do item. SortOrder is a manual, user-controlled sort key
// scoped to the task's date; uniqueness within a date is maintained by the
// reorder logic, not by a store constraint. SubjectID is nulled when the
// subject is deleted.
type Task struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Title     string     `gorm:"type:text;not null" json:"title"`
	Completed bool       `gorm:"not null;default:false" json:"completed"`
	Date      string     `gorm:"type:text;not null;index:idx_task_date_order,priority:1" json:"date"`
	SortOrder int        `gorm:"column:sort_order;not null;default:0;index:idx_task_date_order,priority:2" json:"sort_order"`
	SubjectID *uuid.UUID `gorm:"type:uuid;column:subject_id;index" json:"subject_id,omitempty"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Task) TableName() string { return "task" }
