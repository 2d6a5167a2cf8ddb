package planner

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/studyhall-backend/internal/domain/planner"
	"github.com/yungbote/studyhall-backend/internal/domain/study"
	"github.com/yungbote/studyhall-backend/internal/platform/dbctx"
	"github.com/yungbote/studyhall-backend/internal/platform/logger"
)

type SubjectRepo interface {
	List(dbc dbctx.Context) ([]*planner.Subject, error)
	GetByID(dbc dbctx.Context, id uuid.UUID) (*planner.Subject, error)
	Create(dbc dbctx.Context, row *planner.Subject) (*planner.Subject, error)
	UpdateFields(dbc dbctx.Context, id uuid.UUID, updates map[string]interface{}) (*planner.Subject, error)
	// Delete removes the subject and, in the same transaction, cascades to
	// its conversations (with messages), learning preference, and flashcard
	// sets (with cards), while nulling the reference on events and tasks.
	Delete(dbc dbctx.Context, id uuid.UUID) error
}

type subjectRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSubjectRepo(db *gorm.DB, log *logger.Logger) SubjectRepo {
	return &subjectRepo{db: db, log: log.With("repo", "SubjectRepo")}
}

func (r *subjectRepo) conn(dbc dbctx.Context) *gorm.DB {
	if dbc.Tx != nil {
		return dbc.Tx
	}
	return r.db
}

func (r *subjectRepo) List(dbc dbctx.Context) ([]*planner.Subject, error) {
	var out []*planner.Subject
	if err := r.conn(dbc).WithContext(dbc.Ctx).
		Model(&planner.Subject{}).
		Order("created_at ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *subjectRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*planner.Subject, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("missing subject id")
	}
	var row planner.Subject
	if err := r.conn(dbc).WithContext(dbc.Ctx).
		First(&row, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *subjectRepo) Create(dbc dbctx.Context, row *planner.Subject) (*planner.Subject, error) {
	if err := r.conn(dbc).WithContext(dbc.Ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (r *subjectRepo) UpdateFields(dbc dbctx.Context, id uuid.UUID, updates map[string]interface{}) (*planner.Subject, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("missing subject id")
	}
	res := r.conn(dbc).WithContext(dbc.Ctx).
		Model(&planner.Subject{}).
		Where("id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(dbc, id)
}

func (r *subjectRepo) Delete(dbc dbctx.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return fmt.Errorf("missing subject id")
	}
	return r.conn(dbc).WithContext(dbc.Ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&planner.Subject{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		// Events and tasks keep their rows; only the link is cleared.
		if err := tx.Model(&planner.CalendarEvent{}).
			Where("subject_id = ?", id).
			Update("subject_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&planner.Task{}).
			Where("subject_id = ?", id).
			Update("subject_id", nil).Error; err != nil {
			return err
		}

		var convIDs []uuid.UUID
		if err := tx.Model(&study.Conversation{}).
			Where("subject_id = ?", id).
			Pluck("id", &convIDs).Error; err != nil {
			return err
		}
		if len(convIDs) > 0 {
			if err := tx.Where("conversation_id IN ?", convIDs).
				Delete(&study.ChatMessage{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", convIDs).
				Delete(&study.Conversation{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("subject_id = ?", id).
			Delete(&study.LearningPreference{}).Error; err != nil {
			return err
		}

		var setIDs []uuid.UUID
		if err := tx.Model(&planner.FlashcardSet{}).
			Where("subject_id = ?", id).
			Pluck("id", &setIDs).Error; err != nil {
			return err
		}
		if len(setIDs) > 0 {
			if err := tx.Where("set_id IN ?", setIDs).
				Delete(&planner.Flashcard{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", setIDs).
				Delete(&planner.FlashcardSet{}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
