package study

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/studyhall-backend/internal/domain/study"
	"github.com/yungbote/studyhall-backend/internal/platform/dbctx"
	"github.com/yungbote/studyhall-backend/internal/platform/logger"
)

type ConversationRepo interface {
	ListBySubject(dbc dbctx.Context, subjectID uuid.UUID) ([]*study.Conversation, error)
	GetByID(dbc dbctx.Context, id uuid.UUID) (*study.Conversation, error)
	Create(dbc dbctx.Context, row *study.Conversation) (*study.Conversation, error)
	// Delete removes the conversation and its messages in one transaction.
	Delete(dbc dbctx.Context, id uuid.UUID) error
}

type conversationRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewConversationRepo(db *gorm.DB, log *logger.Logger) ConversationRepo {
	return &conversationRepo{db: db, log: log.With("repo", "ConversationRepo")}
}

func (r *conversationRepo) conn(dbc dbctx.Context) *gorm.DB {
	if dbc.Tx != nil {
		return dbc.Tx
	}
	return r.db
}

func (r *conversationRepo) ListBySubject(dbc dbctx.Context, subjectID uuid.UUID) ([]*study.Conversation, error) {
	if subjectID == uuid.Nil {
		return nil, fmt.Errorf("missing subject id")
	}
	var out []*study.Conversation
	if err := r.conn(dbc).WithContext(dbc.Ctx).
		Model(&study.Conversation{}).
		Where("subject_id = ?", subjectID).
		Order("created_at DESC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *conversationRepo) GetByID(dbc dbctx.Context, id uuid.UUID) (*study.Conversation, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("missing conversation id")
	}
	var row study.Conversation
	if err := r.conn(dbc).WithContext(dbc.Ctx).
		First(&row, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *conversationRepo) Create(dbc dbctx.Context, row *study.Conversation) (*study.Conversation, error) {
	if err := r.conn(dbc).WithContext(dbc.Ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}

func (r *conversationRepo) Delete(dbc dbctx.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return fmt.Errorf("missing conversation id")
	}
	return r.conn(dbc).WithContext(dbc.Ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&study.Conversation{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Where("conversation_id = ?", id).Delete(&study.ChatMessage{}).Error
	})
}
