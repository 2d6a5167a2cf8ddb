package study

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/studyhall-backend/internal/domain/study"
	"github.com/yungbote/studyhall-backend/internal/platform/dbctx"
	"github.com/yungbote/studyhall-backend/internal/platform/logger"
)

type MessageRepo interface {
	// ListByConversation returns the newest messages up to limit, ordered by
	// ascending seq. Seq is the only ordering key; timestamps are never
	// consulted.
	ListByConversation(dbc dbctx.Context, conversationID uuid.UUID, limit int) ([]*study.ChatMessage, error)
	// MaxSeq returns the highest assigned sequence number, 0 when the
	// conversation has no messages.
	MaxSeq(dbc dbctx.Context, conversationID uuid.UUID) (int64, error)
	Create(dbc dbctx.Context, row *study.ChatMessage) (*study.ChatMessage, error)
}

type messageRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewMessageRepo(db *gorm.DB, log *logger.Logger) MessageRepo {
	return &messageRepo{db: db, log: log.With("repo", "MessageRepo")}
}

func (r *messageRepo) conn(dbc dbctx.Context) *gorm.DB {
	if dbc.Tx != nil {
		return dbc.Tx
	}
	return r.db
}

func (r *messageRepo) ListByConversation(dbc dbctx.Context, conversationID uuid.UUID, limit int) ([]*study.ChatMessage, error) {
	if conversationID == uuid.Nil {
		return nil, fmt.Errorf("missing conversation id")
	}
	if limit <= 0 || limit > 500 {
		limit = 200
	}
	// Take the tail of the conversation so a long chat keeps its latest
	// turns, then restore chronological order for the caller.
	var out []*study.ChatMessage
	if err := r.conn(dbc).WithContext(dbc.Ctx).
		Model(&study.ChatMessage{}).
		Where("conversation_id = ?", conversationID).
		Order("seq DESC").
		Limit(limit).
		Find(&out).Error; err != nil {
		return nil, err
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}

func (r *messageRepo) MaxSeq(dbc dbctx.Context, conversationID uuid.UUID) (int64, error) {
	if conversationID == uuid.Nil {
		return 0, fmt.Errorf("missing conversation id")
	}
	var maxSeq int64
	if err := r.conn(dbc).WithContext(dbc.Ctx).
		Model(&study.ChatMessage{}).
		Select("COALESCE(MAX(seq), 0)").
		Where("conversation_id = ?", conversationID).
		Scan(&maxSeq).Error; err != nil {
		return 0, err
	}
	return maxSeq, nil
}

func (r *messageRepo) Create(dbc dbctx.Context, row *study.ChatMessage) (*study.ChatMessage, error) {
	if row.Seq <= 0 {
		// Single-writer deployment: max+1 is safe without row locking.
		maxSeq, err := r.MaxSeq(dbc, row.ConversationID)
		if err != nil {
			return nil, err
		}
		row.Seq = maxSeq + 1
	}
	if err := r.conn(dbc).WithContext(dbc.Ctx).Create(row).Error; err != nil {
		return nil, err
	}
	return row, nil
}
