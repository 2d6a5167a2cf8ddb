package study

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage is one turn in a conversation. Seq is assigned by the store and
// is the sole ordering key for retrieval; Timestamp is display metadata only
// and is never used as a sort key, so the two may diverge without affecting
// reads.
type ChatMessage struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ConversationID uuid.UUID `gorm:"type:uuid;column:conversation_id;not null;index;index:idx_chat_message_conv_seq,unique,priority:1" json:"conversation_id"`

	Seq int64 `gorm:"column:seq;not null;index:idx_chat_message_conv_seq,unique,priority:2" json:"seq"`

	Role    string `gorm:"column:role;not null;index" json:"role"`
	Content string `gorm:"column:content;type:text;not null;default:''" json:"content"`

	Timestamp time.Time      `gorm:"column:timestamp;not null" json:"timestamp"`
	Metadata  datatypes.JSON `gorm:"type:jsonb;column:metadata;not null;default:'{}'" json:"metadata,omitempty"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (ChatMessage) TableName() string { return "chat_message" }
