package services

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	studyRepos "github.com/yungbote/studyhall-backend/internal/data/repos/study"
	"github.com/yungbote/studyhall-backend/internal/domain/study"
	"github.com/yungbote/studyhall-backend/internal/platform/dbctx"
	"github.com/yungbote/studyhall-backend/internal/platform/logger"
)

// StudyService manages conversations, their message history, and the
// per-subject learning preference. Generating tutor replies lives in
// TutorService.
type StudyService interface {
	ListConversations(dbc dbctx.Context, subjectID uuid.UUID) ([]*study.Conversation, error)
	CreateConversation(dbc dbctx.Context, row *study.Conversation) (*study.Conversation, error)
	DeleteConversation(dbc dbctx.Context, id uuid.UUID) error

	ListMessages(dbc dbctx.Context, conversationID uuid.UUID, limit int) ([]*study.ChatMessage, error)

	// GetPreference returns nil without error when no preference is stored.
	GetPreference(dbc dbctx.Context, subjectID uuid.UUID) (*study.LearningPreference, error)
	SavePreference(dbc dbctx.Context, row *study.LearningPreference) (*study.LearningPreference, error)
}

type studyService struct {
	log           *logger.Logger
	conversations studyRepos.ConversationRepo
	messages      studyRepos.MessageRepo
	preferences   studyRepos.PreferenceRepo
}

func NewStudyService(
	log *logger.Logger,
	conversationRepo studyRepos.ConversationRepo,
	messageRepo studyRepos.MessageRepo,
	preferenceRepo studyRepos.PreferenceRepo,
) StudyService {
	return &studyService{
		log:           log.With("service", "StudyService"),
		conversations: conversationRepo,
		messages:      messageRepo,
		preferences:   preferenceRepo,
	}
}

func (s *studyService) ListConversations(dbc dbctx.Context, subjectID uuid.UUID) ([]*study.Conversation, error) {
	return s.conversations.ListBySubject(dbc, subjectID)
}

func (s *studyService) CreateConversation(dbc dbctx.Context, row *study.Conversation) (*study.Conversation, error) {
	if row.Title == "" {
		row.Title = "New Conversation"
	}
	return s.conversations.Create(dbc, row)
}

func (s *studyService) DeleteConversation(dbc dbctx.Context, id uuid.UUID) error {
	return s.conversations.Delete(dbc, id)
}

func (s *studyService) ListMessages(dbc dbctx.Context, conversationID uuid.UUID, limit int) ([]*study.ChatMessage, error) {
	if _, err := s.conversations.GetByID(dbc, conversationID); err != nil {
		return nil, err
	}
	return s.messages.ListByConversation(dbc, conversationID, limit)
}

func (s *studyService) GetPreference(dbc dbctx.Context, subjectID uuid.UUID) (*study.LearningPreference, error) {
	row, err := s.preferences.GetBySubject(dbc, subjectID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return row, nil
}

func (s *studyService) SavePreference(dbc dbctx.Context, row *study.LearningPreference) (*study.LearningPreference, error) {
	return s.preferences.Upsert(dbc, row)
}
