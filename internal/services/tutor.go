package services

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	plannerRepos "github.com/yungbote/studyhall-backend/internal/data/repos/planner"
	studyRepos "github.com/yungbote/studyhall-backend/internal/data/repos/study"
	"github.com/yungbote/studyhall-backend/internal/domain/study"
	"github.com/yungbote/studyhall-backend/internal/modules/tutor"
	"github.com/yungbote/studyhall-backend/internal/platform/apierr"
	"github.com/yungbote/studyhall-backend/internal/platform/dbctx"
	"github.com/yungbote/studyhall-backend/internal/platform/gemini"
	"github.com/yungbote/studyhall-backend/internal/platform/logger"
)

// TutorService runs one chat turn: persist the student's message, build the
// subject-specific prompt, call the model, persist the reply. The student's
// message is stored before the provider call so a failed turn still leaves
// it in the history.
type TutorService interface {
	Respond(dbc dbctx.Context, conversationID uuid.UUID, category, message string, history []tutor.Turn) (string, error)
}

type tutorService struct {
	log           *logger.Logger
	subjects      plannerRepos.SubjectRepo
	conversations studyRepos.ConversationRepo
	messages      studyRepos.MessageRepo
	preferences   studyRepos.PreferenceRepo
	provider      gemini.Client
	now           func() time.Time
}

func NewTutorService(
	log *logger.Logger,
	subjectRepo plannerRepos.SubjectRepo,
	conversationRepo studyRepos.ConversationRepo,
	messageRepo studyRepos.MessageRepo,
	preferenceRepo studyRepos.PreferenceRepo,
	provider gemini.Client,
) TutorService {
	return &tutorService{
		log:           log.With("service", "TutorService"),
		subjects:      subjectRepo,
		conversations: conversationRepo,
		messages:      messageRepo,
		preferences:   preferenceRepo,
		provider:      provider,
		now:           time.Now,
	}
}

func (s *tutorService) Respond(dbc dbctx.Context, conversationID uuid.UUID, category, message string, history []tutor.Turn) (string, error) {
	conv, err := s.conversations.GetByID(dbc, conversationID)
	if err != nil {
		return "", err
	}
	if category == "" {
		subject, err := s.subjects.GetByID(dbc, conv.SubjectID)
		if err != nil {
			return "", err
		}
		category = subject.AICategory
	}

	ts := s.now()
	if _, err := s.messages.Create(dbc, &study.ChatMessage{
		ConversationID: conversationID,
		Role:           study.RoleUser,
		Content:        message,
		Timestamp:      ts,
	}); err != nil {
		return "", err
	}

	prefs, err := s.preferences.GetBySubject(dbc, conv.SubjectID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return "", err
		}
		prefs = nil
	}

	system, err := tutor.ComposeSystemPrompt(category, prefs)
	if err != nil {
		return "", apierr.New(http.StatusBadRequest, "unknown_category", err)
	}

	reply, err := s.provider.GenerateText(dbc.Ctx, tutor.RenderPrompt(system, append(history, tutor.Turn{Role: study.RoleUser, Content: message})))
	if err != nil {
		s.log.Error("tutor provider call failed", "conversation_id", conversationID, "error", err)
		return "", classifyProviderError(err)
	}
	if strings.TrimSpace(reply) == "" {
		reply = tutor.FallbackReply
	}

	if _, err := s.messages.Create(dbc, &study.ChatMessage{
		ConversationID: conversationID,
		Role:           study.RoleAssistant,
		Content:        reply,
		Timestamp:      s.now(),
	}); err != nil {
		return "", err
	}
	return reply, nil
}

func classifyProviderError(err error) error {
	switch {
	case errors.Is(err, gemini.ErrNotConfigured):
		return apierr.New(http.StatusInternalServerError, "provider_not_configured", err)
	case errors.Is(err, gemini.ErrRateLimited):
		return apierr.New(http.StatusTooManyRequests, "rate_limited", err)
	case errors.Is(err, context.DeadlineExceeded):
		return apierr.New(http.StatusGatewayTimeout, "provider_timeout", err)
	default:
		return apierr.New(http.StatusBadGateway, "provider_failed", err)
	}
}
