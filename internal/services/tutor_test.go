package services

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	plannerRepos "github.com/yungbote/studyhall-backend/internal/data/repos/planner"
	studyRepos "github.com/yungbote/studyhall-backend/internal/data/repos/study"
	"github.com/yungbote/studyhall-backend/internal/data/repos/testutil"
	"github.com/yungbote/studyhall-backend/internal/domain/planner"
	"github.com/yungbote/studyhall-backend/internal/domain/study"
	"github.com/yungbote/studyhall-backend/internal/modules/tutor"
	"github.com/yungbote/studyhall-backend/internal/platform/apierr"
	"github.com/yungbote/studyhall-backend/internal/platform/dbctx"
	"github.com/yungbote/studyhall-backend/internal/platform/gemini"
)

type fakeProvider struct {
	reply      string
	err        error
	lastPrompt string
}

func (f *fakeProvider) GenerateText(_ context.Context, prompt string) (string, error) {
	f.lastPrompt = prompt
	return f.reply, f.err
}

func (f *fakeProvider) Configured() bool { return f.err != gemini.ErrNotConfigured }

type tutorFixture struct {
	svc      TutorService
	study    StudyService
	provider *fakeProvider
	subject  *planner.Subject
	conv     *study.Conversation
}

func newTutorFixture(t *testing.T) (dbctx.Context, *tutorFixture) {
	t.Helper()
	log := testutil.Logger(t)
	db := testutil.DB(t)
	dbc := dbctx.Background()
	dbc.Tx = db

	subjects := plannerRepos.NewSubjectRepo(db, log)
	conversations := studyRepos.NewConversationRepo(db, log)
	messages := studyRepos.NewMessageRepo(db, log)
	preferences := studyRepos.NewPreferenceRepo(db, log)

	subject, err := subjects.Create(dbc, &planner.Subject{
		Name:       "Calculus",
		Color:      "#1d4ed8",
		AICategory: planner.CategoryMathScience,
	})
	if err != nil {
		t.Fatalf("create subject: %v", err)
	}
	conv, err := conversations.Create(dbc, &study.Conversation{SubjectID: subject.ID, Title: "Limits"})
	if err != nil {
		t.Fatalf("create conversation: %v", err)
	}

	provider := &fakeProvider{reply: "Think about the slope of a secant line."}
	return dbc, &tutorFixture{
		svc:      NewTutorService(log, subjects, conversations, messages, preferences, provider),
		study:    NewStudyService(log, conversations, messages, preferences),
		provider: provider,
		subject:  subject,
		conv:     conv,
	}
}

func TestTutorRespondPersistsBothTurns(t *testing.T) {
	dbc, fx := newTutorFixture(t)

	reply, err := fx.svc.Respond(dbc, fx.conv.ID, "", "What is a derivative?", nil)
	if err != nil {
		t.Fatalf("Respond: %v", err)
	}
	if reply != fx.provider.reply {
		t.Fatalf("reply = %q, want %q", reply, fx.provider.reply)
	}

	msgs, err := fx.study.ListMessages(dbc, fx.conv.ID, 0)
	if err != nil {
		t.Fatalf("ListMessages: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}
	if msgs[0].Role != study.RoleUser || msgs[0].Content != "What is a derivative?" {
		t.Fatalf("first message = %s %q", msgs[0].Role, msgs[0].Content)
	}
	if msgs[1].Role != study.RoleAssistant || msgs[1].Content != reply {
		t.Fatalf("second message = %s %q", msgs[1].Role, msgs[1].Content)
	}
	if msgs[0].Seq >= msgs[1].Seq {
		t.Fatalf("user turn seq %d should precede assistant seq %d", msgs[0].Seq, msgs[1].Seq)
	}
}

func TestTutorRespondUsesSubjectCategoryAndPreferences(t *testing.T) {
	dbc, fx := newTutorFixture(t)

	if _, err := fx.study.SavePreference(dbc, &study.LearningPreference{
		SubjectID:          fx.subject.ID,
		ExplanationStyle:   study.StyleSocratic,
		CustomInstructions: "use chess examples",
	}); err != nil {
		t.Fatalf("SavePreference: %v", err)
	}

	history := []tutor.Turn{{Role: study.RoleUser, Content: "hi"}, {Role: study.RoleAssistant, Content: "hello"}}
	if _, err := fx.svc.Respond(dbc, fx.conv.ID, "", "next question", history); err != nil {
		t.Fatalf("Respond: %v", err)
	}

	prompt := fx.provider.lastPrompt
	for _, want := range []string{
		"patient and encouraging tutor",
		"Socratic questioning",
		"STUDENT'S PERSONAL LEARNING PREFERENCES: use chess examples",
		"Student: hi",
		"Tutor: hello",
		"Student: next question",
	} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q:\n%s", want, prompt)
		}
	}
	if !strings.HasSuffix(prompt, "\n\nTutor:") {
		t.Fatalf("prompt should end with the tutor cue, got tail %q", prompt[len(prompt)-20:])
	}
}

func TestTutorRespondProviderFailureKeepsUserMessage(t *testing.T) {
	dbc, fx := newTutorFixture(t)
	fx.provider.err = gemini.ErrRateLimited

	_, err := fx.svc.Respond(dbc, fx.conv.ID, "", "hello?", nil)
	if err == nil {
		t.Fatal("expected provider error")
	}
	var ae *apierr.Error
	if !errors.As(err, &ae) {
		t.Fatalf("expected *apierr.Error, got %T", err)
	}
	if ae.Status != http.StatusTooManyRequests || ae.Code != "rate_limited" {
		t.Fatalf("got status=%d code=%s", ae.Status, ae.Code)
	}

	msgs, err := fx.study.ListMessages(dbc, fx.conv.ID, 0)
	if err != nil {
		t.Fatalf("ListMessages: %v", err)
	}
	if len(msgs) != 1 || msgs[0].Role != study.RoleUser {
		t.Fatalf("only the user turn should be stored, got %d messages", len(msgs))
	}
}

func TestTutorRespondEmptyReplyFallsBack(t *testing.T) {
	dbc, fx := newTutorFixture(t)
	fx.provider.reply = "   "

	reply, err := fx.svc.Respond(dbc, fx.conv.ID, "", "hello?", nil)
	if err != nil {
		t.Fatalf("Respond: %v", err)
	}
	if reply != tutor.FallbackReply {
		t.Fatalf("reply = %q, want fallback", reply)
	}
	msgs, err := fx.study.ListMessages(dbc, fx.conv.ID, 0)
	if err != nil {
		t.Fatalf("ListMessages: %v", err)
	}
	if len(msgs) != 2 || msgs[1].Content != tutor.FallbackReply {
		t.Fatal("fallback reply should be persisted as the assistant turn")
	}
}

func TestTutorRespondUnknownConversation(t *testing.T) {
	dbc, fx := newTutorFixture(t)

	_, err := fx.svc.Respond(dbc, uuid.New(), "", "hello?", nil)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected gorm.ErrRecordNotFound, got %v", err)
	}
}

type failingPreferenceRepo struct {
	err error
}

func (r failingPreferenceRepo) GetBySubject(dbctx.Context, uuid.UUID) (*study.LearningPreference, error) {
	return nil, r.err
}

func (r failingPreferenceRepo) Upsert(dbctx.Context, *study.LearningPreference) (*study.LearningPreference, error) {
	return nil, r.err
}

func TestTutorRespondSurfacesPreferenceLookupFailure(t *testing.T) {
	log := testutil.Logger(t)
	db := testutil.DB(t)
	dbc := dbctx.Background()
	dbc.Tx = db

	subjects := plannerRepos.NewSubjectRepo(db, log)
	conversations := studyRepos.NewConversationRepo(db, log)
	messages := studyRepos.NewMessageRepo(db, log)

	subject, err := subjects.Create(dbc, &planner.Subject{
		Name:       "Chemistry",
		Color:      "#b91c1c",
		AICategory: planner.CategoryMathScience,
	})
	if err != nil {
		t.Fatalf("create subject: %v", err)
	}
	conv, err := conversations.Create(dbc, &study.Conversation{SubjectID: subject.ID, Title: "Bonds"})
	if err != nil {
		t.Fatalf("create conversation: %v", err)
	}

	// A store failure on the preference lookup fails the turn; only a
	// missing row degrades to the bare persona prompt.
	boom := errors.New("connection reset")
	svc := NewTutorService(log, subjects, conversations, messages, failingPreferenceRepo{err: boom}, &fakeProvider{reply: "x"})

	_, err = svc.Respond(dbc, conv.ID, "", "Why do atoms bond?", nil)
	if !errors.Is(err, boom) {
		t.Fatalf("expected the store error, got %v", err)
	}
}
