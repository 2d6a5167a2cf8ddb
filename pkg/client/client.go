// Package client is the Go consumer of the planner API: a typed HTTP client,
// a small query cache keyed by endpoint, and an optimistic mutation helper
// that rolls the cache back when the server rejects a write and refetches the
// affected queries once the write settles.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/yungbote/studyhall-backend/internal/domain/planner"
	"github.com/yungbote/studyhall-backend/internal/domain/study"
	"github.com/yungbote/studyhall-backend/internal/modules/tutor"
)

// APIError is the decoded error envelope plus the HTTP status it came with.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d (%s): %s", e.Status, e.Code, e.Message)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpClient = h }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode >= 400 {
		var envelope struct {
			Error struct {
				Message string `json:"message"`
				Code    string `json:"code"`
			} `json:"error"`
		}
		apiErr := &APIError{Status: resp.StatusCode, Code: "unknown", Message: string(raw)}
		if json.Unmarshal(raw, &envelope) == nil && envelope.Error.Message != "" {
			apiErr.Code = envelope.Error.Code
			apiErr.Message = envelope.Error.Message
		}
		return apiErr
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// Subjects

type SubjectCreate struct {
	Name       string `json:"name"`
	Color      string `json:"color"`
	AICategory string `json:"ai_category"`
}

type SubjectUpdate struct {
	Name       *string `json:"name,omitempty"`
	Color      *string `json:"color,omitempty"`
	AICategory *string `json:"ai_category,omitempty"`
}

func (c *Client) Subjects(ctx context.Context) ([]planner.Subject, error) {
	var out struct {
		Subjects []planner.Subject `json:"subjects"`
	}
	err := c.do(ctx, http.MethodGet, "/api/subjects", nil, &out)
	return out.Subjects, err
}

func (c *Client) CreateSubject(ctx context.Context, req SubjectCreate) (*planner.Subject, error) {
	var out struct {
		Subject *planner.Subject `json:"subject"`
	}
	err := c.do(ctx, http.MethodPost, "/api/subjects", req, &out)
	return out.Subject, err
}

func (c *Client) UpdateSubject(ctx context.Context, id uuid.UUID, req SubjectUpdate) (*planner.Subject, error) {
	var out struct {
		Subject *planner.Subject `json:"subject"`
	}
	err := c.do(ctx, http.MethodPatch, "/api/subjects/"+id.String(), req, &out)
	return out.Subject, err
}

func (c *Client) DeleteSubject(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/api/subjects/"+id.String(), nil, nil)
}

// Calendar

type EventCreate struct {
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Date        string     `json:"date"`
	EventType   string     `json:"event_type"`
	SubjectID   *uuid.UUID `json:"subject_id,omitempty"`
}

type EventUpdate struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	Date        *string    `json:"date,omitempty"`
	EventType   *string    `json:"event_type,omitempty"`
	SubjectID   *uuid.UUID `json:"subject_id,omitempty"`
}

func (c *Client) EventsByMonth(ctx context.Context, year, month int) ([]planner.CalendarEvent, error) {
	var out struct {
		Events []planner.CalendarEvent `json:"events"`
	}
	err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/calendar/%d/%d", year, month), nil, &out)
	return out.Events, err
}

func (c *Client) UpcomingEvents(ctx context.Context, limit int) ([]planner.CalendarEvent, error) {
	path := "/api/calendar/upcoming"
	if limit > 0 {
		path = fmt.Sprintf("%s?limit=%d", path, limit)
	}
	var out struct {
		Events []planner.CalendarEvent `json:"events"`
	}
	err := c.do(ctx, http.MethodGet, path, nil, &out)
	return out.Events, err
}

func (c *Client) CreateEvent(ctx context.Context, req EventCreate) (*planner.CalendarEvent, error) {
	var out struct {
		Event *planner.CalendarEvent `json:"event"`
	}
	err := c.do(ctx, http.MethodPost, "/api/calendar", req, &out)
	return out.Event, err
}

func (c *Client) UpdateEvent(ctx context.Context, id uuid.UUID, req EventUpdate) (*planner.CalendarEvent, error) {
	var out struct {
		Event *planner.CalendarEvent `json:"event"`
	}
	err := c.do(ctx, http.MethodPatch, "/api/calendar/"+id.String(), req, &out)
	return out.Event, err
}

func (c *Client) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/api/calendar/"+id.String(), nil, nil)
}

// Tasks

type TaskCreate struct {
	Title     string     `json:"title"`
	Date      string     `json:"date"`
	SubjectID *uuid.UUID `json:"subject_id,omitempty"`
	SortOrder *int       `json:"sort_order,omitempty"`
}

type TaskUpdate struct {
	Title     *string `json:"title,omitempty"`
	Date      *string `json:"date,omitempty"`
	Completed *bool   `json:"completed,omitempty"`
	SortOrder *int    `json:"sort_order,omitempty"`
}

func (c *Client) TasksByDate(ctx context.Context, date string) ([]planner.Task, error) {
	var out struct {
		Tasks []planner.Task `json:"tasks"`
	}
	err := c.do(ctx, http.MethodGet, "/api/tasks/"+date, nil, &out)
	return out.Tasks, err
}

func (c *Client) CreateTask(ctx context.Context, req TaskCreate) (*planner.Task, error) {
	var out struct {
		Task *planner.Task `json:"task"`
	}
	err := c.do(ctx, http.MethodPost, "/api/tasks", req, &out)
	return out.Task, err
}

func (c *Client) UpdateTask(ctx context.Context, id uuid.UUID, req TaskUpdate) (*planner.Task, error) {
	var out struct {
		Task *planner.Task `json:"task"`
	}
	err := c.do(ctx, http.MethodPatch, "/api/tasks/"+id.String(), req, &out)
	return out.Task, err
}

func (c *Client) DeleteTask(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/api/tasks/"+id.String(), nil, nil)
}

// ReorderTasks moves the incomplete task at index from to index to and
// pushes only the rows whose sort key changed. A same-position drop makes
// zero requests.
func (c *Client) ReorderTasks(ctx context.Context, tasks []planner.Task, from, to int) error {
	incomplete, _ := planner.SplitByCompletion(tasks)
	changes := planner.ComputeReorder(incomplete, from, to)
	for _, ch := range changes {
		order := ch.SortOrder
		if _, err := c.UpdateTask(ctx, ch.ID, TaskUpdate{SortOrder: &order}); err != nil {
			return err
		}
	}
	return nil
}

// Study

type ConversationCreate struct {
	SubjectID uuid.UUID `json:"subject_id"`
	Title     string    `json:"title,omitempty"`
}

type ChatRequest struct {
	ConversationID uuid.UUID    `json:"conversation_id"`
	Category       string       `json:"category,omitempty"`
	Message        string       `json:"message"`
	History        []tutor.Turn `json:"history,omitempty"`
}

func (c *Client) Conversations(ctx context.Context, subjectID uuid.UUID) ([]study.Conversation, error) {
	var out struct {
		Conversations []study.Conversation `json:"conversations"`
	}
	err := c.do(ctx, http.MethodGet, "/api/study/conversations/"+subjectID.String(), nil, &out)
	return out.Conversations, err
}

func (c *Client) CreateConversation(ctx context.Context, req ConversationCreate) (*study.Conversation, error) {
	var out struct {
		Conversation *study.Conversation `json:"conversation"`
	}
	err := c.do(ctx, http.MethodPost, "/api/study/conversations", req, &out)
	return out.Conversation, err
}

func (c *Client) DeleteConversation(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/api/study/conversations/"+id.String(), nil, nil)
}

func (c *Client) Messages(ctx context.Context, conversationID uuid.UUID, limit int) ([]study.ChatMessage, error) {
	path := "/api/study/messages/" + conversationID.String()
	if limit > 0 {
		path = fmt.Sprintf("%s?limit=%d", path, limit)
	}
	var out struct {
		Messages []study.ChatMessage `json:"messages"`
	}
	err := c.do(ctx, http.MethodGet, path, nil, &out)
	return out.Messages, err
}

func (c *Client) Chat(ctx context.Context, req ChatRequest) (string, error) {
	var out struct {
		Reply string `json:"reply"`
	}
	err := c.do(ctx, http.MethodPost, "/api/study/chat", req, &out)
	return out.Reply, err
}

// Preferences

type PreferenceSave struct {
	SubjectID          uuid.UUID `json:"subject_id"`
	ExplanationStyle   string    `json:"explanation_style,omitempty"`
	ComplexityLevel    string    `json:"complexity_level,omitempty"`
	CustomInstructions string    `json:"custom_instructions,omitempty"`
}

func (c *Client) Preference(ctx context.Context, subjectID uuid.UUID) (*study.LearningPreference, error) {
	var out struct {
		Preference *study.LearningPreference `json:"preference"`
	}
	err := c.do(ctx, http.MethodGet, "/api/preferences/"+subjectID.String(), nil, &out)
	return out.Preference, err
}

func (c *Client) SavePreference(ctx context.Context, req PreferenceSave) (*study.LearningPreference, error) {
	var out struct {
		Preference *study.LearningPreference `json:"preference"`
	}
	err := c.do(ctx, http.MethodPut, "/api/preferences", req, &out)
	return out.Preference, err
}

// Flashcards

type SetCreate struct {
	SubjectID uuid.UUID `json:"subject_id"`
	Title     string    `json:"title"`
}

type CardCreate struct {
	SetID     uuid.UUID `json:"set_id"`
	Front     string    `json:"front"`
	Back      string    `json:"back"`
	SortOrder *int      `json:"sort_order,omitempty"`
}

func (c *Client) FlashcardSets(ctx context.Context) ([]planner.FlashcardSet, error) {
	var out struct {
		Sets []planner.FlashcardSet `json:"sets"`
	}
	err := c.do(ctx, http.MethodGet, "/api/flashcards/sets", nil, &out)
	return out.Sets, err
}

func (c *Client) FlashcardSetsBySubject(ctx context.Context, subjectID uuid.UUID) ([]planner.FlashcardSet, error) {
	var out struct {
		Sets []planner.FlashcardSet `json:"sets"`
	}
	err := c.do(ctx, http.MethodGet, "/api/flashcards/sets/subject/"+subjectID.String(), nil, &out)
	return out.Sets, err
}

func (c *Client) CreateFlashcardSet(ctx context.Context, req SetCreate) (*planner.FlashcardSet, error) {
	var out struct {
		Set *planner.FlashcardSet `json:"set"`
	}
	err := c.do(ctx, http.MethodPost, "/api/flashcards/sets", req, &out)
	return out.Set, err
}

func (c *Client) DeleteFlashcardSet(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/api/flashcards/sets/"+id.String(), nil, nil)
}

func (c *Client) Flashcards(ctx context.Context, setID uuid.UUID) ([]planner.Flashcard, error) {
	var out struct {
		Cards []planner.Flashcard `json:"cards"`
	}
	err := c.do(ctx, http.MethodGet, "/api/flashcards/"+setID.String(), nil, &out)
	return out.Cards, err
}

func (c *Client) CreateFlashcard(ctx context.Context, req CardCreate) (*planner.Flashcard, error) {
	var out struct {
		Card *planner.Flashcard `json:"card"`
	}
	err := c.do(ctx, http.MethodPost, "/api/flashcards", req, &out)
	return out.Card, err
}

func (c *Client) DeleteFlashcard(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/api/flashcards/"+id.String(), nil, nil)
}
