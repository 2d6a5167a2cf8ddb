package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/yungbote/studyhall-backend/internal/domain/planner"
)

type patchRecorder struct {
	mu      sync.Mutex
	patches []map[string]any
	paths   []string
}

func newReorderServer(t *testing.T) (*Client, *patchRecorder) {
	t.Helper()
	rec := &patchRecorder{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode patch body: %v", err)
		}
		rec.mu.Lock()
		rec.patches = append(rec.patches, body)
		rec.paths = append(rec.paths, r.URL.Path)
		rec.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"task":{}}`))
	}))
	t.Cleanup(srv.Close)
	return New(srv.URL), rec
}

func reorderFixture() []planner.Task {
	return []planner.Task{
		{ID: uuid.New(), SortOrder: 0},
		{ID: uuid.New(), SortOrder: 1},
		{ID: uuid.New(), SortOrder: 2},
		{ID: uuid.New(), SortOrder: 3, Completed: true},
	}
}

func TestReorderTasksIssuesOnlyChangedPatches(t *testing.T) {
	c, rec := newReorderServer(t)
	tasks := reorderFixture()

	// Swapping the first two incomplete tasks rewrites exactly those two;
	// the third incomplete task and the completed one are untouched.
	if err := c.ReorderTasks(context.Background(), tasks, 0, 1); err != nil {
		t.Fatalf("ReorderTasks: %v", err)
	}
	if len(rec.patches) != 2 {
		t.Fatalf("expected 2 PATCH calls, got %d (%v)", len(rec.patches), rec.paths)
	}
	for _, p := range rec.patches {
		if _, ok := p["sort_order"]; !ok {
			t.Fatalf("patch body missing sort_order: %v", p)
		}
		if len(p) != 1 {
			t.Fatalf("patch should carry only the sort key: %v", p)
		}
	}
}

func TestReorderTasksNoOpMakesNoRequests(t *testing.T) {
	c, rec := newReorderServer(t)
	tasks := reorderFixture()

	if err := c.ReorderTasks(context.Background(), tasks, 2, 2); err != nil {
		t.Fatalf("ReorderTasks: %v", err)
	}
	if len(rec.patches) != 0 {
		t.Fatalf("same-position drop should make zero requests, got %d", len(rec.patches))
	}
}

func TestClientDecodesErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":{"message":"record not found","code":"not_found"}}`))
	}))
	t.Cleanup(srv.Close)

	c := New(srv.URL)
	_, err := c.TasksByDate(context.Background(), "2026-02-10")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.Status != http.StatusNotFound || apiErr.Code != "not_found" {
		t.Fatalf("got %+v", apiErr)
	}
}

func TestClientChat(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/study/chat" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"reply":"Try factoring first."}`))
	}))
	t.Cleanup(srv.Close)

	c := New(srv.URL)
	reply, err := c.Chat(context.Background(), ChatRequest{
		ConversationID: uuid.New(),
		Message:        "How do I solve x^2-4=0?",
	})
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}
	if reply != "Try factoring first." {
		t.Fatalf("reply = %q", reply)
	}
}
