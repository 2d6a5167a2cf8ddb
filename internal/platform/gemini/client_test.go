package gemini

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestClient(t *testing.T, apiKey string, handler http.HandlerFunc) Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	t.Setenv("GEMINI_API_KEY", apiKey)
	t.Setenv("GEMINI_BASE_URL", srv.URL)
	t.Setenv("GEMINI_MODEL", "gemini-2.5-flash")
	return NewClient(nil)
}

func TestGenerateTextMissingKey(t *testing.T) {
	c := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should be made without an api key")
	})
	if c.Configured() {
		t.Fatal("Configured() should be false without a key")
	}
	_, err := c.GenerateText(context.Background(), "hi")
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestGenerateTextSuccess(t *testing.T) {
	c := newTestClient(t, "test-key", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1beta/models/gemini-2.5-flash:generateContent" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("x-goog-api-key"); got != "test-key" {
			t.Errorf("api key header = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Hello "},{"text":"there."}]}}]}`))
	})

	got, err := c.GenerateText(context.Background(), "hi")
	if err != nil {
		t.Fatalf("GenerateText: %v", err)
	}
	if got != "Hello there." {
		t.Fatalf("reply = %q", got)
	}
}

func TestGenerateTextRateLimitedStatus(t *testing.T) {
	c := newTestClient(t, "test-key", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{}`))
	})
	_, err := c.GenerateText(context.Background(), "hi")
	if !errors.Is(err, ErrRateLimited) {
		t.Fatalf("expected ErrRateLimited, got %v", err)
	}
}

func TestGenerateTextQuotaErrorBody(t *testing.T) {
	c := newTestClient(t, "test-key", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"code":429,"status":"RESOURCE_EXHAUSTED","message":"Quota exceeded"}}`))
	})
	_, err := c.GenerateText(context.Background(), "hi")
	if !errors.Is(err, ErrRateLimited) {
		t.Fatalf("expected ErrRateLimited, got %v", err)
	}
}

func TestGenerateTextRejectedKey(t *testing.T) {
	c := newTestClient(t, "bad-key", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{}`))
	})
	_, err := c.GenerateText(context.Background(), "hi")
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestGenerateTextEmptyCandidates(t *testing.T) {
	c := newTestClient(t, "test-key", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	})
	got, err := c.GenerateText(context.Background(), "hi")
	if err != nil {
		t.Fatalf("GenerateText: %v", err)
	}
	if got != "" {
		t.Fatalf("expected empty reply, got %q", got)
	}
}
