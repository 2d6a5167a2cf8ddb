package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/yungbote/studyhall-backend/internal/platform/logger"
)

// Sentinel errors so callers can distinguish a misconfigured deployment and
// provider throttling from a generic upstream failure.
var (
	ErrNotConfigured = errors.New("gemini api key is not configured")
	ErrRateLimited   = errors.New("gemini rate limit reached")
)

// Client is the text-generation provider used by the tutor service.
type Client interface {
	// GenerateText submits a fully composed prompt and returns the model's
	// plain-text reply. An empty reply is returned as-is; substituting a
	// fallback is the caller's concern.
	GenerateText(ctx context.Context, prompt string) (string, error)

	// Configured reports whether an API key is present.
	Configured() bool
}

type client struct {
	log        *logger.Logger
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewClient never fails: a missing GEMINI_API_KEY is logged once here and
// surfaced as ErrNotConfigured on every call, so the process can still serve
// everything except chat.
func NewClient(log *logger.Logger) Client {
	apiKey := strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))
	if apiKey == "" && log != nil {
		log.Warn("GEMINI_API_KEY is not set; chat requests will fail until it is configured")
	}

	baseURL := strings.TrimSpace(os.Getenv("GEMINI_BASE_URL"))
	if baseURL == "" {
		baseURL = "https://generativelanguage.googleapis.com"
	}
	baseURL = strings.TrimRight(baseURL, "/")

	model := strings.TrimSpace(os.Getenv("GEMINI_MODEL"))
	if model == "" {
		model = "gemini-2.5-flash"
	}

	timeoutSec := 120
	if v := strings.TrimSpace(os.Getenv("GEMINI_TIMEOUT_SECONDS")); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			timeoutSec = parsed
		}
	}

	if log != nil {
		log = log.With("service", "GeminiClient")
	}
	return &client{
		log:        log,
		baseURL:    baseURL,
		apiKey:     apiKey,
		model:      model,
		httpClient: &http.Client{Timeout: time.Duration(timeoutSec) * time.Second},
	}
}

func (c *client) Configured() bool { return c.apiKey != "" }

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *apiError `json:"error"`
}

type apiError struct {
	Code    int    `json:"code"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (c *client) GenerateText(ctx context.Context, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", ErrNotConfigured
	}

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("marshal generate request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build generate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("call gemini: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return "", fmt.Errorf("read gemini response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", c.classifyHTTPError(resp.StatusCode, raw)
	}

	var parsed generateResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("decode gemini response: %w", err)
	}
	if parsed.Error != nil {
		return "", c.classifyAPIError(parsed.Error)
	}

	var b strings.Builder
	for _, cand := range parsed.Candidates {
		for _, p := range cand.Content.Parts {
			b.WriteString(p.Text)
		}
		break
	}
	text := b.String()
	if c.log != nil {
		c.log.Debug("gemini generate completed",
			"model", c.model,
			"prompt_chars", len(prompt),
			"reply_chars", len(text),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
	return text, nil
}

func (c *client) classifyHTTPError(status int, raw []byte) error {
	var parsed generateResponse
	if err := json.Unmarshal(raw, &parsed); err == nil && parsed.Error != nil {
		return c.classifyAPIError(parsed.Error)
	}
	if status == http.StatusTooManyRequests {
		return ErrRateLimited
	}
	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		return fmt.Errorf("%w: provider rejected the api key", ErrNotConfigured)
	}
	return fmt.Errorf("gemini returned status %d", status)
}

func (c *client) classifyAPIError(e *apiError) error {
	switch {
	case e.Code == http.StatusTooManyRequests,
		strings.EqualFold(e.Status, "RESOURCE_EXHAUSTED"),
		strings.Contains(strings.ToLower(e.Message), "quota"),
		strings.Contains(strings.ToLower(e.Message), "rate"):
		return ErrRateLimited
	case e.Code == http.StatusUnauthorized, e.Code == http.StatusForbidden,
		strings.Contains(strings.ToLower(e.Message), "api key"):
		return fmt.Errorf("%w: %s", ErrNotConfigured, e.Message)
	default:
		return fmt.Errorf("gemini error %d (%s): %s", e.Code, e.Status, e.Message)
	}
}
