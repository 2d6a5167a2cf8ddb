package tutor

import (
	"fmt"
	"strings"

	"github.com/yungbote/studyhall-backend/internal/domain/study"
)

// Turn is one prior exchange in the conversation history, oldest first.
type Turn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ComposeSystemPrompt builds the system prompt for a tutoring category:
// persona base text, then up to three directive blocks in fixed order
// (explanation style, complexity level, verbatim custom instructions). Unknown
// or empty style/level values contribute nothing. A nil preference record
// yields the bare persona prompt.
func ComposeSystemPrompt(category string, prefs *study.LearningPreference) (string, error) {
	base, ok := BasePrompt(category)
	if !ok {
		return "", fmt.Errorf("unknown tutoring category %q", category)
	}
	if prefs == nil {
		return base, nil
	}

	var b strings.Builder
	b.WriteString(base)
	if d, ok := styleDirectives[prefs.ExplanationStyle]; ok {
		b.WriteString(d)
	}
	if d, ok := complexityDirectives[prefs.ComplexityLevel]; ok {
		b.WriteString(d)
	}
	if custom := strings.TrimSpace(prefs.CustomInstructions); custom != "" {
		b.WriteString("\n\nSTUDENT'S PERSONAL LEARNING PREFERENCES: ")
		b.WriteString(prefs.CustomInstructions)
	}
	return b.String(), nil
}

// RenderPrompt joins the system prompt with the turn history rendered as
// alternating Student:/Tutor: lines and a trailing cue for the next tutor
// turn. The provider receives this as a single text block.
func RenderPrompt(system string, history []Turn) string {
	parts := make([]string, 0, len(history))
	for _, turn := range history {
		if turn.Role == study.RoleUser {
			parts = append(parts, "Student: "+turn.Content)
		} else {
			parts = append(parts, "Tutor: "+turn.Content)
		}
	}
	return system + "\n\n" + strings.Join(parts, "\n\n") + "\n\nTutor:"
}
