// Package prompt renders the linear prompt sent to the completion engine.
package prompt

import (
	"strings"

	"tezzeract-backend/internal/models"
)

// Build concatenates the knowledge base, the conversation so far, and the new
// user message into a single prompt. Deterministic: identical inputs always
// produce an identical string. The result ends with an "assistant: " cue so
// the engine continues as the assistant.
func Build(kb string, history []models.ChatMessage, message string) string {
	var b strings.Builder
	b.WriteString(kb)
	b.WriteString("\n\nConversation:\n")

	for _, msg := range history {
		b.WriteString(msg.Role)
		b.WriteString(": ")
		b.WriteString(msg.Content)
		b.WriteString("\n")
	}

	b.WriteString("user: ")
	b.WriteString(message)
	b.WriteString("\nassistant: ")

	return b.String()
}

// Truncate caps the history at maxTurns, dropping the oldest turns first.
// The second return reports whether anything was dropped. maxTurns <= 0
// disables the cap.
func Truncate(history []models.ChatMessage, maxTurns int) ([]models.ChatMessage, bool) {
	if maxTurns <= 0 || len(history) <= maxTurns {
		return history, false
	}
	return history[len(history)-maxTurns:], true
}
