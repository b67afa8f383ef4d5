package models

// ChatMessage is a single turn in a conversation.
type ChatMessage struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// ChatRequest is the payload sent to POST /api/chat. Message is decoded as
// an untyped value so the handler can reject non-string payloads with the
// exact validation error instead of a generic decode failure.
type ChatRequest struct {
	Message any            `json:"message"`
	History []ChatMessage  `json:"history"`
	Context map[string]any `json:"context"`
}

// ChatResponse is the reply envelope for POST /api/chat. Model is set only
// when the completion engine answered; Fallback only when it did not.
type ChatResponse struct {
	Response  string `json:"response"`
	ID        string `json:"id"`
	Timestamp string `json:"timestamp"`
	Model     string `json:"model,omitempty"`
	Fallback  bool   `json:"fallback,omitempty"`
}
