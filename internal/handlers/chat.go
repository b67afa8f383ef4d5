package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"tezzeract-backend/internal/models"
	"tezzeract-backend/internal/prompt"
	"tezzeract-backend/internal/services"
)

type generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Model() string
}

type ChatHandler struct {
	knowledgeBase   string
	gemini          generator
	maxHistoryTurns int
}

func NewChatHandler(knowledgeBase string, gemini generator, maxHistoryTurns int) *ChatHandler {
	return &ChatHandler{
		knowledgeBase:   knowledgeBase,
		gemini:          gemini,
		maxHistoryTurns: maxHistoryTurns,
	}
}

func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("Invalid request body"))
		return
	}

	message, ok := req.Message.(string)
	if !ok || message == "" {
		writeJSON(w, http.StatusBadRequest, errorResp("Message is required and must be a string"))
		return
	}

	history, truncated := prompt.Truncate(req.History, h.maxHistoryTurns)
	if truncated {
		log.Printf("chat: history truncated to last %d turns (got %d)", h.maxHistoryTurns, len(req.History))
	}

	conversation := prompt.Build(h.knowledgeBase, history, message)

	text, err := h.gemini.Generate(r.Context(), conversation)
	if err != nil {
		// The client never sees generation failures; answer from the
		// rule-based responder instead and flag it.
		var genErr *services.GenerationError
		if errors.As(err, &genErr) {
			log.Printf("chat: generation failed (%s): %v", genErr.Kind, genErr.Unwrap())
		} else {
			log.Printf("chat: generation failed: %v", err)
		}

		writeJSON(w, http.StatusOK, models.ChatResponse{
			Response:  services.FallbackResponse(message),
			ID:        uuid.NewString(),
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Fallback:  true,
		})
		return
	}

	log.Printf("[%s] %s: %s", time.Now().UTC().Format(time.RFC3339), siteFromContext(req.Context), message)

	writeJSON(w, http.StatusOK, models.ChatResponse{
		Response:  text,
		ID:        uuid.NewString(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Model:     h.gemini.Model(),
	})
}

func siteFromContext(ctx map[string]any) string {
	if site, ok := ctx["website"].(string); ok && site != "" {
		return site
	}
	return "unknown"
}

// Shared helpers

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func errorResp(message string) map[string]string {
	return map[string]string{"error": message}
}
