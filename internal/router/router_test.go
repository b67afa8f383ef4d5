package router

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tezzeract-backend/internal/handlers"
)

type stubGenerator struct{}

func (stubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	return "generated", nil
}

func (stubGenerator) Model() string { return "test-model" }

func newTestRouter() http.Handler {
	return New(
		handlers.NewChatHandler("KB", stubGenerator{}, 20),
		handlers.NewKnowledgeHandler(),
		handlers.NewAnalyticsHandler(),
		handlers.NewHealthHandler(),
		[]string{"https://chat.tezzeract.lt"},
		100,
		15*time.Minute,
	)
}

func TestRoutes(t *testing.T) {
	r := newTestRouter()

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
	}{
		{"chat", http.MethodPost, "/api/chat", `{"message":"hi"}`, http.StatusOK},
		{"chat validation", http.MethodPost, "/api/chat", `{"message":42}`, http.StatusBadRequest},
		{"knowledge", http.MethodPost, "/api/knowledge", "", http.StatusOK},
		{"analytics", http.MethodGet, "/api/analytics", "", http.StatusOK},
		{"health", http.MethodGet, "/api/health", "", http.StatusOK},
		{"unknown route", http.MethodGet, "/api/nope", "", http.StatusNotFound},
		{"wrong method", http.MethodGet, "/api/chat", "", http.StatusMethodNotAllowed},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, bytes.NewReader([]byte(tc.body)))
			if tc.body != "" {
				req.Header.Set("Content-Type", "application/json")
			}
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			if rr.Code != tc.wantStatus {
				t.Errorf("expected status %d, got %d", tc.wantStatus, rr.Code)
			}
		})
	}
}

func TestHealthThroughStack(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	var resp map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp["status"] != "healthy" {
		t.Errorf("expected status 'healthy', got %q", resp["status"])
	}
	if rr.Header().Get("X-Request-ID") == "" {
		t.Error("expected request ID header from middleware stack")
	}
	if rr.Header().Get("X-Content-Type-Options") != "nosniff" {
		t.Error("expected secure headers from middleware stack")
	}
}
