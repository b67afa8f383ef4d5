package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"tezzeract-backend/internal/handlers"
	"tezzeract-backend/internal/middleware"
)

func New(
	chatHandler *handlers.ChatHandler,
	knowledgeHandler *handlers.KnowledgeHandler,
	analyticsHandler *handlers.AnalyticsHandler,
	healthHandler *handlers.HealthHandler,
	allowedOrigins []string,
	rateLimitMax int,
	rateLimitWindow time.Duration,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.Recover)
	r.Use(middleware.CORS(allowedOrigins))

	// One limiter across the whole API surface
	apiLimiter := middleware.NewRateLimiter(rateLimitMax, rateLimitWindow)

	r.Route("/api", func(r chi.Router) {
		r.Use(apiLimiter.Middleware)
		r.Post("/chat", chatHandler.Chat)
		r.Post("/knowledge", knowledgeHandler.Upload)
		r.Get("/analytics", analyticsHandler.Get)
		r.Get("/health", healthHandler.Check)
	})

	return r
}
