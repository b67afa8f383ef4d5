package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tezzeract-backend/internal/config"
	"tezzeract-backend/internal/handlers"
	"tezzeract-backend/internal/knowledge"
	"tezzeract-backend/internal/router"
	"tezzeract-backend/internal/services"
)

func main() {
	log.Println("Starting Tezzeract Chat API...")

	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	kb, err := knowledge.Load(cfg.KnowledgePath)
	if err != nil {
		log.Fatalf("✗ Knowledge base load failed: %v", err)
	}
	log.Println("✓ Knowledge base loaded")

	geminiService, err := services.NewGeminiService(
		cfg.GeminiAPIKey,
		cfg.GeminiModel,
		time.Duration(cfg.GeminiTimeoutSecs)*time.Second,
		cfg.GeminiConcurrentReqs,
	)
	if err != nil {
		log.Fatalf("✗ Gemini client initialization failed: %v", err)
	}
	defer geminiService.Close()
	log.Printf("✓ Gemini client initialized (%s)", cfg.GeminiModel)

	chatHandler := handlers.NewChatHandler(kb, geminiService, cfg.MaxHistoryTurns)
	knowledgeHandler := handlers.NewKnowledgeHandler()
	analyticsHandler := handlers.NewAnalyticsHandler()
	healthHandler := handlers.NewHealthHandler()

	r := router.New(
		chatHandler,
		knowledgeHandler,
		analyticsHandler,
		healthHandler,
		cfg.AllowedOrigins,
		cfg.RateLimitMax,
		time.Duration(cfg.RateLimitWindowMins)*time.Minute,
	)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("✓ Tezzeract Chat API ready on http://localhost:%s", cfg.Port)
	log.Printf("  Health check: http://localhost:%s/api/health", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
