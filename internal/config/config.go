package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string
	Env  string

	// Gemini AI
	GeminiAPIKey         string
	GeminiModel          string
	GeminiTimeoutSecs    int
	GeminiConcurrentReqs int

	// Conversation
	MaxHistoryTurns int

	// Knowledge base (optional file override of the compiled-in text)
	KnowledgePath string

	// CORS
	AllowedOrigins []string

	// Rate limiting
	RateLimitMax        int
	RateLimitWindowMins int
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port:                 getEnvOrDefault("PORT", "3001"),
		Env:                  getEnvOrDefault("ENV", "development"),
		GeminiAPIKey:         mustGetEnv("GEMINI_API_KEY"),
		GeminiModel:          getEnvOrDefault("GEMINI_MODEL", "gemini-2.0-flash-exp"),
		GeminiTimeoutSecs:    getEnvAsIntOrDefault("GEMINI_TIMEOUT_SECONDS", 30),
		GeminiConcurrentReqs: getEnvAsIntOrDefault("GEMINI_CONCURRENT_REQUESTS", 5),
		MaxHistoryTurns:      getEnvAsIntOrDefault("MAX_HISTORY_TURNS", 20),
		KnowledgePath:        getEnvOrDefault("KNOWLEDGE_PATH", ""),
		AllowedOrigins:       getEnvAsListOrDefault("ALLOWED_ORIGINS", defaultOrigins),
		RateLimitMax:         getEnvAsIntOrDefault("RATE_LIMIT_MAX", 100),
		RateLimitWindowMins:  getEnvAsIntOrDefault("RATE_LIMIT_WINDOW_MINUTES", 15),
	}

	return cfg
}

var defaultOrigins = []string{
	"http://localhost:5173",
	"https://chat.tezzeract.lt",
	"https://tezzeract.lt",
}

func mustGetEnv(key string) string {
	val := os.Getenv(key)
	if val == "" {
		panic(fmt.Sprintf("required environment variable %s is not set", key))
	}
	return val
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}

// getEnvAsListOrDefault parses a comma-separated list, dropping empty entries.
func getEnvAsListOrDefault(key string, defaultVal []string) []string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	var out []string
	for _, part := range strings.Split(val, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultVal
	}
	return out
}
