// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strings"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"] (Vite dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// StaticDir is the directory the SPA shell is served from. Empty
	// disables static serving (API-only deployment).
	StaticDir string

	// AIProvider selects the assistant backend: "gemini" or "openai".
	// Defaults to "gemini".
	AIProvider string

	// GeminiAPIKey authenticates against the Gemini API. Optional: when no
	// key for the selected provider is set, the chat endpoint reports a
	// missing-credential error instead of refusing to boot.
	GeminiAPIKey string

	// OpenAIAPIKey authenticates against the OpenAI API. Optional.
	OpenAIAPIKey string

	// AIModels overrides the model fallback list (Gemini) or the single
	// model name (OpenAI). Comma-separated; empty uses provider defaults.
	AIModels []string
}

// Supported AI_PROVIDER values.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// Load reads configuration from environment variables and returns a Config.
// Returns an error listing any required variables that are not set.
func Load() (Config, error) {
	cfg := Config{
		Port:         getEnv("PORT", "8080"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		CORSOrigins:  splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		StaticDir:    os.Getenv("STATIC_DIR"),
		AIProvider:   getEnv("AI_PROVIDER", "gemini"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),
		AIModels:     splitCSV(os.Getenv("AI_MODELS")),
	}

	var missing []string

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	if cfg.AIProvider != ProviderGemini && cfg.AIProvider != ProviderOpenAI {
		return Config{}, fmt.Errorf("AI_PROVIDER must be \"gemini\" or \"openai\", got %q", cfg.AIProvider)
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
