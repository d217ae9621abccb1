// Package config loads service configuration from the environment.
package config

import (
	"os"
	"strconv"
	"time"
)

// Defaults applied when the corresponding variable is unset.
const (
	DefaultGeminiModel     = "gemini-2.5-flash"
	DefaultOpenAIModel     = "gpt-4.1-mini"
	DefaultCloneDir        = "/tmp/vibecheck-repos"
	DefaultQueueWorkers    = 4
	DefaultHTTPPort        = 8000
	DefaultRetention       = 30 * 24 * time.Hour
	DefaultTunnelTTL       = 24 * time.Hour
	DefaultCleanupInterval = time.Hour
)

// Settings holds all runtime configuration for the service.
type Settings struct {
	DatabaseURL string
	HTTPPort    int

	// Robust mode (Gemini function calling).
	GeminiAPIKey string
	GeminiModel  string

	// Lightweight contextual pass (OpenAI single-shot).
	OpenAIAPIKey string
	OpenAIModel  string

	CloneDir     string
	QueueWorkers int
	Debug        bool

	// Retention sweeps run on CleanupInterval, dropping terminal
	// assessments older than Retention and disconnected tunnel sessions
	// older than TunnelTTL.
	Retention       time.Duration
	TunnelTTL       time.Duration
	CleanupInterval time.Duration
}

// Load reads Settings from the environment. Missing optional values fall back
// to defaults; validation of required values is left to the consumers that
// need them (robust scans fail with a typed error when the Gemini key is
// absent rather than at startup).
func Load() *Settings {
	return &Settings{
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		HTTPPort:     getEnvInt("HTTP_PORT", DefaultHTTPPort),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  getEnv("GEMINI_MODEL", DefaultGeminiModel),
		OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:  getEnv("OPENAI_MODEL", DefaultOpenAIModel),
		CloneDir:     getEnv("CLONE_DIR", DefaultCloneDir),
		QueueWorkers: getEnvInt("QUEUE_WORKERS", DefaultQueueWorkers),
		Debug:        getEnvBool("DEBUG"),

		Retention:       getEnvDuration("ASSESSMENT_RETENTION", DefaultRetention),
		TunnelTTL:       getEnvDuration("TUNNEL_SESSION_TTL", DefaultTunnelTTL),
		CleanupInterval: getEnvDuration("CLEANUP_INTERVAL", DefaultCleanupInterval),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return n
		}
	}
	return defaultValue
}

func getEnvBool(key string) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && v
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil && d > 0 {
			return d
		}
	}
	return defaultValue
}
