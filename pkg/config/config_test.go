package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("GEMINI_MODEL", "")
	t.Setenv("QUEUE_WORKERS", "")
	t.Setenv("DEBUG", "")

	s := Load()
	assert.Equal(t, DefaultGeminiModel, s.GeminiModel)
	assert.Equal(t, DefaultOpenAIModel, s.OpenAIModel)
	assert.Equal(t, DefaultCloneDir, s.CloneDir)
	assert.Equal(t, DefaultQueueWorkers, s.QueueWorkers)
	assert.Equal(t, DefaultHTTPPort, s.HTTPPort)
	assert.False(t, s.Debug)
	assert.Equal(t, DefaultRetention, s.Retention)
	assert.Equal(t, DefaultTunnelTTL, s.TunnelTTL)
	assert.Equal(t, DefaultCleanupInterval, s.CleanupInterval)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/vibecheck")
	t.Setenv("GEMINI_MODEL", "gemini-2.5-pro")
	t.Setenv("QUEUE_WORKERS", "8")
	t.Setenv("DEBUG", "true")

	s := Load()
	assert.Equal(t, "postgres://localhost:5432/vibecheck", s.DatabaseURL)
	assert.Equal(t, "gemini-2.5-pro", s.GeminiModel)
	assert.Equal(t, 8, s.QueueWorkers)
	assert.True(t, s.Debug)
}

func TestLoadRejectsBadInts(t *testing.T) {
	t.Setenv("QUEUE_WORKERS", "not-a-number")
	assert.Equal(t, DefaultQueueWorkers, Load().QueueWorkers)

	t.Setenv("QUEUE_WORKERS", "-3")
	assert.Equal(t, DefaultQueueWorkers, Load().QueueWorkers)
}

func TestLoadDurations(t *testing.T) {
	t.Setenv("ASSESSMENT_RETENTION", "168h")
	t.Setenv("TUNNEL_SESSION_TTL", "90m")
	t.Setenv("CLEANUP_INTERVAL", "garbage")

	s := Load()
	assert.Equal(t, 168*time.Hour, s.Retention)
	assert.Equal(t, 90*time.Minute, s.TunnelTTL)
	assert.Equal(t, DefaultCleanupInterval, s.CleanupInterval)
}
