package cleanup

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vibecheck/vibecheck/pkg/config"
)

type stubPurger struct {
	mu       sync.Mutex
	calls    int
	lastArg  time.Duration
	returned int
	err      error
}

func (p *stubPurger) purge(arg time.Duration) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	p.lastArg = arg
	return p.returned, p.err
}

func (p *stubPurger) callCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

type stubAssessments struct{ stubPurger }

func (p *stubAssessments) PurgeOlderThan(_ context.Context, retention time.Duration) (int, error) {
	return p.purge(retention)
}

type stubTunnels struct{ stubPurger }

func (p *stubTunnels) PurgeStale(_ context.Context, ttl time.Duration) (int, error) {
	return p.purge(ttl)
}

func testSettings() *config.Settings {
	return &config.Settings{
		Retention:       48 * time.Hour,
		TunnelTTL:       2 * time.Hour,
		CleanupInterval: 20 * time.Millisecond,
	}
}

func TestServiceSweepsOnStartAndInterval(t *testing.T) {
	assessments := &stubAssessments{stubPurger{returned: 3}}
	tunnels := &stubTunnels{stubPurger{returned: 1}}
	svc := NewService(testSettings(), assessments, tunnels, slog.New(slog.NewTextHandler(io.Discard, nil)))

	svc.Start(context.Background())
	defer svc.Stop()

	require.Eventually(t, func() bool {
		return assessments.callCount() >= 2 && tunnels.callCount() >= 2
	}, 2*time.Second, 5*time.Millisecond)

	assessments.mu.Lock()
	assert.Equal(t, 48*time.Hour, assessments.lastArg)
	assessments.mu.Unlock()
	tunnels.mu.Lock()
	assert.Equal(t, 2*time.Hour, tunnels.lastArg)
	tunnels.mu.Unlock()
}

func TestServiceContinuesAfterPurgeError(t *testing.T) {
	assessments := &stubAssessments{stubPurger{err: errors.New("purge failed")}}
	tunnels := &stubTunnels{}
	svc := NewService(testSettings(), assessments, tunnels, slog.New(slog.NewTextHandler(io.Discard, nil)))

	svc.Start(context.Background())
	defer svc.Stop()

	// The tunnel sweep still runs even though the assessment sweep fails.
	require.Eventually(t, func() bool {
		return tunnels.callCount() >= 2
	}, 2*time.Second, 5*time.Millisecond)
}

func TestServiceStopIsIdempotent(t *testing.T) {
	svc := NewService(testSettings(), &stubAssessments{}, &stubTunnels{}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	svc.Start(context.Background())
	svc.Start(context.Background())
	svc.Stop()
	svc.Stop()
}
