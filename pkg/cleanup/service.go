// Package cleanup enforces data retention for finished assessments and dead
// tunnel sessions.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/vibecheck/vibecheck/pkg/config"
)

// assessmentPurger removes terminal assessments older than the retention
// window. Implemented by services.AssessmentService.
type assessmentPurger interface {
	PurgeOlderThan(ctx context.Context, retention time.Duration) (int, error)
}

// tunnelPurger removes disconnected tunnel sessions past their TTL.
// Implemented by services.TunnelService.
type tunnelPurger interface {
	PurgeStale(ctx context.Context, ttl time.Duration) (int, error)
}

// Service periodically enforces retention policies:
//   - Deletes terminal assessments (with findings and logs) past retention
//   - Deletes disconnected tunnel sessions past their heartbeat TTL
//
// All operations are idempotent and safe to run from multiple replicas.
type Service struct {
	interval  time.Duration
	retention time.Duration
	tunnelTTL time.Duration

	assessments assessmentPurger
	tunnels     tunnelPurger
	logger      *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a retention service from the configured windows.
func NewService(cfg *config.Settings, assessments assessmentPurger, tunnels tunnelPurger, logger *slog.Logger) *Service {
	return &Service{
		interval:    cfg.CleanupInterval,
		retention:   cfg.Retention,
		tunnelTTL:   cfg.TunnelTTL,
		assessments: assessments,
		tunnels:     tunnels,
		logger:      logger,
	}
}

// Start launches the background sweep loop. The first sweep runs immediately.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	s.logger.Info("retention service started",
		"assessment_retention", s.retention,
		"tunnel_ttl", s.tunnelTTL,
		"interval", s.interval)
}

// Stop signals the sweep loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	s.logger.Info("retention service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.sweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Service) sweep(ctx context.Context) {
	if count, err := s.assessments.PurgeOlderThan(ctx, s.retention); err != nil {
		s.logger.Error("retention: assessment purge failed", "error", err)
	} else if count > 0 {
		s.logger.Info("retention: purged old assessments", "count", count)
	}

	if count, err := s.tunnels.PurgeStale(ctx, s.tunnelTTL); err != nil {
		s.logger.Error("retention: tunnel session purge failed", "error", err)
	} else if count > 0 {
		s.logger.Info("retention: purged stale tunnel sessions", "count", count)
	}
}
