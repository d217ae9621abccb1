package services

import (
	"context"
	"fmt"
	"time"

	"github.com/vibecheck/vibecheck/ent"
	"github.com/vibecheck/vibecheck/ent/tunnelsession"
	"github.com/vibecheck/vibecheck/pkg/ident"
)

// TunnelService persists tunnel session lifecycle records. Channel liveness
// itself lives in the tunnel multiplexer.
type TunnelService struct {
	client *ent.Client
}

// NewTunnelService creates a new TunnelService
func NewTunnelService(client *ent.Client) *TunnelService {
	return &TunnelService{client: client}
}

// Create records a freshly connected session and returns it.
func (s *TunnelService) Create(ctx context.Context, targetPort int) (*ent.TunnelSession, error) {
	session, err := s.client.TunnelSession.Create().
		SetID(ident.New(ident.PrefixTunnelSession)).
		SetTargetPort(targetPort).
		SetStatus(tunnelsession.StatusConnected).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create tunnel session: %w", err)
	}
	return session, nil
}

// Get fetches one tunnel session by ID
func (s *TunnelService) Get(ctx context.Context, id string) (*ent.TunnelSession, error) {
	session, err := s.client.TunnelSession.Query().
		Where(tunnelsession.IDEQ(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, NotFound("Tunnel session", id)
		}
		return nil, fmt.Errorf("failed to get tunnel session: %w", err)
	}
	return session, nil
}

// List returns all tunnel sessions, newest first, optionally filtered by
// status.
func (s *TunnelService) List(ctx context.Context, status string) ([]*ent.TunnelSession, error) {
	query := s.client.TunnelSession.Query()
	if status != "" {
		query = query.Where(tunnelsession.StatusEQ(tunnelsession.Status(status)))
	}
	sessions, err := query.
		Order(ent.Desc(tunnelsession.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tunnel sessions: %w", err)
	}
	return sessions, nil
}

// Heartbeat refreshes the session's last_heartbeat timestamp.
func (s *TunnelService) Heartbeat(ctx context.Context, id string) error {
	err := s.client.TunnelSession.UpdateOneID(id).
		SetLastHeartbeat(time.Now()).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return NotFound("Tunnel session", id)
		}
		return fmt.Errorf("failed to record heartbeat: %w", err)
	}
	return nil
}

// PurgeStale deletes disconnected sessions whose last heartbeat predates the
// TTL. Connected sessions are never purged.
func (s *TunnelService) PurgeStale(ctx context.Context, ttl time.Duration) (int, error) {
	count, err := s.client.TunnelSession.Delete().
		Where(
			tunnelsession.StatusEQ(tunnelsession.StatusDisconnected),
			tunnelsession.LastHeartbeatLT(time.Now().Add(-ttl)),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge stale tunnel sessions: %w", err)
	}
	return count, nil
}

// MarkDisconnected flips the session to disconnected. The row persists for
// auditing after the channel closes.
func (s *TunnelService) MarkDisconnected(ctx context.Context, id string) error {
	// Use background context: disconnects happen while the request
	// context is already tearing down.
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.TunnelSession.UpdateOneID(id).
		SetStatus(tunnelsession.StatusDisconnected).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return NotFound("Tunnel session", id)
		}
		return fmt.Errorf("failed to mark tunnel session disconnected: %w", err)
	}
	return nil
}
