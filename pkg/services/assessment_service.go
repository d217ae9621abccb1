package services

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/vibecheck/vibecheck/ent"
	"github.com/vibecheck/vibecheck/ent/agentlog"
	"github.com/vibecheck/vibecheck/ent/assessment"
	"github.com/vibecheck/vibecheck/ent/finding"
	"github.com/vibecheck/vibecheck/ent/tunnelsession"
	"github.com/vibecheck/vibecheck/pkg/ident"
	"github.com/vibecheck/vibecheck/pkg/models"
)

// errorMessageLimit bounds the persisted terminal error message.
const errorMessageLimit = 500

// TunnelChecker reports whether a tunnel session has a live duplex channel.
// Implemented by the tunnel multiplexer; nil disables the liveness check.
type TunnelChecker interface {
	Live(sessionID string) bool
}

// AssessmentService manages the assessment lifecycle
type AssessmentService struct {
	client *ent.Client
	tunnel TunnelChecker
}

// NewAssessmentService creates a new AssessmentService
func NewAssessmentService(client *ent.Client, tunnel TunnelChecker) *AssessmentService {
	return &AssessmentService{client: client, tunnel: tunnel}
}

// Create validates and persists a new assessment in status queued. When the
// idempotency key matches a prior assessment of the same mode, that assessment
// is returned unchanged with reused=true.
func (s *AssessmentService) Create(ctx context.Context, input models.CreateAssessmentInput) (*ent.Assessment, bool, error) {
	if !models.ValidMode(input.Mode) {
		return nil, false, InvalidMode()
	}
	depth := input.Depth
	if depth == "" {
		depth = models.DepthStandard
	}
	if !models.ValidDepth(depth) {
		return nil, false, InvalidDepth()
	}

	switch input.Mode {
	case models.ModeLightweight:
		if input.RepoURL == "" && len(input.Files) == 0 {
			return nil, false, MissingRepoURL()
		}
	case models.ModeRobust:
		if input.TunnelSessionID == "" && input.TargetURL == "" {
			return nil, false, MissingTunnelSession()
		}
		for _, name := range input.Agents {
			if !slices.Contains(models.DefaultAgents, name) {
				return nil, false, InvalidAgent(name)
			}
		}
		if input.TunnelSessionID != "" {
			if err := s.checkTunnel(ctx, input.TunnelSessionID); err != nil {
				return nil, false, err
			}
		}
	}

	if input.IdempotencyKey != "" {
		existing, err := s.client.Assessment.Query().
			Where(assessment.IdempotencyKeyEQ(input.IdempotencyKey)).
			Only(ctx)
		if err != nil && !ent.IsNotFound(err) {
			return nil, false, fmt.Errorf("failed to check idempotency key: %w", err)
		}
		if existing != nil {
			if existing.Mode != assessment.Mode(input.Mode) {
				return nil, false, DuplicateIdempotencyKey()
			}
			return existing, true, nil
		}
	}

	builder := s.client.Assessment.Create().
		SetID(ident.New(ident.PrefixAssessment)).
		SetMode(assessment.Mode(input.Mode)).
		SetStatus(assessment.StatusQueued).
		SetDepth(assessment.Depth(depth))

	if input.RepoURL != "" {
		builder.SetRepoURL(input.RepoURL)
	}
	if input.TargetURL != "" {
		builder.SetTargetURL(input.TargetURL)
	}
	if input.TunnelSessionID != "" {
		builder.SetTunnelSessionID(input.TunnelSessionID)
	}
	if input.Mode == models.ModeRobust {
		agents := input.Agents
		if len(agents) == 0 {
			agents = models.DefaultAgents
		}
		builder.SetAgents(agents)
	}
	if input.IdempotencyKey != "" {
		builder.SetIdempotencyKey(input.IdempotencyKey)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		// A concurrent create with the same key loses the race on the
		// partial unique index; resolve it like the lookup above.
		if ent.IsConstraintError(err) && input.IdempotencyKey != "" {
			existing, qerr := s.client.Assessment.Query().
				Where(assessment.IdempotencyKeyEQ(input.IdempotencyKey)).
				Only(ctx)
			if qerr == nil {
				if existing.Mode != assessment.Mode(input.Mode) {
					return nil, false, DuplicateIdempotencyKey()
				}
				return existing, true, nil
			}
		}
		return nil, false, fmt.Errorf("failed to create assessment: %w", err)
	}
	return created, false, nil
}

// checkTunnel verifies the referenced tunnel session exists, is recorded as
// connected, and has a live channel in the multiplexer.
func (s *AssessmentService) checkTunnel(ctx context.Context, sessionID string) error {
	session, err := s.client.TunnelSession.Query().
		Where(tunnelsession.IDEQ(sessionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return NotFound("Tunnel session", sessionID)
		}
		return fmt.Errorf("failed to look up tunnel session: %w", err)
	}
	if session.Status != tunnelsession.StatusConnected {
		return TunnelNotConnected()
	}
	if s.tunnel != nil && !s.tunnel.Live(sessionID) {
		return TunnelNotConnected()
	}
	return nil
}

// Get fetches one assessment by ID
func (s *AssessmentService) Get(ctx context.Context, id string) (*ent.Assessment, error) {
	a, err := s.client.Assessment.Query().
		Where(assessment.IDEQ(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, NotFound("Assessment", id)
		}
		return nil, fmt.Errorf("failed to get assessment: %w", err)
	}
	return a, nil
}

// List returns a page of assessments plus the unpaginated total.
func (s *AssessmentService) List(ctx context.Context, params models.AssessmentListParams) ([]*ent.Assessment, int, error) {
	query := s.client.Assessment.Query()

	if params.Mode != "" {
		query = query.Where(assessment.ModeEQ(assessment.Mode(params.Mode)))
	}
	if params.Status != "" {
		query = query.Where(assessment.StatusEQ(assessment.Status(params.Status)))
	}

	total, err := query.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count assessments: %w", err)
	}

	field, desc := parseSort(params.Sort, map[string]string{
		"created_at":   assessment.FieldCreatedAt,
		"updated_at":   assessment.FieldUpdatedAt,
		"completed_at": assessment.FieldCompletedAt,
		"status":       assessment.FieldStatus,
		"mode":         assessment.FieldMode,
	}, assessment.FieldCreatedAt)
	if desc {
		query = query.Order(ent.Desc(field))
	} else {
		query = query.Order(ent.Asc(field))
	}

	page, perPage := models.ClampPage(params.Page, params.PerPage)
	items, err := query.
		Limit(perPage).
		Offset((page - 1) * perPage).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list assessments: %w", err)
	}
	return items, total, nil
}

// Delete removes an assessment; findings and logs cascade.
func (s *AssessmentService) Delete(ctx context.Context, id string) error {
	err := s.client.Assessment.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return NotFound("Assessment", id)
		}
		return fmt.Errorf("failed to delete assessment: %w", err)
	}
	return nil
}

// Rerun resets a terminal assessment back to queued, clearing prior findings,
// logs, histogram, and completion state. Overrides apply only when supplied.
func (s *AssessmentService) Rerun(ctx context.Context, id string, input models.RerunAssessmentInput) (*ent.Assessment, error) {
	a, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if a.Status != assessment.StatusComplete && a.Status != assessment.StatusFailed {
		return nil, AssessmentInProgress()
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Finding.Delete().Where(finding.AssessmentIDEQ(id)).Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to clear findings: %w", err)
	}
	if _, err := tx.AgentLog.Delete().Where(agentlog.AssessmentIDEQ(id)).Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to clear agent logs: %w", err)
	}

	update := tx.Assessment.UpdateOneID(id).
		SetStatus(assessment.StatusQueued).
		SetFindingCounts(models.ZeroCounts()).
		ClearCompletedAt().
		ClearErrorType().
		ClearErrorMessage()
	if input.Agents != nil {
		update.SetAgents(input.Agents)
	}
	if input.IdempotencyKey != nil {
		update.SetIdempotencyKey(*input.IdempotencyKey)
	}

	a, err = update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to reset assessment: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit rerun: %w", err)
	}
	return a, nil
}

// ClaimNextQueued atomically claims the oldest queued assessment and moves it
// to its first working status (cloning, analyzing, or scanning, depending on
// mode and source). Returns nil when nothing is queued.
func (s *AssessmentService) ClaimNextQueued(ctx context.Context) (*ent.Assessment, error) {
	claimCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(claimCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	a, err := tx.Assessment.Query().
		Where(assessment.StatusEQ(assessment.StatusQueued)).
		Order(ent.Asc(assessment.FieldCreatedAt)).
		First(claimCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query queued assessment: %w", err)
	}

	// Conditional update: only claim if still queued.
	count, err := tx.Assessment.Update().
		Where(
			assessment.IDEQ(a.ID),
			assessment.StatusEQ(assessment.StatusQueued),
		).
		SetStatus(firstWorkingStatus(a)).
		Save(claimCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim assessment: %w", err)
	}
	if count == 0 {
		// Claimed by another worker in the meantime.
		return nil, nil
	}

	a, err = tx.Assessment.Get(claimCtx, a.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to refetch claimed assessment: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}
	return a, nil
}

// firstWorkingStatus picks the status a freshly claimed assessment enters.
func firstWorkingStatus(a *ent.Assessment) assessment.Status {
	if a.Mode == assessment.ModeRobust {
		return assessment.StatusScanning
	}
	if a.RepoURL != nil && *a.RepoURL != "" {
		return assessment.StatusCloning
	}
	return assessment.StatusAnalyzing
}

// SetStatus moves an assessment to a non-terminal working status.
func (s *AssessmentService) SetStatus(ctx context.Context, id string, status string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.Assessment.UpdateOneID(id).
		SetStatus(assessment.Status(status)).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return NotFound("Assessment", id)
		}
		return fmt.Errorf("failed to update assessment status: %w", err)
	}
	return nil
}

// Complete marks an assessment complete with its final severity histogram.
func (s *AssessmentService) Complete(ctx context.Context, id string, counts map[string]int) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.Assessment.UpdateOneID(id).
		SetStatus(assessment.StatusComplete).
		SetFindingCounts(counts).
		SetCompletedAt(time.Now()).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return NotFound("Assessment", id)
		}
		return fmt.Errorf("failed to complete assessment: %w", err)
	}
	return nil
}

// Fail marks an assessment failed with an uppercase error code and a
// truncated message.
func (s *AssessmentService) Fail(ctx context.Context, id string, errType, errMessage string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if len(errMessage) > errorMessageLimit {
		errMessage = errMessage[:errorMessageLimit]
	}
	err := s.client.Assessment.UpdateOneID(id).
		SetStatus(assessment.StatusFailed).
		SetErrorType(strings.ToUpper(errType)).
		SetErrorMessage(errMessage).
		SetCompletedAt(time.Now()).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return NotFound("Assessment", id)
		}
		return fmt.Errorf("failed to fail assessment: %w", err)
	}
	return nil
}

// PurgeOlderThan deletes terminal assessments not updated since the cutoff,
// together with their findings and agent logs. Returns the number of
// assessments removed.
func (s *AssessmentService) PurgeOlderThan(ctx context.Context, retention time.Duration) (int, error) {
	cutoff := time.Now().Add(-retention)

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	ids, err := tx.Assessment.Query().
		Where(
			assessment.StatusIn(assessment.StatusComplete, assessment.StatusFailed),
			assessment.UpdatedAtLT(cutoff),
		).
		IDs(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query expired assessments: %w", err)
	}
	if len(ids) == 0 {
		return 0, nil
	}

	if _, err := tx.Finding.Delete().Where(finding.AssessmentIDIn(ids...)).Exec(ctx); err != nil {
		return 0, fmt.Errorf("failed to purge findings: %w", err)
	}
	if _, err := tx.AgentLog.Delete().Where(agentlog.AssessmentIDIn(ids...)).Exec(ctx); err != nil {
		return 0, fmt.Errorf("failed to purge agent logs: %w", err)
	}
	count, err := tx.Assessment.Delete().Where(assessment.IDIn(ids...)).Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge assessments: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit purge: %w", err)
	}
	return count, nil
}

// RequeueStuck returns assessments abandoned mid-run (after a crash or
// restart) to the queue. Called once at startup, before the workers poll.
func (s *AssessmentService) RequeueStuck(ctx context.Context) (int, error) {
	count, err := s.client.Assessment.Update().
		Where(assessment.StatusIn(
			assessment.StatusCloning,
			assessment.StatusAnalyzing,
			assessment.StatusScanning,
		)).
		SetStatus(assessment.StatusQueued).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to requeue stuck assessments: %w", err)
	}
	return count, nil
}

// parseSort splits a "field" / "-field" sort expression against a whitelist,
// falling back to the default field descending.
func parseSort(sort string, allowed map[string]string, defaultField string) (string, bool) {
	if sort == "" {
		return defaultField, true
	}
	desc := strings.HasPrefix(sort, "-")
	name := strings.TrimPrefix(sort, "-")
	if field, ok := allowed[name]; ok {
		return field, desc
	}
	return defaultField, true
}
