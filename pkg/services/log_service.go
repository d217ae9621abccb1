package services

import (
	"context"
	"fmt"

	"github.com/vibecheck/vibecheck/ent"
	"github.com/vibecheck/vibecheck/ent/agentlog"
	"github.com/vibecheck/vibecheck/ent/assessment"
	"github.com/vibecheck/vibecheck/pkg/ident"
	"github.com/vibecheck/vibecheck/pkg/models"
)

// LogService persists and queries robust agent step logs
type LogService struct {
	client *ent.Client
}

// NewLogService creates a new LogService
func NewLogService(client *ent.Client) *LogService {
	return &LogService{client: client}
}

// Append writes one step log row.
func (s *LogService) Append(ctx context.Context, entry models.AgentLogEntry) (*ent.AgentLog, error) {
	builder := s.client.AgentLog.Create().
		SetID(ident.New(ident.PrefixAgentLog)).
		SetAssessmentID(entry.AssessmentID).
		SetAgent(entry.Agent).
		SetStep(entry.Step).
		SetAction(entry.Action).
		SetTarget(entry.Target).
		SetReasoning(entry.Reasoning)

	if entry.Payload != nil {
		builder.SetPayload(*entry.Payload)
	}
	if entry.ResponseCode != nil {
		builder.SetResponseCode(*entry.ResponseCode)
	}
	if entry.ResponsePreview != nil {
		builder.SetResponsePreview(*entry.ResponsePreview)
	}
	if entry.FindingID != nil {
		builder.SetFindingID(*entry.FindingID)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to append agent log: %w", err)
	}
	return row, nil
}

// DeleteByAgent removes the step logs one agent persisted for an assessment.
// Used to discard the partial results of a failed robust agent.
func (s *LogService) DeleteByAgent(ctx context.Context, assessmentID, agent string) (int, error) {
	count, err := s.client.AgentLog.Delete().
		Where(
			agentlog.AssessmentIDEQ(assessmentID),
			agentlog.AgentEQ(agent),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete agent logs: %w", err)
	}
	return count, nil
}

// List returns a page of an assessment's step logs in agent/step order.
// Logs exist only for robust assessments; lightweight ones are rejected.
func (s *LogService) List(ctx context.Context, assessmentID string, params models.AgentLogListParams) ([]*ent.AgentLog, int, error) {
	a, err := s.client.Assessment.Query().
		Where(assessment.IDEQ(assessmentID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, 0, NotFound("Assessment", assessmentID)
		}
		return nil, 0, fmt.Errorf("failed to get assessment: %w", err)
	}
	if a.Mode != assessment.ModeRobust {
		return nil, 0, LogsNotAvailable()
	}

	query := s.client.AgentLog.Query().
		Where(agentlog.AssessmentIDEQ(assessmentID))
	if params.Agent != "" {
		query = query.Where(agentlog.AgentEQ(params.Agent))
	}

	total, err := query.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count agent logs: %w", err)
	}

	page, perPage := models.ClampPage(params.Page, params.PerPage)
	items, err := query.
		Order(ent.Asc(agentlog.FieldAgent), ent.Asc(agentlog.FieldStep)).
		Limit(perPage).
		Offset((page - 1) * perPage).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list agent logs: %w", err)
	}
	return items, total, nil
}
