package services

import (
	"context"
	"encoding/json"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"github.com/vibecheck/vibecheck/ent"
	"github.com/vibecheck/vibecheck/ent/finding"
	"github.com/vibecheck/vibecheck/pkg/ident"
	"github.com/vibecheck/vibecheck/pkg/models"
)

// FindingService persists and queries security findings
type FindingService struct {
	client *ent.Client
}

// NewFindingService creates a new FindingService
func NewFindingService(client *ent.Client) *FindingService {
	return &FindingService{client: client}
}

// Save persists one finding record for an assessment. agent is the emitting
// agent name ("static" for lightweight analyzers).
func (s *FindingService) Save(ctx context.Context, assessmentID, agent string, rec models.FindingRecord) (*ent.Finding, error) {
	builder := s.client.Finding.Create().
		SetID(ident.New(ident.PrefixFinding)).
		SetAssessmentID(assessmentID).
		SetSeverity(finding.Severity(rec.Severity)).
		SetCategory(rec.Category).
		SetTitle(rec.Title).
		SetDescription(rec.Description).
		SetRemediation(rec.Remediation).
		SetAgent(agent)

	if rec.Location != nil {
		loc, err := toJSONMap(rec.Location)
		if err != nil {
			return nil, fmt.Errorf("failed to encode location: %w", err)
		}
		builder.SetLocation(loc)
	}
	if rec.Evidence != nil {
		builder.SetEvidence(rec.Evidence)
	}

	f, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to save finding: %w", err)
	}
	return f, nil
}

// SaveAll persists a batch of findings in order and returns the severity
// histogram of the batch.
func (s *FindingService) SaveAll(ctx context.Context, assessmentID, agent string, recs []models.FindingRecord) (models.FindingCounts, error) {
	var counts models.FindingCounts
	for _, rec := range recs {
		if _, err := s.Save(ctx, assessmentID, agent, rec); err != nil {
			return counts, err
		}
		counts.Add(rec.Severity)
	}
	return counts, nil
}

// Get fetches one finding, scoped to its assessment.
func (s *FindingService) Get(ctx context.Context, assessmentID, findingID string) (*ent.Finding, error) {
	f, err := s.client.Finding.Query().
		Where(
			finding.IDEQ(findingID),
			finding.AssessmentIDEQ(assessmentID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, NotFound("Finding", findingID)
		}
		return nil, fmt.Errorf("failed to get finding: %w", err)
	}
	return f, nil
}

// List returns a page of an assessment's findings plus the unpaginated total.
// sort=severity orders critical first, then by creation time.
func (s *FindingService) List(ctx context.Context, assessmentID string, params models.FindingListParams) ([]*ent.Finding, int, error) {
	query := s.client.Finding.Query().
		Where(finding.AssessmentIDEQ(assessmentID))

	if params.Severity != "" {
		query = query.Where(finding.SeverityEQ(finding.Severity(params.Severity)))
	}
	if params.Category != "" {
		query = query.Where(finding.CategoryEQ(params.Category))
	}
	if params.Agent != "" {
		query = query.Where(finding.AgentEQ(params.Agent))
	}

	total, err := query.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count findings: %w", err)
	}

	if params.Sort == "severity" {
		query = query.Order(severityRankOrder, ent.Asc(finding.FieldCreatedAt))
	} else {
		field, desc := parseSort(params.Sort, map[string]string{
			"created_at": finding.FieldCreatedAt,
			"category":   finding.FieldCategory,
		}, finding.FieldCreatedAt)
		if desc {
			query = query.Order(ent.Desc(field))
		} else {
			query = query.Order(ent.Asc(field))
		}
	}

	page, perPage := models.ClampPage(params.Page, params.PerPage)
	items, err := query.
		Limit(perPage).
		Offset((page - 1) * perPage).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list findings: %w", err)
	}
	return items, total, nil
}

// severityRankOrder sorts critical < high < medium < low < info.
func severityRankOrder(s *sql.Selector) {
	s.OrderExpr(sql.Expr(
		`CASE severity WHEN 'critical' THEN 0 WHEN 'high' THEN 1 WHEN 'medium' THEN 2 WHEN 'low' THEN 3 WHEN 'info' THEN 4 ELSE 5 END`,
	))
}

// DeleteByAgent removes the findings one agent persisted for an assessment.
// Used to discard the partial results of a failed robust agent.
func (s *FindingService) DeleteByAgent(ctx context.Context, assessmentID, agent string) (int, error) {
	count, err := s.client.Finding.Delete().
		Where(
			finding.AssessmentIDEQ(assessmentID),
			finding.AgentEQ(agent),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete agent findings: %w", err)
	}
	return count, nil
}

// Counts aggregates the assessment's findings into a severity histogram.
func (s *FindingService) Counts(ctx context.Context, assessmentID string) (models.FindingCounts, error) {
	var rows []struct {
		Severity string `json:"severity"`
		Count    int    `json:"count"`
	}
	err := s.client.Finding.Query().
		Where(finding.AssessmentIDEQ(assessmentID)).
		GroupBy(finding.FieldSeverity).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return models.FindingCounts{}, fmt.Errorf("failed to aggregate findings: %w", err)
	}

	var counts models.FindingCounts
	for _, row := range rows {
		switch row.Severity {
		case models.SeverityCritical:
			counts.Critical = row.Count
		case models.SeverityHigh:
			counts.High = row.Count
		case models.SeverityMedium:
			counts.Medium = row.Count
		case models.SeverityLow:
			counts.Low = row.Count
		case models.SeverityInfo:
			counts.Info = row.Count
		default:
			continue
		}
		counts.Total += row.Count
	}
	return counts, nil
}

// toJSONMap renders a struct into the map shape ent JSON columns expect.
func toJSONMap(v any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	return m, nil
}
