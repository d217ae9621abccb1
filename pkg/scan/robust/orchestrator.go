package robust

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/vibecheck/vibecheck/ent"
	"github.com/vibecheck/vibecheck/pkg/llm"
	"github.com/vibecheck/vibecheck/pkg/models"
	"github.com/vibecheck/vibecheck/pkg/services"
)

// agentErrorLimit truncates one failed agent's reason in the terminal error.
const agentErrorLimit = 180

// AssessmentStore is the slice of the assessment service the orchestrator
// writes terminal statuses through.
type AssessmentStore interface {
	Complete(ctx context.Context, id string, counts map[string]int) error
	Fail(ctx context.Context, id, errType, errMessage string) error
}

// FindingStore persists, aggregates, and discards findings.
// Implemented by services.FindingService.
type FindingStore interface {
	Save(ctx context.Context, assessmentID, agent string, rec models.FindingRecord) (*ent.Finding, error)
	Counts(ctx context.Context, assessmentID string) (models.FindingCounts, error)
	DeleteByAgent(ctx context.Context, assessmentID, agent string) (int, error)
}

// LogStore persists and discards step logs. Implemented by services.LogService.
type LogStore interface {
	Append(ctx context.Context, entry models.AgentLogEntry) (*ent.AgentLog, error)
	DeleteByAgent(ctx context.Context, assessmentID, agent string) (int, error)
}

// Orchestrator runs coverage discovery plus the requested agents for one
// robust assessment and reduces the outcome to a terminal status.
type Orchestrator struct {
	assessments AssessmentStore
	findings    FindingStore
	logs        LogStore

	// client is nil when GEMINI_API_KEY is not configured.
	client llm.Client

	// proberFor picks the probe path for an assessment (direct, or through
	// the tunnel when the assessment references a tunnel session).
	proberFor func(a *ent.Assessment) Doer

	logger *slog.Logger
}

// NewOrchestrator wires a robust orchestrator.
func NewOrchestrator(
	assessments AssessmentStore,
	findings FindingStore,
	logs LogStore,
	client llm.Client,
	proberFor func(a *ent.Assessment) Doer,
	logger *slog.Logger,
) *Orchestrator {
	return &Orchestrator{
		assessments: assessments,
		findings:    findings,
		logs:        logs,
		client:      client,
		proberFor:   proberFor,
		logger:      logger,
	}
}

// Run executes the robust pipeline for a claimed assessment. Terminal status
// is always persisted; the returned error is for worker logging only.
func (o *Orchestrator) Run(ctx context.Context, a *ent.Assessment) error {
	if o.client == nil {
		return o.fail(ctx, a.ID, "GEMINI_API_KEY_MISSING",
			"GEMINI_API_KEY is not configured. Robust mode requires Gemini credentials.")
	}

	targetURL := ""
	if a.TargetURL != nil {
		targetURL = *a.TargetURL
	}
	prober := o.proberFor(a)

	if _, perr := prober.Do(ctx, targetURL, "GET", "/", nil, ""); perr != nil {
		return o.fail(ctx, a.ID, "TARGET_UNREACHABLE",
			fmt.Sprintf("Cannot reach %s: %s", targetURL, perr.Message))
	}

	coverage := BuildCoverage(ctx, prober, targetURL, string(a.Depth))
	o.logger.Info("coverage built",
		"assessment_id", a.ID,
		"probed", coverage.ProbedCount,
		"discovered", len(coverage.SeedPaths))

	roster := a.Agents
	if len(roster) == 0 {
		roster = models.DefaultAgents
	}

	store := &serviceStore{findings: o.findings, logs: o.logs}
	succeeded := 0
	var failures []string

	for _, name := range roster {
		if _, ok := SystemPrompt(name); !ok {
			continue
		}
		agent, err := NewAgent(name, a.ID, targetURL, string(a.Depth), o.client, prober, store, coverage)
		if err != nil {
			continue
		}
		if err := agent.Run(ctx); err != nil {
			o.logger.Error("agent failed", "assessment_id", a.ID, "agent", name, "error", err)
			failures = append(failures, fmt.Sprintf("%s: %s", name, truncate(err.Error(), agentErrorLimit)))
			o.discardAgentWork(ctx, a.ID, name)
			continue
		}
		succeeded++
	}

	if succeeded == 0 {
		details := "no agents ran"
		if len(failures) > 0 {
			details = strings.Join(failures, "; ")
		}
		return o.fail(ctx, a.ID, "AGENT_EXECUTION_FAILED",
			fmt.Sprintf("All robust agents failed. Check GEMINI_MODEL/GEMINI_API_KEY and logs. Details: %s", details))
	}

	counts, err := o.findings.Counts(ctx, a.ID)
	if err != nil {
		return o.fail(ctx, a.ID, "SCAN_ERROR", err.Error())
	}
	if err := o.assessments.Complete(ctx, a.ID, counts.AsMap()); err != nil {
		return fmt.Errorf("failed to complete assessment %s: %w", a.ID, err)
	}
	return nil
}

// discardAgentWork removes whatever a failed agent already persisted, so
// partial results never reach the final histogram or the API.
func (o *Orchestrator) discardAgentWork(ctx context.Context, assessmentID, agent string) {
	if _, err := o.findings.DeleteByAgent(ctx, assessmentID, agent); err != nil {
		o.logger.Error("failed to discard findings of failed agent",
			"assessment_id", assessmentID, "agent", agent, "error", err)
	}
	if _, err := o.logs.DeleteByAgent(ctx, assessmentID, agent); err != nil {
		o.logger.Error("failed to discard logs of failed agent",
			"assessment_id", assessmentID, "agent", agent, "error", err)
	}
}

func (o *Orchestrator) fail(ctx context.Context, id, errType, message string) error {
	if err := o.assessments.Fail(ctx, id, errType, message); err != nil {
		return fmt.Errorf("failed to mark assessment %s failed: %w", id, err)
	}
	return fmt.Errorf("assessment %s failed: %s", id, errType)
}

// serviceStore adapts the persistence stores to the agent Store interface.
type serviceStore struct {
	findings FindingStore
	logs     LogStore
}

func (s *serviceStore) SaveFinding(ctx context.Context, assessmentID, agent string, rec models.FindingRecord) (string, error) {
	f, err := s.findings.Save(ctx, assessmentID, agent, rec)
	if err != nil {
		return "", err
	}
	return f.ID, nil
}

func (s *serviceStore) AppendLog(ctx context.Context, entry models.AgentLogEntry) error {
	_, err := s.logs.Append(ctx, entry)
	return err
}

// Compile-time wiring checks for the concrete services.
var (
	_ AssessmentStore = (*services.AssessmentService)(nil)
	_ FindingStore    = (*services.FindingService)(nil)
	_ LogStore        = (*services.LogService)(nil)
)
