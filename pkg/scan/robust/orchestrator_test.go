package robust

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vibecheck/vibecheck/ent"
	"github.com/vibecheck/vibecheck/pkg/llm"
	"github.com/vibecheck/vibecheck/pkg/models"
	"github.com/vibecheck/vibecheck/pkg/probe"
)

// seqLLM replays completion/error steps in order, shared across the agents
// the orchestrator runs sequentially.
type seqLLM struct {
	steps []llmStep
}

type llmStep struct {
	completion *llm.Completion
	err        error
}

func (s *seqLLM) Complete(_ context.Context, _ *llm.Request) (*llm.Completion, error) {
	if len(s.steps) == 0 {
		return &llm.Completion{Text: "done"}, nil
	}
	next := s.steps[0]
	s.steps = s.steps[1:]
	return next.completion, next.err
}

// failDoer refuses every probe, including the reachability check.
type failDoer struct{}

func (failDoer) Do(_ context.Context, _, _, path string, _ map[string]string, _ string) (*probe.Result, *probe.ErrorResult) {
	return nil, &probe.ErrorResult{Kind: probe.ErrKindConnectionFailed, URL: path, Message: "connection refused"}
}

type orchAssessments struct {
	completedCounts map[string]int
	failType        string
	failMessage     string
}

func (s *orchAssessments) Complete(_ context.Context, _ string, counts map[string]int) error {
	s.completedCounts = counts
	return nil
}

func (s *orchAssessments) Fail(_ context.Context, _ string, errType, errMessage string) error {
	s.failType = errType
	s.failMessage = errMessage
	return nil
}

type savedFinding struct {
	agent string
	rec   models.FindingRecord
}

type orchFindings struct {
	saved         []savedFinding
	deletedAgents []string
}

func (s *orchFindings) Save(_ context.Context, _, agent string, rec models.FindingRecord) (*ent.Finding, error) {
	s.saved = append(s.saved, savedFinding{agent: agent, rec: rec})
	return &ent.Finding{ID: fmt.Sprintf("fnd_%03d", len(s.saved))}, nil
}

func (s *orchFindings) Counts(_ context.Context, _ string) (models.FindingCounts, error) {
	var counts models.FindingCounts
	for _, f := range s.saved {
		counts.Add(f.rec.Severity)
	}
	return counts, nil
}

func (s *orchFindings) DeleteByAgent(_ context.Context, _, agent string) (int, error) {
	s.deletedAgents = append(s.deletedAgents, agent)
	var kept []savedFinding
	deleted := 0
	for _, f := range s.saved {
		if f.agent == agent {
			deleted++
			continue
		}
		kept = append(kept, f)
	}
	s.saved = kept
	return deleted, nil
}

type orchLogs struct {
	entries       []models.AgentLogEntry
	deletedAgents []string
}

func (s *orchLogs) Append(_ context.Context, entry models.AgentLogEntry) (*ent.AgentLog, error) {
	s.entries = append(s.entries, entry)
	return &ent.AgentLog{ID: fmt.Sprintf("log_%03d", len(s.entries))}, nil
}

func (s *orchLogs) DeleteByAgent(_ context.Context, _, agent string) (int, error) {
	s.deletedAgents = append(s.deletedAgents, agent)
	var kept []models.AgentLogEntry
	deleted := 0
	for _, e := range s.entries {
		if e.Agent == agent {
			deleted++
			continue
		}
		kept = append(kept, e)
	}
	s.entries = kept
	return deleted, nil
}

func findingCall(severity, title string) llm.ToolCall {
	return llm.ToolCall{Name: "report_finding", Args: map[string]any{
		"severity":    severity,
		"category":    "auth",
		"title":       title,
		"description": "confirmed during probing",
		"remediation": "lock it down",
	}}
}

func robustAssessment(agents ...string) *ent.Assessment {
	target := "http://target"
	return &ent.Assessment{
		ID:        "asm_orch",
		Mode:      "robust",
		Depth:     "quick",
		TargetURL: &target,
		Agents:    agents,
	}
}

type orchFixture struct {
	assessments *orchAssessments
	findings    *orchFindings
	logs        *orchLogs
}

func newOrchestrator(client llm.Client, doer Doer) (*Orchestrator, *orchFixture) {
	fx := &orchFixture{
		assessments: &orchAssessments{},
		findings:    &orchFindings{},
		logs:        &orchLogs{},
	}
	o := NewOrchestrator(
		fx.assessments, fx.findings, fx.logs,
		client,
		func(_ *ent.Assessment) Doer { return doer },
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
	return o, fx
}

func TestOrchestratorFailsWithoutClient(t *testing.T) {
	o, fx := newOrchestrator(nil, &stubDoer{})

	err := o.Run(context.Background(), robustAssessment("recon"))
	require.Error(t, err)
	assert.Equal(t, "GEMINI_API_KEY_MISSING", fx.assessments.failType)
	assert.Nil(t, fx.assessments.completedCounts)
}

func TestOrchestratorTargetUnreachable(t *testing.T) {
	o, fx := newOrchestrator(&seqLLM{}, failDoer{})

	err := o.Run(context.Background(), robustAssessment("recon"))
	require.Error(t, err)
	assert.Equal(t, "TARGET_UNREACHABLE", fx.assessments.failType)
	assert.Contains(t, fx.assessments.failMessage, "Cannot reach http://target")
}

func TestOrchestratorAllAgentsFailed(t *testing.T) {
	client := &seqLLM{steps: []llmStep{
		{err: errors.New("model exploded")},
		{err: errors.New("model exploded")},
	}}
	o, fx := newOrchestrator(client, &stubDoer{bodies: map[string]string{"/": "home"}})

	err := o.Run(context.Background(), robustAssessment("recon", "auth"))
	require.Error(t, err)
	assert.Equal(t, "AGENT_EXECUTION_FAILED", fx.assessments.failType)
	assert.Contains(t, fx.assessments.failMessage, "recon:")
	assert.Contains(t, fx.assessments.failMessage, "auth:")
	assert.Nil(t, fx.assessments.completedCounts)
}

func TestOrchestratorDiscardsFailedAgentWork(t *testing.T) {
	// recon reports a finding, then its next model call fails; auth finishes
	// cleanly. recon's persisted rows must not reach the final histogram.
	client := &seqLLM{steps: []llmStep{
		{completion: callTurn(findingCall("high", "Recon partial"))},
		{err: errors.New("model exploded")},
		{completion: callTurn(findingCall("low", "Auth issue"))},
		{completion: &llm.Completion{Text: "done"}},
	}}
	o, fx := newOrchestrator(client, &stubDoer{bodies: map[string]string{"/": "home"}})

	require.NoError(t, o.Run(context.Background(), robustAssessment("recon", "auth")))

	assert.Empty(t, fx.assessments.failType)
	expected := models.FindingCounts{Low: 1, Total: 1}
	assert.Equal(t, expected.AsMap(), fx.assessments.completedCounts)

	assert.Equal(t, []string{"recon"}, fx.findings.deletedAgents)
	assert.Equal(t, []string{"recon"}, fx.logs.deletedAgents)
	require.Len(t, fx.findings.saved, 1)
	assert.Equal(t, "auth", fx.findings.saved[0].agent)
	assert.Equal(t, "Auth issue", fx.findings.saved[0].rec.Title)
	for _, entry := range fx.logs.entries {
		assert.Equal(t, "auth", entry.Agent)
	}
}

func TestOrchestratorCompletesWithCounts(t *testing.T) {
	client := &seqLLM{steps: []llmStep{
		{completion: callTurn(findingCall("critical", "Recon hit"))},
		{completion: &llm.Completion{Text: "done"}},
		{completion: callTurn(findingCall("medium", "Auth hit"))},
		{completion: &llm.Completion{Text: "done"}},
	}}
	o, fx := newOrchestrator(client, &stubDoer{bodies: map[string]string{"/": "home"}})

	require.NoError(t, o.Run(context.Background(), robustAssessment("recon", "auth")))

	expected := models.FindingCounts{Critical: 1, Medium: 1, Total: 2}
	assert.Equal(t, expected.AsMap(), fx.assessments.completedCounts)
	assert.Empty(t, fx.findings.deletedAgents)
	assert.Empty(t, fx.assessments.failType)
}
