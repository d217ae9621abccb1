package robust

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vibecheck/vibecheck/pkg/llm"
	"github.com/vibecheck/vibecheck/pkg/models"
)

// scriptedLLM replays canned completions and records every request so tests
// can inspect the tool results fed back to the model.
type scriptedLLM struct {
	completions []*llm.Completion
	requests    []*llm.Request
}

func (s *scriptedLLM) Complete(_ context.Context, req *llm.Request) (*llm.Completion, error) {
	s.requests = append(s.requests, req)
	if len(s.completions) == 0 {
		return &llm.Completion{Text: "done"}, nil
	}
	next := s.completions[0]
	s.completions = s.completions[1:]
	return next, nil
}

type memStore struct {
	findings []models.FindingRecord
	logs     []models.AgentLogEntry
}

func (m *memStore) SaveFinding(_ context.Context, _, _ string, rec models.FindingRecord) (string, error) {
	m.findings = append(m.findings, rec)
	return "fnd_test", nil
}

func (m *memStore) AppendLog(_ context.Context, entry models.AgentLogEntry) error {
	m.logs = append(m.logs, entry)
	return nil
}

func callTurn(calls ...llm.ToolCall) *llm.Completion {
	return &llm.Completion{Calls: calls}
}

func httpCall(method, path string) llm.ToolCall {
	return llm.ToolCall{Name: "http_request", Args: map[string]any{"method": method, "path": path}}
}

// lastResult digs the tool response out of the final user turn of a request.
func lastResult(t *testing.T, req *llm.Request) map[string]any {
	t.Helper()
	require.NotEmpty(t, req.Turns)
	turn := req.Turns[len(req.Turns)-1]
	require.NotEmpty(t, turn.Results)
	result, ok := turn.Results[len(turn.Results)-1].Response["result"].(map[string]any)
	require.True(t, ok)
	return result
}

func newTestAgent(t *testing.T, client llm.Client, doer Doer, store Store, depth string) *Agent {
	t.Helper()
	agent, err := NewAgent("recon", "asm_test", "http://target", depth, client, doer, store, &Coverage{
		SeedPaths:      []string{"/", "/api/users"},
		ReachablePaths: []ReachablePath{{Path: "/", Status: 200}},
	})
	require.NoError(t, err)
	return agent
}

func TestNewAgentUnknownName(t *testing.T) {
	_, err := NewAgent("nonsense", "asm_x", "http://t", "quick", &scriptedLLM{}, &stubDoer{}, &memStore{}, nil)
	assert.Error(t, err)
}

func TestAgentStopsWhenModelStopsCalling(t *testing.T) {
	client := &scriptedLLM{completions: []*llm.Completion{{Text: "nothing to probe"}}}
	store := &memStore{}
	agent := newTestAgent(t, client, &stubDoer{}, store, "quick")

	require.NoError(t, agent.Run(context.Background()))
	assert.Empty(t, store.logs)
	assert.Len(t, client.requests, 1)

	first := client.requests[0]
	assert.NotEmpty(t, first.System)
	require.Len(t, first.Turns, 1)
	assert.Contains(t, first.Turns[0].Text, "Target URL: http://target")
	assert.Contains(t, first.Turns[0].Text, "/api/users")
}

func TestAgentPerPathLimit(t *testing.T) {
	client := &scriptedLLM{completions: []*llm.Completion{
		callTurn(httpCall("GET", "/a")),
		callTurn(httpCall("GET", "/a")),
		callTurn(httpCall("GET", "/a")),
		{Text: "done"},
	}}
	doer := &stubDoer{bodies: map[string]string{"/a": "hello"}}
	store := &memStore{}
	agent := newTestAgent(t, client, doer, store, "quick")

	require.NoError(t, agent.Run(context.Background()))

	// Two probes land, the third is rejected without touching the target.
	assert.Len(t, doer.calls, 2)
	require.Len(t, store.logs, 2)
	assert.Equal(t, 1, store.logs[0].Step)
	assert.Equal(t, 2, store.logs[1].Step)
	assert.Equal(t, "GET /a", store.logs[0].Action)

	require.Len(t, client.requests, 4)
	rejected := lastResult(t, client.requests[3])
	assert.Equal(t, "path_attempt_limit_reached", rejected["error"])
	assert.Contains(t, rejected["message"], "GET /a")
}

func TestAgentRequestBudget(t *testing.T) {
	client := &scriptedLLM{completions: []*llm.Completion{
		callTurn(httpCall("GET", "/a")),
		{Text: "done"},
	}}
	store := &memStore{}
	agent := newTestAgent(t, client, &stubDoer{}, store, "quick")
	agent.httpCount = agent.budget.MaxHTTPRequests

	require.NoError(t, agent.Run(context.Background()))
	assert.Empty(t, store.logs, "budget rejections are not persisted as steps")

	rejected := lastResult(t, client.requests[1])
	assert.Equal(t, "request_budget_exceeded", rejected["error"])
}

func TestAgentStepBudget(t *testing.T) {
	// The model never stops asking; the step budget has to cut it off.
	var completions []*llm.Completion
	paths := []string{"/a", "/b", "/c", "/d", "/e", "/f", "/g", "/h", "/i", "/j", "/k", "/l"}
	for _, p := range paths {
		completions = append(completions, callTurn(httpCall("GET", p)))
	}
	client := &scriptedLLM{completions: completions}
	store := &memStore{}
	agent := newTestAgent(t, client, &stubDoer{}, store, "quick")

	require.NoError(t, agent.Run(context.Background()))
	require.Len(t, store.logs, 10)
	for i, entry := range store.logs {
		assert.Equal(t, i+1, entry.Step)
		assert.Equal(t, "recon", entry.Agent)
		assert.Equal(t, "asm_test", entry.AssessmentID)
	}
}

func TestAgentHTTPRequestLogsPayloadAndPreview(t *testing.T) {
	client := &scriptedLLM{completions: []*llm.Completion{
		callTurn(llm.ToolCall{Name: "http_request", Args: map[string]any{
			"method": "post",
			"path":   "login",
			"body":   `{"user":"admin"}`,
		}}),
		{Text: "done"},
	}}
	doer := &stubDoer{bodies: map[string]string{"/login": "welcome"}}
	store := &memStore{}
	agent := newTestAgent(t, client, doer, store, "quick")

	require.NoError(t, agent.Run(context.Background()))

	assert.Equal(t, []string{"POST /login"}, doer.calls)
	require.Len(t, store.logs, 1)
	entry := store.logs[0]
	assert.Equal(t, "POST /login", entry.Action)
	assert.Equal(t, "/login", entry.Target)
	require.NotNil(t, entry.Payload)
	assert.Equal(t, `{"user":"admin"}`, *entry.Payload)
	require.NotNil(t, entry.ResponseCode)
	assert.Equal(t, 200, *entry.ResponseCode)
	require.NotNil(t, entry.ResponsePreview)
	assert.Equal(t, "welcome", *entry.ResponsePreview)

	result := lastResult(t, client.requests[1])
	assert.Equal(t, 200, result["status_code"])
}

func TestAgentReportFinding(t *testing.T) {
	client := &scriptedLLM{completions: []*llm.Completion{
		callTurn(llm.ToolCall{Name: "report_finding", Args: map[string]any{
			"severity":    "high",
			"category":    "sql_injection",
			"title":       "SQL injection in search",
			"description": "The q parameter is concatenated into a query.",
			"remediation": "Use parameterized queries.",
			"evidence": map[string]any{
				"url":      "http://target/search?q=1'",
				"response": "syntax error",
			},
		}}),
		{Text: "done"},
	}}
	store := &memStore{}
	agent := newTestAgent(t, client, &stubDoer{}, store, "quick")

	require.NoError(t, agent.Run(context.Background()))

	require.Len(t, store.findings, 1)
	rec := store.findings[0]
	assert.Equal(t, "high", rec.Severity)
	assert.Equal(t, "sql_injection", rec.Category)
	require.NotNil(t, rec.Location)
	assert.Equal(t, "endpoint", rec.Location.Type)
	assert.Equal(t, "http://target/search?q=1'", rec.Location.URL)
	assert.Equal(t, "syntax error", rec.Evidence["response"])

	require.Len(t, store.logs, 1)
	require.NotNil(t, store.logs[0].FindingID)
	assert.Equal(t, "fnd_test", *store.logs[0].FindingID)
	assert.Contains(t, store.logs[0].Action, "Reported high finding")

	result := lastResult(t, client.requests[1])
	assert.Equal(t, "finding_reported", result["status"])
	assert.Equal(t, "fnd_test", result["finding_id"])
}

func TestAgentReportFindingDefaults(t *testing.T) {
	client := &scriptedLLM{completions: []*llm.Completion{
		callTurn(llm.ToolCall{Name: "report_finding", Args: map[string]any{}}),
		{Text: "done"},
	}}
	store := &memStore{}
	agent := newTestAgent(t, client, &stubDoer{}, store, "quick")

	require.NoError(t, agent.Run(context.Background()))
	require.Len(t, store.findings, 1)
	assert.Equal(t, "info", store.findings[0].Severity)
	assert.Equal(t, "unknown", store.findings[0].Category)
	assert.Equal(t, "Untitled finding", store.findings[0].Title)
	assert.Nil(t, store.findings[0].Location)
}

func TestAgentUnknownTool(t *testing.T) {
	client := &scriptedLLM{completions: []*llm.Completion{
		callTurn(llm.ToolCall{Name: "drop_tables", Args: map[string]any{}}),
		{Text: "done"},
	}}
	store := &memStore{}
	agent := newTestAgent(t, client, &stubDoer{}, store, "quick")

	require.NoError(t, agent.Run(context.Background()))
	assert.Empty(t, store.logs)
	result := lastResult(t, client.requests[1])
	assert.Equal(t, "Unknown tool: drop_tables", result["error"])
}

func TestSystemPromptsCoverCatalog(t *testing.T) {
	for _, name := range models.DefaultAgents {
		prompt, ok := SystemPrompt(name)
		assert.True(t, ok, "missing prompt for %s", name)
		assert.NotEmpty(t, prompt)
	}
	_, ok := SystemPrompt("static")
	assert.False(t, ok, "static is not a robust agent")
}
