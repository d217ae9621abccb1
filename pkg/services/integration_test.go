package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vibecheck/vibecheck/ent"
	"github.com/vibecheck/vibecheck/ent/assessment"
	"github.com/vibecheck/vibecheck/ent/tunnelsession"
	"github.com/vibecheck/vibecheck/pkg/models"
	"github.com/vibecheck/vibecheck/test/util"
)

// liveTunnels reports every tunnel channel as live, standing in for the
// multiplexer in service-level tests.
type liveTunnels struct{}

func (liveTunnels) Live(string) bool { return true }

type deadTunnels struct{}

func (deadTunnels) Live(string) bool { return false }

type testServices struct {
	client      *ent.Client
	assessments *AssessmentService
	findings    *FindingService
	logs        *LogService
	tunnels     *TunnelService
}

func setupServices(t *testing.T) *testServices {
	entClient, _ := util.SetupTestDatabase(t)
	return &testServices{
		client:      entClient,
		assessments: NewAssessmentService(entClient, liveTunnels{}),
		findings:    NewFindingService(entClient),
		logs:        NewLogService(entClient),
		tunnels:     NewTunnelService(entClient),
	}
}

func lightweightInput() models.CreateAssessmentInput {
	return models.CreateAssessmentInput{
		Mode:    models.ModeLightweight,
		RepoURL: "https://github.com/example/app",
	}
}

func assertServiceError(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	se, ok := AsError(err)
	require.True(t, ok, "expected a service error, got %v", err)
	assert.Equal(t, code, se.Code)
}

func TestAssessmentCreateValidation(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()

	_, _, err := svc.assessments.Create(ctx, models.CreateAssessmentInput{Mode: "thorough"})
	assertServiceError(t, err, "INVALID_MODE")

	input := lightweightInput()
	input.Depth = "exhaustive"
	_, _, err = svc.assessments.Create(ctx, input)
	assertServiceError(t, err, "INVALID_DEPTH")

	_, _, err = svc.assessments.Create(ctx, models.CreateAssessmentInput{Mode: models.ModeLightweight})
	assertServiceError(t, err, "MISSING_REPO_URL")

	_, _, err = svc.assessments.Create(ctx, models.CreateAssessmentInput{Mode: models.ModeRobust})
	assertServiceError(t, err, "MISSING_TUNNEL_SESSION")

	_, _, err = svc.assessments.Create(ctx, models.CreateAssessmentInput{
		Mode:      models.ModeRobust,
		TargetURL: "http://localhost:3000",
		Agents:    []string{"recon", "exfil"},
	})
	assertServiceError(t, err, "INVALID_AGENT")

	_, _, err = svc.assessments.Create(ctx, models.CreateAssessmentInput{
		Mode:            models.ModeRobust,
		TunnelSessionID: "tun_missing",
	})
	assertServiceError(t, err, "TUNNEL_SESSION_NOT_FOUND")
}

func TestAssessmentCreateDefaults(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()

	a, reused, err := svc.assessments.Create(ctx, lightweightInput())
	require.NoError(t, err)
	assert.False(t, reused)
	assert.Equal(t, assessment.StatusQueued, a.Status)
	assert.Equal(t, assessment.DepthStandard, a.Depth)
	assert.Empty(t, a.Agents)

	session, err := svc.tunnels.Create(ctx, 3000)
	require.NoError(t, err)

	robust, _, err := svc.assessments.Create(ctx, models.CreateAssessmentInput{
		Mode:            models.ModeRobust,
		TunnelSessionID: session.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, models.DefaultAgents, robust.Agents)
}

func TestAssessmentCreateChecksTunnelLiveness(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()

	session, err := svc.tunnels.Create(ctx, 3000)
	require.NoError(t, err)

	// Recorded as connected but the channel itself is gone.
	stale := NewAssessmentService(svc.client, deadTunnels{})
	_, _, err = stale.Create(ctx, models.CreateAssessmentInput{
		Mode:            models.ModeRobust,
		TunnelSessionID: session.ID,
	})
	assertServiceError(t, err, "TUNNEL_NOT_CONNECTED")

	require.NoError(t, svc.tunnels.MarkDisconnected(ctx, session.ID))
	_, _, err = svc.assessments.Create(ctx, models.CreateAssessmentInput{
		Mode:            models.ModeRobust,
		TunnelSessionID: session.ID,
	})
	assertServiceError(t, err, "TUNNEL_NOT_CONNECTED")
}

func TestAssessmentIdempotency(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()

	input := lightweightInput()
	input.IdempotencyKey = "key-1"

	first, reused, err := svc.assessments.Create(ctx, input)
	require.NoError(t, err)
	assert.False(t, reused)

	second, reused, err := svc.assessments.Create(ctx, input)
	require.NoError(t, err)
	assert.True(t, reused)
	assert.Equal(t, first.ID, second.ID)

	_, _, err = svc.assessments.Create(ctx, models.CreateAssessmentInput{
		Mode:           models.ModeRobust,
		TargetURL:      "http://localhost:3000",
		IdempotencyKey: "key-1",
	})
	assertServiceError(t, err, "DUPLICATE_IDEMPOTENCY_KEY")
}

func TestClaimNextQueued(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()

	first, _, err := svc.assessments.Create(ctx, lightweightInput())
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)

	second, _, err := svc.assessments.Create(ctx, models.CreateAssessmentInput{
		Mode:      models.ModeRobust,
		TargetURL: "http://localhost:3000",
	})
	require.NoError(t, err)

	claimed, err := svc.assessments.ClaimNextQueued(ctx)
	require.NoError(t, err)
	require.NotNil(t, claimed)
	assert.Equal(t, first.ID, claimed.ID)
	assert.Equal(t, assessment.StatusCloning, claimed.Status)

	claimed, err = svc.assessments.ClaimNextQueued(ctx)
	require.NoError(t, err)
	require.NotNil(t, claimed)
	assert.Equal(t, second.ID, claimed.ID)
	assert.Equal(t, assessment.StatusScanning, claimed.Status)

	claimed, err = svc.assessments.ClaimNextQueued(ctx)
	require.NoError(t, err)
	assert.Nil(t, claimed)
}

func TestRerunClearsPriorResults(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()

	a, _, err := svc.assessments.Create(ctx, models.CreateAssessmentInput{
		Mode:      models.ModeRobust,
		TargetURL: "http://localhost:3000",
	})
	require.NoError(t, err)

	_, err = svc.assessments.Rerun(ctx, a.ID, models.RerunAssessmentInput{})
	assertServiceError(t, err, "ASSESSMENT_IN_PROGRESS")

	_, err = svc.findings.Save(ctx, a.ID, "recon", models.FindingRecord{
		Severity:    models.SeverityHigh,
		Category:    "auth",
		Title:       "Admin panel reachable without login",
		Description: "GET /admin returned 200 without a session cookie.",
		Remediation: "Require authentication on /admin.",
	})
	require.NoError(t, err)

	_, err = svc.logs.Append(ctx, models.AgentLogEntry{
		AssessmentID: a.ID,
		Agent:        "recon",
		Step:         1,
		Action:       "http_get",
		Target:       "/admin",
		Reasoning:    "Probe for exposed admin surfaces.",
	})
	require.NoError(t, err)

	require.NoError(t, svc.assessments.Fail(ctx, a.ID, "scan_error", "budget exhausted"))

	rerun, err := svc.assessments.Rerun(ctx, a.ID, models.RerunAssessmentInput{
		Agents: []string{"recon", "injection"},
	})
	require.NoError(t, err)
	assert.Equal(t, assessment.StatusQueued, rerun.Status)
	assert.Equal(t, []string{"recon", "injection"}, rerun.Agents)
	assert.Nil(t, rerun.ErrorType)
	assert.Nil(t, rerun.CompletedAt)
	assert.Equal(t, models.ZeroCounts(), rerun.FindingCounts)

	remaining, total, err := svc.findings.List(ctx, a.ID, models.FindingListParams{})
	require.NoError(t, err)
	assert.Empty(t, remaining)
	assert.Zero(t, total)
}

func TestFindingSeveritySortAndCounts(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()

	a, _, err := svc.assessments.Create(ctx, lightweightInput())
	require.NoError(t, err)

	for _, severity := range []string{models.SeverityLow, models.SeverityCritical, models.SeverityMedium, models.SeverityCritical} {
		_, err := svc.findings.Save(ctx, a.ID, "static", models.FindingRecord{
			Severity:    severity,
			Category:    "secrets",
			Title:       "Hardcoded credential",
			Description: "An API key is committed to the repository.",
			Remediation: "Rotate the key and load it from the environment.",
		})
		require.NoError(t, err)
	}

	items, total, err := svc.findings.List(ctx, a.ID, models.FindingListParams{Sort: "severity"})
	require.NoError(t, err)
	assert.Equal(t, 4, total)
	require.Len(t, items, 4)
	var order []string
	for _, f := range items {
		order = append(order, string(f.Severity))
	}
	assert.Equal(t, []string{"critical", "critical", "medium", "low"}, order)

	counts, err := svc.findings.Counts(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, counts.Critical)
	assert.Equal(t, 1, counts.Medium)
	assert.Equal(t, 1, counts.Low)
	assert.Equal(t, 4, counts.Total)
}

func TestAgentLogsRobustOnly(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()

	light, _, err := svc.assessments.Create(ctx, lightweightInput())
	require.NoError(t, err)
	_, _, err = svc.logs.List(ctx, light.ID, models.AgentLogListParams{})
	assertServiceError(t, err, "LOGS_NOT_AVAILABLE")

	robust, _, err := svc.assessments.Create(ctx, models.CreateAssessmentInput{
		Mode:      models.ModeRobust,
		TargetURL: "http://localhost:3000",
	})
	require.NoError(t, err)

	for _, entry := range []models.AgentLogEntry{
		{AssessmentID: robust.ID, Agent: "recon", Step: 2, Action: "http_get", Target: "/robots.txt"},
		{AssessmentID: robust.ID, Agent: "auth", Step: 1, Action: "http_post", Target: "/login"},
		{AssessmentID: robust.ID, Agent: "recon", Step: 1, Action: "http_get", Target: "/"},
	} {
		_, err := svc.logs.Append(ctx, entry)
		require.NoError(t, err)
	}

	items, total, err := svc.logs.List(ctx, robust.ID, models.AgentLogListParams{})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, items, 3)
	assert.Equal(t, "auth", items[0].Agent)
	assert.Equal(t, "recon", items[1].Agent)
	assert.Equal(t, 1, items[1].Step)
	assert.Equal(t, 2, items[2].Step)

	filtered, total, err := svc.logs.List(ctx, robust.ID, models.AgentLogListParams{Agent: "recon"})
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	assert.Len(t, filtered, 2)
}

func TestDeleteByAgentScopedToOneAgent(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()

	a, _, err := svc.assessments.Create(ctx, models.CreateAssessmentInput{
		Mode:      models.ModeRobust,
		TargetURL: "http://localhost:3000",
	})
	require.NoError(t, err)

	for _, agent := range []string{"recon", "auth"} {
		_, err := svc.findings.Save(ctx, a.ID, agent, models.FindingRecord{
			Severity:    models.SeverityMedium,
			Category:    "config",
			Title:       "Verbose error pages",
			Description: "Stack traces are returned to clients.",
			Remediation: "Disable debug error pages.",
		})
		require.NoError(t, err)
		_, err = svc.logs.Append(ctx, models.AgentLogEntry{
			AssessmentID: a.ID, Agent: agent, Step: 1, Action: "http_get", Target: "/",
		})
		require.NoError(t, err)
	}

	deleted, err := svc.findings.DeleteByAgent(ctx, a.ID, "recon")
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)
	deleted, err = svc.logs.DeleteByAgent(ctx, a.ID, "recon")
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)

	remaining, total, err := svc.findings.List(ctx, a.ID, models.FindingListParams{})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, remaining, 1)
	require.NotNil(t, remaining[0].Agent)
	assert.Equal(t, "auth", *remaining[0].Agent)

	logs, total, err := svc.logs.List(ctx, a.ID, models.AgentLogListParams{})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, logs, 1)
	assert.Equal(t, "auth", logs[0].Agent)
}

func TestPurgeOlderThan(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()

	old, _, err := svc.assessments.Create(ctx, lightweightInput())
	require.NoError(t, err)
	require.NoError(t, svc.assessments.Complete(ctx, old.ID, models.ZeroCounts()))
	_, err = svc.findings.Save(ctx, old.ID, "static", models.FindingRecord{
		Severity:    models.SeverityInfo,
		Category:    "config",
		Title:       "Debug mode enabled",
		Description: "DEBUG=true in committed configuration.",
		Remediation: "Disable debug mode outside development.",
	})
	require.NoError(t, err)

	// Age the record past the retention window.
	err = svc.client.Assessment.UpdateOneID(old.ID).
		SetUpdatedAt(time.Now().Add(-72 * time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	fresh, _, err := svc.assessments.Create(ctx, lightweightInput())
	require.NoError(t, err)
	require.NoError(t, svc.assessments.Complete(ctx, fresh.ID, models.ZeroCounts()))

	count, err := svc.assessments.PurgeOlderThan(ctx, 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	_, err = svc.assessments.Get(ctx, old.ID)
	assertServiceError(t, err, "ASSESSMENT_NOT_FOUND")
	_, err = svc.assessments.Get(ctx, fresh.ID)
	require.NoError(t, err)

	orphaned, total, err := svc.findings.List(ctx, old.ID, models.FindingListParams{})
	require.NoError(t, err)
	assert.Empty(t, orphaned)
	assert.Zero(t, total)
}

func TestRequeueStuck(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()

	a, _, err := svc.assessments.Create(ctx, lightweightInput())
	require.NoError(t, err)

	claimed, err := svc.assessments.ClaimNextQueued(ctx)
	require.NoError(t, err)
	require.NotNil(t, claimed)

	count, err := svc.assessments.RequeueStuck(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	got, err := svc.assessments.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, assessment.StatusQueued, got.Status)
}

func TestTunnelPurgeStale(t *testing.T) {
	svc := setupServices(t)
	ctx := context.Background()

	stale, err := svc.tunnels.Create(ctx, 3000)
	require.NoError(t, err)
	require.NoError(t, svc.tunnels.MarkDisconnected(ctx, stale.ID))
	err = svc.client.TunnelSession.UpdateOneID(stale.ID).
		SetLastHeartbeat(time.Now().Add(-48 * time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	connected, err := svc.tunnels.Create(ctx, 4000)
	require.NoError(t, err)

	count, err := svc.tunnels.PurgeStale(ctx, 24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	_, err = svc.tunnels.Get(ctx, stale.ID)
	assertServiceError(t, err, "TUNNEL_SESSION_NOT_FOUND")

	sessions, err := svc.tunnels.List(ctx, string(tunnelsession.StatusConnected))
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, connected.ID, sessions[0].ID)
}
