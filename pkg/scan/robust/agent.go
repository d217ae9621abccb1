package robust

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/vibecheck/vibecheck/pkg/llm"
	"github.com/vibecheck/vibecheck/pkg/models"
	"github.com/vibecheck/vibecheck/pkg/probe"
)

// responsePreviewLimit bounds persisted log previews.
const responsePreviewLimit = 500

// agentTemperature keeps probing deterministic-ish across runs.
const agentTemperature = 0.2

// Store persists findings and step logs for an agent run. Implemented over
// the service layer; stubbed in tests.
type Store interface {
	SaveFinding(ctx context.Context, assessmentID, agent string, rec models.FindingRecord) (string, error)
	AppendLog(ctx context.Context, entry models.AgentLogEntry) error
}

// Agent runs one budgeted function-calling loop against the target.
type Agent struct {
	name         string
	systemPrompt string
	assessmentID string
	targetURL    string
	depth        string
	budget       Budget

	llm      llm.Client
	prober   Doer
	store    Store
	coverage *Coverage

	stepCount    int
	httpCount    int
	pathAttempts map[string]int
}

// NewAgent builds an agent by registry name. Unknown names fail.
func NewAgent(name, assessmentID, targetURL, depth string, client llm.Client, prober Doer, store Store, coverage *Coverage) (*Agent, error) {
	prompt, ok := SystemPrompt(name)
	if !ok {
		return nil, fmt.Errorf("unknown agent %q", name)
	}
	if coverage == nil {
		coverage = &Coverage{}
	}
	return &Agent{
		name:         name,
		systemPrompt: prompt,
		assessmentID: assessmentID,
		targetURL:    strings.TrimRight(targetURL, "/"),
		depth:        depth,
		budget:       BudgetFor(depth),
		llm:          client,
		prober:       prober,
		store:        store,
		coverage:     coverage,
		pathAttempts: make(map[string]int),
	}, nil
}

// Run executes the loop until the model stops calling tools or the step
// budget is exhausted.
func (a *Agent) Run(ctx context.Context) error {
	turns := []llm.Turn{{Role: llm.RoleUser, Text: a.initialMessage()}}

	for a.stepCount < a.budget.MaxSteps {
		completion, err := a.llm.Complete(ctx, &llm.Request{
			System:      a.systemPrompt,
			Turns:       turns,
			Tools:       agentTools,
			Temperature: agentTemperature,
		})
		if err != nil {
			return fmt.Errorf("[%s] llm call failed: %w", a.name, err)
		}
		if completion == nil || len(completion.Calls) == 0 {
			break
		}

		turns = append(turns, llm.Turn{
			Role:  llm.RoleModel,
			Text:  completion.Text,
			Calls: completion.Calls,
		})

		results := make([]llm.ToolResult, 0, len(completion.Calls))
		for _, call := range completion.Calls {
			toolResult, err := a.executeTool(ctx, call.Name, call.Args)
			if err != nil {
				return err
			}
			results = append(results, llm.ToolResult{
				Name:     call.Name,
				Response: map[string]any{"result": toolResult},
			})
		}
		turns = append(turns, llm.Turn{Role: llm.RoleUser, Results: results})
	}
	return nil
}

func (a *Agent) initialMessage() string {
	seeds := a.coverage.SeedPaths
	if len(seeds) > 60 {
		seeds = seeds[:60]
	}
	reachable := a.coverage.ReachablePaths
	if len(reachable) > 60 {
		reachable = reachable[:60]
	}
	samples := a.coverage.RequestSamples
	if len(samples) > 20 {
		samples = samples[:20]
	}
	seedsJSON, _ := json.Marshal(seeds)
	reachableJSON, _ := json.Marshal(reachable)
	samplesJSON, _ := json.Marshal(samples)

	return fmt.Sprintf(
		"Target URL: %s\n"+
			"Max steps: %d\n"+
			"Max HTTP requests: %d\n"+
			"Depth: %s\n\n"+
			"Discovered seed paths: %s\n"+
			"Reachable paths (status): %s\n"+
			"Interesting request samples: %s\n\n"+
			"Begin your security assessment. Use your tools to probe the target. "+
			"Call report_finding for each confirmed vulnerability with evidence.\n"+
			"Prioritize breadth first: cover distinct endpoints and input points before deep repetition.",
		a.targetURL, a.budget.MaxSteps, a.budget.MaxHTTPRequests, a.depth,
		seedsJSON, reachableJSON, samplesJSON,
	)
}

func (a *Agent) executeTool(ctx context.Context, name string, args map[string]any) (map[string]any, error) {
	switch name {
	case "http_request":
		return a.execHTTPRequest(ctx, args)
	case "check_headers":
		return a.execCheckHeaders(ctx, args)
	case "report_finding":
		return a.execReportFinding(ctx, args)
	default:
		return map[string]any{"error": fmt.Sprintf("Unknown tool: %s", name)}, nil
	}
}

func (a *Agent) execHTTPRequest(ctx context.Context, args map[string]any) (map[string]any, error) {
	method := strings.ToUpper(stringArg(args, "method", "GET"))
	path := stringArg(args, "path", "/")
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	headers := headerArg(args, "headers")
	body := stringArg(args, "body", "")

	if a.httpCount >= a.budget.MaxHTTPRequests {
		return map[string]any{
			"error": "request_budget_exceeded",
			"message": fmt.Sprintf(
				"Request budget exceeded for this agent (%d). Prioritize reporting findings.",
				a.budget.MaxHTTPRequests,
			),
		}, nil
	}

	pathKey := method + " " + path
	if a.pathAttempts[pathKey] >= a.budget.PerPathLimit {
		return map[string]any{
			"error": "path_attempt_limit_reached",
			"message": fmt.Sprintf(
				"Path attempt limit reached for %s. Try a different endpoint or attack path.",
				pathKey,
			),
		}, nil
	}
	a.pathAttempts[pathKey]++
	a.httpCount++

	result, perr := a.prober.Do(ctx, a.targetURL, method, path, headers, body)

	entry := models.AgentLogEntry{
		AssessmentID: a.assessmentID,
		Agent:        a.name,
		Action:       method + " " + path,
		Target:       path,
		Reasoning:    fmt.Sprintf("Probing %s with %s", path, method),
	}
	if body != "" {
		entry.Payload = &body
	}

	var response map[string]any
	if perr != nil {
		response = perr.ToolResponse()
		preview := truncate(perr.Message, responsePreviewLimit)
		entry.ResponsePreview = &preview
	} else {
		response = result.ToolResponse()
		entry.ResponseCode = &result.StatusCode
		preview := truncate(result.BodyPreview, responsePreviewLimit)
		entry.ResponsePreview = &preview
	}
	if err := a.logStep(ctx, entry); err != nil {
		return nil, err
	}
	return response, nil
}

func (a *Agent) execCheckHeaders(ctx context.Context, args map[string]any) (map[string]any, error) {
	path := stringArg(args, "path", "/")

	var response map[string]any
	var preview string
	report, perr := probe.CheckSecurityHeaders(ctx, a.prober, a.targetURL, path)
	if perr != nil {
		response = perr.ToolResponse()
		preview = truncate(perr.Message, responsePreviewLimit)
	} else {
		response = report.ToolResponse()
		issuesJSON, _ := json.Marshal(report.Issues)
		preview = truncate(string(issuesJSON), responsePreviewLimit)
	}

	err := a.logStep(ctx, models.AgentLogEntry{
		AssessmentID:    a.assessmentID,
		Agent:           a.name,
		Action:          fmt.Sprintf("Check security headers on %s", path),
		Target:          path,
		ResponsePreview: &preview,
		Reasoning:       "Analyzing security headers",
	})
	if err != nil {
		return nil, err
	}
	return response, nil
}

func (a *Agent) execReportFinding(ctx context.Context, args map[string]any) (map[string]any, error) {
	severity := stringArg(args, "severity", "info")
	category := stringArg(args, "category", "unknown")
	title := stringArg(args, "title", "Untitled finding")
	description := stringArg(args, "description", "")
	remediation := stringArg(args, "remediation", "")

	evidence, _ := args["evidence"].(map[string]any)

	rec := models.FindingRecord{
		Severity:    severity,
		Category:    category,
		Title:       title,
		Description: description,
		Evidence:    evidence,
		Remediation: remediation,
	}
	var evidenceURL string
	if evidence != nil {
		if url, ok := evidence["url"].(string); ok {
			evidenceURL = url
			rec.Location = &models.Location{Type: "endpoint", URL: url}
		}
	}

	findingID, err := a.store.SaveFinding(ctx, a.assessmentID, a.name, rec)
	if err != nil {
		return nil, fmt.Errorf("[%s] failed to save finding: %w", a.name, err)
	}

	preview := truncate(description, responsePreviewLimit)
	err = a.logStep(ctx, models.AgentLogEntry{
		AssessmentID:    a.assessmentID,
		Agent:           a.name,
		Action:          fmt.Sprintf("Reported %s finding: %s", severity, title),
		Target:          evidenceURL,
		ResponsePreview: &preview,
		Reasoning:       fmt.Sprintf("Confirmed vulnerability: %s", category),
		FindingID:       &findingID,
	})
	if err != nil {
		return nil, err
	}
	return map[string]any{"status": "finding_reported", "finding_id": findingID}, nil
}

// logStep assigns the next step index and persists the entry. Every tool
// invocation lands here, so step counts and the step budget stay in lockstep.
func (a *Agent) logStep(ctx context.Context, entry models.AgentLogEntry) error {
	a.stepCount++
	entry.Step = a.stepCount
	if err := a.store.AppendLog(ctx, entry); err != nil {
		return fmt.Errorf("[%s] failed to append log: %w", a.name, err)
	}
	return nil
}

func stringArg(args map[string]any, key, fallback string) string {
	if v, ok := args[key].(string); ok && v != "" {
		return v
	}
	return fallback
}

func headerArg(args map[string]any, key string) map[string]string {
	raw, ok := args[key].(map[string]any)
	if !ok {
		return nil
	}
	headers := make(map[string]string, len(raw))
	for k, v := range raw {
		if s, ok := v.(string); ok {
			headers[k] = s
		}
	}
	return headers
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit]
}
