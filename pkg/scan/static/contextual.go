package static

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
	"github.com/vibecheck/vibecheck/pkg/models"
)

// contextualMaxChars caps how much source is packed into the review prompt.
const contextualMaxChars = 50_000

// priorityKeywords rank files for inclusion; files whose path mentions more
// of these go in first.
var priorityKeywords = []string{
	"route", "api", "auth", "login", "middleware",
	"db", "database", "config", "server", "app",
}

var validSeverities = map[string]bool{
	"critical": true, "high": true, "medium": true, "low": true, "info": true,
}

// ContextualAnalyzer runs the LLM code-review pass over the project snapshot.
type ContextualAnalyzer struct {
	llm llms.Model
}

// NewContextualAnalyzer builds the analyzer, or returns nil when no API key
// is configured so the pipeline can skip the pass.
func NewContextualAnalyzer(apiKey, model string) (*ContextualAnalyzer, error) {
	if apiKey == "" {
		return nil, nil
	}
	llm, err := openai.New(
		openai.WithToken(apiKey),
		openai.WithModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create openai client: %w", err)
	}
	return &ContextualAnalyzer{llm: llm}, nil
}

// contextualFinding is the shape the model is asked to emit.
type contextualFinding struct {
	Severity    string `json:"severity"`
	Category    string `json:"category"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    *struct {
		File string `json:"file"`
		Line int    `json:"line"`
	} `json:"location"`
	Remediation string `json:"remediation"`
}

// Scan packs the highest-priority files into a review prompt and parses the
// model's JSON findings. Malformed entries are dropped, not errored.
func (c *ContextualAnalyzer) Scan(ctx context.Context, files []models.SourceFile, info models.ProjectInfo) ([]models.FindingRecord, error) {
	codebase := packFiles(files)
	if codebase == "" {
		return nil, nil
	}

	language := info.Language
	if language == "" {
		language = "unknown"
	}
	framework := info.Framework
	if framework == "" {
		framework = "unknown"
	}

	completion, err := c.llm.Call(ctx, reviewPrompt(language, framework, codebase),
		llms.WithTemperature(0.2))
	if err != nil {
		return nil, fmt.Errorf("contextual analysis call failed: %w", err)
	}

	text := stripCodeFence(strings.TrimSpace(completion))

	var raw []contextualFinding
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, fmt.Errorf("contextual analysis returned invalid JSON: %w", err)
	}

	var findings []models.FindingRecord
	for _, item := range raw {
		if item.Severity == "" || item.Category == "" || item.Title == "" ||
			item.Description == "" || item.Remediation == "" {
			continue
		}
		if !validSeverities[item.Severity] {
			continue
		}
		rec := models.FindingRecord{
			Severity:    item.Severity,
			Category:    item.Category,
			Title:       item.Title,
			Description: item.Description,
			Remediation: item.Remediation,
		}
		if item.Location != nil && item.Location.File != "" {
			rec.Location = &models.Location{
				Type: "file",
				File: item.Location.File,
				Line: item.Location.Line,
			}
		}
		findings = append(findings, rec)
	}
	return findings, nil
}

func packFiles(files []models.SourceFile) string {
	ranked := make([]models.SourceFile, len(files))
	copy(ranked, files)
	sort.SliceStable(ranked, func(i, j int) bool {
		return priorityScore(ranked[i].Path) > priorityScore(ranked[j].Path)
	})

	var b strings.Builder
	for _, f := range ranked {
		entry := fmt.Sprintf("### %s\n```\n%s\n```\n", f.Path, f.Content)
		if b.Len()+len(entry) > contextualMaxChars {
			break
		}
		b.WriteString(entry)
		b.WriteString("\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func priorityScore(path string) int {
	lower := strings.ToLower(path)
	score := 0
	for _, kw := range priorityKeywords {
		if strings.Contains(lower, kw) {
			score++
		}
	}
	return score
}

func reviewPrompt(language, framework, codebase string) string {
	return fmt.Sprintf(`You are a senior application security engineer performing a code review. Analyze this %s/%s codebase for security vulnerabilities that automated regex scanning would miss.

Focus on:
1. Business logic flaws - auth bypass through logic errors, race conditions, TOCTOU bugs
2. Authentication/authorization design - missing auth checks on sensitive routes, broken access control, privilege escalation paths
3. Data exposure - API endpoints returning sensitive fields (passwords, tokens, internal IDs), verbose error messages leaking internals
4. Framework-specific issues - misuse of %s security features, missing CSRF protection, insecure session config
5. Cryptographic issues - weak hashing (MD5/SHA1 for passwords), predictable tokens, missing encryption
6. Input handling - missing validation on critical fields, type confusion, mass assignment

Do NOT report:
- Issues that a regex scanner would catch (obvious SQL injection, hardcoded secrets with clear patterns)
- Generic best-practice suggestions without specific code evidence
- Issues in test files

Respond ONLY with a JSON array. Each finding must have:
- "severity": "critical" | "high" | "medium" | "low" | "info"
- "category": short snake_case category
- "title": one-line summary
- "description": 2-3 sentences explaining the vulnerability and its impact
- "location": {"file": "path/to/file", "line": approximate_line_number} (if identifiable)
- "remediation": specific actionable fix

If you find no issues, return an empty array: []

Codebase:
%s`, language, framework, framework, codebase)
}

func stripCodeFence(text string) string {
	if !strings.HasPrefix(text, "```") {
		return text
	}
	if _, rest, ok := strings.Cut(text, "\n"); ok {
		text = rest
	}
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}
