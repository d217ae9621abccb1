package static

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
	"github.com/vibecheck/vibecheck/pkg/models"
)

// cannedLLM returns a fixed completion for any prompt.
type cannedLLM struct {
	completion string
	prompt     string
}

func (c *cannedLLM) Call(_ context.Context, prompt string, _ ...llms.CallOption) (string, error) {
	c.prompt = prompt
	return c.completion, nil
}

func (c *cannedLLM) GenerateContent(_ context.Context, _ []llms.MessageContent, _ ...llms.CallOption) (*llms.ContentResponse, error) {
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: c.completion}},
	}, nil
}

func TestContextualScanParsesFindings(t *testing.T) {
	llm := &cannedLLM{completion: "```json\n" + `[
		{
			"severity": "high",
			"category": "broken_access_control",
			"title": "Admin route lacks auth check",
			"description": "The /admin route handler never verifies the session role.",
			"location": {"file": "routes/admin.js", "line": 12},
			"remediation": "Add role-checking middleware to the admin router."
		},
		{
			"severity": "ultra",
			"category": "bad",
			"title": "invalid severity dropped",
			"description": "x",
			"remediation": "y"
		},
		{
			"severity": "low",
			"category": "incomplete"
		}
	]` + "\n```"}
	analyzer := &ContextualAnalyzer{llm: llm}

	files := []models.SourceFile{{Path: "routes/admin.js", Content: "router.get('/admin', handler)"}}
	findings, err := analyzer.Scan(context.Background(), files, models.ProjectInfo{Language: "javascript", Framework: "express"})
	require.NoError(t, err)
	require.Len(t, findings, 1, "invalid and incomplete entries are dropped")

	f := findings[0]
	assert.Equal(t, "high", f.Severity)
	assert.Equal(t, "broken_access_control", f.Category)
	require.NotNil(t, f.Location)
	assert.Equal(t, "file", f.Location.Type)
	assert.Equal(t, "routes/admin.js", f.Location.File)
	assert.Equal(t, 12, f.Location.Line)

	assert.Contains(t, llm.prompt, "javascript/express codebase")
	assert.Contains(t, llm.prompt, "### routes/admin.js")
}

func TestContextualScanBadJSON(t *testing.T) {
	analyzer := &ContextualAnalyzer{llm: &cannedLLM{completion: "sorry, I cannot"}}
	files := []models.SourceFile{{Path: "a.js", Content: "x"}}
	findings, err := analyzer.Scan(context.Background(), files, models.ProjectInfo{})
	assert.Error(t, err)
	assert.Empty(t, findings)
}

func TestContextualScanEmptyArray(t *testing.T) {
	analyzer := &ContextualAnalyzer{llm: &cannedLLM{completion: "[]"}}
	files := []models.SourceFile{{Path: "a.js", Content: "x"}}
	findings, err := analyzer.Scan(context.Background(), files, models.ProjectInfo{})
	require.NoError(t, err)
	assert.Empty(t, findings)
}

func TestNewContextualAnalyzerNoKey(t *testing.T) {
	analyzer, err := NewContextualAnalyzer("", "gpt-4.1-mini")
	require.NoError(t, err)
	assert.Nil(t, analyzer)
}

func TestPackFilesPriorityAndBudget(t *testing.T) {
	files := []models.SourceFile{
		{Path: "README.md", Content: "readme"},
		{Path: "src/routes/auth.js", Content: "auth code"},
		{Path: "big.js", Content: strings.Repeat("x", contextualMaxChars)},
	}
	packed := packFiles(files)
	authIdx := strings.Index(packed, "### src/routes/auth.js")
	readmeIdx := strings.Index(packed, "### README.md")
	assert.GreaterOrEqual(t, authIdx, 0)
	assert.Greater(t, readmeIdx, authIdx, "priority files come first")
	assert.NotContains(t, packed, "### big.js", "oversize file never splits, it is skipped")
}

func TestStripCodeFence(t *testing.T) {
	assert.Equal(t, "[]", stripCodeFence("```json\n[]\n```"))
	assert.Equal(t, "[]", stripCodeFence("```\n[]\n```"))
	assert.Equal(t, `[{"a":1}]`, stripCodeFence(`[{"a":1}]`))
}
