package static

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vibecheck/vibecheck/pkg/models"
)

func findByCategory(findings []models.FindingRecord, category string) *models.FindingRecord {
	for i := range findings {
		if findings[i].Category == category {
			return &findings[i]
		}
	}
	return nil
}

func TestScanPatternsEval(t *testing.T) {
	files := []models.SourceFile{
		{Path: "server.js", Content: "const x = 1\neval(req.body.code)\n"},
	}
	findings := ScanPatterns(files)
	f := findByCategory(findings, "code_injection")
	require.NotNil(t, f)
	assert.Equal(t, "critical", f.Severity)
	assert.Equal(t, "eval() usage in server.js", f.Title)
	assert.Equal(t, 2, f.Location.Line)
	assert.Equal(t, "eval(req.body.code)", f.Location.Snippet)
}

func TestScanPatternsOnePerPatternPerFile(t *testing.T) {
	files := []models.SourceFile{
		{Path: "bad.py", Content: "os.system(cmd)\nos.system(other)\nos.system(third)\n"},
	}
	findings := ScanPatterns(files)
	count := 0
	for _, f := range findings {
		if f.Category == "command_injection" {
			count++
			assert.Equal(t, 1, f.Location.Line, "first matching line wins")
		}
	}
	assert.Equal(t, 1, count)
}

func TestScanPatternsInnerHTMLLiteralExcluded(t *testing.T) {
	files := []models.SourceFile{
		{Path: "clear.js", Content: `el.innerHTML = ''` + "\n"},
		{Path: "dirty.js", Content: `el.innerHTML = userInput` + "\n"},
	}
	findings := ScanPatterns(files)
	require.Len(t, findings, 1)
	assert.Equal(t, "xss", findings[0].Category)
	assert.Equal(t, "dirty.js", findings[0].Location.File)
}

func TestScanPatternsYamlSafeLoaderExcluded(t *testing.T) {
	files := []models.SourceFile{
		{Path: "safe.py", Content: "data = yaml.load(raw, Loader=yaml.SafeLoader)\n"},
		{Path: "unsafe.py", Content: "data = yaml.load(raw)\n"},
	}
	findings := ScanPatterns(files)
	require.Len(t, findings, 1)
	assert.Equal(t, "insecure_deserialization", findings[0].Category)
	assert.Equal(t, "unsafe.py", findings[0].Location.File)
}

func TestScanPatternsValidatedInputExcluded(t *testing.T) {
	files := []models.SourceFile{
		{Path: "ok.js", Content: "const id = parseInt(req.params.id)\n"},
		{Path: "bad.js", Content: "const id = req.params.id\n"},
	}
	findings := ScanPatterns(files)
	require.Len(t, findings, 1)
	assert.Equal(t, "missing_validation", findings[0].Category)
	assert.Equal(t, "bad.js", findings[0].Location.File)
}

func TestScanPatternsSQLInjection(t *testing.T) {
	files := []models.SourceFile{
		{Path: "db.js", Content: "db.query(\"SELECT * FROM users WHERE id = \" + userId)\n"},
		{Path: "q.py", Content: `cursor.execute(f"SELECT * FROM users WHERE name = {name}")` + "\n"},
	}
	findings := ScanPatterns(files)
	assert.NotNil(t, findByCategory(findings, "sql_injection"))
	for _, f := range findings {
		if f.Category == "sql_injection" {
			assert.Equal(t, "critical", f.Severity)
		}
	}
}

func TestScanPatternsSkipsNonCodeFiles(t *testing.T) {
	files := []models.SourceFile{
		{Path: "README.md", Content: "eval(whatever)\n"},
		{Path: "notes.txt", Content: "os.system('ls')\n"},
	}
	assert.Empty(t, ScanPatterns(files))
}

func TestScanPatternsSnippetTruncated(t *testing.T) {
	long := "eval(" + strings.Repeat("a", 400) + ")"
	files := []models.SourceFile{{Path: "x.js", Content: long + "\n"}}
	findings := ScanPatterns(files)
	require.NotEmpty(t, findings)
	assert.LessOrEqual(t, len(findings[0].Location.Snippet), snippetLimit)
}
