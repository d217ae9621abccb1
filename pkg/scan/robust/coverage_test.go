package robust

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vibecheck/vibecheck/pkg/probe"
)

// stubDoer serves canned responses per path; unknown paths 404.
type stubDoer struct {
	bodies map[string]string
	calls  []string
}

func (d *stubDoer) Do(_ context.Context, _, method, path string, _ map[string]string, _ string) (*probe.Result, *probe.ErrorResult) {
	d.calls = append(d.calls, method+" "+path)
	body, ok := d.bodies[path]
	if !ok {
		return &probe.Result{StatusCode: 404, URL: path}, nil
	}
	return &probe.Result{StatusCode: 200, BodyPreview: body, URL: path}, nil
}

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
	}{
		{"/a/", "/a"},
		{"/", "/"},
		{"/a?x=1", "/a?x=1"},
		{"/a/b/", "/a/b"},
		{"relative", ""},
		{"", ""},
		{"/api/users?page=2&sort=name", "/api/users?page=2&sort=name"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, NormalizePath(tt.raw), "raw %q", tt.raw)
	}
}

func TestExtractPaths(t *testing.T) {
	body := `<a href='/admin'>admin</a>
<script>fetch('/api/users').then(r => r.json())</script>
<img src="/static/logo.png">
<link href="/assets/app.css">`

	paths := extractPaths(body)
	assert.Contains(t, paths, "/admin")
	assert.Contains(t, paths, "/api/users")
	assert.Contains(t, paths, "/assets/app.css")
	assert.NotContains(t, paths, "/static/logo.png", "static assets are filtered")
}

func TestExtractPathsEmpty(t *testing.T) {
	assert.Empty(t, extractPaths(""))
	assert.Empty(t, extractPaths("no paths here"))
}

func TestBuildCoverageMinesResponses(t *testing.T) {
	doer := &stubDoer{bodies: map[string]string{
		"/": `fetch('/api/users') and <a href='/admin'>x</a>`,
	}}

	cov := BuildCoverage(context.Background(), doer, "http://target", "quick")

	assert.Contains(t, cov.SeedPaths, "/api/users")
	assert.Contains(t, cov.SeedPaths, "/admin")
	assert.LessOrEqual(t, cov.ProbedCount, 12)
}

func TestBuildCoverageRespectsRequestLimit(t *testing.T) {
	doer := &stubDoer{bodies: map[string]string{}}
	cov := BuildCoverage(context.Background(), doer, "http://target", "quick")
	assert.Equal(t, 12, cov.ProbedCount)
	assert.Len(t, doer.calls, 12)
}

func TestBuildCoverageReachableExcludes404(t *testing.T) {
	doer := &stubDoer{bodies: map[string]string{
		"/":      "home",
		"/admin": "admin panel",
	}}
	cov := BuildCoverage(context.Background(), doer, "http://target", "quick")

	var reachable []string
	for _, r := range cov.ReachablePaths {
		reachable = append(reachable, r.Path)
		require.NotEqual(t, 404, r.Status)
	}
	assert.Contains(t, reachable, "/")
	assert.Contains(t, reachable, "/admin")
	assert.NotContains(t, reachable, "/login")
}

func TestBuildCoverageCapturesRequestSamples(t *testing.T) {
	doer := &stubDoer{bodies: map[string]string{}}
	cov := BuildCoverage(context.Background(), doer, "http://target", "standard")
	// Seeds include /api/search?q=test and /search?q=test, but only probed
	// paths are sampled; with 24 probes over 33 seeds both come up.
	for _, s := range cov.RequestSamples {
		assert.Contains(t, s, "?")
	}
}

func TestBudgetsByDepth(t *testing.T) {
	assert.Equal(t, Budget{MaxSteps: 10, MaxHTTPRequests: 30, PerPathLimit: 2}, BudgetFor("quick"))
	assert.Equal(t, Budget{MaxSteps: 28, MaxHTTPRequests: 85, PerPathLimit: 3}, BudgetFor("standard"))
	assert.Equal(t, Budget{MaxSteps: 55, MaxHTTPRequests: 170, PerPathLimit: 4}, BudgetFor("deep"))
	assert.Equal(t, BudgetFor("standard"), BudgetFor("unknown"))

	assert.Equal(t, DiscoveryLimits{SeedPaths: 15, MaxRequests: 12, MaxDiscovered: 25}, DiscoveryFor("quick"))
	assert.Equal(t, DiscoveryLimits{SeedPaths: 60, MaxRequests: 40, MaxDiscovered: 90}, DiscoveryFor("deep"))
}
