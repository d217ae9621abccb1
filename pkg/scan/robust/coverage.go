package robust

import (
	"context"
	"net/url"
	"regexp"
	"sort"
	"strings"

	"github.com/vibecheck/vibecheck/pkg/probe"
)

// Doer issues one HTTP probe against the target. Satisfied by *probe.Prober
// and by the tunnel-backed prober.
type Doer = probe.Doer

// commonPaths seeds the coverage BFS, highest-value paths first. Depth
// controls how many are taken.
var commonPaths = []string{
	"/",
	"/api",
	"/api/v1",
	"/api/v2",
	"/admin",
	"/dashboard",
	"/login",
	"/register",
	"/signup",
	"/auth/login",
	"/docs",
	"/redoc",
	"/openapi.json",
	"/swagger",
	"/graphql",
	"/graphiql",
	"/health",
	"/status",
	"/metrics",
	"/info",
	"/config",
	"/robots.txt",
	"/sitemap.xml",
	"/.well-known/security.txt",
	"/debug",
	"/actuator",
	"/api/users",
	"/api/auth",
	"/api/admin",
	"/api/profile",
	"/api/me",
	"/api/search?q=test",
	"/search?q=test",
}

var (
	pathPattern  = regexp.MustCompile("['\"`](/[A-Za-z0-9._~:/?#\\[\\]@!$&()*+,;=%-]{1,240})['\"`]")
	fetchPattern = regexp.MustCompile("(?:fetch|axios\\.(?:get|post|put|patch|delete))\\(\\s*['\"`](/[^'\"`]{1,240})['\"`]")
)

// staticAssetSuffixes are skipped during mining to keep the request budget on
// application routes.
var staticAssetSuffixes = []string{
	".png", ".jpg", ".jpeg", ".gif", ".svg", ".ico", ".webp",
	".woff", ".woff2", ".ttf", ".eot", ".map",
}

// miningLimit caps how much of a response body is mined for references.
const miningLimit = 12000

// ReachablePath is one discovered path and the status it answered with.
type ReachablePath struct {
	Path   string `json:"path"`
	Status int    `json:"status"`
}

// Coverage is the discovery context handed to every agent.
type Coverage struct {
	ProbedCount    int
	SeedPaths      []string
	ReachablePaths []ReachablePath
	RequestSamples []string
}

// NormalizePath canonicalizes a mined path reference: strip scheme/host, keep
// the query string, drop a trailing slash except for root. Returns "" for
// references that are not absolute paths.
func NormalizePath(raw string) string {
	if raw == "" || !strings.HasPrefix(raw, "/") {
		return ""
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	path := parsed.Path
	if path == "" {
		path = "/"
	}
	if parsed.RawQuery != "" {
		path = path + "?" + parsed.RawQuery
	}
	if path != "/" && strings.HasSuffix(path, "/") {
		path = strings.TrimSuffix(path, "/")
	}
	return path
}

// extractPaths mines a response body for path references, normalized, deduped,
// sorted, and with static assets filtered out.
func extractPaths(body string) []string {
	if body == "" {
		return nil
	}
	if len(body) > miningLimit {
		body = body[:miningLimit]
	}

	candidates := make(map[string]bool)
	for _, m := range pathPattern.FindAllStringSubmatch(body, -1) {
		if norm := NormalizePath(m[1]); norm != "" {
			candidates[norm] = true
		}
	}
	for _, m := range fetchPattern.FindAllStringSubmatch(body, -1) {
		if norm := NormalizePath(m[1]); norm != "" {
			candidates[norm] = true
		}
	}

	var out []string
	for path := range candidates {
		if isStaticAsset(path) {
			continue
		}
		out = append(out, path)
	}
	sort.Strings(out)
	return out
}

func isStaticAsset(path string) bool {
	lower := strings.ToLower(path)
	for _, suffix := range staticAssetSuffixes {
		if strings.HasSuffix(lower, suffix) {
			return true
		}
	}
	return false
}

// BuildCoverage runs the bounded BFS discovery against the target.
func BuildCoverage(ctx context.Context, prober Doer, targetURL, depth string) *Coverage {
	limits := DiscoveryFor(depth)

	seen := make(map[string]bool)
	var queue []string
	var reachable []ReachablePath
	var samples []string

	enqueue := func(path string) {
		if seen[path] || len(seen) >= limits.MaxDiscovered {
			return
		}
		seen[path] = true
		queue = append(queue, path)
	}

	seedCount := limits.SeedPaths
	if seedCount > len(commonPaths) {
		seedCount = len(commonPaths)
	}
	for _, p := range commonPaths[:seedCount] {
		if norm := NormalizePath(p); norm != "" {
			enqueue(norm)
		}
	}

	probed := 0
	for len(queue) > 0 && probed < limits.MaxRequests {
		path := queue[0]
		queue = queue[1:]

		result, perr := prober.Do(ctx, targetURL, "GET", path, nil, "")
		probed++
		if perr != nil {
			continue
		}

		if result.StatusCode != 404 {
			reachable = append(reachable, ReachablePath{Path: path, Status: result.StatusCode})
		}
		for _, candidate := range extractPaths(result.BodyPreview) {
			enqueue(candidate)
		}
		if strings.Contains(path, "?") && len(samples) < 10 {
			samples = append(samples, path)
		}
	}

	seedPaths := make([]string, 0, len(seen))
	for path := range seen {
		seedPaths = append(seedPaths, path)
	}
	sort.Strings(seedPaths)

	if len(reachable) > 80 {
		reachable = reachable[:80]
	}
	return &Coverage{
		ProbedCount:    probed,
		SeedPaths:      seedPaths,
		ReachablePaths: reachable,
		RequestSamples: samples,
	}
}
