package probe

import (
	"context"
	"fmt"
	"strings"
)

// Doer issues one probe. Satisfied by *Prober and by the tunnel-backed
// prober.
type Doer interface {
	Do(ctx context.Context, targetURL, method, path string, headers map[string]string, body string) (*Result, *ErrorResult)
}

// expectedSecurityHeaders is the baseline every response should carry.
var expectedSecurityHeaders = []string{
	"x-content-type-options",
	"x-frame-options",
	"strict-transport-security",
	"content-security-policy",
	"referrer-policy",
	"permissions-policy",
}

// serverSoftwareNames flag a Server header that discloses the stack.
var serverSoftwareNames = []string{
	"apache", "nginx", "express", "flask", "werkzeug", "gunicorn", "php",
}

// HeaderReport classifies the security posture of one path's response
// headers.
type HeaderReport struct {
	Headers map[string]string
	Missing []string
	Issues  []string
}

// ToolResponse renders the report in the shape handed back to the LLM.
func (r *HeaderReport) ToolResponse() map[string]any {
	headers := make(map[string]any, len(r.Headers))
	for k, v := range r.Headers {
		headers[k] = v
	}
	missing := make([]any, len(r.Missing))
	for i, m := range r.Missing {
		missing[i] = m
	}
	issues := make([]any, len(r.Issues))
	for i, issue := range r.Issues {
		issues[i] = issue
	}
	return map[string]any{
		"headers":                  headers,
		"missing_security_headers": missing,
		"issues":                   issues,
	}
}

// CheckSecurityHeaders HEAD-probes path through d and classifies missing or
// weak security headers. Probe failures propagate as the ErrorResult.
func CheckSecurityHeaders(ctx context.Context, d Doer, targetURL, path string) (*HeaderReport, *ErrorResult) {
	if path == "" {
		path = "/"
	}
	result, perr := d.Do(ctx, targetURL, "HEAD", path, nil, "")
	if perr != nil {
		return nil, perr
	}
	return ClassifyHeaders(result.Headers), nil
}

// ClassifyHeaders builds the report for an already-captured header set.
func ClassifyHeaders(headers map[string]string) *HeaderReport {
	lower := make(map[string]string, len(headers))
	for k, v := range headers {
		lower[strings.ToLower(k)] = v
	}

	var missing []string
	for _, h := range expectedSecurityHeaders {
		if _, ok := lower[h]; !ok {
			missing = append(missing, h)
		}
	}

	var issues []string
	if lower["access-control-allow-origin"] == "*" {
		issues = append(issues, "CORS allows all origins (wildcard *)")
	}
	if powered := lower["x-powered-by"]; powered != "" {
		issues = append(issues, fmt.Sprintf("X-Powered-By exposes technology: %s", powered))
	}
	if server := lower["server"]; server != "" {
		for _, name := range serverSoftwareNames {
			if strings.Contains(strings.ToLower(server), name) {
				issues = append(issues, fmt.Sprintf("Server header discloses software: %s", server))
				break
			}
		}
	}
	if len(missing) > 0 {
		issues = append(issues, fmt.Sprintf("Missing security headers: %s", strings.Join(missing, ", ")))
	}

	return &HeaderReport{
		Headers: headers,
		Missing: missing,
		Issues:  issues,
	}
}
