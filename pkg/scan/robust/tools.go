package robust

import "github.com/vibecheck/vibecheck/pkg/llm"

// agentTools are the three function declarations advertised to every agent.
var agentTools = []llm.ToolDefinition{
	{
		Name: "http_request",
		Description: "Make an HTTP request to the target application. " +
			"Use this to probe endpoints, submit forms, test payloads, and observe responses.",
		Properties: map[string]llm.Property{
			"method": {
				Type:        "string",
				Enum:        []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
				Description: "HTTP method",
			},
			"path": {
				Type:        "string",
				Description: "Path relative to target, e.g. /api/users or /admin",
			},
			"headers": {
				Type:        "object",
				Description: "Optional request headers as key-value pairs",
			},
			"body": {
				Type:        "string",
				Description: "Optional request body (for POST/PUT/PATCH)",
			},
		},
		Required: []string{"method", "path"},
	},
	{
		Name: "check_headers",
		Description: "Check security headers on a specific path. Returns which security headers " +
			"are present, missing, and any issues (CORS, server disclosure, etc.).",
		Properties: map[string]llm.Property{
			"path": {
				Type:        "string",
				Description: "Path to check, defaults to /",
			},
		},
	},
	{
		Name: "report_finding",
		Description: "Report a confirmed or highly likely security vulnerability. " +
			"Only call this when you have evidence from probing, not for theoretical issues.",
		Properties: map[string]llm.Property{
			"severity": {
				Type: "string",
				Enum: []string{"critical", "high", "medium", "low", "info"},
			},
			"category": {
				Type: "string",
				Description: "e.g. sql_injection, xss, missing_auth, idor, " +
					"cors_misconfiguration, exposed_endpoint, missing_headers, " +
					"information_disclosure, default_credentials, command_injection",
			},
			"title": {
				Type:        "string",
				Description: "Short one-line summary",
			},
			"description": {
				Type:        "string",
				Description: "2-3 sentences: vulnerability, what you tested, impact",
			},
			"evidence": {
				Type:        "object",
				Description: "Evidence: {payload, response_code, response_preview, url}",
			},
			"remediation": {
				Type:        "string",
				Description: "Specific actionable fix",
			},
		},
		Required: []string{"severity", "category", "title", "description", "remediation"},
	},
}
