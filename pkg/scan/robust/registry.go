package robust

// AgentInfo describes one agent in the public catalog.
type AgentInfo struct {
	Name        string   `json:"name"`
	DisplayName string   `json:"display_name"`
	Description string   `json:"description"`
	Categories  []string `json:"categories"`
	Mode        string   `json:"mode"`
}

// Catalog lists every agent the service knows, including the lightweight
// static analyzer, for the /agents endpoints.
var Catalog = []AgentInfo{
	{
		Name:        "recon",
		DisplayName: "Reconnaissance Agent",
		Description: "Maps routes, discovers hidden endpoints, admin panels, debug pages, directory listings, exposed files.",
		Categories:  []string{"exposed_endpoints", "directory_listing", "debug_mode", "information_disclosure"},
		Mode:        "robust",
	},
	{
		Name:        "auth",
		DisplayName: "Authentication Agent",
		Description: "Tests for missing auth, default credentials, broken access control (IDOR), session issues, privilege escalation.",
		Categories:  []string{"missing_auth", "broken_access_control", "idor", "session_manipulation"},
		Mode:        "robust",
	},
	{
		Name:        "injection",
		DisplayName: "Injection Agent",
		Description: "Probes for SQL injection, XSS, command injection, template injection with real payloads.",
		Categories:  []string{"sql_injection", "xss", "command_injection", "template_injection"},
		Mode:        "robust",
	},
	{
		Name:        "config",
		DisplayName: "Configuration Agent",
		Description: "Checks security headers, CORS, exposed stack traces, debug mode, server info disclosure.",
		Categories:  []string{"cors_misconfiguration", "missing_headers", "exposed_stacktrace", "insecure_tls"},
		Mode:        "robust",
	},
	{
		Name:        "static",
		DisplayName: "Static Analyzer",
		Description: "Analyzes source code for hardcoded secrets, vulnerable dependencies, insecure patterns, dangerous defaults.",
		Categories:  []string{"hardcoded_secret", "vulnerable_dependency", "insecure_pattern", "dangerous_default"},
		Mode:        "lightweight",
	},
}

// LookupAgent finds a catalog entry by name.
func LookupAgent(name string) (AgentInfo, bool) {
	for _, a := range Catalog {
		if a.Name == name {
			return a, true
		}
	}
	return AgentInfo{}, false
}

// systemPrompts maps robust agent names to their missions.
var systemPrompts = map[string]string{
	"recon":     reconPrompt,
	"auth":      authPrompt,
	"injection": injectionPrompt,
	"config":    configPrompt,
}

// SystemPrompt returns the mission prompt for a robust agent name.
func SystemPrompt(name string) (string, bool) {
	prompt, ok := systemPrompts[name]
	return prompt, ok
}
