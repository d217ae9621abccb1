package static

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/vibecheck/vibecheck/pkg/models"
)

// snippetLimit bounds the captured source line in finding locations.
const snippetLimit = 200

// codePattern is one insecure-code detector. exclude, when set, suppresses a
// match on the same line (stands in for lookaheads the original rules used).
type codePattern struct {
	re          *regexp.Regexp
	exclude     *regexp.Regexp
	severity    string
	category    string
	titleFmt    string
	description string
	remediation string
}

var codePatterns = []codePattern{
	// SQL injection
	{
		re:          regexp.MustCompile(`(?i)(?:query|execute|exec|raw)\s*\(\s*[` + "`" + `"']?\s*(?:SELECT|INSERT|UPDATE|DELETE|DROP|ALTER|CREATE).*?(?:\+\s*\w|\$\{|%s|%\()`),
		severity:    "critical",
		category:    "sql_injection",
		titleFmt:    "Potential SQL injection in %s",
		description: "Raw SQL query with dynamic input detected. String concatenation or template literals in SQL queries allow attackers to inject arbitrary SQL.",
		remediation: "Use parameterized queries or an ORM. Never concatenate user input into SQL strings.",
	},
	{
		re:          regexp.MustCompile(`(?i)\.raw\s*\(.*[+$%]`),
		severity:    "critical",
		category:    "sql_injection",
		titleFmt:    "Raw query with dynamic input in %s",
		description: "ORM .raw() method called with dynamic input. This bypasses the ORM's built-in protections.",
		remediation: "Use the ORM's query builder instead of .raw() with string interpolation.",
	},
	{
		re:          regexp.MustCompile(`(?i)f["'].*(?:SELECT|INSERT|UPDATE|DELETE)\s+.*\{.*\}`),
		severity:    "critical",
		category:    "sql_injection",
		titleFmt:    "f-string SQL query in %s",
		description: "Python f-string used to build a SQL query with embedded variables. This is a direct SQL injection vector.",
		remediation: "Use parameterized queries with placeholders (e.g., cursor.execute('SELECT * FROM users WHERE id = ?', (user_id,))).",
	},
	// XSS
	{
		re:          regexp.MustCompile(`(?i)\.innerHTML\s*=`),
		exclude:     regexp.MustCompile(`(?i)\.innerHTML\s*=\s*['"` + "`" + `]\s*['"` + "`" + `]`),
		severity:    "high",
		category:    "xss",
		titleFmt:    "innerHTML assignment in %s",
		description: "Direct innerHTML assignment with dynamic content. If user input reaches this, it enables cross-site scripting.",
		remediation: "Use textContent instead of innerHTML, or sanitize with DOMPurify.",
	},
	{
		re:          regexp.MustCompile(`dangerouslySetInnerHTML`),
		severity:    "high",
		category:    "xss",
		titleFmt:    "dangerouslySetInnerHTML in %s",
		description: "React's dangerouslySetInnerHTML used. This bypasses React's XSS protections.",
		remediation: "Avoid dangerouslySetInnerHTML. If necessary, sanitize input with DOMPurify before rendering.",
	},
	{
		re:          regexp.MustCompile(`(?i)v-html\s*=`),
		severity:    "high",
		category:    "xss",
		titleFmt:    "v-html directive in %s",
		description: "Vue's v-html directive renders raw HTML. If user input is rendered, this is an XSS vector.",
		remediation: "Use v-text or {{ }} interpolation instead. Sanitize if v-html is truly needed.",
	},
	// Dangerous functions
	{
		re:          regexp.MustCompile(`(?i)\beval\s*\(`),
		severity:    "critical",
		category:    "code_injection",
		titleFmt:    "eval() usage in %s",
		description: "eval() executes arbitrary code. If user input reaches eval, it enables remote code execution.",
		remediation: "Remove eval(). Use JSON.parse() for data, or a sandboxed interpreter if dynamic execution is truly needed.",
	},
	{
		re:          regexp.MustCompile(`(?i)\bexec\s*\(`),
		severity:    "critical",
		category:    "code_injection",
		titleFmt:    "exec() usage in %s",
		description: "exec() executes arbitrary Python code. This is extremely dangerous if any user input is involved.",
		remediation: "Remove exec(). Use safer alternatives like ast.literal_eval() for data parsing.",
	},
	{
		re:          regexp.MustCompile(`(?i)new\s+Function\s*\(`),
		severity:    "critical",
		category:    "code_injection",
		titleFmt:    "new Function() constructor in %s",
		description: "The Function constructor compiles and executes code from strings, similar to eval().",
		remediation: "Avoid the Function constructor. Use static function definitions.",
	},
	{
		re:          regexp.MustCompile(`(?i)child_process\.exec\s*\(`),
		severity:    "critical",
		category:    "command_injection",
		titleFmt:    "child_process.exec in %s",
		description: "child_process.exec runs shell commands. If user input is included, it enables OS command injection.",
		remediation: "Use child_process.execFile() with an argument array instead of exec() with a command string.",
	},
	{
		re:          regexp.MustCompile(`(?i)subprocess\.(?:call|run|Popen)\s*\(\s*(?:[^,\]]*\+|f["']|.*\.format|.*%)`),
		severity:    "critical",
		category:    "command_injection",
		titleFmt:    "subprocess with dynamic input in %s",
		description: "subprocess called with string concatenation or formatting. This can enable OS command injection.",
		remediation: "Use subprocess with a list of arguments: subprocess.run(['cmd', arg1, arg2]) instead of a formatted string.",
	},
	{
		re:          regexp.MustCompile(`(?i)os\.system\s*\(`),
		severity:    "critical",
		category:    "command_injection",
		titleFmt:    "os.system() usage in %s",
		description: "os.system() runs shell commands and is vulnerable to injection. It also doesn't capture output.",
		remediation: "Use subprocess.run() with a list of arguments instead of os.system().",
	},
	// Insecure deserialization
	{
		re:          regexp.MustCompile(`(?i)pickle\.loads?\s*\(`),
		severity:    "critical",
		category:    "insecure_deserialization",
		titleFmt:    "pickle.load/loads in %s",
		description: "Python pickle deserializes arbitrary objects. Loading untrusted pickle data can execute arbitrary code.",
		remediation: "Use JSON or another safe serialization format. If pickle is required, only load data from fully trusted sources.",
	},
	{
		re:          regexp.MustCompile(`(?i)yaml\.load\s*\(`),
		exclude:     regexp.MustCompile(`(?i)Loader\s*=\s*(?:yaml\.)?SafeLoader|yaml\.safe_load`),
		severity:    "critical",
		category:    "insecure_deserialization",
		titleFmt:    "Unsafe yaml.load() in %s",
		description: "yaml.load() without SafeLoader can execute arbitrary Python code embedded in YAML.",
		remediation: "Use yaml.safe_load() or yaml.load(data, Loader=yaml.SafeLoader).",
	},
	// Missing input validation
	{
		re:          regexp.MustCompile(`(?i)req\.(?:params|query|body)\.\w+`),
		exclude:     regexp.MustCompile(`(?i)\?\.|parseInt|Number|validate|sanitize|escape|trim|zod|yup|joi`),
		severity:    "medium",
		category:    "missing_validation",
		titleFmt:    "Unvalidated request input in %s",
		description: "Request parameter accessed without visible validation or sanitization.",
		remediation: "Validate and sanitize all request inputs. Use a validation library like Zod, Joi, or Yup.",
	},
	// Debug mode
	{
		re:          regexp.MustCompile(`(?i)debug\s*[:=]\s*(?:true|1|"true")`),
		severity:    "medium",
		category:    "debug_mode",
		titleFmt:    "Debug mode enabled in %s",
		description: "Debug mode is enabled. This may expose stack traces, internal paths, and sensitive configuration.",
		remediation: "Disable debug mode in production. Use environment variables to control debug settings.",
	},
	{
		re:          regexp.MustCompile(`(?i)app\.run\s*\(.*debug\s*=\s*True`),
		severity:    "medium",
		category:    "debug_mode",
		titleFmt:    "Flask debug mode in %s",
		description: "Flask app.run() called with debug=True. This enables the Werkzeug debugger which allows arbitrary code execution.",
		remediation: "Set debug=False in production. Use environment variable: app.run(debug=os.environ.get('DEBUG', False)).",
	},
	// CORS
	{
		re:          regexp.MustCompile(`(?i)(?:Access-Control-Allow-Origin|cors)\s*[:=]\s*['"]\*['"]`),
		severity:    "medium",
		category:    "cors_misconfiguration",
		titleFmt:    "Wildcard CORS in %s",
		description: "CORS is configured to allow all origins (*). This permits any website to make authenticated requests to your API.",
		remediation: "Restrict CORS to specific trusted origins instead of using wildcard.",
	},
	{
		re:          regexp.MustCompile(`(?i)cors\(\s*\)`),
		exclude:     regexp.MustCompile(`(?i)cors\(\s*\)\s*\(`),
		severity:    "medium",
		category:    "cors_misconfiguration",
		titleFmt:    "Default CORS (allow all) in %s",
		description: "CORS middleware initialized without options, which may default to allowing all origins.",
		remediation: "Configure CORS with specific origins: cors({origin: ['https://yourdomain.com']}).",
	},
	// Logging sensitive data
	{
		re:          regexp.MustCompile(`(?i)console\.log\s*\(.*(?:password|token|secret|key|auth|credential|ssn|credit.?card)`),
		severity:    "low",
		category:    "information_disclosure",
		titleFmt:    "Sensitive data in console.log in %s",
		description: "Sensitive data (passwords, tokens, secrets) appears to be logged to console.",
		remediation: "Remove logging of sensitive data. Use structured logging with redaction for production.",
	},
	{
		re:          regexp.MustCompile(`(?i)(?:print|logging\.(?:debug|info|warning))\s*\(.*(?:password|token|secret|key|auth|credential)`),
		severity:    "low",
		category:    "information_disclosure",
		titleFmt:    "Sensitive data logged in %s",
		description: "Sensitive data appears in print/logging statements.",
		remediation: "Remove sensitive data from log statements. Use structured logging with automatic redaction.",
	},
}

// patternExtensions are the source files the pattern rules run over.
var patternExtensions = map[string]bool{
	".py": true, ".js": true, ".ts": true, ".jsx": true, ".tsx": true,
	".vue": true, ".svelte": true, ".rb": true, ".php": true,
	".java": true, ".go": true,
}

// ScanPatterns runs the insecure-code rules over all source files. Each rule
// reports at most once per file, at the first matching line.
func ScanPatterns(files []models.SourceFile) []models.FindingRecord {
	var findings []models.FindingRecord

	for _, f := range files {
		if !patternExtensions[filepath.Ext(f.Path)] {
			continue
		}
		lines := strings.Split(f.Content, "\n")
		for _, p := range codePatterns {
			for i, line := range lines {
				if !p.re.MatchString(line) {
					continue
				}
				if p.exclude != nil && p.exclude.MatchString(line) {
					continue
				}
				findings = append(findings, models.FindingRecord{
					Severity:    p.severity,
					Category:    p.category,
					Title:       fmt.Sprintf(p.titleFmt, f.Path),
					Description: p.description,
					Location: &models.Location{
						Type:    "file",
						File:    f.Path,
						Line:    i + 1,
						Snippet: truncateSnippet(strings.TrimSpace(line)),
					},
					Remediation: p.remediation,
				})
				break
			}
		}
	}

	return findings
}

func truncateSnippet(s string) string {
	if len(s) <= snippetLimit {
		return s
	}
	return s[:snippetLimit]
}
