package static

import (
	"fmt"
	"math"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/vibecheck/vibecheck/pkg/models"
)

// entropyThreshold is the Shannon entropy above which an assigned value is
// treated as a likely real credential.
const entropyThreshold = 4.0

type secretPattern struct {
	re   *regexp.Regexp
	kind string
}

// Every pattern is case-insensitive, token shapes included.
var secretPatterns = []secretPattern{
	{regexp.MustCompile(`(?i)(?:api[_-]?key|apikey)\s*[:=]\s*['"]([A-Za-z0-9_\-]{20,})['"]`), "API key"},
	{regexp.MustCompile(`(?i)AKIA[0-9A-Z]{16}`), "AWS Access Key ID"},
	{regexp.MustCompile(`(?i)(?:aws[_-]?secret|AWS_SECRET_ACCESS_KEY)\s*[:=]\s*['"]([A-Za-z0-9/+=]{40})['"]`), "AWS Secret Access Key"},
	{regexp.MustCompile(`(?i)gh[ps]_[A-Za-z0-9_]{36,}`), "GitHub token"},
	{regexp.MustCompile(`(?i)github_pat_[A-Za-z0-9_]{22,}`), "GitHub Personal Access Token"},
	{regexp.MustCompile(`(?i)sk_live_[A-Za-z0-9]{24,}`), "Stripe Secret Key (LIVE)"},
	{regexp.MustCompile(`(?i)sk_test_[A-Za-z0-9]{24,}`), "Stripe Secret Key (test)"},
	{regexp.MustCompile(`(?i)xox[baprs]-[A-Za-z0-9\-]{10,}`), "Slack token"},
	{regexp.MustCompile(`(?i)(?:secret|password|passwd|pwd|token|auth_token|access_token|private_key)\s*[:=]\s*['"]([^'"]{8,})['"]`), "Hardcoded secret"},
	{regexp.MustCompile(`(?i)(?:jwt[_-]?secret|JWT_SECRET)\s*[:=]\s*['"]([^'"]{6,})['"]`), "JWT Secret"},
	{regexp.MustCompile(`(?i)(?:postgres|mysql|mongodb|redis)(?:ql)?://\w+:[^@\s]+@`), "Database URL with credentials"},
	{regexp.MustCompile(`(?i)-----BEGIN (?:RSA |EC |DSA )?PRIVATE KEY-----`), "Private key"},
	{regexp.MustCompile(`(?i)SG\.[A-Za-z0-9_\-]{22}\.[A-Za-z0-9_\-]{43}`), "SendGrid API key"},
	{regexp.MustCompile(`(?i)AC[a-f0-9]{32}`), "Twilio Account SID"},
	{regexp.MustCompile(`(?i)AIza[0-9A-Za-z\-_]{35}`), "Google API key"},
}

var secretSkipPaths = []*regexp.Regexp{
	regexp.MustCompile(`\.test\.`),
	regexp.MustCompile(`\.spec\.`),
	regexp.MustCompile(`__test__`),
	regexp.MustCompile(`\.example$`),
	regexp.MustCompile(`\.sample$`),
	regexp.MustCompile(`package-lock\.json$`),
	regexp.MustCompile(`yarn\.lock$`),
	regexp.MustCompile(`\.lock$`),
	regexp.MustCompile(`\.min\.js$`),
	regexp.MustCompile(`node_modules`),
	regexp.MustCompile(`vendor/`),
}

var entropyAssignPattern = regexp.MustCompile(`(?i)(?:secret|key|token|password|pwd)\s*[:=]\s*['"]([A-Za-z0-9+/=_\-]{20,})['"]`)

var entropySkipExtensions = map[string]bool{
	".json": true, ".lock": true, ".svg": true, ".map": true,
}

var placeholderMarkers = []string{
	"your_", "example", "placeholder", "changeme", "xxx", "todo",
	"replace", "insert", "dummy", "fake", "sample", "test_",
	"sk_test_", "pk_test_", "change_me", "<your", "${", "{{",
	"process.env", "os.environ", "os.getenv", "env[",
}

// ScanSecrets detects hardcoded credentials: first by known token shapes,
// then by a Shannon-entropy pass over secret-context assignments.
func ScanSecrets(files []models.SourceFile) []models.FindingRecord {
	var findings []models.FindingRecord
	// file:line pairs already reported, so the entropy pass does not double up
	reported := make(map[string]bool)

	for _, f := range files {
		if skipSecretPath(f.Path) {
			continue
		}
		for i, line := range strings.Split(f.Content, "\n") {
			for _, sp := range secretPatterns {
				loc := sp.re.FindStringIndex(line)
				if loc == nil {
					continue
				}
				if isPlaceholder(line[loc[0]:loc[1]]) {
					continue
				}

				severity := models.SeverityCritical
				if strings.Contains(strings.ToLower(sp.kind), "test") {
					severity = models.SeverityHigh
				}

				findings = append(findings, models.FindingRecord{
					Severity: severity,
					Category: "hardcoded_secret",
					Title:    fmt.Sprintf("%s found in %s", sp.kind, f.Path),
					Description: fmt.Sprintf(
						"A hardcoded %s was detected. Hardcoded secrets in source code "+
							"can be extracted by anyone with repo access and are difficult to rotate.",
						sp.kind,
					),
					Location: &models.Location{
						Type:    "file",
						File:    f.Path,
						Line:    i + 1,
						Snippet: redactSecret(strings.TrimSpace(line), sp.re),
					},
					Evidence: map[string]any{"secret_type": sp.kind, "pattern_matched": true},
					Remediation: "Move secrets to environment variables. Use a secrets manager " +
						"(e.g., AWS Secrets Manager, HashiCorp Vault, or .env files excluded from version control).",
				})
				reported[fmt.Sprintf("%s:%d", f.Path, i+1)] = true
				break
			}
		}
	}

	for _, f := range files {
		if skipSecretPath(f.Path) || entropySkipExtensions[filepath.Ext(f.Path)] {
			continue
		}
		for i, line := range strings.Split(f.Content, "\n") {
			m := entropyAssignPattern.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			value := m[1]
			if shannonEntropy(value) <= entropyThreshold || isPlaceholder(value) {
				continue
			}
			if reported[fmt.Sprintf("%s:%d", f.Path, i+1)] {
				continue
			}
			findings = append(findings, models.FindingRecord{
				Severity: models.SeverityHigh,
				Category: "hardcoded_secret",
				Title:    fmt.Sprintf("High-entropy secret in %s", f.Path),
				Description: "A high-entropy string was found in a secret/key/token/password assignment. " +
					"This likely contains a real credential.",
				Location: &models.Location{
					Type:    "file",
					File:    f.Path,
					Line:    i + 1,
					Snippet: redactSecret(strings.TrimSpace(line), entropyAssignPattern),
				},
				Evidence: map[string]any{
					"entropy": math.Round(shannonEntropy(value)*100) / 100,
					"length":  len(value),
				},
				Remediation: "Move this value to an environment variable or secrets manager.",
			})
		}
	}

	return findings
}

func skipSecretPath(path string) bool {
	for _, re := range secretSkipPaths {
		if re.MatchString(path) {
			return true
		}
	}
	return false
}

func isPlaceholder(text string) bool {
	lower := strings.ToLower(text)
	for _, marker := range placeholderMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

func shannonEntropy(s string) float64 {
	if s == "" {
		return 0
	}
	freq := make(map[rune]int)
	for _, c := range s {
		freq[c]++
	}
	length := float64(len([]rune(s)))
	entropy := 0.0
	for _, count := range freq {
		p := float64(count) / length
		entropy -= p * math.Log2(p)
	}
	return entropy
}

// redactSecret masks the matched secret in a snippet, keeping the first and
// last four characters when long enough to stay recognizable.
func redactSecret(line string, re *regexp.Regexp) string {
	loc := re.FindStringIndex(line)
	if loc == nil {
		return line
	}
	secret := line[loc[0]:loc[1]]
	var redacted string
	if len(secret) > 8 {
		redacted = secret[:4] + strings.Repeat("*", len(secret)-8) + secret[len(secret)-4:]
	} else {
		redacted = "****"
	}
	return line[:loc[0]] + redacted + line[loc[1]:]
}
