package static

import (
	"fmt"
	"regexp"
	"strings"

	gitignore "github.com/sabhiram/go-gitignore"
	"github.com/vibecheck/vibecheck/pkg/models"
)

var (
	dockerRootUser     = regexp.MustCompile(`USER\s+root`)
	dockerAnyUser      = regexp.MustCompile(`USER\s+\w+`)
	dockerCopyEnv      = regexp.MustCompile(`COPY\s+\.env`)
	nextStrictModeOff  = regexp.MustCompile(`reactStrictMode\s*:\s*false`)
	nextWildcardImages = regexp.MustCompile(`(?s)(?:images|remotePatterns).*\*`)
	composeBindAll     = regexp.MustCompile(`ports:\s*\n\s*-\s*["']?0\.0\.0\.0:`)
)

// ScanConfig checks configuration files for security misconfigurations:
// unignored .env files, root containers, leaked env files in images, risky
// framework settings, and services bound to all interfaces.
func ScanConfig(files []models.SourceFile, info models.ProjectInfo) []models.FindingRecord {
	var findings []models.FindingRecord

	hasEnvFile := false
	for _, f := range files {
		if f.Path == ".env" || strings.HasSuffix(f.Path, "/.env") {
			hasEnvFile = true
			break
		}
	}

	if hasEnvFile && !envIgnored(info.GitignoreEntries) {
		findings = append(findings, models.FindingRecord{
			Severity: models.SeverityCritical,
			Category: "exposed_secrets",
			Title:    ".env file not in .gitignore",
			Description: "An .env file exists but is not listed in .gitignore. If committed, " +
				"environment variables (database URLs, API keys, secrets) will be exposed in version control history.",
			Location: &models.Location{Type: "file", File: ".gitignore"},
			Remediation: "Add '.env' to .gitignore immediately. If already committed, rotate all secrets " +
				"in the .env file and use 'git filter-branch' or BFG to remove it from history.",
		})
	}

	if !info.HasGitignore {
		findings = append(findings, models.FindingRecord{
			Severity: models.SeverityHigh,
			Category: "missing_gitignore",
			Title:    "No .gitignore file found",
			Description: "No .gitignore file was detected. This risks committing sensitive files, " +
				"build artifacts, and dependencies to version control.",
			Location:    &models.Location{Type: "file", File: ".gitignore"},
			Remediation: "Create a .gitignore file. Use gitignore.io to generate one for your language/framework.",
		})
	}

	for _, f := range files {
		if !strings.Contains(f.Path, "Dockerfile") {
			continue
		}
		if dockerRootUser.MatchString(f.Content) || !dockerAnyUser.MatchString(f.Content) {
			findings = append(findings, models.FindingRecord{
				Severity: models.SeverityMedium,
				Category: "container_security",
				Title:    fmt.Sprintf("Container runs as root in %s", f.Path),
				Description: "Dockerfile does not specify a non-root USER. Container processes running " +
					"as root can escalate to host-level access if the container is compromised.",
				Location:    &models.Location{Type: "file", File: f.Path},
				Remediation: "Add 'RUN adduser --disabled-password appuser' and 'USER appuser' to your Dockerfile.",
			})
		}
		if dockerCopyEnv.MatchString(f.Content) {
			findings = append(findings, models.FindingRecord{
				Severity: models.SeverityCritical,
				Category: "exposed_secrets",
				Title:    fmt.Sprintf(".env file copied into Docker image in %s", f.Path),
				Description: "The .env file is being COPY'd into the Docker image. " +
					"Anyone with access to the image can extract all secrets.",
				Location: &models.Location{Type: "file", File: f.Path},
				Remediation: "Use Docker secrets or pass environment variables at runtime with " +
					"'docker run -e' or '--env-file'. Add .env to .dockerignore.",
			})
		}
	}

	for _, f := range files {
		if !strings.Contains(f.Path, "next.config") {
			continue
		}
		if nextStrictModeOff.MatchString(f.Content) {
			findings = append(findings, models.FindingRecord{
				Severity:    models.SeverityLow,
				Category:    "framework_config",
				Title:       "React Strict Mode disabled in Next.js",
				Description: "React Strict Mode is disabled. It helps identify unsafe lifecycles and deprecated patterns.",
				Location:    &models.Location{Type: "file", File: f.Path},
				Remediation: "Set reactStrictMode: true in next.config.js.",
			})
		}
		if nextWildcardImages.MatchString(f.Content) {
			findings = append(findings, models.FindingRecord{
				Severity: models.SeverityMedium,
				Category: "framework_config",
				Title:    "Wildcard image domains in Next.js",
				Description: "Next.js image optimization is configured with wildcard domains. " +
					"This allows loading images from any external source.",
				Location:    &models.Location{Type: "file", File: f.Path},
				Remediation: "Restrict image domains to specific trusted sources.",
			})
		}
	}

	for _, f := range files {
		if f.Path != "package.json" && !strings.HasSuffix(f.Path, "/package.json") {
			continue
		}
		if strings.Contains(f.Content, `"postinstall"`) || strings.Contains(f.Content, `"preinstall"`) {
			findings = append(findings, models.FindingRecord{
				Severity: models.SeverityInfo,
				Category: "supply_chain",
				Title:    "Install lifecycle scripts detected",
				Description: "package.json contains pre/post install scripts. These run automatically on " +
					"'npm install' and could execute malicious code if a dependency is compromised.",
				Location:    &models.Location{Type: "file", File: f.Path},
				Remediation: "Audit install scripts. Consider using --ignore-scripts flag or npm's 'allow-scripts' feature.",
			})
		}
	}

	for _, f := range files {
		if !strings.Contains(f.Path, "docker-compose") {
			continue
		}
		if composeBindAll.MatchString(f.Content) {
			findings = append(findings, models.FindingRecord{
				Severity: models.SeverityMedium,
				Category: "network_exposure",
				Title:    fmt.Sprintf("Service bound to all interfaces in %s", f.Path),
				Description: "A service is bound to 0.0.0.0, making it accessible from any " +
					"network interface, not just localhost.",
				Location:    &models.Location{Type: "file", File: f.Path},
				Remediation: "Bind to 127.0.0.1 for services that should only be accessed locally.",
			})
		}
	}

	return findings
}

// envIgnored compiles the repository's .gitignore entries and checks whether
// an .env file at the repo root would be ignored.
func envIgnored(entries []string) bool {
	if len(entries) == 0 {
		return false
	}
	matcher := gitignore.CompileIgnoreLines(entries...)
	return matcher.MatchesPath(".env")
}
