package static

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vibecheck/vibecheck/pkg/models"
)

func TestScanConfigEnvNotIgnored(t *testing.T) {
	files := []models.SourceFile{{Path: ".env", Content: "SECRET=x"}}
	info := models.ProjectInfo{HasGitignore: true, GitignoreEntries: []string{"node_modules"}}

	findings := ScanConfig(files, info)
	f := findByCategory(findings, "exposed_secrets")
	require.NotNil(t, f)
	assert.Equal(t, "critical", f.Severity)
	assert.Equal(t, ".env file not in .gitignore", f.Title)
}

func TestScanConfigEnvIgnoredByGlob(t *testing.T) {
	files := []models.SourceFile{{Path: ".env", Content: "SECRET=x"}}
	info := models.ProjectInfo{HasGitignore: true, GitignoreEntries: []string{".env*"}}

	findings := ScanConfig(files, info)
	assert.Nil(t, findByCategory(findings, "exposed_secrets"))
}

func TestScanConfigMissingGitignore(t *testing.T) {
	findings := ScanConfig(nil, models.ProjectInfo{})
	f := findByCategory(findings, "missing_gitignore")
	require.NotNil(t, f)
	assert.Equal(t, "high", f.Severity)
}

func TestScanConfigDockerfileRoot(t *testing.T) {
	files := []models.SourceFile{
		{Path: "Dockerfile", Content: "FROM node:20\nCOPY . .\nCMD [\"node\", \"app.js\"]\n"},
	}
	info := models.ProjectInfo{HasGitignore: true}
	findings := ScanConfig(files, info)
	f := findByCategory(findings, "container_security")
	require.NotNil(t, f)
	assert.Equal(t, "medium", f.Severity)
}

func TestScanConfigDockerfileNonRootOK(t *testing.T) {
	files := []models.SourceFile{
		{Path: "Dockerfile", Content: "FROM node:20\nUSER appuser\nCMD [\"node\"]\n"},
	}
	info := models.ProjectInfo{HasGitignore: true}
	findings := ScanConfig(files, info)
	assert.Nil(t, findByCategory(findings, "container_security"))
}

func TestScanConfigDockerfileCopyEnv(t *testing.T) {
	files := []models.SourceFile{
		{Path: "Dockerfile", Content: "FROM node:20\nUSER app\nCOPY .env /app/.env\n"},
	}
	info := models.ProjectInfo{HasGitignore: true}
	findings := ScanConfig(files, info)
	f := findByCategory(findings, "exposed_secrets")
	require.NotNil(t, f)
	assert.Contains(t, f.Title, ".env file copied into Docker image")
}

func TestScanConfigNextConfig(t *testing.T) {
	files := []models.SourceFile{
		{Path: "next.config.js", Content: "module.exports = {\n  reactStrictMode: false,\n  images: { domains: ['*'] },\n}\n"},
	}
	info := models.ProjectInfo{HasGitignore: true}
	findings := ScanConfig(files, info)
	assert.NotNil(t, findByCategory(findings, "framework_config"))
	count := 0
	for _, f := range findings {
		if f.Category == "framework_config" {
			count++
		}
	}
	assert.Equal(t, 2, count, "strict mode and wildcard images")
}

func TestScanConfigInstallScripts(t *testing.T) {
	files := []models.SourceFile{
		{Path: "package.json", Content: `{"scripts": {"postinstall": "node setup.js"}}`},
	}
	info := models.ProjectInfo{HasGitignore: true}
	findings := ScanConfig(files, info)
	f := findByCategory(findings, "supply_chain")
	require.NotNil(t, f)
	assert.Equal(t, "info", f.Severity)
}

func TestScanConfigComposeBindAll(t *testing.T) {
	files := []models.SourceFile{
		{Path: "docker-compose.yml", Content: "services:\n  db:\n    ports:\n      - \"0.0.0.0:5432:5432\"\n"},
	}
	info := models.ProjectInfo{HasGitignore: true}
	findings := ScanConfig(files, info)
	f := findByCategory(findings, "network_exposure")
	require.NotNil(t, f)
	assert.Equal(t, "medium", f.Severity)
}

func TestEnvIgnored(t *testing.T) {
	assert.True(t, envIgnored([]string{".env"}))
	assert.True(t, envIgnored([]string{"*.env"}))
	assert.True(t, envIgnored([]string{".env*"}))
	assert.False(t, envIgnored([]string{"node_modules", "dist/"}))
	assert.False(t, envIgnored(nil))
}
