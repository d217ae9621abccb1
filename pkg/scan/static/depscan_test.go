package static

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vibecheck/vibecheck/pkg/models"
)

func TestScanDependenciesVulnerable(t *testing.T) {
	info := models.ProjectInfo{Dependencies: map[string]string{
		"lodash": "4.17.20",
	}}
	findings := ScanDependencies(info)
	require.Len(t, findings, 1)
	f := findings[0]
	assert.Equal(t, "critical", f.Severity)
	assert.Equal(t, "vulnerable_dependency", f.Category)
	assert.Equal(t, "Vulnerable dependency: lodash@4.17.20", f.Title)
	assert.Equal(t, "dependency", f.Location.Type)
	assert.Equal(t, "lodash", f.Location.Package)
	assert.Equal(t, "CVE-2021-23337", f.Evidence["cve"])
}

func TestScanDependenciesPatched(t *testing.T) {
	info := models.ProjectInfo{Dependencies: map[string]string{
		"lodash":  "4.17.21",
		"express": "5.0.0",
	}}
	assert.Empty(t, ScanDependencies(info))
}

func TestScanDependenciesRangePrefixes(t *testing.T) {
	info := models.ProjectInfo{Dependencies: map[string]string{
		"axios": "^1.5.0",
	}}
	findings := ScanDependencies(info)
	require.Len(t, findings, 1)
	assert.Equal(t, "high", findings[0].Severity)
}

func TestScanDependenciesUnpinned(t *testing.T) {
	info := models.ProjectInfo{Dependencies: map[string]string{
		"pyyaml": "*",
	}}
	findings := ScanDependencies(info)
	require.Len(t, findings, 1)
	assert.Equal(t, "info", findings[0].Severity)
	assert.Equal(t, "Unpinned dependency: pyyaml", findings[0].Title)
}

func TestScanDependenciesUnknownPackage(t *testing.T) {
	info := models.ProjectInfo{Dependencies: map[string]string{
		"left-pad": "1.0.0",
	}}
	assert.Empty(t, ScanDependencies(info))
}

func TestVersionVulnerable(t *testing.T) {
	tests := []struct {
		installed string
		op        string
		vuln      string
		expected  bool
	}{
		{"4.17.20", "<", "4.17.21", true},
		{"4.17.21", "<", "4.17.21", false},
		{"4.17.21", "<=", "4.17.21", true},
		{"5.9", "<", "6.0", true},
		{"6", "<", "6.0", false},
		{"2.0.0-beta", "<", "2.3.2", false},
		{"garbage", "<", "1.0.0", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, versionVulnerable(tt.installed, tt.op, tt.vuln),
			"%s %s %s", tt.installed, tt.op, tt.vuln)
	}
}
