package static

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vibecheck/vibecheck/pkg/models"
)

// ScanDependencies checks declared dependencies against the known-vulnerable
// version database. Unpinned dependencies with a known vulnerability are
// reported at info severity.
func ScanDependencies(info models.ProjectInfo) []models.FindingRecord {
	var findings []models.FindingRecord

	for pkgName, versionStr := range info.Dependencies {
		entries, ok := vulnDB[strings.ToLower(strings.TrimSpace(pkgName))]
		if !ok {
			continue
		}

		for _, entry := range entries {
			cleanVersion := strings.TrimLeft(versionStr, "^~>=<! ")
			if cleanVersion == "*" || cleanVersion == "" {
				findings = append(findings, models.FindingRecord{
					Severity: models.SeverityInfo,
					Category: "vulnerable_dependency",
					Title:    fmt.Sprintf("Unpinned dependency: %s", pkgName),
					Description: fmt.Sprintf(
						"Package '%s' has no pinned version. Known vulnerability exists in versions %s %s: %s",
						pkgName, entry.Op, entry.Version, entry.Description,
					),
					Location: &models.Location{Type: "dependency", Package: pkgName, Version: versionStr},
					Evidence: map[string]any{"cve": entry.CVE, "vulnerable_below": entry.Version},
					Remediation: fmt.Sprintf(
						"Pin %s to version %s or later.", pkgName, entry.Version,
					),
				})
				continue
			}

			if versionVulnerable(cleanVersion, entry.Op, entry.Version) {
				findings = append(findings, models.FindingRecord{
					Severity: entry.Severity,
					Category: "vulnerable_dependency",
					Title:    fmt.Sprintf("Vulnerable dependency: %s@%s", pkgName, versionStr),
					Description: fmt.Sprintf(
						"%s. Installed version %s is vulnerable (affects versions %s %s).",
						entry.Description, versionStr, entry.Op, entry.Version,
					),
					Location: &models.Location{Type: "dependency", Package: pkgName, Version: versionStr},
					Evidence: map[string]any{
						"cve":               entry.CVE,
						"vulnerable_below":  entry.Version,
						"installed_version": versionStr,
					},
					Remediation: fmt.Sprintf(
						"Upgrade %s to version %s or later.", pkgName, entry.Version,
					),
				})
			}
		}
	}

	return findings
}

// versionVulnerable compares major.minor.patch tuples. Versions that do not
// parse are treated as not vulnerable.
func versionVulnerable(installed, op, vulnVersion string) bool {
	installedParts, ok := versionTuple(installed)
	if !ok {
		return false
	}
	vulnParts, ok := versionTuple(vulnVersion)
	if !ok {
		return false
	}

	cmp := compareTuples(installedParts, vulnParts)
	switch op {
	case "<":
		return cmp < 0
	case "<=":
		return cmp <= 0
	}
	return false
}

func versionTuple(v string) ([3]int, bool) {
	var parts [3]int
	segments := strings.Split(v, ".")
	if len(segments) > 3 {
		segments = segments[:3]
	}
	for i, seg := range segments {
		n, err := strconv.Atoi(seg)
		if err != nil {
			return parts, false
		}
		parts[i] = n
	}
	return parts, true
}

func compareTuples(a, b [3]int) int {
	for i := 0; i < 3; i++ {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}
