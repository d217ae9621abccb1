// Package models holds the plain value types shared between the scan
// pipelines, the service layer, and the HTTP surface.
package models

// Severity levels, ordered from most to least severe.
const (
	SeverityCritical = "critical"
	SeverityHigh     = "high"
	SeverityMedium   = "medium"
	SeverityLow      = "low"
	SeverityInfo     = "info"
)

// SeverityRank maps a severity to its sort rank (critical first).
// Unknown severities sort last.
func SeverityRank(severity string) int {
	switch severity {
	case SeverityCritical:
		return 0
	case SeverityHigh:
		return 1
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 3
	case SeverityInfo:
		return 4
	default:
		return 5
	}
}

// ValidSeverity reports whether severity is one of the five allowed levels.
func ValidSeverity(severity string) bool {
	return SeverityRank(severity) < 5
}

// Location pinpoints where a finding was observed. Exactly one shape is
// populated, discriminated by Type: "file" (File/Line/Snippet), "endpoint"
// (URL), or "dependency" (Package/Version).
type Location struct {
	Type    string `json:"type"`
	File    string `json:"file,omitempty"`
	Line    int    `json:"line,omitempty"`
	Snippet string `json:"snippet,omitempty"`
	URL     string `json:"url,omitempty"`
	Package string `json:"package,omitempty"`
	Version string `json:"version,omitempty"`
}

// FindingRecord is the analyzer-side representation of a security finding,
// before it is persisted and assigned an identifier.
type FindingRecord struct {
	Severity    string         `json:"severity"`
	Category    string         `json:"category"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Location    *Location      `json:"location,omitempty"`
	Evidence    map[string]any `json:"evidence,omitempty"`
	Remediation string         `json:"remediation"`
}

// FindingCounts is the per-assessment severity histogram.
type FindingCounts struct {
	Critical int `json:"critical"`
	High     int `json:"high"`
	Medium   int `json:"medium"`
	Low      int `json:"low"`
	Info     int `json:"info"`
	Total    int `json:"total"`
}

// Add increments the bucket for severity and the total. Unknown severities
// are ignored so that total always equals the sum of the buckets.
func (c *FindingCounts) Add(severity string) {
	switch severity {
	case SeverityCritical:
		c.Critical++
	case SeverityHigh:
		c.High++
	case SeverityMedium:
		c.Medium++
	case SeverityLow:
		c.Low++
	case SeverityInfo:
		c.Info++
	default:
		return
	}
	c.Total++
}

// AsMap renders the histogram in the JSON column shape.
func (c FindingCounts) AsMap() map[string]int {
	return map[string]int{
		"critical": c.Critical,
		"high":     c.High,
		"medium":   c.Medium,
		"low":      c.Low,
		"info":     c.Info,
		"total":    c.Total,
	}
}

// ZeroCounts returns an all-zero histogram map.
func ZeroCounts() map[string]int {
	return FindingCounts{}.AsMap()
}
