package models

// Assessment modes.
const (
	ModeLightweight = "lightweight"
	ModeRobust      = "robust"
)

// Assessment statuses. Terminal statuses are complete and failed.
const (
	StatusQueued    = "queued"
	StatusCloning   = "cloning"
	StatusAnalyzing = "analyzing"
	StatusScanning  = "scanning"
	StatusComplete  = "complete"
	StatusFailed    = "failed"
)

// TerminalStatus reports whether status is a terminal assessment status.
func TerminalStatus(status string) bool {
	return status == StatusComplete || status == StatusFailed
}

// Scan depths.
const (
	DepthQuick    = "quick"
	DepthStandard = "standard"
	DepthDeep     = "deep"
)

// DefaultAgents is the agent list used when a robust request omits one.
var DefaultAgents = []string{"recon", "auth", "injection", "config"}

// ValidMode reports whether mode is a known assessment mode.
func ValidMode(mode string) bool {
	return mode == ModeLightweight || mode == ModeRobust
}

// ValidDepth reports whether depth is a known scan depth.
func ValidDepth(depth string) bool {
	return depth == DepthQuick || depth == DepthStandard || depth == DepthDeep
}

// SourceFile is one repository file held in memory for static analysis.
type SourceFile struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}

// ProjectInfo carries the facts extracted from project manifests.
type ProjectInfo struct {
	Language         string
	Framework        string
	Dependencies     map[string]string
	HasGitignore     bool
	GitignoreEntries []string
}

// CreateAssessmentInput is the service-layer input for creating an
// assessment.
type CreateAssessmentInput struct {
	Mode            string
	RepoURL         string
	Files           []SourceFile
	TargetURL       string
	TunnelSessionID string
	Agents          []string
	Depth           string
	IdempotencyKey  string
}

// RerunAssessmentInput carries the optional overrides for a rerun.
type RerunAssessmentInput struct {
	Agents         []string // nil = keep
	IdempotencyKey *string  // nil = keep
}

// AssessmentListParams are the filters, sort, and pagination for listing
// assessments. Sort is "field" or "-field" for descending.
type AssessmentListParams struct {
	Mode    string
	Status  string
	Sort    string
	Page    int
	PerPage int
}

// FindingListParams are the filters and sort for listing findings of one
// assessment. Sort "severity" orders by severity rank then creation time.
type FindingListParams struct {
	Severity string
	Category string
	Agent    string
	Sort     string
	Page     int
	PerPage  int
}

// AgentLogListParams filter the step logs of one assessment.
type AgentLogListParams struct {
	Agent   string
	Page    int
	PerPage int
}
