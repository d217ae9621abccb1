package models

// AgentLogEntry is one robust-agent step before persistence.
type AgentLogEntry struct {
	AssessmentID    string
	Agent           string
	Step            int
	Action          string
	Target          string
	Payload         *string
	ResponseCode    *int
	ResponsePreview *string
	Reasoning       string
	FindingID       *string
}
