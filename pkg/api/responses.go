package api

import (
	"fmt"
	"time"

	"github.com/vibecheck/vibecheck/ent"
	"github.com/vibecheck/vibecheck/pkg/models"
)

// AssessmentLinks point a client at the assessment's sub-resources.
type AssessmentLinks struct {
	Self     string `json:"self"`
	Findings string `json:"findings"`
	Logs     string `json:"logs"`
}

// AssessmentResponse is the wire shape of one assessment.
type AssessmentResponse struct {
	ID              string          `json:"id"`
	Mode            string          `json:"mode"`
	Status          string          `json:"status"`
	RepoURL         *string         `json:"repo_url,omitempty"`
	TunnelSessionID *string         `json:"tunnel_session_id,omitempty"`
	Agents          []string        `json:"agents,omitempty"`
	Depth           string          `json:"depth"`
	FindingCounts   map[string]int  `json:"finding_counts"`
	IdempotencyKey  *string         `json:"idempotency_key,omitempty"`
	ErrorType       *string         `json:"error_type,omitempty"`
	ErrorMessage    *string         `json:"error_message,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
	CompletedAt     *time.Time      `json:"completed_at,omitempty"`
	Links           AssessmentLinks `json:"links"`
}

func toAssessmentResponse(a *ent.Assessment) *AssessmentResponse {
	return &AssessmentResponse{
		ID:              a.ID,
		Mode:            string(a.Mode),
		Status:          string(a.Status),
		RepoURL:         a.RepoURL,
		TunnelSessionID: a.TunnelSessionID,
		Agents:          a.Agents,
		Depth:           string(a.Depth),
		FindingCounts:   a.FindingCounts,
		IdempotencyKey:  a.IdempotencyKey,
		ErrorType:       a.ErrorType,
		ErrorMessage:    a.ErrorMessage,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
		CompletedAt:     a.CompletedAt,
		Links: AssessmentLinks{
			Self:     fmt.Sprintf("/v1/assessments/%s", a.ID),
			Findings: fmt.Sprintf("/v1/assessments/%s/findings", a.ID),
			Logs:     fmt.Sprintf("/v1/assessments/%s/logs", a.ID),
		},
	}
}

// AssessmentListResponse pages assessments.
type AssessmentListResponse struct {
	Data       []*AssessmentResponse `json:"data"`
	Pagination models.PageMeta       `json:"pagination"`
}

// FindingResponse is the wire shape of one finding.
type FindingResponse struct {
	ID           string         `json:"id"`
	AssessmentID string         `json:"assessment_id"`
	Severity     string         `json:"severity"`
	Category     string         `json:"category"`
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	Location     map[string]any `json:"location,omitempty"`
	Evidence     map[string]any `json:"evidence,omitempty"`
	Remediation  string         `json:"remediation"`
	Agent        *string        `json:"agent,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
}

func toFindingResponse(f *ent.Finding) *FindingResponse {
	return &FindingResponse{
		ID:           f.ID,
		AssessmentID: f.AssessmentID,
		Severity:     string(f.Severity),
		Category:     f.Category,
		Title:        f.Title,
		Description:  f.Description,
		Location:     f.Location,
		Evidence:     f.Evidence,
		Remediation:  f.Remediation,
		Agent:        f.Agent,
		CreatedAt:    f.CreatedAt,
	}
}

// FindingListResponse pages findings.
type FindingListResponse struct {
	Data       []*FindingResponse `json:"data"`
	Pagination models.PageMeta    `json:"pagination"`
}

// AgentLogResponse is the wire shape of one robust agent step log.
type AgentLogResponse struct {
	ID              string    `json:"id"`
	AssessmentID    string    `json:"assessment_id"`
	Agent           string    `json:"agent"`
	Step            int       `json:"step"`
	Action          string    `json:"action"`
	Target          string    `json:"target"`
	Payload         *string   `json:"payload,omitempty"`
	ResponseCode    *int      `json:"response_code,omitempty"`
	ResponsePreview *string   `json:"response_preview,omitempty"`
	Reasoning       string    `json:"reasoning"`
	FindingID       *string   `json:"finding_id,omitempty"`
	Timestamp       time.Time `json:"timestamp"`
}

func toAgentLogResponse(l *ent.AgentLog) *AgentLogResponse {
	return &AgentLogResponse{
		ID:              l.ID,
		AssessmentID:    l.AssessmentID,
		Agent:           l.Agent,
		Step:            l.Step,
		Action:          l.Action,
		Target:          l.Target,
		Payload:         l.Payload,
		ResponseCode:    l.ResponseCode,
		ResponsePreview: l.ResponsePreview,
		Reasoning:       l.Reasoning,
		FindingID:       l.FindingID,
		Timestamp:       l.Timestamp,
	}
}

// AgentLogListResponse pages agent logs.
type AgentLogListResponse struct {
	Data       []*AgentLogResponse `json:"data"`
	Pagination models.PageMeta     `json:"pagination"`
}

// TunnelSessionResponse is the wire shape of one tunnel session record.
type TunnelSessionResponse struct {
	ID            string    `json:"id"`
	TargetPort    int       `json:"target_port"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	LastHeartbeat time.Time `json:"last_heartbeat"`
}

func toTunnelSessionResponse(t *ent.TunnelSession) *TunnelSessionResponse {
	return &TunnelSessionResponse{
		ID:            t.ID,
		TargetPort:    t.TargetPort,
		Status:        string(t.Status),
		CreatedAt:     t.CreatedAt,
		LastHeartbeat: t.LastHeartbeat,
	}
}

// TunnelSessionListResponse lists tunnel sessions.
type TunnelSessionListResponse struct {
	Data []*TunnelSessionResponse `json:"data"`
}
