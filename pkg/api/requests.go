package api

import (
	"github.com/vibecheck/vibecheck/pkg/models"
)

// CreateAssessmentRequest is the POST /v1/assessments body.
type CreateAssessmentRequest struct {
	Mode            string              `json:"mode"`
	RepoURL         string              `json:"repo_url"`
	Files           []models.SourceFile `json:"files"`
	TargetURL       string              `json:"target_url"`
	TunnelSessionID string              `json:"tunnel_session_id"`
	Agents          []string            `json:"agents"`
	Depth           string              `json:"depth"`
	IdempotencyKey  string              `json:"idempotency_key"`
}

func (r *CreateAssessmentRequest) toInput() models.CreateAssessmentInput {
	return models.CreateAssessmentInput{
		Mode:            r.Mode,
		RepoURL:         r.RepoURL,
		Files:           r.Files,
		TargetURL:       r.TargetURL,
		TunnelSessionID: r.TunnelSessionID,
		Agents:          r.Agents,
		Depth:           r.Depth,
		IdempotencyKey:  r.IdempotencyKey,
	}
}

// RerunAssessmentRequest is the optional POST /v1/assessments/:id/rerun body.
// Omitted fields keep the assessment's current values.
type RerunAssessmentRequest struct {
	Agents         []string `json:"agents"`
	IdempotencyKey *string  `json:"idempotency_key"`
}
