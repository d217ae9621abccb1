// Package queue runs the background workers that pick up queued assessments
// and drive them to a terminal status.
package queue

import (
	"context"

	"github.com/vibecheck/vibecheck/ent"
	"github.com/vibecheck/vibecheck/pkg/models"
)

// Claimer atomically claims the next queued assessment. Implemented by
// services.AssessmentService.
type Claimer interface {
	ClaimNextQueued(ctx context.Context) (*ent.Assessment, error)
}

// Dispatcher routes a claimed assessment to the pipeline for its mode.
// files carries the inline upload for lightweight assessments created
// without a repo URL; nil otherwise.
type Dispatcher interface {
	Dispatch(ctx context.Context, a *ent.Assessment, files []models.SourceFile) error
}

// WorkerStatus is the current state of one worker.
type WorkerStatus string

// Worker status values.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// WorkerHealth is one worker's health snapshot.
type WorkerHealth struct {
	ID                  string       `json:"id"`
	Status              WorkerStatus `json:"status"`
	CurrentAssessmentID string       `json:"current_assessment_id,omitempty"`
	Processed           int          `json:"processed"`
}

// PoolHealth is the pool-wide health snapshot surfaced by the health
// endpoint.
type PoolHealth struct {
	TotalWorkers  int            `json:"total_workers"`
	ActiveWorkers int            `json:"active_workers"`
	Workers       []WorkerHealth `json:"workers"`
}
