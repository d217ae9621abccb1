package queue

import (
	"context"
	"fmt"

	"github.com/vibecheck/vibecheck/ent"
	"github.com/vibecheck/vibecheck/pkg/models"
	"github.com/vibecheck/vibecheck/pkg/scan/robust"
	"github.com/vibecheck/vibecheck/pkg/scan/static"
)

// ModeDispatcher routes claimed assessments to the pipeline for their mode.
type ModeDispatcher struct {
	Lightweight *static.Runner
	Robust      *robust.Orchestrator
}

// Dispatch runs the assessment's pipeline to a terminal status.
func (d *ModeDispatcher) Dispatch(ctx context.Context, a *ent.Assessment, files []models.SourceFile) error {
	switch string(a.Mode) {
	case models.ModeLightweight:
		return d.Lightweight.Run(ctx, a, files)
	case models.ModeRobust:
		return d.Robust.Run(ctx, a)
	default:
		return fmt.Errorf("unknown assessment mode %q", a.Mode)
	}
}
