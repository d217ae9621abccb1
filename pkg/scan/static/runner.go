package static

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vibecheck/vibecheck/ent"
	"github.com/vibecheck/vibecheck/pkg/models"
	"github.com/vibecheck/vibecheck/pkg/services"
)

// AssessmentStore is the slice of the assessment service the runner writes
// status transitions through.
type AssessmentStore interface {
	SetStatus(ctx context.Context, id string, status string) error
	Complete(ctx context.Context, id string, counts map[string]int) error
	Fail(ctx context.Context, id, errType, errMessage string) error
}

// FindingStore persists analyzer findings. Implemented by
// services.FindingService.
type FindingStore interface {
	SaveAll(ctx context.Context, assessmentID, agent string, recs []models.FindingRecord) (models.FindingCounts, error)
}

// Runner drives the lightweight pipeline for one claimed assessment.
type Runner struct {
	assessments AssessmentStore
	findings    FindingStore

	cloneDir string

	// clone acquires a repository's files; swapped in tests.
	clone func(ctx context.Context, cloneDir, repoURL, assessmentID string) ([]models.SourceFile, error)

	// contextual is nil when no OpenAI key is configured.
	contextual *ContextualAnalyzer

	logger *slog.Logger
}

// NewRunner wires a lightweight runner.
func NewRunner(
	assessments AssessmentStore,
	findings FindingStore,
	cloneDir string,
	contextual *ContextualAnalyzer,
	logger *slog.Logger,
) *Runner {
	return &Runner{
		assessments: assessments,
		findings:    findings,
		cloneDir:    cloneDir,
		clone:       CloneAndReadRepo,
		contextual:  contextual,
		logger:      logger,
	}
}

// Run executes the lightweight pipeline. Terminal status is always
// persisted; the returned error is for worker logging only.
func (r *Runner) Run(ctx context.Context, a *ent.Assessment, uploaded []models.SourceFile) error {
	var files []models.SourceFile

	if a.RepoURL != nil && *a.RepoURL != "" {
		defer CleanupClone(r.cloneDir, a.ID)
		var err error
		files, err = r.clone(ctx, r.cloneDir, *a.RepoURL, a.ID)
		if err != nil {
			return r.fail(ctx, a.ID, err)
		}
		if err := r.assessments.SetStatus(ctx, a.ID, models.StatusAnalyzing); err != nil {
			return fmt.Errorf("failed to mark assessment %s analyzing: %w", a.ID, err)
		}
	} else {
		files = uploaded
	}

	info := DetectProjectInfo(files)
	r.logger.Info("project detected",
		"assessment_id", a.ID,
		"language", info.Language,
		"framework", info.Framework,
		"files", len(files))

	var all []models.FindingRecord
	all = append(all, ScanDependencies(info)...)
	all = append(all, ScanPatterns(files)...)
	all = append(all, ScanSecrets(files)...)
	all = append(all, ScanConfig(files, info)...)

	if r.contextual != nil {
		contextualFindings, err := r.contextual.Scan(ctx, files, info)
		if err != nil {
			// The contextual pass is best-effort; the assessment proceeds
			// on the analyzer findings alone.
			r.logger.Warn("contextual analysis skipped", "assessment_id", a.ID, "error", err)
		} else {
			all = append(all, contextualFindings...)
		}
	}

	counts, err := r.findings.SaveAll(ctx, a.ID, "static", all)
	if err != nil {
		return r.fail(ctx, a.ID, err)
	}
	if err := r.assessments.Complete(ctx, a.ID, counts.AsMap()); err != nil {
		return fmt.Errorf("failed to complete assessment %s: %w", a.ID, err)
	}

	r.logger.Info("lightweight scan complete",
		"assessment_id", a.ID,
		"findings", counts.Total)
	return nil
}

// fail maps the error to its code (SCAN_ERROR when untyped) and persists the
// failed status.
func (r *Runner) fail(ctx context.Context, id string, cause error) error {
	errType := "SCAN_ERROR"
	message := cause.Error()
	if svcErr, ok := services.AsError(cause); ok {
		errType = svcErr.Code
		message = svcErr.Message
	}
	if err := r.assessments.Fail(ctx, id, errType, message); err != nil {
		return fmt.Errorf("failed to mark assessment %s failed: %w", id, err)
	}
	return fmt.Errorf("assessment %s failed: %s", id, errType)
}

// Compile-time wiring checks for the concrete services.
var (
	_ AssessmentStore = (*services.AssessmentService)(nil)
	_ FindingStore    = (*services.FindingService)(nil)
)
