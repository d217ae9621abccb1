package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/vibecheck/vibecheck/pkg/models"
)

// Pool manages the queue workers and the inline-upload registry. Uploaded
// source files for lightweight assessments are never persisted; the API
// handler registers them here at enqueue time and the claiming worker takes
// them at dispatch.
type Pool struct {
	claimer    Claimer
	dispatcher Dispatcher
	workers    []*Worker
	count      int
	logger     *slog.Logger

	mu      sync.Mutex
	uploads map[string][]models.SourceFile
	started bool
}

// NewPool creates a worker pool with count workers.
func NewPool(count int, claimer Claimer, dispatcher Dispatcher, logger *slog.Logger) *Pool {
	return &Pool{
		claimer:    claimer,
		dispatcher: dispatcher,
		workers:    make([]*Worker, 0, count),
		count:      count,
		logger:     logger,
		uploads:    make(map[string][]models.SourceFile),
	}
}

// Start spawns the worker goroutines. Safe to call multiple times; duplicate
// calls are no-ops.
func (p *Pool) Start(ctx context.Context) {
	p.mu.Lock()
	if p.started {
		p.mu.Unlock()
		p.logger.Warn("worker pool already started, ignoring duplicate Start call")
		return
	}
	p.started = true
	p.mu.Unlock()

	p.logger.Info("starting worker pool", "worker_count", p.count)
	for i := 0; i < p.count; i++ {
		worker := NewWorker(fmt.Sprintf("worker-%d", i), p.claimer, p.dispatcher, p, p.logger)
		p.workers = append(p.workers, worker)
		worker.Start(ctx)
	}
}

// Stop signals all workers to stop and waits for in-flight assessments to
// finish.
func (p *Pool) Stop() {
	p.logger.Info("stopping worker pool")
	for _, worker := range p.workers {
		worker.Stop()
	}
	p.logger.Info("worker pool stopped")
}

// RegisterFiles stores the inline upload for an assessment until a worker
// claims it.
func (p *Pool) RegisterFiles(assessmentID string, files []models.SourceFile) {
	if len(files) == 0 {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.uploads[assessmentID] = files
}

// TakeFiles removes and returns the registered upload for an assessment.
// Returns nil when none was registered.
func (p *Pool) TakeFiles(assessmentID string) []models.SourceFile {
	p.mu.Lock()
	defer p.mu.Unlock()
	files, ok := p.uploads[assessmentID]
	if !ok {
		return nil
	}
	delete(p.uploads, assessmentID)
	return files
}

// DropFiles discards a registered upload, used when an assessment is deleted
// before a worker picks it up.
func (p *Pool) DropFiles(assessmentID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.uploads, assessmentID)
}

// Health returns the pool-wide health snapshot.
func (p *Pool) Health() PoolHealth {
	workers := make([]WorkerHealth, len(p.workers))
	active := 0
	for i, worker := range p.workers {
		workers[i] = worker.Health()
		if workers[i].Status == WorkerStatusWorking {
			active++
		}
	}
	return PoolHealth{
		TotalWorkers:  len(p.workers),
		ActiveWorkers: active,
		Workers:       workers,
	}
}
