package queue

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/vibecheck/vibecheck/pkg/models"
)

// defaultPollInterval is the idle wait between claim attempts.
const defaultPollInterval = time.Second

// pollJitter spreads concurrent workers so they do not claim in lockstep.
const pollJitter = 250 * time.Millisecond

// errorBackoff is the wait after a claim or dispatch infrastructure error.
const errorBackoff = time.Second

// uploadSource hands the worker the inline upload for an assessment, if one
// was registered at enqueue time. Implemented by Pool.
type uploadSource interface {
	TakeFiles(assessmentID string) []models.SourceFile
}

// Worker polls for queued assessments and dispatches them one at a time.
type Worker struct {
	id         string
	claimer    Claimer
	dispatcher Dispatcher
	uploads    uploadSource
	logger     *slog.Logger

	pollInterval time.Duration
	stopCh       chan struct{}
	stopOnce     sync.Once
	wg           sync.WaitGroup

	mu        sync.RWMutex
	status    WorkerStatus
	currentID string
	processed int
}

// NewWorker creates a queue worker. uploads may be nil when inline uploads
// are not in play (tests).
func NewWorker(id string, claimer Claimer, dispatcher Dispatcher, uploads uploadSource, logger *slog.Logger) *Worker {
	return &Worker{
		id:           id,
		claimer:      claimer,
		dispatcher:   dispatcher,
		uploads:      uploads,
		logger:       logger.With("worker_id", id),
		pollInterval: defaultPollInterval,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
	}
}

// Start begins the polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for the current assessment to
// finish. Safe to call multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the worker's current health snapshot.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:                  w.id,
		Status:              w.status,
		CurrentAssessmentID: w.currentID,
		Processed:           w.processed,
	}
}

func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	w.logger.Info("worker started")
	for {
		select {
		case <-w.stopCh:
			w.logger.Info("worker shutting down")
			return
		case <-ctx.Done():
			w.logger.Info("context cancelled, worker shutting down")
			return
		default:
			claimed, err := w.pollAndProcess(ctx)
			if err != nil {
				w.logger.Error("queue poll failed", "error", err)
				w.sleep(errorBackoff)
				continue
			}
			if !claimed {
				w.sleep(w.nextPoll())
			}
		}
	}
}

// pollAndProcess claims one queued assessment and runs it to a terminal
// status. Returns false when nothing was queued.
func (w *Worker) pollAndProcess(ctx context.Context) (bool, error) {
	a, err := w.claimer.ClaimNextQueued(ctx)
	if err != nil {
		return false, err
	}
	if a == nil {
		return false, nil
	}

	log := w.logger.With("assessment_id", a.ID, "mode", a.Mode)
	log.Info("assessment claimed")

	w.setStatus(WorkerStatusWorking, a.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	var files []models.SourceFile
	if w.uploads != nil {
		files = w.uploads.TakeFiles(a.ID)
	}

	// The dispatcher persists the terminal status itself; an error here is
	// informational for the worker log.
	if err := w.dispatcher.Dispatch(ctx, a, files); err != nil {
		log.Error("assessment failed", "error", err)
	} else {
		log.Info("assessment complete")
	}

	w.mu.Lock()
	w.processed++
	w.mu.Unlock()
	return true, nil
}

// sleep waits for d or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// nextPoll returns the poll interval with jitter in [base-jitter, base+jitter].
func (w *Worker) nextPoll() time.Duration {
	offset := time.Duration(rand.Int64N(int64(2 * pollJitter)))
	return w.pollInterval - pollJitter + offset
}

func (w *Worker) setStatus(status WorkerStatus, assessmentID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentID = assessmentID
}
