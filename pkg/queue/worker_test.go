package queue

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vibecheck/vibecheck/ent"
	"github.com/vibecheck/vibecheck/ent/assessment"
	"github.com/vibecheck/vibecheck/pkg/models"
)

// stubClaimer pops assessments in order; an empty queue means idle.
type stubClaimer struct {
	mu     sync.Mutex
	queued []*ent.Assessment
	err    error
}

func (c *stubClaimer) ClaimNextQueued(context.Context) (*ent.Assessment, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return nil, c.err
	}
	if len(c.queued) == 0 {
		return nil, nil
	}
	next := c.queued[0]
	c.queued = c.queued[1:]
	return next, nil
}

type dispatched struct {
	assessmentID string
	files        []models.SourceFile
}

// stubDispatcher records each dispatch.
type stubDispatcher struct {
	mu   sync.Mutex
	got  []dispatched
	fail error
}

func (d *stubDispatcher) Dispatch(_ context.Context, a *ent.Assessment, files []models.SourceFile) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.got = append(d.got, dispatched{assessmentID: a.ID, files: files})
	return d.fail
}

func (d *stubDispatcher) count() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.got)
}

func queuedAssessment(id string) *ent.Assessment {
	return &ent.Assessment{
		ID:     id,
		Mode:   assessment.ModeLightweight,
		Status: assessment.StatusAnalyzing,
	}
}

func TestWorkerProcessesQueuedAssessments(t *testing.T) {
	claimer := &stubClaimer{queued: []*ent.Assessment{
		queuedAssessment("asm_1"),
		queuedAssessment("asm_2"),
	}}
	disp := &stubDispatcher{}

	w := NewWorker("w-0", claimer, disp, nil, slog.Default())
	w.pollInterval = 10 * time.Millisecond
	w.Start(context.Background())
	defer w.Stop()

	require.Eventually(t, func() bool { return disp.count() == 2 },
		2*time.Second, 10*time.Millisecond)

	disp.mu.Lock()
	defer disp.mu.Unlock()
	assert.Equal(t, "asm_1", disp.got[0].assessmentID)
	assert.Equal(t, "asm_2", disp.got[1].assessmentID)
}

func TestWorkerContinuesAfterDispatchError(t *testing.T) {
	claimer := &stubClaimer{queued: []*ent.Assessment{
		queuedAssessment("asm_bad"),
		queuedAssessment("asm_good"),
	}}
	disp := &stubDispatcher{fail: errors.New("pipeline blew up")}

	w := NewWorker("w-0", claimer, disp, nil, slog.Default())
	w.pollInterval = 10 * time.Millisecond
	w.Start(context.Background())
	defer w.Stop()

	require.Eventually(t, func() bool { return disp.count() == 2 },
		2*time.Second, 10*time.Millisecond)

	health := w.Health()
	assert.Equal(t, WorkerStatusIdle, health.Status)
	assert.Equal(t, 2, health.Processed)
}

func TestWorkerStopsCleanlyWhileIdle(t *testing.T) {
	claimer := &stubClaimer{}
	w := NewWorker("w-0", claimer, &stubDispatcher{}, nil, slog.Default())
	w.Start(context.Background())

	done := make(chan struct{})
	go func() {
		w.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("worker did not stop")
	}

	w.Stop()
}

func TestWorkerHandsUploadToDispatcher(t *testing.T) {
	files := []models.SourceFile{{Path: "app.py", Content: "print('x')"}}
	pool := NewPool(0, nil, nil, slog.Default())
	pool.RegisterFiles("asm_inline", files)

	claimer := &stubClaimer{queued: []*ent.Assessment{queuedAssessment("asm_inline")}}
	disp := &stubDispatcher{}

	w := NewWorker("w-0", claimer, disp, pool, slog.Default())
	w.pollInterval = 10 * time.Millisecond
	w.Start(context.Background())
	defer w.Stop()

	require.Eventually(t, func() bool { return disp.count() == 1 },
		2*time.Second, 10*time.Millisecond)

	disp.mu.Lock()
	defer disp.mu.Unlock()
	assert.Equal(t, files, disp.got[0].files)
	assert.Nil(t, pool.TakeFiles("asm_inline"), "upload is consumed on claim")
}
