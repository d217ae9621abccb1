package queue

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vibecheck/vibecheck/ent"
	"github.com/vibecheck/vibecheck/pkg/models"
)

func TestPoolStartStop(t *testing.T) {
	claimer := &stubClaimer{queued: []*ent.Assessment{queuedAssessment("asm_1")}}
	disp := &stubDispatcher{}

	p := NewPool(3, claimer, disp, slog.Default())
	p.Start(context.Background())
	p.Start(context.Background()) // duplicate Start is a no-op

	require.Eventually(t, func() bool { return disp.count() == 1 },
		2*time.Second, 10*time.Millisecond)

	health := p.Health()
	assert.Equal(t, 3, health.TotalWorkers)
	assert.Len(t, health.Workers, 3)

	p.Stop()
}

func TestPoolUploadRegistry(t *testing.T) {
	p := NewPool(0, nil, nil, slog.Default())

	files := []models.SourceFile{{Path: "main.js", Content: "eval(x)"}}
	p.RegisterFiles("asm_a", files)
	p.RegisterFiles("asm_empty", nil)

	assert.Equal(t, files, p.TakeFiles("asm_a"))
	assert.Nil(t, p.TakeFiles("asm_a"), "take is one-shot")
	assert.Nil(t, p.TakeFiles("asm_empty"))
	assert.Nil(t, p.TakeFiles("asm_unknown"))

	p.RegisterFiles("asm_b", files)
	p.DropFiles("asm_b")
	assert.Nil(t, p.TakeFiles("asm_b"))
}
