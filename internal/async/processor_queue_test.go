package async

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/invoice-drafter/constants"
	"github.com/joseph-ayodele/invoice-drafter/internal/common"
	"github.com/joseph-ayodele/invoice-drafter/internal/entity"
)

type fakeProcessor struct {
	calls atomic.Int32
	block chan struct{}
}

func (f *fakeProcessor) Generate(ctx context.Context, text string) (*entity.InvoiceRecord, error) {
	f.calls.Add(1)
	if f.block != nil {
		select {
		case <-f.block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if text == "fail" {
		return nil, errors.New("boom")
	}
	return &entity.InvoiceRecord{InvoiceNumber: "INV-" + text, Notes: common.RequestIDFromContext(ctx)}, nil
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestProcessorQueue_ProcessesAllJobs(t *testing.T) {
	proc := &fakeProcessor{}
	q := NewProcessorQueue(proc, quietLogger(), WithWorkers(3), WithQueueSize(8))

	prompts := []string{"a", "b", "fail", "c"}
	for _, p := range prompts {
		require.NoError(t, q.Enqueue(context.Background(), NewJob("test", p)))
	}
	q.Shutdown(context.Background())

	byPrompt := map[string]Result{}
	for res := range q.Results() {
		byPrompt[res.Job.Prompt] = res
	}

	require.Len(t, byPrompt, len(prompts))
	assert.Equal(t, int32(4), proc.calls.Load())

	ok := byPrompt["a"]
	assert.Equal(t, constants.JobStatusOK, ok.Status)
	require.NotNil(t, ok.Invoice)
	assert.Equal(t, "INV-a", ok.Invoice.InvoiceNumber)
	assert.Equal(t, ok.Job.ID.String(), ok.Invoice.Notes)

	failed := byPrompt["fail"]
	assert.Equal(t, constants.JobStatusFailed, failed.Status)
	assert.Nil(t, failed.Invoice)
	assert.EqualError(t, failed.Err, "boom")
}

func TestProcessorQueue_EnqueueAfterShutdown(t *testing.T) {
	q := NewProcessorQueue(&fakeProcessor{}, quietLogger())
	q.Shutdown(context.Background())
	q.Shutdown(context.Background())

	err := q.Enqueue(context.Background(), NewJob("test", "late"))
	assert.ErrorIs(t, err, common.ErrQueueClosed)

	_, open := <-q.Results()
	assert.False(t, open)
}

func TestProcessorQueue_JobTimeout(t *testing.T) {
	proc := &fakeProcessor{block: make(chan struct{})}
	q := NewProcessorQueue(proc, quietLogger(), WithWorkers(1), WithProcessTimeout(20*time.Millisecond))

	require.NoError(t, q.Enqueue(context.Background(), NewJob("test", "slow")))
	res := <-q.Results()

	assert.Equal(t, constants.JobStatusFailed, res.Status)
	assert.ErrorIs(t, res.Err, context.DeadlineExceeded)
	q.Shutdown(context.Background())
}

func TestProcessorQueue_EnqueueRespectsContextWhenFull(t *testing.T) {
	proc := &fakeProcessor{block: make(chan struct{})}
	q := NewProcessorQueue(proc, quietLogger(), WithWorkers(1), WithQueueSize(1), WithProcessTimeout(time.Minute))

	// one job held by the worker, one filling the buffer
	require.NoError(t, q.Enqueue(context.Background(), NewJob("test", "first")))
	require.Eventually(t, func() bool { return proc.calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	require.NoError(t, q.Enqueue(context.Background(), NewJob("test", "second")))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := q.Enqueue(ctx, NewJob("test", "third"))
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	close(proc.block)
	first, second := <-q.Results(), <-q.Results()
	assert.Equal(t, constants.JobStatusOK, first.Status)
	assert.Equal(t, constants.JobStatusOK, second.Status)

	q.Shutdown(context.Background())
	_, open := <-q.Results()
	assert.False(t, open)
}
