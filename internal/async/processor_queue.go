package async

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/joseph-ayodele/invoice-drafter/constants"
	"github.com/joseph-ayodele/invoice-drafter/internal/common"
	"github.com/joseph-ayodele/invoice-drafter/internal/entity"
)

// Processor drafts one invoice. *invoices.Service satisfies it.
type Processor interface {
	Generate(ctx context.Context, text string) (*entity.InvoiceRecord, error)
}

// ProcessorQueue fans jobs out to a fixed pool of workers. Every enqueued
// job yields exactly one Result; the results channel is closed once the
// queue has been shut down and drained.
type ProcessorQueue struct {
	proc    Processor
	logger  *slog.Logger
	workers int
	timeout time.Duration

	ch      chan Job
	results chan Result
	wg      sync.WaitGroup
	once    sync.Once

	mu     sync.Mutex
	closed bool
}

var _ Queue = (*ProcessorQueue)(nil)

type Option func(*ProcessorQueue)

func WithWorkers(n int) Option {
	return func(q *ProcessorQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}
func WithQueueSize(n int) Option {
	return func(q *ProcessorQueue) {
		if n > 0 {
			q.ch = make(chan Job, n)
			q.results = make(chan Result, n)
		}
	}
}
func WithProcessTimeout(d time.Duration) Option {
	return func(q *ProcessorQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func NewProcessorQueue(proc Processor, logger *slog.Logger, opts ...Option) *ProcessorQueue {
	if logger == nil {
		logger = slog.Default()
	}
	q := &ProcessorQueue{
		proc:    proc,
		logger:  logger,
		workers: 4,
		timeout: 30 * time.Second,
		ch:      make(chan Job, 256),
		results: make(chan Result, 256),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *ProcessorQueue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Debug("batch.worker.started", "worker_id", workerID)

				for job := range q.ch {
					q.results <- q.process(workerID, job)
				}

				q.logger.Debug("batch.worker.stopped", "worker_id", workerID)
			}(i + 1)
		}
		go func() {
			q.wg.Wait()
			close(q.results)
		}()
	})
}

func (q *ProcessorQueue) process(workerID int, job Job) Result {
	ctx, cancel := common.WithTimeout(context.Background(), q.timeout)
	defer cancel()
	ctx = common.WithRequestID(ctx, job.ID.String())

	start := time.Now()
	rec, err := q.proc.Generate(ctx, job.Prompt)
	res := Result{Job: job, Invoice: rec, Duration: time.Since(start)}

	if err != nil {
		res.Status, res.Err, res.Invoice = constants.JobStatusFailed, err, nil
		q.logger.Error("batch.job.failed", "worker_id", workerID, "job_id", job.ID, "source", job.Source, "error", err)
		return res
	}
	res.Status = constants.JobStatusOK
	q.logger.Info("batch.job.ok", "worker_id", workerID, "job_id", job.ID, "source", job.Source,
		"invoice_number", rec.InvoiceNumber, "took", res.Duration)
	return res
}

// Enqueue hands a job to the workers. When the buffer is full it blocks
// until a worker frees a slot or ctx is done.
func (q *ProcessorQueue) Enqueue(ctx context.Context, job Job) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		q.logger.Warn("batch.enqueue.closed", "job_id", job.ID)
		return common.ErrQueueClosed
	}
	select {
	case q.ch <- job:
		q.logger.Debug("batch.job.queued", "job_id", job.ID, "source", job.Source)
		return nil
	default:
	}

	q.logger.Warn("batch.queue.full", "job_id", job.ID)
	select {
	case q.ch <- job:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Results streams one Result per job. Callers must keep draining it or the
// workers stall.
func (q *ProcessorQueue) Results() <-chan Result {
	return q.results
}

// Shutdown stops accepting jobs and waits for queued ones to finish.
func (q *ProcessorQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.ch)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() { defer close(done); q.wg.Wait() }()

	select {
	case <-ctx.Done():
		q.logger.Warn("batch.shutdown.interrupted")
	case <-done:
		q.logger.Info("batch.shutdown.drained")
	}
}
