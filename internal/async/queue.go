package async

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/joseph-ayodele/invoice-drafter/constants"
	"github.com/joseph-ayodele/invoice-drafter/internal/entity"
)

// Job is one prompt waiting to be turned into an invoice.
type Job struct {
	ID          uuid.UUID
	Source      string // file path and line, or "stdin"
	Prompt      string
	SubmittedAt time.Time
}

// NewJob stamps a prompt with a fresh id and submission time.
func NewJob(source, prompt string) Job {
	return Job{
		ID:          uuid.New(),
		Source:      source,
		Prompt:      prompt,
		SubmittedAt: time.Now(),
	}
}

// Result is the outcome of one job. Invoice is nil when Status is FAILED.
type Result struct {
	Job      Job
	Invoice  *entity.InvoiceRecord
	Status   constants.JobStatus
	Err      error
	Duration time.Duration
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Results() <-chan Result
	Shutdown(ctx context.Context)
}
