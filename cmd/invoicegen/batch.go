package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/joseph-ayodele/invoice-drafter/constants"
	"github.com/joseph-ayodele/invoice-drafter/internal/async"
	"github.com/joseph-ayodele/invoice-drafter/internal/entity"
	"github.com/joseph-ayodele/invoice-drafter/internal/ingest"
)

type batchSummary struct {
	OK     int
	Failed int
	Total  decimal.Decimal
}

func (s batchSummary) String() string {
	return fmt.Sprintf("%d ok, %d failed, total %s", s.OK, s.Failed, s.Total.StringFixed(2))
}

func (a *app) newBatchCmd() *cobra.Command {
	var (
		dir           string
		out           string
		workers       int
		exts          []string
		includeHidden bool
	)
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Draft invoices for every prompt in a file or directory",
		Long: `Read prompt files (one prompt per line, '#' starts a comment) and draft
an invoice for each line using a pool of workers.

Examples:
  invoicegen batch --dir ./prompts --out ./out/invoices.xlsx --workers 8`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if out == "" {
				out = filepath.Join(a.cfg.Batch.ExportDir, "invoices.json")
			}
			if workers <= 0 {
				workers = a.cfg.Batch.Workers
			}

			prompts, failures, stats, err := ingest.ReadPrompts(ctx, dir, exts, !includeHidden)
			if err != nil {
				return err
			}
			for _, f := range failures {
				a.logger.Warn("batch.read.failed", "path", f.Path, "error", f.Err)
			}
			a.logger.Info("batch.read.ok", "scanned", stats.Scanned, "files", stats.Matched, "prompts", stats.Prompts)

			recs, summary, err := a.runBatch(ctx, prompts, workers)
			if err != nil {
				return err
			}
			if err := writeRecords(ctx, out, recs, a.logger); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", summary, out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&dir, "dir", "d", "", "prompt file or directory (required)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (.json or .xlsx, default $EXPORT_DIR/invoices.json)")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "number of workers (default $BATCH_WORKERS)")
	cmd.Flags().StringSliceVar(&exts, "ext", nil, "prompt file extensions (default txt,prompt)")
	cmd.Flags().BoolVar(&includeHidden, "include-hidden", false, "read hidden files and directories")
	_ = cmd.MarkFlagRequired("dir")
	return cmd
}

// runBatch pushes prompts through the worker pool and returns the invoices
// in prompt order. Failed prompts are logged and counted, not returned.
func (a *app) runBatch(ctx context.Context, prompts []ingest.Prompt, workers int) ([]entity.InvoiceRecord, batchSummary, error) {
	queue := async.NewProcessorQueue(a.svc, a.logger,
		async.WithWorkers(workers),
		async.WithQueueSize(a.cfg.Batch.QueueSize),
		async.WithProcessTimeout(a.cfg.Batch.JobTimeout),
	)

	jobs := make([]async.Job, len(prompts))
	order := make(map[uuid.UUID]int, len(prompts))
	for i, p := range prompts {
		jobs[i] = async.NewJob(p.Ref(), p.Text)
		order[jobs[i].ID] = i
	}
	byIndex := make([]*entity.InvoiceRecord, len(prompts))
	var summary batchSummary

	collected := make(chan struct{})
	go func() {
		defer close(collected)
		for res := range queue.Results() {
			if res.Status != constants.JobStatusOK {
				summary.Failed++
				continue
			}
			summary.OK++
			summary.Total = summary.Total.Add(decimal.NewFromFloat(res.Invoice.Total))
			byIndex[order[res.Job.ID]] = res.Invoice
		}
	}()

	var enqueueErr error
	for _, job := range jobs {
		if err := queue.Enqueue(ctx, job); err != nil {
			enqueueErr = err
			break
		}
	}
	queue.Shutdown(context.Background())
	<-collected

	if enqueueErr != nil {
		return nil, summary, enqueueErr
	}
	recs := make([]entity.InvoiceRecord, 0, summary.OK)
	for _, r := range byIndex {
		if r != nil {
			recs = append(recs, *r)
		}
	}
	return recs, summary, nil
}

func newExamplesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "examples",
		Short: "Print sample prompts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return printExamples(cmd.OutOrStdout())
		},
	}
}

func printExamples(w io.Writer) error {
	for i, p := range constants.ExamplePrompts {
		if _, err := fmt.Fprintf(w, "%d. %s\n", i+1, strings.TrimSpace(p)); err != nil {
			return err
		}
	}
	return nil
}
