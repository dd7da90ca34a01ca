package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joseph-ayodele/invoice-drafter/constants"
	"github.com/joseph-ayodele/invoice-drafter/internal/ingest"
)

func (a *app) newWatchCmd() *cobra.Command {
	var (
		dir     string
		out     string
		format  string
		exts    []string
		initial bool
	)
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Draft invoices for prompt files dropped into a folder",
		Long: `Watch a folder (recursively) and draft invoices for every prompt file
that is created or saved. Each prompt file produces one output file named
after it in --out. Stops on Ctrl-C.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if out == "" {
				out = a.cfg.Batch.ExportDir
			}
			fmtExt := constants.NormalizeExt(format)
			if fmtExt != string(constants.FormatJSON) && fmtExt != string(constants.FormatXLSX) {
				return fmt.Errorf("unsupported format %q", format)
			}

			events, errs, err := ingest.StartWatcher(cmd.Context(), ingest.WatchConfig{
				Roots:       []string{dir},
				AllowedExts: ingest.ExtSet(exts),
				InitialScan: initial,
				Debounce:    a.cfg.Batch.WatchDebounce,
				Logger:      a.logger,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "watching %s -> %s\n", dir, out)

			for {
				select {
				case path, ok := <-events:
					if !ok {
						return nil
					}
					target := outputPath(out, path, fmtExt)
					if err := a.processPromptFile(cmd.Context(), path, target); err != nil {
						a.logger.Error("watch.file.failed", "path", path, "error", err)
						continue
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", path, target)
				case err, ok := <-errs:
					if !ok {
						errs = nil
						continue
					}
					a.logger.Warn("watch.error", "error", err)
				}
			}
		},
	}
	cmd.Flags().StringVarP(&dir, "dir", "d", "", "folder to watch (required)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output folder (default $EXPORT_DIR)")
	cmd.Flags().StringVar(&format, "format", string(constants.FormatJSON), "output format (json or xlsx)")
	cmd.Flags().StringSliceVar(&exts, "ext", nil, "prompt file extensions (default txt,prompt)")
	cmd.Flags().BoolVar(&initial, "initial", false, "also process files already in the folder")
	_ = cmd.MarkFlagRequired("dir")
	return cmd
}

// processPromptFile drafts every prompt in path and writes them to target.
func (a *app) processPromptFile(ctx context.Context, path, target string) error {
	prompts, err := ingest.ReadPromptFile(path)
	if err != nil {
		return err
	}
	if len(prompts) == 0 {
		a.logger.Info("watch.file.empty", "path", path)
		return nil
	}
	recs, summary, err := a.runBatch(ctx, prompts, a.cfg.Batch.Workers)
	if err != nil {
		return err
	}
	a.logger.Info("watch.file.ok", "path", path, "summary", summary.String())
	return writeRecords(ctx, target, recs, a.logger)
}

// outputPath maps prompts/acme.txt to <outDir>/acme.<ext>.
func outputPath(outDir, promptPath, ext string) string {
	base := strings.TrimSuffix(filepath.Base(promptPath), filepath.Ext(promptPath))
	return filepath.Join(outDir, base+"."+ext)
}
