// Package main implements the invoicegen CLI for drafting invoices from
// prompts on the command line, in batches or from a watched folder.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/joseph-ayodele/invoice-drafter/internal/common"
	"github.com/joseph-ayodele/invoice-drafter/internal/extract"
	"github.com/joseph-ayodele/invoice-drafter/internal/invoices"
)

var version = "dev"

// app holds what every subcommand needs once flags and env are loaded.
type app struct {
	cfg    *common.Config
	logger *slog.Logger
	svc    *invoices.Service

	logLevel string
	timezone string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "invoicegen",
		Short: "Draft invoices from plain-language descriptions",
		Long: `invoicegen turns free-form descriptions like
"Invoice for Sarah Johnson, 5 hours of consulting at $150/hour, due next week"
into structured invoice records (JSON or XLSX).`,
		Version:       version,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&a.timezone, "tz", "", "timezone for issue and due dates (overrides INVOICE_TIMEZONE)")

	root.AddCommand(
		a.newParseCmd(),
		a.newReviseCmd(),
		a.newBatchCmd(),
		a.newWatchCmd(),
		newExamplesCmd(),
	)
	return root
}

func (a *app) setup(cmd *cobra.Command) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return common.WrapError(err, "load .env")
	}

	a.logger = slog.New(slog.NewJSONHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: parseLevel(a.logLevel)}))
	slog.SetDefault(a.logger)

	a.cfg = common.LoadConfig()
	if a.timezone != "" {
		a.cfg.Invoice.Timezone = a.timezone
	}
	if err := a.cfg.Validate(); err != nil {
		return err
	}
	loc, err := a.cfg.Location()
	if err != nil {
		return err
	}

	gen := extract.NewGenerator(extract.WithLocation(loc))
	a.svc = invoices.NewService(gen, nil, a.logger)
	return nil
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
