package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joseph-ayodele/invoice-drafter/internal/common"
	"github.com/joseph-ayodele/invoice-drafter/internal/entity"
)

func (a *app) newParseCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "parse [text]",
		Short: "Draft one invoice from a description",
		Long: `Draft one invoice from a description given as arguments or on stdin.

Examples:
  # Print the record as JSON
  invoicegen parse "Logo design project: $800, client: Mike Wilson, due in 14 days"

  # Read the prompt from stdin and write a workbook
  echo "Website redesign $1000 for Acme Corp" | invoicegen parse --out invoice.xlsx`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := promptFromArgs(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			if err := common.CheckInputSize(text, a.cfg.Invoice.MaxInputChars); err != nil {
				return err
			}
			rec, err := a.svc.Generate(cmd.Context(), text)
			if err != nil {
				return err
			}
			if out != "" {
				if err := writeRecords(cmd.Context(), out, []entity.InvoiceRecord{*rec}, a.logger); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s to %s\n", rec.InvoiceNumber, out)
				return nil
			}
			return printJSON(cmd.OutOrStdout(), rec)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "write to a file instead of stdout (.json or .xlsx)")
	return cmd
}

func (a *app) newReviseCmd() *cobra.Command {
	var in, out string
	cmd := &cobra.Command{
		Use:   "revise",
		Short: "Recalculate an edited invoice record",
		Long: `Validate an edited invoice record (JSON) and recompute line amounts,
subtotal, tax and total. Use --in - to read from stdin.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			raw, err := readInput(cmd.InOrStdin(), in)
			if err != nil {
				return err
			}
			rec, err := a.svc.ReviseJSON(cmd.Context(), raw)
			if err != nil {
				return err
			}
			if out != "" {
				return writeRecords(cmd.Context(), out, []entity.InvoiceRecord{*rec}, a.logger)
			}
			return printJSON(cmd.OutOrStdout(), rec)
		},
	}
	cmd.Flags().StringVarP(&in, "in", "i", "", "edited record (JSON file, or - for stdin)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "write to a file instead of stdout (.json or .xlsx)")
	_ = cmd.MarkFlagRequired("in")
	return cmd
}

func promptFromArgs(stdin io.Reader, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	raw, err := io.ReadAll(stdin)
	if err != nil {
		return "", common.WrapError(err, "read stdin")
	}
	return strings.TrimSpace(string(raw)), nil
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		raw, err := io.ReadAll(stdin)
		if err != nil {
			return nil, common.WrapError(err, "read stdin")
		}
		return raw, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, common.WrapError(err, "read input")
	}
	return raw, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
