package export

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/invoice-drafter/internal/entity"
	"github.com/joseph-ayodele/invoice-drafter/internal/utils"
)

const (
	invoiceSheet = "Invoices"
	itemSheet    = "Line Items"
	notesWidth   = 140
)

var (
	invoiceHeaders = []string{
		"Invoice Number",
		"Issue Date",
		"Due Date",
		"Client",
		"Client Email",
		"Client Address",
		"Business",
		"Business Email",
		"Business Address",
		"Subtotal",
		"Tax Rate",
		"Tax",
		"Total",
		"Notes",
	}
	itemHeaders = []string{
		"Invoice Number",
		"Description",
		"Quantity",
		"Rate",
		"Amount",
	}
)

// Service renders invoice records into export formats.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// InvoicesXLSX returns an XLSX workbook (as bytes) with one row per invoice
// on the Invoices sheet and one row per line item on the Line Items sheet.
func (s *Service) InvoicesXLSX(ctx context.Context, recs []entity.InvoiceRecord) ([]byte, error) {
	start := time.Now()

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	// the default "Sheet1" becomes the invoices sheet
	if err := f.SetSheetName(f.GetSheetName(0), invoiceSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(itemSheet); err != nil {
		return nil, fmt.Errorf("new sheet: %w", err)
	}
	activeIndex, _ := f.GetSheetIndex(invoiceSheet)
	f.SetActiveSheet(activeIndex)

	if err := writeRow(f, invoiceSheet, 1, toAny(invoiceHeaders)); err != nil {
		return nil, err
	}
	if err := writeRow(f, itemSheet, 1, toAny(itemHeaders)); err != nil {
		return nil, err
	}

	row, itemRow := 2, 2
	for _, r := range recs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		values := []any{
			r.InvoiceNumber,
			r.IssueDate,
			r.DueDate,
			r.ClientName,
			r.ClientEmail,
			r.ClientAddress,
			r.BusinessName,
			r.BusinessEmail,
			r.BusinessAddress,
			Money(r.Subtotal),
			r.TaxRate,
			Money(r.Tax),
			Money(r.Total),
			utils.Truncate(r.Notes, notesWidth),
		}
		if err := writeRow(f, invoiceSheet, row, values); err != nil {
			return nil, err
		}
		row++

		for _, it := range r.LineItems {
			values := []any{r.InvoiceNumber, it.Description, it.Quantity, Money(it.Rate), Money(it.Amount)}
			if err := writeRow(f, itemSheet, itemRow, values); err != nil {
				return nil, err
			}
			itemRow++
		}
	}

	// Widen a few columns
	_ = f.SetColWidth(invoiceSheet, "A", "C", 14) // number, dates
	_ = f.SetColWidth(invoiceSheet, "D", "I", 26) // parties
	_ = f.SetColWidth(invoiceSheet, "J", "M", 12) // amounts
	_ = f.SetColWidth(invoiceSheet, "N", "N", 48) // notes
	_ = f.SetColWidth(itemSheet, "A", "A", 14)
	_ = f.SetColWidth(itemSheet, "B", "B", 40)
	_ = f.SetColWidth(itemSheet, "C", "E", 12)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"invoices", len(recs),
		"line_items", itemRow-2,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// WriteJSON writes records as an indented JSON array.
func WriteJSON(w io.Writer, recs []entity.InvoiceRecord) error {
	if recs == nil {
		recs = []entity.InvoiceRecord{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(recs); err != nil {
		return fmt.Errorf("json write: %w", err)
	}
	return nil
}

// Money rounds a currency value to cents.
func Money(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("write %s row %d: %w", sheet, row, err)
	}
	return nil
}

func toAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
