package invoices

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/joseph-ayodele/invoice-drafter/internal/common"
	"github.com/joseph-ayodele/invoice-drafter/internal/entity"
	"github.com/joseph-ayodele/invoice-drafter/internal/extract"
	"github.com/joseph-ayodele/invoice-drafter/internal/schema"
)

// Revision outcomes reported to metrics.
const (
	OutcomeOK        = "ok"
	OutcomeInvalid   = "invalid"
	OutcomeMalformed = "malformed"
)

// Generator turns a prompt into an invoice record.
type Generator interface {
	Generate(text string) (entity.InvoiceRecord, extract.Trace)
}

var _ Generator = (*extract.Generator)(nil)

// Service handles invoice drafting and revision.
type Service struct {
	gen     Generator
	metrics *Metrics
	logger  *slog.Logger
}

// NewService creates a new invoice service. metrics may be nil.
func NewService(gen Generator, metrics *Metrics, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		gen:     gen,
		metrics: metrics,
		logger:  logger,
	}
}

// Generate drafts an invoice from free-form text. Extraction never fails, so
// the only error is a context that is already done.
func (s *Service) Generate(ctx context.Context, text string) (*entity.InvoiceRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, status.FromContextError(err).Err()
	}
	logger := common.LoggerFromContext(ctx, s.logger)

	start := time.Now()
	rec, trace := s.gen.Generate(text)
	took := time.Since(start)
	s.metrics.observeGenerate(trace.LineItems, took)

	logger.Info("invoice.generate.ok",
		"invoice_number", rec.InvoiceNumber,
		"client_source", trace.ClientName,
		"business_source", trace.BusinessName,
		"items_source", trace.LineItems,
		"items", len(rec.LineItems),
		"total", rec.Total,
		"took", took,
	)
	return &rec, nil
}

// Revise validates an edited record and recomputes every derived amount.
func (s *Service) Revise(ctx context.Context, rec *entity.InvoiceRecord) (*entity.InvoiceRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, status.FromContextError(err).Err()
	}
	logger := common.LoggerFromContext(ctx, s.logger)

	if rec == nil {
		s.metrics.observeRevise(OutcomeMalformed)
		return nil, status.Error(codes.InvalidArgument, "invoice is required")
	}
	if err := common.ValidateAndReturnError(validateRecord(rec)); err != nil {
		s.metrics.observeRevise(OutcomeInvalid)
		logger.Warn("invoice.revise.invalid", "invoice_number", rec.InvoiceNumber, "error", err)
		return nil, common.ToStatus(err)
	}

	out := *rec
	out.LineItems = append([]entity.LineItem(nil), rec.LineItems...)
	if rec.Discount != nil {
		d := *rec.Discount
		out.Discount = &d
	}
	out.Recalculate()

	s.metrics.observeRevise(OutcomeOK)
	logger.Info("invoice.revise.ok", "invoice_number", out.InvoiceNumber, "items", len(out.LineItems), "total", out.Total)
	return &out, nil
}

// ReviseJSON normalizes a serialized record, checks it against the invoice
// schema and then revises it.
func (s *Service) ReviseJSON(ctx context.Context, raw []byte) (*entity.InvoiceRecord, error) {
	logger := common.LoggerFromContext(ctx, s.logger)

	doc, _, err := schema.NormalizeRecordJSON(raw, logger)
	if err != nil {
		s.metrics.observeRevise(OutcomeMalformed)
		return nil, status.Errorf(codes.InvalidArgument, "invoice json: %v", err)
	}
	if err := schema.ValidateInvoiceJSON(doc); err != nil {
		s.metrics.observeRevise(OutcomeInvalid)
		logger.Warn("invoice.revise.schema", "error", err)
		return nil, status.Errorf(codes.InvalidArgument, "invoice json: %v", err)
	}

	var rec entity.InvoiceRecord
	if err := json.Unmarshal(doc, &rec); err != nil {
		s.metrics.observeRevise(OutcomeMalformed)
		return nil, status.Error(codes.InvalidArgument, fmt.Sprintf("invoice json: %v", err))
	}
	return s.Revise(ctx, &rec)
}

func validateRecord(rec *entity.InvoiceRecord) *common.Validator {
	v := common.NewValidator().
		Field("invoice_number", rec.InvoiceNumber, common.Required, common.MaxLen(64)).
		Field("issue_date", rec.IssueDate, common.DateYMD).
		Field("due_date", rec.DueDate, common.DateYMD).
		Field("client_email", rec.ClientEmail, common.Email).
		Field("business_email", rec.BusinessEmail, common.Email).
		Field("tax_rate", rec.TaxRate, common.NonNegative)

	for i, item := range rec.LineItems {
		prefix := fmt.Sprintf("line_items[%d].", i)
		v.Field(prefix+"description", item.Description, common.Required).
			Field(prefix+"quantity", item.Quantity, common.NonNegative).
			Field(prefix+"rate", item.Rate, common.NonNegative)
	}

	if d := rec.Discount; d != nil {
		v.Field("discount.type", string(d.Type), discountType).
			Field("discount.value", d.Value, common.NonNegative)
	}
	return v
}

func discountType(fieldName string, value interface{}) *common.ValidationError {
	switch entity.DiscountType(fmt.Sprint(value)) {
	case entity.DiscountPercent, entity.DiscountFlat:
		return nil
	}
	return &common.ValidationError{Field: fieldName, Value: value, Message: "must be percent or flat"}
}
