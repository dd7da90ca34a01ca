package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/joseph-ayodele/invoice-drafter/internal/common"
	"github.com/joseph-ayodele/invoice-drafter/internal/entity"
	"github.com/joseph-ayodele/invoice-drafter/internal/invoices"
)

type InvoiceServer struct {
	svc           *invoices.Service
	maxInputChars int
	logger        *slog.Logger
}

var _ InvoiceServiceServer = (*InvoiceServer)(nil)

// NewInvoiceServer creates the gRPC invoice service. maxInputChars <= 0
// accepts prompts of any length.
func NewInvoiceServer(svc *invoices.Service, maxInputChars int, logger *slog.Logger) *InvoiceServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &InvoiceServer{svc: svc, maxInputChars: maxInputChars, logger: logger}
}

func (s *InvoiceServer) Generate(ctx context.Context, req *wrapperspb.StringValue) (*structpb.Struct, error) {
	text := req.GetValue()
	if err := common.CheckInputSize(text, s.maxInputChars); err != nil {
		common.LoggerFromContext(ctx, s.logger).Warn("invoice.generate.rejected", "error", err)
		return nil, common.ToStatus(err)
	}
	rec, err := s.svc.Generate(ctx, text)
	if err != nil {
		return nil, err
	}
	out, err := RecordToStruct(rec)
	if err != nil {
		return nil, common.ToStatus(fmt.Errorf("encode invoice: %w: %v", common.ErrInternal, err))
	}
	return out, nil
}

func (s *InvoiceServer) Revise(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	if req == nil || len(req.GetFields()) == 0 {
		return nil, common.InvalidArgumentError("invoice is required")
	}
	raw, err := req.MarshalJSON()
	if err != nil {
		return nil, common.InvalidArgumentErrorf("invoice: %v", err)
	}
	rec, err := s.svc.ReviseJSON(ctx, raw)
	if err != nil {
		return nil, common.ToStatus(err)
	}
	out, err := RecordToStruct(rec)
	if err != nil {
		return nil, common.ToStatus(fmt.Errorf("encode invoice: %w: %v", common.ErrInternal, err))
	}
	return out, nil
}

// RecordToStruct converts a record to a protobuf Struct using its JSON field names.
func RecordToStruct(rec *entity.InvoiceRecord) (*structpb.Struct, error) {
	raw, err := json.Marshal(rec)
	if err != nil {
		return nil, err
	}
	out := &structpb.Struct{}
	if err := out.UnmarshalJSON(raw); err != nil {
		return nil, err
	}
	return out, nil
}

// StructToRecord is the inverse of RecordToStruct.
func StructToRecord(s *structpb.Struct) (*entity.InvoiceRecord, error) {
	raw, err := s.MarshalJSON()
	if err != nil {
		return nil, err
	}
	var rec entity.InvoiceRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("decode invoice: %w", err)
	}
	return &rec, nil
}
