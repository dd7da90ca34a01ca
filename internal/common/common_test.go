package common

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, k := range []string{"GRPC_ADDR", "HTTP_ADDR", "SHUTDOWN_TIMEOUT", "INVOICE_TIMEZONE",
		"INVOICE_MAX_INPUT_CHARS", "BATCH_WORKERS", "BATCH_QUEUE_SIZE", "BATCH_JOB_TIMEOUT",
		"EXPORT_DIR", "WATCH_DEBOUNCE"} {
		t.Setenv(k, "")
	}

	cfg := LoadConfig()

	assert.Equal(t, ":8080", cfg.Server.GRPCAddr)
	assert.Equal(t, ":8081", cfg.Server.HTTPAddr)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "Local", cfg.Invoice.Timezone)
	assert.Equal(t, 0, cfg.Invoice.MaxInputChars)
	assert.Equal(t, 4, cfg.Batch.Workers)
	assert.Equal(t, 256, cfg.Batch.QueueSize)
	assert.Equal(t, 30*time.Second, cfg.Batch.JobTimeout)
	assert.Equal(t, "./out", cfg.Batch.ExportDir)
	assert.Equal(t, 500*time.Millisecond, cfg.Batch.WatchDebounce)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("BATCH_WORKERS", "8")
	t.Setenv("BATCH_JOB_TIMEOUT", "2s")
	t.Setenv("INVOICE_TIMEZONE", "UTC")
	t.Setenv("INVOICE_MAX_INPUT_CHARS", "not-a-number")

	cfg := LoadConfig()

	assert.Equal(t, 8, cfg.Batch.Workers)
	assert.Equal(t, 2*time.Second, cfg.Batch.JobTimeout)
	assert.Equal(t, 0, cfg.Invoice.MaxInputChars)
	loc, err := cfg.Location()
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)
}

func TestConfig_Validate(t *testing.T) {
	cfg := LoadConfig()
	cfg.Batch.Workers = 0
	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)

	cfg = LoadConfig()
	cfg.Invoice.Timezone = "Mars/Olympus_Mons"
	var appErr *AppError
	require.ErrorAs(t, cfg.Validate(), &appErr)
	assert.Equal(t, "CONFIG_ERROR", appErr.Code)
}

func TestCheckInputSize(t *testing.T) {
	assert.NoError(t, CheckInputSize("anything at all", 0))
	assert.NoError(t, CheckInputSize("héllo", 5))

	err := CheckInputSize("héllo!", 5)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInputTooLarge)
}

func TestToStatus(t *testing.T) {
	assert.NoError(t, ToStatus(nil))

	st, _ := status.FromError(ToStatus(NewAppError("BAD", "nope", ErrInvalidInput)))
	assert.Equal(t, codes.InvalidArgument, st.Code())

	st, _ = status.FromError(ToStatus(CheckInputSize("abc", 1)))
	assert.Equal(t, codes.ResourceExhausted, st.Code())

	st, _ = status.FromError(ToStatus(WrapError(ErrInternal, "encode invoice")))
	assert.Equal(t, codes.Internal, st.Code())
	assert.Contains(t, st.Message(), "encode invoice")

	st, _ = status.FromError(ToStatus(errors.New("boom")))
	assert.Equal(t, codes.Internal, st.Code())

	original := status.Error(codes.NotFound, "gone")
	assert.Equal(t, original, ToStatus(original))
}

func TestValidator(t *testing.T) {
	v := NewValidator().
		Field("invoice_number", "", Required).
		Field("issue_date", "2025-13-01", DateYMD).
		Field("due_date", "2025-03-17", DateYMD).
		Field("paid_date", "2025-02-30", DateYMD).
		Field("rate", -1.0, NonNegative).
		Field("client_email", "not-an-email", Email).
		Field("business_email", "", Email).
		Field("notes", "abcdef", MaxLen(3))

	require.True(t, v.HasErrors())
	fields := make([]string, 0, len(v.Errors()))
	for _, e := range v.Errors() {
		fields = append(fields, e.Field)
	}
	assert.Equal(t, []string{"invoice_number", "issue_date", "paid_date", "rate", "client_email", "notes"}, fields)
	assert.ErrorIs(t, v.Error(), ErrValidation)

	st, _ := status.FromError(ValidateAndReturnError(v))
	assert.Equal(t, codes.InvalidArgument, st.Code())
	assert.NoError(t, ValidateAndReturnError(NewValidator().Field("x", "ok", Required, MinLen(2))))
}

func TestLoggerFromContext(t *testing.T) {
	fallback := slog.Default()
	ctx := context.Background()
	assert.Same(t, fallback, LoggerFromContext(ctx, fallback))

	ctx = WithRequestID(ctx, "req-1")
	assert.Equal(t, "req-1", RequestIDFromContext(ctx))
	assert.NotSame(t, fallback, LoggerFromContext(ctx, fallback))

	scoped := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx = WithLogger(ctx, scoped)
	assert.Same(t, scoped, LoggerFromContext(ctx, fallback))
}
