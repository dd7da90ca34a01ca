package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/joseph-ayodele/invoice-drafter/constants"
	"github.com/joseph-ayodele/invoice-drafter/internal/entity"
)

const mikePrompt = "Logo design project: $800, client: Mike Wilson (mike@startup.com), 15% discount, due in 14 days"

func setEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("INVOICE_TIMEZONE", "UTC")
	t.Setenv("EXPORT_DIR", dir)
	t.Setenv("WATCH_DEBOUNCE", "10ms")
	return dir
}

func runCmd(ctx context.Context, stdin string, args ...string) (string, error) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	return out.String(), err
}

func TestParse_Args(t *testing.T) {
	setEnv(t)

	out, err := runCmd(context.Background(), "", "parse", mikePrompt)
	require.NoError(t, err)

	var rec entity.InvoiceRecord
	require.NoError(t, json.Unmarshal([]byte(out), &rec))
	assert.Equal(t, "Mike Wilson", rec.ClientName)
	assert.Equal(t, "mike@startup.com", rec.ClientEmail)
	assert.InDelta(t, 680, rec.Total, 1e-6)
}

func TestParse_StdinAndXLSX(t *testing.T) {
	dir := setEnv(t)
	target := filepath.Join(dir, "nested", "one.xlsx")

	out, err := runCmd(context.Background(), mikePrompt+"\n", "parse", "--out", target)
	require.NoError(t, err)
	assert.Contains(t, out, target)

	f, err := excelize.OpenFile(target)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Invoices")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Mike Wilson", rows[1][3])
}

func TestParse_InputTooLarge(t *testing.T) {
	setEnv(t)
	t.Setenv("INVOICE_MAX_INPUT_CHARS", "10")

	_, err := runCmd(context.Background(), "", "parse", mikePrompt)
	require.Error(t, err)
}

func TestParse_BadTimezone(t *testing.T) {
	setEnv(t)
	_, err := runCmd(context.Background(), "", "--tz", "Nowhere/Special", "parse", "x")
	require.Error(t, err)
}

func TestRevise(t *testing.T) {
	dir := setEnv(t)
	in := filepath.Join(dir, "edited.json")
	body := `{
  "invoiceNumber": "INV-000123",
  "issue_date": "2025-03-10",
  "due_date": "2025-04-09",
  "client_name": "Acme Corp",
  "line_items": [{"description": "Consulting", "quantity": "4", "rate": "$125"}],
  "tax_rate": 0.1,
  "discount": {"type": "flat", "value": 50}
}`
	require.NoError(t, os.WriteFile(in, []byte(body), 0o644))

	out, err := runCmd(context.Background(), "", "revise", "--in", in)
	require.NoError(t, err)

	var rec entity.InvoiceRecord
	require.NoError(t, json.Unmarshal([]byte(out), &rec))
	assert.Equal(t, "INV-000123", rec.InvoiceNumber)
	assert.InDelta(t, 500, rec.LineItems[0].Amount, 1e-6)
	assert.InDelta(t, 450, rec.Subtotal, 1e-6)
	assert.InDelta(t, 495, rec.Total, 1e-6)

	_, err = runCmd(context.Background(), `{"invoice_number": ""}`, "revise", "--in", "-")
	require.Error(t, err)
}

func TestBatch(t *testing.T) {
	dir := setEnv(t)
	promptDir := filepath.Join(dir, "prompts")
	require.NoError(t, os.MkdirAll(promptDir, 0o755))
	body := "# sample prompts\n" + strings.Join(constants.ExamplePrompts, "\n\n") + "\n"
	require.NoError(t, os.WriteFile(filepath.Join(promptDir, "all.txt"), []byte(body), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(promptDir, "skip.md"), []byte("not read"), 0o644))

	target := filepath.Join(dir, "batch.json")
	out, err := runCmd(context.Background(), "", "batch", "--dir", promptDir, "--out", target, "--workers", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "6 ok, 0 failed")

	raw, err := os.ReadFile(target)
	require.NoError(t, err)
	var recs []entity.InvoiceRecord
	require.NoError(t, json.Unmarshal(raw, &recs))
	require.Len(t, recs, len(constants.ExamplePrompts))
	assert.Equal(t, "Mike Wilson", recs[4].ClientName)
	for _, r := range recs {
		assert.NotEmpty(t, r.LineItems)
	}
}

func TestBatch_RequiresDir(t *testing.T) {
	setEnv(t)
	_, err := runCmd(context.Background(), "", "batch")
	require.Error(t, err)
}

func TestWatch_ProcessesDroppedFile(t *testing.T) {
	dir := setEnv(t)
	watchDir := filepath.Join(dir, "inbox")
	outDir := filepath.Join(dir, "drafts")
	require.NoError(t, os.MkdirAll(watchDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(watchDir, "mike.txt"), []byte(mikePrompt+"\n"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() {
		_, err := runCmd(ctx, "", "watch", "--dir", watchDir, "--out", outDir, "--initial")
		done <- err
	}()

	target := filepath.Join(outDir, "mike.json")
	require.Eventually(t, func() bool {
		raw, err := os.ReadFile(target)
		if err != nil {
			return false
		}
		var recs []entity.InvoiceRecord
		return json.Unmarshal(raw, &recs) == nil && len(recs) == 1
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancel")
	}
}

func TestExamples(t *testing.T) {
	setEnv(t)
	out, err := runCmd(context.Background(), "", "examples")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, len(constants.ExamplePrompts))
	assert.True(t, strings.HasPrefix(lines[0], "1. Create an invoice"))
}

func TestOutputPath(t *testing.T) {
	assert.Equal(t, filepath.Join("out", "acme.xlsx"), outputPath("out", "/in/acme.txt", "xlsx"))
	assert.Equal(t, filepath.Join("out", "notes.json"), outputPath("out", "notes", "json"))
}
