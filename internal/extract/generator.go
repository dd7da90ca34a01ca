package extract

import (
	"fmt"
	"time"

	"github.com/joseph-ayodele/invoice-drafter/internal/entity"
	"github.com/joseph-ayodele/invoice-drafter/internal/utils"
)

// Trace sources shared by names and line items.
const (
	SourceProperNoun = "proper_noun"
	SourceDefault    = "default"
)

// Trace records which rule produced the client name, business name and line
// items. It never influences the record.
type Trace struct {
	ClientName   string
	BusinessName string
	LineItems    string
}

// Generator assembles invoice records. It holds no per-call state and is
// safe for concurrent use.
type Generator struct {
	defaults Defaults
	now      func() time.Time
	loc      *time.Location
}

type Option func(*Generator)

// WithDefaults replaces the placeholder table.
func WithDefaults(d Defaults) Option {
	return func(g *Generator) { g.defaults = d }
}

// WithClock sets the time source used for the issue date, due date
// arithmetic and invoice number.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		if now != nil {
			g.now = now
		}
	}
}

// WithLocation sets the zone that decides which calendar day "today" is.
func WithLocation(loc *time.Location) Option {
	return func(g *Generator) {
		if loc != nil {
			g.loc = loc
		}
	}
}

func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		defaults: DefaultValues(),
		now:      time.Now,
		loc:      time.Local,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Defaults returns the placeholder table in use.
func (g *Generator) Defaults() Defaults {
	return g.defaults
}

// Generate extracts every field from text and returns a complete record.
// Unmatched fields take their defaults; Generate never fails.
func (g *Generator) Generate(text string) (entity.InvoiceRecord, Trace) {
	in := NewInput(text)
	d := g.defaults
	now := g.now()
	today := utils.DateOnly(now, g.loc)

	emails := ExtractEmails(in, d)
	names, nameTrace := ExtractNames(in, d)
	addrs := ExtractAddresses(in, d)
	items, itemSource := ExtractLineItems(in, d)
	info := ExtractAdditionalInfo(in)

	rec := entity.InvoiceRecord{
		InvoiceNumber:   InvoiceNumber(d.InvoicePrefix, now),
		IssueDate:       utils.FormatYMD(today),
		DueDate:         utils.FormatYMD(ExtractDueDate(in, today, d)),
		ClientName:      names.Client,
		ClientEmail:     emails.Client,
		ClientAddress:   addrs.Client,
		BusinessName:    names.Business,
		BusinessEmail:   emails.Business,
		BusinessAddress: addrs.Business,
		LineItems:       items,
		TaxRate:         ExtractTaxRate(in, d),
		Discount:        ExtractDiscount(in),
		Notes:           BuildNotes(info, d),
	}
	rec.Recalculate()

	return rec, Trace{
		ClientName:   nameTrace.Client,
		BusinessName: nameTrace.Business,
		LineItems:    itemSource,
	}
}

// BuildNotes starts from the extracted notes or the default message, puts a
// PO line in front and a payment line after.
func BuildNotes(info AdditionalInfo, d Defaults) string {
	notes := info.Notes
	if notes == "" {
		notes = d.Notes
	}
	if info.PONumber != "" {
		notes = "PO#: " + info.PONumber + "\n" + notes
	}
	if info.PaymentTerms != "" {
		notes += "\nPayment: " + info.PaymentTerms
	}
	return notes
}

// InvoiceNumber is prefix followed by the last six digits of the
// millisecond timestamp.
func InvoiceNumber(prefix string, now time.Time) string {
	return fmt.Sprintf("%s%06d", prefix, now.UnixMilli()%1_000_000)
}
