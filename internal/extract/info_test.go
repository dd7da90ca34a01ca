package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractAdditionalInfo(t *testing.T) {
	tests := []struct {
		name string
		text string
		want AdditionalInfo
	}{
		{"po hash", "plus 20% VAT, PO# TS-2024-001", AdditionalInfo{PONumber: "TS-2024-001"}},
		{"purchase order number", "Purchase order number: 4500123", AdditionalInfo{PONumber: "4500123"}},
		{"po no.", "PO no. 77-A", AdditionalInfo{PONumber: "77-A"}},
		{"po box is not a po", "Mail to PO Box 12", AdditionalInfo{}},
		{"pay via", "pay via bank transfer.", AdditionalInfo{PaymentTerms: "bank transfer"}},
		{"payment by", "Payment by credit card, thanks", AdditionalInfo{PaymentTerms: "credit card"}},
		{"method keyword keeps case", "We accept PayPal", AdditionalInfo{PaymentTerms: "PayPal"}},
		{"note", "Note: deliver files by Friday. Thanks", AdditionalInfo{Notes: "deliver files by Friday"}},
		{"comments", "Comments: rush job", AdditionalInfo{Notes: "rush job"}},
		{"nothing", "5 hours of consulting", AdditionalInfo{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractAdditionalInfo(NewInput(tt.text)))
		})
	}
}

func TestBuildNotes(t *testing.T) {
	d := DefaultValues()

	assert.Equal(t, d.Notes, BuildNotes(AdditionalInfo{}, d))
	assert.Equal(t, "PO#: 42\nThanks\nPayment: cash",
		BuildNotes(AdditionalInfo{PONumber: "42", Notes: "Thanks", PaymentTerms: "cash"}, d))
	assert.Equal(t, "PO#: TS-1\n"+d.Notes, BuildNotes(AdditionalInfo{PONumber: "TS-1"}, d))
}
