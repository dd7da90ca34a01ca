package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/invoice-drafter/internal/entity"
)

func TestExtractTaxRate(t *testing.T) {
	d := DefaultValues()
	tests := []struct {
		text string
		want float64
	}{
		{"5 hours at $150/hour, 10% tax", 0.10},
		{"VAT: 20%", 0.20},
		{"plus 8.5% GST", 0.085},
		{"sales tax 7%", 0.07},
		{"add 5 % vat", 0.05},
		{"15% discount", 0},
		{"", 0},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.InDelta(t, tt.want, ExtractTaxRate(NewInput(tt.text), d), 1e-9)
		})
	}
}

func TestExtractTaxRate_UsesDefault(t *testing.T) {
	d := DefaultValues()
	d.TaxRate = 0.05
	assert.InDelta(t, 0.05, ExtractTaxRate(NewInput("no tax mentioned here"), d), 1e-9)
}

func TestExtractDiscount(t *testing.T) {
	tests := []struct {
		name string
		text string
		want *entity.Discount
	}{
		{"percent", "15% discount", &entity.Discount{Type: entity.DiscountPercent, Value: 0.15}},
		{"percent off", "take 20% off", &entity.Discount{Type: entity.DiscountPercent, Value: 0.20}},
		{"flat", "$50 off the total", &entity.Discount{Type: entity.DiscountFlat, Value: 50}},
		{"flat with separators", "$1,000 discount", &entity.Discount{Type: entity.DiscountFlat, Value: 1000}},
		{"percent wins", "10% off, $20 discount", &entity.Discount{Type: entity.DiscountPercent, Value: 0.10}},
		{"none", "no deal", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractDiscount(NewInput(tt.text))
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.want.Type, got.Type)
			assert.InDelta(t, tt.want.Value, got.Value, 1e-9)
		})
	}
}
