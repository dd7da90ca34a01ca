package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLineItem(t *testing.T) {
	item := NewLineItem("consulting", 5, 150)
	assert.Equal(t, 750.0, item.Amount)
	assert.Equal(t, item.Quantity*item.Rate, item.Amount)
}

func TestInvoiceRecord_ApplyDiscount(t *testing.T) {
	tests := []struct {
		name     string
		discount *Discount
		subtotal float64
		want     float64
	}{
		{"no discount", nil, 800, 800},
		{"15% off", &Discount{Type: DiscountPercent, Value: 0.15}, 800, 680},
		{"flat 50", &Discount{Type: DiscountFlat, Value: 50}, 800, 750},
		{"flat floors at zero", &Discount{Type: DiscountFlat, Value: 900}, 800, 0},
		{"percent over 100 is not clamped", &Discount{Type: DiscountPercent, Value: 1.5}, 100, -50},
		{"unknown type ignored", &Discount{Type: "coupon", Value: 10}, 100, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := InvoiceRecord{Discount: tt.discount}
			assert.InDelta(t, tt.want, r.ApplyDiscount(tt.subtotal), 1e-9)
		})
	}
}

func TestInvoiceRecord_Recalculate(t *testing.T) {
	r := InvoiceRecord{
		LineItems: []LineItem{
			{Description: "design", Quantity: 2, Rate: 100, Amount: 1},
			{Description: "hosting", Quantity: 1, Rate: 50, Amount: 999},
		},
		TaxRate:  0.1,
		Discount: &Discount{Type: DiscountFlat, Value: 25},
	}

	r.Recalculate()

	require.Len(t, r.LineItems, 2)
	assert.Equal(t, 200.0, r.LineItems[0].Amount)
	assert.Equal(t, 50.0, r.LineItems[1].Amount)
	assert.InDelta(t, 225.0, r.Subtotal, 1e-9)
	assert.InDelta(t, 22.5, r.Tax, 1e-9)
	assert.InDelta(t, 247.5, r.Total, 1e-9)
	assert.InDelta(t, 250.0, r.RawSubtotal(), 1e-9)
}
