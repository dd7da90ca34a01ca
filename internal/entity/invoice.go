package entity

import "math"

// DiscountType distinguishes a percentage discount from a flat amount.
type DiscountType string

const (
	DiscountPercent DiscountType = "percent"
	DiscountFlat    DiscountType = "flat"
)

// Discount is applied to the subtotal before tax. Value is a fraction for
// percent discounts (0.15 == 15%) and a currency amount for flat ones.
type Discount struct {
	Type  DiscountType `json:"type"`
	Value float64      `json:"value"`
}

// LineItem is a single billable row. Amount is always Quantity * Rate.
type LineItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Rate        float64 `json:"rate"`
	Amount      float64 `json:"amount"`
}

// NewLineItem builds a line item with its amount derived from quantity and rate.
func NewLineItem(description string, quantity, rate float64) LineItem {
	return LineItem{
		Description: description,
		Quantity:    quantity,
		Rate:        rate,
		Amount:      quantity * rate,
	}
}

// InvoiceRecord is the structured invoice handed to renderers and editors.
// Dates are YYYY-MM-DD.
type InvoiceRecord struct {
	InvoiceNumber   string     `json:"invoice_number"`
	IssueDate       string     `json:"issue_date"`
	DueDate         string     `json:"due_date"`
	ClientName      string     `json:"client_name"`
	ClientEmail     string     `json:"client_email"`
	ClientAddress   string     `json:"client_address"`
	BusinessName    string     `json:"business_name"`
	BusinessEmail   string     `json:"business_email"`
	BusinessAddress string     `json:"business_address"`
	LineItems       []LineItem `json:"line_items"`
	Subtotal        float64    `json:"subtotal"`
	TaxRate         float64    `json:"tax_rate"`
	Discount        *Discount  `json:"discount,omitempty"`
	Tax             float64    `json:"tax"`
	Total           float64    `json:"total"`
	Notes           string     `json:"notes"`
}

// RawSubtotal sums the line item amounts before any discount.
func (r InvoiceRecord) RawSubtotal() float64 {
	var sum float64
	for _, item := range r.LineItems {
		sum += item.Amount
	}
	return sum
}

// ApplyDiscount returns subtotal after the record's discount. Flat discounts
// floor at zero; percent discounts are not clamped.
func (r InvoiceRecord) ApplyDiscount(subtotal float64) float64 {
	if r.Discount == nil {
		return subtotal
	}
	switch r.Discount.Type {
	case DiscountPercent:
		return subtotal * (1 - r.Discount.Value)
	case DiscountFlat:
		return math.Max(0, subtotal-r.Discount.Value)
	default:
		return subtotal
	}
}

// Recalculate re-derives every computed field from quantities, rates, the
// discount and the tax rate. Editors call it after each field change.
func (r *InvoiceRecord) Recalculate() {
	for i := range r.LineItems {
		r.LineItems[i].Amount = r.LineItems[i].Quantity * r.LineItems[i].Rate
	}
	r.Subtotal = r.ApplyDiscount(r.RawSubtotal())
	r.Tax = r.Subtotal * r.TaxRate
	r.Total = r.Subtotal + r.Tax
}
