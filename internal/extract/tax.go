package extract

import (
	"regexp"

	"github.com/joseph-ayodele/invoice-drafter/internal/entity"
)

var taxRules = []rule{
	{"label_rate", regexp.MustCompile(`(?i)\b(?:sales tax|tax|vat|gst)[\s:]+(\d+(?:\.\d+)?)\s*%`)},
	{"rate_label", regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*%\s+(?:sales tax|tax|vat|gst)\b`)},
	{"plus_rate", regexp.MustCompile(`(?i)\b(?:plus|add|with)\s+(\d+(?:\.\d+)?)\s*%\s+(?:tax|vat|gst)\b`)},
}

var (
	percentDiscountRe = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*%\s+(?:discount|off)\b`)
	flatDiscountRe    = regexp.MustCompile(`(?i)\$?` + money + `\s+(?:discount|off)\b`)
)

// ExtractTaxRate returns the tax rate as a fraction (10% is 0.10).
func ExtractTaxRate(in Input, d Defaults) float64 {
	for _, r := range taxRules {
		if m := r.re.FindStringSubmatch(in.Raw); m != nil {
			if pct, ok := parseAmount(m[1]); ok {
				return pct / 100
			}
		}
	}
	return d.TaxRate
}

// ExtractDiscount prefers a percentage discount over a flat one and returns
// nil when the text mentions neither.
func ExtractDiscount(in Input) *entity.Discount {
	if m := percentDiscountRe.FindStringSubmatch(in.Raw); m != nil {
		if pct, ok := parseAmount(m[1]); ok {
			return &entity.Discount{Type: entity.DiscountPercent, Value: pct / 100}
		}
	}
	if m := flatDiscountRe.FindStringSubmatch(in.Raw); m != nil {
		if v, ok := parseAmount(m[1]); ok {
			return &entity.Discount{Type: entity.DiscountFlat, Value: v}
		}
	}
	return nil
}
