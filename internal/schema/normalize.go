package schema

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"maps"
	"strconv"
	"strings"
)

// renames maps the camelCase keys produced by browser editors onto the
// record's JSON names.
var renames = []struct{ from, to string }{
	{"invoiceNumber", "invoice_number"},
	{"issueDate", "issue_date"},
	{"dueDate", "due_date"},
	{"clientName", "client_name"},
	{"clientEmail", "client_email"},
	{"clientAddress", "client_address"},
	{"businessName", "business_name"},
	{"businessEmail", "business_email"},
	{"businessAddress", "business_address"},
	{"lineItems", "line_items"},
	{"items", "line_items"},
	{"taxRate", "tax_rate"},
}

var (
	allowedKeys = map[string]struct{}{
		"invoice_number": {}, "issue_date": {}, "due_date": {},
		"client_name": {}, "client_email": {}, "client_address": {},
		"business_name": {}, "business_email": {}, "business_address": {},
		"line_items": {}, "subtotal": {}, "tax_rate": {}, "discount": {},
		"tax": {}, "total": {}, "notes": {},
	}
	allowedItemKeys = map[string]struct{}{"description": {}, "quantity": {}, "rate": {}, "amount": {}}
	numberFields    = []string{"subtotal", "tax_rate", "tax", "total"}
	itemNumbers     = []string{"quantity", "rate", "amount"}
	trimKeys        = []string{
		"invoice_number", "issue_date", "due_date", "client_name", "client_email",
		"business_name", "business_email",
	}
)

// NormalizeRecordJSON makes an edited record friendly to the strict schema:
// - renames camelCase keys to snake_case
// - coerces numeric strings ("150.00", "1,200") to numbers
// - drops null optionals and unknown keys
// - trims single-line strings
// It returns the rewritten document and the list of dropped or renamed keys.
func NormalizeRecordJSON(raw []byte, logger *slog.Logger) ([]byte, []string, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, nil, fmt.Errorf("normalize: decode: %w", err)
	}

	dropped := make([]string, 0, 8)
	for _, r := range renames {
		if v, ok := m[r.from]; ok {
			// don't overwrite existing value if already present
			if _, exists := m[r.to]; !exists {
				m[r.to] = v
			}
			delete(m, r.from)
			dropped = append(dropped, r.from+"->"+r.to)
		}
	}

	for _, k := range numberFields {
		if !coerceNumber(m, k) {
			dropped = append(dropped, k+"(type)")
		}
	}

	switch d := m["discount"].(type) {
	case nil:
		if _, ok := m["discount"]; ok {
			delete(m, "discount")
			dropped = append(dropped, "discount(null)")
		}
	case map[string]any:
		if !coerceNumber(d, "value") {
			dropped = append(dropped, "discount.value(type)")
		}
		if t, ok := d["type"].(string); ok {
			d["type"] = strings.ToLower(strings.TrimSpace(t))
		}
	}

	if items, ok := m["line_items"].([]any); ok {
		for i, it := range items {
			item, ok := it.(map[string]any)
			if !ok {
				continue
			}
			for _, k := range itemNumbers {
				if !coerceNumber(item, k) {
					dropped = append(dropped, fmt.Sprintf("line_items[%d].%s(type)", i, k))
				}
			}
			for k := range maps.Clone(item) {
				if _, ok := allowedItemKeys[k]; !ok {
					delete(item, k)
					dropped = append(dropped, fmt.Sprintf("line_items[%d].%s(unknown)", i, k))
				}
			}
			if s, ok := item["description"].(string); ok {
				item["description"] = strings.TrimSpace(s)
			}
		}
	}

	for k := range maps.Clone(m) {
		if _, ok := allowedKeys[k]; !ok {
			delete(m, k)
			dropped = append(dropped, k+"(unknown)")
		}
	}

	for _, k := range trimKeys {
		if v, ok := m[k].(string); ok {
			m[k] = strings.TrimSpace(v)
		}
	}

	out, err := json.Marshal(m)
	if err != nil {
		return nil, dropped, fmt.Errorf("normalize: encode: %w", err)
	}
	if len(dropped) > 0 {
		logger.Warn("invoice.revise.normalize", "dropped", dropped)
	}
	return out, dropped, nil
}

// coerceNumber rewrites m[k] as a float64 when it is a numeric string, and
// deletes it when it is null or unusable. It reports false when the value
// had to be dropped.
func coerceNumber(m map[string]any, k string) bool {
	v, ok := m[k]
	if !ok {
		return true
	}
	switch t := v.(type) {
	case float64:
		return true
	case string:
		s := strings.ReplaceAll(strings.TrimSpace(t), ",", "")
		s = strings.TrimPrefix(s, "$")
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			m[k] = f
			return true
		}
	case nil:
		delete(m, k)
		return true
	}
	delete(m, k)
	return false
}
