package schema

// BuildInvoiceJSONSchema returns the JSON-Schema (draft 2020-12 subset) of an
// invoice record as a generic map. Revised records are validated against it
// before they are recalculated.
func BuildInvoiceJSONSchema() map[string]any {
	lineItem := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"description": map[string]any{"type": "string", "minLength": 1},
			"quantity":    amountProp(),
			"rate":        amountProp(),
			"amount":      map[string]any{"type": "number"}, // recomputed, never trusted
		},
		"required": []string{"description", "quantity", "rate"},
	}

	props := map[string]any{
		"invoice_number":   map[string]any{"type": "string", "minLength": 1, "maxLength": 64},
		"issue_date":       dateProp(),
		"due_date":         dateProp(),
		"client_name":      map[string]any{"type": "string"},
		"client_email":     map[string]any{"type": "string"},
		"client_address":   map[string]any{"type": "string"},
		"business_name":    map[string]any{"type": "string"},
		"business_email":   map[string]any{"type": "string"},
		"business_address": map[string]any{"type": "string"},
		"line_items":       map[string]any{"type": "array", "items": lineItem},
		"subtotal":         map[string]any{"type": "number"},
		"tax_rate":         amountProp(),
		"discount": map[string]any{
			"type":                 "object",
			"additionalProperties": false,
			"properties": map[string]any{
				"type":  map[string]any{"type": "string", "enum": []string{"percent", "flat"}},
				"value": amountProp(),
			},
			"required": []string{"type", "value"},
		},
		"tax":   map[string]any{"type": "number"},
		"total": map[string]any{"type": "number"},
		"notes": map[string]any{"type": "string"},
	}
	required := []string{"invoice_number", "issue_date", "due_date", "line_items"}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
		"required":             required,
	}
}

func amountProp() map[string]any {
	return map[string]any{"type": "number", "minimum": 0}
}

func dateProp() map[string]any {
	return map[string]any{"type": "string", "pattern": `^\d{4}-\d{2}-\d{2}$`}
}
