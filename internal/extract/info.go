package extract

import (
	"regexp"
	"strings"
)

// AdditionalInfo holds the optional free-form fields folded into notes.
type AdditionalInfo struct {
	PONumber     string
	PaymentTerms string
	Notes        string
}

var (
	poNumberRe      = regexp.MustCompile(`(?i)\b(?:P\.O\.|PO|purchase order)(?:[\s#:]+(?:number|num|no)\b\.?)?[\s#:]+([A-Z0-9][A-Z0-9-]*)`)
	paymentViaRe    = regexp.MustCompile(`(?im)\b(?:payment|pay)[\s:]+(?:via|by|through)\s+([A-Za-z \t]+?)(?:[.,]|$)`)
	paymentMethodRe = regexp.MustCompile(`(?i)\b(?:bank transfer|wire transfer|credit card|paypal|cheque|check|cash)\b`)
)

var noteRules = []rule{
	{"note", regexp.MustCompile(`(?im)\b(?:include note|add note|notes?)[\s:]+(.+?)(?:\.|$)`)},
	{"comments", regexp.MustCompile(`(?im)\b(?:additional info(?:rmation)?|comments?)[\s:]+(.+?)(?:\.|$)`)},
}

// ExtractAdditionalInfo finds a PO number, payment terms and free-text
// notes. A PO code must contain a digit, so "PO Box" is not a PO number.
func ExtractAdditionalInfo(in Input) AdditionalInfo {
	var info AdditionalInfo

	for _, m := range poNumberRe.FindAllStringSubmatch(in.Raw, -1) {
		if strings.ContainsAny(m[1], "0123456789") {
			info.PONumber = m[1]
			break
		}
	}

	if m := paymentViaRe.FindStringSubmatch(in.Raw); m != nil {
		info.PaymentTerms = strings.TrimSpace(m[1])
	}
	if info.PaymentTerms == "" {
		info.PaymentTerms = paymentMethodRe.FindString(in.Raw)
	}

	info.Notes, _, _ = firstCapture(noteRules, in.Raw, trimmed)
	return info
}
