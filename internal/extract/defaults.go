package extract

import "github.com/joseph-ayodele/invoice-drafter/constants"

// Defaults is the table of literal values used whenever an extractor finds
// nothing.
type Defaults struct {
	ClientName         string
	BusinessName       string
	ClientEmail        string
	BusinessEmail      string
	ClientAddress      string
	BusinessAddress    string
	ServiceDescription string
	Rate               float64
	TaxRate            float64
	Notes              string
	DueDays            int
	InvoicePrefix      string
}

// DefaultValues returns the stock placeholders.
func DefaultValues() Defaults {
	return Defaults{
		ClientName:         constants.DefaultClientName,
		BusinessName:       constants.DefaultBusinessName,
		ClientEmail:        constants.DefaultClientEmail,
		BusinessEmail:      constants.DefaultBusinessEmail,
		ClientAddress:      constants.DefaultClientAddress,
		BusinessAddress:    constants.DefaultBusinessAddress,
		ServiceDescription: constants.DefaultServiceDescription,
		Rate:               constants.DefaultRate,
		TaxRate:            constants.DefaultTaxRate,
		Notes:              constants.DefaultNotes,
		DueDays:            constants.DefaultDueDays,
		InvoicePrefix:      constants.InvoiceNumberPrefix,
	}
}
