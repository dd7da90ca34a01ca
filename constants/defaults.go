package constants

// Literal fallbacks used when the extractor cannot resolve a field.
const (
	DefaultClientName      = "Client Name"
	DefaultBusinessName    = "Your Business"
	DefaultClientEmail     = "client@example.com"
	DefaultBusinessEmail   = "business@example.com"
	DefaultClientAddress   = "123 Client Street\nCity, State 12345"
	DefaultBusinessAddress = "456 Business Avenue\nCity, State 67890"

	DefaultServiceDescription = "Professional Services"
	DefaultRate               = 1000.0
	DefaultTaxRate            = 0.0
	DefaultNotes              = "Thank you for your business!"
	DefaultDueDays            = 30

	InvoiceNumberPrefix = "INV-"
)

// DateLayout is the ISO 8601 calendar date used for issue and due dates.
const DateLayout = "2006-01-02"
