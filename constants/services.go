package constants

import "strings"

// CommonServices is checked, in order, against the lowercased prompt when no
// service phrase could be captured.
var CommonServices = []string{
	"web design",
	"graphic design",
	"logo design",
	"development",
	"consulting",
	"marketing",
	"social media",
	"content creation",
	"photography",
	"videography",
	"copywriting",
	"seo",
	"maintenance",
	"support",
	"training",
	"analysis",
}

// ServiceLabel turns a matched service keyword into the description shown on
// the invoice.
func ServiceLabel(service string) string {
	if service == "seo" {
		return "SEO"
	}
	if service == "" {
		return service
	}
	return strings.ToUpper(service[:1]) + service[1:]
}

// ExamplePrompts are the sample descriptions offered to users.
var ExamplePrompts = []string{
	"Create an invoice for web design services, $2500, due in 30 days to John Smith at john@email.com",
	"Invoice for Sarah Johnson (sarah@company.com) - 5 hours of consulting at $150/hour, 10% tax, due next week",
	"Bill to: Tech Solutions Inc, 3 days development work @ $500/day, plus 20% VAT, PO# TS-2024-001",
	"Social media management $1200/month for Creative Agency, address: 123 Main St, NYC, pay via bank transfer",
	"Logo design project: $800, client: Mike Wilson (mike@startup.com), 15% discount, due in 14 days",
	"Photography services - Wedding package $3500, Event coverage $1200, Photo editing $500, for Emma Davis",
}
