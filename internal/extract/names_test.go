package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractNames(t *testing.T) {
	d := DefaultValues()
	tests := []struct {
		name      string
		text      string
		want      Parties
		wantTrace NameTrace
	}{
		{
			name:      "invoice for person",
			text:      "Invoice for Sarah Johnson (sarah@company.com) - 5 hours of consulting at $150/hour",
			want:      Parties{"Sarah Johnson", d.BusinessName},
			wantTrace: NameTrace{"role_label", SourceDefault},
		},
		{
			name:      "bill to with suffix",
			text:      "Bill to: Tech Solutions Inc, 3 days development work @ $500/day",
			want:      Parties{"Tech Solutions Inc", d.BusinessName},
			wantTrace: NameTrace{"role_label", SourceDefault},
		},
		{
			name:      "verb after name",
			text:      "Acme Corp needs a new logo",
			want:      Parties{"Acme Corp", d.BusinessName},
			wantTrace: NameTrace{"requested_by", SourceDefault},
		},
		{
			name:      "both parties",
			text:      "from Pixel Studio LLC to Globex",
			want:      Parties{"Globex", "Pixel Studio LLC"},
			wantTrace: NameTrace{"role_label", "role_label"},
		},
		{
			name:      "heading names business",
			text:      "Brightside Design invoice for Globex",
			want:      Parties{"Globex", "Brightside Design"},
			wantTrace: NameTrace{"role_label", "heading"},
		},
		{
			name:      "proper noun fallback",
			text:      "Please bill Acme for the redesign",
			want:      Parties{"Acme", d.BusinessName},
			wantTrace: NameTrace{SourceProperNoun, SourceDefault},
		},
		{
			name:      "months are not names",
			text:      "due by March 15",
			want:      Parties{d.ClientName, d.BusinessName},
			wantTrace: NameTrace{SourceDefault, SourceDefault},
		},
		{
			name:      "empty",
			text:      "",
			want:      Parties{d.ClientName, d.BusinessName},
			wantTrace: NameTrace{SourceDefault, SourceDefault},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, trace := ExtractNames(NewInput(tt.text), d)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantTrace, trace)
		})
	}
}

func TestProperNouns(t *testing.T) {
	got := ProperNouns(NewInput("Create an invoice for Acme and Acme, plus Globex"))
	assert.Equal(t, []string{"Acme", "Globex"}, got)
	assert.Empty(t, ProperNouns(NewInput("Invoice Services Project")))
}
