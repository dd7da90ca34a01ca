package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindAddresses(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "labeled address with zip",
			text: "address: 12 Oak Lane, Austin, 78701",
			want: []string{"12 Oak Lane, Austin, 78701"},
		},
		{
			name: "two numbered streets",
			text: "Ship from 456 Elm Street, Springfield, IL 62701 to 789 Pine Avenue",
			want: []string{"456 Elm Street, Springfield, IL 62701", "789 Pine Avenue"},
		},
		{
			name: "office at",
			text: "our office at Baker Street",
			want: []string{"Baker Street"},
		},
		{
			name: "rates are not addresses",
			text: "5 hours at $150",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FindAddresses(NewInput(tt.text)))
		})
	}
}

func TestExtractAddresses(t *testing.T) {
	d := DefaultValues()

	got := ExtractAddresses(NewInput(""), d)
	assert.Equal(t, Parties{d.ClientAddress, d.BusinessAddress}, got)

	got = ExtractAddresses(NewInput("address: 123 Main St, NYC, pay via bank transfer"), d)
	assert.Equal(t, Parties{"123 Main St, NYC", "123 Main St, NYC"}, got)

	got = ExtractAddresses(NewInput("Ship from 456 Elm Street to 789 Pine Avenue"), d)
	assert.Equal(t, Parties{"456 Elm Street", "789 Pine Avenue"}, got)
}
