package extract

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestExtractDueDate(t *testing.T) {
	today := date(2025, time.March, 10)
	d := DefaultValues()

	tests := []struct {
		name string
		text string
		want time.Time
	}{
		{"default thirty days", "", date(2025, time.April, 9)},
		{"due in days", "due in 14 days", date(2025, time.March, 24)},
		{"due within weeks", "Due within 2 weeks", date(2025, time.March, 24)},
		{"due in months", "due in 1 month", date(2025, time.April, 10)},
		{"month name with ordinal", "Due on March 15th, 2025", date(2025, time.March, 15)},
		{"slash date", "due by 4/1/2025", date(2025, time.April, 1)},
		{"iso date", "due date: 2025-05-01", date(2025, time.May, 1)},
		{"month without year", "due on Dec 5", date(2025, time.December, 5)},
		{"unparseable explicit date is ignored", "due on Blursday 45", date(2025, time.April, 9)},
		{"unparseable explicit date keeps relative", "due in 14 days, due on Blursday 45", date(2025, time.March, 24)},
		{"net terms", "net 15", date(2025, time.March, 25)},
		{"net overrides relative", "due in 14 days, net 45", date(2025, time.April, 24)},
		{"next week", "due next week", date(2025, time.March, 17)},
		{"next month", "due next month", date(2025, time.April, 10)},
		{"today", "due today", today},
		{"tomorrow", "due tomorrow", date(2025, time.March, 11)},
		{"named relative overrides explicit", "due on 2025-06-01, actually due tomorrow", date(2025, time.March, 11)},
		{"named relative needs due prefix", "ship it tomorrow", date(2025, time.April, 9)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractDueDate(NewInput(tt.text), today, d))
		})
	}
}

func TestExtractDueDate_CalendarOverflow(t *testing.T) {
	d := DefaultValues()

	got := ExtractDueDate(NewInput("due in 1 month"), date(2025, time.January, 31), d)
	assert.Equal(t, date(2025, time.March, 3), got)

	got = ExtractDueDate(NewInput("due next month"), date(2025, time.December, 15), d)
	assert.Equal(t, date(2026, time.January, 15), got)

	got = ExtractDueDate(NewInput("due in 2 months"), date(2025, time.December, 31), d)
	assert.Equal(t, date(2026, time.March, 3), got)

	got = ExtractDueDate(NewInput("due in 3 weeks"), date(2025, time.December, 20), d)
	assert.Equal(t, date(2026, time.January, 10), got)
}

func TestParseExplicitDate(t *testing.T) {
	today := date(2025, time.March, 10)

	got, ok := ParseExplicitDate("March 15", today)
	require.True(t, ok)
	assert.Equal(t, date(2025, time.March, 15), got)

	got, ok = ParseExplicitDate("Mar 15, 2026", today)
	require.True(t, ok)
	assert.Equal(t, date(2026, time.March, 15), got)

	got, ok = ParseExplicitDate("3/15/25", today)
	require.True(t, ok)
	assert.Equal(t, date(2025, time.March, 15), got)

	_, ok = ParseExplicitDate("13/45/2025", today)
	assert.False(t, ok)
}
