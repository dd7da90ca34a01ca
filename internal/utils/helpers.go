package utils

import (
	"time"

	"github.com/joseph-ayodele/invoice-drafter/constants"
)

const ymd = constants.DateLayout

func ParseYMD(s string) (time.Time, error) {
	t, err := time.ParseInLocation(ymd, s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	// strip time to midnight UTC to match DATE semantics
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// FormatYMD renders the calendar date of t in its own location.
func FormatYMD(t time.Time) string {
	return t.Format(ymd)
}

// DateOnly truncates t to midnight in loc. A nil loc keeps t's location.
func DateOnly(t time.Time, loc *time.Location) time.Time {
	if loc != nil {
		t = t.In(loc)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Truncate shortens s to at most n runes, marking the cut with an ellipsis.
func Truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 || len(r) <= n {
		return s
	}
	if n <= 3 {
		return string(r[:n])
	}
	return string(r[:n-3]) + "..."
}
