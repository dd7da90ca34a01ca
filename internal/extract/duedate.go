package extract

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/joseph-ayodele/invoice-drafter/constants"
)

var (
	relativeDueRe = regexp.MustCompile(`\bdue (?:in|within)\s+(\d+)\s+(days?|weeks?|months?)\b`)
	explicitDueRe = regexp.MustCompile(`(?i)\bdue (?:on|by|date)[\s:]+([A-Za-z]+\s+\d{1,2}(?:st|nd|rd|th)?(?:,?\s*\d{4})?|\d{1,2}/\d{1,2}/\d{2,4}|\d{4}-\d{2}-\d{2})`)
	netTermsRe    = regexp.MustCompile(`\bnet\s*(\d+)\b`)
	ordinalRe     = regexp.MustCompile(`(\d)(?:st|nd|rd|th)\b`)
)

// namedDue is checked in order; only the first phrase present applies.
var namedDue = []struct {
	phrase string
	shift  func(today time.Time) time.Time
}{
	{"due next week", func(t time.Time) time.Time { return t.AddDate(0, 0, 7) }},
	{"due next month", func(t time.Time) time.Time { return t.AddDate(0, 1, 0) }},
	{"due today", func(t time.Time) time.Time { return t }},
	{"due tomorrow", func(t time.Time) time.Time { return t.AddDate(0, 0, 1) }},
}

var namedDueRes = func() []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(namedDue))
	for i, n := range namedDue {
		res[i] = regexp.MustCompile(`\b` + n.phrase + `\b`)
	}
	return res
}()

// explicitDateLayouts are tried in order after ordinals and commas are
// normalized away. Layouts without a year take today's year.
var explicitDateLayouts = []struct {
	layout  string
	hasYear bool
}{
	{"January 2 2006", true},
	{"Jan 2 2006", true},
	{"January 2", false},
	{"Jan 2", false},
	{"1/2/2006", true},
	{"1/2/06", true},
	{constants.DateLayout, true},
}

// ExtractDueDate starts from today plus the default term and lets later
// rules override earlier ones: "due in N units", then an explicit
// "due on <date>", then "net N", then a named relative such as
// "due next week". today must already be truncated to a date.
func ExtractDueDate(in Input, today time.Time, d Defaults) time.Time {
	due := today.AddDate(0, 0, d.DueDays)

	if m := relativeDueRe.FindStringSubmatch(in.Lower); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			switch {
			case strings.HasPrefix(m[2], "day"):
				due = today.AddDate(0, 0, n)
			case strings.HasPrefix(m[2], "week"):
				due = today.AddDate(0, 0, 7*n)
			case strings.HasPrefix(m[2], "month"):
				due = today.AddDate(0, n, 0)
			}
		}
	}

	if m := explicitDueRe.FindStringSubmatch(in.Raw); m != nil {
		if t, ok := ParseExplicitDate(m[1], today); ok {
			due = t
		}
	}

	if m := netTermsRe.FindStringSubmatch(in.Lower); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			due = today.AddDate(0, 0, n)
		}
	}

	for i, re := range namedDueRes {
		if re.MatchString(in.Lower) {
			due = namedDue[i].shift(today)
			break
		}
	}
	return due
}

// ParseExplicitDate reads dates such as "March 15th, 2025", "Mar 15",
// "3/15/2025" and "2025-03-15". The result is midnight in today's location.
func ParseExplicitDate(s string, today time.Time) (time.Time, bool) {
	s = ordinalRe.ReplaceAllString(s, "$1")
	s = strings.Join(strings.Fields(strings.ReplaceAll(s, ",", " ")), " ")

	for _, l := range explicitDateLayouts {
		t, err := time.Parse(l.layout, s)
		if err != nil {
			continue
		}
		year := t.Year()
		if !l.hasYear {
			year = today.Year()
		}
		return time.Date(year, t.Month(), t.Day(), 0, 0, 0, 0, today.Location()), true
	}
	return time.Time{}, false
}
