package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// rule is one step of an ordered pattern cascade. Group 1 of re carries the
// candidate value.
type rule struct {
	name string
	re   *regexp.Regexp
}

// firstCapture tries rules in order and, within a rule, matches left to
// right. keep normalizes a candidate and reports whether it is acceptable.
// The first accepted candidate wins.
func firstCapture(rules []rule, text string, keep func(string) (string, bool)) (value, source string, ok bool) {
	for _, r := range rules {
		for _, m := range r.re.FindAllStringSubmatch(text, -1) {
			if v, ok := keep(m[1]); ok {
				return v, r.name, true
			}
		}
	}
	return "", "", false
}

func trimmed(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != ""
}

// parseAmount reads a money or quantity literal such as "1,500.00".
func parseAmount(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
