package extract

import (
	"regexp"
	"strings"

	"github.com/joseph-ayodele/invoice-drafter/constants"
	"github.com/joseph-ayodele/invoice-drafter/internal/entity"
)

// Line item sources. The first five name the pattern families in the order
// they are tried.
const (
	SourceQtyAtRate  = "qty_at_rate"
	SourceDashQty    = "dash_qty"
	SourceAmountFor  = "amount_for"
	SourceLabelColon = "label_colon"
	SourceBullet     = "bullet"
	SourceFallback   = "fallback"
)

const (
	money    = `(\d+(?:,\d{3})*(?:\.\d{1,2})?)`
	quantity = `(\d+(?:\.\d+)?)`
	unit     = `(?:hours?|hrs?|days?|weeks?|months?|items?|units?|pieces?|pages?|sessions?)\b`
	desc     = `([A-Za-z][A-Za-z \t]+?)`
	dash     = `[-–—]`
)

// itemFamily is one line item pattern. build receives the submatches and
// returns the item, or false when the match is not a usable line.
type itemFamily struct {
	name  string
	re    *regexp.Regexp
	build func(m []string) (entity.LineItem, bool)
}

var itemFamilies = []itemFamily{
	{
		// "5 hours of consulting at $150/hour"
		name: SourceQtyAtRate,
		re: regexp.MustCompile(`(?i)` + quantity + `\s*(?:` + unit + `)?\s*(?:of\s+)?` + desc +
			`\s*(?:\bat\b|\bfor\b|@)\s*\$?` + money + `(%?)\s*(?:each|per\s+\w+|/\s*[A-Za-z]+)?`),
		build: func(m []string) (entity.LineItem, bool) { return qtyRateItem(m[2], m[1], m[3], m[4]) },
	},
	{
		// "Copywriting - 4 hours @ $75"
		name: SourceDashQty,
		re: regexp.MustCompile(`(?i)` + desc + `\s*` + dash + `\s*` + quantity + `\s*(?:` + unit + `)?\s*(?:\bat\b|@)\s*\$?` +
			money + `(%?)`),
		build: func(m []string) (entity.LineItem, bool) { return qtyRateItem(m[1], m[2], m[3], m[4]) },
	},
	{
		// "$500 for photo editing,"
		name:  SourceAmountFor,
		re:    regexp.MustCompile(`(?i)\$?` + money + `\s+(?:for|worth of)\s+` + desc + `(?:[.,]|$)`),
		build: func(m []string) (entity.LineItem, bool) { return flatItem(m[2], m[1], "") },
	},
	{
		// "Logo design project: $800"
		name:  SourceLabelColon,
		re:    regexp.MustCompile(`(?i)` + desc + `:\s*\$?` + money + `(%?)`),
		build: func(m []string) (entity.LineItem, bool) { return flatItem(m[1], m[2], m[3]) },
	},
	{
		// "- Hosting - $20"
		name:  SourceBullet,
		re:    regexp.MustCompile(`(?im)^[ \t]*[-•*][ \t]*` + desc + `[ \t]*` + dash + `[ \t]*\$?` + money + `(%?)`),
		build: func(m []string) (entity.LineItem, bool) { return flatItem(m[1], m[2], m[3]) },
	},
}

func qtyRateItem(rawDesc, rawQty, rawRate, pct string) (entity.LineItem, bool) {
	if pct != "" {
		return entity.LineItem{}, false
	}
	description, ok := usableDescription(rawDesc)
	if !ok {
		return entity.LineItem{}, false
	}
	qty, ok := parseAmount(rawQty)
	if !ok {
		return entity.LineItem{}, false
	}
	rate, ok := parseAmount(rawRate)
	if !ok {
		return entity.LineItem{}, false
	}
	return entity.NewLineItem(description, qty, rate), true
}

func flatItem(rawDesc, rawAmount, pct string) (entity.LineItem, bool) {
	return qtyRateItem(rawDesc, "1", rawAmount, pct)
}

// ExtractLineItems runs the item families in order and returns the items of
// the first family that accepts anything, together with that family's name.
// When none does, a single item is built from the first dollar amount and a
// service description.
func ExtractLineItems(in Input, d Defaults) ([]entity.LineItem, string) {
	for _, f := range itemFamilies {
		var items []entity.LineItem
		for _, m := range f.re.FindAllStringSubmatch(in.Raw, -1) {
			if item, ok := f.build(m); ok {
				items = append(items, item)
			}
		}
		if len(items) > 0 {
			return items, f.name
		}
	}

	rate := d.Rate
	for _, m := range fallbackAmountRe.FindAllStringSubmatch(in.Raw, -1) {
		if m[2] != "" {
			continue
		}
		if v, ok := parseAmount(m[1]); ok {
			rate = v
			break
		}
	}
	description := ServiceDescription(in)
	if description == "" {
		description = d.ServiceDescription
	}
	return []entity.LineItem{entity.NewLineItem(description, 1, rate)}, SourceFallback
}

var fallbackAmountRe = regexp.MustCompile(`\$\s?` + money + `(%?)`)

var (
	leadingFillerRe  = regexp.MustCompile(`(?i)^(?:and|or|with|for|to|at|the)\s+`)
	trailingFillerRe = regexp.MustCompile(`(?i)\s+(?:and|or|with|for|to|at|the)$`)
)

// CleanDescription trims and collapses whitespace and drops one leading and
// one trailing filler word.
func CleanDescription(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	s = leadingFillerRe.ReplaceAllString(s, "")
	s = trailingFillerRe.ReplaceAllString(s, "")
	return s
}

var rejectedDescriptionWords = []string{"email", "mail", "address", "phone", "due", "client", "customer", "invoice", "bill"}

// IsRejectedDescription reports whether a description mentions structural
// words that mark it as something other than billable work.
func IsRejectedDescription(s string) bool {
	lower := strings.ToLower(s)
	for _, w := range rejectedDescriptionWords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

var bareUnitRe = regexp.MustCompile(`(?i)^` + unit + `$`)

func usableDescription(raw string) (string, bool) {
	s := CleanDescription(raw)
	if s == "" || IsRejectedDescription(s) || bareUnitRe.MatchString(s) {
		return "", false
	}
	return s, true
}

var serviceRules = []rule{
	{"for_phrase", regexp.MustCompile(`(?i)\b(?:invoice for|bill for|for)\s+([A-Za-z][A-Za-z \t]+?)(?:\s+(?:services?|work|project))?(?:[.,]|$|\s+(?:to|for|at)\b)`)},
	{"before_trade", regexp.MustCompile(`(?i)([A-Za-z][A-Za-z \t]+?)\s+(?:services?|work|project|consultation|consulting|development|design|management)\b`)},
	{"after_trade", regexp.MustCompile(`(?i)\b(?:services?|work|project|consultation|consulting|development|design|management)\s+(?:for|in|on)\s+([A-Za-z][A-Za-z \t]+)`)},
}

var commonServiceRes = func() []*regexp.Regexp {
	res := make([]*regexp.Regexp, len(constants.CommonServices))
	for i, s := range constants.CommonServices {
		res[i] = regexp.MustCompile(`\b` + regexp.QuoteMeta(s) + `\b`)
	}
	return res
}()

// ServiceDescription guesses what was sold when no line item pattern
// matched: a captured service phrase, then a known service keyword. It
// returns "" when neither is present.
func ServiceDescription(in Input) string {
	if v, _, ok := firstCapture(serviceRules, in.Raw, usableDescription); ok {
		return v
	}
	for i, re := range commonServiceRes {
		if re.MatchString(in.Lower) {
			return constants.ServiceLabel(constants.CommonServices[i])
		}
	}
	return ""
}
