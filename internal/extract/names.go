package extract

import (
	"regexp"
	"strings"
)

const (
	nameWords     = `[A-Z][a-z]+(?:[ \t]+[A-Z][a-z]+)*`
	companySuffix = `(?:[ \t]+(?:Incorporated|Inc|LLC|Ltd|Limited|Corporation|Corp|Company|Co|Group|Services|Solutions|Technologies|Consulting|Agency|Studio|Partners)\b)?`
)

var clientNameRules = []rule{
	{"role_label", regexp.MustCompile(`\b(?i:bill to|invoice to|client name|client|customer|recipient|to|for)[\s:]+(` + nameWords + companySuffix + `)`)},
	{"invoice_for", regexp.MustCompile(`\b(?i:invoice for)\s+(` + nameWords + `)`)},
	{"services_for", regexp.MustCompile(`\b(?i:services?\s+(?:for|to))\s+(` + nameWords + `)`)},
	{"work_for", regexp.MustCompile(`\b(?i:work\s+(?:for|with))\s+(` + nameWords + `)`)},
	{"project_for", regexp.MustCompile(`\b(?i:project\s+(?:for|with))\s+(` + nameWords + `)`)},
	{"requested_by", regexp.MustCompile(`\b(` + nameWords + `)\s+(?i:wants?|needs?|requests?|requested|asks?|asked)\b`)},
}

var businessNameRules = []rule{
	{"role_label", regexp.MustCompile(`\b(?i:bill from|business name|our company|my company|business|company|sender|from|by)[\s:]+(` + nameWords + companySuffix + `)`)},
	{"issued_by", regexp.MustCompile(`\b(?i:issued by)\s+(` + nameWords + `)`)},
	{"heading", regexp.MustCompile(`(?m)^(` + nameWords + `)\s+(?i:invoice)\b`)},
}

var properNounRe = regexp.MustCompile(`\b[A-Z][a-z]+(?:\s+[A-Z][a-z]+)*`)

// nameStopwords are capitalized words that start sentences or name dates and
// trades rather than people or companies.
var nameStopwords = toSet(
	// domain terms
	"invoice", "invoices", "service", "services", "project", "work", "hours", "days", "weeks", "months",
	"design", "development", "consulting", "management", "tax", "total", "due", "net", "payment",
	// calendar
	"january", "february", "march", "april", "may", "june", "july", "august", "september",
	"october", "november", "december", "jan", "feb", "mar", "apr", "jun", "jul", "aug", "sep", "sept",
	"oct", "nov", "dec", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
	"today", "tomorrow", "next",
	// imperatives and greetings
	"create", "please", "generate", "make", "send", "bill", "draft", "prepare", "charge", "add",
	"include", "hi", "hello", "dear", "thanks", "thank",
)

func toSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// onlyStopwords reports whether every word of a candidate name is a stopword.
func onlyStopwords(name string) bool {
	for _, w := range strings.Fields(name) {
		if _, ok := nameStopwords[strings.ToLower(w)]; !ok {
			return false
		}
	}
	return true
}

func acceptName(s string) (string, bool) {
	s = strings.Join(strings.Fields(s), " ")
	if s == "" || onlyStopwords(s) {
		return "", false
	}
	return s, true
}

// NameTrace records which rule produced each name.
type NameTrace struct {
	Client   string
	Business string
}

// ExtractNames resolves the client and business display names. The client
// falls back to the first proper noun in the text; the business name has no
// such fallback.
func ExtractNames(in Input, d Defaults) (Parties, NameTrace) {
	var p Parties
	var tr NameTrace

	if v, src, ok := firstCapture(clientNameRules, in.Raw, acceptName); ok {
		p.Client, tr.Client = v, src
	} else if nouns := ProperNouns(in); len(nouns) > 0 {
		p.Client, tr.Client = nouns[0], SourceProperNoun
	} else {
		p.Client, tr.Client = d.ClientName, SourceDefault
	}

	if v, src, ok := firstCapture(businessNameRules, in.Raw, acceptName); ok {
		p.Business, tr.Business = v, src
	} else {
		p.Business, tr.Business = d.BusinessName, SourceDefault
	}
	return p, tr
}

// ProperNouns lists distinct capitalized word runs in order of appearance,
// skipping runs made only of stopwords.
func ProperNouns(in Input) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, m := range properNounRe.FindAllString(in.Raw, -1) {
		noun, ok := acceptName(m)
		if !ok {
			continue
		}
		if _, dup := seen[noun]; dup {
			continue
		}
		seen[noun] = struct{}{}
		out = append(out, noun)
	}
	return out
}
