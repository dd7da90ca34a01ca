package extract

import (
	"regexp"
	"strings"
)

const (
	streetSuffix = `(?:Street|St|Avenue|Ave|Road|Rd|Boulevard|Blvd|Lane|Ln|Drive|Dr|Court|Ct|Place|Pl|Way|Circle|Cir)\b\.?`
	// cityTail picks up ", City" and ", ST 12345" after a street.
	cityTail = `(?:,[ \t]*[A-Z][A-Za-z]*(?:[ \t]+[A-Z][A-Za-z]*)*)?(?:,?[ \t]*[A-Z]{2}[ \t]+\d{5})?`
)

var (
	labeledAddressRe   = regexp.MustCompile(`(?i)\b(?:address|located at|office at)[\s:]+([^\n,.]+(?:,\s*[^\n,.]+)?(?:,\s*\d{5})?)`)
	numberedStreetRe   = regexp.MustCompile(`\b\d+(?:[ \t]+[A-Z][a-z]+)+[ \t]+` + streetSuffix + cityTail)
	unnumberedStreetRe = regexp.MustCompile(`\b[A-Z][a-z]+(?:[ \t]+[A-Z][a-z]+)*[ \t]+` + streetSuffix + cityTail)
)

// FindAddresses collects address-like substrings in first-seen order. Labeled
// addresses come first, then numbered streets, then bare street names. A
// match already covered by a collected address is skipped.
func FindAddresses(in Input) []string {
	var out []string
	add := func(addr string) {
		addr = strings.TrimSpace(addr)
		if addr == "" {
			return
		}
		for _, have := range out {
			// a bare street tail of a full address must not become a second address
			if strings.Contains(have, addr) {
				return
			}
		}
		out = append(out, addr)
	}

	for _, m := range labeledAddressRe.FindAllStringSubmatch(in.Raw, -1) {
		add(m[1])
	}
	for _, m := range numberedStreetRe.FindAllString(in.Raw, -1) {
		add(m)
	}
	for _, m := range unnumberedStreetRe.FindAllString(in.Raw, -1) {
		add(m)
	}
	return out
}

// ExtractAddresses gives the first address to the client. The business gets
// the second one, or the first again when only one was found.
func ExtractAddresses(in Input, d Defaults) Parties {
	addrs := FindAddresses(in)
	p := Parties{Client: d.ClientAddress, Business: d.BusinessAddress}
	switch {
	case len(addrs) >= 2:
		p.Client, p.Business = addrs[0], addrs[1]
	case len(addrs) == 1:
		p.Client, p.Business = addrs[0], addrs[0]
	}
	return p
}
