package extract

import (
	"regexp"
	"strings"
)

// Role says which party an extracted value belongs to.
type Role int

const (
	RoleUnclassified Role = iota
	RoleClient
	RoleBusiness
)

func (r Role) String() string {
	switch r {
	case RoleClient:
		return "client"
	case RoleBusiness:
		return "business"
	default:
		return "unclassified"
	}
}

// emailContextWindow is how many bytes on each side of an address are
// inspected for role keywords.
const emailContextWindow = 50

var (
	emailRe            = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	clientEmailCtxRe   = regexp.MustCompile(`\b(?:client|customer|bill to|invoice to|recipient)\b`)
	businessEmailCtxRe = regexp.MustCompile(`\b(?:from|business|company|sender|bill from|my|our)\b`)
)

// ClassifyEmailRole inspects the text around the address at text[start:start+length].
// The address itself is excluded so a domain like company.com never votes.
// Client keywords are checked before business keywords.
func ClassifyEmailRole(text string, start, length int) Role {
	end := start + length
	if start < 0 || end > len(text) || start > end {
		return RoleUnclassified
	}
	before := text[max(0, start-emailContextWindow):start]
	after := text[end:min(len(text), end+emailContextWindow)]
	ctx := strings.ToLower(before + " " + after)

	switch {
	case clientEmailCtxRe.MatchString(ctx):
		return RoleClient
	case businessEmailCtxRe.MatchString(ctx):
		return RoleBusiness
	default:
		return RoleUnclassified
	}
}

// ExtractEmails assigns addresses to the client and business slots. Keyword
// classified addresses go first, each role keeping its first match. Whatever
// is left then fills the client slot and then the business slot in order of
// appearance.
func ExtractEmails(in Input, d Defaults) Parties {
	var p Parties
	var leftovers []string

	for _, loc := range emailRe.FindAllStringIndex(in.Raw, -1) {
		email := in.Raw[loc[0]:loc[1]]
		switch ClassifyEmailRole(in.Raw, loc[0], loc[1]-loc[0]) {
		case RoleClient:
			if p.Client == "" {
				p.Client = email
				continue
			}
		case RoleBusiness:
			if p.Business == "" {
				p.Business = email
				continue
			}
		}
		leftovers = append(leftovers, email)
	}

	for _, email := range leftovers {
		if email == p.Client || email == p.Business {
			continue
		}
		switch {
		case p.Client == "":
			p.Client = email
		case p.Business == "":
			p.Business = email
		}
	}

	if p.Client == "" {
		p.Client = d.ClientEmail
	}
	if p.Business == "" {
		p.Business = d.BusinessEmail
	}
	return p
}
