package extract

import "strings"

// Input is the prompt text in its original case plus a lowercased copy for
// case-folded keyword scans.
type Input struct {
	Raw   string
	Lower string
}

func NewInput(text string) Input {
	return Input{Raw: text, Lower: strings.ToLower(text)}
}

// Parties holds a client value and a business value for one field family.
type Parties struct {
	Client   string
	Business string
}
