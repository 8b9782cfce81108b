package cssengine

import (
	"strings"
)

// PseudoClass is the element state a group of declarations applies to.
type PseudoClass int

// The zero value is the base group, applied regardless of state.
const (
	PseudoNone PseudoClass = iota
	PseudoHover
	PseudoActive
	PseudoActiveHover
	PseudoDisabled
	PseudoDisabledHover
	PseudoFocus
	PseudoFocusHover
	PseudoPlaceholder
	PseudoSelection
)

var pseudoClassString = map[PseudoClass]string{
	PseudoNone:          "",
	PseudoHover:         ":hover",
	PseudoActive:        ":active",
	PseudoActiveHover:   ":active:hover",
	PseudoDisabled:      ":disabled",
	PseudoDisabledHover: ":disabled:hover",
	PseudoFocus:         ":focus",
	PseudoFocusHover:    ":focus:hover",
	PseudoPlaceholder:   "::placeholder",
	PseudoSelection:     "::selection",
}

// pseudoSuffixes maps a selector suffix to its pseudo-class. Combined states
// are accepted in either order.
var pseudoSuffixes = map[string]PseudoClass{
	":hover":          PseudoHover,
	":active":         PseudoActive,
	":active:hover":   PseudoActiveHover,
	":hover:active":   PseudoActiveHover,
	":disabled":       PseudoDisabled,
	":disabled:hover": PseudoDisabledHover,
	":hover:disabled": PseudoDisabledHover,
	":focus":          PseudoFocus,
	":focus:hover":    PseudoFocusHover,
	":hover:focus":    PseudoFocusHover,
	":placeholder":    PseudoPlaceholder,
	"::placeholder":   PseudoPlaceholder,
	"::selection":     PseudoSelection,
}

// String returns the selector suffix of the pseudo-class, or "" for the base
// group.
func (p PseudoClass) String() string {
	return pseudoClassString[p]
}

// Selector is the text of one selector of a rule, with a recognized
// pseudo-class suffix moved into Pseudo.
type Selector struct {
	Text   string
	Pseudo PseudoClass
}

func (s Selector) String() string {
	return s.Text + s.Pseudo.String()
}

// parseSelector splits the pseudo-class suffix off the last compound of a
// selector. Unknown suffixes such as ":first-child" stay part of the text.
func parseSelector(text string) Selector {
	last := text[strings.LastIndexByte(text, ' ')+1:]
	i := strings.IndexByte(last, ':')
	if i < 0 {
		return Selector{Text: text}
	}
	pseudo, ok := pseudoSuffixes[strings.ToLower(last[i:])]
	if !ok {
		return Selector{Text: text}
	}
	return Selector{
		Text:   strings.TrimRight(text[:len(text)-len(last)+i], " "),
		Pseudo: pseudo,
	}
}

// matches reports whether every whitespace separated token of query occurs
// in the selector text. A query without tokens matches nothing.
func (s Selector) matches(query string) bool {
	matched := false
	for i := 0; i < len(query); {
		if isSpace(query[i]) {
			i++
			continue
		}
		j := i
		for j < len(query) && !isSpace(query[j]) {
			j++
		}
		if !strings.Contains(s.Text, query[i:j]) {
			return false
		}
		matched = true
		i = j
	}
	return matched
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\f':
		return true
	}
	return false
}
