package cssengine

import (
	"testing"
)

func TestParseSelector(t *testing.T) {
	tests := []struct {
		in   string
		want Selector
	}{
		{"button", Selector{Text: "button"}},
		{"#counter", Selector{Text: "#counter"}},
		{"#counter:hover", Selector{Text: "#counter", Pseudo: PseudoHover}},
		{"#counter .btn:active", Selector{Text: "#counter .btn", Pseudo: PseudoActive}},
		{".btn:active:hover", Selector{Text: ".btn", Pseudo: PseudoActiveHover}},
		{".btn:hover:active", Selector{Text: ".btn", Pseudo: PseudoActiveHover}},
		{".btn:disabled", Selector{Text: ".btn", Pseudo: PseudoDisabled}},
		{".btn:hover:disabled", Selector{Text: ".btn", Pseudo: PseudoDisabledHover}},
		{".input:focus", Selector{Text: ".input", Pseudo: PseudoFocus}},
		{".input:focus:hover", Selector{Text: ".input", Pseudo: PseudoFocusHover}},
		{".input::placeholder", Selector{Text: ".input", Pseudo: PseudoPlaceholder}},
		{".input:placeholder", Selector{Text: ".input", Pseudo: PseudoPlaceholder}},
		{"p::selection", Selector{Text: "p", Pseudo: PseudoSelection}},
		{".btn:HOVER", Selector{Text: ".btn", Pseudo: PseudoHover}},
		// Unknown pseudo-classes are part of the selector.
		{":root", Selector{Text: ":root"}},
		{"li:first-child", Selector{Text: "li:first-child"}},
		// Only the last compound carries the state.
		{"a:hover .b", Selector{Text: "a:hover .b"}},
	}
	for _, test := range tests {
		got := parseSelector(test.in)
		if diff := cmpDiff(test.want, got); diff != "" {
			t.Errorf("parseSelector(%q) returned diff (-want, +got): %s", test.in, diff)
		}
		if test.want.Pseudo != PseudoNone && got.Pseudo.String() == "" {
			t.Errorf("parseSelector(%q) pseudo-class %d has no suffix", test.in, got.Pseudo)
		}
	}
}

func TestSelectorMatches(t *testing.T) {
	tests := []struct {
		sel   string
		query string
		want  bool
	}{
		{"button", "button", true},
		{".my-class", ".my-class", true},
		{".my-class", ".other-class", false},
		{"#counter", "#counter", true},
		{"#counter .header", "#counter", true},
		{"#counter .header", ".header", true},
		{"#counter .header", "#counter .header", true},
		{"#counter .header", "#counter .footer", false},
		{"#counter", "#counter .header", false},
		{"#counter", "  #counter\t", true},
		// Tokens match as substrings.
		{".bg-amber-50", ".bg-amber-5", true},
		{"", ".a", false},
		{".a", "", false},
		{".a", "   ", false},
	}
	for _, test := range tests {
		s := Selector{Text: test.sel}
		if got := s.matches(test.query); got != test.want {
			t.Errorf("%q.matches(%q) = %t, want %t", test.sel, test.query, got, test.want)
		}
	}
}

func TestSelectorString(t *testing.T) {
	tests := []struct {
		sel  Selector
		want string
	}{
		{Selector{Text: ".a"}, ".a"},
		{Selector{Text: "#counter", Pseudo: PseudoHover}, "#counter:hover"},
		{Selector{Text: ".b", Pseudo: PseudoFocusHover}, ".b:focus:hover"},
		{Selector{Text: ".input", Pseudo: PseudoPlaceholder}, ".input::placeholder"},
	}
	for _, test := range tests {
		if got := test.sel.String(); got != test.want {
			t.Errorf("String() = %q, want %q", got, test.want)
		}
		if got := parseSelector(test.want); got != test.sel {
			t.Errorf("parseSelector(%q) = %+v, want %+v", test.want, got, test.sel)
		}
	}
}
