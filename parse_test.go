package cssengine

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func cmpDiff(x, y interface{}) string {
	return cmp.Diff(x, y, cmp.AllowUnexported(token{}), cmpopts.EquateEmpty())
}

func parseRules(s string) []Rule {
	return newParser(s, tokenize(s)).parse()
}

func sel(text string) Selector {
	return Selector{Text: text}
}

func TestParse(t *testing.T) {
	tests := []struct {
		s    string
		want []Rule
	}{
		{"", nil},
		{"   /* nothing */ ", nil},
		{
			"button { border-radius: 5px; }",
			[]Rule{
				{[]Selector{sel("button")}, []Pair{{"border-radius", "5px"}}},
			},
		},
		{
			".my-class { color: red; background-color: blue }",
			[]Rule{
				{[]Selector{sel(".my-class")}, []Pair{
					{"color", "red"},
					{"background-color", "blue"},
				}},
			},
		},
		{
			"h1, .title ,#main{margin:0px}",
			[]Rule{
				{[]Selector{sel("h1"), sel(".title"), sel("#main")}, []Pair{{"margin", "0px"}}},
			},
		},
		{
			"#super-id   .my-class\n{ color : red }",
			[]Rule{
				{[]Selector{sel("#super-id .my-class")}, []Pair{{"color", "red"}}},
			},
		},
		{
			"#counter:hover { color: red; } .input::placeholder { color: gray; }",
			[]Rule{
				{[]Selector{{Text: "#counter", Pseudo: PseudoHover}}, []Pair{{"color", "red"}}},
				{[]Selector{{Text: ".input", Pseudo: PseudoPlaceholder}}, []Pair{{"color", "gray"}}},
			},
		},
		{
			".shadow { box-shadow: 4px  8px /* blur */ 10px black; }",
			[]Rule{
				{[]Selector{sel(".shadow")}, []Pair{{"box-shadow", "4px 8px 10px black"}}},
			},
		},
		{
			".a { color: red !important; width: 10px ! IMPORTANT; }",
			[]Rule{
				{[]Selector{sel(".a")}, []Pair{{"color", "red"}, {"width", "10px"}}},
			},
		},
		{
			".a { color: rgb(0, 0, 0); font-family: \"Fira Sans\", serif; }",
			[]Rule{
				{[]Selector{sel(".a")}, []Pair{
					{"color", "rgb(0, 0, 0)"},
					{"font-family", `"Fira Sans", serif`},
				}},
			},
		},
		{
			// Malformed declarations are skipped, the rest of the block survives.
			".a { color red; : blue; width: 10px; height: ; 12: 3px; margin: 1px }",
			[]Rule{
				{[]Selector{sel(".a")}, []Pair{{"width", "10px"}, {"margin", "1px"}}},
			},
		},
		{
			"@media screen { .a { color: red } } @import 'x.css'; .b { color: blue }",
			[]Rule{
				{[]Selector{sel(".b")}, []Pair{{"color", "blue"}}},
			},
		},
		{
			"} .a { color: red } { color: blue } .b { }",
			[]Rule{
				{[]Selector{sel(".a")}, []Pair{{"color", "red"}}},
				{[]Selector{sel(".b")}, nil},
			},
		},
		{
			".a { color: red; width: {10px}; height: 5px }",
			[]Rule{
				{[]Selector{sel(".a")}, []Pair{{"color", "red"}, {"height", "5px"}}},
			},
		},
		{
			".a { color: red",
			[]Rule{
				{[]Selector{sel(".a")}, []Pair{{"color", "red"}}},
			},
		},
		{
			"<!-- .a { color: red } -->",
			[]Rule{
				{[]Selector{sel(".a")}, []Pair{{"color", "red"}}},
			},
		},
		{".a", nil},
	}

	for _, test := range tests {
		got := parseRules(test.s)
		if diff := cmpDiff(test.want, got); diff != "" {
			t.Errorf("parse %q returned diff (-want, +got): %s", test.s, diff)
		}
	}
}

func TestParseRules(t *testing.T) {
	css := `
:root { --accent: #ff0000; --pad: 4px; }
.a { color: var(--accent); padding: var(--pad); margin: var(--missing); }
`
	rules, err := ParseRules(css)
	if err != nil {
		t.Fatalf("ParseRules: %v", err)
	}
	want := []Rule{
		{[]Selector{sel(":root")}, []Pair{{"--accent", "#ff0000"}, {"--pad", "4px"}}},
		{[]Selector{sel(".a")}, []Pair{{"color", "#ff0000"}, {"padding", "4px"}}},
	}
	if diff := cmpDiff(want, rules); diff != "" {
		t.Errorf("ParseRules returned diff (-want, +got): %s", diff)
	}
}

func TestParseRulesSyntaxError(t *testing.T) {
	rules, err := ParseRules(".a { color: red; } .b { color blue; } .c { width: 1px; }")
	if err == nil {
		t.Fatalf("ParseRules: expected error")
	}
	if n := len(SyntaxErrors(err)); n != 1 {
		t.Errorf("ParseRules returned %d errors, want 1: %v", n, err)
	}
	if len(rules) != 3 {
		t.Errorf("ParseRules returned %d rules, want 3", len(rules))
	}
}

func TestParseIdempotent(t *testing.T) {
	css := ".a, .b:hover { color: red; margin: 1px 2px } #c { width: 50% }"
	if diff := cmpDiff(parseRules(css), parseRules(css)); diff != "" {
		t.Errorf("parsing twice returned diff: %s", diff)
	}
}
