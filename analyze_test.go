package cssengine

import (
	"testing"
)

func TestAnalyze(t *testing.T) {
	type wantErr struct {
		Pos  int
		Msg  string
		Text string
	}
	tests := []struct {
		s    string
		want []wantErr
	}{
		{"", nil},
		{".a { color: red; }", nil},
		{".a, #b .c:hover { color: red; width: 10px }", nil},
		{".a { color: rgb(0, 0, 0); font-family: \"Fira Sans\", serif; }", nil},
		{"<!-- .a { color: red } -->", nil},
		{".a {}", nil},
		{
			"{ color: red }",
			[]wantErr{{0, "expected selector before '{'", "{"}},
		},
		{
			".a, { color: red }",
			[]wantErr{{2, "empty selector in selector list", ","}},
		},
		{
			".a,, .b { }",
			[]wantErr{{3, "empty selector in selector list", ","}},
		},
		{
			".a { color: red; } }",
			[]wantErr{{19, "unexpected '}'", "}"}},
		},
		{
			".a { color: red;",
			[]wantErr{{3, "unclosed block", "{"}},
		},
		{
			".a",
			[]wantErr{{0, "expected '{' after selector", "."}},
		},
		{
			".a; .b { }",
			[]wantErr{{2, "unexpected ';' in selector", ";"}},
		},
		{
			".a { color }",
			[]wantErr{{5, "expected ':' after property", "color"}},
		},
		{
			".a { color: ; }",
			[]wantErr{{5, "expected value for property", "color"}},
		},
		{
			".a { 12px: red }",
			[]wantErr{{5, "expected property name", "12px"}},
		},
		{
			".a { width: calc(1px; }",
			[]wantErr{{20, `unexpected ';' in value of "width"`, ";"}},
		},
		{
			".a { width: 1px) }",
			[]wantErr{{15, "unmatched ')'", ")"}},
		},
		{
			".a { b: { c: d } }",
			[]wantErr{{8, `unexpected '{' in value of "b"`, "{"}},
		},
		{
			"@media screen { .a { color: red } } .b { color: red }",
			[]wantErr{{0, "unsupported at-rule", "@media"}},
		},
		{
			".a { content: \"abc }",
			[]wantErr{
				{14, "unterminated string", "\"abc }"},
				{3, "unclosed block", "{"},
			},
		},
		{
			".a { b: c } /* x",
			[]wantErr{{11, "unterminated comment", " /* x"}},
		},
		{
			".a { background: url(a b) }",
			[]wantErr{{17, "malformed url", "url(a b)"}},
		},
		{
			// Errors in one rule do not hide errors in the next.
			".a { color red } .b { : blue } .c { width: 1px }",
			[]wantErr{
				{5, "expected ':' after property", "color"},
				{22, "expected property name", ":"},
			},
		},
	}

	for _, test := range tests {
		errs := analyzeTokens(tokenize(test.s), test.s)
		var got []wantErr
		for _, e := range errs {
			got = append(got, wantErr{e.Pos, e.Msg, e.Text})
		}
		if diff := cmpDiff(test.want, got); diff != "" {
			t.Errorf("analyze %q returned diff (-want, +got): %s", test.s, diff)
		}
	}
}
