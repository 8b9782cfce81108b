package cssengine

import (
	"errors"
	"testing"
)

func TestSyntaxErrorError(t *testing.T) {
	tests := []struct {
		err  *SyntaxError
		want string
	}{
		{
			&SyntaxError{Line: 1, Col: 1, Msg: "unclosed block", Text: "{"},
			`css: unclosed block "{" at line 1, column 1`,
		},
		{
			&SyntaxError{Line: 3, Col: 12, Msg: "expected '{' after selector"},
			`css: expected '{' after selector at line 3, column 12`,
		},
	}
	for _, test := range tests {
		if got := test.err.Error(); got != test.want {
			t.Errorf("Error() = %q, want %q", got, test.want)
		}
	}
}

func TestPosition(t *testing.T) {
	tests := []struct {
		s        string
		pos      int
		wantLine int
		wantCol  int
	}{
		{"", 0, 1, 1},
		{"abc", 2, 1, 3},
		{"a\nbc", 1, 1, 2},
		{"a\nbc", 3, 2, 2},
		{"a\n\n\nb", 4, 4, 1},
		{"a\n\n\nb", 5, 4, 2},
		{"ab", 10, 1, 3},
	}
	for _, test := range tests {
		line, col := position(test.s, test.pos)
		if line != test.wantLine || col != test.wantCol {
			t.Errorf("position(%q, %d) = %d:%d, want %d:%d",
				test.s, test.pos, line, col, test.wantLine, test.wantCol)
		}
	}
}

func TestAnalyzeError(t *testing.T) {
	if err := Analyze(".a { color: red; }\n.b { width: 10px }"); err != nil {
		t.Fatalf("Analyze: unexpected error: %v", err)
	}

	err := Analyze(".a {\n  color red;\n}\n.b { : blue }")
	errs := SyntaxErrors(err)
	if len(errs) != 2 {
		t.Fatalf("Analyze returned %d errors, want 2: %v", len(errs), err)
	}
	want := `css: expected ':' after property "color" at line 2, column 3`
	if got := errs[0].Error(); got != want {
		t.Errorf("first error = %q, want %q", got, want)
	}
	want = `css: expected property name ":" at line 4, column 6`
	if got := errs[1].Error(); got != want {
		t.Errorf("second error = %q, want %q", got, want)
	}

	var serr *SyntaxError
	if !errors.As(err, &serr) {
		t.Errorf("errors.As(%v, *SyntaxError) = false", err)
	}
}

func TestSyntaxErrors(t *testing.T) {
	if errs := SyntaxErrors(nil); errs != nil {
		t.Errorf("SyntaxErrors(nil) = %v, want nil", errs)
	}
	if errs := SyntaxErrors(errors.New("other")); errs != nil {
		t.Errorf("SyntaxErrors(other) = %v, want nil", errs)
	}
}

func TestParseStyleSheet(t *testing.T) {
	css := `
button { border-radius: 5px; }
.my-class { color: red; background-color: blue; }
`
	s, err := Parse(css)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	tests := []struct {
		query string
		want  []StyleGroup
	}{
		{"button", []StyleGroup{
			{PseudoNone, []Declaration{{PropBorderRadius, NewPx(5)}}},
		}},
		{".my-class", []StyleGroup{
			{PseudoNone, []Declaration{
				{PropColor, RGBA8(255, 0, 0, 255)},
				{PropBackgroundColor, RGBA8(0, 0, 255, 255)},
			}},
		}},
		{".other-class", nil},
	}
	for _, test := range tests {
		got := s.GetStyles(test.query)
		if diff := cmpDiff(test.want, got); diff != "" {
			t.Errorf("GetStyles(%q) returned diff (-want, +got): %s", test.query, diff)
		}
	}
}

func TestParseSyntaxError(t *testing.T) {
	s, err := Parse(".a { color: red } .b { color blue } }")
	if n := len(SyntaxErrors(err)); n != 2 {
		t.Fatalf("Parse returned %d syntax errors, want 2: %v", n, err)
	}
	if s == nil {
		t.Fatalf("Parse returned nil StyleSheet")
	}
	if n := s.Len(); n != 1 {
		t.Errorf("StyleSheet has %d entries, want 1", n)
	}

	if n := FromCSS(".a { color: red } .b { color blue } }").Len(); n != 1 {
		t.Errorf("FromCSS StyleSheet has %d entries, want 1", n)
	}
}

func TestMustParse(t *testing.T) {
	if n := MustParse(".a { color: red }").Len(); n != 1 {
		t.Errorf("MustParse StyleSheet has %d entries, want 1", n)
	}

	defer func() {
		if recover() == nil {
			t.Errorf("MustParse did not panic on a syntax error")
		}
	}()
	MustParse(".a { color: red")
}
