// Package cssengine parses a subset of CSS into typed style declarations and
// resolves, for an element identity such as "#counter .header", the ordered
// declaration groups that apply to it.
//
// The pipeline is lexer, syntax analyzer, rule parser, custom property
// substitution and declaration typing. Structural problems (unbalanced braces,
// a property without ':') are reported as *SyntaxError values. Unknown
// properties and values that fail to parse are dropped silently, the way
// browsers tolerate CSS they do not understand.
//
//	sheet, err := cssengine.Parse(".my-class { color: red; background-color: blue; }")
//	if err != nil {
//		for _, serr := range cssengine.SyntaxErrors(err) {
//			log.Println(serr)
//		}
//	}
//	for _, group := range sheet.GetStyles(".my-class") {
//		...
//	}
package cssengine

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/multierr"
)

// SyntaxError is a structural error found while analyzing a stylesheet, with
// the position in the source the error occurred.
type SyntaxError struct {
	Pos  int
	Line int
	Col  int
	Msg  string
	// Text is the offending slice of the source.
	Text string
}

// Error returns a formatted version of the error.
func (e *SyntaxError) Error() string {
	if e.Text == "" {
		return fmt.Sprintf("css: %s at line %d, column %d", e.Msg, e.Line, e.Col)
	}
	return fmt.Sprintf("css: %s %q at line %d, column %d", e.Msg, e.Text, e.Line, e.Col)
}

func errorf(src string, t token, msg string, v ...interface{}) *SyntaxError {
	line, col := position(src, t.pos)
	return &SyntaxError{
		Pos:  t.pos,
		Line: line,
		Col:  col,
		Msg:  fmt.Sprintf(msg, v...),
		Text: t.s,
	}
}

// position converts a byte offset into a 1-based line and column.
func position(src string, pos int) (int, int) {
	if pos > len(src) {
		pos = len(src)
	}
	before := src[:pos]
	line := strings.Count(before, "\n") + 1
	col := pos - strings.LastIndexByte(before, '\n')
	return line, col
}

// SyntaxErrors returns the individual syntax errors combined in err. It
// returns nil if err holds none.
func SyntaxErrors(err error) []*SyntaxError {
	var errs []*SyntaxError
	for _, e := range multierr.Errors(err) {
		var serr *SyntaxError
		if errors.As(e, &serr) {
			errs = append(errs, serr)
		}
	}
	return errs
}

func combine(errs []*SyntaxError) error {
	var err error
	for _, e := range errs {
		err = multierr.Append(err, e)
	}
	return err
}

// Analyze reports the structural syntax errors of a stylesheet. A nil error
// means the input is well formed. Use SyntaxErrors to access each record.
func Analyze(css string) error {
	return combine(analyzeTokens(tokenize(css), css))
}

// ParseRules runs the lexer, analyzer and rule parser over css and
// substitutes custom property references. The returned rules are a best
// effort parse even when a non-nil error reports syntax errors; the caller
// decides whether to use them.
func ParseRules(css string) ([]Rule, error) {
	toks := tokenize(css)
	errs := analyzeTokens(toks, css)
	rules := substituteVars(newParser(css, toks).parse())
	return rules, combine(errs)
}
