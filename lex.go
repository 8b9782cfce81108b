package cssengine

import (
	"fmt"
	"unicode/utf8"
)

// lexer implements tokenization for stylesheets. The algorithm follows the
// CSS Syntax recommendations, with comments folded into whitespace and malformed
// strings or URLs reported as bad tokens instead of errors.
//
// https://www.w3.org/TR/css-syntax-3/#tokenization
type lexer struct {
	s    string
	last int
	pos  int
	// width of the rune returned by the last pop. Invalid UTF-8 is
	// consumed one byte at a time.
	width int
}

func newLexer(s string) *lexer {
	return &lexer{s: s}
}

const eof = 0

func (l *lexer) peek() rune {
	if len(l.s) <= l.pos {
		return eof
	}
	r, _ := utf8.DecodeRuneInString(l.s[l.pos:])
	return r
}

func (l *lexer) peekN(n int) rune {
	var r rune
	pos := l.pos
	for i := 0; i <= n; i++ {
		if len(l.s) <= pos {
			return eof
		}
		var n int
		r, n = utf8.DecodeRuneInString(l.s[pos:])
		pos += n
	}
	return r
}

// push is the equivalent of "reconsume the current input code point".
func (l *lexer) push() {
	l.pos -= l.width
	l.width = 0
}

func (l *lexer) pop() rune {
	if len(l.s) <= l.pos {
		l.width = 0
		return eof
	}
	r, n := utf8.DecodeRuneInString(l.s[l.pos:])
	l.pos += n
	l.width = n
	return r
}

func (l *lexer) popN(n int) {
	for i := 0; i < n; i++ {
		l.pop()
	}
}

type tokenType int

// Create a shorter type aliases so links to csswg.org don't wrap.
type tt = tokenType

const (
	_                 tt = iota
	tokenAtKeyword       // https://drafts.csswg.org/css-syntax-3/#typedef-at-keyword-token
	tokenBadComment      // unterminated /* comment
	tokenBadString       // https://drafts.csswg.org/css-syntax-3/#typedef-bad-string-token
	tokenBadURL          // https://drafts.csswg.org/css-syntax-3/#typedef-bad-url-token
	tokenBracketClose    // https://drafts.csswg.org/css-syntax-3/#tokendef-close-square
	tokenBracketOpen     // https://drafts.csswg.org/css-syntax-3/#tokendef-open-square
	tokenCDC             // https://drafts.csswg.org/css-syntax-3/#typedef-cdc-token
	tokenCDO             // https://drafts.csswg.org/css-syntax-3/#typedef-cdo-token
	tokenColon           // https://drafts.csswg.org/css-syntax-3/#typedef-colon-token
	tokenComma           // https://drafts.csswg.org/css-syntax-3/#typedef-comma-token
	tokenCurlyClose      // https://drafts.csswg.org/css-syntax-3/#tokendef-close-curly
	tokenCurlyOpen       // https://drafts.csswg.org/css-syntax-3/#tokendef-open-curly
	tokenDelim           // https://drafts.csswg.org/css-syntax-3/#typedef-delim-token
	tokenDimension       // https://drafts.csswg.org/css-syntax-3/#typedef-dimension-token
	tokenEOF             // https://drafts.csswg.org/css-syntax-3/#typedef-eof-token
	tokenFunction        // https://drafts.csswg.org/css-syntax-3/#typedef-function-token
	tokenHash            // https://drafts.csswg.org/css-syntax-3/#typedef-hash-token
	tokenIdent           // https://www.w3.org/TR/css-syntax-3/#typedef-ident-token
	tokenNumber          // https://drafts.csswg.org/css-syntax-3/#typedef-number-token
	tokenParenClose      // https://drafts.csswg.org/css-syntax-3/#tokendef-close-paren
	tokenParenOpen       // https://drafts.csswg.org/css-syntax-3/#tokendef-open-paren
	tokenPercent         // https://drafts.csswg.org/css-syntax-3/#typedef-percentage-token
	tokenSemicolon       // https://drafts.csswg.org/css-syntax-3/#typedef-semicolon-token
	tokenString          // https://drafts.csswg.org/css-syntax-3/#typedef-string-token
	tokenURL             // https://drafts.csswg.org/css-syntax-3/#typedef-url-token
	tokenWhitespace      // https://drafts.csswg.org/css-syntax-3/#typedef-whitespace-token
)

var tokenTypeString = map[tokenType]string{
	tokenAtKeyword:    "<at-keyword-token>",
	tokenBadComment:   "<bad-comment-token>",
	tokenBadString:    "<bad-string-token>",
	tokenBadURL:       "<bad-url-token>",
	tokenBracketClose: "<]-token>",
	tokenBracketOpen:  "<[-token>",
	tokenCDC:          "<CDC-token>",
	tokenCDO:          "<CDO-token>",
	tokenColon:        "<colon-token>",
	tokenComma:        "<comma-token>",
	tokenCurlyClose:   "<}-token>",
	tokenCurlyOpen:    "<{-token>",
	tokenDelim:        "<delim-token>",
	tokenDimension:    "<dimension-token>",
	tokenEOF:          "<eof-token>",
	tokenFunction:     "<function-token>",
	tokenHash:         "<hash-token>",
	tokenIdent:        "<ident-token>",
	tokenNumber:       "<number-token>",
	tokenParenClose:   "<)-token>",
	tokenParenOpen:    "<(-token>",
	tokenPercent:      "<percentage-token>",
	tokenSemicolon:    "<semicolon-token>",
	tokenString:       "<string-token>",
	tokenURL:          "<url-token>",
	tokenWhitespace:   "<whitespace-token>",
}

func (t tokenType) String() string {
	if s, ok := tokenTypeString[t]; ok {
		return s
	}
	return fmt.Sprintf("<0x%x-token>", int(t))
}

// token is a slice of the source string. s shares memory with the input, so
// tokenizing never copies the stylesheet.
type token struct {
	typ tokenType
	s   string
	pos int
}

func (t token) String() string {
	return fmt.Sprintf("%s %q pos=%d", t.typ, t.s, t.pos)
}

func (t token) end() int {
	return t.pos + len(t.s)
}

func (t token) isDelim(s string) bool {
	return t.typ == tokenDelim && t.s == s
}

func (l *lexer) token(typ tokenType) token {
	t := token{typ, l.s[l.last:l.pos], l.last}
	l.last = l.pos
	return t
}

// tokenize runs the lexer to completion. The trailing EOF token is not
// included. Calling it again on the same input yields the same tokens.
func tokenize(s string) []token {
	l := newLexer(s)
	toks := make([]token, 0, len(s)/4)
	for {
		t := l.next()
		if t.typ == tokenEOF {
			return toks
		}
		toks = append(toks, t)
	}
}

// https://www.w3.org/TR/css-syntax-3/#consume-token
func (l *lexer) next() token {
	r := l.pop()

	if isWhitespace(r) || (r == '/' && l.peek() == '*') {
		l.push()
		return l.consumeWhitespace()
	}

	if isDigit(r) {
		l.push()
		return l.consumeNumericToken()
	}

	if isNameStart(r) {
		l.push()
		return l.consumeIdentLikeToken()
	}

	switch r {
	case '"', '\'':
		return l.string(r)
	case eof:
		return l.token(tokenEOF)
	case '#':
		if isName(l.peek()) || isValidEscape(l.peek(), l.peekN(1)) {
			l.consumeName()
			return l.token(tokenHash)
		}
		return l.token(tokenDelim)
	case '(':
		return l.token(tokenParenOpen)
	case ')':
		return l.token(tokenParenClose)
	case '+':
		if isNumStart(r, l.peek(), l.peekN(1)) {
			l.push()
			return l.consumeNumericToken()
		}
		return l.token(tokenDelim)
	case ',':
		return l.token(tokenComma)
	case '-':
		if isNumStart(r, l.peek(), l.peekN(1)) {
			l.push()
			return l.consumeNumericToken()
		}
		if l.peek() == '-' && l.peekN(1) == '>' {
			l.popN(2)
			return l.token(tokenCDC)
		}
		if isIdentStart(r, l.peek(), l.peekN(1)) {
			l.push()
			return l.consumeIdentLikeToken()
		}
		return l.token(tokenDelim)
	case '.':
		if isNumStart(r, l.peek(), l.peekN(1)) {
			l.push()
			return l.consumeNumericToken()
		}
		return l.token(tokenDelim)
	case ':':
		return l.token(tokenColon)
	case ';':
		return l.token(tokenSemicolon)
	case '<':
		if l.peek() == '!' && l.peekN(1) == '-' && l.peekN(2) == '-' {
			l.popN(3)
			return l.token(tokenCDO)
		}
		return l.token(tokenDelim)
	case '@':
		if isIdentStart(l.peek(), l.peekN(1), l.peekN(2)) {
			l.consumeName()
			return l.token(tokenAtKeyword)
		}
		return l.token(tokenDelim)
	case '[':
		return l.token(tokenBracketOpen)
	case '\\':
		if !isValidEscape(r, l.peek()) {
			return l.token(tokenDelim)
		}
		l.push()
		return l.consumeIdentLikeToken()
	case ']':
		return l.token(tokenBracketClose)
	case '{':
		return l.token(tokenCurlyOpen)
	case '}':
		return l.token(tokenCurlyClose)
	}
	return l.token(tokenDelim)
}

// consumeWhitespace folds runs of whitespace and comments into a single
// whitespace token.
//
// https://www.w3.org/TR/css-syntax-3/#consume-comments
func (l *lexer) consumeWhitespace() token {
	for {
		switch r := l.peek(); {
		case isWhitespace(r):
			l.pop()
		case r == '/' && l.peekN(1) == '*':
			l.popN(2)
			for {
				r := l.pop()
				if r == eof {
					return l.token(tokenBadComment)
				}
				if r == '*' && l.peek() == '/' {
					l.pop()
					break
				}
			}
		default:
			return l.token(tokenWhitespace)
		}
	}
}

// https://www.w3.org/TR/css-syntax-3/#consume-a-string-token
func (l *lexer) string(quote rune) token {
	for {
		switch l.pop() {
		case quote:
			return l.token(tokenString)
		case eof:
			return l.token(tokenBadString)
		case '\n':
			l.push()
			return l.token(tokenBadString)
		case '\\':
			switch l.peek() {
			case eof:
			case '\n':
				l.pop()
			default:
				l.consumeEscape()
			}
		}
	}
}

// https://www.w3.org/TR/css-syntax-3/#consume-an-escaped-code-point
func (l *lexer) consumeEscape() {
	r := l.pop()
	if r == eof || !isHex(r) {
		return
	}
	for n := 1; n < 6 && isHex(l.peek()); n++ {
		l.pop()
	}
	if isWhitespace(l.peek()) {
		l.pop()
	}
}

// https://www.w3.org/TR/css-syntax-3/#consume-a-name
func (l *lexer) consumeName() {
	for {
		r := l.peek()
		if isName(r) {
			l.pop()
			continue
		}

		if isValidEscape(r, l.peekN(1)) {
			l.pop()
			l.consumeEscape()
			continue
		}
		return
	}
}

// https://www.w3.org/TR/css-syntax-3/#consume-a-numeric-token
func (l *lexer) consumeNumericToken() token {
	l.consumeNumber()

	if isIdentStart(l.peek(), l.peekN(1), l.peekN(2)) {
		l.consumeName()
		return l.token(tokenDimension)
	}

	if l.peek() == '%' {
		l.pop()
		return l.token(tokenPercent)
	}
	return l.token(tokenNumber)
}

// https://www.w3.org/TR/css-syntax-3/#consume-an-ident-like-token
func (l *lexer) consumeIdentLikeToken() token {
	if l.startsURL() {
		return l.consumeURL()
	}

	l.consumeName()

	if l.peek() == '(' {
		l.pop()
		return l.token(tokenFunction)
	}

	return l.token(tokenIdent)
}

func (l *lexer) startsURL() bool {
	if !(l.peek() == 'u' || l.peek() == 'U') {
		return false
	}
	if !(l.peekN(1) == 'r' || l.peekN(1) == 'R') {
		return false
	}
	if !(l.peekN(2) == 'l' || l.peekN(2) == 'L') {
		return false
	}
	if l.peekN(3) != '(' {
		return false
	}

	// Consume up to two characters of whitespace.
	n := 4
	for i := 0; i < 2; i++ {
		if !isWhitespace(l.peekN(n)) {
			break
		}
		n++
	}

	r := l.peekN(n)
	if r == '\'' || r == '"' {
		return false
	}

	l.popN(4)
	return true
}

// https://www.w3.org/TR/css-syntax-3/#consume-a-url-token
func (l *lexer) consumeURL() token {
	for isWhitespace(l.peek()) {
		l.pop()
	}

	for {
		r := l.pop()
		switch {
		case r == ')':
			return l.token(tokenURL)
		case r == eof:
			return l.token(tokenBadURL)
		case isWhitespace(r):
			for isWhitespace(l.peek()) {
				l.pop()
			}
			if l.peek() == ')' {
				l.pop()
				return l.token(tokenURL)
			}
			return l.consumeBadURL()
		case r == '\'', r == '"', r == '(', isNonPrintable(r):
			return l.consumeBadURL()
		case r == '\\':
			if !isValidEscape(r, l.peek()) {
				return l.consumeBadURL()
			}
			l.consumeEscape()
		}
	}
}

// https://www.w3.org/TR/css-syntax-3/#consume-the-remnants-of-a-bad-url
func (l *lexer) consumeBadURL() token {
	for {
		switch r := l.pop(); {
		case r == ')', r == eof:
			return l.token(tokenBadURL)
		case isValidEscape(r, l.peek()):
			l.consumeEscape()
		}
	}
}

// https://www.w3.org/TR/css-syntax-3/#consume-a-number
func (l *lexer) consumeNumber() {
	if l.peek() == '+' || l.peek() == '-' {
		l.pop()
	}

	for isDigit(l.peek()) {
		l.pop()
	}

	if l.peek() == '.' && isDigit(l.peekN(1)) {
		l.popN(2)

		for isDigit(l.peek()) {
			l.pop()
		}
	}

	r1 := l.peek()
	r2 := l.peekN(1)
	r3 := l.peekN(2)

	if r1 == 'E' || r1 == 'e' {
		if isDigit(r2) {
			l.popN(2)

			for isDigit(l.peek()) {
				l.pop()
			}
		} else if (r2 == '+' || r2 == '-') && isDigit(r3) {
			l.popN(3)
			for isDigit(l.peek()) {
				l.pop()
			}
		}
	}
}

// https://www.w3.org/TR/css-syntax-3/#whitespace
func isWhitespace(r rune) bool {
	switch r {
	case '\n', '\t', ' ', '\r', '\f':
		return true
	default:
		return false
	}
}

// https://www.w3.org/TR/css-syntax-3/#hex-digit
func isHex(r rune) bool {
	return isDigit(r) || ('A' <= r && r <= 'F') || ('a' <= r && r <= 'f')
}

// https://www.w3.org/TR/css-syntax-3/#digit
func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// https://www.w3.org/TR/css-syntax-3/#letter
func isLetter(r rune) bool {
	return ('A' <= r && r <= 'Z') || ('a' <= r && r <= 'z')
}

// https://www.w3.org/TR/css-syntax-3/#non-ascii-code-point
func isNonASCII(r rune) bool {
	return r >= 0x80
}

// https://www.w3.org/TR/css-syntax-3/#name-code-point
func isName(r rune) bool {
	return isNameStart(r) || isDigit(r) || r == '-'
}

// https://www.w3.org/TR/css-syntax-3/#name-start-code-point
func isNameStart(r rune) bool {
	return isLetter(r) || isNonASCII(r) || r == '_'
}

// https://www.w3.org/TR/css-syntax-3/#check-if-three-code-points-would-start-a-number
func isNumStart(r1, r2, r3 rune) bool {
	if r1 == '+' || r1 == '-' {
		if isDigit(r2) {
			return true
		}
		if r2 == '.' && isDigit(r3) {
			return true
		}
		return false
	}

	if r1 == '.' {
		return isDigit(r2)
	}
	return isDigit(r1)
}

// https://www.w3.org/TR/css-syntax-3/#check-if-two-code-points-are-a-valid-escape
func isValidEscape(r1, r2 rune) bool {
	if r1 != '\\' {
		return false
	}
	if r2 == '\n' || r2 == eof {
		return false
	}
	return true
}

// https://www.w3.org/TR/css-syntax-3/#check-if-three-code-points-would-start-an-identifier
func isIdentStart(r1, r2, r3 rune) bool {
	if r1 == '-' {
		if isNameStart(r2) || r2 == '-' {
			return true
		}
		if isValidEscape(r2, r3) {
			return true
		}
		return false
	}
	if isNameStart(r1) {
		return true
	}
	if r1 == '\\' && isValidEscape(r1, r2) {
		return true
	}
	return false
}

func isNonPrintable(r rune) bool {
	if 0x0 <= r && r <= 0x8 {
		return true
	}
	if r == 0xb {
		return true
	}
	if 0xe <= r && r <= 0x1f {
		return true
	}
	if r == 0x7F {
		return true
	}
	return false
}
