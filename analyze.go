package cssengine

// analyzer checks the token stream for structural well-formedness. It never
// stops at the first problem: every error is recorded and scanning resumes at
// the next point where the input makes sense again.
//
// Property and value semantics are not checked here.
type analyzer struct {
	src  string
	toks []token
	i    int
	errs []*SyntaxError
}

func analyzeTokens(toks []token, src string) []*SyntaxError {
	a := &analyzer{src: src, toks: toks}
	a.stylesheet()
	return a.errs
}

func (a *analyzer) errorf(t token, msg string, v ...interface{}) {
	a.errs = append(a.errs, errorf(a.src, t, msg, v...))
}

func (a *analyzer) eof() token {
	return token{typ: tokenEOF, pos: len(a.src)}
}

func (a *analyzer) next() token {
	if a.i >= len(a.toks) {
		return a.eof()
	}
	t := a.toks[a.i]
	a.i++
	return t
}

func (a *analyzer) peek() token {
	if a.i >= len(a.toks) {
		return a.eof()
	}
	return a.toks[a.i]
}

func (a *analyzer) skipWhitespace() {
	for a.peek().typ == tokenWhitespace {
		a.i++
	}
}

// badToken reports lexer level problems. It returns true if t was one.
func (a *analyzer) badToken(t token) bool {
	switch t.typ {
	case tokenBadComment:
		a.errorf(t, "unterminated comment")
	case tokenBadString:
		a.errorf(t, "unterminated string")
	case tokenBadURL:
		a.errorf(t, "malformed url")
	default:
		return false
	}
	return true
}

func (a *analyzer) stylesheet() {
	for {
		a.skipWhitespace()
		t := a.peek()
		switch t.typ {
		case tokenEOF:
			return
		case tokenCDO, tokenCDC:
			a.next()
		case tokenBadComment:
			a.badToken(a.next())
		case tokenAtKeyword:
			a.next()
			a.errorf(t, "unsupported at-rule")
			a.skipAtRule()
		case tokenCurlyClose:
			a.next()
			a.errorf(t, "unexpected '}'")
		default:
			a.rule()
		}
	}
}

// skipAtRule consumes an at-rule up to its ';' or the end of its block.
func (a *analyzer) skipAtRule() {
	for {
		t := a.next()
		switch t.typ {
		case tokenEOF, tokenSemicolon:
			return
		case tokenCurlyOpen:
			a.skipBlock(t)
			return
		}
	}
}

// skipBlock consumes tokens through the '}' matching open.
func (a *analyzer) skipBlock(open token) {
	depth := 1
	for depth > 0 {
		t := a.next()
		switch t.typ {
		case tokenEOF:
			a.errorf(open, "unclosed block")
			return
		case tokenCurlyOpen:
			depth++
		case tokenCurlyClose:
			depth--
		}
	}
}

// rule checks a selector list followed by a declaration block.
func (a *analyzer) rule() {
	first := a.peek()
	var (
		inSelector bool // a non-empty selector follows the last comma
		sawComma   bool
		lastComma  token
	)
	for {
		t := a.next()
		switch t.typ {
		case tokenEOF:
			a.errorf(first, "expected '{' after selector")
			return
		case tokenWhitespace:
		case tokenComma:
			if !inSelector {
				a.errorf(t, "empty selector in selector list")
			}
			inSelector = false
			sawComma = true
			lastComma = t
		case tokenCurlyOpen:
			switch {
			case sawComma && !inSelector:
				a.errorf(lastComma, "empty selector in selector list")
			case !inSelector:
				a.errorf(t, "expected selector before '{'")
			}
			a.block(t)
			return
		case tokenSemicolon, tokenCurlyClose:
			a.errorf(t, "unexpected '%s' in selector", t.s)
			if t.typ == tokenCurlyClose {
				return
			}
		default:
			if !a.badToken(t) {
				inSelector = true
			}
		}
	}
}

// block checks the declarations of a block whose '{' has been consumed.
func (a *analyzer) block(open token) {
	for {
		a.skipWhitespace()
		t := a.next()
		switch t.typ {
		case tokenEOF:
			a.errorf(open, "unclosed block")
			return
		case tokenCurlyClose:
			return
		case tokenSemicolon:
		case tokenIdent:
			if a.declaration(open, t) {
				return
			}
		default:
			if !a.badToken(t) {
				a.errorf(t, "expected property name")
			}
			if a.recover(open) {
				return
			}
		}
	}
}

// declaration checks "<property> : <value>" terminated by ';' or '}'. It
// returns true if the enclosing block ended.
func (a *analyzer) declaration(open, prop token) bool {
	a.skipWhitespace()
	if t := a.peek(); t.typ != tokenColon {
		a.errorf(prop, "expected ':' after property")
		return a.recover(open)
	}
	a.next()

	var (
		empty   = true
		closing []tokenType
	)
	for {
		t := a.peek()
		switch t.typ {
		case tokenEOF:
			a.next()
			a.errorf(open, "unclosed block")
			return true
		case tokenSemicolon, tokenCurlyClose:
			if len(closing) != 0 {
				a.errorf(t, "unexpected '%s' in value of %q", t.s, prop.s)
				closing = nil
			}
			a.next()
			if empty {
				a.errorf(prop, "expected value for property")
			}
			return t.typ == tokenCurlyClose
		case tokenCurlyOpen:
			a.next()
			a.errorf(t, "unexpected '{' in value of %q", prop.s)
			a.skipBlock(t)
			empty = false
			continue
		case tokenWhitespace:
			a.next()
			continue
		case tokenFunction, tokenParenOpen:
			closing = append(closing, tokenParenClose)
		case tokenBracketOpen:
			closing = append(closing, tokenBracketClose)
		case tokenParenClose, tokenBracketClose:
			if len(closing) == 0 || closing[len(closing)-1] != t.typ {
				a.errorf(t, "unmatched '%s'", t.s)
			} else {
				closing = closing[:len(closing)-1]
			}
		default:
			a.badToken(t)
		}
		a.next()
		empty = false
	}
}

// recover skips to the end of the current declaration. It returns true if
// the enclosing block ended.
func (a *analyzer) recover(open token) bool {
	for {
		t := a.next()
		switch t.typ {
		case tokenEOF:
			a.errorf(open, "unclosed block")
			return true
		case tokenSemicolon:
			return false
		case tokenCurlyClose:
			return true
		case tokenCurlyOpen:
			a.skipBlock(t)
		default:
			a.badToken(t)
		}
	}
}
