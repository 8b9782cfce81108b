package cssengine

import (
	"strings"
)

// Pair is a raw property and value as written in a declaration block, with
// whitespace collapsed and any "!important" suffix removed.
type Pair struct {
	Key   string
	Value string
}

// Rule is a selector list and the declaration block the selectors share.
type Rule struct {
	Selectors []Selector
	Pairs     []Pair
}

type parser struct {
	src string
	l   interface {
		next() token
	}
	// peekQueue holds tokens that have been peeked but not consumed. These are
	// consumed before the token source is consulted.
	peekQueue *queue[token]
}

type tokens struct {
	i   int
	t   []token
	end int
}

func (t *tokens) next() token {
	if t.i < len(t.t) {
		tok := t.t[t.i]
		t.i++
		return tok
	}
	return token{typ: tokenEOF, pos: t.end}
}

// newParser creates a parser over an already tokenized stylesheet. src must be
// the string toks were produced from.
func newParser(src string, toks []token) *parser {
	return &parser{
		src:       src,
		l:         &tokens{t: toks, end: len(src)},
		peekQueue: newQueue[token](1),
	}
}

func (p *parser) peek() token {
	if p.peekQueue.len() == 0 {
		p.peekQueue.push(p.l.next())
	}
	return p.peekQueue.get(0)
}

func (p *parser) next() token {
	if p.peekQueue.len() > 0 {
		return p.peekQueue.pop()
	}
	return p.l.next()
}

func (p *parser) skipWhitespace() {
	for p.peek().typ == tokenWhitespace {
		p.next()
	}
}

// parse consumes the whole token stream. Malformed input is skipped the same
// way the analyzer recovers from it, so parse never fails.
func (p *parser) parse() []Rule {
	var rules []Rule
	for {
		p.skipWhitespace()
		switch t := p.peek(); t.typ {
		case tokenEOF:
			return rules
		case tokenCDO, tokenCDC, tokenCurlyClose:
			p.next()
		case tokenAtKeyword:
			p.next()
			p.skipAtRule()
		default:
			if r, ok := p.rule(); ok {
				rules = append(rules, r)
			}
		}
	}
}

func (p *parser) skipAtRule() {
	for {
		switch t := p.next(); t.typ {
		case tokenEOF, tokenSemicolon:
			return
		case tokenCurlyOpen:
			p.skipBlock()
			return
		}
	}
}

// skipBlock consumes tokens through the '}' closing an already consumed '{'.
func (p *parser) skipBlock() {
	for depth := 1; depth > 0; {
		switch p.next().typ {
		case tokenEOF:
			return
		case tokenCurlyOpen:
			depth++
		case tokenCurlyClose:
			depth--
		}
	}
}

// rule reads a selector list and its declaration block. It returns false if
// no selector survived or the block was never opened.
func (p *parser) rule() (Rule, bool) {
	var prelude []token
	for {
		t := p.next()
		switch t.typ {
		case tokenEOF, tokenCurlyClose:
			return Rule{}, false
		case tokenSemicolon:
			prelude = prelude[:0]
		case tokenCurlyOpen:
			sels := p.selectors(prelude)
			pairs := p.declarations()
			if len(sels) == 0 {
				return Rule{}, false
			}
			return Rule{Selectors: sels, Pairs: pairs}, true
		default:
			prelude = append(prelude, t)
		}
	}
}

func (p *parser) selectors(prelude []token) []Selector {
	var sels []Selector
	start := 0
	for i := 0; i <= len(prelude); i++ {
		if i < len(prelude) && prelude[i].typ != tokenComma {
			continue
		}
		if text := p.join(prelude[start:i]); text != "" {
			sels = append(sels, parseSelector(text))
		}
		start = i + 1
	}
	return sels
}

// declarations reads "<property>: <value>" pairs up to the '}' closing the
// block. Declarations that are not of that form are skipped.
func (p *parser) declarations() []Pair {
	var pairs []Pair
	for {
		p.skipWhitespace()
		t := p.next()
		switch t.typ {
		case tokenEOF, tokenCurlyClose:
			return pairs
		case tokenSemicolon:
			continue
		case tokenIdent:
		default:
			if p.recover() {
				return pairs
			}
			continue
		}

		p.skipWhitespace()
		if p.peek().typ != tokenColon {
			if p.recover() {
				return pairs
			}
			continue
		}
		p.next()

		val, ok, done := p.value()
		if ok {
			if v := p.join(stripImportant(val)); v != "" {
				pairs = append(pairs, Pair{Key: t.s, Value: v})
			}
		}
		if done {
			return pairs
		}
	}
}

// value collects the tokens of a declaration value. ok is false if the value
// contained a nested block. done reports that the enclosing block ended.
func (p *parser) value() (val []token, ok, done bool) {
	ok = true
	for {
		t := p.next()
		switch t.typ {
		case tokenEOF, tokenCurlyClose:
			return val, ok, true
		case tokenSemicolon:
			return val, ok, false
		case tokenCurlyOpen:
			p.skipBlock()
			ok = false
		default:
			val = append(val, t)
		}
	}
}

// recover skips the rest of a malformed declaration. It returns true if the
// enclosing block ended.
func (p *parser) recover() bool {
	for {
		switch p.next().typ {
		case tokenEOF, tokenCurlyClose:
			return true
		case tokenSemicolon:
			return false
		case tokenCurlyOpen:
			p.skipBlock()
		}
	}
}

// stripImportant removes a trailing "! important" from a value.
func stripImportant(toks []token) []token {
	toks = trimWhitespace(toks)
	n := len(toks)
	if n == 0 || toks[n-1].typ != tokenIdent || !strings.EqualFold(toks[n-1].s, "important") {
		return toks
	}
	rest := trimWhitespace(toks[:n-1])
	if len(rest) == 0 || !rest[len(rest)-1].isDelim("!") {
		return toks
	}
	return rest[:len(rest)-1]
}

func trimWhitespace(toks []token) []token {
	for len(toks) > 0 && toks[0].typ == tokenWhitespace {
		toks = toks[1:]
	}
	for len(toks) > 0 && toks[len(toks)-1].typ == tokenWhitespace {
		toks = toks[:len(toks)-1]
	}
	return toks
}

// join returns the source text spanned by toks with leading and trailing
// whitespace removed and inner whitespace and comments collapsed to a single
// space. When no collapsing is needed the result shares memory with the
// source.
func (p *parser) join(toks []token) string {
	toks = trimWhitespace(toks)
	if len(toks) == 0 {
		return ""
	}
	verbatim := true
	for _, t := range toks {
		if t.typ == tokenWhitespace && t.s != " " {
			verbatim = false
			break
		}
	}
	if verbatim {
		return p.src[toks[0].pos:toks[len(toks)-1].end()]
	}

	var b strings.Builder
	for _, t := range toks {
		if t.typ == tokenWhitespace {
			b.WriteByte(' ')
			continue
		}
		b.WriteString(t.s)
	}
	return b.String()
}
