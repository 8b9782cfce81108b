package cssengine

import (
	"maps"
	"slices"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// SynthesisMode controls when utility class declarations such as
// ".bg-amber-50" are derived from the palette.
type SynthesisMode int

const (
	// SynthesizeOnMiss derives declarations only for queries no rule matches.
	SynthesizeOnMiss SynthesisMode = iota
	// SynthesizeAlways derives declarations in addition to matching rules.
	SynthesizeAlways
	// SynthesizeNever disables synthesis.
	SynthesizeNever
)

// Option configures a StyleSheet.
type Option func(*StyleSheet)

// WithLogger sets the logger. The default discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(s *StyleSheet) {
		if log != nil {
			s.log = log.Named("cssengine")
		}
	}
}

// WithPalette resolves color names and utility classes against p.
func WithPalette(p Palette) Option {
	return func(s *StyleSheet) {
		s.palette = p
		s.typer = NewTyper(p)
	}
}

// WithSynthesis sets when utility classes are synthesized. It has no effect
// without a palette.
func WithSynthesis(mode SynthesisMode) Option {
	return func(s *StyleSheet) {
		s.mode = mode
	}
}

// StyleGroup is the declarations that apply to an element in one state, in
// stylesheet order.
type StyleGroup struct {
	Pseudo       PseudoClass
	Declarations []Declaration
}

type entry struct {
	sel   Selector
	decls []Declaration
}

// StyleSheet is a queryable table of selectors and their declarations. It is
// safe for concurrent use.
type StyleSheet struct {
	mu      sync.RWMutex
	entries []entry
	// scratch collects synthesized declarations for a single query.
	scratch []Declaration
	// synthesized records queries synthesis already ran for and whether it
	// stored an entry.
	synthesized map[string]bool

	typer   *Typer
	palette Palette
	mode    SynthesisMode
	log     *zap.Logger
}

// New returns an empty StyleSheet.
func New(opts ...Option) *StyleSheet {
	s := &StyleSheet{
		synthesized: make(map[string]bool),
		typer:       defaultTyper,
		log:         zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Parse builds a StyleSheet from css. The sheet holds every rule that could
// be salvaged even when the returned error reports syntax errors.
func Parse(css string, opts ...Option) (*StyleSheet, error) {
	s := New(opts...)
	rules, err := ParseRules(css)
	for _, serr := range SyntaxErrors(err) {
		s.log.Debug("Syntax error",
			zap.String("msg", serr.Msg),
			zap.String("text", serr.Text),
			zap.Int("line", serr.Line),
			zap.Int("column", serr.Col))
	}
	s.AddRules(rules)
	s.log.Debug("Parsed stylesheet",
		zap.Int("bytes", len(css)),
		zap.Int("rules", len(rules)),
		zap.Int("entries", s.Len()))
	return s, err
}

// FromCSS builds a StyleSheet from css, logging and otherwise ignoring syntax
// errors.
func FromCSS(css string, opts ...Option) *StyleSheet {
	s, err := Parse(css, opts...)
	if err != nil {
		s.log.Warn("Stylesheet has syntax errors", zap.Error(err))
	}
	return s
}

// MustParse is like Parse but panics if css has syntax errors.
func MustParse(css string, opts ...Option) *StyleSheet {
	s, err := Parse(css, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// AddRules types the declarations of rules and appends one entry per
// selector. Selectors without any valid declaration are not added.
func (s *StyleSheet) AddRules(rules []Rule) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range rules {
		decls := make([]Declaration, 0, len(r.Pairs))
		for _, p := range r.Pairs {
			d, ok := s.typer.FromPair(p.Key, p.Value)
			if !ok {
				if ce := s.log.Check(zap.DebugLevel, "Dropping declaration"); ce != nil {
					ce.Write(zap.String("property", p.Key), zap.String("value", p.Value))
				}
				continue
			}
			decls = append(decls, d)
		}
		if len(decls) == 0 {
			continue
		}
		for _, sel := range r.Selectors {
			s.entries = append(s.entries, entry{sel: sel, decls: slices.Clone(decls)})
		}
	}
	// New rules may now match queries synthesis gave up on. Queries with a
	// stored entry stay memoized.
	maps.DeleteFunc(s.synthesized, func(_ string, stored bool) bool { return !stored })
}

// Len returns the number of selector entries, including synthesized ones.
func (s *StyleSheet) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// GetStyles returns the declaration groups that apply to query, an element
// identity such as "#counter .header". See AppendStyles.
func (s *StyleSheet) GetStyles(query string) []StyleGroup {
	return s.AppendStyles(nil, query)
}

// AppendStyles appends the declaration groups that apply to query to dst.
//
// An entry applies if every whitespace separated token of query is a
// substring of its selector. Entries with the same pseudo-class are merged
// into one group in stylesheet order. If synthesis is enabled, utility classes
// of query such as ".bg-amber-50" are derived from the palette once and
// stored as a new entry for later queries.
//
// The returned declarations must not be modified.
func (s *StyleSheet) AppendStyles(dst []StyleGroup, query string) []StyleGroup {
	start := len(dst)

	s.mu.RLock()
	dst, found := s.match(dst, query)
	synthesize := s.wantSynthesis(query, found)
	s.mu.RUnlock()
	if !synthesize {
		return dst
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, tried := s.synthesized[query]; !tried {
		stored := s.synthesize(query)
		s.synthesized[query] = stored
		if !stored {
			return dst
		}
	}
	dst, _ = s.match(dst[:start], query)
	return dst
}

func (s *StyleSheet) wantSynthesis(query string, found bool) bool {
	if s.palette == nil {
		return false
	}
	if _, tried := s.synthesized[query]; tried {
		return false
	}
	switch s.mode {
	case SynthesizeOnMiss:
		return !found
	case SynthesizeAlways:
		return true
	}
	return false
}

// match must be called with s.mu held.
func (s *StyleSheet) match(dst []StyleGroup, query string) ([]StyleGroup, bool) {
	start := len(dst)
	found := false
	for _, e := range s.entries {
		if !e.sel.matches(query) {
			continue
		}
		found = true
		i := slices.IndexFunc(dst[start:], func(g StyleGroup) bool {
			return g.Pseudo == e.sel.Pseudo
		})
		if i < 0 {
			// Clip the capacity so appending a later match copies instead of
			// writing into the entry.
			dst = append(dst, StyleGroup{
				Pseudo:       e.sel.Pseudo,
				Declarations: e.decls[:len(e.decls):len(e.decls)],
			})
			continue
		}
		g := &dst[start+i]
		g.Declarations = append(g.Declarations, e.decls...)
	}
	return dst, found
}

type utility struct {
	prefix string
	prop   Property
}

var utilities = []utility{
	{"bg-", PropBackgroundColor},
	{"text-", PropColor},
	{"border-", PropBorderColor},
	{"outline-", PropOutlineColor},
}

// synthesize derives declarations from the "<prefix>-<color>-<tone>" classes
// of query and stores them as an entry for query. It reports whether an entry
// was added. s.mu must be held for writing.
func (s *StyleSheet) synthesize(query string) bool {
	defer func() { s.scratch = s.scratch[:0] }()

	sel := parseSelector(query)
	for _, tok := range strings.Fields(sel.Text) {
		class, ok := strings.CutPrefix(tok, ".")
		if !ok {
			continue
		}
		class = strings.ToLower(class)
		for _, u := range utilities {
			rest, ok := strings.CutPrefix(class, u.prefix)
			if !ok {
				continue
			}
			name, tone, ok := strings.Cut(rest, "-")
			if !ok || !s.palette.IsBase(name) {
				continue
			}
			n, err := strconv.Atoi(tone)
			if err != nil {
				continue
			}
			c, ok := s.palette.Utility(name + "-" + strconv.Itoa(n))
			if !ok {
				continue
			}
			s.scratch = append(s.scratch, Declaration{Property: u.prop, Value: c})
		}
	}
	if len(s.scratch) == 0 {
		return false
	}

	s.entries = append(s.entries, entry{
		sel:   Selector{Text: query, Pseudo: sel.Pseudo},
		decls: slices.Clone(s.scratch),
	})
	s.log.Debug("Synthesized utility declarations",
		zap.String("query", query),
		zap.Int("declarations", len(s.scratch)))
	return true
}
