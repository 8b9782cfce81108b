package cssengine

import (
	"strings"
)

// substituteVars replaces var() references with the values of custom
// properties ("--name: value") defined earlier in the stylesheet. A property
// whose references cannot be resolved is removed from its rule.
func substituteVars(rules []Rule) []Rule {
	vars := make(map[string]string)
	for i := range rules {
		pairs := rules[i].Pairs[:0]
		for _, pair := range rules[i].Pairs {
			v, ok := expandVars(pair.Value, vars)
			if !ok {
				continue
			}
			pair.Value = v
			if strings.HasPrefix(pair.Key, "--") {
				vars[pair.Key] = v
			}
			pairs = append(pairs, pair)
		}
		rules[i].Pairs = pairs
	}
	return rules
}

// maxVarDepth limits how deeply var() fallbacks may nest.
const maxVarDepth = 32

// expandVars substitutes every var(--name[, fallback]) in s. Values stored in
// vars are already expanded, so only fallbacks need another pass.
func expandVars(s string, vars map[string]string) (string, bool) {
	return expandVarsDepth(s, vars, 0)
}

func expandVarsDepth(s string, vars map[string]string, depth int) (string, bool) {
	if !strings.Contains(s, "var(") {
		return s, true
	}
	var b strings.Builder
	for {
		i := indexVar(s)
		if i < 0 {
			b.WriteString(s)
			return b.String(), true
		}
		b.WriteString(s[:i])
		rest := s[i+len("var("):]
		end := closingParen(rest)
		if end < 0 {
			return "", false
		}
		name, fallback, hasFallback := strings.Cut(rest[:end], ",")
		v, ok := vars[strings.TrimSpace(name)]
		if !ok {
			if !hasFallback || depth >= maxVarDepth {
				return "", false
			}
			if v, ok = expandVarsDepth(strings.TrimSpace(fallback), vars, depth+1); !ok {
				return "", false
			}
		}
		b.WriteString(v)
		s = rest[end+1:]
	}
}

// indexVar returns the index of the first "var(" that is not the tail of a
// longer function name.
func indexVar(s string) int {
	off := 0
	for {
		i := strings.Index(s[off:], "var(")
		if i < 0 {
			return -1
		}
		i += off
		if i == 0 || !isName(rune(s[i-1])) {
			return i
		}
		off = i + 1
	}
}

// closingParen returns the index of the ')' closing an already consumed '('.
func closingParen(s string) int {
	depth := 1
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
