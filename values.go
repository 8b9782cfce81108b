package cssengine

import (
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/tdewolff/parse/v2"
)

// splitDimension splits a CSS number with an optional unit, such as "10px",
// "50%" or "1.5", into the number and the lower-cased unit.
func splitDimension(s string) (num, unit string, ok bool) {
	n, u := parse.Dimension([]byte(s))
	if n == 0 || n+u != len(s) {
		return "", "", false
	}
	return s[:n], strings.ToLower(s[n:]), true
}

func parseUnit(s, unit string) (float32, bool) {
	num, u, ok := splitDimension(s)
	if !ok || u != unit {
		return 0, false
	}
	f, err := strconv.ParseFloat(num, 32)
	if err != nil {
		return 0, false
	}
	return float32(f), true
}

// ParsePx parses a length with a literal "px" suffix.
func ParsePx(s string) (Px, bool) {
	v, ok := parseUnit(s, "px")
	return Px(v), ok
}

// ParsePct parses a percentage such as "50%".
func ParsePct(s string) (Pct, bool) {
	v, ok := parseUnit(s, "%")
	return Pct(v), ok
}

// ParsePxPct parses a pixel length or a percentage.
func ParsePxPct(s string) (PxPct, bool) {
	if px, ok := ParsePx(s); ok {
		return NewPx(float32(px)), true
	}
	if pct, ok := ParsePct(s); ok {
		return NewPct(float32(pct)), true
	}
	return PxPct{}, false
}

// ParsePxPctAuto parses a pixel length, a percentage or "auto".
func ParsePxPctAuto(s string) (PxPctAuto, bool) {
	if s == "auto" {
		return Auto, true
	}
	v, ok := ParsePxPct(s)
	return PxPctAuto(v), ok
}

func parseFloat32(s string) (float32, bool) {
	f, err := strconv.ParseFloat(s, 32)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return float32(f), true
}

func parseInt32(s string) (int32, bool) {
	i, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, false
	}
	return int32(i), true
}

// parseAspectRatio accepts a single number or "<width> / <height>".
func parseAspectRatio(s string) (float32, bool) {
	w, h, ok := strings.Cut(s, "/")
	if !ok {
		return parseFloat32(s)
	}
	fw, ok := parseFloat32(strings.TrimSpace(w))
	if !ok {
		return 0, false
	}
	fh, ok := parseFloat32(strings.TrimSpace(h))
	if !ok || fh == 0 {
		return 0, false
	}
	return fw / fh, true
}

// parseFontFamily removes the quotes around each family name.
func parseFontFamily(s string) (string, bool) {
	families := strings.Split(s, ",")
	for i, f := range families {
		f = strings.TrimSpace(f)
		if len(f) >= 2 && (f[0] == '"' || f[0] == '\'') && f[len(f)-1] == f[0] {
			f = f[1 : len(f)-1]
		}
		families[i] = f
	}
	out := strings.Join(families, ", ")
	return out, out != ""
}

func parseGap(s string) (Gap, bool) {
	fields := strings.Fields(s)
	if len(fields) == 0 || len(fields) > 2 {
		return Gap{}, false
	}
	row, ok := ParsePxPct(fields[0])
	if !ok {
		return Gap{}, false
	}
	g := Gap{Row: row}
	if len(fields) == 2 {
		col, ok := ParsePxPct(fields[1])
		if !ok {
			return Gap{}, false
		}
		g.Column = &col
	}
	return g, true
}

// parseReset accepts the keywords that return every property to its initial
// value.
func parseReset(s string) (struct{}, bool) {
	switch s {
	case "initial", "unset", "revert":
		return struct{}{}, true
	}
	return struct{}{}, false
}

type colorParser func(string) (Color, bool)

// ParseBorder parses the border shorthand: a width, a color, or both in
// either order.
func ParseBorder(s string) (BorderDef, bool) {
	return parseBorder(s, ParseColor)
}

func parseBorder(s string, parseColor colorParser) (BorderDef, bool) {
	fields := strings.Fields(s)
	if len(fields) == 0 || len(fields) > 2 {
		return BorderDef{}, false
	}
	var b BorderDef
	for _, f := range fields {
		if w, ok := ParsePxPct(f); ok {
			b.Width = &w
			continue
		}
		if c, ok := parseColor(f); ok {
			b.Color = &c
			continue
		}
		return BorderDef{}, false
	}
	return b, true
}

type shadowField int

const (
	shadowH shadowField = iota
	shadowV
	shadowBlur
	shadowSpread
	shadowColor
)

// shadowForms lists, by number of values, the accepted orders of box-shadow
// values. The first order that parses wins.
var shadowForms = [6][][]shadowField{
	2: {
		{shadowH, shadowV},
	},
	3: {
		{shadowH, shadowV, shadowColor},
		{shadowColor, shadowH, shadowV},
		{shadowH, shadowV, shadowBlur},
	},
	4: {
		{shadowH, shadowV, shadowBlur, shadowColor},
		{shadowColor, shadowH, shadowV, shadowBlur},
		{shadowH, shadowV, shadowBlur, shadowSpread},
	},
	5: {
		{shadowH, shadowV, shadowBlur, shadowSpread, shadowColor},
		{shadowColor, shadowH, shadowV, shadowBlur, shadowSpread},
	},
}

// ParseBoxShadow parses a single box shadow of two to five values. "none"
// and anything unparseable yield false.
func ParseBoxShadow(s string) (BoxShadow, bool) {
	return parseBoxShadow(s, ParseColor)
}

func parseBoxShadow(s string, parseColor colorParser) (BoxShadow, bool) {
	parts := splitBoxShadow(s)
	if len(parts) < 2 || len(parts) >= len(shadowForms) {
		return BoxShadow{}, false
	}
	for _, form := range shadowForms[len(parts)] {
		if bs, ok := applyShadowForm(form, parts, parseColor); ok {
			return bs, true
		}
	}
	return BoxShadow{}, false
}

func applyShadowForm(form []shadowField, parts []string, parseColor colorParser) (BoxShadow, bool) {
	bs := DefaultBoxShadow()
	for i, field := range form {
		if field == shadowColor {
			c, ok := parseColor(parts[i])
			if !ok {
				return BoxShadow{}, false
			}
			bs.Color = c
			continue
		}
		v, ok := ParsePxPct(parts[i])
		if !ok {
			return BoxShadow{}, false
		}
		switch field {
		case shadowH:
			bs.HOffset = v
		case shadowV:
			bs.VOffset = v
		case shadowBlur:
			bs.BlurRadius = v
		case shadowSpread:
			bs.Spread = v
		}
	}
	return bs, true
}

// splitBoxShadow splits a shadow on whitespace outside parentheses. A value
// starting with a letter after a length ends the split: the rest of the input
// is the color.
func splitBoxShadow(s string) []string {
	var (
		parts      []string
		start      int
		depth      int
		afterSpace bool
	)
	for i, r := range s {
		switch {
		case r == '(':
			depth++
		case r == ')':
			depth--
		case depth > 0:
		case unicode.IsSpace(r):
			if i > start {
				parts = append(parts, s[start:i])
			}
			start = i + utf8.RuneLen(r)
			afterSpace = true
			continue
		case afterSpace && unicode.IsLetter(r) && len(parts) > 0:
			return append(parts, strings.TrimSpace(s[start:]))
		}
		afterSpace = false
	}
	if start < len(s) {
		parts = append(parts, s[start:])
	}
	return parts
}

// ParseTransition parses "<property> <duration>".
func ParseTransition(s string) (Transition, bool) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return Transition{}, false
	}
	d, ok := ParseDuration(fields[1])
	if !ok {
		return Transition{}, false
	}
	return Transition{Property: fields[0], Duration: d}, true
}

// maxDurationMillis keeps durations in milliseconds from overflowing
// time.Duration.
const maxDurationMillis = math.MaxInt64 / int64(time.Millisecond)

// ParseDuration parses a whole number of milliseconds ("150ms") or a
// positive number of seconds ("1.5s"). Seconds are truncated to
// milliseconds.
func ParseDuration(s string) (time.Duration, bool) {
	num, unit, ok := splitDimension(s)
	if !ok {
		return 0, false
	}
	switch unit {
	case "ms":
		ms, err := strconv.ParseInt(num, 10, 64)
		if err != nil || ms < 0 || ms > maxDurationMillis || num[0] == '+' {
			return 0, false
		}
		return time.Duration(ms) * time.Millisecond, true
	case "s":
		f, err := strconv.ParseFloat(num, 64)
		if err != nil || f <= 0 || f*1000 > float64(maxDurationMillis) {
			return 0, false
		}
		return time.Duration(int64(f*1000)) * time.Millisecond, true
	}
	return 0, false
}
