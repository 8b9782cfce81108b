package cssengine

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Color is a non-premultiplied RGBA color with components in [0, 1].
type Color struct {
	R, G, B, A float64
}

// RGBA8 returns the color with the given 8-bit components.
func RGBA8(r, g, b, a uint8) Color {
	return Color{float64(r) / 255, float64(g) / 255, float64(b) / 255, float64(a) / 255}
}

// RGBA8 returns the color's components scaled to 8 bits.
func (c Color) RGBA8() (r, g, b, a uint8) {
	return to8(c.R), to8(c.G), to8(c.B), to8(c.A)
}

// RGBA implements image/color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	a = uint32(clamp01(c.A)*0xffff + 0.5)
	r = uint32(clamp01(c.R)*clamp01(c.A)*0xffff + 0.5)
	g = uint32(clamp01(c.G)*clamp01(c.A)*0xffff + 0.5)
	b = uint32(clamp01(c.B)*clamp01(c.A)*0xffff + 0.5)
	return r, g, b, a
}

// String returns the color in hex notation, with an alpha component only
// when the color is not opaque.
func (c Color) String() string {
	r, g, b, a := c.RGBA8()
	if a == 255 {
		return fmt.Sprintf("#%02x%02x%02x", r, g, b)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", r, g, b, a)
}

func to8(f float64) uint8 {
	return uint8(clamp01(f)*255 + 0.5)
}

func clamp01(f float64) float64 {
	return math.Max(0, math.Min(1, f))
}

// fromColorful quantizes a colorful.Color to 8 bits per channel so colors
// written in different notations compare equal.
func fromColorful(c colorful.Color, a uint8) Color {
	r, g, b := c.Clamped().RGB255()
	return RGBA8(r, g, b, a)
}

// ParseColor parses hex notation (#rgb, #rgba, #rrggbb, #rrggbbaa), the
// rgb(), rgba(), hsl() and hsla() functions, and the CSS named colors.
func ParseColor(s string) (Color, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Color{}, false
	}
	if s[0] == '#' {
		return parseHexColor(s[1:])
	}
	if name, args, ok := strings.Cut(s, "("); ok {
		args, ok = strings.CutSuffix(args, ")")
		if !ok {
			return Color{}, false
		}
		switch strings.TrimSpace(name) {
		case "rgb", "rgba":
			return parseRGB(args)
		case "hsl", "hsla":
			return parseHSL(args)
		}
		return Color{}, false
	}
	if s == "transparent" {
		return Color{}, true
	}
	c, ok := namedColors[s]
	if !ok {
		return Color{}, false
	}
	return RGBA8(uint8(c>>16), uint8(c>>8), uint8(c), 255), true
}

func parseHexColor(h string) (Color, bool) {
	for _, r := range h {
		if !isHex(r) {
			return Color{}, false
		}
	}
	switch len(h) {
	case 3, 4:
		var b strings.Builder
		for _, r := range h {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		h = b.String()
	case 6, 8:
	default:
		return Color{}, false
	}

	c, err := colorful.Hex("#" + h[:6])
	if err != nil {
		return Color{}, false
	}
	a := uint64(255)
	if len(h) == 8 {
		if a, err = strconv.ParseUint(h[6:], 16, 8); err != nil {
			return Color{}, false
		}
	}
	return fromColorful(c, uint8(a)), true
}

type colorArg struct {
	v   float64
	pct bool
}

// colorArgs lexes the arguments of a color function. Commas, whitespace and
// the '/' before the alpha value are separators. Angles are converted to
// degrees.
func colorArgs(s string) ([]colorArg, bool) {
	var args []colorArg
	l := css.NewLexer(parse.NewInputString(s))
	for {
		tt, data := l.Next()
		switch tt {
		case css.ErrorToken:
			return args, l.Err() == io.EOF
		case css.WhitespaceToken, css.CommaToken:
		case css.DelimToken:
			if string(data) != "/" {
				return nil, false
			}
		case css.NumberToken:
			v, err := strconv.ParseFloat(string(data), 64)
			if err != nil {
				return nil, false
			}
			args = append(args, colorArg{v: v})
		case css.PercentageToken:
			v, err := strconv.ParseFloat(string(data[:len(data)-1]), 64)
			if err != nil {
				return nil, false
			}
			args = append(args, colorArg{v: v, pct: true})
		case css.DimensionToken:
			num, unit, ok := splitDimension(string(data))
			if !ok {
				return nil, false
			}
			v, err := strconv.ParseFloat(num, 64)
			if err != nil {
				return nil, false
			}
			switch unit {
			case "deg":
			case "turn":
				v *= 360
			case "rad":
				v *= 180 / math.Pi
			case "grad":
				v *= 0.9
			default:
				return nil, false
			}
			args = append(args, colorArg{v: v})
		default:
			return nil, false
		}
	}
}

func alphaArg(args []colorArg) uint8 {
	if len(args) < 4 {
		return 255
	}
	a := args[3].v
	if args[3].pct {
		a /= 100
	}
	return to8(a)
}

func parseRGB(s string) (Color, bool) {
	args, ok := colorArgs(s)
	if !ok || len(args) < 3 || len(args) > 4 {
		return Color{}, false
	}
	var rgb [3]uint8
	for i, arg := range args[:3] {
		v := arg.v
		if arg.pct {
			v = v / 100 * 255
		}
		rgb[i] = to8(v / 255)
	}
	return RGBA8(rgb[0], rgb[1], rgb[2], alphaArg(args)), true
}

func parseHSL(s string) (Color, bool) {
	args, ok := colorArgs(s)
	if !ok || len(args) < 3 || len(args) > 4 || args[0].pct {
		return Color{}, false
	}
	h := math.Mod(args[0].v, 360)
	if h < 0 {
		h += 360
	}
	return fromColorful(colorful.Hsl(h, clamp01(args[1].v/100), clamp01(args[2].v/100)), alphaArg(args)), true
}

// namedColors holds the CSS named colors as 0xRRGGBB.
var namedColors = map[string]uint32{
	"aliceblue":            0xf0f8ff,
	"antiquewhite":         0xfaebd7,
	"aqua":                 0x00ffff,
	"aquamarine":           0x7fffd4,
	"azure":                0xf0ffff,
	"beige":                0xf5f5dc,
	"bisque":               0xffe4c4,
	"black":                0x000000,
	"blanchedalmond":       0xffebcd,
	"blue":                 0x0000ff,
	"blueviolet":           0x8a2be2,
	"brown":                0xa52a2a,
	"burlywood":            0xdeb887,
	"cadetblue":            0x5f9ea0,
	"chartreuse":           0x7fff00,
	"chocolate":            0xd2691e,
	"coral":                0xff7f50,
	"cornflowerblue":       0x6495ed,
	"cornsilk":             0xfff8dc,
	"crimson":              0xdc143c,
	"cyan":                 0x00ffff,
	"darkblue":             0x00008b,
	"darkcyan":             0x008b8b,
	"darkgoldenrod":        0xb8860b,
	"darkgray":             0xa9a9a9,
	"darkgreen":            0x006400,
	"darkgrey":             0xa9a9a9,
	"darkkhaki":            0xbdb76b,
	"darkmagenta":          0x8b008b,
	"darkolivegreen":       0x556b2f,
	"darkorange":           0xff8c00,
	"darkorchid":           0x9932cc,
	"darkred":              0x8b0000,
	"darksalmon":           0xe9967a,
	"darkseagreen":         0x8fbc8f,
	"darkslateblue":        0x483d8b,
	"darkslategray":        0x2f4f4f,
	"darkslategrey":        0x2f4f4f,
	"darkturquoise":        0x00ced1,
	"darkviolet":           0x9400d3,
	"deeppink":             0xff1493,
	"deepskyblue":          0x00bfff,
	"dimgray":              0x696969,
	"dimgrey":              0x696969,
	"dodgerblue":           0x1e90ff,
	"firebrick":            0xb22222,
	"floralwhite":          0xfffaf0,
	"forestgreen":          0x228b22,
	"fuchsia":              0xff00ff,
	"gainsboro":            0xdcdcdc,
	"ghostwhite":           0xf8f8ff,
	"gold":                 0xffd700,
	"goldenrod":            0xdaa520,
	"gray":                 0x808080,
	"green":                0x008000,
	"greenyellow":          0xadff2f,
	"grey":                 0x808080,
	"honeydew":             0xf0fff0,
	"hotpink":              0xff69b4,
	"indianred":            0xcd5c5c,
	"indigo":               0x4b0082,
	"ivory":                0xfffff0,
	"khaki":                0xf0e68c,
	"lavender":             0xe6e6fa,
	"lavenderblush":        0xfff0f5,
	"lawngreen":            0x7cfc00,
	"lemonchiffon":         0xfffacd,
	"lightblue":            0xadd8e6,
	"lightcoral":           0xf08080,
	"lightcyan":            0xe0ffff,
	"lightgoldenrodyellow": 0xfafad2,
	"lightgray":            0xd3d3d3,
	"lightgreen":           0x90ee90,
	"lightgrey":            0xd3d3d3,
	"lightpink":            0xffb6c1,
	"lightsalmon":          0xffa07a,
	"lightseagreen":        0x20b2aa,
	"lightskyblue":         0x87cefa,
	"lightslategray":       0x778899,
	"lightslategrey":       0x778899,
	"lightsteelblue":       0xb0c4de,
	"lightyellow":          0xffffe0,
	"lime":                 0x00ff00,
	"limegreen":            0x32cd32,
	"linen":                0xfaf0e6,
	"magenta":              0xff00ff,
	"maroon":               0x800000,
	"mediumaquamarine":     0x66cdaa,
	"mediumblue":           0x0000cd,
	"mediumorchid":         0xba55d3,
	"mediumpurple":         0x9370db,
	"mediumseagreen":       0x3cb371,
	"mediumslateblue":      0x7b68ee,
	"mediumspringgreen":    0x00fa9a,
	"mediumturquoise":      0x48d1cc,
	"mediumvioletred":      0xc71585,
	"midnightblue":         0x191970,
	"mintcream":            0xf5fffa,
	"mistyrose":            0xffe4e1,
	"moccasin":             0xffe4b5,
	"navajowhite":          0xffdead,
	"navy":                 0x000080,
	"oldlace":              0xfdf5e6,
	"olive":                0x808000,
	"olivedrab":            0x6b8e23,
	"orange":               0xffa500,
	"orangered":            0xff4500,
	"orchid":               0xda70d6,
	"palegoldenrod":        0xeee8aa,
	"palegreen":            0x98fb98,
	"paleturquoise":        0xafeeee,
	"palevioletred":        0xdb7093,
	"papayawhip":           0xffefd5,
	"peachpuff":            0xffdab9,
	"peru":                 0xcd853f,
	"pink":                 0xffc0cb,
	"plum":                 0xdda0dd,
	"powderblue":           0xb0e0e6,
	"purple":               0x800080,
	"rebeccapurple":        0x663399,
	"red":                  0xff0000,
	"rosybrown":            0xbc8f8f,
	"royalblue":            0x4169e1,
	"saddlebrown":          0x8b4513,
	"salmon":               0xfa8072,
	"sandybrown":           0xf4a460,
	"seagreen":             0x2e8b57,
	"seashell":             0xfff5ee,
	"sienna":               0xa0522d,
	"silver":               0xc0c0c0,
	"skyblue":              0x87ceeb,
	"slateblue":            0x6a5acd,
	"slategray":            0x708090,
	"slategrey":            0x708090,
	"snow":                 0xfffafa,
	"springgreen":          0x00ff7f,
	"steelblue":            0x4682b4,
	"tan":                  0xd2b48c,
	"teal":                 0x008080,
	"thistle":              0xd8bfd8,
	"tomato":               0xff6347,
	"turquoise":            0x40e0d0,
	"violet":               0xee82ee,
	"wheat":                0xf5deb3,
	"white":                0xffffff,
	"whitesmoke":           0xf5f5f5,
	"yellow":               0xffff00,
	"yellowgreen":          0x9acd32,
}
