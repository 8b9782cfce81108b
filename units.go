package cssengine

import (
	"strconv"
	"time"
)

// Px is a length in pixels.
type Px float32

func (p Px) String() string {
	return formatFloat(float32(p)) + "px"
}

// Pct is a percentage, stored as written: 50% is Pct(50).
type Pct float32

func (p Pct) String() string {
	return formatFloat(float32(p)) + "%"
}

func formatFloat(f float32) string {
	return strconv.FormatFloat(float64(f), 'f', -1, 32)
}

// Unit is the unit of a length.
type Unit int

const (
	UnitPx Unit = iota
	UnitPct
	UnitAuto
)

// PxPct is a length in pixels or a percentage of the available space. The
// zero value is 0px.
type PxPct struct {
	Value float32
	Unit  Unit
}

// NewPx returns a pixel length.
func NewPx(v float32) PxPct {
	return PxPct{Value: v, Unit: UnitPx}
}

// NewPct returns a percentage length.
func NewPct(v float32) PxPct {
	return PxPct{Value: v, Unit: UnitPct}
}

// Resolve returns the length in pixels, with percentages taken of avail.
func (v PxPct) Resolve(avail float32) float32 {
	if v.Unit == UnitPct {
		return v.Value / 100 * avail
	}
	return v.Value
}

func (v PxPct) String() string {
	if v.Unit == UnitPct {
		return Pct(v.Value).String()
	}
	return Px(v.Value).String()
}

// PxPctAuto is a PxPct that may also be "auto".
type PxPctAuto struct {
	Value float32
	Unit  Unit
}

// Auto is the automatically computed length.
var Auto = PxPctAuto{Unit: UnitAuto}

// IsAuto reports whether the length is automatically computed.
func (v PxPctAuto) IsAuto() bool {
	return v.Unit == UnitAuto
}

// Resolve returns the length in pixels, with percentages taken of avail. It
// returns false for "auto".
func (v PxPctAuto) Resolve(avail float32) (float32, bool) {
	if v.IsAuto() {
		return 0, false
	}
	return PxPct(v).Resolve(avail), true
}

func (v PxPctAuto) String() string {
	if v.IsAuto() {
		return "auto"
	}
	return PxPct(v).String()
}

// BorderDef is the border shorthand. Either field may be absent.
type BorderDef struct {
	Width *PxPct
	Color *Color
}

func (b BorderDef) String() string {
	switch {
	case b.Width != nil && b.Color != nil:
		return b.Width.String() + " " + b.Color.String()
	case b.Width != nil:
		return b.Width.String()
	case b.Color != nil:
		return b.Color.String()
	}
	return ""
}

// BoxShadow is a single drop shadow.
type BoxShadow struct {
	HOffset    PxPct
	VOffset    PxPct
	BlurRadius PxPct
	Spread     PxPct
	Color      Color
}

// DefaultBoxShadow is an opaque black shadow with no offset, blur or spread.
func DefaultBoxShadow() BoxShadow {
	return BoxShadow{Color: RGBA8(0, 0, 0, 255)}
}

func (s BoxShadow) String() string {
	return s.HOffset.String() + " " + s.VOffset.String() + " " +
		s.BlurRadius.String() + " " + s.Spread.String() + " " + s.Color.String()
}

// Gap is the spacing between rows and columns. A nil Column means the row
// gap applies to both.
type Gap struct {
	Row    PxPct
	Column *PxPct
}

func (g Gap) String() string {
	if g.Column == nil {
		return g.Row.String()
	}
	return g.Row.String() + " " + g.Column.String()
}

// Linear is the identity easing function.
type Linear struct{}

// Eval maps the elapsed fraction of an animation to its progress.
func (Linear) Eval(t float64) float64 {
	return t
}

// Finished reports whether t is outside the running interval [0, 1).
func (Linear) Finished(t float64) bool {
	return t < 0 || t >= 1
}

// Transition animates changes to a property.
type Transition struct {
	Property string
	Duration time.Duration
	Easing   Linear
}

func (t Transition) String() string {
	return t.Property + " " + strconv.FormatInt(t.Duration.Milliseconds(), 10) + "ms"
}
