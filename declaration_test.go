package cssengine

import (
	"testing"
	"time"
)

func TestFromPair(t *testing.T) {
	tests := []struct {
		key, value string
		want       Declaration
	}{
		{"all", "initial", Declaration{PropNone, struct{}{}}},
		{"all", "revert", Declaration{PropNone, struct{}{}}},
		{"display", "flex", Declaration{PropDisplay, DisplayFlex}},
		{"position", "absolute", Declaration{PropPosition, PositionAbsolute}},
		{"width", "auto", Declaration{PropWidth, Auto}},
		{"max-height", "50%", Declaration{PropMaxHeight, PxPctAuto{50, UnitPct}}},
		{"margin", "10px", Declaration{PropMargin, PxPctAuto{10, UnitPx}}},
		{"flex-basis", "auto", Declaration{PropFlexBasis, Auto}},
		{"left", "4px", Declaration{PropInsetLeft, PxPctAuto{4, UnitPx}}},
		{"bottom", "auto", Declaration{PropInsetBottom, Auto}},
		{"padding", "5%", Declaration{PropPadding, NewPct(5)}},
		{"border-radius", "5px", Declaration{PropBorderRadius, NewPx(5)}},
		{"row-gap", "2px", Declaration{PropRowGap, NewPx(2)}},
		{"font-size", "14px", Declaration{PropFontSize, Px(14)}},
		{"border-left", "1px", Declaration{PropBorderLeft, Px(1)}},
		{"outline", "2px", Declaration{PropOutline, Px(2)}},
		{"flex-direction", "column-reverse", Declaration{PropFlexDirection, FlexColumnReverse}},
		{"flex-wrap", "no-wrap", Declaration{PropFlexWrap, FlexNoWrap}},
		{"flex-grow", "1.5", Declaration{PropFlexGrow, float32(1.5)}},
		{"line-height", "1.2", Declaration{PropLineHeight, float32(1.2)}},
		{"aspect-ratio", "2 / 1", Declaration{PropAspectRatio, float32(2)}},
		{"justify-content", "space-between", Declaration{PropJustifyContent, JustifySpaceBetween}},
		{"justify-self", "center", Declaration{PropJustifySelf, AlignItemsCenter}},
		{"align-items", "baseline", Declaration{PropAlignItems, AlignItemsBaseline}},
		{"align-content", "space-around", Declaration{PropAlignContent, AlignContentSpaceAround}},
		{"z-index", "-3", Declaration{PropZIndex, int32(-3)}},
		{"cursor", "pointer", Declaration{PropCursor, CursorPointingHand}},
		{"cursor", "auto", Declaration{PropCursor, CursorDefault}},
		{"color", "  red  ", Declaration{PropColor, RGBA8(255, 0, 0, 255)}},
		{"caret-color", "#00f", Declaration{PropCursorColor, RGBA8(0, 0, 255, 255)}},
		{"outline-color", "rgb(0, 128, 0)", Declaration{PropOutlineColor, RGBA8(0, 128, 0, 255)}},
		{"font-family", `"Fira Sans", serif`, Declaration{PropFontFamily, "Fira Sans, serif"}},
		{"font-weight", "bold", Declaration{PropFontWeight, WeightBold}},
		{"font-weight", "600", Declaration{PropFontWeight, WeightSemibold}},
		{"font-style", "italic", Declaration{PropFontStyle, FontStyleItalic}},
		{"text-wrap", "ellipsis", Declaration{PropTextOverflow, TextEllipsis}},
		{"user-select", "none", Declaration{PropUserSelect, false}},
		{"gap", "4px", Declaration{PropGap, Gap{Row: NewPx(4)}}},
		{"transition", "width 1s", Declaration{PropTransition, Transition{Property: "width", Duration: time.Second}}},
		{"box-shadow", "black 1px 2px", Declaration{PropBoxShadow,
			BoxShadow{NewPx(1), NewPx(2), NewPx(0), NewPx(0), RGBA8(0, 0, 0, 255)}}},
	}
	for _, test := range tests {
		got, ok := FromPair(test.key, test.value)
		if !ok {
			t.Errorf("FromPair(%q, %q) failed", test.key, test.value)
			continue
		}
		if diff := cmpDiff(test.want, got); diff != "" {
			t.Errorf("FromPair(%q, %q) returned diff (-want, +got): %s", test.key, test.value, diff)
		}
	}
}

func TestFromPairInvalid(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"colour", "red"},
		{"Color", "red"},
		{"color", "amber-50"},
		{"display", "inline"},
		{"display", "FLEX"},
		{"width", "10"},
		{"width", ""},
		{"font-size", "50%"},
		{"z-index", "1.5"},
		{"flex-grow", "NaN"},
		{"box-shadow", "none"},
		{"all", "inherit"},
		{"border", "1px solid red"},
		{"transition", "width"},
	}
	for _, test := range tests {
		if got, ok := FromPair(test.key, test.value); ok {
			t.Errorf("FromPair(%q, %q) = %v, want failure", test.key, test.value, got)
		}
	}
}

func TestTyperPalette(t *testing.T) {
	p := &ColorPalette{
		Colors: map[string]Color{"brand": RGBA8(0xff, 0x66, 0, 255)},
		Scales: map[string]map[int]Color{
			"amber": {50: RGBA8(0xff, 0xfb, 0xeb, 255)},
		},
	}
	typer := NewTyper(p)

	tests := []struct {
		key, value string
		want       Declaration
	}{
		{"color", "brand", Declaration{PropColor, RGBA8(0xff, 0x66, 0, 255)}},
		{"background-color", "Brand", Declaration{PropBackgroundColor, RGBA8(0xff, 0x66, 0, 255)}},
		{"border-color", "amber-50", Declaration{PropBorderColor, RGBA8(0xff, 0xfb, 0xeb, 255)}},
		{"color", "red", Declaration{PropColor, RGBA8(255, 0, 0, 255)}},
		{"border", "1px brand", Declaration{PropBorder, BorderDef{
			Width: func() *PxPct { v := NewPx(1); return &v }(),
			Color: func() *Color { c := RGBA8(0xff, 0x66, 0, 255); return &c }(),
		}}},
	}
	for _, test := range tests {
		got, ok := typer.FromPair(test.key, test.value)
		if !ok {
			t.Errorf("FromPair(%q, %q) failed", test.key, test.value)
			continue
		}
		if diff := cmpDiff(test.want, got); diff != "" {
			t.Errorf("FromPair(%q, %q) returned diff (-want, +got): %s", test.key, test.value, diff)
		}
	}

	for _, v := range []string{"amber-51", "amber", "blue-500"} {
		if _, ok := typer.FromPair("color", v); ok {
			t.Errorf("FromPair(color, %q) succeeded", v)
		}
	}
}

func TestDeclarationTolerance(t *testing.T) {
	rules, err := ParseRules(`.a {
		color: red;
		width: 10px;
		colour: blue;
		height: tall;
		display: flex;
	}`)
	if err != nil {
		t.Fatalf("ParseRules: %v", err)
	}
	var got []Property
	for _, p := range rules[0].Pairs {
		if d, ok := FromPair(p.Key, p.Value); ok {
			got = append(got, d.Property)
		}
	}
	want := []Property{PropColor, PropWidth, PropDisplay}
	if diff := cmpDiff(want, got); diff != "" {
		t.Errorf("typed properties returned diff (-want, +got): %s", diff)
	}
}

func TestPropertyString(t *testing.T) {
	tests := []struct {
		p    Property
		want string
	}{
		{PropNone, "all"},
		{PropBorderRadius, "border-radius"},
		{PropCursorColor, "caret-color"},
		{PropTextOverflow, "text-wrap"},
		{PropInsetTop, "top"},
		{Property(999), "Property(999)"},
	}
	for _, test := range tests {
		if got := test.p.String(); got != test.want {
			t.Errorf("Property(%d).String() = %q, want %q", int(test.p), got, test.want)
		}
	}

	// Every property has a name that types back to it.
	for _, e := range propertyTable {
		if got, ok := properties[e.prop.String()]; !ok || got.prop != e.prop {
			t.Errorf("property %q does not round trip", e.name)
		}
	}
}

func TestDeclarationString(t *testing.T) {
	tests := []struct {
		d    Declaration
		want string
	}{
		{Declaration{PropNone, struct{}{}}, "all: initial"},
		{Declaration{PropWidth, PxPctAuto{10, UnitPx}}, "width: 10px"},
		{Declaration{PropColor, RGBA8(255, 0, 0, 255)}, "color: #ff0000"},
		{Declaration{PropDisplay, DisplayFlex}, "display: flex"},
		{Declaration{PropCursor, CursorPointingHand}, "cursor: pointer"},
	}
	for _, test := range tests {
		if got := test.d.String(); got != test.want {
			t.Errorf("String() = %q, want %q", got, test.want)
		}
	}
}

func TestValue(t *testing.T) {
	d, ok := FromPair("width", "50%")
	if !ok {
		t.Fatalf("FromPair(width, 50%%) failed")
	}
	v, ok := Value[PxPctAuto](d)
	if !ok || v != (PxPctAuto{50, UnitPct}) {
		t.Errorf("Value[PxPctAuto] = %v, %t", v, ok)
	}
	if _, ok := Value[PxPct](d); ok {
		t.Errorf("Value[PxPct] of a width succeeded")
	}
}
