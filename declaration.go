package cssengine

import (
	"fmt"
	"strconv"
	"strings"
)

// Property identifies a supported CSS property.
type Property int

const (
	// PropNone is an explicit reset of every property ("all: initial").
	PropNone Property = iota
	PropDisplay
	PropPosition
	PropWidth
	PropHeight
	PropMinWidth
	PropMinHeight
	PropMaxWidth
	PropMaxHeight
	PropFlexDirection
	PropFlexWrap
	PropFlexGrow
	PropFlexShrink
	PropFlexBasis
	PropJustifyContent
	PropJustifySelf
	PropAlignItems
	PropAlignContent
	PropAlignSelf
	PropBorder
	PropBorderWidth
	PropBorderLeft
	PropBorderTop
	PropBorderRight
	PropBorderBottom
	PropBorderRadius
	PropOutlineColor
	PropOutline
	PropBorderColor
	PropPadding
	PropPaddingLeft
	PropPaddingTop
	PropPaddingRight
	PropPaddingBottom
	PropMargin
	PropMarginLeft
	PropMarginTop
	PropMarginRight
	PropMarginBottom
	PropInsetLeft
	PropInsetTop
	PropInsetRight
	PropInsetBottom
	PropZIndex
	PropCursor
	PropColor
	PropBackgroundColor
	PropBoxShadow
	PropFontSize
	PropFontFamily
	PropFontWeight
	PropFontStyle
	PropCursorColor
	PropTextOverflow
	PropLineHeight
	PropAspectRatio
	PropColumnGap
	PropRowGap
	PropGap
	PropTransition
	PropUserSelect
)

// String returns the CSS name of the property.
func (p Property) String() string {
	if name, ok := propertyNames[p]; ok {
		return name
	}
	return "Property(" + strconv.Itoa(int(p)) + ")"
}

// Declaration is a typed property value. The dynamic type of Value depends on
// Property:
//
//	PropNone                                   struct{}
//	PropDisplay                                Display
//	PropPosition                               Position
//	PropWidth, PropHeight, PropMin*, PropMax*  PxPctAuto
//	PropFlexBasis, PropMargin*, PropInset*     PxPctAuto
//	PropFlexDirection                          FlexDirection
//	PropFlexWrap                               FlexWrap
//	PropFlexGrow, PropFlexShrink               float32
//	PropLineHeight, PropAspectRatio            float32
//	PropJustifyContent                         JustifyContent
//	PropJustifySelf, PropAlignSelf             AlignItems
//	PropAlignItems                             AlignItems
//	PropAlignContent                           AlignContent
//	PropBorder                                 BorderDef
//	PropBorderWidth, PropBorder{Left,...}      Px
//	PropOutline, PropFontSize                  Px
//	PropBorderRadius, PropPadding*             PxPct
//	PropColumnGap, PropRowGap                  PxPct
//	PropColor, PropBackgroundColor             Color
//	PropBorderColor, PropOutlineColor          Color
//	PropCursorColor                            Color
//	PropZIndex                                 int32
//	PropCursor                                 CursorIcon
//	PropBoxShadow                              BoxShadow
//	PropFontFamily                             string
//	PropFontWeight                             Weight
//	PropFontStyle                              FontStyle
//	PropTextOverflow                           TextOverflow
//	PropGap                                    Gap
//	PropTransition                             Transition
//	PropUserSelect                             bool
type Declaration struct {
	Property Property
	Value    any
}

func (d Declaration) String() string {
	if d.Property == PropNone {
		return "all: initial"
	}
	return fmt.Sprintf("%s: %v", d.Property, d.Value)
}

// Value returns the value of d if it has type T.
func Value[T any](d Declaration) (T, bool) {
	v, ok := d.Value.(T)
	return v, ok
}

type valueParser func(t *Typer, s string) (any, bool)

type propertyEntry struct {
	name  string
	prop  Property
	parse valueParser
}

func lift[T any](parse func(string) (T, bool)) valueParser {
	return func(_ *Typer, s string) (any, bool) {
		v, ok := parse(s)
		if !ok {
			return nil, false
		}
		return v, true
	}
}

func keywords[T comparable](kt keywordTable[T]) valueParser {
	return lift(kt.parse)
}

func colorValue(t *Typer, s string) (any, bool) {
	c, ok := t.color(s)
	if !ok {
		return nil, false
	}
	return c, true
}

var (
	pxValue        = lift(ParsePx)
	pxPctValue     = lift(ParsePxPct)
	pxPctAutoValue = lift(ParsePxPctAuto)
	float32Value   = lift(parseFloat32)
)

// propertyTable maps property names to parsers. Names are matched exactly.
var propertyTable = []propertyEntry{
	{"all", PropNone, lift(parseReset)},
	{"display", PropDisplay, keywords(displayKeywords)},
	{"position", PropPosition, keywords(positionKeywords)},
	{"width", PropWidth, pxPctAutoValue},
	{"height", PropHeight, pxPctAutoValue},
	{"min-width", PropMinWidth, pxPctAutoValue},
	{"min-height", PropMinHeight, pxPctAutoValue},
	{"max-width", PropMaxWidth, pxPctAutoValue},
	{"max-height", PropMaxHeight, pxPctAutoValue},
	{"flex-direction", PropFlexDirection, keywords(flexDirectionKeywords)},
	{"flex-wrap", PropFlexWrap, keywords(flexWrapKeywords)},
	{"flex-grow", PropFlexGrow, float32Value},
	{"flex-shrink", PropFlexShrink, float32Value},
	{"flex-basis", PropFlexBasis, pxPctAutoValue},
	{"justify-content", PropJustifyContent, keywords(justifyContentKeywords)},
	{"justify-self", PropJustifySelf, keywords(alignItemsKeywords)},
	{"align-items", PropAlignItems, keywords(alignItemsKeywords)},
	{"align-content", PropAlignContent, keywords(alignContentKeywords)},
	{"align-self", PropAlignSelf, keywords(alignItemsKeywords)},
	{"border", PropBorder, func(t *Typer, s string) (any, bool) {
		b, ok := parseBorder(s, t.color)
		return b, ok
	}},
	{"border-width", PropBorderWidth, pxValue},
	{"border-left", PropBorderLeft, pxValue},
	{"border-top", PropBorderTop, pxValue},
	{"border-right", PropBorderRight, pxValue},
	{"border-bottom", PropBorderBottom, pxValue},
	{"border-radius", PropBorderRadius, pxPctValue},
	{"outline-color", PropOutlineColor, colorValue},
	{"outline", PropOutline, pxValue},
	{"border-color", PropBorderColor, colorValue},
	{"padding", PropPadding, pxPctValue},
	{"padding-left", PropPaddingLeft, pxPctValue},
	{"padding-top", PropPaddingTop, pxPctValue},
	{"padding-right", PropPaddingRight, pxPctValue},
	{"padding-bottom", PropPaddingBottom, pxPctValue},
	{"margin", PropMargin, pxPctAutoValue},
	{"margin-left", PropMarginLeft, pxPctAutoValue},
	{"margin-top", PropMarginTop, pxPctAutoValue},
	{"margin-right", PropMarginRight, pxPctAutoValue},
	{"margin-bottom", PropMarginBottom, pxPctAutoValue},
	{"left", PropInsetLeft, pxPctAutoValue},
	{"top", PropInsetTop, pxPctAutoValue},
	{"right", PropInsetRight, pxPctAutoValue},
	{"bottom", PropInsetBottom, pxPctAutoValue},
	{"z-index", PropZIndex, lift(parseInt32)},
	{"cursor", PropCursor, keywords(cursorKeywords)},
	{"color", PropColor, colorValue},
	{"background-color", PropBackgroundColor, colorValue},
	{"box-shadow", PropBoxShadow, func(t *Typer, s string) (any, bool) {
		bs, ok := parseBoxShadow(s, t.color)
		return bs, ok
	}},
	{"font-size", PropFontSize, pxValue},
	{"font-family", PropFontFamily, lift(parseFontFamily)},
	{"font-weight", PropFontWeight, keywords(weightKeywords)},
	{"font-style", PropFontStyle, keywords(fontStyleKeywords)},
	{"caret-color", PropCursorColor, colorValue},
	{"text-wrap", PropTextOverflow, keywords(textOverflowKeywords)},
	{"line-height", PropLineHeight, float32Value},
	{"aspect-ratio", PropAspectRatio, lift(parseAspectRatio)},
	{"column-gap", PropColumnGap, pxPctValue},
	{"row-gap", PropRowGap, pxPctValue},
	{"gap", PropGap, lift(parseGap)},
	{"transition", PropTransition, lift(ParseTransition)},
	{"user-select", PropUserSelect, keywords(userSelectKeywords)},
}

var (
	properties    = make(map[string]propertyEntry, len(propertyTable))
	propertyNames = make(map[Property]string, len(propertyTable))
)

func init() {
	for _, e := range propertyTable {
		properties[e.name] = e
		propertyNames[e.prop] = e.name
	}
}

// Typer converts raw property and value pairs into declarations. Color values
// fall back to the palette, if any, after the CSS color syntax.
type Typer struct {
	palette Palette
}

// NewTyper returns a Typer resolving colors against p. p may be nil.
func NewTyper(p Palette) *Typer {
	return &Typer{palette: p}
}

var defaultTyper = NewTyper(nil)

// FromPair types a single declaration without a palette. It returns false if
// the property is unknown or the value does not parse.
func FromPair(key, value string) (Declaration, bool) {
	return defaultTyper.FromPair(key, value)
}

// FromPair types a single declaration. It returns false if the property is
// unknown or the value does not parse.
func (t *Typer) FromPair(key, value string) (Declaration, bool) {
	e, ok := properties[key]
	if !ok {
		return Declaration{}, false
	}
	v, ok := e.parse(t, strings.TrimSpace(value))
	if !ok {
		return Declaration{}, false
	}
	return Declaration{Property: e.prop, Value: v}, true
}

func (t *Typer) color(s string) (Color, bool) {
	if c, ok := ParseColor(s); ok {
		return c, true
	}
	if t.palette == nil {
		return Color{}, false
	}
	name := strings.ToLower(s)
	if c, ok := t.palette.Named(name); ok {
		return c, true
	}
	return t.palette.Utility(name)
}
