package cssengine

import (
	"fmt"
)

type keyword[T comparable] struct {
	name string
	val  T
}

// keywordTable maps CSS keywords to enumerated values. A value may have
// several keywords; the first one is its canonical name.
type keywordTable[T comparable] []keyword[T]

func (kt keywordTable[T]) parse(s string) (T, bool) {
	for _, kw := range kt {
		if kw.name == s {
			return kw.val, true
		}
	}
	var zero T
	return zero, false
}

func (kt keywordTable[T]) name(v T) string {
	for _, kw := range kt {
		if kw.val == v {
			return kw.name
		}
	}
	return fmt.Sprintf("%T(invalid)", v)
}

// Display is the outer display type of an element.
type Display int

const (
	DisplayBlock Display = iota
	DisplayFlex
	DisplayGrid
	DisplayNone
)

var displayKeywords = keywordTable[Display]{
	{"block", DisplayBlock},
	{"flex", DisplayFlex},
	{"grid", DisplayGrid},
	{"none", DisplayNone},
}

func (d Display) String() string { return displayKeywords.name(d) }

// Position is the positioning scheme of an element.
type Position int

const (
	PositionRelative Position = iota
	PositionAbsolute
)

var positionKeywords = keywordTable[Position]{
	{"relative", PositionRelative},
	{"absolute", PositionAbsolute},
}

func (p Position) String() string { return positionKeywords.name(p) }

// FlexDirection is the main axis of a flex container.
type FlexDirection int

const (
	FlexRow FlexDirection = iota
	FlexColumn
	FlexRowReverse
	FlexColumnReverse
)

var flexDirectionKeywords = keywordTable[FlexDirection]{
	{"row", FlexRow},
	{"column", FlexColumn},
	{"row-reverse", FlexRowReverse},
	{"column-reverse", FlexColumnReverse},
}

func (f FlexDirection) String() string { return flexDirectionKeywords.name(f) }

// FlexWrap controls whether flex items wrap onto multiple lines.
type FlexWrap int

const (
	FlexNoWrap FlexWrap = iota
	FlexWrapOn
	FlexWrapReverse
)

var flexWrapKeywords = keywordTable[FlexWrap]{
	{"nowrap", FlexNoWrap},
	{"no-wrap", FlexNoWrap},
	{"wrap", FlexWrapOn},
	{"wrap-reverse", FlexWrapReverse},
}

func (f FlexWrap) String() string { return flexWrapKeywords.name(f) }

// JustifyContent distributes space along the main axis.
type JustifyContent int

const (
	JustifyStart JustifyContent = iota
	JustifyEnd
	JustifyFlexStart
	JustifyFlexEnd
	JustifyCenter
	JustifyStretch
	JustifySpaceBetween
	JustifySpaceEvenly
	JustifySpaceAround
)

var justifyContentKeywords = keywordTable[JustifyContent]{
	{"start", JustifyStart},
	{"end", JustifyEnd},
	{"flex-start", JustifyFlexStart},
	{"flex-end", JustifyFlexEnd},
	{"center", JustifyCenter},
	{"stretch", JustifyStretch},
	{"space-between", JustifySpaceBetween},
	{"space-evenly", JustifySpaceEvenly},
	{"space-around", JustifySpaceAround},
}

func (j JustifyContent) String() string { return justifyContentKeywords.name(j) }

// AlignItems aligns items along the cross axis. It is also the value of
// align-self and justify-self.
type AlignItems int

const (
	AlignItemsStart AlignItems = iota
	AlignItemsEnd
	AlignItemsFlexStart
	AlignItemsFlexEnd
	AlignItemsCenter
	AlignItemsBaseline
	AlignItemsStretch
)

var alignItemsKeywords = keywordTable[AlignItems]{
	{"start", AlignItemsStart},
	{"end", AlignItemsEnd},
	{"flex-start", AlignItemsFlexStart},
	{"flex-end", AlignItemsFlexEnd},
	{"center", AlignItemsCenter},
	{"baseline", AlignItemsBaseline},
	{"stretch", AlignItemsStretch},
}

func (a AlignItems) String() string { return alignItemsKeywords.name(a) }

// AlignContent distributes space between lines along the cross axis.
type AlignContent int

const (
	AlignContentStart AlignContent = iota
	AlignContentEnd
	AlignContentFlexStart
	AlignContentFlexEnd
	AlignContentCenter
	AlignContentStretch
	AlignContentSpaceBetween
	AlignContentSpaceEvenly
	AlignContentSpaceAround
)

var alignContentKeywords = keywordTable[AlignContent]{
	{"start", AlignContentStart},
	{"end", AlignContentEnd},
	{"flex-start", AlignContentFlexStart},
	{"flex-end", AlignContentFlexEnd},
	{"center", AlignContentCenter},
	{"stretch", AlignContentStretch},
	{"space-between", AlignContentSpaceBetween},
	{"space-evenly", AlignContentSpaceEvenly},
	{"space-around", AlignContentSpaceAround},
}

func (a AlignContent) String() string { return alignContentKeywords.name(a) }

// Weight is a font weight between 100 and 900.
type Weight uint16

const (
	WeightThin       Weight = 100
	WeightExtraLight Weight = 200
	WeightLight      Weight = 300
	WeightNormal     Weight = 400
	WeightMedium     Weight = 500
	WeightSemibold   Weight = 600
	WeightBold       Weight = 700
	WeightExtraBold  Weight = 800
	WeightBlack      Weight = 900
)

var weightKeywords = keywordTable[Weight]{
	{"100", WeightThin},
	{"thin", WeightThin},
	{"200", WeightExtraLight},
	{"300", WeightLight},
	{"400", WeightNormal},
	{"normal", WeightNormal},
	{"500", WeightMedium},
	{"600", WeightSemibold},
	{"700", WeightBold},
	{"bold", WeightBold},
	{"800", WeightExtraBold},
	{"900", WeightBlack},
}

func (w Weight) String() string { return weightKeywords.name(w) }

// FontStyle selects upright, italic or oblique faces.
type FontStyle int

const (
	FontStyleNormal FontStyle = iota
	FontStyleItalic
	FontStyleOblique
)

var fontStyleKeywords = keywordTable[FontStyle]{
	{"normal", FontStyleNormal},
	{"italic", FontStyleItalic},
	{"oblique", FontStyleOblique},
}

func (f FontStyle) String() string { return fontStyleKeywords.name(f) }

// TextOverflow is how text that does not fit is laid out.
type TextOverflow int

const (
	TextWrap TextOverflow = iota
	TextClip
	TextEllipsis
)

var textOverflowKeywords = keywordTable[TextOverflow]{
	{"wrap", TextWrap},
	{"clip", TextClip},
	{"ellipsis", TextEllipsis},
}

func (t TextOverflow) String() string { return textOverflowKeywords.name(t) }

var userSelectKeywords = keywordTable[bool]{
	{"auto", true},
	{"none", false},
}
