package cssengine

// CursorIcon is the mouse cursor shown over an element.
type CursorIcon int

const (
	CursorDefault CursorIcon = iota
	CursorNone

	// Links and status.
	CursorContextMenu
	CursorHelp
	CursorPointingHand
	CursorProgress
	CursorWait

	// Selection.
	CursorCell
	CursorCrosshair
	CursorText
	CursorVerticalText

	// Drag and drop.
	CursorAlias
	CursorCopy
	CursorMove
	CursorNoDrop
	CursorNotAllowed
	CursorGrab
	CursorGrabbing

	CursorAllScroll

	// Resizing in two directions.
	CursorResizeHorizontal
	CursorResizeNeSw
	CursorResizeNwSe
	CursorResizeVertical

	// Resizing in one direction.
	CursorResizeEast
	CursorResizeSouthEast
	CursorResizeSouth
	CursorResizeSouthWest
	CursorResizeWest
	CursorResizeNorthWest
	CursorResizeNorth
	CursorResizeNorthEast

	CursorResizeColumn
	CursorResizeRow

	CursorZoomIn
	CursorZoomOut
)

var cursorKeywords = keywordTable[CursorIcon]{
	{"default", CursorDefault},
	{"auto", CursorDefault},
	{"none", CursorNone},
	{"context-menu", CursorContextMenu},
	{"help", CursorHelp},
	{"pointer", CursorPointingHand},
	{"progress", CursorProgress},
	{"wait", CursorWait},
	{"cell", CursorCell},
	{"crosshair", CursorCrosshair},
	{"text", CursorText},
	{"vertical-text", CursorVerticalText},
	{"alias", CursorAlias},
	{"copy", CursorCopy},
	{"move", CursorMove},
	{"no-drop", CursorNoDrop},
	{"not-allowed", CursorNotAllowed},
	{"grab", CursorGrab},
	{"grabbing", CursorGrabbing},
	{"all-scroll", CursorAllScroll},
	{"ew-resize", CursorResizeHorizontal},
	{"nesw-resize", CursorResizeNeSw},
	{"nwse-resize", CursorResizeNwSe},
	{"ns-resize", CursorResizeVertical},
	{"e-resize", CursorResizeEast},
	{"se-resize", CursorResizeSouthEast},
	{"s-resize", CursorResizeSouth},
	{"sw-resize", CursorResizeSouthWest},
	{"w-resize", CursorResizeWest},
	{"nw-resize", CursorResizeNorthWest},
	{"n-resize", CursorResizeNorth},
	{"ne-resize", CursorResizeNorthEast},
	{"col-resize", CursorResizeColumn},
	{"row-resize", CursorResizeRow},
	{"zoom-in", CursorZoomIn},
	{"zoom-out", CursorZoomOut},
}

func (c CursorIcon) String() string { return cursorKeywords.name(c) }
