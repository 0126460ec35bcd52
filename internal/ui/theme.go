package ui

import "image/color"

// Colors: dark theme, the sheet surface lifted off the backdrop
var (
	ColorBackground    = color.RGBA{R: 0x10, G: 0x10, B: 0x14, A: 0xFF}
	ColorBackdrop      = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0x80}
	ColorSurface       = color.RGBA{R: 0x1C, G: 0x1C, B: 0x24, A: 0xFF}
	ColorSurfaceHover  = color.RGBA{R: 0x28, G: 0x28, B: 0x34, A: 0xFF}
	ColorPrimary       = color.RGBA{R: 0x00, G: 0xA4, B: 0xDC, A: 0xFF}
	ColorText          = color.RGBA{R: 0xE0, G: 0xE0, B: 0xE0, A: 0xFF}
	ColorTextSecondary = color.RGBA{R: 0x90, G: 0x90, B: 0x9C, A: 0xFF}
	ColorTextMuted     = color.RGBA{R: 0x60, G: 0x60, B: 0x6C, A: 0xFF}
	ColorFocusBorder   = color.RGBA{R: 0x00, G: 0xA4, B: 0xDC, A: 0xFF}
	ColorOverlay       = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xC0}
	ColorError         = color.RGBA{R: 0xE0, G: 0x40, B: 0x40, A: 0xFF}
	ColorSuccess       = color.RGBA{R: 0x40, G: 0xC0, B: 0x60, A: 0xFF}
	ColorHandle        = color.RGBA{R: 0x50, G: 0x50, B: 0x5C, A: 0xFF}
	ColorSnapMark      = color.RGBA{R: 0xAA, G: 0x5C, B: 0xC3, A: 0x90}
)

// Layout constants
const (
	SheetCornerRadius = 16
	SheetSidePadding  = 24

	HandleAreaHeight = 28
	HandleWidth      = 44
	HandleHeight     = 5

	RowHeight  = 56
	RowPadding = 20
	RowGap     = 1

	FontSizeTitle   = 28
	FontSizeHeading = 22
	FontSizeBody    = 16
	FontSizeSmall   = 13
	FontSizeCaption = 11

	// SnapMarkWidth is the length of the snap stop ticks drawn at the
	// right edge of the window.
	SnapMarkWidth = 14

	// Frames a status message stays on screen, ~4 seconds at 60fps.
	StatusFrames = 240
)
