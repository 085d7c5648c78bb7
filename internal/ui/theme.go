package ui

import "image/color"

// Colors — dark theme
var (
	ColorBackground   = color.RGBA{R: 0x10, G: 0x10, B: 0x14, A: 0xFF}
	ColorSurface      = color.RGBA{R: 0x1C, G: 0x1C, B: 0x24, A: 0xFF}
	ColorSurfaceHover = color.RGBA{R: 0x28, G: 0x28, B: 0x34, A: 0xFF}
	ColorPrimary      = color.RGBA{R: 0x00, G: 0xA4, B: 0xDC, A: 0xFF}
	ColorText         = color.RGBA{R: 0xE0, G: 0xE0, B: 0xE0, A: 0xFF}
	ColorTextMuted    = color.RGBA{R: 0x60, G: 0x60, B: 0x6C, A: 0xFF}
	ColorRowEven      = color.RGBA{R: 0x1C, G: 0x1C, B: 0x24, A: 0xFF}
	ColorRowOdd       = color.RGBA{R: 0x22, G: 0x22, B: 0x2C, A: 0xFF}
	ColorOverlay      = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xC0}
)

// Layout constants
const (
	SectionPadding = 40

	RowHeight = 52.0
	RowGap    = 4.0

	ToolbarPadding = 20

	ScrollAnimSpeed = 0.12

	// KeyScrollStep is pixels scrolled per arrow-key repeat.
	KeyScrollStep = 80
)
