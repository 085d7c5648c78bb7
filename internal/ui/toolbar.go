package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Toolbar is the demo bar content: a title strip with usage hints. It draws
// into whatever image the wrapping bar hands it, so it never needs to know
// whether it is currently sliding.
type Toolbar struct {
	Title string
}

// Draw renders the toolbar at full size into dst.
func (tb *Toolbar) Draw(dst *ebiten.Image) {
	w := dst.Bounds().Dx()
	h := dst.Bounds().Dy()

	vector.DrawFilledRect(dst, 0, 0, float32(w), float32(h), ColorSurface, false)
	// Bottom separator line
	vector.DrawFilledRect(dst, 0, float32(h-1), float32(w), 1, ColorSurfaceHover, false)

	// Accent chip left of the title
	chip := float32(h) * 0.4
	chipY := (float32(h) - chip) / 2
	vector.DrawFilledRect(dst, ToolbarPadding, chipY, chip, chip, ColorPrimary, false)

	title := tb.Title
	if title == "" {
		title = "ScrollHide"
	}
	ebitenutil.DebugPrintAt(dst, title, ToolbarPadding+int(chip)+10, h/2-8)
	ebitenutil.DebugPrintAt(dst, "scroll down to hide, up to reveal", w-280, h/2-8)
}
