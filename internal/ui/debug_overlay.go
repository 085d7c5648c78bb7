package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var debugOverlayVisible bool

// ToggleDebugOverlay toggles the debug overlay on F12.
func ToggleDebugOverlay() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		debugOverlayVisible = !debugOverlayVisible
	}
}

// DebugInfo is the state snapshot shown by the overlay.
type DebugInfo struct {
	Offset    float64
	Target    float64
	Direction string
	BarShown  bool
	BarHeight float64
}

// DrawDebugOverlay draws the debug overlay if visible.
func DrawDebugOverlay(screen *ebiten.Image, info DebugInfo) {
	if !debugOverlayVisible {
		return
	}

	const (
		padX    = 16.0
		padY    = 12.0
		lineH   = 16.0
		marginR = 20.0
		marginT = 20.0
		panelW  = 260.0
	)

	lines := []string{
		"scrollhide debug",
		fmt.Sprintf("offset:    %7.1f", info.Offset),
		fmt.Sprintf("target:    %7.1f", info.Target),
		fmt.Sprintf("direction: %s", info.Direction),
		fmt.Sprintf("bar shown: %v", info.BarShown),
		fmt.Sprintf("bar height: %5.1f", info.BarHeight),
	}

	panelH := float64(len(lines))*lineH + padY*2
	x := float64(screen.Bounds().Dx()) - panelW - marginR
	y := marginT

	vector.DrawFilledRect(screen, float32(x), float32(y), float32(panelW), float32(panelH), ColorOverlay, false)
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, int(x+padX), int(y+padY+float64(i)*lineH))
	}
}
