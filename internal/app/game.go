package app

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/depeter/scrollhide"
	"github.com/depeter/scrollhide/internal/config"
	"github.com/depeter/scrollhide/internal/ui"
)

// Game implements ebiten.Game and wires the demo row list to an auto-hiding
// toolbar: the list publishes its animated scroll offset to a controller,
// and the bar reacts to the derived direction.
type Game struct {
	Config *config.Config

	Width, Height int

	scroll     ui.ScrollState
	controller *scrollhide.ScrollController
	list       *ui.RowList
	bar        *scrollhide.HideBar

	lastDir scrollhide.Direction
	dirSub  *scrollhide.Subscription
}

// NewGame creates the Game with all dependencies.
func NewGame(cfg *config.Config) *Game {
	g := &Game{
		Config: cfg,
		Width:  cfg.UI.Width,
		Height: cfg.UI.Height,
	}
	g.scroll.WheelSpeed = cfg.Scroll.WheelSpeed
	g.controller = scrollhide.NewScrollController(0)
	g.list = &ui.RowList{Count: cfg.Scroll.RowCount}

	toolbar := &ui.Toolbar{Title: "ScrollHide"}
	g.bar = scrollhide.NewHideBar(toolbar, g.controller, cfg.Bar.Height)
	g.bar.Duration = time.Duration(cfg.Bar.DurationMs) * time.Millisecond
	g.bar.Mount()

	// Second listener just feeds the debug overlay.
	g.dirSub = g.controller.AddListener(func(d scrollhide.Direction) {
		g.lastDir = d
	})
	return g
}

func (g *Game) Update() error {
	// Alt+Enter toggles fullscreen
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) && ebiten.IsKeyPressed(ebiten.KeyAlt) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	// F12 toggles debug overlay
	ui.ToggleDebugOverlay()

	g.scroll.HandleKeys(ui.InputState())
	g.scroll.HandleMouseWheel()
	g.scroll.ClampTarget(g.list.ContentHeight() + g.bar.BarHeight() - float64(g.Height))

	// Clicking the visible toolbar jumps back to the top.
	if mx, my, clicked := ui.MouseJustClicked(); clicked {
		if ui.PointInRect(mx, my, 0, 0, float64(g.Width), g.bar.VisibleHeight()) {
			g.scroll.Reset()
		}
	}

	g.scroll.Animate()
	g.controller.SetOffset(g.scroll.ScrollY)

	ui.UpdateInputState()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(ui.ColorBackground)

	g.list.Draw(screen, g.bar.BarHeight()+10, g.controller.Offset())
	g.bar.Draw(screen)

	ui.DrawDebugOverlay(screen, ui.DebugInfo{
		Offset:    g.controller.Offset(),
		Target:    g.scroll.TargetScrollY,
		Direction: g.lastDir.String(),
		BarShown:  g.bar.Shown(),
		BarHeight: g.bar.VisibleHeight(),
	})
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.Width, g.Height
}
