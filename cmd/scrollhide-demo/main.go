package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/depeter/scrollhide/assets/icon"
	"github.com/depeter/scrollhide/internal/app"
	"github.com/depeter/scrollhide/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	game := app.NewGame(cfg)

	ebiten.SetWindowSize(cfg.UI.Width, cfg.UI.Height)
	ebiten.SetWindowTitle("ScrollHide")
	ebiten.SetWindowIcon(icon.Generate())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.UI.Fullscreen {
		ebiten.SetFullscreen(true)
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
