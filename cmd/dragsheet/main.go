package main

import (
	"context"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/depeter/dragsheet/assets/icon"
	"github.com/depeter/dragsheet/internal/app"
	"github.com/depeter/dragsheet/internal/config"
	"github.com/depeter/dragsheet/internal/ui"
)

func main() {
	// Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Init fonts
	if err := ui.InitFonts(goregular.TTF); err != nil {
		log.Fatalf("Failed to init fonts: %v", err)
	}

	game, err := app.NewGame(cfg)
	if err != nil {
		log.Fatalf("Failed to create sheet: %v", err)
	}
	defer game.Close()

	// Hot reload the config file
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	reloads, err := config.Watch(ctx, config.ConfigPath())
	if err != nil {
		log.Printf("Config hot reload disabled: %v", err)
	} else {
		game.Reloads = reloads
	}

	// Configure window
	ebiten.SetWindowSize(cfg.UI.Width, cfg.UI.Height)
	ebiten.SetWindowTitle("DragSheet")
	ebiten.SetWindowIcon(icon.Generate())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.UI.Fullscreen)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
