package app

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/depeter/dragsheet/internal/anim"
	"github.com/depeter/dragsheet/internal/config"
	"github.com/depeter/dragsheet/internal/physics"
	"github.com/depeter/dragsheet/internal/scroll"
	"github.com/depeter/dragsheet/internal/sheet"
	"github.com/depeter/dragsheet/internal/ui"
)

// Game implements ebiten.Game and manages the overall application.
type Game struct {
	Config     *config.Config
	Loop       *anim.Loop
	Sheet      *sheet.Sheet
	Controller *sheet.Controller
	List       *scroll.List
	Screens    *ui.ScreenManager

	// Reloads delivers config file changes; nil disables hot reload.
	Reloads <-chan config.Reload

	Width, Height int

	sheetScreen *ui.SheetScreen
}

// NewGame builds the sheet, its list and the screens from cfg.
func NewGame(cfg *config.Config) (*Game, error) {
	loop := anim.NewLoop()
	list := scroll.New(loop, ebiten.TPS())
	ctrl := sheet.NewController()

	s, err := sheet.New(cfg.Sheet.ToSheet(), list, loop,
		sheet.WithTolerance(physics.ToleranceFor(cfg.Physics.DevicePixelRatio)),
		sheet.WithController(ctrl),
	)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}

	g := &Game{
		Config:     cfg,
		Loop:       loop,
		Sheet:      s,
		Controller: ctrl,
		List:       list,
		Screens:    ui.NewScreenManager(),
		Width:      cfg.UI.Width,
		Height:     cfg.UI.Height,
	}
	g.sheetScreen = ui.NewSheetScreen(s, ctrl, list, g.sheetOptions(cfg))
	g.Screens.Push(g.sheetScreen)
	g.warnUnknownKeys(cfg.Keybinds)
	return g, nil
}

func (g *Game) sheetOptions(cfg *config.Config) ui.SheetOptions {
	curve, d := cfg.UI.Animation()
	return ui.SheetOptions{
		Rows:            cfg.UI.Rows,
		ExpandToContent: cfg.Sheet.ExpandToContent,
		Curve:           curve,
		Duration:        d,
		Help:            helpEntries(cfg.Keybinds),
	}
}

func helpEntries(kb config.KeybindConfig) []ui.HelpEntry {
	return []ui.HelpEntry{
		{Key: kb.Expand, Action: "Expand to the maximum size"},
		{Key: kb.Collapse, Action: "Collapse to the minimum size"},
		{Key: kb.Reset, Action: "Reset size and scroll position"},
		{Key: kb.ToggleSnap, Action: "Toggle snapping"},
		{Key: "1 - 0", Action: "Jump to 10% - 100%"},
		{Key: "Up / Down", Action: "Move the row focus"},
		{Key: "PgUp / PgDn", Action: "Move the row focus by a page"},
		{Key: "Wheel", Action: "Scroll the rows"},
		{Key: kb.Debug, Action: "Debug overlay"},
		{Key: "Alt+Enter", Action: "Fullscreen"},
	}
}

func (g *Game) warnUnknownKeys(kb config.KeybindConfig) {
	if unknown := checkKeybinds(kb); len(unknown) > 0 {
		msg := fmt.Sprintf("Unknown keybinds: %s", strings.Join(unknown, ", "))
		log.Print(msg)
		g.sheetScreen.Status.Show(msg)
	}
}

func (g *Game) Update() error {
	// Alt+Enter toggles fullscreen
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) && ebiten.IsKeyPressed(ebiten.KeyAlt) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	kb := &g.Config.Keybinds
	if keyJustPressed(kb.Debug) {
		ui.ToggleDebugOverlay()
	}

	g.applyReloads()

	if g.Screens.Current() == g.sheetScreen {
		g.handleSheetKeys()
	}
	if err := g.Screens.Update(); err != nil {
		return err
	}

	g.Loop.Advance(time.Second / time.Duration(ebiten.TPS()))

	ui.UpdateInputState()
	return nil
}

func (g *Game) handleSheetKeys() {
	kb := &g.Config.Keybinds
	ss := g.sheetScreen
	switch {
	case keyJustPressed(kb.Expand):
		ss.Expand()
	case keyJustPressed(kb.Collapse):
		ss.Collapse()
	case keyJustPressed(kb.Reset):
		ss.Reset()
	case keyJustPressed(kb.ToggleSnap):
		ss.ToggleSnap()
	}
}

// applyReloads applies a pending config reload, if any.
func (g *Game) applyReloads() {
	if g.Reloads == nil {
		return
	}
	select {
	case r, ok := <-g.Reloads:
		if !ok {
			g.Reloads = nil
			return
		}
		if r.Err != nil {
			g.sheetScreen.Status.ShowError(fmt.Errorf("config: %w", r.Err))
			return
		}
		g.ApplyConfig(r.Config)
	default:
	}
}

// ApplyConfig switches to cfg. The sheet keeps its size as a fraction and
// its current interaction; only what changed is replaced. The pixel ratio
// applies from the next start.
func (g *Game) ApplyConfig(cfg *config.Config) {
	if err := g.Sheet.Configure(cfg.Sheet.ToSheet()); err != nil {
		log.Printf("Failed to apply sheet config: %v", err)
		g.sheetScreen.Status.ShowError(err)
		return
	}
	if cfg.Physics.DevicePixelRatio != g.Config.Physics.DevicePixelRatio {
		log.Printf("device_pixel_ratio changes apply after a restart")
	}
	if cfg.UI.Width != g.Config.UI.Width || cfg.UI.Height != g.Config.UI.Height {
		ebiten.SetWindowSize(cfg.UI.Width, cfg.UI.Height)
	}
	if cfg.UI.Fullscreen != g.Config.UI.Fullscreen {
		ebiten.SetFullscreen(cfg.UI.Fullscreen)
	}

	opts := g.sheetOptions(cfg)
	g.sheetScreen.SetRows(opts.Rows)
	g.sheetScreen.SetExpandToContent(opts.ExpandToContent)
	g.sheetScreen.SetAnimation(opts.Curve, opts.Duration)
	g.sheetScreen.SetHelp(opts.Help)

	g.Config = cfg
	g.sheetScreen.Status.Show("Config reloaded")
	g.warnUnknownKeys(cfg.Keybinds)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(ui.ColorBackground)
	g.Screens.Draw(screen)
	ui.DrawDebugOverlay(screen, "Debug: sheet state", g.sheetScreen.DebugLines())
}

// Layout follows the window so the sheet reflows when it is resized.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.Width, g.Height = outsideWidth, outsideHeight
	g.sheetScreen.SetSize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// Close stops the sheet's motion and detaches its controller.
func (g *Game) Close() {
	g.sheetScreen.Close()
}
