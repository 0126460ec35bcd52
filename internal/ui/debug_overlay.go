package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var debugOverlayVisible bool

// ToggleDebugOverlay shows or hides the debug overlay.
func ToggleDebugOverlay() {
	debugOverlayVisible = !debugOverlayVisible
}

func DebugOverlayVisible() bool { return debugOverlayVisible }

// DrawDebugOverlay draws lines in a panel at the top right if the overlay
// is visible.
func DrawDebugOverlay(screen *ebiten.Image, title string, lines []string) {
	if !debugOverlayVisible {
		return
	}

	const (
		padX    = 16.0
		padY    = 12.0
		lineH   = 18.0
		marginR = 20.0
		marginT = 60.0
	)

	panelW := 0.0
	for _, l := range append([]string{title}, lines...) {
		w, _ := MeasureText(l, FontSizeSmall)
		panelW = max(panelW, w)
	}
	panelW += padX * 2
	panelH := float64(len(lines)+1)*lineH + padY*2

	sw := float64(screen.Bounds().Dx())
	px := max(sw-panelW-marginR, 0)
	py := marginT

	vector.DrawFilledRect(screen, float32(px), float32(py), float32(panelW), float32(panelH), ColorOverlay, false)

	x := px + padX
	y := py + padY
	DrawText(screen, title, x, y, FontSizeSmall, ColorPrimary)
	y += lineH
	for _, l := range lines {
		DrawText(screen, l, x, y, FontSizeSmall, ColorText)
		y += lineH
	}
}
