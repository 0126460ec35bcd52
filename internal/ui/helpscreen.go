package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type HelpEntry struct {
	Key    string
	Action string
}

// HelpScreen lists the key bindings over the screen below it.
type HelpScreen struct {
	entries []HelpEntry
	width   float64
	height  float64
}

func NewHelpScreen(entries []HelpEntry) *HelpScreen {
	return &HelpScreen{entries: entries}
}

func (hs *HelpScreen) Name() string    { return "Help" }
func (hs *HelpScreen) IsOverlay() bool { return true }
func (hs *HelpScreen) OnEnter()        {}
func (hs *HelpScreen) OnExit()         {}

func (hs *HelpScreen) Update() (*ScreenTransition, error) {
	_, back := InputState()
	_, _, clicked := MouseJustClicked()
	if back || clicked || inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		return &ScreenTransition{Type: TransitionPop}, nil
	}
	return nil, nil
}

func (hs *HelpScreen) Draw(dst *ebiten.Image) {
	b := dst.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())

	const (
		pad   = 24.0
		lineH = 26.0
		keyW  = 140.0
	)
	panelW := min(w-2*pad, 480)
	panelH := pad*2 + FontSizeHeading + 16 + float64(len(hs.entries))*lineH + lineH
	px := (w - panelW) / 2
	py := max((h-panelH)/2, 0)

	vector.DrawFilledRect(dst, 0, 0, float32(w), float32(h), ColorOverlay, false)
	vector.DrawFilledRect(dst, float32(px), float32(py), float32(panelW), float32(panelH), ColorSurface, false)
	vector.StrokeRect(dst, float32(px), float32(py), float32(panelW), float32(panelH), 1, ColorTextMuted, false)

	x := px + pad
	y := py + pad
	DrawText(dst, "Keys", x, y, FontSizeHeading, ColorText)
	y += FontSizeHeading + 16
	for _, e := range hs.entries {
		DrawText(dst, e.Key, x, y, FontSizeBody, ColorPrimary)
		action := truncateText(e.Action, panelW-2*pad-keyW, FontSizeBody)
		DrawText(dst, action, x+keyW, y, FontSizeBody, ColorTextSecondary)
		y += lineH
	}
	DrawText(dst, "Esc or F1 to close", x, y+lineH/2, FontSizeSmall, ColorTextMuted)
}
