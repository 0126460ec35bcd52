package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Status is a one-line message banner at the top of the window with a
// dismiss button. Errors stay until dismissed; other messages expire.
type Status struct {
	text        string
	isErr       bool
	framesLeft  int
	dismissRect ButtonRect
}

func (st *Status) Show(msg string) {
	st.text = msg
	st.isErr = false
	st.framesLeft = StatusFrames
}

func (st *Status) ShowError(err error) {
	if err == nil {
		return
	}
	st.text = err.Error()
	st.isErr = true
	st.framesLeft = 0
}

func (st *Status) Clear() {
	st.text = ""
	st.dismissRect = ButtonRect{}
}

func (st *Status) Text() string { return st.text }

// Update counts down the message and handles the dismiss button. Returns
// true if the click was consumed.
func (st *Status) Update() bool {
	if st.text == "" {
		return false
	}
	if !st.isErr {
		st.framesLeft--
		if st.framesLeft <= 0 {
			st.Clear()
			return false
		}
	}
	if mx, my, clicked := MouseJustClicked(); clicked && st.dismissRect.Contains(mx, my) {
		st.Clear()
		return true
	}
	return false
}

// Draw renders the banner across the top of a window w wide.
func (st *Status) Draw(dst *ebiten.Image, w float64) {
	if st.text == "" {
		return
	}
	const (
		padX = 16.0
		barH = FontSizeSmall + 20.0
		btnW = 60.0
		btnH = FontSizeSmall + 8.0
	)
	vector.DrawFilledRect(dst, 0, 0, float32(w), barH, ColorOverlay, false)

	clr := ColorSuccess
	if st.isErr {
		clr = ColorError
	}
	btnX := w - padX - btnW
	msg := truncateText(st.text, btnX-padX*2, FontSizeSmall)
	DrawText(dst, msg, padX, (barH-FontSizeSmall)/2, FontSizeSmall, clr)

	btnY := (barH - btnH) / 2
	st.dismissRect = ButtonRect{X: btnX, Y: btnY, W: btnW, H: btnH}
	vector.DrawFilledRect(dst, float32(btnX), float32(btnY), float32(btnW), float32(btnH), ColorSurface, false)
	vector.StrokeRect(dst, float32(btnX), float32(btnY), float32(btnW), float32(btnH), 1, ColorTextMuted, false)
	DrawTextCentered(dst, "Dismiss", btnX+btnW/2, btnY+btnH/2, FontSizeSmall, ColorTextSecondary)
}
