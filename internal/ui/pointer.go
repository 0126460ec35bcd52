package ui

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/depeter/dragsheet/internal/gesture"
)

// Pointer polls the mouse and the first touch once per frame and feeds a
// gesture.Recognizer. A touch takes over from the mouse while it lasts.
type Pointer struct {
	rec     *gesture.Recognizer
	touchID ebiten.TouchID
	touched bool

	X, Y float64
}

func NewPointer(rec *gesture.Recognizer) *Pointer {
	return &Pointer{rec: rec}
}

// Update polls input and feeds it to the recognizer, dt after the previous
// frame.
func (p *Pointer) Update(dt time.Duration) {
	pressed := p.poll()
	p.rec.Pointer(pressed, p.X, p.Y, dt)
}

func (p *Pointer) poll() bool {
	if p.touched {
		if inpututil.IsTouchJustReleased(p.touchID) {
			p.touched = false
			return false
		}
		x, y := ebiten.TouchPosition(p.touchID)
		p.X, p.Y = float64(x), float64(y)
		return true
	}
	if ids := inpututil.AppendJustPressedTouchIDs(nil); len(ids) > 0 {
		p.touchID = ids[0]
		p.touched = true
		x, y := ebiten.TouchPosition(p.touchID)
		p.X, p.Y = float64(x), float64(y)
		return true
	}

	x, y := ebiten.CursorPosition()
	p.X, p.Y = float64(x), float64(y)
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

// Dragging reports whether the pointer is moving the sheet.
func (p *Pointer) Dragging() bool { return p.rec.Dragging() }

// Cancel abandons the current drag, as when the window loses focus.
func (p *Pointer) Cancel() { p.rec.Cancel() }
