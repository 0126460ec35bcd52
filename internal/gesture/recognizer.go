package gesture

import (
	"math"
	"time"
)

const (
	DefaultDeadZone  = 4.0    // pixels
	MinFlingVelocity = 50.0   // pixels per second
	MaxFlingVelocity = 8000.0 // pixels per second
)

// Listener receives a vertical drag in sheet direction: deltas and
// velocities are positive when the pointer moves up the screen.
// sheet.DragCoordinator implements it.
type Listener interface {
	DragStart()
	DragUpdate(delta float64)
	DragEnd(velocity float64)
}

// Recognizer is a single-pointer vertical drag state machine. A press only
// becomes a drag once it moves past the dead zone; presses rejected by the
// hit test are ignored until released.
type Recognizer struct {
	DeadZone float64

	listener Listener
	hit      func(x, y float64) bool

	now      time.Duration
	down     bool
	dragging bool
	ignoring bool
	startY   float64
	lastY    float64
	sampledY float64
	tracker  VelocityTracker
}

// NewRecognizer reports drags to l. hit decides whether a press at (x, y)
// may start a drag; nil accepts every press.
func NewRecognizer(l Listener, hit func(x, y float64) bool) *Recognizer {
	return &Recognizer{DeadZone: DefaultDeadZone, listener: l, hit: hit}
}

func (r *Recognizer) Down() bool     { return r.down }
func (r *Recognizer) Dragging() bool { return r.dragging }

// Pointer feeds one frame of input: whether the pointer is pressed and
// where it is, dt after the previous frame.
func (r *Recognizer) Pointer(pressed bool, x, y float64, dt time.Duration) {
	r.now += dt
	if !pressed {
		r.ignoring = false
		if r.down {
			r.release()
		}
		return
	}
	if r.ignoring {
		return
	}

	if !r.down {
		if r.hit != nil && !r.hit(x, y) {
			r.ignoring = true
			return
		}
		r.down = true
		r.dragging = false
		r.startY, r.lastY, r.sampledY = y, y, y
		r.tracker.Reset()
		r.tracker.Add(r.now, y)
		return
	}

	// A pointer at rest adds no samples, so a pause before release reads
	// as a stall.
	if y != r.sampledY {
		r.tracker.Add(r.now, y)
		r.sampledY = y
	}
	if !r.dragging {
		if math.Abs(y-r.startY) <= r.DeadZone {
			return
		}
		r.dragging = true
		r.listener.DragStart()
	}
	if y != r.lastY {
		r.listener.DragUpdate(r.lastY - y)
		r.lastY = y
	}
}

func (r *Recognizer) release() {
	r.down = false
	if r.dragging {
		r.dragging = false
		r.listener.DragEnd(r.releaseVelocity())
	}
}

// Cancel ends an active drag at rest, as when the window loses the
// pointer. A pointer still held is ignored until it is released.
func (r *Recognizer) Cancel() {
	r.ignoring = r.down
	r.down = false
	if r.dragging {
		r.dragging = false
		r.listener.DragEnd(0)
	}
}

func (r *Recognizer) releaseVelocity() float64 {
	v := -r.tracker.Velocity(r.now)
	if math.Abs(v) < MinFlingVelocity {
		return 0
	}
	return math.Max(-MaxFlingVelocity, math.Min(v, MaxFlingVelocity))
}
