// Package scroll provides the vertical list shown inside the sheet.
//
// List implements sheet.Scrollable. Its motion runs on an anim.Loop: a fling
// is a harmonica projectile under constant deceleration, and content pulled
// past its end springs back with a critically damped harmonica spring.
package scroll

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"

	"github.com/depeter/dragsheet/internal/anim"
)

const (
	// FlingDeceleration slows a fling, in pixels per second squared.
	FlingDeceleration = 2500.0
	// MinFlingVelocity is the slowest release that still flings.
	MinFlingVelocity = 50.0
	// OverscrollFriction scales drag deltas that pull past the end.
	OverscrollFriction = 0.5

	// WheelStep is pixels per mouse wheel unit.
	WheelStep = 60.0
	// wheelLerp is the per-frame interpolation factor toward the wheel target.
	wheelLerp = 0.12

	springFrequency = 8.0
	springDamping   = 1.0
	restDistance    = 0.5
	restVelocity    = 20.0
)

// Phase is what the list is doing between frames.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseDrag
	PhaseFling
	PhaseSpring
	PhaseWheel
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseDrag:
		return "drag"
	case PhaseFling:
		return "fling"
	case PhaseSpring:
		return "spring"
	case PhaseWheel:
		return "wheel"
	}
	return "unknown"
}

// List is a column of equal-height rows scrolled by a single offset. Offsets
// and velocities are positive toward the end of the list.
type List struct {
	ticker *anim.Ticker
	dt     float64

	rows      int
	rowHeight float64
	viewport  float64

	offset   float64
	velocity float64
	phase    Phase

	fling       *harmonica.Projectile
	flingDir    float64
	spring      harmonica.Spring
	wheelTarget float64
}

// New creates an empty list stepping once per frame of loop, which runs at
// fps frames per second.
func New(loop *anim.Loop, fps int) *List {
	if fps <= 0 {
		fps = 60
	}
	l := &List{dt: harmonica.FPS(fps)}
	l.spring = harmonica.NewSpring(l.dt, springFrequency, springDamping)
	l.ticker = loop.NewTicker(l.tick)
	return l
}

// SetRows sets the row count and height. The offset is clamped to the new
// content unless it is pulled past the end by a drag or springing back.
func (l *List) SetRows(n int, rowHeight float64) {
	l.rows = max(n, 0)
	l.rowHeight = max(rowHeight, 0)
	l.clampAtRest()
}

// SetViewport sets the visible height.
func (l *List) SetViewport(h float64) {
	l.viewport = max(h, 0)
	l.clampAtRest()
}

func (l *List) Rows() int          { return l.rows }
func (l *List) RowHeight() float64 { return l.rowHeight }
func (l *List) Viewport() float64  { return l.viewport }

func (l *List) ContentHeight() float64 {
	return float64(l.rows) * l.rowHeight
}

// MaxOffset is the largest offset at rest.
func (l *List) MaxOffset() float64 {
	return max(l.ContentHeight()-l.viewport, 0)
}

func (l *List) Offset() float64   { return l.offset }
func (l *List) Velocity() float64 { return l.velocity }
func (l *List) Phase() Phase      { return l.phase }

// Overscroll is how far the content is pulled past its end.
func (l *List) Overscroll() float64 {
	return max(l.offset-l.MaxOffset(), 0)
}

// BeginDrag stops any motion and hands the offset to the user.
func (l *List) BeginDrag() {
	l.stop()
	l.phase = PhaseDrag
}

// ApplyUserOffset moves the content by a drag delta. The start is a hard
// stop; past the end the content follows the pointer at reduced rate.
func (l *List) ApplyUserOffset(delta float64) {
	next := l.offset + delta
	if end := l.MaxOffset(); delta > 0 && next > end {
		before := max(l.offset-end, 0)
		next = end + before + (next-end-before)*OverscrollFriction
	}
	l.offset = max(next, 0)
}

// CancelDrag stops any drag or motion and leaves the content at rest within
// its range.
func (l *List) CancelDrag() {
	l.stop()
	l.offset = min(l.offset, l.MaxOffset())
}

// GoBallistic releases the content with velocity in pixels per second.
func (l *List) GoBallistic(velocity float64) {
	l.stop()
	switch {
	case l.offset > l.MaxOffset():
		l.startSpring(velocity)
	case math.Abs(velocity) < MinFlingVelocity:
	case l.offset <= 0 && velocity < 0:
	default:
		l.startFling(velocity)
	}
}

// JumpTo moves the content to offset immediately, clamped to its range.
func (l *List) JumpTo(offset float64) {
	l.stop()
	l.offset = min(max(offset, 0), l.MaxOffset())
}

// Wheel scrolls by wy mouse wheel units, animating toward the accumulated
// target. Positive wy scrolls toward the start, as ebiten reports it.
func (l *List) Wheel(wy float64) {
	if wy == 0 {
		return
	}
	if l.phase != PhaseWheel {
		l.stop()
		l.wheelTarget = l.offset
	}
	l.wheelTarget = min(max(l.wheelTarget-wy*WheelStep, 0), l.MaxOffset())
	l.start(PhaseWheel)
}

// EnsureRowVisible scrolls just enough to show row in full.
func (l *List) EnsureRowVisible(row int) {
	if row < 0 || row >= l.rows {
		return
	}
	top := float64(row) * l.rowHeight
	bottom := top + l.rowHeight
	target := l.offset
	if l.phase == PhaseWheel {
		target = l.wheelTarget
	}
	switch {
	case bottom > target+l.viewport:
		target = bottom - l.viewport
	case top < target:
		target = top
	default:
		return
	}
	l.stop()
	l.wheelTarget = min(max(target, 0), l.MaxOffset())
	l.start(PhaseWheel)
}

// VisibleRows returns the half-open range of rows intersecting the viewport.
func (l *List) VisibleRows() (first, last int) {
	if l.rowHeight <= 0 || l.rows == 0 {
		return 0, 0
	}
	first = int(l.offset / l.rowHeight)
	last = int(math.Ceil((l.offset + l.viewport) / l.rowHeight))
	return min(max(first, 0), l.rows), min(max(last, 0), l.rows)
}

func (l *List) tick(time.Duration) {
	switch l.phase {
	case PhaseFling:
		l.stepFling()
	case PhaseSpring:
		l.stepSpring()
	case PhaseWheel:
		l.stepWheel()
	default:
		l.stop()
	}
}

func (l *List) startFling(velocity float64) {
	l.flingDir = 1
	if velocity < 0 {
		l.flingDir = -1
	}
	l.fling = harmonica.NewProjectile(l.dt,
		harmonica.Point{Y: l.offset},
		harmonica.Vector{Y: velocity},
		harmonica.Vector{Y: -l.flingDir * FlingDeceleration})
	l.velocity = velocity
	l.start(PhaseFling)
}

func (l *List) stepFling() {
	pos := l.fling.Update()
	l.offset = pos.Y
	l.velocity = l.fling.Velocity().Y
	switch {
	case l.offset <= 0:
		l.offset = 0
		l.stop()
	case l.offset > l.MaxOffset():
		l.startSpring(l.velocity)
	case l.velocity*l.flingDir <= restVelocity:
		l.stop()
	}
}

func (l *List) startSpring(velocity float64) {
	l.velocity = velocity
	l.start(PhaseSpring)
}

func (l *List) stepSpring() {
	target := l.MaxOffset()
	l.offset, l.velocity = l.spring.Update(l.offset, l.velocity, target)
	if l.offset < 0 {
		l.offset = 0
	}
	if math.Abs(l.offset-target) < restDistance && math.Abs(l.velocity) < restVelocity {
		l.offset = target
		l.stop()
	}
}

func (l *List) stepWheel() {
	l.offset = lerp(l.offset, l.wheelTarget, wheelLerp)
	if math.Abs(l.offset-l.wheelTarget) < restDistance {
		l.offset = l.wheelTarget
		l.stop()
	}
}

func (l *List) start(p Phase) {
	l.phase = p
	if !l.ticker.Active() {
		l.ticker.Start()
	}
}

func (l *List) stop() {
	l.ticker.Stop()
	l.phase = PhaseIdle
	l.velocity = 0
	l.fling = nil
}

func (l *List) clampAtRest() {
	if l.phase != PhaseDrag && l.phase != PhaseSpring {
		l.offset = min(l.offset, l.MaxOffset())
	}
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
