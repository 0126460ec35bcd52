package sheet

import (
	"github.com/depeter/dragsheet/internal/anim"
	"github.com/depeter/dragsheet/internal/physics"
)

// Scrollable is the content area inside the sheet. Deltas and velocities
// use the sheet's sign: positive scrolls the content forward, the same
// direction that grows the sheet.
type Scrollable interface {
	// Offset is the scroll offset; 0 means unscrolled.
	Offset() float64
	ApplyUserOffset(delta float64)
	BeginDrag()
	// CancelDrag stops any drag or fling and leaves the content at rest.
	CancelDrag()
	// GoBallistic hands a release velocity to the content's own physics.
	GoBallistic(velocity float64)
	JumpTo(offset float64)
}

// DragCoordinator routes one gesture stream between resizing the sheet and
// scrolling its content, and settles the sheet once the pointer lifts.
//
// Deltas and velocities are in sheet direction: positive means the pointer
// moved up the screen.
type DragCoordinator struct {
	extent  func() *Extent
	list    Scrollable
	loop    *anim.Loop
	tol     physics.Tolerance
	session *dragSession
	settle  *anim.Controller
}

type dragSession struct {
	mode     dragMode
	activity *Activity
}

// dragMode decides what a delta does during one drag.
type dragMode interface {
	apply(c *DragCoordinator, s *dragSession, delta float64)
	String() string
}

// resizeMode sends every delta to the sheet.
type resizeMode struct{}

func (resizeMode) apply(c *DragCoordinator, s *dragSession, delta float64) {
	c.extent().addPixelDelta(delta, s.activity)
}

func (resizeMode) String() string { return "resize" }

// scrollMode scrolls the content first and only resizes the sheet once the
// content is back at its start.
type scrollMode struct{}

func (scrollMode) apply(c *DragCoordinator, s *dragSession, delta float64) {
	e := c.extent()
	atMin, atMax := e.IsAtMin(), e.IsAtMax()
	if !c.listShouldScroll() &&
		(!(atMin || atMax) || (atMin && delta > 0) || (atMax && delta < 0)) {
		e.addPixelDelta(delta, s.activity)
		return
	}
	c.list.ApplyUserOffset(delta)
}

func (scrollMode) String() string { return "scroll" }

func newDragCoordinator(extent func() *Extent, list Scrollable, loop *anim.Loop, tol physics.Tolerance) *DragCoordinator {
	return &DragCoordinator{extent: extent, list: list, loop: loop, tol: tol}
}

// Tolerance is the physics tolerance used for snap checks and hand-offs.
func (c *DragCoordinator) Tolerance() physics.Tolerance { return c.tol }

// Dragging reports whether a drag is in progress.
func (c *DragCoordinator) Dragging() bool { return c.session != nil }

// Mode names the current drag mode, or "" when idle.
func (c *DragCoordinator) Mode() string {
	if c.session == nil {
		return ""
	}
	return c.session.mode.String()
}

// Settling reports whether a post-release simulation is moving the sheet.
func (c *DragCoordinator) Settling() bool {
	return c.settle != nil && c.settle.IsAnimating()
}

// DragStart begins a drag, canceling any settle or animation. The mode is
// fixed for the whole drag: scroll when the sheet is at or above its first
// snap stop past the minimum, resize below it.
func (c *DragCoordinator) DragStart() {
	e := c.extent()
	s := &dragSession{mode: resizeMode{}}
	if e.CurrentPixels() >= c.firstStopPixels(e) {
		s.mode = scrollMode{}
	}
	s.activity = e.StartActivity(func() { c.cancelSession(s) })
	c.session = s
	c.list.BeginDrag()
}

// DragUpdate applies a delta in sheet direction.
func (c *DragCoordinator) DragUpdate(delta float64) {
	s := c.session
	if s == nil || delta == 0 {
		return
	}
	s.mode.apply(c, s, delta)
}

// DragEnd releases the drag with velocity in sheet direction, pixels per
// second.
func (c *DragCoordinator) DragEnd(velocity float64) {
	s := c.session
	if s == nil {
		return
	}
	c.session = nil
	s.activity.Finish()
	c.goBallistic(velocity)
}

// DragCancel ends the drag as if released at rest.
func (c *DragCoordinator) DragCancel() {
	c.DragEnd(0)
}

func (c *DragCoordinator) cancelSession(s *dragSession) {
	if c.session != s {
		return
	}
	c.session = nil
	c.list.CancelDrag()
}

func (c *DragCoordinator) firstStopPixels(e *Extent) float64 {
	snaps := e.SnapPixels()
	if len(snaps) < 2 {
		return e.MaxPixels()
	}
	return snaps[1]
}

func (c *DragCoordinator) listShouldScroll() bool {
	return c.list.Offset() > 0
}

func (c *DragCoordinator) isAtSnapSize(e *Extent) bool {
	cur := e.CurrentPixels()
	for _, px := range e.SnapPixels() {
		if physics.NearEqual(cur, px, c.tol.Distance) {
			return true
		}
	}
	return false
}

func (c *DragCoordinator) shouldSnap(e *Extent) bool {
	return e.cfg.Snap && e.hasDragged && !c.isAtSnapSize(e)
}

func (c *DragCoordinator) goBallistic(velocity float64) {
	e := c.extent()
	snap := c.shouldSnap(e)
	if !e.measured() ||
		(velocity == 0 && !snap) ||
		(velocity < 0 && c.listShouldScroll()) ||
		(velocity > 0 && e.IsAtMax()) {
		c.list.GoBallistic(velocity)
		return
	}

	var sim physics.Simulation
	if snap {
		sim = physics.NewSnapSimulation(e.CurrentPixels(), velocity, e.SnapPixels(), e.cfg.SnapAnimationDuration, c.tol)
	} else {
		sim = physics.Clamped{
			Sim: physics.NewClampingSimulation(e.CurrentPixels(), velocity),
			Min: e.MinPixels(),
			Max: e.MaxPixels(),
		}
	}

	ctrl := anim.NewController(c.loop, e.CurrentPixels())
	act := e.StartActivity(ctrl.Stop)
	c.settle = ctrl

	last := e.CurrentPixels()
	ctrl.AddListener(func() {
		e := c.extent()
		pos := ctrl.Value()
		e.addPixelDelta(pos-last, act)
		last = pos
		// Summed pixel deltas drift; land exactly on the bound or the
		// simulation's end.
		switch {
		case pos >= e.MaxPixels():
			e.UpdateSize(e.MaxSize())
		case pos <= e.MinPixels():
			e.UpdateSize(e.MinSize())
		case ctrl.Completed():
			e.UpdatePixels(pos)
		}
		if (velocity > 0 && e.IsAtMax()) || (velocity < 0 && e.IsAtMin()) {
			// Pass enough velocity on for the content to keep moving instead
			// of stopping dead at the bound.
			v := ctrl.Velocity()
			v += c.tol.Velocity * sign(v)
			ctrl.Stop()
			act.Finish()
			c.list.GoBallistic(v)
		} else if ctrl.Completed() {
			act.Finish()
			c.list.GoBallistic(0)
		}
	})
	ctrl.AnimateWith(sim)
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
