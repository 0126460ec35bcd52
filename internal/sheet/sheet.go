// Package sheet implements a draggable, resizable sheet whose drag gesture
// flows into the scrollable content inside it once the sheet reaches its
// size limits.
//
// A Sheet owns the current Extent and replaces it whenever its static
// configuration changes. The DragCoordinator receives gestures, the
// Controller moves the sheet programmatically, and observers registered
// with OnSizeChanged see every size change. Everything runs on the host's
// frame loop; nothing here is safe for concurrent use.
package sheet

import (
	"github.com/depeter/dragsheet/internal/anim"
	"github.com/depeter/dragsheet/internal/physics"
)

type Sheet struct {
	cfg    Config
	extent *Extent
	coord  *DragCoordinator
	list   Scrollable
	loop   *anim.Loop

	controller   *Controller
	observers    []observer
	nextObserver int

	// applyContent makes the measured content size the initial size.
	applyContent bool
}

type observer struct {
	id int
	fn func(SizeEvent)
}

type Option func(*Sheet)

// WithTolerance sets the physics tolerance; physics.ToleranceFor(1) by
// default.
func WithTolerance(tol physics.Tolerance) Option {
	return func(s *Sheet) { s.coord.tol = tol }
}

// WithController attaches c to the new sheet.
func WithController(c *Controller) Option {
	return func(s *Sheet) { s.Attach(c) }
}

// New creates a sheet around list, ticking on loop. A nil list is treated
// as content that never scrolls.
func New(cfg Config, list Scrollable, loop *anim.Loop, opts ...Option) (*Sheet, error) {
	if list == nil {
		list = staticContent{}
	}
	if loop == nil {
		loop = anim.NewLoop()
	}
	s := &Sheet{cfg: cfg, list: list, loop: loop}
	e, err := NewExtent(cfg, s.dispatch)
	if err != nil {
		return nil, err
	}
	s.extent = e
	s.coord = newDragCoordinator(s.Extent, list, loop, physics.ToleranceFor(1))
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Extent returns the current extent. Do not hold on to it across
// Configure or OnContentMeasured calls; it may be replaced.
func (s *Sheet) Extent() *Extent { return s.extent }

func (s *Sheet) Coordinator() *DragCoordinator { return s.coord }

func (s *Sheet) Config() Config { return s.cfg }

// Attach binds c to this sheet, detaching it from any other.
func (s *Sheet) Attach(c *Controller) {
	if c.sheet != nil && c.sheet != s {
		c.sheet.Detach(c)
	}
	if s.controller != nil && s.controller != c {
		s.controller.sheet = nil
	}
	c.sheet = s
	s.controller = c
}

func (s *Sheet) Detach(c *Controller) {
	if s.controller != c {
		return
	}
	c.sheet = nil
	s.controller = nil
}

// OnSizeChanged registers fn for size changes and returns a function that
// removes it.
func (s *Sheet) OnSizeChanged(fn func(SizeEvent)) (remove func()) {
	s.nextObserver++
	id := s.nextObserver
	s.observers = append(s.observers, observer{id: id, fn: fn})
	return func() {
		for i, o := range s.observers {
			if o.id == id {
				s.observers = append(s.observers[:i:i], s.observers[i+1:]...)
				return
			}
		}
	}
}

func (s *Sheet) dispatch(ev SizeEvent) {
	for _, o := range append([]observer(nil), s.observers...) {
		o.fn(ev)
	}
}

// Layout records the container height from a layout pass.
func (s *Sheet) Layout(availablePixels float64) {
	if availablePixels < 0 {
		availablePixels = 0
	}
	if availablePixels == s.extent.availablePixels {
		return
	}
	s.extent.setAvailablePixels(availablePixels)
	if s.applyContent && s.extent.contentPixels > 0 {
		s.replace(s.extent.contentPixels)
	}
}

// OnContentMeasured records the natural height of the content. The snap
// stop between the bounds follows it. With shouldApply the content size
// also becomes the initial size, so an untouched sheet wraps its content.
func (s *Sheet) OnContentMeasured(height float64, shouldApply bool) {
	if height < 0 {
		height = 0
	}
	if height == s.extent.contentPixels && shouldApply == s.applyContent {
		return
	}
	s.applyContent = shouldApply
	s.replace(height)
}

// Configure validates cfg and replaces the extent with one built from it.
func (s *Sheet) Configure(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	s.cfg = cfg
	s.replace(s.extent.contentPixels)
	return nil
}

func (s *Sheet) replace(contentPixels float64) {
	cfg := s.cfg
	if s.applyContent && contentPixels > 0 && s.extent.measured() {
		size := contentPixels / s.extent.availablePixels
		cfg.InitialSize = min(max(size, cfg.MinSize), cfg.MaxSize)
	}
	prev := s.extent.currentSize
	s.extent = s.extent.copyWith(cfg, contentPixels)
	if s.extent.currentSize != prev {
		s.dispatch(s.extent.event())
	}
}

// Close cancels whatever is moving the sheet and detaches its controller.
func (s *Sheet) Close() {
	s.extent.CancelActivity()
	if s.controller != nil {
		s.Detach(s.controller)
	}
}

// staticContent is a Scrollable that never scrolls.
type staticContent struct{}

func (staticContent) Offset() float64         { return 0 }
func (staticContent) ApplyUserOffset(float64) {}
func (staticContent) BeginDrag()              {}
func (staticContent) CancelDrag()             {}
func (staticContent) GoBallistic(float64)     {}
func (staticContent) JumpTo(float64)          {}
