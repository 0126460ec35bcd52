package sheet

import "math"

// SizeEvent is emitted every time the sheet's size actually changes.
// Extents are fractions of the container height.
type SizeEvent struct {
	MinExtent              float64
	MaxExtent              float64
	Extent                 float64
	InitialExtent          float64
	ShouldCloseOnMinExtent bool
}

// Extent is the geometry of a sheet: its bounds, current size, snap stops
// and interaction flags. The size is kept as a fraction of the container;
// pixel values are derived from AvailablePixels.
//
// An Extent is replaced, not reconfigured, when its static configuration
// changes; see CopyWith.
type Extent struct {
	cfg           Config
	snapSizes     []float64
	contentPixels float64

	availablePixels float64
	currentSize     float64
	hasDragged      bool
	hasChanged      bool

	slot   *activitySlot
	notify func(SizeEvent)
}

// NewExtent creates an extent at cfg.InitialSize. notify receives a
// SizeEvent for every accepted size change and may be nil.
func NewExtent(cfg Config, notify func(SizeEvent)) (*Extent, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e := &Extent{
		cfg:             cfg,
		availablePixels: math.Inf(1),
		currentSize:     cfg.InitialSize,
		slot:            &activitySlot{},
		notify:          notify,
	}
	e.snapSizes = cfg.snapSizes(0)
	return e, nil
}

func (e *Extent) Config() Config       { return e.cfg }
func (e *Extent) MinSize() float64     { return e.cfg.MinSize }
func (e *Extent) MaxSize() float64     { return e.cfg.MaxSize }
func (e *Extent) InitialSize() float64 { return e.cfg.InitialSize }
func (e *Extent) CurrentSize() float64 { return e.currentSize }

func (e *Extent) HasDragged() bool { return e.hasDragged }
func (e *Extent) HasChanged() bool { return e.hasChanged }

// AvailablePixels is the container height. It is +Inf until the first
// layout.
func (e *Extent) AvailablePixels() float64 { return e.availablePixels }

// ContentPixels is the measured natural content height, or 0 if unknown.
func (e *Extent) ContentPixels() float64 { return e.contentPixels }

func (e *Extent) MinPixels() float64     { return e.SizeToPixels(e.cfg.MinSize) }
func (e *Extent) MaxPixels() float64     { return e.SizeToPixels(e.cfg.MaxSize) }
func (e *Extent) InitialPixels() float64 { return e.SizeToPixels(e.cfg.InitialSize) }
func (e *Extent) CurrentPixels() float64 { return e.SizeToPixels(e.currentSize) }

// SnapSizes returns the ascending snap stops, first MinSize, last MaxSize.
func (e *Extent) SnapSizes() []float64 {
	return append([]float64(nil), e.snapSizes...)
}

func (e *Extent) SnapPixels() []float64 {
	px := make([]float64, len(e.snapSizes))
	for i, s := range e.snapSizes {
		px[i] = e.SizeToPixels(s)
	}
	return px
}

func (e *Extent) SizeToPixels(size float64) float64 {
	if size == 0 {
		return 0
	}
	return size * e.availablePixels
}

// PixelsToSize converts pixels to a fraction of the container. Without a
// finite, non-zero container every pixel distance maps to 0.
func (e *Extent) PixelsToSize(pixels float64) float64 {
	if !e.measured() {
		return 0
	}
	return pixels / e.availablePixels
}

func (e *Extent) measured() bool {
	return e.availablePixels > 0 && !math.IsInf(e.availablePixels, 1)
}

func (e *Extent) IsAtMin() bool { return e.cfg.MinSize >= e.currentSize }
func (e *Extent) IsAtMax() bool { return e.cfg.MaxSize <= e.currentSize }

// UpdateSize clamps size to the bounds and, if that changes the current
// size, stores it and emits a SizeEvent.
func (e *Extent) UpdateSize(size float64) {
	clamped := min(max(size, e.cfg.MinSize), e.cfg.MaxSize)
	if clamped == e.currentSize || math.IsNaN(clamped) {
		return
	}
	e.currentSize = clamped
	if e.notify != nil {
		e.notify(e.event())
	}
}

// UpdatePixels is UpdateSize in pixels.
func (e *Extent) UpdatePixels(pixels float64) {
	if !e.measured() {
		return
	}
	e.UpdateSize(e.PixelsToSize(pixels))
}

// AddPixelDelta moves the sheet by a user delta in pixels, positive growing
// it. Any running activity is canceled first.
func (e *Extent) AddPixelDelta(delta float64) {
	e.addPixelDelta(delta, nil)
}

// addPixelDelta cancels the running activity unless it is owner, the
// activity applying the delta.
func (e *Extent) addPixelDelta(delta float64, owner *Activity) {
	if cur := e.slot.current; cur != owner {
		cur.Cancel()
	}
	e.hasDragged = true
	e.hasChanged = true
	if !e.measured() {
		return
	}
	e.UpdateSize(e.currentSize + e.PixelsToSize(delta))
}

// StartActivity registers onCanceled as the callback of the new current
// activity, canceling the previous one first.
func (e *Extent) StartActivity(onCanceled func()) *Activity {
	e.slot.current.Cancel()
	a := &Activity{onCanceled: onCanceled, slot: e.slot}
	e.slot.current = a
	return a
}

// CancelActivity cancels the current activity, if any.
func (e *Extent) CancelActivity() {
	e.slot.current.Cancel()
}

// CurrentActivity returns the registered activity handle, or nil.
func (e *Extent) CurrentActivity() *Activity {
	return e.slot.current
}

// CopyWith returns a replacement extent for cfg. A sheet that has changed
// keeps its size, clamped to the new bounds; otherwise it starts at the new
// initial size. Flags, layout, content measurement and the activity slot
// carry over.
func (e *Extent) CopyWith(cfg Config) (*Extent, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return e.copyWith(cfg, e.contentPixels), nil
}

func (e *Extent) copyWith(cfg Config, contentPixels float64) *Extent {
	next := &Extent{
		cfg:             cfg,
		contentPixels:   contentPixels,
		availablePixels: e.availablePixels,
		hasDragged:      e.hasDragged,
		hasChanged:      e.hasChanged,
		slot:            e.slot,
		notify:          e.notify,
	}
	if e.hasChanged {
		next.currentSize = min(max(e.currentSize, cfg.MinSize), cfg.MaxSize)
	} else {
		next.currentSize = cfg.InitialSize
	}
	next.refreshSnapSizes()
	return next
}

// setAvailablePixels records a layout pass. The size is a fraction, so the
// sheet keeps its proportion of the new container.
func (e *Extent) setAvailablePixels(px float64) {
	e.availablePixels = px
	e.refreshSnapSizes()
}

func (e *Extent) refreshSnapSizes() {
	e.snapSizes = e.cfg.snapSizes(e.PixelsToSize(e.contentPixels))
}

func (e *Extent) event() SizeEvent {
	return SizeEvent{
		MinExtent:              e.cfg.MinSize,
		MaxExtent:              e.cfg.MaxSize,
		Extent:                 e.currentSize,
		InitialExtent:          e.cfg.InitialSize,
		ShouldCloseOnMinExtent: e.cfg.ShouldCloseOnMinExtent,
	}
}
