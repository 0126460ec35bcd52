package sheet

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_InvalidConfig(t *testing.T) {
	_, err := New(Config{MinSize: 0.5, MaxSize: 0.4, InitialSize: 0.5}, nil, nil)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestSheet_BeforeLayout(t *testing.T) {
	s, err := New(DefaultConfig(), nil, nil)
	require.NoError(t, err)

	assert.True(t, math.IsInf(s.Extent().CurrentPixels(), 1))
	assert.Equal(t, 0.0, s.Extent().PixelsToSize(100))

	// A drag before layout is recorded but cannot move the sheet.
	s.Coordinator().DragStart()
	s.Coordinator().DragUpdate(100)
	s.Coordinator().DragEnd(500)
	assert.Equal(t, 0.5, s.Extent().CurrentSize())
	assert.True(t, s.Extent().HasDragged())
	assert.False(t, s.Coordinator().Settling())
}

func TestSheet_LayoutKeepsProportion(t *testing.T) {
	h := newHarness(t, DefaultConfig(), 1000)
	h.sheet.Extent().AddPixelDelta(100)

	h.sheet.Layout(500)
	assert.InDelta(t, 300.0, h.pixels(), 1e-9)
	assert.InDelta(t, 312.5, h.sheet.Extent().SnapPixels()[1], 1e-9)

	h.sheet.Layout(-10)
	assert.Equal(t, 0.0, h.sheet.Extent().AvailablePixels())
}

func TestSheet_OnSizeChanged(t *testing.T) {
	h := newHarness(t, DefaultConfig(), 1000)
	var a, b int
	removeA := h.sheet.OnSizeChanged(func(SizeEvent) { a++ })
	h.sheet.OnSizeChanged(func(SizeEvent) { b++ })

	require.NoError(t, h.ctrl.JumpTo(0.6))
	removeA()
	removeA()
	require.NoError(t, h.ctrl.JumpTo(0.7))
	require.NoError(t, h.ctrl.JumpTo(0.7))

	assert.Equal(t, 1, a)
	assert.Equal(t, 2, b)
	assert.Len(t, h.events, 2)
}

func TestSheet_ObserverMayRemoveItself(t *testing.T) {
	h := newHarness(t, DefaultConfig(), 1000)
	calls := 0
	var remove func()
	remove = h.sheet.OnSizeChanged(func(SizeEvent) {
		calls++
		remove()
	})

	require.NoError(t, h.ctrl.JumpTo(0.6))
	require.NoError(t, h.ctrl.JumpTo(0.7))

	assert.Equal(t, 1, calls)
	assert.Len(t, h.events, 2)
}

func TestSheet_ContentSetsMiddleStop(t *testing.T) {
	h := newHarness(t, DefaultConfig(), 1000)

	h.sheet.OnContentMeasured(400, false)

	e := h.sheet.Extent()
	assert.Equal(t, []float64{0.25, 0.4, 1}, e.SnapSizes())
	assert.Equal(t, 400.0, e.ContentPixels())
	assert.Equal(t, 0.5, e.CurrentSize())
	assert.Empty(t, h.events)

	// The stop drives the drag mode.
	h.sheet.Coordinator().DragStart()
	assert.Equal(t, "scroll", h.sheet.Coordinator().Mode())
}

func TestSheet_ContentAppliedAsInitialSize(t *testing.T) {
	h := newHarness(t, DefaultConfig(), 1000)

	h.sheet.OnContentMeasured(400, true)

	e := h.sheet.Extent()
	assert.Equal(t, 0.4, e.InitialSize())
	assert.Equal(t, 0.4, e.CurrentSize())
	require.Len(t, h.events, 1)
	assert.Equal(t, 0.4, h.events[0].InitialExtent)

	// A new container height re-derives the wrapped size.
	h.sheet.Layout(800)
	assert.Equal(t, 0.5, h.sheet.Extent().CurrentSize())

	// Content taller than the sheet may grow is clamped.
	h.sheet.OnContentMeasured(5000, true)
	assert.Equal(t, 1.0, h.sheet.Extent().CurrentSize())
}

func TestSheet_ContentDoesNotMoveChangedSheet(t *testing.T) {
	h := newHarness(t, DefaultConfig(), 1000)
	h.sheet.Extent().AddPixelDelta(200)

	h.sheet.OnContentMeasured(300, true)

	assert.InDelta(t, 0.7, h.sheet.Extent().CurrentSize(), 1e-12)
	assert.Equal(t, 0.3, h.sheet.Extent().InitialSize())
}

func TestSheet_Configure(t *testing.T) {
	h := newHarness(t, DefaultConfig(), 1000)
	before := h.sheet.Extent()

	err := h.sheet.Configure(Config{MinSize: 0.9, MaxSize: 0.1})
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Same(t, before, h.sheet.Extent())

	cfg := Config{MinSize: 0.1, MaxSize: 0.9, InitialSize: 0.2, Snap: true}
	require.NoError(t, h.sheet.Configure(cfg))
	assert.Equal(t, cfg, h.sheet.Config())
	assert.Equal(t, 0.2, h.sheet.Extent().CurrentSize())
	assert.Equal(t, 1000.0, h.sheet.Extent().AvailablePixels())
	require.Len(t, h.events, 1)
	assert.Equal(t, 0.2, h.events[0].Extent)
}

func TestSheet_AnimationSurvivesConfigure(t *testing.T) {
	h := newHarness(t, DefaultConfig(), 1000)
	done, err := h.ctrl.AnimateTo(0.9, 100*time.Millisecond, nil)
	require.NoError(t, err)
	h.run(2)

	cfg := DefaultConfig()
	cfg.Snap = true
	require.NoError(t, h.sheet.Configure(cfg))
	assert.False(t, closed(done))

	h.run(10)
	assert.True(t, closed(done))
	assert.Equal(t, 0.9, h.sheet.Extent().CurrentSize())
}

func TestSheet_ConfigureDuringDrag(t *testing.T) {
	h := newHarness(t, DefaultConfig(), 1000)
	c := h.sheet.Coordinator()
	c.DragStart()
	c.DragUpdate(50)

	require.NoError(t, h.sheet.Configure(Config{MinSize: 0.2, MaxSize: 0.8, InitialSize: 0.3}))
	assert.True(t, c.Dragging())

	c.DragUpdate(50)
	assert.InDelta(t, 600.0, h.pixels(), 1e-9)
	assert.Equal(t, 0, h.list.canceled)
}

func TestSheet_Close(t *testing.T) {
	h := newHarness(t, DefaultConfig(), 1000)
	c := h.sheet.Coordinator()
	c.DragStart()
	c.DragUpdate(100)
	c.DragEnd(1000)
	require.True(t, c.Settling())

	h.sheet.Close()

	assert.False(t, c.Settling())
	assert.False(t, h.ctrl.IsAttached())
	assert.ErrorIs(t, h.ctrl.JumpTo(0.5), ErrNotAttached)
}
