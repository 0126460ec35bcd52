package sheet

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newExtent(t *testing.T, cfg Config, available float64, notify func(SizeEvent)) *Extent {
	t.Helper()
	e, err := NewExtent(cfg, notify)
	require.NoError(t, err)
	e.setAvailablePixels(available)
	return e
}

func TestExtent_UpdatePixelsClamps(t *testing.T) {
	e := newExtent(t, Config{MinSize: 0.2, MaxSize: 0.8, InitialSize: 0.5}, 500, nil)
	for _, px := range []float64{-1000, 0, 99, 100, 250, 400, 401, 1e9} {
		e.UpdatePixels(px)
		assert.GreaterOrEqual(t, e.CurrentPixels(), e.MinPixels(), "px=%v", px)
		assert.LessOrEqual(t, e.CurrentPixels(), e.MaxPixels(), "px=%v", px)
	}
	e.UpdatePixels(-5)
	assert.Equal(t, 100.0, e.CurrentPixels())
	e.UpdatePixels(9999)
	assert.Equal(t, 400.0, e.CurrentPixels())
}

func TestExtent_UpdatePixelsNotifiesOnce(t *testing.T) {
	var events []SizeEvent
	cfg := Config{MinSize: 0.25, MaxSize: 1, InitialSize: 0.5, ShouldCloseOnMinExtent: true}
	e := newExtent(t, cfg, 1000, func(ev SizeEvent) { events = append(events, ev) })

	e.UpdatePixels(700)
	e.UpdatePixels(700)
	e.UpdatePixels(1200)
	e.UpdatePixels(1500)

	require.Len(t, events, 2)
	assert.Equal(t, SizeEvent{
		MinExtent: 0.25, MaxExtent: 1, Extent: 0.7, InitialExtent: 0.5, ShouldCloseOnMinExtent: true,
	}, events[0])
	assert.Equal(t, 1.0, events[1].Extent)
}

func TestExtent_AddPixelDelta(t *testing.T) {
	e := newExtent(t, Config{MinSize: 0.25, MaxSize: 1.0, InitialSize: 0.5}, 1, nil)
	require.False(t, e.HasDragged())

	e.AddPixelDelta(-0.1)

	assert.InDelta(t, 0.4, e.CurrentPixels(), 1e-12)
	assert.True(t, e.HasDragged())
	assert.True(t, e.HasChanged())
}

func TestExtent_AddPixelDeltaWithoutSpace(t *testing.T) {
	e := newExtent(t, DefaultConfig(), 0, nil)
	e.AddPixelDelta(50)
	assert.Equal(t, 0.5, e.CurrentSize())
	assert.True(t, e.HasDragged())

	unmeasured, err := NewExtent(DefaultConfig(), nil)
	require.NoError(t, err)
	unmeasured.AddPixelDelta(50)
	assert.Equal(t, 0.5, unmeasured.CurrentSize())
}

func TestExtent_AddPixelDeltaCancelsActivity(t *testing.T) {
	e := newExtent(t, DefaultConfig(), 1000, nil)
	canceled := 0
	e.StartActivity(func() { canceled++ })

	e.AddPixelDelta(10)
	e.AddPixelDelta(10)

	assert.Equal(t, 1, canceled)
	assert.Nil(t, e.CurrentActivity())
}

func TestExtent_StartActivityCancelsPreviousOnce(t *testing.T) {
	e := newExtent(t, DefaultConfig(), 1000, nil)
	var order []string

	a := e.StartActivity(func() { order = append(order, "cancel a") })
	b := e.StartActivity(func() { order = append(order, "cancel b") })
	order = append(order, "b running")

	a.Cancel()
	assert.Equal(t, []string{"cancel a", "b running"}, order)
	assert.Same(t, b, e.CurrentActivity())
	assert.False(t, a.Live())
	assert.True(t, b.Live())
}

func TestExtent_FinishedActivityStillCanceledOnReplace(t *testing.T) {
	e := newExtent(t, DefaultConfig(), 1000, nil)
	calls := 0
	a := e.StartActivity(func() { calls++ })
	a.Finish()
	assert.False(t, a.Live())

	e.StartActivity(nil)
	e.CancelActivity()
	e.CancelActivity()

	assert.Equal(t, 1, calls)
	var nilActivity *Activity
	assert.NotPanics(t, nilActivity.Cancel)
}

func TestExtent_Bounds(t *testing.T) {
	e := newExtent(t, Config{MinSize: 0.3, MaxSize: 0.3, InitialSize: 0.3}, 100, nil)
	assert.True(t, e.IsAtMin())
	assert.True(t, e.IsAtMax())

	e = newExtent(t, DefaultConfig(), 100, nil)
	assert.False(t, e.IsAtMin())
	assert.False(t, e.IsAtMax())
	e.UpdateSize(0)
	assert.True(t, e.IsAtMin())
	e.UpdateSize(1)
	assert.True(t, e.IsAtMax())
}

func TestExtent_CopyWithUnchangedStartsAtNewInitial(t *testing.T) {
	e := newExtent(t, DefaultConfig(), 800, nil)
	e.UpdateSize(0.9) // moved, but not through a path that marks it changed

	next, err := e.CopyWith(Config{MinSize: 0.1, MaxSize: 0.6, InitialSize: 0.3})
	require.NoError(t, err)

	assert.Equal(t, 0.3, next.CurrentSize())
	assert.Equal(t, 800.0, next.AvailablePixels())
	assert.False(t, next.HasChanged())
}

func TestExtent_CopyWithChangedKeepsClampedSize(t *testing.T) {
	e := newExtent(t, DefaultConfig(), 1000, nil)
	e.AddPixelDelta(400) // 0.9

	next, err := e.CopyWith(Config{MinSize: 0.1, MaxSize: 0.6, InitialSize: 0.3})
	require.NoError(t, err)
	assert.Equal(t, 0.6, next.CurrentSize())
	assert.True(t, next.HasDragged())
	assert.True(t, next.HasChanged())

	inside, err := e.CopyWith(Config{MinSize: 0.1, MaxSize: 1, InitialSize: 0.3})
	require.NoError(t, err)
	assert.InDelta(t, 0.9, inside.CurrentSize(), 1e-12)
}

func TestExtent_CopyWithSharesActivity(t *testing.T) {
	e := newExtent(t, DefaultConfig(), 1000, nil)
	canceled := false
	e.StartActivity(func() { canceled = true })

	next, err := e.CopyWith(DefaultConfig())
	require.NoError(t, err)
	next.CancelActivity()

	assert.True(t, canceled)
}

func TestExtent_CopyWithRejectsInvalidConfig(t *testing.T) {
	e := newExtent(t, DefaultConfig(), 1000, nil)
	_, err := e.CopyWith(Config{MinSize: 0.8, MaxSize: 0.2, InitialSize: 0.5})
	assert.True(t, errors.Is(err, ErrInvalidConfig))
}

func TestExtent_SnapSizes(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		content float64
		want    []float64
	}{
		{
			name: "default midpoint",
			cfg:  Config{MinSize: 0.2, MaxSize: 1, InitialSize: 0.2},
			want: []float64{0.2, 0.6, 1},
		},
		{
			name:    "content height inside bounds",
			cfg:     Config{MinSize: 0.2, MaxSize: 1, InitialSize: 0.2},
			content: 300,
			want:    []float64{0.2, 0.3, 1},
		},
		{
			name:    "content taller than the container falls back to midpoint",
			cfg:     Config{MinSize: 0.2, MaxSize: 1, InitialSize: 0.2},
			content: 3000,
			want:    []float64{0.2, 0.6, 1},
		},
		{
			name: "collapsed bounds",
			cfg:  Config{MinSize: 0.5, MaxSize: 0.5, InitialSize: 0.5},
			want: []float64{0.5, 0.5},
		},
		{
			name: "explicit stops gain bounds",
			cfg:  Config{MinSize: 0.1, MaxSize: 0.9, InitialSize: 0.1, SnapSizes: []float64{0.4, 0.7}},
			want: []float64{0.1, 0.4, 0.7, 0.9},
		},
		{
			name: "explicit stops already bounded",
			cfg:  Config{MinSize: 0.1, MaxSize: 0.9, InitialSize: 0.1, SnapSizes: []float64{0.1, 0.5, 0.9}},
			want: []float64{0.1, 0.5, 0.9},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newExtent(t, tt.cfg, 1000, nil)
			e = e.copyWith(tt.cfg, tt.content)
			got := e.SnapSizes()
			require.Len(t, got, len(tt.want))
			for i := range got {
				assert.InDelta(t, tt.want[i], got[i], 1e-12)
			}
			px := e.SnapPixels()
			assert.InDelta(t, e.MinPixels(), px[0], 1e-9)
			assert.InDelta(t, e.MaxPixels(), px[len(px)-1], 1e-9)
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"min below zero", Config{MinSize: -0.1, MaxSize: 1, InitialSize: 0.5}},
		{"max above one", Config{MinSize: 0, MaxSize: 1.1, InitialSize: 0.5}},
		{"min above max", Config{MinSize: 0.6, MaxSize: 0.5, InitialSize: 0.5}},
		{"initial outside", Config{MinSize: 0.2, MaxSize: 0.5, InitialSize: 0.6}},
		{"snap outside", Config{MinSize: 0.2, MaxSize: 0.5, InitialSize: 0.3, SnapSizes: []float64{0.1}}},
		{"snap unsorted", Config{MinSize: 0.2, MaxSize: 0.9, InitialSize: 0.3, SnapSizes: []float64{0.5, 0.4}}},
		{"negative duration", Config{MinSize: 0.2, MaxSize: 0.9, InitialSize: 0.3, SnapAnimationDuration: -1}},
		{"min NaN", Config{MinSize: math.NaN(), MaxSize: 1, InitialSize: 0.5}},
		{"max infinite", Config{MinSize: 0, MaxSize: math.Inf(1), InitialSize: 0.5}},
		{"initial NaN", Config{MinSize: 0, MaxSize: 1, InitialSize: math.NaN()}},
		{"snap NaN", Config{MinSize: 0.2, MaxSize: 0.9, InitialSize: 0.3, SnapSizes: []float64{0.4, math.NaN(), 0.6}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.cfg.Validate(), ErrInvalidConfig)
		})
	}
	assert.NoError(t, DefaultConfig().Validate())
}
