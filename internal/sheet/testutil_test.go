package sheet

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/depeter/dragsheet/internal/anim"
)

const frame = time.Second / 60

// fakeList records what the coordinator asks of the content.
type fakeList struct {
	offset    float64
	applied   []float64
	began     int
	canceled  int
	ballistic []float64
	jumps     []float64
}

func (f *fakeList) Offset() float64 { return f.offset }

func (f *fakeList) ApplyUserOffset(delta float64) {
	f.applied = append(f.applied, delta)
	f.offset = max(f.offset+delta, 0)
}

func (f *fakeList) BeginDrag()  { f.began++ }
func (f *fakeList) CancelDrag() { f.canceled++ }

func (f *fakeList) GoBallistic(v float64) { f.ballistic = append(f.ballistic, v) }

func (f *fakeList) JumpTo(offset float64) {
	f.jumps = append(f.jumps, offset)
	f.offset = offset
}

type harness struct {
	sheet  *Sheet
	ctrl   *Controller
	list   *fakeList
	loop   *anim.Loop
	events []SizeEvent
}

// newHarness lays out a sheet in a container of the given height.
func newHarness(t *testing.T, cfg Config, available float64) *harness {
	t.Helper()
	h := &harness{list: &fakeList{}, loop: anim.NewLoop(), ctrl: NewController()}
	s, err := New(cfg, h.list, h.loop, WithController(h.ctrl))
	require.NoError(t, err)
	s.Layout(available)
	s.OnSizeChanged(func(ev SizeEvent) { h.events = append(h.events, ev) })
	h.sheet = s
	return h
}

func (h *harness) run(frames int) {
	for range frames {
		h.loop.Advance(frame)
	}
}

func (h *harness) pixels() float64 { return h.sheet.Extent().CurrentPixels() }

func closed(ch <-chan struct{}) bool {
	select {
	case <-ch:
		return true
	default:
		return false
	}
}
