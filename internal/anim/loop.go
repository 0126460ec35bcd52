// Package anim drives frame callbacks from the host's update loop.
package anim

import (
	"slices"
	"time"
)

// Loop runs registered tickers once per frame. It is not safe for
// concurrent use; the host calls Advance from its update function.
type Loop struct {
	now     time.Duration
	tickers []*Ticker
}

func NewLoop() *Loop {
	return &Loop{}
}

// Now is the total time the loop has been advanced by.
func (l *Loop) Now() time.Duration {
	return l.now
}

// Active reports how many tickers are running.
func (l *Loop) Active() int {
	return len(l.tickers)
}

// Advance moves the clock forward by dt and calls every running ticker.
// Tickers started during this frame first fire on the next one; tickers
// stopped during this frame do not fire again.
func (l *Loop) Advance(dt time.Duration) {
	l.now += dt
	frame := slices.Clone(l.tickers)
	for _, t := range frame {
		if t.active {
			t.fn(l.now - t.start)
		}
	}
}

// Ticker calls fn with the time elapsed since Start on every frame.
type Ticker struct {
	loop   *Loop
	fn     func(elapsed time.Duration)
	start  time.Duration
	active bool
}

func (l *Loop) NewTicker(fn func(elapsed time.Duration)) *Ticker {
	return &Ticker{loop: l, fn: fn}
}

func (t *Ticker) Start() {
	if t.active {
		return
	}
	t.active = true
	t.start = t.loop.now
	t.loop.tickers = append(t.loop.tickers, t)
}

// Stop is a no-op on a ticker that is not running.
func (t *Ticker) Stop() {
	if !t.active {
		return
	}
	t.active = false
	if i := slices.Index(t.loop.tickers, t); i >= 0 {
		t.loop.tickers = slices.Delete(t.loop.tickers, i, i+1)
	}
}

func (t *Ticker) Active() bool {
	return t.active
}
