package anim

import (
	"time"

	"github.com/depeter/dragsheet/internal/physics"
)

// Status of a Controller.
type Status int

const (
	StatusIdle Status = iota
	StatusRunning
	StatusCompleted
	StatusStopped
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusRunning:
		return "running"
	case StatusCompleted:
		return "completed"
	case StatusStopped:
		return "stopped"
	}
	return "unknown"
}

// Controller runs one simulation at a time on a Loop and exposes its
// current value and velocity. Listeners run after every frame.
type Controller struct {
	ticker    *Ticker
	sim       physics.Simulation
	value     float64
	velocity  float64
	status    Status
	listeners []func()
	done      chan struct{}
}

// NewController creates an idle controller holding value.
func NewController(loop *Loop, value float64) *Controller {
	c := &Controller{value: value}
	c.ticker = loop.NewTicker(c.tick)
	return c
}

func (c *Controller) Value() float64    { return c.value }
func (c *Controller) Velocity() float64 { return c.velocity }
func (c *Controller) Status() Status    { return c.status }

func (c *Controller) IsAnimating() bool { return c.status == StatusRunning }
func (c *Controller) Completed() bool   { return c.status == StatusCompleted }

// AddListener registers fn to run after each frame's value update.
func (c *Controller) AddListener(fn func()) {
	c.listeners = append(c.listeners, fn)
}

// AnimateWith starts sim, stopping whatever ran before. The returned channel
// closes when sim is done or the controller is stopped.
func (c *Controller) AnimateWith(sim physics.Simulation) <-chan struct{} {
	c.Stop()
	c.sim = sim
	c.status = StatusRunning
	c.done = make(chan struct{})
	c.value = sim.X(0)
	c.velocity = sim.Dx(0)
	c.ticker.Start()
	return c.done
}

// AnimateTo tweens from the current value to target over d along curve.
func (c *Controller) AnimateTo(target float64, d time.Duration, curve physics.Curve) <-chan struct{} {
	if curve == nil {
		curve = physics.Linear
	}
	return c.AnimateWith(&tween{from: c.value, to: target, duration: d.Seconds(), curve: curve})
}

// Stop halts a running animation at its current value. Listeners are not
// notified. Calling Stop on an idle or finished controller does nothing.
func (c *Controller) Stop() {
	if c.status != StatusRunning {
		return
	}
	c.ticker.Stop()
	c.status = StatusStopped
	c.velocity = 0
	c.finish()
}

// Done returns the channel of the current run, or nil before the first one.
func (c *Controller) Done() <-chan struct{} {
	return c.done
}

func (c *Controller) tick(elapsed time.Duration) {
	t := elapsed.Seconds()
	c.value = c.sim.X(t)
	c.velocity = c.sim.Dx(t)
	done := c.sim.IsDone(t)
	if done {
		c.ticker.Stop()
		c.status = StatusCompleted
	}
	for _, fn := range c.listeners {
		fn()
		if c.status != StatusRunning && !done {
			// a listener stopped us
			break
		}
	}
	if done {
		c.finish()
	}
}

func (c *Controller) finish() {
	if c.done == nil {
		return
	}
	select {
	case <-c.done:
	default:
		close(c.done)
	}
}

type tween struct {
	from, to float64
	duration float64
	curve    physics.Curve
}

func (tw *tween) progress(t float64) float64 {
	if tw.duration <= 0 {
		return 1
	}
	return min(max(t/tw.duration, 0), 1)
}

func (tw *tween) X(t float64) float64 {
	p := tw.progress(t)
	if p >= 1 {
		return tw.to
	}
	return tw.from + (tw.to-tw.from)*tw.curve(p)
}

func (tw *tween) Dx(t float64) float64 {
	if tw.IsDone(t) {
		return 0
	}
	const h = 1e-3
	return (tw.X(t+h) - tw.X(t)) / h
}

func (tw *tween) IsDone(t float64) bool {
	return t >= tw.duration
}
