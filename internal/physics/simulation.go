// Package physics holds the one-dimensional simulations used to settle the
// sheet after a drag is released.
package physics

import "math"

// Tolerance describes how close values must be to count as equal.
type Tolerance struct {
	Distance float64 // pixels
	Time     float64 // seconds
	Velocity float64 // pixels per second
}

// DefaultTolerance matches a tolerance of 1e-3 for every quantity.
var DefaultTolerance = Tolerance{Distance: 1e-3, Time: 1e-3, Velocity: 1e-3}

// ToleranceFor returns the tolerance for a display with the given device
// pixel ratio: one physical pixel of distance, and a velocity below which
// motion is no longer perceptible.
func ToleranceFor(devicePixelRatio float64) Tolerance {
	if devicePixelRatio <= 0 || math.IsNaN(devicePixelRatio) {
		devicePixelRatio = 1
	}
	return Tolerance{
		Distance: 1 / devicePixelRatio,
		Time:     DefaultTolerance.Time,
		Velocity: 1 / (0.050 * devicePixelRatio),
	}
}

// Simulation is a position over time, with t in seconds since the start.
type Simulation interface {
	X(t float64) float64
	Dx(t float64) float64
	IsDone(t float64) bool
}

// Clamped restricts the position of a simulation to [Min, Max]. Velocity is
// passed through unchanged so callers can see that motion still pushes
// against a bound.
type Clamped struct {
	Sim      Simulation
	Min, Max float64
}

func (c Clamped) X(t float64) float64 {
	return clamp(c.Sim.X(t), c.Min, c.Max)
}

func (c Clamped) Dx(t float64) float64 {
	return c.Sim.Dx(t)
}

func (c Clamped) IsDone(t float64) bool {
	return c.Sim.IsDone(t)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// NearEqual reports whether a and b differ by no more than epsilon.
func NearEqual(a, b, epsilon float64) bool {
	return math.Abs(a-b) <= epsilon
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
