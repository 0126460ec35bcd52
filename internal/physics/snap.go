package physics

import (
	"math"
	"time"
)

// MinSnapSpeed is the slowest a snap may travel, in pixels per second.
const MinSnapSpeed = 1600.0

// SnapSimulation moves linearly from a start position to one of a set of
// snap positions and stops exactly on it.
type SnapSimulation struct {
	start    float64
	target   float64
	velocity float64
}

// NewSnapSimulation picks a target from snapPixels (ascending) for a release
// at position with the given velocity. A non-zero duration fixes how long the
// snap takes; otherwise the speed follows the release velocity, floored at
// MinSnapSpeed.
func NewSnapSimulation(position, velocity float64, snapPixels []float64, duration time.Duration, tol Tolerance) *SnapSimulation {
	s := &SnapSimulation{start: position, target: position}
	if len(snapPixels) == 0 {
		return s
	}
	s.target = SnapTarget(position, velocity, snapPixels, tol)

	switch {
	case duration > 0:
		s.velocity = (s.target - position) / duration.Seconds()
	case s.target < position:
		// Direction comes from the target, not the release velocity: a slow
		// release may snap against it.
		s.velocity = math.Min(-MinSnapSpeed, velocity)
	default:
		s.velocity = math.Max(MinSnapSpeed, velocity)
	}
	return s
}

// SnapTarget returns the snap position a release at position with velocity
// settles on. At rest the nearest candidate wins, ties going to the larger
// one; otherwise the neighbour in the direction of travel.
func SnapTarget(position, velocity float64, snapPixels []float64, tol Tolerance) float64 {
	next := -1
	for i, p := range snapPixels {
		if p >= position {
			next = i
			break
		}
	}
	switch next {
	case -1:
		return snapPixels[len(snapPixels)-1]
	case 0:
		return snapPixels[0]
	}

	nextSize := snapPixels[next]
	prevSize := snapPixels[next-1]
	if math.Abs(velocity) <= tol.Velocity {
		if position-prevSize < nextSize-position {
			return prevSize
		}
		return nextSize
	}
	if velocity < 0 {
		return prevSize
	}
	return nextSize
}

// Target is the snap position this simulation ends on.
func (s *SnapSimulation) Target() float64 { return s.target }

// Velocity is the constant speed of the snap.
func (s *SnapSimulation) Velocity() float64 { return s.velocity }

func (s *SnapSimulation) X(t float64) float64 {
	p := s.start + s.velocity*t
	if (s.velocity >= 0 && p > s.target) || (s.velocity < 0 && p < s.target) {
		return s.target
	}
	return p
}

func (s *SnapSimulation) Dx(t float64) float64 {
	if s.IsDone(t) {
		return 0
	}
	return s.velocity
}

func (s *SnapSimulation) IsDone(t float64) bool {
	return s.X(t) == s.target
}
