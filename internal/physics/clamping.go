package physics

import "math"

// DefaultFriction is the fling friction used by scrollables on Android.
const DefaultFriction = 0.015

const (
	decelerationRate     = 2.358201815 // ln(0.78) / ln(0.9)
	inflexion            = 0.35
	velocityPenetration0 = 3.065
	// gravity * inches per meter * pixels per inch
	physicalCoeff = 61774.04968
)

// ClampingSimulation is a fling that decelerates to rest without bouncing.
// The curve is the one Android uses for OverScroller flings.
type ClampingSimulation struct {
	position float64
	velocity float64
	friction float64
	duration float64
	distance float64
}

// NewClampingSimulation starts a fling at position with velocity in pixels
// per second.
func NewClampingSimulation(position, velocity float64) *ClampingSimulation {
	return NewClampingSimulationWithFriction(position, velocity, DefaultFriction)
}

// NewClampingSimulationWithFriction is NewClampingSimulation with an
// explicit friction coefficient.
func NewClampingSimulationWithFriction(position, velocity, friction float64) *ClampingSimulation {
	s := &ClampingSimulation{position: position, velocity: velocity, friction: friction}
	s.duration = flingDuration(velocity, friction)
	s.distance = math.Abs(velocity * s.duration / velocityPenetration0)
	return s
}

func flingDuration(velocity, friction float64) float64 {
	if velocity == 0 {
		return 0
	}
	scaledFriction := friction * 0.84 * physicalCoeff
	deceleration := math.Log(inflexion * math.Abs(velocity) / scaledFriction)
	return math.Exp(deceleration / (decelerationRate - 1))
}

// Duration is how long the fling lasts, in seconds.
func (s *ClampingSimulation) Duration() float64 { return s.duration }

// Distance is how far the fling travels before coming to rest.
func (s *ClampingSimulation) Distance() float64 { return s.distance }

func (s *ClampingSimulation) progress(t float64) float64 {
	if s.duration <= 0 {
		return 1
	}
	return clamp(t/s.duration, 0, 1)
}

func (s *ClampingSimulation) X(t float64) float64 {
	p := s.progress(t)
	return s.position + s.distance*(1.2*p*p*p-3.27*p*p+velocityPenetration0*p)*sign(s.velocity)
}

func (s *ClampingSimulation) Dx(t float64) float64 {
	if s.duration <= 0 {
		return 0
	}
	p := s.progress(t)
	return s.distance * (3.6*p*p - 6.54*p + velocityPenetration0) * sign(s.velocity) / s.duration
}

func (s *ClampingSimulation) IsDone(t float64) bool {
	return t >= s.duration
}
