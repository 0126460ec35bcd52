// Package gesture turns raw pointer positions into vertical drag events.
// It knows nothing about ebiten; the ui package feeds it polled input.
package gesture

import "time"

const (
	// velocityHorizon is how far back samples count toward the release
	// velocity.
	velocityHorizon = 100 * time.Millisecond
	// stallTimeout: a pointer that has not moved for this long is released
	// at rest.
	stallTimeout = 40 * time.Millisecond
	maxSamples   = 20
)

type sample struct {
	at time.Duration
	y  float64
}

// VelocityTracker estimates pointer velocity from recent samples with a
// least-squares line fit.
type VelocityTracker struct {
	samples []sample
}

func (v *VelocityTracker) Reset() {
	v.samples = v.samples[:0]
}

// Add records the pointer at y, at time at since some fixed origin.
func (v *VelocityTracker) Add(at time.Duration, y float64) {
	if n := len(v.samples); n > 0 && v.samples[n-1].at == at {
		v.samples[n-1].y = y
		return
	}
	if len(v.samples) == maxSamples {
		v.samples = append(v.samples[:0], v.samples[1:]...)
	}
	v.samples = append(v.samples, sample{at: at, y: y})
}

// Velocity returns the estimated velocity in pixels per second at time now.
// It is 0 with fewer than two recent samples or when the pointer stalled.
func (v *VelocityTracker) Velocity(now time.Duration) float64 {
	n := len(v.samples)
	if n == 0 || now-v.samples[n-1].at > stallTimeout {
		return 0
	}
	newest := v.samples[n-1].at
	var pts []sample
	for _, s := range v.samples {
		if newest-s.at <= velocityHorizon {
			pts = append(pts, s)
		}
	}
	if len(pts) < 2 {
		return 0
	}

	// Fit y = a + b*t; b is the velocity.
	var st, sy, stt, sty float64
	for _, s := range pts {
		t := (s.at - newest).Seconds()
		st += t
		sy += s.y
		stt += t * t
		sty += t * s.y
	}
	k := float64(len(pts))
	den := k*stt - st*st
	if den == 0 {
		return 0
	}
	return (k*sty - st*sy) / den
}
