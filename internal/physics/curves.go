package physics

import "math"

// Curve maps animation progress t in [0, 1] to eased progress.
type Curve func(t float64) float64

var (
	Linear    Curve = func(t float64) float64 { return t }
	EaseIn    Curve = cubic(0.42, 0, 1, 1)
	EaseOut   Curve = cubic(0, 0, 0.58, 1)
	EaseInOut Curve = cubic(0.42, 0, 0.58, 1)
	// Decelerate starts fast and eases into the end; used for snaps and resets.
	Decelerate Curve = func(t float64) float64 {
		t = 1 - t
		return 1 - t*t
	}
	FastOutSlowIn Curve = cubic(0.4, 0, 0.2, 1)
)

// CurveByName resolves the names accepted in configuration files.
func CurveByName(name string) (Curve, bool) {
	switch name {
	case "linear":
		return Linear, true
	case "ease_in":
		return EaseIn, true
	case "ease_out":
		return EaseOut, true
	case "ease_in_out", "ease":
		return EaseInOut, true
	case "decelerate":
		return Decelerate, true
	case "fast_out_slow_in":
		return FastOutSlowIn, true
	}
	return nil, false
}

// cubic returns a cubic Bezier easing curve through (0,0), (a,b), (c,d),
// (1,1), solved for x by bisection.
func cubic(a, b, c, d float64) Curve {
	eval := func(p1, p2, m float64) float64 {
		return 3*p1*(1-m)*(1-m)*m + 3*p2*(1-m)*m*m + m*m*m
	}
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		lo, hi := 0.0, 1.0
		for range 64 {
			mid := (lo + hi) / 2
			x := eval(a, c, mid)
			if math.Abs(t-x) < 1e-6 {
				return eval(b, d, mid)
			}
			if x < t {
				lo = mid
			} else {
				hi = mid
			}
		}
		return eval(b, d, (lo+hi)/2)
	}
}
