package anim

import "math"

// Curve maps linear progress t in [0, 1] to eased progress.
type Curve func(t float64) float64

// Linear returns progress unchanged.
func Linear(t float64) float64 {
	return t
}

// EaseInOut starts and ends slowly. Equivalent to CSS ease-in-out.
var EaseInOut = CubicBezier(0.42, 0.0, 0.58, 1.0)

// EaseOut decelerates toward the end. Equivalent to CSS ease-out.
var EaseOut = CubicBezier(0.0, 0.0, 0.58, 1.0)

// CubicBezier returns an easing curve matching CSS cubic-bezier(x1, y1, x2, y2).
// The x coordinates are solved with Newton iterations, falling back to bisection.
func CubicBezier(x1, y1, x2, y2 float64) Curve {
	sample := func(a1, a2, t float64) float64 {
		// B(t) for P0=0, P3=1
		u := 1 - t
		return 3*u*u*t*a1 + 3*u*t*t*a2 + t*t*t
	}
	slope := func(a1, a2, t float64) float64 {
		u := 1 - t
		return 3*u*u*a1 + 6*u*t*(a2-a1) + 3*t*t*(1-a2)
	}

	return func(x float64) float64 {
		if x <= 0 {
			return 0
		}
		if x >= 1 {
			return 1
		}

		t := x
		for range 8 {
			dx := sample(x1, x2, t) - x
			if math.Abs(dx) < 1e-6 {
				return sample(y1, y2, t)
			}
			d := slope(x1, x2, t)
			if math.Abs(d) < 1e-6 {
				break
			}
			t -= dx / d
		}

		lo, hi := 0.0, 1.0
		t = x
		for range 32 {
			v := sample(x1, x2, t)
			if math.Abs(v-x) < 1e-6 {
				break
			}
			if v < x {
				lo = t
			} else {
				hi = t
			}
			t = (lo + hi) / 2
		}
		return sample(y1, y2, t)
	}
}
