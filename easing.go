package wheel

import "math"

// EasingFunc maps normalized time t in [0, 1] to normalized progress in
// [0, 1]. Easing functions used with the engine must be monotonic and
// satisfy f(0) = 0 and f(1) = 1; the engine clamps t but does not clamp
// the output.
type EasingFunc func(t float64) float64

// Linear is the identity easing: constant angular velocity.
func Linear(t float64) float64 {
	return t
}

// EaseOutSine decelerates along a quarter sine wave. This is the
// default easing for eased spins: fast off the line, settling gently
// onto the target.
func EaseOutSine(t float64) float64 {
	return math.Sin(t * math.Pi / 2)
}

// EaseInOutSine accelerates and decelerates along a half cosine wave.
func EaseInOutSine(t float64) float64 {
	return -(math.Cos(math.Pi*t) - 1) / 2
}

// EaseOutCubic decelerates with a cubic curve, braking harder than
// EaseOutSine near the target.
func EaseOutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}
