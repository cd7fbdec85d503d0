package wheel

import "math"

// anglePrecision is the scale used to round angles to 9 decimal places.
// Rounding before a modulo keeps accumulated float error from producing
// values that sit exactly on 360 and wrap the wrong way.
const anglePrecision = 1e9

// fixAngle rounds an angle to 9 decimal places.
func fixAngle(a float64) float64 {
	return math.Round(a*anglePrecision) / anglePrecision
}

// Normalize reduces an angle to the range [0, 360).
//
// The input is rounded to 9 decimal places first so that values a hair
// below 360 collapse onto 360 and then clamp to 0, instead of surviving
// as 359.999999999x.
func Normalize(a float64) float64 {
	a = math.Mod(fixAngle(a), 360)
	if a < 0 {
		a += 360
	}
	if a == 360 {
		a = 0
	}
	return a
}

// AddAngle returns the sum of two angles normalized to [0, 360).
func AddAngle(a, b float64) float64 {
	return Normalize(a + b)
}

// DiffAngle returns the shortest signed difference from a to b, in the
// range [-180, 180), such that AddAngle(a, DiffAngle(a, b)) equals
// Normalize(b) up to floating tolerance.
func DiffAngle(a, b float64) float64 {
	// Offsetting by 180 before normalizing folds both wrap directions
	// into a single branch-free expression.
	return Normalize(b-a+180) - 180
}

// IsBetween reports whether angle lies in the half-open circular
// interval [start, end). When start < end the interval is ordinary;
// otherwise it wraps through 0. Equal start and end denote the full
// circle, which is what a single slice spanning the whole wheel
// normalizes to.
func IsBetween(angle, start, end float64) bool {
	if start < end {
		return start <= angle && angle < end
	}
	return angle >= start || angle < end
}

// RotationForTarget returns the rotation delta, taken in the requested
// direction, that brings targetRelativeAngle to angle 0 when added to
// currentRotation. direction >= 0 yields a clockwise delta in [0, 360);
// direction < 0 yields a counter-clockwise delta in (-360, 0].
func RotationForTarget(currentRotation, targetRelativeAngle float64, direction int) float64 {
	offset := Normalize(currentRotation + targetRelativeAngle)
	if direction < 0 {
		return -offset
	}
	return Normalize(-offset)
}
