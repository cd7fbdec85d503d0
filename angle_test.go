package wheel

import (
	"math"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name   string
		in     float64
		expect float64
	}{
		{"zero", 0, 0},
		{"identity", 45, 45},
		{"full turn", 360, 0},
		{"two turns", 720, 0},
		{"negative", -90, 270},
		{"over one turn", 450, 90},
		{"large negative", -730, 350},
		{"half", 180, 180},
		{"float noise below 360", 359.9999999999, 0},
		{"float noise below zero", -0.0000000001, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			if math.Abs(got-tt.expect) > 1e-9 {
				t.Errorf("Normalize(%v) = %v, want %v", tt.in, got, tt.expect)
			}
			if got < 0 || got >= 360 {
				t.Errorf("Normalize(%v) = %v, outside [0, 360)", tt.in, got)
			}
		})
	}
}

func TestAddAngle(t *testing.T) {
	tests := []struct {
		name   string
		a, b   float64
		expect float64
	}{
		{"simple", 10, 20, 30},
		{"wraps", 350, 20, 10},
		{"negative operand", 10, -20, 350},
		{"exact turn", 180, 180, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AddAngle(tt.a, tt.b)
			if math.Abs(got-tt.expect) > 1e-9 {
				t.Errorf("AddAngle(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.expect)
			}
		})
	}
}

func TestDiffAngle(t *testing.T) {
	tests := []struct {
		name   string
		a, b   float64
		expect float64
	}{
		{"forward", 0, 90, 90},
		{"backward", 90, 0, -90},
		{"short way across zero", 350, 10, 20},
		{"short way back across zero", 10, 350, -20},
		{"opposite", 0, 180, -180},
		{"same", 123.4, 123.4, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DiffAngle(tt.a, tt.b)
			if math.Abs(got-tt.expect) > 1e-9 {
				t.Errorf("DiffAngle(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.expect)
			}
		})
	}
}

// The round-trip law: adding the difference always lands on b.
func TestDiffAngle_RoundTrip(t *testing.T) {
	angles := []float64{0, 10.5, 90, 179.25, 180, 250, 359.99, -45, 720.5}
	for _, a := range angles {
		for _, b := range angles {
			got := Normalize(AddAngle(a, DiffAngle(a, b)))
			want := Normalize(b)
			if math.Abs(got-want) > 1e-9 {
				t.Errorf("AddAngle(%v, DiffAngle(%v, %v)) = %v, want %v", a, a, b, got, want)
			}
		}
	}
}

func TestIsBetween(t *testing.T) {
	tests := []struct {
		name               string
		angle, start, end  float64
		expect             bool
	}{
		{"inside plain interval", 45, 0, 90, true},
		{"start inclusive", 0, 0, 90, true},
		{"end exclusive", 90, 0, 90, false},
		{"outside plain interval", 180, 0, 90, false},
		{"inside wrapping before zero", 350, 270, 10, true},
		{"inside wrapping after zero", 5, 270, 10, true},
		{"wrapping start inclusive", 270, 270, 10, true},
		{"wrapping end exclusive", 10, 270, 10, false},
		{"outside wrapping interval", 100, 270, 10, false},
		{"full circle when start equals end", 123, 50, 50, true},
		{"full circle at the seam", 50, 50, 50, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsBetween(tt.angle, tt.start, tt.end)
			if got != tt.expect {
				t.Errorf("IsBetween(%v, %v, %v) = %v, want %v",
					tt.angle, tt.start, tt.end, got, tt.expect)
			}
		})
	}
}

func TestRotationForTarget(t *testing.T) {
	tests := []struct {
		name      string
		current   float64
		target    float64
		direction int
		expect    float64
	}{
		{"clockwise from origin", 0, 45, 1, 315},
		{"counter-clockwise from origin", 0, 45, -1, -45},
		{"clockwise mid-rotation", 100, 45, 1, 215},
		{"counter-clockwise mid-rotation", 100, 45, -1, -145},
		{"already on target clockwise", 315, 45, 1, 0},
		{"already on target counter-clockwise", 315, 45, -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RotationForTarget(tt.current, tt.target, tt.direction)
			if math.Abs(got-tt.expect) > 1e-9 {
				t.Errorf("RotationForTarget(%v, %v, %d) = %v, want %v",
					tt.current, tt.target, tt.direction, got, tt.expect)
			}
			// The delta must bring the target onto angle 0.
			if landed := Normalize(tt.current + got + tt.target); landed > 1e-9 && landed < 360-1e-9 {
				t.Errorf("target landed at %v, want 0", landed)
			}
			// And it must respect the requested direction.
			if tt.direction > 0 && (got < 0 || got >= 360) {
				t.Errorf("clockwise delta %v outside [0, 360)", got)
			}
			if tt.direction < 0 && (got > 0 || got <= -360) {
				t.Errorf("counter-clockwise delta %v outside (-360, 0]", got)
			}
		})
	}
}
