package wheel

import (
	"math"
	"testing"
	"time"

	"github.com/gogpu/gg"
)

// pointAt returns a surface-local point at the given angle (degrees
// clockwise from north) on a circle of radius r around the origin, the
// default wheel center.
func pointAt(angle, r float64) gg.Point {
	rad := angle * math.Pi / 180
	return gg.Pt(r*math.Sin(rad), -r*math.Cos(rad))
}

func TestAngleFromCenter(t *testing.T) {
	w := newTestWheel(t, nil)
	tests := []struct {
		name   string
		p      gg.Point
		expect float64
	}{
		{"north", gg.Pt(0, -10), 0},
		{"east", gg.Pt(10, 0), 90},
		{"south", gg.Pt(0, 10), 180},
		{"west", gg.Pt(-10, 0), 270},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := w.angleFromCenter(tt.p); math.Abs(got-tt.expect) > 1e-9 {
				t.Errorf("angleFromCenter(%v) = %v, want %v", tt.p, got, tt.expect)
			}
		})
	}
}

func TestAngleFromCenter_CustomCenter(t *testing.T) {
	w := newTestWheel(t, nil, WithCenter(gg.Pt(100, 100)))
	if got := w.angleFromCenter(gg.Pt(110, 100)); math.Abs(got-90) > 1e-9 {
		t.Errorf("angleFromCenter east of custom center = %v, want 90", got)
	}
}

// Three +10 degree moves inside the capture window extrapolate to
// 30 * (1000/250) = 120 degrees per second on release.
func TestDrag_ReleaseVelocity(t *testing.T) {
	rec := &recorder{}
	w := newTestWheel(t, rec)

	t0 := time.Unix(0, 0)
	w.DragStart(pointAt(0, 100), t0)
	w.DragMove(pointAt(10, 100), t0.Add(50*time.Millisecond))
	w.DragMove(pointAt(20, 100), t0.Add(100*time.Millisecond))
	w.DragMove(pointAt(30, 100), t0.Add(150*time.Millisecond))
	w.DragEnd(t0.Add(200 * time.Millisecond))

	if len(rec.spins) != 1 {
		t.Fatalf("spin fired %d times, want 1", len(rec.spins))
	}
	e := rec.spins[0]
	if e.Method != SpinMethodInteract {
		t.Errorf("spin method = %q, want %q", e.Method, SpinMethodInteract)
	}
	if math.Abs(e.Speed-120) > 1e-9 {
		t.Errorf("release speed = %v, want 120", e.Speed)
	}
	if !w.IsSpinning() {
		t.Error("wheel should decay after release")
	}
}

func TestDrag_RotatesOneToOne(t *testing.T) {
	w := newTestWheel(t, nil)

	t0 := time.Unix(0, 0)
	w.DragStart(pointAt(0, 100), t0)
	w.DragMove(pointAt(10, 100), t0.Add(10*time.Millisecond))
	w.DragMove(pointAt(25, 100), t0.Add(20*time.Millisecond))

	if math.Abs(w.Rotation()-25) > 1e-9 {
		t.Errorf("rotation after dragging 25 degrees = %v, want 25", w.Rotation())
	}
}

func TestDrag_WrapsThroughZero(t *testing.T) {
	w := newTestWheel(t, nil)

	t0 := time.Unix(0, 0)
	w.DragStart(pointAt(350, 100), t0)
	w.DragMove(pointAt(10, 100), t0.Add(10*time.Millisecond))

	// 350 -> 10 is a +20 step, not a -340 one.
	if math.Abs(w.Rotation()-20) > 1e-9 {
		t.Errorf("rotation after wrapping drag = %v, want 20", w.Rotation())
	}
}

func TestDrag_StaleMotionExcluded(t *testing.T) {
	rec := &recorder{}
	w := newTestWheel(t, rec)

	t0 := time.Unix(0, 0)
	w.DragStart(pointAt(0, 100), t0)
	// Old motion, outside the capture window at release time.
	w.DragMove(pointAt(10, 100), t0.Add(10*time.Millisecond))
	// Recent motion, inside the window.
	w.DragMove(pointAt(20, 100), t0.Add(400*time.Millisecond))
	w.DragMove(pointAt(30, 100), t0.Add(450*time.Millisecond))
	w.DragEnd(t0.Add(500 * time.Millisecond))

	if len(rec.spins) != 1 {
		t.Fatalf("spin fired %d times, want 1", len(rec.spins))
	}
	// Only the 20 degrees moved within the window count: 20 * 4 = 80.
	if math.Abs(rec.spins[0].Speed-80) > 1e-9 {
		t.Errorf("release speed = %v, want 80", rec.spins[0].Speed)
	}
}

func TestDrag_CounterClockwiseRelease(t *testing.T) {
	rec := &recorder{}
	w := newTestWheel(t, rec)

	t0 := time.Unix(0, 0)
	w.DragStart(pointAt(30, 100), t0)
	w.DragMove(pointAt(20, 100), t0.Add(50*time.Millisecond))
	w.DragMove(pointAt(10, 100), t0.Add(100*time.Millisecond))
	w.DragEnd(t0.Add(150 * time.Millisecond))

	if len(rec.spins) != 1 {
		t.Fatalf("spin fired %d times, want 1", len(rec.spins))
	}
	if math.Abs(rec.spins[0].Speed-(-80)) > 1e-9 {
		t.Errorf("release speed = %v, want -80", rec.spins[0].Speed)
	}
}

func TestDrag_NoMotionNoSpin(t *testing.T) {
	rec := &recorder{}
	w := newTestWheel(t, rec)

	t0 := time.Unix(0, 0)
	w.DragStart(pointAt(0, 100), t0)
	w.DragEnd(t0.Add(50 * time.Millisecond))

	if w.IsSpinning() {
		t.Error("release without motion started a spin")
	}
	if len(rec.spins) != 0 {
		t.Errorf("spin fired %d times, want 0", len(rec.spins))
	}
}

func TestDrag_CancelsActiveSpin(t *testing.T) {
	w := newTestWheel(t, nil)
	if err := w.Spin(200); err != nil {
		t.Fatalf("Spin() = %v", err)
	}

	w.DragStart(pointAt(0, 100), time.Unix(0, 0))
	if w.IsSpinning() {
		t.Error("drag start did not cancel the active spin")
	}
	if !w.IsDragging() {
		t.Error("drag not active after DragStart")
	}
}

func TestDrag_MoveWithoutStartIgnored(t *testing.T) {
	w := newTestWheel(t, nil)
	before := w.Rotation()
	w.DragMove(pointAt(90, 100), time.Unix(0, 0))
	w.DragEnd(time.Unix(1, 0))
	if w.Rotation() != before {
		t.Error("DragMove without DragStart changed the rotation")
	}
}

func TestDrag_HistoryBounded(t *testing.T) {
	w := newTestWheel(t, nil)

	t0 := time.Unix(0, 0)
	w.DragStart(pointAt(0, 100), t0)
	for i := 1; i <= 500; i++ {
		w.DragMove(pointAt(float64(i%360), 100), t0.Add(time.Duration(i)*time.Millisecond))
	}

	if got := len(w.DragHistory()); got > maxDragHistory {
		t.Errorf("history holds %d entries, cap is %d", got, maxDragHistory)
	}
}
