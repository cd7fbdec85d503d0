package wheel

import (
	"math"
	"time"

	"github.com/gogpu/gg"
)

// DragCaptureWindow is the trailing interval over which recent drag
// motion is integrated into a release velocity. Entries older than this
// at drag end are discarded.
const DragCaptureWindow = 250 * time.Millisecond

// maxDragHistory bounds retained drag entries for debug inspection.
// The cap never affects the release velocity: stale entries are
// excluded by time, not by count, and the cap comfortably exceeds the
// number of move events any input source delivers within the capture
// window.
const maxDragHistory = 100

// DragEntry records one step of pointer motion during a drag.
type DragEntry struct {
	// Delta is the angular change contributed by this step, degrees.
	Delta float64

	// At is the time the step was observed.
	At time.Time

	// Point is the raw surface-local pointer position.
	Point gg.Point
}

// dragState tracks an in-progress drag: the motion history, newest
// last, and the pointer angle of the previous event.
type dragState struct {
	active    bool
	history   []DragEntry
	lastAngle float64
}

// IsDragging reports whether a drag is in progress.
func (w *Wheel) IsDragging() bool {
	return w.drag.active
}

// DragHistory returns a copy of the motion history of the drag in
// progress, oldest entry first. Intended for debug visualization.
func (w *Wheel) DragHistory() []DragEntry {
	return append([]DragEntry(nil), w.drag.history...)
}

// DragStart begins a manual drag at the given surface-local point. Any
// active spin session is cancelled: while a drag is in progress the
// pointer alone drives the rotation.
func (w *Wheel) DragStart(p gg.Point, now time.Time) {
	w.Stop()
	w.drag = dragState{
		active:    true,
		history:   append(w.drag.history[:0], DragEntry{At: now, Point: p}),
		lastAngle: w.angleFromCenter(p),
	}
}

// DragMove continues a drag. The angular difference from the previous
// pointer position is applied to the rotation directly, so the wheel
// tracks the pointer one to one with no animation lag. A move without
// a preceding DragStart is ignored.
func (w *Wheel) DragMove(p gg.Point, now time.Time) {
	if !w.drag.active {
		return
	}
	angle := w.angleFromCenter(p)
	delta := DiffAngle(w.drag.lastAngle, angle)
	w.drag.lastAngle = angle

	w.drag.history = append(w.drag.history, DragEntry{Delta: delta, At: now, Point: p})
	if len(w.drag.history) > maxDragHistory {
		w.drag.history = w.drag.history[len(w.drag.history)-maxDragHistory:]
	}

	w.setRotation(w.rotation + delta)
}

// DragEnd releases the drag. The angular distance covered within the
// capture window is extrapolated to an instantaneous velocity in
// degrees per second and handed to the velocity-decay spin, tagged
// "interact". A release with no recent motion leaves the wheel at rest.
func (w *Wheel) DragEnd(now time.Time) {
	if !w.drag.active {
		return
	}
	w.drag.active = false

	// Walk newest to oldest, summing motion inside the window and
	// truncating the history at the first stale entry.
	distance := 0.0
	cut := 0
	for i := len(w.drag.history) - 1; i >= 0; i-- {
		if now.Sub(w.drag.history[i].At) > DragCaptureWindow {
			cut = i + 1
			break
		}
		distance += w.drag.history[i].Delta
	}
	w.drag.history = w.drag.history[cut:]

	if distance == 0 {
		return
	}
	speed := distance * float64(time.Second) / float64(DragCaptureWindow)
	w.beginVelocitySpin(speed, SpinMethodInteract)
}

// angleFromCenter converts a surface-local point to its angle from the
// wheel center, in degrees clockwise from north.
func (w *Wheel) angleFromCenter(p gg.Point) float64 {
	v := p.Sub(w.center)
	return Normalize(math.Atan2(v.X, -v.Y) * 180 / math.Pi)
}
