package wheel

import (
	"fmt"
	"math"
	"time"
)

// sessionKind discriminates the spin session union. The engine is
// always in exactly one of these states; Stop is the only external
// transition back to idle.
type sessionKind uint8

const (
	sessionIdle sessionKind = iota
	sessionVelocity
	sessionEase
)

// spinSession is the tagged union of the two animation modes. Only the
// fields of the active kind are meaningful. Time fields start zero and
// are captured lazily on the first Advance after the session begins,
// which keeps the engine free of any internal clock.
type spinSession struct {
	kind sessionKind

	// velocity decay
	speed     float64 // degrees per second, signed
	direction int     // sign of the initial speed, ties clockwise
	lastTick  time.Time

	// timed ease
	startRotation float64
	endRotation   float64
	duration      time.Duration
	start         time.Time
	easing        EasingFunc
}

// IsSpinning reports whether a spin session is active. Frame schedulers
// can use this (or the return value of Advance) to stop requesting
// callbacks while the wheel is at rest.
func (w *Wheel) IsSpinning() bool {
	return w.session.kind != sessionIdle
}

// Stop cancels any active spin session immediately and completely. It
// never raises a rest notification; rest is reserved for sessions that
// run to natural completion.
func (w *Wheel) Stop() {
	w.session = spinSession{}
}

// Spin throws the wheel at the given angular speed in degrees per
// second (positive is clockwise). The speed is clamped to the
// configured maximum and then decays under the configured resistance
// until it reaches zero, at which point the rest notification fires.
func (w *Wheel) Spin(speed float64) error {
	if math.IsNaN(speed) || math.IsInf(speed, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidSpeed, speed)
	}
	w.beginVelocitySpin(speed, SpinMethodSpin)
	return nil
}

// SpinTo animates the rotation to an exact value over the given
// duration. A nil easing uses the wheel's configured easing (by
// default EaseOutSine). The rotation lands on the target exactly,
// never a float-noise neighbor of it.
func (w *Wheel) SpinTo(rotation float64, duration time.Duration, easing EasingFunc) error {
	if math.IsNaN(rotation) || math.IsInf(rotation, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidRotation, rotation)
	}
	if duration < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidDuration, duration)
	}
	w.beginEasedSpin(rotation, duration, easing)
	w.emitSpin(SpinEvent{
		Method:         SpinMethodSpinTo,
		TargetRotation: rotation,
		TargetIndex:    -1,
		Duration:       duration,
	})
	return nil
}

// SpinToItem animates the rotation so that the item at the given index
// lands under the pointer. With spinToCenter the slice's exact center
// lands on the pointer; otherwise a uniformly random point within the
// slice does. revolutions extra full turns are taken in the given
// direction (1 clockwise, -1 counter-clockwise) before settling.
func (w *Wheel) SpinToItem(index int, duration time.Duration, spinToCenter bool, revolutions int, direction int, easing EasingFunc) error {
	if len(w.items) == 0 {
		return ErrNoItems
	}
	if index < 0 || index >= len(w.items) {
		return fmt.Errorf("%w: index %d of %d items", ErrItemNotFound, index, len(w.items))
	}
	if duration < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidDuration, duration)
	}
	if direction != 1 && direction != -1 {
		return fmt.Errorf("%w: %d", ErrInvalidDirection, direction)
	}
	if revolutions < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidRevolutions, revolutions)
	}

	// Item angles in the wheel's own frame: layout at base rotation 0.
	slice := layoutSlices(w.items, 0)[index]
	target := slice.Center()
	if !spinToCenter {
		target = slice.Start + w.rand()*slice.Size()
	}

	delta := RotationForTarget(w.rotation, target-w.pointerAngle, direction)
	end := w.rotation + delta + 360*float64(revolutions)*float64(direction)

	w.beginEasedSpin(end, duration, easing)
	w.emitSpin(SpinEvent{
		Method:         SpinMethodSpinToItem,
		TargetRotation: end,
		TargetIndex:    index,
		Duration:       duration,
	})
	return nil
}

// beginVelocitySpin cancels the active session and enters velocity
// decay. Ties on a zero speed spin clockwise.
func (w *Wheel) beginVelocitySpin(speed float64, method SpinMethod) {
	w.Stop()
	speed = math.Max(-w.maxSpeed, math.Min(w.maxSpeed, speed))
	direction := 1
	if speed < 0 {
		direction = -1
	}
	w.session = spinSession{
		kind:      sessionVelocity,
		speed:     speed,
		direction: direction,
	}
	w.emitSpin(SpinEvent{Method: method, Speed: speed, TargetIndex: -1})
}

// beginEasedSpin cancels the active session and enters a timed ease
// toward endRotation.
func (w *Wheel) beginEasedSpin(endRotation float64, duration time.Duration, easing EasingFunc) {
	w.Stop()
	if easing == nil {
		easing = w.easing
	}
	w.session = spinSession{
		kind:          sessionEase,
		startRotation: w.rotation,
		endRotation:   endRotation,
		duration:      duration,
		easing:        easing,
	}
}

// Advance moves the active spin session forward to the given time and
// reports whether a session is still active afterwards. Idle wheels
// no-op. Timestamps must be non-decreasing; an out-of-order timestamp
// degrades to a no-op rather than stepping the rotation backwards.
func (w *Wheel) Advance(now time.Time) bool {
	switch w.session.kind {
	case sessionVelocity:
		w.advanceVelocity(now)
	case sessionEase:
		w.advanceEase(now)
	}
	return w.session.kind != sessionIdle
}

func (w *Wheel) advanceVelocity(now time.Time) {
	s := &w.session
	if s.lastTick.IsZero() {
		s.lastTick = now
		return
	}
	dt := now.Sub(s.lastTick).Seconds()
	if dt <= 0 {
		return
	}

	w.setRotation(w.rotation + s.speed*dt)

	s.speed += w.resistance * dt * float64(s.direction)
	if (s.direction > 0 && s.speed <= 0) || (s.direction < 0 && s.speed >= 0) {
		// The decay crossed zero: the throw has spent itself.
		s.speed = 0
		w.finishSession()
		return
	}
	s.lastTick = now
}

func (w *Wheel) advanceEase(now time.Time) {
	s := &w.session
	if s.start.IsZero() {
		s.start = now
	}
	if !now.Before(s.start.Add(s.duration)) {
		w.setRotation(s.endRotation)
		w.finishSession()
		return
	}
	t := float64(now.Sub(s.start)) / float64(s.duration)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	w.setRotation(s.startRotation + (s.endRotation-s.startRotation)*s.easing(t))
}

// finishSession transitions to idle and raises the rest notification
// exactly once, after the final rotation has been applied and the
// current index resolved.
func (w *Wheel) finishSession() {
	w.session = spinSession{}
	Logger().Debug("spin session at rest",
		"index", w.currentIndex, "rotation", w.rotation)
	if w.onRest != nil {
		w.onRest(RestEvent{Index: w.currentIndex, Rotation: w.rotation})
	}
}
