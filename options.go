package wheel

import (
	"fmt"
	"math"

	"github.com/gogpu/gg"
)

// Default physics constants. A throw at the default max speed spins
// down in a little under nine seconds under the default resistance.
const (
	// DefaultResistance is the decay applied to a velocity spin, in
	// degrees per second squared, always acting against the spin
	// direction.
	DefaultResistance = -35.0

	// DefaultMaxSpeed is the clamp applied to spin speeds, in degrees
	// per second.
	DefaultMaxSpeed = 300.0
)

// Option configures a Wheel during creation.
//
// Example:
//
//	w, err := wheel.New(
//	    wheel.WithItems(items),
//	    wheel.WithResistance(-80),
//	    wheel.WithOnRest(func(e wheel.RestEvent) {
//	        fmt.Println("landed on", e.Index)
//	    }),
//	)
type Option func(*wheelOptions)

// wheelOptions holds the complete configuration assembled from options
// and validated as a whole before a Wheel is constructed.
type wheelOptions struct {
	items        []Item
	rotation     float64
	pointerAngle float64
	resistance   float64
	maxSpeed     float64
	easing       EasingFunc
	center       gg.Point

	onSpin        func(SpinEvent)
	onRest        func(RestEvent)
	onIndexChange func(IndexChangeEvent)
}

func defaultOptions() wheelOptions {
	return wheelOptions{
		resistance: DefaultResistance,
		maxSpeed:   DefaultMaxSpeed,
		easing:     EaseOutSine,
	}
}

// validate checks the assembled configuration, reporting the first
// invalid field. Defaults only ever replace absent values; explicit
// garbage is refused, never coerced.
func (o *wheelOptions) validate() error {
	if err := validateItems(o.items); err != nil {
		return err
	}
	if math.IsNaN(o.rotation) || math.IsInf(o.rotation, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidRotation, o.rotation)
	}
	if math.IsNaN(o.pointerAngle) || math.IsInf(o.pointerAngle, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidPointerAngle, o.pointerAngle)
	}
	if !(o.resistance < 0) || math.IsInf(o.resistance, 0) {
		return fmt.Errorf("%w: %v (must be a negative finite number)", ErrInvalidResistance, o.resistance)
	}
	if !(o.maxSpeed > 0) || math.IsInf(o.maxSpeed, 0) {
		return fmt.Errorf("%w: %v (must be a positive finite number)", ErrInvalidMaxSpeed, o.maxSpeed)
	}
	return nil
}

// WithItems sets the initial item list.
func WithItems(items []Item) Option {
	return func(o *wheelOptions) { o.items = items }
}

// WithRotation sets the initial rotation in degrees.
func WithRotation(rotation float64) Option {
	return func(o *wheelOptions) { o.rotation = rotation }
}

// WithPointerAngle sets the fixed reference angle, in degrees clockwise
// from north, that selects the current slice. Default 0.
func WithPointerAngle(angle float64) Option {
	return func(o *wheelOptions) { o.pointerAngle = angle }
}

// WithResistance sets the velocity-spin decay in degrees per second
// squared. It must be negative: resistance always acts against the
// spin direction. Default -35.
func WithResistance(resistance float64) Option {
	return func(o *wheelOptions) { o.resistance = resistance }
}

// WithMaxSpeed sets the clamp for spin speeds in degrees per second.
// Default 300.
func WithMaxSpeed(maxSpeed float64) Option {
	return func(o *wheelOptions) { o.maxSpeed = maxSpeed }
}

// WithEasing sets the default easing for eased spins. Default
// EaseOutSine. A nil value keeps the default.
func WithEasing(easing EasingFunc) Option {
	return func(o *wheelOptions) {
		if easing != nil {
			o.easing = easing
		}
	}
}

// WithCenter sets the wheel center in the surface-local coordinate
// space used by the drag entry points. Default is the origin, for
// input sources that deliver center-relative points.
func WithCenter(center gg.Point) Option {
	return func(o *wheelOptions) { o.center = center }
}

// WithOnSpin sets the observer invoked whenever a spin session begins.
func WithOnSpin(fn func(SpinEvent)) Option {
	return func(o *wheelOptions) { o.onSpin = fn }
}

// WithOnRest sets the observer invoked exactly once when a spin session
// completes naturally.
func WithOnRest(fn func(RestEvent)) Option {
	return func(o *wheelOptions) { o.onRest = fn }
}

// WithOnCurrentIndexChange sets the observer invoked on every slice
// boundary crossing after the initial layout.
func WithOnCurrentIndexChange(fn func(IndexChangeEvent)) Option {
	return func(o *wheelOptions) { o.onIndexChange = fn }
}
