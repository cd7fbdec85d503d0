// Package wheel implements the motion engine for an interactive,
// weighted prize wheel.
//
// # Overview
//
// wheel partitions a circle into angular slices proportional to item
// weights and animates a single rotation value through two mutually
// exclusive spin modes: a velocity-decay spin (a "throw" that slows
// under constant resistance) and a time-bounded eased spin to an exact
// target rotation. A drag controller converts pointer motion into
// direct rotation changes and, on release, into a throw velocity.
//
// # Quick Start
//
//	import "github.com/gogpu/wheel"
//
//	w, err := wheel.New(wheel.WithItems([]wheel.Item{
//	    {Label: "one"},
//	    {Label: "two", Weight: 2},
//	    {Label: "three"},
//	}))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Throw the wheel at 200 degrees per second.
//	w.Spin(200)
//
//	// Drive the animation from your frame loop.
//	for w.Advance(time.Now()) {
//	    // redraw using w.Rotation(), w.Slices(), w.CurrentIndex()
//	}
//
// # Coordinate System
//
// Angles are in degrees, increase clockwise, and angle 0 points north
// (straight up). The pointer angle is the fixed reference used to
// decide which slice is currently selected; it defaults to 0.
//
// The rotation value itself is unbounded and grows across
// multi-revolution spins; it is normalized into [0, 360) only where
// slice membership is decided.
//
// # Driving the Animation
//
// The engine never owns a timer. An external frame scheduler calls
// [Wheel.Advance] with the current time once per frame; Advance reports
// whether a spin session is still active so the scheduler can stop
// requesting frames when the wheel is at rest. Tests drive the same
// method with synthetic timestamps.
//
// # Rendering
//
// The core computes geometry only. The render subpackage draws a wheel
// onto a gg drawing context; any other renderer can be built from
// [Wheel.Slices], [Wheel.Rotation] and [Wheel.Items].
//
// # Concurrency
//
// A Wheel is not safe for concurrent use. All methods must be called
// from a single goroutine, typically the one running the frame loop.
package wheel
