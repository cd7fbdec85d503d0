package wheel

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/gogpu/gg"
)

// Wheel owns the rotation state, the item list and the active spin
// session of one prize wheel. Create it with New; drive it with the
// spin operations, the drag entry points, and Advance.
//
// Exactly one rotation mutation path is active at any time: starting a
// spin or a drag always cancels the current session first, so the
// velocity decay, the eased animation and manual dragging never fight
// over the rotation value.
type Wheel struct {
	items        []Item
	rotation     float64
	pointerAngle float64
	resistance   float64
	maxSpeed     float64
	easing       EasingFunc
	center       gg.Point

	slices       []SliceRange
	currentIndex int
	initialized  bool

	session spinSession
	drag    dragState

	rand func() float64

	onSpin        func(SpinEvent)
	onRest        func(RestEvent)
	onIndexChange func(IndexChangeEvent)
}

// New creates a Wheel from the given options. The complete
// configuration is validated up front; the first invalid field is
// reported and nothing is constructed from partial input.
func New(opts ...Option) (*Wheel, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	w := &Wheel{
		items:         append([]Item(nil), o.items...),
		rotation:      o.rotation,
		pointerAngle:  Normalize(o.pointerAngle),
		resistance:    o.resistance,
		maxSpeed:      o.maxSpeed,
		easing:        o.easing,
		center:        o.center,
		currentIndex:  -1,
		rand:          rand.Float64,
		onSpin:        o.onSpin,
		onRest:        o.onRest,
		onIndexChange: o.onIndexChange,
	}

	// First layout. refresh sees initialized == false and stays
	// silent: constructing a wheel must not fire an index change.
	w.refresh()
	w.initialized = true
	return w, nil
}

// SetItems replaces the item list wholesale and recomputes the layout.
// Unlike the initial layout in New, a resulting index change does fire
// the change notification.
func (w *Wheel) SetItems(items []Item) error {
	if err := validateItems(items); err != nil {
		return err
	}
	w.items = append([]Item(nil), items...)
	w.refresh()
	return nil
}

// Items returns a copy of the item list.
func (w *Wheel) Items() []Item {
	return append([]Item(nil), w.items...)
}

// Item returns the item at the given index.
func (w *Wheel) Item(index int) (Item, error) {
	if index < 0 || index >= len(w.items) {
		return Item{}, fmt.Errorf("%w: index %d of %d items", ErrItemNotFound, index, len(w.items))
	}
	return w.items[index], nil
}

// Rotation returns the current rotation in degrees. The value is
// unbounded; use Normalize to map it onto the circle.
func (w *Wheel) Rotation() float64 {
	return w.rotation
}

// SetRotation sets the rotation directly, cancelling any active spin
// session.
func (w *Wheel) SetRotation(rotation float64) error {
	if math.IsNaN(rotation) || math.IsInf(rotation, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidRotation, rotation)
	}
	w.Stop()
	w.setRotation(rotation)
	return nil
}

// PointerAngle returns the fixed reference angle that selects the
// current slice.
func (w *Wheel) PointerAngle() float64 {
	return w.pointerAngle
}

// Slices returns the current slice layout, one range per item in item
// order, accumulated from the current rotation.
func (w *Wheel) Slices() []SliceRange {
	return append([]SliceRange(nil), w.slices...)
}

// CurrentIndex returns the index of the slice under the pointer, or -1
// when the wheel has no items.
func (w *Wheel) CurrentIndex() int {
	return w.currentIndex
}

// setRotation is the single write path for the rotation value. Every
// mutation recomputes the layout and resolves the current index.
func (w *Wheel) setRotation(rotation float64) {
	w.rotation = rotation
	w.refresh()
}

// refresh recomputes the slice layout for the current rotation and
// resolves the slice under the pointer, raising the index change
// notification on boundary crossings after initialization.
func (w *Wheel) refresh() {
	w.slices = layoutSlices(w.items, w.rotation)
	index := resolveIndex(w.pointerAngle, w.slices, w.currentIndex)
	if index == w.currentIndex {
		return
	}
	w.currentIndex = index
	if w.initialized && w.onIndexChange != nil {
		w.onIndexChange(IndexChangeEvent{Index: index})
	}
}

func (w *Wheel) emitSpin(e SpinEvent) {
	Logger().Debug("spin session started",
		"method", string(e.Method), "speed", e.Speed,
		"target", e.TargetRotation, "duration", e.Duration)
	if w.onSpin != nil {
		w.onSpin(e)
	}
}
