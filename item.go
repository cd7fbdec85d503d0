package wheel

import (
	"fmt"
	"math"
)

// Item describes one slice of the wheel. The engine reads only Weight;
// the remaining fields are opaque payload carried for renderers and
// callers.
type Item struct {
	// Weight sets the item's share of the wheel: its slice spans
	// 360 * Weight / totalWeight degrees. Zero means unset and
	// defaults to 1. Negative, NaN and infinite weights are rejected.
	Weight float64

	// Label is the display text for the slice.
	Label string

	// Value is an arbitrary payload associated with the item.
	Value any

	// BackgroundColor and LabelColor are hex color strings ("#rrggbb")
	// consumed by renderers. Empty means the renderer's default.
	BackgroundColor string
	LabelColor      string
}

// weight returns the effective weight, substituting the default of 1
// for the zero value.
func (it Item) weight() float64 {
	if it.Weight == 0 {
		return 1
	}
	return it.Weight
}

// validateItems rejects item lists whose weights cannot produce a
// layout: any negative or non-finite weight, or a total of zero.
func validateItems(items []Item) error {
	total := 0.0
	for i, it := range items {
		w := it.Weight
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return fmt.Errorf("%w: item %d has weight %v", ErrInvalidWeight, i, w)
		}
		total += it.weight()
	}
	if len(items) > 0 && total <= 0 {
		return fmt.Errorf("%w: total weight is %v", ErrInvalidWeight, total)
	}
	return nil
}

// totalWeight sums effective weights. Callers must have validated the
// items first.
func totalWeight(items []Item) float64 {
	total := 0.0
	for _, it := range items {
		total += it.weight()
	}
	return total
}
