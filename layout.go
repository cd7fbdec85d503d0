package wheel

// SliceRange is the half-open angular interval [Start, End) occupied by
// one item, in degrees. Ranges are expressed in the rotated frame: they
// accumulate from the wheel's current rotation and are normalized into
// [0, 360) only when membership is tested.
type SliceRange struct {
	Start, End float64
}

// Size returns the angular extent of the range in degrees.
func (r SliceRange) Size() float64 {
	return r.End - r.Start
}

// Center returns the angle at the middle of the range.
func (r SliceRange) Center() float64 {
	return r.Start + (r.End-r.Start)/2
}

// Contains reports whether the given angle falls inside the range on
// the circular domain. Start is inclusive, End exclusive.
func (r SliceRange) Contains(angle float64) bool {
	return IsBetween(Normalize(angle), Normalize(r.Start), Normalize(r.End))
}

// layoutSlices partitions the circle into one range per item, each
// proportional to the item's weight share, accumulating from
// baseRotation. With more than one item the last range's End is forced
// to ranges[0].Start + 360 so the layout closes exactly despite
// accumulated float error. Items must already be validated.
func layoutSlices(items []Item, baseRotation float64) []SliceRange {
	if len(items) == 0 {
		return nil
	}
	total := totalWeight(items)
	ranges := make([]SliceRange, 0, len(items))
	start := baseRotation
	for _, it := range items {
		end := start + 360*it.weight()/total
		ranges = append(ranges, SliceRange{Start: start, End: end})
		start = end
	}
	if len(ranges) > 1 {
		ranges[len(ranges)-1].End = ranges[0].Start + 360
	}
	return ranges
}
