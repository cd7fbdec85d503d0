package wheel

// resolveIndex returns the index of the first range, in item order,
// containing the pointer angle, or -1 for an empty layout.
//
// A valid layout covers the full circle, so a scan always hits; the
// previous index is kept only in the degenerate case where float noise
// at a shared boundary excludes the pointer from every range for one
// frame.
func resolveIndex(pointerAngle float64, ranges []SliceRange, previous int) int {
	if len(ranges) == 0 {
		return -1
	}
	for i, r := range ranges {
		if r.Contains(pointerAngle) {
			return i
		}
	}
	return previous
}
