package rectangle

// IsDisjoint reports whether a and b share no interior point on at least
// one axis, using the touching-only-is-disjoint convention: rectangles that
// share only a boundary edge or corner are disjoint.
func IsDisjoint(a, b Rectangle) bool {
	return a.XMax <= b.XMin || b.XMax <= a.XMin || a.YMax <= b.YMin || b.YMax <= a.YMin
}

// Intersect returns the overlap of a and b, or (Rectangle{}, false) if they
// are disjoint under IsDisjoint's touching-is-disjoint convention.
func Intersect(a, b Rectangle) (Rectangle, bool) {
	if IsDisjoint(a, b) {
		return Rectangle{}, false
	}
	return Rectangle{
		XMin: maxInt64(a.XMin, b.XMin),
		XMax: minInt64(a.XMax, b.XMax),
		YMin: maxInt64(a.YMin, b.YMin),
		YMax: minInt64(a.YMax, b.YMax),
	}, true
}

// RegionDifference partitions a \ b into up to four axis-aligned rectangles,
// in the order left, right, bottom, top of the intersecting band. If a and
// b have zero overlap on either axis, a is returned unchanged.
func RegionDifference(a, b Rectangle) []Rectangle {
	xMin, xMax := maxInt64(a.XMin, b.XMin), minInt64(a.XMax, b.XMax)
	yMin, yMax := maxInt64(a.YMin, b.YMin), minInt64(a.YMax, b.YMax)
	if xMin >= xMax || yMin >= yMax {
		return []Rectangle{a}
	}

	var out []Rectangle
	if xMin > a.XMin {
		out = append(out, Rectangle{a.XMin, xMin, a.YMin, a.YMax})
	}
	if xMax < a.XMax {
		out = append(out, Rectangle{xMax, a.XMax, a.YMin, a.YMax})
	}
	if yMin > a.YMin {
		out = append(out, Rectangle{xMin, xMax, a.YMin, yMin})
	}
	if yMax < a.YMax {
		out = append(out, Rectangle{xMin, xMax, yMax, a.YMax})
	}

	return out
}

// PavedRegionDifference subtracts every rectangle in B from every rectangle
// in A, iteratively, producing a partitioning of (union A) \ (union B).
func PavedRegionDifference(A, B []Rectangle) []Rectangle {
	var result []Rectangle
	for _, a := range A {
		pieces := []Rectangle{a}
		for _, b := range B {
			var next []Rectangle
			for _, p := range pieces {
				next = append(next, RegionDifference(p, b)...)
			}
			pieces = next
		}
		result = append(result, pieces...)
	}

	return result
}

// smallest1DIntersection computes the minimum guaranteed 1D overlap of a
// fixed-size item, free to translate within [rangeMin, rangeMax], against a
// probe interval [ivMin, ivMax]. Because the overlap length is a concave
// (tent-shaped) function of the item's position, its minimum over all
// feasible positions is attained at one of the two extreme placements
// (leftmost or rightmost), so only those two need to be evaluated.
func smallest1DIntersection(rangeMin, rangeMax, size, ivMin, ivMax int64) int64 {
	overlapAt := func(pos int64) int64 {
		lo, hi := pos, pos+size
		a, b := maxInt64(lo, ivMin), minInt64(hi, ivMax)
		if b < a {
			return 0
		}
		return b - a
	}
	leftmost := overlapAt(rangeMin)
	rightmost := overlapAt(rangeMax - size)
	result := minInt64(leftmost, rightmost)
	if result < 0 {
		return 0
	}
	return result
}

// GetMinimumIntersectionLengths returns the guaranteed 1D overlap of the
// item with probe on the X and Y axes independently.
func (r RectangleInRange) GetMinimumIntersectionLengths(probe Rectangle) (dx, dy int64) {
	dx = smallest1DIntersection(r.BoundingArea.XMin, r.BoundingArea.XMax, r.XSize, probe.XMin, probe.XMax)
	dy = smallest1DIntersection(r.BoundingArea.YMin, r.BoundingArea.YMax, r.YSize, probe.YMin, probe.YMax)
	return dx, dy
}

// GetMinimumIntersectionArea returns the mandatory intersection area of the
// item with probe: the minimum area every feasible placement of the item is
// guaranteed to overlap probe by.
func (r RectangleInRange) GetMinimumIntersectionArea(probe Rectangle) int64 {
	dx, dy := r.GetMinimumIntersectionLengths(probe)
	return dx * dy
}

func maxInt64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

func minInt64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
