package rectangle

import (
	"sort"
	"strconv"

	"github.com/katalvlaran/orkit/core"
	"github.com/katalvlaran/orkit/prim_kruskal"
)

// yInterval is one disjoint sub-interval of the active y-range maintained
// by the sweep, carrying the index of the one rectangle it is currently
// attributed to.
type yInterval struct {
	yMin, yMax int64
	idx        int
}

// sweepState tracks the ordered set of disjoint y-sub-intervals as the
// sweep advances in x. It is kept as a slice sorted by yMin rather than a
// balanced tree: the retrieval pack carries no ordered-map/tree-set library
// for Go, so this trades the sweep's target O((n+k) log n) bound for a
// simpler O(n) per-event scan, which is still exact (see DESIGN.md).
type sweepState struct {
	intervals []yInterval
}

func (s *sweepState) overlapping(yMin, yMax int64) (start, end int) {
	start, end = -1, -1
	for i, iv := range s.intervals {
		if iv.yMax <= yMin || iv.yMin >= yMax {
			continue
		}
		if start == -1 {
			start = i
		}
		end = i + 1
	}
	return start, end
}

// begin processes a rectangle's begin event, emitting a pair for every
// interval it overlaps and re-partitioning the affected y-range.
func (s *sweepState) begin(idx int, yMin, yMax int64, xMaxOf func(int) int64, emit func(a, b int)) {
	start, end := s.overlapping(yMin, yMax)
	var olds []yInterval
	if start != -1 {
		olds = append(olds, s.intervals[start:end]...)
		s.intervals = append(s.intervals[:start], s.intervals[end:]...)
	}

	var added []yInterval
	cursor := yMin
	for _, old := range olds {
		if old.yMin > cursor {
			added = append(added, yInterval{cursor, old.yMin, idx})
		}
		emit(idx, old.idx)

		if old.yMin < yMin {
			added = append(added, yInterval{old.yMin, yMin, old.idx})
		}
		midLo, midHi := maxInt64(old.yMin, yMin), minInt64(old.yMax, yMax)
		middleIdx := old.idx
		if xMaxOf(idx) > xMaxOf(old.idx) {
			middleIdx = idx
		}
		if midHi > midLo {
			added = append(added, yInterval{midLo, midHi, middleIdx})
		}
		if old.yMax > yMax {
			added = append(added, yInterval{yMax, old.yMax, old.idx})
		}
		cursor = maxInt64(cursor, old.yMax)
	}
	if cursor < yMax {
		added = append(added, yInterval{cursor, yMax, idx})
	}

	s.intervals = append(s.intervals, added...)
	sort.Slice(s.intervals, func(i, j int) bool { return s.intervals[i].yMin < s.intervals[j].yMin })
}

// end removes every sub-interval within [yMin, yMax] still attributed to
// idx: the rectangle is leaving the sweep and no longer represents any
// y-range.
func (s *sweepState) end(idx int, yMin, yMax int64) {
	out := s.intervals[:0]
	for _, iv := range s.intervals {
		if iv.idx == idx && iv.yMin >= yMin && iv.yMax <= yMax {
			continue
		}
		out = append(out, iv)
	}
	s.intervals = out
}

type sweepEvent struct {
	x     int64
	isEnd bool
	idx   int
}

// FindPartialRectangleIntersections enumerates a set of index pairs over
// rects, all of which must have positive area, such that treating the
// pairs as edges connects any two rectangles that lie in the same
// connected component of the true pairwise-intersection graph. The result
// is not necessarily every intersecting pair: it is a spanning forest of
// that connectivity graph, produced by reducing the sweep's raw candidate
// pairs through a minimum-spanning-tree pass.
func FindPartialRectangleIntersections(rects []Rectangle) ([][2]int, error) {
	for _, r := range rects {
		if !r.HasPositiveArea() {
			return nil, ErrInvalidRectangle
		}
	}
	if len(rects) == 0 {
		return nil, nil
	}

	events := make([]sweepEvent, 0, 2*len(rects))
	for i, r := range rects {
		events = append(events, sweepEvent{x: r.XMin, isEnd: false, idx: i})
		events = append(events, sweepEvent{x: r.XMax, isEnd: true, idx: i})
	}
	sort.Slice(events, func(i, j int) bool {
		if events[i].x != events[j].x {
			return events[i].x < events[j].x
		}
		if events[i].isEnd != events[j].isEnd {
			return events[i].isEnd // end before begin
		}
		return events[i].idx < events[j].idx
	})

	type pairKey struct{ a, b int }
	seen := make(map[pairKey]bool)
	var rawPairs [][2]int
	emit := func(a, b int) {
		if a == b {
			return
		}
		if a > b {
			a, b = b, a
		}
		k := pairKey{a, b}
		if seen[k] {
			return
		}
		seen[k] = true
		rawPairs = append(rawPairs, [2]int{a, b})
	}
	xMaxOf := func(i int) int64 { return rects[i].XMax }

	state := &sweepState{}
	for _, ev := range events {
		r := rects[ev.idx]
		if ev.isEnd {
			state.end(ev.idx, r.YMin, r.YMax)
		} else {
			state.begin(ev.idx, r.YMin, r.YMax, xMaxOf, emit)
		}
	}

	return spanningForestOf(len(rects), rawPairs)
}

// spanningForestOf reduces an arbitrary edge list over n indices to a
// spanning forest of its connectivity graph, using the kept-and-adapted
// prim_kruskal package rather than a hand-rolled union-find: rectangle
// indices become string vertex IDs on an undirected weighted core.Graph,
// and prim_kruskal.KruskalForest (Kruskal generalized to tolerate
// disconnected input) produces the reduced arc set. Edge weights are all 1;
// only connectivity matters here, not a genuine minimum spanning tree.
func spanningForestOf(n int, pairs [][2]int) ([][2]int, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	g := core.NewGraph(core.WithWeighted())
	added := make(map[int]bool, n)
	ensure := func(idx int) {
		if !added[idx] {
			added[idx] = true
			_ = g.AddVertex(strconv.Itoa(idx))
		}
	}
	for _, p := range pairs {
		ensure(p[0])
		ensure(p[1])
		if _, err := g.AddEdge(strconv.Itoa(p[0]), strconv.Itoa(p[1]), 1); err != nil {
			return nil, err
		}
	}

	forest, _, err := prim_kruskal.KruskalForest(g)
	if err != nil {
		return nil, err
	}

	out := make([][2]int, 0, len(forest))
	for _, e := range forest {
		u, errU := strconv.Atoi(e.From)
		v, errV := strconv.Atoi(e.To)
		if errU != nil || errV != nil {
			continue
		}
		out = append(out, [2]int{u, v})
	}

	return out, nil
}

// rectClass buckets a rectangle by its degeneracy for
// FindPartialRectangleIntersectionsAlsoEmpty.
type rectClass int

const (
	classPositiveArea rectClass = iota
	classHorizontalLine
	classVerticalLine
	classPoint
)

func classify(r Rectangle) rectClass {
	switch {
	case r.HasPositiveArea():
		return classPositiveArea
	case r.IsHorizontalLine():
		return classHorizontalLine
	case r.IsVerticalLine():
		return classVerticalLine
	default:
		return classPoint
	}
}

// FindPartialRectangleIntersectionsAlsoEmpty is FindPartialRectangleIntersections
// generalized to accept degenerate (zero-area) rectangles. Rectangles are
// split into positive-area, horizontal-line, vertical-line, and point
// groups; the sweep runs only on the positive-area group; then intersection
// arcs are added directly (O(n*k), no sweep) for every
// (positive-area x line), (positive-area x point), and (horizontal x
// vertical) pair that actually overlaps. Pure line/line pairs sharing an
// axis and pure point/point pairs are never considered, since no group
// above enumerates them. The combined arc set is then reduced to a
// spanning forest exactly as in FindPartialRectangleIntersections.
func FindPartialRectangleIntersectionsAlsoEmpty(rects []Rectangle) ([][2]int, error) {
	if len(rects) == 0 {
		return nil, nil
	}

	var positive, horizontal, vertical, points []int
	for i, r := range rects {
		switch classify(r) {
		case classPositiveArea:
			positive = append(positive, i)
		case classHorizontalLine:
			horizontal = append(horizontal, i)
		case classVerticalLine:
			vertical = append(vertical, i)
		case classPoint:
			points = append(points, i)
		}
	}

	positiveRects := make([]Rectangle, len(positive))
	for i, idx := range positive {
		positiveRects[i] = rects[idx]
	}

	var rawPairs [][2]int
	if len(positiveRects) > 0 {
		localPairs, err := FindPartialRectangleIntersections(positiveRects)
		if err != nil {
			return nil, err
		}
		for _, p := range localPairs {
			rawPairs = append(rawPairs, [2]int{positive[p[0]], positive[p[1]]})
		}
	}

	addCross := func(groupA, groupB []int) {
		for _, a := range groupA {
			for _, b := range groupB {
				if !IsDisjoint(rects[a], rects[b]) {
					rawPairs = append(rawPairs, [2]int{a, b})
				}
			}
		}
	}
	lines := append(append([]int{}, horizontal...), vertical...)
	addCross(positive, lines)
	addCross(positive, points)
	addCross(horizontal, vertical)

	return spanningForestOf(len(rects), rawPairs)
}
