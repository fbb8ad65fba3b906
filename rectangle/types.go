// Package rectangle detects axis-aligned regions of the plane where a set
// of movable rectangular items is jointly over-constrained: the minimum
// area every item is guaranteed to occupy inside the region, summed across
// items, exceeds the region's own area. No placement of the items can then
// satisfy the region, which is exactly the infeasibility certificate a
// no-overlap scheduling propagator needs.
//
// Three pieces do the work: Rectangle/RectangleInRange primitives (mandatory
// 1D/2D intersection under a placement range), a sweep-line routine that
// finds a spanning set of pairwise rectangle intersections, and
// ProbingRectangle, which tracks the mandatory energy of a shrinking probe
// rectangle so EnergyConflictSearch can walk from the full bounding box
// down to a witness conflict. The sweep keeps its active y-intervals in a
// sorted slice scanned linearly on every event, so it does not reach
// O((n+k) log n). ProbingRectangle re-sums every item's contribution on
// each Shrink and each DeltaEnergy query (O(items) per call); it does not
// update the energy incrementally.
package rectangle

import (
	"errors"
	"fmt"
)

// Sentinel errors for rectangle operations.
var (
	// ErrInvalidRectangle indicates XMin > XMax or YMin > YMax, or a
	// zero-area rectangle passed to an entry point that requires positive
	// area (FindPartialRectangleIntersections).
	ErrInvalidRectangle = fmt.Errorf("rectangle: %w", errInvalidRectangle)
	errInvalidRectangle = errors.New("min exceeds max on some axis")

	// ErrSizeExceedsRange indicates an item's fixed size exceeds its
	// bounding range on some axis, so no placement exists at all.
	ErrSizeExceedsRange = fmt.Errorf("rectangle: %w", errSizeExceedsRange)
	errSizeExceedsRange = errors.New("item size exceeds its bounding range")

	// ErrEmptyInput indicates an operation that requires at least one
	// rectangle was called with none.
	ErrEmptyInput = fmt.Errorf("rectangle: %w", errEmptyInput)
	errEmptyInput = errors.New("no rectangles given")

	// ErrInvariant indicates a debug-mode invariant check failed.
	ErrInvariant = fmt.Errorf("rectangle: %w", errInvariant)
	errInvariant = errors.New("invariant violation")
)

// Rectangle is an axis-aligned box, closed on all sides. Zero-area
// rectangles (a line if exactly one size is zero, a point if both are) are
// permitted here; some entry points reject them explicitly.
type Rectangle struct {
	XMin, XMax int64
	YMin, YMax int64
}

// SizeX returns the rectangle's width.
func (r Rectangle) SizeX() int64 { return r.XMax - r.XMin }

// SizeY returns the rectangle's height.
func (r Rectangle) SizeY() int64 { return r.YMax - r.YMin }

// Area returns the rectangle's area. Coordinates, sizes, areas and the
// energies summed from them are all int64; neither this product nor those
// sums are checked for overflow (see DESIGN.md for the open question this
// resolves).
func (r Rectangle) Area() int64 { return r.SizeX() * r.SizeY() }

// IsPoint reports whether the rectangle has zero size on both axes.
func (r Rectangle) IsPoint() bool { return r.SizeX() == 0 && r.SizeY() == 0 }

// IsHorizontalLine reports whether the rectangle has zero height and
// positive width.
func (r Rectangle) IsHorizontalLine() bool { return r.SizeY() == 0 && r.SizeX() > 0 }

// IsVerticalLine reports whether the rectangle has zero width and positive
// height.
func (r Rectangle) IsVerticalLine() bool { return r.SizeX() == 0 && r.SizeY() > 0 }

// HasPositiveArea reports whether both sizes are strictly positive.
func (r Rectangle) HasPositiveArea() bool { return r.SizeX() > 0 && r.SizeY() > 0 }

// Validate reports ErrInvalidRectangle if XMin > XMax or YMin > YMax.
func (r Rectangle) Validate() error {
	if r.XMin > r.XMax || r.YMin > r.YMax {
		return ErrInvalidRectangle
	}
	return nil
}

// RectangleInRange is an axis-aligned item of fixed size (XSize, YSize)
// that may be translated anywhere its bounding box stays inside
// BoundingArea.
type RectangleInRange struct {
	BoundingArea Rectangle
	XSize, YSize int64
}

// NewRectangleInRange validates that the item's size fits its bounding
// range on both axes before returning it.
func NewRectangleInRange(boundingArea Rectangle, xSize, ySize int64) (RectangleInRange, error) {
	if err := boundingArea.Validate(); err != nil {
		return RectangleInRange{}, err
	}
	if xSize < 0 || ySize < 0 || xSize > boundingArea.SizeX() || ySize > boundingArea.SizeY() {
		return RectangleInRange{}, ErrSizeExceedsRange
	}
	return RectangleInRange{BoundingArea: boundingArea, XSize: xSize, YSize: ySize}, nil
}
