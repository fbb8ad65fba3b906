package rectangle_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/orkit/rectangle"
)

func twoOverlappingItems(t *testing.T) []rectangle.RectangleInRange {
	t.Helper()
	item, err := rectangle.NewRectangleInRange(rectangle.Rectangle{XMin: 0, XMax: 10, YMin: 0, YMax: 10}, 6, 6)
	require.NoError(t, err)
	return []rectangle.RectangleInRange{item, item}
}

func TestNewProbingRectangleRejectsEmptyInput(t *testing.T) {
	_, err := rectangle.NewProbingRectangle(nil)
	require.ErrorIs(t, err, rectangle.ErrEmptyInput)
}

// TestProbingRectangleShrinksThroughItemBreakpoints covers E5's setup by
// shrinking the probe one interesting coordinate at a time and checking
// that MinimumEnergy matches a direct from-scratch recomputation, and that
// it strictly decreases at least once along the way (the two items'
// breakpoints for x_size=y_size=6 over a {0,10,0,10} range are {0,4,6,10}
// on each axis, so shrinking to {4,6,4,6} must lower the mandatory overlap
// below the full-box value).
func TestProbingRectangleShrinksThroughItemBreakpoints(t *testing.T) {
	p, err := rectangle.NewProbingRectangle(twoOverlappingItems(t))
	require.NoError(t, err)
	require.NoError(t, p.ValidateInvariants())

	initial := p.MinimumEnergy()
	require.Equal(t, int64(72), initial) // two items, each 6x6 fully mandatory in the 10x10 box

	for _, e := range []rectangle.Edge{rectangle.EdgeLeft, rectangle.EdgeRight, rectangle.EdgeBottom, rectangle.EdgeTop} {
		require.True(t, p.CanShrink(e))
		require.NoError(t, p.Shrink(e))
		require.NoError(t, p.ValidateInvariants())
	}
	require.Equal(t, rectangle.Rectangle{XMin: 4, XMax: 6, YMin: 4, YMax: 6}, p.Probe())
	require.Less(t, p.MinimumEnergy(), initial)
}

func TestProbingRectangleShrinkToConflictProbe(t *testing.T) {
	p, err := rectangle.NewProbingRectangle(twoOverlappingItems(t))
	require.NoError(t, err)

	for p.MinimumEnergy() > 0 {
		shrunk := false
		for _, e := range []rectangle.Edge{rectangle.EdgeLeft, rectangle.EdgeBottom, rectangle.EdgeRight, rectangle.EdgeTop} {
			if p.CanShrink(e) {
				require.NoError(t, p.Shrink(e))
				require.NoError(t, p.ValidateInvariants())
				shrunk = true
				break
			}
		}
		if !shrunk {
			break
		}
	}
}

func TestProbingRectangleCannotShrinkPastOpposite(t *testing.T) {
	item, err := rectangle.NewRectangleInRange(rectangle.Rectangle{XMin: 0, XMax: 2, YMin: 0, YMax: 2}, 2, 2)
	require.NoError(t, err)
	p, err := rectangle.NewProbingRectangle([]rectangle.RectangleInRange{item})
	require.NoError(t, err)

	// A single item exactly filling its bounding box has no interior
	// coordinate strictly between its min and max on either axis.
	require.False(t, p.CanShrink(rectangle.EdgeLeft))
	require.False(t, p.CanShrink(rectangle.EdgeRight))
	require.False(t, p.CanShrink(rectangle.EdgeBottom))
	require.False(t, p.CanShrink(rectangle.EdgeTop))
	require.ErrorIs(t, p.Shrink(rectangle.EdgeLeft), rectangle.ErrCannotShrink)
}

func TestProbingRectangleDeltaEnergyNonNegative(t *testing.T) {
	p, err := rectangle.NewProbingRectangle(twoOverlappingItems(t))
	require.NoError(t, err)

	for _, e := range []rectangle.Edge{rectangle.EdgeLeft, rectangle.EdgeBottom, rectangle.EdgeRight, rectangle.EdgeTop} {
		if p.CanShrink(e) {
			require.GreaterOrEqual(t, p.DeltaEnergy(e), int64(0))
		}
	}
}
