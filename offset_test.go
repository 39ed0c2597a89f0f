package clipper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// S6: offsetting a unit square by +1 with round joins yields one closed
// path whose area approximates the Minkowski-inflated shape and whose
// vertex count reflects the round-join arc segmentation.
func TestOffsetUnitSquareRound(t *testing.T) {
	co := NewClipperOffset(2.0, 0.25)
	unitSquare := Path{Pt(0, 0), Pt(1, 0), Pt(1, 1), Pt(0, 1)}
	co.AddPath(unitSquare, JoinRound, EndClosedPolygon)

	var solution Paths
	co.Execute(&solution, 1.0)
	require.Len(t, solution, 1)

	area := absFloat(Area(solution[0]))
	want := 4*2 + 3.141592653589793
	assert.InDelta(t, want, area, 1.0)

	n := len(solution[0])
	assert.GreaterOrEqual(t, n, 16)
	assert.LessOrEqual(t, n, 32)
}

func TestOffsetRoundTripApproximatesOriginal(t *testing.T) {
	p := Path{Pt(0, 0), Pt(20, 0), Pt(20, 20), Pt(0, 20)}

	grown := NewClipperOffset(2.0, 0.1)
	grown.AddPath(p, JoinRound, EndClosedPolygon)
	var expanded Paths
	grown.Execute(&expanded, 5.0)
	require.Len(t, expanded, 1)

	shrunk := NewClipperOffset(2.0, 0.1)
	shrunk.AddPath(expanded[0], JoinRound, EndClosedPolygon)
	var restored Paths
	shrunk.Execute(&restored, -5.0)
	require.Len(t, restored, 1)

	original := absFloat(Area(p))
	roundTripped := absFloat(Area(restored[0]))
	assert.InDelta(t, original, roundTripped, original*0.05)
}

func TestOffsetZeroDeltaReturnsClosedPolygonsUnchanged(t *testing.T) {
	co := NewClipperOffset(2.0, 0.25)
	p := square(0, 0, 10, 10)
	co.AddPath(p, JoinSquare, EndClosedPolygon)

	var solution Paths
	co.Execute(&solution, 0)
	require.Len(t, solution, 1)
	assert.InDelta(t, 100.0, absFloat(Area(solution[0])), 1e-9)
}

func TestOffsetOpenPathSquareEndsGrowsALine(t *testing.T) {
	co := NewClipperOffset(2.0, 0.25)
	line := Path{Pt(0, 0), Pt(10, 0)}
	co.AddPath(line, JoinSquare, EndOpenSquare)

	var solution Paths
	co.Execute(&solution, 1.0)
	require.Len(t, solution, 1)
	assert.InDelta(t, 12*2, absFloat(Area(solution[0])), 1.0)
}
