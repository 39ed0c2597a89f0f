package clipper

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(x0, y0, x1, y1 cInt) Path {
	return Path{Pt(x0, y0), Pt(x1, y0), Pt(x1, y1), Pt(x0, y1)}
}

// S1: empty subject and clip intersect to an empty, successful result.
func TestExecuteEmptyIntersection(t *testing.T) {
	c := NewClipper()
	var solution Paths
	ok := c.Execute(Intersection, &solution, EvenOdd, EvenOdd)
	require.True(t, ok)
	assert.Empty(t, solution)
}

// S2: two overlapping 10x10 squares intersect to a 5x5 square.
func TestExecuteSquareIntersection(t *testing.T) {
	c := NewClipper()
	require.True(t, c.AddPath(square(0, 0, 10, 10), Subject, true))
	require.True(t, c.AddPath(Path{Pt(5, 5), Pt(15, 5), Pt(15, 15), Pt(5, 15)}, Clip, true))

	var solution Paths
	ok := c.Execute(Intersection, &solution, EvenOdd, EvenOdd)
	require.True(t, ok)
	require.Len(t, solution, 1)
	assert.InDelta(t, 25.0, Area(solution[0]), 1e-9)

	want := map[IntPoint]bool{Pt(5, 5): true, Pt(10, 5): true, Pt(10, 10): true, Pt(5, 10): true}
	for _, p := range solution[0] {
		assert.True(t, want[p], "unexpected vertex %v", p)
	}
	assert.Len(t, solution[0], 4)
}

// S3: two overlapping right triangles (area 8 each) union to one pentagon,
// (0,0),(4,0),(2,2),(4,4),(0,4), of area 12: 8 + 8 minus their shared
// triangle (0,0),(2,2),(0,4) of area 4.
func TestExecuteUnionOfTriangles(t *testing.T) {
	c := NewClipper()
	require.True(t, c.AddPath(Path{Pt(0, 0), Pt(4, 0), Pt(0, 4)}, Subject, true))
	require.True(t, c.AddPath(Path{Pt(0, 0), Pt(4, 4), Pt(0, 4)}, Clip, true))

	var solution Paths
	ok := c.Execute(Union, &solution, EvenOdd, EvenOdd)
	require.True(t, ok)
	require.Len(t, solution, 1)
	assert.InDelta(t, 12.0, Area(solution[0]), 1e-9)
}

// S4: a 4x4 square cut from the center of a 10x10 square produces one
// root contour with one hole child in PolyTree output.
func TestExecuteTreeDifferenceHole(t *testing.T) {
	c := NewClipper()
	require.True(t, c.AddPath(square(0, 0, 10, 10), Subject, true))
	require.True(t, c.AddPath(square(3, 3, 7, 7), Clip, true))

	var tree PolyTree
	ok := c.ExecuteTree(Difference, &tree, EvenOdd, EvenOdd)
	require.True(t, ok)

	require.Equal(t, 1, tree.ChildCount())
	root := tree.Children[0]
	assert.False(t, root.IsHole())
	assert.InDelta(t, 100.0, Area(root.Contour), 1e-9)

	require.Equal(t, 1, root.ChildCount())
	hole := root.Children[0]
	assert.True(t, hole.IsHole())
	assert.InDelta(t, 16.0, -Area(hole.Contour), 1e-9)
}

// S5: a self-intersecting figure-eight splits into two disjoint triangles
// of total area 8 under EvenOdd fill.
func TestExecuteSelfIntersectingFigureEight(t *testing.T) {
	c := NewClipper()
	require.True(t, c.AddPath(Path{Pt(0, 0), Pt(4, 4), Pt(0, 4), Pt(4, 0)}, Subject, true))

	var solution Paths
	ok := c.Execute(Union, &solution, EvenOdd, EvenOdd)
	require.True(t, ok)
	require.Len(t, solution, 2)

	total := 0.0
	for _, p := range solution {
		total += absFloat(Area(p))
	}
	assert.InDelta(t, 8.0, total, 1e-9)
}

func TestOrientationIdempotence(t *testing.T) {
	p := square(0, 0, 10, 10)
	original := p.Clone()
	ReversePath(p)
	ReversePath(p)
	assert.Equal(t, original, p)
}

func TestAreaSignForClockwisePolygon(t *testing.T) {
	// Under this engine's Y-down convention, this vertex order is the
	// "clockwise on screen" winding and must report a positive area.
	p := square(0, 0, 10, 10)
	assert.Greater(t, Area(p), 0.0)
}

func TestSimplifyIsFixpoint(t *testing.T) {
	figureEight := Path{Pt(0, 0), Pt(4, 4), Pt(0, 4), Pt(4, 0)}
	once := SimplifyPolygon(figureEight, EvenOdd)
	twice := SimplifyPolygons(once, EvenOdd)

	totalOnce, totalTwice := 0.0, 0.0
	for _, p := range once {
		totalOnce += absFloat(Area(p))
	}
	for _, p := range twice {
		totalTwice += absFloat(Area(p))
	}
	assert.InDelta(t, totalOnce, totalTwice, 1e-9)
	assert.Len(t, twice, len(once))
}

func TestUnionIdentity(t *testing.T) {
	p := square(0, 0, 10, 10)

	c := NewClipper()
	require.True(t, c.AddPath(p, Subject, true))
	require.True(t, c.AddPath(p, Clip, true))
	var union Paths
	require.True(t, c.Execute(Union, &union, EvenOdd, EvenOdd))

	simplified := SimplifyPolygon(p, EvenOdd)

	unionArea, simplifiedArea := 0.0, 0.0
	for _, path := range union {
		unionArea += absFloat(Area(path))
	}
	for _, path := range simplified {
		simplifiedArea += absFloat(Area(path))
	}
	assert.InDelta(t, simplifiedArea, unionArea, 1e-9)
}

func TestDifferenceSelfAnnihilation(t *testing.T) {
	p := square(0, 0, 10, 10)

	c := NewClipper()
	require.True(t, c.AddPath(p, Subject, true))
	require.True(t, c.AddPath(p, Clip, true))
	var solution Paths
	require.True(t, c.Execute(Difference, &solution, EvenOdd, EvenOdd))
	assert.Empty(t, solution)
}

func TestXORSymmetry(t *testing.T) {
	a := square(0, 0, 10, 10)
	b := Path{Pt(5, 5), Pt(15, 5), Pt(15, 15), Pt(5, 15)}

	c1 := NewClipper()
	require.True(t, c1.AddPath(a, Subject, true))
	require.True(t, c1.AddPath(b, Clip, true))
	var ab Paths
	require.True(t, c1.Execute(Xor, &ab, EvenOdd, EvenOdd))

	c2 := NewClipper()
	require.True(t, c2.AddPath(b, Subject, true))
	require.True(t, c2.AddPath(a, Clip, true))
	var ba Paths
	require.True(t, c2.Execute(Xor, &ba, EvenOdd, EvenOdd))

	areaAB, areaBA := 0.0, 0.0
	for _, p := range ab {
		areaAB += absFloat(Area(p))
	}
	for _, p := range ba {
		areaBA += absFloat(Area(p))
	}
	assert.InDelta(t, areaAB, areaBA, 1e-9)
	assert.Equal(t, len(ab), len(ba))
}

func TestPointInPolygonTriState(t *testing.T) {
	p := square(0, 0, 10, 10)
	for _, v := range p {
		assert.Equal(t, -1, PointInPolygon(v, p))
	}
	assert.Equal(t, 1, PointInPolygon(Pt(5, 5), p))
	assert.Equal(t, 0, PointInPolygon(Pt(20, 20), p))
}

func TestReentrantExecuteRejected(t *testing.T) {
	c := NewClipper()
	c.executeLocked = true
	var solution Paths
	ok := c.Execute(Union, &solution, EvenOdd, EvenOdd)
	assert.False(t, ok)
	assert.ErrorIs(t, c.LastError(), ErrReentrant)
}

func TestAddPathRejectsOutOfRangeCoordinate(t *testing.T) {
	cb := NewClipperBase()
	bad := Path{Pt(hiRange+1, 0), Pt(0, 10), Pt(10, 10)}
	assert.False(t, cb.AddPath(bad, Subject, true))
}

// randomPoly returns a closed path of vertCnt vertices scattered uniformly
// across a maxWidth x maxHeight window. Vertices are not simplified, so the
// resulting path is typically self-intersecting.
func randomPoly(rng *rand.Rand, maxWidth, maxHeight cInt, vertCnt int) Path {
	p := make(Path, vertCnt)
	for i := range p {
		p[i] = Pt(cInt(rng.Int63n(int64(maxWidth))), cInt(rng.Int63n(int64(maxHeight))))
	}
	return p
}

// areaCombined sums signed areas: outer contours are positive and holes
// negative, so the sum is the area the paths cover.
func areaCombined(paths Paths) float64 {
	total := 0.0
	for _, p := range paths {
		total += Area(p)
	}
	return total
}

// TestRandom is a randomized fuzz check of the fundamental boolean-op
// identity area(union) == area(intersection) + area(xor), run against
// self-intersecting random polygons under EvenOdd fill (spec.md §8).
func TestRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 1000; i++ {
		subj := randomPoly(rng, 640, 480, 100)
		clip := randomPoly(rng, 640, 480, 100)

		c := NewClipper()
		require.True(t, c.AddPath(subj, Subject, true))
		require.True(t, c.AddPath(clip, Clip, true))

		var union, intersection, xor Paths
		require.True(t, c.Execute(Union, &union, EvenOdd, EvenOdd))
		require.True(t, c.Execute(Intersection, &intersection, EvenOdd, EvenOdd))
		require.True(t, c.Execute(Xor, &xor, EvenOdd, EvenOdd))

		unionArea := areaCombined(union)
		splitArea := areaCombined(intersection) + areaCombined(xor)
		if splitArea == 0 {
			assert.Equal(t, 0.0, unionArea, "iteration %d", i)
			continue
		}
		assert.Less(t, math.Abs(unionArea-splitArea)/splitArea, 0.01, "iteration %d", i)
	}
}
