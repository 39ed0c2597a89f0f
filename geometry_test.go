package clipper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAreaTriangle(t *testing.T) {
	p := Path{Pt(0, 0), Pt(4, 0), Pt(0, 4)}
	assert.InDelta(t, 8.0, Area(p), 1e-9)
}

func TestAreaDegenerate(t *testing.T) {
	assert.Equal(t, 0.0, Area(Path{Pt(0, 0), Pt(1, 1)}))
	assert.Equal(t, 0.0, Area(nil))
}

func TestReversePathsReversesEveryPath(t *testing.T) {
	a := Path{Pt(0, 0), Pt(1, 0), Pt(1, 1)}
	b := Path{Pt(0, 0), Pt(2, 0), Pt(2, 2)}
	ps := Paths{a.Clone(), b.Clone()}
	ReversePaths(ps)
	assert.Equal(t, Path{Pt(1, 1), Pt(1, 0), Pt(0, 0)}, ps[0])
	assert.Equal(t, Path{Pt(2, 2), Pt(2, 0), Pt(0, 0)}, ps[1])
}

func TestCleanPolygonRemovesNearDuplicates(t *testing.T) {
	p := Path{Pt(0, 0), Pt(0, 0), Pt(100, 0), Pt(100, 100), Pt(0, 100)}
	cleaned := CleanPolygon(p, 0)
	assert.Len(t, cleaned, 4)
}

func TestCleanPolygonRemovesNearCollinearVertex(t *testing.T) {
	p := Path{Pt(0, 0), Pt(50, 0), Pt(100, 0), Pt(100, 100), Pt(0, 100)}
	cleaned := CleanPolygon(p, 1.0)
	assert.Len(t, cleaned, 4)
}

func TestMinkowskiSumOfSquareAndSegment(t *testing.T) {
	unitSquare := Path{Pt(-1, -1), Pt(1, -1), Pt(1, 1), Pt(-1, 1)}
	path := Path{Pt(0, 0), Pt(10, 0)}
	sum := MinkowskiSum(unitSquare, path, false)
	require := assert.New(t)
	require.NotEmpty(sum)
	total := 0.0
	for _, p := range sum {
		total += absFloat(Area(p))
	}
	require.Greater(total, 0.0)
}

func TestPolyTreeToPathsIncludesOpenAndClosed(t *testing.T) {
	tree := &PolyTree{}
	closedNode := tree.newNode()
	closedNode.Contour = square(0, 0, 10, 10)
	tree.addChild(closedNode)

	openNode := tree.newNode()
	openNode.Contour = Path{Pt(0, 0), Pt(5, 5)}
	openNode.isOpen = true
	tree.addChild(openNode)

	all := PolyTreeToPaths(tree)
	assert.Len(t, all, 2)

	closedOnly := ClosedPathsFromPolyTree(tree)
	assert.Len(t, closedOnly, 1)

	openOnly := OpenPathsFromPolyTree(tree)
	assert.Len(t, openOnly, 1)
}
