package clipper

import "math"

// horizontal is the sentinel dx value assigned to horizontal edges.
var horizontal = math.Inf(-1)

// slopesEqual3 reports whether pt1, pt2, pt3 are collinear using ordinary
// 64-bit arithmetic. Callers must have already established the coordinates
// are within loRange, or must fall back to bigSlopesEqual3.
func slopesEqual3(pt1, pt2, pt3 IntPoint) bool {
	return (pt1.Y-pt2.Y)*(pt2.X-pt3.X) == (pt1.X-pt2.X)*(pt2.Y-pt3.Y)
}

// slopesEqual4 reports whether segments (pt1,pt2) and (pt3,pt4) are
// parallel using ordinary 64-bit arithmetic.
func slopesEqual4(pt1, pt2, pt3, pt4 IntPoint) bool {
	return (pt1.Y-pt2.Y)*(pt3.X-pt4.X) == (pt1.X-pt2.X)*(pt3.Y-pt4.Y)
}

// slopesEqualPts reports whether pt1, pt2, pt3 are collinear, dispatching to
// the extended-precision path when any coordinate could overflow a 64-bit
// cross product.
func slopesEqualPts(pt1, pt2, pt3 IntPoint) bool {
	if abs64(pt1.X)|abs64(pt1.Y)|abs64(pt2.X)|abs64(pt2.Y)|abs64(pt3.X)|abs64(pt3.Y) > loRange {
		return bigSlopesEqual3(pt1, pt2, pt3)
	}
	return slopesEqual3(pt1, pt2, pt3)
}

// slopesEqualSegs reports whether segments (pt1,pt2) and (pt3,pt4) are
// parallel, dispatching to the extended-precision path as needed.
func slopesEqualSegs(pt1, pt2, pt3, pt4 IntPoint) bool {
	if abs64(pt1.X)|abs64(pt1.Y)|abs64(pt2.X)|abs64(pt2.Y)|abs64(pt3.X)|abs64(pt3.Y)|abs64(pt4.X)|abs64(pt4.Y) > loRange {
		return bigSlopesEqual4(pt1, pt2, pt3, pt4)
	}
	return slopesEqual4(pt1, pt2, pt3, pt4)
}

func slopesEqualEdges(e1, e2 *tEdge) bool {
	return slopesEqualSegs(e1.Bot, e1.Top, e2.Bot, e2.Top)
}

func abs64(v cInt) cInt {
	if v < 0 {
		return -v
	}
	return v
}

// localMinimum is a Y coordinate plus the left-bound and right-bound edges
// that originate there (spec.md §3, "LocalMinimum").
type localMinimum struct {
	y                    cInt
	leftBound, rightBound *tEdge
}

// tEdge is the internal doubly-linked edge record built by the preprocessor
// for every input segment (spec.md §3, "TEdge").
type tEdge struct {
	Bot, Curr, Top IntPoint
	Dx             float64

	PolyTyp   PolyType
	Side      edgeSide
	WindDelta int
	WindCnt   int
	WindCnt2  int
	OutIdx    int

	Next, Prev *tEdge // ring around the input path
	NextInLML  *tEdge

	PrevInAEL, NextInAEL *tEdge
	PrevInSEL, NextInSEL *tEdge
}

const unassigned = -1 // OutIdx sentinel meaning "not yet contributing"
const skip = -2        // OutIdx sentinel meaning "never contributes" (open-path helper edges)

func newEdge() *tEdge {
	return &tEdge{OutIdx: unassigned}
}

func (e *tEdge) setDx() {
	e.Dx = 0
	dy := e.Top.Y - e.Bot.Y
	if dy == 0 {
		e.Dx = horizontal
	} else {
		e.Dx = float64(e.Top.X-e.Bot.X) / float64(dy)
	}
}

func (e *tEdge) isHorizontal() bool { return e.Dx == horizontal }

// topX returns e's current-x at the given Y, extrapolating along its slope.
func topX(e *tEdge, currentY cInt) cInt {
	if currentY == e.Top.Y {
		return e.Top.X
	}
	if e.Top.X == e.Bot.X {
		return e.Bot.X
	}
	return e.Bot.X + round64(e.Dx*float64(currentY-e.Bot.Y))
}

func round64(v float64) cInt {
	if v < 0 {
		return cInt(v - 0.5)
	}
	return cInt(v + 0.5)
}

func swapSides(e1, e2 *tEdge) {
	e1.Side, e2.Side = e2.Side, e1.Side
}

func swapPolyIndexes(e1, e2 *tEdge) {
	e1.OutIdx, e2.OutIdx = e2.OutIdx, e1.OutIdx
}

func isIntermediate(e *tEdge, y cInt) bool {
	return e.Top.Y == y && e.NextInLML != nil
}

func isMaximaEdge(e *tEdge, y cInt) bool {
	return e.Top.Y == y && e.NextInLML == nil
}

// getMaximaPairEx returns the edge next to e in its polygon ring (Next is
// checked before Prev) that ends at e's Top and has no successor edge. It
// returns nil when there is none, when that edge is skipped, or when it is
// not horizontal and not in the AEL.
func getMaximaPairEx(e *tEdge) *tEdge {
	var result *tEdge
	if e.Next.Top.Equals(e.Top) && e.Next.NextInLML == nil {
		result = e.Next
	} else if e.Prev.Top.Equals(e.Top) && e.Prev.NextInLML == nil {
		result = e.Prev
	}
	if result != nil && (result.OutIdx == skip ||
		(result.NextInAEL == result.PrevInAEL && !result.isHorizontal())) {
		return nil
	}
	return result
}
