package clipper

// outPt is one vertex in an OutRec's circular doubly-linked output ring
// (spec.md §3, "OutRec / OutPt").
type outPt struct {
	Idx            int
	Pt             IntPoint
	PrevOp, NextOp *outPt
}

// outRec is an output ring under construction; each surviving OutRec becomes
// one closed path (or, for open input, one polyline) in the result
// (spec.md §3, "OutRec / OutPt").
type outRec struct {
	Idx       int
	BottomPt  *outPt
	IsHole    bool
	IsOpen    bool
	FirstLeft *outRec
	Pts       *outPt
	PolyNode  *PolyNode
}

// join is a deferred edge-pair join: two OutPt references plus an offset
// point used to disambiguate collinear horizontal overlaps
// (spec.md §3, "Join / GhostJoin").
type join struct {
	OutPt1, OutPt2 *outPt
	OffPt          IntPoint
}

func pointCount(pts *outPt) int {
	if pts == nil {
		return 0
	}
	n := 0
	p := pts
	for {
		n++
		p = p.NextOp
		if p == pts {
			break
		}
	}
	return n
}

func pointIsVertex(pt IntPoint, pp *outPt) bool {
	op := pp
	for {
		if op.Pt.Equals(pt) {
			return true
		}
		op = op.NextOp
		if op == pp {
			return false
		}
	}
}

func reversePolyPtLinks(pp *outPt) {
	if pp == nil {
		return
	}
	pp1 := pp
	for {
		pp2 := pp1.NextOp
		pp1.NextOp = pp1.PrevOp
		pp1.PrevOp = pp2
		pp1 = pp2
		if pp1 == pp {
			break
		}
	}
}

func disposeOutPts(pp *outPt) {
	if pp == nil {
		return
	}
	pp.PrevOp.NextOp = nil
	for pp != nil {
		tmp := pp
		pp = pp.NextOp
		tmp.PrevOp = nil
		tmp.NextOp = nil
	}
}

// pointOnLineSegment reports whether pt lies on the closed segment
// [linePt1, linePt2].
func pointOnLineSegment(pt, linePt1, linePt2 IntPoint) bool {
	return (pt.X == linePt1.X && pt.Y == linePt1.Y) ||
		(pt.X == linePt2.X && pt.Y == linePt2.Y) ||
		(((pt.X > linePt1.X) == (pt.X < linePt2.X)) &&
			((pt.Y > linePt1.Y) == (pt.Y < linePt2.Y)) &&
			((pt.X-linePt1.X)*(linePt2.Y-linePt1.Y) == (linePt2.X-linePt1.X)*(pt.Y-linePt1.Y)))
}

func pointOnPolygon(pt IntPoint, pp *outPt) bool {
	p := pp
	for {
		if pointOnLineSegment(pt, p.Pt, p.NextOp.Pt) {
			return true
		}
		p = p.NextOp
		if p == pp {
			return false
		}
	}
}

// poly2ContainsPoly1 reports whether the ring rooted at outPt1 lies inside
// the ring rooted at outPt2, walking past any shared boundary points.
func poly2ContainsPoly1(outPt1, outPt2 *outPt) bool {
	op := outPt1
	for {
		res := PointInPolygon(op.Pt, outPtsToPath(outPt2))
		if res >= 0 {
			return res > 0
		}
		op = op.NextOp
		if op == outPt1 {
			return true
		}
	}
}

func outPtsToPath(pp *outPt) Path {
	n := pointCount(pp)
	path := make(Path, 0, n)
	p := pp
	for i := 0; i < n; i++ {
		path = append(path, p.Pt)
		p = p.NextOp
	}
	return path
}

func getOverlapSegment(pt1a, pt1b, pt2a, pt2b IntPoint) (IntPoint, IntPoint, bool) {
	// precondition: all four points are collinear.
	if abs64(pt1a.X-pt1b.X) > abs64(pt1a.Y-pt1b.Y) {
		if pt1a.X > pt1b.X {
			pt1a, pt1b = pt1b, pt1a
		}
		if pt2a.X > pt2b.X {
			pt2a, pt2b = pt2b, pt2a
		}
		var pt1, pt2 IntPoint
		if pt1a.X > pt2a.X {
			pt1 = pt1a
		} else {
			pt1 = pt2a
		}
		if pt1b.X < pt2b.X {
			pt2 = pt1b
		} else {
			pt2 = pt2b
		}
		return pt1, pt2, pt1.X < pt2.X
	}
	if pt1a.Y < pt1b.Y {
		pt1a, pt1b = pt1b, pt1a
	}
	if pt2a.Y < pt2b.Y {
		pt2a, pt2b = pt2b, pt2a
	}
	var pt1, pt2 IntPoint
	if pt1a.Y < pt2a.Y {
		pt1 = pt1a
	} else {
		pt1 = pt2a
	}
	if pt1b.Y > pt2b.Y {
		pt2 = pt1b
	} else {
		pt2 = pt2b
	}
	return pt1, pt2, pt1.Y > pt2.Y
}

func findSegment(pp **outPt, pt1, pt2 *IntPoint) bool {
	if *pp == nil {
		return false
	}
	pt1a := *pt1
	pt2a := *pt2
	outPt2 := *pp
	for {
		if slopesEqualSegs(pt1a, pt2a, (*pp).Pt, (*pp).PrevOp.Pt) &&
			slopesEqualPts(pt1a, (*pp).Pt, (*pp).PrevOp.Pt) {
			p1, p2, overlap := getOverlapSegment(pt1a, pt2a, (*pp).Pt, (*pp).PrevOp.Pt)
			if overlap {
				*pt1, *pt2 = p1, p2
				return true
			}
		}
		*pp = (*pp).NextOp
		if *pp == outPt2 {
			return false
		}
	}
}

func pt3IsBetweenPt1AndPt2(pt1, pt2, pt3 IntPoint) bool {
	if pt1.Equals(pt3) || pt2.Equals(pt3) {
		return true
	}
	if pt1.X != pt2.X {
		return (pt1.X < pt3.X) == (pt3.X < pt2.X)
	}
	return (pt1.Y < pt3.Y) == (pt3.Y < pt2.Y)
}

func insertPolyPtBetween(outPt1, outPt2 *outPt, pt IntPoint) *outPt {
	result := &outPt{Idx: outPt1.Idx, Pt: pt}
	if outPt2 == outPt1.NextOp {
		outPt1.NextOp = result
		outPt2.PrevOp = result
		result.NextOp = outPt2
		result.PrevOp = outPt1
	} else {
		outPt2.NextOp = result
		outPt1.PrevOp = result
		result.NextOp = outPt1
		result.PrevOp = outPt2
	}
	return result
}

func firstIsBottomPt(btmPt1, btmPt2 *outPt) bool {
	p := btmPt1.PrevOp
	for p.Pt.Equals(btmPt1.Pt) && p != btmPt1 {
		p = p.PrevOp
	}
	dx1p := absFloat(getDx(btmPt1.Pt, p.Pt))
	p = btmPt1.NextOp
	for p.Pt.Equals(btmPt1.Pt) && p != btmPt1 {
		p = p.NextOp
	}
	dx1n := absFloat(getDx(btmPt1.Pt, p.Pt))

	p = btmPt2.PrevOp
	for p.Pt.Equals(btmPt2.Pt) && p != btmPt2 {
		p = p.PrevOp
	}
	dx2p := absFloat(getDx(btmPt2.Pt, p.Pt))
	p = btmPt2.NextOp
	for p.Pt.Equals(btmPt2.Pt) && p != btmPt2 {
		p = p.NextOp
	}
	dx2n := absFloat(getDx(btmPt2.Pt, p.Pt))

	return (dx1p >= dx2p && dx1p >= dx2n) || (dx1n >= dx2p && dx1n >= dx2n)
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func getDx(pt1, pt2 IntPoint) float64 {
	if pt1.Y == pt2.Y {
		return horizontal
	}
	return float64(pt2.X-pt1.X) / float64(pt2.Y-pt1.Y)
}

func getBottomPt(pp *outPt) *outPt {
	var dups *outPt
	p := pp.NextOp
	for p != pp {
		if p.Pt.Y > pp.Pt.Y {
			pp = p
			dups = nil
		} else if p.Pt.Y == pp.Pt.Y && p.Pt.X <= pp.Pt.X {
			if p.Pt.X < pp.Pt.X {
				dups = nil
				pp = p
			} else if p.NextOp != pp && p.PrevOp != pp {
				dups = p
			}
		}
		p = p.NextOp
	}
	if dups != nil {
		for dups != p {
			if !firstIsBottomPt(p, dups) {
				pp = dups
			}
			dups = dups.NextOp
			for !dups.Pt.Equals(pp.Pt) {
				dups = dups.NextOp
			}
		}
	}
	return pp
}

func param1RightOfParam2(outRec1, outRec2 *outRec) bool {
	for outRec1 != nil {
		outRec1 = outRec1.FirstLeft
		if outRec1 == outRec2 {
			return true
		}
	}
	return false
}

func getLowermostRec(outRec1, outRec2 *outRec) *outRec {
	var bPt1, bPt2 *outPt
	if outRec1.BottomPt == nil {
		outRec1.BottomPt = getBottomPt(outRec1.Pts)
	}
	bPt1 = outRec1.BottomPt
	if outRec2.BottomPt == nil {
		outRec2.BottomPt = getBottomPt(outRec2.Pts)
	}
	bPt2 = outRec2.BottomPt

	if bPt1.Pt.Y > bPt2.Pt.Y {
		return outRec1
	}
	if bPt1.Pt.Y < bPt2.Pt.Y {
		return outRec2
	}
	if bPt1.Pt.X < bPt2.Pt.X {
		return outRec1
	}
	if bPt1.Pt.X > bPt2.Pt.X {
		return outRec2
	}
	if bPt1.NextOp == bPt1 {
		return outRec2
	}
	if bPt2.NextOp == bPt2 {
		return outRec1
	}
	if firstIsBottomPt(bPt1, bPt2) {
		return outRec1
	}
	return outRec2
}

// fixupOutPolygon removes duplicate points and collinear runs from a closed
// ring after the sweep completes (spec.md §4.3, step 3).
func fixupOutPolygon(or *outRec) {
	var lastOK *outPt
	or.BottomPt = nil
	pp := or.Pts
	for {
		if pp.PrevOp == pp || pp.PrevOp == pp.NextOp {
			or.Pts = nil
			return
		}
		if pp.Pt.Equals(pp.NextOp.Pt) || slopesEqualPts(pp.PrevOp.Pt, pp.Pt, pp.NextOp.Pt) {
			lastOK = nil
			pp.PrevOp.NextOp = pp.NextOp
			pp.NextOp.PrevOp = pp.PrevOp
			pp = pp.PrevOp
		} else if pp == lastOK {
			break
		} else {
			if lastOK == nil {
				lastOK = pp
			}
			pp = pp.NextOp
		}
	}
	or.Pts = pp
}

// fixupOutPolyline collapses runs of duplicate points in an open-path ring
// without collapsing collinear-but-distinct points (spec.md §4.3, open
// paths are never simplified the way closed rings are).
func fixupOutPolyline(or *outRec) {
	pp := or.Pts
	lastPp := pp.PrevOp
	for pp != lastPp {
		pp = pp.NextOp
		if pp.Pt.Equals(pp.PrevOp.Pt) {
			if pp == lastPp {
				lastPp = pp.PrevOp
			}
			dup := pp.PrevOp
			dup.NextOp = pp.NextOp
			pp.NextOp.PrevOp = dup
			pp = dup
		}
	}
	if pp == pp.PrevOp {
		or.Pts = nil
	}
}

func fixHoleLinkage(or *outRec) {
	if or.FirstLeft == nil || (or.IsHole != or.FirstLeft.IsHole && or.FirstLeft.Pts != nil) {
		return
	}
	orfl := or.FirstLeft
	for orfl != nil && (orfl.IsHole == or.IsHole || orfl.Pts == nil) {
		orfl = orfl.FirstLeft
	}
	or.FirstLeft = orfl
}
