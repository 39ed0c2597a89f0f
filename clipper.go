package clipper

import "sort"

// direction is already declared in types.go: leftToRight, rightToLeft.

type intersectNode struct {
	Edge1, Edge2 *tEdge
	Pt           IntPoint
}

// Clipper runs Vatti's sweep-line algorithm over the paths added via
// AddPath/AddPaths, producing the boolean combination requested by Execute
// (spec.md §3, §4.3, §6).
type Clipper struct {
	*ClipperBase

	clipType      ClipType
	subjFillType  PolyFillType
	clipFillType  PolyFillType
	polyOuts      []*outRec
	sortedEdges   *tEdge
	joins         []join
	ghostJoins    []join
	maxima        []cInt
	intersectList []intersectNode

	usingPolyTree   bool
	reverseSolution bool
	strictlySimple  bool
	zFillFunc       ZFillFunc

	executeLocked bool
	lastErr       error
}

// NewClipper returns a Clipper ready to accept subject and clip paths.
func NewClipper() *Clipper {
	return &Clipper{ClipperBase: NewClipperBase()}
}

// ReverseSolution reports whether Execute reverses the orientation of every
// output contour.
func (c *Clipper) ReverseSolution() bool { return c.reverseSolution }

// SetReverseSolution sets whether Execute reverses the orientation of every
// output contour.
func (c *Clipper) SetReverseSolution(v bool) { c.reverseSolution = v }

// StrictlySimple reports whether Execute guarantees the stronger
// non-self-touching output property (spec.md §4.4).
func (c *Clipper) StrictlySimple() bool { return c.strictlySimple }

// SetStrictlySimple sets whether Execute guarantees the stronger
// non-self-touching output property (spec.md §4.4).
func (c *Clipper) SetStrictlySimple(v bool) { c.strictlySimple = v }

// SetZFillFunction installs a callback invoked whenever a new intersection
// point is synthesized, letting the caller fill in a Z value (spec.md §4.6).
func (c *Clipper) SetZFillFunction(fn ZFillFunc) { c.zFillFunc = fn }

// LastError returns the error recorded by the most recent Execute/
// ExecuteTree call that returned false, either an internal invariant
// violation or ErrReentrant, or nil (spec.md §7). A later successful call
// does not reset it; Clear does.
func (c *Clipper) LastError() error { return c.lastErr }

// Clear removes all paths, output records and pending joins.
func (c *Clipper) Clear() {
	c.polyOuts = nil
	c.joins = nil
	c.ghostJoins = nil
	c.maxima = nil
	c.intersectList = nil
	c.sortedEdges = nil
	c.lastErr = nil
	c.ClipperBase.Clear()
}

// Execute runs clipType over the previously added subject/clip paths and
// writes the result into *solution as a flat set of paths (spec.md §6).
func (c *Clipper) Execute(clipType ClipType, solution *Paths, subjFillType, clipFillType PolyFillType) bool {
	if c.executeLocked {
		c.lastErr = ErrReentrant
		return false
	}
	*solution = nil
	c.usingPolyTree = false
	ok := true
	defer recoverInvariant(&ok, &c.lastErr)
	c.executeLocked = true
	defer func() { c.executeLocked = false }()

	c.clipType = clipType
	c.subjFillType = subjFillType
	c.clipFillType = clipFillType
	if !c.executeInternal() {
		return false
	}
	c.buildResult(solution)
	return ok
}

// ExecuteTree runs clipType and writes the nested-outline result into
// polytree (spec.md §6, §4.5).
func (c *Clipper) ExecuteTree(clipType ClipType, polytree *PolyTree, subjFillType, clipFillType PolyFillType) bool {
	if c.executeLocked {
		c.lastErr = ErrReentrant
		return false
	}
	c.usingPolyTree = true
	ok := true
	defer recoverInvariant(&ok, &c.lastErr)
	c.executeLocked = true
	defer func() { c.executeLocked = false }()

	c.clipType = clipType
	c.subjFillType = subjFillType
	c.clipFillType = clipFillType
	if !c.executeInternal() {
		return false
	}
	c.buildResult2(polytree)
	return ok
}

func (c *Clipper) executeInternal() bool {
	c.hasOpenPaths = false
	c.reset()
	c.maxima = nil
	c.sortedEdges = nil
	c.polyOuts = nil
	c.joins = nil
	c.ghostJoins = nil

	botY, ok := c.popScanbeam()
	if !ok {
		return true
	}
	c.insertLocalMinimaIntoAEL(botY)
	for {
		topY, more := c.popScanbeam()
		if !more && !c.localMinimaPending() {
			break
		}
		c.processHorizontals()
		c.ghostJoins = nil
		if !c.processIntersections(topY) {
			return false
		}
		c.processEdgesAtTopOfScanbeam(topY)
		botY = topY
		c.insertLocalMinimaIntoAEL(botY)
	}

	for _, or := range c.polyOuts {
		if or.Pts == nil || or.IsOpen {
			continue
		}
		if (or.IsHole != c.reverseSolution) == (Area(outPtsToPath(or.Pts)) < 0) {
			reversePolyPtLinks(or.Pts)
		}
	}

	c.joinCommonEdges()

	for _, or := range c.polyOuts {
		if or.Pts == nil {
			continue
		}
		if or.IsOpen {
			fixupOutPolyline(or)
		} else {
			fixupOutPolygon(or)
		}
	}

	if c.strictlySimple {
		c.doSimplePolygons()
	}
	return true
}

func (c *Clipper) insertLocalMinimaIntoAEL(botY cInt) {
	for {
		lm := c.popLocalMinima(botY)
		if lm == nil {
			break
		}
		lb := lm.leftBound
		rb := lm.rightBound

		var op1 *outPt
		switch {
		case lb == nil:
			c.insertEdgeIntoAEL(rb, nil)
			c.setWindingCount(rb)
			if c.isContributing(rb) {
				op1 = c.addOutPt(rb, rb.Bot)
			}
		case rb == nil:
			c.insertEdgeIntoAEL(lb, nil)
			c.setWindingCount(lb)
			if c.isContributing(lb) {
				op1 = c.addOutPt(lb, lb.Bot)
			}
			c.insertScanbeam(lb.Top.Y)
		default:
			c.insertEdgeIntoAEL(lb, nil)
			c.insertEdgeIntoAEL(rb, lb)
			c.setWindingCount(lb)
			rb.WindCnt = lb.WindCnt
			rb.WindCnt2 = lb.WindCnt2
			if c.isContributing(lb) {
				op1 = c.addLocalMinPoly(lb, rb, lb.Bot)
			}
			c.insertScanbeam(lb.Top.Y)
		}

		if rb != nil {
			if rb.isHorizontal() {
				c.addEdgeToSEL(rb)
				if rb.NextInLML != nil {
					c.insertScanbeam(rb.NextInLML.Top.Y)
				}
			} else {
				c.insertScanbeam(rb.Top.Y)
			}
		}

		if lb == nil || rb == nil {
			continue
		}

		if op1 != nil && rb.isHorizontal() && len(c.ghostJoins) > 0 && rb.WindDelta != 0 {
			for _, jr := range c.ghostJoins {
				if horzSegmentsOverlap(jr.OutPt1.Pt.X, jr.OffPt.X, rb.Bot.X, rb.Top.X) {
					c.addJoin(jr.OutPt1, op1, jr.OffPt)
				}
			}
		}

		if lb.OutIdx >= 0 && lb.PrevInAEL != nil &&
			lb.PrevInAEL.Curr.X == lb.Bot.X && lb.PrevInAEL.OutIdx >= 0 &&
			slopesEqualEdges(lb.PrevInAEL, lb) &&
			lb.WindDelta != 0 && lb.PrevInAEL.WindDelta != 0 {
			op2 := c.addOutPt(lb.PrevInAEL, lb.Bot)
			c.addJoin(op1, op2, lb.Top)
		}

		if lb.NextInAEL != rb {
			if rb.OutIdx >= 0 && rb.PrevInAEL.OutIdx >= 0 &&
				slopesEqualSegs(rb.PrevInAEL.Curr, rb.PrevInAEL.Top, rb.Curr, rb.Top) &&
				rb.WindDelta != 0 && rb.PrevInAEL.WindDelta != 0 {
				op2 := c.addOutPt(rb.PrevInAEL, rb.Bot)
				c.addJoin(op1, op2, rb.Top)
			}

			e := lb.NextInAEL
			for e != nil && e != rb {
				c.intersectEdges(rb, e, lb.Curr)
				e = e.NextInAEL
			}
		}
	}
}

func e2InsertsBeforeE1(e1, e2 *tEdge) bool {
	if e2.Curr.X == e1.Curr.X {
		if e2.Top.Y > e1.Top.Y {
			return e2.Top.X < topX(e1, e2.Top.Y)
		}
		return e1.Top.X > topX(e2, e1.Top.Y)
	}
	return e2.Curr.X < e1.Curr.X
}

func (c *Clipper) insertEdgeIntoAEL(edge, startEdge *tEdge) {
	if c.activeEdges == nil {
		edge.PrevInAEL = nil
		edge.NextInAEL = nil
		c.activeEdges = edge
	} else if startEdge == nil && e2InsertsBeforeE1(c.activeEdges, edge) {
		edge.PrevInAEL = nil
		edge.NextInAEL = c.activeEdges
		c.activeEdges.PrevInAEL = edge
		c.activeEdges = edge
	} else {
		if startEdge == nil {
			startEdge = c.activeEdges
		}
		for startEdge.NextInAEL != nil && !e2InsertsBeforeE1(startEdge.NextInAEL, edge) {
			startEdge = startEdge.NextInAEL
		}
		edge.NextInAEL = startEdge.NextInAEL
		if startEdge.NextInAEL != nil {
			startEdge.NextInAEL.PrevInAEL = edge
		}
		edge.PrevInAEL = startEdge
		startEdge.NextInAEL = edge
	}
}

func (c *Clipper) isEvenOddFillType(e *tEdge) bool {
	if e.PolyTyp == Subject {
		return c.subjFillType == EvenOdd
	}
	return c.clipFillType == EvenOdd
}

func (c *Clipper) isEvenOddAltFillType(e *tEdge) bool {
	if e.PolyTyp == Subject {
		return c.clipFillType == EvenOdd
	}
	return c.subjFillType == EvenOdd
}

func (c *Clipper) setWindingCount(edge *tEdge) {
	e := edge.PrevInAEL
	for e != nil && (e.PolyTyp != edge.PolyTyp || e.WindDelta == 0) {
		e = e.PrevInAEL
	}
	if e == nil {
		if edge.WindDelta == 0 {
			pft := c.subjFillType
			if edge.PolyTyp != Subject {
				pft = c.clipFillType
			}
			if pft == Negative {
				edge.WindCnt = -1
			} else {
				edge.WindCnt = 1
			}
		} else {
			edge.WindCnt = edge.WindDelta
		}
		edge.WindCnt2 = 0
		e = c.activeEdges
	} else if edge.WindDelta == 0 && c.clipType != Union {
		edge.WindCnt = 1
		edge.WindCnt2 = e.WindCnt2
		e = e.NextInAEL
	} else if c.isEvenOddFillType(edge) {
		if edge.WindDelta == 0 {
			inside := true
			e2 := e.PrevInAEL
			for e2 != nil {
				if e2.PolyTyp == e.PolyTyp && e2.WindDelta != 0 {
					inside = !inside
				}
				e2 = e2.PrevInAEL
			}
			if inside {
				edge.WindCnt = 0
			} else {
				edge.WindCnt = 1
			}
		} else {
			edge.WindCnt = edge.WindDelta
		}
		edge.WindCnt2 = e.WindCnt2
		e = e.NextInAEL
	} else {
		if e.WindCnt*e.WindDelta < 0 {
			if abs64(cInt(e.WindCnt)) > 1 {
				if e.WindDelta*edge.WindDelta < 0 {
					edge.WindCnt = e.WindCnt
				} else {
					edge.WindCnt = e.WindCnt + edge.WindDelta
				}
			} else if edge.WindDelta == 0 {
				edge.WindCnt = 1
			} else {
				edge.WindCnt = edge.WindDelta
			}
		} else {
			if edge.WindDelta == 0 {
				if e.WindCnt < 0 {
					edge.WindCnt = e.WindCnt - 1
				} else {
					edge.WindCnt = e.WindCnt + 1
				}
			} else if e.WindDelta*edge.WindDelta < 0 {
				edge.WindCnt = e.WindCnt
			} else {
				edge.WindCnt = e.WindCnt + edge.WindDelta
			}
		}
		edge.WindCnt2 = e.WindCnt2
		e = e.NextInAEL
	}

	if c.isEvenOddAltFillType(edge) {
		for e != edge {
			if e.WindDelta != 0 {
				if edge.WindCnt2 == 0 {
					edge.WindCnt2 = 1
				} else {
					edge.WindCnt2 = 0
				}
			}
			e = e.NextInAEL
		}
	} else {
		for e != edge {
			edge.WindCnt2 += e.WindDelta
			e = e.NextInAEL
		}
	}
}

func (c *Clipper) isContributing(edge *tEdge) bool {
	var pft, pft2 PolyFillType
	if edge.PolyTyp == Subject {
		pft, pft2 = c.subjFillType, c.clipFillType
	} else {
		pft, pft2 = c.clipFillType, c.subjFillType
	}

	switch pft {
	case EvenOdd:
		if edge.WindDelta == 0 && edge.WindCnt != 1 {
			return false
		}
	case NonZero:
		if abs64(cInt(edge.WindCnt)) != 1 {
			return false
		}
	case Positive:
		if edge.WindCnt != 1 {
			return false
		}
	default:
		if edge.WindCnt != -1 {
			return false
		}
	}

	switch c.clipType {
	case Intersection:
		switch pft2 {
		case EvenOdd, NonZero:
			return edge.WindCnt2 != 0
		case Positive:
			return edge.WindCnt2 > 0
		default:
			return edge.WindCnt2 < 0
		}
	case Union:
		switch pft2 {
		case EvenOdd, NonZero:
			return edge.WindCnt2 == 0
		case Positive:
			return edge.WindCnt2 <= 0
		default:
			return edge.WindCnt2 >= 0
		}
	case Difference:
		if edge.PolyTyp == Subject {
			switch pft2 {
			case EvenOdd, NonZero:
				return edge.WindCnt2 == 0
			case Positive:
				return edge.WindCnt2 <= 0
			default:
				return edge.WindCnt2 >= 0
			}
		}
		switch pft2 {
		case EvenOdd, NonZero:
			return edge.WindCnt2 != 0
		case Positive:
			return edge.WindCnt2 > 0
		default:
			return edge.WindCnt2 < 0
		}
	case Xor:
		if edge.WindDelta == 0 {
			switch pft2 {
			case EvenOdd, NonZero:
				return edge.WindCnt2 == 0
			case Positive:
				return edge.WindCnt2 <= 0
			default:
				return edge.WindCnt2 >= 0
			}
		}
		return true
	}
	return true
}

func (c *Clipper) createOutRec() *outRec {
	or := &outRec{}
	c.polyOuts = append(c.polyOuts, or)
	or.Idx = len(c.polyOuts) - 1
	return or
}

func (c *Clipper) setHoleState(e *tEdge, or *outRec) {
	e2 := e.PrevInAEL
	var eTmp *tEdge
	for e2 != nil {
		if e2.OutIdx >= 0 && e2.WindDelta != 0 {
			if eTmp == nil {
				eTmp = e2
			} else if eTmp.OutIdx == e2.OutIdx {
				eTmp = nil
			}
		}
		e2 = e2.PrevInAEL
	}
	if eTmp == nil {
		or.FirstLeft = nil
		or.IsHole = false
	} else {
		or.FirstLeft = c.polyOuts[eTmp.OutIdx]
		or.IsHole = !or.FirstLeft.IsHole
	}
}

func (c *Clipper) addOutPt(e *tEdge, pt IntPoint) *outPt {
	if e.OutIdx < 0 {
		or := c.createOutRec()
		or.IsOpen = e.WindDelta == 0
		newOp := &outPt{Idx: or.Idx, Pt: pt}
		or.Pts = newOp
		newOp.NextOp = newOp
		newOp.PrevOp = newOp
		if !or.IsOpen {
			c.setHoleState(e, or)
		}
		e.OutIdx = or.Idx
		return newOp
	}
	or := c.polyOuts[e.OutIdx]
	op := or.Pts
	toFront := e.Side == edgeLeft
	if toFront && pt.Equals(op.Pt) {
		return op
	}
	if !toFront && pt.Equals(op.PrevOp.Pt) {
		return op.PrevOp
	}
	newOp := &outPt{Idx: or.Idx, Pt: pt, NextOp: op, PrevOp: op.PrevOp}
	newOp.PrevOp.NextOp = newOp
	op.PrevOp = newOp
	if toFront {
		or.Pts = newOp
	}
	return newOp
}

func (c *Clipper) getLastOutPt(e *tEdge) *outPt {
	or := c.polyOuts[e.OutIdx]
	if e.Side == edgeLeft {
		return or.Pts
	}
	return or.Pts.PrevOp
}

func (c *Clipper) addLocalMinPoly(e1, e2 *tEdge, pt IntPoint) *outPt {
	var result *outPt
	var e, prevE *tEdge
	if e2.isHorizontal() || e1.Dx > e2.Dx {
		result = c.addOutPt(e1, pt)
		e2.OutIdx = e1.OutIdx
		e1.Side = edgeLeft
		e2.Side = edgeRight
		e = e1
		if e.PrevInAEL == e2 {
			prevE = e2.PrevInAEL
		} else {
			prevE = e.PrevInAEL
		}
	} else {
		result = c.addOutPt(e2, pt)
		e1.OutIdx = e2.OutIdx
		e1.Side = edgeRight
		e2.Side = edgeLeft
		e = e2
		if e.PrevInAEL == e1 {
			prevE = e1.PrevInAEL
		} else {
			prevE = e.PrevInAEL
		}
	}

	if prevE != nil && prevE.OutIdx >= 0 && prevE.Top.Y < pt.Y && e.Top.Y < pt.Y {
		xPrev := topX(prevE, pt.Y)
		xE := topX(e, pt.Y)
		if xPrev == xE && e.WindDelta != 0 && prevE.WindDelta != 0 &&
			slopesEqualSegs(Pt(xPrev, pt.Y), prevE.Top, Pt(xE, pt.Y), e.Top) {
			op := c.addOutPt(prevE, pt)
			c.addJoin(result, op, e.Top)
		}
	}
	return result
}

func (c *Clipper) addLocalMaxPoly(e1, e2 *tEdge, pt IntPoint) {
	c.addOutPt(e1, pt)
	if e2.WindDelta == 0 {
		c.addOutPt(e2, pt)
	}
	if e1.OutIdx == e2.OutIdx {
		e1.OutIdx = unassigned
		e2.OutIdx = unassigned
	} else if e1.OutIdx < e2.OutIdx {
		c.appendPolygon(e1, e2)
	} else {
		c.appendPolygon(e2, e1)
	}
}

func (c *Clipper) appendPolygon(e1, e2 *tEdge) {
	outRec1 := c.polyOuts[e1.OutIdx]
	outRec2 := c.polyOuts[e2.OutIdx]

	var holeStateRec *outRec
	if param1RightOfParam2(outRec1, outRec2) {
		holeStateRec = outRec2
	} else if param1RightOfParam2(outRec2, outRec1) {
		holeStateRec = outRec1
	} else {
		holeStateRec = getLowermostRec(outRec1, outRec2)
	}

	p1Lft := outRec1.Pts
	p1Rt := p1Lft.PrevOp
	p2Lft := outRec2.Pts
	p2Rt := p2Lft.PrevOp

	if e1.Side == edgeLeft {
		if e2.Side == edgeLeft {
			reversePolyPtLinks(p2Lft)
			p2Lft.NextOp = p1Lft
			p1Lft.PrevOp = p2Lft
			p1Rt.NextOp = p2Rt
			p2Rt.PrevOp = p1Rt
			outRec1.Pts = p2Rt
		} else {
			p2Rt.NextOp = p1Lft
			p1Lft.PrevOp = p2Rt
			p2Lft.PrevOp = p1Rt
			p1Rt.NextOp = p2Lft
			outRec1.Pts = p2Lft
		}
	} else {
		if e2.Side == edgeRight {
			reversePolyPtLinks(p2Lft)
			p1Rt.NextOp = p2Rt
			p2Rt.PrevOp = p1Rt
			p2Lft.NextOp = p1Lft
			p1Lft.PrevOp = p2Lft
		} else {
			p1Rt.NextOp = p2Lft
			p2Lft.PrevOp = p1Rt
			p1Lft.PrevOp = p2Rt
			p2Rt.NextOp = p1Lft
		}
	}

	outRec1.BottomPt = nil
	if holeStateRec == outRec2 {
		if outRec2.FirstLeft != outRec1 {
			outRec1.FirstLeft = outRec2.FirstLeft
		}
		outRec1.IsHole = outRec2.IsHole
	}
	outRec2.Pts = nil
	outRec2.BottomPt = nil
	outRec2.FirstLeft = outRec1

	okIdx := e1.OutIdx
	obsoleteIdx := e2.OutIdx
	e1.OutIdx = unassigned
	e2.OutIdx = unassigned

	for e := c.activeEdges; e != nil; e = e.NextInAEL {
		if e.OutIdx == obsoleteIdx {
			e.OutIdx = okIdx
			e.Side = e1.Side
			break
		}
	}
	outRec2.Idx = outRec1.Idx
}

func (c *Clipper) intersectEdges(e1, e2 *tEdge, pt IntPoint) {
	e1Contributing := e1.OutIdx >= 0
	e2Contributing := e2.OutIdx >= 0

	if c.zFillFunc != nil {
		z := pt
		c.zFillFunc(e1.Bot, e1.Top, e2.Bot, e2.Top, &z)
		pt.Z = z.Z
	}

	if e1.WindDelta == 0 || e2.WindDelta == 0 {
		if e1.WindDelta == 0 && e2.WindDelta == 0 {
			return
		}
		if e1.PolyTyp == e2.PolyTyp && e1.WindDelta != e2.WindDelta && c.clipType == Union {
			if e1.WindDelta == 0 {
				if e2Contributing {
					c.addOutPt(e1, pt)
					if e1Contributing {
						e1.OutIdx = unassigned
					}
				}
			} else {
				if e1Contributing {
					c.addOutPt(e2, pt)
					if e2Contributing {
						e2.OutIdx = unassigned
					}
				}
			}
		} else if e1.PolyTyp != e2.PolyTyp {
			if e1.WindDelta == 0 && abs64(cInt(e2.WindCnt)) == 1 && (c.clipType != Union || e2.WindCnt2 == 0) {
				c.addOutPt(e1, pt)
				if e1Contributing {
					e1.OutIdx = unassigned
				}
			} else if e2.WindDelta == 0 && abs64(cInt(e1.WindCnt)) == 1 && (c.clipType != Union || e1.WindCnt2 == 0) {
				c.addOutPt(e2, pt)
				if e2Contributing {
					e2.OutIdx = unassigned
				}
			}
		}
		return
	}

	if e1.PolyTyp == e2.PolyTyp {
		if c.isEvenOddFillType(e1) {
			e1.WindCnt, e2.WindCnt = e2.WindCnt, e1.WindCnt
		} else {
			if e1.WindCnt+e2.WindDelta == 0 {
				e1.WindCnt = -e1.WindCnt
			} else {
				e1.WindCnt += e2.WindDelta
			}
			if e2.WindCnt-e1.WindDelta == 0 {
				e2.WindCnt = -e2.WindCnt
			} else {
				e2.WindCnt -= e1.WindDelta
			}
		}
	} else {
		if !c.isEvenOddFillType(e2) {
			e1.WindCnt2 += e2.WindDelta
		} else if e1.WindCnt2 == 0 {
			e1.WindCnt2 = 1
		} else {
			e1.WindCnt2 = 0
		}
		if !c.isEvenOddFillType(e1) {
			e2.WindCnt2 -= e1.WindDelta
		} else if e2.WindCnt2 == 0 {
			e2.WindCnt2 = 1
		} else {
			e2.WindCnt2 = 0
		}
	}

	var e1FillType, e2FillType, e1FillType2, e2FillType2 PolyFillType
	if e1.PolyTyp == Subject {
		e1FillType, e1FillType2 = c.subjFillType, c.clipFillType
	} else {
		e1FillType, e1FillType2 = c.clipFillType, c.subjFillType
	}
	if e2.PolyTyp == Subject {
		e2FillType, e2FillType2 = c.subjFillType, c.clipFillType
	} else {
		e2FillType, e2FillType2 = c.clipFillType, c.subjFillType
	}

	fillCnt := func(wc int, ft PolyFillType) cInt {
		switch ft {
		case Positive:
			return cInt(wc)
		case Negative:
			return cInt(-wc)
		default:
			return abs64(cInt(wc))
		}
	}
	e1Wc := fillCnt(e1.WindCnt, e1FillType)
	e2Wc := fillCnt(e2.WindCnt, e2FillType)

	switch {
	case e1Contributing && e2Contributing:
		if (e1Wc != 0 && e1Wc != 1) || (e2Wc != 0 && e2Wc != 1) ||
			(e1.PolyTyp != e2.PolyTyp && c.clipType != Xor) {
			c.addLocalMaxPoly(e1, e2, pt)
		} else {
			c.addOutPt(e1, pt)
			c.addOutPt(e2, pt)
			swapSides(e1, e2)
			swapPolyIndexes(e1, e2)
		}
	case e1Contributing:
		if e2Wc == 0 || e2Wc == 1 {
			c.addOutPt(e1, pt)
			swapSides(e1, e2)
			swapPolyIndexes(e1, e2)
		}
	case e2Contributing:
		if e1Wc == 0 || e1Wc == 1 {
			c.addOutPt(e2, pt)
			swapSides(e1, e2)
			swapPolyIndexes(e1, e2)
		}
	case (e1Wc == 0 || e1Wc == 1) && (e2Wc == 0 || e2Wc == 1):
		e1Wc2 := fillCnt(e1.WindCnt2, e1FillType2)
		e2Wc2 := fillCnt(e2.WindCnt2, e2FillType2)

		if e1.PolyTyp != e2.PolyTyp {
			c.addLocalMinPoly(e1, e2, pt)
		} else if e1Wc == 1 && e2Wc == 1 {
			switch c.clipType {
			case Intersection:
				if e1Wc2 > 0 && e2Wc2 > 0 {
					c.addLocalMinPoly(e1, e2, pt)
				}
			case Union:
				if e1Wc2 <= 0 && e2Wc2 <= 0 {
					c.addLocalMinPoly(e1, e2, pt)
				}
			case Difference:
				if (e1.PolyTyp == Clip && e1Wc2 > 0 && e2Wc2 > 0) ||
					(e1.PolyTyp == Subject && e1Wc2 <= 0 && e2Wc2 <= 0) {
					c.addLocalMinPoly(e1, e2, pt)
				}
			case Xor:
				c.addLocalMinPoly(e1, e2, pt)
			}
		} else {
			swapSides(e1, e2)
		}
	}
}

func horzSegmentsOverlap(seg1a, seg1b, seg2a, seg2b cInt) bool {
	if seg1a > seg1b {
		seg1a, seg1b = seg1b, seg1a
	}
	if seg2a > seg2b {
		seg2a, seg2b = seg2b, seg2a
	}
	return seg1a < seg2b && seg2a < seg1b
}

func (c *Clipper) addJoin(op1, op2 *outPt, offPt IntPoint) {
	c.joins = append(c.joins, join{OutPt1: op1, OutPt2: op2, OffPt: offPt})
}

func (c *Clipper) addGhostJoin(op *outPt, offPt IntPoint) {
	c.ghostJoins = append(c.ghostJoins, join{OutPt1: op, OffPt: offPt})
}

func getNextInAEL(e *tEdge, dir direction) *tEdge {
	if dir == leftToRight {
		return e.NextInAEL
	}
	return e.PrevInAEL
}

func getHorzDirection(e *tEdge) (dir direction, left, right cInt) {
	if e.Bot.X < e.Top.X {
		return leftToRight, e.Bot.X, e.Top.X
	}
	return rightToLeft, e.Top.X, e.Bot.X
}

func (c *Clipper) addEdgeToSEL(edge *tEdge) {
	if c.sortedEdges == nil {
		c.sortedEdges = edge
		edge.PrevInSEL = nil
		edge.NextInSEL = nil
	} else {
		edge.NextInSEL = c.sortedEdges
		edge.PrevInSEL = nil
		c.sortedEdges.PrevInSEL = edge
		c.sortedEdges = edge
	}
}

func (c *Clipper) popEdgeFromSEL() (*tEdge, bool) {
	if c.sortedEdges == nil {
		return nil, false
	}
	e := c.sortedEdges
	c.deleteFromSEL(c.sortedEdges)
	return e, true
}

func (c *Clipper) copyAELToSEL() {
	e := c.activeEdges
	c.sortedEdges = e
	for e != nil {
		e.PrevInSEL = e.PrevInAEL
		e.NextInSEL = e.NextInAEL
		e = e.NextInAEL
	}
}

func (c *Clipper) deleteFromSEL(e *tEdge) {
	selPrev := e.PrevInSEL
	selNext := e.NextInSEL
	if selPrev == nil && selNext == nil && e != c.sortedEdges {
		return
	}
	if selPrev != nil {
		selPrev.NextInSEL = selNext
	} else {
		c.sortedEdges = selNext
	}
	if selNext != nil {
		selNext.PrevInSEL = selPrev
	}
	e.NextInSEL = nil
	e.PrevInSEL = nil
}

func (c *Clipper) swapPositionsInSEL(e1, e2 *tEdge) {
	if e1.NextInSEL == nil && e1.PrevInSEL == nil {
		return
	}
	if e2.NextInSEL == nil && e2.PrevInSEL == nil {
		return
	}
	if e1.NextInSEL == e2 {
		next := e2.NextInSEL
		if next != nil {
			next.PrevInSEL = e1
		}
		prev := e1.PrevInSEL
		if prev != nil {
			prev.NextInSEL = e2
		}
		e2.PrevInSEL = prev
		e2.NextInSEL = e1
		e1.PrevInSEL = e2
		e1.NextInSEL = next
	} else if e2.NextInSEL == e1 {
		next := e1.NextInSEL
		if next != nil {
			next.PrevInSEL = e2
		}
		prev := e2.PrevInSEL
		if prev != nil {
			prev.NextInSEL = e1
		}
		e1.PrevInSEL = prev
		e1.NextInSEL = e2
		e2.PrevInSEL = e1
		e2.NextInSEL = next
	} else {
		next := e1.NextInSEL
		prev := e1.PrevInSEL
		e1.NextInSEL = e2.NextInSEL
		if e1.NextInSEL != nil {
			e1.NextInSEL.PrevInSEL = e1
		}
		e1.PrevInSEL = e2.PrevInSEL
		if e1.PrevInSEL != nil {
			e1.PrevInSEL.NextInSEL = e1
		}
		e2.NextInSEL = next
		if e2.NextInSEL != nil {
			e2.NextInSEL.PrevInSEL = e2
		}
		e2.PrevInSEL = prev
		if e2.PrevInSEL != nil {
			e2.PrevInSEL.NextInSEL = e2
		}
	}
	if e1.PrevInSEL == nil {
		c.sortedEdges = e1
	} else if e2.PrevInSEL == nil {
		c.sortedEdges = e2
	}
}

func (c *Clipper) processHorizontals() {
	for {
		e, ok := c.popEdgeFromSEL()
		if !ok {
			break
		}
		c.processHorizontal(e)
	}
}

func (c *Clipper) processHorizontal(horzEdge *tEdge) {
	dir, horzLeft, horzRight := getHorzDirection(horzEdge)
	isOpen := horzEdge.WindDelta == 0

	eLastHorz := horzEdge
	var eMaxPair *tEdge
	for eLastHorz.NextInLML != nil && eLastHorz.NextInLML.isHorizontal() {
		eLastHorz = eLastHorz.NextInLML
	}
	if eLastHorz.NextInLML == nil {
		eMaxPair = getMaximaPairEx(eLastHorz)
	}

	maxIt, maxRit := 0, len(c.maxima)
	if len(c.maxima) > 0 {
		if dir == leftToRight {
			for maxIt < len(c.maxima) && c.maxima[maxIt] <= horzEdge.Bot.X {
				maxIt++
			}
			if maxIt < len(c.maxima) && c.maxima[maxIt] >= eLastHorz.Top.X {
				maxIt = len(c.maxima)
			}
		} else {
			maxRit = len(c.maxima) - 1
			for maxRit >= 0 && c.maxima[maxRit] > horzEdge.Bot.X {
				maxRit--
			}
			if maxRit >= 0 && c.maxima[maxRit] <= eLastHorz.Top.X {
				maxRit = -1
			}
		}
	}

	var op1 *outPt

	for {
		isLastHorz := horzEdge == eLastHorz
		e := getNextInAEL(horzEdge, dir)
		for e != nil {
			if len(c.maxima) > 0 {
				if dir == leftToRight {
					for maxIt < len(c.maxima) && c.maxima[maxIt] < e.Curr.X {
						if horzEdge.OutIdx >= 0 && !isOpen {
							c.addOutPt(horzEdge, Pt(c.maxima[maxIt], horzEdge.Bot.Y))
						}
						maxIt++
					}
				} else {
					for maxRit >= 0 && c.maxima[maxRit] > e.Curr.X {
						if horzEdge.OutIdx >= 0 && !isOpen {
							c.addOutPt(horzEdge, Pt(c.maxima[maxRit], horzEdge.Bot.Y))
						}
						maxRit--
					}
				}
			}

			if (dir == leftToRight && e.Curr.X > horzRight) ||
				(dir == rightToLeft && e.Curr.X < horzLeft) {
				break
			}

			if e.Curr.X == horzEdge.Top.X && horzEdge.NextInLML != nil && e.Dx < horzEdge.NextInLML.Dx {
				break
			}

			if horzEdge.OutIdx >= 0 && !isOpen {
				op1 = c.addOutPt(horzEdge, e.Curr)
				for eNextHorz := c.sortedEdges; eNextHorz != nil; eNextHorz = eNextHorz.NextInSEL {
					if eNextHorz.OutIdx >= 0 &&
						horzSegmentsOverlap(horzEdge.Bot.X, horzEdge.Top.X, eNextHorz.Bot.X, eNextHorz.Top.X) {
						op2 := c.getLastOutPt(eNextHorz)
						c.addJoin(op2, op1, eNextHorz.Top)
					}
				}
				c.addGhostJoin(op1, horzEdge.Bot)
			}

			if e == eMaxPair && isLastHorz {
				if horzEdge.OutIdx >= 0 {
					c.addLocalMaxPoly(horzEdge, eMaxPair, horzEdge.Top)
				}
				c.deleteFromAEL(horzEdge)
				c.deleteFromAEL(eMaxPair)
				return
			}

			pt := Pt(e.Curr.X, horzEdge.Curr.Y)
			if dir == leftToRight {
				c.intersectEdges(horzEdge, e, pt)
			} else {
				c.intersectEdges(e, horzEdge, pt)
			}
			eNext := getNextInAEL(e, dir)
			c.swapPositionsInAEL(horzEdge, e)
			e = eNext
		}

		if horzEdge.NextInLML == nil || !horzEdge.NextInLML.isHorizontal() {
			break
		}

		horzEdge = c.updateEdgeIntoAEL(horzEdge)
		if horzEdge.OutIdx >= 0 {
			c.addOutPt(horzEdge, horzEdge.Bot)
		}
		dir, horzLeft, horzRight = getHorzDirection(horzEdge)
	}

	if horzEdge.OutIdx >= 0 && op1 == nil {
		op1 = c.getLastOutPt(horzEdge)
		for eNextHorz := c.sortedEdges; eNextHorz != nil; eNextHorz = eNextHorz.NextInSEL {
			if eNextHorz.OutIdx >= 0 &&
				horzSegmentsOverlap(horzEdge.Bot.X, horzEdge.Top.X, eNextHorz.Bot.X, eNextHorz.Top.X) {
				op2 := c.getLastOutPt(eNextHorz)
				c.addJoin(op2, op1, eNextHorz.Top)
			}
		}
		c.addGhostJoin(op1, horzEdge.Top)
	}

	if horzEdge.NextInLML != nil {
		if horzEdge.OutIdx >= 0 {
			op1 = c.addOutPt(horzEdge, horzEdge.Top)
			horzEdge = c.updateEdgeIntoAEL(horzEdge)
			if horzEdge.WindDelta == 0 {
				return
			}
			ePrev := horzEdge.PrevInAEL
			eNext := horzEdge.NextInAEL
			if ePrev != nil && ePrev.Curr.X == horzEdge.Bot.X && ePrev.Curr.Y == horzEdge.Bot.Y &&
				ePrev.WindDelta != 0 && ePrev.OutIdx >= 0 && ePrev.Curr.Y > ePrev.Top.Y &&
				slopesEqualEdges(horzEdge, ePrev) {
				op2 := c.addOutPt(ePrev, horzEdge.Bot)
				c.addJoin(op1, op2, horzEdge.Top)
			} else if eNext != nil && eNext.Curr.X == horzEdge.Bot.X && eNext.Curr.Y == horzEdge.Bot.Y &&
				eNext.WindDelta != 0 && eNext.OutIdx >= 0 && eNext.Curr.Y > eNext.Top.Y &&
				slopesEqualEdges(horzEdge, eNext) {
				op2 := c.addOutPt(eNext, horzEdge.Bot)
				c.addJoin(op1, op2, horzEdge.Top)
			}
		} else {
			c.updateEdgeIntoAEL(horzEdge)
		}
	} else {
		if horzEdge.OutIdx >= 0 {
			c.addOutPt(horzEdge, horzEdge.Top)
		}
		c.deleteFromAEL(horzEdge)
	}
}

func (c *Clipper) doMaxima(e *tEdge) {
	eMaxPair := getMaximaPairEx(e)
	if eMaxPair == nil {
		if e.OutIdx >= 0 {
			c.addOutPt(e, e.Top)
		}
		c.deleteFromAEL(e)
		return
	}

	eNext := e.NextInAEL
	for eNext != nil && eNext != eMaxPair {
		c.intersectEdges(e, eNext, e.Top)
		c.swapPositionsInAEL(e, eNext)
		eNext = e.NextInAEL
	}

	switch {
	case e.OutIdx == unassigned && eMaxPair.OutIdx == unassigned:
		c.deleteFromAEL(e)
		c.deleteFromAEL(eMaxPair)
	case e.OutIdx >= 0 && eMaxPair.OutIdx >= 0:
		c.addLocalMaxPoly(e, eMaxPair, e.Top)
		c.deleteFromAEL(e)
		c.deleteFromAEL(eMaxPair)
	case e.WindDelta == 0:
		if e.OutIdx >= 0 {
			c.addOutPt(e, e.Top)
			e.OutIdx = unassigned
		}
		c.deleteFromAEL(e)
		if eMaxPair.OutIdx >= 0 {
			c.addOutPt(eMaxPair, e.Top)
			eMaxPair.OutIdx = unassigned
		}
		c.deleteFromAEL(eMaxPair)
	default:
		raiseInvariant("doMaxima: neither edge of a maxima pair could be resolved")
	}
}

func (c *Clipper) processEdgesAtTopOfScanbeam(topY cInt) {
	e := c.activeEdges
	for e != nil {
		isMax := e != nil && isMaximaEdge(e, topY)
		if isMax {
			eMaxPair := getMaximaPairEx(e)
			isMax = eMaxPair == nil || !eMaxPair.isHorizontal()
		}

		if isMax {
			if c.strictlySimple {
				c.maxima = append(c.maxima, e.Top.X)
			}
			ePrev := e.PrevInAEL
			c.doMaxima(e)
			if ePrev == nil {
				e = c.activeEdges
			} else {
				e = ePrev.NextInAEL
			}
		} else {
			if isIntermediate(e, topY) && e.NextInLML.isHorizontal() {
				e = c.updateEdgeIntoAEL(e)
				if e.OutIdx >= 0 {
					c.addOutPt(e, e.Bot)
				}
				c.addEdgeToSEL(e)
			} else {
				e.Curr.X = topX(e, topY)
				e.Curr.Y = topY
				if e.Top.Y == topY {
					e.Curr.Z = e.Top.Z
				} else if e.Bot.Y == topY {
					e.Curr.Z = e.Bot.Z
				} else {
					e.Curr.Z = 0
				}
			}

			if c.strictlySimple {
				ePrev := e.PrevInAEL
				if e.OutIdx >= 0 && e.WindDelta != 0 && ePrev != nil && ePrev.OutIdx >= 0 &&
					ePrev.Curr.X == e.Curr.X && ePrev.WindDelta != 0 {
					pt := e.Curr
					op := c.addOutPt(ePrev, pt)
					op2 := c.addOutPt(e, pt)
					c.addJoin(op, op2, pt)
				}
			}

			e = e.NextInAEL
		}
	}

	sort.Slice(c.maxima, func(i, j int) bool { return c.maxima[i] < c.maxima[j] })
	c.processHorizontals()
	c.maxima = nil

	e = c.activeEdges
	for e != nil {
		if isIntermediate(e, topY) {
			var op *outPt
			if e.OutIdx >= 0 {
				op = c.addOutPt(e, e.Top)
			}
			e = c.updateEdgeIntoAEL(e)

			ePrev := e.PrevInAEL
			eNext := e.NextInAEL
			if ePrev != nil && ePrev.Curr.X == e.Bot.X && ePrev.Curr.Y == e.Bot.Y && op != nil &&
				ePrev.OutIdx >= 0 && ePrev.Curr.Y > ePrev.Top.Y &&
				slopesEqualSegs(e.Curr, e.Top, ePrev.Curr, ePrev.Top) &&
				e.WindDelta != 0 && ePrev.WindDelta != 0 {
				op2 := c.addOutPt(ePrev, e.Bot)
				c.addJoin(op, op2, e.Top)
			} else if eNext != nil && eNext.Curr.X == e.Bot.X && eNext.Curr.Y == e.Bot.Y && op != nil &&
				eNext.OutIdx >= 0 && eNext.Curr.Y > eNext.Top.Y &&
				slopesEqualSegs(e.Curr, e.Top, eNext.Curr, eNext.Top) &&
				e.WindDelta != 0 && eNext.WindDelta != 0 {
				op2 := c.addOutPt(eNext, e.Bot)
				c.addJoin(op, op2, e.Top)
			}
		}
		e = e.NextInAEL
	}
}

func intersectPoint(e1, e2 *tEdge) IntPoint {
	var ip IntPoint
	var b1, b2 float64
	switch {
	case e1.Dx == e2.Dx:
		ip.Y = e1.Curr.Y
		ip.X = topX(e1, ip.Y)
		return ip
	case e1.Dx == 0:
		ip.X = e1.Bot.X
		if e2.isHorizontal() {
			ip.Y = e2.Bot.Y
		} else {
			b2 = float64(e2.Bot.Y) - float64(e2.Bot.X)/e2.Dx
			ip.Y = round64(float64(ip.X)/e2.Dx + b2)
		}
	case e2.Dx == 0:
		ip.X = e2.Bot.X
		if e1.isHorizontal() {
			ip.Y = e1.Bot.Y
		} else {
			b1 = float64(e1.Bot.Y) - float64(e1.Bot.X)/e1.Dx
			ip.Y = round64(float64(ip.X)/e1.Dx + b1)
		}
	default:
		b1 = float64(e1.Bot.X) - float64(e1.Bot.Y)*e1.Dx
		b2 = float64(e2.Bot.X) - float64(e2.Bot.Y)*e2.Dx
		q := (b2 - b1) / (e1.Dx - e2.Dx)
		ip.Y = round64(q)
		if absFloat(e1.Dx) < absFloat(e2.Dx) {
			ip.X = round64(e1.Dx*q + b1)
		} else {
			ip.X = round64(e2.Dx*q + b2)
		}
	}

	if ip.Y < e1.Top.Y || ip.Y < e2.Top.Y {
		if e1.Top.Y > e2.Top.Y {
			ip.Y = e1.Top.Y
		} else {
			ip.Y = e2.Top.Y
		}
		if absFloat(e1.Dx) < absFloat(e2.Dx) {
			ip.X = topX(e1, ip.Y)
		} else {
			ip.X = topX(e2, ip.Y)
		}
	}
	if ip.Y > e1.Curr.Y {
		ip.Y = e1.Curr.Y
		if absFloat(e1.Dx) > absFloat(e2.Dx) {
			ip.X = topX(e2, ip.Y)
		} else {
			ip.X = topX(e1, ip.Y)
		}
	}
	return ip
}

func (c *Clipper) processIntersections(topY cInt) bool {
	if c.activeEdges == nil {
		return true
	}
	c.buildIntersectList(topY)
	if len(c.intersectList) == 0 {
		return true
	}
	if len(c.intersectList) == 1 || c.fixupIntersectionOrder() {
		c.processIntersectList()
	} else {
		c.sortedEdges = nil
		c.intersectList = nil
		return false
	}
	c.sortedEdges = nil
	return true
}

func (c *Clipper) buildIntersectList(topY cInt) {
	if c.activeEdges == nil {
		return
	}
	e := c.activeEdges
	c.sortedEdges = e
	for e != nil {
		e.PrevInSEL = e.PrevInAEL
		e.NextInSEL = e.NextInAEL
		e.Curr.X = topX(e, topY)
		e = e.NextInAEL
	}

	for {
		modified := false
		e = c.sortedEdges
		for e.NextInSEL != nil {
			eNext := e.NextInSEL
			if e.Curr.X > eNext.Curr.X {
				pt := intersectPoint(e, eNext)
				if pt.Y < topY {
					pt = Pt(topX(e, topY), topY)
				}
				c.intersectList = append(c.intersectList, intersectNode{Edge1: e, Edge2: eNext, Pt: pt})
				c.swapPositionsInSEL(e, eNext)
				modified = true
			} else {
				e = eNext
			}
		}
		if e.PrevInSEL != nil {
			e.PrevInSEL.NextInSEL = nil
		} else {
			break
		}
		if !modified {
			break
		}
	}
	c.sortedEdges = nil
}

func edgesAdjacent(n intersectNode) bool {
	return n.Edge1.NextInSEL == n.Edge2 || n.Edge1.PrevInSEL == n.Edge2
}

func (c *Clipper) fixupIntersectionOrder() bool {
	c.copyAELToSEL()
	sort.SliceStable(c.intersectList, func(i, j int) bool {
		return c.intersectList[j].Pt.Y < c.intersectList[i].Pt.Y
	})
	cnt := len(c.intersectList)
	for i := 0; i < cnt; i++ {
		if !edgesAdjacent(c.intersectList[i]) {
			j := i + 1
			for j < cnt && !edgesAdjacent(c.intersectList[j]) {
				j++
			}
			if j == cnt {
				return false
			}
			c.intersectList[i], c.intersectList[j] = c.intersectList[j], c.intersectList[i]
		}
		c.swapPositionsInSEL(c.intersectList[i].Edge1, c.intersectList[i].Edge2)
	}
	return true
}

func (c *Clipper) processIntersectList() {
	for _, n := range c.intersectList {
		c.intersectEdges(n.Edge1, n.Edge2, n.Pt)
		c.swapPositionsInAEL(n.Edge1, n.Edge2)
	}
	c.intersectList = nil
}

func (c *Clipper) getOutRec(idx int) *outRec {
	or := c.polyOuts[idx]
	for or != c.polyOuts[or.Idx] {
		or = c.polyOuts[or.Idx]
	}
	return or
}

func dupOutPt(op *outPt, insertAfter bool) *outPt {
	result := &outPt{Pt: op.Pt, Idx: op.Idx}
	if insertAfter {
		result.NextOp = op.NextOp
		result.PrevOp = op
		op.NextOp.PrevOp = result
		op.NextOp = result
	} else {
		result.PrevOp = op.PrevOp
		result.NextOp = op
		op.PrevOp.NextOp = result
		op.PrevOp = result
	}
	return result
}

func getOverlap(a1, a2, b1, b2 cInt) (left, right cInt, ok bool) {
	if a1 < a2 {
		if b1 < b2 {
			left, right = maxCInt(a1, b1), minCInt(a2, b2)
		} else {
			left, right = maxCInt(a1, b2), minCInt(a2, b1)
		}
	} else {
		if b1 < b2 {
			left, right = maxCInt(a2, b1), minCInt(a1, b2)
		} else {
			left, right = maxCInt(a2, b2), minCInt(a1, b1)
		}
	}
	return left, right, left < right
}

func maxCInt(a, b cInt) cInt {
	if a > b {
		return a
	}
	return b
}

func minCInt(a, b cInt) cInt {
	if a < b {
		return a
	}
	return b
}

func (c *Clipper) joinHorz(op1, op1b, op2, op2b *outPt, pt IntPoint, discardLeft bool) bool {
	dir1 := leftToRight
	if op1.Pt.X > op1b.Pt.X {
		dir1 = rightToLeft
	}
	dir2 := leftToRight
	if op2.Pt.X > op2b.Pt.X {
		dir2 = rightToLeft
	}
	if dir1 == dir2 {
		return false
	}

	if dir1 == leftToRight {
		for op1.NextOp.Pt.X <= pt.X && op1.NextOp.Pt.X >= op1.Pt.X && op1.NextOp.Pt.Y == pt.Y {
			op1 = op1.NextOp
		}
		if discardLeft && op1.Pt.X != pt.X {
			op1 = op1.NextOp
		}
		op1b = dupOutPt(op1, !discardLeft)
		if !op1b.Pt.Equals(pt) {
			op1 = op1b
			op1.Pt = pt
			op1b = dupOutPt(op1, !discardLeft)
		}
	} else {
		for op1.NextOp.Pt.X >= pt.X && op1.NextOp.Pt.X <= op1.Pt.X && op1.NextOp.Pt.Y == pt.Y {
			op1 = op1.NextOp
		}
		if !discardLeft && op1.Pt.X != pt.X {
			op1 = op1.NextOp
		}
		op1b = dupOutPt(op1, discardLeft)
		if !op1b.Pt.Equals(pt) {
			op1 = op1b
			op1.Pt = pt
			op1b = dupOutPt(op1, discardLeft)
		}
	}

	if dir2 == leftToRight {
		for op2.NextOp.Pt.X <= pt.X && op2.NextOp.Pt.X >= op2.Pt.X && op2.NextOp.Pt.Y == pt.Y {
			op2 = op2.NextOp
		}
		if discardLeft && op2.Pt.X != pt.X {
			op2 = op2.NextOp
		}
		op2b = dupOutPt(op2, !discardLeft)
		if !op2b.Pt.Equals(pt) {
			op2 = op2b
			op2.Pt = pt
			op2b = dupOutPt(op2, !discardLeft)
		}
	} else {
		for op2.NextOp.Pt.X >= pt.X && op2.NextOp.Pt.X <= op2.Pt.X && op2.NextOp.Pt.Y == pt.Y {
			op2 = op2.NextOp
		}
		if !discardLeft && op2.Pt.X != pt.X {
			op2 = op2.NextOp
		}
		op2b = dupOutPt(op2, discardLeft)
		if !op2b.Pt.Equals(pt) {
			op2 = op2b
			op2.Pt = pt
			op2b = dupOutPt(op2, discardLeft)
		}
	}

	if (dir1 == leftToRight) == discardLeft {
		op1.PrevOp = op2
		op2.NextOp = op1
		op1b.NextOp = op2b
		op2b.PrevOp = op1b
	} else {
		op1.NextOp = op2
		op2.PrevOp = op1
		op1b.PrevOp = op2b
		op2b.NextOp = op1b
	}
	return true
}

func (c *Clipper) joinPoints(j *join, outRec1, outRec2 *outRec) bool {
	op1, op2 := j.OutPt1, j.OutPt2
	var op1b, op2b *outPt

	isHorizontal := j.OutPt1.Pt.Y == j.OffPt.Y

	if isHorizontal && j.OffPt.Equals(j.OutPt1.Pt) && j.OffPt.Equals(j.OutPt2.Pt) {
		if outRec1 != outRec2 {
			return false
		}
		op1b = j.OutPt1.NextOp
		for op1b != op1 && op1b.Pt.Equals(j.OffPt) {
			op1b = op1b.NextOp
		}
		reverse1 := op1b.Pt.Y > j.OffPt.Y
		op2b = j.OutPt2.NextOp
		for op2b != op2 && op2b.Pt.Equals(j.OffPt) {
			op2b = op2b.NextOp
		}
		reverse2 := op2b.Pt.Y > j.OffPt.Y
		if reverse1 == reverse2 {
			return false
		}
		if reverse1 {
			op1b = dupOutPt(op1, false)
			op2b = dupOutPt(op2, true)
			op1.PrevOp = op2
			op2.NextOp = op1
			op1b.NextOp = op2b
			op2b.PrevOp = op1b
		} else {
			op1b = dupOutPt(op1, true)
			op2b = dupOutPt(op2, false)
			op1.NextOp = op2
			op2.PrevOp = op1
			op1b.PrevOp = op2b
			op2b.NextOp = op1b
		}
		j.OutPt1 = op1
		j.OutPt2 = op1b
		return true
	} else if isHorizontal {
		op1b = op1
		for op1.PrevOp.Pt.Y == op1.Pt.Y && op1.PrevOp != op1b && op1.PrevOp != op2 {
			op1 = op1.PrevOp
		}
		for op1b.NextOp.Pt.Y == op1b.Pt.Y && op1b.NextOp != op1 && op1b.NextOp != op2 {
			op1b = op1b.NextOp
		}
		if op1b.NextOp == op1 || op1b.NextOp == op2 {
			return false
		}

		op2b = op2
		for op2.PrevOp.Pt.Y == op2.Pt.Y && op2.PrevOp != op2b && op2.PrevOp != op1b {
			op2 = op2.PrevOp
		}
		for op2b.NextOp.Pt.Y == op2b.Pt.Y && op2b.NextOp != op2 && op2b.NextOp != op1 {
			op2b = op2b.NextOp
		}
		if op2b.NextOp == op2 || op2b.NextOp == op1 {
			return false
		}

		left, right, ok := getOverlap(op1.Pt.X, op1b.Pt.X, op2.Pt.X, op2b.Pt.X)
		if !ok {
			return false
		}

		var pt IntPoint
		var discardLeftSide bool
		switch {
		case op1.Pt.X >= left && op1.Pt.X <= right:
			pt = op1.Pt
			discardLeftSide = op1.Pt.X > op1b.Pt.X
		case op2.Pt.X >= left && op2.Pt.X <= right:
			pt = op2.Pt
			discardLeftSide = op2.Pt.X > op2b.Pt.X
		case op1b.Pt.X >= left && op1b.Pt.X <= right:
			pt = op1b.Pt
			discardLeftSide = op1b.Pt.X > op1.Pt.X
		default:
			pt = op2b.Pt
			discardLeftSide = op2b.Pt.X > op2.Pt.X
		}
		j.OutPt1 = op1
		j.OutPt2 = op2
		return c.joinHorz(op1, op1b, op2, op2b, pt, discardLeftSide)
	}

	op1b = op1.NextOp
	for op1b.Pt.Equals(op1.Pt) && op1b != op1 {
		op1b = op1b.NextOp
	}
	reverse1 := op1b.Pt.Y > op1.Pt.Y || !slopesEqualPts(op1.Pt, op1b.Pt, j.OffPt)
	if reverse1 {
		op1b = op1.PrevOp
		for op1b.Pt.Equals(op1.Pt) && op1b != op1 {
			op1b = op1b.PrevOp
		}
		if op1b.Pt.Y > op1.Pt.Y || !slopesEqualPts(op1.Pt, op1b.Pt, j.OffPt) {
			return false
		}
	}
	op2b = op2.NextOp
	for op2b.Pt.Equals(op2.Pt) && op2b != op2 {
		op2b = op2b.NextOp
	}
	reverse2 := op2b.Pt.Y > op2.Pt.Y || !slopesEqualPts(op2.Pt, op2b.Pt, j.OffPt)
	if reverse2 {
		op2b = op2.PrevOp
		for op2b.Pt.Equals(op2.Pt) && op2b != op2 {
			op2b = op2b.PrevOp
		}
		if op2b.Pt.Y > op2.Pt.Y || !slopesEqualPts(op2.Pt, op2b.Pt, j.OffPt) {
			return false
		}
	}

	if op1b == op1 || op2b == op2 || op1b == op2b || (outRec1 == outRec2 && reverse1 == reverse2) {
		return false
	}

	if reverse1 {
		op1b = dupOutPt(op1, false)
		op2b = dupOutPt(op2, true)
		op1.PrevOp = op2
		op2.NextOp = op1
		op1b.NextOp = op2b
		op2b.PrevOp = op1b
	} else {
		op1b = dupOutPt(op1, true)
		op2b = dupOutPt(op2, false)
		op1.NextOp = op2
		op2.PrevOp = op1
		op1b.PrevOp = op2b
		op2b.NextOp = op1b
	}
	j.OutPt1 = op1
	j.OutPt2 = op1b
	return true
}

func (c *Clipper) updateOutPtIdxs(or *outRec) {
	op := or.Pts
	for {
		op.Idx = or.Idx
		op = op.PrevOp
		if op == or.Pts {
			break
		}
	}
}

func (c *Clipper) parseFirstLeft(firstLeft *outRec) *outRec {
	for firstLeft != nil && firstLeft.Pts == nil {
		firstLeft = firstLeft.FirstLeft
	}
	return firstLeft
}

func (c *Clipper) fixupFirstLefts1(oldOutRec, newOutRec *outRec) {
	for _, or := range c.polyOuts {
		firstLeft := c.parseFirstLeft(or.FirstLeft)
		if or.Pts != nil && firstLeft == oldOutRec {
			if poly2ContainsPoly1(or.Pts, newOutRec.Pts) {
				or.FirstLeft = newOutRec
			}
		}
	}
}

func (c *Clipper) fixupFirstLefts2(innerOutRec, outerOutRec *outRec) {
	orfl := outerOutRec.FirstLeft
	for _, or := range c.polyOuts {
		if or.Pts == nil || or == outerOutRec || or == innerOutRec {
			continue
		}
		firstLeft := c.parseFirstLeft(or.FirstLeft)
		if firstLeft != orfl && firstLeft != innerOutRec && firstLeft != outerOutRec {
			continue
		}
		if poly2ContainsPoly1(or.Pts, innerOutRec.Pts) {
			or.FirstLeft = innerOutRec
		} else if poly2ContainsPoly1(or.Pts, outerOutRec.Pts) {
			or.FirstLeft = outerOutRec
		} else if or.FirstLeft == innerOutRec || or.FirstLeft == outerOutRec {
			or.FirstLeft = orfl
		}
	}
}

func (c *Clipper) fixupFirstLefts3(oldOutRec, newOutRec *outRec) {
	for _, or := range c.polyOuts {
		firstLeft := c.parseFirstLeft(or.FirstLeft)
		if or.Pts != nil && firstLeft == oldOutRec {
			or.FirstLeft = newOutRec
		}
	}
}

func (c *Clipper) joinCommonEdges() {
	for i := range c.joins {
		j := &c.joins[i]
		outRec1 := c.getOutRec(j.OutPt1.Idx)
		outRec2 := c.getOutRec(j.OutPt2.Idx)

		if outRec1.Pts == nil || outRec2.Pts == nil {
			continue
		}
		if outRec1.IsOpen || outRec2.IsOpen {
			continue
		}

		var holeStateRec *outRec
		switch {
		case outRec1 == outRec2:
			holeStateRec = outRec1
		case param1RightOfParam2(outRec1, outRec2):
			holeStateRec = outRec2
		case param1RightOfParam2(outRec2, outRec1):
			holeStateRec = outRec1
		default:
			holeStateRec = getLowermostRec(outRec1, outRec2)
		}

		if !c.joinPoints(j, outRec1, outRec2) {
			continue
		}

		if outRec1 == outRec2 {
			outRec1.Pts = j.OutPt1
			outRec1.BottomPt = nil
			outRec2 = c.createOutRec()
			outRec2.Pts = j.OutPt2
			c.updateOutPtIdxs(outRec2)

			switch {
			case poly2ContainsPoly1(outRec2.Pts, outRec1.Pts):
				outRec2.IsHole = !outRec1.IsHole
				outRec2.FirstLeft = outRec1
				if c.usingPolyTree {
					c.fixupFirstLefts2(outRec2, outRec1)
				}
				if (outRec2.IsHole != c.reverseSolution) == (Area(outPtsToPath(outRec2.Pts)) < 0) {
					reversePolyPtLinks(outRec2.Pts)
				}
			case poly2ContainsPoly1(outRec1.Pts, outRec2.Pts):
				outRec2.IsHole = outRec1.IsHole
				outRec1.IsHole = !outRec2.IsHole
				outRec2.FirstLeft = outRec1.FirstLeft
				outRec1.FirstLeft = outRec2
				if c.usingPolyTree {
					c.fixupFirstLefts2(outRec1, outRec2)
				}
				if (outRec1.IsHole != c.reverseSolution) == (Area(outPtsToPath(outRec1.Pts)) < 0) {
					reversePolyPtLinks(outRec1.Pts)
				}
			default:
				outRec2.IsHole = outRec1.IsHole
				outRec2.FirstLeft = outRec1.FirstLeft
				if c.usingPolyTree {
					c.fixupFirstLefts1(outRec1, outRec2)
				}
			}
		} else {
			outRec2.Pts = nil
			outRec2.BottomPt = nil
			outRec2.Idx = outRec1.Idx

			outRec1.IsHole = holeStateRec.IsHole
			if holeStateRec == outRec2 {
				outRec1.FirstLeft = outRec2.FirstLeft
			}
			outRec2.FirstLeft = outRec1

			if c.usingPolyTree {
				c.fixupFirstLefts3(outRec2, outRec1)
			}
		}
	}
}

func (c *Clipper) doSimplePolygons() {
	i := 0
	for i < len(c.polyOuts) {
		or := c.polyOuts[i]
		i++
		op := or.Pts
		if op == nil || or.IsOpen {
			continue
		}
		for {
			op2 := op.NextOp
			for op2 != or.Pts {
				if op.Pt.Equals(op2.Pt) && op2.NextOp != op && op2.PrevOp != op {
					op3 := op.PrevOp
					op4 := op2.PrevOp
					op.PrevOp = op4
					op4.NextOp = op
					op2.PrevOp = op3
					op3.NextOp = op2

					or.Pts = op
					or2 := c.createOutRec()
					or2.Pts = op2
					c.updateOutPtIdxs(or2)
					switch {
					case poly2ContainsPoly1(or2.Pts, or.Pts):
						or2.IsHole = !or.IsHole
						or2.FirstLeft = or
						if c.usingPolyTree {
							c.fixupFirstLefts2(or2, or)
						}
					case poly2ContainsPoly1(or.Pts, or2.Pts):
						or2.IsHole = or.IsHole
						or.IsHole = !or2.IsHole
						or2.FirstLeft = or.FirstLeft
						or.FirstLeft = or2
						if c.usingPolyTree {
							c.fixupFirstLefts2(or, or2)
						}
					default:
						or2.IsHole = or.IsHole
						or2.FirstLeft = or.FirstLeft
						if c.usingPolyTree {
							c.fixupFirstLefts1(or, or2)
						}
					}
					op2 = op
				}
				op2 = op2.NextOp
			}
			op = op.NextOp
			if op == or.Pts {
				break
			}
		}
	}
}

func (c *Clipper) buildResult(polys *Paths) {
	out := make(Paths, 0, len(c.polyOuts))
	for _, or := range c.polyOuts {
		if or.Pts == nil {
			continue
		}
		p := or.Pts.PrevOp
		cnt := pointCount(p)
		if cnt < 2 {
			continue
		}
		pg := make(Path, 0, cnt)
		for j := 0; j < cnt; j++ {
			pg = append(pg, p.Pt)
			p = p.PrevOp
		}
		out = append(out, pg)
	}
	*polys = out
}

func (c *Clipper) buildResult2(tree *PolyTree) {
	tree.Clear()
	for _, or := range c.polyOuts {
		cnt := pointCount(or.Pts)
		if (or.IsOpen && cnt < 2) || (!or.IsOpen && cnt < 3) {
			continue
		}
		fixHoleLinkage(or)
		pn := tree.newNode()
		or.PolyNode = pn
		pn.Contour = make(Path, 0, cnt)
		op := or.Pts.PrevOp
		for j := 0; j < cnt; j++ {
			pn.Contour = append(pn.Contour, op.Pt)
			op = op.PrevOp
		}
	}

	for _, or := range c.polyOuts {
		if or.PolyNode == nil {
			continue
		}
		if or.IsOpen {
			or.PolyNode.isOpen = true
			tree.addChild(or.PolyNode)
		} else if or.FirstLeft != nil && or.FirstLeft.PolyNode != nil {
			or.FirstLeft.PolyNode.addChild(or.PolyNode)
		} else {
			tree.addChild(or.PolyNode)
		}
	}
}
