package clipper

import (
	"container/heap"
	"sort"
)

// scanbeamHeap is a max-heap of Y values: coordinates are Y-down, so the
// sweep starts at the bottom (greatest Y) and heap[0] is always the greatest
// Y not yet processed (spec.md §3, "Scanbeam list"). popScanbeam discards
// duplicates of the value it returns.
type scanbeamHeap []cInt

func (h scanbeamHeap) Len() int            { return len(h) }
func (h scanbeamHeap) Less(i, j int) bool  { return h[i] > h[j] }
func (h scanbeamHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *scanbeamHeap) Push(x interface{}) { *h = append(*h, x.(cInt)) }
func (h *scanbeamHeap) Pop() interface{} {
	old := *h
	n := len(old)
	v := old[n-1]
	*h = old[:n-1]
	return v
}

// ClipperBase converts sets of polygon or polyline coordinates into edge
// records stored in a local-minima list. It is the shared ancestor of
// Clipper and is not meant to be used on its own (spec.md §6).
type ClipperBase struct {
	edges       []*tEdge // every tEdge this instance has allocated, for Clear
	minimaList  []localMinimum
	currentLM   int
	scanbeam    scanbeamHeap
	activeEdges *tEdge

	useFullRange      bool
	preserveCollinear bool
	hasOpenPaths      bool
}

// NewClipperBase returns an empty ClipperBase ready to accept paths.
func NewClipperBase() *ClipperBase {
	return &ClipperBase{currentLM: -1}
}

// PreserveCollinear reports whether AddPath keeps interior collinear
// vertices instead of merging them away.
func (cb *ClipperBase) PreserveCollinear() bool { return cb.preserveCollinear }

// SetPreserveCollinear sets whether AddPath keeps interior collinear
// vertices instead of merging them away.
func (cb *ClipperBase) SetPreserveCollinear(v bool) { cb.preserveCollinear = v }

// Clear removes all edges and local minima, resetting the instance to its
// initial empty state.
func (cb *ClipperBase) Clear() {
	cb.edges = nil
	cb.minimaList = nil
	cb.currentLM = -1
	cb.scanbeam = nil
	cb.activeEdges = nil
	cb.hasOpenPaths = false
}

func rangeOK(pt IntPoint) bool {
	return pt.X <= hiRange && pt.X >= -hiRange && pt.Y <= hiRange && pt.Y >= -hiRange
}

// AddPaths adds every path in ppg as one operand (spec.md §4.2, §6).
func (cb *ClipperBase) AddPaths(ppg Paths, polyTyp PolyType, closed bool) bool {
	result := false
	for _, p := range ppg {
		if cb.AddPath(p, polyTyp, closed) {
			result = true
		}
	}
	return result
}

// AddPath validates pg, strips duplicate and (for closed paths, unless
// PreserveCollinear is set) collinear vertices, builds a doubly-linked ring
// of edges, and extracts its local minima into the LML (spec.md §4.2).
// It returns false when pg has too few valid distinct points, a coordinate
// exceeds the supported range, an open path is given as Clip, or a closed
// path is flat (all its points share one Y).
func (cb *ClipperBase) AddPath(pg Path, polyTyp PolyType, closed bool) bool {
	if !closed && polyTyp == Clip {
		return false // open paths must be the subject operand (use_lines contract)
	}

	highI := len(pg) - 1
	if closed {
		for highI > 0 && pg[highI].Equals(pg[0]) {
			highI--
		}
	}
	for highI > 0 && pg[highI].Equals(pg[highI-1]) {
		highI--
	}
	if (closed && highI < 2) || (!closed && highI < 1) {
		return false
	}

	edges := make([]*tEdge, highI+1)
	for i := range edges {
		edges[i] = newEdge()
	}
	for i, p := range pg[:highI+1] {
		if !rangeOK(p) {
			return false
		}
		edges[i].Curr = p
	}
	for i := 0; i <= highI; i++ {
		next := edges[(i+1)%(highI+1)]
		prev := edges[(i-1+highI+1)%(highI+1)]
		edges[i].Next = next
		edges[i].Prev = prev
	}

	eStart := edges[0]

	// 2. Remove duplicate vertices, and (when closed) collinear edges.
	e := eStart
	eLoopStop := eStart
	for {
		if e.Curr.Equals(e.Next.Curr) && (closed || e.Next != eStart) {
			if e == e.Next {
				break
			}
			if e == eStart {
				eStart = e.Next
			}
			e = removeEdge(e)
			eLoopStop = e
			continue
		}
		if e.Prev == e.Next {
			break
		}
		if closed && slopesEqualPts(e.Prev.Curr, e.Curr, e.Next.Curr) &&
			(!cb.preserveCollinear || !pt3IsBetweenPt1AndPt2(e.Prev.Curr, e.Next.Curr, e.Curr)) {
			if e == eStart {
				eStart = e.Next
			}
			e = removeEdge(e)
			e = e.Prev
			eLoopStop = e
			continue
		}
		e = e.Next
		if e == eLoopStop || (!closed && e.Next == eStart) {
			break
		}
	}

	if (!closed && e == e.Next) || (closed && e.Prev == e.Next) {
		return false
	}

	if !closed {
		cb.hasOpenPaths = true
		eStart.Prev.OutIdx = skip
	}

	// 3. Second stage of edge initialization.
	isFlat := true
	e = eStart
	for {
		initEdge2(e, polyTyp)
		e = e.Next
		if isFlat && e.Curr.Y != eStart.Curr.Y {
			isFlat = false
		}
		if e == eStart {
			break
		}
	}

	cb.edges = append(cb.edges, edges...)

	// 4. Add edge bounds to the local-minima list.
	if isFlat {
		if closed {
			return false
		}
		e.Prev.OutIdx = skip
		lm := localMinimum{y: e.Bot.Y, rightBound: e}
		lm.rightBound.Side = edgeRight
		lm.rightBound.WindDelta = 0
		for {
			if e.Bot.X != e.Prev.Top.X {
				reverseHorizontal(e)
			}
			if e.Next.OutIdx == skip {
				break
			}
			e.NextInLML = e.Next
			e = e.Next
		}
		cb.minimaList = append(cb.minimaList, lm)
		return true
	}

	var leftBoundIsForward bool
	var eMin *tEdge

	if e.Prev.Bot.Equals(e.Prev.Top) {
		e = e.Next
	}

	for {
		e = findNextLocMin(e)
		if e == eMin {
			break
		} else if eMin == nil {
			eMin = e
		}

		lm := localMinimum{y: e.Bot.Y}
		if e.Dx < e.Prev.Dx {
			lm.leftBound = e.Prev
			lm.rightBound = e
			leftBoundIsForward = false
		} else {
			lm.leftBound = e
			lm.rightBound = e.Prev
			leftBoundIsForward = true
		}

		if !closed {
			lm.leftBound.WindDelta = 0
		} else if lm.leftBound.Next == lm.rightBound {
			lm.leftBound.WindDelta = -1
		} else {
			lm.leftBound.WindDelta = 1
		}
		lm.rightBound.WindDelta = -lm.leftBound.WindDelta

		e = processBound(lm.leftBound, leftBoundIsForward, cb)
		if e.OutIdx == skip {
			e = processBound(e, leftBoundIsForward, cb)
		}

		e2 := processBound(lm.rightBound, !leftBoundIsForward, cb)
		if e2.OutIdx == skip {
			e2 = processBound(e2, !leftBoundIsForward, cb)
		}

		if lm.leftBound.OutIdx == skip {
			lm.leftBound = nil
		} else if lm.rightBound.OutIdx == skip {
			lm.rightBound = nil
		}
		cb.minimaList = append(cb.minimaList, lm)
		if !leftBoundIsForward {
			e = e2
		}
	}
	return true
}

func removeEdge(e *tEdge) *tEdge {
	e.Prev.Next = e.Next
	e.Next.Prev = e.Prev
	result := e.Next
	e.Prev = nil
	return result
}

func initEdge2(e *tEdge, polyTyp PolyType) {
	if e.Curr.Y >= e.Next.Curr.Y {
		e.Bot = e.Curr
		e.Top = e.Next.Curr
	} else {
		e.Top = e.Curr
		e.Bot = e.Next.Curr
	}
	e.setDx()
	e.PolyTyp = polyTyp
}

func reverseHorizontal(e *tEdge) {
	e.Top.X, e.Bot.X = e.Bot.X, e.Top.X
	e.Top.Z, e.Bot.Z = e.Bot.Z, e.Top.Z
}

// findNextLocMin walks forward from e to the next vertex where both
// incident edges climb away (spec.md §4.2).
func findNextLocMin(e *tEdge) *tEdge {
	for {
		for !e.Bot.Equals(e.Prev.Bot) || e.Curr.Equals(e.Top) {
			e = e.Next
		}
		if !e.isHorizontal() && !e.Prev.isHorizontal() {
			break
		}
		for e.Prev.isHorizontal() {
			e = e.Prev
		}
		e2 := e
		for e.isHorizontal() {
			e = e.Next
		}
		if e.Top.Y == e.Prev.Bot.Y {
			continue
		}
		if e2.Prev.Bot.X < e.Bot.X {
			e = e2
		}
		break
	}
	return e
}

// processBound walks one climbing chain of edges starting at e, wiring
// NextInLML along the way and normalizing horizontal-edge direction, then
// returns the edge just beyond the bound (spec.md §4.2).
func processBound(e *tEdge, leftBoundIsForward bool, cb *ClipperBase) *tEdge {
	result := e
	var horz *tEdge

	if result.OutIdx == skip {
		e = result
		if leftBoundIsForward {
			for e.Top.Y == e.Next.Bot.Y {
				e = e.Next
			}
			for e != result && e.isHorizontal() {
				e = e.Prev
			}
		} else {
			for e.Top.Y == e.Prev.Bot.Y {
				e = e.Prev
			}
			for e != result && e.isHorizontal() {
				e = e.Next
			}
		}
		if e == result {
			if leftBoundIsForward {
				result = e.Next
			} else {
				result = e.Prev
			}
		} else {
			if leftBoundIsForward {
				e = result.Next
			} else {
				e = result.Prev
			}
			lm := localMinimum{y: e.Bot.Y, rightBound: e}
			e.WindDelta = 0
			result = processBound(e, leftBoundIsForward, cb)
			cb.minimaList = append(cb.minimaList, lm)
		}
		return result
	}

	var eStart *tEdge
	if e.isHorizontal() {
		if leftBoundIsForward {
			eStart = e.Prev
		} else {
			eStart = e.Next
		}
		if eStart.OutIdx != skip {
			if eStart.isHorizontal() {
				if eStart.Bot.X != e.Bot.X && eStart.Top.X != e.Bot.X {
					reverseHorizontal(e)
				}
			} else if eStart.Bot.X != e.Bot.X {
				reverseHorizontal(e)
			}
		}
	}

	eStart = e
	if leftBoundIsForward {
		for result.Top.Y == result.Next.Bot.Y && result.Next.OutIdx != skip {
			result = result.Next
		}
		if result.isHorizontal() && result.Next.OutIdx != skip {
			horz = result
			for horz.Prev.isHorizontal() {
				horz = horz.Prev
			}
			if horz.Prev.Top.X > result.Next.Top.X {
				result = horz.Prev
			}
		}
		for e != result {
			e.NextInLML = e.Next
			if e.isHorizontal() && e != eStart && e.Bot.X != e.Prev.Top.X {
				reverseHorizontal(e)
			}
			e = e.Next
		}
		if e.isHorizontal() && e != eStart && e.Bot.X != e.Prev.Top.X {
			reverseHorizontal(e)
		}
		result = result.Next
	} else {
		for result.Top.Y == result.Prev.Bot.Y && result.Prev.OutIdx != skip {
			result = result.Prev
		}
		if result.isHorizontal() && result.Prev.OutIdx != skip {
			horz = result
			for horz.Next.isHorizontal() {
				horz = horz.Next
			}
			if horz.Next.Top.X >= result.Prev.Top.X {
				result = horz.Next
			}
		}
		for e != result {
			e.NextInLML = e.Prev
			if e.isHorizontal() && e != eStart && e.Bot.X != e.Next.Top.X {
				reverseHorizontal(e)
			}
			e = e.Prev
		}
		if e.isHorizontal() && e != eStart && e.Bot.X != e.Next.Top.X {
			reverseHorizontal(e)
		}
		result = result.Prev
	}
	return result
}

// GetBounds returns the axis-aligned bounding rectangle of every point
// passed to AddPath/AddPaths so far (spec.md §6).
func (cb *ClipperBase) GetBounds() IntRect {
	if len(cb.edges) == 0 {
		return IntRect{}
	}
	var r IntRect
	started := false
	for _, e := range cb.edges {
		if e.Prev == nil {
			continue // removed during dedup
		}
		if !started {
			r = IntRect{Left: e.Bot.X, Right: e.Bot.X, Top: e.Bot.Y, Bottom: e.Bot.Y}
			started = true
		}
		for _, pt := range [2]IntPoint{e.Bot, e.Top} {
			if pt.X < r.Left {
				r.Left = pt.X
			}
			if pt.X > r.Right {
				r.Right = pt.X
			}
			if pt.Y < r.Top {
				r.Top = pt.Y
			}
			if pt.Y > r.Bottom {
				r.Bottom = pt.Y
			}
		}
	}
	return r
}

// reset restores sweep state (AEL, scanbeam, per-edge Curr/Side/OutIdx) so
// Execute can run again without re-adding paths (spec.md §3, Lifecycle;
// §9, Open question on repeated Execute calls without Clear/AddPath).
func (cb *ClipperBase) reset() {
	cb.currentLM = 0
	if len(cb.minimaList) == 0 {
		return
	}
	sort.SliceStable(cb.minimaList, func(i, j int) bool {
		return cb.minimaList[i].y > cb.minimaList[j].y
	})

	cb.scanbeam = cb.scanbeam[:0]
	heap.Init(&cb.scanbeam)
	for _, lm := range cb.minimaList {
		cb.insertScanbeam(lm.y)
		if lm.leftBound != nil {
			lm.leftBound.Curr = lm.leftBound.Bot
			lm.leftBound.Side = edgeLeft
			lm.leftBound.OutIdx = unassigned
		}
		if lm.rightBound != nil {
			lm.rightBound.Curr = lm.rightBound.Bot
			lm.rightBound.Side = edgeRight
			lm.rightBound.OutIdx = unassigned
		}
	}
	cb.activeEdges = nil
}

func (cb *ClipperBase) insertScanbeam(y cInt) {
	heap.Push(&cb.scanbeam, y)
}

func (cb *ClipperBase) popScanbeam() (cInt, bool) {
	for len(cb.scanbeam) > 0 {
		y := heap.Pop(&cb.scanbeam).(cInt)
		for len(cb.scanbeam) > 0 && cb.scanbeam[0] == y {
			heap.Pop(&cb.scanbeam)
		}
		return y, true
	}
	return 0, false
}

func (cb *ClipperBase) localMinimaPending() bool {
	return cb.currentLM < len(cb.minimaList)
}

func (cb *ClipperBase) popLocalMinima(y cInt) *localMinimum {
	if cb.currentLM >= len(cb.minimaList) {
		return nil
	}
	lm := &cb.minimaList[cb.currentLM]
	if lm.y != y {
		return nil
	}
	cb.currentLM++
	return lm
}

func (cb *ClipperBase) swapPositionsInAEL(e1, e2 *tEdge) {
	if e1.NextInAEL == e2 {
		next := e2.NextInAEL
		if next != nil {
			next.PrevInAEL = e1
		}
		prev := e1.PrevInAEL
		if prev != nil {
			prev.NextInAEL = e2
		}
		e2.PrevInAEL = prev
		e2.NextInAEL = e1
		e1.PrevInAEL = e2
		e1.NextInAEL = next
	} else if e2.NextInAEL == e1 {
		next := e1.NextInAEL
		if next != nil {
			next.PrevInAEL = e2
		}
		prev := e2.PrevInAEL
		if prev != nil {
			prev.NextInAEL = e1
		}
		e1.PrevInAEL = prev
		e1.NextInAEL = e2
		e2.PrevInAEL = e1
		e2.NextInAEL = next
	} else {
		next := e1.NextInAEL
		prev := e1.PrevInAEL
		e1.NextInAEL = e2.NextInAEL
		if e1.NextInAEL != nil {
			e1.NextInAEL.PrevInAEL = e1
		}
		e1.PrevInAEL = e2.PrevInAEL
		if e1.PrevInAEL != nil {
			e1.PrevInAEL.NextInAEL = e1
		}
		e2.NextInAEL = next
		if e2.NextInAEL != nil {
			e2.NextInAEL.PrevInAEL = e2
		}
		e2.PrevInAEL = prev
		if e2.PrevInAEL != nil {
			e2.PrevInAEL.NextInAEL = e2
		}
	}
	if e1.PrevInAEL == nil {
		cb.activeEdges = e1
	} else if e2.PrevInAEL == nil {
		cb.activeEdges = e2
	}
}

func (cb *ClipperBase) deleteFromAEL(e *tEdge) {
	aelPrev := e.PrevInAEL
	aelNext := e.NextInAEL
	if aelPrev == nil && aelNext == nil && e != cb.activeEdges {
		return // already deleted
	}
	if aelPrev != nil {
		aelPrev.NextInAEL = aelNext
	} else {
		cb.activeEdges = aelNext
	}
	if aelNext != nil {
		aelNext.PrevInAEL = aelPrev
	}
	e.NextInAEL = nil
	e.PrevInAEL = nil
}

// updateEdgeIntoAEL replaces e in the AEL with e.NextInLML, keeping the
// output index and winding state, and returns the replacement.
func (cb *ClipperBase) updateEdgeIntoAEL(e *tEdge) *tEdge {
	if e.NextInLML == nil {
		raiseInvariant("updateEdgeIntoAEL: no NextInLML")
	}
	aelPrev := e.PrevInAEL
	aelNext := e.NextInAEL
	e.NextInLML.OutIdx = e.OutIdx
	if aelPrev != nil {
		aelPrev.NextInAEL = e.NextInLML
	} else {
		cb.activeEdges = e.NextInLML
	}
	if aelNext != nil {
		aelNext.PrevInAEL = e.NextInLML
	}
	e.NextInLML.Side = e.Side
	e.NextInLML.WindDelta = e.WindDelta
	e.NextInLML.WindCnt = e.WindCnt
	e.NextInLML.WindCnt2 = e.WindCnt2
	result := e.NextInLML
	result.Curr = result.Bot
	result.PrevInAEL = aelPrev
	result.NextInAEL = aelNext
	if !result.isHorizontal() {
		cb.insertScanbeam(result.Top.Y)
	}
	return result
}
