package clipper

import "math"

const defaultArcTolerance = 0.25

func nearZero(v float64) bool {
	return v > -1.0e-20 && v < 1.0e-20
}

// ClipperOffset grows or shrinks a set of closed polygons and open
// polylines by a fixed winding-number distance, using square, round or
// mitered joins and one of five path end styles (spec.md §4.4).
type ClipperOffset struct {
	MiterLimit   float64
	ArcTolerance float64

	destPolys Paths
	srcPoly   Path
	destPoly  Path
	normals   []DoublePoint

	delta, sinA, sinTbl, cosTbl float64
	miterLim, stepsPerRad       float64

	lowestChild, lowestVertex int
	polyNodes                 PolyNode
}

// NewClipperOffset returns a ClipperOffset using miterLimit for mitered
// joins and arcTolerance to control round-join/round-cap segmentation.
// A non-positive arcTolerance falls back to a 0.25-unit default.
func NewClipperOffset(miterLimit, arcTolerance float64) *ClipperOffset {
	return &ClipperOffset{
		MiterLimit:   miterLimit,
		ArcTolerance: arcTolerance,
		lowestChild:  -1,
	}
}

// Clear removes every path previously added via AddPath/AddPaths.
func (co *ClipperOffset) Clear() {
	co.polyNodes.Children = nil
	co.lowestChild = -1
}

// AddPath adds one path to be offset with joinType and endType (spec.md
// §4.4). Open paths (any endType other than EndClosedPolygon) are only
// meaningful with a positive delta at Execute time.
func (co *ClipperOffset) AddPath(path Path, joinType JoinType, endType EndType) {
	highI := len(path) - 1
	if highI < 0 {
		return
	}
	newNode := &PolyNode{joinType: joinType, endType: endType}

	if endType == EndClosedLine || endType == EndClosedPolygon {
		for highI > 0 && path[0].Equals(path[highI]) {
			highI--
		}
	}
	newNode.Contour = make(Path, 0, highI+1)
	newNode.Contour = append(newNode.Contour, path[0])
	j, k := 0, 0
	for i := 1; i <= highI; i++ {
		if !newNode.Contour[j].Equals(path[i]) {
			j++
			newNode.Contour = append(newNode.Contour, path[i])
			if path[i].Y > newNode.Contour[k].Y ||
				(path[i].Y == newNode.Contour[k].Y && path[i].X < newNode.Contour[k].X) {
				k = j
			}
		}
	}
	if endType == EndClosedPolygon && j < 2 {
		return
	}
	co.polyNodes.addChild(newNode)

	if endType != EndClosedPolygon {
		return
	}
	if co.lowestChild < 0 {
		co.lowestChild, co.lowestVertex = co.polyNodes.ChildCount()-1, k
	} else {
		ip := co.polyNodes.Children[co.lowestChild].Contour[co.lowestVertex]
		if newNode.Contour[k].Y > ip.Y ||
			(newNode.Contour[k].Y == ip.Y && newNode.Contour[k].X < ip.X) {
			co.lowestChild, co.lowestVertex = co.polyNodes.ChildCount()-1, k
		}
	}
}

// AddPaths adds every path in paths, all sharing joinType and endType.
func (co *ClipperOffset) AddPaths(paths Paths, joinType JoinType, endType EndType) {
	for _, p := range paths {
		co.AddPath(p, joinType, endType)
	}
}

func (co *ClipperOffset) fixOrientations() {
	if co.lowestChild >= 0 && !Orientation(co.polyNodes.Children[co.lowestChild].Contour) {
		for _, node := range co.polyNodes.Children {
			if node.endType == EndClosedPolygon ||
				(node.endType == EndClosedLine && Orientation(node.Contour)) {
				ReversePath(node.Contour)
			}
		}
	} else {
		for _, node := range co.polyNodes.Children {
			if node.endType == EndClosedLine && !Orientation(node.Contour) {
				ReversePath(node.Contour)
			}
		}
	}
}

func getUnitNormal(pt1, pt2 IntPoint) DoublePoint {
	if pt2.X == pt1.X && pt2.Y == pt1.Y {
		return DoublePoint{}
	}
	dx := float64(pt2.X - pt1.X)
	dy := float64(pt2.Y - pt1.Y)
	f := 1.0 / math.Sqrt(dx*dx+dy*dy)
	dx *= f
	dy *= f
	return DoublePoint{X: dy, Y: -dx}
}

// Execute writes the offset (by delta) of every added path into *solution,
// after a union pass that removes self-intersections introduced by the
// offsetting itself (spec.md §4.4).
func (co *ClipperOffset) Execute(solution *Paths, delta float64) {
	*solution = nil
	co.fixOrientations()
	co.doOffset(delta)

	clpr := NewClipper()
	clpr.AddPaths(co.destPolys, Subject, true)
	if delta > 0 {
		clpr.Execute(Union, solution, Positive, Positive)
		return
	}
	r := clpr.GetBounds()
	outer := Path{
		Pt(r.Left-10, r.Bottom+10),
		Pt(r.Right+10, r.Bottom+10),
		Pt(r.Right+10, r.Top-10),
		Pt(r.Left-10, r.Top-10),
	}
	clpr.AddPath(outer, Subject, true)
	clpr.SetReverseSolution(true)
	clpr.Execute(Union, solution, Negative, Negative)
	if len(*solution) > 0 {
		*solution = (*solution)[1:]
	}
}

// ExecuteTree is the PolyTree-output form of Execute.
func (co *ClipperOffset) ExecuteTree(solution *PolyTree, delta float64) {
	solution.Clear()
	co.fixOrientations()
	co.doOffset(delta)

	clpr := NewClipper()
	clpr.AddPaths(co.destPolys, Subject, true)
	if delta > 0 {
		clpr.ExecuteTree(Union, solution, Positive, Positive)
		return
	}
	r := clpr.GetBounds()
	outer := Path{
		Pt(r.Left-10, r.Bottom+10),
		Pt(r.Right+10, r.Bottom+10),
		Pt(r.Right+10, r.Top-10),
		Pt(r.Left-10, r.Top-10),
	}
	clpr.AddPath(outer, Subject, true)
	clpr.SetReverseSolution(true)
	clpr.ExecuteTree(Union, solution, Negative, Negative)
	if solution.ChildCount() == 1 && solution.Children[0].ChildCount() > 0 {
		outerNode := solution.Children[0]
		solution.Children = make([]*PolyNode, 0, outerNode.ChildCount())
		first := outerNode.Children[0]
		first.Parent = outerNode.Parent
		first.index = 0
		solution.Children = append(solution.Children, first)
		for i := 1; i < outerNode.ChildCount(); i++ {
			solution.addChild(outerNode.Children[i])
		}
		for i, n := range solution.allNodes {
			if n == outerNode {
				solution.allNodes = append(solution.allNodes[:i], solution.allNodes[i+1:]...)
				break
			}
		}
	} else {
		solution.Clear()
	}
}

func (co *ClipperOffset) doOffset(delta float64) {
	co.destPolys = nil
	co.delta = delta

	if nearZero(delta) {
		co.destPolys = make(Paths, 0, co.polyNodes.ChildCount())
		for _, node := range co.polyNodes.Children {
			if node.endType == EndClosedPolygon {
				co.destPolys = append(co.destPolys, node.Contour)
			}
		}
		return
	}

	if co.MiterLimit > 2 {
		co.miterLim = 2 / (co.MiterLimit * co.MiterLimit)
	} else {
		co.miterLim = 0.5
	}

	y := co.ArcTolerance
	if y <= 0 {
		y = defaultArcTolerance
	}
	// spec.md §4.4 step 3: DoRound emits ceil(π / acos(1 − ArcTolerance/|delta|))
	// arc steps per right angle (π/2 radians) turned.
	stepsPerRightAngle := math.Ceil(math.Pi / math.Acos(1-y/math.Abs(delta)))
	increment := (math.Pi / 2) / stepsPerRightAngle
	co.sinTbl = math.Sin(increment)
	co.cosTbl = math.Cos(increment)
	co.stepsPerRad = stepsPerRightAngle / (math.Pi / 2)
	if delta < 0 {
		co.sinTbl = -co.sinTbl
	}

	co.destPolys = make(Paths, 0, co.polyNodes.ChildCount()*2)
	for _, node := range co.polyNodes.Children {
		co.srcPoly = node.Contour
		n := len(co.srcPoly)
		if n == 0 || (delta <= 0 && (n < 3 || node.endType != EndClosedPolygon)) {
			continue
		}

		co.destPoly = nil
		if n == 1 {
			if node.joinType == JoinRound {
				fullCircleSteps := int(stepsPerRightAngle * 4)
				x, y := 1.0, 0.0
				for j := 0; j <= fullCircleSteps; j++ {
					co.destPoly = append(co.destPoly, Pt(
						round64(float64(co.srcPoly[0].X)+x*delta),
						round64(float64(co.srcPoly[0].Y)+y*delta)))
					x2 := x
					x = x*co.cosTbl - co.sinTbl*y
					y = x2*co.sinTbl + y*co.cosTbl
				}
			} else {
				x, y := -1.0, -1.0
				for j := 0; j < 4; j++ {
					co.destPoly = append(co.destPoly, Pt(
						round64(float64(co.srcPoly[0].X)+x*delta),
						round64(float64(co.srcPoly[0].Y)+y*delta)))
					switch {
					case x < 0:
						x = 1
					case y < 0:
						y = 1
					default:
						x = -1
					}
				}
			}
			co.destPolys = append(co.destPolys, co.destPoly)
			continue
		}

		co.normals = make([]DoublePoint, 0, n)
		for j := 0; j < n-1; j++ {
			co.normals = append(co.normals, getUnitNormal(co.srcPoly[j], co.srcPoly[j+1]))
		}
		if node.endType == EndClosedLine || node.endType == EndClosedPolygon {
			co.normals = append(co.normals, getUnitNormal(co.srcPoly[n-1], co.srcPoly[0]))
		} else {
			co.normals = append(co.normals, co.normals[n-2])
		}

		switch node.endType {
		case EndClosedPolygon:
			k := n - 1
			for j := 0; j < n; j++ {
				co.offsetPoint(j, &k, node.joinType)
			}
			co.destPolys = append(co.destPolys, co.destPoly)
		case EndClosedLine:
			k := n - 1
			for j := 0; j < n; j++ {
				co.offsetPoint(j, &k, node.joinType)
			}
			co.destPolys = append(co.destPolys, co.destPoly)
			co.destPoly = nil
			last := co.normals[n-1]
			for j := n - 1; j > 0; j-- {
				co.normals[j] = DoublePoint{X: -co.normals[j-1].X, Y: -co.normals[j-1].Y}
			}
			co.normals[0] = DoublePoint{X: -last.X, Y: -last.Y}
			k = 0
			for j := n - 1; j >= 0; j-- {
				co.offsetPoint(j, &k, node.joinType)
			}
			co.destPolys = append(co.destPolys, co.destPoly)
		default:
			k := 0
			for j := 1; j < n-1; j++ {
				co.offsetPoint(j, &k, node.joinType)
			}

			if node.endType == EndOpenButt {
				j := n - 1
				co.destPoly = append(co.destPoly, Pt(
					round64(float64(co.srcPoly[j].X)+co.normals[j].X*delta),
					round64(float64(co.srcPoly[j].Y)+co.normals[j].Y*delta)))
				co.destPoly = append(co.destPoly, Pt(
					round64(float64(co.srcPoly[j].X)-co.normals[j].X*delta),
					round64(float64(co.srcPoly[j].Y)-co.normals[j].Y*delta)))
			} else {
				j := n - 1
				k = n - 2
				co.sinA = 0
				co.normals[j] = DoublePoint{X: -co.normals[j].X, Y: -co.normals[j].Y}
				if node.endType == EndOpenSquare {
					co.doSquare(j, k)
				} else {
					co.doRound(j, k)
				}
			}

			for j := n - 1; j > 0; j-- {
				co.normals[j] = DoublePoint{X: -co.normals[j-1].X, Y: -co.normals[j-1].Y}
			}
			co.normals[0] = DoublePoint{X: -co.normals[1].X, Y: -co.normals[1].Y}

			k = n - 1
			for j := k - 1; j > 0; j-- {
				co.offsetPoint(j, &k, node.joinType)
			}

			if node.endType == EndOpenButt {
				co.destPoly = append(co.destPoly, Pt(
					round64(float64(co.srcPoly[0].X)-co.normals[0].X*delta),
					round64(float64(co.srcPoly[0].Y)-co.normals[0].Y*delta)))
				co.destPoly = append(co.destPoly, Pt(
					round64(float64(co.srcPoly[0].X)+co.normals[0].X*delta),
					round64(float64(co.srcPoly[0].Y)+co.normals[0].Y*delta)))
			} else {
				k = 1
				co.sinA = 0
				if node.endType == EndOpenSquare {
					co.doSquare(0, 1)
				} else {
					co.doRound(0, 1)
				}
			}
			co.destPolys = append(co.destPolys, co.destPoly)
		}
	}
}

func (co *ClipperOffset) offsetPoint(j int, k *int, joinType JoinType) {
	kk := *k
	co.sinA = co.normals[kk].X*co.normals[j].Y - co.normals[j].X*co.normals[kk].Y

	if math.Abs(co.sinA*co.delta) < 1.0 {
		cosA := co.normals[kk].X*co.normals[j].X + co.normals[j].Y*co.normals[kk].Y
		if cosA > 0 {
			co.destPoly = append(co.destPoly, Pt(
				round64(float64(co.srcPoly[j].X)+co.normals[kk].X*co.delta),
				round64(float64(co.srcPoly[j].Y)+co.normals[kk].Y*co.delta)))
			*k = j
			return
		}
	} else if co.sinA > 1.0 {
		co.sinA = 1.0
	} else if co.sinA < -1.0 {
		co.sinA = -1.0
	}

	if co.sinA*co.delta < 0 {
		co.destPoly = append(co.destPoly, Pt(
			round64(float64(co.srcPoly[j].X)+co.normals[kk].X*co.delta),
			round64(float64(co.srcPoly[j].Y)+co.normals[kk].Y*co.delta)))
		co.destPoly = append(co.destPoly, co.srcPoly[j])
		co.destPoly = append(co.destPoly, Pt(
			round64(float64(co.srcPoly[j].X)+co.normals[j].X*co.delta),
			round64(float64(co.srcPoly[j].Y)+co.normals[j].Y*co.delta)))
	} else {
		switch joinType {
		case JoinMiter:
			r := 1 + (co.normals[j].X*co.normals[kk].X + co.normals[j].Y*co.normals[kk].Y)
			if r >= co.miterLim {
				co.doMiter(j, kk, r)
			} else {
				co.doSquare(j, kk)
			}
		case JoinSquare:
			co.doSquare(j, kk)
		case JoinRound:
			co.doRound(j, kk)
		}
	}
	*k = j
}

func (co *ClipperOffset) doSquare(j, k int) {
	dx := math.Tan(math.Atan2(co.sinA,
		co.normals[k].X*co.normals[j].X+co.normals[k].Y*co.normals[j].Y) / 4)
	co.destPoly = append(co.destPoly, Pt(
		round64(float64(co.srcPoly[j].X)+co.delta*(co.normals[k].X-co.normals[k].Y*dx)),
		round64(float64(co.srcPoly[j].Y)+co.delta*(co.normals[k].Y+co.normals[k].X*dx))))
	co.destPoly = append(co.destPoly, Pt(
		round64(float64(co.srcPoly[j].X)+co.delta*(co.normals[j].X+co.normals[j].Y*dx)),
		round64(float64(co.srcPoly[j].Y)+co.delta*(co.normals[j].Y-co.normals[j].X*dx))))
}

func (co *ClipperOffset) doMiter(j, k int, r float64) {
	q := co.delta / r
	co.destPoly = append(co.destPoly, Pt(
		round64(float64(co.srcPoly[j].X)+(co.normals[k].X+co.normals[j].X)*q),
		round64(float64(co.srcPoly[j].Y)+(co.normals[k].Y+co.normals[j].Y)*q)))
}

func (co *ClipperOffset) doRound(j, k int) {
	a := math.Atan2(co.sinA, co.normals[k].X*co.normals[j].X+co.normals[k].Y*co.normals[j].Y)
	steps := int(round64(co.stepsPerRad * math.Abs(a)))
	if steps < 1 {
		steps = 1
	}

	x, y := co.normals[k].X, co.normals[k].Y
	for i := 0; i < steps; i++ {
		co.destPoly = append(co.destPoly, Pt(
			round64(float64(co.srcPoly[j].X)+x*co.delta),
			round64(float64(co.srcPoly[j].Y)+y*co.delta)))
		x2 := x
		x = x*co.cosTbl - co.sinTbl*y
		y = x2*co.sinTbl + y*co.cosTbl
	}
	co.destPoly = append(co.destPoly, Pt(
		round64(float64(co.srcPoly[j].X)+co.normals[j].X*co.delta),
		round64(float64(co.srcPoly[j].Y)+co.normals[j].Y*co.delta)))
}
