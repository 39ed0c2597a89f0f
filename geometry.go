package clipper

import "math/big"

// Area computes the signed area of path via the shoelace formula. Coordinates
// beyond loRange are accumulated with math/big to stay exact (spec.md §4.1).
func Area(path Path) float64 {
	n := len(path)
	if n < 3 {
		return 0
	}
	if needsFullRange(path) {
		half := new(big.Rat).SetFrac(bigArea2(path), big.NewInt(2))
		f, _ := half.Float64()
		return f
	}
	var a cInt
	j := n - 1
	for i := 0; i < n; i++ {
		a += (path[j].X + path[i].X) * (path[j].Y - path[i].Y)
		j = i
	}
	return -float64(a) / 2.0
}

// Orientation reports whether path's signed area is non-negative under the
// engine's Y-down convention (spec.md §4.1).
func Orientation(path Path) bool {
	return Area(path) >= 0
}

// PointInPolygon reports -1 if pt lies exactly on path's boundary, 0 if pt
// is outside path, and +1 if pt is inside, using the exact-integer
// Hormann-Agathos crossing-number algorithm (spec.md §4.1).
func PointInPolygon(pt IntPoint, path Path) int {
	result := 0
	n := len(path)
	if n < 3 {
		return 0
	}
	ip0 := path[0]
	for i := 1; i <= n; i++ {
		var ip1 IntPoint
		if i == n {
			ip1 = path[0]
		} else {
			ip1 = path[i]
		}
		if ip1.Y == pt.Y {
			if ip1.X == pt.X || (ip0.Y == pt.Y && (ip1.X > pt.X) == (ip0.X < pt.X)) {
				return -1
			}
		}
		if (ip0.Y < pt.Y) != (ip1.Y < pt.Y) {
			if ip0.X >= pt.X {
				if ip1.X > pt.X {
					result = 1 - result
				} else {
					d := crossProductD(ip0, ip1, pt)
					if d == 0 {
						return -1
					}
					if (d > 0) == (ip1.Y > ip0.Y) {
						result = 1 - result
					}
				}
			} else {
				if ip1.X > pt.X {
					d := crossProductD(ip0, ip1, pt)
					if d == 0 {
						return -1
					}
					if (d > 0) == (ip1.Y > ip0.Y) {
						result = 1 - result
					}
				}
			}
		}
		ip0 = ip1
	}
	return result
}

// crossProductD computes (b.X-a.X)*(pt.Y-a.Y) - (pt.X-a.X)*(b.Y-a.Y),
// falling back to arbitrary precision once coordinates could overflow.
func crossProductD(a, b, pt IntPoint) cInt {
	if abs64(a.X)|abs64(a.Y)|abs64(b.X)|abs64(b.Y)|abs64(pt.X)|abs64(pt.Y) > loRange {
		l1 := new(big.Int).Mul(big.NewInt(b.X-a.X), big.NewInt(pt.Y-a.Y))
		l2 := new(big.Int).Mul(big.NewInt(pt.X-a.X), big.NewInt(b.Y-a.Y))
		return cInt(l1.Sub(l1, l2).Sign())
	}
	return (b.X - a.X) * (pt.Y - a.Y) - (pt.X - a.X) * (b.Y - a.Y)
}

// ReversePath reverses path in place, flipping its orientation.
func ReversePath(path Path) {
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
}

// ReversePaths reverses every path in paths in place.
func ReversePaths(paths Paths) {
	for _, p := range paths {
		ReversePath(p)
	}
}

// SimplifyPolygon removes self-intersections from poly by unioning it
// against itself under fillType, returning the resulting non-self-
// intersecting paths (spec.md §4.1).
func SimplifyPolygon(poly Path, fillType PolyFillType) Paths {
	return SimplifyPolygons(Paths{poly}, fillType)
}

// SimplifyPolygons is the multi-path form of SimplifyPolygon.
func SimplifyPolygons(polys Paths, fillType PolyFillType) Paths {
	c := NewClipper()
	c.AddPaths(polys, Subject, true)
	var out Paths
	if fillType == NonZero {
		c.Execute(Union, &out, NonZero, NonZero)
	} else {
		c.Execute(Union, &out, fillType, fillType)
	}
	return out
}

// distanceSquared returns the squared Euclidean distance between pt1 and pt2.
func distanceSquared(pt1, pt2 IntPoint) float64 {
	dx := float64(pt1.X - pt2.X)
	dy := float64(pt1.Y - pt2.Y)
	return dx*dx + dy*dy
}

// distanceFromLineSquared returns the squared perpendicular distance from pt
// to the infinite line through ln1-ln2.
func distanceFromLineSquared(pt, ln1, ln2 IntPoint) float64 {
	a := float64(ln1.Y - ln2.Y)
	b := float64(ln2.X - ln1.X)
	c := a*float64(ln1.X) + b*float64(ln1.Y)
	c = a*float64(pt.X) + b*float64(pt.Y) - c
	return (c * c) / (a*a + b*b)
}

// CleanPolygon removes vertices whose perpendicular distance to the adjacent
// edge is at most distance, and merges near-duplicate points (spec.md §4.1).
// distance defaults to sqrt(2) when 0 is passed.
func CleanPolygon(poly Path, distance float64) Path {
	if distance == 0 {
		distance = 1.4142135623730951 // sqrt(2)
	}
	n := len(poly)
	if n == 0 {
		return nil
	}
	outPts := make([]*outPt, n)
	for i, p := range poly {
		outPts[i] = &outPt{Pt: p}
	}
	for i := 0; i < n; i++ {
		outPts[i].NextOp = outPts[(i+1)%n]
		outPts[(i+1)%n].PrevOp = outPts[i]
	}

	distSqrd := distance * distance
	op := outPts[0]
	for {
		if op.PrevOp == op {
			break
		}
		if pointsAreClose(op.Pt, op.PrevOp.Pt, distSqrd) {
			op = excludeOp(op)
			n--
			if n == 0 {
				return nil
			}
			continue
		}
		if pointsAreClose(op.PrevOp.Pt, op.NextOp.Pt, distSqrd) {
			excludeOp(op.NextOp)
			op = excludeOp(op)
			n -= 2
			if n == 0 {
				return nil
			}
			continue
		}
		if slopesNearCollinear(op.PrevOp.Pt, op.Pt, op.NextOp.Pt, distSqrd) {
			op = excludeOp(op)
			n--
			if n == 0 {
				return nil
			}
			continue
		}
		op = op.NextOp
		if op == outPts[0] {
			break
		}
	}
	if n < 3 {
		return nil
	}
	result := make(Path, 0, n)
	p := op
	for i := 0; i < n; i++ {
		result = append(result, p.Pt)
		p = p.NextOp
	}
	return result
}

func pointsAreClose(pt1, pt2 IntPoint, distSqrd float64) bool {
	return distanceSquared(pt1, pt2) <= distSqrd
}

func slopesNearCollinear(pt1, pt2, pt3 IntPoint, distSqrd float64) bool {
	if distanceSquared(pt1, pt2) > distanceSquared(pt3, pt2) {
		return false
	}
	return distanceFromLineSquared(pt2, pt1, pt3) <= distSqrd
}

func excludeOp(op *outPt) *outPt {
	result := op.PrevOp
	op.PrevOp.NextOp = op.NextOp
	op.NextOp.PrevOp = op.PrevOp
	return result
}

// CleanPolygons is the multi-path form of CleanPolygon.
func CleanPolygons(polys Paths, distance float64) Paths {
	out := make(Paths, 0, len(polys))
	for _, p := range polys {
		if c := CleanPolygon(p, distance); c != nil {
			out = append(out, c)
		}
	}
	return out
}

// MinkowskiSum computes the Minkowski addition of pattern translated along
// every vertex/edge of path, unioning the resulting quads (spec.md §4.1).
func MinkowskiSum(pattern, path Path, pathIsClosed bool) Paths {
	quads := minkowskiInternal(pattern, path, pathIsClosed)
	c := NewClipper()
	c.AddPaths(quads, Subject, true)
	var out Paths
	c.Execute(Union, &out, NonZero, NonZero)
	return out
}

// MinkowskiSumPaths applies MinkowskiSum to every path in paths and unions
// all resulting geometry together (spec.md §4.1, "SUPPLEMENTED FEATURES").
func MinkowskiSumPaths(pattern Path, paths Paths, pathIsClosed bool) Paths {
	c := NewClipper()
	for _, path := range paths {
		quads := minkowskiInternal(pattern, path, pathIsClosed)
		c.AddPaths(quads, Subject, true)
	}
	var out Paths
	c.Execute(Union, &out, NonZero, NonZero)
	return out
}

// MinkowskiDiff computes the Minkowski difference of poly2 from poly1.
func MinkowskiDiff(poly1, poly2 Path) Paths {
	negated := make(Path, len(poly2))
	for i, p := range poly2 {
		negated[i] = Pt(-p.X, -p.Y)
	}
	return MinkowskiSum(negated, poly1, true)
}

// minkowskiInternal builds the quads connecting pattern translated to every
// vertex of path with pattern translated to its successor, one quad per
// pattern edge per path edge (spec.md §4.1). Callers union the result.
func minkowskiInternal(pattern, path Path, pathIsClosed bool) Paths {
	delta := 1
	if !pathIsClosed {
		delta = 0
	}
	patLen := len(pattern)
	pathLen := len(path)

	quads := make(Paths, 0, pathLen*patLen)
	lastPath := pathLen - 1 + delta
	for i := 0; i < lastPath; i++ {
		i2 := (i + 1) % pathLen
		for j := 0; j < patLen; j++ {
			j2 := (j + 1) % patLen
			quad := Path{
				Pt(path[i].X+pattern[j].X, path[i].Y+pattern[j].Y),
				Pt(path[i2].X+pattern[j].X, path[i2].Y+pattern[j].Y),
				Pt(path[i2].X+pattern[j2].X, path[i2].Y+pattern[j2].Y),
				Pt(path[i].X+pattern[j2].X, path[i].Y+pattern[j2].Y),
			}
			if !Orientation(quad) {
				ReversePath(quad)
			}
			quads = append(quads, quad)
		}
	}
	return quads
}

// PolyTreeToPaths flattens every node of tree into a single Paths value,
// including open-path nodes (spec.md §4.5).
func PolyTreeToPaths(tree *PolyTree) Paths {
	out := make(Paths, 0, len(tree.allNodes))
	for _, n := range tree.allNodes {
		if len(n.Contour) > 0 {
			out = append(out, n.Contour)
		}
	}
	return out
}

// ClosedPathsFromPolyTree returns only the closed-polygon contours of tree.
func ClosedPathsFromPolyTree(tree *PolyTree) Paths {
	out := make(Paths, 0, len(tree.allNodes))
	for _, n := range tree.allNodes {
		if !n.isOpen && len(n.Contour) > 0 {
			out = append(out, n.Contour)
		}
	}
	return out
}

// OpenPathsFromPolyTree returns only the open-polyline contours of tree.
func OpenPathsFromPolyTree(tree *PolyTree) Paths {
	out := make(Paths, 0, len(tree.allNodes))
	for _, n := range tree.allNodes {
		if n.isOpen && len(n.Contour) > 0 {
			out = append(out, n.Contour)
		}
	}
	return out
}
