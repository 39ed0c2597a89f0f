//===============================================================================
//                                                                              //
// Author    :  Angus Johnson (original C++/Delphi Clipper library)            //
// This port  :  Vatti sweep-line clipper and winding-number offsetter for Go  //
//                                                                              //
// License:                                                                     //
// Use, modification & distribution is subject to Boost Software License Ver 1. //
// http://www.boost.org/LICENSE_1_0.txt                                         //
//                                                                              //
// Attributions:                                                                //
// The code in this library is an extension of Bala Vatti's clipping algorithm: //
// "A generic solution to polygon clipping"                                     //
// Communications of the ACM, Vol 35, Issue 7 (July 1992) pp 56-63.             //
//                                                                              //
// See also:                                                                    //
// "Polygon Offsetting by Computing Winding Numbers"                            //
// Paper no. DETC2005-85513 pp. 565-575, ASME 2005 IDETC/CIE2005                //
//                                                                              //
//===============================================================================

// Package clipper implements Bala Vatti's generic polygon clipping algorithm
// over exact integer coordinates, plus winding-number based polygon and
// polyline offsetting. It computes boolean combinations (intersection,
// union, difference, XOR) of arbitrary planar polygon sets, including
// self-intersecting and multiply-nested polygons with holes.
package clipper

// cInt is the engine's coordinate type. The original C++ library supports a
// narrower 32-bit build; Go's int64 costs nothing extra on any platform this
// engine targets, so that option is not carried forward (see DESIGN.md).
type cInt = int64

const (
	loRange cInt = 0x3FFFFFFF
	hiRange cInt = 0x3FFFFFFFFFFFFFFF
)

// ClipType selects the boolean set operation performed by Clipper.Execute.
type ClipType int

const (
	Intersection ClipType = iota
	Union
	Difference
	Xor
)

// PolyType tags a path as belonging to the subject or clip operand.
type PolyType int

const (
	Subject PolyType = iota
	Clip
)

// PolyFillType selects the winding rule used to decide a path's interior.
type PolyFillType int

const (
	EvenOdd PolyFillType = iota
	NonZero
	Positive
	Negative
)

// JoinType selects how ClipperOffset joins convex vertices.
type JoinType int

const (
	JoinSquare JoinType = iota
	JoinRound
	JoinMiter
)

// EndType selects how ClipperOffset caps the ends of a path.
type EndType int

const (
	EndClosedPolygon EndType = iota
	EndClosedLine
	EndOpenButt
	EndOpenSquare
	EndOpenRound
)

// edgeSide records which side of an OutRec ring an edge is contributing to.
type edgeSide int

const (
	edgeLeft edgeSide = iota
	edgeRight
)

// direction is the AEL traversal direction used while processing horizontals.
type direction int

const (
	leftToRight direction = iota
	rightToLeft
)

// IntPoint is a point with exact integer coordinates. Z is always present so
// that a ZFillFunc callback can be wired without a separate build
// configuration (see DESIGN.md, "use_xyz"); it is ignored unless the owning
// Clipper has a callback installed via SetZFillFunction.
type IntPoint struct {
	X, Y, Z cInt
}

// Pt is a convenience constructor for a two-dimensional IntPoint.
func Pt(x, y cInt) IntPoint { return IntPoint{X: x, Y: y} }

// PtXYZ is a convenience constructor for a three-dimensional IntPoint.
func PtXYZ(x, y, z cInt) IntPoint { return IntPoint{X: x, Y: y, Z: z} }

// Equals reports whether two points have the same X and Y (Z is not
// considered part of point identity: it is auxiliary data).
func (p IntPoint) Equals(o IntPoint) bool {
	return p.X == o.X && p.Y == o.Y
}

// Path is an ordered sequence of points, interpreted as a closed polygon
// (with an implicit closing edge from the last point to the first) or as an
// open polyline, depending on the call site.
type Path []IntPoint

// Paths is an ordered collection of Path values.
type Paths []Path

// Clone returns a deep copy of p.
func (p Path) Clone() Path {
	out := make(Path, len(p))
	copy(out, p)
	return out
}

// Clone returns a deep copy of ps.
func (ps Paths) Clone() Paths {
	out := make(Paths, len(ps))
	for i, p := range ps {
		out[i] = p.Clone()
	}
	return out
}

// IntRect is an axis-aligned bounding rectangle in the engine's Y-down
// coordinate convention: Top is numerically less than Bottom.
type IntRect struct {
	Left, Top, Right, Bottom cInt
}

// DoublePoint is a floating-point point, used internally by the offset
// engine for unit normals and round-join arc interpolation.
type DoublePoint struct {
	X, Y float64
}

// ZFillFunc is invoked once per synthesized intersection point when a
// Clipper has a callback installed via SetZFillFunction, so the caller can
// compute the Z attribute of an intersection from the Z values of the four
// edge endpoints that produced it. It must be deterministic: the engine
// calls it in a fixed, reproducible order (see spec.md §5, Ordering
// guarantees).
type ZFillFunc func(e1bot, e1top, e2bot, e2top IntPoint, pt *IntPoint)
