package clipper

import "math/big"

// fullRangeThreshold is the coordinate magnitude beyond which cross products
// and area accumulation must switch to arbitrary-precision arithmetic to
// stay exact (spec.md §3, §4.3.2).
const fullRangeThreshold = loRange

// needsFullRange reports whether any coordinate in p is large enough that
// 64-bit cross products could overflow.
func needsFullRange(p Path) bool {
	for _, pt := range p {
		if pt.X > fullRangeThreshold || pt.X < -fullRangeThreshold ||
			pt.Y > fullRangeThreshold || pt.Y < -fullRangeThreshold {
			return true
		}
	}
	return false
}

// bigCrossProduct computes (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X) exactly,
// regardless of coordinate magnitude, using math/big. Nothing in the package
// calls it at present: slope equality uses bigSlopesEqual3/4 and area uses
// bigArea2.
func bigCrossProduct(o, a, b IntPoint) *big.Int {
	ax := big.NewInt(a.X - o.X)
	ay := big.NewInt(a.Y - o.Y)
	bx := big.NewInt(b.X - o.X)
	by := big.NewInt(b.Y - o.Y)

	left := new(big.Int).Mul(ax, by)
	right := new(big.Int).Mul(ay, bx)
	return left.Sub(left, right)
}

// bigSlopesEqual3 reports whether pt1, pt2, pt3 are collinear, using exact
// arbitrary-precision arithmetic.
func bigSlopesEqual3(pt1, pt2, pt3 IntPoint) bool {
	left := new(big.Int).Mul(big.NewInt(pt1.Y-pt2.Y), big.NewInt(pt2.X-pt3.X))
	right := new(big.Int).Mul(big.NewInt(pt1.X-pt2.X), big.NewInt(pt2.Y-pt3.Y))
	return left.Cmp(right) == 0
}

// bigSlopesEqual4 reports whether segments (pt1,pt2) and (pt3,pt4) are
// parallel, treating all four points as independent (the general case used
// when testing two distinct segments rather than three consecutive points).
func bigSlopesEqual4(pt1, pt2, pt3, pt4 IntPoint) bool {
	left := new(big.Int).Mul(big.NewInt(pt1.Y-pt2.Y), big.NewInt(pt3.X-pt4.X))
	right := new(big.Int).Mul(big.NewInt(pt1.X-pt2.X), big.NewInt(pt3.Y-pt4.Y))
	return left.Cmp(right) == 0
}

// bigArea2 computes twice the signed area of path using arbitrary-precision
// accumulation, for use once needsFullRange(path) is true. Matches Area's
// sign convention: positive for a clockwise-ordered path under Y-down
// coordinates.
func bigArea2(path Path) *big.Int {
	n := len(path)
	if n < 3 {
		return big.NewInt(0)
	}
	total := big.NewInt(0)
	j := n - 1
	for i := 0; i < n; i++ {
		xi := big.NewInt(path[j].X + path[i].X)
		yi := big.NewInt(path[j].Y - path[i].Y)
		total.Add(total, new(big.Int).Mul(xi, yi))
		j = i
	}
	return total.Neg(total)
}
