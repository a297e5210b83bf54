package cloth

import "math"

// BB is an axis aligned box in rest-plane coordinates.
type BB struct {
	L, B, R, T float64
}

func NewBBForExtents(c Planar, hw, hh float64) BB {
	return BB{
		L: c[0] - hw,
		B: c[1] - hh,
		R: c[0] + hw,
		T: c[1] + hh,
	}
}

func NewBBForCircle(p Planar, r float64) BB {
	return NewBBForExtents(p, r, r)
}

// NewBBForCapsule bounds the segment a-b swept by radius r.
func NewBBForCapsule(a, b Planar, r float64) BB {
	return BB{
		L: math.Min(a[0], b[0]) - r,
		B: math.Min(a[1], b[1]) - r,
		R: math.Max(a[0], b[0]) + r,
		T: math.Max(a[1], b[1]) + r,
	}
}

func (a BB) Intersects(b BB) bool {
	return a.L <= b.R && b.L <= a.R && a.B <= b.T && b.B <= a.T
}

func (bb BB) ContainsVect(v Planar) bool {
	return bb.L <= v[0] && bb.R >= v[0] && bb.B <= v[1] && bb.T >= v[1]
}

func (bb BB) Expand(v Planar) BB {
	return BB{
		math.Min(bb.L, v[0]),
		math.Min(bb.B, v[1]),
		math.Max(bb.R, v[0]),
		math.Max(bb.T, v[1]),
	}
}
