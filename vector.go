package cloth

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vector is the 3D vector used for every position, force and anchor.
type Vector = mgl64.Vec3

// Planar is a coordinate in the cloth's rest plane.
type Planar = mgl64.Vec2

func Clamp(f, min, max float64) float64 {
	return math.Min(math.Max(f, min), max)
}

func Clamp01(f float64) float64 {
	return math.Max(0, math.Min(f, 1))
}

func Lerp(f1, f2, t float64) float64 {
	return f1*(1.0-t) + f2*t
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Finite reports whether all three components are real numbers.
func Finite(v Vector) bool {
	return finite(v[0]) && finite(v[1]) && finite(v[2])
}

// ClosestPointOnSegment returns the point of the finite segment a-b nearest to p.
// A degenerate segment returns a.
func ClosestPointOnSegment(p, a, b Planar) Planar {
	delta := b.Sub(a)
	lenSq := delta.LenSqr()
	if lenSq == 0 {
		return a
	}
	t := Clamp01(p.Sub(a).Dot(delta) / lenSq)
	return a.Add(delta.Mul(t))
}

// SegmentDistance is the distance from p to the finite segment a-b.
func SegmentDistance(p, a, b Planar) float64 {
	return p.Sub(ClosestPointOnSegment(p, a, b)).Len()
}

// Plane is the cloth's rest plane. U runs along grid x, V runs along grid y.
type Plane struct {
	Origin Vector
	U, V   Vector
}

// Orientation selects the rest plane the grid is laid out in.
type Orientation int

const (
	// cloth hangs in the XY plane, rows going down -Y
	ORIENTATION_VERTICAL Orientation = iota
	// cloth lies in the XZ plane, rows going along +Z
	ORIENTATION_HORIZONTAL
)

func NewPlane(origin Vector, orientation Orientation) Plane {
	switch orientation {
	case ORIENTATION_HORIZONTAL:
		return Plane{Origin: origin, U: Vector{1, 0, 0}, V: Vector{0, 0, 1}}
	default:
		return Plane{Origin: origin, U: Vector{1, 0, 0}, V: Vector{0, -1, 0}}
	}
}

func (p Plane) Project(v Vector) Planar {
	d := v.Sub(p.Origin)
	return Planar{d.Dot(p.U), d.Dot(p.V)}
}

func (p Plane) Point(c Planar) Vector {
	return p.Origin.Add(p.U.Mul(c[0])).Add(p.V.Mul(c[1]))
}

// Normal points out of the cloth's front face.
func (p Plane) Normal() Vector {
	return p.U.Cross(p.V).Normalize()
}
