package wirespin

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Point3 is an immutable 3D point. Every transform returns a new value.
type Point3 struct {
	X float64
	Y float64
	Z float64
}

func NewPoint3(x, y, z float64) Point3 {
	return Point3{X: x, Y: y, Z: z}
}

// NewPoint2 returns a point with Z = 1 so it survives a perspective divide unchanged.
func NewPoint2(x, y float64) Point3 {
	return Point3{X: x, Y: y, Z: 1.0}
}

func PointFromVec3(v mgl64.Vec3) Point3 {
	return Point3{X: v[0], Y: v[1], Z: v[2]}
}

func (p Point3) Vec3() mgl64.Vec3 {
	return mgl64.Vec3{p.X, p.Y, p.Z}
}

func (p Point3) Sub(o Point3) Point3 {
	return PointFromVec3(p.Vec3().Sub(o.Vec3()))
}

func (p Point3) Add(o Point3) Point3 {
	return PointFromVec3(p.Vec3().Add(o.Vec3()))
}

// Scale multiplies all three components by s.
func (p Point3) Scale(s float64) Point3 {
	return PointFromVec3(p.Vec3().Mul(s))
}

// ApproxEqual reports whether every component differs by at most eps.
func (p Point3) ApproxEqual(o Point3, eps float64) bool {
	return math.Abs(p.X-o.X) <= eps && math.Abs(p.Y-o.Y) <= eps && math.Abs(p.Z-o.Z) <= eps
}

// IsFinite reports whether no component is NaN or infinite.
func (p Point3) IsFinite() bool {
	for _, c := range [3]float64{p.X, p.Y, p.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// TranslateZ pushes the point dz along the view axis.
func TranslateZ(p Point3, dz float64) Point3 {
	return Point3{X: p.X, Y: p.Y, Z: p.Z + dz}
}

// Project divides X and Y by Z and keeps Z. It does not guard against Z == 0,
// see ProjectClamped for the guarded version.
func Project(p Point3) Point3 {
	return Point3{X: p.X / p.Z, Y: p.Y / p.Z, Z: p.Z}
}

// ProjectClamped is Project with the denominator held at or above minDepth.
// The returned Z is the unclamped depth.
func ProjectClamped(p Point3, minDepth float64) Point3 {
	z := p.Z
	if z < minDepth {
		z = minDepth
	}
	return Point3{X: p.X / z, Y: p.Y / z, Z: p.Z}
}
