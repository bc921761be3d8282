package wirespin

import (
	"math"

	"go.uber.org/zap"

	"github.com/smasonuk/wirespin/internal/logger"
)

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min Point3
	Max Point3
}

// ComputeBounds finds the componentwise min and max in a single pass.
// ok is false when there are no points.
func ComputeBounds(points []Point3) (b Bounds, ok bool) {
	if len(points) == 0 {
		return Bounds{}, false
	}
	lo, hi := points[0].Vec3(), points[0].Vec3()
	for _, p := range points[1:] {
		v := p.Vec3()
		for i := 0; i < 3; i++ {
			lo[i] = math.Min(lo[i], v[i])
			hi[i] = math.Max(hi[i], v[i])
		}
	}
	return Bounds{Min: PointFromVec3(lo), Max: PointFromVec3(hi)}, true
}

// Center is the midpoint of the box.
func (b Bounds) Center() Point3 {
	return PointFromVec3(b.Min.Vec3().Add(b.Max.Vec3()).Mul(0.5))
}

// Extent is the size of the box along each axis.
func (b Bounds) Extent() Point3 {
	return b.Max.Sub(b.Min)
}

func (b Bounds) MaxExtent() float64 {
	e := b.Extent()
	return math.Max(e.X, math.Max(e.Y, e.Z))
}

// NormalizationParams moves a mesh's box center to the origin and scales it
// so its longest side is 1.
type NormalizationParams struct {
	Center Point3
	Scale  float64
}

// IdentityParams leaves points where they are.
func IdentityParams() NormalizationParams {
	return NormalizationParams{Center: Point3{}, Scale: 1.0}
}

// Apply centers and scales a single point.
func (n NormalizationParams) Apply(p Point3) Point3 {
	return p.Sub(n.Center).Scale(n.Scale)
}

// Normalize derives centering and scale from the mesh's bounding box. An empty
// mesh gets IdentityParams. A box with no positive extent (a single point)
// keeps scale 1. The mesh is not modified.
func Normalize(mesh *Mesh) NormalizationParams {
	b, ok := mesh.Bounds()
	if !ok {
		return IdentityParams()
	}

	params := NormalizationParams{Center: b.Center(), Scale: 1.0}
	if maxSize := b.MaxExtent(); maxSize > 0 {
		params.Scale = 1.0 / maxSize
	}

	logger.Debug("model normalized",
		zap.Float64s("min", []float64{b.Min.X, b.Min.Y, b.Min.Z}),
		zap.Float64s("max", []float64{b.Max.X, b.Max.Y, b.Max.Z}),
		zap.Float64s("center", []float64{params.Center.X, params.Center.Y, params.Center.Z}),
		zap.Float64("scale", params.Scale),
	)
	return params
}
