package wirespin

import "math"

const (
	// DefaultCameraDistance is how far along +Z the model is pushed before projection.
	DefaultCameraDistance = 1.0

	// DefaultMinDepth is the smallest denominator the perspective divide will use.
	DefaultMinDepth = 1e-3

	minCameraDistance = 0.1
	maxCameraDistance = 100.0
)

// Camera sits at the origin looking down +Z. Distance is added to every
// point's Z after rotation, MinDepth guards the perspective divide.
type Camera struct {
	Distance float64
	MinDepth float64
}

func NewCamera(distance float64) *Camera {
	return &Camera{
		Distance: distance,
		MinDepth: DefaultMinDepth,
	}
}

// ToView moves a model-space point into camera space.
func (c *Camera) ToView(p Point3) Point3 {
	return TranslateZ(p, c.Distance)
}

// Visible reports whether a camera-space point is in front of the near plane.
func (c *Camera) Visible(p Point3) bool {
	return p.Z >= c.minDepth()
}

// Project applies the clamped perspective divide to a camera-space point.
func (c *Camera) Project(p Point3) Point3 {
	return ProjectClamped(p, c.minDepth())
}

// Zoom moves the camera by delta, keeping the distance within sane limits.
func (c *Camera) Zoom(delta float64) {
	c.Distance = math.Min(maxCameraDistance, math.Max(minCameraDistance, c.Distance+delta))
}

func (c *Camera) minDepth() float64 {
	if c.MinDepth <= 0 {
		return DefaultMinDepth
	}
	return c.MinDepth
}
