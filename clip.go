package wirespin

// intersectNearPlane returns the point where the segment p1-p2 crosses the
// plane z = near. A segment parallel to the plane returns p1.
func intersectNearPlane(p1, p2 Point3, near float64) Point3 {
	dz := p2.Z - p1.Z
	if dz == 0 {
		return p1
	}
	t := (near - p1.Z) / dz
	return Point3{
		X: p1.X + t*(p2.X-p1.X),
		Y: p1.Y + t*(p2.Y-p1.Y),
		Z: near,
	}
}

// ClipSegment clips a camera-space segment against the camera's near plane.
// ok is false when both ends are behind it.
func (c *Camera) ClipSegment(a, b Point3) (Point3, Point3, bool) {
	near := c.minDepth()
	aIn, bIn := a.Z >= near, b.Z >= near
	switch {
	case aIn && bIn:
		return a, b, true
	case !aIn && !bIn:
		return a, b, false
	case aIn:
		return a, intersectNearPlane(a, b, near), true
	default:
		return intersectNearPlane(a, b, near), b, true
	}
}
