package wirespin

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// Axis selects the axis a rotation turns about.
type Axis int

const (
	ROTX Axis = iota // about X, in the Y-Z plane
	ROTY             // about Y, in the X-Z plane
	ROTZ             // about Z, in the X-Y plane
)

func (a Axis) String() string {
	switch a {
	case ROTX:
		return "x"
	case ROTY:
		return "y"
	case ROTZ:
		return "z"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

// ParseAxis accepts "x", "y" or "z" (any case).
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "x":
		return ROTX, nil
	case "y", "":
		return ROTY, nil
	case "z":
		return ROTZ, nil
	}
	return ROTY, fmt.Errorf("unknown rotation axis %q", s)
}

// NewRotationMatrix returns the 3x3 matrix that turns points by theta about
// the given axis, with the sign convention
//
//	ROTX: y' = y·cos − z·sin, z' = y·sin + z·cos
//	ROTY: x' = x·cos − z·sin, z' = x·sin + z·cos
//	ROTZ: x' = x·cos − y·sin, y' = x·sin + y·cos
//
// mgl64's Y rotation turns the other way, hence the negated angle.
func NewRotationMatrix(axis Axis, theta float64) mgl64.Mat3 {
	switch axis {
	case ROTX:
		return mgl64.Rotate3DX(theta)
	case ROTZ:
		return mgl64.Rotate3DZ(theta)
	default:
		return mgl64.Rotate3DY(-theta)
	}
}

// Rotate turns p by angle radians about axis.
func Rotate(p Point3, axis Axis, angle float64) Point3 {
	return PointFromVec3(NewRotationMatrix(axis, angle).Mul3x1(p.Vec3()))
}

// RotateXZ rotates in the X-Z plane (about Y). This is the animation default.
func RotateXZ(p Point3, angle float64) Point3 {
	return Rotate(p, ROTY, angle)
}

// RotateYZ rotates in the Y-Z plane (about X).
func RotateYZ(p Point3, angle float64) Point3 {
	return Rotate(p, ROTX, angle)
}

// RotateXY rotates in the X-Y plane (about Z).
func RotateXY(p Point3, angle float64) Point3 {
	return Rotate(p, ROTZ, angle)
}
