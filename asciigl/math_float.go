package asciigl

import "github.com/chewxy/math32"

// Scalar is the numeric type used by asciigl math operations.
type Scalar = float32

// Vec3 is a 3D vector used for both points and normals.
type Vec3 struct {
	X, Y, Z Scalar
}

func V3(x, y, z Scalar) Vec3 { return Vec3{X: x, Y: y, Z: z} }

func (v Vec3) Add(o Vec3) Vec3   { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Mul(s Scalar) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

func Dot(a, b Vec3) Scalar { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }

func Len(v Vec3) Scalar {
	return math32.Sqrt(Dot(v, v))
}

// Normalize returns v scaled to unit length.
//
// A zero-length vector is returned unchanged.
func Normalize(v Vec3) Vec3 {
	l := Len(v)
	if l > 0 {
		return v.Mul(1 / l)
	}
	return v
}

// Normalize normalizes v in place. See the Normalize function.
func (v *Vec3) Normalize() { *v = Normalize(*v) }

// axisVec returns the unit vector along a scaled by s.
func axisVec(a Axis, s Scalar) Vec3 {
	var v Vec3
	v.set(a, s)
	return v
}

func (v Vec3) get(a Axis) Scalar {
	switch a {
	case AxisX:
		return v.X
	case AxisY:
		return v.Y
	default:
		return v.Z
	}
}

func (v *Vec3) set(a Axis, s Scalar) {
	switch a {
	case AxisX:
		v.X = s
	case AxisY:
		v.Y = s
	default:
		v.Z = s
	}
}

// Axis names one of the three model-space axes.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return "?"
}
