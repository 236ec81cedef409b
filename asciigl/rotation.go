package asciigl

import "github.com/chewxy/math32"

// Rotation holds the three Euler angles (radians) of the cube.
type Rotation struct {
	A, B, C Scalar
}

// DefaultStep is the per-frame rotation delta.
var DefaultStep = Rotation{A: 0.03, B: 0.02, C: 0.01}

// InitialPose returns the starting orientation: one corner toward the viewer.
func InitialPose() Rotation {
	return Rotation{
		A: -math32.Pi / 2,
		B: -math32.Pi / 2,
		C: math32.Pi/2 + math32.Pi/4,
	}
}

// Advance adds step to r.
func (r *Rotation) Advance(step Rotation) {
	r.A += step.A
	r.B += step.B
	r.C += step.C
}

// Trig returns the sines and cosines of r.
func (r Rotation) Trig() Trig {
	sA, cA := math32.Sincos(r.A)
	sB, cB := math32.Sincos(r.B)
	sC, cC := math32.Sincos(r.C)
	return Trig{
		SinA: sA, CosA: cA,
		SinB: sB, CosB: cB,
		SinC: sC, CosC: cC,
	}
}

// Trig caches the trigonometric values of one Rotation.
type Trig struct {
	SinA, CosA Scalar
	SinB, CosB Scalar
	SinC, CosC Scalar
}

// Rotate applies the fused Rz(C)·Ry(B)·Rx(A) matrix to v.
func (t Trig) Rotate(v Vec3) Vec3 {
	sA, cA := t.SinA, t.CosA
	sB, cB := t.SinB, t.CosB
	sC, cC := t.SinC, t.CosC
	return Vec3{
		X: cA*cB*v.X + (cA*sB*sC-sA*cC)*v.Y + (cA*sB*cC+sA*sC)*v.Z,
		Y: sA*cB*v.X + (sA*sB*sC+cA*cC)*v.Y + (sA*sB*cC-cA*sC)*v.Z,
		Z: -sB*v.X + cB*sC*v.Y + cB*cC*v.Z,
	}
}

// Cube and camera constants.
const (
	CubeSize    Scalar = 1
	K2          Scalar = 10
	GridSpacing Scalar = 0.04
)

// Projection maps rotated model points onto a Width×Height character grid.
type Projection struct {
	Width   int
	Height  int
	K1      Scalar
	Spacing Scalar
}

// NewProjection derives the focal constant and sweep step for a grid.
func NewProjection(w, h int) Projection {
	return Projection{
		Width:   w,
		Height:  h,
		K1:      Scalar(w) * K2 * 3 / (8 * (math32.Sqrt(3) * CubeSize)),
		Spacing: 3 / Scalar(w),
	}
}

// Project rotates p and returns its grid cell and inverse depth.
//
// Cell coordinates are truncated toward zero and may fall outside the grid.
// Points on or behind the camera plane (ooz not finite and positive) return
// col = row = -1 and ooz = 0, which Frame.Plot always drops.
func (p Projection) Project(t Trig, pt Vec3) (col, row int, ooz Scalar) {
	r := t.Rotate(pt)
	ooz = 1 / (r.Z + K2)
	if !(ooz > 0) || math32.IsInf(ooz, 0) {
		return -1, -1, 0
	}
	col = int(Scalar(p.Width/2) + p.K1*ooz*r.X)
	row = int(Scalar(p.Height/2) - p.K1*ooz*r.Y)
	return col, row, ooz
}
