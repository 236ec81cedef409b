package asciigl

// Face describes one pair of opposite cube faces: the axis held at ±size/2,
// the two axes swept across the face (outer loop first) and the colors of the
// positive ("front") and negative ("back") face.
type Face struct {
	Fixed Axis
	Outer Axis
	Inner Axis
	Front Color
	Back  Color
}

// CubeFaces is the default coloring, one pair per principal axis.
var CubeFaces = [3]Face{
	{Fixed: AxisZ, Outer: AxisY, Inner: AxisX, Front: ColorYellow, Back: ColorWhite},
	{Fixed: AxisY, Outer: AxisX, Inner: AxisZ, Front: ColorGreen, Back: ColorBlue},
	{Fixed: AxisX, Outer: AxisZ, Inner: AxisY, Front: ColorBoldRed, Back: ColorRed},
}

// Grid line band centers: one third of the edge in from each side.
const (
	gridLow  = -CubeSize/2 + CubeSize/3
	gridHigh = CubeSize/2 - CubeSize/3
)

// InGridBand reports whether a swept coordinate lies inside a grid line band.
func InGridBand(v Scalar) bool {
	return (v > gridLow-GridSpacing && v < gridLow+GridSpacing) ||
		(v > gridHigh-GridSpacing && v < gridHigh+GridSpacing)
}

// Luminance returns the Lambertian term for a model-space normal n under the
// rotation t and the unit light direction light.
func Luminance(t Trig, n, light Vec3) Scalar {
	rn := t.Rotate(n)
	rn.Normalize()
	return Dot(rn, light)
}

// rasterFace samples both faces of fc on the projection grid and plots every
// sample into f.
func rasterFace(f *Frame, p Projection, t Trig, light Vec3, fc Face) {
	lumFront := Luminance(t, axisVec(fc.Fixed, CubeSize), light)
	lumBack := Luminance(t, axisVec(fc.Fixed, -CubeSize), light)

	const half = CubeSize / 2
	step := p.Spacing
	if !(step > 0) {
		return
	}

	for u := -half; u <= half; u += step {
		for v := -half; v <= half; v += step {
			front, back := fc.Front, fc.Back
			if InGridBand(u) || InGridBand(v) {
				front, back = GridLineColor, GridLineColor
			}

			var pt Vec3
			pt.set(fc.Outer, u)
			pt.set(fc.Inner, v)

			pt.set(fc.Fixed, half)
			col, row, ooz := p.Project(t, pt)
			f.Plot(col, row, ooz, front, lumFront)

			pt.set(fc.Fixed, -half)
			col, row, ooz = p.Project(t, pt)
			f.Plot(col, row, ooz, back, lumBack)
		}
	}
}
