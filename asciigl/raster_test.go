package asciigl

import "testing"

func TestInGridBand(t *testing.T) {
	cases := []struct {
		v    Scalar
		want bool
	}{
		{-1.0 / 6, true},
		{1.0 / 6, true},
		{-0.13, true},
		{0.2, true},
		{-0.12, false},
		{0.21, false},
		{0, false},
		{-0.5, false},
		{0.5, false},
	}
	for _, c := range cases {
		if got := InGridBand(c.v); got != c.want {
			t.Fatalf("InGridBand(%v)=%v, want %v", c.v, got, c.want)
		}
	}
}

func TestLuminanceRange(t *testing.T) {
	light := NewLight(DefaultLightSource, Rotation{})
	rot := InitialPose()
	for i := 0; i < 100; i++ {
		rot.Advance(DefaultStep)
		tr := rot.Trig()
		for _, a := range []Axis{AxisX, AxisY, AxisZ} {
			front := Luminance(tr, axisVec(a, CubeSize), light)
			back := Luminance(tr, axisVec(a, -CubeSize), light)
			if front < -1.0001 || front > 1.0001 {
				t.Fatalf("luminance %v out of range", front)
			}
			if d := front + back; d > 1e-5 || d < -1e-5 {
				t.Fatalf("opposite faces not antisymmetric: %v vs %v", front, back)
			}
		}
	}
}

// With zero rotation the z = -size/2 face looks straight at the camera.
func singleFaceRenderer(w, h int) *Renderer {
	r := NewRenderer(w, h, DefaultLightSource)
	fc := Face{Fixed: AxisZ, Outer: AxisY, Inner: AxisX, Front: ColorYellow, Back: ColorWhite}
	r.Faces = [3]Face{fc, fc, fc}
	return r
}

func TestGridLineOverridesFaceColor(t *testing.T) {
	r := singleFaceRenderer(120, 60)
	r.Rasterize(Rotation{})
	f := r.Frame()

	// Center of the face: x and y near 0, outside every band.
	g, c := f.Cell(60, 30)
	if c != ColorWhite {
		t.Fatalf("face center color=%s, want white", c)
	}
	want := Glyph(0.70710677)
	if g != want {
		t.Fatalf("face center glyph=%q, want %q", g, want)
	}

	// y = -1/6 projects to row 34; every sample landing there is in a band.
	g, c = f.Cell(60, 34)
	if c != GridLineColor {
		t.Fatalf("band cell color=%s, want %s", c, GridLineColor)
	}
	if g != want {
		t.Fatalf("band cell glyph=%q, want unchanged %q", g, want)
	}

	// Same for x = +1/6 on the inner axis.
	if _, c = f.Cell(64, 30); c != GridLineColor {
		t.Fatalf("inner band cell color=%s, want %s", c, GridLineColor)
	}
}

func TestRasterNearestFaceWins(t *testing.T) {
	r := NewRenderer(120, 60, DefaultLightSource)
	r.Rasterize(Rotation{})
	f := r.Frame()
	_, c := f.Cell(60, 30)
	if c != ColorWhite {
		t.Fatalf("center color=%s, want white (near z face)", c)
	}
	if d := f.Depth(60, 30); d < 1/9.5-1e-4 {
		t.Fatalf("center depth=%v, want ~%v", d, 1/9.5)
	}
}
