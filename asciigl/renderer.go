package asciigl

// Renderer is the per-terminal render context: frame buffers, projection
// constants and the fixed light direction.
//
// Create it once and reuse it; Render does not allocate.
type Renderer struct {
	Faces [3]Face

	frame *Frame
	proj  Projection
	light Vec3
}

// NewRenderer creates a renderer for a w×h grid lit from light. The light is
// normalized on the way in.
func NewRenderer(w, h int, light Vec3) *Renderer {
	r := &Renderer{
		Faces: CubeFaces,
		frame: NewFrame(w, h),
		light: Normalize(light),
	}
	r.proj = NewProjection(r.frame.Width(), r.frame.Height())
	return r
}

// NewLight rotates the source direction by angles and normalizes it.
func NewLight(source Vec3, angles Rotation) Vec3 {
	return Normalize(angles.Trig().Rotate(source))
}

// DefaultLightSource is the unrotated light direction: above and in front.
var DefaultLightSource = V3(0, 1, -1)

func (r *Renderer) Frame() *Frame          { return r.frame }
func (r *Renderer) Projection() Projection { return r.proj }
func (r *Renderer) Light() Vec3            { return r.light }

// Resize reallocates the buffers for a w×h grid and recomputes the projection
// constants. The next Render redraws every cell.
func (r *Renderer) Resize(w, h int) {
	r.frame.Resize(w, h)
	r.proj = NewProjection(r.frame.Width(), r.frame.Height())
}

// Render draws the cube at rotation rot and emits the changed cells to s.
// It returns the number of cells emitted.
func (r *Renderer) Render(s Screen, rot Rotation) int {
	r.Rasterize(rot)
	return r.frame.Emit(s)
}

// Rasterize runs the snapshot, clear and populate steps of Render without
// emitting anything.
func (r *Renderer) Rasterize(rot Rotation) {
	t := rot.Trig()
	r.frame.Begin()
	if r.frame.Len() == 0 {
		return
	}
	for _, fc := range r.Faces {
		rasterFace(r.frame, r.proj, t, r.light, fc)
	}
}
