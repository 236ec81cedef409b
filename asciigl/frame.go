package asciigl

// Frame holds the double-buffered character, color and depth planes of one
// character grid, indexed col + row*width.
type Frame struct {
	width  int
	height int

	chars  []byte
	colors []Color
	depth  []Scalar

	prevChars  []byte
	prevColors []Color

	// stale is set when prevChars/prevColors no longer describe what the
	// screen shows, so the next Emit redraws every cell.
	stale bool
}

// NewFrame allocates cleared buffers for a w×h grid.
func NewFrame(w, h int) *Frame {
	f := &Frame{}
	f.Resize(w, h)
	return f
}

func (f *Frame) Width() int  { return f.width }
func (f *Frame) Height() int { return f.height }
func (f *Frame) Len() int    { return len(f.chars) }

// Resize reallocates the buffers for a w×h grid and clears them. Negative
// dimensions are treated as zero.
//
// The previous-frame snapshot is invalidated: the next Emit treats every cell
// as changed.
func (f *Frame) Resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	n := w * h
	f.width = w
	f.height = h
	f.chars = resizeBytes(f.chars, n)
	f.prevChars = resizeBytes(f.prevChars, n)
	f.colors = resizeColors(f.colors, n)
	f.prevColors = resizeColors(f.prevColors, n)
	if cap(f.depth) < n {
		f.depth = make([]Scalar, n)
	} else {
		f.depth = f.depth[:n]
	}
	f.clearAll()
	f.stale = true
}

func resizeBytes(b []byte, n int) []byte {
	if cap(b) < n {
		return make([]byte, n)
	}
	return b[:n]
}

func resizeColors(c []Color, n int) []Color {
	if cap(c) < n {
		return make([]Color, n)
	}
	return c[:n]
}

func (f *Frame) clearAll() {
	f.clear()
	fillBytes(f.prevChars, ' ')
	fillColors(f.prevColors, ColorReset)
}

func (f *Frame) clear() {
	fillBytes(f.chars, ' ')
	fillColors(f.colors, ColorReset)
	for i := range f.depth {
		f.depth[i] = 0
	}
}

func fillBytes(b []byte, v byte) {
	for i := range b {
		b[i] = v
	}
}

func fillColors(c []Color, v Color) {
	for i := range c {
		c[i] = v
	}
}

// Begin starts a new frame: the current planes are copied into the
// previous-frame snapshot and then cleared (blank glyph, reset color, depth 0).
func (f *Frame) Begin() {
	copy(f.prevChars, f.chars)
	copy(f.prevColors, f.colors)
	f.clear()
}

// Plot writes one surface sample into the grid.
//
// The glyph is chosen from lum. Samples whose linear index falls outside the
// buffers are dropped. The write only happens if ooz is strictly greater than
// the stored depth, so nearer samples win and ties keep the earlier write.
func (f *Frame) Plot(col, row int, ooz Scalar, c Color, lum Scalar) bool {
	idx := col + row*f.width
	if idx < 0 || idx >= len(f.chars) {
		return false
	}
	if !(ooz > f.depth[idx]) {
		return false
	}
	f.depth[idx] = ooz
	f.colors[idx] = c
	f.chars[idx] = Glyph(lum)
	return true
}

// Cell returns the glyph and color currently stored at col,row.
func (f *Frame) Cell(col, row int) (byte, Color) {
	if col < 0 || row < 0 || col >= f.width || row >= f.height {
		return ' ', ColorReset
	}
	idx := col + row*f.width
	return f.chars[idx], f.colors[idx]
}

// Depth returns the stored inverse depth at col,row.
func (f *Frame) Depth(col, row int) Scalar {
	if col < 0 || row < 0 || col >= f.width || row >= f.height {
		return 0
	}
	return f.depth[col+row*f.width]
}

// Emit writes every cell that differs from the previous-frame snapshot to s
// and returns the number of cells written.
func (f *Frame) Emit(s Screen) int {
	if f.width <= 0 {
		return 0
	}
	stale := f.stale
	f.stale = false

	n := 0
	for idx, ch := range f.chars {
		c := f.colors[idx]
		if !stale && ch == f.prevChars[idx] && c == f.prevColors[idx] {
			continue
		}
		if s != nil {
			s.MoveTo(idx/f.width+1, idx%f.width+1)
			s.Put(c, ch)
		}
		n++
	}
	return n
}

// Invalidate marks n cells starting at col,row as unknown on screen, so the
// next frame rewrites them. Call it after Emit, once something else has drawn
// over those cells; until the next Begin they read back as glyph 0. The span
// is clipped to the grid.
func (f *Frame) Invalidate(col, row, n int) {
	if row < 0 || row >= f.height || col >= f.width || n <= 0 {
		return
	}
	if col < 0 {
		n += col
		col = 0
	}
	end := min(col+n, f.width)
	base := row * f.width
	for i := base + col; i < base+end; i++ {
		f.chars[i] = 0
	}
}
