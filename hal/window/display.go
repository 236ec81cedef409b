package window

import (
	"image/color"

	"tinygo.org/x/drivers"
)

// fbDisplay exposes the framebuffer as a drivers.Displayer so tinyfont can
// rasterize glyphs into it.
type fbDisplay struct {
	fb *framebuffer
}

var _ drivers.Displayer = (*fbDisplay)(nil)

func (d *fbDisplay) Size() (x, y int16) {
	w, h := d.fb.size()
	return int16(w), int16(h)
}

func (d *fbDisplay) SetPixel(x, y int16, c color.RGBA) {
	d.fb.setPixel(int(x), int(y), rgb565(c.R, c.G, c.B))
}

func (d *fbDisplay) Display() error { return nil }

func (d *fbDisplay) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	d.fb.fillRect(int(x), int(y), int(width), int(height), rgb565(c.R, c.G, c.B))
	return nil
}

// cellDisplay confines drawing to one character cell so glyphs with
// negative offsets do not leave pixels in their neighbours.
type cellDisplay struct {
	base   *fbDisplay
	x0, y0 int16
	x1, y1 int16
}

func (d cellDisplay) Size() (x, y int16) { return d.base.Size() }

func (d cellDisplay) SetPixel(x, y int16, c color.RGBA) {
	if x < d.x0 || x >= d.x1 || y < d.y0 || y >= d.y1 {
		return
	}
	d.base.SetPixel(x, y, c)
}

func (d cellDisplay) Display() error { return d.base.Display() }
