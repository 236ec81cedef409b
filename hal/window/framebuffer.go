package window

import "sync"

// framebuffer is an RGB565 little-endian pixel buffer shared between the
// terminal (writer) and the ebiten draw callback (reader).
type framebuffer struct {
	mu     sync.Mutex
	width  int
	height int
	stride int
	buf    []byte
}

func newFramebuffer(width, height int) *framebuffer {
	f := &framebuffer{}
	f.resize(width, height)
	return f
}

func (f *framebuffer) resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.width = width
	f.height = height
	f.stride = width * 2
	if n := f.stride * height; cap(f.buf) >= n {
		f.buf = f.buf[:n]
		clear(f.buf)
	} else {
		f.buf = make([]byte, n)
	}
}

func (f *framebuffer) size() (int, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.width, f.height
}

func (f *framebuffer) clear(pixel uint16) {
	f.mu.Lock()
	defer f.mu.Unlock()
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for i := 0; i+1 < len(f.buf); i += 2 {
		f.buf[i] = lo
		f.buf[i+1] = hi
	}
}

func (f *framebuffer) setPixel(x, y int, pixel uint16) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	off := y*f.stride + x*2
	f.buf[off] = byte(pixel)
	f.buf[off+1] = byte(pixel >> 8)
}

func (f *framebuffer) pixel(x, y int) uint16 {
	f.mu.Lock()
	defer f.mu.Unlock()
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return 0
	}
	off := y*f.stride + x*2
	return uint16(f.buf[off]) | uint16(f.buf[off+1])<<8
}

// fillRect clips the rectangle to the buffer before filling.
func (f *framebuffer) fillRect(x, y, w, h int, pixel uint16) {
	f.mu.Lock()
	defer f.mu.Unlock()
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, f.width), min(y+h, f.height)
	if x0 >= x1 || y0 >= y1 {
		return
	}
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for yy := y0; yy < y1; yy++ {
		row := f.buf[yy*f.stride : yy*f.stride+f.stride]
		for xx := x0; xx < x1; xx++ {
			row[xx*2] = lo
			row[xx*2+1] = hi
		}
	}
}

// snapshotRGBA converts the buffer into dst as opaque RGBA, growing dst when
// it is too small, and returns it with the dimensions it was taken at.
func (f *framebuffer) snapshotRGBA(dst []byte) ([]byte, int, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := f.width * f.height * 4
	if cap(dst) < n {
		dst = make([]byte, n)
	}
	dst = dst[:n]
	for i, j := 0, 0; i+1 < len(f.buf); i, j = i+2, j+4 {
		r, g, b := rgb888From565(uint16(f.buf[i]) | uint16(f.buf[i+1])<<8)
		dst[j+0] = r
		dst[j+1] = g
		dst[j+2] = b
		dst[j+3] = 0xFF
	}
	return dst, f.width, f.height
}

func rgb565(r, g, b uint8) uint16 {
	rr := uint16(r>>3) & 0x1F
	gg := uint16(g>>2) & 0x3F
	bb := uint16(b>>3) & 0x1F
	return (rr << 11) | (gg << 5) | bb
}

func rgb888From565(p uint16) (r, g, b uint8) {
	rr := (p >> 11) & 0x1F
	gg := (p >> 5) & 0x3F
	bb := p & 0x1F

	r = uint8((rr * 255) / 31)
	g = uint8((gg * 255) / 63)
	b = uint8((bb * 255) / 31)
	return r, g, b
}
