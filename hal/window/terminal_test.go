package window

import (
	"testing"

	"cubescreen/asciigl"
	"cubescreen/hal"
)

func newTestTerminal(t *testing.T, cols, rows int) *Terminal {
	t.Helper()
	probe := NewTerminal(0, 0)
	cw, ch := probe.CellSize()
	if cw <= 0 || ch <= 0 {
		t.Fatalf("cell size = %dx%d", cw, ch)
	}
	return NewTerminal(cw*cols, ch*rows)
}

func countPixels(term *Terminal, x0, y0, w, h int, want uint16) int {
	n := 0
	for y := y0; y < y0+h; y++ {
		for x := x0; x < x0+w; x++ {
			if term.fb.pixel(x, y) == want {
				n++
			}
		}
	}
	return n
}

func TestTerminalGridFromPixels(t *testing.T) {
	term := newTestTerminal(t, 10, 5)
	cols, rows, err := term.Size()
	if err != nil {
		t.Fatalf("Size: %v", err)
	}
	if cols != 10 || rows != 5 {
		t.Fatalf("Size = %dx%d, want 10x5", cols, rows)
	}
}

func TestTerminalTooSmall(t *testing.T) {
	term := NewTerminal(1, 1)
	if _, _, err := term.Size(); err == nil {
		t.Fatalf("expected error for a sub-cell window")
	}
}

func TestTerminalPutDrawsAndClearsCell(t *testing.T) {
	term := newTestTerminal(t, 8, 4)
	cw, ch := term.CellSize()
	fg := Foreground(asciigl.ColorRed)
	red := rgb565(fg.R, fg.G, fg.B)
	w, h := term.PixelSize()

	term.MoveTo(2, 3)
	term.Put(asciigl.ColorRed, '@')
	if n := countPixels(term, 0, 0, w, h, red); n == 0 {
		t.Fatalf("no glyph pixels drawn")
	}

	term.MoveTo(2, 3)
	term.Put(asciigl.ColorRed, ' ')
	if n := countPixels(term, 2*cw, ch, cw, ch, red); n != 0 {
		t.Fatalf("blank cell still has %d glyph pixels", n)
	}
	if n := countPixels(term, 2*cw, ch, cw, ch, term.bg); n != cw*ch {
		t.Fatalf("blank cell background pixels = %d, want %d", n, cw*ch)
	}
}

func TestTerminalPutAdvancesCursor(t *testing.T) {
	term := newTestTerminal(t, 8, 4)
	term.MoveTo(1, 1)
	term.Put(asciigl.ColorWhite, '#')
	term.Put(asciigl.ColorWhite, '#')
	if term.row != 1 || term.col != 3 {
		t.Fatalf("cursor = %d,%d, want 1,3", term.row, term.col)
	}
}

func TestTerminalOffGridPutIsClipped(t *testing.T) {
	term := newTestTerminal(t, 4, 2)
	term.MoveTo(10, 10)
	term.Put(asciigl.ColorWhite, '@')
	w, h := term.PixelSize()
	if n := countPixels(term, 0, 0, w, h, term.bg); n != w*h {
		t.Fatalf("off-grid put touched %d pixels", w*h-n)
	}
}

func TestTerminalResizeEvent(t *testing.T) {
	term := newTestTerminal(t, 4, 2)
	cw, ch := term.CellSize()

	w, h := term.PixelSize()
	term.SetPixelSize(w, h)
	select {
	case ev := <-term.Events():
		t.Fatalf("unexpected event %v for an unchanged size", ev.Kind)
	default:
	}

	term.SetPixelSize(cw*6, ch*3)
	select {
	case ev := <-term.Events():
		if ev.Kind != hal.EventResize {
			t.Fatalf("event = %v, want resize", ev.Kind)
		}
	default:
		t.Fatalf("no resize event queued")
	}
	cols, rows, err := term.Size()
	if err != nil || cols != 6 || rows != 3 {
		t.Fatalf("Size = %dx%d (%v), want 6x3", cols, rows, err)
	}
}

func TestTerminalInterrupt(t *testing.T) {
	term := newTestTerminal(t, 4, 2)
	term.Interrupt()
	ev := <-term.Events()
	if ev.Kind != hal.EventInterrupt {
		t.Fatalf("event = %v, want interrupt", ev.Kind)
	}
}

func TestForegroundPalette(t *testing.T) {
	if Foreground(asciigl.ColorReset) != defaultForeground {
		t.Fatalf("reset should use the default foreground")
	}
	if Foreground(asciigl.ColorRed) == Foreground(asciigl.ColorBoldRed) {
		t.Fatalf("bold and normal red should differ")
	}
	if Foreground(asciigl.ColorBoldWhite) != palette[15] {
		t.Fatalf("bold white = %v", Foreground(asciigl.ColorBoldWhite))
	}
}

func TestSnapshotRGBA(t *testing.T) {
	term := newTestTerminal(t, 2, 1)
	buf, w, h := term.pixels(nil)
	if len(buf) != w*h*4 {
		t.Fatalf("len = %d, want %d", len(buf), w*h*4)
	}
	r, g, b := rgb888From565(term.bg)
	if buf[0] != r || buf[1] != g || buf[2] != b || buf[3] != 0xFF {
		t.Fatalf("first pixel = %v", buf[:4])
	}
}

func TestRGB565RoundTripExtremes(t *testing.T) {
	r, g, b := rgb888From565(rgb565(0xFF, 0xFF, 0xFF))
	if r != 0xFF || g != 0xFF || b != 0xFF {
		t.Fatalf("white = %d,%d,%d", r, g, b)
	}
	r, g, b = rgb888From565(rgb565(0, 0, 0))
	if r != 0 || g != 0 || b != 0 {
		t.Fatalf("black = %d,%d,%d", r, g, b)
	}
}

func TestRendererDrawsIntoWindow(t *testing.T) {
	term := newTestTerminal(t, 40, 20)
	cols, rows, _ := term.Size()
	r := asciigl.NewRenderer(cols, rows, asciigl.NewLight(asciigl.DefaultLightSource, asciigl.Rotation{}))
	if n := r.Render(term, asciigl.InitialPose()); n == 0 {
		t.Fatalf("no cells emitted")
	}
	w, h := term.PixelSize()
	if n := countPixels(term, 0, 0, w, h, term.bg); n == w*h {
		t.Fatalf("framebuffer untouched after render")
	}
}

func TestNewTerminalCells(t *testing.T) {
	term := NewTerminalCells(12, 7)
	cols, rows, err := term.Size()
	if err != nil || cols != 12 || rows != 7 {
		t.Fatalf("Size = %dx%d (%v), want 12x7", cols, rows, err)
	}
	cw, ch := term.CellSize()
	if w, h := term.PixelSize(); w != 12*cw || h != 7*ch {
		t.Fatalf("PixelSize = %dx%d", w, h)
	}
	select {
	case ev := <-term.Events():
		t.Fatalf("unexpected event %v", ev.Kind)
	default:
	}
}
