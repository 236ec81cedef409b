// Package window emulates a character terminal inside a desktop window.
//
// Cells are drawn with a tinyfont bitmap font into an RGB565 framebuffer,
// which the ebiten game loop uploads every frame.
package window

import (
	"errors"
	"image/color"
	"sync"

	"cubescreen/asciigl"
	"cubescreen/hal"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

var ErrNoCgo = errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")

var background = color.RGBA{R: 0x05, G: 0x08, B: 0x12, A: 0xFF}

// palette follows the usual xterm 16-color table; index 0..7 normal, 8..15 bold.
var palette = [16]color.RGBA{
	{R: 0x30, G: 0x30, B: 0x30, A: 0xFF},
	{R: 0xCD, G: 0x00, B: 0x00, A: 0xFF},
	{R: 0x00, G: 0xCD, B: 0x00, A: 0xFF},
	{R: 0xCD, G: 0xCD, B: 0x00, A: 0xFF},
	{R: 0x00, G: 0x00, B: 0xEE, A: 0xFF},
	{R: 0xCD, G: 0x00, B: 0xCD, A: 0xFF},
	{R: 0x00, G: 0xCD, B: 0xCD, A: 0xFF},
	{R: 0xE5, G: 0xE5, B: 0xE5, A: 0xFF},
	{R: 0x7F, G: 0x7F, B: 0x7F, A: 0xFF},
	{R: 0xFF, G: 0x00, B: 0x00, A: 0xFF},
	{R: 0x00, G: 0xFF, B: 0x00, A: 0xFF},
	{R: 0xFF, G: 0xFF, B: 0x00, A: 0xFF},
	{R: 0x5C, G: 0x5C, B: 0xFF, A: 0xFF},
	{R: 0xFF, G: 0x00, B: 0xFF, A: 0xFF},
	{R: 0x00, G: 0xFF, B: 0xFF, A: 0xFF},
	{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
}

var defaultForeground = color.RGBA{R: 0xC0, G: 0xC0, B: 0xC0, A: 0xFF}

// Foreground returns the RGBA a palette entry is drawn with.
func Foreground(c asciigl.Color) color.RGBA {
	i := c.Index()
	if i < 0 {
		return defaultForeground
	}
	if c.Bold() {
		i += 8
	}
	return palette[i]
}

// Terminal is a hal.Terminal backed by a pixel framebuffer.
type Terminal struct {
	fb   *framebuffer
	disp *fbDisplay

	font     tinyfont.Fonter
	cellW    int
	cellH    int
	baseline int

	mu         sync.Mutex
	cols, rows int

	row, col int
	bg       uint16

	events chan hal.Event
}

var _ hal.Terminal = (*Terminal)(nil)

// NewTerminal creates a terminal covering width x height pixels.
func NewTerminal(width, height int) *Terminal {
	fb := newFramebuffer(width, height)
	t := &Terminal{
		fb:     fb,
		disp:   &fbDisplay{fb: fb},
		font:   &proggy.TinySZ8pt7b,
		bg:     rgb565(background.R, background.G, background.B),
		events: make(chan hal.Event, 16),
	}
	t.initFont()
	t.cols, t.rows = t.gridFor(width, height)
	t.fb.clear(t.bg)
	return t
}

// NewTerminalCells creates a terminal sized for a cols x rows grid.
func NewTerminalCells(cols, rows int) *Terminal {
	t := NewTerminal(0, 0)
	t.fb.resize(cols*t.cellW, rows*t.cellH)
	t.fb.clear(t.bg)
	t.cols, t.rows = t.gridFor(cols*t.cellW, rows*t.cellH)
	return t
}

func (t *Terminal) initFont() {
	_, outboxWidth := tinyfont.LineWidth(t.font, "0")
	t.cellW = int(outboxWidth)
	t.cellH = int(t.font.GetYAdvance())
	if t.cellW <= 0 {
		t.cellW = 6
	}
	if t.cellH <= 0 {
		t.cellH = 8
	}
	t.baseline = t.cellH * 3 / 4
}

func (t *Terminal) gridFor(width, height int) (int, int) {
	return width / t.cellW, height / t.cellH
}

// CellSize reports the pixel size of one character cell.
func (t *Terminal) CellSize() (w, h int) { return t.cellW, t.cellH }

// PixelSize reports the framebuffer size.
func (t *Terminal) PixelSize() (w, h int) { return t.fb.size() }

// SetPixelSize resizes the framebuffer. Any change clears the pixels, so an
// EventResize is queued to make the driver repaint.
func (t *Terminal) SetPixelSize(width, height int) {
	if w, h := t.fb.size(); w == width && h == height {
		return
	}
	t.fb.resize(width, height)
	t.fb.clear(t.bg)

	cols, rows := t.gridFor(width, height)
	t.mu.Lock()
	t.cols, t.rows = cols, rows
	t.mu.Unlock()
	t.send(hal.Event{Kind: hal.EventResize})
}

// Interrupt queues an EventInterrupt.
func (t *Terminal) Interrupt() { t.send(hal.Event{Kind: hal.EventInterrupt}) }

func (t *Terminal) send(ev hal.Event) {
	select {
	case t.events <- ev:
	default:
	}
}

func (t *Terminal) Size() (int, int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cols <= 0 || t.rows <= 0 {
		return 0, 0, errors.New("window: too small for one cell")
	}
	return t.cols, t.rows, nil
}

func (t *Terminal) MoveTo(row, col int) { t.row, t.col = row, col }

func (t *Terminal) Put(c asciigl.Color, glyph byte) {
	col := t.col
	t.col++

	x := (col - 1) * t.cellW
	y := (t.row - 1) * t.cellH
	t.fb.fillRect(x, y, t.cellW, t.cellH, t.bg)
	if glyph == ' ' {
		return
	}
	cell := cellDisplay{
		base: t.disp,
		x0:   int16(x),
		y0:   int16(y),
		x1:   int16(x + t.cellW),
		y1:   int16(y + t.cellH),
	}
	tinyfont.DrawChar(cell, t.font, int16(x), int16(y+t.baseline), rune(glyph), Foreground(c))
}

func (t *Terminal) EraseScreen() { t.fb.clear(t.bg) }

func (t *Terminal) Enter() error {
	t.EraseScreen()
	return nil
}

func (t *Terminal) Leave() error { return nil }

func (t *Terminal) Flush() error { return t.disp.Display() }

func (t *Terminal) Events() <-chan hal.Event { return t.events }

func (t *Terminal) Close() error { return nil }

// pixels snapshots the framebuffer as RGBA into dst.
func (t *Terminal) pixels(dst []byte) ([]byte, int, int) {
	return t.fb.snapshotRGBA(dst)
}
