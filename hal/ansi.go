package hal

import (
	"bufio"
	"io"
	"strconv"
	"sync"

	"cubescreen/asciigl"
)

// ANSI escape sequences used by the tty backend.
const (
	escCursorHome  = "\x1b[H"
	escCursorShow  = "\x1b[?25h"
	escCursorHide  = "\x1b[?25l"
	escEraseScreen = "\x1b[2J"
	escAltOn       = "\x1b[?1049h"
	escAltOff      = "\x1b[?1049l"
	escReset       = "\x1b[0m"
)

// SGR returns the select-graphic-rendition sequence for a palette color.
func SGR(c asciigl.Color) string {
	i := c.Index()
	if i < 0 {
		return escReset
	}
	if c.Bold() {
		return "\x1b[1;3" + strconv.Itoa(i) + "m"
	}
	return "\x1b[3" + strconv.Itoa(i) + "m"
}

// SizeFunc reports the terminal grid in character cells.
type SizeFunc func() (cols, rows int, err error)

// ANSITerminal writes escape sequences to a byte stream.
//
// It is the tty backend's output half; size and events come from the
// platform layer.
type ANSITerminal struct {
	w   *bufio.Writer
	buf []byte

	size   SizeFunc
	events chan Event

	mu   sync.Mutex
	stop func()
}

// NewANSI wraps w. size may be nil, in which case Size reports
// ErrNotImplemented.
func NewANSI(w io.Writer, size SizeFunc) *ANSITerminal {
	return &ANSITerminal{
		w:      bufio.NewWriterSize(w, 64<<10),
		buf:    make([]byte, 0, 32),
		size:   size,
		events: make(chan Event, 16),
	}
}

func (t *ANSITerminal) Size() (int, int, error) {
	if t.size == nil {
		return 0, 0, ErrNotImplemented
	}
	return t.size()
}

// MoveTo positions the cursor at a 1-based row and column.
func (t *ANSITerminal) MoveTo(row, col int) {
	b := append(t.buf[:0], "\x1b["...)
	b = strconv.AppendInt(b, int64(row), 10)
	b = append(b, ';')
	b = strconv.AppendInt(b, int64(col), 10)
	b = append(b, 'H')
	t.buf = b
	_, _ = t.w.Write(b)
}

// Put writes one glyph in color c at the cursor. The attribute is reset first
// so bold never leaks into the next cell.
func (t *ANSITerminal) Put(c asciigl.Color, glyph byte) {
	_, _ = t.w.WriteString(escReset)
	if c != asciigl.ColorReset {
		_, _ = t.w.WriteString(SGR(c))
	}
	_ = t.w.WriteByte(glyph)
}

func (t *ANSITerminal) EraseScreen() {
	_, _ = t.w.WriteString(escEraseScreen)
	_, _ = t.w.WriteString(escCursorHome)
}

func (t *ANSITerminal) Enter() error {
	_, _ = t.w.WriteString(escAltOn)
	_, _ = t.w.WriteString(escEraseScreen)
	_, _ = t.w.WriteString(escCursorHide)
	return t.Flush()
}

func (t *ANSITerminal) Leave() error {
	_, _ = t.w.WriteString(escEraseScreen)
	_, _ = t.w.WriteString(escAltOff)
	_, _ = t.w.WriteString(escReset)
	_, _ = t.w.WriteString(escCursorShow)
	return t.Flush()
}

func (t *ANSITerminal) Flush() error { return t.w.Flush() }

func (t *ANSITerminal) Events() <-chan Event { return t.events }

// Notify queues an event for the render loop.
func (t *ANSITerminal) Notify(kind EventKind) {
	sendEvent(t.events, Event{Kind: kind})
}

func (t *ANSITerminal) Close() error {
	t.mu.Lock()
	stop := t.stop
	t.stop = nil
	t.mu.Unlock()
	if stop != nil {
		stop()
	}
	return nil
}
