package hal

import (
	"strings"
	"sync"

	"cubescreen/asciigl"
)

// MemCell is one cell of a MemTerminal.
type MemCell struct {
	Glyph byte
	Color asciigl.Color
}

// MemTerminal is an in-memory Terminal. It backs headless runs and tests.
type MemTerminal struct {
	mu sync.Mutex

	w, h    int
	sizeErr error
	cells   []MemCell

	row, col int

	// Counters, for inspection.
	Moves   int
	Puts    int
	Erases  int
	Flushes int
	Entered bool
	Left    bool
	Closed  bool

	events chan Event
}

// NewMemTerminal returns a blank w×h terminal.
func NewMemTerminal(w, h int) *MemTerminal {
	m := &MemTerminal{events: make(chan Event, 16)}
	m.setSize(w, h)
	return m
}

func (m *MemTerminal) setSize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	m.w, m.h = w, h
	m.cells = make([]MemCell, w*h)
	m.blank()
}

func (m *MemTerminal) blank() {
	for i := range m.cells {
		m.cells[i] = MemCell{Glyph: ' '}
	}
}

// Resize changes the reported size and queues EventResize.
func (m *MemTerminal) Resize(w, h int) {
	m.mu.Lock()
	m.setSize(w, h)
	m.mu.Unlock()
	sendEvent(m.events, Event{Kind: EventResize})
}

// SetSizeError makes Size fail with err until cleared with nil.
func (m *MemTerminal) SetSizeError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sizeErr = err
}

// Interrupt queues EventInterrupt.
func (m *MemTerminal) Interrupt() { sendEvent(m.events, Event{Kind: EventInterrupt}) }

func (m *MemTerminal) Size() (int, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sizeErr != nil {
		return 0, 0, m.sizeErr
	}
	return m.w, m.h, nil
}

func (m *MemTerminal) MoveTo(row, col int) {
	m.row, m.col = row, col
	m.Moves++
}

// Put stores a glyph at the cursor; writes outside the grid are counted but
// not stored.
func (m *MemTerminal) Put(c asciigl.Color, glyph byte) {
	m.Puts++
	r, col := m.row-1, m.col-1
	if r >= 0 && r < m.h && col >= 0 && col < m.w {
		m.cells[r*m.w+col] = MemCell{Glyph: glyph, Color: c}
	}
	m.col++
}

// Cell returns the cell at a 1-based row and column.
func (m *MemTerminal) Cell(row, col int) MemCell {
	r, c := row-1, col-1
	if r < 0 || r >= m.h || c < 0 || c >= m.w {
		return MemCell{}
	}
	return m.cells[r*m.w+c]
}

// Row returns the glyphs of a 1-based row as a string.
func (m *MemTerminal) Row(row int) string {
	r := row - 1
	if r < 0 || r >= m.h {
		return ""
	}
	var b strings.Builder
	for _, c := range m.cells[r*m.w : (r+1)*m.w] {
		b.WriteByte(c.Glyph)
	}
	return b.String()
}

// String renders the grid, one line per row.
func (m *MemTerminal) String() string {
	var b strings.Builder
	for r := 1; r <= m.h; r++ {
		b.WriteString(m.Row(r))
		b.WriteByte('\n')
	}
	return b.String()
}

// ResetCounters zeroes Moves, Puts, Erases and Flushes.
func (m *MemTerminal) ResetCounters() {
	m.Moves, m.Puts, m.Erases, m.Flushes = 0, 0, 0, 0
}

func (m *MemTerminal) EraseScreen() {
	m.Erases++
	m.blank()
}

func (m *MemTerminal) Enter() error {
	m.Entered = true
	return nil
}

func (m *MemTerminal) Leave() error {
	m.Left = true
	return nil
}

func (m *MemTerminal) Flush() error {
	m.Flushes++
	return nil
}

func (m *MemTerminal) Events() <-chan Event { return m.events }

func (m *MemTerminal) Close() error {
	m.Closed = true
	return nil
}
