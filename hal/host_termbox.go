package hal

import (
	"fmt"
	"sync"

	"cubescreen/asciigl"

	"github.com/nsf/termbox-go"
)

// TermboxTerminal renders through termbox-go, which owns raw mode, the
// alternate screen and its own output buffering.
type TermboxTerminal struct {
	row, col int

	mu   sync.Mutex
	w, h int

	events chan Event
	done   chan struct{}
	once   sync.Once
}

// OpenTermbox initializes termbox and starts its event poller.
//
// Resize events become EventResize; Ctrl-C, Esc and 'q' become
// EventInterrupt.
func OpenTermbox() (*TermboxTerminal, error) {
	if err := termbox.Init(); err != nil {
		return nil, fmt.Errorf("termbox init: %w", err)
	}
	termbox.SetOutputMode(termbox.OutputNormal)

	t := &TermboxTerminal{
		events: make(chan Event, 16),
		done:   make(chan struct{}),
	}
	t.w, t.h = termbox.Size()
	go t.poll()
	return t, nil
}

func (t *TermboxTerminal) poll() {
	defer close(t.done)
	for {
		ev := termbox.PollEvent()
		switch ev.Type {
		case termbox.EventResize:
			t.mu.Lock()
			t.w, t.h = ev.Width, ev.Height
			t.mu.Unlock()
			sendEvent(t.events, Event{Kind: EventResize})
		case termbox.EventKey:
			if ev.Key == termbox.KeyCtrlC || ev.Key == termbox.KeyEsc || ev.Ch == 'q' {
				sendEvent(t.events, Event{Kind: EventInterrupt})
			}
		case termbox.EventError:
			sendEvent(t.events, Event{Kind: EventInterrupt})
			return
		case termbox.EventInterrupt:
			return
		}
	}
}

func (t *TermboxTerminal) Size() (int, int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.w <= 0 || t.h <= 0 {
		return 0, 0, fmt.Errorf("termbox: no size (%dx%d)", t.w, t.h)
	}
	return t.w, t.h, nil
}

func (t *TermboxTerminal) MoveTo(row, col int) { t.row, t.col = row, col }

func (t *TermboxTerminal) Put(c asciigl.Color, glyph byte) {
	termbox.SetCell(t.col-1, t.row-1, rune(glyph), termboxAttr(c), termbox.ColorDefault)
	t.col++
}

// termboxAttr maps a palette entry to a termbox foreground attribute.
func termboxAttr(c asciigl.Color) termbox.Attribute {
	i := c.Index()
	if i < 0 {
		return termbox.ColorDefault
	}
	a := termbox.ColorBlack + termbox.Attribute(i)
	if c.Bold() {
		a |= termbox.AttrBold
	}
	return a
}

func (t *TermboxTerminal) EraseScreen() {
	_ = termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
}

func (t *TermboxTerminal) Enter() error {
	termbox.HideCursor()
	return termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
}

func (t *TermboxTerminal) Leave() error {
	return termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
}

func (t *TermboxTerminal) Flush() error { return termbox.Flush() }

func (t *TermboxTerminal) Events() <-chan Event { return t.events }

// Close stops the poller and restores the terminal. It is safe to call more
// than once.
func (t *TermboxTerminal) Close() error {
	t.once.Do(func() {
		select {
		case <-t.done:
		default:
			termbox.Interrupt()
			<-t.done
		}
		termbox.Close()
	})
	return nil
}
