package hal

import (
	"errors"

	"cubescreen/asciigl"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var (
	ErrNotImplemented = errors.New("not implemented")
	ErrInterrupted    = errors.New("interrupted")
)

// EventKind identifies an asynchronous terminal notification.
type EventKind uint8

const (
	// EventResize reports that the terminal dimensions may have changed.
	EventResize EventKind = iota + 1
	// EventInterrupt asks the render loop to stop.
	EventInterrupt
)

func (k EventKind) String() string {
	switch k {
	case EventResize:
		return "resize"
	case EventInterrupt:
		return "interrupt"
	}
	return "unknown"
}

// Event is a terminal notification delivered between frames.
type Event struct {
	Kind EventKind
}

// Terminal is everything the renderer needs from a character display.
//
// MoveTo/Put come from asciigl.Screen: rows and columns are 1-based and Put
// writes one glyph in one palette color at the cursor. Output may be buffered
// until Flush.
type Terminal interface {
	asciigl.Screen

	// Size reports the grid in character cells.
	Size() (cols, rows int, err error)

	// EraseScreen blanks the whole display.
	EraseScreen()

	// Enter switches to the alternate screen and hides the cursor.
	Enter() error

	// Leave restores the primary screen, resets colors and shows the cursor.
	Leave() error

	Flush() error

	// Events delivers resize and interrupt notifications. It may be nil.
	Events() <-chan Event

	Close() error
}

// Driver is the unit of work a run loop drives once per tick.
type Driver interface {
	// Frame renders one frame.
	Frame() error

	// Resize is called after an EventResize, between frames.
	Resize()
}

// sendEvent queues ev without blocking; a full queue drops it.
func sendEvent(ch chan Event, ev Event) {
	select {
	case ch <- ev:
	default:
	}
}
