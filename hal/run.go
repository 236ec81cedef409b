package hal

import (
	"context"
	"fmt"
)

// RunConfig controls the terminal run loop.
type RunConfig struct {
	// FPS limits the frame rate; 0 renders as fast as possible.
	FPS float64
	// Frames stops the loop after N frames (0 = run until cancelled).
	Frames uint64
}

// Run drives d until ctx is cancelled, the terminal reports an interrupt, or
// cfg.Frames frames have been rendered.
//
// Terminal events are drained only between frames, so Resize never overlaps a
// Frame call. An interrupt returns ErrInterrupted; a frame limit returns nil.
func Run(ctx context.Context, term Terminal, d Driver, cfg RunConfig) error {
	pacer := NewPacer(cfg.FPS)
	events := term.Events()

	var frames uint64
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := drainEvents(events, d); err != nil {
			return err
		}

		if err := d.Frame(); err != nil {
			return fmt.Errorf("frame %d: %w", frames, err)
		}
		frames++
		if cfg.Frames > 0 && frames >= cfg.Frames {
			return nil
		}

		if err := pacer.Wait(ctx); err != nil {
			return err
		}
	}
}

// drainEvents applies every queued event. Several resizes collapse into one
// Resize call.
func drainEvents(events <-chan Event, d Driver) error {
	if events == nil {
		return nil
	}
	resized := false
	apply := func() {
		if resized {
			d.Resize()
		}
	}
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				apply()
				return nil
			}
			switch ev.Kind {
			case EventResize:
				resized = true
			case EventInterrupt:
				return ErrInterrupted
			}
		default:
			apply()
			return nil
		}
	}
}
