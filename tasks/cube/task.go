// Package cube animates the rotating shaded cube on a character terminal.
package cube

import (
	"fmt"
	"io"

	"cubescreen/asciigl"
	"cubescreen/hal"
	"cubescreen/internal/profiler"
)

// Grid used when the terminal cannot report its size.
const (
	DefaultCols = 50
	DefaultRows = 25
)

// Config tunes the animation.
type Config struct {
	// Stats draws the frame-time overlay and prints the report on shutdown.
	Stats bool
	// Light rotates the default light direction.
	Light asciigl.Rotation
	// Step is the per-frame rotation increment; zero uses asciigl.DefaultStep.
	Step asciigl.Rotation
}

// Task owns the renderer and the animation state for one terminal. It
// implements hal.Driver.
type Task struct {
	term hal.Terminal
	log  hal.Logger
	cfg  Config

	r    *asciigl.Renderer
	rot  asciigl.Rotation
	step asciigl.Rotation

	prof    *profiler.Profiler
	frames  uint64
	overlay []byte

	sizeFailed bool
}

var _ hal.Driver = (*Task)(nil)

// New enters the terminal's alternate screen and sizes the renderer to it.
func New(term hal.Terminal, log hal.Logger, cfg Config) (*Task, error) {
	t := &Task{
		term: term,
		log:  log,
		cfg:  cfg,
		rot:  asciigl.InitialPose(),
		step: cfg.Step,
		prof: profiler.New(log),
	}
	if t.step == (asciigl.Rotation{}) {
		t.step = asciigl.DefaultStep
	}

	if err := term.Enter(); err != nil {
		return nil, fmt.Errorf("enter terminal: %w", err)
	}

	cols, rows, err := term.Size()
	if err != nil || cols <= 0 || rows <= 0 {
		t.sizeError(cols, rows, err)
		cols, rows = DefaultCols, DefaultRows
	}
	t.r = asciigl.NewRenderer(cols, rows, asciigl.NewLight(asciigl.DefaultLightSource, cfg.Light))
	hal.Logf(log, "cube: %dx%d K1=%f", cols, rows, t.r.Projection().K1)
	return t, nil
}

// Renderer exposes the render context.
func (t *Task) Renderer() *asciigl.Renderer { return t.r }

// Rotation is the pose of the last rendered frame.
func (t *Task) Rotation() asciigl.Rotation { return t.rot }

// Profiler exposes the frame statistics.
func (t *Task) Profiler() *profiler.Profiler { return t.prof }

// Frame advances the rotation and draws one frame.
//
// Frame time is measured from the start of one frame to the start of the
// next, so it includes pacing.
func (t *Task) Frame() error {
	if t.frames > 0 {
		t.prof.End()
	}
	t.prof.Begin()
	t.frames++

	t.rot.Advance(t.step)
	t.r.Render(t.term, t.rot)

	if t.cfg.Stats && t.frames > 1 {
		t.drawOverlay()
	}
	if err := t.term.Flush(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	return nil
}

func (t *Task) drawOverlay() {
	d := t.prof.Last()
	t.overlay = fmt.Appendf(t.overlay[:0], "%7.2ffps", t.prof.FPS())
	t.writeLine(1, t.overlay)
	t.overlay = fmt.Appendf(t.overlay[:0], "%7.2fms (%10dus)", float64(d.Microseconds())/1000, d.Microseconds())
	t.writeLine(2, t.overlay)
}

// writeLine draws s at the start of a 1-based row, clipped to the grid, and
// marks the cells so the cube redraws them next frame.
func (t *Task) writeLine(row int, s []byte) {
	f := t.r.Frame()
	if row > f.Height() {
		return
	}
	n := min(len(s), f.Width())
	if n <= 0 {
		return
	}
	t.term.MoveTo(row, 1)
	for _, b := range s[:n] {
		t.term.Put(asciigl.ColorReset, b)
	}
	f.Invalidate(0, row-1, n)
}

// Resize re-queries the terminal size. On failure the current grid is kept
// and the failure is logged once until a query succeeds again.
func (t *Task) Resize() {
	cols, rows, err := t.term.Size()
	if err != nil || cols <= 0 || rows <= 0 {
		t.sizeError(cols, rows, err)
		return
	}
	t.sizeFailed = false
	t.r.Resize(cols, rows)
	t.term.EraseScreen()
	hal.Logf(t.log, "cube: resize %dx%d K1=%f", cols, rows, t.r.Projection().K1)
}

func (t *Task) sizeError(cols, rows int, err error) {
	if t.sizeFailed {
		return
	}
	t.sizeFailed = true
	if err == nil {
		err = fmt.Errorf("empty grid %dx%d", cols, rows)
	}
	hal.Logf(t.log, "cube: size query: %v", err)
}

// Shutdown restores and closes the terminal. With stats enabled the run
// report is written to w afterwards.
func (t *Task) Shutdown(w io.Writer) error {
	err := t.term.Leave()
	if cerr := t.term.Close(); err == nil {
		err = cerr
	}
	if t.cfg.Stats && w != nil {
		if rerr := t.WriteReport(w); err == nil {
			err = rerr
		}
	}
	return err
}

// WriteReport prints the grid constants and frame statistics.
func (t *Task) WriteReport(w io.Writer) error {
	f := t.r.Frame()
	p := t.r.Projection()
	rep := t.prof.Report()
	_, err := fmt.Fprintf(w,
		"Width: %d | Height: %d\n"+
			"K1: %f | K2: %f | Spacing: %f | Grid Spacing: %f | Buffer Size: %d\n"+
			"Memory Allocations: %d\n"+
			"%s\n",
		f.Width(), f.Height(),
		p.K1, asciigl.K2, p.Spacing, asciigl.GridSpacing, f.Len(),
		rep.Mallocs,
		rep)
	return err
}
