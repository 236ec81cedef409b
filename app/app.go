package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"cubescreen/asciigl"
	"cubescreen/hal"
	"cubescreen/hal/window"
	"cubescreen/internal/buildinfo"
	"cubescreen/tasks/cube"
)

// Backend selects the output device.
type Backend string

const (
	BackendTTY      Backend = "tty"
	BackendTermbox  Backend = "termbox"
	BackendWindow   Backend = "window"
	BackendHeadless Backend = "headless"
)

// Config is the run configuration assembled from the command line.
type Config struct {
	Backend Backend
	// FPS limits the frame rate; 0 renders as fast as possible.
	FPS float64
	// Frames stops after N frames (0 = run until interrupted).
	Frames uint64
	// Stats enables the overlay and the shutdown report.
	Stats bool
	// LogPath receives log lines; empty discards them.
	LogPath string
	// Light rotates the light direction.
	Light asciigl.Rotation
	// Cols and Rows size the headless grid and the initial window.
	Cols, Rows int
	// Stdout receives the shutdown report.
	Stdout io.Writer
}

func (c Config) withDefaults() Config {
	if c.Backend == "" {
		c.Backend = BackendTTY
	}
	if c.FPS < 0 {
		c.FPS = 0
	}
	if c.Cols <= 0 {
		c.Cols = cube.DefaultCols
	}
	if c.Rows <= 0 {
		c.Rows = cube.DefaultRows
	}
	if c.Stdout == nil {
		c.Stdout = os.Stdout
	}
	return c
}

// Run opens the configured backend and animates the cube until ctx is
// cancelled, the user interrupts, or the frame limit is reached. An
// interrupt is a normal exit and returns nil.
func Run(ctx context.Context, cfg Config) (err error) {
	cfg = cfg.withDefaults()

	log, closer, err := hal.OpenLogFile(cfg.LogPath)
	if err != nil {
		return err
	}
	defer closer.Close()
	hal.Logf(log, "cubescreen %s backend=%s fps=%g", buildinfo.Short(), cfg.Backend, cfg.FPS)

	term, err := openTerminal(cfg)
	if err != nil {
		return err
	}
	defer restoreOnPanic(term, log)

	task, err := cube.New(term, log, cube.Config{Stats: cfg.Stats, Light: cfg.Light})
	if err != nil {
		_ = term.Close()
		return err
	}
	defer func() {
		if serr := task.Shutdown(cfg.Stdout); err == nil {
			err = serr
		}
	}()

	if w, ok := term.(*window.Terminal); ok {
		err = window.Run(ctx, w, task, int(cfg.FPS), cfg.Frames)
	} else {
		err = hal.Run(ctx, term, task, hal.RunConfig{FPS: cfg.FPS, Frames: cfg.Frames})
	}
	if errors.Is(err, hal.ErrInterrupted) {
		hal.Logf(log, "interrupted")
		return nil
	}
	if err != nil {
		hal.Logf(log, "run: %v", err)
	}
	return err
}

func openTerminal(cfg Config) (hal.Terminal, error) {
	switch cfg.Backend {
	case BackendTTY:
		return hal.OpenTTY()
	case BackendTermbox:
		return hal.OpenTermbox()
	case BackendWindow:
		return window.NewTerminalCells(cfg.Cols, cfg.Rows), nil
	case BackendHeadless:
		return hal.NewMemTerminal(cfg.Cols, cfg.Rows), nil
	}
	return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
}
