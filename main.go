package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"cubescreen/app"
	"cubescreen/asciigl"
	"cubescreen/internal/buildinfo"
)

func main() {
	var cfg app.Config
	var backend string
	var lightA, lightB, lightC float64
	var version bool
	flag.StringVar(&backend, "backend", string(app.BackendTTY), "Output: tty, termbox, window or headless.")
	flag.Float64Var(&cfg.FPS, "fps", 60, "Frame rate limit (0 = unlimited).")
	flag.Uint64Var(&cfg.Frames, "frames", 0, "Stop after N frames (0 = run forever).")
	flag.BoolVar(&cfg.Stats, "stats", true, "Show the frame-time overlay and print a report on exit.")
	flag.StringVar(&cfg.LogPath, "log", "", "Append log lines to this file.")
	flag.Float64Var(&lightA, "light-a", 0, "Light rotation about Z (radians).")
	flag.Float64Var(&lightB, "light-b", 0, "Light rotation about Y (radians).")
	flag.Float64Var(&lightC, "light-c", 0, "Light rotation about X (radians).")
	flag.IntVar(&cfg.Cols, "cols", 0, "Grid columns for headless and window mode.")
	flag.IntVar(&cfg.Rows, "rows", 0, "Grid rows for headless and window mode.")
	flag.BoolVar(&version, "version", false, "Print build information and exit.")
	flag.Parse()

	if version {
		fmt.Println(buildinfo.String())
		return
	}

	cfg.Backend = app.Backend(backend)
	cfg.Light = asciigl.Rotation{A: asciigl.Scalar(lightA), B: asciigl.Scalar(lightB), C: asciigl.Scalar(lightC)}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := app.Run(ctx, cfg); err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
