package app

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cubescreen/hal"
	"cubescreen/tasks/cube"
)

func TestConfigDefaults(t *testing.T) {
	c := Config{FPS: -5}.withDefaults()
	if c.Backend != BackendTTY {
		t.Fatalf("Backend = %q, want tty", c.Backend)
	}
	if c.FPS != 0 {
		t.Fatalf("FPS = %v, want 0", c.FPS)
	}
	if c.Cols != cube.DefaultCols || c.Rows != cube.DefaultRows {
		t.Fatalf("grid = %dx%d", c.Cols, c.Rows)
	}
	if c.Stdout == nil {
		t.Fatalf("Stdout not defaulted")
	}
}

func TestRunHeadlessFrames(t *testing.T) {
	var out bytes.Buffer
	logPath := filepath.Join(t.TempDir(), "cube.log")
	err := Run(context.Background(), Config{
		Backend: BackendHeadless,
		Frames:  3,
		Stats:   true,
		Cols:    40,
		Rows:    20,
		LogPath: logPath,
		Stdout:  &out,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), "Width: 40 | Height: 20") {
		t.Fatalf("report = %q", out.String())
	}
	if !strings.Contains(out.String(), "Frames: 2 |") {
		t.Fatalf("report = %q", out.String())
	}

	b, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(b), "backend=headless") {
		t.Fatalf("log = %q", b)
	}
}

func TestRunQuietWithoutStats(t *testing.T) {
	var out bytes.Buffer
	err := Run(context.Background(), Config{Backend: BackendHeadless, Frames: 2, Stdout: &out})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	err := Run(ctx, Config{Backend: BackendHeadless, Stats: true, Stdout: &out})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if !strings.Contains(out.String(), "Frames: 0 |") {
		t.Fatalf("report = %q", out.String())
	}
}

func TestRunUnknownBackend(t *testing.T) {
	if err := Run(context.Background(), Config{Backend: "vga"}); err == nil {
		t.Fatalf("expected error for unknown backend")
	}
}

func TestRunBadLogPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "cube.log")
	if err := Run(context.Background(), Config{Backend: BackendHeadless, Frames: 1, LogPath: path}); err == nil {
		t.Fatalf("expected error for unwritable log path")
	}
}

type lineLog struct {
	lines []string
}

func (l *lineLog) WriteLineString(s string) { l.lines = append(l.lines, s) }
func (l *lineLog) WriteLineBytes(b []byte)  { l.lines = append(l.lines, string(b)) }

func TestRestoreOnPanic(t *testing.T) {
	term := hal.NewMemTerminal(4, 4)
	log := &lineLog{}
	defer func() {
		r := recover()
		if r != "boom" {
			t.Fatalf("recovered %v, want boom", r)
		}
		if !term.Left || !term.Closed {
			t.Fatalf("terminal left=%v closed=%v", term.Left, term.Closed)
		}
		if len(log.lines) == 0 || log.lines[0] != "cubescreen panic: boom" {
			t.Fatalf("log = %q", log.lines)
		}
	}()

	func() {
		defer restoreOnPanic(term, log)
		panic("boom")
	}()
}

func TestRestoreOnPanicNoPanic(t *testing.T) {
	term := hal.NewMemTerminal(4, 4)
	func() {
		defer restoreOnPanic(term, nil)
	}()
	if term.Left || term.Closed {
		t.Fatalf("terminal touched without a panic")
	}
}
