package hal

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

// NewLogger returns a Logger writing timestamped lines to w.
//
// A nil writer discards everything.
func NewLogger(w io.Writer) Logger {
	if w == nil {
		w = io.Discard
	}
	return &hostLogger{w: w}
}

// OpenLogFile opens (appending) a log file. An empty path returns a discarding
// logger.
func OpenLogFile(path string) (Logger, io.Closer, error) {
	if path == "" {
		return NewLogger(nil), nopCloser{}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log %s: %w", path, err)
	}
	return &hostLogger{w: f}, f, nil
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.w, "%s %s\n", time.Now().Format("15:04:05.000"), s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.WriteLineString(string(b))
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Logf formats and writes one line to l. A nil logger is ignored.
func Logf(l Logger, format string, args ...any) {
	if l == nil {
		return
	}
	l.WriteLineString(fmt.Sprintf(format, args...))
}
