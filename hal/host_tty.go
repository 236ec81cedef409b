//go:build unix

package hal

import (
	"fmt"
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
)

// OpenTTY returns the ANSI backend bound to the process's standard output.
//
// SIGWINCH is delivered as EventResize, SIGINT/SIGTERM as EventInterrupt.
func OpenTTY() (*ANSITerminal, error) {
	t := NewANSI(os.Stdout, ttySize)

	sig := make(chan os.Signal, 4)
	signal.Notify(sig, unix.SIGWINCH, unix.SIGINT, unix.SIGTERM)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-done:
				return
			case s := <-sig:
				if s == unix.SIGWINCH {
					t.Notify(EventResize)
				} else {
					t.Notify(EventInterrupt)
				}
			}
		}
	}()

	t.stop = func() {
		signal.Stop(sig)
		close(done)
	}
	return t, nil
}

// ttySize queries the window size from stdin, stdout, then stderr, so the
// query still works with one of them redirected.
func ttySize() (int, int, error) {
	var lastErr error
	for _, f := range []*os.File{os.Stdin, os.Stdout, os.Stderr} {
		ws, err := unix.IoctlGetWinsize(int(f.Fd()), unix.TIOCGWINSZ)
		if err == nil {
			return int(ws.Col), int(ws.Row), nil
		}
		lastErr = err
	}
	return 0, 0, fmt.Errorf("TIOCGWINSZ: %w", lastErr)
}
