//go:build !unix

package hal

import (
	"os"
	"os/signal"
)

// OpenTTY returns the ANSI backend on standard output. Without a unix ioctl
// the size query reports ErrNotImplemented and resizes are never signalled.
func OpenTTY() (*ANSITerminal, error) {
	t := NewANSI(os.Stdout, nil)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	done := make(chan struct{})
	go func() {
		select {
		case <-done:
		case <-sig:
			t.Notify(EventInterrupt)
		}
	}()
	t.stop = func() {
		signal.Stop(sig)
		close(done)
	}
	return t, nil
}
