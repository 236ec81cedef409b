package app

import (
	"fmt"
	"runtime/debug"
	"strings"

	"cubescreen/hal"
)

// restoreOnPanic puts the terminal back into a usable state and logs the
// panic before letting it continue. Use it with defer.
func restoreOnPanic(term hal.Terminal, log hal.Logger) {
	r := recover()
	if r == nil {
		return
	}
	if log != nil {
		log.WriteLineString(fmt.Sprintf("cubescreen panic: %v", r))
		for _, line := range strings.Split(string(debug.Stack()), "\n") {
			if line == "" {
				continue
			}
			log.WriteLineString(line)
		}
	}
	_ = term.Leave()
	_ = term.Close()
	panic(r)
}
