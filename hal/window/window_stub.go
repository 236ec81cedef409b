//go:build !cgo

package window

import (
	"context"

	"cubescreen/hal"
)

const Scale = 2

func Run(_ context.Context, _ *Terminal, _ hal.Driver, _ int, _ uint64) error {
	return ErrNoCgo
}
