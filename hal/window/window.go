//go:build cgo

package window

import (
	"context"
	"errors"

	"cubescreen/hal"
	"cubescreen/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Scale is the number of screen pixels per framebuffer pixel.
const Scale = 2

// Run opens a desktop window showing term and drives d at fps ticks per
// second. It blocks until the window closes, Esc/q is pressed, ctx is
// cancelled, frames frames have been rendered (0 = no limit) or d fails.
// Cancellation returns ctx.Err().
func Run(ctx context.Context, term *Terminal, d hal.Driver, fps int, frames uint64) error {
	if fps <= 0 {
		fps = 60
	}
	w, h := term.PixelSize()
	g := newGame(ctx, term, d, frames)
	ebiten.SetWindowTitle("cubescreen (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(w*Scale, h*Scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(fps)
	if err := ebiten.RunGame(g); err != nil {
		return err
	}
	return ctx.Err()
}

type game struct {
	ctx  context.Context
	term *Terminal
	d    hal.Driver

	limit    uint64
	frames   uint64
	quitKeys func() bool

	img     *ebiten.Image
	scratch []byte
}

func newGame(ctx context.Context, term *Terminal, d hal.Driver, limit uint64) *game {
	return &game{
		ctx:      ctx,
		term:     term,
		d:        d,
		limit:    limit,
		quitKeys: quitPressed,
	}
}

func quitPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ)
}

func (g *game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	if g.quitKeys() {
		return ebiten.Termination
	}
	for drained := false; !drained; {
		select {
		case ev := <-g.term.Events():
			switch ev.Kind {
			case hal.EventResize:
				g.d.Resize()
			case hal.EventInterrupt:
				return ebiten.Termination
			}
		default:
			drained = true
		}
	}
	if err := g.d.Frame(); err != nil {
		if errors.Is(err, hal.ErrInterrupted) {
			return ebiten.Termination
		}
		return err
	}
	g.frames++
	if g.limit > 0 && g.frames >= g.limit {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	var w, h int
	g.scratch, w, h = g.term.pixels(g.scratch)
	if w == 0 || h == 0 {
		return
	}
	if g.img == nil || g.img.Bounds().Dx() != w || g.img.Bounds().Dy() != h {
		if g.img != nil {
			g.img.Deallocate()
		}
		g.img = ebiten.NewImage(w, h)
	}
	g.img.WritePixels(g.scratch)
	screen.DrawImage(g.img, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := outsideWidth/Scale, outsideHeight/Scale
	g.term.SetPixelSize(w, h)
	return w, h
}
