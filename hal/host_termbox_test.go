package hal

import (
	"testing"

	"cubescreen/asciigl"

	"github.com/nsf/termbox-go"
)

func TestTermboxAttr(t *testing.T) {
	cases := map[asciigl.Color]termbox.Attribute{
		asciigl.ColorReset:     termbox.ColorDefault,
		asciigl.ColorBlack:     termbox.ColorBlack,
		asciigl.ColorRed:       termbox.ColorRed,
		asciigl.ColorWhite:     termbox.ColorWhite,
		asciigl.ColorBoldRed:   termbox.ColorRed | termbox.AttrBold,
		asciigl.ColorBoldWhite: termbox.ColorWhite | termbox.AttrBold,
	}
	for c, want := range cases {
		if got := termboxAttr(c); got != want {
			t.Fatalf("termboxAttr(%s) = %#x, want %#x", c, got, want)
		}
	}
}
