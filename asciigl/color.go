package asciigl

// Color is an entry of the fixed terminal palette.
//
// Backends map palette entries to their own attribute encoding; the core only
// compares and stores them.
type Color uint8

const (
	ColorReset Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBoldBlack
	ColorBoldRed
	ColorBoldGreen
	ColorBoldYellow
	ColorBoldBlue
	ColorBoldMagenta
	ColorBoldCyan
	ColorBoldWhite

	numColors
)

// GridLineColor is forced onto points inside a grid line band.
const GridLineColor = ColorBlack

// Valid reports whether c is a palette entry.
func (c Color) Valid() bool { return c < numColors }

// Bold reports whether c is one of the bold variants.
func (c Color) Bold() bool { return c >= ColorBoldBlack && c < numColors }

// Index returns the 0..7 ANSI color number of c, or -1 for ColorReset.
func (c Color) Index() int {
	switch {
	case c == ColorReset || !c.Valid():
		return -1
	case c.Bold():
		return int(c - ColorBoldBlack)
	default:
		return int(c - ColorBlack)
	}
}

var colorNames = [...]string{
	"reset",
	"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white",
	"bold-black", "bold-red", "bold-green", "bold-yellow", "bold-blue", "bold-magenta", "bold-cyan", "bold-white",
}

func (c Color) String() string {
	if !c.Valid() {
		return "invalid"
	}
	return colorNames[c]
}

// Glyphs is the luminance ramp, faintest first.
const Glyphs = ".,-~:;=!*#$@"

// GlyphIndex maps a luminance in [-1, 1] to an index into Glyphs.
//
// Surfaces facing away from the light (lum <= 0) get the faintest glyph rather
// than being skipped.
func GlyphIndex(lum Scalar) int {
	if !(lum > 0) {
		return 0
	}
	i := int(lum * 11)
	if i >= len(Glyphs) {
		i = len(Glyphs) - 1
	}
	return i
}

// Glyph returns the ramp character for lum.
func Glyph(lum Scalar) byte { return Glyphs[GlyphIndex(lum)] }
