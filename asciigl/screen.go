package asciigl

// Screen is the output surface changed cells are emitted to.
//
// Rows and columns are 1-based, matching terminal cursor addressing.
type Screen interface {
	MoveTo(row, col int)
	Put(c Color, glyph byte)
}
