package asciigl

type recordedCell struct {
	row, col int
	c        Color
	glyph    byte
}

// recorder is a Screen that remembers every emitted cell.
type recorder struct {
	row, col int
	cells    []recordedCell
}

func (r *recorder) MoveTo(row, col int) { r.row, r.col = row, col }

func (r *recorder) Put(c Color, glyph byte) {
	r.cells = append(r.cells, recordedCell{row: r.row, col: r.col, c: c, glyph: glyph})
	r.col++
}

func (r *recorder) reset() { r.cells = r.cells[:0] }
