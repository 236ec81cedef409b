// Package asciigl is a small software renderer that draws a rotating, shaded
// cube into a character grid.
//
// Pipeline (fixed, one pass per frame):
//
//	Rotation → Trig → Clear → Rasterize faces → Depth test → Diff-emit.
//
// The renderer owns its frame buffers and never touches the terminal directly:
// changed cells are emitted through a caller-provided Screen. Buffers are
// reused between frames and only reallocated on Resize.
//
// Numeric backend is float32, matching the precision the cube constants were
// tuned for.
package asciigl
