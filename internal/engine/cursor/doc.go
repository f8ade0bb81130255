// Package cursor provides the linear cursor used to address a fixed-width
// document.
//
// A Cursor is an immutable value holding an offset and the line width. The
// 2-D view is always derived from the offset, so the column invariant
// 0 <= column < width holds by construction:
//
//	line   = offset / width
//	column = offset % width
//
// Motions never consult the document. Creating lines the cursor has moved
// onto is the caller's job (see engine.Engine), done in one pass after
// each operation.
package cursor
