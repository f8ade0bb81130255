package cursor

import (
	"fmt"

	"github.com/dshills/braillepad/internal/engine/buffer"
)

// Position is an alias for buffer.Position for convenience.
type Position = buffer.Position

// Cursor represents an insertion point in the document.
// Cursor is an immutable value type.
type Cursor struct {
	offset int
	width  int
}

// New creates a cursor at (0:0) for lines of the given width.
// Non-positive widths fall back to buffer.DefaultWidth.
func New(width int) Cursor {
	return At(0, width)
}

// At creates a cursor at the given offset. Negative offsets clamp to 0.
func At(offset, width int) Cursor {
	if width <= 0 {
		width = buffer.DefaultWidth
	}
	if offset < 0 {
		offset = 0
	}
	return Cursor{offset: offset, width: width}
}

// Offset returns the linear offset.
func (c Cursor) Offset() int {
	return c.offset
}

// Width returns the line width the cursor wraps at.
func (c Cursor) Width() int {
	if c.width <= 0 {
		return buffer.DefaultWidth
	}
	return c.width
}

// Line returns the 0-indexed line.
func (c Cursor) Line() int {
	return c.offset / c.Width()
}

// Column returns the 0-indexed column, always in [0, Width).
func (c Cursor) Column() int {
	return c.offset % c.Width()
}

// Position returns the (line, column) pair.
func (c Cursor) Position() Position {
	return Position{Line: c.Line(), Column: c.Column()}
}

// MoveTo returns a new cursor at the given offset.
func (c Cursor) MoveTo(offset int) Cursor {
	return At(offset, c.Width())
}

// MoveBy returns a new cursor shifted by delta cells, clamped at 0.
func (c Cursor) MoveBy(delta int) Cursor {
	return At(c.offset+delta, c.Width())
}

// MoveToPosition returns a cursor at (line, column). The line clamps at 0
// and the column clamps into [0, Width).
func (c Cursor) MoveToPosition(line, column int) Cursor {
	w := c.Width()
	line = max(line, 0)
	column = min(max(column, 0), w-1)
	return At(line*w+column, w)
}

// Left moves one cell back. At column 0 of a later line it wraps to the
// last column of the previous line; at (0:0) it does nothing.
func (c Cursor) Left() Cursor {
	return c.MoveBy(-1)
}

// Right moves one cell forward, wrapping to the next line after the last
// column.
func (c Cursor) Right() Cursor {
	return c.MoveBy(1)
}

// Up moves one line up keeping the column. No-op on line 0.
func (c Cursor) Up() Cursor {
	if c.Line() == 0 {
		return c
	}
	return c.MoveBy(-c.Width())
}

// Down moves one line down keeping the column.
func (c Cursor) Down() Cursor {
	return c.MoveBy(c.Width())
}

// String returns a string representation of the cursor.
func (c Cursor) String() string {
	return fmt.Sprintf("Cursor(%d %v)", c.offset, c.Position())
}
