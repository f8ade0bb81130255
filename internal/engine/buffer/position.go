package buffer

import "fmt"

// Position is a line and column pair. Both are 0-indexed.
type Position struct {
	Line   int
	Column int
}

// String returns a human-readable representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d:%d)", p.Line, p.Column)
}

// Compare returns -1 if p < other, 0 if p == other, 1 if p > other.
func (p Position) Compare(other Position) int {
	if p.Line < other.Line {
		return -1
	}
	if p.Line > other.Line {
		return 1
	}
	if p.Column < other.Column {
		return -1
	}
	if p.Column > other.Column {
		return 1
	}
	return 0
}

// PositionOf converts a linear offset to a position for the given width.
// Negative offsets map to (0:0).
func PositionOf(offset, width int) Position {
	if offset < 0 || width <= 0 {
		return Position{}
	}
	return Position{Line: offset / width, Column: offset % width}
}

// OffsetOf converts a position to a linear offset for the given width.
func OffsetOf(p Position, width int) int {
	return p.Line*width + p.Column
}
