package engine

import (
	"github.com/dshills/braillepad/internal/engine/buffer"
	"github.com/dshills/braillepad/internal/input/mode"
)

// Snapshot is a read-only copy of the engine state for rendering.
type Snapshot struct {
	// Lines is a deep copy of the document lines.
	Lines [][]rune

	// Cursor is the cursor position.
	Cursor buffer.Position

	// Mode is the editing mode.
	Mode mode.Mode

	// Width is the line width.
	Width int

	// Revision changes on every successful edit.
	Revision uint64
}

// LineCount returns the number of lines in the snapshot.
func (s Snapshot) LineCount() int {
	return len(s.Lines)
}
