package engine

import (
	"errors"
	"fmt"
)

// Errors returned by engine operations.
var (
	// ErrRejectedInDeleteMode indicates a non-blank cell committed while in
	// Delete mode. The document is left unchanged.
	ErrRejectedInDeleteMode = errors.New("cell input rejected in delete mode")

	// ErrNotCommand indicates Execute was called with a key that has no
	// command meaning.
	ErrNotCommand = errors.New("not a command key")

	// ErrReadOnly indicates an edit was attempted on a read-only engine.
	ErrReadOnly = errors.New("engine is read-only")

	// ErrWidthMismatch indicates a document whose line width differs from
	// the engine's.
	ErrWidthMismatch = errors.New("document width mismatch")
)

// EditError describes an edit that could not be applied.
type EditError struct {
	Op     string // "insert", "overwrite", "delete"
	Offset int    // cursor offset of the attempted edit
	Err    error  // underlying error
}

func (e *EditError) Error() string {
	return fmt.Sprintf("%s at %d: %v", e.Op, e.Offset, e.Err)
}

func (e *EditError) Unwrap() error {
	return e.Err
}
