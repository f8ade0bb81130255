package engine

import (
	"github.com/dshills/braillepad/internal/engine/buffer"
	"github.com/dshills/braillepad/internal/input/mode"
)

// Option configures an Engine during creation.
type Option func(*Engine)

// WithWidth sets the number of cells per line.
func WithWidth(width int) Option {
	return func(e *Engine) {
		if width > 0 {
			e.width = width
		}
	}
}

// WithPadTail re-pads the last line to full width after deletes.
func WithPadTail(pad bool) Option {
	return func(e *Engine) {
		e.padTail = pad
	}
}

// WithDocument starts the engine on an existing document. The engine
// takes the document's width.
func WithDocument(doc *buffer.Document) Option {
	return func(e *Engine) {
		if doc != nil {
			e.doc = doc
			e.width = doc.Width()
		}
	}
}

// WithModeController shares a mode controller with the engine.
func WithModeController(c *mode.Controller) Option {
	return func(e *Engine) {
		if c != nil {
			e.modes = c
		}
	}
}

// WithReadOnly creates a read-only engine.
// Edits return ErrReadOnly; cursor motion and mode changes still work.
func WithReadOnly() Option {
	return func(e *Engine) {
		e.readOnly = true
	}
}
