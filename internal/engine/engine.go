package engine

import (
	"fmt"
	"io"
	"sync"

	"github.com/dshills/braillepad/internal/braille"
	"github.com/dshills/braillepad/internal/engine/buffer"
	"github.com/dshills/braillepad/internal/engine/cursor"
	"github.com/dshills/braillepad/internal/input/key"
	"github.com/dshills/braillepad/internal/input/mode"
)

// Engine combines the document, cursor and mode into the editing target
// for chord input.
type Engine struct {
	mu sync.RWMutex

	doc   *buffer.Document
	cur   cursor.Cursor
	modes *mode.Controller

	width    int
	padTail  bool
	readOnly bool
	revision uint64
}

// New creates an engine with one blank line, the cursor at (0:0) and the
// mode set to Insert.
func New(opts ...Option) *Engine {
	e := &Engine{
		width: buffer.DefaultWidth,
	}

	for _, opt := range opts {
		opt(e)
	}

	if e.doc == nil {
		e.doc = buffer.New(buffer.WithWidth(e.width), buffer.WithPadTail(e.padTail))
	}
	if e.modes == nil {
		e.modes = mode.NewController()
	}
	e.cur = cursor.New(e.width)
	return e
}

// Commit writes a cell at the cursor according to the current mode.
func (e *Engine) Commit(c braille.Cell) error {
	m := e.modes.Current()

	e.mu.Lock()
	defer e.mu.Unlock()
	return e.commitLocked(m, c)
}

// Execute runs a command key.
func (e *Engine) Execute(k key.Key) error {
	// Mode changes never touch the document. Handle them before taking the
	// lock so mode callbacks may read engine state.
	if k == key.KeyModeToggle {
		e.modes.Toggle()
		return nil
	}

	m := e.modes.Current()

	e.mu.Lock()
	defer e.mu.Unlock()

	switch k {
	case key.KeyLeft:
		e.cur = e.cur.Left()
	case key.KeyRight:
		e.cur = e.cur.Right()
	case key.KeyUp:
		e.cur = e.cur.Up()
	case key.KeyDown:
		e.cur = e.cur.Down()
	case key.KeySpace:
		return e.commitLocked(m, 0)
	case key.KeyDelete:
		return e.deleteLocked()
	default:
		return fmt.Errorf("%w: %v", ErrNotCommand, k)
	}

	e.normalizeLocked()
	return nil
}

// commitLocked applies a cell in mode m. Caller must hold e.mu.
func (e *Engine) commitLocked(m mode.Mode, c braille.Cell) error {
	if m == mode.Delete {
		if !c.IsBlank() {
			return &EditError{Op: "commit", Offset: e.cur.Offset(), Err: ErrRejectedInDeleteMode}
		}
		return e.deleteLocked()
	}
	if e.readOnly {
		return ErrReadOnly
	}

	offset := e.cur.Offset()
	var err error
	var op string
	switch m {
	case mode.Overwrite:
		op = "overwrite"
		err = e.doc.OverwriteAt(offset, c.Rune())
	default:
		op = "insert"
		err = e.doc.InsertAt(offset, c.Rune())
	}

	if err == nil {
		e.cur = e.cur.Right()
		e.revision++
	}
	e.normalizeLocked()

	if err != nil {
		return &EditError{Op: op, Offset: offset, Err: err}
	}
	return nil
}

// deleteLocked removes the cell under the cursor. The cursor stays put.
// Caller must hold e.mu.
func (e *Engine) deleteLocked() error {
	if e.readOnly {
		return ErrReadOnly
	}

	offset := e.cur.Offset()
	err := e.doc.DeleteAt(offset)
	if err == nil {
		e.revision++
	}
	e.normalizeLocked()

	if err != nil {
		return &EditError{Op: "delete", Offset: offset, Err: err}
	}
	return nil
}

// normalizeLocked makes sure the cursor's line exists.
// It is idempotent. Caller must hold e.mu.
//
// Padding a short last line or appending blank lines counts as an edit,
// since Save writes those cells. Read-only engines never save, so their
// revision stays put.
func (e *Engine) normalizeLocked() {
	lines, cells := e.doc.LineCount(), e.doc.Len()
	e.doc.EnsureLineExists(e.cur.Line())
	if e.readOnly {
		return
	}
	if e.doc.LineCount() != lines || e.doc.Len() != cells {
		e.revision++
	}
}

// MoveTo places the cursor at (line, column), clamping into range.
func (e *Engine) MoveTo(line, column int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cur = e.cur.MoveToPosition(line, column)
	e.normalizeLocked()
}

// Document returns a copy of the document.
func (e *Engine) Document() *buffer.Document {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.doc.Clone()
}

// Cursor returns the cursor.
func (e *Engine) Cursor() cursor.Cursor {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.cur
}

// Position returns the cursor position.
func (e *Engine) Position() buffer.Position {
	return e.Cursor().Position()
}

// Mode returns the current editing mode.
func (e *Engine) Mode() mode.Mode {
	return e.modes.Current()
}

// Modes returns the mode controller.
func (e *Engine) Modes() *mode.Controller {
	return e.modes
}

// Width returns the line width.
func (e *Engine) Width() int {
	return e.width
}

// IsReadOnly returns true if the engine rejects edits.
func (e *Engine) IsReadOnly() bool {
	return e.readOnly
}

// Revision returns a counter that changes on every successful edit or load.
func (e *Engine) Revision() uint64 {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.revision
}

// Snapshot returns a consistent copy of the state for rendering.
func (e *Engine) Snapshot() Snapshot {
	m := e.modes.Current()

	e.mu.RLock()
	defer e.mu.RUnlock()
	return Snapshot{
		Lines:    e.doc.Lines(),
		Cursor:   e.cur.Position(),
		Mode:     m,
		Width:    e.width,
		Revision: e.revision,
	}
}

// Replace installs a new document and moves the cursor to (0:0).
// The document must have the engine's width.
func (e *Engine) Replace(doc *buffer.Document) error {
	if doc == nil {
		return fmt.Errorf("replace: nil document")
	}
	if doc.Width() != e.width {
		return fmt.Errorf("%w: document has %d cells per line, engine has %d",
			ErrWidthMismatch, doc.Width(), e.width)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.doc = doc
	e.cur = cursor.New(e.width)
	e.revision++
	e.normalizeLocked()
	return nil
}

// Load parses a persisted document and installs it. On error the current
// document is kept unchanged.
func (e *Engine) Load(r io.Reader, policy buffer.LoadPolicy) error {
	doc, err := buffer.Parse(r, policy, buffer.WithWidth(e.width), buffer.WithPadTail(e.padTail))
	if err != nil {
		return err
	}
	return e.Replace(doc)
}

// Save writes the document in its persisted form.
func (e *Engine) Save(w io.Writer) error {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.doc.Marshal(w)
}
