package app

import (
	"path/filepath"
	"sync/atomic"
)

// Document tracks the file behind the engine's buffer and whether it has
// unsaved changes.
type Document struct {
	// Path is the absolute file path (empty for scratch buffers).
	Path string

	// Name is the display name (filename or "Untitled").
	Name string

	// savedRevision is the engine revision last written to disk.
	savedRevision atomic.Uint64
}

// NewDocument creates a document for path. An empty path makes a
// scratch document.
func NewDocument(path string) *Document {
	if path == "" {
		return &Document{Name: "Untitled"}
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return &Document{
		Path: path,
		Name: filepath.Base(path),
	}
}

// IsScratch returns true if the document has no file path.
func (d *Document) IsScratch() bool {
	return d.Path == ""
}

// MarkSaved records revision as the on-disk state.
func (d *Document) MarkSaved(revision uint64) {
	d.savedRevision.Store(revision)
}

// IsModified reports whether revision differs from the saved one.
func (d *Document) IsModified(revision uint64) bool {
	return d.savedRevision.Load() != revision
}
