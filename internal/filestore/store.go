// Package filestore loads and saves Braille documents on disk.
//
// Saves are atomic: the document is written to a temporary file in the
// destination directory and renamed over the target.
package filestore

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dshills/braillepad/internal/engine/buffer"
)

// ErrIsDirectory indicates a path that names a directory.
var ErrIsDirectory = errors.New("path is a directory")

// DefaultPerm is the permission for newly created documents.
const DefaultPerm fs.FileMode = 0o644

// Option configures a Store.
type Option func(*Store)

// WithPerm sets the permission used for new files.
func WithPerm(perm fs.FileMode) Option {
	return func(s *Store) {
		if perm != 0 {
			s.perm = perm
		}
	}
}

// WithMkdir creates missing parent directories on save.
func WithMkdir() Option {
	return func(s *Store) {
		s.mkdir = true
	}
}

// Store reads and writes documents.
type Store struct {
	perm  fs.FileMode
	mkdir bool
}

// New creates a store.
func New(opts ...Option) *Store {
	s := &Store{perm: DefaultPerm}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads the document at path. A missing file yields a new blank
// document of the requested width. Parse failures leave nothing behind:
// either a complete document or an error is returned.
func (s *Store) Load(path string, policy buffer.LoadPolicy, opts ...buffer.Option) (*buffer.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return buffer.New(opts...), nil
		}
		return nil, fmt.Errorf("opening document: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat document: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	doc, err := buffer.Parse(bufio.NewReader(f), policy, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return doc, nil
}

// Save writes doc to path atomically. An existing file keeps its
// permissions.
func (s *Store) Save(path string, doc *buffer.Document) (err error) {
	dir := filepath.Dir(path)
	if s.mkdir {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating directory: %w", err)
		}
	}

	perm := s.perm
	if info, statErr := os.Stat(path); statErr == nil {
		if info.IsDir() {
			return fmt.Errorf("%w: %s", ErrIsDirectory, path)
		}
		perm = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if err != nil {
			// Clean up temp file on failure
			os.Remove(tmpPath)
		}
	}()

	if err = doc.Marshal(tmp); err != nil {
		tmp.Close()
		return fmt.Errorf("writing document: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err = os.Chmod(tmpPath, perm); err != nil {
		return fmt.Errorf("setting permissions: %w", err)
	}
	if err = os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

// Exists returns true if path names a regular file.
func (s *Store) Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
