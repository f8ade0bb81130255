package buffer

import (
	"errors"
	"fmt"
)

// Errors returned by document operations.
var (
	// ErrOffsetOutOfRange indicates an edit at a position that holds no cell.
	ErrOffsetOutOfRange = errors.New("offset out of range")

	// ErrInvalidCell indicates a rune outside the six-dot Braille block.
	ErrInvalidCell = errors.New("invalid braille cell")

	// ErrConfiguration matches every *ConfigurationError.
	ErrConfiguration = errors.New("malformed document")

	// ErrLineTooLong indicates a persisted line wider than the document.
	ErrLineTooLong = errors.New("line too long")

	// ErrInvalidEncoding indicates persisted data that is not valid UTF-8.
	ErrInvalidEncoding = errors.New("invalid UTF-8")
)

// ConfigurationError reports a persisted document that cannot be loaded.
type ConfigurationError struct {
	// Line is the 1-based line number in the input, or 0 if unknown.
	Line int
	// Column is the 1-based cell column in the input, or 0 if unknown.
	Column int
	// Reason describes the problem.
	Reason string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	switch {
	case e.Line > 0 && e.Column > 0:
		return fmt.Sprintf("document line %d, column %d: %s", e.Line, e.Column, e.Reason)
	case e.Line > 0:
		return fmt.Sprintf("document line %d: %s", e.Line, e.Reason)
	default:
		return "document: " + e.Reason
	}
}

// Unwrap returns the underlying error.
func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// Is matches ErrConfiguration.
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}
