package input

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dshills/braillepad/internal/input/key"
)

// Errors returned by the router.
var (
	// ErrProtocol matches every *ProtocolError.
	ErrProtocol = errors.New("input protocol violation")

	// ErrUnknownKey indicates an event for a key that is not a logical key.
	ErrUnknownKey = errors.New("unknown logical key")

	// ErrAmbiguousChord indicates a dot-free chord holding more than one
	// command key. Nothing is executed.
	ErrAmbiguousChord = errors.New("ambiguous chord")
)

// ProtocolError reports a release without a matching press. It points at a
// bug in the input collaborator, not at user input.
type ProtocolError struct {
	// Key is the released key.
	Key key.Key
	// Held is the held set at the time of the release.
	Held []key.Key
}

// Error implements the error interface.
func (e *ProtocolError) Error() string {
	names := make([]string, len(e.Held))
	for i, k := range e.Held {
		names[i] = k.String()
	}
	return fmt.Sprintf("release of %v without matching press (held: [%s])", e.Key, strings.Join(names, " "))
}

// Is matches ErrProtocol.
func (e *ProtocolError) Is(target error) bool {
	return target == ErrProtocol
}
