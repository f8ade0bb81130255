package input

import (
	"slices"

	"github.com/dshills/braillepad/internal/input/key"
)

// Latch synthesizes release events for sources that only report presses.
//
// Dot keys latch: each one is pressed when typed and stays held until
// Flush. A command key typed while nothing is latched is pressed and
// released at once. A command key typed while dots are latched joins the
// chord and is released with it.
type Latch struct {
	held []key.Key
}

// NewLatch creates an empty latch.
func NewLatch() *Latch {
	return &Latch{held: make([]key.Key, 0, 8)}
}

// Key returns the events produced by typing k.
func (l *Latch) Key(k key.Key) []key.Event {
	if !k.IsValid() || slices.Contains(l.held, k) {
		return nil
	}

	if k.IsCommand() && len(l.held) == 0 {
		return []key.Event{key.PressOf(k), key.ReleaseOf(k)}
	}

	l.held = append(l.held, k)
	return []key.Event{key.PressOf(k)}
}

// Flush releases every latched key in the order it was typed.
func (l *Latch) Flush() []key.Event {
	if len(l.held) == 0 {
		return nil
	}
	events := make([]key.Event, len(l.held))
	for i, k := range l.held {
		events[i] = key.ReleaseOf(k)
	}
	l.held = l.held[:0]
	return events
}

// Held returns a copy of the latched keys.
func (l *Latch) Held() []key.Key {
	return slices.Clone(l.held)
}

// Reset drops latched keys without emitting releases.
func (l *Latch) Reset() {
	l.held = l.held[:0]
}
