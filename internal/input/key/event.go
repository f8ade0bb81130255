package key

import (
	"fmt"
	"time"
)

// Phase is the direction of a key transition.
type Phase uint8

const (
	// Press is a key going down.
	Press Phase = iota
	// Release is a key coming up.
	Release
)

// String returns "press" or "release".
func (p Phase) String() string {
	switch p {
	case Press:
		return "press"
	case Release:
		return "release"
	default:
		return fmt.Sprintf("Phase(%d)", p)
	}
}

// Event represents a single logical key transition.
type Event struct {
	// Key identifies the logical key.
	Key Key

	// Phase is Press or Release.
	Phase Phase

	// Timestamp is when the event occurred.
	Timestamp time.Time
}

// NewEvent creates a key event with the current timestamp.
func NewEvent(k Key, phase Phase) Event {
	return Event{
		Key:       k,
		Phase:     phase,
		Timestamp: time.Now(),
	}
}

// PressOf creates a press event for k.
func PressOf(k Key) Event {
	return NewEvent(k, Press)
}

// ReleaseOf creates a release event for k.
func ReleaseOf(k Key) Event {
	return NewEvent(k, Release)
}

// IsPress returns true for press events.
func (e Event) IsPress() bool {
	return e.Phase == Press
}

// IsRelease returns true for release events.
func (e Event) IsRelease() bool {
	return e.Phase == Release
}

// String returns a representation like "Dot1 press".
func (e Event) String() string {
	return e.Key.String() + " " + e.Phase.String()
}
