// Package backend provides terminal backend abstraction for the renderer.
package backend

import (
	"strings"
	"unicode"

	"github.com/dshills/braillepad/internal/renderer/core"
)

// EventType identifies the type of terminal event.
type EventType int

const (
	// EventNone is a terminal event braillepad does not use, such as
	// focus changes or mouse input.
	EventNone EventType = iota
	EventKey
	EventResize
	EventInterrupt
	// EventClosed is returned once the backend has shut down. No further
	// events follow.
	EventClosed
)

// Event represents a terminal event.
type Event struct {
	Type EventType

	// Key event fields
	Key  Key
	Rune rune
	Mod  ModMask

	// Resize event fields
	Width, Height int

	// Payload carries the data of an interrupt event.
	Payload any
}

// KeyEvent creates a key event.
func KeyEvent(k Key, r rune, mod ModMask) Event {
	return Event{Type: EventKey, Key: k, Rune: r, Mod: mod}
}

// RuneEvent creates a key event for a printable character.
func RuneEvent(r rune) Event {
	return KeyEvent(KeyRune, r, ModNone)
}

// InterruptEvent creates an interrupt event carrying payload. Interrupts
// wake a blocked PollEvent from another goroutine.
func InterruptEvent(payload any) Event {
	return Event{Type: EventInterrupt, Payload: payload}
}

// Name returns the physical key name used by keymaps, such as "f", ";",
// "space", "enter" or "ctrl+s". It returns "" for non-key events and for
// keys the backend does not name.
func (e Event) Name() string {
	if e.Type != EventKey {
		return ""
	}
	if e.Key == KeyRune {
		if e.Rune == ' ' {
			return "space"
		}
		name := string(unicode.ToLower(e.Rune))
		if e.Mod.Has(ModCtrl) {
			return "ctrl+" + name
		}
		if e.Mod.Has(ModAlt) {
			return "alt+" + name
		}
		return name
	}
	return e.Key.String()
}

// Key represents a keyboard key.
type Key int

// Key constants for the keys braillepad distinguishes.
const (
	KeyNone Key = iota
	KeyRune     // Regular character (use Rune field)
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyCtrlC
	KeyCtrlJ
	KeyCtrlQ
	KeyCtrlS
)

var keyNames = map[Key]string{
	KeyEscape:    "escape",
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyCtrlC:     "ctrl+c",
	KeyCtrlJ:     "ctrl+j",
	KeyCtrlQ:     "ctrl+q",
	KeyCtrlS:     "ctrl+s",
}

// String returns the physical name of a named key.
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	if k == KeyRune {
		return "rune"
	}
	return ""
}

// ParseKey returns the named key for a physical name such as "enter".
func ParseKey(name string) (Key, bool) {
	n := strings.ToLower(strings.TrimSpace(name))
	for k, s := range keyNames {
		if s == n {
			return k, true
		}
	}
	return KeyNone, false
}

// ModMask represents modifier key state.
type ModMask int

const (
	ModNone  ModMask = 0
	ModShift ModMask = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

// Has returns true if the mask contains the given modifier.
func (m ModMask) Has(mod ModMask) bool {
	return m&mod != 0
}

// Backend defines the interface for terminal/display backends.
// Implementations handle actual drawing to the terminal or other display surfaces.
type Backend interface {
	// Init initializes the backend for use.
	// Must be called before any other methods.
	Init() error

	// Shutdown releases backend resources and restores terminal state.
	Shutdown()

	// Size returns the current terminal dimensions.
	Size() (width, height int)

	// SetCell sets a single cell at the given position.
	// Positions outside the terminal are silently ignored.
	SetCell(x, y int, cell core.Cell)

	// GetCell returns the cell at the given position.
	// Returns an empty cell for positions outside the terminal.
	GetCell(x, y int) core.Cell

	// Clear clears the entire screen with the default style.
	Clear()

	// Show synchronizes the internal buffer with the actual display.
	Show()

	// ShowCursor positions and displays the cursor.
	ShowCursor(x, y int)

	// HideCursor hides the cursor.
	HideCursor()

	// PollEvent waits for and returns the next terminal event.
	// It returns an EventClosed event once the backend is shut down.
	PollEvent() Event

	// PostEvent posts a synthetic event to the event queue. It is safe to
	// call from any goroutine.
	PostEvent(event Event) error

	// Beep produces an audible or visual bell.
	Beep()
}
