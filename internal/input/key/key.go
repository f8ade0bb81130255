package key

import (
	"fmt"
	"strings"
)

// Key is a logical input role.
type Key uint8

const (
	// KeyNone represents no key.
	KeyNone Key = iota

	// Dot keys
	KeyDot1
	KeyDot2
	KeyDot3
	KeyDot4
	KeyDot5
	KeyDot6

	// Motion keys
	KeyLeft
	KeyRight
	KeyUp
	KeyDown

	// Other command keys
	KeySpace
	KeyModeToggle
	KeyDelete
)

// Dot returns the logical key for dot n (1..6), or KeyNone.
func Dot(n int) Key {
	if n < 1 || n > 6 {
		return KeyNone
	}
	return KeyDot1 + Key(n-1)
}

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyDot1, KeyDot2, KeyDot3, KeyDot4, KeyDot5, KeyDot6:
		return fmt.Sprintf("Dot%d", k.Dot())
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeySpace:
		return "Space"
	case KeyModeToggle:
		return "ModeToggle"
	case KeyDelete:
		return "Delete"
	default:
		return fmt.Sprintf("Key(%d)", k)
	}
}

// IsDot returns true if this key contributes a dot to a chord.
func (k Key) IsDot() bool {
	return k >= KeyDot1 && k <= KeyDot6
}

// Dot returns the dot number (1..6) for dot keys and 0 otherwise.
func (k Key) Dot() int {
	if !k.IsDot() {
		return 0
	}
	return int(k-KeyDot1) + 1
}

// IsMotion returns true if this is a cursor motion key.
func (k Key) IsMotion() bool {
	return k >= KeyLeft && k <= KeyDown
}

// IsCommand returns true for every valid non-dot key.
func (k Key) IsCommand() bool {
	return k >= KeyLeft && k <= KeyDelete
}

// IsValid returns true if k is one of the defined logical keys.
func (k Key) IsValid() bool {
	return k.IsDot() || k.IsCommand()
}

// keyNameMap maps key names (lowercase) to Key values.
var keyNameMap = map[string]Key{
	"dot1":       KeyDot1,
	"dot2":       KeyDot2,
	"dot3":       KeyDot3,
	"dot4":       KeyDot4,
	"dot5":       KeyDot5,
	"dot6":       KeyDot6,
	"left":       KeyLeft,
	"right":      KeyRight,
	"up":         KeyUp,
	"down":       KeyDown,
	"space":      KeySpace,
	"mode":       KeyModeToggle,
	"modetoggle": KeyModeToggle,
	"toggle":     KeyModeToggle,
	"delete":     KeyDelete,
	"del":        KeyDelete,
}

// Parse returns the Key for a given name (case-insensitive).
// Accepts "dot1".."dot6", a bare digit "1".."6", and the command names.
func Parse(name string) (Key, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.ReplaceAll(n, "-", "")
	n = strings.ReplaceAll(n, "_", "")
	if len(n) == 1 && n[0] >= '1' && n[0] <= '6' {
		return Dot(int(n[0] - '0')), nil
	}
	if k, ok := keyNameMap[n]; ok {
		return k, nil
	}
	return KeyNone, fmt.Errorf("unknown logical key %q", name)
}

// All returns every logical key in declaration order.
func All() []Key {
	keys := make([]Key, 0, int(KeyDelete))
	for k := KeyDot1; k <= KeyDelete; k++ {
		keys = append(keys, k)
	}
	return keys
}
