package mode

import (
	"fmt"
	"strings"
)

// Mode is an editing mode.
type Mode uint8

const (
	// Insert shifts existing cells right.
	Insert Mode = iota

	// Overwrite replaces the cell under the cursor.
	Overwrite

	// Delete removes the cell under the cursor on a blank commit.
	Delete

	modeCount
)

// Standard mode names.
const (
	NameInsert    = "insert"
	NameOverwrite = "overwrite"
	NameDelete    = "delete"
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case Insert:
		return NameInsert
	case Overwrite:
		return NameOverwrite
	case Delete:
		return NameDelete
	default:
		return fmt.Sprintf("Mode(%d)", m)
	}
}

// DisplayName returns a human-readable name for the status line.
func (m Mode) DisplayName() string {
	switch m {
	case Insert:
		return "INSERT"
	case Overwrite:
		return "OVERWRITE"
	case Delete:
		return "DELETE"
	default:
		return "UNKNOWN"
	}
}

// Next returns the mode that follows m in the toggle cycle.
func (m Mode) Next() Mode {
	return (m + 1) % modeCount
}

// IsValid returns true for the three defined modes.
func (m Mode) IsValid() bool {
	return m < modeCount
}

// Parse returns the mode for a name (case-insensitive).
// "assign" and "replace" are accepted as aliases for overwrite.
func Parse(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case NameInsert:
		return Insert, nil
	case NameOverwrite, "assign", "replace":
		return Overwrite, nil
	case NameDelete:
		return Delete, nil
	default:
		return Insert, fmt.Errorf("unknown mode: %s", name)
	}
}
