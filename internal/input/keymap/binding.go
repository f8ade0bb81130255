package keymap

import (
	"strings"

	"github.com/dshills/braillepad/internal/input/key"
)

// Binding pairs a physical key with the logical key it produces.
type Binding struct {
	// Physical is the normalized physical key name.
	Physical string

	// Key is the logical key.
	Key key.Key
}

// NewBinding creates a binding with a normalized physical name.
func NewBinding(physical string, k key.Key) Binding {
	return Binding{Physical: Normalize(physical), Key: k}
}

// String returns "physical=logical".
func (b Binding) String() string {
	return b.Physical + "=" + b.Key.String()
}

// physicalAliases folds alternate spellings onto one name.
var physicalAliases = map[string]string{
	"spc":        "space",
	"bs":         "backspace",
	"backspace2": "backspace",
	"bksp":       "backspace",
	"esc":        "escape",
	"return":     "enter",
	"ret":        "enter",
	"cr":         "enter",
	"semicolon":  ";",
	"del":        "delete",
}

// Normalize lowercases a physical key name and folds aliases.
// A lone space is kept as "space".
func Normalize(name string) string {
	if name == " " {
		return "space"
	}
	n := strings.ToLower(strings.TrimSpace(name))
	if alias, ok := physicalAliases[n]; ok {
		return alias
	}
	return n
}
