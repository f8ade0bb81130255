package keymap

import "github.com/dshills/braillepad/internal/input/key"

// DefaultName is the name of the built-in keymap.
const DefaultName = "default"

// Default returns the built-in home-row layout.
func Default() *Keymap {
	return NewKeymap(DefaultName).
		WithSource("default").
		Bind("f", key.KeyDot1).
		Bind("d", key.KeyDot2).
		Bind("s", key.KeyDot3).
		Bind("j", key.KeyDot4).
		Bind("k", key.KeyDot5).
		Bind("l", key.KeyDot6).
		Bind("a", key.KeyLeft).
		Bind(";", key.KeyRight).
		Bind("g", key.KeyDown).
		Bind("h", key.KeyUp).
		Bind("space", key.KeySpace).
		Bind("tab", key.KeyModeToggle).
		Bind("backspace", key.KeyDelete)
}
