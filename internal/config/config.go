package config

import (
	"maps"
	"strings"

	"github.com/dshills/braillepad/internal/engine/buffer"
	"github.com/dshills/braillepad/internal/input/keymap"
)

// Limits for editor.line_width.
const (
	MinLineWidth = 1
	MaxLineWidth = 1024
)

// Reserved physical keys handled by the application itself. They may not
// be bound to logical keys.
var reservedKeys = []string{"escape", "ctrl+q", "ctrl+s"}

// Config is the complete braillepad configuration.
type Config struct {
	Editor  EditorConfig  `toml:"editor" yaml:"editor"`
	Input   InputConfig   `toml:"input" yaml:"input"`
	Logging LoggingConfig `toml:"logging" yaml:"logging"`

	// Source is the file the config was loaded from, if any.
	Source string `toml:"-" yaml:"-"`
}

// EditorConfig configures the document and engine.
type EditorConfig struct {
	// LineWidth is the number of cells per line.
	LineWidth int `toml:"line_width" yaml:"line_width"`

	// LoadPolicy handles document lines longer than LineWidth:
	// "pad" (wrap), "truncate" or "reject".
	LoadPolicy string `toml:"load_policy" yaml:"load_policy"`

	// PadTail keeps the last line padded to full width after deletes.
	PadTail bool `toml:"pad_tail" yaml:"pad_tail"`
}

// InputConfig configures the keyboard.
type InputConfig struct {
	// ChordKey is the physical key that completes a chord on terminals
	// that do not report key releases.
	ChordKey string `toml:"chord_key" yaml:"chord_key"`

	// Bindings maps physical keys to logical keys, merged over the
	// default layout. "none" removes a default binding.
	Bindings map[string]string `toml:"bindings" yaml:"bindings"`
}

// LoggingConfig configures diagnostics output.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level" yaml:"level"`

	// File receives log output. Empty means stderr, which is only
	// readable once the terminal is released.
	File string `toml:"file" yaml:"file"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Editor: EditorConfig{
			LineWidth:  buffer.DefaultWidth,
			LoadPolicy: buffer.PolicyPad.String(),
		},
		Input: InputConfig{
			ChordKey: "enter",
			Bindings: map[string]string{},
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Clone creates a deep copy of the config.
func (c *Config) Clone() *Config {
	clone := *c
	clone.Input.Bindings = maps.Clone(c.Input.Bindings)
	if clone.Input.Bindings == nil {
		clone.Input.Bindings = map[string]string{}
	}
	return &clone
}

// Policy returns the parsed load policy.
func (c *Config) Policy() (buffer.LoadPolicy, error) {
	return buffer.ParseLoadPolicy(c.Editor.LoadPolicy)
}

// Keymap builds the keymap described by the input section.
func (c *Config) Keymap() (*keymap.Keymap, error) {
	return keymap.Load(c.Input.Bindings, c.ReservedKeys()...)
}

// ReservedKeys returns the physical keys that cannot be bound: the chord
// key plus the application keys.
func (c *Config) ReservedKeys() []string {
	return append([]string{c.Input.ChordKey}, reservedKeys...)
}

// Validate checks every setting and reports all problems at once.
func (c *Config) Validate() error {
	var fields []FieldError
	add := func(path, msg string, v any) {
		fields = append(fields, FieldError{Path: path, Message: msg, Value: v})
	}

	if c.Editor.LineWidth < MinLineWidth || c.Editor.LineWidth > MaxLineWidth {
		add("editor.line_width", "must be between 1 and 1024", c.Editor.LineWidth)
	}
	if _, err := c.Policy(); err != nil {
		add("editor.load_policy", "must be pad, truncate or reject", c.Editor.LoadPolicy)
	}

	if strings.TrimSpace(c.Input.ChordKey) == "" {
		add("input.chord_key", "must not be empty", c.Input.ChordKey)
	} else if _, err := c.Keymap(); err != nil {
		add("input.bindings", err.Error(), c.Input.Bindings)
	}

	if !validLevel(c.Logging.Level) {
		add("logging.level", "must be debug, info, warn or error", c.Logging.Level)
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

func validLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug", "info", "warn", "warning", "error":
		return true
	}
	return false
}
