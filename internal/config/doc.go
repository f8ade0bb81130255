// Package config provides configuration for braillepad.
//
// Configuration is resolved in layers, lowest priority first:
//
//   - built-in defaults (see Default)
//   - a TOML (.toml) or YAML (.yaml, .yml) file
//   - BRAILLEPAD_* environment variables
//
// The result is validated before use. A Watcher reloads the file when it
// changes on disk and delivers each valid Config on a channel.
//
// Example file:
//
//	[editor]
//	line_width = 40
//	load_policy = "pad"
//
//	[input]
//	chord_key = "enter"
//
//	[input.bindings]
//	u = "dot1"
//	backspace = "none"
//
//	[logging]
//	level = "info"
//	file = "/tmp/braillepad.log"
package config
