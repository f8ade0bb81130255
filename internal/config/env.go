package config

import (
	"fmt"
	"strconv"
	"strings"
)

// EnvPrefix is the prefix of every environment override.
const EnvPrefix = "BRAILLEPAD_"

// Environment variables read by ApplyEnv.
const (
	EnvLineWidth  = EnvPrefix + "LINE_WIDTH"
	EnvLoadPolicy = EnvPrefix + "LOAD_POLICY"
	EnvPadTail    = EnvPrefix + "PAD_TAIL"
	EnvChordKey   = EnvPrefix + "CHORD_KEY"
	EnvLogLevel   = EnvPrefix + "LOG_LEVEL"
	EnvLogFile    = EnvPrefix + "LOG_FILE"
)

// LookupFunc looks up an environment variable. os.LookupEnv satisfies it.
type LookupFunc func(key string) (string, bool)

// ApplyEnv overlays environment variables onto cfg.
// Empty values are treated as set.
func ApplyEnv(cfg *Config, lookup LookupFunc) error {
	if lookup == nil {
		return nil
	}

	if v, ok := lookup(EnvLineWidth); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", EnvLineWidth, err)
		}
		cfg.Editor.LineWidth = n
	}
	if v, ok := lookup(EnvLoadPolicy); ok {
		cfg.Editor.LoadPolicy = v
	}
	if v, ok := lookup(EnvPadTail); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s: %w", EnvPadTail, err)
		}
		cfg.Editor.PadTail = b
	}
	if v, ok := lookup(EnvChordKey); ok {
		cfg.Input.ChordKey = v
	}
	if v, ok := lookup(EnvLogLevel); ok {
		cfg.Logging.Level = v
	}
	if v, ok := lookup(EnvLogFile); ok {
		cfg.Logging.File = v
	}
	return nil
}

// MapLookup returns a LookupFunc backed by a map.
func MapLookup(env map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}
