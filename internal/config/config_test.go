package config

import (
	"errors"
	"testing"

	"github.com/dshills/braillepad/internal/engine/buffer"
	"github.com/dshills/braillepad/internal/input/key"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Editor.LineWidth != 40 {
		t.Errorf("LineWidth = %d, want 40", cfg.Editor.LineWidth)
	}
	if p, err := cfg.Policy(); err != nil || p != buffer.PolicyPad {
		t.Errorf("Policy() = %v, %v, want pad", p, err)
	}
	if cfg.Input.ChordKey != "enter" {
		t.Errorf("ChordKey = %q, want enter", cfg.Input.ChordKey)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Level = %q, want info", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		field  string
	}{
		{"zero width", func(c *Config) { c.Editor.LineWidth = 0 }, "editor.line_width"},
		{"huge width", func(c *Config) { c.Editor.LineWidth = 5000 }, "editor.line_width"},
		{"bad policy", func(c *Config) { c.Editor.LoadPolicy = "squash" }, "editor.load_policy"},
		{"empty chord key", func(c *Config) { c.Input.ChordKey = " " }, "input.chord_key"},
		{"unknown logical key", func(c *Config) { c.Input.Bindings["x"] = "dot9" }, "input.bindings"},
		{"chord key bound", func(c *Config) { c.Input.Bindings["enter"] = "dot1" }, "input.bindings"},
		{"escape bound", func(c *Config) { c.Input.Bindings["esc"] = "left" }, "input.bindings"},
		{"dot removed", func(c *Config) { c.Input.Bindings["f"] = "none" }, "input.bindings"},
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }, "logging.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)

			err := cfg.Validate()
			if !errors.Is(err, ErrValidationFailed) {
				t.Fatalf("expected ErrValidationFailed, got %v", err)
			}
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			if !ve.Has(tt.field) {
				t.Errorf("expected failure on %s, got %v", tt.field, ve)
			}
		})
	}
}

func TestValidateReportsAll(t *testing.T) {
	cfg := Default()
	cfg.Editor.LineWidth = -1
	cfg.Logging.Level = ""

	var ve *ValidationError
	if !errors.As(cfg.Validate(), &ve) {
		t.Fatal("expected *ValidationError")
	}
	if len(ve.Fields) != 2 {
		t.Errorf("expected 2 field errors, got %d: %v", len(ve.Fields), ve)
	}
}

func TestClone(t *testing.T) {
	cfg := Default()
	cfg.Input.Bindings["u"] = "dot1"

	clone := cfg.Clone()
	clone.Input.Bindings["u"] = "dot2"
	clone.Editor.LineWidth = 10

	if cfg.Input.Bindings["u"] != "dot1" {
		t.Error("clone must not share bindings")
	}
	if cfg.Editor.LineWidth != 40 {
		t.Error("clone must not share editor settings")
	}
}

func TestKeymap(t *testing.T) {
	cfg := Default()
	cfg.Input.Bindings["u"] = "dot4"

	km, err := cfg.Keymap()
	if err != nil {
		t.Fatalf("Keymap: %v", err)
	}
	if k, _ := km.Lookup("u"); k != key.KeyDot4 {
		t.Errorf("u = %v, want Dot4", k)
	}
	if k, _ := km.Lookup("j"); k != key.KeyDot4 {
		t.Errorf("default j binding lost, got %v", k)
	}
}
