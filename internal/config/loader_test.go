package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func noEnv(string) (string, bool) { return "", false }

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "config.toml", `
[editor]
line_width = 32
load_policy = "truncate"
pad_tail = true

[input]
chord_key = "ctrl+j"

[input.bindings]
u = "dot1"
backspace = "none"

[logging]
level = "debug"
file = "/tmp/bp.log"
`)

	cfg, err := LoadWithEnv(path, noEnv)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Editor.LineWidth != 32 || cfg.Editor.LoadPolicy != "truncate" || !cfg.Editor.PadTail {
		t.Errorf("editor = %+v", cfg.Editor)
	}
	if cfg.Input.ChordKey != "ctrl+j" {
		t.Errorf("ChordKey = %q", cfg.Input.ChordKey)
	}
	if cfg.Input.Bindings["u"] != "dot1" || cfg.Input.Bindings["backspace"] != "none" {
		t.Errorf("Bindings = %v", cfg.Input.Bindings)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.File != "/tmp/bp.log" {
		t.Errorf("logging = %+v", cfg.Logging)
	}
	if cfg.Source != path {
		t.Errorf("Source = %q, want %q", cfg.Source, path)
	}
}

func TestLoadYAML(t *testing.T) {
	for _, name := range []string{"config.yaml", "config.yml"} {
		t.Run(name, func(t *testing.T) {
			path := writeFile(t, name, `
editor:
  line_width: 20
input:
  bindings:
    e: dot2
logging:
  level: warn
`)
			cfg, err := LoadWithEnv(path, noEnv)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if cfg.Editor.LineWidth != 20 {
				t.Errorf("LineWidth = %d, want 20", cfg.Editor.LineWidth)
			}
			if cfg.Editor.LoadPolicy != "pad" {
				t.Errorf("absent keys should keep defaults, got %q", cfg.Editor.LoadPolicy)
			}
			if cfg.Input.ChordKey != "enter" {
				t.Errorf("ChordKey = %q, want enter", cfg.Input.ChordKey)
			}
			if cfg.Input.Bindings["e"] != "dot2" {
				t.Errorf("Bindings = %v", cfg.Input.Bindings)
			}
			if cfg.Logging.Level != "warn" {
				t.Errorf("Level = %q", cfg.Logging.Level)
			}
		})
	}
}

func TestLoadEmptyFiles(t *testing.T) {
	for _, name := range []string{"empty.toml", "empty.yaml"} {
		cfg, err := LoadWithEnv(writeFile(t, name, ""), noEnv)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if cfg.Editor.LineWidth != 40 {
			t.Errorf("%s: LineWidth = %d, want 40", name, cfg.Editor.LineWidth)
		}
	}
}

func TestLoadParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		content  string
		wantLine int
	}{
		{"toml syntax", "bad.toml", "[editor]\nline_width = = 3\n", 2},
		{"toml unknown key", "unknown.toml", "[editor]\ncolour = 1\n", 2},
		{"toml type", "type.toml", "[editor]\nline_width = \"wide\"\n", 2},
		{"yaml syntax", "bad.yaml", "editor:\n  line_width: [1\n", 0},
		{"yaml unknown key", "unknown.yaml", "editor:\n  colour: 1\n", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadWithEnv(writeFile(t, tt.file, tt.content), noEnv)
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("expected *ParseError, got %T: %v", err, err)
			}
			if tt.wantLine > 0 && pe.Line != tt.wantLine {
				t.Errorf("Line = %d, want %d (%v)", pe.Line, tt.wantLine, pe)
			}
			if !strings.Contains(pe.Error(), tt.file) {
				t.Errorf("error should name the file: %v", pe)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.toml")

	if _, err := LoadWithEnv(path, noEnv); !errors.Is(err, ErrFileNotFound) {
		t.Errorf("expected ErrFileNotFound, got %v", err)
	}

	cfg, err := LoadOptional(path)
	if err != nil {
		t.Fatalf("LoadOptional: %v", err)
	}
	if cfg.Source != "" {
		t.Errorf("defaults should have no source, got %q", cfg.Source)
	}
}

func TestLoadUnsupportedFormat(t *testing.T) {
	_, err := LoadWithEnv(writeFile(t, "config.ini", "x=1"), noEnv)
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestLoadValidates(t *testing.T) {
	path := writeFile(t, "config.toml", "[editor]\nline_width = 0\n")
	if _, err := LoadWithEnv(path, noEnv); !errors.Is(err, ErrValidationFailed) {
		t.Errorf("expected ErrValidationFailed, got %v", err)
	}
}

func TestFormatOf(t *testing.T) {
	tests := map[string]Format{
		"a.toml": FormatTOML,
		"A.TOML": FormatTOML,
		"b.yaml": FormatYAML,
		"c.yml":  FormatYAML,
	}
	for path, want := range tests {
		got, err := FormatOf(path)
		if err != nil || got != want {
			t.Errorf("FormatOf(%q) = %v, %v, want %v", path, got, err, want)
		}
	}
	if _, err := FormatOf("d.json"); err == nil {
		t.Error("expected error for .json")
	}
}
