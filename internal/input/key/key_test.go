package key

import "testing"

func TestDot(t *testing.T) {
	for n := 1; n <= 6; n++ {
		k := Dot(n)
		if !k.IsDot() {
			t.Errorf("Dot(%d) should be a dot key", n)
		}
		if k.Dot() != n {
			t.Errorf("Dot(%d).Dot() = %d", n, k.Dot())
		}
		if k.IsCommand() {
			t.Errorf("Dot(%d) should not be a command", n)
		}
	}
	if Dot(0) != KeyNone || Dot(7) != KeyNone {
		t.Error("out of range dot should be KeyNone")
	}
}

func TestKeyClassification(t *testing.T) {
	tests := []struct {
		key     Key
		motion  bool
		command bool
	}{
		{KeyLeft, true, true},
		{KeyRight, true, true},
		{KeyUp, true, true},
		{KeyDown, true, true},
		{KeySpace, false, true},
		{KeyModeToggle, false, true},
		{KeyDelete, false, true},
		{KeyNone, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			if tt.key.IsMotion() != tt.motion {
				t.Errorf("IsMotion() = %v, want %v", tt.key.IsMotion(), tt.motion)
			}
			if tt.key.IsCommand() != tt.command {
				t.Errorf("IsCommand() = %v, want %v", tt.key.IsCommand(), tt.command)
			}
			if tt.key.IsDot() {
				t.Error("command keys are not dots")
			}
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  Key
	}{
		{"dot1", KeyDot1},
		{"Dot6", KeyDot6},
		{"3", KeyDot3},
		{"left", KeyLeft},
		{"RIGHT", KeyRight},
		{" up ", KeyUp},
		{"down", KeyDown},
		{"space", KeySpace},
		{"mode", KeyModeToggle},
		{"mode-toggle", KeyModeToggle},
		{"mode_toggle", KeyModeToggle},
		{"delete", KeyDelete},
		{"del", KeyDelete},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseUnknown(t *testing.T) {
	for _, name := range []string{"", "7", "dot0", "enter"} {
		if _, err := Parse(name); err == nil {
			t.Errorf("Parse(%q) should fail", name)
		}
	}
}

func TestParseRoundTrip(t *testing.T) {
	for _, k := range All() {
		got, err := Parse(k.String())
		if err != nil {
			t.Fatalf("Parse(%q): %v", k.String(), err)
		}
		if got != k {
			t.Errorf("Parse(%q) = %v", k.String(), got)
		}
	}
}

func TestAll(t *testing.T) {
	all := All()
	if len(all) != 13 {
		t.Fatalf("expected 13 logical keys, got %d", len(all))
	}
	for _, k := range all {
		if !k.IsValid() {
			t.Errorf("%v should be valid", k)
		}
	}
}
