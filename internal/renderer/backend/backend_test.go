package backend

import (
	"errors"
	"testing"

	"github.com/dshills/braillepad/internal/renderer/core"
)

func TestEventName(t *testing.T) {
	tests := []struct {
		name string
		ev   Event
		want string
	}{
		{"rune", RuneEvent('f'), "f"},
		{"upper rune", RuneEvent('F'), "f"},
		{"semicolon", RuneEvent(';'), ";"},
		{"space", RuneEvent(' '), "space"},
		{"enter", KeyEvent(KeyEnter, 0, ModNone), "enter"},
		{"tab", KeyEvent(KeyTab, 0, ModNone), "tab"},
		{"backspace", KeyEvent(KeyBackspace, 0, ModNone), "backspace"},
		{"ctrl key", KeyEvent(KeyCtrlS, 0, ModCtrl), "ctrl+s"},
		{"ctrl rune", KeyEvent(KeyRune, 'q', ModCtrl), "ctrl+q"},
		{"alt rune", KeyEvent(KeyRune, 'x', ModAlt), "alt+x"},
		{"resize", Event{Type: EventResize}, ""},
		{"interrupt", InterruptEvent(nil), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ev.Name(); got != tt.want {
				t.Errorf("Name() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseKey(t *testing.T) {
	for k, name := range keyNames {
		got, ok := ParseKey(name)
		if !ok || got != k {
			t.Errorf("ParseKey(%q) = %v, %v, want %v", name, got, ok, k)
		}
	}
	if _, ok := ParseKey("hyper"); ok {
		t.Error("unknown key should not parse")
	}
}

func TestMemoryBackendCells(t *testing.T) {
	b := NewMemoryBackend(5, 2)
	if err := b.Init(); err != nil {
		t.Fatal(err)
	}

	b.SetCell(0, 0, core.NewStyledCell('⠉', core.DefaultStyle()))
	b.SetCell(1, 0, core.NewStyledCell('x', core.DefaultStyle()))
	b.SetCell(9, 9, core.NewStyledCell('y', core.DefaultStyle()))

	if got := b.Row(0); got != "⠉x" {
		t.Errorf("Row(0) = %q", got)
	}
	if got := b.GetCell(9, 9); got != core.EmptyCell() {
		t.Errorf("out of range GetCell = %v", got)
	}

	b.Clear()
	if got := b.Row(0); got != "" {
		t.Errorf("Row(0) after Clear = %q", got)
	}

	b.ShowCursor(3, 1)
	if x, y, vis := b.CursorPosition(); x != 3 || y != 1 || !vis {
		t.Errorf("cursor = %d,%d,%v", x, y, vis)
	}
	b.HideCursor()
	if _, _, vis := b.CursorPosition(); vis {
		t.Error("cursor should be hidden")
	}

	b.Show()
	b.Beep()
	if b.ShowCount() != 1 || b.BeepCount() != 1 {
		t.Error("show and beep should be counted")
	}
}

func TestMemoryBackendEvents(t *testing.T) {
	b := NewMemoryBackend(10, 4)

	if err := b.PostEvent(RuneEvent('f')); err != nil {
		t.Fatal(err)
	}
	b.Resize(20, 6)

	if ev := b.PollEvent(); ev.Type != EventKey || ev.Rune != 'f' {
		t.Errorf("first event = %+v", ev)
	}
	if ev := b.PollEvent(); ev.Type != EventResize || ev.Width != 20 || ev.Height != 6 {
		t.Errorf("second event = %+v", ev)
	}
	if w, h := b.Size(); w != 20 || h != 6 {
		t.Errorf("Size() = %d,%d", w, h)
	}

	b.Shutdown()
	b.Shutdown()
	if ev := b.PollEvent(); ev.Type != EventClosed {
		t.Errorf("PollEvent after shutdown = %+v", ev)
	}
}

func TestMemoryBackendQueueFull(t *testing.T) {
	b := NewMemoryBackend(1, 1)
	var err error
	for i := 0; i < 300 && err == nil; i++ {
		err = b.PostEvent(RuneEvent('a'))
	}
	if !errors.Is(err, ErrQueueFull) {
		t.Errorf("expected ErrQueueFull, got %v", err)
	}
}
