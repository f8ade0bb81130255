package backend

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/braillepad/internal/renderer/core"
)

func newSimTerminal(t *testing.T) *Terminal {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	term := NewTerminalWithScreen(screen)
	if err := term.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(term.Shutdown)
	return term
}

func TestTerminalCells(t *testing.T) {
	term := newSimTerminal(t)

	term.SetCell(2, 1, core.NewStyledCell('⠉', core.NewStyle(core.ColorCyan).Bold()))
	term.Show()

	if got := term.GetCell(2, 1); got.Rune != '⠉' || got.Width != 1 {
		t.Errorf("GetCell = %+v", got)
	}
	if w, h := term.Size(); w <= 0 || h <= 0 {
		t.Errorf("Size() = %d,%d", w, h)
	}
}

func TestTerminalPostEvent(t *testing.T) {
	term := newSimTerminal(t)

	if err := term.PostEvent(KeyEvent(KeyEnter, 0, ModNone)); err != nil {
		t.Fatalf("PostEvent: %v", err)
	}
	if ev := term.PollEvent(); ev.Type != EventKey || ev.Key != KeyEnter {
		t.Errorf("key event = %+v", ev)
	}

	payload := "reload"
	if err := term.PostEvent(InterruptEvent(payload)); err != nil {
		t.Fatalf("PostEvent: %v", err)
	}
	if ev := term.PollEvent(); ev.Type != EventInterrupt || ev.Payload != payload {
		t.Errorf("interrupt event = %+v", ev)
	}
}

func TestConvertKey(t *testing.T) {
	tests := []struct {
		in   tcell.Key
		want Key
	}{
		{tcell.KeyEnter, KeyEnter},
		{tcell.KeyTab, KeyTab},
		{tcell.KeyBackspace, KeyBackspace},
		{tcell.KeyBackspace2, KeyBackspace},
		{tcell.KeyCtrlS, KeyCtrlS},
		{tcell.KeyF5, KeyNone},
	}
	for _, tt := range tests {
		if got := convertKey(tt.in); got != tt.want {
			t.Errorf("convertKey(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestConvertEventCtrlRune(t *testing.T) {
	ev := convertEvent(tcell.NewEventKey(tcell.KeyRune, 's', tcell.ModCtrl))
	if ev.Key != KeyCtrlS || ev.Name() != "ctrl+s" {
		t.Errorf("ctrl rune event = %+v (%q)", ev, ev.Name())
	}
}

func TestConvertEventUnmappedKey(t *testing.T) {
	for _, k := range []tcell.Key{tcell.KeyHome, tcell.KeyEnd, tcell.KeyPgUp, tcell.KeyF1, tcell.KeyInsert, tcell.KeyCtrlA} {
		ev := convertEvent(tcell.NewEventKey(k, 0, tcell.ModNone))
		if ev.Type != EventKey || ev.Key != KeyNone {
			t.Errorf("convertEvent(%v) = %+v, want an unnamed key event", k, ev)
		}
		if ev.Name() != "" {
			t.Errorf("convertEvent(%v).Name() = %q, want empty", k, ev.Name())
		}
	}
}

func TestConvertEventIgnored(t *testing.T) {
	ev := convertEvent(tcell.NewEventFocus(true))
	if ev.Type != EventNone {
		t.Errorf("focus event = %+v, want EventNone", ev)
	}
}
