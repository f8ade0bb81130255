package input

import (
	"errors"
	"testing"

	"github.com/dshills/braillepad/internal/braille"
	"github.com/dshills/braillepad/internal/input/key"
)

// recordingEditor captures what the router dispatches.
type recordingEditor struct {
	commits  []braille.Cell
	commands []key.Key
	err      error
}

func (e *recordingEditor) Commit(c braille.Cell) error {
	e.commits = append(e.commits, c)
	return e.err
}

func (e *recordingEditor) Execute(k key.Key) error {
	e.commands = append(e.commands, k)
	return e.err
}

func press(t *testing.T, r *Router, keys ...key.Key) {
	t.Helper()
	for _, k := range keys {
		if err := r.OnPress(k); err != nil {
			t.Fatalf("press %v: %v", k, err)
		}
	}
}

func release(t *testing.T, r *Router, keys ...key.Key) {
	t.Helper()
	for _, k := range keys {
		if err := r.OnRelease(k); err != nil {
			t.Fatalf("release %v: %v", k, err)
		}
	}
}

// permutations returns every ordering of keys.
func permutations(keys []key.Key) [][]key.Key {
	if len(keys) <= 1 {
		return [][]key.Key{append([]key.Key(nil), keys...)}
	}
	var out [][]key.Key
	for i := range keys {
		rest := make([]key.Key, 0, len(keys)-1)
		rest = append(rest, keys[:i]...)
		rest = append(rest, keys[i+1:]...)
		for _, p := range permutations(rest) {
			out = append(out, append([]key.Key{keys[i]}, p...))
		}
	}
	return out
}

func TestChordDots14(t *testing.T) {
	ed := &recordingEditor{}
	r := NewRouter(ed)

	press(t, r, key.KeyDot1, key.KeyDot4)
	release(t, r, key.KeyDot1)
	if len(ed.commits) != 0 {
		t.Fatal("chord must not commit while a key is still held")
	}
	release(t, r, key.KeyDot4)

	if len(ed.commits) != 1 {
		t.Fatalf("expected 1 commit, got %d", len(ed.commits))
	}
	if ed.commits[0].Rune() != 0x2809 {
		t.Errorf("expected U+2809, got %U", ed.commits[0].Rune())
	}
	if r.InChord() || !r.Pending().IsBlank() {
		t.Error("router should be idle after the chord")
	}
}

func TestChordValueIndependentOfReleaseOrder(t *testing.T) {
	dots := []key.Key{key.KeyDot2, key.KeyDot3, key.KeyDot6}
	want := rune(0x2800 + 2 + 4 + 32)

	for _, pressOrder := range permutations(dots) {
		for _, releaseOrder := range permutations(dots) {
			ed := &recordingEditor{}
			r := NewRouter(ed)
			press(t, r, pressOrder...)
			release(t, r, releaseOrder...)

			if len(ed.commits) != 1 {
				t.Fatalf("press %v release %v: expected 1 commit, got %d", pressOrder, releaseOrder, len(ed.commits))
			}
			if ed.commits[0].Rune() != want {
				t.Errorf("press %v release %v: expected %U, got %U", pressOrder, releaseOrder, want, ed.commits[0].Rune())
			}
		}
	}
}

func TestChordOverlappingPresses(t *testing.T) {
	ed := &recordingEditor{}
	r := NewRouter(ed)

	press(t, r, key.KeyDot1, key.KeyDot2)
	release(t, r, key.KeyDot1)
	press(t, r, key.KeyDot3)
	release(t, r, key.KeyDot2, key.KeyDot3)

	if len(ed.commits) != 1 {
		t.Fatalf("expected a single commit, got %d", len(ed.commits))
	}
	if ed.commits[0].Value() != 7 {
		t.Errorf("expected value 7, got %d", ed.commits[0].Value())
	}
}

func TestSuccessiveChordsAreIndependent(t *testing.T) {
	ed := &recordingEditor{}
	r := NewRouter(ed)

	press(t, r, key.KeyDot1)
	release(t, r, key.KeyDot1)
	press(t, r, key.KeyDot2)
	release(t, r, key.KeyDot2)

	if len(ed.commits) != 2 {
		t.Fatalf("expected 2 commits, got %d", len(ed.commits))
	}
	if ed.commits[0].Value() != 1 || ed.commits[1].Value() != 2 {
		t.Errorf("unexpected values %v", ed.commits)
	}
}

func TestReleaseWithoutPress(t *testing.T) {
	ed := &recordingEditor{}
	r := NewRouter(ed)
	press(t, r, key.KeyDot1)

	err := r.OnRelease(key.KeyDot2)
	if !errors.Is(err, ErrProtocol) {
		t.Fatalf("expected ErrProtocol, got %v", err)
	}
	var pe *ProtocolError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ProtocolError, got %T", err)
	}
	if pe.Key != key.KeyDot2 || len(pe.Held) != 1 || pe.Held[0] != key.KeyDot1 {
		t.Errorf("unexpected error detail %+v", pe)
	}

	if len(ed.commits) != 0 || len(ed.commands) != 0 {
		t.Error("editor must not be touched")
	}
	if r.InChord() || !r.Pending().IsBlank() {
		t.Error("chord must be aborted")
	}

	// The aborted dot 1 is gone, so its late release is also a violation.
	if err := r.OnRelease(key.KeyDot1); !errors.Is(err, ErrProtocol) {
		t.Errorf("expected ErrProtocol for late release, got %v", err)
	}
	if r.Metrics().Snapshot().ProtocolErrors != 2 {
		t.Errorf("expected 2 protocol errors recorded")
	}
}

func TestDoubleRelease(t *testing.T) {
	ed := &recordingEditor{}
	r := NewRouter(ed)
	press(t, r, key.KeyRight)
	release(t, r, key.KeyRight)

	if err := r.OnRelease(key.KeyRight); !errors.Is(err, ErrProtocol) {
		t.Errorf("expected ErrProtocol, got %v", err)
	}
	if len(ed.commands) != 1 {
		t.Errorf("expected exactly 1 command, got %d", len(ed.commands))
	}
}

func TestSingleCommand(t *testing.T) {
	for _, k := range []key.Key{key.KeyLeft, key.KeyRight, key.KeyUp, key.KeyDown, key.KeySpace, key.KeyModeToggle, key.KeyDelete} {
		t.Run(k.String(), func(t *testing.T) {
			ed := &recordingEditor{}
			r := NewRouter(ed)
			press(t, r, k)
			release(t, r, k)

			if len(ed.commits) != 0 {
				t.Error("a command chord must not commit")
			}
			if len(ed.commands) != 1 || ed.commands[0] != k {
				t.Errorf("expected [%v], got %v", k, ed.commands)
			}
		})
	}
}

func TestDotsWinOverCommand(t *testing.T) {
	ed := &recordingEditor{}
	r := NewRouter(ed)

	press(t, r, key.KeySpace, key.KeyDot1)
	release(t, r, key.KeySpace, key.KeyDot1)

	if len(ed.commits) != 1 || ed.commits[0].Value() != 1 {
		t.Errorf("expected one commit of dot 1, got %v", ed.commits)
	}
	if len(ed.commands) != 0 {
		t.Errorf("command must be ignored, got %v", ed.commands)
	}
}

func TestAmbiguousCommandChord(t *testing.T) {
	ed := &recordingEditor{}
	r := NewRouter(ed)

	press(t, r, key.KeyLeft, key.KeyRight)
	release(t, r, key.KeyLeft)
	err := r.OnRelease(key.KeyRight)

	if !errors.Is(err, ErrAmbiguousChord) {
		t.Errorf("expected ErrAmbiguousChord, got %v", err)
	}
	if len(ed.commands) != 0 {
		t.Errorf("nothing should execute, got %v", ed.commands)
	}
}

func TestRepeatPressIgnored(t *testing.T) {
	ed := &recordingEditor{}
	r := NewRouter(ed)

	press(t, r, key.KeyDot3, key.KeyDot3, key.KeyDot3)
	if len(r.Held()) != 1 {
		t.Errorf("held set must not contain duplicates: %v", r.Held())
	}
	release(t, r, key.KeyDot3)

	if len(ed.commits) != 1 {
		t.Errorf("expected 1 commit, got %d", len(ed.commits))
	}
	if r.Metrics().Snapshot().RepeatsIgnored != 2 {
		t.Errorf("expected 2 ignored repeats")
	}
}

func TestEditorErrorPropagates(t *testing.T) {
	boom := errors.New("boom")
	ed := &recordingEditor{err: boom}
	r := NewRouter(ed)

	press(t, r, key.KeyDot5)
	if err := r.OnRelease(key.KeyDot5); !errors.Is(err, boom) {
		t.Errorf("expected editor error, got %v", err)
	}
	if r.InChord() || !r.Pending().IsBlank() {
		t.Error("router must be reset even when the editor fails")
	}
}

func TestUnknownKey(t *testing.T) {
	r := NewRouter(&recordingEditor{})
	if err := r.OnPress(key.KeyNone); !errors.Is(err, ErrUnknownKey) {
		t.Errorf("expected ErrUnknownKey, got %v", err)
	}
	if err := r.OnRelease(key.Key(99)); !errors.Is(err, ErrUnknownKey) {
		t.Errorf("expected ErrUnknownKey, got %v", err)
	}
}

func TestHandleAll(t *testing.T) {
	ed := &recordingEditor{}
	r := NewRouter(ed)

	err := r.HandleAll([]key.Event{
		key.PressOf(key.KeyDot1),
		key.ReleaseOf(key.KeyDot2), // violation aborts the chord
		key.PressOf(key.KeyDot6),
		key.ReleaseOf(key.KeyDot6),
	})
	if !errors.Is(err, ErrProtocol) {
		t.Errorf("expected joined ErrProtocol, got %v", err)
	}
	if len(ed.commits) != 1 || ed.commits[0].Value() != 32 {
		t.Errorf("expected one commit of dot 6, got %v", ed.commits)
	}
}

func TestMetricsCounts(t *testing.T) {
	ed := &recordingEditor{}
	r := NewRouter(ed)

	press(t, r, key.KeyDot1)
	release(t, r, key.KeyDot1)
	press(t, r, key.KeyRight)
	release(t, r, key.KeyRight)

	snap := r.Metrics().Snapshot()
	if snap.KeyEventsTotal != 4 {
		t.Errorf("expected 4 key events, got %d", snap.KeyEventsTotal)
	}
	if snap.ChordsTotal != 2 || snap.CommitsTotal != 1 || snap.CommandsTotal != 1 {
		t.Errorf("unexpected counters %+v", snap)
	}

	r.Metrics().Reset()
	if r.Metrics().Snapshot().ChordsTotal != 0 {
		t.Error("reset should clear counters")
	}
}

func TestMetricsDisabled(t *testing.T) {
	m := NewMetrics()
	m.SetEnabled(false)
	r := NewRouter(&recordingEditor{}, WithMetrics(m))

	press(t, r, key.KeyDot1)
	release(t, r, key.KeyDot1)
	if m.Snapshot().ChordsTotal != 0 {
		t.Error("disabled metrics must not count")
	}
}
