package input

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/dshills/braillepad/internal/braille"
	"github.com/dshills/braillepad/internal/input/key"
)

// Editor receives the result of each completed chord.
type Editor interface {
	// Commit writes a cell at the cursor.
	Commit(c braille.Cell) error

	// Execute runs a command key.
	Execute(k key.Key) error
}

// RouterOption configures a Router.
type RouterOption func(*Router)

// WithMetrics records router activity into m.
func WithMetrics(m *Metrics) RouterOption {
	return func(r *Router) {
		if m != nil {
			r.metrics = m
		}
	}
}

// Router classifies key events and detects chord completion.
type Router struct {
	editor Editor

	// held is the ordered set of keys currently down.
	held []key.Key

	// acc collects the dots of the current chord.
	acc braille.Accumulator

	// pending collects the command keys pressed during the current chord.
	pending []key.Key

	// chordStart is when the held set last became non-empty.
	chordStart time.Time

	metrics *Metrics
}

// NewRouter creates a router that dispatches to editor.
func NewRouter(editor Editor, opts ...RouterOption) *Router {
	r := &Router{
		editor:  editor,
		held:    make([]key.Key, 0, 8),
		pending: make([]key.Key, 0, 4),
		metrics: NewMetrics(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Handle routes a single event.
func (r *Router) Handle(ev key.Event) error {
	switch ev.Phase {
	case key.Press:
		return r.OnPress(ev.Key)
	case key.Release:
		return r.OnRelease(ev.Key)
	default:
		return fmt.Errorf("unknown key phase %v", ev.Phase)
	}
}

// HandleAll routes events in order and joins any errors. Processing
// continues after an error so that later releases still balance.
func (r *Router) HandleAll(events []key.Event) error {
	var errs []error
	for _, ev := range events {
		if err := r.Handle(ev); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// OnPress records a key going down. A press of a key that is already held
// is treated as auto-repeat and ignored.
func (r *Router) OnPress(k key.Key) error {
	if !k.IsValid() {
		return fmt.Errorf("%w: %v", ErrUnknownKey, k)
	}
	r.metrics.RecordKeyEvent()

	if slices.Contains(r.held, k) {
		r.metrics.RecordRepeat()
		return nil
	}

	if len(r.held) == 0 {
		r.chordStart = time.Now()
	}
	r.held = append(r.held, k)

	if k.IsDot() {
		return r.acc.Press(k.Dot())
	}
	if !slices.Contains(r.pending, k) {
		r.pending = append(r.pending, k)
	}
	return nil
}

// OnRelease records a key coming up. When the last held key is released
// the chord completes and its result is sent to the editor.
func (r *Router) OnRelease(k key.Key) error {
	if !k.IsValid() {
		return fmt.Errorf("%w: %v", ErrUnknownKey, k)
	}
	r.metrics.RecordKeyEvent()

	idx := slices.Index(r.held, k)
	if idx < 0 {
		err := &ProtocolError{Key: k, Held: r.Held()}
		r.Reset()
		r.metrics.RecordProtocolError()
		return err
	}
	r.held = slices.Delete(r.held, idx, idx+1)

	if k.IsDot() {
		if err := r.acc.Release(k.Dot()); err != nil {
			return err
		}
	}

	if len(r.held) > 0 {
		return nil
	}
	return r.complete()
}

// complete finishes the chord once the held set is empty.
func (r *Router) complete() error {
	value := r.acc.Value()
	commands := slices.Clone(r.pending)
	r.metrics.RecordChord(time.Since(r.chordStart))

	r.acc.Reset()
	r.pending = r.pending[:0]

	if !value.IsBlank() {
		r.metrics.RecordCommit()
		return r.editor.Commit(value)
	}

	switch len(commands) {
	case 0:
		return nil
	case 1:
		r.metrics.RecordCommand()
		return r.editor.Execute(commands[0])
	default:
		r.metrics.RecordAmbiguous()
		return fmt.Errorf("%w: %v", ErrAmbiguousChord, commands)
	}
}

// Reset aborts the current chord, dropping held keys and dots.
func (r *Router) Reset() {
	r.held = r.held[:0]
	r.pending = r.pending[:0]
	r.acc.Reset()
}

// Held returns a copy of the held keys in press order.
func (r *Router) Held() []key.Key {
	return slices.Clone(r.held)
}

// Pending returns the dots accumulated for the current chord.
func (r *Router) Pending() braille.Cell {
	return r.acc.Value()
}

// InChord returns true while any key is held.
func (r *Router) InChord() bool {
	return len(r.held) > 0
}

// Metrics returns the router's metrics.
func (r *Router) Metrics() *Metrics {
	return r.metrics
}
