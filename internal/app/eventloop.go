package app

import (
	"errors"

	"github.com/dshills/braillepad/internal/config"
	"github.com/dshills/braillepad/internal/engine"
	"github.com/dshills/braillepad/internal/engine/buffer"
	"github.com/dshills/braillepad/internal/input"
	"github.com/dshills/braillepad/internal/input/key"
	"github.com/dshills/braillepad/internal/input/keymap"
	"github.com/dshills/braillepad/internal/renderer"
	"github.com/dshills/braillepad/internal/renderer/backend"
)

// Physical keys handled by the application before the keymap.
const (
	keyQuit   = "ctrl+q"
	keyCancel = "escape"
	keyAbort  = "ctrl+c"
	keySave   = "ctrl+s"
)

// wakeup is posted by Shutdown to unblock PollEvent.
type wakeup struct{}

// eventLoop polls the backend until quit or shutdown.
func (app *Application) eventLoop() error {
	for {
		if app.stopped() {
			return nil
		}

		ev := app.backend.PollEvent()
		if ev.Type == backend.EventClosed {
			return nil
		}

		if err := app.handleBackendEvent(ev); err != nil {
			if errors.Is(err, ErrQuit) {
				return err
			}
			app.report("event", err)
		}
		app.render()
	}
}

// handleBackendEvent processes a backend event and routes it appropriately.
// Returns ErrQuit if the application should exit.
func (app *Application) handleBackendEvent(ev backend.Event) (err error) {
	defer recoverPanic(&err)

	switch ev.Type {
	case backend.EventKey:
		return app.handleKeyEvent(ev)
	case backend.EventInterrupt:
		return app.handleInterrupt(ev.Payload)
	default:
		// Resize needs only the redraw that follows every event. Other
		// terminal events are ignored.
		return nil
	}
}

// handleKeyEvent maps a physical key through the keymap and latch into
// the router.
func (app *Application) handleKeyEvent(ev backend.Event) error {
	name := keymap.Normalize(ev.Name())
	log := app.Logger().WithComponent("input")
	if name == "" {
		log.Debug("unmapped terminal key %d (mod %d)", ev.Key, ev.Mod)
		return nil
	}

	switch name {
	case keyQuit, keyAbort:
		return ErrQuit
	case keyCancel:
		// Escape drops a half-typed chord first, and quits otherwise.
		if app.router.InChord() {
			app.resetInput()
			app.setStatus("chord cancelled", renderer.MessageInfo)
			return nil
		}
		return ErrQuit
	case keySave:
		return app.Save()
	}

	app.mu.RLock()
	km, chordKey := app.keymap, app.chordKey
	app.mu.RUnlock()

	if name == chordKey {
		return app.route(app.latch.Flush())
	}

	k, ok := km.Lookup(name)
	if !ok {
		log.Debug("unbound key %q", name)
		return nil
	}
	return app.route(app.latch.Key(k))
}

// route feeds synthesized key events to the router.
func (app *Application) route(events []key.Event) error {
	if len(events) == 0 {
		return nil
	}
	app.Logger().WithComponent("input").Debug("routing %v", events)
	app.setStatus("", renderer.MessageNone)

	err := app.router.HandleAll(events)
	if errors.Is(err, input.ErrProtocol) {
		app.latch.Reset()
	}
	return err
}

// handleInterrupt processes payloads posted from other goroutines.
func (app *Application) handleInterrupt(payload any) error {
	switch p := payload.(type) {
	case wakeup:
		return nil
	case *config.Config:
		app.applyConfig(p)
		return nil
	case error:
		return &OperationError{Op: "reload", Target: app.watcherPath(), Err: p}
	default:
		return nil
	}
}

// applyConfig installs a reloaded configuration. Key bindings, the chord
// key and the log level apply immediately; editor settings need a restart.
func (app *Application) applyConfig(cfg *config.Config) {
	log := app.Logger().WithComponent("config")

	km, err := cfg.Keymap()
	if err != nil {
		app.report("config", &OperationError{Op: "reload", Target: cfg.Source, Err: err})
		return
	}

	app.mu.Lock()
	old := app.cfg
	app.cfg = cfg
	app.keymap = km
	app.chordKey = keymap.Normalize(cfg.Input.ChordKey)
	app.mu.Unlock()

	if level := ParseLogLevel(cfg.Logging.Level); level != app.logger.Level() {
		log.Info("log level %s -> %s", app.logger.Level(), level)
		app.logger.SetLevel(level)
	}
	app.resetInput()

	if old.Editor != cfg.Editor {
		log.Warn("editor settings changed; restart to apply")
		app.setStatus("configuration reloaded; editor settings apply after restart", renderer.MessageWarning)
		return
	}
	log.Info("configuration reloaded from %s", cfg.Source)
	app.setStatus("configuration reloaded", renderer.MessageInfo)
}

// resetInput drops any partially entered chord.
func (app *Application) resetInput() {
	app.latch.Reset()
	app.router.Reset()
}

// forwardConfigChanges posts watcher results to the event loop.
func (app *Application) forwardConfigChanges() {
	changes := app.watcher.Changes()
	errs := app.watcher.Errors()

	for changes != nil || errs != nil {
		select {
		case <-app.done:
			return
		case cfg, ok := <-changes:
			if !ok {
				changes = nil
				continue
			}
			app.post(cfg)
		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			app.post(err)
		}
	}
}

// post delivers payload to the event loop.
func (app *Application) post(payload any) {
	if err := app.backend.PostEvent(backend.InterruptEvent(payload)); err != nil {
		app.logComponentError("app", err)
	}
}

// Save writes the document to its file.
func (app *Application) Save() error {
	if app.engine.IsReadOnly() {
		return &OperationError{Op: "save", Target: app.document.Path, Err: engine.ErrReadOnly}
	}
	if app.document.IsScratch() {
		return ErrNoFilePath
	}

	revision := app.engine.Revision()
	if err := app.store.Save(app.document.Path, app.engine.Document()); err != nil {
		return &OperationError{Op: "save", Target: app.document.Path, Err: err}
	}
	app.document.MarkSaved(revision)

	app.Logger().WithComponent("filestore").Info("saved %s", app.document.Path)
	app.setStatus("saved "+app.document.Name, renderer.MessageInfo)
	return nil
}

// report logs err and shows it on the status line.
func (app *Application) report(component string, err error) {
	log := app.Logger().WithComponent(component)

	msgType := renderer.MessageError
	switch {
	case errors.Is(err, input.ErrProtocol),
		errors.Is(err, input.ErrAmbiguousChord),
		errors.Is(err, engine.ErrRejectedInDeleteMode),
		errors.Is(err, engine.ErrReadOnly),
		errors.Is(err, buffer.ErrOffsetOutOfRange):
		msgType = renderer.MessageWarning
		log.Warn("%v", err)
	default:
		log.Error("%v", err)
	}

	app.setStatus(err.Error(), msgType)
	if app.backend != nil {
		app.backend.Beep()
	}
}

func (app *Application) setStatus(msg string, t renderer.MessageType) {
	if app.renderer == nil {
		return
	}
	if msg == "" {
		app.renderer.Status().ClearMessage()
		return
	}
	app.renderer.Status().SetMessage(msg, t)
}

func (app *Application) watcherPath() string {
	if app.watcher == nil {
		return ""
	}
	return app.watcher.Path()
}

// render draws the current engine state.
func (app *Application) render() {
	if app.renderer == nil {
		return
	}
	status := app.renderer.Status()
	status.SetPending(app.router.Pending())
	held := app.router.Held()
	names := make([]string, len(held))
	for i, k := range held {
		names[i] = k.String()
	}
	status.SetHeld(names)
	status.SetModified(app.document.IsModified(app.engine.Revision()))
	app.renderer.Render(app.engine.Snapshot())
}
