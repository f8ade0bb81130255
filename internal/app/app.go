// Package app wires configuration, input, the editing engine, persistence
// and the renderer into the braillepad application, and runs its event
// loop.
package app

import (
	"context"
	"errors"
	"io"
	"os"
	"runtime/debug"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/dshills/braillepad/internal/config"
	"github.com/dshills/braillepad/internal/engine"
	"github.com/dshills/braillepad/internal/engine/buffer"
	"github.com/dshills/braillepad/internal/filestore"
	"github.com/dshills/braillepad/internal/input"
	"github.com/dshills/braillepad/internal/input/keymap"
	"github.com/dshills/braillepad/internal/input/mode"
	"github.com/dshills/braillepad/internal/renderer"
	"github.com/dshills/braillepad/internal/renderer/backend"
)

// Application is the central coordinator for all braillepad components.
// All backend events are handled on the goroutine that calls Run.
type Application struct {
	mu sync.RWMutex

	// Infrastructure
	cfg     *config.Config
	logger  *Logger
	logFile *os.File
	session string
	watcher *config.Watcher

	// Editing
	engine   *engine.Engine
	document *Document
	store    *filestore.Store
	policy   buffer.LoadPolicy

	// Input
	keymap   *keymap.Keymap
	chordKey string
	latch    *input.Latch
	router   *input.Router
	metrics  *input.Metrics

	// Output
	backend  backend.Backend
	renderer *renderer.Renderer

	// State
	running     atomic.Bool
	done        chan struct{}
	stopOnce    sync.Once
	releaseOnce sync.Once

	opts Options
}

// Options configures the application.
type Options struct {
	// ConfigPath is the path to the configuration file. Empty means the
	// per-user default location, which may be absent.
	ConfigPath string

	// FilePath is the document to edit. A missing file starts empty and
	// is created on the first save.
	FilePath string

	// LogLevel overrides logging.level when non-empty.
	LogLevel string

	// LogFile overrides logging.file when non-empty.
	LogFile string

	// LogOutput receives log lines instead of a file or stderr.
	LogOutput io.Writer

	// DisableWatcher turns off configuration hot reload.
	DisableWatcher bool

	// ReadOnly opens the document for viewing. Edits and saves are
	// rejected.
	ReadOnly bool
}

// New creates an Application with the given options.
func New(opts Options) (*Application, error) {
	app := &Application{
		opts:    opts,
		done:    make(chan struct{}),
		session: uuid.NewString(),
		store:   filestore.New(),
		latch:   input.NewLatch(),
		metrics: input.NewMetrics(),
	}

	if err := app.bootstrap(); err != nil {
		app.release()
		return nil, err
	}
	return app, nil
}

// bootstrap initializes all components in dependency order.
func (app *Application) bootstrap() error {
	// 1. Config
	cfg, err := app.loadConfig()
	if err != nil {
		return &InitError{Component: "config", Err: err}
	}
	app.cfg = cfg

	// 2. Logger
	if err := app.setupLogger(); err != nil {
		return &InitError{Component: "logger", Err: err}
	}
	log := app.Logger().WithComponent("app")
	if cfg.Source != "" {
		log.Info("loaded configuration from %s", cfg.Source)
	} else {
		log.Info("using default configuration")
	}

	// 3. Input mapping
	km, err := cfg.Keymap()
	if err != nil {
		return &InitError{Component: "keymap", Err: err}
	}
	app.keymap = km
	app.chordKey = keymap.Normalize(cfg.Input.ChordKey)

	// 4. Engine and document
	app.policy, err = cfg.Policy()
	if err != nil {
		return &InitError{Component: "config", Err: err}
	}
	engineOpts := []engine.Option{
		engine.WithWidth(cfg.Editor.LineWidth),
		engine.WithPadTail(cfg.Editor.PadTail),
	}
	if app.opts.ReadOnly {
		engineOpts = append(engineOpts, engine.WithReadOnly())
	}
	app.engine = engine.New(engineOpts...)
	app.engine.Modes().OnChange(func(from, to mode.Mode) {
		app.Logger().WithComponent("engine").Debug("mode %s -> %s", from, to)
	})

	app.document = NewDocument(app.opts.FilePath)
	if !app.document.IsScratch() {
		if err := app.loadDocument(); err != nil {
			return &InitError{Component: "document", Err: err}
		}
	}
	app.document.MarkSaved(app.engine.Revision())

	// 5. Router
	app.router = input.NewRouter(app.engine, input.WithMetrics(app.metrics))

	// 6. Watcher
	if cfg.Source != "" && !app.opts.DisableWatcher {
		w, err := config.NewWatcher(cfg.Source)
		if err != nil {
			// Hot reload is optional.
			log.Warn("config watcher disabled: %v", err)
		} else {
			app.watcher = w
		}
	}

	return nil
}

// loadConfig reads the configuration file and applies the command line
// overrides.
func (app *Application) loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if app.opts.ConfigPath != "" {
		cfg, err = config.Load(app.opts.ConfigPath)
	} else {
		path, perr := config.DefaultPath()
		if perr != nil {
			path = ""
		}
		cfg, err = config.LoadOptional(path)
	}
	if err != nil {
		return nil, err
	}

	if app.opts.LogLevel != "" {
		cfg.Logging.Level = app.opts.LogLevel
	}
	if app.opts.LogFile != "" {
		cfg.Logging.File = app.opts.LogFile
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setupLogger creates the session logger.
func (app *Application) setupLogger() error {
	out := app.opts.LogOutput
	if out == nil && app.cfg.Logging.File != "" {
		f, err := OpenLogFile(app.cfg.Logging.File)
		if err != nil {
			return err
		}
		app.logFile = f
		out = f
	}

	cfg := DefaultLoggerConfig()
	cfg.Level = ParseLogLevel(app.cfg.Logging.Level)
	if out != nil {
		cfg.Output = out
	}
	app.logger = NewLogger(cfg).WithField("session", app.session)
	return nil
}

// loadDocument reads the document file into the engine.
func (app *Application) loadDocument() error {
	doc, err := app.store.Load(app.document.Path, app.policy,
		buffer.WithWidth(app.engine.Width()),
		buffer.WithPadTail(app.cfg.Editor.PadTail),
	)
	if err != nil {
		return &OperationError{Op: "load", Target: app.document.Path, Err: err}
	}
	return app.engine.Replace(doc)
}

// SetBackend sets the terminal backend.
// Must be called before Run().
func (app *Application) SetBackend(b backend.Backend) error {
	app.mu.Lock()
	defer app.mu.Unlock()

	if app.running.Load() {
		return ErrAlreadyRunning
	}
	app.backend = b
	return nil
}

// Run initializes the backend and handles events until the user quits,
// Shutdown is called or ctx is done. It returns ErrQuit when the user
// asked to exit.
func (app *Application) Run(ctx context.Context) error {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)
	defer app.release()

	app.mu.RLock()
	b := app.backend
	app.mu.RUnlock()
	if b == nil {
		return ErrNoBackend
	}

	if err := b.Init(); err != nil {
		return &InitError{Component: "backend", Err: err}
	}
	defer b.Shutdown()

	// Stderr is the terminal while the backend owns it.
	if app.logFile == nil && app.opts.LogOutput == nil {
		app.logger.SetOutput(io.Discard)
		defer app.logger.SetOutput(os.Stderr)
	}

	app.renderer = renderer.New(b)
	app.renderer.Status().SetFilename(app.document.Name)
	app.renderer.Status().SetReadOnly(app.engine.IsReadOnly())

	go func() {
		select {
		case <-ctx.Done():
			app.Shutdown()
		case <-app.done:
		}
	}()
	if app.watcher != nil {
		go app.forwardConfigChanges()
	}

	log := app.Logger().WithComponent("app")
	log.Info("session started: width=%d policy=%s file=%q readonly=%t",
		app.engine.Width(), app.policy, app.document.Path, app.engine.IsReadOnly())
	defer func() {
		s := app.metrics.Snapshot()
		log.Info("session ended: chords=%d commits=%d commands=%d protocol_errors=%d",
			s.ChordsTotal, s.CommitsTotal, s.CommandsTotal, s.ProtocolErrors)
	}()

	app.render()
	return app.eventLoop()
}

// IsRunning returns true if the event loop is active.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// Shutdown stops the event loop. It is safe to call more than once and
// from any goroutine.
func (app *Application) Shutdown() {
	app.stopOnce.Do(func() {
		close(app.done)
	})

	if !app.running.Load() {
		app.release()
		return
	}

	app.mu.RLock()
	b := app.backend
	app.mu.RUnlock()
	if b != nil {
		// Wake a blocked PollEvent.
		_ = b.PostEvent(backend.InterruptEvent(wakeup{}))
	}
}

// release closes the watcher and log file.
func (app *Application) release() {
	app.releaseOnce.Do(func() {
		if app.watcher != nil {
			if err := app.watcher.Close(); err != nil && !errors.Is(err, config.ErrWatcherClosed) {
				app.logComponentError("config", err)
			}
		}
		if app.logFile != nil {
			if app.logger != nil {
				app.logger.SetOutput(io.Discard)
			}
			_ = app.logFile.Close()
		}
	})
}

// stopped reports whether Shutdown has been called.
func (app *Application) stopped() bool {
	select {
	case <-app.done:
		return true
	default:
		return false
	}
}

// recoverPanic converts a panic in an event handler into an error.
func recoverPanic(err *error) {
	if r := recover(); r != nil {
		*err = &RecoveredPanicError{Value: r, Stack: string(debug.Stack())}
	}
}

// Session returns the id that tags every log line of this run.
func (app *Application) Session() string {
	return app.session
}

// Config returns the active configuration.
func (app *Application) Config() *config.Config {
	app.mu.RLock()
	defer app.mu.RUnlock()
	return app.cfg
}

// Engine returns the editing engine.
func (app *Application) Engine() *engine.Engine {
	return app.engine
}

// Document returns the document being edited.
func (app *Application) Document() *Document {
	return app.document
}

// Keymap returns the active keymap.
func (app *Application) Keymap() *keymap.Keymap {
	app.mu.RLock()
	defer app.mu.RUnlock()
	return app.keymap
}

// Metrics returns the input metrics.
func (app *Application) Metrics() *input.Metrics {
	return app.metrics
}
