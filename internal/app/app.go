// Package app wires the accelerator registry, the menu bar, Lua actions
// and the terminal backend into the accelmenu application.
package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/dshills/accelmenu/internal/accel"
	"github.com/dshills/accelmenu/internal/config"
	"github.com/dshills/accelmenu/internal/config/watcher"
	"github.com/dshills/accelmenu/internal/menu"
	"github.com/dshills/accelmenu/internal/renderer/backend"
	"github.com/dshills/accelmenu/internal/renderer/menuview"
	"github.com/dshills/accelmenu/internal/renderer/statusline"
	"github.com/dshills/accelmenu/internal/script"
)

// Application is the central coordinator for all accelmenu components.
// Everything except the watcher callback runs on the event loop goroutine.
type Application struct {
	mu sync.RWMutex

	logger  *Logger
	logFile *os.File
	config  *config.Config

	registry *accel.Registry
	keys     *backend.KeySource
	scripts  *script.Engine
	actions  map[string]ActionFunc

	menu   *menu.ApplicationMenu
	view   *menuview.View
	status *statusline.StatusLine

	backend backend.Backend
	watcher *watcher.Watcher
	metrics *Metrics

	// State
	running  atomic.Bool
	quit     atomic.Bool
	done     chan struct{}
	doneOnce sync.Once
	reloadCh chan struct{}

	opts Options
}

// Options configures the application.
type Options struct {
	// ConfigPath is the path to the configuration file. Empty uses
	// the built-in defaults and disables live reload.
	ConfigPath string

	// LogLevel overrides the configured log level when set.
	LogLevel string

	// LogOutput overrides the configured log file when set.
	LogOutput io.Writer

	// Watch enables reloading when the configuration file changes.
	Watch bool
}

// New creates a new Application with the given options.
func New(opts Options) (*Application, error) {
	app := &Application{
		opts:     opts,
		done:     make(chan struct{}),
		reloadCh: make(chan struct{}, 1),
		status:   statusline.New(),
		metrics:  NewMetrics(),
	}

	if err := app.bootstrap(); err != nil {
		app.closeLog()
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
	app.config = cfg

	// 2. Logger
	if err := app.initLogger(); err != nil {
		return &InitError{Component: "logger", Err: err}
	}

	// 3. Registry, attached to the key source
	app.registry = accel.New(accel.WithLogger(app.logger.WithComponent("accel")))
	app.keys = backend.NewKeySource()
	app.registry.Init(app.keys)

	// 4. Actions and scripts
	app.registerBuiltinActions()
	app.scripts = script.New(
		script.WithLogger(app.logger.WithComponent("lua")),
		script.WithActions(app.RunAction),
	)

	// 5. Menus and bindings
	if err := app.apply(cfg); err != nil {
		return &InitError{Component: "bindings", Err: err}
	}

	app.logger.Info("started with %d shortcuts", len(app.registry.UserKeys()))
	return nil
}

func (app *Application) loadConfig() (*config.Config, error) {
	if app.opts.ConfigPath == "" {
		return config.Default(), nil
	}
	return config.Load(app.opts.ConfigPath)
}

func (app *Application) initLogger() error {
	level, ok := ParseLogLevel(app.config.Log.Level)
	if app.opts.LogLevel != "" {
		level, ok = ParseLogLevel(app.opts.LogLevel)
	}

	cfg := DefaultLoggerConfig()
	cfg.Level = level

	switch {
	case app.opts.LogOutput != nil:
		cfg.Output = app.opts.LogOutput
	case app.config.Log.File != "":
		f, err := os.OpenFile(app.config.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		app.logFile = f
		cfg.Output = f
	}

	app.logger = NewLogger(cfg)
	if !ok {
		app.logger.Warn("unknown log level, using %s", level)
	}
	return nil
}

// apply builds the menu bar and shortcut bindings of cfg, replacing any
// previous ones. Bad entries are skipped; their errors are joined.
func (app *Application) apply(cfg *config.Config) error {
	var errs []error

	theme, err := menuview.ThemeFromColors(menuview.Colors{
		Foreground:         cfg.Theme.Foreground,
		Background:         cfg.Theme.Background,
		SelectedForeground: cfg.Theme.SelectedForeground,
		SelectedBackground: cfg.Theme.SelectedBackground,
		DisabledForeground: cfg.Theme.DisabledForeground,
	})
	if err != nil {
		errs = append(errs, err)
		theme = menuview.DefaultTheme()
	}

	app.registry.ClearKeys()

	items, err := app.buildMenus(cfg.Menus)
	if err != nil {
		errs = append(errs, err)
	}
	if app.menu != nil {
		app.menu.CloseAll()
	}
	app.menu = menu.NewApplicationMenu(app.registry, items,
		menu.WithLogger(app.logger.WithComponent("menu")),
		menu.WithOnChange(app.menuChanged),
	)
	if err := app.menu.RegisterAccelerators(); err != nil {
		errs = append(errs, err)
	}

	if err := app.bindAll(cfg.Bindings); err != nil {
		errs = append(errs, err)
	}

	app.view = menuview.New(app.menu, theme)
	app.status.SetBindingCount(len(app.registry.UserKeys()))
	app.status.SetMenuOpen(false)

	return errors.Join(errs...)
}

func (app *Application) menuChanged() {
	if app.menu != nil {
		app.status.SetMenuOpen(app.menu.IsOpen())
	}
}

// Config returns the active configuration.
func (app *Application) Config() *config.Config {
	app.mu.RLock()
	defer app.mu.RUnlock()
	return app.config
}

// Registry returns the accelerator registry.
func (app *Application) Registry() *accel.Registry {
	return app.registry
}

// Menu returns the menu bar.
func (app *Application) Menu() *menu.ApplicationMenu {
	return app.menu
}

// StatusLine returns the status line.
func (app *Application) StatusLine() *statusline.StatusLine {
	return app.status
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

// Run starts the application main loop.
// Blocks until quit or shutdown is requested.
func (app *Application) Run() error {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if app.backend == nil {
		return ErrNoBackend
	}
	if err := app.backend.Init(); err != nil {
		return &InitError{Component: "backend", Err: err}
	}
	defer app.backend.Shutdown()
	defer app.stop()

	if app.opts.Watch && app.opts.ConfigPath != "" {
		if err := app.startWatcher(); err != nil {
			app.logComponentError("watcher", err)
		} else {
			defer app.stopWatcher()
		}
	}

	width, _ := app.backend.Size()
	app.status.Resize(width)
	app.render()

	err := app.eventLoop()
	if errors.Is(err, ErrQuit) {
		return nil
	}
	return err
}

// Shutdown stops the event loop. Safe to call from any goroutine.
func (app *Application) Shutdown() {
	app.stop()
	app.mu.RLock()
	b := app.backend
	app.mu.RUnlock()
	if b != nil && app.running.Load() {
		b.PostEvent(backend.Event{Type: backend.EventInterrupt})
	}
}

func (app *Application) stop() {
	app.doneOnce.Do(func() {
		close(app.done)
	})
}

// Close releases resources held after Run returns.
func (app *Application) Close() {
	if app.scripts != nil {
		app.scripts.Close()
	}
	app.closeLog()
}

func (app *Application) closeLog() {
	if app.logFile != nil {
		_ = app.logFile.Close()
		app.logFile = nil
	}
}

// IsRunning returns whether the event loop is active.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}
