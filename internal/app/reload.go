package app

import (
	"path/filepath"

	"github.com/dshills/accelmenu/internal/config/watcher"
	"github.com/dshills/accelmenu/internal/renderer/statusline"
)

// Reload re-reads the configuration file and rebuilds the menu bar and
// shortcuts. On a load error the current bindings stay in place.
func (app *Application) Reload() error {
	cfg, err := app.loadConfig()
	if err != nil {
		app.metrics.RecordReload(false)
		app.status.SetMessage("reload failed: "+err.Error(), statusline.MessageError)
		return NewOperationError("reload", app.opts.ConfigPath, err)
	}

	app.mu.Lock()
	app.config = cfg
	app.mu.Unlock()
	app.applyLogLevel(cfg.Log.Level)

	if err := app.apply(cfg); err != nil {
		app.metrics.RecordReload(false)
		app.status.SetMessage("reloaded with errors: "+err.Error(), statusline.MessageWarning)
		return NewOperationError("reload", app.opts.ConfigPath, err).WithContext("partially applied")
	}

	app.metrics.RecordReload(true)
	app.logger.Info("configuration reloaded: %d shortcuts", len(app.registry.UserKeys()))
	app.status.SetMessage("configuration reloaded", statusline.MessageInfo)
	return nil
}

// requestReload schedules a reload on the event loop. Requests made
// while one is pending are merged.
func (app *Application) requestReload() {
	select {
	case app.reloadCh <- struct{}{}:
	default:
	}
}

// watchedFiles returns the configuration file and its bindings file.
func (app *Application) watchedFiles() []string {
	files := []string{app.opts.ConfigPath}
	if bf := app.Config().BindingsFile; bf != "" {
		if !filepath.IsAbs(bf) {
			bf = filepath.Join(filepath.Dir(app.opts.ConfigPath), bf)
		}
		files = append(files, bf)
	}
	return files
}

func (app *Application) startWatcher() error {
	log := app.logger.WithComponent("watcher")
	w := watcher.New(watcher.WithErrorHandler(func(err error) {
		log.Warn("watch error: %v", err)
	}))

	for _, path := range app.watchedFiles() {
		if err := w.Watch(path); err != nil {
			return NewOperationError("watch", path, err)
		}
	}

	w.OnChange(func(ev watcher.Event) {
		log.Debug("%s %s", ev.Op, ev.Path)
		app.requestReload()
	})

	if err := w.Start(); err != nil {
		return NewOperationError("watch", app.opts.ConfigPath, err)
	}
	app.mu.Lock()
	app.watcher = w
	app.mu.Unlock()
	return nil
}

func (app *Application) watcherRunning() bool {
	app.mu.RLock()
	defer app.mu.RUnlock()
	return app.watcher != nil && app.watcher.IsRunning()
}

func (app *Application) stopWatcher() {
	app.mu.Lock()
	w := app.watcher
	app.watcher = nil
	app.mu.Unlock()

	if w == nil {
		return
	}
	if err := w.Stop(); err != nil {
		app.logComponentError("watcher", err)
	}
}
