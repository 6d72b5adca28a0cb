package app

import (
	"time"

	"github.com/dshills/accelmenu/internal/accel"
	"github.com/dshills/accelmenu/internal/renderer/backend"
)

// eventLoop is the main application loop.
func (app *Application) eventLoop() error {
	events := app.startInputPolling()

	for {
		select {
		case <-app.done:
			return nil

		case <-app.reloadCh:
			if err := app.Reload(); err != nil {
				app.logComponentError("config", err)
			}
			app.render()

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if err := app.handleBackendEvent(ev); err != nil {
				return err
			}
			app.render()
		}
	}
}

// handleBackendEvent processes a backend event and routes it appropriately.
// Returns ErrQuit if the application should exit.
func (app *Application) handleBackendEvent(ev backend.Event) error {
	switch ev.Type {
	case backend.EventResize:
		app.status.Resize(ev.Width)
	case backend.EventKey:
		app.handleKeyEvent(ev)
	case backend.EventInterrupt:
		// Wake-up only; done or quit is checked below.
	}

	if app.quit.Load() {
		return ErrQuit
	}
	return nil
}

// handleKeyEvent feeds a key to the key source, which the registry
// listens on, and records the outcome in the status line.
func (app *Application) handleKeyEvent(ev backend.Event) {
	if ev.Key == nil {
		return
	}

	app.status.ClearMessage()
	start := time.Now()
	app.keys.Emit(ev.Key)

	handled := ev.Key.Claimed()
	app.metrics.RecordKey(time.Since(start), handled)
	app.status.SetLastKey(accel.Prettify(accel.EventKey(ev.Key)), handled)
	if !handled {
		app.logger.Debug("unbound key %s", accel.EventKey(ev.Key))
	}
}

// render redraws the menu bar, open dropdowns and status line.
func (app *Application) render() {
	b := app.backend
	if b == nil {
		return
	}

	start := time.Now()
	defer func() { app.metrics.RecordRender(time.Since(start)) }()

	b.Clear()
	app.view.Render(b)
	if _, height := b.Size(); height > 1 {
		app.status.Render(b, height-1)
	}
	b.Show()
}

// startInputPolling starts a goroutine that polls for input events.
// Events are sent to the returned channel.
//
// PollEvent is blocking; Shutdown posts an interrupt event to wake it.
func (app *Application) startInputPolling() <-chan backend.Event {
	events := make(chan backend.Event, 100)

	go func() {
		defer close(events)

		for app.running.Load() {
			ev := app.backend.PollEvent()

			select {
			case events <- ev:
			case <-app.done:
				return
			}
		}
	}()

	return events
}
