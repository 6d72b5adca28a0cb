package app

import (
	"fmt"
	"slices"
	"strings"

	"github.com/dshills/accelmenu/internal/accel"
	"github.com/dshills/accelmenu/internal/input/key"
	"github.com/dshills/accelmenu/internal/renderer/statusline"
)

// ActionFunc implements a named action. ev is the triggering key event
// and may be nil.
type ActionFunc func(app *Application, ev *key.Event) error

// Built-in action names.
const (
	ActionQuit      = "app.quit"
	ActionStatus    = "app.status"
	ActionReload    = "app.reload"
	ActionMenuOpen  = "menu.open"
	ActionMenuClose = "menu.close"
)

func (app *Application) registerBuiltinActions() {
	app.actions = make(map[string]ActionFunc)
	app.RegisterAction(ActionQuit, actionQuit)
	app.RegisterAction(ActionStatus, actionStatus)
	app.RegisterAction(ActionReload, actionReload)
	app.RegisterAction(ActionMenuOpen, actionMenuOpen)
	app.RegisterAction(ActionMenuClose, actionMenuClose)
}

// RegisterAction binds name to fn, replacing any previous action.
func (app *Application) RegisterAction(name string, fn ActionFunc) {
	app.actions[name] = fn
}

// Actions returns the registered action names, sorted.
func (app *Application) Actions() []string {
	names := make([]string, 0, len(app.actions))
	for name := range app.actions {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// RunAction runs the named action.
func (app *Application) RunAction(name string, ev *key.Event) error {
	fn, ok := app.actions[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownAction, name)
	}
	app.logger.Debug("action %s", name)
	return fn(app, ev)
}

// actionHandler adapts a named action to a shortcut handler.
type actionHandler struct {
	app  *Application
	name string
}

func (h actionHandler) Invoke(ev *key.Event, _ *accel.Registry) {
	if err := h.app.RunAction(h.name, ev); err != nil {
		h.app.logComponentError("action", err)
		h.app.status.SetMessage(err.Error(), statusline.MessageError)
	}
}

func actionQuit(app *Application, _ *key.Event) error {
	app.quit.Store(true)
	return nil
}

func actionStatus(app *Application, ev *key.Event) error {
	var sb strings.Builder
	if ev != nil {
		sb.WriteString(accel.Prettify(accel.EventKey(ev)))
		sb.WriteString(": ")
	}
	m := app.metrics.Snapshot()
	fmt.Fprintf(&sb, "%d shortcuts, %d menu keys, %d/%d keys handled",
		len(app.registry.UserKeys()), len(app.registry.MenuKeys()), m.KeysHandled, m.Keys())
	app.status.SetMessage(sb.String(), statusline.MessageInfo)
	return nil
}

// actionReload defers to the event loop; it may run inside a Lua call,
// and reloading compiles Lua.
func actionReload(app *Application, _ *key.Event) error {
	app.requestReload()
	return nil
}

func actionMenuOpen(app *Application, _ *key.Event) error {
	if app.menu.IsOpen() {
		return nil
	}
	for i := range app.menu.Bar().Items {
		if app.menu.Open(i) {
			return nil
		}
	}
	return nil
}

func actionMenuClose(app *Application, _ *key.Event) error {
	app.menu.CloseAll()
	return nil
}
