package app

import (
	"errors"
	"fmt"

	"github.com/dshills/accelmenu/internal/accel"
	"github.com/dshills/accelmenu/internal/config"
	"github.com/dshills/accelmenu/internal/menu"
)

// buildMenus converts menu configuration into menu items. Entries whose
// action cannot be built are kept but disabled.
func (app *Application) buildMenus(entries []config.MenuConfig) ([]*menu.Item, error) {
	var errs []error
	items := make([]*menu.Item, 0, len(entries))
	for i, entry := range entries {
		it, err := app.buildItem(fmt.Sprintf("menu[%d]", i), entry)
		if err != nil {
			errs = append(errs, err)
		}
		items = append(items, it)
	}
	return items, errors.Join(errs...)
}

func (app *Application) buildItem(path string, entry config.MenuConfig) (*menu.Item, error) {
	if entry.Separator {
		return menu.NewSeparator(), nil
	}

	if entry.IsSubmenu() {
		var errs []error
		children := make([]*menu.Item, 0, len(entry.Items))
		for i, child := range entry.Items {
			it, err := app.buildItem(fmt.Sprintf("%s.items[%d]", path, i), child)
			if err != nil {
				errs = append(errs, err)
			}
			children = append(children, it)
		}
		it := menu.NewSubmenu(entry.Label, children...)
		it.Disabled = entry.Disabled
		return it, errors.Join(errs...)
	}

	h, err := app.handlerFor(path, entry.Action, entry.Lua)
	it := menu.NewItem(entry.Label, entry.Accelerator, h)
	it.Disabled = entry.Disabled || err != nil
	it.Checkable = entry.Checkable
	it.Checked = entry.Checked
	return it, err
}

// bindAll registers each binding as a user shortcut. Later bindings win.
func (app *Application) bindAll(bindings []config.BindingConfig) error {
	var errs []error
	for i, b := range bindings {
		path := fmt.Sprintf("binding[%d]", i)
		h, err := app.handlerFor(path, b.Action, b.Lua)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if err := app.registry.Register(b.Keys, h); err != nil {
			errs = append(errs, NewOperationError("bind", b.Keys, err).WithContext(path))
		}
	}
	return errors.Join(errs...)
}

// handlerFor returns the handler for a named action or a Lua chunk.
// An entry with neither gets a nil handler.
func (app *Application) handlerFor(path, action, lua string) (accel.Handler, error) {
	switch {
	case lua != "":
		h, err := app.scripts.Handler(path, lua)
		if err != nil {
			return nil, NewOperationError("compile", path, err)
		}
		return h, nil
	case action != "":
		if _, ok := app.actions[action]; !ok {
			return nil, NewOperationError("bind", path, fmt.Errorf("%w: %s", ErrUnknownAction, action))
		}
		return actionHandler{app: app, name: action}, nil
	default:
		return nil, nil
	}
}
