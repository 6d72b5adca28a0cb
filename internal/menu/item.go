package menu

import (
	"github.com/google/uuid"

	"github.com/dshills/accelmenu/internal/accel"
	"github.com/dshills/accelmenu/internal/input/key"
)

// Item is an entry of a menu: a command, a submenu opener or a separator.
type Item struct {
	// ID uniquely identifies the item for lookups and logging.
	ID string

	// Label is the text shown, with "&" marking the mnemonic.
	Label string

	// Accelerator is an optional key specification shown beside the
	// label and bound as a user shortcut by RegisterAccelerators.
	Accelerator string

	// Action runs when the item is activated.
	Action accel.Handler

	// Submenu is opened instead of running Action when set.
	Submenu *Menu

	Separator bool
	Disabled  bool
	Checkable bool
	Checked   bool

	owner *Menu
}

// NewItem creates a command item.
func NewItem(label, accelerator string, action accel.Handler) *Item {
	return &Item{
		ID:          uuid.NewString(),
		Label:       label,
		Accelerator: accelerator,
		Action:      action,
	}
}

// NewSubmenu creates an item that opens a submenu of items.
func NewSubmenu(label string, items ...*Item) *Item {
	return &Item{
		ID:      uuid.NewString(),
		Label:   label,
		Submenu: New(items...),
	}
}

// NewSeparator creates a separator line.
func NewSeparator() *Item {
	return &Item{
		ID:        uuid.NewString(),
		Separator: true,
	}
}

// Mnemonic returns the item's mnemonic letter, or "".
func (i *Item) Mnemonic() string {
	if i.Separator {
		return ""
	}
	return Mnemonic(i.Label)
}

// Text returns the label without mnemonic markers.
func (i *Item) Text() string {
	return DisplayLabel(i.Label)
}

// Selectable reports whether keyboard selection may rest on the item.
func (i *Item) Selectable() bool {
	return !i.Separator && !i.Disabled
}

// Menu returns the menu containing the item.
func (i *Item) Menu() *Menu {
	return i.owner
}

// InApplicationMenu reports whether the item sits on the menu bar.
func (i *Item) InApplicationMenu() bool {
	return i.owner != nil && i.owner.bar
}

// HandleClick activates the item: a submenu item opens its submenu,
// a command item closes all menus and runs its action.
func (i *Item) HandleClick(ev *key.Event) {
	if !i.Selectable() {
		return
	}

	app := i.application()
	if i.Submenu != nil {
		if app != nil {
			app.openSubmenu(i)
		}
		return
	}

	if i.Checkable {
		i.Checked = !i.Checked
	}

	var reg *accel.Registry
	if app != nil {
		app.logger.Debug("menu item %q activated", i.Text())
		app.CloseAll()
		reg = app.registry
	}
	if i.Action != nil {
		i.Action.Invoke(ev, reg)
	}
}

func (i *Item) application() *ApplicationMenu {
	if i.owner == nil {
		return nil
	}
	return i.owner.app
}
