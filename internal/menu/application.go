package menu

import (
	"errors"
	"fmt"

	"github.com/dshills/accelmenu/internal/accel"
	"github.com/dshills/accelmenu/internal/input/key"
)

// ApplicationMenu is the menu bar together with its open dropdown chain.
// It implements accel.Menu for the registry's navigation keys.
type ApplicationMenu struct {
	bar      *Menu
	registry *accel.Registry
	logger   accel.Logger

	// open holds the open dropdowns; open[0] belongs to a bar item.
	open []*Menu

	onChange func()
}

// Option configures an ApplicationMenu.
type Option func(*ApplicationMenu)

// WithLogger sets the logger used for debug traces.
func WithLogger(l accel.Logger) Option {
	return func(a *ApplicationMenu) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithOnChange sets a callback run after every open, close or
// selection change, typically to redraw.
func WithOnChange(fn func()) Option {
	return func(a *ApplicationMenu) {
		a.onChange = fn
	}
}

type discardLogger struct{}

func (discardLogger) Debug(string, ...any) {}

// NewApplicationMenu creates a menu bar of the given top-level items and
// binds the bar's mnemonics in reg.
func NewApplicationMenu(reg *accel.Registry, items []*Item, opts ...Option) *ApplicationMenu {
	a := &ApplicationMenu{
		registry: reg,
		logger:   discardLogger{},
	}
	for _, opt := range opts {
		opt(a)
	}

	a.bar = &Menu{bar: true, selected: -1, app: a}
	for _, it := range items {
		a.bar.Append(it)
	}

	a.refocus()
	return a
}

// Bar returns the top-level menu.
func (a *ApplicationMenu) Bar() *Menu {
	return a.bar
}

// Registry returns the registry the menu is bound to.
func (a *ApplicationMenu) Registry() *accel.Registry {
	return a.registry
}

// IsOpen reports whether any dropdown is open.
func (a *ApplicationMenu) IsOpen() bool {
	return len(a.open) > 0
}

// OpenMenus returns the open dropdowns, outermost first.
func (a *ApplicationMenu) OpenMenus() []*Menu {
	return append([]*Menu(nil), a.open...)
}

// Focused returns the innermost open dropdown, or nil.
func (a *ApplicationMenu) Focused() *Menu {
	if len(a.open) == 0 {
		return nil
	}
	return a.open[len(a.open)-1]
}

// Open opens the dropdown of the bar item at index.
func (a *ApplicationMenu) Open(index int) bool {
	if index < 0 || index >= len(a.bar.Items) {
		return false
	}
	it := a.bar.Items[index]
	if it.Submenu == nil || !it.Selectable() {
		return false
	}
	a.openSubmenu(it)
	return true
}

// Enter activates the selected item of the focused dropdown.
func (a *ApplicationMenu) Enter(ev *key.Event) {
	m := a.Focused()
	if m == nil {
		return
	}
	if it := m.SelectedItem(); it != nil {
		it.HandleClick(ev)
	}
}

// Move shifts the keyboard selection. Up and down move within the focused
// dropdown. Left closes a nested submenu or moves to the previous bar
// entry; right opens the selected submenu or moves to the next bar entry.
func (a *ApplicationMenu) Move(ev *key.Event, dir accel.Direction) {
	m := a.Focused()
	if m == nil {
		return
	}

	switch dir {
	case accel.DirUp:
		m.SelectNext(-1)
		a.changed()
	case accel.DirDown:
		m.SelectNext(1)
		a.changed()
	case accel.DirLeft:
		if len(a.open) > 1 {
			a.open = a.open[:len(a.open)-1]
			a.refocus()
			return
		}
		a.moveBar(-1)
	case accel.DirRight:
		if it := m.SelectedItem(); it != nil && it.Submenu != nil {
			it.HandleClick(ev)
			return
		}
		a.moveBar(1)
	}
}

// CloseAll closes every dropdown and clears the bar selection.
func (a *ApplicationMenu) CloseAll() {
	if len(a.open) == 0 && a.bar.selected < 0 {
		return
	}
	a.open = nil
	a.bar.selected = -1
	a.logger.Debug("menus closed")
	a.refocus()
}

// RegisterAccelerators binds every item accelerator as a user shortcut
// that activates the item. Invalid accelerators are skipped and reported.
func (a *ApplicationMenu) RegisterAccelerators() error {
	var errs []error
	a.bar.Walk(func(it *Item) bool {
		if it.Accelerator == "" || it.Separator {
			return true
		}
		target := it
		err := a.registry.RegisterFunc(it.Accelerator, func(ev *key.Event, _ *accel.Registry) {
			target.HandleClick(ev)
		})
		if err != nil {
			errs = append(errs, fmt.Errorf("menu item %q: %w", it.Text(), err))
		}
		return true
	})
	return errors.Join(errs...)
}

// openSubmenu opens the submenu of it, closing dropdowns nested deeper.
func (a *ApplicationMenu) openSubmenu(it *Item) {
	owner := it.owner
	if owner == nil || it.Submenu == nil {
		return
	}

	if owner.bar {
		a.open = a.open[:0]
	} else {
		depth := a.depthOf(owner)
		if depth < 0 {
			return
		}
		a.open = a.open[:depth+1]
	}

	owner.selected = indexOf(owner, it)
	it.Submenu.SelectFirst()
	a.open = append(a.open, it.Submenu)
	a.logger.Debug("menu %q opened", it.Text())
	a.refocus()
}

// moveBar opens the bar entry delta steps away from the current one.
func (a *ApplicationMenu) moveBar(delta int) {
	start := a.bar.selected
	n := len(a.bar.Items)
	for step := 1; step <= n; step++ {
		idx := ((start+delta*step)%n + n) % n
		if a.Open(idx) {
			return
		}
	}
}

func (a *ApplicationMenu) depthOf(m *Menu) int {
	for i, o := range a.open {
		if o == m {
			return i
		}
	}
	return -1
}

// refocus rebuilds the registry's menu table for the current focus.
func (a *ApplicationMenu) refocus() {
	if a.registry != nil {
		a.registry.UnregisterMenuShortcuts()
		for _, it := range a.bar.Items {
			if it.Selectable() {
				a.registry.RegisterMenuShortcut(it.Mnemonic(), it)
			}
		}
		if m := a.Focused(); m != nil {
			for _, it := range m.Items {
				if it.Selectable() {
					a.registry.RegisterMenuShortcut(it.Mnemonic(), it)
				}
			}
			a.registry.RegisterMenuSpecial(a)
		}
	}
	a.changed()
}

func (a *ApplicationMenu) changed() {
	if a.onChange != nil {
		a.onChange()
	}
}

func indexOf(m *Menu, it *Item) int {
	for i, x := range m.Items {
		if x == it {
			return i
		}
	}
	return -1
}
