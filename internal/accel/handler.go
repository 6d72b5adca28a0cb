package accel

import "github.com/dshills/accelmenu/internal/input/key"

// Handler reacts to a dispatched key event.
// Handlers run synchronously and may call back into the registry.
type Handler interface {
	Invoke(ev *key.Event, r *Registry)
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(ev *key.Event, r *Registry)

// Invoke calls f(ev, r).
func (f HandlerFunc) Invoke(ev *key.Event, r *Registry) {
	f(ev, r)
}

// MenuItem is the part of a menu item the registry drives.
type MenuItem interface {
	// HandleClick activates the item as if it had been clicked.
	HandleClick(ev *key.Event)

	// InApplicationMenu reports whether the item sits on the top-level
	// menu bar, whose mnemonics require Alt.
	InApplicationMenu() bool
}

// Menu is the part of an open menu hierarchy the navigation keys drive.
type Menu interface {
	// Enter activates the keyboard-selected item.
	Enter(ev *key.Event)

	// Move shifts the keyboard selection.
	Move(ev *key.Event, dir Direction)

	// CloseAll closes every open menu of the application menu.
	CloseAll()
}

// Direction is a keyboard navigation direction.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// String returns "left", "right", "up" or "down".
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return "unknown"
	}
}

// claim suppresses the default action and further propagation.
func claim(ev *key.Event) {
	ev.PreventDefault()
	ev.StopPropagation()
}

// userShortcut wraps an application handler; registering a shortcut
// always claims the event.
type userShortcut struct {
	handler Handler
}

func (s userShortcut) Invoke(ev *key.Event, r *Registry) {
	s.handler.Invoke(ev, r)
	claim(ev)
}

// menuShortcut activates a menu item through its mnemonic.
type menuShortcut struct {
	item MenuItem
}

func (s menuShortcut) Invoke(ev *key.Event, _ *Registry) {
	s.item.HandleClick(ev)
	claim(ev)
}

// specialAction identifies a fixed menu navigation key.
type specialAction int

const (
	actionCloseAll specialAction = iota
	actionEnter
	actionMove
)

// menuSpecialKey drives navigation of the open menu.
type menuSpecialKey struct {
	menu   Menu
	action specialAction
	dir    Direction
}

func (s menuSpecialKey) Invoke(ev *key.Event, _ *Registry) {
	switch s.action {
	case actionCloseAll:
		s.menu.CloseAll()
	case actionEnter:
		s.menu.Enter(ev)
	case actionMove:
		s.menu.Move(ev, s.dir)
	}
	claim(ev)
}
