package accel

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/dshills/accelmenu/internal/input/key"
)

// Table identifies one of the registry's shortcut tables.
type Table int

const (
	TableNone Table = iota
	TableMenu
	TableUser
)

// String returns the table name.
func (t Table) String() string {
	switch t {
	case TableMenu:
		return "menu"
	case TableUser:
		return "user"
	default:
		return "none"
	}
}

// Scope is a source of key-down notifications, such as a terminal screen.
type Scope interface {
	AddKeyDownListener(fn func(ev *key.Event))
}

// Logger receives debug traces of registration and dispatch.
type Logger interface {
	Debug(msg string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used for debug traces.
func WithLogger(l Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

// specialKeys are the fixed navigation keys installed for an open menu.
var specialKeys = []struct {
	key    string
	action specialAction
	dir    Direction
}{
	{"escape", actionCloseAll, 0},
	{"enter", actionEnter, 0},
	{"space", actionEnter, 0},
	{"arrowleft", actionMove, DirLeft},
	{"arrowright", actionMove, DirRight},
	{"arrowup", actionMove, DirUp},
	{"arrowdown", actionMove, DirDown},
}

// Registry maps canonical keys to handlers and dispatches key events.
type Registry struct {
	mu sync.RWMutex

	// menu holds mnemonics and navigation keys of the focused menu.
	menu map[string]Handler

	// user holds application shortcuts.
	user map[string]Handler

	attached bool
	logger   Logger
}

// New creates an empty registry. It does not listen for keys until Init.
func New(opts ...Option) *Registry {
	r := &Registry{
		menu:   make(map[string]Handler),
		user:   make(map[string]Handler),
		logger: nopLogger{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Init attaches the registry's key-down listener to scope. Only the first
// call with a non-nil scope attaches; later calls change nothing and
// return false.
func (r *Registry) Init(scope Scope) bool {
	if scope == nil {
		return false
	}

	r.mu.Lock()
	if r.attached {
		r.mu.Unlock()
		return false
	}
	r.attached = true
	r.mu.Unlock()

	scope.AddKeyDownListener(func(ev *key.Event) {
		r.OnKeyDown(ev)
	})
	r.logger.Debug("accelerator listener attached")
	return true
}

// Register installs h under every key of spec in the user table,
// replacing any handler already bound to those keys.
func (r *Registry) Register(spec string, h Handler) error {
	if isNilHandler(h) {
		return fmt.Errorf("register %q: %w", spec, ErrNilHandler)
	}
	keys, err := Parse(spec)
	if err != nil {
		return err
	}

	wrapped := userShortcut{handler: h}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, k := range keys {
		if _, exists := r.user[k]; exists {
			r.logger.Debug("shortcut %s replaced", k)
		}
		r.user[k] = wrapped
	}
	r.logger.Debug("registered shortcut %q as %v", spec, keys)
	return nil
}

// RegisterFunc is Register for a plain function.
func (r *Registry) RegisterFunc(spec string, fn func(ev *key.Event, r *Registry)) error {
	return r.Register(spec, HandlerFunc(fn))
}

// isNilHandler catches both a nil interface and a nil HandlerFunc.
func isNilHandler(h Handler) bool {
	if h == nil {
		return true
	}
	fn, ok := h.(HandlerFunc)
	return ok && fn == nil
}

// ClearKeys empties the user table. The menu table is untouched.
func (r *Registry) ClearKeys() {
	r.mu.Lock()
	defer r.mu.Unlock()
	clear(r.user)
	r.logger.Debug("user shortcuts cleared")
}

// RegisterMenuShortcut binds a menu item's mnemonic letter. Items on the
// application menu bar are bound with Alt; items of submenus are bound to
// the bare letter. An empty letter registers nothing.
func (r *Registry) RegisterMenuShortcut(letter string, item MenuItem) {
	if letter == "" || item == nil {
		return
	}

	spec := letter
	if item.InApplicationMenu() {
		spec = "alt" + partSeparator + letter
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, k := range Normalize(spec) {
		r.menu[k] = menuShortcut{item: item}
	}
}

// RegisterMenuSpecial binds the navigation keys of an open menu:
// Escape closes all menus, Enter and Space activate the selection, and
// the arrow keys move it.
func (r *Registry) RegisterMenuSpecial(m Menu) {
	if m == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, sk := range specialKeys {
		r.menu[sk.key] = menuSpecialKey{menu: m, action: sk.action, dir: sk.dir}
	}
}

// UnregisterMenuShortcuts empties the menu table. The user table is untouched.
func (r *Registry) UnregisterMenuShortcuts() {
	r.mu.Lock()
	defer r.mu.Unlock()
	clear(r.menu)
}

// OnKeyDown dispatches ev to the menu table, then to the user table.
// It reports whether a handler ran. Unmatched keys are left unclaimed.
func (r *Registry) OnKeyDown(ev *key.Event) bool {
	if ev == nil {
		return false
	}

	candidate := EventKey(ev)
	h, table, ok := r.Lookup(candidate)
	if !ok {
		return false
	}

	r.logger.Debug("key %s dispatched from %s table", candidate, table)
	h.Invoke(ev, r)
	return true
}

// EventKey composes the canonical key of a live event.
func EventKey(ev *key.Event) string {
	parts := append(ev.Modifiers.Tokens(), ev.Base())
	return normalizeBinding(strings.Join(parts, partSeparator))
}

// Lookup returns the handler bound to a canonical key and the table it
// was found in. The menu table takes precedence.
func (r *Registry) Lookup(canonical string) (Handler, Table, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if h, ok := r.menu[canonical]; ok {
		return h, TableMenu, true
	}
	if h, ok := r.user[canonical]; ok {
		return h, TableUser, true
	}
	return nil, TableNone, false
}

// UserKeys returns the sorted keys of the user table.
func (r *Registry) UserKeys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return sortedKeys(r.user)
}

// MenuKeys returns the sorted keys of the menu table.
func (r *Registry) MenuKeys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return sortedKeys(r.menu)
}

func sortedKeys(m map[string]Handler) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
