// Package script runs Lua chunks as shortcut and menu actions.
//
// Chunks run in a sandboxed gopher-lua state with only the base, table,
// string and math libraries. During a call the chunk sees:
//
//	key            table {name = "ctrl+n", code = "KeyN", mods = "Ctrl"}
//	log(msg)       writes msg to the application log
//	action(name)   runs a named application action
//
// gopher-lua states are not goroutine-safe; Engine serializes calls.
package script

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/accelmenu/internal/accel"
	"github.com/dshills/accelmenu/internal/input/key"
)

// DefaultTimeout bounds a single chunk execution.
const DefaultTimeout = 2 * time.Second

// Logger receives messages from the log() builtin.
type Logger interface {
	Info(msg string, args ...any)
}

// ActionRunner runs a named action for the action() builtin. It is
// called with the engine locked and must not run Lua itself.
type ActionRunner func(name string, ev *key.Event) error

// Engine compiles and runs Lua action chunks.
type Engine struct {
	mu sync.Mutex

	L       *lua.LState
	logger  Logger
	actions ActionRunner
	timeout time.Duration

	// current is the event of the running chunk.
	current *key.Event
	closed  bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the destination of log().
func WithLogger(l Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// WithActions sets the runner behind action().
func WithActions(run ActionRunner) Option {
	return func(e *Engine) {
		e.actions = run
	}
}

// WithTimeout sets the per-call execution timeout. Zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(e *Engine) {
		if d >= 0 {
			e.timeout = d
		}
	}
}

// New creates a sandboxed engine.
func New(opts ...Option) *Engine {
	e := &Engine{timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(e)
	}

	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require"} {
		L.SetGlobal(name, lua.LNil)
	}

	L.SetGlobal("log", L.NewFunction(e.luaLog))
	L.SetGlobal("action", L.NewFunction(e.luaAction))

	e.L = L
	return e
}

// Close releases the Lua state.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return
	}
	e.closed = true
	e.L.Close()
}

// Script is a compiled chunk.
type Script struct {
	name   string
	fn     *lua.LFunction
	engine *Engine
}

// Name returns the chunk name used in error messages.
func (s *Script) Name() string {
	return s.name
}

// Compile parses code. Syntax errors surface here rather than on the
// first key press.
func (e *Engine) Compile(name, code string) (*Script, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return nil, ErrEngineClosed
	}

	fn, err := e.L.Load(strings.NewReader(code), name)
	if err != nil {
		return nil, fmt.Errorf("compiling %s: %w", name, err)
	}
	return &Script{name: name, fn: fn, engine: e}, nil
}

// Run executes the script for ev.
func (s *Script) Run(ev *key.Event) error {
	return s.engine.call(s, ev)
}

// Invoke runs the script as a shortcut handler. Errors are logged.
func (s *Script) Invoke(ev *key.Event, _ *accel.Registry) {
	if err := s.Run(ev); err != nil && s.engine.logger != nil {
		s.engine.logger.Info("lua action %s failed: %v", s.name, err)
	}
}

// Handler compiles code into a shortcut handler.
func (e *Engine) Handler(name, code string) (accel.Handler, error) {
	s, err := e.Compile(name, code)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// DoString compiles and runs code once.
func (e *Engine) DoString(code string, ev *key.Event) error {
	s, err := e.Compile("<string>", code)
	if err != nil {
		return err
	}
	return s.Run(ev)
}

func (e *Engine) call(s *Script, ev *key.Event) (err error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrEngineClosed
	}

	if e.timeout > 0 {
		ctx, cancel := context.WithTimeout(context.Background(), e.timeout)
		defer cancel()
		e.L.SetContext(ctx)
		defer e.L.RemoveContext()
	}

	e.current = ev
	defer func() { e.current = nil }()
	e.L.SetGlobal("key", e.keyTable(ev))

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lua panic in %s: %v", s.name, r)
		}
	}()

	e.L.Push(s.fn)
	if err := e.L.PCall(0, 0, nil); err != nil {
		return fmt.Errorf("running %s: %w", s.name, err)
	}
	return nil
}

func (e *Engine) keyTable(ev *key.Event) lua.LValue {
	if ev == nil {
		return lua.LNil
	}
	t := e.L.NewTable()
	t.RawSetString("name", lua.LString(accel.EventKey(ev)))
	t.RawSetString("code", lua.LString(ev.Code))
	t.RawSetString("mods", lua.LString(ev.Modifiers.String()))
	return t
}

// luaLog implements log(msg).
func (e *Engine) luaLog(L *lua.LState) int {
	msg := L.CheckString(1)
	if e.logger != nil {
		e.logger.Info("lua: %s", msg)
	}
	return 0
}

// luaAction implements action(name). It returns true on success and
// false plus a message otherwise.
func (e *Engine) luaAction(L *lua.LState) int {
	name := L.CheckString(1)
	if e.actions == nil {
		L.Push(lua.LFalse)
		L.Push(lua.LString(ErrUnknownAction.Error() + ": " + name))
		return 2
	}
	if err := e.actions(name, e.current); err != nil {
		L.Push(lua.LFalse)
		L.Push(lua.LString(err.Error()))
		return 2
	}
	L.Push(lua.LTrue)
	return 1
}
