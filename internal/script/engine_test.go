package script

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/dshills/accelmenu/internal/accel"
	"github.com/dshills/accelmenu/internal/input/key"
)

type recordLogger struct {
	lines []string
}

func (l *recordLogger) Info(msg string, args ...any) {
	l.lines = append(l.lines, fmt.Sprintf(msg, args...))
}

func TestEngine_Log(t *testing.T) {
	logger := &recordLogger{}
	e := New(WithLogger(logger))
	defer e.Close()

	if err := e.DoString(`log("hello " .. key.name)`, key.NewEvent("KeyN", key.ModCtrl)); err != nil {
		t.Fatalf("DoString() error = %v", err)
	}
	if len(logger.lines) != 1 || logger.lines[0] != "lua: hello ctrl+n" {
		t.Errorf("log lines = %q, want [\"lua: hello ctrl+n\"]", logger.lines)
	}
}

func TestEngine_KeyTable(t *testing.T) {
	logger := &recordLogger{}
	e := New(WithLogger(logger))
	defer e.Close()

	ev := key.NewEvent("Digit3", key.ModShift|key.ModAlt)
	if err := e.DoString(`log(key.code .. " " .. key.mods)`, ev); err != nil {
		t.Fatalf("DoString() error = %v", err)
	}
	if want := "lua: Digit3 Alt+Shift"; len(logger.lines) != 1 || logger.lines[0] != want {
		t.Errorf("log lines = %q, want %q", logger.lines, want)
	}
}

func TestEngine_Action(t *testing.T) {
	var ran []string
	var seen *key.Event
	run := func(name string, ev *key.Event) error {
		if name == "missing" {
			return ErrUnknownAction
		}
		ran = append(ran, name)
		seen = ev
		return nil
	}
	logger := &recordLogger{}
	e := New(WithActions(run), WithLogger(logger))
	defer e.Close()

	ev := key.NewEvent("F5", key.ModNone)
	code := `
local ok = action("app.status")
local ok2, msg = action("missing")
log(tostring(ok) .. " " .. tostring(ok2) .. " " .. msg)
`
	if err := e.DoString(code, ev); err != nil {
		t.Fatalf("DoString() error = %v", err)
	}
	if len(ran) != 1 || ran[0] != "app.status" {
		t.Errorf("ran = %q, want [app.status]", ran)
	}
	if seen != ev {
		t.Error("action runner did not receive the triggering event")
	}
	if want := "lua: true false unknown action"; len(logger.lines) != 1 || logger.lines[0] != want {
		t.Errorf("log lines = %q, want %q", logger.lines, want)
	}
}

func TestEngine_CompileError(t *testing.T) {
	e := New()
	defer e.Close()

	if _, err := e.Compile("broken", "log("); err == nil {
		t.Error("Compile() of invalid code succeeded")
	}
}

func TestEngine_RuntimeError(t *testing.T) {
	e := New()
	defer e.Close()

	err := e.DoString(`error("boom")`, nil)
	if err == nil || !strings.Contains(err.Error(), "boom") {
		t.Errorf("DoString() error = %v, want boom", err)
	}
}

func TestEngine_Sandbox(t *testing.T) {
	e := New()
	defer e.Close()

	for _, name := range []string{"os", "io", "dofile", "loadfile", "load", "require"} {
		code := fmt.Sprintf(`if %s ~= nil then error("%s available") end`, name, name)
		if err := e.DoString(code, nil); err != nil {
			t.Errorf("sandbox: %v", err)
		}
	}
}

func TestEngine_Timeout(t *testing.T) {
	e := New(WithTimeout(50 * time.Millisecond))
	defer e.Close()

	start := time.Now()
	err := e.DoString(`while true do end`, nil)
	if err == nil {
		t.Fatal("DoString() of an endless loop succeeded")
	}
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Errorf("timeout took %v", elapsed)
	}
}

func TestEngine_Closed(t *testing.T) {
	e := New()
	s, err := e.Compile("x", "log('x')")
	if err != nil {
		t.Fatal(err)
	}
	e.Close()
	e.Close()

	if err := s.Run(nil); !errors.Is(err, ErrEngineClosed) {
		t.Errorf("Run() after Close = %v, want ErrEngineClosed", err)
	}
	if _, err := e.Compile("y", "log('y')"); !errors.Is(err, ErrEngineClosed) {
		t.Errorf("Compile() after Close = %v, want ErrEngineClosed", err)
	}
}

func TestEngine_HandlerInRegistry(t *testing.T) {
	var ran []string
	e := New(WithActions(func(name string, _ *key.Event) error {
		ran = append(ran, name)
		return nil
	}))
	defer e.Close()

	h, err := e.Handler("binding[0]", `action("select.all")`)
	if err != nil {
		t.Fatalf("Handler() error = %v", err)
	}

	reg := accel.New()
	if err := reg.Register("ctrl+a", h); err != nil {
		t.Fatal(err)
	}

	ev := key.NewEvent("KeyA", key.ModCtrl)
	if !reg.OnKeyDown(ev) {
		t.Fatal("OnKeyDown() = false, want true")
	}
	if len(ran) != 1 || ran[0] != "select.all" {
		t.Errorf("ran = %q, want [select.all]", ran)
	}
	if !ev.DefaultPrevented() || !ev.PropagationStopped() {
		t.Error("lua shortcut did not claim the event")
	}
}
