package key

import (
	"fmt"
	"time"
)

// Event represents a single key-down.
type Event struct {
	// Code is the physical key identifier, e.g. "KeyA" or "ArrowLeft".
	Code string

	// Modifiers contains the active modifier keys.
	Modifiers Modifier

	// Timestamp is when the event occurred.
	Timestamp time.Time

	defaultPrevented   bool
	propagationStopped bool
}

// NewEvent creates a key event with the current timestamp.
func NewEvent(code string, mods Modifier) *Event {
	return &Event{
		Code:      code,
		Modifiers: mods,
		Timestamp: time.Now(),
	}
}

// NewRuneEvent creates a key event for a typed character.
// Uppercase letters and shifted punctuation add Shift.
func NewRuneEvent(r rune, mods Modifier) *Event {
	code, shifted := CodeForRune(r)
	if shifted {
		mods = mods.With(ModShift)
	}
	return NewEvent(code, mods)
}

// Base returns the shortcut token of the pressed key.
func (e *Event) Base() string {
	return BaseKey(e.Code)
}

// PreventDefault marks the event as consumed so the default action is skipped.
func (e *Event) PreventDefault() {
	e.defaultPrevented = true
}

// StopPropagation stops the event from reaching further listeners.
func (e *Event) StopPropagation() {
	e.propagationStopped = true
}

// DefaultPrevented reports whether PreventDefault was called.
func (e *Event) DefaultPrevented() bool {
	return e.defaultPrevented
}

// PropagationStopped reports whether StopPropagation was called.
func (e *Event) PropagationStopped() bool {
	return e.propagationStopped
}

// Claimed reports whether a handler consumed the event.
func (e *Event) Claimed() bool {
	return e.defaultPrevented && e.propagationStopped
}

// String returns a short representation like "Ctrl+KeyN".
func (e *Event) String() string {
	if e.Modifiers.IsEmpty() {
		return e.Code
	}
	return e.Modifiers.String() + "+" + e.Code
}

// GoString implements fmt.GoStringer for debugging.
func (e *Event) GoString() string {
	return fmt.Sprintf("Event{Code: %q, Modifiers: %s}", e.Code, e.Modifiers.String())
}
