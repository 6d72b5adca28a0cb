// Package key provides the key event type delivered to accelerator dispatch.
//
// A key press is described the way a browser describes a key-down:
//
//   - Code: the physical key identifier ("KeyA", "Digit3", "ArrowLeft", "Escape")
//   - Modifiers: which of Alt, Ctrl, Meta and Shift were held
//
// An Event can be claimed by the handler that consumed it through
// PreventDefault and StopPropagation. Terminal backends translate their
// native events into this form so that shortcut matching never depends on
// the backend in use.
//
// # Base keys
//
// BaseKey reduces a physical code to the token used in canonical shortcut
// strings: the code is lowercased and the generic "digit" and "key" prefixes
// are dropped, so "KeyA" becomes "a" and "Digit1" becomes "1".
package key
