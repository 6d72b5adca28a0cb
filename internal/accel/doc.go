// Package accel implements accelerator (keyboard shortcut) normalization and
// dispatch for the menu bar.
//
// # Key specifications
//
// Shortcuts are written as "+"-joined modifier and key tokens, with "|"
// separating alternative bindings:
//
//	"CommandOrControl+N"
//	"ctrl+shift+e"
//	"shift+a | ctrl+a"
//
// Normalize turns each alternative into a canonical key: lowercase, spaces
// removed, the aliases "command", "control" and "commandorcontrol" folded into
// "ctrl", and modifiers ordered by their first letter. Two specifications that
// differ only in case, spacing or modifier order normalize identically.
// Prettify produces the display label ("Ctrl+Shift+E", "Shift+A or Ctrl+A").
//
// # Tables
//
// A Registry holds two tables. The menu table is rebuilt whenever menu focus
// changes and holds mnemonic letters plus the navigation keys of the open
// menu. The user table holds application shortcuts and persists until
// ClearKeys. On a key-down the menu table is consulted first; a key present in
// both tables only reaches the menu handler.
package accel
