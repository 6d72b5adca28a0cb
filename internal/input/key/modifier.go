package key

import "strings"

// Modifier represents keyboard modifier keys.
type Modifier uint8

const (
	// ModNone indicates no modifiers.
	ModNone Modifier = 0

	// ModAlt indicates the Alt key (Option on macOS).
	ModAlt Modifier = 1 << (iota - 1)

	// ModCtrl indicates the Control key.
	ModCtrl

	// ModMeta indicates the Meta key (Cmd on macOS, Win on Windows).
	ModMeta

	// ModShift indicates the Shift key.
	ModShift
)

// modifierOrder is the order modifiers are read off a live event.
var modifierOrder = []struct {
	mod   Modifier
	token string
}{
	{ModAlt, "alt"},
	{ModCtrl, "ctrl"},
	{ModMeta, "meta"},
	{ModShift, "shift"},
}

// Has returns true if m contains the specified modifier.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// HasShift returns true if Shift is pressed.
func (m Modifier) HasShift() bool {
	return m.Has(ModShift)
}

// HasCtrl returns true if Control is pressed.
func (m Modifier) HasCtrl() bool {
	return m.Has(ModCtrl)
}

// HasAlt returns true if Alt is pressed.
func (m Modifier) HasAlt() bool {
	return m.Has(ModAlt)
}

// HasMeta returns true if Meta is pressed.
func (m Modifier) HasMeta() bool {
	return m.Has(ModMeta)
}

// With returns a new Modifier with the specified modifier added.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// Without returns a new Modifier with the specified modifier removed.
func (m Modifier) Without(mod Modifier) Modifier {
	return m &^ mod
}

// IsEmpty returns true if no modifiers are set.
func (m Modifier) IsEmpty() bool {
	return m == ModNone
}

// Tokens returns the lowercase shortcut tokens of the set modifiers,
// always in the order alt, ctrl, meta, shift.
func (m Modifier) Tokens() []string {
	var tokens []string
	for _, o := range modifierOrder {
		if m.Has(o.mod) {
			tokens = append(tokens, o.token)
		}
	}
	return tokens
}

// String returns a human-readable representation like "Alt+Ctrl".
func (m Modifier) String() string {
	tokens := m.Tokens()
	for i, t := range tokens {
		tokens[i] = strings.ToUpper(t[:1]) + t[1:]
	}
	return strings.Join(tokens, "+")
}

// modifierNameMap maps modifier token names to Modifier values.
var modifierNameMap = map[string]Modifier{
	"alt":   ModAlt,
	"ctrl":  ModCtrl,
	"meta":  ModMeta,
	"shift": ModShift,
}

// ModifierFromName returns the Modifier for a canonical token name.
// Returns ModNone if the name is not recognized.
func ModifierFromName(name string) Modifier {
	if m, ok := modifierNameMap[strings.ToLower(name)]; ok {
		return m
	}
	return ModNone
}
