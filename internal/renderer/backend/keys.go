package backend

import (
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/accelmenu/internal/input/key"
)

// specialCodes maps tcell named keys to physical key codes.
// Control letters are handled separately since several of them share
// values with Tab, Enter and Backspace.
var specialCodes = map[tcell.Key]string{
	tcell.KeyEscape:     key.CodeEscape,
	tcell.KeyEnter:      key.CodeEnter,
	tcell.KeyTab:        key.CodeTab,
	tcell.KeyBacktab:    key.CodeTab,
	tcell.KeyBackspace:  key.CodeBackspace,
	tcell.KeyBackspace2: key.CodeBackspace,
	tcell.KeyDelete:     key.CodeDelete,
	tcell.KeyInsert:     key.CodeInsert,
	tcell.KeyHome:       key.CodeHome,
	tcell.KeyEnd:        key.CodeEnd,
	tcell.KeyPgUp:       key.CodePageUp,
	tcell.KeyPgDn:       key.CodePageDown,
	tcell.KeyUp:         key.CodeArrowUp,
	tcell.KeyDown:       key.CodeArrowDown,
	tcell.KeyLeft:       key.CodeArrowLeft,
	tcell.KeyRight:      key.CodeArrowRight,
	tcell.KeyF1:         "F1",
	tcell.KeyF2:         "F2",
	tcell.KeyF3:         "F3",
	tcell.KeyF4:         "F4",
	tcell.KeyF5:         "F5",
	tcell.KeyF6:         "F6",
	tcell.KeyF7:         "F7",
	tcell.KeyF8:         "F8",
	tcell.KeyF9:         "F9",
	tcell.KeyF10:        "F10",
	tcell.KeyF11:        "F11",
	tcell.KeyF12:        "F12",
}

// convertMod converts tcell modifiers to key modifiers.
func convertMod(m tcell.ModMask) key.Modifier {
	var mods key.Modifier
	if m&tcell.ModAlt != 0 {
		mods = mods.With(key.ModAlt)
	}
	if m&tcell.ModCtrl != 0 {
		mods = mods.With(key.ModCtrl)
	}
	if m&tcell.ModMeta != 0 {
		mods = mods.With(key.ModMeta)
	}
	if m&tcell.ModShift != 0 {
		mods = mods.With(key.ModShift)
	}
	return mods
}

// KeyEvent converts a tcell key event into a key-down with a physical
// code. It returns nil for keys that have no code.
func KeyEvent(ev *tcell.EventKey) *key.Event {
	mods := convertMod(ev.Modifiers())
	k := ev.Key()

	var code string
	switch {
	case k == tcell.KeyRune:
		var shifted bool
		code, shifted = key.CodeForRune(ev.Rune())
		if shifted {
			mods = mods.With(key.ModShift)
		}
	case k == tcell.KeyBacktab:
		code = key.CodeTab
		mods = mods.With(key.ModShift)
	case specialCodes[k] != "":
		code = specialCodes[k]
	case k == tcell.KeyCtrlSpace:
		code = key.CodeSpace
		mods = mods.With(key.ModCtrl)
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		code = "Key" + string(rune('A'+(k-tcell.KeyCtrlA)))
		mods = mods.With(key.ModCtrl)
	default:
		return nil
	}

	return &key.Event{
		Code:      code,
		Modifiers: mods,
		Timestamp: ev.When(),
	}
}

// toTcellKey converts a key-down back into a tcell event for PostEvent.
func toTcellKey(ev *key.Event) *tcell.EventKey {
	var mods tcell.ModMask
	if ev.Modifiers.HasAlt() {
		mods |= tcell.ModAlt
	}
	if ev.Modifiers.HasCtrl() {
		mods |= tcell.ModCtrl
	}
	if ev.Modifiers.HasMeta() {
		mods |= tcell.ModMeta
	}

	for k, code := range specialCodes {
		if code == ev.Code && k != tcell.KeyBacktab && k != tcell.KeyBackspace {
			if ev.Modifiers.HasShift() {
				mods |= tcell.ModShift
			}
			return tcell.NewEventKey(k, 0, mods)
		}
	}

	r := runeForCode(ev.Code, ev.Modifiers.HasShift())
	if r == utf8.RuneError {
		return nil
	}
	return tcell.NewEventKey(tcell.KeyRune, r, mods)
}

// runeForCode returns the character a letter, digit or space code types.
func runeForCode(code string, shifted bool) rune {
	switch {
	case code == key.CodeSpace:
		return ' '
	case strings.HasPrefix(code, "Key") && len(code) == 4:
		r := rune(code[3])
		if !shifted {
			r += 'a' - 'A'
		}
		return r
	case strings.HasPrefix(code, "Digit") && len(code) == 6:
		return rune(code[5])
	}
	return utf8.RuneError
}
