package key

import (
	"strings"
	"unicode"
)

// Physical key codes for non-character keys.
const (
	CodeEscape     = "Escape"
	CodeEnter      = "Enter"
	CodeTab        = "Tab"
	CodeSpace      = "Space"
	CodeBackspace  = "Backspace"
	CodeDelete     = "Delete"
	CodeInsert     = "Insert"
	CodeHome       = "Home"
	CodeEnd        = "End"
	CodePageUp     = "PageUp"
	CodePageDown   = "PageDown"
	CodeArrowUp    = "ArrowUp"
	CodeArrowDown  = "ArrowDown"
	CodeArrowLeft  = "ArrowLeft"
	CodeArrowRight = "ArrowRight"
)

// punctuationCodes maps unshifted punctuation to its physical code.
var punctuationCodes = map[rune]string{
	'-':  "Minus",
	'=':  "Equal",
	'[':  "BracketLeft",
	']':  "BracketRight",
	'\\': "Backslash",
	';':  "Semicolon",
	'\'': "Quote",
	'`':  "Backquote",
	',':  "Comma",
	'.':  "Period",
	'/':  "Slash",
}

// shiftedPunctuation maps shifted punctuation (US layout) to the physical
// code of the key that produces it.
var shiftedPunctuation = map[rune]string{
	'_': "Minus",
	'+': "Equal",
	'{': "BracketLeft",
	'}': "BracketRight",
	'|': "Backslash",
	':': "Semicolon",
	'"': "Quote",
	'~': "Backquote",
	'<': "Comma",
	'>': "Period",
	'?': "Slash",
	'!': "Digit1",
	'@': "Digit2",
	'#': "Digit3",
	'$': "Digit4",
	'%': "Digit5",
	'^': "Digit6",
	'&': "Digit7",
	'*': "Digit8",
	'(': "Digit9",
	')': "Digit0",
}

// CodeForRune returns the physical key code that produces r and whether
// Shift is implied by r. Unknown runes map to their own string so they can
// still be bound verbatim.
func CodeForRune(r rune) (code string, shifted bool) {
	switch {
	case r == ' ':
		return CodeSpace, false
	case r >= 'a' && r <= 'z':
		return "Key" + string(unicode.ToUpper(r)), false
	case r >= 'A' && r <= 'Z':
		return "Key" + string(r), true
	case r >= '0' && r <= '9':
		return "Digit" + string(r), false
	}
	if c, ok := punctuationCodes[r]; ok {
		return c, false
	}
	if c, ok := shiftedPunctuation[r]; ok {
		return c, true
	}
	return string(r), false
}

// BaseKey reduces a physical key code to its shortcut token.
// Examples: "KeyA" -> "a", "Digit1" -> "1", "ArrowLeft" -> "arrowleft".
func BaseKey(code string) string {
	base := strings.ToLower(code)
	base = strings.ReplaceAll(base, "digit", "")
	return strings.ReplaceAll(base, "key", "")
}
