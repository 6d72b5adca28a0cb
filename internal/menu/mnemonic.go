package menu

import (
	"strings"
	"unicode"

	"github.com/dshills/accelmenu/internal/input/key"
)

const mnemonicMarker = '&'

// Mnemonic returns the shortcut key of the character marked with "&" in
// label, or "" when the label has no mnemonic. Letters are lowercased and
// punctuation is named after the key that types it ("-" is "minus", "!" is
// "shift+1"), matching what a live key press normalizes to.
func Mnemonic(label string) string {
	_, r := scanMnemonic(label)
	if r == 0 {
		return ""
	}
	code, shifted := key.CodeForRune(unicode.ToLower(r))
	base := key.BaseKey(code)
	if shifted {
		return "shift+" + base
	}
	return base
}

// MnemonicIndex returns the rune index of the mnemonic within
// DisplayLabel(label), or -1.
func MnemonicIndex(label string) int {
	idx, _ := scanMnemonic(label)
	return idx
}

// DisplayLabel strips mnemonic markers from label.
func DisplayLabel(label string) string {
	var b strings.Builder
	runes := []rune(label)
	for i := 0; i < len(runes); i++ {
		if runes[i] == mnemonicMarker {
			// A trailing marker has nothing to mark.
			if i+1 >= len(runes) {
				break
			}
			i++
		}
		b.WriteRune(runes[i])
	}
	return b.String()
}

// scanMnemonic finds the first marked rune and its index in the display label.
func scanMnemonic(label string) (int, rune) {
	runes := []rune(label)
	pos := 0
	for i := 0; i < len(runes); i++ {
		if runes[i] != mnemonicMarker {
			pos++
			continue
		}
		if i+1 >= len(runes) {
			break
		}
		i++
		next := runes[i]
		if next != mnemonicMarker && !unicode.IsSpace(next) {
			return pos, next
		}
		pos++
	}
	return -1, 0
}
