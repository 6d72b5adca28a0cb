package accel

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// bindingSeparator separates alternative bindings in one specification.
	bindingSeparator = "|"

	// partSeparator joins modifiers and the base key.
	partSeparator = "+"

	// labelSeparator joins alternative display labels.
	labelSeparator = " or "
)

// modifierAliases rewrites platform-neutral modifier names.
var modifierAliases = map[string]string{
	"commandorcontrol": "ctrl",
	"command":          "ctrl",
	"control":          "ctrl",
}

// Normalize converts a key specification into canonical keys, one per
// "|"-separated alternative, in source order. Malformed input is not
// rejected; see Parse for the validating form.
func Normalize(spec string) []string {
	alternatives := strings.Split(spec, bindingSeparator)
	keys := make([]string, 0, len(alternatives))
	for _, alt := range alternatives {
		keys = append(keys, normalizeBinding(alt))
	}
	return keys
}

// normalizeBinding canonicalizes a single key combination.
func normalizeBinding(binding string) string {
	binding = strings.ToLower(stripSpaces(binding))
	if !strings.Contains(binding, partSeparator) {
		return binding
	}

	parts := strings.Split(binding, partSeparator)
	mods := parts[:len(parts)-1]
	base := parts[len(parts)-1]

	for i, m := range mods {
		if alias, ok := modifierAliases[m]; ok {
			mods[i] = alias
		}
	}

	// Only the first character orders modifiers; equal initials keep input order.
	sort.SliceStable(mods, func(i, j int) bool {
		return firstByte(mods[i]) < firstByte(mods[j])
	})

	return strings.Join(mods, partSeparator) + partSeparator + base
}

// Prettify returns the display label for a key specification, e.g.
// "Ctrl+Shift+E" or "Shift+A or Ctrl+A". Labels are for presentation only
// and must not be used for matching.
func Prettify(spec string) string {
	caser := cases.Title(language.Und)

	keys := Normalize(spec)
	labels := make([]string, len(keys))
	for i, k := range keys {
		parts := strings.Split(k, partSeparator)
		for j, p := range parts {
			parts[j] = caser.String(p)
		}
		labels[i] = strings.Join(parts, partSeparator)
	}
	return strings.Join(labels, labelSeparator)
}

// Parse normalizes spec like Normalize but rejects specifications that
// would produce a degenerate key: an empty spec or alternative, an empty
// modifier, or a missing base key.
func Parse(spec string) ([]string, error) {
	if stripSpaces(spec) == "" {
		return nil, &InvalidKeySpecError{Spec: spec, Reason: "empty specification"}
	}

	for _, alt := range strings.Split(spec, bindingSeparator) {
		alt = stripSpaces(alt)
		if alt == "" {
			return nil, &InvalidKeySpecError{Spec: spec, Reason: "empty alternative"}
		}
		parts := strings.Split(alt, partSeparator)
		if parts[len(parts)-1] == "" {
			return nil, &InvalidKeySpecError{Spec: spec, Reason: "missing key after modifiers"}
		}
		for _, m := range parts[:len(parts)-1] {
			if m == "" {
				return nil, &InvalidKeySpecError{Spec: spec, Reason: "empty modifier"}
			}
		}
	}

	return Normalize(spec), nil
}

// stripSpaces removes all whitespace from s.
func stripSpaces(s string) string {
	return strings.Join(strings.Fields(s), "")
}

func firstByte(s string) byte {
	if s == "" {
		return 0
	}
	return s[0]
}
