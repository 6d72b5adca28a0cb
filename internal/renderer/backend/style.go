package backend

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is a 24-bit color. The zero value is the terminal default.
type Color struct {
	R, G, B uint8
	Set     bool
}

// ColorDefault leaves the terminal's own color in place.
var ColorDefault = Color{}

// RGB creates a color from components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, Set: true}
}

// ParseColor parses "#rrggbb" or "#rgb". An empty string yields ColorDefault.
func ParseColor(hex string) (Color, error) {
	if hex == "" {
		return ColorDefault, nil
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return ColorDefault, fmt.Errorf("parsing color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return RGB(r, g, b), nil
}

// Hex returns the "#rrggbb" form, or "" for the default color.
func (c Color) Hex() string {
	if !c.Set {
		return ""
	}
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Style describes how a cell is drawn.
type Style struct {
	Foreground Color
	Background Color
	Bold       bool
	Underline  bool
	Reverse    bool
	Dim        bool
}

// DefaultStyle uses the terminal defaults.
var DefaultStyle = Style{}

// WithForeground returns a copy with the foreground set.
func (s Style) WithForeground(c Color) Style {
	s.Foreground = c
	return s
}

// WithBackground returns a copy with the background set.
func (s Style) WithBackground(c Color) Style {
	s.Background = c
	return s
}

// WithUnderline returns a copy with underline toggled.
func (s Style) WithUnderline(on bool) Style {
	s.Underline = on
	return s
}
