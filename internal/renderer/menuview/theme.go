package menuview

import (
	"fmt"

	"github.com/dshills/accelmenu/internal/renderer/backend"
)

// Theme holds the styles used to draw menus.
type Theme struct {
	Bar          backend.Style
	BarSelected  backend.Style
	Menu         backend.Style
	MenuSelected backend.Style
	Disabled     backend.Style
	Accelerator  backend.Style
}

// DefaultTheme returns a theme that works on 256-color and truecolor terminals.
func DefaultTheme() Theme {
	bar := backend.Style{Foreground: backend.RGB(0, 0, 0), Background: backend.RGB(192, 192, 192)}
	sel := backend.Style{Foreground: backend.RGB(255, 255, 255), Background: backend.RGB(0, 0, 128)}
	return Theme{
		Bar:          bar,
		BarSelected:  sel,
		Menu:         bar,
		MenuSelected: sel,
		Disabled:     bar.WithForeground(backend.RGB(128, 128, 128)),
		Accelerator:  bar.WithForeground(backend.RGB(64, 64, 64)),
	}
}

// Colors are hex color overrides for a theme; empty fields keep the default.
type Colors struct {
	Foreground         string
	Background         string
	SelectedForeground string
	SelectedBackground string
	DisabledForeground string
}

// ThemeFromColors applies hex overrides to the default theme.
func ThemeFromColors(c Colors) (Theme, error) {
	t := DefaultTheme()

	parse := func(name, hex string, apply func(backend.Color)) error {
		if hex == "" {
			return nil
		}
		col, err := backend.ParseColor(hex)
		if err != nil {
			return fmt.Errorf("theme %s: %w", name, err)
		}
		apply(col)
		return nil
	}

	steps := []struct {
		name  string
		hex   string
		apply func(backend.Color)
	}{
		{"foreground", c.Foreground, func(col backend.Color) {
			t.Bar.Foreground, t.Menu.Foreground = col, col
		}},
		{"background", c.Background, func(col backend.Color) {
			t.Bar.Background, t.Menu.Background = col, col
			t.Disabled.Background, t.Accelerator.Background = col, col
		}},
		{"selected_foreground", c.SelectedForeground, func(col backend.Color) {
			t.BarSelected.Foreground, t.MenuSelected.Foreground = col, col
		}},
		{"selected_background", c.SelectedBackground, func(col backend.Color) {
			t.BarSelected.Background, t.MenuSelected.Background = col, col
		}},
		{"disabled_foreground", c.DisabledForeground, func(col backend.Color) {
			t.Disabled.Foreground = col
		}},
	}

	for _, s := range steps {
		if err := parse(s.name, s.hex, s.apply); err != nil {
			return Theme{}, err
		}
	}
	return t, nil
}
