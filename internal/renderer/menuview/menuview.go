// Package menuview draws the application menu bar and its open dropdowns.
package menuview

import (
	"github.com/rivo/uniseg"

	"github.com/dshills/accelmenu/internal/accel"
	"github.com/dshills/accelmenu/internal/menu"
	"github.com/dshills/accelmenu/internal/renderer/backend"
)

const (
	submenuMarker = '▶'
	checkMark     = '✓'
	separatorRune = '─'
)

// Box is the screen rectangle of a drawn dropdown.
type Box struct {
	X, Y, Width, Height int
}

// View renders an ApplicationMenu onto a backend.
type View struct {
	app   *menu.ApplicationMenu
	theme Theme

	// barX holds the starting column of each bar entry from the last render.
	barX  []int
	boxes []Box
}

// New creates a view of app.
func New(app *menu.ApplicationMenu, theme Theme) *View {
	return &View{app: app, theme: theme}
}

// SetTheme replaces the theme used by later renders.
func (v *View) SetTheme(t Theme) {
	v.theme = t
}

// Boxes returns the dropdown rectangles drawn by the last Render.
func (v *View) Boxes() []Box {
	return append([]Box(nil), v.boxes...)
}

// Render draws the bar on row 0 and the open dropdown chain below it.
func (v *View) Render(b backend.Backend) {
	width, _ := b.Size()
	v.renderBar(b, width)

	v.boxes = v.boxes[:0]
	open := v.app.OpenMenus()
	if len(open) == 0 {
		return
	}

	bar := v.app.Bar()
	x, y := 0, 1
	if sel := bar.Selected(); sel >= 0 && sel < len(v.barX) {
		x = v.barX[sel]
	}
	for i, m := range open {
		box := v.renderDropdown(b, m, x, y)
		v.boxes = append(v.boxes, box)
		if i+1 < len(open) {
			x = box.X + box.Width
			y = box.Y + max(m.Selected(), 0)
		}
	}
}

func (v *View) renderBar(b backend.Backend, width int) {
	fill(b, 0, 0, width, v.theme.Bar)

	bar := v.app.Bar()
	v.barX = v.barX[:0]
	x := 1
	for i, it := range bar.Items {
		v.barX = append(v.barX, x)
		style := v.theme.Bar
		if v.app.IsOpen() && bar.Selected() == i {
			style = v.theme.BarSelected
		}
		if it.Disabled {
			style = v.theme.Disabled
		}
		x = drawLabel(b, x, 0, " "+it.Text()+" ", menu.MnemonicIndex(it.Label)+1, style)
	}
}

// renderDropdown draws m with its top-left corner at (x, y).
func (v *View) renderDropdown(b backend.Backend, m *menu.Menu, x, y int) Box {
	textW, accelW := columnWidths(m)
	// " ✓ " + text + gap + accel + " ▶ "
	width := 3 + textW + 2 + accelW + 3

	for row, it := range m.Items {
		cy := y + row
		style := v.theme.Menu
		switch {
		case it.Separator:
			fill(b, x, cy, width, style)
			for i := 1; i < width-1; i++ {
				b.SetContent(x+i, cy, separatorRune, style)
			}
			continue
		case it.Disabled:
			style = v.theme.Disabled
		case m.Selected() == row:
			style = v.theme.MenuSelected
		}

		fill(b, x, cy, width, style)
		if it.Checkable && it.Checked {
			b.SetContent(x+1, cy, checkMark, style)
		}
		drawLabel(b, x+3, cy, it.Text(), menu.MnemonicIndex(it.Label), style)

		if it.Accelerator != "" {
			label := accel.Prettify(it.Accelerator)
			accelStyle := style
			if style == v.theme.Menu {
				accelStyle = v.theme.Accelerator
			}
			ax := x + 3 + textW + 2 + accelW - uniseg.StringWidth(label)
			drawLabel(b, ax, cy, label, -1, accelStyle)
		}
		if it.Submenu != nil {
			b.SetContent(x+width-2, cy, submenuMarker, style)
		}
	}

	return Box{X: x, Y: y, Width: width, Height: len(m.Items)}
}

// columnWidths measures the label and accelerator columns of m.
func columnWidths(m *menu.Menu) (text, accelerator int) {
	for _, it := range m.Items {
		if it.Separator {
			continue
		}
		text = max(text, uniseg.StringWidth(it.Text()))
		if it.Accelerator != "" {
			accelerator = max(accelerator, uniseg.StringWidth(accel.Prettify(it.Accelerator)))
		}
	}
	return text, accelerator
}

// drawLabel draws s starting at column x, underlining the rune at
// underline (or none when negative), and returns the column after s.
func drawLabel(b backend.Backend, x, y int, s string, underline int, style backend.Style) int {
	i := 0
	state := -1
	rest := s
	for len(rest) > 0 {
		var cluster string
		var w int
		cluster, rest, w, state = uniseg.FirstGraphemeClusterInString(rest, state)
		st := style
		if i == underline {
			st = st.WithUnderline(true)
		}
		r := []rune(cluster)[0]
		b.SetContent(x, y, r, st)
		x += max(w, 1)
		i += len([]rune(cluster))
	}
	return x
}

func fill(b backend.Backend, x, y, width int, style backend.Style) {
	for i := 0; i < width; i++ {
		b.SetContent(x+i, y, ' ', style)
	}
}
