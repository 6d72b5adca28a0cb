// Package statusline draws the bottom status row: menu state, the last
// message and the last key that was pressed.
package statusline

import (
	"strconv"

	"github.com/rivo/uniseg"

	"github.com/dshills/accelmenu/internal/renderer/backend"
)

// StatusLine renders the bottom status line.
type StatusLine struct {
	// Display state
	state    string // "READY" or "MENU"
	lastKey  string // Display form of the last key, e.g. "Ctrl+N"
	handled  bool   // Whether the last key ran a handler
	bindings int    // Number of user shortcuts

	// Message display
	message     string
	messageType MessageType

	stateStyles map[string]backend.Style

	width int
}

// MessageType indicates the type of status message.
type MessageType int

const (
	MessageNone MessageType = iota
	MessageInfo
	MessageWarning
	MessageError
)

// States shown at the left of the line.
const (
	StateReady = "READY"
	StateMenu  = "MENU"
)

var (
	white = backend.RGB(255, 255, 255)
	black = backend.RGB(0, 0, 0)
	gray  = backend.RGB(88, 88, 88)
)

// New creates a new status line.
func New() *StatusLine {
	return &StatusLine{
		state:       StateReady,
		stateStyles: defaultStateStyles(),
	}
}

func defaultStateStyles() map[string]backend.Style {
	return map[string]backend.Style{
		StateReady: {Foreground: white, Background: backend.RGB(0, 0, 160), Bold: true},
		StateMenu:  {Foreground: black, Background: backend.RGB(200, 160, 0), Bold: true},
	}
}

// SetMenuOpen switches the state indicator.
func (s *StatusLine) SetMenuOpen(open bool) {
	if open {
		s.state = StateMenu
	} else {
		s.state = StateReady
	}
}

// State returns the current state indicator.
func (s *StatusLine) State() string {
	return s.state
}

// SetLastKey records the last key pressed and whether it was handled.
func (s *StatusLine) SetLastKey(display string, handled bool) {
	s.lastKey = display
	s.handled = handled
}

// SetBindingCount updates the shortcut count shown at the right.
func (s *StatusLine) SetBindingCount(n int) {
	s.bindings = n
}

// SetMessage displays a status message.
func (s *StatusLine) SetMessage(msg string, msgType MessageType) {
	s.message = msg
	s.messageType = msgType
}

// Message returns the current message.
func (s *StatusLine) Message() string {
	return s.message
}

// ClearMessage clears the status message.
func (s *StatusLine) ClearMessage() {
	s.message = ""
	s.messageType = MessageNone
}

// Resize updates the status line width.
func (s *StatusLine) Resize(width int) {
	s.width = width
}

// Render draws the status line at the given row.
func (s *StatusLine) Render(b backend.Backend, row int) {
	barStyle := backend.Style{Foreground: white, Background: gray}

	for x := 0; x < s.width; x++ {
		b.SetContent(x, row, ' ', barStyle)
	}

	stateStyle, ok := s.stateStyles[s.state]
	if !ok {
		stateStyle = barStyle
	}
	col := put(b, 0, row, s.width, " "+s.state+" ", stateStyle)
	col++

	right := s.formatRight()
	rightStart := s.width - uniseg.StringWidth(right) - 1

	if s.message != "" {
		limit := s.width
		if rightStart > col {
			limit = rightStart - 1
		}
		put(b, col, row, limit, s.message, s.messageStyle(barStyle))
	}

	if rightStart > col {
		put(b, rightStart, row, s.width, right, barStyle)
	}
}

func (s *StatusLine) messageStyle(bar backend.Style) backend.Style {
	switch s.messageType {
	case MessageError:
		st := bar.WithForeground(backend.RGB(255, 96, 96))
		st.Bold = true
		return st
	case MessageWarning:
		return bar.WithForeground(backend.RGB(255, 220, 0))
	default:
		return bar
	}
}

// formatRight formats the key info for the right side.
// Format: "Ctrl+N | 12 keys", with "Ctrl+N?" for unhandled keys.
func (s *StatusLine) formatRight() string {
	result := strconv.Itoa(s.bindings) + " keys"
	if s.lastKey == "" {
		return result
	}
	k := s.lastKey
	if !s.handled {
		k += "?"
	}
	return k + " | " + result
}

// put draws str from x, stopping before limit. It returns the column
// after the last cell drawn.
func put(b backend.Backend, x, y, limit int, str string, style backend.Style) int {
	state := -1
	for str != "" {
		var cluster string
		var width int
		cluster, str, width, state = uniseg.FirstGraphemeClusterInString(str, state)
		if width == 0 {
			continue
		}
		if x+width > limit {
			break
		}
		b.SetContent(x, y, []rune(cluster)[0], style)
		for i := 1; i < width; i++ {
			b.SetContent(x+i, y, ' ', style)
		}
		x += width
	}
	return x
}
