package statusline

import (
	"strings"
	"testing"

	"github.com/dshills/accelmenu/internal/renderer/backend"
)

func render(t *testing.T, s *StatusLine, width int) *backend.NullBackend {
	t.Helper()
	b := backend.NewNullBackend(width, 1)
	if err := b.Init(); err != nil {
		t.Fatal(err)
	}
	s.Resize(width)
	s.Render(b, 0)
	return b
}

func TestStatusLine_Ready(t *testing.T) {
	s := New()
	s.SetBindingCount(3)

	row := render(t, s, 40).Row(0)
	if !strings.HasPrefix(row, " READY ") {
		t.Errorf("row = %q, want READY prefix", row)
	}
	if !strings.HasSuffix(row, "3 keys") {
		t.Errorf("row = %q, want key count at the right", row)
	}
}

func TestStatusLine_MenuState(t *testing.T) {
	s := New()
	s.SetMenuOpen(true)
	if s.State() != StateMenu {
		t.Errorf("State() = %q, want %q", s.State(), StateMenu)
	}
	row := render(t, s, 40).Row(0)
	if !strings.HasPrefix(row, " MENU ") {
		t.Errorf("row = %q, want MENU prefix", row)
	}

	s.SetMenuOpen(false)
	if s.State() != StateReady {
		t.Errorf("State() = %q, want %q", s.State(), StateReady)
	}
}

func TestStatusLine_LastKey(t *testing.T) {
	tests := []struct {
		key     string
		handled bool
		want    string
	}{
		{"Ctrl+N", true, "Ctrl+N | 0 keys"},
		{"Alt+Z", false, "Alt+Z? | 0 keys"},
	}

	for _, tt := range tests {
		s := New()
		s.SetLastKey(tt.key, tt.handled)
		if got := s.formatRight(); got != tt.want {
			t.Errorf("formatRight() with %q = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestStatusLine_Message(t *testing.T) {
	s := New()
	s.SetMessage("reloaded", MessageInfo)
	if s.Message() != "reloaded" {
		t.Errorf("Message() = %q", s.Message())
	}

	b := render(t, s, 40)
	if row := b.Row(0); !strings.Contains(row, "reloaded") {
		t.Errorf("row = %q, want message", row)
	}

	s.ClearMessage()
	if s.Message() != "" {
		t.Errorf("Message() after Clear = %q", s.Message())
	}
}

func TestStatusLine_ErrorStyle(t *testing.T) {
	s := New()
	s.SetMessage("bad", MessageError)
	b := render(t, s, 40)

	// " READY " occupies 0..6, a gap at 7, the message from 8.
	cell := b.Cell(8, 0)
	if cell.Rune != 'b' {
		t.Fatalf("Cell(8) = %q, want 'b'", cell.Rune)
	}
	if !cell.Style.Bold {
		t.Error("error message not bold")
	}
}

func TestStatusLine_Narrow(t *testing.T) {
	s := New()
	s.SetMessage("a very long message that does not fit", MessageInfo)
	s.SetLastKey("Ctrl+Shift+F12", true)

	row := render(t, s, 12).Row(0)
	if len([]rune(row)) > 12 {
		t.Errorf("row = %q overflows width 12", row)
	}
}
