package accel

import (
	"errors"
	"reflect"
	"testing"
)

func TestNormalizeModifierOrder(t *testing.T) {
	specs := []string{"shift+ctrl+a", "ctrl+shift+a", "SHIFT+Ctrl+A"}
	for _, spec := range specs {
		got := Normalize(spec)
		want := []string{"ctrl+shift+a"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Normalize(%q) = %v, want %v", spec, got, want)
		}
	}
}

func TestNormalizeAllModifiers(t *testing.T) {
	got := Normalize("shift+meta+ctrl+alt+x")
	want := []string{"alt+ctrl+meta+shift+x"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Normalize = %v, want %v", got, want)
	}
}

func TestNormalizeCaseInsensitive(t *testing.T) {
	a := Normalize("Ctrl+Shift+E")
	b := Normalize("ctrl+shift+e")
	if !reflect.DeepEqual(a, b) {
		t.Errorf("Normalize(Ctrl+Shift+E) = %v, Normalize(ctrl+shift+e) = %v", a, b)
	}
}

func TestNormalizeAliases(t *testing.T) {
	want := Normalize("ctrl+n")
	for _, spec := range []string{"CommandOrControl+N", "Command+N", "Control+N"} {
		if got := Normalize(spec); !reflect.DeepEqual(got, want) {
			t.Errorf("Normalize(%q) = %v, want %v", spec, got, want)
		}
	}
}

func TestNormalizePassthrough(t *testing.T) {
	tests := []struct {
		spec string
		want []string
	}{
		{"escape", []string{"escape"}},
		{"Enter", []string{"enter"}},
		{" F5 ", []string{"f5"}},
		{"hyper+k", []string{"hyper+k"}},
	}

	for _, tt := range tests {
		if got := Normalize(tt.spec); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Normalize(%q) = %v, want %v", tt.spec, got, tt.want)
		}
	}
}

func TestNormalizeMultiBinding(t *testing.T) {
	tests := []struct {
		spec string
		want []string
	}{
		{"shift+a | ctrl+a", []string{"shift+a", "ctrl+a"}},
		{"shift+a|ctrl+a", []string{"shift+a", "ctrl+a"}},
		{"ctrl+a | ctrl+a", []string{"ctrl+a", "ctrl+a"}},
		{"ctrl + shift + p | f1", []string{"ctrl+shift+p", "f1"}},
	}

	for _, tt := range tests {
		if got := Normalize(tt.spec); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Normalize(%q) = %v, want %v", tt.spec, got, tt.want)
		}
	}
}

func TestNormalizeStableForEqualInitials(t *testing.T) {
	// Unknown modifiers sharing an initial keep their relative order.
	got := Normalize("super+shift+alt+k")
	want := []string{"alt+super+shift+k"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Normalize = %v, want %v", got, want)
	}
}

func TestNormalizeDegenerate(t *testing.T) {
	tests := []struct {
		spec string
		want []string
	}{
		{"", []string{""}},
		{"ctrl+", []string{"ctrl+"}},
	}

	for _, tt := range tests {
		if got := Normalize(tt.spec); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Normalize(%q) = %v, want %v", tt.spec, got, tt.want)
		}
	}
}

func TestPrettify(t *testing.T) {
	tests := []struct {
		spec string
		want string
	}{
		{"ctrl+shift+e", "Ctrl+Shift+E"},
		{"shift+a|ctrl+a", "Shift+A or Ctrl+A"},
		{"shift+a | ctrl+a", "Shift+A or Ctrl+A"},
		{"CommandOrControl+N", "Ctrl+N"},
		{"escape", "Escape"},
		{"alt+f4", "Alt+F4"},
	}

	for _, tt := range tests {
		if got := Prettify(tt.spec); got != tt.want {
			t.Errorf("Prettify(%q) = %q, want %q", tt.spec, got, tt.want)
		}
	}
}

func TestParse(t *testing.T) {
	keys, err := Parse("Shift+Ctrl+S | F2")
	if err != nil {
		t.Fatalf("Parse error = %v", err)
	}
	want := []string{"ctrl+shift+s", "f2"}
	if !reflect.DeepEqual(keys, want) {
		t.Errorf("Parse = %v, want %v", keys, want)
	}
}

func TestParseInvalid(t *testing.T) {
	specs := []string{
		"",
		"   ",
		"ctrl+",
		"ctrl+a |",
		"|ctrl+a",
		"ctrl++a",
		"+a",
	}

	for _, spec := range specs {
		_, err := Parse(spec)
		if err == nil {
			t.Errorf("Parse(%q) should fail", spec)
			continue
		}
		if !errors.Is(err, ErrInvalidKeySpec) {
			t.Errorf("Parse(%q) error = %v, want ErrInvalidKeySpec", spec, err)
		}
		var specErr *InvalidKeySpecError
		if !errors.As(err, &specErr) || specErr.Spec != spec {
			t.Errorf("Parse(%q) error should carry the key spec, got %v", spec, err)
		}
	}
}
