package key

import (
	"reflect"
	"testing"
)

func TestModifierHas(t *testing.T) {
	tests := []struct {
		mod    Modifier
		check  Modifier
		expect bool
	}{
		{ModNone, ModCtrl, false},
		{ModCtrl, ModCtrl, true},
		{ModCtrl | ModAlt, ModCtrl, true},
		{ModCtrl | ModAlt, ModAlt, true},
		{ModCtrl | ModAlt, ModShift, false},
		{ModCtrl | ModAlt | ModShift | ModMeta, ModMeta, true},
	}

	for _, tt := range tests {
		if got := tt.mod.Has(tt.check); got != tt.expect {
			t.Errorf("Modifier(%d).Has(%d) = %v, want %v", tt.mod, tt.check, got, tt.expect)
		}
	}
}

func TestModifierWithWithout(t *testing.T) {
	mod := ModNone.With(ModCtrl).With(ModAlt)
	if !mod.HasCtrl() || !mod.HasAlt() {
		t.Errorf("With: got %v, want Alt+Ctrl", mod)
	}

	mod = mod.Without(ModAlt)
	if mod.HasAlt() || !mod.HasCtrl() {
		t.Errorf("Without(ModAlt): got %v, want Ctrl", mod)
	}
	if mod.Without(ModCtrl) != ModNone || !mod.Without(ModCtrl).IsEmpty() {
		t.Error("removing the last modifier should leave ModNone")
	}
}

func TestModifierTokens(t *testing.T) {
	tests := []struct {
		mod  Modifier
		want []string
	}{
		{ModNone, nil},
		{ModShift, []string{"shift"}},
		{ModShift | ModCtrl, []string{"ctrl", "shift"}},
		{ModShift | ModMeta | ModCtrl | ModAlt, []string{"alt", "ctrl", "meta", "shift"}},
	}

	for _, tt := range tests {
		if got := tt.mod.Tokens(); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Modifier(%d).Tokens() = %v, want %v", tt.mod, got, tt.want)
		}
	}
}

func TestModifierString(t *testing.T) {
	tests := []struct {
		mod  Modifier
		want string
	}{
		{ModNone, ""},
		{ModCtrl, "Ctrl"},
		{ModAlt | ModShift, "Alt+Shift"},
		{ModCtrl | ModMeta, "Ctrl+Meta"},
	}

	for _, tt := range tests {
		if got := tt.mod.String(); got != tt.want {
			t.Errorf("Modifier(%d).String() = %q, want %q", tt.mod, got, tt.want)
		}
	}
}

func TestModifierFromName(t *testing.T) {
	tests := []struct {
		name string
		want Modifier
	}{
		{"alt", ModAlt},
		{"CTRL", ModCtrl},
		{"meta", ModMeta},
		{"Shift", ModShift},
		{"hyper", ModNone},
	}

	for _, tt := range tests {
		if got := ModifierFromName(tt.name); got != tt.want {
			t.Errorf("ModifierFromName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
