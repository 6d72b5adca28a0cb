package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dshills/accelmenu/internal/accel"
)

const sampleConfig = `
bindings_file = "keys.json"

[log]
level = "debug"

[theme]
background = "#202020"
selected_background = "#4060a0"

[[menu]]
label = "&File"

  [[menu.items]]
  label = "&New"
  accelerator = "CommandOrControl+N"
  action = "file.new"

  [[menu.items]]
  separator = true

  [[menu.items]]
  label = "&Recent"

    [[menu.items.items]]
    label = "&1 notes.txt"
    lua = "log('open notes')"

[[menu]]
label = "&Edit"

  [[menu.items]]
  label = "&Wrap"
  checkable = true
  checked = true
  action = "view.wrap"

[[binding]]
keys = "shift+a | ctrl+a"
action = "select.all"
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "accelmenu.toml", sampleConfig)
	writeFile(t, dir, "keys.json", `[{"key": "f5", "command": "app.status"}]`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Path() != path {
		t.Errorf("Path() = %q, want %q", cfg.Path(), path)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
	if cfg.Theme.Background != "#202020" {
		t.Errorf("Theme.Background = %q, want #202020", cfg.Theme.Background)
	}
	if len(cfg.Menus) != 2 {
		t.Fatalf("len(Menus) = %d, want 2", len(cfg.Menus))
	}

	file := cfg.Menus[0]
	if file.Label != "&File" || !file.IsSubmenu() || len(file.Items) != 3 {
		t.Fatalf("Menus[0] = %+v", file)
	}
	if file.Items[0].Accelerator != "CommandOrControl+N" || file.Items[0].Action != "file.new" {
		t.Errorf("Menus[0].Items[0] = %+v", file.Items[0])
	}
	if !file.Items[1].Separator {
		t.Errorf("Menus[0].Items[1].Separator = false, want true")
	}
	recent := file.Items[2]
	if len(recent.Items) != 1 || recent.Items[0].Lua != "log('open notes')" {
		t.Errorf("nested submenu = %+v", recent)
	}
	if wrap := cfg.Menus[1].Items[0]; !wrap.Checkable || !wrap.Checked {
		t.Errorf("Menus[1].Items[0] = %+v, want checkable and checked", wrap)
	}

	want := []BindingConfig{
		{Keys: "shift+a | ctrl+a", Action: "select.all"},
		{Keys: "f5", Action: "app.status"},
	}
	if len(cfg.Bindings) != len(want) {
		t.Fatalf("Bindings = %+v, want %+v", cfg.Bindings, want)
	}
	for i := range want {
		if cfg.Bindings[i] != want[i] {
			t.Errorf("Bindings[%d] = %+v, want %+v", i, cfg.Bindings[i], want[i])
		}
	}
}

func TestLoad_Missing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(cfg.Menus) == 0 {
		t.Error("Load() of a missing file returned no default menus")
	}
	if cfg.Path() != "" {
		t.Errorf("Path() = %q, want empty", cfg.Path())
	}
}

func TestDefault_Valid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() = %v", err)
	}
}

func TestLoad_ParseError(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "bad.toml", "[log]\nlevel = \n")

	_, err := Load(path)
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("Load() error = %v, want *ParseError", err)
	}
	if perr.Path != path {
		t.Errorf("ParseError.Path = %q, want %q", perr.Path, path)
	}
	if perr.Line == 0 {
		t.Error("ParseError.Line = 0, want the decoder position")
	}
}

func TestLoad_MissingBindingsFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "accelmenu.toml", `bindings_file = "nope.json"`)

	if _, err := Load(path); err == nil {
		t.Error("Load() with a missing bindings file succeeded")
	}
}

func TestParseError_Error(t *testing.T) {
	tests := []struct {
		err  *ParseError
		want string
	}{
		{&ParseError{Path: "a.toml", Line: 3, Column: 7, Message: "bad"}, "parse error in a.toml at line 3, column 7: bad"},
		{&ParseError{Path: "a.toml", Line: 3, Message: "bad"}, "parse error in a.toml at line 3: bad"},
		{&ParseError{Path: "a.toml", Message: "bad"}, "parse error in a.toml: bad"},
	}
	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "ok",
			cfg: Config{
				Bindings: []BindingConfig{{Keys: "ctrl+a", Action: "x"}},
				Menus:    []MenuConfig{{Label: "&File", Items: []MenuConfig{{Label: "&New", Accelerator: "ctrl+n", Action: "x"}}}},
			},
		},
		{
			name:    "empty keys",
			cfg:     Config{Bindings: []BindingConfig{{Keys: "", Action: "x"}}},
			wantErr: true,
		},
		{
			name:    "empty alternative",
			cfg:     Config{Bindings: []BindingConfig{{Keys: "ctrl+a |", Action: "x"}}},
			wantErr: true,
		},
		{
			name:    "no action",
			cfg:     Config{Bindings: []BindingConfig{{Keys: "ctrl+a"}}},
			wantErr: true,
		},
		{
			name:    "action and lua",
			cfg:     Config{Bindings: []BindingConfig{{Keys: "ctrl+a", Action: "x", Lua: "y"}}},
			wantErr: true,
		},
		{
			name:    "separator in bar",
			cfg:     Config{Menus: []MenuConfig{{Separator: true}}},
			wantErr: true,
		},
		{
			name:    "missing label",
			cfg:     Config{Menus: []MenuConfig{{Label: "&File", Items: []MenuConfig{{Action: "x"}}}}},
			wantErr: true,
		},
		{
			name:    "bad accelerator",
			cfg:     Config{Menus: []MenuConfig{{Label: "&File", Items: []MenuConfig{{Label: "x", Accelerator: "ctrl+"}}}}},
			wantErr: true,
		},
		{
			name: "submenu with action",
			cfg: Config{Menus: []MenuConfig{{Label: "&File", Items: []MenuConfig{
				{Label: "x", Action: "y", Items: []MenuConfig{{Label: "z"}}},
			}}}},
			wantErr: true,
		},
		{
			name:    "bad color",
			cfg:     Config{Theme: ThemeConfig{Foreground: "blue"}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestValidate_WrapsKeySpecError(t *testing.T) {
	cfg := Config{Bindings: []BindingConfig{{Keys: "+a", Action: "x"}}}
	err := cfg.Validate()
	if !errors.Is(err, accel.ErrInvalidKeySpec) {
		t.Errorf("Validate() error = %v, want ErrInvalidKeySpec in chain", err)
	}
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Path != "binding[0]" {
		t.Errorf("Validate() error = %v, want ValidationError at binding[0]", err)
	}
}

func TestAllBindings(t *testing.T) {
	cfg := Default()
	cfg.Bindings = []BindingConfig{{Keys: "ctrl+k", Lua: "log('k')"}}

	got := cfg.AllBindings()
	want := []BindingConfig{
		{Keys: "CommandOrControl+G", Action: "app.status"},
		{Keys: "CommandOrControl+R", Action: "app.reload"},
		{Keys: "CommandOrControl+Q", Action: "app.quit"},
		{Keys: "F10", Action: "menu.open"},
		{Keys: "F1", Action: "app.status"},
		{Keys: "ctrl+k", Lua: "log('k')"},
	}
	if len(got) != len(want) {
		t.Fatalf("AllBindings() = %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("AllBindings()[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}
