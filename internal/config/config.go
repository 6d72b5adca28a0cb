package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/accelmenu/internal/accel"
)

// Config is the decoded configuration file.
type Config struct {
	Log      LogConfig       `toml:"log"`
	Theme    ThemeConfig     `toml:"theme"`
	Menus    []MenuConfig    `toml:"menu"`
	Bindings []BindingConfig `toml:"binding"`

	// BindingsFile names a JSON keybindings file whose entries are
	// appended to Bindings. Relative paths resolve against the
	// directory of the configuration file.
	BindingsFile string `toml:"bindings_file"`

	// path is the file the configuration was loaded from, if any.
	path string
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// ThemeConfig holds hex colors ("#rrggbb") for the menu view.
// Empty fields keep the default theme.
type ThemeConfig struct {
	Foreground         string `toml:"foreground"`
	Background         string `toml:"background"`
	SelectedForeground string `toml:"selected_foreground"`
	SelectedBackground string `toml:"selected_background"`
	DisabledForeground string `toml:"disabled_foreground"`
}

// MenuConfig describes one menu entry. Top-level entries form the menu
// bar; Items turns an entry into a submenu.
type MenuConfig struct {
	Label       string       `toml:"label"`
	Accelerator string       `toml:"accelerator"`
	Action      string       `toml:"action"`
	Lua         string       `toml:"lua"`
	Separator   bool         `toml:"separator"`
	Disabled    bool         `toml:"disabled"`
	Checkable   bool         `toml:"checkable"`
	Checked     bool         `toml:"checked"`
	Items       []MenuConfig `toml:"items"`
}

// IsSubmenu reports whether the entry opens a submenu.
func (m MenuConfig) IsSubmenu() bool {
	return len(m.Items) > 0
}

// BindingConfig binds a key spec to a named action or a Lua chunk.
type BindingConfig struct {
	Keys   string `toml:"keys"`
	Action string `toml:"action"`
	Lua    string `toml:"lua"`
}

// Path returns the file the configuration was loaded from, or "" for
// defaults and in-memory configurations.
func (c *Config) Path() string {
	return c.path
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Log: LogConfig{Level: "info"},
		Menus: []MenuConfig{
			{
				Label: "&File",
				Items: []MenuConfig{
					{Label: "&Status", Accelerator: "CommandOrControl+G", Action: "app.status"},
					{Label: "&Reload Config", Accelerator: "CommandOrControl+R", Action: "app.reload"},
					{Separator: true},
					{Label: "&Quit", Accelerator: "CommandOrControl+Q", Action: "app.quit"},
				},
			},
			{
				Label: "&View",
				Items: []MenuConfig{
					{Label: "&Word Wrap", Checkable: true, Action: "app.status"},
					{Label: "&Menu Bar", Accelerator: "F10", Action: "menu.open"},
				},
			},
			{
				Label: "&Help",
				Items: []MenuConfig{
					{Label: "&Keys", Accelerator: "F1", Action: "app.status"},
				},
			},
		},
	}
}

// Load reads the configuration at path. A missing file yields Default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	cfg, err := Parse(path, data)
	if err != nil {
		return nil, err
	}
	cfg.path = path

	if cfg.BindingsFile != "" {
		bindingsPath := cfg.BindingsFile
		if !filepath.IsAbs(bindingsPath) {
			bindingsPath = filepath.Join(filepath.Dir(path), bindingsPath)
		}
		imported, err := LoadBindingsJSON(bindingsPath)
		if err != nil {
			return nil, err
		}
		cfg.Bindings = append(cfg.Bindings, imported...)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes TOML data. source names the data in errors.
// The result is not validated.
func Parse(source string, data []byte) (*Config, error) {
	cfg := &Config{}
	if err := toml.Unmarshal(data, cfg); err != nil {
		perr := &ParseError{
			Path:    source,
			Message: err.Error(),
			Err:     err,
		}
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			perr.Line, perr.Column = derr.Position()
		}
		return nil, perr
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	return cfg, nil
}

// Validate checks key specs and entry shapes. The returned error joins
// one *ValidationError per problem and matches ErrInvalidConfig.
func (c *Config) Validate() error {
	var errs []error

	for i, b := range c.Bindings {
		path := fmt.Sprintf("binding[%d]", i)
		if _, err := accel.Parse(b.Keys); err != nil {
			errs = append(errs, &ValidationError{Path: path, Message: "bad keys", Err: err})
		}
		if b.Action == "" && b.Lua == "" {
			errs = append(errs, &ValidationError{Path: path, Message: "needs an action or lua chunk"})
		}
		if b.Action != "" && b.Lua != "" {
			errs = append(errs, &ValidationError{Path: path, Message: "action and lua are exclusive"})
		}
	}

	for i, m := range c.Menus {
		path := fmt.Sprintf("menu[%d]", i)
		if m.Separator {
			errs = append(errs, &ValidationError{Path: path, Message: "separator in menu bar"})
			continue
		}
		errs = append(errs, validateMenu(path, m)...)
	}

	if err := c.validateTheme(); err != nil {
		errs = append(errs, err)
	}

	if len(errs) == 0 {
		return nil
	}
	return errors.Join(errs...)
}

func validateMenu(path string, m MenuConfig) []error {
	var errs []error
	if m.Separator {
		if m.Label != "" || m.IsSubmenu() || m.Action != "" || m.Lua != "" {
			errs = append(errs, &ValidationError{Path: path, Message: "separator carries other fields"})
		}
		return errs
	}
	if strings.TrimSpace(m.Label) == "" {
		errs = append(errs, &ValidationError{Path: path, Message: "missing label"})
	}
	if m.Accelerator != "" {
		if _, err := accel.Parse(m.Accelerator); err != nil {
			errs = append(errs, &ValidationError{Path: path, Message: "bad accelerator", Err: err})
		}
	}
	if m.Action != "" && m.Lua != "" {
		errs = append(errs, &ValidationError{Path: path, Message: "action and lua are exclusive"})
	}
	if m.IsSubmenu() && (m.Action != "" || m.Lua != "") {
		errs = append(errs, &ValidationError{Path: path, Message: "submenu cannot have an action"})
	}
	for i, child := range m.Items {
		errs = append(errs, validateMenu(fmt.Sprintf("%s.items[%d]", path, i), child)...)
	}
	return errs
}

func (c *Config) validateTheme() error {
	fields := []struct {
		name  string
		value string
	}{
		{"foreground", c.Theme.Foreground},
		{"background", c.Theme.Background},
		{"selected_foreground", c.Theme.SelectedForeground},
		{"selected_background", c.Theme.SelectedBackground},
		{"disabled_foreground", c.Theme.DisabledForeground},
	}
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		if _, err := colorful.Hex(f.value); err != nil {
			return &ValidationError{Path: "theme." + f.name, Message: fmt.Sprintf("bad color %q", f.value), Err: err}
		}
	}
	return nil
}

// AllBindings returns the accelerators of menu items as bindings,
// in menu order, followed by Bindings.
func (c *Config) AllBindings() []BindingConfig {
	var out []BindingConfig
	var walk func(entries []MenuConfig)
	walk = func(entries []MenuConfig) {
		for _, m := range entries {
			if m.Accelerator != "" && (m.Action != "" || m.Lua != "") {
				out = append(out, BindingConfig{Keys: m.Accelerator, Action: m.Action, Lua: m.Lua})
			}
			walk(m.Items)
		}
	}
	walk(c.Menus)
	return append(out, c.Bindings...)
}
