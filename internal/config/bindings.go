package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// LoadBindingsJSON reads a JSON keybindings file.
func LoadBindingsJSON(path string) ([]BindingConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading bindings file %s: %w", path, err)
	}
	bindings, err := ImportBindingsJSON(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return bindings, nil
}

// ImportBindingsJSON decodes a keybindings array:
//
//	[{"key": "ctrl+n", "command": "file.new"},
//	 {"key": "f5", "lua": "log('refresh')"}]
//
// "keys" is accepted as an alias of "key" and "action" of "command".
// An entry whose command starts with "-" removes the earlier bindings
// of that command on the same key, as editor keybinding files do.
func ImportBindingsJSON(data []byte) ([]BindingConfig, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%w: malformed JSON", ErrInvalidBindings)
	}
	doc := gjson.ParseBytes(data)
	if !doc.IsArray() {
		return nil, fmt.Errorf("%w: top level is not an array", ErrInvalidBindings)
	}

	var (
		bindings []BindingConfig
		bad      error
	)
	doc.ForEach(func(index, entry gjson.Result) bool {
		if !entry.IsObject() {
			bad = fmt.Errorf("%w: entry %d is not an object", ErrInvalidBindings, index.Int())
			return false
		}
		keys := firstString(entry, "key", "keys")
		if keys == "" {
			bad = fmt.Errorf("%w: entry %d has no key", ErrInvalidBindings, index.Int())
			return false
		}
		command := firstString(entry, "command", "action")
		if removed, ok := strings.CutPrefix(command, "-"); ok {
			bindings = removeBinding(bindings, keys, removed)
			return true
		}
		bindings = append(bindings, BindingConfig{
			Keys:   keys,
			Action: command,
			Lua:    entry.Get("lua").String(),
		})
		return true
	})
	if bad != nil {
		return nil, bad
	}
	return bindings, nil
}

// ExportBindingsJSON encodes bindings as an indented keybindings array.
func ExportBindingsJSON(bindings []BindingConfig) ([]byte, error) {
	out := []byte("[]")
	for i, b := range bindings {
		entry := []byte("{}")
		var err error
		if entry, err = sjson.SetBytes(entry, "key", b.Keys); err != nil {
			return nil, fmt.Errorf("encoding binding %d: %w", i, err)
		}
		if b.Action != "" {
			if entry, err = sjson.SetBytes(entry, "command", b.Action); err != nil {
				return nil, fmt.Errorf("encoding binding %d: %w", i, err)
			}
		}
		if b.Lua != "" {
			if entry, err = sjson.SetBytes(entry, "lua", b.Lua); err != nil {
				return nil, fmt.Errorf("encoding binding %d: %w", i, err)
			}
		}
		if out, err = sjson.SetRawBytes(out, "-1", entry); err != nil {
			return nil, fmt.Errorf("encoding binding %d: %w", i, err)
		}
	}
	return pretty.Pretty(out), nil
}

func firstString(entry gjson.Result, names ...string) string {
	for _, name := range names {
		if v := entry.Get(name); v.Exists() {
			return v.String()
		}
	}
	return ""
}

func removeBinding(bindings []BindingConfig, keys, action string) []BindingConfig {
	out := bindings[:0]
	for _, b := range bindings {
		if b.Keys == keys && b.Action == action {
			continue
		}
		out = append(out, b)
	}
	return out
}
