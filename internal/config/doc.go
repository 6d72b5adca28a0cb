// Package config loads the menu and shortcut configuration.
//
// Configuration is a TOML file:
//
//	[log]
//	level = "debug"
//
//	[theme]
//	background = "#202020"
//
//	[[menu]]
//	label = "&File"
//
//	  [[menu.items]]
//	  label = "&New"
//	  accelerator = "CommandOrControl+N"
//	  action = "file.new"
//
//	[[binding]]
//	keys = "shift+a | ctrl+a"
//	action = "select.all"
//
// Bindings may also be imported from a JSON keybindings file
// ([{"key": "ctrl+n", "command": "file.new"}]) named by bindings_file.
// A missing configuration file is not an error; Default is used instead.
package config
