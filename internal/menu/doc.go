// Package menu models the application menu bar and its cascading submenus.
//
// Item labels mark their mnemonic letter with "&" ("&File", "Save &As...");
// "&&" stands for a literal ampersand. The ApplicationMenu keeps the chain of
// open dropdowns and the keyboard selection, and rebinds the registry's menu
// table whenever focus moves: while idle only the Alt mnemonics of the bar
// are bound, while a dropdown is open its bare mnemonics and the navigation
// keys are bound as well.
package menu
