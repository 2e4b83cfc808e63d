// Package keymap maps key events to action names.
//
// A Keymap is a named, prioritized list of bindings. The Registry layers
// keymaps on top of each other: the built-in defaults at the bottom, then
// the user's configuration, then bindings added by plugins. Lookup returns
// the binding from the highest-priority keymap that binds the key; within
// equal priority the most recently registered keymap wins.
//
// # Key Specifications
//
// Bindings name a single key press in any format accepted by key.Parse:
//
//	"a"        - Single character
//	"<C-s>"    - Ctrl+S (angle bracket notation)
//	"Ctrl+S"   - Ctrl+S (readable notation)
//	"<C-Home>" - Ctrl+Home
//	"<BS>"     - Backspace
//
// Specifications are normalized when a keymap is registered, so "Ctrl+S",
// "<C-s>" and "<C-S>" all bind the same key.
//
// # Usage
//
//	registry := keymap.NewRegistry()
//	if err := registry.Register(keymap.Default()); err != nil {
//	    return err
//	}
//
//	if b, ok := registry.Lookup(ev); ok {
//	    // dispatch b.Action
//	}
package keymap
