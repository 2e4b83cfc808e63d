// Package key provides key event types and parsing for the input system.
//
// This package defines the fundamental types for representing keyboard input:
//
//   - Key: Identifies a keyboard key (special keys, function keys, or runes)
//   - Modifier: Represents modifier keys (Ctrl, Alt, Shift, Meta)
//   - Event: A single key press with its character payload and modifiers
//
// # Key Specifications
//
// Key specifications can be written in multiple formats:
//
//   - Simple keys: "a", "A", "1", "Enter", "Escape"
//   - With modifiers: "Ctrl+S", "Alt+F4", "Ctrl+Shift+Home"
//   - Vim-style: "<C-s>", "<A-f>", "<C-Home>", "<CR>", "<Esc>"
//
// Parse turns a specification into an Event; Event.Spec formats an event
// back into the canonical Vim-style form used as a keymap lookup key.
package key
