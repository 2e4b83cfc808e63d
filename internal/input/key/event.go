package key

import (
	"fmt"
	"strings"
	"unicode"
)

// Event represents a single key press together with the character it
// produced, if any.
type Event struct {
	// Key identifies the key pressed.
	Key Key

	// Rune is the character for KeyRune events.
	Rune rune

	// Modifiers contains the active modifier keys.
	Modifiers Modifier
}

// NewRuneEvent creates a key event for a character.
func NewRuneEvent(r rune, mods Modifier) Event {
	return Event{Key: KeyRune, Rune: r, Modifiers: mods}
}

// NewSpecialEvent creates a key event for a special key.
func NewSpecialEvent(key Key, mods Modifier) Event {
	return Event{Key: key, Modifiers: mods}
}

// IsZero reports whether e carries no key.
func (e Event) IsZero() bool {
	return e.Key == KeyNone
}

// IsRune returns true if this is a character key event.
func (e Event) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsModified returns true if any modifier is pressed.
// For character events, Shift alone is not considered modified
// (since Shift changes the character itself).
func (e Event) IsModified() bool {
	if e.IsRune() {
		return e.Modifiers&(ModCtrl|ModAlt|ModMeta) != 0
	}
	return e.Modifiers != ModNone
}

// IsPrintable reports whether the event produces a printable character
// that belongs in the text: a rune event with no command modifier.
func (e Event) IsPrintable() bool {
	return e.IsRune() && !e.IsModified() && unicode.IsPrint(e.Rune)
}

// Normalize returns the form used for comparisons and keymap lookups:
// Shift is dropped from character events and Ctrl/Alt/Meta characters are
// lowercased, so "Ctrl+S" and a terminal's Ctrl+s compare equal.
func (e Event) Normalize() Event {
	if e.Key != KeyRune {
		return e
	}
	n := e
	n.Modifiers = n.Modifiers.Without(ModShift)
	if n.IsModified() {
		n.Rune = unicode.ToLower(n.Rune)
	}
	return n
}

// Equals returns true if two events represent the same key press.
func (e Event) Equals(other Event) bool {
	return e.Normalize() == other.Normalize()
}

// Spec returns the canonical Vim-style specification of the event.
// Examples: "a", "A", "<Space>", "<C-s>", "<CR>", "<C-Home>", "<S-Up>".
func (e Event) Spec() string {
	e = e.Normalize()

	if e.IsRune() && !e.IsModified() {
		switch e.Rune {
		case ' ':
			return "<Space>"
		case '<':
			return "<lt>"
		}
		return string(e.Rune)
	}

	var parts []string
	if e.Modifiers.HasCtrl() {
		parts = append(parts, "C")
	}
	if e.Modifiers.HasAlt() {
		parts = append(parts, "A")
	}
	if e.Modifiers.HasMeta() {
		parts = append(parts, "D")
	}
	if e.Modifiers.HasShift() {
		parts = append(parts, "S")
	}

	var name string
	switch e.Key {
	case KeyRune:
		if e.Rune == ' ' {
			name = "Space"
		} else {
			name = string(e.Rune)
		}
	case KeyEscape:
		name = "Esc"
	case KeyEnter:
		name = "CR"
	case KeyBackspace:
		name = "BS"
	case KeyDelete:
		name = "Del"
	default:
		name = e.Key.String()
	}
	parts = append(parts, name)

	return "<" + strings.Join(parts, "-") + ">"
}

// String returns a readable representation such as "Ctrl+S" or "a".
func (e Event) String() string {
	var name string
	switch {
	case e.IsRune() && e.Rune == ' ':
		name = "Space"
	case e.IsRune():
		name = string(e.Rune)
	default:
		name = e.Key.String()
	}

	mods := e.Modifiers
	if e.IsRune() {
		mods = mods.Without(ModShift)
	}
	if mods == ModNone {
		return name
	}
	return mods.String() + "+" + name
}

// GoString implements fmt.GoStringer for debugging.
func (e Event) GoString() string {
	return fmt.Sprintf("Event{Key: %s, Rune: %q, Modifiers: %s}",
		e.Key.String(), e.Rune, e.Modifiers.String())
}
