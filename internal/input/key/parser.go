package key

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Parse errors
var (
	ErrEmptySpec   = errors.New("empty key specification")
	ErrInvalidSpec = errors.New("invalid key specification")
)

// Parse parses a key specification string into an Event.
//
// Supported formats:
//   - Single character: "a", "A", "1", "@"
//   - Special keys: "Enter", "Escape", "Tab", "Backspace", "Space"
//   - With modifiers: "Ctrl+S", "Alt+F4", "Ctrl+Shift+Home"
//   - Vim-style: "<C-s>", "<A-f>", "<C-Home>", "<CR>", "<Esc>"
//
// A lone "+" or "-" is the character itself.
func Parse(spec string) (Event, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Event{}, ErrEmptySpec
	}

	if len(spec) > 2 && strings.HasPrefix(spec, "<") && strings.HasSuffix(spec, ">") {
		return parseParts(strings.Split(spec[1:len(spec)-1], "-"), spec)
	}

	if len([]rune(spec)) > 1 && strings.Contains(spec, "+") {
		return parseParts(splitPlus(spec), spec)
	}

	return parseKey(spec, ModNone)
}

// splitPlus splits "Ctrl++" into ["Ctrl", "+"].
func splitPlus(spec string) []string {
	if strings.HasSuffix(spec, "++") {
		parts := strings.Split(strings.TrimSuffix(spec, "++"), "+")
		return append(parts, "+")
	}
	return strings.Split(spec, "+")
}

// parseParts treats every element but the last as a modifier name.
func parseParts(parts []string, spec string) (Event, error) {
	if len(parts) == 0 {
		return Event{}, fmt.Errorf("%w: %q", ErrInvalidSpec, spec)
	}

	var mods Modifier
	for _, p := range parts[:len(parts)-1] {
		mod := ModifierFromName(p)
		if mod == ModNone {
			return Event{}, fmt.Errorf("%w: unknown modifier %q in %q", ErrInvalidSpec, p, spec)
		}
		mods = mods.With(mod)
	}

	return parseKey(parts[len(parts)-1], mods)
}

// parseKey parses the key part of a specification.
func parseKey(keyPart string, mods Modifier) (Event, error) {
	keyPart = strings.TrimSpace(keyPart)
	if keyPart == "" {
		return Event{}, ErrInvalidSpec
	}

	switch strings.ToLower(keyPart) {
	case "space":
		return NewRuneEvent(' ', mods), nil
	case "lt":
		return NewRuneEvent('<', mods), nil
	case "gt":
		return NewRuneEvent('>', mods), nil
	case "bar":
		return NewRuneEvent('|', mods), nil
	case "bslash":
		return NewRuneEvent('\\', mods), nil
	}

	if k := KeyFromName(keyPart); k != KeyNone {
		return NewSpecialEvent(k, mods), nil
	}

	runes := []rune(keyPart)
	if len(runes) != 1 {
		return Event{}, fmt.Errorf("%w: unknown key %q", ErrInvalidSpec, keyPart)
	}

	r := runes[0]
	if unicode.IsUpper(r) && mods == ModNone {
		mods = ModShift
	}
	return NewRuneEvent(r, mods).Normalize(), nil
}

// MustParse parses a key specification and panics on error.
// Use only for known-valid specs in initialization code.
func MustParse(spec string) Event {
	event, err := Parse(spec)
	if err != nil {
		panic("invalid key specification: " + spec + ": " + err.Error())
	}
	return event
}

// NormalizeSpec parses and re-formats a key specification to its canonical form.
func NormalizeSpec(spec string) (string, error) {
	event, err := Parse(spec)
	if err != nil {
		return "", err
	}
	return event.Spec(), nil
}
