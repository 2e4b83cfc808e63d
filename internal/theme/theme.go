// Package theme provides the built-in color themes.
//
// Themes are immutable. Overrides produce a new Theme and never modify
// the built-in table.
package theme

import (
	"errors"
	"fmt"
	"slices"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Errors returned by theme lookups.
var (
	ErrUnknownTheme = errors.New("theme: unknown theme")
	ErrUnknownSlot  = errors.New("theme: unknown color slot")
	ErrInvalidColor = errors.New("theme: invalid color")
)

// Slot names a color in a theme.
type Slot string

const (
	Background0 Slot = "background0" // text area
	Background1 Slot = "background1" // line-number bar
	Foreground0 Slot = "foreground0" // text and caret
	Foreground1 Slot = "foreground1" // line numbers
	Ident       Slot = "ident"
	Keyword     Slot = "keyword"
	Type        Slot = "type"
	String      Slot = "string"
	Comment     Slot = "comment"
)

// Slots lists every slot in display order.
var Slots = []Slot{
	Background0, Background1,
	Foreground0, Foreground1,
	Ident, Keyword, Type, String, Comment,
}

// DefaultName is the theme used when none is configured.
const DefaultName = "default"

// builtin is keyed by theme name. Every theme defines every slot.
var builtin = map[string]map[Slot]string{
	DefaultName: {
		Background0: "#2f373e",
		Background1: "#2f373e",
		Foreground0: "#c7c7c7",
		Foreground1: "#c7c7c7",
		Ident:       "#0f0f0f",
		Keyword:     "#0f0f0f",
		Type:        "#0f0f0f",
		String:      "#0f0f0f",
		Comment:     "#0f0f0f",
	},
}

// Theme is a named, immutable palette.
type Theme struct {
	name   string
	colors map[Slot]colorful.Color
}

// Names returns the built-in theme names, sorted.
func Names() []string {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Lookup returns the built-in theme with the given name.
func Lookup(name string) (*Theme, error) {
	table, ok := builtin[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	}
	t := &Theme{name: name, colors: make(map[Slot]colorful.Color, len(table))}
	for slot, hex := range table {
		c, err := colorful.Hex(hex)
		if err != nil {
			panic(fmt.Sprintf("theme: built-in %s.%s: %v", name, slot, err))
		}
		t.colors[slot] = c
	}
	return t, nil
}

// Default returns the default theme.
func Default() *Theme {
	t, err := Lookup(DefaultName)
	if err != nil {
		panic(err)
	}
	return t
}

// Load looks up name and applies overrides in one step.
func Load(name string, overrides map[string]string) (*Theme, error) {
	t, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return t.WithOverrides(overrides)
}

// Name returns the theme name.
func (t *Theme) Name() string {
	return t.name
}

// Color returns the color for slot. Unknown slots are black.
func (t *Theme) Color(slot Slot) colorful.Color {
	return t.colors[slot]
}

// Hex returns the color for slot as "#rrggbb".
func (t *Theme) Hex(slot Slot) string {
	return t.Color(slot).Hex()
}

// TCell returns the color for slot as a true-color tcell.Color.
func (t *Theme) TCell(slot Slot) tcell.Color {
	r, g, b := t.Color(slot).RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// WithOverrides returns a copy of the theme with the given slots replaced.
// Keys are slot names and values are "#rgb" or "#rrggbb" colors.
func (t *Theme) WithOverrides(overrides map[string]string) (*Theme, error) {
	out := &Theme{name: t.name, colors: make(map[Slot]colorful.Color, len(t.colors))}
	for slot, c := range t.colors {
		out.colors[slot] = c
	}
	for name, hex := range overrides {
		slot := Slot(name)
		if _, ok := t.colors[slot]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownSlot, name)
		}
		c, err := colorful.Hex(hex)
		if err != nil {
			return nil, fmt.Errorf("%w: %s = %q", ErrInvalidColor, name, hex)
		}
		out.colors[slot] = c
	}
	return out, nil
}

// Blend returns the color for slot mixed toward other by t in [0, 1],
// in CIE L*a*b* space.
func (t *Theme) Blend(slot, other Slot, amount float64) colorful.Color {
	return t.Color(slot).BlendLab(t.Color(other), amount).Clamped()
}
