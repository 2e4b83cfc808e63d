package keymap

import (
	"github.com/dshills/scribe/internal/input/key"
)

// Binding represents a single key-to-action mapping.
type Binding struct {
	// Keys is the key that triggers this binding.
	// Formats: "j", "<C-s>", "Ctrl+S", "<C-Home>"
	Keys string `toml:"keys" yaml:"keys"`

	// Action is the command to execute.
	// Examples: "cursor.moveDown", "file.save", "editor.newline"
	Action string `toml:"action" yaml:"action"`

	// Arg is passed to fire-once actions that take one, such as the path
	// for "file.open".
	Arg string `toml:"arg,omitempty" yaml:"arg,omitempty"`

	// Description provides documentation for the binding.
	Description string `toml:"description,omitempty" yaml:"description,omitempty"`

	// Category groups bindings for display purposes.
	Category string `toml:"category,omitempty" yaml:"category,omitempty"`
}

// NewBinding creates a new binding with the given keys and action.
func NewBinding(keys, action string) Binding {
	return Binding{
		Keys:   keys,
		Action: action,
	}
}

// WithDescription sets the description for this binding.
func (b Binding) WithDescription(desc string) Binding {
	b.Description = desc
	return b
}

// WithArg sets the argument passed to the action.
func (b Binding) WithArg(arg string) Binding {
	b.Arg = arg
	return b
}

// WithCategory sets the category for this binding.
func (b Binding) WithCategory(category string) Binding {
	b.Category = category
	return b
}

// ParsedBinding is a binding with its key parsed and normalized.
type ParsedBinding struct {
	Binding
	Event key.Event
	Spec  string
}

// Match checks if this binding is triggered by ev.
func (pb *ParsedBinding) Match(ev key.Event) bool {
	if pb == nil {
		return false
	}
	return pb.Event.Equals(ev)
}

// BindingCategory represents a category of bindings for display.
type BindingCategory struct {
	Name     string
	Bindings []Binding
}

// GroupByCategory groups bindings by their category, keeping first-seen order.
func GroupByCategory(bindings []Binding) []BindingCategory {
	categoryMap := make(map[string][]Binding)
	order := make([]string, 0)

	for _, b := range bindings {
		cat := b.Category
		if cat == "" {
			cat = "Other"
		}
		if _, exists := categoryMap[cat]; !exists {
			order = append(order, cat)
		}
		categoryMap[cat] = append(categoryMap[cat], b)
	}

	result := make([]BindingCategory, 0, len(order))
	for _, name := range order {
		result = append(result, BindingCategory{
			Name:     name,
			Bindings: categoryMap[name],
		})
	}
	return result
}
