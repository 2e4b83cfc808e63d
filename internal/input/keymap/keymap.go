package keymap

import (
	"fmt"

	"github.com/dshills/scribe/internal/input/key"
)

// Well-known keymap sources and their priorities.
const (
	SourceDefault = "default"
	SourceUser    = "user"
	SourcePlugin  = "plugin"

	PriorityDefault = 0
	PriorityUser    = 10
	PriorityPlugin  = 20
)

// Keymap holds a set of key bindings.
type Keymap struct {
	// Name is the keymap identifier.
	Name string

	// Bindings are the key-to-action mappings. When two bindings name the
	// same key, the later one wins.
	Bindings []Binding

	// Priority determines precedence when several keymaps bind a key.
	// Higher priority wins. Default is 0.
	Priority int

	// Source indicates where this keymap was defined.
	// Examples: "default", "user", "plugin"
	Source string
}

// NewKeymap creates a new keymap with the given name.
func NewKeymap(name string) *Keymap {
	return &Keymap{
		Name:     name,
		Bindings: make([]Binding, 0),
	}
}

// WithPriority sets the priority for this keymap.
func (k *Keymap) WithPriority(priority int) *Keymap {
	k.Priority = priority
	return k
}

// WithSource sets the source for this keymap.
func (k *Keymap) WithSource(source string) *Keymap {
	k.Source = source
	return k
}

// Add adds a binding to this keymap.
func (k *Keymap) Add(keys, action string) *Keymap {
	k.Bindings = append(k.Bindings, Binding{
		Keys:   keys,
		Action: action,
	})
	return k
}

// AddBinding adds a fully configured binding to this keymap.
func (k *Keymap) AddBinding(binding Binding) *Keymap {
	k.Bindings = append(k.Bindings, binding)
	return k
}

// Validate checks that all bindings in the keymap are valid.
func (k *Keymap) Validate() error {
	for i, b := range k.Bindings {
		if b.Keys == "" {
			return fmt.Errorf("binding %d: empty keys", i)
		}
		if b.Action == "" {
			return fmt.Errorf("binding %d (%s): empty action", i, b.Keys)
		}
		if _, err := key.Parse(b.Keys); err != nil {
			return fmt.Errorf("binding %d (%s): %w", i, b.Keys, err)
		}
	}
	return nil
}

// ParsedKeymap is a keymap indexed by canonical key specification.
type ParsedKeymap struct {
	*Keymap
	ParsedBindings []ParsedBinding

	index map[string]int
	order uint64
}

// Parse parses all bindings in the keymap.
func (k *Keymap) Parse() (*ParsedKeymap, error) {
	parsed := &ParsedKeymap{
		Keymap:         k,
		ParsedBindings: make([]ParsedBinding, 0, len(k.Bindings)),
		index:          make(map[string]int, len(k.Bindings)),
	}

	for _, b := range k.Bindings {
		if b.Action == "" {
			return nil, fmt.Errorf("binding %q: empty action", b.Keys)
		}
		ev, err := key.Parse(b.Keys)
		if err != nil {
			return nil, fmt.Errorf("parsing %q: %w", b.Keys, err)
		}
		spec := ev.Spec()
		parsed.index[spec] = len(parsed.ParsedBindings)
		parsed.ParsedBindings = append(parsed.ParsedBindings, ParsedBinding{
			Binding: b,
			Event:   ev.Normalize(),
			Spec:    spec,
		})
	}

	return parsed, nil
}

// Lookup returns the binding for ev in this keymap.
func (p *ParsedKeymap) Lookup(ev key.Event) (*ParsedBinding, bool) {
	i, ok := p.index[ev.Spec()]
	if !ok {
		return nil, false
	}
	return &p.ParsedBindings[i], true
}

// Clone creates a deep copy of the keymap.
func (k *Keymap) Clone() *Keymap {
	clone := &Keymap{
		Name:     k.Name,
		Priority: k.Priority,
		Source:   k.Source,
		Bindings: make([]Binding, len(k.Bindings)),
	}
	copy(clone.Bindings, k.Bindings)
	return clone
}
