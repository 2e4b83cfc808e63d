package keymap

import (
	"errors"
	"fmt"
	"sort"

	"github.com/dshills/scribe/internal/input/key"
)

// ErrNilKeymap is returned when registering a nil keymap.
var ErrNilKeymap = errors.New("keymap: nil keymap")

// Registry layers keymaps and resolves key events to bindings.
type Registry struct {
	// keymaps holds all registered keymaps by name.
	keymaps map[string]*ParsedKeymap

	// layers is keymaps sorted by descending precedence.
	layers []*ParsedKeymap

	registrations uint64
}

// NewRegistry creates an empty keymap registry.
func NewRegistry() *Registry {
	return &Registry{
		keymaps: make(map[string]*ParsedKeymap),
	}
}

// Register adds a keymap to the registry.
// If a keymap with the same name already exists, it is replaced.
func (r *Registry) Register(km *Keymap) error {
	if km == nil {
		return ErrNilKeymap
	}

	parsed, err := km.Parse()
	if err != nil {
		return fmt.Errorf("parsing keymap %q: %w", km.Name, err)
	}

	r.registrations++
	parsed.order = r.registrations
	r.keymaps[km.Name] = parsed
	r.relayer()
	return nil
}

// Unregister removes a keymap from the registry.
func (r *Registry) Unregister(name string) {
	if _, ok := r.keymaps[name]; !ok {
		return
	}
	delete(r.keymaps, name)
	r.relayer()
}

// Get returns a keymap by name.
func (r *Registry) Get(name string) *ParsedKeymap {
	return r.keymaps[name]
}

// Bind adds a single binding to the named keymap, creating it with the
// given source and priority if needed. A binding for the same key in that
// keymap is replaced.
func (r *Registry) Bind(name, source string, priority int, b Binding) error {
	var km *Keymap
	if existing, ok := r.keymaps[name]; ok {
		km = existing.Keymap.Clone()
	} else {
		km = NewKeymap(name).WithSource(source).WithPriority(priority)
	}
	km.AddBinding(b)
	return r.Register(km)
}

// Lookup finds the binding for ev with the highest precedence.
func (r *Registry) Lookup(ev key.Event) (Binding, bool) {
	if ev.IsZero() {
		return Binding{}, false
	}
	for _, layer := range r.layers {
		if pb, ok := layer.Lookup(ev); ok {
			return pb.Binding, true
		}
	}
	return Binding{}, false
}

// Bindings returns the effective bindings, one per key, ordered by
// canonical key specification.
func (r *Registry) Bindings() []Binding {
	seen := make(map[string]Binding)
	for i := len(r.layers) - 1; i >= 0; i-- {
		for _, pb := range r.layers[i].ParsedBindings {
			seen[pb.Spec] = pb.Binding
		}
	}

	specs := make([]string, 0, len(seen))
	for spec := range seen {
		specs = append(specs, spec)
	}
	sort.Strings(specs)

	result := make([]Binding, 0, len(specs))
	for _, spec := range specs {
		result = append(result, seen[spec])
	}
	return result
}

// KeysFor returns the canonical specifications of every key whose
// effective binding is action.
func (r *Registry) KeysFor(action string) []string {
	var specs []string
	for _, b := range r.Bindings() {
		if b.Action != action {
			continue
		}
		if spec, err := key.NormalizeSpec(b.Keys); err == nil {
			specs = append(specs, spec)
		}
	}
	return specs
}

// Names returns the names of all registered keymaps by descending precedence.
func (r *Registry) Names() []string {
	names := make([]string, len(r.layers))
	for i, layer := range r.layers {
		names[i] = layer.Name
	}
	return names
}

func (r *Registry) relayer() {
	r.layers = r.layers[:0]
	for _, km := range r.keymaps {
		r.layers = append(r.layers, km)
	}
	sort.Slice(r.layers, func(i, j int) bool {
		a, b := r.layers[i], r.layers[j]
		if a.Priority != b.Priority {
			return a.Priority > b.Priority
		}
		return a.order > b.order
	})
}
