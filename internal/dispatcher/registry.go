package dispatcher

import (
	"fmt"
	"sort"
)

// Registry maps fire-once action names to handlers.
type Registry struct {
	handlers map[string]Handler
}

// NewRegistry creates a new handler registry.
func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[string]Handler),
	}
}

// Register sets the handler for an action name, replacing any previous one.
func (r *Registry) Register(action string, h Handler) error {
	if action == "" {
		return ErrInvalidAction
	}
	if h == nil {
		return fmt.Errorf("%w: %s", ErrNoHandler, action)
	}
	if IsBuiltin(action) {
		return fmt.Errorf("%w: %s", ErrBuiltinAction, action)
	}
	r.handlers[action] = h
	return nil
}

// RegisterFunc registers a handler function for an action name.
func (r *Registry) RegisterFunc(action string, fn func(ctx *Context) error) error {
	if fn == nil {
		return fmt.Errorf("%w: %s", ErrNoHandler, action)
	}
	return r.Register(action, HandlerFunc(fn))
}

// Unregister removes the handler for an action name.
func (r *Registry) Unregister(action string) {
	delete(r.handlers, action)
}

// Get returns the handler for an action, or nil.
func (r *Registry) Get(action string) Handler {
	return r.handlers[action]
}

// Has returns true if a handler is registered for the action.
func (r *Registry) Has(action string) bool {
	_, ok := r.handlers[action]
	return ok
}

// Names returns all registered action names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the number of registered actions.
func (r *Registry) Count() int {
	return len(r.handlers)
}
