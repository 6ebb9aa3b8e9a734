package render

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Registry tracks the renderers available to a generation pipeline by name.
// Registration normally happens once during wiring, but the registry is safe
// for concurrent use so hosts can add renderers while requests are served.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Renderer
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: map[string]Renderer{}}
}

// Register adds a renderer under the name it reports. Registering a second
// renderer under the same name is an error rather than a replacement, so a
// misconfigured host fails loudly instead of silently swapping output formats.
func (r *Registry) Register(renderer Renderer) error {
	if renderer == nil {
		return errors.New("render: cannot register a nil renderer")
	}
	name := renderer.Name()
	if name == "" {
		return errors.New("render: renderer reports an empty name")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.entries[name]; taken {
		return fmt.Errorf("render: renderer %q registered twice", name)
	}
	r.entries[name] = renderer
	return nil
}

// MustRegister panics on registration failure. Useful for wiring done at
// program start, where a duplicate name is a bug.
func (r *Registry) MustRegister(renderer Renderer) {
	if err := r.Register(renderer); err != nil {
		panic(err)
	}
}

// Get looks up a renderer. The error for an unknown name lists what is
// registered, since the name usually arrives from a flag or a request field.
func (r *Registry) Get(name string) (Renderer, error) {
	r.mu.RLock()
	renderer, ok := r.entries[name]
	r.mu.RUnlock()

	if !ok {
		known := r.List()
		if len(known) == 0 {
			return nil, fmt.Errorf("render: no renderer named %q (none registered)", name)
		}
		return nil, fmt.Errorf("render: no renderer named %q (registered: %s)", name, strings.Join(known, ", "))
	}
	return renderer, nil
}

// Has reports whether a renderer is registered under the name.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.entries[name]
	return ok
}

// List returns the registered names in sorted order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
