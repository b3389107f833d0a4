package waveform

import "sync"

// Registry is an in-memory selector-to-element table implementing
// Resolver. Hosts without a real document tree (tests, headless use)
// register surfaces and containers under selector strings and hand the
// registry to NewFromSelector or AttachSelector.
//
// Thread-safety: safe for concurrent registration and lookup.
type Registry struct {
	mu       sync.RWMutex
	elements map[string]any
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{elements: make(map[string]any)}
}

// Register binds el to selector, replacing any previous binding.
func (r *Registry) Register(selector string, el any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.elements[selector] = el
}

// Remove drops the binding for selector. Unknown selectors are a no-op.
func (r *Registry) Remove(selector string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.elements, selector)
}

// Lookup implements Resolver.
func (r *Registry) Lookup(selector string) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	el, ok := r.elements[selector]
	return el, ok
}

var _ Resolver = (*Registry)(nil)
