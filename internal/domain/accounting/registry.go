package accounting

import (
	"fmt"
	"sort"
	"sync"
)

// Registry maps vendor keys to adapters. Registration happens at startup;
// lookups happen per request.
type Registry struct {
	mu       sync.RWMutex
	adapters map[string]Adapter
}

// NewRegistry creates an empty adapter registry.
func NewRegistry() *Registry {
	return &Registry{adapters: make(map[string]Adapter)}
}

// Register adds an adapter under its vendor name. Registering the same
// vendor twice is a programming error.
func (r *Registry) Register(adapter Adapter) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := adapter.VendorName()
	if name == "" {
		return fmt.Errorf("adapter has empty vendor name")
	}
	if _, exists := r.adapters[name]; exists {
		return fmt.Errorf("adapter already registered for vendor %q", name)
	}
	r.adapters[name] = adapter
	return nil
}

// Resolve returns the adapter for a vendor key.
func (r *Registry) Resolve(vendor string) (Adapter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	adapter, ok := r.adapters[vendor]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrVendorNotRegistered, vendor)
	}
	return adapter, nil
}

// Vendors returns the registered vendor keys, sorted.
func (r *Registry) Vendors() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.adapters))
	for name := range r.adapters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
