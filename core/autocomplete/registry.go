package autocomplete

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Factory creates the handle of a registered collection.
type Factory func() (Collection, error)

// Registry maps collection names to their handles. It is populated at
// startup and read for every search.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
	}
}

// Register adds a factory under name. Names are case-insensitive and may
// only be registered once.
func (r *Registry) Register(name string, factory Factory) error {
	key := registryKey(name)
	if key == "" {
		return errors.New("collection name cannot be empty")
	}
	if factory == nil {
		return fmt.Errorf("nil factory for collection %q", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.factories[key]; exists {
		return fmt.Errorf("collection %q is already registered", name)
	}
	r.factories[key] = factory
	return nil
}

// RegisterCollection registers a fixed collection handle under its name.
func (r *Registry) RegisterCollection(c Collection) error {
	return r.Register(c.Name, func() (Collection, error) {
		return c, nil
	})
}

// Lookup returns the collection registered under name.
func (r *Registry) Lookup(name string) (Collection, error) {
	r.mu.RLock()
	factory, ok := r.factories[registryKey(name)]
	r.mu.RUnlock()
	if !ok {
		return Collection{}, NotFoundError{Collection: name}
	}

	c, err := factory()
	if err != nil {
		return Collection{}, fmt.Errorf("create collection %q: %w", name, err)
	}
	if c.Name == "" {
		c.Name = name
	}
	return c, nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func registryKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
