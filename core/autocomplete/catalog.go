package autocomplete

import (
	"fmt"
	"sort"
	"sync"
)

// Catalog holds the endpoints declared at startup, keyed by name.
type Catalog struct {
	mu        sync.RWMutex
	endpoints map[string]Endpoint
}

func NewCatalog() *Catalog {
	return &Catalog{
		endpoints: make(map[string]Endpoint),
	}
}

// Declare validates target and opts and adds the resulting endpoint.
// Declaring the same name twice is an error.
func (c *Catalog) Declare(target Target, opts Options) (Endpoint, error) {
	ep, err := NewEndpoint(target, opts)
	if err != nil {
		return Endpoint{}, fmt.Errorf("declare endpoint %q: %w", EndpointName(target), err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.endpoints[ep.Name]; exists {
		return Endpoint{}, fmt.Errorf("endpoint %q is already declared", ep.Name)
	}
	c.endpoints[ep.Name] = ep
	return ep, nil
}

func (c *Catalog) Lookup(name string) (Endpoint, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ep, ok := c.endpoints[name]
	if !ok {
		return Endpoint{}, NotFoundError{Endpoint: name}
	}
	return ep, nil
}

// List returns every declared endpoint sorted by name.
func (c *Catalog) List() []Endpoint {
	c.mu.RLock()
	defer c.mu.RUnlock()

	eps := make([]Endpoint, 0, len(c.endpoints))
	for _, ep := range c.endpoints {
		eps = append(eps, ep)
	}
	sort.Slice(eps, func(i, j int) bool {
		return eps[i].Name < eps[j].Name
	})
	return eps
}
