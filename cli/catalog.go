package cli

import (
	"fmt"

	"github.com/goto/typeahead/core/autocomplete"
	"github.com/goto/typeahead/core/validator"
)

// buildRegistry registers every configured collection.
func buildRegistry(cfgs []CollectionConfig) (*autocomplete.Registry, error) {
	registry := autocomplete.NewRegistry()
	for _, cc := range cfgs {
		if err := validator.ValidateStruct(cc); err != nil {
			return nil, fmt.Errorf("invalid collection %q: %w", cc.Name, err)
		}

		traits, err := autocomplete.ParseTraits(cc.Traits)
		if err != nil {
			return nil, fmt.Errorf("invalid collection %q: %w", cc.Name, err)
		}

		c := autocomplete.Collection{
			Name:    cc.Name,
			Source:  cc.Source,
			IDField: cc.IDField,
			Traits:  traits,
		}
		if len(cc.Computed) > 0 {
			c.Computed = make(map[string]autocomplete.Accessor, len(cc.Computed))
			for _, comp := range cc.Computed {
				sep := comp.Separator
				if sep == "" {
					sep = " "
				}
				c.Computed[comp.Name] = autocomplete.Concat(sep, comp.Fields...)
			}
		}

		if err := registry.RegisterCollection(c); err != nil {
			return nil, err
		}
	}
	return registry, nil
}

// buildCatalog declares every configured endpoint. Declaration fails on
// the first invalid endpoint.
func buildCatalog(cfgs []EndpointConfig) (*autocomplete.Catalog, error) {
	catalog := autocomplete.NewCatalog()
	for _, ec := range cfgs {
		target := autocomplete.Single(ec.Collection, ec.Fields...)
		if len(ec.Pool) > 0 {
			target = autocomplete.Pool(ec.Name, ec.Pool...)
		}

		if _, err := catalog.Declare(target, autocomplete.Options{
			DisplayValue: ec.DisplayValue,
			Order:        ec.Order,
			Full:         ec.Full,
			Limit:        ec.Limit,
		}); err != nil {
			return nil, err
		}
	}
	return catalog, nil
}

// checkEndpoints makes sure every endpoint names registered collections
// that share one backend kind.
func checkEndpoints(registry *autocomplete.Registry, catalog *autocomplete.Catalog) error {
	for _, ep := range catalog.List() {
		names := ep.Target.CollectionNames()
		collections := make([]autocomplete.Collection, 0, len(names))
		for _, name := range names {
			c, err := registry.Lookup(name)
			if err != nil {
				return fmt.Errorf("endpoint %q: %w", ep.Name, err)
			}
			collections = append(collections, c)
		}
		if _, err := autocomplete.ClassifyPool(autocomplete.TraitClassifier{}, collections); err != nil {
			return fmt.Errorf("endpoint %q: %w", ep.Name, err)
		}
	}
	return nil
}
