package autocomplete

import (
	"strings"

	"github.com/goto/typeahead/core/validator"
)

// Endpoint is a declared autocomplete action: what it searches and how.
type Endpoint struct {
	Name    string
	Target  Target
	Options Options
}

// NewEndpoint validates a declaration and derives its name: the
// collection and field joined by "_" for a single field, otherwise the
// collection or pool name.
func NewEndpoint(target Target, opts Options) (Endpoint, error) {
	if err := validator.ValidateStruct(opts); err != nil {
		return Endpoint{}, err
	}
	if err := target.Validate(opts); err != nil {
		return Endpoint{}, err
	}
	return Endpoint{
		Name:    EndpointName(target),
		Target:  target,
		Options: opts,
	}, nil
}

func EndpointName(target Target) string {
	switch {
	case target.MultiSource():
		if target.Name != "" {
			return target.Name
		}
		return strings.Join(target.Pool, "_")
	case target.SingleField():
		return target.Collection + "_" + target.Fields[0]
	}
	return target.Collection
}
