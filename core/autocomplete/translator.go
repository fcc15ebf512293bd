package autocomplete

import (
	"context"
	"fmt"
)

// NativeQuery is a query in the grammar of one backend. Only the backend
// that built it can execute it.
type NativeQuery interface{}

//go:generate mockery --name=QueryBackend -r --case underscore --with-expecter --structname QueryBackend --filename query_backend.go --output=./mocks

type QueryBackend interface {
	Kind() Kind
	BuildQuery(req Request, order Order) (NativeQuery, error)
	Execute(ctx context.Context, query NativeQuery) ([]RawRecord, error)
}

// Translator selects the backend of a kind and runs a request through it.
type Translator struct {
	backends map[Kind]QueryBackend
}

// NewTranslator registers backends by their kind. A later backend of the
// same kind replaces an earlier one.
func NewTranslator(backends ...QueryBackend) *Translator {
	t := &Translator{backends: make(map[Kind]QueryBackend, len(backends))}
	for _, b := range backends {
		if b == nil {
			continue
		}
		t.backends[b.Kind()] = b
	}
	return t
}

func (t *Translator) Backend(kind Kind) (QueryBackend, error) {
	b, ok := t.backends[kind]
	if !ok {
		return nil, UnsupportedBackendError{Kind: kind, Reason: "no backend configured"}
	}
	return b, nil
}

// Execute builds the native query for req and runs it. Query building
// errors are returned before the store is contacted.
func (t *Translator) Execute(ctx context.Context, req Request, kind Kind, order Order) ([]RawRecord, error) {
	backend, err := t.Backend(kind)
	if err != nil {
		return nil, err
	}
	if order.Kind() != kind {
		return nil, fmt.Errorf("%w: %q used with %q", errOrderKindMismatch, order.Kind(), kind)
	}

	query, err := backend.BuildQuery(req, order)
	if err != nil {
		return nil, err
	}
	return backend.Execute(ctx, query)
}
