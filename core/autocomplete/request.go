package autocomplete

import "strings"

const DefaultLimit = 10

const (
	MatchPrefix    MatchMode = "prefix"
	MatchSubstring MatchMode = "substring"
)

// MatchMode decides where the term may occur in a field value
type MatchMode string

// Options tune a single endpoint.
type Options struct {
	// DisplayValue names the field or computed accessor used for the label
	DisplayValue string `json:"display_value" yaml:"display_value" mapstructure:"display_value"`

	// Order is a "field direction, ..." spec
	Order string `json:"order" yaml:"order" mapstructure:"order"`

	// Full enables substring matching
	Full bool `json:"full" yaml:"full" mapstructure:"full"`

	Limit int `json:"limit" yaml:"limit" mapstructure:"limit" validate:"gte=0"`
}

func (o Options) MatchMode() MatchMode {
	if o.Full {
		return MatchSubstring
	}
	return MatchPrefix
}

// GetLimit returns the limit requested in opts or DefaultLimit.
func GetLimit(opts Options) int {
	if opts.Limit > 0 {
		return opts.Limit
	}
	return DefaultLimit
}

// Target names what an endpoint searches: either one collection and its
// fields, or a pool of collections searched together.
type Target struct {
	// Name of a pool. Unused for single collection targets.
	Name string

	Collection string
	Fields     []string

	Pool []string
}

func Single(collection string, fields ...string) Target {
	return Target{Collection: collection, Fields: fields}
}

func Pool(name string, collections ...string) Target {
	return Target{Name: name, Pool: collections}
}

// MultiSource reports whether the target pools several collections
func (t Target) MultiSource() bool {
	return len(t.Pool) > 0
}

// SingleField reports whether the target searches exactly one field of one collection
func (t Target) SingleField() bool {
	return !t.MultiSource() && len(t.Fields) == 1
}

// CollectionNames returns the collections the target reads from.
func (t Target) CollectionNames() []string {
	if t.MultiSource() {
		return t.Pool
	}
	return []string{t.Collection}
}

// DisplayField resolves the accessor used for labels. Only a single field
// target may omit the display value.
func (t Target) DisplayField(opts Options) (string, error) {
	if strings.TrimSpace(opts.DisplayValue) != "" {
		return opts.DisplayValue, nil
	}
	if t.SingleField() {
		return t.Fields[0], nil
	}
	return "", ErrMissingDisplayField
}

// Validate checks the target without touching any store.
func (t Target) Validate(opts Options) error {
	if t.MultiSource() {
		for _, name := range t.Pool {
			if strings.TrimSpace(name) == "" {
				return ErrEmptyTarget
			}
		}
	} else {
		if strings.TrimSpace(t.Collection) == "" {
			return ErrEmptyTarget
		}
		if len(t.Fields) == 0 {
			return ErrEmptyFields
		}
		for _, f := range t.Fields {
			if strings.TrimSpace(f) == "" {
				return ErrEmptyFields
			}
		}
	}

	_, err := t.DisplayField(opts)
	return err
}

// Request is the normalized description of one search. It is built once
// per call and not modified afterwards.
type Request struct {
	Collections []Collection

	// Fields searched in a single collection. Empty for pooled requests,
	// which search DisplayField in every collection.
	Fields []string

	Term         string
	MatchMode    MatchMode
	Limit        int
	OrderSpec    string
	DisplayField string
	MultiSource  bool
}

// NewRequest normalizes a target, its resolved collections and the
// caller options into a Request.
func NewRequest(target Target, collections []Collection, term string, opts Options) (Request, error) {
	if err := target.Validate(opts); err != nil {
		return Request{}, err
	}
	if len(collections) == 0 {
		return Request{}, ErrEmptyTarget
	}

	display, err := target.DisplayField(opts)
	if err != nil {
		return Request{}, err
	}

	var fields []string
	if !target.MultiSource() {
		fields = append(fields, target.Fields...)
	}

	return Request{
		Collections:  collections,
		Fields:       fields,
		Term:         term,
		MatchMode:    opts.MatchMode(),
		Limit:        GetLimit(opts),
		OrderSpec:    opts.Order,
		DisplayField: display,
		MultiSource:  target.MultiSource(),
	}, nil
}

// Collection returns the first, and for single source requests only, collection.
func (r Request) Collection() Collection {
	if len(r.Collections) == 0 {
		return Collection{}
	}
	return r.Collections[0]
}

// SearchFields returns the fields the term is matched against.
func (r Request) SearchFields() []string {
	if r.MultiSource {
		return []string{r.DisplayField}
	}
	return r.Fields
}

// Sources returns the native names of every collection in the request.
func (r Request) Sources() []string {
	sources := make([]string, len(r.Collections))
	for i, c := range r.Collections {
		sources[i] = c.SourceName()
	}
	return sources
}
