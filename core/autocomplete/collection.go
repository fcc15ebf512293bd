package autocomplete

import (
	"fmt"
	"strings"
)

const DefaultIDField = "id"

// Accessor produces the display text of a record. It is either a plain
// field read or a computed value registered on the collection.
type Accessor func(RawRecord) (string, error)

// Collection is the handle of a searchable set of records: a table,
// a document collection or a full-text index.
type Collection struct {
	// Name the collection is registered and addressed by
	Name string

	// Source is the native name in the store (table, collection or index).
	// Defaults to Name.
	Source string

	// IDField holds the identity of each record. Defaults to "id".
	IDField string

	Traits Traits

	// Computed accessors addressable as display values
	Computed map[string]Accessor
}

func (c Collection) SourceName() string {
	if c.Source != "" {
		return c.Source
	}
	return c.Name
}

func (c Collection) IdentityField() string {
	if c.IDField != "" {
		return c.IDField
	}
	return DefaultIDField
}

// Accessor returns the computed accessor registered under name, falling
// back to reading the field of the same name.
func (c Collection) Accessor(name string) Accessor {
	if acc, ok := c.Computed[name]; ok && acc != nil {
		return acc
	}
	return FieldAccessor(name)
}

func FieldAccessor(field string) Accessor {
	return func(r RawRecord) (string, error) {
		v, ok := r.Field(field)
		if !ok {
			return "", fmt.Errorf("field %q is not present in record %v", field, r.ID())
		}
		return render(v), nil
	}
}

// Concat joins the string rendering of fields with sep. Absent fields
// are skipped.
func Concat(sep string, fields ...string) Accessor {
	return func(r RawRecord) (string, error) {
		parts := make([]string, 0, len(fields))
		for _, f := range fields {
			v, ok := r.Field(f)
			if !ok || v == nil {
				continue
			}
			parts = append(parts, render(v))
		}
		return strings.Join(parts, sep), nil
	}
}

func render(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []byte:
		return string(val)
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}
