package autocomplete

import "strings"

// RawRecord is a record as returned by a store. Only its identity and
// field values are read.
type RawRecord interface {
	ID() interface{}
	Field(name string) (interface{}, bool)
}

// MapRecord is a RawRecord over a decoded row, document or index hit.
// Dotted names walk into nested maps.
type MapRecord struct {
	Identity interface{}
	Values   map[string]interface{}
}

func (r MapRecord) ID() interface{} {
	return r.Identity
}

func (r MapRecord) Field(name string) (interface{}, bool) {
	if v, ok := r.Values[name]; ok {
		return v, true
	}
	if !strings.Contains(name, ".") {
		return nil, false
	}

	var cur interface{} = r.Values
	for _, part := range strings.Split(name, ".") {
		m, ok := cur.(map[string]interface{})
		if !ok {
			return nil, false
		}
		if cur, ok = m[part]; !ok {
			return nil, false
		}
	}
	return cur, true
}

// UniformRecord is the shape every endpoint responds with. Label and
// Value both carry the display text.
type UniformRecord struct {
	ID    interface{} `json:"id"`
	Label string      `json:"label"`
	Value string      `json:"value"`
}

// Normalize maps records into UniformRecords keeping their order.
func Normalize(records []RawRecord, accessor Accessor) ([]UniformRecord, error) {
	results := make([]UniformRecord, 0, len(records))
	for _, rec := range records {
		id := rec.ID()
		if id == nil {
			return nil, ErrMissingID
		}

		text, err := accessor(rec)
		if err != nil {
			return nil, err
		}

		results = append(results, UniformRecord{
			ID:    id,
			Label: text,
			Value: text,
		})
	}
	return results, nil
}
