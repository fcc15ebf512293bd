package autocomplete

import (
	"strings"
)

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

type Direction string

type OrderField struct {
	Field     string
	Direction Direction
}

// Order is a backend native ordering. Relational and full-text backends
// consume Clause, document backends consume Fields. An Order must only be
// handed back to a backend of the kind it was resolved for.
type Order struct {
	kind   Kind
	clause string
	fields []OrderField
}

func (o Order) Kind() Kind {
	return o.kind
}

// Clause is the "field ASC, ..." ordering clause. Empty means natural order.
func (o Order) Clause() string {
	return o.clause
}

func (o Order) Fields() []OrderField {
	return o.fields
}

func (o Order) IsZero() bool {
	return o.clause == "" && len(o.fields) == 0
}

// ResolveOrder turns an optional order spec into the ordering of kind.
// Without a spec every field is sorted ascending.
func ResolveOrder(kind Kind, fields []string, spec string) (Order, error) {
	switch kind {
	case KindDocument:
		if strings.TrimSpace(spec) != "" {
			parsed, err := ParseOrderSpec(spec)
			if err != nil {
				return Order{}, err
			}
			return Order{kind: kind, fields: parsed}, nil
		}

		var ordered []OrderField
		for _, f := range fields {
			ordered = append(ordered, OrderField{Field: f, Direction: Ascending})
		}
		return Order{kind: kind, fields: ordered}, nil

	case KindRelational, KindFulltextIndex:
		if clause := strings.TrimSpace(spec); clause != "" {
			return Order{kind: kind, clause: clause}, nil
		}

		parts := make([]string, len(fields))
		for i, f := range fields {
			parts[i] = f + " ASC"
		}
		return Order{kind: kind, clause: strings.Join(parts, ", ")}, nil
	}

	return Order{}, UnsupportedBackendError{Kind: kind, Reason: "no ordering for kind"}
}

// ParseOrderSpec parses "field direction, field direction". Every pair
// must carry a direction of asc or desc in any case.
func ParseOrderSpec(spec string) ([]OrderField, error) {
	return parseOrder(spec, true)
}

// ParseOrderClause parses an SQL style ordering clause where the
// direction may be omitted and defaults to ascending.
func ParseOrderClause(clause string) ([]OrderField, error) {
	if strings.TrimSpace(clause) == "" {
		return nil, nil
	}
	return parseOrder(clause, false)
}

func parseOrder(spec string, requireDirection bool) ([]OrderField, error) {
	var fields []OrderField
	for _, pair := range strings.Split(spec, ",") {
		tokens := strings.Fields(pair)
		switch {
		case len(tokens) == 0:
			return nil, InvalidOrderSpecError{Spec: spec}
		case len(tokens) == 1 && requireDirection:
			return nil, InvalidOrderSpecError{Spec: spec, Token: tokens[0]}
		case len(tokens) > 2:
			return nil, InvalidOrderSpecError{Spec: spec, Token: tokens[2]}
		}

		dir := Ascending
		if len(tokens) == 2 {
			switch Direction(strings.ToLower(tokens[1])) {
			case Ascending:
			case Descending:
				dir = Descending
			default:
				return nil, InvalidOrderSpecError{Spec: spec, Token: tokens[1]}
			}
		}
		fields = append(fields, OrderField{Field: tokens[0], Direction: dir})
	}
	return fields, nil
}
