package bleveindex

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/search"
	"github.com/blevesearch/bleve/v2/search/query"
	"github.com/goto/typeahead/core/autocomplete"
)

// Query is a bleve search request over one or more named indices.
type Query struct {
	Indices  []string
	Request  *bleve.SearchRequest
	IDFields map[string]string
}

// wildcards bleve has no escape for
var wildcardStripper = strings.NewReplacer("*", "", "?", "")

// AutocompleteRepository searches embedded bleve indices with wildcard
// queries.
type AutocompleteRepository struct {
	client *Client
}

func NewAutocompleteRepository(client *Client) (*AutocompleteRepository, error) {
	if client == nil {
		return nil, errors.New("bleve client is nil")
	}
	return &AutocompleteRepository{client: client}, nil
}

func (r *AutocompleteRepository) Kind() autocomplete.Kind {
	return autocomplete.KindFulltextIndex
}

func (r *AutocompleteRepository) BuildQuery(req autocomplete.Request, order autocomplete.Order) (autocomplete.NativeQuery, error) {
	q := wildcardQuery(autocomplete.WildcardTokens(req.Term, req.MatchMode), req.Fields)
	sr := bleve.NewSearchRequestOptions(q, req.Limit, 0, false)
	sr.Fields = []string{"*"}

	sorts, err := autocomplete.ParseOrderClause(order.Clause())
	if err != nil {
		return nil, err
	}
	if len(sorts) > 0 {
		sortBy := make([]string, len(sorts))
		for i, s := range sorts {
			sortBy[i] = s.Field
			if s.Direction == autocomplete.Descending {
				sortBy[i] = "-" + s.Field
			}
		}
		sr.SortBy(sortBy)
	}

	idFields := make(map[string]string, len(req.Collections))
	for _, c := range req.Collections {
		idFields[c.SourceName()] = c.IdentityField()
	}

	return Query{
		Indices:  req.Sources(),
		Request:  sr,
		IDFields: idFields,
	}, nil
}

// wildcardQuery matches documents where any one of fields holds every
// token. No fields searches the default composite field.
func wildcardQuery(tokens []autocomplete.WildcardToken, fields []string) query.Query {
	if len(tokens) == 0 {
		return bleve.NewMatchNoneQuery()
	}
	if len(fields) == 0 {
		fields = []string{""}
	}

	disjuncts := make([]query.Query, len(fields))
	for i, f := range fields {
		conjuncts := make([]query.Query, len(tokens))
		for j, tok := range tokens {
			conjuncts[j] = tokenQuery(tok, f)
		}
		disjuncts[i] = bleve.NewConjunctionQuery(conjuncts...)
	}
	return bleve.NewDisjunctionQuery(disjuncts...)
}

func tokenQuery(tok autocomplete.WildcardToken, field string) query.Query {
	if !tok.Leading && !tok.Trailing {
		q := bleve.NewTermQuery(tok.Text)
		q.SetField(field)
		return q
	}

	pattern := wildcardStripper.Replace(tok.Text)
	if tok.Leading {
		pattern = "*" + pattern
	}
	if tok.Trailing {
		pattern += "*"
	}
	q := bleve.NewWildcardQuery(pattern)
	q.SetField(field)
	return q
}

func (r *AutocompleteRepository) Execute(ctx context.Context, nq autocomplete.NativeQuery) ([]autocomplete.RawRecord, error) {
	sq, ok := nq.(Query)
	if !ok {
		return nil, fmt.Errorf("bleveindex: unexpected query type %T", nq)
	}

	indices := make([]bleve.Index, len(sq.Indices))
	for i, name := range sq.Indices {
		idx, err := r.client.Index(name)
		if err != nil {
			return nil, err
		}
		indices[i] = idx
	}

	var target bleve.Index
	if len(indices) == 1 {
		target = indices[0]
	} else {
		target = bleve.NewIndexAlias(indices...)
	}

	result, err := target.SearchInContext(ctx, sq.Request)
	if err != nil {
		return nil, fmt.Errorf("bleve search %s: %w", strings.Join(sq.Indices, ","), err)
	}

	return toRecords(result.Hits, sq.IDFields, sq.Indices[0]), nil
}

func toRecords(hits search.DocumentMatchCollection, idFields map[string]string, defaultIndex string) []autocomplete.RawRecord {
	records := make([]autocomplete.RawRecord, len(hits))
	for i, hit := range hits {
		index := hit.Index
		if index == "" {
			index = defaultIndex
		}

		var id interface{} = hit.ID
		if f, ok := idFields[index]; ok {
			if v, ok := hit.Fields[f]; ok && v != nil {
				id = v
			}
		}

		values := hit.Fields
		if values == nil {
			values = map[string]interface{}{}
		}
		records[i] = autocomplete.MapRecord{Identity: id, Values: values}
	}
	return records
}
