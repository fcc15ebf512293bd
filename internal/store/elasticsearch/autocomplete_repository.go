package elasticsearch

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/goto/typeahead/core/autocomplete"
	"github.com/olivere/elastic/v7"
)

// Query is a rendered search request over one or more indices.
type Query struct {
	Indices []string
	Body    string
	Size    int

	// IDFields maps each index to the source field holding record identity
	IDFields map[string]string
}

type searchHit struct {
	Index  string                 `json:"_index"`
	ID     string                 `json:"_id"`
	Source map[string]interface{} `json:"_source"`
}

type searchResponse struct {
	Hits struct {
		Hits []searchHit `json:"hits"`
	} `json:"hits"`
}

// AutocompleteRepository searches indices with wildcard query strings.
type AutocompleteRepository struct {
	cli             *Client
	sortFieldSuffix string
}

func NewAutocompleteRepository(cli *Client, opts ...RepositoryOption) (*AutocompleteRepository, error) {
	if cli == nil {
		return nil, errNilESClient
	}

	r := &AutocompleteRepository{cli: cli}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

func (r *AutocompleteRepository) Kind() autocomplete.Kind {
	return autocomplete.KindFulltextIndex
}

func (r *AutocompleteRepository) BuildQuery(req autocomplete.Request, order autocomplete.Order) (autocomplete.NativeQuery, error) {
	pattern := autocomplete.WildcardPattern(req.Term, req.MatchMode)

	queryString := pattern
	if !req.MultiSource {
		clauses := make([]string, len(req.Fields))
		for i, f := range req.Fields {
			clauses[i] = f + ":" + pattern
		}
		queryString = strings.Join(clauses, " OR ")
	}

	var q elastic.Query = elastic.NewQueryStringQuery(queryString).
		DefaultOperator("OR").
		AllowLeadingWildcard(req.MatchMode == autocomplete.MatchSubstring)
	if pattern == "" {
		// blank terms leave no words for the analyzer
		q = elastic.NewMatchNoneQuery()
	}
	src := elastic.NewSearchSource().Query(q)

	sorts, err := autocomplete.ParseOrderClause(order.Clause())
	if err != nil {
		return nil, err
	}
	for _, s := range sorts {
		src = src.SortBy(elastic.NewFieldSort(r.sortField(s.Field)).Order(s.Direction == autocomplete.Ascending))
	}

	body, err := src.Source()
	if err != nil {
		return nil, fmt.Errorf("build search source: %w", err)
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode search source: %w", err)
	}

	idFields := make(map[string]string, len(req.Collections))
	for _, c := range req.Collections {
		idFields[c.SourceName()] = c.IdentityField()
	}

	return Query{
		Indices:  req.Sources(),
		Body:     string(payload),
		Size:     req.Limit,
		IDFields: idFields,
	}, nil
}

func (r *AutocompleteRepository) Execute(ctx context.Context, nq autocomplete.NativeQuery) ([]autocomplete.RawRecord, error) {
	query, ok := nq.(Query)
	if !ok {
		return nil, fmt.Errorf("elasticsearch: unexpected query type %T", nq)
	}
	index := strings.Join(query.Indices, ",")

	search := r.cli.client.Search
	res, err := search(
		search.WithBody(strings.NewReader(query.Body)),
		search.WithIndex(query.Indices...),
		search.WithSize(query.Size),
		search.WithIgnoreUnavailable(true),
		search.WithContext(ctx),
	)
	if err != nil {
		return nil, SearchError{Op: "Autocomplete", Index: index, Err: elasticSearchError(err)}
	}
	defer res.Body.Close()

	if res.IsError() {
		code, reason := errorCodeAndReason(res)
		return nil, SearchError{
			Op:     "Autocomplete",
			Index:  index,
			ESCode: code,
			Err:    fmt.Errorf("execute search: %s", reason),
		}
	}

	var response searchResponse
	dec := json.NewDecoder(res.Body)
	dec.UseNumber()
	if err := dec.Decode(&response); err != nil {
		return nil, SearchError{Op: "Autocomplete", Index: index, Err: fmt.Errorf("decode search response: %w", err)}
	}

	return toRecords(response.Hits.Hits, query.IDFields), nil
}

func (r *AutocompleteRepository) sortField(field string) string {
	if r.sortFieldSuffix == "" || strings.HasPrefix(field, "_") || strings.HasSuffix(field, r.sortFieldSuffix) {
		return field
	}
	return field + r.sortFieldSuffix
}

func toRecords(hits []searchHit, idFields map[string]string) []autocomplete.RawRecord {
	records := make([]autocomplete.RawRecord, len(hits))
	for i, hit := range hits {
		var id interface{} = hit.ID
		if f, ok := idFields[hit.Index]; ok {
			if v, ok := hit.Source[f]; ok && v != nil {
				id = v
			}
		}
		records[i] = autocomplete.MapRecord{Identity: id, Values: hit.Source}
	}
	return records
}
