package sqlstore

import (
	"context"
	"fmt"
	"regexp"

	sq "github.com/Masterminds/squirrel"
	"github.com/goto/typeahead/core/autocomplete"
)

const (
	poolAlias   = "pool"
	poolIDField = "id"
)

var (
	identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)*$`)
	columnPattern     = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
)

// Query is a rendered SQL statement and the column holding record identity.
type Query struct {
	SQL     string
	Args    []interface{}
	IDField string
}

// AutocompleteRepository searches tables with case-insensitive LIKE
// predicates.
type AutocompleteRepository struct {
	client *Client
}

func NewAutocompleteRepository(c *Client) (*AutocompleteRepository, error) {
	if c == nil {
		return nil, errNilSQLClient
	}
	return &AutocompleteRepository{client: c}, nil
}

func (r *AutocompleteRepository) Kind() autocomplete.Kind {
	return autocomplete.KindRelational
}

func (r *AutocompleteRepository) BuildQuery(req autocomplete.Request, order autocomplete.Order) (autocomplete.NativeQuery, error) {
	var (
		builder sq.SelectBuilder
		idField string
		err     error
	)
	if req.MultiSource {
		builder, err = r.buildPoolSQL(req)
		idField = poolIDField
	} else {
		builder, err = r.buildSingleSQL(req)
		idField = req.Collection().IdentityField()
	}
	if err != nil {
		return nil, err
	}

	if clause := order.Clause(); clause != "" {
		builder = builder.OrderBy(clause)
	}
	if req.Limit > 0 {
		builder = builder.Limit(uint64(req.Limit))
	}

	query, args, err := builder.PlaceholderFormat(r.client.placeholder).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build autocomplete query: %w", err)
	}
	return Query{SQL: query, Args: args, IDField: idField}, nil
}

func (r *AutocompleteRepository) Execute(ctx context.Context, nq autocomplete.NativeQuery) ([]autocomplete.RawRecord, error) {
	query, ok := nq.(Query)
	if !ok {
		return nil, fmt.Errorf("sqlstore: unexpected query type %T", nq)
	}

	rows, err := r.client.QueryMaps(ctx, query.SQL, query.Args...)
	if err != nil {
		return nil, fmt.Errorf("execute autocomplete query: %w", err)
	}

	records := make([]autocomplete.RawRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, autocomplete.MapRecord{
			Identity: row[query.IDField],
			Values:   row,
		})
	}
	return records, nil
}

func (r *AutocompleteRepository) buildSingleSQL(req autocomplete.Request) (sq.SelectBuilder, error) {
	coll := req.Collection()
	if err := checkIdentifiers(append([]string{coll.SourceName()}, req.SearchFields()...)...); err != nil {
		return sq.SelectBuilder{}, err
	}

	pattern := autocomplete.LikePattern(req.Term, req.MatchMode)
	var where sq.Or
	for _, f := range req.SearchFields() {
		where = append(where, likeExpr(f, pattern))
	}

	return sq.Select("*").
		From(coll.SourceName()).
		Where(where), nil
}

// buildPoolSQL unions the identity and display column of every collection.
func (r *AutocompleteRepository) buildPoolSQL(req autocomplete.Request) (sq.SelectBuilder, error) {
	display := req.DisplayField
	// the display column names the union's output column
	if !columnPattern.MatchString(display) {
		return sq.SelectBuilder{}, fmt.Errorf("%w: pool display field must be a plain column: %q", errInvalidIdentifier, display)
	}
	pattern := autocomplete.LikePattern(req.Term, req.MatchMode)

	var union sq.SelectBuilder
	for i, coll := range req.Collections {
		if err := checkIdentifiers(coll.SourceName(), coll.IdentityField(), display); err != nil {
			return sq.SelectBuilder{}, err
		}

		sub := sq.Select(
			fmt.Sprintf("%s AS %s", coll.IdentityField(), poolIDField),
			fmt.Sprintf("%s AS %s", display, display),
		).
			From(coll.SourceName()).
			Where(likeExpr(display, pattern))

		if i == 0 {
			union = sub
			continue
		}

		subSQL, subArgs, err := sub.ToSql()
		if err != nil {
			return sq.SelectBuilder{}, err
		}
		union = union.Suffix("UNION ALL "+subSQL, subArgs...)
	}

	return sq.Select("*").FromSelect(union, poolAlias), nil
}

func likeExpr(field, pattern string) sq.Sqlizer {
	return sq.Expr(fmt.Sprintf("LOWER(%s) LIKE ? ESCAPE '%s'", field, autocomplete.LikeEscape), pattern)
}

func checkIdentifiers(names ...string) error {
	for _, name := range names {
		if !identifierPattern.MatchString(name) {
			return fmt.Errorf("%w: %q", errInvalidIdentifier, name)
		}
	}
	return nil
}
