package mongodb

import (
	"context"
	"fmt"

	"github.com/goto/typeahead/core/autocomplete"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	defaultIDField = "_id"
	poolIDField    = "id"
)

// Query is either a find on one collection or an aggregation that unions
// several collections.
type Query struct {
	Collection string

	Filter      bson.D
	FindOptions *options.FindOptions

	Pipeline mongo.Pipeline

	IDField string
}

// AutocompleteRepository searches document collections with
// case-insensitive regular expressions.
type AutocompleteRepository struct {
	client *Client
}

func NewAutocompleteRepository(client *Client) (*AutocompleteRepository, error) {
	if client == nil {
		return nil, errNilMongoClient
	}
	return &AutocompleteRepository{client: client}, nil
}

func (r *AutocompleteRepository) Kind() autocomplete.Kind {
	return autocomplete.KindDocument
}

func (r *AutocompleteRepository) BuildQuery(req autocomplete.Request, order autocomplete.Order) (autocomplete.NativeQuery, error) {
	regex := primitive.Regex{
		Pattern: autocomplete.RegexPattern(req.Term, req.MatchMode),
		Options: "i",
	}

	if req.MultiSource {
		return r.buildPoolQuery(req, order, regex), nil
	}

	coll := req.Collection()
	var filter bson.D
	if len(req.Fields) == 1 {
		filter = bson.D{{Key: req.Fields[0], Value: regex}}
	} else {
		or := make(bson.A, len(req.Fields))
		for i, f := range req.Fields {
			or[i] = bson.D{{Key: f, Value: regex}}
		}
		filter = bson.D{{Key: "$or", Value: or}}
	}

	opts := options.Find().SetLimit(int64(req.Limit))
	if s := sortDoc(order); len(s) > 0 {
		opts.SetSort(s)
	}

	return Query{
		Collection:  coll.SourceName(),
		Filter:      filter,
		FindOptions: opts,
		IDField:     identityField(coll),
	}, nil
}

// buildPoolQuery projects the identity and display field of every pooled
// collection and unions them onto the first one.
func (r *AutocompleteRepository) buildPoolQuery(req autocomplete.Request, order autocomplete.Order, regex primitive.Regex) Query {
	display := req.DisplayField
	branch := func(c autocomplete.Collection) mongo.Pipeline {
		return mongo.Pipeline{
			{{Key: "$match", Value: bson.D{{Key: display, Value: regex}}}},
			{{Key: "$project", Value: bson.D{
				{Key: "_id", Value: 0},
				{Key: poolIDField, Value: "$" + identityField(c)},
				{Key: display, Value: "$" + display},
			}}},
		}
	}

	first := req.Collections[0]
	pipeline := branch(first)
	for _, c := range req.Collections[1:] {
		pipeline = append(pipeline, bson.D{{Key: "$unionWith", Value: bson.D{
			{Key: "coll", Value: c.SourceName()},
			{Key: "pipeline", Value: branch(c)},
		}}})
	}
	if s := sortDoc(order); len(s) > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$sort", Value: s}})
	}
	if req.Limit > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$limit", Value: int64(req.Limit)}})
	}

	return Query{
		Collection: first.SourceName(),
		Pipeline:   pipeline,
		IDField:    poolIDField,
	}
}

func (r *AutocompleteRepository) Execute(ctx context.Context, nq autocomplete.NativeQuery) ([]autocomplete.RawRecord, error) {
	query, ok := nq.(Query)
	if !ok {
		return nil, fmt.Errorf("mongodb: unexpected query type %T", nq)
	}

	coll := r.client.Collection(query.Collection)

	var (
		cursor *mongo.Cursor
		err    error
	)
	if query.Pipeline != nil {
		cursor, err = coll.Aggregate(ctx, query.Pipeline)
	} else {
		cursor, err = coll.Find(ctx, query.Filter, query.FindOptions)
	}
	if err != nil {
		return nil, fmt.Errorf("search collection %q: %w", query.Collection, err)
	}

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode documents of %q: %w", query.Collection, err)
	}

	records := make([]autocomplete.RawRecord, len(docs))
	for i, doc := range docs {
		values := toMap(doc)
		records[i] = autocomplete.MapRecord{Identity: values[query.IDField], Values: values}
	}
	return records, nil
}

func sortDoc(order autocomplete.Order) bson.D {
	var s bson.D
	for _, f := range order.Fields() {
		dir := 1
		if f.Direction == autocomplete.Descending {
			dir = -1
		}
		s = append(s, bson.E{Key: f.Field, Value: dir})
	}
	return s
}

func identityField(c autocomplete.Collection) string {
	if c.IDField != "" {
		return c.IDField
	}
	return defaultIDField
}

// toMap turns a decoded document into plain maps so nested fields can be
// addressed with dotted names. Object ids are rendered as hex.
func toMap(doc bson.M) map[string]interface{} {
	out := make(map[string]interface{}, len(doc))
	for k, v := range doc {
		out[k] = plain(v)
	}
	return out
}

func plain(v interface{}) interface{} {
	switch val := v.(type) {
	case bson.M:
		return toMap(val)
	case bson.D:
		m := make(map[string]interface{}, len(val))
		for _, e := range val {
			m[e.Key] = plain(e.Value)
		}
		return m
	case bson.A:
		out := make([]interface{}, len(val))
		for i, e := range val {
			out[i] = plain(e)
		}
		return out
	case primitive.ObjectID:
		return val.Hex()
	}
	return v
}
