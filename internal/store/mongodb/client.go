package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var errNilMongoClient = errors.New("mongodb client is nil")

type Config struct {
	URI      string `yaml:"uri" mapstructure:"uri" default:"mongodb://localhost:27017"`
	Database string `yaml:"database" mapstructure:"database" default:"typeahead"`
}

// Collection is the part of *mongo.Collection used for searching.
type Collection interface {
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error)
	Aggregate(ctx context.Context, pipeline interface{}, opts ...*options.AggregateOptions) (*mongo.Cursor, error)
}

type Client struct {
	client     *mongo.Client
	collection func(name string) Collection
}

// NewClient connects to the configured deployment and pings its primary.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("error connecting to mongodb: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("error pinging mongodb: %w", err)
	}

	db := client.Database(cfg.Database)
	return &Client{
		client: client,
		collection: func(name string) Collection {
			return db.Collection(name)
		},
	}, nil
}

// NewClientWithCollections serves collections from fn without a
// deployment behind them.
func NewClientWithCollections(fn func(name string) Collection) *Client {
	return &Client{collection: fn}
}

func (c *Client) Collection(name string) Collection {
	return c.collection(name)
}

func (c *Client) Close(ctx context.Context) error {
	if c.client == nil {
		return nil
	}
	return c.client.Disconnect(ctx)
}
