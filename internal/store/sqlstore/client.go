package sqlstore

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	_ "github.com/jackc/pgx/v4/stdlib"
	_ "modernc.org/sqlite"
)

// Client is a wrapper over sqlx aware of the placeholder style of its driver.
type Client struct {
	db          *sqlx.DB
	driver      string
	placeholder sq.PlaceholderFormat
}

// NewClient opens and pings the configured database.
func NewClient(cfg Config) (*Client, error) {
	if cfg.Driver == "" {
		cfg.Driver = DriverPostgres
	}
	if _, err := placeholderFor(cfg.Driver); err != nil {
		return nil, err
	}

	db, err := sqlx.Connect(cfg.Driver, cfg.DataSourceName())
	if err != nil {
		return nil, fmt.Errorf("error creating and connecting DB: %w", err)
	}
	if db == nil {
		return nil, errNilDBClient
	}

	maxOpen := cfg.MaxOpenConns
	if cfg.Driver == DriverSQLite && cfg.Path == "" {
		// every connection to :memory: is a separate database
		maxOpen = 1
	}
	if maxOpen > 0 {
		db.SetMaxOpenConns(maxOpen)
	}

	return NewClientWithDB(db, cfg.Driver)
}

// NewClientWithDB wraps an open connection pool.
func NewClientWithDB(db *sqlx.DB, driver string) (*Client, error) {
	if db == nil {
		return nil, errNilDBClient
	}
	placeholder, err := placeholderFor(driver)
	if err != nil {
		return nil, err
	}
	return &Client{db: db, driver: driver, placeholder: placeholder}, nil
}

func (c *Client) Driver() string {
	return c.driver
}

// QueryMaps runs query and scans every row into a column keyed map.
func (c *Client) QueryMaps(ctx context.Context, query string, args ...interface{}) ([]map[string]interface{}, error) {
	rows, err := c.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, checkPostgresError(err)
	}
	defer rows.Close()

	var result []map[string]interface{}
	for rows.Next() {
		row := make(map[string]interface{})
		if err := rows.MapScan(row); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		for k, v := range row {
			if b, ok := v.([]byte); ok {
				row[k] = string(b)
			}
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, checkPostgresError(err)
	}
	return result, nil
}

// ExecQueries is used for executing list of db query
func (c *Client) ExecQueries(ctx context.Context, queries []string) error {
	for _, query := range queries {
		if _, err := c.db.ExecContext(ctx, query); err != nil {
			return checkPostgresError(err)
		}
	}
	return nil
}

func (c *Client) Close() error {
	return c.db.Close()
}

func placeholderFor(driver string) (sq.PlaceholderFormat, error) {
	switch driver {
	case DriverPostgres:
		return sq.Dollar, nil
	case DriverSQLite:
		return sq.Question, nil
	}
	return nil, fmt.Errorf("%w: %q", errUnknownDriver, driver)
}
