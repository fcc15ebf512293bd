package bleveindex

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/blevesearch/bleve/v2"
	"github.com/goto/salt/log"
)

var errIndexNotFound = errors.New("bleve index not found")

type Config struct {
	// Dir holds one index directory per collection source
	Dir string `yaml:"dir" mapstructure:"dir" default:"./data/bleve"`
}

// Client opens the on-disk indices under a directory on first use and
// keeps them open until Close.
type Client struct {
	dir    string
	logger log.Logger

	mu      sync.Mutex
	indices map[string]bleve.Index
}

func NewClient(logger log.Logger, cfg Config) *Client {
	return &Client{
		dir:     cfg.Dir,
		logger:  logger,
		indices: make(map[string]bleve.Index),
	}
}

// Register serves name from an already open index, typically an
// in-memory one.
func (c *Client) Register(name string, idx bleve.Index) {
	c.mu.Lock()
	defer c.mu.Unlock()

	idx.SetName(name)
	c.indices[name] = idx
}

// Index returns the index of name, opening it from disk if needed.
func (c *Client) Index(name string) (bleve.Index, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if idx, ok := c.indices[name]; ok {
		return idx, nil
	}
	if c.dir == "" {
		return nil, fmt.Errorf("%w: %q", errIndexNotFound, name)
	}

	path := filepath.Join(c.dir, name)
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %q: %v", errIndexNotFound, name, err)
	}

	idx, err := bleve.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open bleve index %q: %w", name, err)
	}
	idx.SetName(name)
	c.indices[name] = idx
	c.logger.Debug("opened bleve index", "name", name, "path", path)
	return idx, nil
}

func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var errs []error
	for name, idx := range c.indices {
		if err := idx.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close bleve index %q: %w", name, err))
		}
		delete(c.indices, name)
	}
	return errors.Join(errs...)
}
