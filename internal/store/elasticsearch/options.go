package elasticsearch

import "github.com/elastic/go-elasticsearch/v7"

type ClientOption func(*Client)

// WithClient uses cli instead of connecting to the configured brokers.
func WithClient(cli *elasticsearch.Client) ClientOption {
	return func(c *Client) {
		c.client = cli
	}
}

type RepositoryOption func(*AutocompleteRepository)

// WithSortFieldSuffix sorts on field+suffix, typically a keyword sub-field.
func WithSortFieldSuffix(suffix string) RepositoryOption {
	return func(r *AutocompleteRepository) {
		r.sortFieldSuffix = suffix
	}
}
