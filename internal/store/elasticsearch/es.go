package elasticsearch

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/elastic/go-elasticsearch/v7"
	"github.com/elastic/go-elasticsearch/v7/esapi"
	"github.com/goto/salt/log"
	"github.com/newrelic/go-agent/v3/integrations/nrelasticsearch-v7"
)

type Config struct {
	Brokers string `yaml:"brokers" mapstructure:"brokers" default:"http://localhost:9200"`

	// SortFieldSuffix is appended to sort fields so that text fields are
	// sorted through their keyword sub-field.
	SortFieldSuffix string `yaml:"sort_field_suffix" mapstructure:"sort_field_suffix" default:".keyword"`
}

type Client struct {
	client *elasticsearch.Client
	logger log.Logger
}

func NewClient(logger log.Logger, config Config, opts ...ClientOption) (*Client, error) {
	c := &Client{
		logger: logger,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.client != nil {
		return c, nil
	}

	brokers := strings.Split(config.Brokers, ",")
	esClient, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: brokers,
		Transport: nrelasticsearch.NewRoundTripper(nil),
	})
	if err != nil {
		return nil, err
	}
	c.client = esClient

	return c, nil
}

// Init checks the cluster is reachable and describes it.
func (c *Client) Init() (string, error) {
	res, err := c.client.Info()
	if err != nil {
		return "", elasticSearchError(err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return "", errors.New(res.Status())
	}

	var info = struct {
		ClusterName string `json:"cluster_name"`
		Version     struct {
			Number string `json:"number"`
		} `json:"version"`
	}{}
	if err := json.NewDecoder(res.Body).Decode(&info); err != nil {
		return "", err
	}

	return fmt.Sprintf("%q (server version %s)", info.ClusterName, info.Version.Number), nil
}

// errorCodeAndReason extracts the error type and reason of an elasticsearch
// response. The raw body is returned as reason when it cannot be decoded.
func errorCodeAndReason(res *esapi.Response) (code, reason string) {
	var (
		response struct {
			Error struct {
				Type   string `json:"type"`
				Reason string `json:"reason"`
			} `json:"error"`
		}
		copy bytes.Buffer
	)
	reader := io.TeeReader(res.Body, &copy)
	if err := json.NewDecoder(reader).Decode(&response); err != nil || response.Error.Type == "" {
		return res.Status(), fmt.Sprintf("raw response = %s", copy.String())
	}
	return response.Error.Type, response.Error.Reason
}

// helper for decorating unsuccesful invocations of the es REST API
// (transport errors)
func elasticSearchError(err error) error {
	return fmt.Errorf("elasticsearch error: %w", err)
}
