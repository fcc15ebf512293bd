package statsd

import (
	"time"

	std "github.com/DataDog/datadog-go/v5/statsd"
	"github.com/goto/salt/log"
)

// Reporter creates statsd metrics. A nil or disabled Reporter hands out
// metrics that are never sent.
type Reporter struct {
	client std.ClientInterface
	logger log.Logger
	config Config
}

// Init validates the config and initializes the statsd client.
func Init(logger log.Logger, cfg Config) (*Reporter, error) {
	if !cfg.Enabled {
		logger.Warn("statsd is disabled")
		return &Reporter{logger: logger, config: cfg}, nil
	}

	client, err := std.New(cfg.Address,
		std.WithNamespace(cfg.Prefix+"."),
		std.WithoutTelemetry())
	if err != nil {
		return nil, err
	}

	return &Reporter{
		client: client,
		logger: logger,
		config: cfg,
	}, nil
}

// Close flushes and closes the statsd connection.
func (sd *Reporter) Close() error {
	if sd == nil || sd.client == nil {
		return nil
	}
	return sd.client.Close()
}

// Incr returns an increment counter metric.
func (sd *Reporter) Incr(name string) *Metric {
	return sd.metric(name, func(c std.ClientInterface, name string, tags []string, rate float64) error {
		return c.Incr(name, tags, rate)
	})
}

// Timing returns a timer metric.
func (sd *Reporter) Timing(name string, value time.Duration) *Metric {
	return sd.metric(name, func(c std.ClientInterface, name string, tags []string, rate float64) error {
		return c.Timing(name, value, tags, rate)
	})
}

// Histogram returns a histogram metric.
func (sd *Reporter) Histogram(name string, value float64) *Metric {
	return sd.metric(name, func(c std.ClientInterface, name string, tags []string, rate float64) error {
		return c.Histogram(name, value, tags, rate)
	})
}

func (sd *Reporter) metric(name string, send func(std.ClientInterface, string, []string, float64) error) *Metric {
	if sd == nil {
		return nil
	}

	m := &Metric{
		logger:        sd.logger,
		name:          name,
		rate:          sd.config.SamplingRate,
		withInfluxTag: sd.config.WithInfluxTagFormat,
	}
	if sd.client != nil {
		client := sd.client
		m.publish = func(name string, tags []string, rate float64) error {
			return send(client, name, tags, rate)
		}
	}
	return m
}
