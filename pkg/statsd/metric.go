package statsd

import (
	"sort"
	"strings"

	"github.com/goto/salt/log"
)

type publishFunc func(name string, tags []string, rate float64) error

// Metric is a single statsd measurement being built. A nil Metric is
// valid and publishes nothing.
type Metric struct {
	logger        log.Logger
	name          string
	rate          float64
	tags          map[string]string
	withInfluxTag bool
	publish       publishFunc
}

// Success tags the metric as successful.
func (m *Metric) Success() *Metric {
	return m.Tag("success", "true")
}

// Failure tags the metric as failed when err is set, successful otherwise.
func (m *Metric) Failure(err error) *Metric {
	if err == nil {
		return m.Success()
	}
	return m.Tag("success", "false")
}

// Tag adds a tag to the metric.
func (m *Metric) Tag(key, val string) *Metric {
	if m == nil {
		return nil
	}
	if m.tags == nil {
		m.tags = map[string]string{}
	}
	m.tags[key] = val
	return m
}

// Publish sends the metric with its collected tags in the background.
// Intended to be used with defer.
func (m *Metric) Publish() {
	if m == nil || m.publish == nil {
		return
	}

	name, tags := m.render()
	go func() {
		if err := m.publish(name, tags, m.rate); err != nil && m.logger != nil {
			m.logger.Warn("failed to publish metric", "name", name, "err", err)
		}
	}()
}

// render returns the metric name and datadog tags. With the influx format
// the tags are folded into the name.
func (m *Metric) render() (string, []string) {
	keys := make([]string, 0, len(m.tags))
	for k := range m.tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	if m.withInfluxTag {
		var name strings.Builder
		name.WriteString(m.name)
		for _, k := range keys {
			name.WriteString("," + k + "=" + m.tags[k])
		}
		return name.String(), nil
	}

	tags := make([]string, 0, len(keys))
	for _, k := range keys {
		tags = append(tags, k+":"+m.tags[k])
	}
	return m.name, tags
}
