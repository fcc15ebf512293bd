package statsd

import (
	"errors"
	"testing"
	"time"

	std "github.com/DataDog/datadog-go/v5/statsd"
	"github.com/goto/salt/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sent struct {
	kind  string
	name  string
	tags  []string
	value interface{}
}

type recordingClient struct {
	*std.NoOpClient
	sent   chan sent
	closed bool
}

func newRecordingClient() *recordingClient {
	return &recordingClient{NoOpClient: &std.NoOpClient{}, sent: make(chan sent, 10)}
}

func (c *recordingClient) Incr(name string, tags []string, _ float64) error {
	c.sent <- sent{kind: "incr", name: name, tags: tags}
	return nil
}

func (c *recordingClient) Timing(name string, value time.Duration, tags []string, _ float64) error {
	c.sent <- sent{kind: "timing", name: name, tags: tags, value: value}
	return nil
}

func (c *recordingClient) Histogram(name string, value float64, tags []string, _ float64) error {
	c.sent <- sent{kind: "histogram", name: name, tags: tags, value: value}
	return errors.New("histogram unavailable")
}

func (c *recordingClient) Close() error {
	c.closed = true
	return nil
}

func receive(t *testing.T, c *recordingClient) sent {
	t.Helper()
	select {
	case s := <-c.sent:
		return s
	case <-time.After(time.Second):
		t.Fatal("metric was not published")
	}
	return sent{}
}

func TestReporter(t *testing.T) {
	t.Run("folds sorted tags into the name with the influx format", func(t *testing.T) {
		client := newRecordingClient()
		sd := &Reporter{client: client, logger: log.NewNoop(), config: Config{SamplingRate: 1, WithInfluxTagFormat: true}}

		sd.Incr("autocomplete.search").Tag("kind", "relational").Tag("endpoint", "brands_name").Publish()

		got := receive(t, client)
		assert.Equal(t, "incr", got.kind)
		assert.Equal(t, "autocomplete.search,endpoint=brands_name,kind=relational", got.name)
		assert.Nil(t, got.tags)
	})

	t.Run("sends datadog tags without the influx format", func(t *testing.T) {
		client := newRecordingClient()
		sd := &Reporter{client: client, logger: log.NewNoop(), config: Config{SamplingRate: 1}}

		sd.Timing("autocomplete.search.duration", time.Millisecond).Failure(errors.New("boom")).Tag("kind", "document").Publish()

		got := receive(t, client)
		assert.Equal(t, "timing", got.kind)
		assert.Equal(t, "autocomplete.search.duration", got.name)
		assert.Equal(t, []string{"kind:document", "success:false"}, got.tags)
		assert.Equal(t, time.Millisecond, got.value)
	})

	t.Run("publish errors are only logged", func(t *testing.T) {
		client := newRecordingClient()
		sd := &Reporter{client: client, logger: log.NewNoop(), config: Config{SamplingRate: 1}}

		sd.Histogram("autocomplete.search.results", 3).Tag("kind", "relational").Publish()

		got := receive(t, client)
		assert.Equal(t, "histogram", got.kind)
		assert.Equal(t, []string{"kind:relational"}, got.tags)
		assert.Equal(t, float64(3), got.value)
	})

	t.Run("close closes the client", func(t *testing.T) {
		client := newRecordingClient()
		sd := &Reporter{client: client}

		require.NoError(t, sd.Close())
		assert.True(t, client.closed)
	})

	t.Run("disabled reporter publishes nothing", func(t *testing.T) {
		sd, err := Init(log.NewNoop(), Config{Enabled: false})
		require.NoError(t, err)

		assert.NotPanics(t, func() {
			sd.Incr("noop").Tag("a", "b").Success().Publish()
			sd.Histogram("noop", 1).Publish()
		})
		assert.NoError(t, sd.Close())
	})

	t.Run("nil reporter is safe to use", func(t *testing.T) {
		var sd *Reporter
		assert.Nil(t, sd.Incr("noop"))
		assert.NotPanics(t, func() {
			sd.Timing("noop", time.Second).Tag("a", "b").Publish()
		})
		assert.NoError(t, sd.Close())
	})
}
