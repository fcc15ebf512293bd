package telemetry

import (
	"context"
	"time"

	"github.com/goto/salt/log"
	"github.com/newrelic/go-agent/v3/newrelic"
)

const gracePeriod = 5 * time.Second

type Config struct {
	AppVersion string `yaml:"-" mapstructure:"-"`

	AppName       string              `yaml:"app_name" mapstructure:"app_name" default:"typeahead"`
	NewRelic      NewRelicConfig      `yaml:"newrelic" mapstructure:"newrelic"`
	OpenTelemetry OpenTelemetryConfig `yaml:"open_telemetry" mapstructure:"open_telemetry"`
}

// Init starts the configured exporters. The returned cleanup flushes and
// stops every one of them and is safe to call when nothing is enabled.
func Init(ctx context.Context, cfg Config, logger log.Logger) (*newrelic.Application, func(), error) {
	var closers shutdownStack

	shutdownOTLP, err := initOTLP(ctx, cfg, logger)
	if err != nil {
		return nil, noOp, err
	}
	closers.push(shutdownOTLP)

	nrApp, err := initNewRelicMonitor(cfg.AppName, cfg.NewRelic, logger)
	if err != nil {
		closers.run()
		return nil, noOp, err
	}
	if nrApp != nil {
		closers.push(func() { nrApp.Shutdown(gracePeriod) })
	}

	return nrApp, closers.run, nil
}

// shutdownStack runs its functions in reverse order of registration.
type shutdownStack []func()

func (s *shutdownStack) push(fn func()) {
	*s = append(*s, fn)
}

func (s shutdownStack) run() {
	for i := len(s) - 1; i >= 0; i-- {
		s[i]()
	}
}

func noOp() {}
