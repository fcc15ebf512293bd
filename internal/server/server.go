package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/goto/salt/log"
	"github.com/goto/salt/mux"
)

type Config struct {
	Host string `yaml:"host" mapstructure:"host" default:"0.0.0.0"`
	Port int    `yaml:"port" mapstructure:"port" default:"8080"`

	// MaxLimit caps the limit a caller may request through the query string
	MaxLimit int `yaml:"max_limit" mapstructure:"max_limit" default:"100"`
}

func (cfg Config) addr() string { return fmt.Sprintf("%s:%d", cfg.Host, cfg.Port) }

// Serve runs the HTTP server until ctx is cancelled, then drains
// in-flight requests.
func Serve(ctx context.Context, cfg Config, logger log.Logger, handler http.Handler) error {
	logger.Info("starting server", "http_port", cfg.addr())
	if err := mux.Serve(
		ctx,
		mux.WithHTTPTarget(cfg.addr(), &http.Server{
			Handler:      handler,
			ReadTimeout:  60 * time.Second,
			WriteTimeout: 60 * time.Second,
			IdleTimeout:  120 * time.Second,
		}),
		mux.WithGracePeriod(5*time.Second),
	); !errors.Is(err, context.Canceled) {
		logger.Error("mux serve error", "err", err)
		return err
	}

	logger.Info("server stopped")
	return nil
}
