package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc"
	"github.com/goto/salt/log"
	"github.com/goto/typeahead/core/autocomplete"
	"github.com/goto/typeahead/internal/server"
	"github.com/goto/typeahead/pkg/statsd"
	"github.com/goto/typeahead/pkg/telemetry"
	"github.com/spf13/cobra"
)

// Version of the current build. overridden by the build system.
// see "Makefile" for more information
var (
	Version string
)

func serverCmd(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "server <command>",
		Aliases: []string{"s"},
		Short:   "Run typeahead server",
		Long:    "Server management commands.",
		Example: heredoc.Doc(`
			$ typeahead server start
			$ typeahead server start -c ./config.yaml
		`),
	}

	cmd.AddCommand(serverStartCommand(cfg))

	return cmd
}

func serverStartCommand(cfg *Config) *cobra.Command {
	c := &cobra.Command{
		Use:     "start",
		Short:   "Start server on default port 8080",
		Example: "typeahead server start",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadCommandConfig(cmd, cfg)
			if err != nil {
				return err
			}
			if err := runServer(cmd.Context(), cfg); err != nil {
				return fmt.Errorf("run server: %w", err)
			}
			return nil
		},
	}

	return c
}

// app holds everything needed to serve declared endpoints.
type app struct {
	service  *autocomplete.Service
	catalog  *autocomplete.Catalog
	shutdown func()
}

// newApp builds the registry and catalog from cfg and connects to the
// stores they need. Configuration errors surface here, before any
// request is served.
func newApp(ctx context.Context, logger log.Logger, cfg *Config, opts ...autocomplete.ServiceOption) (*app, error) {
	registry, err := buildRegistry(cfg.Collections)
	if err != nil {
		return nil, err
	}
	catalog, err := buildCatalog(cfg.Endpoints)
	if err != nil {
		return nil, err
	}
	if err := checkEndpoints(registry, catalog); err != nil {
		return nil, err
	}

	translator, cleanup, err := initTranslator(ctx, logger, cfg, registry)
	if err != nil {
		return nil, err
	}

	return &app{
		service:  autocomplete.NewService(logger, registry, translator, opts...),
		catalog:  catalog,
		shutdown: cleanup,
	}, nil
}

func runServer(ctx context.Context, cfg *Config) error {
	logger := initLogger(cfg.LogLevel)
	logger.Info("typeahead starting", "version", Version)

	cfg.Telemetry.AppVersion = Version
	nrApp, cleanUpTelemetry, err := telemetry.Init(ctx, cfg.Telemetry, logger)
	if err != nil {
		return err
	}
	defer cleanUpTelemetry()

	statsdReporter, err := statsd.Init(logger, cfg.StatsD)
	if err != nil {
		return err
	}
	defer func() {
		if err := statsdReporter.Close(); err != nil {
			logger.Error("error when closing statsd reporter", "err", err)
		}
	}()

	a, err := newApp(ctx, logger, cfg, autocomplete.ServiceWithStatsDReporter(statsdReporter))
	if err != nil {
		return err
	}
	defer a.shutdown()
	logger.Info("endpoints declared", "count", len(a.catalog.List()))

	return server.Serve(ctx, cfg.Service, logger, server.NewHandler(server.RouterConfig{
		Logger:    logger,
		NewRelic:  nrApp,
		StatsD:    statsdReporter,
		Service:   a.service,
		Endpoints: a.catalog,
		MaxLimit:  cfg.Service.MaxLimit,
	}))
}

func initLogger(logLevel string) *log.Logrus {
	logger := log.NewLogrus(
		log.LogrusWithLevel(logLevel),
		log.LogrusWithWriter(os.Stdout),
	)
	return logger
}
