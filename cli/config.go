package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/MakeNowJust/heredoc"
	"github.com/goto/salt/cmdx"
	"github.com/goto/salt/config"
	"github.com/goto/typeahead/internal/server"
	"github.com/goto/typeahead/internal/store/bleveindex"
	esStore "github.com/goto/typeahead/internal/store/elasticsearch"
	"github.com/goto/typeahead/internal/store/mongodb"
	"github.com/goto/typeahead/internal/store/sqlstore"
	"github.com/goto/typeahead/pkg/statsd"
	"github.com/goto/typeahead/pkg/telemetry"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

const configFlag = "config"

const (
	EngineElasticsearch = "elasticsearch"
	EngineBleve         = "bleve"
)

func configCommand(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config <command>",
		Short: "Manage server configuration",
		Example: heredoc.Doc(`
			$ typeahead config init
			$ typeahead config list`),
	}

	cmd.AddCommand(configInitCommand())
	cmd.AddCommand(configListCommand(cfg))

	return cmd
}

func configInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize a new server configuration",
		Example: heredoc.Doc(`
			$ typeahead config init
		`),
		Annotations: map[string]string{
			"group": "core",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := cmdx.SetConfig("typeahead")

			if err := cfg.Init(&Config{}); err != nil {
				return err
			}

			fmt.Printf("config created: %v\n", cfg.File())
			return nil
		},
	}
}

func configListCommand(cfg *Config) *cobra.Command {
	var cmd = &cobra.Command{
		Use:   "list",
		Short: "List server configuration settings",
		Example: heredoc.Doc(`
			$ typeahead config list
		`),
		Annotations: map[string]string{
			"group": "core",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return yaml.NewEncoder(os.Stdout).Encode(*cfg)
		},
	}
	return cmd
}

type Config struct {
	// Log
	LogLevel string `yaml:"log_level" mapstructure:"log_level" default:"info"`

	// Service
	Service server.Config `yaml:"service" mapstructure:"service"`

	// StatsD
	StatsD statsd.Config `yaml:"statsd" mapstructure:"statsd"`

	// Telemetry
	Telemetry telemetry.Config `yaml:"telemetry" mapstructure:"telemetry"`

	// Relational store
	DB sqlstore.Config `yaml:"db" mapstructure:"db"`

	// Document store
	MongoDB mongodb.Config `yaml:"mongodb" mapstructure:"mongodb"`

	// Full-text stores
	Elasticsearch esStore.Config    `yaml:"elasticsearch" mapstructure:"elasticsearch"`
	Bleve         bleveindex.Config `yaml:"bleve" mapstructure:"bleve"`
	Fulltext      FulltextConfig    `yaml:"fulltext" mapstructure:"fulltext"`

	Collections []CollectionConfig `yaml:"collections" mapstructure:"collections"`
	Endpoints   []EndpointConfig   `yaml:"endpoints" mapstructure:"endpoints"`
}

type FulltextConfig struct {
	// Engine serving collections with the fulltext_index trait
	Engine string `yaml:"engine" mapstructure:"engine" default:"elasticsearch" validate:"oneof=elasticsearch bleve"`
}

// CollectionConfig declares one searchable collection.
type CollectionConfig struct {
	Name     string           `yaml:"name" mapstructure:"name" validate:"required"`
	Source   string           `yaml:"source" mapstructure:"source"`
	IDField  string           `yaml:"id_field" mapstructure:"id_field"`
	Traits   []string         `yaml:"traits" mapstructure:"traits" validate:"required,min=1"`
	Computed []ComputedConfig `yaml:"computed" mapstructure:"computed" validate:"dive"`
}

// ComputedConfig declares a display accessor joining several fields.
type ComputedConfig struct {
	Name      string   `yaml:"name" mapstructure:"name" validate:"required"`
	Fields    []string `yaml:"fields" mapstructure:"fields" validate:"required,min=1"`
	Separator string   `yaml:"separator" mapstructure:"separator"`
}

// EndpointConfig declares one autocomplete endpoint, either over fields
// of a collection or over a pool of collections.
type EndpointConfig struct {
	Collection string   `yaml:"collection,omitempty" mapstructure:"collection"`
	Fields     []string `yaml:"fields,omitempty" mapstructure:"fields"`

	Pool []string `yaml:"pool,omitempty" mapstructure:"pool"`
	Name string   `yaml:"name,omitempty" mapstructure:"name"`

	DisplayValue string `yaml:"display_value,omitempty" mapstructure:"display_value"`
	Order        string `yaml:"order,omitempty" mapstructure:"order"`
	Full         bool   `yaml:"full,omitempty" mapstructure:"full"`
	Limit        int    `yaml:"limit,omitempty" mapstructure:"limit"`
}

func LoadConfig() (*Config, error) {
	var cfg Config
	err := cmdx.SetConfig("typeahead").Load(&cfg)
	if err != nil {
		if errors.As(err, &config.ConfigFileNotFoundError{}) {
			return LoadFromCurrentDir()
		}
		return &cfg, err
	}
	return &cfg, nil
}

func LoadFromCurrentDir() (*Config, error) {
	var cfg Config
	var opts []config.LoaderOption

	opts = append(opts,
		config.WithPath("./"),
		config.WithName("typeahead.yaml"),
		config.WithEnvKeyReplacer(".", "_"),
		config.WithEnvPrefix("TYPEAHEAD"),
	)

	if err := config.NewLoader(opts...).Load(&cfg); err != nil {
		if errors.As(err, &config.ConfigFileNotFoundError{}) {
			return &cfg, ErrConfigNotFound
		}
		return &cfg, err
	}
	return &cfg, nil
}

func LoadConfigFromFlag(cfgFile string, cfg *Config) error {
	var opts []config.LoaderOption
	opts = append(opts,
		config.WithFile(cfgFile),
		config.WithEnvKeyReplacer(".", "_"),
		config.WithEnvPrefix("TYPEAHEAD"),
	)

	return config.NewLoader(opts...).Load(cfg)
}

// loadCommandConfig honours the --config flag of cmd, falling back to
// the config loaded at startup.
func loadCommandConfig(cmd *cobra.Command, cfg *Config) (*Config, error) {
	cfgFile, _ := cmd.Flags().GetString(configFlag)
	if cfgFile == "" {
		return cfg, nil
	}

	var fromFlag Config
	if err := LoadConfigFromFlag(cfgFile, &fromFlag); err != nil {
		return nil, fmt.Errorf("load config %q: %w", cfgFile, err)
	}
	return &fromFlag, nil
}
