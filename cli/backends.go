package cli

import (
	"context"
	"fmt"

	"github.com/goto/salt/log"
	"github.com/goto/typeahead/core/autocomplete"
	"github.com/goto/typeahead/core/validator"
	"github.com/goto/typeahead/internal/store/bleveindex"
	esStore "github.com/goto/typeahead/internal/store/elasticsearch"
	"github.com/goto/typeahead/internal/store/mongodb"
	"github.com/goto/typeahead/internal/store/sqlstore"
)

// requiredKinds classifies every registered collection, failing on the
// first one without a usable trait.
func requiredKinds(registry *autocomplete.Registry) (map[autocomplete.Kind]bool, error) {
	var classifier autocomplete.TraitClassifier

	kinds := make(map[autocomplete.Kind]bool)
	for _, name := range registry.Names() {
		c, err := registry.Lookup(name)
		if err != nil {
			return nil, err
		}
		kind, err := classifier.Classify(c)
		if err != nil {
			return nil, err
		}
		kinds[kind] = true
	}
	return kinds, nil
}

// initTranslator connects to the stores backing the registered
// collections and returns a translator over them. Stores no collection
// needs are never contacted. The returned cleanup closes every client.
func initTranslator(ctx context.Context, logger log.Logger, cfg *Config, registry *autocomplete.Registry) (*autocomplete.Translator, func(), error) {
	kinds, err := requiredKinds(registry)
	if err != nil {
		return nil, noOp, err
	}

	var (
		backends []autocomplete.QueryBackend
		closers  []func()
	)
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	if kinds[autocomplete.KindRelational] {
		repo, closeFn, err := initRelational(logger, cfg.DB)
		if err != nil {
			cleanup()
			return nil, noOp, err
		}
		backends = append(backends, repo)
		closers = append(closers, closeFn)
	}

	if kinds[autocomplete.KindDocument] {
		repo, closeFn, err := initDocument(ctx, logger, cfg.MongoDB)
		if err != nil {
			cleanup()
			return nil, noOp, err
		}
		backends = append(backends, repo)
		closers = append(closers, closeFn)
	}

	if kinds[autocomplete.KindFulltextIndex] {
		repo, closeFn, err := initFulltext(logger, cfg)
		if err != nil {
			cleanup()
			return nil, noOp, err
		}
		backends = append(backends, repo)
		closers = append(closers, closeFn)
	}

	return autocomplete.NewTranslator(backends...), cleanup, nil
}

func initRelational(logger log.Logger, cfg sqlstore.Config) (autocomplete.QueryBackend, func(), error) {
	client, err := sqlstore.NewClient(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("error creating sql client: %w", err)
	}
	logger.Info("connected to relational store", "driver", client.Driver(), "host", cfg.Host, "port", cfg.Port)

	repo, err := sqlstore.NewAutocompleteRepository(client)
	if err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("create new sql autocomplete repository: %w", err)
	}
	return repo, func() {
		if err := client.Close(); err != nil {
			logger.Error("error when closing db", "err", err)
		}
	}, nil
}

func initDocument(ctx context.Context, logger log.Logger, cfg mongodb.Config) (autocomplete.QueryBackend, func(), error) {
	client, err := mongodb.NewClient(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("connected to mongodb", "database", cfg.Database)

	repo, err := mongodb.NewAutocompleteRepository(client)
	if err != nil {
		_ = client.Close(ctx)
		return nil, nil, fmt.Errorf("create new mongodb autocomplete repository: %w", err)
	}
	return repo, func() {
		if err := client.Close(context.Background()); err != nil {
			logger.Error("error when closing mongodb", "err", err)
		}
	}, nil
}

func initFulltext(logger log.Logger, cfg *Config) (autocomplete.QueryBackend, func(), error) {
	fc := cfg.Fulltext
	if fc.Engine == "" {
		fc.Engine = EngineElasticsearch
	}
	if err := validator.ValidateStruct(fc); err != nil {
		return nil, nil, fmt.Errorf("invalid fulltext engine: %w", err)
	}

	if fc.Engine == EngineBleve {
		client := bleveindex.NewClient(logger, cfg.Bleve)
		repo, err := bleveindex.NewAutocompleteRepository(client)
		if err != nil {
			return nil, nil, fmt.Errorf("create new bleve autocomplete repository: %w", err)
		}
		logger.Info("serving full-text collections from bleve", "dir", cfg.Bleve.Dir)
		return repo, func() {
			if err := client.Close(); err != nil {
				logger.Error("error when closing bleve indices", "err", err)
			}
		}, nil
	}

	esClient, err := initElasticsearch(logger, cfg.Elasticsearch)
	if err != nil {
		return nil, nil, err
	}
	repo, err := esStore.NewAutocompleteRepository(esClient, esStore.WithSortFieldSuffix(cfg.Elasticsearch.SortFieldSuffix))
	if err != nil {
		return nil, nil, fmt.Errorf("create new elasticsearch autocomplete repository: %w", err)
	}
	return repo, noOp, nil
}

func initElasticsearch(logger log.Logger, config esStore.Config) (*esStore.Client, error) {
	esClient, err := esStore.NewClient(logger, config)
	if err != nil {
		return nil, fmt.Errorf("create new elasticsearch client: %w", err)
	}
	got, err := esClient.Init()
	if err != nil {
		return nil, fmt.Errorf("establish connection to elasticsearch: %w", err)
	}
	logger.Info("connected to elasticsearch", "info", got)
	return esClient, nil
}

func noOp() {}
