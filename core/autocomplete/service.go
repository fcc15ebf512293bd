package autocomplete

import (
	"context"
	"time"

	"github.com/goto/salt/log"
	"github.com/goto/typeahead/pkg/statsd"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/goto/typeahead/core/autocomplete"

//go:generate mockery --name=CollectionResolver -r --case underscore --with-expecter --structname CollectionResolver --filename collection_resolver.go --output=./mocks

type CollectionResolver interface {
	Lookup(name string) (Collection, error)
}

type Service struct {
	logger      log.Logger
	collections CollectionResolver
	classifier  Classifier
	translator  *Translator
	statsd      *statsd.Reporter

	tracer        trace.Tracer
	searchCounter metric.Int64Counter
}

type ServiceOption func(*Service)

func ServiceWithStatsDReporter(reporter *statsd.Reporter) ServiceOption {
	return func(s *Service) {
		s.statsd = reporter
	}
}

func ServiceWithClassifier(classifier Classifier) ServiceOption {
	return func(s *Service) {
		s.classifier = classifier
	}
}

func NewService(logger log.Logger, collections CollectionResolver, translator *Translator, opts ...ServiceOption) *Service {
	searchCounter, err := otel.Meter(instrumentationName).
		Int64Counter("typeahead.autocomplete.search")
	if err != nil {
		otel.Handle(err)
	}

	s := &Service{
		logger:        logger,
		collections:   collections,
		classifier:    TraitClassifier{},
		translator:    translator,
		tracer:        otel.Tracer(instrumentationName),
		searchCounter: searchCounter,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Complete serves a declared endpoint.
func (s *Service) Complete(ctx context.Context, ep Endpoint, term string) ([]UniformRecord, error) {
	return s.Autocomplete(ctx, ep.Target, term, ep.Options)
}

// Autocomplete finds the records of target matching term. An empty term
// yields no records and no store access. Every configuration error is
// reported before the store is queried.
func (s *Service) Autocomplete(ctx context.Context, target Target, term string, opts Options) (results []UniformRecord, err error) {
	if err := target.Validate(opts); err != nil {
		return nil, err
	}
	if term == "" {
		return []UniformRecord{}, nil
	}

	collections, err := s.resolve(target)
	if err != nil {
		return nil, err
	}

	kind, err := ClassifyPool(s.classifier, collections)
	if err != nil {
		return nil, err
	}

	req, err := NewRequest(target, collections, term, opts)
	if err != nil {
		return nil, err
	}

	order, err := ResolveOrder(kind, req.Fields, req.OrderSpec)
	if err != nil {
		return nil, err
	}

	endpoint := EndpointName(target)
	ctx, span := s.tracer.Start(ctx, "autocomplete.search", trace.WithAttributes(
		attribute.String("typeahead.endpoint", endpoint),
		attribute.String("typeahead.kind", kind.String()),
	))
	defer func(start time.Time) {
		s.instrument(ctx, span, endpoint, kind, start, len(results), err)
	}(time.Now())

	records, err := s.translator.Execute(ctx, req, kind, order)
	if err != nil {
		return nil, err
	}

	accessor := FieldAccessor(req.DisplayField)
	if !req.MultiSource {
		accessor = req.Collection().Accessor(req.DisplayField)
	}
	results, err = Normalize(records, accessor)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("autocomplete search", "endpoint", endpoint, "kind", kind, "match_mode", req.MatchMode, "results", len(results))
	return results, nil
}

func (s *Service) resolve(target Target) ([]Collection, error) {
	names := target.CollectionNames()
	collections := make([]Collection, 0, len(names))
	for _, name := range names {
		c, err := s.collections.Lookup(name)
		if err != nil {
			return nil, err
		}
		collections = append(collections, c)
	}
	return collections, nil
}

func (s *Service) instrument(ctx context.Context, span trace.Span, endpoint string, kind Kind, start time.Time, found int, err error) {
	defer span.End()

	success := "true"
	if err != nil {
		success = "false"
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	if s.searchCounter != nil {
		s.searchCounter.Add(ctx, 1, metric.WithAttributes(
			attribute.String("endpoint", endpoint),
			attribute.String("kind", kind.String()),
			attribute.String("success", success),
		))
	}

	if s.statsd != nil {
		s.statsd.Incr("autocomplete.search").
			Tag("endpoint", endpoint).
			Tag("kind", kind.String()).
			Tag("success", success).
			Publish()
		s.statsd.Timing("autocomplete.search.duration", time.Since(start)).
			Tag("endpoint", endpoint).
			Tag("kind", kind.String()).
			Tag("success", success).
			Publish()
		if err == nil {
			s.statsd.Histogram("autocomplete.search.results", float64(found)).
				Tag("endpoint", endpoint).
				Tag("kind", kind.String()).
				Publish()
		}
	}
}
