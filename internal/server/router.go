package server

import (
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/goto/salt/log"
	"github.com/goto/typeahead/pkg/statsd"
	"github.com/newrelic/go-agent/v3/newrelic"
)

type RouterConfig struct {
	Logger    log.Logger
	NewRelic  *newrelic.Application
	StatsD    *statsd.Reporter
	Service   Completer
	Endpoints EndpointLookup
	MaxLimit  int
}

// NewHandler builds the full HTTP handler: routes, middlewares,
// compression and panic recovery.
func NewHandler(cfg RouterConfig) http.Handler {
	router := mux.NewRouter()
	router.Use(requestIDMiddleware, monitoringMiddleware(cfg.StatsD))
	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		WriteJSONError(w, http.StatusNotFound, http.StatusText(http.StatusNotFound))
	})

	ac := NewAutocompleteHandler(cfg.Logger, cfg.Service, cfg.Endpoints, cfg.MaxLimit)

	router.Handle(newrelic.WrapHandle(cfg.NewRelic, "/ping", http.HandlerFunc(ping))).
		Methods(http.MethodGet)
	router.Handle(newrelic.WrapHandle(cfg.NewRelic, "/autocomplete/{endpoint}", http.HandlerFunc(ac.Complete))).
		Methods(http.MethodGet)

	return handlers.RecoveryHandler(handlers.PrintRecoveryStack(false))(
		handlers.CompressHandler(router),
	)
}

func ping(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("content-type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("pong"))
}
