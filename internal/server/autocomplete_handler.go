package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/goto/salt/log"
	"github.com/goto/typeahead/core/autocomplete"
	"github.com/goto/typeahead/core/validator"
)

//go:generate mockery --name=Completer -r --case underscore --with-expecter --structname Completer --filename completer.go --output=./mocks

type Completer interface {
	Complete(ctx context.Context, ep autocomplete.Endpoint, term string) ([]autocomplete.UniformRecord, error)
}

type EndpointLookup interface {
	Lookup(name string) (autocomplete.Endpoint, error)
}

type AutocompleteHandler struct {
	logger    log.Logger
	service   Completer
	endpoints EndpointLookup
	maxLimit  int
}

func NewAutocompleteHandler(logger log.Logger, service Completer, endpoints EndpointLookup, maxLimit int) *AutocompleteHandler {
	return &AutocompleteHandler{
		logger:    logger,
		service:   service,
		endpoints: endpoints,
		maxLimit:  maxLimit,
	}
}

// Complete serves GET /autocomplete/{endpoint}?term=...[&limit=n]
func (h *AutocompleteHandler) Complete(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["endpoint"]
	ep, err := h.endpoints.Lookup(name)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	params := r.URL.Query()
	if raw := params.Get("limit"); raw != "" {
		limit, err := h.parseLimit(raw)
		if err != nil {
			WriteJSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		ep.Options.Limit = limit
	}

	results, err := h.service.Complete(r.Context(), ep, params.Get("term"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	// return an empty list instead of 'null'
	if results == nil {
		results = []autocomplete.UniformRecord{}
	}
	writeJSON(w, http.StatusOK, results)
}

func (h *AutocompleteHandler) parseLimit(raw string) (int, error) {
	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("limit must be an integer: %q", raw)
	}

	tags := "gte=1"
	if h.maxLimit > 0 {
		tags += fmt.Sprintf(",lte=%d", h.maxLimit)
	}
	if err := validator.ValidateVar("limit", limit, tags); err != nil {
		return 0, err
	}
	return limit, nil
}

func (h *AutocompleteHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var notFound autocomplete.NotFoundError
	switch {
	case errors.As(err, &notFound) && notFound.Endpoint != "":
		WriteJSONError(w, http.StatusNotFound, err.Error())

	case errors.Is(err, autocomplete.ErrUnsupportedBackend),
		errors.Is(err, autocomplete.ErrMissingDisplayField),
		errors.Is(err, autocomplete.ErrInvalidOrderSpec),
		errors.As(err, &notFound):
		h.logger.Error("misconfigured endpoint", "endpoint", mux.Vars(r)["endpoint"], "err", err)
		WriteJSONError(w, http.StatusInternalServerError, err.Error())

	default:
		ref := time.Now().Unix()
		h.logger.Error("error searching records", "ref", ref, "request_id", r.Header.Get(HeaderRequestID), "err", err)
		WriteJSONError(w, http.StatusInternalServerError, fmt.Sprintf(
			"%s - ref (%d)",
			http.StatusText(http.StatusInternalServerError),
			ref,
		))
	}
}
