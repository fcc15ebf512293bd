package server_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goto/salt/log"
	"github.com/goto/typeahead/core/autocomplete"
	"github.com/goto/typeahead/internal/server"
	"github.com/goto/typeahead/internal/server/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCatalog(t *testing.T) *autocomplete.Catalog {
	t.Helper()

	c := autocomplete.NewCatalog()
	_, err := c.Declare(autocomplete.Single("brands", "name"), autocomplete.Options{})
	require.NoError(t, err)
	_, err = c.Declare(autocomplete.Pool("catalog", "brands", "features"), autocomplete.Options{DisplayValue: "disp", Limit: 3})
	require.NoError(t, err)
	return c
}

func TestAutocompleteHandler(t *testing.T) {
	brandsName := autocomplete.Endpoint{
		Name:   "brands_name",
		Target: autocomplete.Single("brands", "name"),
	}

	type testCase struct {
		Description  string
		Path         string
		Method       string
		Setup        func(tc *testCase, svc *mocks.Completer)
		ExpectStatus int
		ExpectBody   string
		PostCheck    func(t *testing.T, tc *testCase, resp *http.Response)
	}

	testCases := []testCase{
		{
			Description:  "should return 404 for an unknown endpoint",
			Path:         "/autocomplete/nope?term=ab",
			ExpectStatus: http.StatusNotFound,
			ExpectBody:   `{"reason":"could not find endpoint \"nope\""}`,
		},
		{
			Description: "should return an empty list for an absent term",
			Path:        "/autocomplete/brands_name",
			Setup: func(tc *testCase, svc *mocks.Completer) {
				svc.EXPECT().Complete(mock.Anything, brandsName, "").Return([]autocomplete.UniformRecord{}, nil)
			},
			ExpectStatus: http.StatusOK,
			ExpectBody:   `[]`,
		},
		{
			Description: "should return an empty list instead of null",
			Path:        "/autocomplete/brands_name?term=zz",
			Setup: func(tc *testCase, svc *mocks.Completer) {
				svc.EXPECT().Complete(mock.Anything, brandsName, "zz").Return(nil, nil)
			},
			ExpectStatus: http.StatusOK,
			ExpectBody:   `[]`,
		},
		{
			Description: "should return uniform records in store order",
			Path:        "/autocomplete/brands_name?term=ab",
			Setup: func(tc *testCase, svc *mocks.Completer) {
				svc.EXPECT().Complete(mock.Anything, brandsName, "ab").Return([]autocomplete.UniformRecord{
					{ID: 3, Label: "xab", Value: "xab"},
					{ID: 1, Label: "Abacus", Value: "Abacus"},
				}, nil)
			},
			ExpectStatus: http.StatusOK,
			ExpectBody:   `[{"id":3,"label":"xab","value":"xab"},{"id":1,"label":"Abacus","value":"Abacus"}]`,
		},
		{
			Description: "should override the endpoint limit from the query string",
			Path:        "/autocomplete/catalog?term=a&limit=5",
			Setup: func(tc *testCase, svc *mocks.Completer) {
				expected := autocomplete.Endpoint{
					Name:    "catalog",
					Target:  autocomplete.Pool("catalog", "brands", "features"),
					Options: autocomplete.Options{DisplayValue: "disp", Limit: 5},
				}
				svc.EXPECT().Complete(mock.Anything, expected, "a").Return([]autocomplete.UniformRecord{}, nil)
			},
			ExpectStatus: http.StatusOK,
			ExpectBody:   `[]`,
		},
		{
			Description:  "should return 400 for a non numeric limit",
			Path:         "/autocomplete/brands_name?term=a&limit=abc",
			ExpectStatus: http.StatusBadRequest,
			ExpectBody:   `{"reason":"limit must be an integer: \"abc\""}`,
		},
		{
			Description:  "should return 400 for a zero limit",
			Path:         "/autocomplete/brands_name?term=a&limit=0",
			ExpectStatus: http.StatusBadRequest,
			ExpectBody:   `{"reason":"limit cannot be less than 1"}`,
		},
		{
			Description:  "should return 400 for a limit above the maximum",
			Path:         "/autocomplete/brands_name?term=a&limit=500",
			ExpectStatus: http.StatusBadRequest,
			ExpectBody:   `{"reason":"limit cannot be more than 100"}`,
		},
		{
			Description: "should return 500 with the reason for a configuration error",
			Path:        "/autocomplete/brands_name?term=a",
			Setup: func(tc *testCase, svc *mocks.Completer) {
				svc.EXPECT().Complete(mock.Anything, brandsName, "a").
					Return(nil, autocomplete.UnsupportedBackendError{Collection: "brands"})
			},
			ExpectStatus: http.StatusInternalServerError,
			ExpectBody:   `{"reason":"unsupported backend: collection 'brands'"}`,
		},
		{
			Description: "should return 500 for an unknown collection behind a declared endpoint",
			Path:        "/autocomplete/brands_name?term=a",
			Setup: func(tc *testCase, svc *mocks.Completer) {
				svc.EXPECT().Complete(mock.Anything, brandsName, "a").
					Return(nil, autocomplete.NotFoundError{Collection: "brands"})
			},
			ExpectStatus: http.StatusInternalServerError,
			ExpectBody:   `{"reason":"could not find collection \"brands\""}`,
		},
		{
			Description: "should hide store errors behind a reference",
			Path:        "/autocomplete/brands_name?term=a",
			Setup: func(tc *testCase, svc *mocks.Completer) {
				svc.EXPECT().Complete(mock.Anything, brandsName, "a").
					Return(nil, fmt.Errorf("query brands: %w", errors.New("connection refused")))
			},
			ExpectStatus: http.StatusInternalServerError,
			PostCheck: func(t *testing.T, tc *testCase, resp *http.Response) {
				var body server.ErrorResponse
				require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
				assert.True(t, strings.HasPrefix(body.Reason, "Internal Server Error - ref ("), body.Reason)
				assert.NotContains(t, body.Reason, "connection refused")
			},
		},
		{
			Description:  "should reject other methods",
			Path:         "/autocomplete/brands_name?term=a",
			Method:       http.MethodPost,
			ExpectStatus: http.StatusMethodNotAllowed,
		},
		{
			Description:  "should return json 404 for unknown routes",
			Path:         "/v1/unknown",
			ExpectStatus: http.StatusNotFound,
			ExpectBody:   `{"reason":"Not Found"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Description, func(t *testing.T) {
			svc := mocks.NewCompleter(t)
			if tc.Setup != nil {
				tc.Setup(&tc, svc)
			}

			handler := server.NewHandler(server.RouterConfig{
				Logger:    log.NewNoop(),
				Service:   svc,
				Endpoints: newCatalog(t),
				MaxLimit:  100,
			})

			method := tc.Method
			if method == "" {
				method = http.MethodGet
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, httptest.NewRequest(method, tc.Path, nil))
			resp := rr.Result()
			defer resp.Body.Close()

			assert.Equal(t, tc.ExpectStatus, resp.StatusCode)
			if tc.ExpectBody != "" {
				assert.JSONEq(t, tc.ExpectBody, rr.Body.String())
				assert.Equal(t, "application/json", resp.Header.Get("content-type"))
			}
			if tc.PostCheck != nil {
				tc.PostCheck(t, &tc, resp)
			}
		})
	}
}

func TestPing(t *testing.T) {
	handler := server.NewHandler(server.RouterConfig{Logger: log.NewNoop()})

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "pong", rr.Body.String())
}

func TestRequestID(t *testing.T) {
	handler := server.NewHandler(server.RouterConfig{Logger: log.NewNoop()})

	t.Run("should assign a request id", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/ping", nil))

		assert.Len(t, rr.Header().Get(server.HeaderRequestID), 36)
	})

	t.Run("should echo the caller request id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(server.HeaderRequestID, "abc-123")

		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Equal(t, "abc-123", rr.Header().Get(server.HeaderRequestID))
	})
}
