package cli

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/blevesearch/bleve/v2"
	"github.com/goto/salt/log"
	"github.com/goto/typeahead/core/autocomplete"
	"github.com/goto/typeahead/internal/server"
	"github.com/goto/typeahead/internal/store/bleveindex"
	"github.com/goto/typeahead/internal/store/sqlstore"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteConfig(t *testing.T) *Config {
	t.Helper()

	path := filepath.Join(t.TempDir(), "typeahead.db")
	db, err := sqlx.Open(sqlstore.DriverSQLite, path)
	require.NoError(t, err)
	defer db.Close()

	for _, q := range []string{
		`CREATE TABLE brands (id INTEGER PRIMARY KEY, name TEXT, code TEXT)`,
		`INSERT INTO brands (id, name, code) VALUES (1, 'Abacus', 'AB1'), (2, 'abc', 'c2'), (3, 'xab', 'q3'), (4, 'zed', 'z4')`,
	} {
		_, err := db.Exec(q)
		require.NoError(t, err)
	}

	return &Config{
		DB: sqlstore.Config{Driver: sqlstore.DriverSQLite, Path: path},
		Collections: []CollectionConfig{
			{
				Name:   "brands",
				Traits: []string{"relational"},
				Computed: []ComputedConfig{
					{Name: "label", Fields: []string{"name", "code"}, Separator: " - "},
				},
			},
		},
		Endpoints: []EndpointConfig{
			{Collection: "brands", Fields: []string{"name"}},
			{Collection: "brands", Fields: []string{"name", "code"}, DisplayValue: "label", Full: true},
		},
	}
}

func TestNewApp(t *testing.T) {
	ctx := context.Background()

	t.Run("should serve relational endpoints from sqlite", func(t *testing.T) {
		a, err := newApp(ctx, log.NewNoop(), newSQLiteConfig(t))
		require.NoError(t, err)
		defer a.shutdown()

		ep, err := a.catalog.Lookup("brands_name")
		require.NoError(t, err)
		records, err := a.service.Complete(ctx, ep, "ab")
		require.NoError(t, err)
		assert.Equal(t, []autocomplete.UniformRecord{
			{ID: int64(1), Label: "Abacus", Value: "Abacus"},
			{ID: int64(2), Label: "abc", Value: "abc"},
		}, records)

		ep, err = a.catalog.Lookup("brands")
		require.NoError(t, err)
		records, err = a.service.Complete(ctx, ep, "b")
		require.NoError(t, err)
		assert.Equal(t, []autocomplete.UniformRecord{
			{ID: int64(1), Label: "Abacus - AB1", Value: "Abacus - AB1"},
			{ID: int64(2), Label: "abc - c2", Value: "abc - c2"},
			{ID: int64(3), Label: "xab - q3", Value: "xab - q3"},
		}, records)
	})

	t.Run("should serve full-text endpoints from bleve indices on disk", func(t *testing.T) {
		dir := t.TempDir()
		idx, err := bleve.New(filepath.Join(dir, "products"), bleve.NewIndexMapping())
		require.NoError(t, err)
		require.NoError(t, idx.Index("p1", map[string]interface{}{"name": "Abacus"}))
		require.NoError(t, idx.Index("p2", map[string]interface{}{"name": "abc deluxe"}))
		require.NoError(t, idx.Index("p3", map[string]interface{}{"name": "zed"}))
		require.NoError(t, idx.Close())

		a, err := newApp(ctx, log.NewNoop(), &Config{
			Bleve:       bleveindex.Config{Dir: dir},
			Fulltext:    FulltextConfig{Engine: EngineBleve},
			Collections: []CollectionConfig{{Name: "products", Traits: []string{"fulltext_index"}}},
			Endpoints:   []EndpointConfig{{Collection: "products", Fields: []string{"name"}}},
		})
		require.NoError(t, err)
		defer a.shutdown()

		ep, err := a.catalog.Lookup("products_name")
		require.NoError(t, err)
		records, err := a.service.Complete(ctx, ep, "ab")
		require.NoError(t, err)

		ids := []interface{}{}
		for _, r := range records {
			ids = append(ids, r.ID)
		}
		assert.ElementsMatch(t, []interface{}{"p1", "p2"}, ids)
	})

	t.Run("should fail on a collection without a known backend", func(t *testing.T) {
		_, err := newApp(ctx, log.NewNoop(), &Config{
			Collections: []CollectionConfig{{Name: "brands", Traits: []string{"graph"}}},
		})
		assert.Error(t, err)
	})

	t.Run("should fail on an unknown full-text engine", func(t *testing.T) {
		_, err := newApp(ctx, log.NewNoop(), &Config{
			Fulltext:    FulltextConfig{Engine: "solr"},
			Collections: []CollectionConfig{{Name: "products", Traits: []string{"fulltext_index"}}},
		})
		assert.EqualError(t, err, `invalid fulltext engine: error value "solr" for key "engine" not recognized, only support "elasticsearch bleve"`)
	})

	t.Run("should not contact any store without collections", func(t *testing.T) {
		a, err := newApp(ctx, log.NewNoop(), &Config{})
		require.NoError(t, err)
		a.shutdown()
		assert.Empty(t, a.catalog.List())
	})
}

func TestServeSQLiteEndpoint(t *testing.T) {
	a, err := newApp(context.Background(), log.NewNoop(), newSQLiteConfig(t))
	require.NoError(t, err)
	defer a.shutdown()

	handler := server.NewHandler(server.RouterConfig{
		Logger:    log.NewNoop(),
		Service:   a.service,
		Endpoints: a.catalog,
		MaxLimit:  100,
	})

	t.Run("should return matching records", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/autocomplete/brands_name?term=ab&limit=1", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[{"id":1,"label":"Abacus","value":"Abacus"}]`, rr.Body.String())
	})

	t.Run("should return an empty list for an empty term", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/autocomplete/brands_name?term=", nil))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[]`, rr.Body.String())
	})

	t.Run("should return 404 for an undeclared endpoint", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/autocomplete/brands_code?term=ab", nil))

		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.JSONEq(t, `{"reason":"could not find endpoint \"brands_code\""}`, rr.Body.String())
	})
}
