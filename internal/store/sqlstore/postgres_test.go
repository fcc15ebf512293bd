package sqlstore_test

import (
	"context"
	"testing"

	"github.com/goto/salt/log"
	"github.com/goto/typeahead/core/autocomplete"
	"github.com/goto/typeahead/internal/store/sqlstore"
	"github.com/goto/typeahead/internal/testutils"
	"github.com/stretchr/testify/suite"
)

type PostgresAutocompleteTestSuite struct {
	suite.Suite
	ctx    context.Context
	client *sqlstore.Client
	repo   *sqlstore.AutocompleteRepository
}

func (r *PostgresAutocompleteTestSuite) SetupSuite() {
	var err error

	logger := log.NewLogrus()
	port, err := testutils.RunTestPG(r.T(), logger)
	if err != nil {
		r.T().Skipf("postgres is not available: %v", err)
	}

	r.ctx = context.Background()
	r.client, err = sqlstore.NewClient(sqlstore.Config{
		Driver:   sqlstore.DriverPostgres,
		Host:     testutils.PGHost,
		Port:     port,
		Name:     testutils.PGName,
		User:     testutils.PGUsername,
		Password: testutils.PGPassword,
	})
	r.Require().NoError(err)

	r.repo, err = sqlstore.NewAutocompleteRepository(r.client)
	r.Require().NoError(err)

	r.Require().NoError(r.client.ExecQueries(r.ctx, fixtures))
}

func (r *PostgresAutocompleteTestSuite) TearDownSuite() {
	if r.client != nil {
		r.NoError(r.client.Close())
	}
}

func (r *PostgresAutocompleteTestSuite) TestPrefix() {
	records, err := search(r.T(), r.repo, autocomplete.Single("brands", "name"), []autocomplete.Collection{brands}, "AB", autocomplete.Options{Order: "id ASC"})
	r.Require().NoError(err)
	testutils.AssertRecordIDs(r.T(), []interface{}{int64(1), int64(2)}, records)
}

func (r *PostgresAutocompleteTestSuite) TestEscapedTerm() {
	records, err := search(r.T(), r.repo, autocomplete.Single("brands", "name"), []autocomplete.Collection{brands}, "a_", autocomplete.Options{})
	r.Require().NoError(err)
	testutils.AssertRecordIDs(r.T(), []interface{}{int64(5)}, records)
}

func (r *PostgresAutocompleteTestSuite) TestPool() {
	records, err := search(r.T(), r.repo, autocomplete.Pool("catalog", "brands", "features"), []autocomplete.Collection{brands, features}, "ab",
		autocomplete.Options{DisplayValue: "name", Full: true, Order: "id ASC"})
	r.Require().NoError(err)
	testutils.AssertRecordIDs(r.T(), []interface{}{int64(1), int64(2), int64(3), int64(10)}, records)
}

func (r *PostgresAutocompleteTestSuite) TestUndefinedTable() {
	missing := autocomplete.Collection{Name: "missing", Traits: autocomplete.Traits{Relational: true}}
	_, err := search(r.T(), r.repo, autocomplete.Single("missing", "name"), []autocomplete.Collection{missing}, "ab", autocomplete.Options{})
	r.ErrorContains(err, "undefined table")
}

func TestPostgresAutocomplete(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping postgres integration test in short mode")
	}
	suite.Run(t, &PostgresAutocompleteTestSuite{})
}
