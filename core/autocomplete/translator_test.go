package autocomplete_test

import (
	"context"
	"errors"
	"testing"

	"github.com/goto/typeahead/core/autocomplete"
	"github.com/goto/typeahead/core/autocomplete/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newBackend(t *testing.T, kind autocomplete.Kind) *mocks.QueryBackend {
	b := mocks.NewQueryBackend(t)
	b.EXPECT().Kind().Return(kind)
	return b
}

func TestTranslatorExecute(t *testing.T) {
	ctx := context.Background()
	req := autocomplete.Request{
		Collections: []autocomplete.Collection{{Name: "brands"}},
		Fields:      []string{"name"},
		Term:        "ab",
		Limit:       10,
	}

	t.Run("dispatches to the backend of the kind", func(t *testing.T) {
		relational := newBackend(t, autocomplete.KindRelational)
		document := newBackend(t, autocomplete.KindDocument)
		order, err := autocomplete.ResolveOrder(autocomplete.KindRelational, req.Fields, "")
		require.NoError(t, err)

		records := []autocomplete.RawRecord{autocomplete.MapRecord{Identity: 1}}
		relational.EXPECT().BuildQuery(req, order).Return("SELECT 1", nil)
		relational.EXPECT().Execute(ctx, "SELECT 1").Return(records, nil)

		tr := autocomplete.NewTranslator(relational, document, nil)
		got, err := tr.Execute(ctx, req, autocomplete.KindRelational, order)
		require.NoError(t, err)
		assert.Equal(t, records, got)
	})

	t.Run("build errors never reach the store", func(t *testing.T) {
		backend := newBackend(t, autocomplete.KindDocument)
		order, err := autocomplete.ResolveOrder(autocomplete.KindDocument, req.Fields, "")
		require.NoError(t, err)

		boom := errors.New("boom")
		backend.EXPECT().BuildQuery(req, order).Return(nil, boom)

		tr := autocomplete.NewTranslator(backend)
		_, err = tr.Execute(ctx, req, autocomplete.KindDocument, order)
		assert.ErrorIs(t, err, boom)
		backend.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
	})

	t.Run("no backend for the kind", func(t *testing.T) {
		tr := autocomplete.NewTranslator(newBackend(t, autocomplete.KindRelational))
		order, err := autocomplete.ResolveOrder(autocomplete.KindFulltextIndex, req.Fields, "")
		require.NoError(t, err)

		_, err = tr.Execute(ctx, req, autocomplete.KindFulltextIndex, order)
		assert.ErrorIs(t, err, autocomplete.ErrUnsupportedBackend)
	})

	t.Run("order resolved for another kind", func(t *testing.T) {
		tr := autocomplete.NewTranslator(newBackend(t, autocomplete.KindRelational))
		order, err := autocomplete.ResolveOrder(autocomplete.KindDocument, req.Fields, "")
		require.NoError(t, err)

		_, err = tr.Execute(ctx, req, autocomplete.KindRelational, order)
		assert.Error(t, err)
	})

	t.Run("later backend of a kind wins", func(t *testing.T) {
		first := newBackend(t, autocomplete.KindRelational)
		second := newBackend(t, autocomplete.KindRelational)

		tr := autocomplete.NewTranslator(first, second)
		b, err := tr.Backend(autocomplete.KindRelational)
		require.NoError(t, err)
		assert.Same(t, second, b)
	})
}
