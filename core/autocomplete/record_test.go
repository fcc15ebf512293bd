package autocomplete_test

import (
	"testing"

	"github.com/goto/typeahead/core/autocomplete"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapRecordField(t *testing.T) {
	rec := autocomplete.MapRecord{
		Identity: 1,
		Values: map[string]interface{}{
			"name":       "abc",
			"owner.name": "flat",
			"meta": map[string]interface{}{
				"origin": map[string]interface{}{"country": "NL"},
			},
		},
	}

	v, ok := rec.Field("name")
	assert.True(t, ok)
	assert.Equal(t, "abc", v)

	v, ok = rec.Field("owner.name")
	assert.True(t, ok)
	assert.Equal(t, "flat", v)

	v, ok = rec.Field("meta.origin.country")
	assert.True(t, ok)
	assert.Equal(t, "NL", v)

	_, ok = rec.Field("meta.origin.city")
	assert.False(t, ok)

	_, ok = rec.Field("name.first")
	assert.False(t, ok)
}

func TestNormalize(t *testing.T) {
	records := []autocomplete.RawRecord{
		autocomplete.MapRecord{Identity: 3, Values: map[string]interface{}{"name": "abc"}},
		autocomplete.MapRecord{Identity: 1, Values: map[string]interface{}{"name": "abd"}},
		autocomplete.MapRecord{Identity: 2, Values: map[string]interface{}{"name": []byte("abe")}},
	}

	t.Run("order is preserved and label equals value", func(t *testing.T) {
		results, err := autocomplete.Normalize(records, autocomplete.FieldAccessor("name"))
		require.NoError(t, err)
		assert.Equal(t, []autocomplete.UniformRecord{
			{ID: 3, Label: "abc", Value: "abc"},
			{ID: 1, Label: "abd", Value: "abd"},
			{ID: 2, Label: "abe", Value: "abe"},
		}, results)
	})

	t.Run("no records", func(t *testing.T) {
		results, err := autocomplete.Normalize(nil, autocomplete.FieldAccessor("name"))
		require.NoError(t, err)
		assert.NotNil(t, results)
		assert.Empty(t, results)
	})

	t.Run("absent display field", func(t *testing.T) {
		_, err := autocomplete.Normalize(records, autocomplete.FieldAccessor("title"))
		assert.Error(t, err)
	})

	t.Run("record without id", func(t *testing.T) {
		_, err := autocomplete.Normalize([]autocomplete.RawRecord{
			autocomplete.MapRecord{Values: map[string]interface{}{"name": "abc"}},
		}, autocomplete.FieldAccessor("name"))
		assert.ErrorIs(t, err, autocomplete.ErrMissingID)
	})

	t.Run("non string values are rendered", func(t *testing.T) {
		results, err := autocomplete.Normalize([]autocomplete.RawRecord{
			autocomplete.MapRecord{Identity: "x", Values: map[string]interface{}{"code": 42, "none": nil}},
		}, autocomplete.FieldAccessor("code"))
		require.NoError(t, err)
		assert.Equal(t, "42", results[0].Label)

		results, err = autocomplete.Normalize([]autocomplete.RawRecord{
			autocomplete.MapRecord{Identity: "x", Values: map[string]interface{}{"none": nil}},
		}, autocomplete.FieldAccessor("none"))
		require.NoError(t, err)
		assert.Equal(t, "", results[0].Label)
	})
}

func TestCollectionAccessor(t *testing.T) {
	c := autocomplete.Collection{
		Name: "users",
		Computed: map[string]autocomplete.Accessor{
			"full_name": autocomplete.Concat(" ", "first_name", "last_name", "nickname"),
		},
	}
	rec := autocomplete.MapRecord{Identity: 7, Values: map[string]interface{}{
		"first_name": "Ada",
		"last_name":  "Lovelace",
	}}

	text, err := c.Accessor("full_name")(rec)
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", text)

	text, err = c.Accessor("first_name")(rec)
	require.NoError(t, err)
	assert.Equal(t, "Ada", text)
}
