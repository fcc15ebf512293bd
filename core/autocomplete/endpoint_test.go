package autocomplete_test

import (
	"testing"

	"github.com/goto/typeahead/core/autocomplete"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEndpoint(t *testing.T) {
	cases := []struct {
		Description  string
		Target       autocomplete.Target
		Options      autocomplete.Options
		ExpectedName string
		ExpectedErr  error
	}{
		{
			Description:  "single field is named after collection and field",
			Target:       autocomplete.Single("brands", "name"),
			ExpectedName: "brands_name",
		},
		{
			Description:  "multiple fields are named after the collection",
			Target:       autocomplete.Single("brands", "name", "code"),
			Options:      autocomplete.Options{DisplayValue: "name"},
			ExpectedName: "brands",
		},
		{
			Description:  "pool is named after itself",
			Target:       autocomplete.Pool("catalog", "brands", "features"),
			Options:      autocomplete.Options{DisplayValue: "name"},
			ExpectedName: "catalog",
		},
		{
			Description:  "unnamed pool joins its collections",
			Target:       autocomplete.Pool("", "brands", "features"),
			Options:      autocomplete.Options{DisplayValue: "name"},
			ExpectedName: "brands_features",
		},
		{
			Description: "pool without display value is rejected",
			Target:      autocomplete.Pool("catalog", "brands", "features"),
			ExpectedErr: autocomplete.ErrMissingDisplayField,
		},
	}

	for _, tc := range cases {
		t.Run(tc.Description, func(t *testing.T) {
			ep, err := autocomplete.NewEndpoint(tc.Target, tc.Options)
			if tc.ExpectedErr != nil {
				assert.ErrorIs(t, err, tc.ExpectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.ExpectedName, ep.Name)
			assert.Equal(t, tc.Target, ep.Target)
		})
	}

	t.Run("negative limit is rejected", func(t *testing.T) {
		_, err := autocomplete.NewEndpoint(autocomplete.Single("brands", "name"), autocomplete.Options{Limit: -1})
		assert.EqualError(t, err, "limit cannot be less than 0")
	})
}
