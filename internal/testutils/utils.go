package testutils

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/goto/typeahead/core/autocomplete"
	"github.com/stretchr/testify/assert"
)

// RecordIDs returns the identity of every record in order.
func RecordIDs(records []autocomplete.RawRecord) []interface{} {
	ids := make([]interface{}, len(records))
	for i, r := range records {
		ids[i] = r.ID()
	}
	return ids
}

// AssertRecordIDs fails the test when records do not carry the expected
// identities in the expected order.
func AssertRecordIDs(t *testing.T, expected []interface{}, records []autocomplete.RawRecord) {
	t.Helper()

	actual := RecordIDs(records)
	if diff := cmp.Diff(expected, actual); diff != "" {
		msg := fmt.Sprintf(
			"Not equal:\n"+
				"expected:\n\t'%v'\n"+
				"actual:\n\t'%v'\n"+
				"diff (-expected +actual):\n%s",
			expected, actual, diff,
		)
		assert.Fail(t, msg)
	}
}
