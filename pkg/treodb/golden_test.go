package treodb

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ysei/perl-modules-Palm-Treo680MessagesDB/internal/testutil"
)

func TestRecordsGolden(t *testing.T) {
	fixtures := []struct {
		name string
		opts DecodeOptions
	}{
		{name: "inbound_400c"},
		{name: "sent_4009_utc", opts: DecodeOptions{TimeZone: "UTC"}},
		{name: "legacy_plain"},
		{name: "legacy_trsm"},
		{name: "unknown_tag"},
	}
	for _, tc := range fixtures {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			raw := testutil.LoadRecord(t, "records/"+tc.name+".hex")
			result, err := DecodeRecordWithOptions(context.Background(), raw, tc.opts)
			require.NoError(t, err)
			var expected map[string]any
			testutil.LoadJSON(t, "records/"+tc.name+".json", &expected)
			require.Equal(t, "", diffFields(expected, result.Fields))
		})
	}
}

// diffFields compares a golden field map with a decoded one. Golden values
// arrive as json.Number/string; decoded ones are typed, so both sides are
// compared through their printed form.
func diffFields(expected, actual map[string]any) string {
	if len(expected) != len(actual) {
		return fmt.Sprintf("len mismatch expected %d actual %d (expected %v actual %v)", len(expected), len(actual), expected, actual)
	}
	for k, v := range expected {
		av, ok := actual[k]
		if !ok {
			return fmt.Sprintf("missing key %s", k)
		}
		if fmt.Sprintf("%v", v) != fmt.Sprintf("%v", av) {
			return fmt.Sprintf("key %s mismatch expected %v got %v", k, v, av)
		}
	}
	return ""
}
