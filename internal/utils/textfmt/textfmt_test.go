package textfmt_test

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/mindfulhq/mindful_journal_app/internal/utils/textfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestISOTimestamp(t *testing.T) {
	loc := time.FixedZone("CET", 60*60)
	ts := time.Date(2024, 3, 2, 15, 5, 9, 123_000_000, loc)

	got := textfmt.ISOTimestamp(ts)
	assert.Equal(t, "2024-03-02T14:05:09.123Z", got, "should normalize to UTC with 3 fractional digits")

	parsed, err := time.Parse(time.RFC3339, got)
	require.NoError(t, err, "output must stay RFC 3339 parseable")
	assert.True(t, parsed.Equal(ts))
}

func TestISOTimestampWholeSeconds(t *testing.T) {
	ts := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2024-01-01T00:00:00.000Z", textfmt.ISOTimestamp(ts))
}

func TestDecimal1(t *testing.T) {
	assert.Equal(t, "18.5", textfmt.Decimal1(18.5))
	assert.Equal(t, "18.0", textfmt.Decimal1(18))
	assert.Equal(t, "-3.3", textfmt.Decimal1(-3.25001))
	assert.Equal(t, "0.0", textfmt.Decimal1(0))
}

func TestHumanBytes(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0 B"},
		{999, "999 B"},
		{1000, "1.0 KB"},
		{153_600, "153.6 KB"},
		{999_999, "1000.0 KB"},
		{1_000_000, "1.0 MB"},
		{2_450_000, "2.5 MB"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, textfmt.HumanBytes(tc.n), "n=%d", tc.n)
	}
}

func TestCSVEscapePassthrough(t *testing.T) {
	assert.Equal(t, "plain", textfmt.CSVEscape("plain"))
	assert.Equal(t, "", textfmt.CSVEscape(""))
	assert.Equal(t, "with space", textfmt.CSVEscape("with space"))
}

func TestCSVEscapeRoundTrip(t *testing.T) {
	cases := []string{
		`has,comma`,
		`has "quote"`,
		"has\nnewline",
		"has\rcarriage",
		`mixed, "all"` + "\nof it",
		`""`,
	}
	for _, original := range cases {
		row := textfmt.CSVEscape(original) + "," + textfmt.CSVEscape("second")

		r := csv.NewReader(strings.NewReader(row))
		records, err := r.ReadAll()
		require.NoError(t, err, "case %q", original)
		require.Len(t, records, 1)
		require.Len(t, records[0], 2)
		assert.Equal(t, original, records[0][0], "round trip must recover the original field")
	}
}
