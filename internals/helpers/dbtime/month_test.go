package dbtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMonth(t *testing.T) {
	want := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)

	for _, in := range []string{"2024-05", "2024-05-01", " 2024-05-17 "} {
		got, err := ParseMonth(in)
		require.NoError(t, err, in)
		assert.True(t, want.Equal(got), "input %q → %v", in, got)
	}

	for _, in := range []string{"", "2024", "2024-13", "05-2024", "abc"} {
		_, err := ParseMonth(in)
		assert.Error(t, err, in)
	}
}

func TestMonthOptions(t *testing.T) {
	opts := MonthOptions(2025)
	require.Len(t, opts, 12)
	assert.Equal(t, "2025-01-01", opts[0])
	assert.Equal(t, "2025-12-01", opts[11])
}

func TestFormatAndKey(t *testing.T) {
	ts := time.Date(2023, time.November, 20, 15, 4, 0, 0, time.UTC)
	assert.Equal(t, "2023-11-01", FormatMonth(ts))
	assert.Equal(t, "2023-11", MonthKey(ts))
	assert.Equal(t, "2023-11-01", time.Time(ToDate(ts)).Format(MonthDayLayout))
}
