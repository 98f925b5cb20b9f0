package statistics

import (
	"testing"
	"time"

	gerr "github.com/jekabolt/grbpwr-stats/internal/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRangeWindow(t *testing.T) {
	tr, err := RangeWindow("2024-01-01", "2024-01-31")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), tr.From)
	assert.Equal(t, time.Date(2024, 1, 31, 23, 59, 59, int(999*time.Millisecond), time.UTC), tr.To)

	// single day
	tr, err = RangeWindow("2024-02-29", "2024-02-29")
	require.NoError(t, err)
	assert.True(t, tr.Contains(time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)))
	assert.True(t, tr.Contains(time.Date(2024, 2, 29, 23, 59, 59, int(999*time.Millisecond), time.UTC)))
	assert.False(t, tr.Contains(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)))

	// timestamps collapse to their UTC day
	tr, err = RangeWindow("2024-01-01T15:00:00+02:00", "2024-01-02T01:00:00+03:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), tr.From)
	assert.Equal(t, time.Date(2024, 1, 1, 23, 59, 59, int(999*time.Millisecond), time.UTC), tr.To)
}

func TestRangeWindowValidation(t *testing.T) {
	cases := map[string][2]string{
		"missing start": {"", "2024-01-31"},
		"missing end":   {"2024-01-01", " "},
		"bad start":     {"01/01/2024", "2024-01-31"},
		"bad end":       {"2024-01-01", "2024-13-01"},
		"reversed":      {"2024-02-01", "2024-01-31"},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := RangeWindow(c[0], c[1])
			assert.True(t, gerr.IsValidation(err), "got %v", err)
		})
	}
}

func TestYearWindow(t *testing.T) {
	tr, err := YearWindow("2024")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), tr.From)
	assert.Equal(t, time.Date(2024, 12, 31, 23, 59, 59, int(999*time.Millisecond), time.UTC), tr.To)

	prev := PreviousYear(tr)
	assert.Equal(t, time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), prev.From)
	assert.Equal(t, time.Date(2023, 12, 31, 23, 59, 59, int(999*time.Millisecond), time.UTC), prev.To)

	for _, year := range []string{"", "abc", "24", "20245", "-202", "20x4"} {
		_, err := YearWindow(year)
		assert.True(t, gerr.IsValidation(err), "year %q: got %v", year, err)
	}
}

func TestPercentDiff(t *testing.T) {
	cases := []struct {
		current, previous string
		want              string
	}{
		{"0", "0", "0"},
		{"5", "0", "100"},
		{"0.01", "0", "100"},
		{"150", "100", "50"},
		{"50", "100", "-50"},
		{"0", "100", "-100"},
		{"1", "3", "-66.67"},
		{"2", "3", "-33.33"},
		{"4", "3", "33.33"},
		{"370", "40", "825"},
	}
	for _, c := range cases {
		got := PercentDiff(decimal.RequireFromString(c.current), decimal.RequireFromString(c.previous))
		assert.Truef(t, decimal.RequireFromString(c.want).Equal(got),
			"diff(%s, %s): want %s, got %s", c.current, c.previous, c.want, got)
		assert.LessOrEqual(t, -got.Exponent(), int32(2))
	}
	assert.Equal(t, "50.00", PercentDiff(decimal.NewFromInt(150), decimal.NewFromInt(100)).StringFixed(2))
	assert.Equal(t, "100.00", percentDiffInt(5, 0).StringFixed(2))
}
