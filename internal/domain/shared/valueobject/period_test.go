package valueobject

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePeriod(t *testing.T) {
	t.Run("parses valid token", func(t *testing.T) {
		p, err := ParsePeriod("2024-03")
		require.NoError(t, err)
		assert.Equal(t, 2024, p.Year())
		assert.Equal(t, time.March, p.Month())
		assert.Equal(t, "2024-03", p.String())
	})

	t.Run("rejects malformed tokens", func(t *testing.T) {
		for _, token := range []string{"", "2024", "2024-3", "2024/03", "24-03", "2024-00", "2024-13"} {
			_, err := ParsePeriod(token)
			assert.Error(t, err, "token %q should not parse", token)
		}
	})
}

func TestPeriod_Bounds(t *testing.T) {
	tests := []struct {
		token   string
		lastDay int
	}{
		{"2024-01", 31},
		{"2024-02", 29}, // leap year
		{"2023-02", 28},
		{"2024-04", 30},
		{"2024-12", 31},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			p, err := ParsePeriod(tt.token)
			require.NoError(t, err)
			assert.Equal(t, 1, p.Start().Day())
			assert.Equal(t, tt.lastDay, p.End().Day())
			assert.Equal(t, p.Start().Month(), p.End().Month())
		})
	}
}

func TestPeriod_Contains(t *testing.T) {
	p, err := ParsePeriod("2024-02")
	require.NoError(t, err)

	assert.True(t, p.Contains(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, p.Contains(time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)))
	assert.False(t, p.Contains(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, p.Contains(time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)))

	// time of day on the boundary day is irrelevant
	assert.True(t, p.Contains(time.Date(2024, 2, 29, 23, 59, 59, 0, time.UTC)))
}

func TestPeriodOf(t *testing.T) {
	p := PeriodOf(time.Date(2025, 7, 15, 10, 30, 0, 0, time.UTC))
	assert.Equal(t, "2025-07", p.String())
}
