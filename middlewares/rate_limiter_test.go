package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCustomRate(t *testing.T) {
	tests := []struct {
		input  string
		limit  int64
		period time.Duration
	}{
		{"10-2m", 10, 2 * time.Minute},
		{"5-1h", 5, time.Hour},
		{"20-10s", 20, 10 * time.Second},
		{"30-20m", 30, 20 * time.Minute},
	}
	for _, tt := range tests {
		rate, err := ParseCustomRate(tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.limit, rate.Limit, tt.input)
		assert.Equal(t, tt.period, rate.Period, tt.input)
	}
}

func TestParseCustomRateInvalid(t *testing.T) {
	for _, input := range []string{"", "10", "10-", "-2m", "ten-2m", "10-2d", "10-2m-extra"} {
		_, err := ParseCustomRate(input)
		assert.Error(t, err, "input %q", input)
	}
}
