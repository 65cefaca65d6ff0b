package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRangeKnown(t *testing.T) {
	for token, want := range rangeTokens {
		assert.Equal(t, want, ParseRange(token), token)
		assert.Equal(t, token, want.String())
	}
}

func TestParseRangeFallback(t *testing.T) {
	for _, token := range []string{"", "1MO", "1 mo", "2mo", "forever", "1mo ", "YTD"} {
		assert.Equal(t, ParseRange("1mo"), ParseRange(token), "token %q", token)
		assert.False(t, IsKnownRange(token))
	}
}

func TestParseIntervalKnown(t *testing.T) {
	for token, want := range intervalTokens {
		assert.Equal(t, want, ParseInterval(token), token)
	}
	assert.Equal(t, ParseInterval("60m"), ParseInterval("1h"))
	assert.Equal(t, "1h", ParseInterval("60m").String())
}

func TestParseIntervalFallback(t *testing.T) {
	for _, token := range []string{"", "1D", "4h", "1w", "daily", "60"} {
		assert.Equal(t, ParseInterval("1d"), ParseInterval(token), "token %q", token)
		assert.False(t, IsKnownInterval(token))
	}
}
