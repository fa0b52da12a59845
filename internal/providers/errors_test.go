package providers

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimitErrorString(t *testing.T) {
	err := &RateLimitError{
		Provider:   "p",
		StatusCode: 429,
		Message:    "rate limited",
	}
	assert.NotEmpty(t, err.Error())
	assert.NotEqual(t, "rate limited", err.Error(), "status is part of the message")

	rl, ok := AsRateLimitError(fmt.Errorf("wrapped: %w", err))
	require.True(t, ok)
	assert.Same(t, err, rl)

	assert.NotEmpty(t, (&RateLimitError{}).Error(), "fallback message")
}

func TestStatusErrorString(t *testing.T) {
	err := &StatusError{Provider: "footstats", StatusCode: 502, Body: "bad gateway"}
	assert.Equal(t, "footstats: unexpected status 502: bad gateway", err.Error())
	assert.Equal(t, "footstats: unexpected status 500", (&StatusError{Provider: "footstats", StatusCode: 500}).Error())
	assert.False(t, err.NotFound())
	assert.True(t, (&StatusError{StatusCode: 404}).NotFound())

	st, ok := AsStatusError(fmt.Errorf("fetch: %w", err))
	require.True(t, ok)
	assert.Equal(t, 502, st.StatusCode)

	_, ok = AsStatusError(fmt.Errorf("plain"))
	assert.False(t, ok)
}
