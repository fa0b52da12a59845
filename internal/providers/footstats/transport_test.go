package footstats

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeBaseURLTrimsTrailingSlashAndDefaults(t *testing.T) {
	cases := map[string]string{
		"":                             defaultBaseURL,
		"  ":                           defaultBaseURL,
		"https://api.example.com/3.1/": "https://api.example.com/3.1",
		"https://api.example.com":      "https://api.example.com",
	}
	for input, expected := range cases {
		assert.Equal(t, expected, normalizeBaseURL(input), "input %q", input)
	}
}

func TestResolveHTTPClientTimeouts(t *testing.T) {
	client, ok := resolveHTTPClient(nil, 0).(*http.Client)
	require.True(t, ok)
	assert.Equal(t, defaultHTTPTimeout, client.Timeout)

	client, ok = resolveHTTPClient(nil, 3*time.Second).(*http.Client)
	require.True(t, ok)
	assert.Equal(t, 3*time.Second, client.Timeout)

	custom := &http.Client{Timeout: 5 * time.Second}
	assert.Same(t, custom, resolveHTTPClient(custom, time.Second))
}

func TestParseRetryAfter(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, 12*time.Second, parseRetryAfter("12", now))
	assert.Equal(t, 12*time.Second, parseRetryAfter(" 12 ", now))
	assert.Equal(t, time.Duration(0), parseRetryAfter("0", now))
	assert.Equal(t, time.Minute, parseRetryAfter(now.Add(time.Minute).Format(http.TimeFormat), now))
	assert.Equal(t, time.Duration(0), parseRetryAfter(now.Add(-time.Minute).Format(http.TimeFormat), now), "past dates mean retry now")
	assert.Equal(t, time.Duration(0), parseRetryAfter("", now))
	assert.Equal(t, time.Duration(0), parseRetryAfter("soon", now))
}

func TestParseRetryAfterRejectsNonHeaderValues(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	for _, v := range []string{"5m", "1h", "1.5", "-3", "10s", "+5"} {
		assert.Equal(t, time.Duration(0), parseRetryAfter(v, now), "value %q", v)
	}
}
