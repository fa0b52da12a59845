package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBoolEnvOrDefault(t *testing.T) {
	t.Setenv("BOOL_TEST", "")
	assert.True(t, boolEnvOrDefault("BOOL_TEST", true), "default when unset")

	cases := map[string]bool{
		"true": true, "TRUE": true, "1": true, "yes": true, "on": true, " On ": true,
		"false": false, "FALSE": false, "0": false, "no": false, "off": false,
		"maybe": true,
	}
	for val, expected := range cases {
		t.Setenv("BOOL_TEST", val)
		assert.Equal(t, expected, boolEnvOrDefault("BOOL_TEST", true), "value %q", val)
	}
}

func TestDurationEnvOrDefault(t *testing.T) {
	cases := map[string]time.Duration{
		"":       time.Second,
		"250ms":  250 * time.Millisecond,
		" 3s ":   3 * time.Second,
		"0s":     time.Second,
		"-2s":    time.Second,
		"twelve": time.Second,
	}
	for val, expected := range cases {
		t.Setenv("DURATION_TEST", val)
		assert.Equal(t, expected, durationEnvOrDefault("DURATION_TEST", time.Second), "value %q", val)
	}
}

func TestEnvOrDefaultTrimsBlank(t *testing.T) {
	t.Setenv("STRING_TEST", "   ")
	assert.Equal(t, "fallback", envOrDefault("STRING_TEST", "fallback"))

	t.Setenv("STRING_TEST", " value ")
	assert.Equal(t, "value", envOrDefault("STRING_TEST", "fallback"))
}

func TestListEnv(t *testing.T) {
	t.Setenv("LIST_TEST", "")
	_, ok := listEnv("LIST_TEST")
	assert.False(t, ok, "unset list")

	t.Setenv("LIST_TEST", " Passes , ,Finalização,")
	got, ok := listEnv("LIST_TEST")
	assert.True(t, ok)
	assert.Equal(t, []string{"Passes", "Finalização"}, got)

	t.Setenv("LIST_TEST", ",")
	got, ok = listEnv("LIST_TEST")
	assert.True(t, ok)
	assert.Empty(t, got, "explicit empty list")
}
