package providers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResolveLocationValid(t *testing.T) {
	assert.Equal(t, "UTC", ResolveLocation("UTC", nil).String())
}

func TestResolveLocationInvalidUsesFallback(t *testing.T) {
	fallback := time.FixedZone("BRT", -3*3600)
	assert.Same(t, fallback, ResolveLocation("Not/AZone", fallback))
}

func TestResolveLocationEmptyDefaultsToUTC(t *testing.T) {
	assert.Same(t, time.UTC, ResolveLocation("", nil))
}
