package logging

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithCommonAppendsServiceAndVersion(t *testing.T) {
	attrs := WithCommon(nil, "foot-stats-service", "v1")
	require.Len(t, attrs, 2)
	assert.Equal(t, FieldService, attrs[0].Key)
	assert.Equal(t, "foot-stats-service", attrs[0].Value.String())
	assert.Equal(t, FieldVersion, attrs[1].Key)
	assert.Equal(t, "v1", attrs[1].Value.String())

	kept := WithCommon([]slog.Attr{slog.Int(FieldMatch, 9001)}, "", "")
	require.Len(t, kept, 1)
	assert.Equal(t, FieldMatch, kept[0].Key)
}

func TestFieldKeysAreSnakeCaseAndUnique(t *testing.T) {
	keys := []string{
		FieldService, FieldVersion, FieldProvider, FieldRequestID, FieldPath,
		FieldMethod, FieldStatusCode, FieldCount, FieldDurationMS,
		FieldCompetition, FieldTeam, FieldMatch, FieldHomeTeam, FieldAwayTeam, FieldError,
	}
	seen := map[string]bool{}
	for _, k := range keys {
		assert.Regexp(t, `^[a-z]+(_[a-z]+)*$`, k)
		assert.False(t, seen[k], "duplicate field key %q", k)
		seen[k] = true
	}
}
