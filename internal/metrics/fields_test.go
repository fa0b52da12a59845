package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetricFieldKeysAreStable(t *testing.T) {
	for _, key := range []string{AttrMethod, AttrPath, AttrStatus, AttrProvider, AttrTransform, AttrOutcome} {
		assert.NotEmpty(t, key)
	}
}

func TestTransformNamesAreDistinct(t *testing.T) {
	names := []string{TransformTeamStats, TransformCompare, TransformLineup, TransformRecord, TransformPredict}
	seen := map[string]bool{}
	for _, name := range names {
		assert.False(t, seen[name], "duplicate transform name %s", name)
		seen[name] = true
	}
}
