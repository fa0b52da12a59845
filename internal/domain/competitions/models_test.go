package competitions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestFindRound(t *testing.T) {
	rounds := []Round{{Number: nil}, {Number: intPtr(1)}, {Number: intPtr(2), Current: true}}

	r, ok := FindRound(rounds, 2)
	require.True(t, ok)
	assert.Equal(t, 2, *r.Number)

	_, ok = FindRound(rounds, 7)
	assert.False(t, ok, "missing round is reported")
}

func TestCurrentRound(t *testing.T) {
	rounds := []Round{{Number: intPtr(1)}, {Number: intPtr(2), Current: true}}

	r, ok := CurrentRound(rounds)
	require.True(t, ok)
	assert.Equal(t, 2, *r.Number)

	_, ok = CurrentRound(nil)
	assert.False(t, ok)
}
