package footstats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f(v float64) *float64 { return &v }

func TestMapValuesPrefersIntegralTotal(t *testing.T) {
	got := mapValues(&valoresResponse{Total: f(4), TotalFloat: f(4.2), Media: f(2)})
	assert.Equal(t, 4.0, *got.Total)
	assert.Equal(t, 2.0, *got.Average)
	assert.Nil(t, got.Percentage)

	got = mapValues(&valoresResponse{TotalFloat: f(4.2)})
	assert.Equal(t, 4.2, *got.Total, "float fallback")

	empty := mapValues(nil)
	assert.Nil(t, empty.Total)
	assert.Nil(t, empty.Average)
}

func TestMapPlayerKeepsFullSubstitutionChain(t *testing.T) {
	deep := jogadorResponse{
		NomeJogador: "First",
		FoiSubstituido: &jogadorResponse{
			NomeJogador:    "Second",
			FoiSubstituido: &jogadorResponse{NomeJogador: "Third"},
		},
	}
	entry := mapPlayer(deep)
	require.NotNil(t, entry.Substitute)
	require.NotNil(t, entry.Substitute.Substitute)
	assert.Equal(t, "Third", entry.Substitute.Substitute.PlayerName)
}

func TestMapRosterFallsBackToRequestedMatchID(t *testing.T) {
	roster := mapRoster(lineupResponse{}, 42)
	assert.Equal(t, 42, roster.MatchID)
	assert.NotNil(t, roster.HomeStarters)
	assert.NotNil(t, roster.AwayBench)
}

func TestMapMatchPeriodsTreatsMissingSideAsEmpty(t *testing.T) {
	got := mapMatchFundamentals([]fundamentoPartidaResponse{{
		IDFundamento: 5,
		Nome:         "Desarmes",
		Visitante: &equipePartidaResponse{
			JogoCompleto: []acoesJogadorResponse{{NomeJogador: "Wall", AcoesCertas: 4}},
		},
	}})

	require.Len(t, got, 1)
	assert.Empty(t, got[0].Home.FullMatch)
	assert.Empty(t, got[0].Home.FirstHalf)
	require.Len(t, got[0].Away.FullMatch, 1)
	assert.Equal(t, 4, got[0].Away.FullMatch[0].Correct)
	assert.NotNil(t, got[0].Away.SecondHalf, "present side keeps empty periods as slices")

	assert.Empty(t, mapMatchFundamentals(nil))
}

func TestParseKickOffLayouts(t *testing.T) {
	loc := time.FixedZone("BRT", -3*3600)
	want := time.Date(2024, 5, 1, 19, 0, 0, 0, time.UTC)

	for _, raw := range []string{"2024-05-01T16:00:00", "2024-05-01 16:00:00", "2024-05-01T16:00:00-03:00"} {
		got := parseKickOff(raw, loc)
		require.NotNil(t, got, raw)
		assert.True(t, got.Equal(want), "%q: expected %v, got %v", raw, want, got)
	}
	assert.Nil(t, parseKickOff("", loc))
	assert.Nil(t, parseKickOff("yesterday", loc))
}
