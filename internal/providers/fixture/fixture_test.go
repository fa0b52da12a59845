package fixture

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foot-analises/foot-stats-service/internal/providers"
)

func TestFetchRoundsIsDeterministic(t *testing.T) {
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	p := New()
	p.now = func() time.Time { return fixed }

	rounds, err := p.FetchRounds(context.Background(), CompetitionID)
	require.NoError(t, err)
	require.Len(t, rounds, 2)
	assert.False(t, rounds[0].Current)
	assert.True(t, rounds[1].Current)

	first := rounds[0].Matches[0]
	assert.Equal(t, 9001, first.ID)
	require.NotNil(t, first.Home.Goals)
	assert.Equal(t, 2, *first.Home.Goals)
	assert.True(t, first.KickOff.Equal(time.Date(2024, 4, 24, 0, 0, 0, 0, time.UTC)), "kick-off %v", first.KickOff)
	assert.Nil(t, rounds[1].Matches[0].Home.Goals, "unplayed match has no goals")
}

func TestFetchRankingAlignsCategoriesAcrossTeams(t *testing.T) {
	ranking, err := New().FetchRanking(context.Background(), CompetitionID)
	require.NoError(t, err)
	assert.Len(t, ranking.Favorable, len(fixtureCategories))
	assert.Len(t, ranking.Unfavorable, len(fixtureCategories))

	for _, cat := range ranking.Favorable {
		for _, team := range fixtureTeams {
			_, ok := cat.Breakdown(team.id)
			assert.True(t, ok, "category %s missing team %d", cat.Name, team.id)
		}
	}
}

func TestFetchRosterHasFullLineups(t *testing.T) {
	roster, err := New().FetchRoster(context.Background(), 9001)
	require.NoError(t, err)
	assert.Len(t, roster.HomeStarters, 11)
	assert.Len(t, roster.AwayStarters, 11)
	assert.NotNil(t, roster.HomeStarters[9].Substitute, "home side has a substitution")
}

func TestFetchMatchFundamentalsSplitsHalves(t *testing.T) {
	got, err := New().FetchMatchFundamentals(context.Background(), 9001)
	require.NoError(t, err)
	require.Len(t, got, 2)

	shots := got[0]
	assert.Equal(t, 2, shots.ID)
	assert.Equal(t, "Finalização", shots.Name)
	require.Len(t, shots.Home.FullMatch, 2)
	assert.Equal(t, "FLA Titular 9", shots.Home.FullMatch[0].PlayerName)
	assert.Equal(t, 3, shots.Home.FullMatch[0].Correct)
	assert.Equal(t, 4, shots.Home.FullMatch[0].Incorrect)
	assert.Equal(t, 2, shots.Home.FirstHalf[0].Correct)
	assert.Equal(t, 1, shots.Home.SecondHalf[0].Correct)
	assert.Equal(t, "PAL Titular 10", shots.Away.FullMatch[1].PlayerName)
	assert.Equal(t, 2, shots.Away.FullMatch[1].Correct)

	for _, f := range got {
		for i, full := range f.Home.FullMatch {
			assert.Equal(t, full.Correct, f.Home.FirstHalf[i].Correct+f.Home.SecondHalf[i].Correct, "%s halves sum", f.Name)
		}
	}
}

func TestUnknownIDsReturnNotFound(t *testing.T) {
	p := New()
	ctx := context.Background()

	checks := map[string]error{}
	_, checks["rounds"] = p.FetchRounds(ctx, 99)
	_, checks["ranking"] = p.FetchRanking(ctx, 99)
	_, checks["roster"] = p.FetchRoster(ctx, 1)
	_, checks["players"] = p.FetchPlayerFundamentals(ctx, CompetitionID, 99)
	_, checks["match fundamentals"] = p.FetchMatchFundamentals(ctx, 9003)

	for name, err := range checks {
		st, ok := providers.AsStatusError(err)
		if assert.True(t, ok, "%s: expected status error, got %v", name, err) {
			assert.True(t, st.NotFound(), name)
		}
	}
}

func TestFetchPlayerFundamentals(t *testing.T) {
	players, err := New().FetchPlayerFundamentals(context.Background(), CompetitionID, 3)
	require.NoError(t, err)
	require.Len(t, players, len(fixtureTeams))
	assert.Equal(t, "Passes", players[0].FundamentalName)
	assert.Equal(t, 10.0, *players[0].Average)
}

func TestProviderImplementsDataProvider(t *testing.T) {
	var _ providers.DataProvider = New()
}
