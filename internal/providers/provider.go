package providers

import (
	"context"

	"github.com/foot-analises/foot-stats-service/internal/domain/competitions"
	"github.com/foot-analises/foot-stats-service/internal/domain/fundamentals"
	domainlineups "github.com/foot-analises/foot-stats-service/internal/domain/lineups"
)

// CompetitionProvider lists competitions and their rounds.
type CompetitionProvider interface {
	FetchCompetitions(ctx context.Context) ([]competitions.Category, error)
	FetchRounds(ctx context.Context, competitionID int) ([]competitions.Round, error)
}

// RankingProvider fetches a competition's favorable/unfavorable fundamentals,
// already unwrapped and mapped onto the internal schema.
type RankingProvider interface {
	FetchRanking(ctx context.Context, competitionID int) (fundamentals.Ranking, error)
}

// LineupProvider fetches the flat roster of a match.
type LineupProvider interface {
	FetchRoster(ctx context.Context, matchID int) (domainlineups.MatchRoster, error)
}

// PlayerFundamentalProvider fetches the per-player ranking of one fundamental.
type PlayerFundamentalProvider interface {
	FetchPlayerFundamentals(ctx context.Context, competitionID, fundamentalID int) ([]fundamentals.PlayerFundamental, error)
}

// MatchFundamentalProvider fetches per-player fundamentals of a single match,
// split by half.
type MatchFundamentalProvider interface {
	FetchMatchFundamentals(ctx context.Context, matchID int) ([]fundamentals.MatchFundamental, error)
}

// DataProvider combines all provider capabilities.
type DataProvider interface {
	CompetitionProvider
	RankingProvider
	LineupProvider
	PlayerFundamentalProvider
	MatchFundamentalProvider
}
