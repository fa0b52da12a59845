package analysis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/foot-analises/foot-stats-service/internal/domain/competitions"
	"github.com/foot-analises/foot-stats-service/internal/domain/fundamentals"
	domainlineups "github.com/foot-analises/foot-stats-service/internal/domain/lineups"
	"github.com/foot-analises/foot-stats-service/internal/lineups"
	"github.com/foot-analises/foot-stats-service/internal/logging"
	"github.com/foot-analises/foot-stats-service/internal/metrics"
	"github.com/foot-analises/foot-stats-service/internal/outcomes"
	"github.com/foot-analises/foot-stats-service/internal/providers"
	"github.com/foot-analises/foot-stats-service/internal/stats"
)

// PlayerFilter narrows player fundamentals. Zero fields match everything.
type PlayerFilter struct {
	PlayerID int
	TeamID   int
}

func (f PlayerFilter) match(p fundamentals.PlayerFundamental) bool {
	if f.PlayerID != 0 && p.PlayerID != f.PlayerID {
		return false
	}
	if f.TeamID != 0 && p.TeamID != f.TeamID {
		return false
	}
	return true
}

// Service fetches provider data and runs it through the aggregator and
// lineup builder. It holds no per-request state.
type Service struct {
	provider    providers.DataProvider
	aggregator  *stats.Aggregator
	builder     *lineups.Builder
	logger      *slog.Logger
	metrics     *metrics.Recorder
	calibration outcomes.Calibration
	now         func() time.Time
}

// NewService wires a Service. Logger and recorder may be nil.
func NewService(provider providers.DataProvider, exclusions stats.ExclusionSet, logger *slog.Logger, recorder *metrics.Recorder) *Service {
	return &Service{
		provider:    provider,
		aggregator:  stats.NewAggregator(exclusions),
		builder:     lineups.NewBuilder(),
		logger:      logger,
		metrics:     recorder,
		calibration: outcomes.DefaultCalibration,
		now:         time.Now,
	}
}

// Competitions lists competitions grouped by category.
func (s *Service) Competitions(ctx context.Context) ([]competitions.Category, error) {
	cats, err := s.provider.FetchCompetitions(ctx)
	if err != nil {
		return nil, fmt.Errorf("competitions: %w", err)
	}
	return cats, nil
}

// Rounds lists every round of a competition.
func (s *Service) Rounds(ctx context.Context, competitionID int) ([]competitions.Round, error) {
	rounds, err := s.provider.FetchRounds(ctx, competitionID)
	if err != nil {
		return nil, notFoundOr(err, "competition", competitionID)
	}
	return rounds, nil
}

// Round returns the round with the given number.
func (s *Service) Round(ctx context.Context, competitionID, number int) (competitions.Round, error) {
	rounds, err := s.Rounds(ctx, competitionID)
	if err != nil {
		return competitions.Round{}, err
	}
	round, ok := competitions.FindRound(rounds, number)
	if !ok {
		return competitions.Round{}, fmt.Errorf("round %d: %w", number, ErrNotFound)
	}
	return round, nil
}

// CurrentRound returns the round upstream flags as current.
func (s *Service) CurrentRound(ctx context.Context, competitionID int) (competitions.Round, error) {
	rounds, err := s.Rounds(ctx, competitionID)
	if err != nil {
		return competitions.Round{}, err
	}
	round, ok := competitions.CurrentRound(rounds)
	if !ok {
		return competitions.Round{}, fmt.Errorf("current round of competition %d: %w", competitionID, ErrNotFound)
	}
	return round, nil
}

// Ranking returns the raw favorable/unfavorable fundamentals.
func (s *Service) Ranking(ctx context.Context, competitionID int) (fundamentals.Ranking, error) {
	ranking, err := s.provider.FetchRanking(ctx, competitionID)
	if err != nil {
		return fundamentals.Ranking{}, notFoundOr(err, "competition", competitionID)
	}
	return ranking, nil
}

// Team returns a team's identity and games played as the ranking reports them.
func (s *Service) Team(ctx context.Context, competitionID, teamID int) (fundamentals.TeamDetail, error) {
	ranking, err := s.Ranking(ctx, competitionID)
	if err != nil {
		return fundamentals.TeamDetail{}, err
	}
	detail, ok := ranking.Detail(teamID)
	if !ok {
		return fundamentals.TeamDetail{}, fmt.Errorf("team %d: %w", teamID, ErrNotFound)
	}
	return detail, nil
}

// TeamStats aggregates one team's fundamentals and resolves the fallbacks.
// A team absent from the ranking yields an empty list.
func (s *Service) TeamStats(ctx context.Context, competitionID, teamID int) ([]fundamentals.TeamStatRow, error) {
	start := s.now()
	ranking, err := s.Ranking(ctx, competitionID)
	if err != nil {
		s.metrics.RecordTransform(metrics.TransformTeamStats, 0, s.now().Sub(start), err)
		return nil, err
	}
	rows := stats.ResolveRows(s.aggregator.Aggregate(ranking.Favorable, ranking.Unfavorable, teamID))
	s.metrics.RecordTransform(metrics.TransformTeamStats, len(rows), s.now().Sub(start), nil)
	logging.Debug(logging.Scoped(ctx, s.logger, logging.FieldCompetition, competitionID, logging.FieldTeam, teamID),
		"team stats aggregated", slog.Int(logging.FieldCount, len(rows)))
	return rows, nil
}

// CompareTeams builds the side-by-side comparison of two teams.
func (s *Service) CompareTeams(ctx context.Context, competitionID, teamA, teamB int) ([]fundamentals.ComparisonRow, error) {
	start := s.now()
	ranking, err := s.Ranking(ctx, competitionID)
	if err != nil {
		s.metrics.RecordTransform(metrics.TransformCompare, 0, s.now().Sub(start), err)
		return nil, err
	}
	rows, err := s.aggregator.CompareTeams(ranking.Favorable, ranking.Unfavorable, teamA, teamB)
	s.metrics.RecordTransform(metrics.TransformCompare, len(rows), s.now().Sub(start), err)
	if err != nil {
		logging.Warn(logging.Scoped(ctx, s.logger, logging.FieldCompetition, competitionID),
			"team comparison misaligned", slog.Any(logging.FieldError, err))
		return nil, err
	}
	return rows, nil
}

// Lineup builds the paired starting lineup of a match.
func (s *Service) Lineup(ctx context.Context, matchID int) (domainlineups.Lineup, error) {
	start := s.now()
	roster, err := s.provider.FetchRoster(ctx, matchID)
	if err != nil {
		err = notFoundOr(err, "match", matchID)
		s.metrics.RecordTransform(metrics.TransformLineup, 0, s.now().Sub(start), err)
		return domainlineups.Lineup{}, err
	}

	logger := logging.Scoped(ctx, s.logger, logging.FieldMatch, matchID)
	if lineups.HasDeepSubstitution(roster.HomeStarters) || lineups.HasDeepSubstitution(roster.AwayStarters) {
		logging.Debug(logger, "substitution chain truncated to one hop")
	}

	lineup, err := s.builder.Build(roster)
	s.metrics.RecordTransform(metrics.TransformLineup, len(lineup.Starters), s.now().Sub(start), err)
	if err != nil {
		logging.Warn(logger, "lineup incomplete", slog.Any(logging.FieldError, err))
		return domainlineups.Lineup{}, err
	}
	return lineup, nil
}

// PlayerFundamentals lists per-player values of one fundamental, narrowed by filter.
func (s *Service) PlayerFundamentals(ctx context.Context, competitionID, fundamentalID int, filter PlayerFilter) ([]fundamentals.PlayerFundamental, error) {
	all, err := s.provider.FetchPlayerFundamentals(ctx, competitionID, fundamentalID)
	if err != nil {
		return nil, notFoundOr(err, "fundamental", fundamentalID)
	}
	out := make([]fundamentals.PlayerFundamental, 0, len(all))
	for _, p := range all {
		if filter.match(p) {
			out = append(out, p)
		}
	}
	return out, nil
}

// MatchFundamentals lists the per-player actions of a match, split by half.
func (s *Service) MatchFundamentals(ctx context.Context, matchID int) ([]fundamentals.MatchFundamental, error) {
	out, err := s.provider.FetchMatchFundamentals(ctx, matchID)
	if err != nil {
		return nil, notFoundOr(err, "match", matchID)
	}
	if out == nil {
		out = []fundamentals.MatchFundamental{}
	}
	logging.Debug(logging.Scoped(ctx, s.logger, logging.FieldMatch, matchID),
		"match fundamentals fetched", slog.Int(logging.FieldCount, len(out)))
	return out, nil
}

// TeamRecord summarizes a team's results over the played matches of a competition.
func (s *Service) TeamRecord(ctx context.Context, competitionID, teamID int) (outcomes.TeamRecord, error) {
	start := s.now()
	rounds, err := s.Rounds(ctx, competitionID)
	if err != nil {
		s.metrics.RecordTransform(metrics.TransformRecord, 0, s.now().Sub(start), err)
		return outcomes.TeamRecord{}, err
	}
	rec, ok := outcomes.Summarize(rounds, teamID)
	if !ok {
		err = fmt.Errorf("team %d: %w", teamID, ErrNotFound)
		s.metrics.RecordTransform(metrics.TransformRecord, 0, s.now().Sub(start), err)
		return outcomes.TeamRecord{}, err
	}
	s.metrics.RecordTransform(metrics.TransformRecord, rec.Played, s.now().Sub(start), nil)
	return rec, nil
}

// Predict estimates the result of homeID hosting awayID from the played
// matches of a competition. A side with no played match is not found.
func (s *Service) Predict(ctx context.Context, competitionID, homeID, awayID int) (outcomes.Prediction, error) {
	start := s.now()
	rounds, err := s.Rounds(ctx, competitionID)
	if err != nil {
		s.metrics.RecordTransform(metrics.TransformPredict, 0, s.now().Sub(start), err)
		return outcomes.Prediction{}, err
	}
	league := outcomes.NewLeague(rounds)
	pred, err := league.Predict(homeID, awayID, s.calibration)
	if err != nil {
		var hist *outcomes.HistoryError
		if errors.As(err, &hist) {
			err = fmt.Errorf("team %d has no played matches: %w", hist.TeamID, ErrNotFound)
		}
		s.metrics.RecordTransform(metrics.TransformPredict, 0, s.now().Sub(start), err)
		return outcomes.Prediction{}, err
	}
	s.metrics.RecordTransform(metrics.TransformPredict, len(league.Teams), s.now().Sub(start), nil)
	logging.Debug(logging.Scoped(ctx, s.logger, logging.FieldCompetition, competitionID),
		"prediction computed",
		slog.Int(logging.FieldHomeTeam, homeID),
		slog.Int(logging.FieldAwayTeam, awayID),
		slog.Float64("p_home", pred.Probabilities.Home),
	)
	return pred, nil
}
