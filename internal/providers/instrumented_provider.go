package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/foot-analises/foot-stats-service/internal/domain/competitions"
	"github.com/foot-analises/foot-stats-service/internal/domain/fundamentals"
	domainlineups "github.com/foot-analises/foot-stats-service/internal/domain/lineups"
	"github.com/foot-analises/foot-stats-service/internal/logging"
	"github.com/foot-analises/foot-stats-service/internal/metrics"
)

// instrumentedProvider records every upstream call to metrics and logs
// failures. It never retries.
type instrumentedProvider struct {
	inner   DataProvider
	name    string
	logger  *slog.Logger
	metrics *metrics.Recorder
	now     func() time.Time
}

// NewInstrumentedProvider wraps inner so each call is timed and counted under name.
func NewInstrumentedProvider(inner DataProvider, name string, logger *slog.Logger, recorder *metrics.Recorder) DataProvider {
	return &instrumentedProvider{
		inner:   inner,
		name:    name,
		logger:  logger,
		metrics: recorder,
		now:     time.Now,
	}
}

func (p *instrumentedProvider) FetchCompetitions(ctx context.Context) ([]competitions.Category, error) {
	start := p.now()
	out, err := p.inner.FetchCompetitions(ctx)
	p.observe(ctx, "competitions", start, err)
	return out, err
}

func (p *instrumentedProvider) FetchRounds(ctx context.Context, competitionID int) ([]competitions.Round, error) {
	start := p.now()
	out, err := p.inner.FetchRounds(ctx, competitionID)
	p.observe(ctx, "rounds", start, err, slog.Int(logging.FieldCompetition, competitionID))
	return out, err
}

func (p *instrumentedProvider) FetchRanking(ctx context.Context, competitionID int) (fundamentals.Ranking, error) {
	start := p.now()
	out, err := p.inner.FetchRanking(ctx, competitionID)
	p.observe(ctx, "ranking", start, err, slog.Int(logging.FieldCompetition, competitionID))
	return out, err
}

func (p *instrumentedProvider) FetchRoster(ctx context.Context, matchID int) (domainlineups.MatchRoster, error) {
	start := p.now()
	out, err := p.inner.FetchRoster(ctx, matchID)
	p.observe(ctx, "roster", start, err, slog.Int(logging.FieldMatch, matchID))
	return out, err
}

func (p *instrumentedProvider) FetchPlayerFundamentals(ctx context.Context, competitionID, fundamentalID int) ([]fundamentals.PlayerFundamental, error) {
	start := p.now()
	out, err := p.inner.FetchPlayerFundamentals(ctx, competitionID, fundamentalID)
	p.observe(ctx, "player_fundamentals", start, err, slog.Int(logging.FieldCompetition, competitionID), slog.Int("fundamental_id", fundamentalID))
	return out, err
}

func (p *instrumentedProvider) FetchMatchFundamentals(ctx context.Context, matchID int) ([]fundamentals.MatchFundamental, error) {
	start := p.now()
	out, err := p.inner.FetchMatchFundamentals(ctx, matchID)
	p.observe(ctx, "match_fundamentals", start, err, slog.Int(logging.FieldMatch, matchID))
	return out, err
}

func (p *instrumentedProvider) observe(ctx context.Context, call string, start time.Time, err error, attrs ...any) {
	duration := p.now().Sub(start)
	p.metrics.RecordProviderAttempt(p.name, duration, err)
	if err == nil {
		return
	}
	if rl, ok := AsRateLimitError(err); ok {
		p.metrics.RecordRateLimit(p.name, rl.RetryAfter)
	}
	logCallFailure(ctx, p.logger, p.name, call, err, append(attrs, slog.Int64(logging.FieldDurationMS, duration.Milliseconds()))...)
}
