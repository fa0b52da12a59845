package testutil

import (
	"context"
	"sync"

	"github.com/foot-analises/foot-stats-service/internal/domain/competitions"
	"github.com/foot-analises/foot-stats-service/internal/domain/fundamentals"
	domainlineups "github.com/foot-analises/foot-stats-service/internal/domain/lineups"
)

// StubProvider serves canned payloads and counts calls. Err, when set, is
// returned from every call.
type StubProvider struct {
	Categories []competitions.Category
	Rounds     []competitions.Round
	Ranking    fundamentals.Ranking
	Rosters    map[int]domainlineups.MatchRoster
	Players    []fundamentals.PlayerFundamental
	Matches    map[int][]fundamentals.MatchFundamental
	Err        error

	mu    sync.Mutex
	calls int
}

// NewStubProvider returns a provider preloaded with the sample payloads.
func NewStubProvider() *StubProvider {
	return &StubProvider{
		Categories: []competitions.Category{{Name: "Nacional", Competitions: []competitions.Competition{{ID: 10, Name: "Série A"}}}},
		Rounds:     SampleRounds(),
		Ranking:    SampleRanking(),
		Rosters:    map[int]domainlineups.MatchRoster{501: SampleRoster(501)},
		Players:    SamplePlayerFundamentals(3),
		Matches:    map[int][]fundamentals.MatchFundamental{501: SampleMatchFundamentals()},
	}
}

// Calls returns how many fetches were made.
func (p *StubProvider) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

func (p *StubProvider) hit() error {
	p.mu.Lock()
	p.calls++
	p.mu.Unlock()
	return p.Err
}

func (p *StubProvider) FetchCompetitions(ctx context.Context) ([]competitions.Category, error) {
	if err := p.hit(); err != nil {
		return nil, err
	}
	return p.Categories, nil
}

func (p *StubProvider) FetchRounds(ctx context.Context, competitionID int) ([]competitions.Round, error) {
	if err := p.hit(); err != nil {
		return nil, err
	}
	return p.Rounds, nil
}

func (p *StubProvider) FetchRanking(ctx context.Context, competitionID int) (fundamentals.Ranking, error) {
	if err := p.hit(); err != nil {
		return fundamentals.Ranking{}, err
	}
	return p.Ranking, nil
}

// FetchRoster returns the roster registered for matchID, or an empty one.
func (p *StubProvider) FetchRoster(ctx context.Context, matchID int) (domainlineups.MatchRoster, error) {
	if err := p.hit(); err != nil {
		return domainlineups.MatchRoster{}, err
	}
	roster, ok := p.Rosters[matchID]
	if !ok {
		return domainlineups.MatchRoster{MatchID: matchID}, nil
	}
	return roster, nil
}

func (p *StubProvider) FetchPlayerFundamentals(ctx context.Context, competitionID, fundamentalID int) ([]fundamentals.PlayerFundamental, error) {
	if err := p.hit(); err != nil {
		return nil, err
	}
	return p.Players, nil
}

// FetchMatchFundamentals returns the fundamentals registered for matchID, or none.
func (p *StubProvider) FetchMatchFundamentals(ctx context.Context, matchID int) ([]fundamentals.MatchFundamental, error) {
	if err := p.hit(); err != nil {
		return nil, err
	}
	return p.Matches[matchID], nil
}
