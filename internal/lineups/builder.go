package lineups

import (
	"fmt"

	domainlineups "github.com/foot-analises/foot-stats-service/internal/domain/lineups"
)

// StarterCount is the fixed number of starters per side.
const StarterCount = 11

const (
	sideHome = "home"
	sideAway = "away"
)

// Builder turns flat rosters into render-ready lineups. It is stateless.
type Builder struct{}

// NewBuilder returns a Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// BuildLineup pairs the first eleven home and away starters slot by slot.
// Either list holding fewer than eleven entries is an *OutOfRangeError.
func (b *Builder) BuildLineup(home, away []domainlineups.RosterEntry) ([]domainlineups.LineupPair, error) {
	if len(home) < StarterCount {
		return nil, &OutOfRangeError{Side: sideHome, Got: len(home), Want: StarterCount}
	}
	if len(away) < StarterCount {
		return nil, &OutOfRangeError{Side: sideAway, Got: len(away), Want: StarterCount}
	}

	pairs := make([]domainlineups.LineupPair, 0, StarterCount)
	for i := 0; i < StarterCount; i++ {
		pairs = append(pairs, domainlineups.LineupPair{
			Home: playerView(home[i], true),
			Away: playerView(away[i], true),
		})
	}
	return pairs, nil
}

// Build assembles the full lineup of a match: starters, bench and coaches.
func (b *Builder) Build(roster domainlineups.MatchRoster) (domainlineups.Lineup, error) {
	starters, err := b.BuildLineup(roster.HomeStarters, roster.AwayStarters)
	if err != nil {
		return domainlineups.Lineup{}, fmt.Errorf("match %d: %w", roster.MatchID, err)
	}
	return domainlineups.Lineup{
		MatchID:   roster.MatchID,
		Starters:  starters,
		HomeBench: bench(roster.HomeBench),
		AwayBench: bench(roster.AwayBench),
		HomeCoach: coachView(roster.HomeCoach),
		AwayCoach: coachView(roster.AwayCoach),
	}, nil
}

// HasDeepSubstitution reports whether any starter's substitute carries a
// further substitute, which BuildLineup drops.
func HasDeepSubstitution(entries []domainlineups.RosterEntry) bool {
	for _, e := range entries {
		if e.Substitute != nil && e.Substitute.Substitute != nil {
			return true
		}
	}
	return false
}

// playerView renders entry; the substitute is followed only when withSub is
// set, so nesting stops after one hop whatever the source encodes.
func playerView(entry domainlineups.RosterEntry, withSub bool) domainlineups.PlayerView {
	view := domainlineups.PlayerView{
		Position:     entry.Position,
		Name:         entry.PlayerName,
		ShirtNumber:  FormatShirtNumber(entry.ShirtNumber),
		Goals:        entry.Goals,
		GoalsAgainst: entry.GoalsAgainst,
		CardCode:     CardCode(entry.Cards),
	}
	if withSub && entry.Substitute != nil {
		sub := playerView(*entry.Substitute, false)
		view.Substitute = &sub
	}
	return view
}

func bench(entries []domainlineups.RosterEntry) []domainlineups.PlayerView {
	views := make([]domainlineups.PlayerView, 0, len(entries))
	for _, e := range entries {
		views = append(views, playerView(e, false))
	}
	return views
}

func coachView(c domainlineups.Coach) domainlineups.CoachView {
	return domainlineups.CoachView{Name: c.Name, CardCode: CardCode(c.Cards)}
}

// FormatShirtNumber renders a shirt number zero-padded to two digits.
// A missing number renders as an empty string.
func FormatShirtNumber(n *int) string {
	if n == nil {
		return ""
	}
	return fmt.Sprintf("%02d", *n)
}

// CardCode collapses card flags to 1 when any card was shown, else 0.
func CardCode(c domainlineups.CardFlags) int {
	if c.Any() {
		return 1
	}
	return 0
}
