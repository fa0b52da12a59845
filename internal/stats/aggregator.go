package stats

import "github.com/foot-analises/foot-stats-service/internal/domain/fundamentals"

// Aggregator merges favorable and unfavorable fundamentals into per-team stats.
// It holds no mutable state and is safe for concurrent use.
type Aggregator struct {
	exclusions ExclusionSet
}

// NewAggregator returns an Aggregator that skips the given exclusions.
func NewAggregator(exclusions ExclusionSet) *Aggregator {
	return &Aggregator{exclusions: exclusions}
}

// Aggregate builds one Stat per retained category for teamID, in first-seen order.
// Either input being empty yields an empty result.
func (a *Aggregator) Aggregate(favorable, unfavorable []fundamentals.Category, teamID int) []fundamentals.Stat {
	if len(favorable) == 0 || len(unfavorable) == 0 {
		return []fundamentals.Stat{}
	}

	acc := newAccumulator()
	a.merge(acc, favorable, teamID, func(s *fundamentals.Stat, side fundamentals.Side) { s.Favorable = side })
	a.merge(acc, unfavorable, teamID, func(s *fundamentals.Stat, side fundamentals.Side) { s.Unfavorable = side })
	return acc.list()
}

// CompareTeams aggregates teamA and teamB independently and zips the results
// by position. Both teams must report the same categories in the same order.
func (a *Aggregator) CompareTeams(favorable, unfavorable []fundamentals.Category, teamA, teamB int) ([]fundamentals.ComparisonRow, error) {
	home := a.Aggregate(favorable, unfavorable, teamA)
	away := a.Aggregate(favorable, unfavorable, teamB)
	if err := checkAlignment(home, away, teamA, teamB); err != nil {
		return nil, err
	}

	rows := make([]fundamentals.ComparisonRow, 0, len(home))
	for i := range home {
		rows = append(rows, fundamentals.ComparisonRow{
			Name: home[i].Name,
			Home: ResolveFigures(home[i]),
			Away: ResolveFigures(away[i]),
		})
	}
	return rows, nil
}

func (a *Aggregator) merge(acc *accumulator, categories []fundamentals.Category, teamID int, assign func(*fundamentals.Stat, fundamentals.Side)) {
	for _, c := range categories {
		if a.exclusions.Contains(c.Name) {
			continue
		}
		b, ok := c.Breakdown(teamID)
		if !ok {
			continue
		}
		stat := acc.get(c.Name, b.GamesPlayed)
		assign(stat, sideFrom(b))
	}
}

func sideFrom(b fundamentals.TeamBreakdown) fundamentals.Side {
	return fundamentals.Side{
		Correct:   b.Correct.Total,
		Incorrect: b.Incorrect.Total,
		Total:     b.Totals.Total,
		Average:   b.Totals.Average,
	}
}

func checkAlignment(home, away []fundamentals.Stat, teamA, teamB int) error {
	if len(home) != len(away) {
		return &AlignmentError{TeamA: teamA, TeamB: teamB, LenA: len(home), LenB: len(away), Index: -1}
	}
	for i := range home {
		if home[i].Name != away[i].Name {
			return &AlignmentError{
				TeamA: teamA, TeamB: teamB,
				LenA: len(home), LenB: len(away),
				Index: i,
				NameA: home[i].Name, NameB: away[i].Name,
			}
		}
	}
	return nil
}

// accumulator keeps stats keyed by name while preserving insertion order.
type accumulator struct {
	index map[string]int
	stats []fundamentals.Stat
}

func newAccumulator() *accumulator {
	return &accumulator{index: make(map[string]int)}
}

func (acc *accumulator) get(name string, gamesPlayed *float64) *fundamentals.Stat {
	if i, ok := acc.index[name]; ok {
		return &acc.stats[i]
	}
	acc.stats = append(acc.stats, fundamentals.Stat{Name: name, GamesPlayed: gamesPlayed})
	acc.index[name] = len(acc.stats) - 1
	return &acc.stats[len(acc.stats)-1]
}

func (acc *accumulator) list() []fundamentals.Stat {
	if acc.stats == nil {
		return []fundamentals.Stat{}
	}
	return acc.stats
}
