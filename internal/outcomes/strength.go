package outcomes

import "github.com/foot-analises/foot-stats-service/internal/domain/competitions"

// Venue weights used when blending home and away strength for a fixture.
const (
	venueWeight = 0.6
	otherWeight = 0.4
)

// TeamStrength is a team's scoring and conceding relative to the league.
// Attack above 1 scores more than average. Defense above 1 concedes less.
type TeamStrength struct {
	AttackHome  float64 `json:"attackHome"`
	AttackAway  float64 `json:"attackAway"`
	DefenseHome float64 `json:"defenseHome"`
	DefenseAway float64 `json:"defenseAway"`
}

// League holds average goals per played match and each team's strength.
type League struct {
	HomeGoals float64
	AwayGoals float64
	Teams     map[int]TeamStrength
}

type venueTally struct {
	games, scored, conceded int
}

func (v venueTally) averages(fallbackFor, fallbackAgainst float64) (float64, float64) {
	if v.games == 0 {
		return fallbackFor, fallbackAgainst
	}
	return float64(v.scored) / float64(v.games), float64(v.conceded) / float64(v.games)
}

// NewLeague derives strengths from every played match in rounds. Only teams
// with at least one played match get an entry.
func NewLeague(rounds []competitions.Round) League {
	type tally struct{ home, away venueTally }
	tallies := map[int]*tally{}
	get := func(id int) *tally {
		t, ok := tallies[id]
		if !ok {
			t = &tally{}
			tallies[id] = t
		}
		return t
	}

	var matches, homeGoals, awayGoals int
	for _, round := range rounds {
		for _, m := range round.Matches {
			hg, ag, ok := played(m)
			if !ok {
				continue
			}
			matches++
			homeGoals += hg
			awayGoals += ag
			h := get(m.Home.ID)
			h.home.games++
			h.home.scored += hg
			h.home.conceded += ag
			a := get(m.Away.ID)
			a.away.games++
			a.away.scored += ag
			a.away.conceded += hg
		}
	}

	league := League{HomeGoals: 1, AwayGoals: 1, Teams: make(map[int]TeamStrength, len(tallies))}
	if matches > 0 {
		if avg := float64(homeGoals) / float64(matches); avg > 0 {
			league.HomeGoals = avg
		}
		if avg := float64(awayGoals) / float64(matches); avg > 0 {
			league.AwayGoals = avg
		}
	}

	for id, t := range tallies {
		homeFor, homeAgainst := t.home.averages(league.HomeGoals, league.AwayGoals)
		awayFor, awayAgainst := t.away.averages(league.AwayGoals, league.HomeGoals)
		league.Teams[id] = TeamStrength{
			AttackHome:  homeFor / league.HomeGoals,
			AttackAway:  awayFor / league.AwayGoals,
			DefenseHome: inverse(homeAgainst / league.AwayGoals),
			DefenseAway: inverse(awayAgainst / league.HomeGoals),
		}
	}
	return league
}

// inverse flips a conceding ratio. A side that conceded nothing is rated average.
func inverse(ratio float64) float64 {
	if ratio <= 0 {
		return 1
	}
	return 1 / ratio
}

// Prediction is the expected scoreline and result chances of a fixture.
type Prediction struct {
	HomeTeamID        int           `json:"homeTeamId"`
	AwayTeamID        int           `json:"awayTeamId"`
	ExpectedHomeGoals float64       `json:"expectedHomeGoals"`
	ExpectedAwayGoals float64       `json:"expectedAwayGoals"`
	Probabilities     Probabilities `json:"probabilities"`
}

// Predict rates homeID hosting awayID. Each side's attack is weighted toward
// its venue and multiplied by the opponent's blended defense.
func (l League) Predict(homeID, awayID int, cal Calibration) (Prediction, error) {
	home, ok := l.Teams[homeID]
	if !ok {
		return Prediction{}, &HistoryError{TeamID: homeID}
	}
	away, ok := l.Teams[awayID]
	if !ok {
		return Prediction{}, &HistoryError{TeamID: awayID}
	}

	homeAttack := venueWeight*home.AttackHome + otherWeight*home.AttackAway
	awayAttack := venueWeight*away.AttackAway + otherWeight*away.AttackHome
	homeDefense := venueWeight*home.DefenseHome + otherWeight*home.DefenseAway
	awayDefense := venueWeight*away.DefenseAway + otherWeight*away.DefenseHome

	lh, la := cal.GoalExpectancy(homeAttack*awayDefense, awayAttack*homeDefense)
	return Prediction{
		HomeTeamID:        homeID,
		AwayTeamID:        awayID,
		ExpectedHomeGoals: lh,
		ExpectedAwayGoals: la,
		Probabilities:     OutcomeProbabilities(lh, la, DefaultMaxGoals),
	}, nil
}
