package competitions

import "time"

// Competition is a championship tracked by the provider.
type Competition struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	LogoURL string `json:"logoUrl,omitempty"`
}

// Category groups competitions the way the provider lists them.
type Category struct {
	Name         string        `json:"name"`
	Competitions []Competition `json:"competitions"`
}

// MatchTeam is one side of a scheduled match.
type MatchTeam struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	LogoURL      string `json:"logoUrl,omitempty"`
	Goals        *int   `json:"goals"`
}

// Match is a fixture inside a round.
type Match struct {
	ID      int        `json:"id"`
	PhaseID *int       `json:"phaseId,omitempty"`
	Home    MatchTeam  `json:"home"`
	Away    MatchTeam  `json:"away"`
	Period  string     `json:"period,omitempty"`
	Scout   bool       `json:"scout"`
	Live    bool       `json:"live"`
	KickOff *time.Time `json:"kickOff,omitempty"`
}

// Round is a matchday of a competition.
type Round struct {
	Phase   string  `json:"phase"`
	Number  *int    `json:"number"`
	Current bool    `json:"current"`
	Matches []Match `json:"matches"`
}

// FindRound returns the round with the given number.
func FindRound(rounds []Round, number int) (Round, bool) {
	for _, r := range rounds {
		if r.Number != nil && *r.Number == number {
			return r, true
		}
	}
	return Round{}, false
}

// CurrentRound returns the round flagged as current, if any.
func CurrentRound(rounds []Round) (Round, bool) {
	for _, r := range rounds {
		if r.Current {
			return r, true
		}
	}
	return Round{}, false
}
