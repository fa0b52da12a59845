package lineups

// CardFlags records the cards a player or coach received in a match.
type CardFlags struct {
	Yellow       bool `json:"yellow"`
	SecondYellow bool `json:"secondYellow"`
	Red          bool `json:"red"`
}

// Any reports whether at least one card was shown.
func (c CardFlags) Any() bool {
	return c.Yellow || c.SecondYellow || c.Red
}

// RosterEntry is a player as listed in a provider roster.
// Substitute, when set, is the player who came on in their place.
type RosterEntry struct {
	PlayerID     int          `json:"playerId"`
	Position     string       `json:"position"`
	PlayerName   string       `json:"playerName"`
	ShirtNumber  *int         `json:"shirtNumber"`
	Goals        int          `json:"goals"`
	GoalsAgainst int          `json:"goalsAgainst"`
	Cards        CardFlags    `json:"cards"`
	Minute       string       `json:"minute,omitempty"`
	Substitute   *RosterEntry `json:"substitute"`
}

// Coach is a team's head coach as listed in a provider roster.
type Coach struct {
	Name  string    `json:"name"`
	Cards CardFlags `json:"cards"`
}

// MatchRoster is the flat roster payload for one match.
type MatchRoster struct {
	MatchID      int           `json:"matchId"`
	HomeStarters []RosterEntry `json:"homeStarters"`
	AwayStarters []RosterEntry `json:"awayStarters"`
	HomeBench    []RosterEntry `json:"homeBench"`
	AwayBench    []RosterEntry `json:"awayBench"`
	HomeCoach    Coach         `json:"homeCoach"`
	AwayCoach    Coach         `json:"awayCoach"`
}

// PlayerView is the render-ready shape of a lineup slot.
type PlayerView struct {
	Position     string      `json:"position"`
	Name         string      `json:"name"`
	ShirtNumber  string      `json:"shirtNumber"`
	Goals        int         `json:"goals"`
	GoalsAgainst int         `json:"goalsAgainst"`
	CardCode     int         `json:"cardCode"`
	Substitute   *PlayerView `json:"substitute"`
}

// LineupPair is the home and away player sharing a lineup slot.
type LineupPair struct {
	Home PlayerView `json:"home"`
	Away PlayerView `json:"away"`
}

// CoachView is the render-ready shape of a coach.
type CoachView struct {
	Name     string `json:"name"`
	CardCode int    `json:"cardCode"`
}

// Lineup is the full render-ready lineup of a match.
type Lineup struct {
	MatchID   int          `json:"matchId"`
	Starters  []LineupPair `json:"starters"`
	HomeBench []PlayerView `json:"homeBench"`
	AwayBench []PlayerView `json:"awayBench"`
	HomeCoach CoachView    `json:"homeCoach"`
	AwayCoach CoachView    `json:"awayCoach"`
}
