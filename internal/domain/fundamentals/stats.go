package fundamentals

// Side carries the reported figures of one perspective of a Stat.
type Side struct {
	Correct   *float64 `json:"correct"`
	Incorrect *float64 `json:"incorrect"`
	Total     *float64 `json:"total"`
	Average   *float64 `json:"average"`
}

// Stat is a single team's favorable and unfavorable figures for one category.
type Stat struct {
	Name        string   `json:"name"`
	GamesPlayed *float64 `json:"gamesPlayed"`
	Favorable   Side     `json:"favorable"`
	Unfavorable Side     `json:"unfavorable"`
}

// Figures is the resolved, render-ready view of a Stat.
// A nil average means it could not be derived (no games played).
type Figures struct {
	GamesPlayed          float64  `json:"gamesPlayed"`
	FavorableCorrect     float64  `json:"favorableCorrect"`
	FavorableIncorrect   float64  `json:"favorableIncorrect"`
	FavorableTotal       float64  `json:"favorableTotal"`
	FavorableAverage     *float64 `json:"favorableAverage"`
	UnfavorableCorrect   float64  `json:"unfavorableCorrect"`
	UnfavorableIncorrect float64  `json:"unfavorableIncorrect"`
	UnfavorableTotal     float64  `json:"unfavorableTotal"`
	UnfavorableAverage   *float64 `json:"unfavorableAverage"`
}

// TeamStatRow pairs a category name with one team's resolved figures.
type TeamStatRow struct {
	Name string `json:"name"`
	Figures
}

// ComparisonRow lines up two teams' figures for the same category.
type ComparisonRow struct {
	Name string  `json:"name"`
	Home Figures `json:"home"`
	Away Figures `json:"away"`
}

// PlayerFundamental is one player's entry in a single fundamental ranking.
type PlayerFundamental struct {
	FundamentalID   int           `json:"fundamentalId"`
	FundamentalName string        `json:"fundamentalName"`
	TeamID          int           `json:"teamId"`
	TeamName        string        `json:"teamName"`
	LogoURL         string        `json:"logoUrl,omitempty"`
	PlayerID        int           `json:"playerId"`
	PlayerName      string        `json:"playerName"`
	SecondsPlayed   int           `json:"secondsPlayed"`
	Games           *float64      `json:"games"`
	Total           *float64      `json:"total"`
	Average         *float64      `json:"average"`
	Percentage      *float64      `json:"percentage"`
	Details         []ValueTriple `json:"details,omitempty"`
}
