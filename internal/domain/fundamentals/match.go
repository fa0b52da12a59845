package fundamentals

// PlayerActions counts one player's successful and failed actions.
type PlayerActions struct {
	PlayerName string `json:"playerName"`
	Correct    int    `json:"correct"`
	Incorrect  int    `json:"incorrect"`
}

// MatchPeriods splits a side's player actions by period of play.
type MatchPeriods struct {
	FullMatch  []PlayerActions `json:"fullMatch"`
	FirstHalf  []PlayerActions `json:"firstHalf"`
	SecondHalf []PlayerActions `json:"secondHalf"`
}

// MatchFundamental is one fundamental as recorded in a single match.
type MatchFundamental struct {
	ID   int          `json:"id"`
	Name string       `json:"name"`
	Home MatchPeriods `json:"home"`
	Away MatchPeriods `json:"away"`
}
