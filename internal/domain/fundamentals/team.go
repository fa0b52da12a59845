package fundamentals

// TeamDetail identifies a team inside a competition ranking.
type TeamDetail struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	LogoURL     string   `json:"logoUrl,omitempty"`
	GamesPlayed *float64 `json:"gamesPlayed"`
}

// Detail returns the team header taken from its first breakdown in the ranking.
func (r Ranking) Detail(teamID int) (TeamDetail, bool) {
	b, ok := r.Team(teamID)
	if !ok {
		return TeamDetail{}, false
	}
	return TeamDetail{ID: b.TeamID, Name: b.TeamName, LogoURL: b.LogoURL, GamesPlayed: b.GamesPlayed}, true
}
