package fundamentals

// ValueTriple holds the figures a provider reports for one breakdown bucket.
// A nil field means the source did not report it; it is never read as zero.
type ValueTriple struct {
	Total      *float64 `json:"total"`
	Average    *float64 `json:"average"`
	Percentage *float64 `json:"percentage"`
}

// TeamBreakdown is one team's correct/incorrect/total figures for a category.
type TeamBreakdown struct {
	TeamID      int         `json:"teamId"`
	TeamName    string      `json:"teamName,omitempty"`
	LogoURL     string      `json:"logoUrl,omitempty"`
	GamesPlayed *float64    `json:"gamesPlayed"`
	Correct     ValueTriple `json:"correct"`
	Incorrect   ValueTriple `json:"incorrect"`
	Totals      ValueTriple `json:"totals"`
}

// Category is a tracked statistical fundamental with its per-team breakdowns.
type Category struct {
	ID    int             `json:"id"`
	Name  string          `json:"name"`
	Teams []TeamBreakdown `json:"teams"`
}

// Breakdown returns the entry reported for teamID, if any.
func (c Category) Breakdown(teamID int) (TeamBreakdown, bool) {
	for _, b := range c.Teams {
		if b.TeamID == teamID {
			return b, true
		}
	}
	return TeamBreakdown{}, false
}

// Ranking is a competition's fundamentals seen from both perspectives.
type Ranking struct {
	Favorable   []Category `json:"favorable"`
	Unfavorable []Category `json:"unfavorable"`
}

// Team returns the first breakdown found for teamID across both perspectives.
func (r Ranking) Team(teamID int) (TeamBreakdown, bool) {
	for _, set := range [][]Category{r.Favorable, r.Unfavorable} {
		for _, c := range set {
			if b, ok := c.Breakdown(teamID); ok {
				return b, true
			}
		}
	}
	return TeamBreakdown{}, false
}
