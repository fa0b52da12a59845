package outcomes

import (
	"math"

	"github.com/foot-analises/foot-stats-service/internal/domain/competitions"
)

// Split counts results from one venue.
type Split struct {
	Played int `json:"played"`
	Wins   int `json:"wins"`
	Draws  int `json:"draws"`
	Losses int `json:"losses"`
}

// TeamRecord summarizes a team's played matches across a set of rounds.
// Rates are percentages rounded to one decimal and are 0 with no matches.
type TeamRecord struct {
	TeamID       int     `json:"teamId"`
	TeamName     string  `json:"teamName,omitempty"`
	Played       int     `json:"played"`
	GoalsFor     int     `json:"goalsFor"`
	GoalsAgainst int     `json:"goalsAgainst"`
	Wins         int     `json:"wins"`
	Draws        int     `json:"draws"`
	Losses       int     `json:"losses"`
	WinRate      float64 `json:"winRate"`
	DrawRate     float64 `json:"drawRate"`
	LossRate     float64 `json:"lossRate"`
	Home         Split   `json:"home"`
	Away         Split   `json:"away"`
}

// played reports the final score of m, or false while either side has no goals.
func played(m competitions.Match) (home, away int, ok bool) {
	if m.Home.Goals == nil || m.Away.Goals == nil {
		return 0, 0, false
	}
	return *m.Home.Goals, *m.Away.Goals, true
}

// Summarize builds teamID's record. The bool is false when the team takes part
// in no match of rounds, played or not.
func Summarize(rounds []competitions.Round, teamID int) (TeamRecord, bool) {
	rec := TeamRecord{TeamID: teamID}
	seen := false
	for _, round := range rounds {
		for _, m := range round.Matches {
			var split *Split
			var goalsFor, goalsAgainst int
			hg, ag, ok := played(m)
			switch teamID {
			case m.Home.ID:
				seen = true
				rec.TeamName = m.Home.Name
				split, goalsFor, goalsAgainst = &rec.Home, hg, ag
			case m.Away.ID:
				seen = true
				rec.TeamName = m.Away.Name
				split, goalsFor, goalsAgainst = &rec.Away, ag, hg
			default:
				continue
			}
			if !ok {
				continue
			}
			split.Played++
			rec.GoalsFor += goalsFor
			rec.GoalsAgainst += goalsAgainst
			switch {
			case goalsFor > goalsAgainst:
				split.Wins++
			case goalsFor == goalsAgainst:
				split.Draws++
			default:
				split.Losses++
			}
		}
	}

	rec.Played = rec.Home.Played + rec.Away.Played
	rec.Wins = rec.Home.Wins + rec.Away.Wins
	rec.Draws = rec.Home.Draws + rec.Away.Draws
	rec.Losses = rec.Home.Losses + rec.Away.Losses
	rec.WinRate = pct(rec.Wins, rec.Played)
	rec.DrawRate = pct(rec.Draws, rec.Played)
	rec.LossRate = pct(rec.Losses, rec.Played)
	return rec, seen
}

func pct(part, whole int) float64 {
	if whole <= 0 {
		return 0
	}
	return math.Round(float64(part)/float64(whole)*1000) / 10
}
