package testutil

import (
	"fmt"

	"github.com/foot-analises/foot-stats-service/internal/domain/competitions"
	"github.com/foot-analises/foot-stats-service/internal/domain/fundamentals"
	domainlineups "github.com/foot-analises/foot-stats-service/internal/domain/lineups"
)

// Team ids used by the sample payloads.
const (
	HomeTeamID  = 1001
	AwayTeamID  = 1002
	ThirdTeamID = 1003
)

// F returns a pointer to v.
func F(v float64) *float64 { return &v }

// I returns a pointer to v.
func I(v int) *int { return &v }

// SampleBreakdown builds a breakdown with the given correct/incorrect totals.
// Totals and averages are left unreported so fallbacks kick in.
func SampleBreakdown(teamID int, games, correct, incorrect float64) fundamentals.TeamBreakdown {
	return fundamentals.TeamBreakdown{
		TeamID:      teamID,
		TeamName:    fmt.Sprintf("Team %d", teamID),
		GamesPlayed: F(games),
		Correct:     fundamentals.ValueTriple{Total: F(correct)},
		Incorrect:   fundamentals.ValueTriple{Total: F(incorrect)},
	}
}

// SampleRanking returns a ranking where both sample teams report
// "Finalização" and "Passes", plus the meta and an excluded category.
func SampleRanking() fundamentals.Ranking {
	return fundamentals.Ranking{
		Favorable: []fundamentals.Category{
			{ID: 1, Name: "Índice", Teams: []fundamentals.TeamBreakdown{SampleBreakdown(HomeTeamID, 2, 1, 0), SampleBreakdown(AwayTeamID, 2, 1, 0)}},
			{ID: 2, Name: "Finalização", Teams: []fundamentals.TeamBreakdown{SampleBreakdown(HomeTeamID, 2, 7, 3), SampleBreakdown(AwayTeamID, 2, 5, 5)}},
			{ID: 3, Name: "Passes", Teams: []fundamentals.TeamBreakdown{SampleBreakdown(HomeTeamID, 2, 400, 40), SampleBreakdown(AwayTeamID, 2, 380, 60)}},
			{ID: 4, Name: "Posse de Bola", Teams: []fundamentals.TeamBreakdown{SampleBreakdown(HomeTeamID, 2, 55, 0), SampleBreakdown(AwayTeamID, 2, 45, 0)}},
		},
		Unfavorable: []fundamentals.Category{
			{ID: 2, Name: "Finalização", Teams: []fundamentals.TeamBreakdown{SampleBreakdown(HomeTeamID, 2, 4, 2), SampleBreakdown(AwayTeamID, 2, 6, 1)}},
			{ID: 3, Name: "Passes", Teams: []fundamentals.TeamBreakdown{SampleBreakdown(HomeTeamID, 2, 380, 50), SampleBreakdown(AwayTeamID, 2, 410, 30)}},
		},
	}
}

// SampleStarters returns n numbered starters for one side.
func SampleStarters(side string, n int) []domainlineups.RosterEntry {
	out := make([]domainlineups.RosterEntry, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, domainlineups.RosterEntry{
			PlayerID:    i + 1,
			Position:    "MEI",
			PlayerName:  fmt.Sprintf("%s %d", side, i+1),
			ShirtNumber: I(i + 1),
		})
	}
	return out
}

// SampleRoster returns a complete roster where the home number 9 was substituted.
func SampleRoster(matchID int) domainlineups.MatchRoster {
	home := SampleStarters("Home", 11)
	home[8].Substitute = &domainlineups.RosterEntry{PlayerID: 99, Position: "ATA", PlayerName: "Home Sub", ShirtNumber: I(19), Minute: "63'"}
	return domainlineups.MatchRoster{
		MatchID:      matchID,
		HomeStarters: home,
		AwayStarters: SampleStarters("Away", 11),
		HomeBench:    []domainlineups.RosterEntry{{PlayerID: 99, PlayerName: "Home Sub", ShirtNumber: I(19)}},
		HomeCoach:    domainlineups.Coach{Name: "Home Coach"},
		AwayCoach:    domainlineups.Coach{Name: "Away Coach", Cards: domainlineups.CardFlags{Yellow: true}},
	}
}

// SampleRounds returns two rounds, the second flagged as current. Home beat
// Away 2-1 in round 1 and drew 1-1 away in round 2; the third team's match
// is still to be played.
func SampleRounds() []competitions.Round {
	team := func(id int, goals *int) competitions.MatchTeam {
		return competitions.MatchTeam{ID: id, Goals: goals}
	}
	return []competitions.Round{
		{Phase: "Fase Única", Number: I(1), Matches: []competitions.Match{
			{ID: 501, Home: team(HomeTeamID, I(2)), Away: team(AwayTeamID, I(1))},
		}},
		{Phase: "Fase Única", Number: I(2), Current: true, Matches: []competitions.Match{
			{ID: 502, Home: team(AwayTeamID, I(1)), Away: team(HomeTeamID, I(1))},
			{ID: 503, Home: team(ThirdTeamID, nil), Away: team(HomeTeamID, nil)},
		}},
	}
}

// SampleMatchFundamentals returns one fundamental of a match with both halves.
func SampleMatchFundamentals() []fundamentals.MatchFundamental {
	return []fundamentals.MatchFundamental{{
		ID:   2,
		Name: "Finalização",
		Home: fundamentals.MatchPeriods{
			FullMatch:  []fundamentals.PlayerActions{{PlayerName: "Home 9", Correct: 3, Incorrect: 2}},
			FirstHalf:  []fundamentals.PlayerActions{{PlayerName: "Home 9", Correct: 1, Incorrect: 1}},
			SecondHalf: []fundamentals.PlayerActions{{PlayerName: "Home 9", Correct: 2, Incorrect: 1}},
		},
		Away: fundamentals.MatchPeriods{
			FullMatch: []fundamentals.PlayerActions{{PlayerName: "Away 10", Correct: 1, Incorrect: 4}},
		},
	}}
}

// SamplePlayerFundamentals returns entries for two players of different teams.
func SamplePlayerFundamentals(fundamentalID int) []fundamentals.PlayerFundamental {
	return []fundamentals.PlayerFundamental{
		{FundamentalID: fundamentalID, FundamentalName: "Passes", TeamID: HomeTeamID, PlayerID: 10, PlayerName: "Player Ten", Total: F(50)},
		{FundamentalID: fundamentalID, FundamentalName: "Passes", TeamID: AwayTeamID, PlayerID: 20, PlayerName: "Player Twenty", Total: F(42)},
	}
}
