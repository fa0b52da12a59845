package fixture

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/foot-analises/foot-stats-service/internal/domain/competitions"
	"github.com/foot-analises/foot-stats-service/internal/domain/fundamentals"
	domainlineups "github.com/foot-analises/foot-stats-service/internal/domain/lineups"
	"github.com/foot-analises/foot-stats-service/internal/providers"
)

const providerName = "fixture"

// CompetitionID is the only competition the fixture knows about.
const CompetitionID = 1

var fixtureTeams = []struct {
	id   int
	name string
	abbr string
}{
	{10, "Flamengo", "FLA"},
	{20, "Palmeiras", "PAL"},
	{30, "Corinthians", "COR"},
	{40, "Grêmio", "GRE"},
}

// category seeds: name, correct and incorrect per game for the favorable
// side, scaled per team below.
var fixtureCategories = []struct {
	id        int
	name      string
	correct   float64
	incorrect float64
}{
	{1, "Índice", 1, 0},
	{2, "Finalização", 6, 8},
	{3, "Passes", 380, 45},
	{4, "Desarmes", 14, 6},
	{5, "Cruzamentos", 5, 12},
	{6, "Posse de Bola", 55, 0},
	{7, "Faltas Cometidas", 12, 0},
}

// Provider returns a static data set for local runs and bootstrapping.
type Provider struct {
	now func() time.Time
}

// New creates a fixture provider with a time source.
func New() *Provider {
	return &Provider{now: time.Now}
}

func notFound(what string, id int) error {
	return &providers.StatusError{Provider: providerName, StatusCode: http.StatusNotFound, Body: fmt.Sprintf("%s %d not found", what, id)}
}

// FetchCompetitions returns a single national category.
func (p *Provider) FetchCompetitions(ctx context.Context) ([]competitions.Category, error) {
	return []competitions.Category{{
		Name:         "Nacional",
		Competitions: []competitions.Competition{{ID: CompetitionID, Name: "Brasileirão Série A"}},
	}}, nil
}

// FetchRounds returns two rounds; the second is current and kicks off today.
func (p *Provider) FetchRounds(ctx context.Context, competitionID int) ([]competitions.Round, error) {
	if competitionID != CompetitionID {
		return nil, notFound("competition", competitionID)
	}
	today := p.now().UTC().Truncate(24 * time.Hour)
	first, second := 1, 2
	return []competitions.Round{
		{Phase: "Fase Única", Number: &first, Matches: p.matches(9001, today.Add(-7*24*time.Hour), true)},
		{Phase: "Fase Única", Number: &second, Current: true, Matches: p.matches(9003, today.Add(19*time.Hour), false)},
	}, nil
}

func (p *Provider) matches(firstID int, kickOff time.Time, played bool) []competitions.Match {
	out := make([]competitions.Match, 0, len(fixtureTeams)/2)
	for i := 0; i+1 < len(fixtureTeams); i += 2 {
		home, away := fixtureTeams[i], fixtureTeams[i+1]
		ko := kickOff.Add(time.Duration(i) * time.Hour)
		m := competitions.Match{
			ID:      firstID + i/2,
			Home:    competitions.MatchTeam{ID: home.id, Name: home.name, Abbreviation: home.abbr},
			Away:    competitions.MatchTeam{ID: away.id, Name: away.name, Abbreviation: away.abbr},
			Scout:   played,
			KickOff: &ko,
		}
		if played {
			hg, ag := 2, i/2
			m.Home.Goals, m.Away.Goals = &hg, &ag
			m.Period = "Encerrado"
		}
		out = append(out, m)
	}
	return out
}

// FetchRanking returns the same categories, in the same order, for every team.
func (p *Provider) FetchRanking(ctx context.Context, competitionID int) (fundamentals.Ranking, error) {
	if competitionID != CompetitionID {
		return fundamentals.Ranking{}, notFound("competition", competitionID)
	}
	return fundamentals.Ranking{
		Favorable:   buildCategories(1.0),
		Unfavorable: buildCategories(0.8),
	}, nil
}

func buildCategories(scale float64) []fundamentals.Category {
	out := make([]fundamentals.Category, 0, len(fixtureCategories))
	for _, c := range fixtureCategories {
		teams := make([]fundamentals.TeamBreakdown, 0, len(fixtureTeams))
		for i, t := range fixtureTeams {
			games := 2.0
			factor := scale * (1 + float64(i)/10)
			correct := c.correct * games * factor
			incorrect := c.incorrect * games * factor
			teams = append(teams, fundamentals.TeamBreakdown{
				TeamID:      t.id,
				TeamName:    t.name,
				GamesPlayed: &games,
				Correct:     fundamentals.ValueTriple{Total: &correct},
				Incorrect:   fundamentals.ValueTriple{Total: &incorrect},
			})
		}
		out = append(out, fundamentals.Category{ID: c.id, Name: c.name, Teams: teams})
	}
	return out
}

// FetchRoster returns full lineups for the first round's matches.
func (p *Provider) FetchRoster(ctx context.Context, matchID int) (domainlineups.MatchRoster, error) {
	idx := matchID - 9001
	if idx < 0 || idx*2+1 >= len(fixtureTeams) {
		return domainlineups.MatchRoster{}, notFound("match", matchID)
	}
	home, away := fixtureTeams[idx*2], fixtureTeams[idx*2+1]
	homeStarters := starters(home.abbr, home.id)
	homeStarters[9].Substitute = &domainlineups.RosterEntry{
		PlayerID:    home.id*100 + 20,
		Position:    "ATA",
		PlayerName:  home.abbr + " Reserva 20",
		ShirtNumber: intPtr(20),
		Minute:      "67'",
	}
	awayStarters := starters(away.abbr, away.id)
	awayStarters[4].Cards.Yellow = true
	return domainlineups.MatchRoster{
		MatchID:      matchID,
		HomeStarters: homeStarters,
		AwayStarters: awayStarters,
		HomeBench:    []domainlineups.RosterEntry{*homeStarters[9].Substitute},
		AwayBench:    []domainlineups.RosterEntry{{PlayerID: away.id*100 + 12, Position: "GOL", PlayerName: away.abbr + " Reserva 12", ShirtNumber: intPtr(12)}},
		HomeCoach:    domainlineups.Coach{Name: home.name + " Técnico"},
		AwayCoach:    domainlineups.Coach{Name: away.name + " Técnico"},
	}, nil
}

var fixturePositions = []string{"GOL", "LAT", "ZAG", "ZAG", "LAT", "VOL", "MEI", "MEI", "ATA", "ATA", "ATA"}

func starters(abbr string, teamID int) []domainlineups.RosterEntry {
	out := make([]domainlineups.RosterEntry, 0, len(fixturePositions))
	for i, pos := range fixturePositions {
		out = append(out, domainlineups.RosterEntry{
			PlayerID:    teamID*100 + i + 1,
			Position:    pos,
			PlayerName:  fmt.Sprintf("%s Titular %d", abbr, i+1),
			ShirtNumber: intPtr(i + 1),
		})
	}
	out[9].Goals = 1
	return out
}

// FetchPlayerFundamentals returns one entry per fixture team's number 10.
func (p *Provider) FetchPlayerFundamentals(ctx context.Context, competitionID, fundamentalID int) ([]fundamentals.PlayerFundamental, error) {
	if competitionID != CompetitionID {
		return nil, notFound("competition", competitionID)
	}
	name := ""
	for _, c := range fixtureCategories {
		if c.id == fundamentalID {
			name = c.name
		}
	}
	if name == "" {
		return nil, notFound("fundamental", fundamentalID)
	}
	out := make([]fundamentals.PlayerFundamental, 0, len(fixtureTeams))
	for i, t := range fixtureTeams {
		games, total := 2.0, float64(20-i*3)
		avg := total / games
		out = append(out, fundamentals.PlayerFundamental{
			FundamentalID:   fundamentalID,
			FundamentalName: name,
			TeamID:          t.id,
			TeamName:        t.name,
			PlayerID:        t.id*100 + 10,
			PlayerName:      fmt.Sprintf("%s Titular 10", t.abbr),
			SecondsPlayed:   2 * 90 * 60,
			Games:           &games,
			Total:           &total,
			Average:         &avg,
		})
	}
	return out, nil
}

// FetchMatchFundamentals reports shots and tackles for the played first-round
// matches. Unplayed or unknown matches are not found.
func (p *Provider) FetchMatchFundamentals(ctx context.Context, matchID int) ([]fundamentals.MatchFundamental, error) {
	idx := matchID - 9001
	if idx < 0 || idx*2+1 >= len(fixtureTeams) {
		return nil, notFound("match", matchID)
	}
	home, away := fixtureTeams[idx*2], fixtureTeams[idx*2+1]
	out := make([]fundamentals.MatchFundamental, 0, 2)
	for _, c := range fixtureCategories {
		if c.id != 2 && c.id != 4 {
			continue
		}
		out = append(out, fundamentals.MatchFundamental{
			ID:   c.id,
			Name: c.name,
			Home: matchPeriods(home.abbr, int(c.correct)/2, int(c.incorrect)/2),
			Away: matchPeriods(away.abbr, int(c.correct)/3, int(c.incorrect)/3),
		})
	}
	return out, nil
}

// matchPeriods splits a side's actions between its number 9 and 10, giving
// the first half the odd action when the total does not split evenly.
func matchPeriods(abbr string, correct, incorrect int) fundamentals.MatchPeriods {
	players := []string{abbr + " Titular 9", abbr + " Titular 10"}
	var periods fundamentals.MatchPeriods
	for _, name := range players {
		first := fundamentals.PlayerActions{PlayerName: name, Correct: (correct + 1) / 2, Incorrect: (incorrect + 1) / 2}
		second := fundamentals.PlayerActions{PlayerName: name, Correct: correct / 2, Incorrect: incorrect / 2}
		periods.FirstHalf = append(periods.FirstHalf, first)
		periods.SecondHalf = append(periods.SecondHalf, second)
		periods.FullMatch = append(periods.FullMatch, fundamentals.PlayerActions{
			PlayerName: name,
			Correct:    first.Correct + second.Correct,
			Incorrect:  first.Incorrect + second.Incorrect,
		})
	}
	return periods
}

func intPtr(v int) *int { return &v }
