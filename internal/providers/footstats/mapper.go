package footstats

import (
	"strings"
	"time"

	"github.com/foot-analises/foot-stats-service/internal/domain/competitions"
	"github.com/foot-analises/foot-stats-service/internal/domain/fundamentals"
	domainlineups "github.com/foot-analises/foot-stats-service/internal/domain/lineups"
)

func mapCategories(in []categoriaResponse) []competitions.Category {
	out := make([]competitions.Category, 0, len(in))
	for _, c := range in {
		comps := make([]competitions.Competition, 0, len(c.Campeonatos))
		for _, comp := range c.Campeonatos {
			comps = append(comps, competitions.Competition{ID: comp.ID, Name: comp.Nome, LogoURL: comp.URLLogo})
		}
		out = append(out, competitions.Category{Name: c.Categoria, Competitions: comps})
	}
	return out
}

func mapRounds(in []rodadaResponse, loc *time.Location) []competitions.Round {
	out := make([]competitions.Round, 0, len(in))
	for _, r := range in {
		matches := make([]competitions.Match, 0, len(r.Partidas))
		for _, p := range r.Partidas {
			matches = append(matches, mapMatch(p, loc))
		}
		out = append(out, competitions.Round{
			Phase:   r.Fase,
			Number:  r.Rodada,
			Current: r.RodadaAtual,
			Matches: matches,
		})
	}
	return out
}

func mapMatch(p partidaResponse, loc *time.Location) competitions.Match {
	return competitions.Match{
		ID:      p.ID,
		PhaseID: p.IDFase,
		Home:    mapMatchTeam(p.Mandante),
		Away:    mapMatchTeam(p.Visitante),
		Period:  p.PeriodoJogo,
		Scout:   p.Scout,
		Live:    p.TempoReal,
		KickOff: parseKickOff(p.DataHora, loc),
	}
}

func mapMatchTeam(e equipeResponse) competitions.MatchTeam {
	return competitions.MatchTeam{
		ID:           e.ID,
		Name:         e.Nome,
		Abbreviation: e.Sigla,
		LogoURL:      e.URLLogo,
		Goals:        e.Gols,
	}
}

// parseKickOff reads an upstream timestamp. Values without an offset are
// interpreted in loc. Unparseable values yield nil.
func parseKickOff(raw string, loc *time.Location) *time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	for _, layout := range kickOffLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			utc := t.UTC()
			return &utc
		}
	}
	return nil
}

func mapRanking(in rankingResponse) fundamentals.Ranking {
	return fundamentals.Ranking{
		Favorable:   mapFundamentals(in.Pros),
		Unfavorable: mapFundamentals(in.Contra),
	}
}

func mapFundamentals(in []fundamentoResponse) []fundamentals.Category {
	out := make([]fundamentals.Category, 0, len(in))
	for _, f := range in {
		teams := make([]fundamentals.TeamBreakdown, 0, len(f.Equipes))
		for _, e := range f.Equipes {
			teams = append(teams, fundamentals.TeamBreakdown{
				TeamID:      e.ID,
				TeamName:    e.NomeEquipe,
				LogoURL:     e.SrcLogo,
				GamesPlayed: e.QtdJogos,
				Correct:     mapValues(e.Certos),
				Incorrect:   mapValues(e.Errados),
				Totals:      mapValues(e.Totais),
			})
		}
		out = append(out, fundamentals.Category{ID: f.ID, Name: f.Nome, Teams: teams})
	}
	return out
}

// mapValues prefers the integral total and falls back to the float one.
func mapValues(v *valoresResponse) fundamentals.ValueTriple {
	if v == nil {
		return fundamentals.ValueTriple{}
	}
	total := v.Total
	if total == nil {
		total = v.TotalFloat
	}
	return fundamentals.ValueTriple{Total: total, Average: v.Media, Percentage: v.Porcentagem}
}

func mapRoster(in lineupResponse, matchID int) domainlineups.MatchRoster {
	id := in.IDPartida
	if id == 0 {
		id = matchID
	}
	return domainlineups.MatchRoster{
		MatchID:      id,
		HomeStarters: mapPlayers(in.Titular.Mandante),
		AwayStarters: mapPlayers(in.Titular.Visitante),
		HomeBench:    mapPlayers(in.Reserva.Mandante),
		AwayBench:    mapPlayers(in.Reserva.Visitante),
		HomeCoach:    mapCoach(in.TecnicoMandante),
		AwayCoach:    mapCoach(in.TecnicoVisitante),
	}
}

func mapPlayers(in []jogadorResponse) []domainlineups.RosterEntry {
	out := make([]domainlineups.RosterEntry, 0, len(in))
	for _, j := range in {
		out = append(out, mapPlayer(j))
	}
	return out
}

// mapPlayer keeps the whole substitution chain; truncation happens in the builder.
func mapPlayer(j jogadorResponse) domainlineups.RosterEntry {
	entry := domainlineups.RosterEntry{
		PlayerID:     j.IDJogador,
		Position:     j.Posicao,
		PlayerName:   j.NomeJogador,
		ShirtNumber:  j.NumeroDaCamisa,
		Goals:        j.Gols,
		GoalsAgainst: j.GolsContra,
		Cards:        mapCards(j.cartoesResponse),
		Minute:       j.Tempo,
	}
	if j.FoiSubstituido != nil {
		sub := mapPlayer(*j.FoiSubstituido)
		entry.Substitute = &sub
	}
	return entry
}

func mapCoach(t *tecnicoResponse) domainlineups.Coach {
	if t == nil {
		return domainlineups.Coach{}
	}
	return domainlineups.Coach{Name: t.Nome, Cards: mapCards(t.cartoesResponse)}
}

func mapCards(c cartoesResponse) domainlineups.CardFlags {
	return domainlineups.CardFlags{Yellow: c.CartaoAmarelo, SecondYellow: c.CartaoAmarelo2, Red: c.CartaoVermelho}
}

func mapPlayerFundamentals(in []fundamentoJogadorResponse) []fundamentals.PlayerFundamental {
	out := make([]fundamentals.PlayerFundamental, 0, len(in))
	for _, f := range in {
		var details []fundamentals.ValueTriple
		for i := range f.Detalhes {
			details = append(details, mapValues(&f.Detalhes[i]))
		}
		out = append(out, fundamentals.PlayerFundamental{
			FundamentalID:   f.ID,
			FundamentalName: f.Nome,
			TeamID:          f.IDTeam,
			TeamName:        f.NomeTime,
			LogoURL:         f.SrcLogo,
			PlayerID:        f.IDJogador,
			PlayerName:      f.NomeJogador,
			SecondsPlayed:   f.SegundosJogados,
			Games:           f.Jogos,
			Total:           f.Total,
			Average:         f.TotalMedia,
			Percentage:      f.Percentual,
			Details:         details,
		})
	}
	return out
}

func mapMatchFundamentals(in []fundamentoPartidaResponse) []fundamentals.MatchFundamental {
	out := make([]fundamentals.MatchFundamental, 0, len(in))
	for _, f := range in {
		out = append(out, fundamentals.MatchFundamental{
			ID:   f.IDFundamento,
			Name: f.Nome,
			Home: mapMatchPeriods(f.Mandante),
			Away: mapMatchPeriods(f.Visitante),
		})
	}
	return out
}

// mapMatchPeriods treats a missing side as a side with no recorded actions.
func mapMatchPeriods(e *equipePartidaResponse) fundamentals.MatchPeriods {
	if e == nil {
		return fundamentals.MatchPeriods{}
	}
	return fundamentals.MatchPeriods{
		FullMatch:  mapPlayerActions(e.JogoCompleto),
		FirstHalf:  mapPlayerActions(e.PrimeiroTempo),
		SecondHalf: mapPlayerActions(e.SegundoTempo),
	}
}

func mapPlayerActions(in []acoesJogadorResponse) []fundamentals.PlayerActions {
	out := make([]fundamentals.PlayerActions, 0, len(in))
	for _, a := range in {
		out = append(out, fundamentals.PlayerActions{PlayerName: a.NomeJogador, Correct: a.AcoesCertas, Incorrect: a.AcoesErradas})
	}
	return out
}
