package footstats

import (
	"time"
	_ "time/tzdata"
)

const (
	providerName       = "footstats"
	defaultBaseURL     = "https://apifutebol.footstats.com.br/3.1"
	defaultHTTPTimeout = 15 * time.Second
	errorBodyLimit     = 512
)

// Upstream paths, relative to the base URL.
const (
	pathCompetitions       = "/campeonatos"
	pathRounds             = "/campeonatos/%d/rodadas"
	pathRanking            = "/campeonatos/%d/ranking/fundamentos"
	pathLineup             = "/partidas/%d/escalacao"
	pathMatchFundamentals  = "/partidas/%d/fundamentos"
	pathPlayerFundamentals = "/campeonatos/%d/fundamentos/%d/jogadores"
)

// Kick-off times arrive without an offset in one of these layouts.
var kickOffLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}
