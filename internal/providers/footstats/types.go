package footstats

// envelope is the common wrapper around every payload.
type envelope[T any] struct {
	Data T `json:"data"`
}

type competitionsResponse struct {
	Categorias []categoriaResponse `json:"categorias"`
}

type categoriaResponse struct {
	Categoria   string               `json:"categoria"`
	Campeonatos []campeonatoResponse `json:"campeonatos"`
}

type campeonatoResponse struct {
	ID      int    `json:"id"`
	Nome    string `json:"nome"`
	URLLogo string `json:"urlLogo"`
}

type roundsResponse struct {
	Rodadas []rodadaResponse `json:"rodadas"`
}

type rodadaResponse struct {
	Fase        string            `json:"fase"`
	Rodada      *int              `json:"rodada"`
	RodadaAtual bool              `json:"rodadaAtual"`
	Partidas    []partidaResponse `json:"partidas"`
}

type partidaResponse struct {
	ID          int            `json:"id"`
	IDFase      *int           `json:"idFase"`
	Mandante    equipeResponse `json:"mandante"`
	Visitante   equipeResponse `json:"visitante"`
	PeriodoJogo string         `json:"periodoJogo"`
	Scout       bool           `json:"scout"`
	TempoReal   bool           `json:"temporeal"`
	DataHora    string         `json:"dataHora"`
}

type equipeResponse struct {
	ID      int    `json:"id"`
	Gols    *int   `json:"gols"`
	Nome    string `json:"nome"`
	Sigla   string `json:"sigla"`
	URLLogo string `json:"urlLogo"`
}

type rankingResponse struct {
	Pros   []fundamentoResponse `json:"pros"`
	Contra []fundamentoResponse `json:"contra"`
}

type fundamentoResponse struct {
	ID      int                        `json:"id"`
	Nome    string                     `json:"nome"`
	Equipes []equipeFundamentoResponse `json:"equipes"`
}

type equipeFundamentoResponse struct {
	ID         int              `json:"id"`
	NomeEquipe string           `json:"nomeEquipe"`
	SrcLogo    string           `json:"srcLogo"`
	QtdJogos   *float64         `json:"qtdJogos"`
	Certos     *valoresResponse `json:"certos"`
	Errados    *valoresResponse `json:"errados"`
	Totais     *valoresResponse `json:"totais"`
}

type valoresResponse struct {
	Total       *float64 `json:"total"`
	TotalFloat  *float64 `json:"totalFloat"`
	Media       *float64 `json:"media"`
	Porcentagem *float64 `json:"porcentagem"`
}

type lineupResponse struct {
	IDPartida        int              `json:"idPartida"`
	Titular          ladosResponse    `json:"titular"`
	Reserva          ladosResponse    `json:"reserva"`
	TecnicoMandante  *tecnicoResponse `json:"tecnicoMandante"`
	TecnicoVisitante *tecnicoResponse `json:"tecnicoVisitante"`
}

type ladosResponse struct {
	Mandante  []jogadorResponse `json:"mandante"`
	Visitante []jogadorResponse `json:"visitante"`
}

type cartoesResponse struct {
	CartaoAmarelo  bool `json:"cartaoAmarelo"`
	CartaoAmarelo2 bool `json:"cartaoAmarelo2"`
	CartaoVermelho bool `json:"cartaoVermelho"`
}

type tecnicoResponse struct {
	Nome string `json:"nome"`
	cartoesResponse
}

type jogadorResponse struct {
	IDJogador      int              `json:"idJogador"`
	NomeJogador    string           `json:"nomeJogador"`
	Posicao        string           `json:"posicao"`
	NumeroDaCamisa *int             `json:"numeroDaCamisa"`
	Gols           int              `json:"gols"`
	GolsContra     int              `json:"golsContra"`
	Tempo          string           `json:"tempo"`
	FoiSubstituido *jogadorResponse `json:"foiSubstituido"`
	cartoesResponse
}

type playerFundamentalsResponse struct {
	Fundamentos []fundamentoJogadorResponse `json:"fundamentos"`
}

type fundamentoJogadorResponse struct {
	ID              int               `json:"id"`
	Nome            string            `json:"nome"`
	IDTeam          int               `json:"idTeam"`
	NomeTime        string            `json:"nomeTime"`
	SrcLogo         string            `json:"srcLogo"`
	IDJogador       int               `json:"idJogador"`
	NomeJogador     string            `json:"nomeJogador"`
	SegundosJogados int               `json:"segundosJogados"`
	Jogos           *float64          `json:"jogos"`
	Total           *float64          `json:"total"`
	TotalMedia      *float64          `json:"totalMedia"`
	Percentual      *float64          `json:"percetual"`
	Detalhes        []valoresResponse `json:"detalhes"`
}

type matchFundamentalsResponse struct {
	Fundamentos []fundamentoPartidaResponse `json:"fundamentos"`
}

type fundamentoPartidaResponse struct {
	IDFundamento int                    `json:"idFundamento"`
	Nome         string                 `json:"nome"`
	Mandante     *equipePartidaResponse `json:"mandante"`
	Visitante    *equipePartidaResponse `json:"visitante"`
}

type equipePartidaResponse struct {
	JogoCompleto  []acoesJogadorResponse `json:"jogoCompleto"`
	PrimeiroTempo []acoesJogadorResponse `json:"primeiroTempo"`
	SegundoTempo  []acoesJogadorResponse `json:"segundoTempo"`
}

type acoesJogadorResponse struct {
	NomeJogador  string `json:"nomeJogador"`
	AcoesCertas  int    `json:"acoesCertas"`
	AcoesErradas int    `json:"acoesErradas"`
}
