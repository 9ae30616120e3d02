package domain

import "time"

// Endereco é a resposta da consulta de CEP (formato do ViaCEP).
type Endereco struct {
	CEP         string `json:"cep"`
	Logradouro  string `json:"logradouro"`
	Complemento string `json:"complemento"`
	Bairro      string `json:"bairro"`
	Localidade  string `json:"localidade"`
	UF          string `json:"uf"`
	IBGE        string `json:"ibge"`
	GIA         string `json:"gia"`
	DDD         string `json:"ddd"`
	SIAFI       string `json:"siafi"`
}

type Cotacao struct {
	MoedaOrigem     string    `json:"moedaOrigem"`
	MoedaDestino    string    `json:"moedaDestino"`
	Taxa            float64   `json:"taxa"`
	DataAtualizacao time.Time `json:"dataAtualizacao"`
}

// JogoEsportivo é uma partida disponível para apostas. OddsEmpate é nulo em
// modalidades sem empate.
type JogoEsportivo struct {
	ID            int       `json:"id"`
	Categoria     string    `json:"categoria"`
	TimeCasa      string    `json:"timeCasa"`
	TimeVisitante string    `json:"timeVisitante"`
	DataJogo      time.Time `json:"dataJogo"`
	OddsCasa      float64   `json:"oddsCasa"`
	OddsEmpate    *float64  `json:"oddsEmpate"`
	OddsVisitante float64   `json:"oddsVisitante"`
	Status        string    `json:"status"`
}

type PrevisaoTempo struct {
	Cidade       string    `json:"cidade"`
	Temperatura  int       `json:"temperatura"`
	Condicao     string    `json:"condicao"`
	Umidade      int       `json:"umidade"`
	DataConsulta time.Time `json:"dataConsulta"`
}

type Localizacao struct {
	Cidade string `json:"cidade"`
	Estado string `json:"estado"`
	Bairro string `json:"bairro"`
}

// Dashboard agrega localização, clima, jogos e cotação do dólar para um CEP.
type Dashboard struct {
	Localizacao      Localizacao     `json:"localizacao"`
	Tempo            *PrevisaoTempo  `json:"tempo"`
	JogosDisponiveis []JogoEsportivo `json:"jogosDisponiveis"`
	CotacaoUSD       *Cotacao        `json:"cotacaoUSD"`
	DataConsulta     time.Time       `json:"dataConsulta"`
}
