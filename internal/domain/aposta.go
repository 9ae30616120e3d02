package domain

import "time"

// Resultados conhecidos de uma aposta. O campo continua texto livre.
const (
	ResultadoGanhou    = "GANHOU"
	ResultadoPerdeu    = "PERDEU"
	ResultadoPendente  = "PENDENTE"
	ResultadoCancelada = "CANCELADA"
)

// Aposta é um registro de aposta pertencente a um único usuário.
// Username vem do JOIN com usuarios e só é preenchido nas leituras.
type Aposta struct {
	ID        int64     `json:"id"`
	UsuarioID int64     `json:"usuarioId"`
	Categoria string    `json:"categoria"`
	Jogo      string    `json:"jogo"`
	Valor     float64   `json:"valor"`
	Resultado string    `json:"resultado"`
	Data      time.Time `json:"data"`
	Username  string    `json:"username,omitempty"`
}

// ApostaRequest é o payload de criação e atualização de apostas.
type ApostaRequest struct {
	Categoria string    `json:"categoria" validate:"required,max=255"`
	Jogo      string    `json:"jogo" validate:"required,max=255"`
	Valor     float64   `json:"valor" validate:"gte=0.01,lte=9999999999999999.99"`
	Resultado string    `json:"resultado" validate:"max=50"`
	Data      time.Time `json:"data"`
}

// ApostaFilter são os parâmetros de GET /v1/apostas/pesquisar.
// Ponteiros nulos e strings vazias não filtram.
type ApostaFilter struct {
	Categoria   string
	Jogo        string
	Resultado   string
	DataInicio  *time.Time
	DataFim     *time.Time
	ValorMinimo *float64
	ValorMaximo *float64
	Page        int
	PageSize    int
	OrderBy     string
	Ascending   bool
}
