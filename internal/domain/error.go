package domain

// ErrorResponse é o corpo padronizado de todas as respostas de erro da API.
// @Description Corpo padronizado de erro.
type ErrorResponse struct {
	Message string `json:"message" example:"Aposta não encontrada"`
}
