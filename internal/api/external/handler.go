package external

import (
	"context"
	"net/http"

	"betaware/internal/domain"
	"betaware/internal/pkg/logger"
	"betaware/internal/pkg/respond"
)

// ExternalService define o contrato que o Handler espera do serviço de integrações.
type ExternalService interface {
	BuscarCEP(ctx context.Context, cep string) (domain.Endereco, error)
	ObterCotacao(ctx context.Context, origem, destino string) (domain.Cotacao, error)
	ListarJogos(ctx context.Context) []domain.JogoEsportivo
	PrevisaoTempo(ctx context.Context, cidade string) (domain.PrevisaoTempo, error)
	Dashboard(ctx context.Context, cep string) (domain.Dashboard, error)
}

// Handler expõe as consultas a dados externos.
type Handler struct {
	Service ExternalService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc ExternalService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
	}
}

// CEPHandler lida com a requisição GET /v1/external/cep/{cep}.
// @Summary Consulta endereço por CEP
// @Tags external
// @Produce json
// @Param cep path string true "CEP (8 dígitos)"
// @Success 200 {object} domain.Endereco
// @Failure 400 {object} domain.ErrorResponse "CEP inválido"
// @Failure 404 {object} domain.ErrorResponse "CEP não encontrado"
// @Security ApiKeyAuth
// @Router /external/cep/{cep} [get]
func (h *Handler) CEPHandler(w http.ResponseWriter, r *http.Request) {
	endereco, err := h.Service.BuscarCEP(r.Context(), r.PathValue("cep"))
	respond.Handle(w, r, h.Logger, endereco, err, http.StatusOK)
}

// CotacaoHandler lida com a requisição GET /v1/external/cotacao.
// @Summary Cotação entre moedas
// @Tags external
// @Produce json
// @Param origem query string false "Moeda de origem (padrão USD)"
// @Param destino query string false "Moeda de destino (padrão BRL)"
// @Success 200 {object} domain.Cotacao
// @Failure 404 {object} domain.ErrorResponse "Cotação não encontrada"
// @Security ApiKeyAuth
// @Router /external/cotacao [get]
func (h *Handler) CotacaoHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	cotacao, err := h.Service.ObterCotacao(r.Context(), q.Get("origem"), q.Get("destino"))
	respond.Handle(w, r, h.Logger, cotacao, err, http.StatusOK)
}

// JogosHandler lida com a requisição GET /v1/external/jogos.
// @Summary Jogos disponíveis para apostas
// @Tags external
// @Produce json
// @Success 200 {array} domain.JogoEsportivo
// @Security ApiKeyAuth
// @Router /external/jogos [get]
func (h *Handler) JogosHandler(w http.ResponseWriter, r *http.Request) {
	respond.Handle(w, r, h.Logger, h.Service.ListarJogos(r.Context()), nil, http.StatusOK)
}

// TempoHandler lida com a requisição GET /v1/external/tempo/{cidade}.
// @Summary Previsão do tempo
// @Tags external
// @Produce json
// @Param cidade path string true "Cidade"
// @Success 200 {object} domain.PrevisaoTempo
// @Security ApiKeyAuth
// @Router /external/tempo/{cidade} [get]
func (h *Handler) TempoHandler(w http.ResponseWriter, r *http.Request) {
	tempo, err := h.Service.PrevisaoTempo(r.Context(), r.PathValue("cidade"))
	respond.Handle(w, r, h.Logger, tempo, err, http.StatusOK)
}

// DashboardHandler lida com a requisição GET /v1/external/dashboard/{cep}.
// @Summary Painel com localização, clima, jogos e cotação do dólar
// @Tags external
// @Produce json
// @Param cep path string true "CEP"
// @Success 200 {object} domain.Dashboard
// @Failure 400 {object} domain.ErrorResponse "CEP inválido"
// @Security ApiKeyAuth
// @Router /external/dashboard/{cep} [get]
func (h *Handler) DashboardHandler(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.Service.Dashboard(r.Context(), r.PathValue("cep"))
	respond.Handle(w, r, h.Logger, dashboard, err, http.StatusOK)
}
