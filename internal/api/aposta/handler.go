package aposta

import (
	"context"
	"net/http"
	"time"

	"betaware/internal/api/params"
	"betaware/internal/domain"
	apperror "betaware/internal/errors"
	"betaware/internal/pkg/logger"
	"betaware/internal/pkg/middleware"
	"betaware/internal/pkg/respond"
)

// ApostaService define o contrato que o Handler espera da camada de Serviço.
type ApostaService interface {
	Create(ctx context.Context, req domain.ApostaRequest, username string) (domain.Aposta, error)
	Get(ctx context.Context, id int64, username string) (domain.Aposta, error)
	Update(ctx context.Context, id int64, req domain.ApostaRequest, username string) (domain.Aposta, error)
	Delete(ctx context.Context, id int64, username string) error
	ListByUsuario(ctx context.Context, username string) ([]domain.Aposta, error)
	ListByPeriodo(ctx context.Context, inicio, fim time.Time) ([]domain.Aposta, error)
	ListByUsuarioEPeriodo(ctx context.Context, username string, inicio, fim time.Time) ([]domain.Aposta, error)
	Search(ctx context.Context, filter domain.ApostaFilter) ([]domain.Aposta, error)
}

// Handler agrupa todos os métodos de Handler de apostas.
type Handler struct {
	Service ApostaService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc ApostaService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
	}
}

// username do token; as rotas de aposta sempre passam pelo middleware de auth.
func username(r *http.Request) (string, error) {
	claims, ok := middleware.GetUserClaimsFromContext(r.Context())
	if !ok || claims.Username == "" {
		return "", apperror.NewUnauthenticatedError("Autorização necessária. Token não processado.")
	}
	return claims.Username, nil
}

// CreateApostaHandler lida com a requisição POST /v1/apostas.
// @Summary Cria uma aposta
// @Description Registra uma aposta para o usuário autenticado.
// @Tags apostas
// @Accept json
// @Produce json
// @Param aposta body domain.ApostaRequest true "Dados da aposta"
// @Success 200 {object} domain.Aposta "Aposta criada"
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 401 {object} domain.ErrorResponse "Não autenticado"
// @Security ApiKeyAuth
// @Router /apostas [post]
func (h *Handler) CreateApostaHandler(w http.ResponseWriter, r *http.Request) {
	user, err := username(r)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	var req domain.ApostaRequest
	if err := respond.DecodeJSON(r, &req); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	aposta, err := h.Service.Create(r.Context(), req, user)
	respond.Handle(w, r, h.Logger, aposta, err, http.StatusOK)
}

// GetApostaHandler lida com a requisição GET /v1/apostas/{id}.
// @Summary Obtém uma aposta
// @Description Busca uma aposta do usuário autenticado. Aposta de outro usuário responde 404.
// @Tags apostas
// @Produce json
// @Param id path int true "ID da aposta"
// @Success 200 {object} domain.Aposta "Aposta encontrada"
// @Failure 404 {object} domain.ErrorResponse "Aposta não encontrada"
// @Security ApiKeyAuth
// @Router /apostas/{id} [get]
func (h *Handler) GetApostaHandler(w http.ResponseWriter, r *http.Request) {
	user, err := username(r)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	id, err := params.PathID(r, "id")
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	aposta, err := h.Service.Get(r.Context(), id, user)
	respond.Handle(w, r, h.Logger, aposta, err, http.StatusOK)
}

// UpdateApostaHandler lida com a requisição PUT /v1/apostas/{id}.
// @Summary Atualiza uma aposta
// @Description Substitui categoria, jogo, valor, resultado e data de uma aposta do usuário.
// @Tags apostas
// @Accept json
// @Produce json
// @Param id path int true "ID da aposta"
// @Param aposta body domain.ApostaRequest true "Novos dados"
// @Success 200 {object} domain.Aposta "Aposta atualizada"
// @Failure 400 {object} domain.ErrorResponse "Aposta não encontrada ou payload inválido"
// @Security ApiKeyAuth
// @Router /apostas/{id} [put]
func (h *Handler) UpdateApostaHandler(w http.ResponseWriter, r *http.Request) {
	user, err := username(r)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	id, err := params.PathID(r, "id")
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	var req domain.ApostaRequest
	if err := respond.DecodeJSON(r, &req); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	aposta, err := h.Service.Update(r.Context(), id, req, user)
	respond.Handle(w, r, h.Logger, aposta, err, http.StatusOK)
}

// DeleteApostaHandler lida com a requisição DELETE /v1/apostas/{id}.
// @Summary Remove uma aposta
// @Tags apostas
// @Param id path int true "ID da aposta"
// @Success 204 "Removida"
// @Failure 404 {object} domain.ErrorResponse "Aposta não encontrada"
// @Security ApiKeyAuth
// @Router /apostas/{id} [delete]
func (h *Handler) DeleteApostaHandler(w http.ResponseWriter, r *http.Request) {
	user, err := username(r)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	id, err := params.PathID(r, "id")
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	err = h.Service.Delete(r.Context(), id, user)
	respond.Handle(w, r, h.Logger, nil, err, http.StatusNoContent)
}

// ListApostasHandler lida com a requisição GET /v1/apostas.
// @Summary Lista as apostas do usuário
// @Tags apostas
// @Produce json
// @Success 200 {array} domain.Aposta "Apostas, mais recentes primeiro"
// @Security ApiKeyAuth
// @Router /apostas [get]
func (h *Handler) ListApostasHandler(w http.ResponseWriter, r *http.Request) {
	user, err := username(r)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	apostas, err := h.Service.ListByUsuario(r.Context(), user)
	respond.Handle(w, r, h.Logger, apostas, err, http.StatusOK)
}

// ListByPeriodoHandler lida com a requisição GET /v1/apostas/periodo (ADMIN).
// @Summary Lista apostas de todos os usuários num período
// @Tags apostas
// @Produce json
// @Param inicio query string true "Data inicial (RFC3339 ou AAAA-MM-DD)"
// @Param fim query string true "Data final (RFC3339 ou AAAA-MM-DD)"
// @Success 200 {array} domain.Aposta
// @Failure 400 {object} domain.ErrorResponse "Período inválido"
// @Failure 403 {object} domain.ErrorResponse "Acesso negado"
// @Security ApiKeyAuth
// @Router /apostas/periodo [get]
func (h *Handler) ListByPeriodoHandler(w http.ResponseWriter, r *http.Request) {
	inicio, fim, err := periodo(r)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	apostas, err := h.Service.ListByPeriodo(r.Context(), inicio, fim)
	respond.Handle(w, r, h.Logger, apostas, err, http.StatusOK)
}

// ListByUsuarioEPeriodoHandler lida com a requisição GET /v1/apostas/usuario/periodo.
// @Summary Lista as apostas do usuário num período
// @Tags apostas
// @Produce json
// @Param inicio query string true "Data inicial"
// @Param fim query string true "Data final"
// @Success 200 {array} domain.Aposta
// @Failure 400 {object} domain.ErrorResponse "Período inválido"
// @Security ApiKeyAuth
// @Router /apostas/usuario/periodo [get]
func (h *Handler) ListByUsuarioEPeriodoHandler(w http.ResponseWriter, r *http.Request) {
	user, err := username(r)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	inicio, fim, err := periodo(r)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	apostas, err := h.Service.ListByUsuarioEPeriodo(r.Context(), user, inicio, fim)
	respond.Handle(w, r, h.Logger, apostas, err, http.StatusOK)
}

func periodo(r *http.Request) (time.Time, time.Time, error) {
	q := r.URL.Query()
	inicio, err := params.RequiredTime(q, "inicio")
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	fim, err := params.RequiredTime(q, "fim")
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return inicio, fim, nil
}

// SearchApostasHandler lida com a requisição GET /v1/apostas/pesquisar (ADMIN).
// @Summary Pesquisa apostas com filtros e paginação
// @Description Filtros ausentes não restringem. orderBy aceita data, valor, categoria, jogo, resultado e id.
// @Tags apostas
// @Produce json
// @Param categoria query string false "Trecho da categoria"
// @Param jogo query string false "Trecho do jogo"
// @Param resultado query string false "Resultado exato"
// @Param dataInicio query string false "Data mínima"
// @Param dataFim query string false "Data máxima"
// @Param valorMinimo query number false "Valor mínimo"
// @Param valorMaximo query number false "Valor máximo"
// @Param page query int false "Página (padrão 1)"
// @Param pageSize query int false "Tamanho da página (padrão 10)"
// @Param orderBy query string false "Campo de ordenação (padrão data)"
// @Param ascending query bool false "Ordem crescente (padrão false)"
// @Success 200 {array} domain.Aposta
// @Failure 400 {object} domain.ErrorResponse "Parâmetro inválido"
// @Failure 403 {object} domain.ErrorResponse "Acesso negado"
// @Security ApiKeyAuth
// @Router /apostas/pesquisar [get]
func (h *Handler) SearchApostasHandler(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	apostas, err := h.Service.Search(r.Context(), filter)
	respond.Handle(w, r, h.Logger, apostas, err, http.StatusOK)
}

func parseFilter(r *http.Request) (domain.ApostaFilter, error) {
	q := r.URL.Query()
	filter := domain.ApostaFilter{
		Categoria: q.Get("categoria"),
		Jogo:      q.Get("jogo"),
		Resultado: q.Get("resultado"),
		OrderBy:   q.Get("orderBy"),
	}

	var err error
	if filter.DataInicio, err = params.Time(q, "dataInicio"); err != nil {
		return filter, err
	}
	if filter.DataFim, err = params.Time(q, "dataFim"); err != nil {
		return filter, err
	}
	if filter.ValorMinimo, err = params.Float(q, "valorMinimo"); err != nil {
		return filter, err
	}
	if filter.ValorMaximo, err = params.Float(q, "valorMaximo"); err != nil {
		return filter, err
	}
	if filter.Page, err = params.Int(q, "page", 1); err != nil {
		return filter, err
	}
	if filter.PageSize, err = params.Int(q, "pageSize", 10); err != nil {
		return filter, err
	}
	if filter.Ascending, err = params.Bool(q, "ascending", false); err != nil {
		return filter, err
	}
	return filter, nil
}
