package usuario

import (
	"context"
	"net/http"

	"betaware/internal/api/params"
	"betaware/internal/domain"
	"betaware/internal/pkg/logger"
	"betaware/internal/pkg/respond"
)

// UsuarioService define o contrato que o Handler espera da camada de Serviço.
type UsuarioService interface {
	List(ctx context.Context) ([]domain.Usuario, error)
	Get(ctx context.Context, id int64) (domain.Usuario, error)
	Update(ctx context.Context, id int64, req domain.UsuarioUpdateRequest) (domain.Usuario, error)
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, filter domain.UsuarioFilter) ([]domain.Usuario, error)
}

// Handler agrupa os endpoints administrativos de usuários. Todas as rotas exigem ADMIN.
type Handler struct {
	Service UsuarioService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc UsuarioService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
	}
}

// ListUsuariosHandler lida com a requisição GET /v1/usuarios.
// @Summary Lista todos os usuários
// @Tags usuarios
// @Produce json
// @Success 200 {array} domain.Usuario "Usuários ordenados por nome"
// @Failure 403 {object} domain.ErrorResponse "Acesso negado"
// @Security ApiKeyAuth
// @Router /usuarios [get]
func (h *Handler) ListUsuariosHandler(w http.ResponseWriter, r *http.Request) {
	usuarios, err := h.Service.List(r.Context())
	respond.Handle(w, r, h.Logger, usuarios, err, http.StatusOK)
}

// GetUsuarioHandler lida com a requisição GET /v1/usuarios/{id}.
// @Summary Obtém um usuário com suas apostas
// @Tags usuarios
// @Produce json
// @Param id path int true "ID do usuário"
// @Success 200 {object} domain.Usuario
// @Failure 404 {object} domain.ErrorResponse "Usuário não encontrado"
// @Security ApiKeyAuth
// @Router /usuarios/{id} [get]
func (h *Handler) GetUsuarioHandler(w http.ResponseWriter, r *http.Request) {
	id, err := params.PathID(r, "id")
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	usuario, err := h.Service.Get(r.Context(), id)
	respond.Handle(w, r, h.Logger, usuario, err, http.StatusOK)
}

// UpdateUsuarioHandler lida com a requisição PUT /v1/usuarios/{id}.
// @Summary Atualiza um usuário
// @Description Altera dados cadastrais e perfil. A senha não é alterada por esta rota.
// @Tags usuarios
// @Accept json
// @Produce json
// @Param id path int true "ID do usuário"
// @Param usuario body domain.UsuarioUpdateRequest true "Novos dados"
// @Success 200 {object} domain.Usuario
// @Failure 400 {object} domain.ErrorResponse "Dados inválidos, duplicados ou usuário inexistente"
// @Security ApiKeyAuth
// @Router /usuarios/{id} [put]
func (h *Handler) UpdateUsuarioHandler(w http.ResponseWriter, r *http.Request) {
	id, err := params.PathID(r, "id")
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	var req domain.UsuarioUpdateRequest
	if err := respond.DecodeJSON(r, &req); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	usuario, err := h.Service.Update(r.Context(), id, req)
	respond.Handle(w, r, h.Logger, usuario, err, http.StatusOK)
}

// DeleteUsuarioHandler lida com a requisição DELETE /v1/usuarios/{id}.
// @Summary Remove um usuário sem apostas
// @Tags usuarios
// @Param id path int true "ID do usuário"
// @Success 204 "Removido"
// @Failure 400 {object} domain.ErrorResponse "Usuário possui apostas"
// @Failure 404 {object} domain.ErrorResponse "Usuário não encontrado"
// @Security ApiKeyAuth
// @Router /usuarios/{id} [delete]
func (h *Handler) DeleteUsuarioHandler(w http.ResponseWriter, r *http.Request) {
	id, err := params.PathID(r, "id")
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	err = h.Service.Delete(r.Context(), id)
	respond.Handle(w, r, h.Logger, nil, err, http.StatusNoContent)
}

// SearchUsuariosHandler lida com a requisição GET /v1/usuarios/pesquisar.
// @Summary Pesquisa usuários com filtros e paginação
// @Description Ordenação sempre por nome.
// @Tags usuarios
// @Produce json
// @Param nome query string false "Trecho do nome"
// @Param username query string false "Trecho do username"
// @Param email query string false "Trecho do email"
// @Param perfil query string false "Perfil exato (USER ou ADMIN)"
// @Param page query int false "Página (padrão 1)"
// @Param pageSize query int false "Tamanho da página (padrão 10)"
// @Success 200 {array} domain.Usuario
// @Failure 400 {object} domain.ErrorResponse "Parâmetro inválido"
// @Security ApiKeyAuth
// @Router /usuarios/pesquisar [get]
func (h *Handler) SearchUsuariosHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.UsuarioFilter{
		Nome:     q.Get("nome"),
		Username: q.Get("username"),
		Email:    q.Get("email"),
		Perfil:   q.Get("perfil"),
	}

	var err error
	if filter.Page, err = params.Int(q, "page", 1); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	if filter.PageSize, err = params.Int(q, "pageSize", 10); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	usuarios, err := h.Service.Search(r.Context(), filter)
	respond.Handle(w, r, h.Logger, usuarios, err, http.StatusOK)
}
