package auth

import (
	"context"
	"net/http"

	"betaware/internal/domain"
	"betaware/internal/pkg/logger"
	"betaware/internal/pkg/respond"
)

// AuthService define o contrato que o Handler espera da camada de Serviço.
type AuthService interface {
	Login(ctx context.Context, req domain.LoginRequest) (domain.JwtResponse, error)
	Register(ctx context.Context, req domain.RegisterRequest) (domain.Usuario, error)
}

// Handler agrupa os endpoints públicos de autenticação.
type Handler struct {
	Service AuthService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc AuthService, log logger.Logger) *Handler {
	return &Handler{
		Service: svc,
		Logger:  log,
	}
}

// LoginHandler lida com a requisição POST /v1/auth/login.
// @Summary Autentica um usuário
// @Description Confere username e senha e devolve um JWT.
// @Tags auth
// @Accept json
// @Produce json
// @Param credenciais body domain.LoginRequest true "Credenciais"
// @Success 200 {object} domain.JwtResponse "Token emitido"
// @Failure 400 {object} domain.ErrorResponse "Payload inválido"
// @Failure 401 {object} domain.ErrorResponse "Credenciais inválidas"
// @Router /auth/login [post]
func (h *Handler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if err := respond.DecodeJSON(r, &req); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	resp, err := h.Service.Login(r.Context(), req)
	respond.Handle(w, r, h.Logger, resp, err, http.StatusOK)
}

// RegisterHandler lida com a requisição POST /v1/auth/register.
// @Summary Cadastra um usuário
// @Description Cria uma conta com perfil USER. Username, email e CPF devem ser únicos.
// @Tags auth
// @Accept json
// @Produce json
// @Param usuario body domain.RegisterRequest true "Dados de cadastro"
// @Success 200 {object} domain.Usuario "Usuário criado"
// @Failure 400 {object} domain.ErrorResponse "Dados inválidos ou já utilizados"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /auth/register [post]
func (h *Handler) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req domain.RegisterRequest
	if err := respond.DecodeJSON(r, &req); err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}

	usuario, err := h.Service.Register(r.Context(), req)
	respond.Handle(w, r, h.Logger, usuario, err, http.StatusOK)
}
