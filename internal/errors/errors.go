package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// genericServerMessage é a única mensagem que o cliente recebe para falhas 5xx.
const genericServerMessage = "Erro interno do servidor"

// AppError é a interface central para todos os erros tipados da BetAware.
// O Handler usa Category/HTTPStatus/Message para montar a resposta; Error() é
// reservado para logs e pode conter detalhes internos.
type AppError interface {
	Error() string
	Category() string
	HTTPStatus() int
	Message() string
	Unwrap() error
}

// --- Erros de entrada e autenticação ---

// ValidationError representa falhas de validação de dados de entrada.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string    { return fmt.Sprintf("Erro de Validação: %s", e.Msg) }
func (e *ValidationError) Category() string { return "VALIDATION_ERROR" }
func (e *ValidationError) HTTPStatus() int  { return http.StatusBadRequest }
func (e *ValidationError) Message() string  { return e.Msg }
func (e *ValidationError) Unwrap() error    { return nil }

// NewValidationError cria um novo erro de validação.
func NewValidationError(msg string) AppError {
	return &ValidationError{Msg: msg}
}

// UnauthenticatedError indica token ausente, malformado ou rejeitado.
type UnauthenticatedError struct {
	Msg string
}

func (e *UnauthenticatedError) Error() string    { return fmt.Sprintf("Não autenticado: %s", e.Msg) }
func (e *UnauthenticatedError) Category() string { return "UNAUTHENTICATED" }
func (e *UnauthenticatedError) HTTPStatus() int  { return http.StatusUnauthorized }
func (e *UnauthenticatedError) Message() string  { return e.Msg }
func (e *UnauthenticatedError) Unwrap() error    { return nil }

func NewUnauthenticatedError(msg string) AppError {
	return &UnauthenticatedError{Msg: msg}
}

// UnauthorizedError indica credenciais de login inválidas. A mensagem nunca diz
// qual campo estava errado.
type UnauthorizedError struct {
	Msg string
}

func (e *UnauthorizedError) Error() string    { return fmt.Sprintf("Não autorizado: %s", e.Msg) }
func (e *UnauthorizedError) Category() string { return "UNAUTHORIZED" }
func (e *UnauthorizedError) HTTPStatus() int  { return http.StatusUnauthorized }
func (e *UnauthorizedError) Message() string  { return e.Msg }
func (e *UnauthorizedError) Unwrap() error    { return nil }

func NewUnauthorizedError(msg string) AppError {
	return &UnauthorizedError{Msg: msg}
}

// ForbiddenError indica que o perfil do usuário não permite o acesso.
type ForbiddenError struct {
	Msg string
}

func (e *ForbiddenError) Error() string    { return fmt.Sprintf("Acesso negado: %s", e.Msg) }
func (e *ForbiddenError) Category() string { return "FORBIDDEN" }
func (e *ForbiddenError) HTTPStatus() int  { return http.StatusForbidden }
func (e *ForbiddenError) Message() string  { return e.Msg }
func (e *ForbiddenError) Unwrap() error    { return nil }

func NewForbiddenError(msg string) AppError {
	return &ForbiddenError{Msg: msg}
}

// --- Erros de domínio ---

// NotFoundError representa a ausência de um recurso (ou um recurso de outro dono).
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string    { return fmt.Sprintf("Recurso não encontrado: %s", e.Msg) }
func (e *NotFoundError) Category() string { return "NOT_FOUND" }
func (e *NotFoundError) HTTPStatus() int  { return http.StatusNotFound }
func (e *NotFoundError) Message() string  { return e.Msg }
func (e *NotFoundError) Unwrap() error    { return nil }

// NewNotFoundError cria um novo erro de recurso não encontrado.
func NewNotFoundError(msg string) AppError {
	return &NotFoundError{Msg: msg}
}

// ConflictError representa dados duplicados (username, email ou CPF já usados).
type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string    { return fmt.Sprintf("Conflito de estado: %s", e.Msg) }
func (e *ConflictError) Category() string { return "CONFLICT" }
func (e *ConflictError) HTTPStatus() int  { return http.StatusBadRequest }
func (e *ConflictError) Message() string  { return e.Msg }
func (e *ConflictError) Unwrap() error    { return nil }

// NewConflictError cria um novo erro de conflito.
func NewConflictError(msg string) AppError {
	return &ConflictError{Msg: msg}
}

// InvalidOperationError representa a violação de uma regra de negócio
// (entidade relacionada ausente, usuário com apostas, etc.).
type InvalidOperationError struct {
	Msg string
}

func (e *InvalidOperationError) Error() string    { return fmt.Sprintf("Operação inválida: %s", e.Msg) }
func (e *InvalidOperationError) Category() string { return "INVALID_OPERATION" }
func (e *InvalidOperationError) HTTPStatus() int  { return http.StatusBadRequest }
func (e *InvalidOperationError) Message() string  { return e.Msg }
func (e *InvalidOperationError) Unwrap() error    { return nil }

func NewInvalidOperationError(msg string) AppError {
	return &InvalidOperationError{Msg: msg}
}

// TooManyRequestsError é usado pelo rate limiter.
type TooManyRequestsError struct {
	Msg string
}

func (e *TooManyRequestsError) Error() string    { return fmt.Sprintf("Limite excedido: %s", e.Msg) }
func (e *TooManyRequestsError) Category() string { return "RATE_LIMITED" }
func (e *TooManyRequestsError) HTTPStatus() int  { return http.StatusTooManyRequests }
func (e *TooManyRequestsError) Message() string  { return e.Msg }
func (e *TooManyRequestsError) Unwrap() error    { return nil }

func NewTooManyRequestsError(msg string) AppError {
	return &TooManyRequestsError{Msg: msg}
}

// --- Erros de infraestrutura (encapsulam a causa original) ---

// UpstreamError representa falhas em APIs de terceiros (ViaCEP, câmbio).
type UpstreamError struct {
	Msg string
	Err error
}

func (e *UpstreamError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("Falha em serviço externo: %s", e.Msg)
	}
	return fmt.Sprintf("Falha em serviço externo: %s: %v", e.Msg, e.Err)
}
func (e *UpstreamError) Category() string { return "UPSTREAM_ERROR" }
func (e *UpstreamError) HTTPStatus() int  { return http.StatusInternalServerError }
func (e *UpstreamError) Message() string  { return genericServerMessage }
func (e *UpstreamError) Unwrap() error    { return e.Err }

func NewUpstreamError(msg string, err error) AppError {
	return &UpstreamError{Msg: msg, Err: err}
}

// InternalError representa falhas inesperadas no servidor, serviço ou repositório.
type InternalError struct {
	Msg string
	Err error // Erro original (driver SQL, bcrypt, jwt...)
}

func (e *InternalError) Error() string    { return fmt.Sprintf("Erro Interno: %s", e.Msg) }
func (e *InternalError) Category() string { return "INTERNAL_ERROR" }
func (e *InternalError) HTTPStatus() int  { return http.StatusInternalServerError }
func (e *InternalError) Message() string  { return genericServerMessage }
func (e *InternalError) Unwrap() error    { return e.Err }

// NewInternalError cria um erro de servidor (para falhas de lógica ou código não esperado).
func NewInternalError(msg string, err error) AppError {
	return &InternalError{Msg: msg, Err: err}
}

// NewDBError é um atalho para criar um InternalError específico de falhas no DB.
func NewDBError(msg string, err error) AppError {
	return NewInternalError(fmt.Sprintf("%s (DB): %v", msg, err), err)
}

// MapToHTTPStatus traduz um erro para (status HTTP, categoria, mensagem ao cliente).
// Erros encapsulados com %w também são reconhecidos.
func MapToHTTPStatus(err error) (int, string, string) {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPStatus(), appErr.Category(), appErr.Message()
	}

	return http.StatusInternalServerError, "UNKNOWN_ERROR", genericServerMessage
}
