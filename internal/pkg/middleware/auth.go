package middleware

import (
	"context"
	"net/http"
	"strings"

	"betaware/internal/domain"
	apperror "betaware/internal/errors"
	"betaware/internal/pkg/logger"
	"betaware/internal/pkg/respond"
	"betaware/internal/pkg/token"
)

// ContextKey é o tipo das chaves de contexto deste pacote.
type ContextKey int

const (
	UserClaimsKey ContextKey = iota
	RequestIDKey
)

// UserClaims são os dados do usuário autenticado, extraídos do JWT.
type UserClaims struct {
	Username string
	Nome     string
	Role     domain.Perfil
}

// TokenValidator é o contrato de validação necessário para o middleware.
type TokenValidator interface {
	ValidateToken(tokenString string) (*token.CustomClaims, error)
}

// NewAuthMiddleware valida o header "Authorization: Bearer <token>" e anexa as
// claims ao contexto. Qualquer falha responde 401 antes de chegar ao handler.
func NewAuthMiddleware(tokenSvc TokenValidator, log logger.Logger) func(next http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			tokenString, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				respond.Error(w, r, log, apperror.NewUnauthenticatedError("Token de autorização ausente ou malformado."))
				return
			}

			claims, err := tokenSvc.ValidateToken(tokenString)
			if err != nil {
				log.Debug("Token rejeitado.", map[string]interface{}{"path": r.URL.Path, "error": err.Error()})
				respond.Error(w, r, log, apperror.NewUnauthenticatedError("Token inválido ou expirado."))
				return
			}

			userClaims := UserClaims{
				Username: claims.Username,
				Nome:     claims.Nome,
				Role:     domain.Perfil(claims.Role),
			}

			next.ServeHTTP(w, r.WithContext(WithUserClaims(r.Context(), userClaims)))
		}
	}
}

func bearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	tokenString := strings.TrimSpace(header[len(prefix):])
	return tokenString, tokenString != ""
}

// WithUserClaims anexa as claims ao contexto.
func WithUserClaims(ctx context.Context, claims UserClaims) context.Context {
	return context.WithValue(ctx, UserClaimsKey, claims)
}

// GetUserClaimsFromContext extrai as claims no handler.
func GetUserClaimsFromContext(ctx context.Context) (UserClaims, bool) {
	claims, ok := ctx.Value(UserClaimsKey).(UserClaims)
	return claims, ok
}

// PermissionMiddleware exige que o usuário autenticado tenha um dos perfis informados.
// Deve ser encadeado depois do NewAuthMiddleware.
func PermissionMiddleware(log logger.Logger, requiredRoles ...domain.Perfil) func(next http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			claims, ok := GetUserClaimsFromContext(r.Context())
			if !ok {
				respond.Error(w, r, log, apperror.NewUnauthenticatedError("Autorização necessária. Token não processado."))
				return
			}

			for _, requiredRole := range requiredRoles {
				if claims.Role == requiredRole {
					next.ServeHTTP(w, r)
					return
				}
			}

			log.Info("Acesso negado por perfil.", map[string]interface{}{"username": claims.Username, "perfil": claims.Role, "path": r.URL.Path})
			respond.Error(w, r, log, apperror.NewForbiddenError("Acesso negado. Você não tem a permissão necessária."))
		}
	}
}
