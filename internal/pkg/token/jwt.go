package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenService define o contrato para manipulação de JWTs.
type TokenService interface {
	GenerateToken(subject Subject) (string, error)
	ValidateToken(tokenString string) (*CustomClaims, error)
}

// Subject são os dados do usuário embutidos no token.
type Subject struct {
	Username string
	Nome     string
	Role     string
}

// CustomClaims define as informações específicas armazenadas no JWT.
type CustomClaims struct {
	Username string `json:"username"`
	Nome     string `json:"nome"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Service implementa TokenService com HS256. Chave, issuer e audience são
// configurados uma única vez na inicialização.
type Service struct {
	secretKey []byte
	issuer    string
	audience  string
	expiry    time.Duration
	now       func() time.Time
}

// NewService cria uma nova instância do serviço Token.
func NewService(secretKey, issuer, audience string, expiry time.Duration) *Service {
	return &Service{
		secretKey: []byte(secretKey),
		issuer:    issuer,
		audience:  audience,
		expiry:    expiry,
		now:       time.Now,
	}
}

// GenerateToken cria um JWT assinado com username, nome e perfil do usuário.
func (s *Service) GenerateToken(subject Subject) (string, error) {
	now := s.now()
	claims := CustomClaims{
		Username: subject.Username,
		Nome:     subject.Nome,
		Role:     subject.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.audience},
			Subject:   subject.Username,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", fmt.Errorf("falha ao assinar o token: %w", err)
	}

	return tokenString, nil
}

// ValidateToken valida assinatura, issuer, audience e expiração e devolve as claims.
func (s *Service) ValidateToken(tokenString string) (*CustomClaims, error) {
	claims := &CustomClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.audience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("token inválido: %w", err)
	}

	if !token.Valid {
		return nil, errors.New("token não é válido")
	}

	if claims.Username == "" {
		return nil, errors.New("token sem username")
	}

	return claims, nil
}
