package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *Service {
	return NewService("chave-super-secreta-de-teste", "BetAware", "BetAwareUsers", time.Hour)
}

func TestGenerateAndValidate(t *testing.T) {
	svc := newTestService()

	tokenString, err := svc.GenerateToken(Subject{Username: "alice", Nome: "Alice Souza", Role: "USER"})
	require.NoError(t, err)

	claims, err := svc.ValidateToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "Alice Souza", claims.Nome)
	assert.Equal(t, "USER", claims.Role)
	assert.Equal(t, "BetAware", claims.Issuer)
	assert.Equal(t, jwt.ClaimStrings{"BetAwareUsers"}, claims.Audience)
	assert.Equal(t, "alice", claims.Subject)
}

func TestValidate_RejectsWrongKey(t *testing.T) {
	other := NewService("outra-chave", "BetAware", "BetAwareUsers", time.Hour)
	tokenString, err := other.GenerateToken(Subject{Username: "alice", Role: "USER"})
	require.NoError(t, err)

	_, err = newTestService().ValidateToken(tokenString)
	assert.Error(t, err)
}

func TestValidate_RejectsWrongIssuer(t *testing.T) {
	other := NewService("chave-super-secreta-de-teste", "OutroEmissor", "BetAwareUsers", time.Hour)
	tokenString, err := other.GenerateToken(Subject{Username: "alice", Role: "USER"})
	require.NoError(t, err)

	_, err = newTestService().ValidateToken(tokenString)
	assert.Error(t, err)
}

func TestValidate_RejectsWrongAudience(t *testing.T) {
	other := NewService("chave-super-secreta-de-teste", "BetAware", "OutroPublico", time.Hour)
	tokenString, err := other.GenerateToken(Subject{Username: "alice", Role: "USER"})
	require.NoError(t, err)

	_, err = newTestService().ValidateToken(tokenString)
	assert.Error(t, err)
}

func TestValidate_RejectsExpiredToken(t *testing.T) {
	svc := newTestService()
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	tokenString, err := svc.GenerateToken(Subject{Username: "alice", Role: "USER"})
	require.NoError(t, err)

	_, err = newTestService().ValidateToken(tokenString)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestValidate_RejectsNoneAlgorithm(t *testing.T) {
	claims := CustomClaims{
		Username: "mallory",
		Role:     "ADMIN",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "BetAware",
			Audience:  jwt.ClaimStrings{"BetAwareUsers"},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = newTestService().ValidateToken(tokenString)
	assert.Error(t, err)
}

func TestValidate_RejectsGarbage(t *testing.T) {
	_, err := newTestService().ValidateToken("isto.nao.e-um-jwt")
	assert.Error(t, err)
}
