package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerify(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	hashed, err := h.Hash("s3nh@Forte")
	require.NoError(t, err)

	assert.NotEqual(t, "s3nh@Forte", hashed)
	assert.True(t, h.Verify(hashed, "s3nh@Forte"))
	assert.False(t, h.Verify(hashed, "s3nh@forte"))
	assert.False(t, h.Verify(hashed, ""))
}

func TestHash_IsSalted(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	first, err := h.Hash("mesma-senha")
	require.NoError(t, err)
	second, err := h.Hash("mesma-senha")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, h.Verify(first, "mesma-senha"))
	assert.True(t, h.Verify(second, "mesma-senha"))
}

func TestVerify_RejectsMalformedHash(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	// formato antigo (SHA256 + base64) não é aceito
	assert.False(t, h.Verify("n4bQgYhMfWWaL+qgxVrQFaO/TxsrC4Is0V1sFbDwCgg=", "123"))
}

func TestNewHasher_InvalidCostUsesDefault(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewHasher(0).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewHasher(99).cost)
}
