package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cepEntry struct {
	CEP        string `json:"cep"`
	Localidade string `json:"localidade"`
}

func TestJSONRoundTripOverMemoryClient(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryClient()

	require.NoError(t, SetJSON(ctx, c, "cep:01001000", cepEntry{CEP: "01001-000", Localidade: "São Paulo"}, time.Hour))

	var got cepEntry
	require.NoError(t, GetJSON(ctx, c, "cep:01001000", &got))
	assert.Equal(t, "São Paulo", got.Localidade)

	err := GetJSON(ctx, c, "cep:99999999", &got)
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemoryClient_Expiration(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryClient()
	now := time.Date(2025, 9, 21, 10, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	require.NoError(t, c.Set(ctx, "k", "v", time.Minute))
	v, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", v)

	now = now.Add(time.Minute)
	_, err = c.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemoryClient_IncrWindow(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryClient()
	now := time.Date(2025, 9, 21, 10, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	n, err := c.IncrWindow(ctx, "rate-limit:10.0.0.1", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	now = now.Add(30 * time.Second)
	n, _ = c.IncrWindow(ctx, "rate-limit:10.0.0.1", time.Minute)
	assert.Equal(t, int64(2), n, "a janela não é renovada a cada incremento")

	now = now.Add(30 * time.Second)
	n, _ = c.IncrWindow(ctx, "rate-limit:10.0.0.1", time.Minute)
	assert.Equal(t, int64(1), n)
}

func TestMemoryClient_IncrWindowFixesCounterWithoutTTL(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryClient()
	now := time.Date(2025, 9, 21, 10, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	// contador gravado sem expiração continuaria bloqueando o IP para sempre
	require.NoError(t, c.Set(ctx, "rate-limit:10.0.0.2", "500", 0))

	n, err := c.IncrWindow(ctx, "rate-limit:10.0.0.2", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(501), n)

	now = now.Add(time.Minute)
	n, _ = c.IncrWindow(ctx, "rate-limit:10.0.0.2", time.Minute)
	assert.Equal(t, int64(1), n)
}

func TestMemoryClient_IncrWindowRejectsNonInteger(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryClient()

	require.NoError(t, c.Set(ctx, "k", []byte(`{"a":1}`), 0))

	_, err := c.IncrWindow(ctx, "k", time.Minute)
	assert.Error(t, err)
}
