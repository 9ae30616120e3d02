package params

import (
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperror "betaware/internal/errors"
)

func TestInt(t *testing.T) {
	q := url.Values{"page": {"3"}, "bad": {"x"}}

	n, err := Int(q, "page", 1)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = Int(q, "pageSize", 10)
	require.NoError(t, err)
	assert.Equal(t, 10, n)

	_, err = Int(q, "bad", 1)
	assert.IsType(t, &apperror.ValidationError{}, err)
	assert.Equal(t, "O parâmetro bad é inválido", err.(apperror.AppError).Message())
}

func TestBoolAndFloat(t *testing.T) {
	q := url.Values{"ascending": {"true"}, "valorMinimo": {"10.5"}, "valorMaximo": {"abc"}}

	b, err := Bool(q, "ascending", false)
	require.NoError(t, err)
	assert.True(t, b)

	f, err := Float(q, "valorMinimo")
	require.NoError(t, err)
	require.NotNil(t, f)
	assert.Equal(t, 10.5, *f)

	f, err = Float(q, "ausente")
	require.NoError(t, err)
	assert.Nil(t, f)

	_, err = Float(q, "valorMaximo")
	assert.Error(t, err)
}

func TestTimeLayouts(t *testing.T) {
	tests := []struct {
		raw  string
		want time.Time
	}{
		{"2025-03-10T20:00:00Z", time.Date(2025, 3, 10, 20, 0, 0, 0, time.UTC)},
		{"2025-03-10T20:00:00", time.Date(2025, 3, 10, 20, 0, 0, 0, time.UTC)},
		{"2025-03-10", time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)},
		{"2025-03-10T17:00:00 03:00", time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		got, err := Time(url.Values{"inicio": {tt.raw}}, "inicio")
		require.NoError(t, err, tt.raw)
		assert.True(t, tt.want.Equal(*got), tt.raw)
	}

	_, err := Time(url.Values{"inicio": {"10/03/2025"}}, "inicio")
	assert.Error(t, err)
}

func TestRequiredTime(t *testing.T) {
	_, err := RequiredTime(url.Values{}, "fim")
	assert.IsType(t, &apperror.ValidationError{}, err)
	assert.Equal(t, "O parâmetro fim é obrigatório", err.(apperror.AppError).Message())
}

func TestPathID(t *testing.T) {
	req := httptest.NewRequest("GET", "/v1/apostas/42", nil)
	req.SetPathValue("id", "42")
	id, err := PathID(req, "id")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	req.SetPathValue("id", "abc")
	_, err = PathID(req, "id")
	assert.IsType(t, &apperror.ValidationError{}, err)
}
