package respond

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	apperror "betaware/internal/errors"
	"betaware/internal/pkg/logger"
)

func TestHandle_Success(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/apostas", nil)

	Handle(rec, req, logger.NewNop(), map[string]string{"categoria": "Futebol"}, nil, http.StatusOK)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"categoria":"Futebol"}`, rec.Body.String())
}

func TestHandle_NoContent(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/v1/apostas/1", nil)

	Handle(rec, req, logger.NewNop(), nil, nil, http.StatusNoContent)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestError_BodyShape(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/apostas/9", nil)

	Error(rec, req, logger.NewNop(), apperror.NewNotFoundError("Aposta não encontrada"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Aposta não encontrada"}`, rec.Body.String())
}

func TestError_UnknownErrorIsGeneric500(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/usuarios", nil)

	Error(rec, req, logger.NewNop(), errors.New("pq: relation \"usuarios\" does not exist"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"Erro interno do servidor"}`, rec.Body.String())
}

func TestDecodeJSON(t *testing.T) {
	var dest struct {
		Username string `json:"username"`
	}

	ok := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"username":"alice"}`))
	assert.NoError(t, DecodeJSON(ok, &dest))
	assert.Equal(t, "alice", dest.Username)

	bad := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"username":`))
	err := DecodeJSON(bad, &dest)
	assert.IsType(t, &apperror.ValidationError{}, err)
}
