package respond

import (
	"encoding/json"
	"fmt"
	"net/http"

	"betaware/internal/domain"
	apperror "betaware/internal/errors"
	"betaware/internal/pkg/logger"
)

// JSON escreve data como JSON com o status informado. data nil gera corpo vazio.
func JSON(w http.ResponseWriter, status int, data interface{}) error {
	if data == nil {
		w.WriteHeader(status)
		return nil
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// Error traduz err para status HTTP e escreve {"message": ...}. Erros 5xx são
// logados com a causa; o cliente recebe só a mensagem genérica.
func Error(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	status, category, message := apperror.MapToHTTPStatus(err)

	if status >= http.StatusInternalServerError {
		log.Error(fmt.Sprintf("Erro de Servidor: %s %s (%s)", r.Method, r.URL.Path, category), err)
	} else {
		log.Debug(fmt.Sprintf("Requisição rejeitada com status %d. Categoria: %s", status, category),
			map[string]interface{}{"path": r.URL.Path, "method": r.Method})
	}

	if encErr := JSON(w, status, domain.ErrorResponse{Message: message}); encErr != nil {
		log.Error("Falha ao codificar JSON de erro", encErr)
	}
}

// Handle é o atalho usado pelos handlers: erro → Error, sucesso → JSON(successStatus).
func Handle(w http.ResponseWriter, r *http.Request, log logger.Logger, data interface{}, err error, successStatus int) {
	if err != nil {
		Error(w, r, log, err)
		return
	}
	if encErr := JSON(w, successStatus, data); encErr != nil {
		log.Error("Falha ao codificar JSON de resposta", encErr)
	}
}

// DecodeJSON lê o corpo da requisição em dest, rejeitando JSON malformado.
func DecodeJSON(r *http.Request, dest interface{}) error {
	if r.Body == nil {
		return apperror.NewValidationError("Corpo da requisição ausente.")
	}
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		return apperror.NewValidationError("Payload inválido. Verifique o formato JSON.")
	}
	return nil
}
