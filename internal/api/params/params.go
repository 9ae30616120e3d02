// Package params converte path e query string para os tipos usados pelos handlers.
// Valores malformados viram ValidationError (400).
package params

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	apperror "betaware/internal/errors"
)

// Formatos aceitos em parâmetros de data, do mais específico ao mais simples.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// PathID lê um ID numérico do path ({id}).
func PathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperror.NewValidationError("ID inválido")
	}
	return id, nil
}

// Int lê um inteiro opcional; ausente devolve def.
func Int(q url.Values, key string, def int) (int, error) {
	v := strings.TrimSpace(q.Get(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, invalid(key)
	}
	return n, nil
}

// Bool lê um booleano opcional ("true", "false", "1", "0"); ausente devolve def.
func Bool(q url.Values, key string, def bool) (bool, error) {
	v := strings.TrimSpace(q.Get(key))
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, invalid(key)
	}
	return b, nil
}

// Float lê um decimal opcional; ausente devolve nil.
func Float(q url.Values, key string) (*float64, error) {
	v := strings.TrimSpace(q.Get(key))
	if v == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, invalid(key)
	}
	return &f, nil
}

// Time lê uma data opcional; ausente devolve nil.
func Time(q url.Values, key string) (*time.Time, error) {
	v := strings.TrimSpace(q.Get(key))
	if v == "" {
		return nil, nil
	}
	t, err := parseTime(v)
	if err != nil {
		return nil, invalid(key)
	}
	return &t, nil
}

// RequiredTime lê uma data obrigatória.
func RequiredTime(q url.Values, key string) (time.Time, error) {
	t, err := Time(q, key)
	if err != nil {
		return time.Time{}, err
	}
	if t == nil {
		return time.Time{}, apperror.NewValidationError(fmt.Sprintf("O parâmetro %s é obrigatório", key))
	}
	return *t, nil
}

func parseTime(v string) (time.Time, error) {
	// "+" do fuso chega como espaço quando o cliente não codifica a query.
	v = strings.ReplaceAll(v, " ", "+")
	var lastErr error
	for _, layout := range timeLayouts {
		t, err := time.Parse(layout, v)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func invalid(key string) error {
	return apperror.NewValidationError(fmt.Sprintf("O parâmetro %s é inválido", key))
}
