package middleware

import (
	"net"
	"net/http"
	"strconv"
	"time"

	apperror "betaware/internal/errors"
	"betaware/internal/pkg/cache"
	"betaware/internal/pkg/logger"
	"betaware/internal/pkg/respond"
)

// RateLimiter limita requisições por IP numa janela fixa, com contadores no cache
// (chave "rate-limit:<ip>"). Se o cache falhar a requisição segue.
func RateLimiter(client cache.Client, limit int, window time.Duration, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limit <= 0 {
				next.ServeHTTP(w, r)
				return
			}

			key := "rate-limit:" + clientIP(r)
			count, err := client.IncrWindow(r.Context(), key, window)
			if err != nil {
				log.Warn("Rate limiter indisponível; requisição liberada.", map[string]interface{}{"key": key, "error": err.Error()})
				next.ServeHTTP(w, r)
				return
			}

			remaining := int64(limit) - count
			if remaining < 0 {
				remaining = 0
			}
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))

			if count > int64(limit) {
				w.Header().Set("Retry-After", strconv.Itoa(int(window.Seconds())))
				respond.Error(w, r, log, apperror.NewTooManyRequestsError("Limite de requisições excedido. Tente novamente mais tarde."))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
