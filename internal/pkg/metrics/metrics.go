package metrics

import (
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "betaware_http_requests_total",
		Help: "requisições HTTP por rota e status",
	}, []string{"method", "route", "status"})

	HTTPDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "betaware_http_request_duration_seconds",
		Help:    "latência das requisições HTTP",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	ApostasCriadas = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "betaware_apostas_criadas_total",
		Help: "apostas criadas por categoria",
	}, []string{"categoria"})

	EventosPublicados = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "betaware_eventos_publicados_total",
		Help: "eventos de aposta publicados no Kafka",
	}, []string{"tipo", "status"})
)

func init() {
	prometheus.MustRegister(HTTPRequests, HTTPDuration, ApostasCriadas, EventosPublicados)
}

// NewServer monta o servidor lateral com /metrics e /healthz.
func NewServer(port string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return &http.Server{
		Addr:              ":" + port,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

// Start sobe o servidor em background; erros diferentes de ErrServerClosed vão para onErr.
func Start(srv *http.Server, onErr func(error)) {
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			onErr(err)
		}
	}()
}
