package router

import (
	"net/http"
	"time"

	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "betaware/docs" // registra a especificação Swagger

	"betaware/internal/api/aposta"
	"betaware/internal/api/auth"
	"betaware/internal/api/external"
	"betaware/internal/api/usuario"
	"betaware/internal/domain"
	"betaware/internal/pkg/cache"
	"betaware/internal/pkg/logger"
	"betaware/internal/pkg/middleware"
)

// Handlers reúne os handlers já inicializados por injeção de dependências.
type Handlers struct {
	Auth     *auth.Handler
	Aposta   *aposta.Handler
	Usuario  *usuario.Handler
	External *external.Handler
}

// Options configura os middlewares globais e de autenticação.
type Options struct {
	Tokens          middleware.TokenValidator
	Cache           cache.Client
	RateLimit       int
	RateLimitWindow time.Duration
	Logger          logger.Logger
}

// NewRouter configura e retorna o roteador HTTP principal.
func NewRouter(h Handlers, opts Options) http.Handler {
	mux := http.NewServeMux()
	log := opts.Logger

	authMW := middleware.NewAuthMiddleware(opts.Tokens, log)
	adminMW := middleware.PermissionMiddleware(log, domain.PerfilAdmin)

	user := authMW
	admin := func(next http.HandlerFunc) http.HandlerFunc { return authMW(adminMW(next)) }

	// --- Rotas públicas ---
	mux.HandleFunc("GET /v1/health", HealthHandler)
	mux.HandleFunc("POST /v1/auth/login", h.Auth.LoginHandler)
	mux.HandleFunc("POST /v1/auth/register", h.Auth.RegisterHandler)
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// --- Apostas ---
	// Rotas literais têm precedência sobre /v1/apostas/{id} no ServeMux.
	mux.HandleFunc("POST /v1/apostas", user(h.Aposta.CreateApostaHandler))
	mux.HandleFunc("GET /v1/apostas", user(h.Aposta.ListApostasHandler))
	mux.HandleFunc("GET /v1/apostas/pesquisar", admin(h.Aposta.SearchApostasHandler))
	mux.HandleFunc("GET /v1/apostas/periodo", admin(h.Aposta.ListByPeriodoHandler))
	mux.HandleFunc("GET /v1/apostas/usuario/periodo", user(h.Aposta.ListByUsuarioEPeriodoHandler))
	mux.HandleFunc("GET /v1/apostas/{id}", user(h.Aposta.GetApostaHandler))
	mux.HandleFunc("PUT /v1/apostas/{id}", user(h.Aposta.UpdateApostaHandler))
	mux.HandleFunc("DELETE /v1/apostas/{id}", user(h.Aposta.DeleteApostaHandler))

	// --- Usuários (ADMIN) ---
	mux.HandleFunc("GET /v1/usuarios", admin(h.Usuario.ListUsuariosHandler))
	mux.HandleFunc("GET /v1/usuarios/pesquisar", admin(h.Usuario.SearchUsuariosHandler))
	mux.HandleFunc("GET /v1/usuarios/{id}", admin(h.Usuario.GetUsuarioHandler))
	mux.HandleFunc("PUT /v1/usuarios/{id}", admin(h.Usuario.UpdateUsuarioHandler))
	mux.HandleFunc("DELETE /v1/usuarios/{id}", admin(h.Usuario.DeleteUsuarioHandler))

	// --- Dados externos ---
	mux.HandleFunc("GET /v1/external/cep/{cep}", user(h.External.CEPHandler))
	mux.HandleFunc("GET /v1/external/cotacao", user(h.External.CotacaoHandler))
	mux.HandleFunc("GET /v1/external/jogos", user(h.External.JogosHandler))
	mux.HandleFunc("GET /v1/external/tempo/{cidade}", user(h.External.TempoHandler))
	mux.HandleFunc("GET /v1/external/dashboard/{cep}", user(h.External.DashboardHandler))

	return middleware.Chain(mux,
		middleware.RequestLogger(log),
		middleware.CORS,
		middleware.RateLimiter(opts.Cache, opts.RateLimit, opts.RateLimitWindow, log),
	)
}

// HealthHandler responde ao health check público.
// @Summary Health check
// @Tags health
// @Produce plain
// @Success 200 {string} string "BetAware API está online"
// @Router /health [get]
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("BetAware API está online"))
}
