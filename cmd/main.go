package main

// @title BetAware API
// @version 1.0
// @description API de registro e controle de apostas esportivas.
// @BasePath /v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	// Infraestrutura e utilitários
	"betaware/config"
	"betaware/internal/pkg/cache"
	"betaware/internal/pkg/database"
	"betaware/internal/pkg/events"
	"betaware/internal/pkg/logger"
	"betaware/internal/pkg/metrics"
	"betaware/internal/pkg/password"
	"betaware/internal/pkg/token"
	"betaware/internal/pkg/validation"

	// Camadas para Injeção de Dependências
	"betaware/internal/api/aposta"
	"betaware/internal/api/auth"
	"betaware/internal/api/external"
	"betaware/internal/api/router"
	"betaware/internal/api/usuario"
	"betaware/internal/repository/apostarepo"
	"betaware/internal/repository/usuariorepo"
	"betaware/internal/service/apostaservice"
	"betaware/internal/service/authservice"
	"betaware/internal/service/externalservice"
	"betaware/internal/service/usuarioservice"
)

func main() {
	log.Println("⚡ Inicializando serviço BetAware...")
	// .env é opcional; em container as variáveis vêm do ambiente.
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Aviso: Arquivo .env não encontrado ou erro de leitura. Carregando configs apenas do ambiente do sistema.")
	}

	cfg := config.LoadConfig()
	log := logger.NewLogger(cfg.LogLevel, cfg.Environment)
	defer log.Sync()
	log.Info("Configurações carregadas.", map[string]interface{}{"env": cfg.Environment})

	// 1. Infraestrutura

	// A. Banco de Dados (PostgreSQL)
	db, err := database.NewPostgresDB(cfg.DatabaseURL, cfg.DBTimeout, database.DefaultPool)
	if err != nil {
		log.Fatal("Falha ao conectar ao banco de dados.", err)
	}
	defer db.Close()
	log.Info("Conexão PostgreSQL estabelecida.", nil)

	// B. Cache (Redis). Sem Redis, cache e rate limit ficam em memória.
	var cacheClient cache.Client
	redisClient, err := cache.NewRedisClient(cfg.RedisAddr)
	if err != nil {
		log.Warn("Redis indisponível. Usando cache em memória.", map[string]interface{}{"addr": cfg.RedisAddr, "error": err.Error()})
		cacheClient = cache.NewMemoryClient()
	} else {
		defer redisClient.Close()
		cacheClient = redisClient
		log.Info("Conexão Redis estabelecida.", nil)
	}

	// C. Eventos (Kafka)
	var publisher events.Publisher = events.NopPublisher{}
	if len(cfg.KafkaBrokers) > 0 {
		publisher = events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopicApostas)
		log.Info("Publicação de eventos no Kafka habilitada.", map[string]interface{}{"topic": cfg.KafkaTopicApostas})
	}
	defer publisher.Close()

	validator := validation.New()
	hasher := password.NewHasher(bcrypt.DefaultCost)
	tokenSvc := token.NewService(cfg.JWTSecretKey, cfg.JWTIssuer, cfg.JWTAudience, cfg.TokenExpiry)

	// 2. Injeção de dependências: Repository -> Service -> Handler
	usuarioRepo := usuariorepo.NewUsuarioRepository(db, cfg.DBTimeout, log)
	apostaRepo := apostarepo.NewApostaRepository(db, cfg.DBTimeout, log)
	log.Debug("Repositórios inicializados.", nil)

	authSvc := authservice.NewService(usuarioRepo, hasher, tokenSvc, validator, log)
	usuarioSvc := usuarioservice.NewService(usuarioRepo, validator, log, cfg.MaxPageSize)
	apostaSvc := apostaservice.NewService(apostaRepo, usuarioRepo, publisher, validator, log, cfg.MaxPageSize)
	externalSvc := externalservice.NewService(externalservice.Config{
		ViaCEPURL:       cfg.ViaCEPURL,
		ExchangeRateURL: cfg.ExchangeRateURL,
		Timeout:         cfg.ExternalTimeout,
		CEPCacheTTL:     cfg.CEPCacheTTL,
		CotacaoCacheTTL: cfg.CacheTTL,
	}, cacheClient, log)
	log.Debug("Serviços inicializados.", nil)

	handlers := router.Handlers{
		Auth:     auth.NewHandler(authSvc, log),
		Aposta:   aposta.NewHandler(apostaSvc, log),
		Usuario:  usuario.NewHandler(usuarioSvc, log),
		External: external.NewHandler(externalSvc, log),
	}

	r := router.NewRouter(handlers, router.Options{
		Tokens:          tokenSvc,
		Cache:           cacheClient,
		RateLimit:       cfg.RateLimitMaxRequests,
		RateLimitWindow: cfg.RateLimitPeriod,
		Logger:          log,
	})

	// 3. Servidores
	metricsServer := metrics.NewServer(cfg.MetricsPort)
	metrics.Start(metricsServer, func(err error) {
		log.Error("Servidor de métricas falhou.", err)
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("Servidor BetAware ouvindo na porta", map[string]interface{}{"port": cfg.Port, "metrics_port": cfg.MetricsPort})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Servidor falhou.", err)
		}
	}()

	// 4. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	log.Info("Sinal de encerramento recebido. Desligando servidor...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Desligamento do servidor forçado.", err)
	}
	if err := metricsServer.Shutdown(ctx); err != nil {
		log.Error("Desligamento do servidor de métricas forçado.", err)
	}

	log.Info("Servidor encerrado com sucesso.", nil)
}
