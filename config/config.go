package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config armazena todas as configurações da API BetAware.
type Config struct {
	// Geral
	Port        string
	Environment string
	LogLevel    string

	// Banco de Dados (PostgreSQL)
	DatabaseURL string
	DBTimeout   time.Duration

	// Cache (Redis)
	RedisAddr   string
	CacheTTL    time.Duration
	CEPCacheTTL time.Duration

	// Segurança (JWT)
	JWTSecretKey string
	JWTIssuer    string
	JWTAudience  string
	TokenExpiry  time.Duration

	// Rate Limiting
	RateLimitMaxRequests int
	RateLimitPeriod      time.Duration

	// Pesquisas paginadas
	MaxPageSize int

	// Eventos (Kafka). Sem brokers, a publicação é desativada.
	KafkaBrokers      []string
	KafkaTopicApostas string

	// Observabilidade
	MetricsPort string

	// APIs externas
	ViaCEPURL       string
	ExchangeRateURL string
	ExternalTimeout time.Duration
}

// LoadConfig carrega as configurações a partir das variáveis de ambiente.
// DATABASE_URL e JWT_SECRET_KEY são obrigatórias; os nomes antigos
// BETAWARE_CONNECTION_STRING e BETAWARE_JWT_KEY continuam aceitos.
func LoadConfig() *Config {
	cfg := &Config{
		// 1. Geral
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		// 2. Banco de Dados
		DatabaseURL: mustGetEnv("DATABASE_URL", "BETAWARE_CONNECTION_STRING"),
		DBTimeout:   getDurationEnv("DB_TIMEOUT_SEC", 5) * time.Second,

		// 3. Cache
		RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),
		CacheTTL:    getDurationEnv("CACHE_TTL_MIN", 10) * time.Minute,
		CEPCacheTTL: getDurationEnv("CEP_CACHE_TTL_HOURS", 24) * time.Hour,

		// 4. Segurança
		JWTSecretKey: mustGetEnv("JWT_SECRET_KEY", "BETAWARE_JWT_KEY"),
		JWTIssuer:    getEnv("JWT_ISSUER", "BetAware"),
		JWTAudience:  getEnv("JWT_AUDIENCE", "BetAwareUsers"),
		TokenExpiry:  getDurationEnv("JWT_EXPIRY_MIN", 60) * time.Minute,

		// 5. Rate Limiting
		RateLimitMaxRequests: getIntEnv("RATE_LIMIT_MAX_REQUESTS", 100),
		RateLimitPeriod:      getDurationEnv("RATE_LIMIT_PERIOD_MIN", 1) * time.Minute,

		MaxPageSize: getIntEnv("MAX_PAGE_SIZE", 100),

		// 6. Kafka
		KafkaBrokers:      getListEnv("KAFKA_BROKERS"),
		KafkaTopicApostas: getEnv("KAFKA_TOPIC_APOSTAS", "betaware.apostas.v1"),

		MetricsPort: getEnv("METRICS_PORT", "9090"),

		// 7. APIs externas
		ViaCEPURL:       strings.TrimRight(getEnv("VIACEP_URL", "https://viacep.com.br/ws"), "/"),
		ExchangeRateURL: strings.TrimRight(getEnv("EXCHANGE_RATE_URL", "https://api.exchangerate-api.com/v4/latest"), "/"),
		ExternalTimeout: getDurationEnv("EXTERNAL_TIMEOUT_SEC", 10) * time.Second,
	}

	return cfg
}

// Funções Helpers (Auxiliares)

// getEnv lê a variável de ambiente ou retorna um valor padrão.
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// mustGetEnv lê a primeira variável definida entre as chaves; fatal se nenhuma estiver presente.
func mustGetEnv(keys ...string) string {
	for _, key := range keys {
		if value, exists := os.LookupEnv(key); exists && value != "" {
			return value
		}
	}
	log.Fatalf("❌ Erro de Configuração: A variável de ambiente %s deve ser definida.", keys[0])
	return ""
}

// getDurationEnv lê uma variável de ambiente numérica e retorna-a como time.Duration
// (sem unidade; o chamador multiplica pela unidade desejada).
func getDurationEnv(key string, defaultValue int) time.Duration {
	return time.Duration(getIntEnv(key, defaultValue))
}

// getIntEnv lê uma variável de ambiente numérica e retorna-a como int.
func getIntEnv(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("⚠️ Aviso: Valor de %s ('%s') não é um número inteiro válido. Usando padrão (%d).", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

// getListEnv lê uma lista separada por vírgulas, ignorando itens vazios.
func getListEnv(key string) []string {
	raw := getEnv(key, "")
	if raw == "" {
		return nil
	}

	var items []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
