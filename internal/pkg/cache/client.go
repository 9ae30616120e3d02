package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

// Client é o contrato de cache usado pelos serviços e pelo rate limiter.
type Client interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	IncrWindow(ctx context.Context, key string, window time.Duration) (int64, error)
}

// ErrCacheMiss é retornado quando a chave não existe.
var ErrCacheMiss = redis.Nil

// RedisClient implementa Client sobre o go-redis.
type RedisClient struct {
	rdb *redis.Client
}

// NewRedisClient conecta ao Redis e faz um PING. A API sobe mesmo com o cache fora
// do ar; o erro do PING é devolvido para o chamador decidir se loga.
func NewRedisClient(addr string) (*RedisClient, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := rdb.Ping(ctx).Err()
	return &RedisClient{rdb: rdb}, err
}

// Get recupera o valor associado a uma chave.
func (c *RedisClient) Get(ctx context.Context, key string) (string, error) {
	val, err := c.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrCacheMiss
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

// Set define um valor para uma chave com um tempo de expiração.
func (c *RedisClient) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return c.rdb.Set(ctx, key, value, expiration).Err()
}

// incrWindowScript faz INCR e aplica o TTL numa única operação. Chave sem TTL
// (PTTL < 0) também recebe a janela, então um contador nunca fica permanente.
var incrWindowScript = redis.NewScript(`
local count = redis.call("INCR", KEYS[1])
if redis.call("PTTL", KEYS[1]) < 0 then
    redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return count
`)

// IncrWindow incrementa o contador da janela fixa e devolve o valor atual.
func (c *RedisClient) IncrWindow(ctx context.Context, key string, window time.Duration) (int64, error) {
	return incrWindowScript.Run(ctx, c.rdb, []string{key}, window.Milliseconds()).Int64()
}

func (c *RedisClient) Close() error {
	return c.rdb.Close()
}

// GetJSON lê a chave e decodifica o JSON em dest. Devolve ErrCacheMiss quando a
// chave não existe.
func GetJSON(ctx context.Context, c Client, key string, dest interface{}) error {
	raw, err := c.Get(ctx, key)
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(raw), dest)
}

// SetJSON serializa value em JSON e grava com expiração.
func SetJSON(ctx context.Context, c Client, key string, value interface{}, expiration time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.Set(ctx, key, payload, expiration)
}
