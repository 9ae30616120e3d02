package cache

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"
)

type memoryEntry struct {
	value     string
	expiresAt time.Time // zero = sem expiração
}

// MemoryClient é um Client em memória, usado quando o Redis não responde na
// inicialização (instância única) e nos testes.
type MemoryClient struct {
	mu    sync.Mutex
	items map[string]memoryEntry
	now   func() time.Time
}

func NewMemoryClient() *MemoryClient {
	return &MemoryClient{items: make(map[string]memoryEntry), now: time.Now}
}

// lookup devolve a entrada válida; entradas vencidas são removidas. Requer mu.
func (m *MemoryClient) lookup(key string) (memoryEntry, bool) {
	e, ok := m.items[key]
	if !ok {
		return memoryEntry{}, false
	}
	if !e.expiresAt.IsZero() && !m.now().Before(e.expiresAt) {
		delete(m.items, key)
		return memoryEntry{}, false
	}
	return e, true
}

func (m *MemoryClient) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.lookup(key)
	if !ok {
		return "", ErrCacheMiss
	}
	return e.value, nil
}

func (m *MemoryClient) Set(_ context.Context, key string, value interface{}, expiration time.Duration) error {
	var s string
	switch v := value.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		s = fmt.Sprint(v)
	}

	e := memoryEntry{value: s}
	if expiration > 0 {
		e.expiresAt = m.now().Add(expiration)
	}

	m.mu.Lock()
	m.items[key] = e
	m.mu.Unlock()
	return nil
}

// IncrWindow segue o script do RedisClient: chave ausente vale 0, o TTL existente é
// preservado e chave sem TTL recebe a janela.
func (m *MemoryClient) IncrWindow(_ context.Context, key string, window time.Duration) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, _ := m.lookup(key)
	var n int64
	if e.value != "" {
		parsed, err := strconv.ParseInt(e.value, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("valor da chave %s não é inteiro", key)
		}
		n = parsed
	}
	n++
	e.value = strconv.FormatInt(n, 10)
	if e.expiresAt.IsZero() {
		e.expiresAt = m.now().Add(window)
	}
	m.items[key] = e
	return n, nil
}
