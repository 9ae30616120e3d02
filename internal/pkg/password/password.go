package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hasher gera e confere hashes de senha com bcrypt (salt embutido no hash).
type Hasher struct {
	cost int
}

// NewHasher cria um Hasher. Custos fora da faixa do bcrypt viram bcrypt.DefaultCost.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash devolve o hash da senha em texto puro.
func (h *Hasher) Hash(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", fmt.Errorf("falha ao gerar hash da senha: %w", err)
	}
	return string(hashed), nil
}

// Verify indica se a senha confere com o hash armazenado.
func (h *Hasher) Verify(hashed, plain string) bool {
	// Hash corrompido ou em outro formato também conta como senha incorreta.
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}
