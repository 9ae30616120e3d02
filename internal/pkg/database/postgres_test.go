package database

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	dup := &pq.Error{Code: "23505", Constraint: "ux_usuarios_email"}

	assert.True(t, IsUniqueViolation(dup))
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert: %w", dup)))
	assert.False(t, IsUniqueViolation(&pq.Error{Code: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("duplicate key")))
	assert.False(t, IsUniqueViolation(nil))
}

func TestIsForeignKeyViolation(t *testing.T) {
	assert.True(t, IsForeignKeyViolation(&pq.Error{Code: "23503"}))
	assert.False(t, IsForeignKeyViolation(&pq.Error{Code: "23505"}))
}

func TestIsInvalidValue(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"check violado", &pq.Error{Code: "23514", Constraint: "apostas_valor_check"}, true},
		{"numeric overflow", &pq.Error{Code: "22003"}, true},
		{"embrulhado", fmt.Errorf("insert: %w", &pq.Error{Code: "22003"}), true},
		{"unique", &pq.Error{Code: "23505"}, false},
		{"erro comum", errors.New("numeric field overflow"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsInvalidValue(tt.err))
		})
	}
}

func TestConstraintName(t *testing.T) {
	assert.Equal(t, "ux_usuarios_cpf", ConstraintName(&pq.Error{Code: "23505", Constraint: "ux_usuarios_cpf"}))
	assert.Equal(t, "", ConstraintName(errors.New("x")))
}
