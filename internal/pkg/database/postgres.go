package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
)

// Códigos SQLSTATE usados pelos repositórios.
const (
	uniqueViolation        = "23505"
	foreignKeyViolation    = "23503"
	checkViolation         = "23514"
	numericValueOutOfRange = "22003"
)

// DBTX é o subconjunto de *sql.DB usado pelos repositórios; *sql.Tx também o
// satisfaz.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// PoolConfig ajusta o pool de conexões do database/sql.
type PoolConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// DefaultPool é o pool usado pela API.
var DefaultPool = PoolConfig{
	MaxOpenConns:    25,
	MaxIdleConns:    10,
	ConnMaxLifetime: 5 * time.Minute,
	ConnMaxIdleTime: 2 * time.Minute,
}

// NewPostgresDB abre o pool com o driver lib/pq, testa a conexão com timeout e
// aplica a configuração do pool.
func NewPostgresDB(dataSourceName string, pingTimeout time.Duration, pool PoolConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("falha ao abrir a conexão com o DB: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("falha ao realizar o ping inicial no DB: %w", err)
	}

	db.SetMaxOpenConns(pool.MaxOpenConns)
	db.SetMaxIdleConns(pool.MaxIdleConns)
	db.SetConnMaxLifetime(pool.ConnMaxLifetime)
	db.SetConnMaxIdleTime(pool.ConnMaxIdleTime)

	return db, nil
}

// IsUniqueViolation indica violação de índice único.
func IsUniqueViolation(err error) bool {
	return hasCode(err, uniqueViolation)
}

// IsForeignKeyViolation indica violação de chave estrangeira.
func IsForeignKeyViolation(err error) bool {
	return hasCode(err, foreignKeyViolation)
}

// IsInvalidValue indica valor recusado pela coluna: CHECK violado ou número fora
// da precisão declarada.
func IsInvalidValue(err error) bool {
	return hasCode(err, checkViolation) || hasCode(err, numericValueOutOfRange)
}

// ConstraintName devolve o nome do índice/constraint violado, se houver.
func ConstraintName(err error) string {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Constraint
	}
	return ""
}

func hasCode(err error, code pq.ErrorCode) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == code
}
