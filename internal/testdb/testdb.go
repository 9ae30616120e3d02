//go:build integration

// Package testdb prepara o PostgreSQL dos testes de integração dos repositórios.
//
// Cada teste roda dentro de uma transação desfeita ao final (WithTx), então os
// testes não deixam dados para trás e não dependem de ordem de execução.
// Sem BETAWARE_TEST_DATABASE_URL nem DATABASE_URL os testes são pulados.
package testdb

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"

	"betaware/internal/pkg/database"
)

// Timeout é o prazo por consulta usado pelos repositórios nos testes.
const Timeout = 5 * time.Second

var (
	migrateOnce sync.Once
	migrateErr  error
)

// DatabaseURL devolve a URL do banco de testes, preferindo a variável dedicada.
func DatabaseURL() string {
	if url := os.Getenv("BETAWARE_TEST_DATABASE_URL"); url != "" {
		return url
	}
	return os.Getenv("DATABASE_URL")
}

// GetTestDB abre a conexão, aplica as migrações de ./sql (uma vez por processo)
// e registra o fechamento no fim do teste. Pula o teste se não houver banco.
func GetTestDB(t *testing.T) *sql.DB {
	t.Helper()

	url := DatabaseURL()
	if url == "" {
		t.Skip("BETAWARE_TEST_DATABASE_URL/DATABASE_URL não definida; pulando teste de integração")
	}

	db, err := database.NewPostgresDB(url, Timeout, database.PoolConfig{MaxOpenConns: 5, MaxIdleConns: 2, ConnMaxLifetime: time.Minute})
	require.NoError(t, err, "falha ao conectar no banco de testes")
	t.Cleanup(func() { _ = db.Close() })

	migrateOnce.Do(func() { migrateErr = migrate(db) })
	require.NoError(t, migrateErr, "falha ao aplicar migrações")

	return db
}

// WithTx executa fn numa transação que é sempre desfeita ao final.
func WithTx(t *testing.T, db *sql.DB, fn func(t *testing.T, tx *sql.Tx)) {
	t.Helper()

	tx, err := db.Begin()
	require.NoError(t, err, "falha ao iniciar transação")

	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			t.Logf("falha ao desfazer transação: %v", err)
		}
	}()

	fn(t, tx)
}

func migrate(db *sql.DB) error {
	root, err := findProjectRoot()
	if err != nil {
		return err
	}

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("dialeto do goose: %w", err)
	}
	goose.SetLogger(goose.NopLogger())

	return goose.Up(db, filepath.Join(root, "sql"))
}

// findProjectRoot sobe a partir do diretório atual até achar o go.mod.
func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("diretório atual: %w", err)
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("go.mod não encontrado")
		}
		dir = parent
	}
}
