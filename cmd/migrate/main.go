package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"

	"betaware/config"
	"betaware/internal/pkg/database"
)

// Uso: go run ./cmd/migrate [-dir ./sql] [up|down|status|version|redo ...]
func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("⚠️ Aviso: arquivo .env não encontrado. Carregando configs apenas do ambiente do sistema: %v", err)
	}

	cfg := config.LoadConfig()

	var migrationsDir string
	var verbose bool
	flag.StringVar(&migrationsDir, "dir", "./sql", "diretório com as migrations")
	flag.BoolVar(&verbose, "v", false, "log detalhado do goose")
	flag.Parse()

	db, err := database.NewPostgresDB(cfg.DatabaseURL, cfg.DBTimeout, database.PoolConfig{MaxOpenConns: 1, MaxIdleConns: 1})
	if err != nil {
		log.Fatalf("goose: falha ao conectar ao DB: %v\n", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Fatalf("goose: falha ao fechar o DB: %v\n", err)
		}
	}()

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatalf("goose: %v", err)
	}
	if !verbose {
		goose.SetLogger(goose.NopLogger())
	}

	arguments := flag.Args()
	if len(arguments) == 0 {
		arguments = []string{"up"}
	}

	command := arguments[0]
	var args []string
	if len(arguments) > 1 {
		args = arguments[1:]
	}

	if err := goose.Run(command, db, migrationsDir, args...); err != nil {
		log.Fatalf("goose %v: %v", command, err)
	}

	fmt.Printf("goose %s concluído\n", command)
}
