package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"docuvault/internal/config"
	"docuvault/internal/repository/postgres"
	"docuvault/internal/seed"
)

// Seeds the postgres backend with a fixture dataset. The in-memory store
// seeds itself at server startup; this command exists for the database.
func main() {
	dropTables := flag.Bool("drop-tables", false, "drop and recreate both tables before seeding")
	clearData := flag.Bool("clear-data", false, "delete all rows before seeding, keeping the schema")
	fixturePath := flag.String("fixture", "", "YAML fixture path (default: built-in dataset)")
	flag.Parse()

	_ = godotenv.Load()
	cfg := config.Load()

	if cfg.Environment == "prod" && (*dropTables || *clearData) {
		log.Fatal("Refusing to drop or clear data in prod; unset ENVIRONMENT or run without destructive flags")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to create connection pool: %v", err)
	}
	defer pool.Close()

	tables := postgres.NewTableNames(cfg.TablePrefix)

	if *dropTables {
		if err := postgres.DropTables(ctx, pool, tables); err != nil {
			log.Fatalf("Failed to drop tables: %v", err)
		}
		logger.Info("tables dropped", "table_prefix", cfg.TablePrefix)
	}

	if err := postgres.EnsureSchema(ctx, pool, tables); err != nil {
		log.Fatalf("Failed to ensure schema: %v", err)
	}

	if *clearData && !*dropTables {
		if _, err := pool.Exec(ctx, "DELETE FROM "+tables.Documents); err != nil {
			log.Fatalf("Failed to clear documents: %v", err)
		}
		if _, err := pool.Exec(ctx, "DELETE FROM "+tables.Folders); err != nil {
			log.Fatalf("Failed to clear folders: %v", err)
		}
		logger.Info("data cleared", "table_prefix", cfg.TablePrefix)
	}

	fixture := seed.Default()
	if *fixturePath != "" {
		fixture, err = seed.LoadFile(*fixturePath)
		if err != nil {
			log.Fatalf("Failed to load fixture: %v", err)
		}
	}

	repoConfig := &postgres.RepositoryConfig{Pool: pool, Tables: tables, Logger: logger}
	folderRepo := postgres.NewFolderRepository(repoConfig)
	docRepo := postgres.NewDocumentRepository(repoConfig)

	if err := seed.Apply(ctx, folderRepo, docRepo, fixture, logger); err != nil {
		log.Fatalf("Failed to apply fixture: %v", err)
	}

	logger.Info("seeding complete", "table_prefix", cfg.TablePrefix)
}
