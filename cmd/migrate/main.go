package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"os"

	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/pageza/recipekit/config"
	"github.com/pageza/recipekit/internal/database"
	"github.com/pageza/recipekit/internal/logger"
)

func main() {
	rollback := flag.Bool("rollback", false, "Rollback the last migration")
	flag.Parse()

	if err := logger.Init(); err != nil {
		panic(err)
	}
	defer logger.Sync()

	if err := run(context.Background(), *rollback); err != nil {
		logger.Error("Migration failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func run(ctx context.Context, rollback bool) error {
	dsn, err := postgresDSN()
	if err != nil {
		return err
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	migrations, err := database.Migrations()
	if err != nil {
		return err
	}

	if rollback {
		name, err := database.RollbackMigration(ctx, db, migrations)
		if errors.Is(err, database.ErrNoMigrations) {
			fmt.Println("No migrations to rollback")
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Printf("Successfully rolled back migration: %s\n", name)
		return nil
	}

	applied, err := database.ApplyMigrations(ctx, db, migrations)
	for _, name := range applied {
		fmt.Printf("Successfully applied migration: %s\n", name)
	}
	if err != nil {
		return err
	}
	fmt.Println("All migrations applied successfully.")
	return nil
}

// postgresDSN prefers DATABASE_URL and falls back to the DB_* settings.
func postgresDSN() (string, error) {
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		return dsn, nil
	}
	cfg, err := config.LoadConfig()
	if err != nil {
		return "", err
	}
	if cfg.DBDriver != config.DriverPostgres {
		return "", fmt.Errorf("DATABASE_URL is not set and DB_DRIVER is %q, not postgres", cfg.DBDriver)
	}
	return cfg.PostgresDSN(), nil
}
