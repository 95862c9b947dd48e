package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"jelajah/internal/config"
	"jelajah/internal/infra"
	"jelajah/internal/repositories"
)

const usage = `usage: dbtool <command>

commands:
  migrate   create or update the schema
  seed      migrate, then load SEED_PATH (default data/seeds/kedah.json)`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	cfg := config.Load()
	log, err := infra.NewLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}

	err = run(os.Args[1], cfg, log)
	if err != nil {
		log.Error("dbtool failed", zap.String("command", os.Args[1]), zap.Error(err))
	}
	_ = log.Sync()
	if err != nil {
		os.Exit(1)
	}
}

func run(command string, cfg config.Config, log *zap.Logger) error {
	switch command {
	case "migrate", "seed":
	default:
		return fmt.Errorf("unknown command %q\n%s", command, usage)
	}

	db, err := infra.InitPostgresql(cfg, log)
	if err != nil {
		return err
	}
	defer infra.ClosePostgresql(db, log)

	log.Info("Initializing database schema...")
	if err := repositories.Migrate(db); err != nil {
		return fmt.Errorf("schema initialization failed: %w", err)
	}
	log.Info("Schema ready.")

	if command == "migrate" {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	log.Info("Seeding database...", zap.String("path", cfg.SeedPath))
	inserted, err := repositories.SeedFromJSON(ctx, db, cfg.SeedPath)
	if err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}
	log.Info("Seeding complete.", zap.Int("districts_inserted", inserted))
	return nil
}
