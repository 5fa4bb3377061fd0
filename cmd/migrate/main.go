package main

import (
	"log"

	"github.com/sanjaykbiswas/trivia-app-sub001/internal/config"
	"github.com/sanjaykbiswas/trivia-app-sub001/internal/database"
	"github.com/sanjaykbiswas/trivia-app-sub001/internal/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	db, err := database.NewMigrateOracleDB(cfg.GetDSN())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.RunMigrations(db, "database/migrations"); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
}
