package main

import (
	"context"
	"log"

	"github.com/sanjaykbiswas/trivia-app-sub001/internal/config"
	"github.com/sanjaykbiswas/trivia-app-sub001/internal/database"
	"github.com/sanjaykbiswas/trivia-app-sub001/internal/domain"
	"github.com/sanjaykbiswas/trivia-app-sub001/internal/logger"
	"github.com/sanjaykbiswas/trivia-app-sub001/internal/repository"
)

// Starter catalog for fresh deployments. Existing entries are left untouched.
var seedCategories = []struct {
	Name        string
	Description string
}{
	{"Science", "Physics, chemistry, biology and the history of discovery"},
	{"History", "World events, eras and the people who shaped them"},
	{"Geography", "Countries, capitals, landmarks and physical geography"},
	{"Movies", "Cinema across decades, directors, actors and awards"},
	{"Music", "Artists, albums, genres and musical milestones"},
	{"Sports", "Games, championships, records and athletes"},
	{"Literature", "Authors, novels, poetry and literary movements"},
	{"Technology", "Computing, inventions and the digital age"},
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	db, err := database.NewSQLXOracleDB(cfg.GetDSN())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	repo := repository.NewCategoryDatabaseAdapter(db)
	ctx := context.Background()

	seeded := 0
	for _, seed := range seedCategories {
		existing, err := repo.GetCategoryByName(ctx, seed.Name)
		if err != nil {
			log.Fatalf("Failed to look up category %s: %v", seed.Name, err)
		}
		if existing != nil {
			continue
		}

		category := domain.NewCategory(seed.Name, seed.Description)
		if err := repo.SaveCategory(ctx, category); err != nil {
			log.Fatalf("Failed to seed category %s: %v", seed.Name, err)
		}
		seeded++
	}

	log.Printf("Seeding complete: %d new categories", seeded)
}
