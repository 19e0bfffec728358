package main

import (
	"context"
	"flag"
	"log"
	"os"

	"linkvault/internal/auth"
	"linkvault/internal/config"
	"linkvault/internal/repository"
	"linkvault/internal/seed"
	"linkvault/internal/service"
	authz "linkvault/internal/service/auth"

	"github.com/joho/godotenv"
)

func main() {
	fixturePath := flag.String("file", "", "YAML fixture to load (default: built-in demo data)")
	flag.Parse()

	// Load .env file
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	if cfg.Storage == config.StorageMemory {
		log.Fatalf("Seeding in-memory storage has no effect; set STORAGE=postgres")
	}

	logger := config.NewLogger(cfg.Environment, os.Stdout)

	fixture, err := loadFixture(*fixturePath)
	if err != nil {
		log.Fatalf("Failed to load fixture: %v", err)
	}

	ctx := context.Background()
	store, err := repository.Open(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}
	defer store.Close()

	tokens, err := auth.NewTokenManager(auth.TokenConfig{
		Secret: cfg.TokenSecret,
		TTL:    cfg.TokenTTL,
	}, logger)
	if err != nil {
		log.Fatalf("Failed to create token manager: %v", err)
	}

	seeder := seed.NewSeeder(
		service.NewAuthService(store.Users, auth.NewBcryptHasher(0), tokens, tokens, logger),
		service.NewFolderService(store.Folders, store.Links, store.TxManager, logger),
		service.NewLinkService(store.Links, authz.NewOwnerBasedAuthorizer(store.Folders), logger),
		logger,
	)

	res, err := seeder.Apply(ctx, fixture)
	if err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	logger.Info("seeding complete",
		"users", res.Users,
		"skipped", res.Skipped,
		"folders", res.Folders,
		"links", res.Links,
	)
}

func loadFixture(path string) (*seed.Fixture, error) {
	if path == "" {
		return seed.Default()
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return seed.Load(f)
}
