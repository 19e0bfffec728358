// Package repository opens the configured storage backend.
package repository

import (
	"context"
	"fmt"
	"log/slog"

	"linkvault/internal/config"
	"linkvault/internal/domain/repositories"
	"linkvault/internal/repository/memory"
	"linkvault/internal/repository/postgres"
)

// Store bundles the repositories of one storage backend
type Store struct {
	Users     repositories.UserRepository
	Folders   repositories.FolderRepository
	Links     repositories.LinkRepository
	TxManager repositories.TransactionManager

	ping  func(ctx context.Context) error
	close func()
}

// Ping checks that the backend is reachable
func (s *Store) Ping(ctx context.Context) error {
	return s.ping(ctx)
}

// Close releases the backend's resources
func (s *Store) Close() {
	s.close()
}

// Open connects to the backend named by cfg.Storage.
// The Postgres backend is migrated to the latest schema before use.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Store, error) {
	switch cfg.Storage {
	case config.StorageMemory:
		mem := memory.NewStore()
		logger.Warn("using in-memory storage, data is lost on exit")
		return &Store{
			Users:     mem.Users(),
			Folders:   mem.Folders(),
			Links:     mem.Links(),
			TxManager: mem.TransactionManager(),
			ping:      func(context.Context) error { return nil },
			close:     func() {},
		}, nil

	case config.StoragePostgres:
		pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}

		if err := postgres.RunMigrations(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}

		stats := pool.Stat()
		logger.Info("database connected",
			"max_conns", stats.MaxConns(),
			"total_conns", stats.TotalConns(),
		)

		repoConfig := &postgres.RepositoryConfig{
			Pool:   pool,
			Tables: postgres.NewTableNames(),
			Logger: logger,
		}
		return &Store{
			Users:     postgres.NewUserRepository(repoConfig),
			Folders:   postgres.NewFolderRepository(repoConfig),
			Links:     postgres.NewLinkRepository(repoConfig),
			TxManager: postgres.NewTransactionManager(pool, logger),
			ping:      pool.Ping,
			close:     pool.Close,
		}, nil

	default:
		return nil, fmt.Errorf("unknown storage %q", cfg.Storage)
	}
}
