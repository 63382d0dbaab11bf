package store

import (
	"context"

	"github.com/mkhalitov/bookshelf/internal/config"
	"github.com/mkhalitov/bookshelf/internal/logger"
)

// Storages bundles all repositories backed by the shared database handle.
// It is constructed once at startup and injected into the service layer,
// keeping the connection pool an explicitly lifetime-scoped resource rather
// than a process-wide singleton.
type Storages struct {
	// DB is the shared connection handle, exposed so the entrypoint can
	// run migrations against it and close it on shutdown.
	DB *DB

	UserRepository   UserRepository
	BookRepository   BookRepository
	ReviewRepository ReviewRepository
}

// NewStorages connects to PostgreSQL and wires all repositories to the
// shared connection pool.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, err
	}

	return &Storages{
		DB:               db,
		UserRepository:   NewUserRepository(db, logger),
		BookRepository:   NewBookRepository(db, logger),
		ReviewRepository: NewReviewRepository(db, logger),
	}, nil
}
