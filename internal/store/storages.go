package store

import (
	"context"

	"github.com/MKhiriev/user-management-api/internal/config"
	"github.com/MKhiriev/user-management-api/internal/logger"
)

// Storages aggregates all repositories the application depends on.
type Storages struct {
	UserRepository UserRepository
}

// NewStorages selects and constructs the persistence backend.
//
// When a database DSN is configured, the PostgreSQL repository is used and
// embedded migrations are applied at startup. Otherwise the in-memory
// repository serves as the backing store.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	if cfg.DB.DSN == "" {
		return &Storages{
			UserRepository: NewMemoryUserRepository(logger),
		}, nil
	}

	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		return nil, err
	}

	return &Storages{
		UserRepository: NewUserRepository(db, logger),
	}, nil
}
