package store

import (
	"context"
	"fmt"

	"github.com/AVoropaev/go-money-keeper/internal/config"
	"github.com/AVoropaev/go-money-keeper/internal/logger"
)

// Storages is the container of all repositories backed by a single database
// connection.
type Storages struct {
	UserRepository        UserRepository
	TransactionRepository TransactionRepository
}

// NewStorages connects to the backend selected by cfg.Driver, applies the
// embedded migrations, and wires up the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	var db *DB
	var err error

	switch cfg.Driver {
	case config.DriverPostgres:
		db, err = NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		db, err = NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("unsupported storage driver: %q", cfg.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("error connecting storage: %w", err)
	}

	if err = db.Migrate(); err != nil {
		return nil, fmt.Errorf("error migrating storage: %w", err)
	}

	return &Storages{
		UserRepository:        NewUserRepository(db, log),
		TransactionRepository: NewTransactionRepository(db, log),
	}, nil
}
