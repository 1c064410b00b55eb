package store

import (
	"context"

	"github.com/AVoropaev/go-money-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/repositories_mock.go -package=mock

// UserRepository persists user accounts and enforces username uniqueness at
// the storage layer.
type UserRepository interface {
	// CreateUser inserts a new account and returns it with server-assigned
	// fields populated. Returns [ErrUsernameTaken] when the username is
	// already present.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername looks up an account by its exact, case-sensitive
	// username. Returns [ErrUserNotFound] when no account matches.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
}

// TransactionRepository persists ledger entries and retrieves them scoped to
// a single owning user.
type TransactionRepository interface {
	// Append inserts one entry and returns it with server-assigned fields
	// populated.
	Append(ctx context.Context, transaction models.Transaction) (models.Transaction, error)

	// ListByOwner returns every entry owned by userID in insertion order.
	// An owner with no entries yields an empty slice, not an error.
	ListByOwner(ctx context.Context, userID int64) ([]models.Transaction, error)
}
