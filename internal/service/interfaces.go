package service

import (
	"context"

	"github.com/AVoropaev/go-money-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

// AuthService covers the account lifecycle: registration, credential
// verification, and JWT issuance and validation.
type AuthService interface {
	RegisterUser(ctx context.Context, credentials models.Credentials) (models.User, error)
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// LedgerService records and reads back financial transactions. Every
// operation is scoped to a single owner; the owner ID always comes from the
// authenticated identity, never from client-supplied payloads.
type LedgerService interface {
	AddTransaction(ctx context.Context, userID int64, transaction models.Transaction) (models.Transaction, error)
	ListTransactions(ctx context.Context, userID int64) ([]models.Transaction, error)
}
