// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"

	"github.com/AVoropaev/go-money-keeper/internal/logger"
	"github.com/AVoropaev/go-money-keeper/internal/store"
	"github.com/AVoropaev/go-money-keeper/models"
)

// ledgerService is the concrete implementation of LedgerService.
// It records and reads back transactions through a TransactionRepository,
// always stamping the owner from the authenticated identity.
type ledgerService struct {
	transactionRepository store.TransactionRepository
	logger                *logger.Logger
}

// NewLedgerService constructs a LedgerService backed by the given repository.
func NewLedgerService(transactionRepository store.TransactionRepository, logger *logger.Logger) LedgerService {
	return &ledgerService{
		transactionRepository: transactionRepository,
		logger:                logger,
	}
}

// AddTransaction records a single transaction for userID.
//
// The owner on the stored record is always userID; any owner value already
// present on transaction is overwritten. Type, amount, note and date are
// stored verbatim.
//
// Returns the persisted transaction (with server-assigned ID and CreatedAt)
// or ErrInvalidDataProvided if userID is not a valid identifier.
func (l *ledgerService) AddTransaction(ctx context.Context, userID int64, transaction models.Transaction) (models.Transaction, error) {
	log := logger.FromContext(ctx)

	if userID <= 0 {
		log.Error().Int64("user_id", userID).Msg("invalid user id for transaction")
		return models.Transaction{}, ErrInvalidDataProvided
	}

	transaction.UserID = userID

	saved, err := l.transactionRepository.Append(ctx, transaction)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("transaction save ended with error")
		return models.Transaction{}, fmt.Errorf("transaction save ended with error: %w", err)
	}

	return saved, nil
}

// ListTransactions returns every transaction owned by userID in the order
// the entries were recorded. A user with no transactions gets an empty
// slice, not nil.
func (l *ledgerService) ListTransactions(ctx context.Context, userID int64) ([]models.Transaction, error) {
	log := logger.FromContext(ctx)

	if userID <= 0 {
		log.Error().Int64("user_id", userID).Msg("invalid user id for listing transactions")
		return nil, ErrInvalidDataProvided
	}

	transactions, err := l.transactionRepository.ListByOwner(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("transaction listing ended with error")
		return nil, fmt.Errorf("transaction listing ended with error: %w", err)
	}

	return transactions, nil
}
