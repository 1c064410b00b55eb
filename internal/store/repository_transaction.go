package store

import (
	"context"
	"fmt"

	"github.com/AVoropaev/go-money-keeper/internal/logger"
	"github.com/AVoropaev/go-money-keeper/models"
)

// transactionRepository is the SQL-backed implementation of
// [TransactionRepository]. It executes all ledger operations against the
// "transactions" table using the shared [*DB] connection.
type transactionRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewTransactionRepository constructs a [TransactionRepository] backed by
// the provided database connection and logger.
func NewTransactionRepository(db *DB, logger *logger.Logger) TransactionRepository {
	logger.Debug().Msg("creating transaction repository")
	return &transactionRepository{
		db:     db,
		logger: logger,
	}
}

// Append persists a single ledger entry. The owner in transaction.UserID is
// taken as-is; callers are responsible for stamping it from the
// authenticated identity, never from client input.
func (r *transactionRepository) Append(ctx context.Context, transaction models.Transaction) (models.Transaction, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildAppendTransactionQuery(transaction)
	if err != nil {
		log.Err(err).
			Str("func", "*transactionRepository.Append").
			Int64("user_id", transaction.UserID).
			Msg("failed to build insert query")
		return models.Transaction{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if rowErr := row.Err(); rowErr != nil {
		log.Err(rowErr).
			Str("func", "*transactionRepository.Append").
			Int64("user_id", transaction.UserID).
			Msg("failed to execute insert query")
		return models.Transaction{}, fmt.Errorf("%w: %w", ErrExecutingQuery, rowErr)
	}

	var saved models.Transaction
	if scanErr := row.Scan(
		&saved.ID,
		&saved.UserID,
		&saved.Type,
		&saved.Amount,
		&saved.Note,
		&saved.Date,
		&saved.CreatedAt,
	); scanErr != nil {
		log.Err(scanErr).
			Str("func", "*transactionRepository.Append").
			Int64("user_id", transaction.UserID).
			Msg("failed to scan inserted transaction")
		return models.Transaction{}, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
	}

	return saved, nil
}

// ListByOwner retrieves every ledger entry owned by userID, ordered by id so
// that read-back preserves submission order. An empty ledger produces an
// empty slice.
func (r *transactionRepository) ListByOwner(ctx context.Context, userID int64) ([]models.Transaction, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListByOwnerQuery(userID)
	if err != nil {
		log.Err(err).
			Str("func", "*transactionRepository.ListByOwner").
			Int64("user_id", userID).
			Msg("failed to build select query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*transactionRepository.ListByOwner").
			Int64("user_id", userID).
			Msg("failed to execute query for listing transactions")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.Transaction, 0, 50)

	for rows.Next() {
		var item models.Transaction

		scanErr := rows.Scan(
			&item.ID,
			&item.UserID,
			&item.Type,
			&item.Amount,
			&item.Note,
			&item.Date,
			&item.CreatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "*transactionRepository.ListByOwner").
				Int64("user_id", userID).
				Msg("failed to scan transaction row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		results = append(results, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*transactionRepository.ListByOwner").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}
