// SPDX-License-Identifier: Apache-2.0

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/AVoropaev/go-money-keeper/models"
)

const (
	createUser = `INSERT INTO users (username, password_hash)
    VALUES ($1, $2)
    RETURNING user_id, username, password_hash, created_at;`

	findUserByUsername = `SELECT user_id, username, password_hash, created_at
    FROM users
    WHERE username = $1;`
)

// psql builds parameterised queries with $N placeholders. SQLite accepts the
// same placeholder style, so one builder serves both backends.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildAppendTransactionQuery builds the INSERT for a single ledger entry.
// The RETURNING clause hands back the canonical database representation,
// including the server-assigned id that defines insertion order.
func buildAppendTransactionQuery(transaction models.Transaction) (string, []any, error) {
	return psql.Insert(transaction.TableName()).
		Columns("user_id", "type", "amount", "note", "date").
		Values(transaction.UserID, transaction.Type, transaction.Amount, transaction.Note, transaction.Date).
		Suffix("RETURNING id, user_id, type, amount, note, date, created_at").
		ToSql()
}

// buildListByOwnerQuery builds the per-owner SELECT. Filtering by user_id is
// the only filter the store exposes; ordering by id yields insertion order.
func buildListByOwnerQuery(userID int64) (string, []any, error) {
	return psql.Select("id", "user_id", "type", "amount", "note", "date", "created_at").
		From(models.Transaction{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("id ASC").
		ToSql()
}
