package store

import (
	"database/sql"
	"errors"

	"github.com/AVoropaev/go-money-keeper/internal/logger"
	"github.com/AVoropaev/go-money-keeper/migrations"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	sqlite3 "github.com/mattn/go-sqlite3"
)

// DB wraps a *sql.DB together with the driver it was opened with, so that
// migrations and error mapping can stay backend-aware while repositories
// share a single implementation. Both supported backends accept $N
// placeholders and RETURNING clauses, which keeps the query text common.
type DB struct {
	*sql.DB
	driver string
	logger *logger.Logger
}

// Migrate brings the underlying schema up to the latest embedded version.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// isUniqueViolation reports whether err is a unique-constraint violation
// from either backend (PostgreSQL class 23505, SQLite extended code 2067).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.UniqueViolation
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}

	return false
}
