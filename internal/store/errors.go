package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameTaken is returned when an attempt to register a new user
	// fails because a user with the same username already exists. The
	// database unique constraint is the source of truth, so concurrent
	// registrations of the same name resolve to exactly one winner.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrUserNotFound is returned when a lookup by username matches no
	// user record.
	ErrUserNotFound = errors.New("no user was found")

	// ErrTransactionNotSaved is returned when an INSERT of a ledger entry
	// completes without a driver error but no row was actually persisted.
	ErrTransactionNotSaved = errors.New("transaction was not saved")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
