package models

import "time"

// Transaction kinds as submitted by the bundled clients. The server stores
// the Type field verbatim and does not validate it against these values.
const (
	TransactionTypeIncome  = "income"
	TransactionTypeExpense = "expense"
)

// Transaction is a single income or expense entry in a user's ledger.
//
// Entries are immutable: they are created once and never updated or deleted.
// Listing returns them in insertion order.
type Transaction struct {
	// ID is the server-assigned unique identifier of the entry.
	ID int64 `json:"id"`

	// UserID identifies the owning user. It is never taken from a request
	// body; the authenticated identity bound to the request context is the
	// only source of ownership.
	UserID int64 `json:"-"`

	// Type is the caller-supplied kind of the entry, normally "income" or
	// "expense". Stored as given.
	Type string `json:"type"`

	// Amount is the caller-supplied decimal amount. No sign convention is
	// enforced.
	Amount float64 `json:"amount"`

	// Note is optional free text attached to the entry.
	Note string `json:"note"`

	// Date is the caller-supplied date string. It is not validated as a
	// calendar date.
	Date string `json:"date"`

	// CreatedAt is the timestamp when the entry was persisted.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Transaction model.
func (t Transaction) TableName() string {
	return "transactions"
}
