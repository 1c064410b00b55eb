// SPDX-License-Identifier: Apache-2.0

// Package adapter provides transport-layer abstractions for communicating
// with the money-keeper server.
//
// The primary abstraction is [ServerAdapter], which decouples the terminal
// client from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/AVoropaev/go-money-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the
// money-keeper server. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to
// the sentinel values defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests. It should be called immediately
	// after a successful Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates a new account with the provided credentials.
	// Registration does not log the user in; call Login afterwards to
	// obtain a token.
	Register(ctx context.Context, credentials models.Credentials) error

	// Login authenticates the user and stores the bearer token returned in
	// the response body via SetToken. Returns an error if the request fails
	// or the server responds with a non-2xx status.
	Login(ctx context.Context, credentials models.Credentials) error

	// AddTransaction records a single transaction for the authenticated
	// user. Requires a token set by a prior Login.
	AddTransaction(ctx context.Context, transaction models.Transaction) error

	// ListTransactions fetches every transaction owned by the authenticated
	// user, in the order the server recorded them.
	ListTransactions(ctx context.Context) ([]models.Transaction, error)
}
